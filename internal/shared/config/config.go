package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	Env             string
	LogLevel        string
	ObjectStoreType string
	LocalStoreDir   string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string
	SSEKMSKeyID     string
	DatabaseURL     string
	JWTSecret       string
	ParserMode      string
	Latency         Latency
	RateLimit       RateLimit
	Events          Events
}

// Latency holds the simulated delays applied before each operation completes.
type Latency struct {
	Upload  time.Duration
	Analyze time.Duration
	Match   time.Duration
	Chat    time.Duration
}

// RateLimit holds per-group token bucket settings (requests per second, burst).
type RateLimit struct {
	DefaultRate  float64
	DefaultBurst int
	ChatRate     float64
	ChatBurst    int
	UploadRate   float64
	UploadBurst  int
}

// Events selects the broker used for domain events. Both empty disables publishing.
type Events struct {
	SQSQueueURL  string
	AMQPURL      string
	AMQPExchange string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		Env:             env,
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ObjectStoreType: normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		LocalStoreDir:   getEnv("LOCAL_STORE_DIR", "./data"),
		AWSRegion:       getEnv("AWS_REGION", ""),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Prefix:        getEnv("S3_PREFIX", ""),
		SSEKMSKeyID:     getEnv("SSE_KMS_KEY_ID", ""),
		DatabaseURL:     dbURL,
		JWTSecret:       getEnv("JWT_SECRET", ""),
		ParserMode:      normalizeParserMode(getEnv("PARSER_MODE", "stub")),
		Latency: Latency{
			Upload:  getDuration("LATENCY_UPLOAD", 0),
			Analyze: getDuration("LATENCY_ANALYZE", 0),
			Match:   getDuration("LATENCY_MATCH", 0),
			Chat:    getDuration("LATENCY_CHAT", 0),
		},
		RateLimit: RateLimit{
			DefaultRate:  getFloat("RATE_LIMIT_DEFAULT_RPS", 5),
			DefaultBurst: getInt("RATE_LIMIT_DEFAULT_BURST", 20),
			ChatRate:     getFloat("RATE_LIMIT_CHAT_RPS", 1),
			ChatBurst:    getInt("RATE_LIMIT_CHAT_BURST", 5),
			UploadRate:   getFloat("RATE_LIMIT_UPLOAD_RPS", 0.2),
			UploadBurst:  getInt("RATE_LIMIT_UPLOAD_BURST", 3),
		},
		Events: Events{
			SQSQueueURL:  getEnv("EVENTS_SQS_QUEUE_URL", ""),
			AMQPURL:      getEnv("EVENTS_AMQP_URL", ""),
			AMQPExchange: getEnv("EVENTS_AMQP_EXCHANGE", "resume_events"),
		},
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := time.ParseDuration(raw)
	if err != nil || val < 0 {
		log.Printf("config %s invalid duration %q; using %s", key, raw, def)
		return def
	}
	return val
}

func getInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config %s invalid int %q; using %d", key, raw, def)
		return def
	}
	return val
}

func getFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("config %s invalid float %q; using %g", key, raw, def)
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}

func normalizeParserMode(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "extract", "real":
		return "extract"
	default:
		return "stub"
	}
}

// IsDevLike reports whether env allows in-memory fallbacks.
func IsDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
