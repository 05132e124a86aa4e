package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-insight/internal/analysis"
	"resume-insight/internal/catalog"
	"resume-insight/internal/chat"
	"resume-insight/internal/documents"
	"resume-insight/internal/events"
	"resume-insight/internal/matcher"
	"resume-insight/internal/resume"
	"resume-insight/internal/services/health"
	"resume-insight/internal/sessions"
	"resume-insight/internal/shared/auth"
	"resume-insight/internal/shared/config"
	"resume-insight/internal/shared/server"
	"resume-insight/internal/shared/storage/db"
	"resume-insight/internal/shared/storage/object"
	localstore "resume-insight/internal/shared/storage/object/local"
	s3store "resume-insight/internal/shared/storage/object/s3"
	"resume-insight/internal/shared/telemetry"
)

// App holds shared dependencies and the configured router.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	Store            object.ObjectStore
	Events           events.Publisher
	Parser           resume.Parser
	DocumentsRepo    documents.Repo
	SessionsRepo     sessions.Repo
	DocumentsService *documents.Service
	SessionsService  *sessions.Service
	closers          []io.Closer
}

// Build prepares dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	if cfg.LogLevel != "" {
		telemetry.SetLevel(cfg.LogLevel)
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	parser, err := resume.NewParser(cfg.ParserMode)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Parser: parser,
	}

	publisher, err := buildEvents(ctx, cfg, app)
	if err != nil {
		return nil, err
	}
	app.Events = publisher

	tokens, err := auth.NewTokens(cfg.JWTSecret, cfg.Env)
	if err != nil {
		return nil, err
	}

	deps := buildServices(app)
	deps.Config = cfg
	deps.Tokens = tokens
	deps.Health = health.NewService(nil, string(parser.Mode()))
	if sqlDB != nil {
		deps.Health.DB = sqlDB
	}
	app.Router = server.NewRouter(deps)

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":          cfg.Env,
		"parser_mode":  string(parser.Mode()),
		"object_store": cfg.ObjectStoreType,
		"database":     sqlDB != nil,
	})
	return app, nil
}

// Close releases broker connections and the database pool.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if config.IsDevLike(cfg.Env) {
			telemetry.Info("bootstrap.memory_repos", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if config.IsDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{"reason": "database connect failed", "error": err})
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildEvents(ctx context.Context, cfg config.Config, app *App) (events.Publisher, error) {
	var publishers events.Multi
	if url := strings.TrimSpace(cfg.Events.SQSQueueURL); url != "" {
		p, err := events.NewSQSPublisher(ctx, cfg.AWSRegion, url)
		if err != nil {
			return nil, fmt.Errorf("sqs publisher: %w", err)
		}
		publishers = append(publishers, p)
	}
	if url := strings.TrimSpace(cfg.Events.AMQPURL); url != "" {
		p, err := events.NewAMQPPublisher(url, cfg.Events.AMQPExchange)
		if err != nil {
			return nil, fmt.Errorf("amqp publisher: %w", err)
		}
		app.closers = append(app.closers, p)
		publishers = append(publishers, p)
	}
	switch len(publishers) {
	case 0:
		return events.NoopPublisher{}, nil
	case 1:
		return publishers[0], nil
	default:
		return publishers, nil
	}
}

func buildServices(app *App) server.RouterDeps {
	if app.DB != nil {
		app.DocumentsRepo = &documents.PGRepo{DB: app.DB}
		app.SessionsRepo = &sessions.PGRepo{DB: app.DB}
	} else {
		app.DocumentsRepo = documents.NewMemoryRepo()
		app.SessionsRepo = sessions.NewMemoryRepo()
	}

	app.SessionsService = sessions.NewService(app.SessionsRepo)
	app.DocumentsService = &documents.Service{
		Store:    app.Store,
		Repo:     app.DocumentsRepo,
		Parser:   app.Parser,
		Sessions: app.SessionsService,
		Events:   app.Events,
		Delay:    app.Config.Latency.Upload,
	}

	return server.RouterDeps{
		CatalogHandler:  catalog.NewHandler(),
		DocumentHandler: documents.NewHandler(app.DocumentsService),
		SessionHandler:  sessions.NewHandler(app.SessionsService),
		MatchHandler:    matcher.NewHandler(app.SessionsService, app.Config.Latency.Match),
		AnalysisHandler: &analysis.Handler{
			Aggregator: analysis.NewAggregator(),
			Sessions:   app.SessionsService,
			Events:     app.Events,
			Delay:      app.Config.Latency.Analyze,
		},
		ChatHandler: &chat.Handler{
			Responder: chat.NewCannedResponder(nil),
			Sessions:  app.SessionsService,
			Events:    app.Events,
			Delay:     app.Config.Latency.Chat,
		},
	}
}
