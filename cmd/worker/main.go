package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"resume-insight/internal/shared/config"
	"resume-insight/internal/shared/metrics"
	"resume-insight/internal/shared/telemetry"
	"resume-insight/internal/workerproc"
)

const (
	defaultRegion             = "us-east-1"
	defaultVisibilitySeconds  = 60
	defaultWorkerConcurrency  = 4
	defaultShutdownTimeoutSec = 30
	defaultMetricsAddr        = ":9090"
)

// The worker drains domain events published to EVENTS_SQS_QUEUE_URL into the audit log.
func main() {
	cfg := config.Load()
	telemetry.SetLevel(cfg.LogLevel)

	queueURL := strings.TrimSpace(cfg.Events.SQSQueueURL)
	if queueURL == "" {
		telemetry.Error("worker.missing_queue_url", nil)
		os.Exit(1)
	}
	region := cfg.AWSRegion
	if region == "" {
		region = defaultRegion
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	visibilitySeconds := envInt("WORKER_VISIBILITY_TIMEOUT_SECONDS", defaultVisibilitySeconds)
	concurrency := envInt("WORKER_CONCURRENCY", defaultWorkerConcurrency)
	shutdownTimeout := time.Duration(envInt("SHUTDOWN_TIMEOUT_SECONDS", defaultShutdownTimeoutSec)) * time.Second

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		telemetry.Error("worker.aws_config_failed", map[string]any{"error": err})
		os.Exit(1)
	}
	var sqsClient sqsAPI = sqs.NewFromConfig(awsCfg)
	handler := workerproc.AuditLog

	metricsSrv := newMetricsServer(metricsAddr())
	if metricsSrv != nil {
		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				telemetry.Error("worker.metrics_failed", map[string]any{"addr": metricsSrv.Addr, "error": err})
			}
		}()
	}

	sem := make(chan struct{}, max(1, concurrency))
	var wg sync.WaitGroup

	telemetry.Info("worker.started", map[string]any{
		"queue_url":    queueURL,
		"concurrency":  concurrency,
		"visibility":   visibilitySeconds,
		"metrics_addr": metricsAddr(),
	})

pollLoop:
	for {
		select {
		case <-ctx.Done():
			break pollLoop
		default:
		}

		resp, err := sqsClient.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:                    aws.String(queueURL),
			MaxNumberOfMessages:         10,
			WaitTimeSeconds:             20,
			VisibilityTimeout:           int32(visibilitySeconds),
			MessageSystemAttributeNames: []sqstypes.MessageSystemAttributeName{sqstypes.MessageSystemAttributeNameApproximateReceiveCount},
		})
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
				break pollLoop
			}
			telemetry.Warn("worker.receive_failed", map[string]any{"error": err})
			continue
		}

		for _, msg := range resp.Messages {
			select {
			case <-ctx.Done():
				break pollLoop
			case sem <- struct{}{}:
			}
			wg.Add(1)
			go func(m sqstypes.Message) {
				defer wg.Done()
				defer func() { <-sem }()
				handleMessage(ctx, handler, sqsClient, queueURL, m)
			}(msg)
		}
	}

	telemetry.Info("worker.shutting_down", map[string]any{"timeout_sec": shutdownTimeout.Seconds()})
	waitDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(waitDone)
	}()
	select {
	case <-waitDone:
	case <-time.After(shutdownTimeout):
		telemetry.Warn("worker.shutdown_timeout", nil)
	}

	if metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			telemetry.Warn("worker.metrics_shutdown_failed", map[string]any{"error": err})
		}
	}
}

// metricsAddr reads WORKER_METRICS_ADDR. "off" disables the listener.
func metricsAddr() string {
	addr := strings.TrimSpace(os.Getenv("WORKER_METRICS_ADDR"))
	if addr == "" {
		return defaultMetricsAddr
	}
	if strings.EqualFold(addr, "off") {
		return ""
	}
	return addr
}

func newMetricsServer(addr string) *http.Server {
	if addr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler())
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

type sqsAPI interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

func handleMessage(ctx context.Context, h workerproc.Handler, client sqsAPI, queueURL string, msg sqstypes.Message) {
	e, meta, err := workerproc.HandleMessage(ctx, h, aws.ToString(msg.Body))
	fields := baseFields(msg, e.SessionID, e.RequestID)
	fields["body_len"] = meta.BodyLen
	if err != nil {
		fields["error"] = err.Error()
		if meta.BodySHA != "" {
			fields["body_sha256"] = meta.BodySHA
		}
		if workerproc.Unrecoverable(err) {
			telemetry.Error("worker.event.invalid", fields)
			deleteMessage(ctx, client, queueURL, msg, fields)
			return
		}
		// Left on the queue; SQS redelivers after the visibility timeout.
		telemetry.Error("worker.event.failed", fields)
		return
	}

	if deleteMessage(ctx, client, queueURL, msg, fields) {
		fields["type"] = e.Type
		telemetry.Debug("worker.event.completed", fields)
	}
}

func deleteMessage(ctx context.Context, client sqsAPI, queueURL string, msg sqstypes.Message, fields map[string]any) bool {
	receipt := aws.ToString(msg.ReceiptHandle)
	if receipt == "" {
		fields["error"] = "missing receipt handle"
		telemetry.Error("worker.event.delete_failed", fields)
		return false
	}
	if _, err := client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: aws.String(receipt),
	}); err != nil {
		fields["error"] = err.Error()
		telemetry.Error("worker.event.delete_failed", fields)
		return false
	}
	return true
}

func baseFields(msg sqstypes.Message, sessionID, requestID string) map[string]any {
	fields := map[string]any{
		"session_id":     sessionID,
		"sqs_message_id": aws.ToString(msg.MessageId),
		"receive_count":  receiveCount(msg),
	}
	if strings.TrimSpace(requestID) != "" {
		fields["request_id"] = requestID
	}
	return fields
}

func receiveCount(msg sqstypes.Message) int {
	if msg.Attributes == nil {
		return 0
	}
	raw := msg.Attributes[string(sqstypes.MessageSystemAttributeNameApproximateReceiveCount)]
	if raw == "" {
		return 0
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return parsed
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return def
	}
	return val
}
