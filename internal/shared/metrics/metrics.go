package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector exported by the service.
var Registry = prometheus.NewRegistry()

var (
	factory = promauto.With(Registry)

	httpRequestsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: []float64{0.005, 0.025, 0.1, 0.25, 0.5, 1, 2, 5},
	}, []string{"method", "route"})

	uploadsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "resume_uploads_total",
		Help: "Résumé uploads by outcome.",
	}, []string{"outcome"})

	parsesTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "resume_parses_total",
		Help: "Résumé parses by parser mode and outcome.",
	}, []string{"mode", "outcome"})

	matchScore = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "keyword_match_score",
		Help:    "Distribution of keyword match scores.",
		Buckets: prometheus.LinearBuckets(0, 10, 11),
	})

	analysesTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "analyses_total",
		Help: "Completed analyses by resolved job profile.",
	}, []string{"job_id"})

	chatResponsesTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_responses_total",
		Help: "Chat replies by advice category.",
	}, []string{"category"})

	eventsPublishedTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "events_published_total",
		Help: "Domain events handed to the broker by type and outcome.",
	}, []string{"type", "outcome"})

	eventsConsumedTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "events_consumed_total",
		Help: "Domain events drained by the worker by type and outcome.",
	}, []string{"type", "outcome"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, route string, status int, latency time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(latency.Seconds())
}

// IncUpload counts an upload attempt ("ok", "rejected", "parse_error", "error").
func IncUpload(outcome string) {
	uploadsTotal.WithLabelValues(outcome).Inc()
}

// IncParse counts a parser invocation.
func IncParse(mode, outcome string) {
	parsesTotal.WithLabelValues(mode, outcome).Inc()
}

// ObserveMatchScore records a computed keyword match score.
func ObserveMatchScore(score int) {
	matchScore.Observe(float64(score))
}

// IncAnalysis counts a completed analysis.
func IncAnalysis(jobID string) {
	analysesTotal.WithLabelValues(jobID).Inc()
}

// IncChatResponse counts a chat reply for the classified category.
func IncChatResponse(category string) {
	chatResponsesTotal.WithLabelValues(category).Inc()
}

// IncEvent counts a publish attempt.
func IncEvent(eventType, outcome string) {
	eventsPublishedTotal.WithLabelValues(eventType, outcome).Inc()
}

// IncEventConsumed counts an event handled by the worker.
func IncEventConsumed(eventType, outcome string) {
	eventsConsumedTotal.WithLabelValues(eventType, outcome).Inc()
}

// HTTPHandler exposes metrics in Prometheus text format.
func HTTPHandler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}

// Handler is HTTPHandler for gin routers.
func Handler() gin.HandlerFunc {
	return gin.WrapH(HTTPHandler())
}
