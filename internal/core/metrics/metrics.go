package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Model call outcomes
const (
	OutcomeOK          = "ok"
	OutcomeEmpty       = "empty"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)

var (
	ModelCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resto",
			Subsystem: "llm",
			Name:      "calls_total",
			Help:      "Text-generation calls by model and outcome",
		},
		[]string{"model", "outcome"},
	)

	ModelLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "resto",
			Subsystem: "llm",
			Name:      "call_duration_seconds",
			Help:      "Text-generation call latency",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
		},
		[]string{"model"},
	)

	ChatReplies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resto",
			Subsystem: "chat",
			Name:      "replies_total",
			Help:      "Chat replies by the tier that produced them",
		},
		[]string{"tier"},
	)

	ChatFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resto",
			Subsystem: "chat",
			Name:      "failures_total",
			Help:      "Chat requests that ended in an error, by reason",
		},
		[]string{"reason"},
	)

	QuerySpecRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resto",
			Subsystem: "queryspec",
			Name:      "rejections_total",
			Help:      "Structured query attempts that fell through, by stage",
		},
		[]string{"stage"},
	)
)

// ObserveModelCall records one generation attempt.
func ObserveModelCall(model, outcome string, took time.Duration) {
	ModelCalls.WithLabelValues(model, outcome).Inc()
	ModelLatency.WithLabelValues(model).Observe(took.Seconds())
}

func CountReply(tier string) {
	ChatReplies.WithLabelValues(tier).Inc()
}

func CountFailure(reason string) {
	ChatFailures.WithLabelValues(reason).Inc()
}

func CountRejection(stage string) {
	QuerySpecRejections.WithLabelValues(stage).Inc()
}

// Handler exposes the default registry in the text exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
