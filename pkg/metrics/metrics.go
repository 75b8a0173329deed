package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Request outcome labels
const (
	StatusOK        = "ok"
	StatusError     = "error"
	StatusUnhandled = "unhandled"
)

var (
	SkillRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skill_requests_total",
		Help: "Skill requests dispatched, by handler and outcome",
	}, []string{"handler", "status"})

	LLMRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skill_llm_requests_total",
		Help: "Generation calls made for user queries, by outcome",
	}, []string{"status"})

	LLMLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "skill_llm_latency_seconds",
		Help:    "Latency of generation calls",
		Buckets: prometheus.DefBuckets,
	})
)

// ObserveRequest counts one dispatched request
func ObserveRequest(handler, status string) {
	SkillRequestsTotal.WithLabelValues(handler, status).Inc()
}

// ObserveLLMCall records the outcome and duration of one generation call
func ObserveLLMCall(started time.Time, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	LLMRequestsTotal.WithLabelValues(status).Inc()
	LLMLatency.Observe(time.Since(started).Seconds())
}

// Handler serves the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
