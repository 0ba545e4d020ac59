// Package metrics exposes prometheus collectors for generation, strength
// checks and the HTTP transport.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "passgen"

// Outcome labels for PasswordsGenerated.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Registry holds every passgen collector plus the Go runtime collectors.
var Registry = prometheus.NewRegistry()

var (
	PasswordsGenerated = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "passwords_generated_total",
		Help:      "Password generation attempts by outcome.",
	}, []string{"outcome"})

	StrengthScores = promauto.With(Registry).NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "strength_score",
		Help:      "Heuristic scores returned by strength checks.",
		Buckets:   prometheus.LinearBuckets(0, 1, 6),
	})

	RateLimited = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_rate_limited_total",
		Help:      "Requests rejected by the per-client rate limiter.",
	})

	HTTPRequests = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method and status code.",
	}, []string{"method", "status"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// ObserveGeneration counts one generation attempt.
func ObserveGeneration(outcome string) {
	PasswordsGenerated.WithLabelValues(outcome).Inc()
}

// ObserveStrength records the score of one strength check.
func ObserveStrength(score int) {
	StrengthScores.Observe(float64(score))
}

// ObserveRequest counts one served HTTP request.
func ObserveRequest(method string, status int) {
	HTTPRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// Handler serves the registry in the prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}
