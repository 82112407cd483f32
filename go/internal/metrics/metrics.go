// Package metrics exposes league engine counters to Prometheus.
package metrics

import (
	"context"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/mcdev12/leaguehub/go/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "leaguehub"

// PrometheusMetrics records code allocation, match transitions and RPC
// outcomes on its own registry.
type PrometheusMetrics struct {
	registry *prometheus.Registry

	codesGenerated   prometheus.Counter
	codeCollisions   prometheus.Counter
	codesExhausted   prometheus.Counter
	matchTransitions *prometheus.CounterVec
	rpcRequests      *prometheus.CounterVec
	rpcDuration      *prometheus.HistogramVec
}

// NewPrometheusMetrics creates and registers every collector. Go runtime and
// process collectors are included.
func NewPrometheusMetrics() *PrometheusMetrics {
	m := &PrometheusMetrics{
		registry: prometheus.NewRegistry(),
		codesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "league_code",
			Name:      "generated_total",
			Help:      "League code candidates generated.",
		}),
		codeCollisions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "league_code",
			Name:      "collisions_total",
			Help:      "Generated league codes that were already taken.",
		}),
		codesExhausted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "league_code",
			Name:      "exhausted_total",
			Help:      "Allocations that ran out of attempts.",
		}),
		matchTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "match",
			Name:      "transitions_total",
			Help:      "Match status changes by prior and new status.",
		}, []string{"from", "to"}),
		rpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "requests_total",
			Help:      "Handled RPCs by procedure and result code.",
		}, []string{"procedure", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "duration_seconds",
			Help:      "RPC handling latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.codesGenerated,
		m.codeCollisions,
		m.codesExhausted,
		m.matchTransitions,
		m.rpcRequests,
		m.rpcDuration,
	)
	return m
}

func (m *PrometheusMetrics) RecordCodeGenerated() { m.codesGenerated.Inc() }
func (m *PrometheusMetrics) RecordCodeCollision() { m.codeCollisions.Inc() }
func (m *PrometheusMetrics) RecordCodeExhausted() { m.codesExhausted.Inc() }

func (m *PrometheusMetrics) RecordMatchTransition(from, to models.MatchStatus) {
	m.matchTransitions.WithLabelValues(string(from), string(to)).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Interceptor counts and times every unary RPC handled by the server.
func (m *PrometheusMetrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if req.Spec().IsClient {
				return next(ctx, req)
			}

			start := time.Now()
			resp, err := next(ctx, req)
			procedure := req.Spec().Procedure

			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			m.rpcRequests.WithLabelValues(procedure, code).Inc()
			m.rpcDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			return resp, err
		}
	}
}
