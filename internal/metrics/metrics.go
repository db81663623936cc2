// Package metrics exposes Prometheus instrumentation for the ledger server.
package metrics

import (
	"context"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "splitz_ledger"

// Metrics holds the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	rpcDuration     *prometheus.HistogramVec
	rpcErrors       *prometheus.CounterVec
	balanceRuns     *prometheus.CounterVec
	simplifiedDebts prometheus.Histogram
	skippedGroups   prometheus.Counter
	eventsPublished *prometheus.CounterVec
}

// New registers the ledger collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		rpcDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "Duration of unary RPCs by procedure and result code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure", "code"}),
		rpcErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_errors_total",
			Help:      "Failed unary RPCs by procedure and code.",
		}, []string{"procedure", "code"}),
		balanceRuns: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "balance_computations_total",
			Help:      "Balance computations by scope (group or user).",
		}, []string{"scope"}),
		simplifiedDebts: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "simplified_debts",
			Help:      "Number of transfers produced per group debt simplification.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21, 34},
		}),
		skippedGroups: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "user_balance_skipped_groups_total",
			Help:      "Groups left out of cross-group balances because they no longer exist.",
		}),
		eventsPublished: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Ledger events handed to the broker by type and result.",
		}, []string{"type", "result"}),
	}
}

// Interceptor records duration and failures of every unary RPC.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if m == nil {
				return next(ctx, req)
			}
			start := time.Now()
			resp, err := next(ctx, req)

			procedure := req.Spec().Procedure
			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
				m.rpcErrors.WithLabelValues(procedure, code).Inc()
			}
			m.rpcDuration.WithLabelValues(procedure, code).Observe(time.Since(start).Seconds())
			return resp, err
		}
	}
}

// ObserveGroupBalances records one group balance computation.
func (m *Metrics) ObserveGroupBalances(debts int) {
	if m == nil {
		return
	}
	m.balanceRuns.WithLabelValues("group").Inc()
	m.simplifiedDebts.Observe(float64(debts))
}

// ObserveUserBalances records one cross-group computation.
func (m *Metrics) ObserveUserBalances(skipped int) {
	if m == nil {
		return
	}
	m.balanceRuns.WithLabelValues("user").Inc()
	m.skippedGroups.Add(float64(skipped))
}

// ObserveEvent records the outcome of publishing one event.
func (m *Metrics) ObserveEvent(eventType string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.eventsPublished.WithLabelValues(eventType, result).Inc()
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
