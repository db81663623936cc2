package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterceptor(t *testing.T) {
	m := New(prometheus.NewRegistry())

	ok := m.Interceptor()(func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
		return connect.NewResponse(&struct{}{}), nil
	})
	failing := m.Interceptor()(func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("group 9: not found"))
	})

	_, err := ok(context.Background(), connect.NewRequest(&struct{}{}))
	require.NoError(t, err)
	_, err = failing(context.Background(), connect.NewRequest(&struct{}{}))
	require.Error(t, err)
	_, err = failing(context.Background(), connect.NewRequest(&struct{}{}))
	require.Error(t, err)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.rpcErrors.WithLabelValues("", "not_found")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.rpcDuration))
}

func TestBalanceObservations(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveGroupBalances(2)
	m.ObserveGroupBalances(0)
	m.ObserveUserBalances(1)
	m.ObserveEvent("expense.created", nil)
	m.ObserveEvent("expense.created", errors.New("broker down"))

	assert.Equal(t, float64(2), testutil.ToFloat64(m.balanceRuns.WithLabelValues("group")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.balanceRuns.WithLabelValues("user")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.skippedGroups))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.eventsPublished.WithLabelValues("expense.created", "error")))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveGroupBalances(1)
		m.ObserveUserBalances(1)
		m.ObserveEvent("settlement.created", nil)
		_, _ = m.Interceptor()(func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
			return nil, nil
		})(context.Background(), connect.NewRequest(&struct{}{}))
	})
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.ObserveGroupBalances(3)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "splitz_ledger_balance_computations_total")
}
