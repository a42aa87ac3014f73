package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(t *testing.T, workflow *mockWorkflow) *echo.Echo {
	t.Helper()

	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "router_test_total", Help: "test"})
	registry.MustRegister(counter)
	counter.Inc()

	machine := services.NewMachine(services.DefaultTransitionTable(), discard())
	e, err := NewRouter(NewServer(workflow, new(mockReader), machine), registry, discard())
	require.NoError(t, err)
	return e
}

func serve(e *echo.Echo, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Health(t *testing.T) {
	rec := serve(newTestRouter(t, new(mockWorkflow)), http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestRouter_Metrics(t *testing.T) {
	rec := serve(newTestRouter(t, new(mockWorkflow)), http.MethodGet, "/metrics", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "router_test_total 1")
}

func TestRouter_RoutesTransitionRequests(t *testing.T) {
	workflow := new(mockWorkflow)
	workflow.On("step", "Ship", mock.Anything, orderID(t, 12)).Return(services.TransitionResult{
		Type:    services.Accepted,
		State:   order.Shipped,
		OrderID: orderID(t, 12),
	}, nil)

	rec := serve(newTestRouter(t, workflow), http.MethodPost, "/api/v1/orders/12/ship", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":12,"status":"SHIPPED","result":"ACCEPTED"}`, rec.Body.String())
}

func TestRouter_RejectsNonNumericOrderID(t *testing.T) {
	workflow := new(mockWorkflow)

	rec := serve(newTestRouter(t, workflow), http.MethodPost, "/api/v1/orders/abc/pay", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	workflow.AssertNotCalled(t, "step", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_RejectsOverlongIdempotencyKey(t *testing.T) {
	workflow := new(mockWorkflow)

	rec := serve(newTestRouter(t, workflow), http.MethodPost, "/api/v1/orders",
		map[string]string{"Idempotency-Key": strings.Repeat("k", 129)})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	workflow.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRouter_UnknownEventPathIsNotFound(t *testing.T) {
	rec := serve(newTestRouter(t, new(mockWorkflow)), http.MethodPost, "/api/v1/orders/1/refund", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
