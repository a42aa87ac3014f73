package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/generated/servers"
	"orderflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockWorkflow struct {
	mock.Mock
}

func (m *mockWorkflow) Create(ctx context.Context, key string) (services.TransitionResult, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(services.TransitionResult), args.Error(1)
}

func (m *mockWorkflow) step(name string, ctx context.Context, id kernel.OrderID) (services.TransitionResult, error) {
	args := m.Called(name, ctx, id)
	return args.Get(0).(services.TransitionResult), args.Error(1)
}

func (m *mockWorkflow) Pay(ctx context.Context, id kernel.OrderID) (services.TransitionResult, error) {
	return m.step("Pay", ctx, id)
}

func (m *mockWorkflow) Ship(ctx context.Context, id kernel.OrderID) (services.TransitionResult, error) {
	return m.step("Ship", ctx, id)
}

func (m *mockWorkflow) Deliver(ctx context.Context, id kernel.OrderID) (services.TransitionResult, error) {
	return m.step("Deliver", ctx, id)
}

func (m *mockWorkflow) Complete(ctx context.Context, id kernel.OrderID) (services.TransitionResult, error) {
	return m.step("Complete", ctx, id)
}

func (m *mockWorkflow) Cancel(ctx context.Context, id kernel.OrderID) (services.TransitionResult, error) {
	return m.step("Cancel", ctx, id)
}

type mockReader struct {
	mock.Mock
}

func (m *mockReader) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderQueryResponse), args.Error(1)
}

func orderID(t *testing.T, v int64) kernel.OrderID {
	t.Helper()
	id, err := kernel.NewOrderID(v)
	require.NoError(t, err)
	return id
}

func newContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateOrder_Created(t *testing.T) {
	workflow := new(mockWorkflow)
	workflow.On("Create", mock.Anything, "").Return(services.TransitionResult{
		Type:    services.Accepted,
		Event:   order.Create,
		From:    order.Created,
		State:   order.Created,
		OrderID: orderID(t, 1),
	}, nil)
	server := NewServer(workflow, new(mockReader), services.NewMachine(services.DefaultTransitionTable(), discard()))
	ctx, rec := newContext(http.MethodPost, "/api/v1/orders")

	require.NoError(t, server.CreateOrder(ctx, servers.CreateOrderParams{}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var body servers.Transition
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, servers.Transition{Id: 1, Status: servers.CREATED, Result: servers.ACCEPTED}, body)
}

func TestCreateOrder_PassesIdempotencyKey(t *testing.T) {
	workflow := new(mockWorkflow)
	workflow.On("Create", mock.Anything, "abc").Return(services.TransitionResult{
		Type:    services.Accepted,
		State:   order.Created,
		OrderID: orderID(t, 3),
	}, nil)
	server := NewServer(workflow, new(mockReader), nil)
	ctx, rec := newContext(http.MethodPost, "/api/v1/orders")
	key := "abc"

	require.NoError(t, server.CreateOrder(ctx, servers.CreateOrderParams{IdempotencyKey: &key}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	workflow.AssertExpectations(t)
}

func TestCreateOrder_DuplicateKeyIsConflict(t *testing.T) {
	workflow := new(mockWorkflow)
	workflow.On("Create", mock.Anything, "abc").Return(services.TransitionResult{},
		&commands.DuplicateRequestError{Key: "abc", OrderID: orderID(t, 9)})
	server := NewServer(workflow, new(mockReader), nil)
	ctx, rec := newContext(http.MethodPost, "/api/v1/orders")
	key := "abc"

	require.NoError(t, server.CreateOrder(ctx, servers.CreateOrderParams{IdempotencyKey: &key}))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "already created order 9")
}

func TestCreateOrder_InvalidKeyIsBadRequest(t *testing.T) {
	workflow := new(mockWorkflow)
	workflow.On("Create", mock.Anything, mock.Anything).Return(services.TransitionResult{},
		errs.NewValueIsInvalidError("idempotencyKey"))
	server := NewServer(workflow, new(mockReader), nil)
	ctx, rec := newContext(http.MethodPost, "/api/v1/orders")

	require.NoError(t, server.CreateOrder(ctx, servers.CreateOrderParams{}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrder_PersistenceFailureIsInternalError(t *testing.T) {
	workflow := new(mockWorkflow)
	workflow.On("Create", mock.Anything, "").Return(services.TransitionResult{}, errors.New("connection reset"))
	server := NewServer(workflow, new(mockReader), nil)
	ctx, rec := newContext(http.MethodPost, "/api/v1/orders")

	require.NoError(t, server.CreateOrder(ctx, servers.CreateOrderParams{}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to create order", decodeError(t, rec).Message)
}

func TestAdvance_Accepted(t *testing.T) {
	tests := []struct {
		name   string
		call   func(s *Server, ctx echo.Context) error
		target order.State
	}{
		{"Pay", func(s *Server, c echo.Context) error { return s.PayOrder(c, 5) }, order.Paid},
		{"Ship", func(s *Server, c echo.Context) error { return s.ShipOrder(c, 5) }, order.Shipped},
		{"Deliver", func(s *Server, c echo.Context) error { return s.DeliverOrder(c, 5) }, order.Delivered},
		{"Complete", func(s *Server, c echo.Context) error { return s.CompleteOrder(c, 5) }, order.Completed},
		{"Cancel", func(s *Server, c echo.Context) error { return s.CancelOrder(c, 5) }, order.Cancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workflow := new(mockWorkflow)
			workflow.On("step", tt.name, mock.Anything, orderID(t, 5)).Return(services.TransitionResult{
				Type:    services.Accepted,
				State:   tt.target,
				OrderID: orderID(t, 5),
			}, nil)
			server := NewServer(workflow, new(mockReader), nil)
			ctx, rec := newContext(http.MethodPost, "/")

			require.NoError(t, tt.call(server, ctx))

			assert.Equal(t, http.StatusOK, rec.Code)
			var body servers.Transition
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, int64(5), body.Id)
			assert.Equal(t, servers.OrderStatus(tt.target.String()), body.Status)
			assert.Equal(t, servers.ACCEPTED, body.Result)
			workflow.AssertExpectations(t)
		})
	}
}

func TestAdvance_DeniedIsConflict(t *testing.T) {
	workflow := new(mockWorkflow)
	workflow.On("step", "Ship", mock.Anything, orderID(t, 2)).Return(services.TransitionResult{
		Type:    services.Denied,
		Event:   order.Ship,
		From:    order.Cancelled,
		State:   order.Cancelled,
		OrderID: orderID(t, 2),
	}, nil)
	server := NewServer(workflow, new(mockReader), nil)
	ctx, rec := newContext(http.MethodPost, "/")

	require.NoError(t, server.ShipOrder(ctx, 2))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Transition denied for event: SHIP in state: CANCELLED", decodeError(t, rec).Message)
}

func TestAdvance_UnknownOrderIsNotFound(t *testing.T) {
	workflow := new(mockWorkflow)
	workflow.On("step", "Pay", mock.Anything, orderID(t, 99)).Return(services.TransitionResult{},
		errs.NewObjectNotFoundError("order", "99"))
	server := NewServer(workflow, new(mockReader), nil)
	ctx, rec := newContext(http.MethodPost, "/")

	require.NoError(t, server.PayOrder(ctx, 99))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdvance_PersistenceFailureIsInternalError(t *testing.T) {
	workflow := new(mockWorkflow)
	workflow.On("step", "Deliver", mock.Anything, orderID(t, 4)).Return(services.TransitionResult{},
		errors.New("commit transaction: connection reset"))
	server := NewServer(workflow, new(mockReader), nil)
	ctx, rec := newContext(http.MethodPost, "/")

	require.NoError(t, server.DeliverOrder(ctx, 4))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAdvance_NonPositiveIDIsBadRequest(t *testing.T) {
	workflow := new(mockWorkflow)
	server := NewServer(workflow, new(mockReader), nil)
	ctx, rec := newContext(http.MethodPost, "/")

	require.NoError(t, server.CompleteOrder(ctx, 0))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	workflow.AssertNotCalled(t, "step", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetOrder_ReturnsStatusAndAvailableEvents(t *testing.T) {
	reader := new(mockReader)
	reader.On("Handle", mock.Anything, mock.Anything).Return(queries.GetOrderQueryResponse{
		ID:     orderID(t, 8),
		Status: order.Shipped,
	}, nil)
	machine := services.NewMachine(services.DefaultTransitionTable(), discard())
	server := NewServer(new(mockWorkflow), reader, machine)
	ctx, rec := newContext(http.MethodGet, "/")

	require.NoError(t, server.GetOrder(ctx, 8))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body servers.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(8), body.Id)
	assert.Equal(t, servers.SHIPPED, body.Status)
	assert.ElementsMatch(t, []servers.OrderEvent{servers.DELIVER, servers.CANCEL}, body.AvailableEvents)
}

func TestGetOrder_TerminalStateHasNoEvents(t *testing.T) {
	reader := new(mockReader)
	reader.On("Handle", mock.Anything, mock.Anything).Return(queries.GetOrderQueryResponse{
		ID:     orderID(t, 8),
		Status: order.Completed,
	}, nil)
	machine := services.NewMachine(services.DefaultTransitionTable(), discard())
	server := NewServer(new(mockWorkflow), reader, machine)
	ctx, rec := newContext(http.MethodGet, "/")

	require.NoError(t, server.GetOrder(ctx, 8))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":8,"status":"COMPLETED","availableEvents":[]}`, rec.Body.String())
}

func TestGetOrder_NotFound(t *testing.T) {
	reader := new(mockReader)
	reader.On("Handle", mock.Anything, mock.Anything).Return(queries.GetOrderQueryResponse{},
		errs.NewObjectNotFoundError("order", "8"))
	server := NewServer(new(mockWorkflow), reader, nil)
	ctx, rec := newContext(http.MethodGet, "/")

	require.NoError(t, server.GetOrder(ctx, 8))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
