package http

import (
	"context"
	"errors"
	"net/http"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/generated/servers"
	"orderflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// OrderWorkflow is the write side the server drives, one call per endpoint.
type OrderWorkflow interface {
	Create(ctx context.Context, idempotencyKey string) (services.TransitionResult, error)
	Pay(ctx context.Context, id kernel.OrderID) (services.TransitionResult, error)
	Ship(ctx context.Context, id kernel.OrderID) (services.TransitionResult, error)
	Deliver(ctx context.Context, id kernel.OrderID) (services.TransitionResult, error)
	Complete(ctx context.Context, id kernel.OrderID) (services.TransitionResult, error)
	Cancel(ctx context.Context, id kernel.OrderID) (services.TransitionResult, error)
}

// OrderReader loads the read model for GET requests.
type OrderReader interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
}

// EventCatalog lists the events that have a rule for a state.
type EventCatalog interface {
	AvailableEvents(state order.State) []order.Event
}

// Server implements servers.ServerInterface on top of the order workflow.
type Server struct {
	workflow OrderWorkflow
	reader   OrderReader
	catalog  EventCatalog
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(workflow OrderWorkflow, reader OrderReader, catalog EventCatalog) *Server {
	return &Server{
		workflow: workflow,
		reader:   reader,
		catalog:  catalog,
	}
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
//
//	@Summary	Create an order
//	@ID			CreateOrder
//	@Tags		orders
//	@Produce	json
//	@Param		Idempotency-Key	header	string	false	"Repeating a request with the same key does not create a second order."
//	@Success	201	{object}	servers.Transition
//	@Failure	400	{object}	servers.Error
//	@Failure	409	{object}	servers.Error
//	@Failure	500	{object}	servers.Error
//	@Router		/api/v1/orders [post]
func (s *Server) CreateOrder(ctx echo.Context, params servers.CreateOrderParams) error {
	var key string
	if params.IdempotencyKey != nil {
		key = *params.IdempotencyKey
	}

	result, err := s.workflow.Create(ctx.Request().Context(), key)
	if err != nil {
		var duplicate *commands.DuplicateRequestError
		switch {
		case errors.As(err, &duplicate):
			return errorJSON(ctx, http.StatusConflict, duplicate.Error())
		case errors.Is(err, errs.ErrValueIsInvalid):
			return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
		default:
			return errorJSON(ctx, http.StatusInternalServerError, "Failed to create order")
		}
	}

	if !result.IsAccepted() {
		return errorJSON(ctx, http.StatusConflict, result.DenialMessage())
	}

	return ctx.JSON(http.StatusCreated, toTransition(result))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
//
//	@Summary	Get an order
//	@ID			GetOrder
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path	int	true	""	minimum(1)	format(int64)
//	@Success	200	{object}	servers.Order
//	@Failure	400	{object}	servers.Error
//	@Failure	404	{object}	servers.Error
//	@Failure	500	{object}	servers.Error
//	@Router		/api/v1/orders/{orderId} [get]
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := kernel.NewOrderID(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	found, err := s.reader.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorJSON(ctx, http.StatusNotFound, err.Error())
		}
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve order")
	}

	available := s.catalog.AvailableEvents(found.Status)
	events := make([]servers.OrderEvent, len(available))
	for i, event := range available {
		events[i] = servers.OrderEvent(event.String())
	}

	return ctx.JSON(http.StatusOK, servers.Order{
		Id:              found.ID.Int64(),
		Status:          servers.OrderStatus(found.Status.String()),
		AvailableEvents: events,
	})
}

// PayOrder handles POST /api/v1/orders/{orderId}/pay.
//
//	@Summary	Pay for a delivered order
//	@ID			PayOrder
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path	int	true	""	minimum(1)	format(int64)
//	@Success	200	{object}	servers.Transition
//	@Failure	404	{object}	servers.Error
//	@Failure	409	{object}	servers.Error
//	@Router		/api/v1/orders/{orderId}/pay [post]
func (s *Server) PayOrder(ctx echo.Context, orderID servers.OrderId) error {
	return s.advance(ctx, orderID, s.workflow.Pay)
}

// ShipOrder handles POST /api/v1/orders/{orderId}/ship.
//
//	@Summary	Ship a created order
//	@ID			ShipOrder
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path	int	true	""	minimum(1)	format(int64)
//	@Success	200	{object}	servers.Transition
//	@Failure	404	{object}	servers.Error
//	@Failure	409	{object}	servers.Error
//	@Router		/api/v1/orders/{orderId}/ship [post]
func (s *Server) ShipOrder(ctx echo.Context, orderID servers.OrderId) error {
	return s.advance(ctx, orderID, s.workflow.Ship)
}

// DeliverOrder handles POST /api/v1/orders/{orderId}/deliver.
//
//	@Summary	Deliver a shipped order
//	@ID			DeliverOrder
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path	int	true	""	minimum(1)	format(int64)
//	@Success	200	{object}	servers.Transition
//	@Failure	404	{object}	servers.Error
//	@Failure	409	{object}	servers.Error
//	@Router		/api/v1/orders/{orderId}/deliver [post]
func (s *Server) DeliverOrder(ctx echo.Context, orderID servers.OrderId) error {
	return s.advance(ctx, orderID, s.workflow.Deliver)
}

// CompleteOrder handles POST /api/v1/orders/{orderId}/complete.
//
//	@Summary	Complete a paid order
//	@ID			CompleteOrder
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path	int	true	""	minimum(1)	format(int64)
//	@Success	200	{object}	servers.Transition
//	@Failure	404	{object}	servers.Error
//	@Failure	409	{object}	servers.Error
//	@Router		/api/v1/orders/{orderId}/complete [post]
func (s *Server) CompleteOrder(ctx echo.Context, orderID servers.OrderId) error {
	return s.advance(ctx, orderID, s.workflow.Complete)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
//
//	@Summary	Cancel an order that has not been delivered
//	@ID			CancelOrder
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path	int	true	""	minimum(1)	format(int64)
//	@Success	200	{object}	servers.Transition
//	@Failure	404	{object}	servers.Error
//	@Failure	409	{object}	servers.Error
//	@Router		/api/v1/orders/{orderId}/cancel [post]
func (s *Server) CancelOrder(ctx echo.Context, orderID servers.OrderId) error {
	return s.advance(ctx, orderID, s.workflow.Cancel)
}

type workflowStep func(ctx context.Context, id kernel.OrderID) (services.TransitionResult, error)

func (s *Server) advance(ctx echo.Context, orderID servers.OrderId, step workflowStep) error {
	id, err := kernel.NewOrderID(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	result, err := step(ctx.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorJSON(ctx, http.StatusNotFound, err.Error())
		}
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to update order")
	}

	if !result.IsAccepted() {
		return errorJSON(ctx, http.StatusConflict, result.DenialMessage())
	}

	return ctx.JSON(http.StatusOK, toTransition(result))
}

func toTransition(result services.TransitionResult) servers.Transition {
	return servers.Transition{
		Id:     result.OrderID.Int64(),
		Status: servers.OrderStatus(result.State.String()),
		Result: servers.TransitionResult(result.Type.String()),
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: message,
	})
}
