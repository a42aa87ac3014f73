package commands_test

import (
	"context"
	"io"
	"log/slog"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, event ports.OrderStateChangedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockMetrics struct{ mock.Mock }

func (m *MockMetrics) ObserveTransition(event order.Event, result string) {
	m.Called(event, result)
}

func (m *MockMetrics) SetOrdersByStatus(counts map[order.State]int64) {
	m.Called(counts)
}

type MockIdempotencyStore struct{ mock.Mock }

func (m *MockIdempotencyStore) Reserve(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) Complete(ctx context.Context, key string, id kernel.OrderID) error {
	args := m.Called(ctx, key, id)
	return args.Error(0)
}

func (m *MockIdempotencyStore) Lookup(ctx context.Context, key string) (kernel.OrderID, bool, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(kernel.OrderID), args.Bool(1), args.Error(2)
}

func (m *MockIdempotencyStore) Release(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMachine() *services.Machine {
	return services.NewMachine(services.DefaultTransitionTable(), discardLogger())
}

func mustOrderID(value int64) kernel.OrderID {
	id, err := kernel.NewOrderID(value)
	if err != nil {
		panic(err)
	}
	return id
}

func mustRestore(id int64, state order.State) *order.Order {
	o, err := order.RestoreOrder(mustOrderID(id), state)
	if err != nil {
		panic(err)
	}
	return o
}

// assignID mimics the store: Add writes the generated id into the aggregate.
func assignID(id int64) func(mock.Arguments) {
	return func(args mock.Arguments) {
		o := args.Get(1).(*order.Order)
		if err := o.AssignID(mustOrderID(id)); err != nil {
			panic(err)
		}
	}
}
