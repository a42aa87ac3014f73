package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/guard"
)

var ErrGetOrderStatusCountsQueryIsNotConstructed = errors.New(
	"GetOrderStatusCountsQuery must be created via NewGetOrderStatusCountsQuery constructor",
)

// GetOrderStatusCountsQuery counts orders per lifecycle state.
//
// Example:
//
//	query := NewGetOrderStatusCountsQuery()
//	counts, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders waiting to ship\n", counts[order.Created])
type GetOrderStatusCountsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderStatusCountsQuery() GetOrderStatusCountsQuery {
	return GetOrderStatusCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusCountsQueryIsNotConstructed)
}

// GetOrderStatusCountsQueryResponse has an entry for every valid state,
// zero when no order is in it.
type GetOrderStatusCountsQueryResponse map[order.State]int64
