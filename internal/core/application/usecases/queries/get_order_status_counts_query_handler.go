package queries

import (
	"context"

	"orderflow/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatusCountsQueryHandler aggregates the orders table by status.
type GetOrderStatusCountsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatusCountsQueryHandler(db *gorm.DB) GetOrderStatusCountsQueryHandler {
	return GetOrderStatusCountsQueryHandler{db: db}
}

func (h GetOrderStatusCountsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusCountsQuery,
) (GetOrderStatusCountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := make(GetOrderStatusCountsQueryResponse, len(order.States()))
	for _, state := range order.States() {
		counts[state] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64

		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}

		state, parseErr := order.ParseState(status)
		if parseErr != nil {
			return nil, parseErr
		}
		counts[state] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
