package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStalePendingOrdersQueryHandler retrieves pending orders older than a
// cutoff from the database.
type GetStalePendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStalePendingOrdersQueryHandler creates a handler for stale pending
// order queries. Requires a GORM database connection for query execution.
func NewGetStalePendingOrdersQueryHandler(db *gorm.DB) GetStalePendingOrdersQueryHandler {
	return GetStalePendingOrdersQueryHandler{db: db}
}

// Handle executes the query, returning stale pending orders oldest first.
func (h GetStalePendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStalePendingOrdersQuery,
) ([]GetStalePendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stale := make([]GetStalePendingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, created_at
		FROM orders
		WHERE status = ? AND created_at < ?
		ORDER BY created_at
	`, order.Pending.String(), query.Cutoff()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetStalePendingOrdersQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &response.CreatedAt); err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		stale = append(stale, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stale, nil
}
