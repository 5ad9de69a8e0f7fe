package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetStalePendingOrdersQueryIsNotConstructed = errors.New(
	"GetStalePendingOrdersQuery must be created via NewGetStalePendingOrdersQuery constructor",
)

// GetStalePendingOrdersQuery finds orders still pending after the cutoff.
// The reminder job uses it to surface orders nobody has started preparing.
type GetStalePendingOrdersQuery struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewGetStalePendingOrdersQuery creates a query for pending orders created
// before the cutoff instant.
func NewGetStalePendingOrdersQuery(cutoff time.Time) (GetStalePendingOrdersQuery, error) {
	if cutoff.IsZero() {
		return GetStalePendingOrdersQuery{}, errs.NewValueIsRequiredError("cutoff")
	}

	return GetStalePendingOrdersQuery{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStalePendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStalePendingOrdersQueryIsNotConstructed)
}

// Cutoff returns the staleness boundary.
func (q GetStalePendingOrdersQuery) Cutoff() time.Time {
	return q.cutoff
}

// GetStalePendingOrdersQueryResponse identifies one stale pending order.
type GetStalePendingOrdersQueryResponse struct {
	ID        kernel.UUID
	CreatedAt time.Time
}
