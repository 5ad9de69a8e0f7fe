package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ProductCatalogReader resolves product ids against the external catalog.
// The core never mutates catalog data through this port.
type ProductCatalogReader interface {
	// Resolve returns a snapshot for every id that currently exists in the
	// catalog, keyed by id. Ids that do not exist (or are soft-deleted) are
	// simply absent from the result, giving callers a precise
	// exists/absent determination per id.
	Resolve(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]product.Product, error)
}
