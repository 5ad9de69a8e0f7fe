package product

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct factory function.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a read-side snapshot of a catalog entry: the current price and
// display data for a product id at the moment the catalog was consulted.
// The catalog itself is owned by an external collaborator; this model never
// mutates it. Soft-deleted catalog entries are never materialized as
// Products, so holding a valid Product implies the entry existed (and was
// not deleted) at resolution time.
type Product struct {
	id       kernel.UUID
	name     string
	price    kernel.Money
	imageURL string

	guard guard.ConstructorGuard
}

// NewProduct creates a validated catalog snapshot.
// The id and price must be valid; the name must not be empty.
func NewProduct(id kernel.UUID, name string, price kernel.Money, imageURL string) (Product, error) {
	if err := id.Validate(); err != nil {
		return Product{}, err
	}
	if name == "" {
		return Product{}, errs.NewValueIsRequiredError("name")
	}
	if err := price.Validate(); err != nil {
		return Product{}, err
	}

	return Product{
		id:       id,
		name:     name,
		price:    price,
		imageURL: imageURL,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// ID returns the product's unique identifier.
func (p Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p Product) Name() string {
	return p.name
}

// Price returns the product's current catalog price.
func (p Product) Price() kernel.Money {
	return p.price
}

// ImageURL returns the product's image location, possibly empty.
func (p Product) ImageURL() string {
	return p.imageURL
}

// Validate ensures the Product was created via NewProduct.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}
