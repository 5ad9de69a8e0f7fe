// Package catalogrepo provides read access to the product catalog.
// The storefront only consumes catalog data; product management happens in a
// separate admin surface writing to the same table.
package catalogrepo

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductDTO represents a catalog product row. Products are soft-deleted:
// a populated DeletedAt hides the product from every storefront read while
// keeping historical order lines resolvable by humans.
type ProductDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name     string          `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2)"`
	ImageURL string
	Deleted  gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// toDomain converts a database DTO to a product snapshot.
func toDomain(dto ProductDTO) (product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return product.Product{}, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return product.Product{}, err
	}

	return product.NewProduct(id, dto.Name, price, dto.ImageURL)
}
