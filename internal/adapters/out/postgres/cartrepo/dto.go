// Package cartrepo provides data transfer objects and mapping functions for cart persistence.
// This package implements the repository pattern for the cart domain aggregate, handling
// the conversion between domain entities and database representations.
package cartrepo

import (
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartDTO represents the database structure for persisting cart aggregates.
// Each customer has at most one cart row, enforced by the unique index.
type CartDTO struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID     `gorm:"type:uuid;uniqueIndex"`
	Items      []CartItemDTO `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO represents one cart line in the database. Position records
// the line's place within the cart so reads preserve insertion order.
type CartItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CartID    uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Quantity  int
	Position  int
}

// TableName specifies the database table name for cart line entities.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts a cart domain aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) CartDTO {
	items := make([]CartItemDTO, 0, len(aggregate.Items()))
	for idx, item := range aggregate.Items() {
		items = append(items, CartItemDTO{
			ID:        item.ID().Bytes(),
			CartID:    aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			Position:  idx,
		})
	}

	return CartDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Items:      items,
	}
}

// toDomain converts a database DTO to a cart domain aggregate.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*cart.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := cart.RestoreItem(itemID, productID, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return cart.RestoreCart(id, customerID, items)
}
