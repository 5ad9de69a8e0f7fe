package queries

import (
	"context"
	"database/sql"
	"errors"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCartQueryHandler retrieves the cart view from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart view queries.
// Requires a GORM database connection for query execution.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the cart view query.
// Lines whose product has been soft-deleted from the catalog are omitted
// from the view; they will also fail checkout until removed.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	response := GetCartQueryResponse{
		Items: make([]GetCartQueryItem, 0),
		Total: kernel.ZeroMoney(),
	}

	var rawCartID uuid.UUID
	err := h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM carts
		WHERE customer_id = ?
	`, query.CustomerID().Bytes()).Row().Scan(&rawCartID)
	if errors.Is(err, sql.ErrNoRows) {
		return response, nil
	}
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	cartID, err := kernel.UUIDFromBytes(rawCartID[:])
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	response.CartID = &cartID

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.product_id,
			i.quantity,
			p.name,
			p.price,
			p.image_url
		FROM cart_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.cart_id = ? AND p.deleted_at IS NULL
		ORDER BY i.position
	`, rawCartID).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	total := kernel.ZeroMoney()

	for rows.Next() {
		var item GetCartQueryItem
		var itemID, productID uuid.UUID
		var price decimal.Decimal

		err = rows.Scan(
			&itemID,
			&productID,
			&item.Quantity,
			&item.ProductName,
			&price,
			&item.ImageURL,
		)
		if err != nil {
			return GetCartQueryResponse{}, err
		}

		if item.ItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return GetCartQueryResponse{}, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return GetCartQueryResponse{}, err
		}
		if item.UnitPrice, err = kernel.NewMoney(price); err != nil {
			return GetCartQueryResponse{}, err
		}

		item.Subtotal = item.UnitPrice.MulInt(item.Quantity).Round()
		total = total.Add(item.Subtotal)

		response.Items = append(response.Items, item)
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	response.Total = total.Round()
	return response, nil
}
