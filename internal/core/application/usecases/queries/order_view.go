package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderView is the order read model shared by the order queries. Destination
// columns mirror the storage layout: a reference order has AddressID set, a
// guest order has the inline address fields set.
type OrderView struct {
	ID         kernel.UUID
	CustomerID *kernel.UUID
	Status     string
	Total      kernel.Money
	CreatedAt  time.Time

	AddressID  *kernel.UUID
	Street     *string
	Number     *string
	District   *string
	Complement *string

	CustomerName  string
	Phone         string
	PaymentMethod *string
	ChangeFor     *kernel.Money

	Lines []OrderLineView
}

// OrderLineView is one order line with its price snapshot and the product
// name for display. The name comes from the catalog row even when the
// product has since been soft-deleted; historical orders stay readable.
type OrderLineView struct {
	LineID      kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   kernel.Money
}

const orderViewSelect = `
	SELECT
		id,
		customer_id,
		address_id,
		street,
		number,
		district,
		complement,
		customer_name,
		phone,
		payment_method,
		change_for,
		status,
		total,
		created_at
	FROM orders
`

// loadOrderViews runs the shared order select with the given suffix (WHERE
// and ORDER BY clauses) and hydrates each order's lines.
func loadOrderViews(ctx context.Context, db *gorm.DB, suffix string, args ...any) ([]OrderView, error) {
	views := make([]OrderView, 0)

	rows, err := db.WithContext(ctx).Raw(orderViewSelect+suffix, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		view, scanErr := scanOrderView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range views {
		if views[i].Lines, err = loadOrderLines(ctx, db, views[i].ID); err != nil {
			return nil, err
		}
	}

	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderView(row rowScanner) (OrderView, error) {
	var view OrderView
	var id uuid.UUID
	var customerID, addressID uuid.NullUUID
	var paymentMethod *string
	var changeFor decimal.NullDecimal
	var total decimal.Decimal

	err := row.Scan(
		&id,
		&customerID,
		&addressID,
		&view.Street,
		&view.Number,
		&view.District,
		&view.Complement,
		&view.CustomerName,
		&view.Phone,
		&paymentMethod,
		&changeFor,
		&view.Status,
		&total,
		&view.CreatedAt,
	)
	if err != nil {
		return OrderView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderView{}, err
	}
	if customerID.Valid {
		converted, convErr := kernel.UUIDFromBytes(customerID.UUID[:])
		if convErr != nil {
			return OrderView{}, convErr
		}
		view.CustomerID = &converted
	}
	if addressID.Valid {
		converted, convErr := kernel.UUIDFromBytes(addressID.UUID[:])
		if convErr != nil {
			return OrderView{}, convErr
		}
		view.AddressID = &converted
	}
	view.PaymentMethod = paymentMethod
	if changeFor.Valid {
		amount, moneyErr := kernel.NewMoney(changeFor.Decimal)
		if moneyErr != nil {
			return OrderView{}, moneyErr
		}
		view.ChangeFor = &amount
	}
	if view.Total, err = kernel.NewMoney(total); err != nil {
		return OrderView{}, err
	}

	return view, nil
}

func loadOrderLines(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]OrderLineView, error) {
	lines := make([]OrderLineView, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.product_id,
			l.quantity,
			l.unit_price,
			COALESCE(p.name, '')
		FROM order_lines l
		LEFT JOIN products p ON p.id = l.product_id
		WHERE l.order_id = ?
		ORDER BY l.id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderLineView
		var lineID, productID uuid.UUID
		var unitPrice decimal.Decimal

		err = rows.Scan(
			&lineID,
			&productID,
			&line.Quantity,
			&unitPrice,
			&line.ProductName,
		)
		if err != nil {
			return nil, err
		}

		if line.LineID, err = kernel.UUIDFromBytes(lineID[:]); err != nil {
			return nil, err
		}
		if line.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if line.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
