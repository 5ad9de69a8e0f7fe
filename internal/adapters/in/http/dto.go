package http

import (
	"time"

	"storefront/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON error body for all failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddCartItemRequest is the body of POST /api/v1/cart/items.
type AddCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest is the body of PATCH /api/v1/cart/items/:itemId.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse is the cart view returned by every cart endpoint.
type CartResponse struct {
	CartID *string            `json:"cartId"`
	Items  []CartItemResponse `json:"items"`
	Total  string             `json:"total"`
}

// CartItemResponse is one cart line with live catalog data.
type CartItemResponse struct {
	ItemID      string `json:"itemId"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	ImageURL    string `json:"imageUrl,omitempty"`
	UnitPrice   string `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
	Subtotal    string `json:"subtotal"`
}

// CheckoutRequest is the body of POST /api/v1/checkout.
type CheckoutRequest struct {
	AddressID string `json:"addressId"`
}

// GuestCheckoutRequest is the body of POST /api/v1/checkout/guest.
type GuestCheckoutRequest struct {
	Address      GuestAddressRequest `json:"address"`
	CustomerName string              `json:"customerName"`
	Phone        string              `json:"phone"`
	Payment      GuestPaymentRequest `json:"payment"`
	Items        []OrderItemRequest  `json:"items"`
}

// GuestAddressRequest carries the inline delivery address of a guest order.
type GuestAddressRequest struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	District   string `json:"district"`
	Complement string `json:"complement,omitempty"`
}

// GuestPaymentRequest carries the declared payment details of a guest order.
// ChangeFor is only meaningful for cash payments.
type GuestPaymentRequest struct {
	Method    string  `json:"method"`
	ChangeFor *string `json:"changeFor,omitempty"`
}

// OrderItemRequest is one product reference plus quantity.
type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CheckoutResponse returns the identifier of the created order.
type CheckoutResponse struct {
	OrderID string `json:"orderId"`
}

// ChangeOrderStatusRequest is the body of PATCH /api/v1/orders/:orderId/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderRequest is the body of PUT /api/v1/orders/:orderId.
// Absent fields leave the order unchanged.
type UpdateOrderRequest struct {
	CustomerID *string            `json:"customerId,omitempty"`
	AddressID  *string            `json:"addressId,omitempty"`
	Status     *string            `json:"status,omitempty"`
	Items      []OrderItemRequest `json:"items,omitempty"`
}

// OrderResponse is the order view returned by the order read endpoints.
type OrderResponse struct {
	OrderID      string                `json:"orderId"`
	CustomerID   *string               `json:"customerId,omitempty"`
	Status       string                `json:"status"`
	Total        string                `json:"total"`
	CreatedAt    time.Time             `json:"createdAt"`
	AddressID    *string               `json:"addressId,omitempty"`
	Address      *GuestAddressRequest  `json:"address,omitempty"`
	CustomerName string                `json:"customerName,omitempty"`
	Phone        string                `json:"phone,omitempty"`
	Payment      *GuestPaymentRequest  `json:"payment,omitempty"`
	Items        []OrderLineResponse   `json:"items"`
}

// OrderLineResponse is one order line with its price snapshot.
type OrderLineResponse struct {
	LineID      string `json:"lineId"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
}

func cartResponseFromView(view queries.GetCartQueryResponse) CartResponse {
	response := CartResponse{
		Items: make([]CartItemResponse, 0, len(view.Items)),
		Total: view.Total.String(),
	}

	if view.CartID != nil {
		id := view.CartID.String()
		response.CartID = &id
	}

	for _, item := range view.Items {
		response.Items = append(response.Items, CartItemResponse{
			ItemID:      item.ItemID.String(),
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			ImageURL:    item.ImageURL,
			UnitPrice:   item.UnitPrice.String(),
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal.String(),
		})
	}

	return response
}

func orderResponseFromView(view queries.OrderView) OrderResponse {
	response := OrderResponse{
		OrderID:      view.ID.String(),
		Status:       view.Status,
		Total:        view.Total.String(),
		CreatedAt:    view.CreatedAt,
		CustomerName: view.CustomerName,
		Phone:        view.Phone,
		Items:        make([]OrderLineResponse, 0, len(view.Lines)),
	}

	if view.CustomerID != nil {
		id := view.CustomerID.String()
		response.CustomerID = &id
	}

	if view.AddressID != nil {
		id := view.AddressID.String()
		response.AddressID = &id
	} else if view.Street != nil {
		address := GuestAddressRequest{Street: *view.Street}
		if view.Number != nil {
			address.Number = *view.Number
		}
		if view.District != nil {
			address.District = *view.District
		}
		if view.Complement != nil {
			address.Complement = *view.Complement
		}
		response.Address = &address
	}

	if view.PaymentMethod != nil {
		payment := GuestPaymentRequest{Method: *view.PaymentMethod}
		if view.ChangeFor != nil {
			amount := view.ChangeFor.String()
			payment.ChangeFor = &amount
		}
		response.Payment = &payment
	}

	for _, line := range view.Lines {
		response.Items = append(response.Items, OrderLineResponse{
			LineID:      line.LineID.String(),
			ProductID:   line.ProductID.String(),
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice.String(),
		})
	}

	return response
}
