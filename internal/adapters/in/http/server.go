// Package http exposes the storefront over a JSON REST API.
// Customer identity travels in the X-Customer-ID header; the storefront
// gateway is expected to authenticate the caller and inject it.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// orderStreamer upgrades a request to a live order event subscription.
type orderStreamer interface {
	Subscribe(c echo.Context) error
}

// Server wires the use case handlers to echo routes.
type Server struct {
	addCartItemHandler       commands.AddCartItemCommandHandler
	updateCartItemHandler    commands.UpdateCartItemCommandHandler
	removeCartItemHandler    commands.RemoveCartItemCommandHandler
	clearCartHandler         commands.ClearCartCommandHandler
	checkoutHandler          commands.CheckoutCommandHandler
	checkoutGuestHandler     commands.CheckoutGuestCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	updateOrderHandler       commands.UpdateOrderCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	getCartHandler             queries.GetCartQueryHandler
	getOrderHandler            queries.GetOrderQueryHandler
	getAllOrdersHandler        queries.GetAllOrdersQueryHandler
	getOrdersByCustomerHandler queries.GetOrdersByCustomerQueryHandler

	streamer orderStreamer
}

// NewServer creates a Server over the given handlers.
func NewServer(
	addCartItemHandler commands.AddCartItemCommandHandler,
	updateCartItemHandler commands.UpdateCartItemCommandHandler,
	removeCartItemHandler commands.RemoveCartItemCommandHandler,
	clearCartHandler commands.ClearCartCommandHandler,
	checkoutHandler commands.CheckoutCommandHandler,
	checkoutGuestHandler commands.CheckoutGuestCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getCartHandler queries.GetCartQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrdersByCustomerHandler queries.GetOrdersByCustomerQueryHandler,
	streamer orderStreamer,
) *Server {
	return &Server{
		addCartItemHandler:         addCartItemHandler,
		updateCartItemHandler:      updateCartItemHandler,
		removeCartItemHandler:      removeCartItemHandler,
		clearCartHandler:           clearCartHandler,
		checkoutHandler:            checkoutHandler,
		checkoutGuestHandler:       checkoutGuestHandler,
		changeOrderStatusHandler:   changeOrderStatusHandler,
		updateOrderHandler:         updateOrderHandler,
		deleteOrderHandler:         deleteOrderHandler,
		getCartHandler:             getCartHandler,
		getOrderHandler:            getOrderHandler,
		getAllOrdersHandler:        getAllOrdersHandler,
		getOrdersByCustomerHandler: getOrdersByCustomerHandler,
		streamer:                   streamer,
	}
}

// RegisterRoutes attaches all storefront routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddCartItem)
	api.PATCH("/cart/items/:itemId", s.UpdateCartItem)
	api.DELETE("/cart/items/:itemId", s.RemoveCartItem)
	api.DELETE("/cart", s.ClearCart)

	api.POST("/checkout", s.Checkout)
	api.POST("/checkout/guest", s.CheckoutGuest)

	api.GET("/orders", s.GetAllOrders)
	api.GET("/orders/mine", s.GetMyOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PATCH("/orders/:orderId/status", s.ChangeOrderStatus)
	api.PUT("/orders/:orderId", s.UpdateOrder)
	api.DELETE("/orders/:orderId", s.DeleteOrder)

	e.GET("/ws/orders", s.streamer.Subscribe)
}

// GetCart returns the caller's cart, or an empty view when none exists yet.
func (s *Server) GetCart(c echo.Context) error {
	customerID, err := customerIdentity(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err)
	}

	return s.respondWithCart(c, customerID)
}

// AddCartItem adds a product to the caller's cart, creating the cart on the
// first item, and returns the refreshed cart view.
func (s *Server) AddCartItem(c echo.Context) error {
	customerID, err := customerIdentity(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err)
	}

	var request AddCartItemRequest
	if err = c.Bind(&request); err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	productID, err := kernel.UUIDFromString(request.ProductID)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewAddCartItemCommand(customerID, productID, request.Quantity)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	if err = s.addCartItemHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondDomainError(c, err)
	}

	return s.respondWithCart(c, customerID)
}

// UpdateCartItem sets the quantity of one cart line and returns the
// refreshed cart view.
func (s *Server) UpdateCartItem(c echo.Context) error {
	customerID, err := customerIdentity(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err)
	}

	itemID, err := kernel.UUIDFromString(c.Param("itemId"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	var request UpdateCartItemRequest
	if err = c.Bind(&request); err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewUpdateCartItemCommand(customerID, itemID, request.Quantity)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	if err = s.updateCartItemHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondDomainError(c, err)
	}

	return s.respondWithCart(c, customerID)
}

// RemoveCartItem deletes one cart line and returns the refreshed cart view.
func (s *Server) RemoveCartItem(c echo.Context) error {
	customerID, err := customerIdentity(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err)
	}

	itemID, err := kernel.UUIDFromString(c.Param("itemId"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewRemoveCartItemCommand(customerID, itemID)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	if err = s.removeCartItemHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondDomainError(c, err)
	}

	return s.respondWithCart(c, customerID)
}

// ClearCart empties the caller's cart. Clearing an absent cart succeeds.
func (s *Server) ClearCart(c echo.Context) error {
	customerID, err := customerIdentity(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err)
	}

	cmd, err := commands.NewClearCartCommand(customerID)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	if err = s.clearCartHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondDomainError(c, err)
	}

	return s.respondWithCart(c, customerID)
}

// Checkout converts the caller's cart into an order and returns the new
// order id.
func (s *Server) Checkout(c echo.Context) error {
	customerID, err := customerIdentity(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err)
	}

	var request CheckoutRequest
	if err = c.Bind(&request); err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	addressID, err := kernel.UUIDFromString(request.AddressID)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(orderID, customerID, addressID)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	if err = s.checkoutHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(http.StatusCreated, CheckoutResponse{OrderID: orderID.String()})
}

// CheckoutGuest places an order without a customer account. The address,
// contact details and items all come from the request body.
func (s *Server) CheckoutGuest(c echo.Context) error {
	var request GuestCheckoutRequest
	if err := c.Bind(&request); err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	address, err := order.NewAddressSnapshot(
		request.Address.Street,
		request.Address.Number,
		request.Address.District,
		request.Address.Complement,
	)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	payment, err := paymentFromRequest(request.Payment)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	items, err := checkoutItemsFromRequest(request.Items)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutGuestCommand(
		orderID, address, request.CustomerName, request.Phone, payment, items)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	if err = s.checkoutGuestHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(http.StatusCreated, CheckoutResponse{OrderID: orderID.String()})
}

// GetAllOrders lists every order, newest first.
func (s *Server) GetAllOrders(c echo.Context) error {
	views, err := s.getAllOrdersHandler.Handle(c.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponsesFromViews(views))
}

// GetMyOrders lists the caller's orders, newest first.
func (s *Server) GetMyOrders(c echo.Context) error {
	customerID, err := customerIdentity(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err)
	}

	query, err := queries.NewGetOrdersByCustomerQuery(customerID)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	views, err := s.getOrdersByCustomerHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponsesFromViews(views))
}

// GetOrder returns one order by id.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("orderId"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	view, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponseFromView(view))
}

// ChangeOrderStatus moves an order along its lifecycle.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("orderId"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	var request ChangeOrderStatusRequest
	if err = c.Bind(&request); err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	if err = s.changeOrderStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondDomainError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateOrder applies an administrative update. Replaced items are re-priced
// against the current catalog.
func (s *Server) UpdateOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("orderId"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	var request UpdateOrderRequest
	if err = c.Bind(&request); err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	var customerID *kernel.UUID
	if request.CustomerID != nil {
		id, err := kernel.UUIDFromString(*request.CustomerID)
		if err != nil {
			return respondError(c, http.StatusBadRequest, err)
		}
		customerID = &id
	}

	var addressID *kernel.UUID
	if request.AddressID != nil {
		id, err := kernel.UUIDFromString(*request.AddressID)
		if err != nil {
			return respondError(c, http.StatusBadRequest, err)
		}
		addressID = &id
	}

	var status *order.Status
	if request.Status != nil {
		parsed, err := order.StatusFromString(*request.Status)
		if err != nil {
			return respondError(c, http.StatusBadRequest, err)
		}
		status = &parsed
	}

	var items []commands.CheckoutItem
	if request.Items != nil {
		if items, err = checkoutItemsFromRequest(request.Items); err != nil {
			return respondError(c, http.StatusBadRequest, err)
		}
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, customerID, addressID, status, items)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	if err = s.updateOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondDomainError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteOrder removes an order. Deleting an absent order succeeds.
func (s *Server) DeleteOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("orderId"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	if err = s.deleteOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondDomainError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) respondWithCart(c echo.Context, customerID kernel.UUID) error {
	query, err := queries.NewGetCartQuery(customerID)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err)
	}

	view, err := s.getCartHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(http.StatusOK, cartResponseFromView(view))
}

func customerIdentity(c echo.Context) (kernel.UUID, error) {
	header := c.Request().Header.Get("X-Customer-ID")
	if header == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError("X-Customer-ID")
	}
	return kernel.UUIDFromString(header)
}

func paymentFromRequest(request GuestPaymentRequest) (order.Payment, error) {
	method, err := order.PaymentMethodFromString(request.Method)
	if err != nil {
		return order.Payment{}, err
	}

	var changeFor *kernel.Money
	if request.ChangeFor != nil {
		amount, err := kernel.MoneyFromString(*request.ChangeFor)
		if err != nil {
			return order.Payment{}, err
		}
		changeFor = &amount
	}

	return order.NewPayment(method, changeFor)
}

func checkoutItemsFromRequest(requests []OrderItemRequest) ([]commands.CheckoutItem, error) {
	items := make([]commands.CheckoutItem, 0, len(requests))
	for _, request := range requests {
		productID, err := kernel.UUIDFromString(request.ProductID)
		if err != nil {
			return nil, err
		}
		items = append(items, commands.CheckoutItem{ProductID: productID, Quantity: request.Quantity})
	}
	return items, nil
}

func orderResponsesFromViews(views []queries.OrderView) []OrderResponse {
	responses := make([]OrderResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, orderResponseFromView(view))
	}
	return responses
}

func respondDomainError(c echo.Context, err error) error {
	return respondError(c, domainErrorStatus(err), err)
}

// domainErrorStatus maps domain errors onto HTTP statuses. Ownership
// failures surface as not found, lifecycle violations as conflicts.
func domainErrorStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState), errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, commands.ErrQuantityIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c echo.Context, status int, err error) error {
	return c.JSON(status, ErrorResponse{Code: status, Message: err.Error()})
}
