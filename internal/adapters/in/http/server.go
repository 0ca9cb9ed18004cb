package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/notification"
	"ordermanagement/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Handlers groups every use case the HTTP surface drives.
type Handlers struct {
	CreateCustomer commands.CreateCustomerCommandHandler
	CreateSeller   commands.CreateSellerCommandHandler
	CreateCourier  commands.CreateCourierCommandHandler

	CreateOrder    commands.CreateOrderCommandHandler
	ReviewOrder    commands.ReviewOrderCommandHandler
	AssembleOrder  commands.AssembleOrderCommandHandler
	SearchCourier  commands.SearchCourierCommandHandler
	AcceptDelivery commands.CourierAcceptDeliveryCommandHandler
	CourierArrived commands.CourierArrivedCommandHandler

	MarkNotificationRead commands.MarkNotificationReadCommandHandler

	GetCustomer       queries.GetCustomerQueryHandler
	GetSeller         queries.GetSellerQueryHandler
	GetCourier        queries.GetCourierQueryHandler
	GetAllCouriers    queries.GetAllCouriersQueryHandler
	GetOrder          queries.GetOrderQueryHandler
	ListOrders        queries.ListOrdersQueryHandler
	ListNotifications queries.ListNotificationsQueryHandler
}

type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{h: h, logger: logger.With("component", "http")}
}

// Register mounts all routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")

	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers/:id", s.GetCustomer)
	api.POST("/sellers", s.CreateSeller)
	api.GET("/sellers/:id", s.GetSeller)
	api.POST("/couriers", s.CreateCourier)
	api.GET("/couriers", s.GetCouriers)
	api.GET("/couriers/:id", s.GetCourier)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.GET("/orders/customer/:id", s.listOrdersBy("customer"))
	api.GET("/orders/seller/:id", s.listOrdersBy("seller"))
	api.GET("/orders/courier/:id", s.listOrdersBy("courier"))
	api.GET("/orders/status/:status", s.ListOrdersByStatus)
	api.POST("/orders/:orderId/review", s.ReviewOrder)
	api.POST("/orders/:orderId/assemble", s.AssembleOrder)
	api.POST("/orders/:orderId/search-courier", s.SearchCourier)
	api.POST("/orders/:orderId/courier/:courierId/accept", s.AcceptDelivery)
	api.POST("/orders/:orderId/courier/:courierId/arrived", s.CourierArrived)

	api.GET("/notifications/:recipientType/:recipientId", s.listNotifications(false))
	api.GET("/notifications/:recipientType/:recipientId/unread", s.listNotifications(true))
	api.POST("/notifications/:notificationId/read", s.MarkNotificationRead)
}

func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "UP"})
}

func pathID(c echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Param(name))
}

// Directory

func (s *Server) CreateCustomer(c echo.Context) error {
	var body NewCustomer
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(kernel.NewUUID(), body.Name, body.Email, body.Phone)
	if err != nil {
		return s.fail(c, err)
	}
	created, err := s.h.CreateCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toCustomer(queries.NewCustomerResponse(created)))
}

func (s *Server) GetCustomer(c echo.Context) error {
	query, err := s.directoryQuery(c)
	if err != nil {
		return s.fail(c, err)
	}
	res, err := s.h.GetCustomer.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toCustomer(res))
}

func (s *Server) CreateSeller(c echo.Context) error {
	var body NewSeller
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewCreateSellerCommand(kernel.NewUUID(), body.Name, body.Address)
	if err != nil {
		return s.fail(c, err)
	}
	created, err := s.h.CreateSeller.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toSeller(queries.NewSellerResponse(created)))
}

func (s *Server) GetSeller(c echo.Context) error {
	query, err := s.directoryQuery(c)
	if err != nil {
		return s.fail(c, err)
	}
	res, err := s.h.GetSeller.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toSeller(res))
}

func (s *Server) CreateCourier(c echo.Context) error {
	var body NewCourier
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewCreateCourierCommand(kernel.NewUUID(), body.Name, body.Phone)
	if err != nil {
		return s.fail(c, err)
	}
	created, err := s.h.CreateCourier.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toCourier(queries.NewCourierResponse(created)))
}

func (s *Server) GetCourier(c echo.Context) error {
	query, err := s.directoryQuery(c)
	if err != nil {
		return s.fail(c, err)
	}
	res, err := s.h.GetCourier.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toCourier(res))
}

func (s *Server) GetCouriers(c echo.Context) error {
	availableOnly := false
	if raw := c.QueryParam("available"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return badRequest(c, "available must be a boolean")
		}
		availableOnly = v
	}

	list, err := s.h.GetAllCouriers.Handle(c.Request().Context(), queries.NewGetAllCouriersQuery(availableOnly))
	if err != nil {
		return s.fail(c, err)
	}

	result := make([]Courier, 0, len(list))
	for _, item := range list {
		result = append(result, toCourier(item))
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) directoryQuery(c echo.Context) (queries.GetDirectoryEntryQuery, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return queries.GetDirectoryEntryQuery{}, err
	}
	return queries.NewGetDirectoryEntryQuery(id)
}

// Orders

func (s *Server) CreateOrder(c echo.Context) error {
	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	customerID, err := kernel.UUIDFromBytes(body.CustomerID[:])
	if err != nil {
		return badRequest(c, "customerId is required")
	}
	sellerID, err := kernel.UUIDFromBytes(body.SellerID[:])
	if err != nil {
		return badRequest(c, "sellerId is required")
	}

	lines := make([]commands.OrderLine, 0, len(body.Items))
	for _, it := range body.Items {
		lines = append(lines, commands.OrderLine{
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price.String(),
		})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customerID, sellerID, lines)
	if err != nil {
		return s.fail(c, err)
	}
	created, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toOrder(queries.NewOrderResponse(created)))
}

func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return s.fail(c, err)
	}
	return s.respondWithOrder(c, orderID)
}

func (s *Server) respondWithOrder(c echo.Context, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	res, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(res))
}

// ListOrders accepts the optional status, customerId, sellerId and courierId query parameters.
func (s *Server) ListOrders(c echo.Context) error {
	var params queries.ListOrdersQueryParams

	if raw := c.QueryParam("status"); raw != "" {
		st, err := order.ParseStatus(raw)
		if err != nil {
			return s.fail(c, err)
		}
		params.Status = &st
	}

	for name, dst := range map[string]**kernel.UUID{
		"customerId": &params.CustomerID,
		"sellerId":   &params.SellerID,
		"courierId":  &params.CourierID,
	} {
		raw := c.QueryParam(name)
		if raw == "" {
			continue
		}
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return s.fail(c, err)
		}
		*dst = &id
	}

	return s.listOrders(c, params)
}

func (s *Server) ListOrdersByStatus(c echo.Context) error {
	st, err := order.ParseStatus(c.Param("status"))
	if err != nil {
		return s.fail(c, err)
	}
	return s.listOrders(c, queries.ListOrdersQueryParams{Status: &st})
}

func (s *Server) listOrdersBy(party string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return s.fail(c, err)
		}

		var params queries.ListOrdersQueryParams
		switch party {
		case "customer":
			params.CustomerID = &id
		case "seller":
			params.SellerID = &id
		case "courier":
			params.CourierID = &id
		}
		return s.listOrders(c, params)
	}
}

func (s *Server) listOrders(c echo.Context, params queries.ListOrdersQueryParams) error {
	query, err := queries.NewListOrdersQuery(params)
	if err != nil {
		return s.fail(c, err)
	}
	list, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrders(list))
}

func (s *Server) ReviewOrder(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return s.fail(c, err)
	}
	var body ReviewOrder
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewReviewOrderCommand(orderID, body.CanFulfill, body.CancelReason)
	if err != nil {
		return s.fail(c, err)
	}
	updated, err := s.h.ReviewOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(updated)))
}

func (s *Server) AssembleOrder(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewAssembleOrderCommand(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	updated, err := s.h.AssembleOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(updated)))
}

// SearchCourier answers 200 whether or not a courier was found; the status tells which.
func (s *Server) SearchCourier(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewSearchCourierCommand(orderID)
	if err != nil {
		return s.fail(c, err)
	}
	updated, err := s.h.SearchCourier.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(updated)))
}

func (s *Server) courierOrderIDs(c echo.Context) (kernel.UUID, kernel.UUID, error) {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	courierID, err := pathID(c, "courierId")
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return orderID, courierID, nil
}

func (s *Server) AcceptDelivery(c echo.Context) error {
	orderID, courierID, err := s.courierOrderIDs(c)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewCourierAcceptDeliveryCommand(orderID, courierID)
	if err != nil {
		return s.fail(c, err)
	}
	if err := s.h.AcceptDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return s.respondWithOrder(c, orderID)
}

func (s *Server) CourierArrived(c echo.Context) error {
	orderID, courierID, err := s.courierOrderIDs(c)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewCourierArrivedCommand(orderID, courierID)
	if err != nil {
		return s.fail(c, err)
	}
	updated, err := s.h.CourierArrived.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(updated)))
}

// Notifications

func (s *Server) listNotifications(unreadOnly bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		rt, err := notification.ParseRecipientType(c.Param("recipientType"))
		if err != nil {
			return s.fail(c, err)
		}
		recipientID, err := pathID(c, "recipientId")
		if err != nil {
			return s.fail(c, err)
		}

		query, err := queries.NewListNotificationsQuery(rt, recipientID, unreadOnly)
		if err != nil {
			return s.fail(c, err)
		}
		list, err := s.h.ListNotifications.Handle(c.Request().Context(), query)
		if err != nil {
			return s.fail(c, err)
		}

		result := make([]Notification, 0, len(list))
		for _, n := range list {
			result = append(result, toNotification(n))
		}
		return c.JSON(http.StatusOK, result)
	}
}

func (s *Server) MarkNotificationRead(c echo.Context) error {
	id, err := pathID(c, "notificationId")
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewMarkNotificationReadCommand(id)
	if err != nil {
		return s.fail(c, err)
	}
	if err := s.h.MarkNotificationRead.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// HTTPErrorHandler renders echo's own errors (unknown route, wrong method) in the Error shape.
func (s *Server) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok {
			msg = m
		}
		_ = c.JSON(he.Code, Error{Code: he.Code, Message: msg})
		return
	}
	_ = s.fail(c, err)
}
