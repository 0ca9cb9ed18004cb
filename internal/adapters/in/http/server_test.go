package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	api "ordermanagement/internal/adapters/in/http"
	"ordermanagement/internal/adapters/out/memory"
	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/keylock"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type uowFactory func() commands.UoW

func (f uowFactory) Create() commands.UoW { return f() }

type courierUoWFactory func() commands.CourierUoW

func (f courierUoWFactory) Create() commands.CourierUoW { return f() }

type directoryUoWFactory func() commands.DirectoryUoW

func (f directoryUoWFactory) Create() commands.DirectoryUoW { return f() }

type notificationUoWFactory func() commands.NotificationUoW

func (f notificationUoWFactory) Create() commands.NotificationUoW { return f() }

type repositoriesFactory func() queries.Repositories

func (f repositoriesFactory) Create() queries.Repositories { return f() }

type ServerTestSuite struct {
	suite.Suite

	e *echo.Echo
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	store := memory.NewUnitOfWorkFactory(memory.NewStore())
	clock := ports.ClockFunc(func() time.Time { return time.Now().UTC() })
	locks := keylock.New()

	uows := uowFactory(func() commands.UoW { return store.Create() })
	repos := repositoriesFactory(func() queries.Repositories { return store.Create() })
	directory := directoryUoWFactory(func() commands.DirectoryUoW { return store.Create() })

	handlers := api.Handlers{
		CreateCustomer: commands.NewCreateCustomerCommandHandler(directory, clock),
		CreateSeller:   commands.NewCreateSellerCommandHandler(directory, clock),
		CreateCourier: commands.NewCreateCourierCommandHandler(
			courierUoWFactory(func() commands.CourierUoW { return store.Create() }), clock),

		CreateOrder:    commands.NewCreateOrderCommandHandler(uows, clock),
		ReviewOrder:    commands.NewReviewOrderCommandHandler(uows, locks, clock),
		AssembleOrder:  commands.NewAssembleOrderCommandHandler(uows, locks, clock),
		SearchCourier:  commands.NewSearchCourierCommandHandler(uows, locks, clock),
		AcceptDelivery: commands.NewCourierAcceptDeliveryCommandHandler(uows, locks),
		CourierArrived: commands.NewCourierArrivedCommandHandler(uows, locks, clock),

		MarkNotificationRead: commands.NewMarkNotificationReadCommandHandler(
			notificationUoWFactory(func() commands.NotificationUoW { return store.Create() })),

		GetCustomer:       queries.NewGetCustomerQueryHandler(repos),
		GetSeller:         queries.NewGetSellerQueryHandler(repos),
		GetCourier:        queries.NewGetCourierQueryHandler(repos),
		GetAllCouriers:    queries.NewGetAllCouriersQueryHandler(repos),
		GetOrder:          queries.NewGetOrderQueryHandler(repos),
		ListOrders:        queries.NewListOrdersQueryHandler(repos),
		ListNotifications: queries.NewListNotificationsQueryHandler(repos),
	}

	server := api.NewServer(handlers, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.e = echo.New()
	s.e.HTTPErrorHandler = server.HTTPErrorHandler
	server.Register(s.e)
}

func (s *ServerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) decode(rec *httptest.ResponseRecorder, dst any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}

func (s *ServerTestSuite) expectError(rec *httptest.ResponseRecorder, code int) api.Error {
	s.Require().Equal(code, rec.Code, rec.Body.String())
	var e api.Error
	s.decode(rec, &e)
	s.Equal(code, e.Code)
	s.NotEmpty(e.Message)
	return e
}

func (s *ServerTestSuite) createParties() (customerID, sellerID uuid.UUID) {
	rec := s.do(http.MethodPost, "/api/customers", api.NewCustomer{Name: "Jane", Email: "jane@example.com"})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var c api.Customer
	s.decode(rec, &c)

	rec = s.do(http.MethodPost, "/api/sellers", api.NewSeller{Name: "Luigi's", Address: "1 Main St"})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var sl api.Seller
	s.decode(rec, &sl)

	return c.ID, sl.ID
}

func (s *ServerTestSuite) createCourier(name string) api.Courier {
	rec := s.do(http.MethodPost, "/api/couriers", api.NewCourier{Name: name, Phone: "555-0101"})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var c api.Courier
	s.decode(rec, &c)
	return c
}

func (s *ServerTestSuite) createOrder(customerID, sellerID uuid.UUID) api.Order {
	body := map[string]any{
		"customerId": customerID,
		"sellerId":   sellerID,
		"items": []map[string]any{
			{"productName": "pizza", "quantity": 2, "price": "10.00"},
			{"productName": "cola", "quantity": 1, "price": 2.5},
		},
	}
	rec := s.do(http.MethodPost, "/api/orders", body)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var o api.Order
	s.decode(rec, &o)
	return o
}

func (s *ServerTestSuite) post(path string, body any, dst any) {
	rec := s.do(http.MethodPost, path, body)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	if dst != nil {
		s.decode(rec, dst)
	}
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"UP"}`, rec.Body.String())
}

func (s *ServerTestSuite) TestDeliveryLifecycle() {
	customerID, sellerID := s.createParties()
	courier := s.createCourier("Bob")
	s.True(courier.Available)

	created := s.createOrder(customerID, sellerID)
	s.Equal("IN_PROCESSING", created.Status)
	s.Equal("22.50", created.TotalPrice)
	s.Len(created.Items, 2)
	s.NotNil(created.SellerNotifiedAt)
	base := "/api/orders/" + created.ID.String()

	var o api.Order
	s.post(base+"/review", api.ReviewOrder{CanFulfill: true}, &o)
	s.Equal("COOKING", o.Status)

	s.post(base+"/assemble", nil, &o)
	s.Equal("ASSEMBLING", o.Status)

	s.post(base+"/search-courier", nil, &o)
	s.Equal("AWAITING_COURIER", o.Status)
	s.Require().NotNil(o.CourierID)
	s.Equal(courier.ID, *o.CourierID)

	rec := s.do(http.MethodGet, "/api/couriers?available=true", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var available []api.Courier
	s.decode(rec, &available)
	s.Empty(available)

	courierPath := base + "/courier/" + courier.ID.String()
	s.post(courierPath+"/accept", nil, &o)
	s.Equal("AWAITING_COURIER", o.Status)

	s.post(courierPath+"/arrived", nil, &o)
	s.Equal("IN_DELIVERY", o.Status)
	s.NotNil(o.CourierArrivedAt)

	rec = s.do(http.MethodGet, "/api/couriers/"+courier.ID.String(), nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var released api.Courier
	s.decode(rec, &released)
	s.True(released.Available)

	rec = s.do(http.MethodGet, "/api/notifications/customer/"+customerID.String(), nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var inbox []api.Notification
	s.decode(rec, &inbox)
	s.Len(inbox, 4)
	s.Equal("CUSTOMER", inbox[0].RecipientType)

	rec = s.do(http.MethodGet, "/api/notifications/courier/"+courier.ID.String(), nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var courierInbox []api.Notification
	s.decode(rec, &courierInbox)
	s.Require().Len(courierInbox, 1)
	s.Contains(courierInbox[0].Message, "1 Main St")
}

func (s *ServerTestSuite) TestRejectOrder() {
	customerID, sellerID := s.createParties()
	created := s.createOrder(customerID, sellerID)

	var o api.Order
	s.post("/api/orders/"+created.ID.String()+"/review", api.ReviewOrder{CanFulfill: false, CancelReason: "out of dough"}, &o)
	s.Equal("CANCELLED", o.Status)
	s.Equal("out of dough", o.CancelReason)
	s.NotNil(o.CancelledAt)

	rec := s.do(http.MethodPost, "/api/orders/"+created.ID.String()+"/assemble", nil)
	s.expectError(rec, http.StatusConflict)
}

func (s *ServerTestSuite) TestSearchWithoutCouriersKeepsSearching() {
	customerID, sellerID := s.createParties()
	created := s.createOrder(customerID, sellerID)
	base := "/api/orders/" + created.ID.String()

	s.post(base+"/review", api.ReviewOrder{CanFulfill: true}, nil)
	s.post(base+"/assemble", nil, nil)

	var o api.Order
	s.post(base+"/search-courier", nil, &o)
	s.Equal("SEARCHING_COURIER", o.Status)
	s.Nil(o.CourierID)

	courier := s.createCourier("Ann")
	s.post(base+"/search-courier", nil, &o)
	s.Equal("AWAITING_COURIER", o.Status)
	s.Equal(courier.ID, *o.CourierID)
}

func (s *ServerTestSuite) TestWrongCourierIsConflict() {
	customerID, sellerID := s.createParties()
	s.createCourier("Bob")
	created := s.createOrder(customerID, sellerID)
	base := "/api/orders/" + created.ID.String()

	s.post(base+"/review", api.ReviewOrder{CanFulfill: true}, nil)
	s.post(base+"/assemble", nil, nil)
	s.post(base+"/search-courier", nil, nil)

	rec := s.do(http.MethodPost, base+"/courier/"+uuid.NewString()+"/arrived", nil)
	s.expectError(rec, http.StatusConflict)
	rec = s.do(http.MethodPost, base+"/courier/"+uuid.NewString()+"/accept", nil)
	s.expectError(rec, http.StatusConflict)
}

func (s *ServerTestSuite) TestListOrders() {
	customerID, sellerID := s.createParties()
	first := s.createOrder(customerID, sellerID)
	second := s.createOrder(customerID, sellerID)
	s.post("/api/orders/"+second.ID.String()+"/review", api.ReviewOrder{CanFulfill: true}, nil)

	list := func(path string) []api.Order {
		rec := s.do(http.MethodGet, path, nil)
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		var orders []api.Order
		s.decode(rec, &orders)
		return orders
	}

	s.Len(list("/api/orders"), 2)
	s.Len(list("/api/orders/customer/"+customerID.String()), 2)
	s.Len(list("/api/orders/seller/"+sellerID.String()), 2)
	s.Empty(list("/api/orders/courier/" + uuid.NewString()))

	processing := list("/api/orders/status/in_processing")
	s.Require().Len(processing, 1)
	s.Equal(first.ID, processing[0].ID)

	cooking := list("/api/orders?status=COOKING&customerId=" + customerID.String())
	s.Require().Len(cooking, 1)
	s.Equal(second.ID, cooking[0].ID)

	s.expectError(s.do(http.MethodGet, "/api/orders/status/LOST", nil), http.StatusBadRequest)
	s.expectError(s.do(http.MethodGet, "/api/orders?sellerId=nope", nil), http.StatusBadRequest)
}

func (s *ServerTestSuite) TestNotificationsReadFlow() {
	customerID, sellerID := s.createParties()
	created := s.createOrder(customerID, sellerID)

	path := "/api/notifications/seller/" + sellerID.String()
	rec := s.do(http.MethodGet, path+"/unread", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var unread []api.Notification
	s.decode(rec, &unread)
	s.Require().Len(unread, 1)
	s.Equal(created.ID, unread[0].OrderID)
	s.Contains(unread[0].Message, "Jane")

	for range 2 {
		rec = s.do(http.MethodPost, "/api/notifications/"+unread[0].ID.String()+"/read", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	}

	rec = s.do(http.MethodGet, path+"/unread", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &unread)
	s.Empty(unread)

	rec = s.do(http.MethodGet, path, nil)
	var all []api.Notification
	s.decode(rec, &all)
	s.Require().Len(all, 1)
	s.True(all[0].IsRead)

	s.expectError(s.do(http.MethodPost, "/api/notifications/"+uuid.NewString()+"/read", nil), http.StatusNotFound)
	s.expectError(s.do(http.MethodGet, "/api/notifications/admin/"+sellerID.String(), nil), http.StatusBadRequest)
}

func (s *ServerTestSuite) TestValidationAndLookupErrors() {
	customerID, sellerID := s.createParties()

	s.expectError(s.do(http.MethodGet, "/api/orders/"+uuid.NewString(), nil), http.StatusNotFound)
	s.expectError(s.do(http.MethodGet, "/api/orders/not-a-uuid", nil), http.StatusBadRequest)
	s.expectError(s.do(http.MethodGet, "/api/customers/"+uuid.NewString(), nil), http.StatusNotFound)
	s.expectError(s.do(http.MethodGet, "/api/sellers/"+uuid.NewString(), nil), http.StatusNotFound)
	s.expectError(s.do(http.MethodGet, "/api/couriers?available=maybe", nil), http.StatusBadRequest)
	s.expectError(s.do(http.MethodPost, "/api/couriers", api.NewCourier{}), http.StatusBadRequest)

	noItems := map[string]any{"customerId": customerID, "sellerId": sellerID, "items": []any{}}
	s.expectError(s.do(http.MethodPost, "/api/orders", noItems), http.StatusBadRequest)

	badPrice := map[string]any{
		"customerId": customerID,
		"sellerId":   sellerID,
		"items":      []map[string]any{{"productName": "tea", "quantity": 1, "price": "1.005"}},
	}
	s.expectError(s.do(http.MethodPost, "/api/orders", badPrice), http.StatusBadRequest)

	unknownSeller := map[string]any{
		"customerId": customerID,
		"sellerId":   uuid.New(),
		"items":      []map[string]any{{"productName": "tea", "quantity": 1, "price": "1.00"}},
	}
	s.expectError(s.do(http.MethodPost, "/api/orders", unknownSeller), http.StatusNotFound)

	s.expectError(s.do(http.MethodGet, "/api/nowhere", nil), http.StatusNotFound)
}
