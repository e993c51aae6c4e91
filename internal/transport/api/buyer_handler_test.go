package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/logger"
	"github.com/fsdevblog/groph-market/internal/service"
	"github.com/fsdevblog/groph-market/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-market/internal/transport/api/testutils"
	"github.com/fsdevblog/groph-market/internal/transport/api/tokens"
)

type BuyerHandlerTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	router           *gin.Engine
	mockOrderService *mocks.MockOrderServicer
	mockUserService  *mocks.MockUserServicer
	mockStoreService *mocks.MockStoreServicer
	jwtSecret        []byte
	jwtToken         string
}

func TestBuyerHandlerSuite(t *testing.T) {
	suite.Run(t, new(BuyerHandlerTestSuite))
}

func (s *BuyerHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockOrderService = mocks.NewMockOrderServicer(s.mockCtrl)
	s.mockUserService = mocks.NewMockUserServicer(s.mockCtrl)
	s.mockStoreService = mocks.NewMockStoreServicer(s.mockCtrl)
	s.jwtSecret = []byte("super secret key")

	token, tokenErr := tokens.GenerateUserJWT("buyer-1", time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)
	s.jwtToken = token

	s.router = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		UserService:  s.mockUserService,
		StoreService: s.mockStoreService,
		OrderService: s.mockOrderService,
		JWTSecretKey: s.jwtSecret,
	})
}

func (s *BuyerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *BuyerHandlerTestSuite) makeAuthorized(url string, payload string) *http.Response {
	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    url,
		Body:   bytes.NewBufferString(payload),
	}, testutils.WithHeader("Authorization", "Bearer "+s.jwtToken))
	s.Require().NoError(err)
	return resp
}

func (s *BuyerHandlerTestSuite) decodeBody(resp *http.Response) map[string]any {
	var body map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func (s *BuyerHandlerTestSuite) TestNewOrder() {
	s.mockOrderService.EXPECT().
		NewOrder(gomock.Any(), "buyer-1", "store-1", []service.OrderItem{
			{BookID: "book-1", Count: 2},
			{BookID: "book-2", Count: 1},
		}).
		Return("buyer-1_store-1_uid", nil)

	resp := s.makeAuthorized(
		BuyerRouteGroup+NewOrderRoute,
		`{"user_id": "buyer-1", "store_id": "store-1", "books": [{"id": "book-1", "count": 2}, {"id": "book-2", "count": 1}]}`,
	)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, resp.StatusCode)
	body := s.decodeBody(resp)
	s.Equal("buyer-1_store-1_uid", body["order_id"])
}

func (s *BuyerHandlerTestSuite) TestNewOrderInsufficientStock() {
	s.mockOrderService.EXPECT().
		NewOrder(gomock.Any(), "buyer-1", "store-1", gomock.Any()).
		Return("buyer-1_store-1_uid", domain.NewInsufficientStockError("book-1"))

	resp := s.makeAuthorized(
		BuyerRouteGroup+NewOrderRoute,
		`{"user_id": "buyer-1", "store_id": "store-1", "books": [{"id": "book-1", "count": 100}]}`,
	)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusConflict, resp.StatusCode)
	// id неудавшегося заказа возвращается вместе с ошибкой.
	body := s.decodeBody(resp)
	s.Equal("buyer-1_store-1_uid", body["order_id"])
}

func (s *BuyerHandlerTestSuite) TestNewOrderWithoutToken() {
	s.mockOrderService.EXPECT().NewOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    BuyerRouteGroup + NewOrderRoute,
		Body:   bytes.NewBufferString(`{"user_id": "buyer-1", "store_id": "store-1", "books": [{"id": "book-1", "count": 1}]}`),
	})
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *BuyerHandlerTestSuite) TestPayment() {
	s.mockOrderService.EXPECT().
		Payment(gomock.Any(), "buyer-1", "secret", "order-1").
		Return(nil)

	resp := s.makeAuthorized(
		BuyerRouteGroup+PaymentRoute,
		`{"user_id": "buyer-1", "password": "secret", "order_id": "order-1"}`,
	)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *BuyerHandlerTestSuite) TestPaymentInsufficientFunds() {
	s.mockOrderService.EXPECT().
		Payment(gomock.Any(), "buyer-1", "secret", "order-1").
		Return(domain.ErrInsufficientFunds)

	resp := s.makeAuthorized(
		BuyerRouteGroup+PaymentRoute,
		`{"user_id": "buyer-1", "password": "secret", "order_id": "order-1"}`,
	)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusPaymentRequired, resp.StatusCode)
}

func (s *BuyerHandlerTestSuite) TestPaymentLostStatusRace() {
	s.mockOrderService.EXPECT().
		Payment(gomock.Any(), "buyer-1", "secret", "order-1").
		Return(domain.ErrInvalidOrderState)

	resp := s.makeAuthorized(
		BuyerRouteGroup+PaymentRoute,
		`{"user_id": "buyer-1", "password": "secret", "order_id": "order-1"}`,
	)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusConflict, resp.StatusCode)
}

func (s *BuyerHandlerTestSuite) TestAddFunds() {
	s.mockUserService.EXPECT().
		AddFunds(gomock.Any(), "buyer-1", "secret", int64(500)).
		Return(nil)

	resp := s.makeAuthorized(
		BuyerRouteGroup+AddFundsRoute,
		`{"user_id": "buyer-1", "password": "secret", "add_value": 500}`,
	)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *BuyerHandlerTestSuite) TestAddFundsNegativeValue() {
	s.mockUserService.EXPECT().AddFunds(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	resp := s.makeAuthorized(
		BuyerRouteGroup+AddFundsRoute,
		`{"user_id": "buyer-1", "password": "secret", "add_value": -1}`,
	)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *BuyerHandlerTestSuite) TestReceive() {
	s.mockOrderService.EXPECT().
		Receive(gomock.Any(), "buyer-1", "order-1").
		Return(nil)

	resp := s.makeAuthorized(
		BuyerRouteGroup+ReceiveRoute,
		`{"user_id": "buyer-1", "order_id": "order-1"}`,
	)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *BuyerHandlerTestSuite) TestQueryOrder() {
	view := domain.OrderView{
		OrderID:   "order-1",
		BuyerID:   "buyer-1",
		StoreID:   "store-1",
		Status:    domain.OrderStatusPending,
		CreatedAt: time.Now(),
		Books: []domain.OrderViewItem{
			{BookID: "book-1", Count: 2, Price: 100},
		},
		TotalPrice: 100,
	}

	s.mockOrderService.EXPECT().
		QueryOrder(gomock.Any(), "buyer-1", "order-1").
		Return(&view, nil)

	resp := s.makeAuthorized(
		BuyerRouteGroup+QueryOrderRoute,
		`{"user_id": "buyer-1", "order_id": "order-1"}`,
	)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, resp.StatusCode)
	body := s.decodeBody(resp)
	data, ok := body["data"].(map[string]any)
	s.Require().True(ok)
	s.Equal("order-1", data["order_id"])
	s.Equal("pending", data["status"])
	s.InDelta(100, data["total_price"], 0)
}

func (s *BuyerHandlerTestSuite) TestQueryOrderNotFound() {
	s.mockOrderService.EXPECT().
		QueryOrder(gomock.Any(), "buyer-1", "ghost").
		Return(nil, domain.ErrRecordNotFound)

	resp := s.makeAuthorized(
		BuyerRouteGroup+QueryOrderRoute,
		`{"user_id": "buyer-1", "order_id": "ghost"}`,
	)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *BuyerHandlerTestSuite) TestCancelOrder() {
	s.mockOrderService.EXPECT().
		Cancel(gomock.Any(), "buyer-1", "secret", "order-1").
		Return(nil)

	resp := s.makeAuthorized(
		BuyerRouteGroup+CancelOrderRoute,
		`{"user_id": "buyer-1", "password": "secret", "order_id": "order-1"}`,
	)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *BuyerHandlerTestSuite) TestSearchGlobal() {
	s.mockStoreService.EXPECT().
		Search(gomock.Any(), "golang", "", uint(1), uint(10)).
		Return([]domain.Book{{BookID: "book-1", StoreID: "store-1", Title: "Go"}}, nil)

	resp := s.makeAuthorized(
		BuyerRouteGroup+SearchGlobal,
		`{"keyword": "golang", "page": 1, "limit": 10}`,
	)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, resp.StatusCode)
	body := s.decodeBody(resp)
	data, ok := body["data"].([]any)
	s.Require().True(ok)
	s.Len(data, 1)
}

func (s *BuyerHandlerTestSuite) TestSearchInStore() {
	s.mockStoreService.EXPECT().
		Search(gomock.Any(), "golang", "store-1", uint(1), uint(10)).
		Return([]domain.Book{}, nil)

	resp := s.makeAuthorized(
		BuyerRouteGroup+SearchInStore,
		`{"keyword": "golang", "store_id": "store-1", "page": 1, "limit": 10}`,
	)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *BuyerHandlerTestSuite) TestSearchInStoreWithoutStoreID() {
	s.mockStoreService.EXPECT().
		Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	resp := s.makeAuthorized(
		BuyerRouteGroup+SearchInStore,
		`{"keyword": "golang"}`,
	)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}
