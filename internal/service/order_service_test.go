package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/internal/service/mocks"
	"github.com/fsdevblog/groph-market/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-market/pkg/uow/mocks"
)

type OrderServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockUOW       *uowmocks.MockUOW
	mockTX        *uowmocks.MockTX
	mockOrderRepo *mocks.MockOrderRepository
	mockUserRepo  *mocks.MockUserRepository
	mockStoreRepo *mocks.MockStoreRepository
	mockBookRepo  *mocks.MockBookRepository
	mockPsswd     *mocks.MockPasswordHasher
	orderService  *OrderService
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockStoreRepo = mocks.NewMockStoreRepository(s.mockCtrl)
	s.mockBookRepo = mocks.NewMockBookRepository(s.mockCtrl)
	s.mockPsswd = mocks.NewMockPasswordHasher(s.mockCtrl)

	// Мок получения репозиториев из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.StoreRepoName)).
		Return(s.mockStoreRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.BookRepoName)).
		Return(s.mockBookRepo, nil).AnyTimes()

	orderService, servErr := NewOrderService(s.mockUOW, s.mockPsswd, nil)
	s.Require().NoError(servErr)
	s.orderService = orderService
}

func (s *OrderServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectDo прокидывает колбэк uow.Do в mockTX.
func (s *OrderServiceTestSuite) expectDo() {
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		})
}

func (s *OrderServiceTestSuite) expectTxRepo(name repoargs.RepositoryName, repo uow.Repository) {
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(name)).
		Return(repo, nil).
		AnyTimes()
}

func (s *OrderServiceTestSuite) TestNewOrder() {
	buyer := domain.User{UserID: "buyer-1", Balance: 1000}
	store := domain.Store{StoreID: "store-1", OwnerID: "seller-1"}
	book := domain.Book{BookID: "book-1", StoreID: "store-1", Price: 50, StockLevel: 10}

	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), "buyer-1").Return(&buyer, nil)
	s.mockStoreRepo.EXPECT().FindStoreByID(gomock.Any(), "store-1").Return(&store, nil)

	s.expectDo()
	s.expectTxRepo(repoargs.BookRepoName, s.mockBookRepo)
	s.expectTxRepo(repoargs.OrderRepoName, s.mockOrderRepo)

	s.mockBookRepo.EXPECT().FindBook(gomock.Any(), "store-1", "book-1").Return(&book, nil)
	s.mockBookRepo.EXPECT().DecrementStock(gomock.Any(), "store-1", "book-1", int64(3)).Return(true, nil)

	s.mockOrderRepo.EXPECT().
		BatchCreateLines(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, lines []repoargs.OrderLineCreate, fn repoargs.BatchExecQueryRow) {
			s.Require().Len(lines, 1)
			s.Equal("book-1", lines[0].BookID)
			s.Equal(int64(3), lines[0].Count)
			s.Equal(int64(150), lines[0].TotalPrice) // 50 * 3
			s.Equal(domain.OrderStatusPending, lines[0].Status)
			s.WithinDuration(lines[0].CreatedAt.Add(PaymentDeadlineTTL), lines[0].PaymentDeadline, time.Second)
			for i := range lines {
				fn(i, nil)
			}
		})

	orderID, err := s.orderService.NewOrder(context.Background(), "buyer-1", "store-1", []OrderItem{
		{BookID: "book-1", Count: 3},
	})
	s.Require().NoError(err)
	s.True(strings.HasPrefix(orderID, "buyer-1_store-1_"))
}

func (s *OrderServiceTestSuite) TestNewOrderInsufficientStock() {
	buyer := domain.User{UserID: "buyer-1"}
	store := domain.Store{StoreID: "store-1"}
	book := domain.Book{BookID: "book-1", StoreID: "store-1", Price: 50, StockLevel: 2}

	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), "buyer-1").Return(&buyer, nil)
	s.mockStoreRepo.EXPECT().FindStoreByID(gomock.Any(), "store-1").Return(&store, nil)

	s.expectDo()
	s.expectTxRepo(repoargs.BookRepoName, s.mockBookRepo)
	s.expectTxRepo(repoargs.OrderRepoName, s.mockOrderRepo)

	s.mockBookRepo.EXPECT().FindBook(gomock.Any(), "store-1", "book-1").Return(&book, nil)

	orderID, err := s.orderService.NewOrder(context.Background(), "buyer-1", "store-1", []OrderItem{
		{BookID: "book-1", Count: 3},
	})
	s.Require().Error(err)

	var stockErr *domain.InsufficientStockError
	s.Require().ErrorAs(err, &stockErr)
	s.Equal("book-1", stockErr.BookID)
	// id уже присвоен и возвращается вместе с ошибкой.
	s.True(strings.HasPrefix(orderID, "buyer-1_store-1_"))
}

func (s *OrderServiceTestSuite) TestNewOrderLostStockRace() {
	buyer := domain.User{UserID: "buyer-1"}
	store := domain.Store{StoreID: "store-1"}
	book := domain.Book{BookID: "book-1", StoreID: "store-1", Price: 50, StockLevel: 3}

	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), "buyer-1").Return(&buyer, nil)
	s.mockStoreRepo.EXPECT().FindStoreByID(gomock.Any(), "store-1").Return(&store, nil)

	s.expectDo()
	s.expectTxRepo(repoargs.BookRepoName, s.mockBookRepo)
	s.expectTxRepo(repoargs.OrderRepoName, s.mockOrderRepo)

	s.mockBookRepo.EXPECT().FindBook(gomock.Any(), "store-1", "book-1").Return(&book, nil)
	// между чтением и условным списанием остаток выбрал конкурентный заказ.
	s.mockBookRepo.EXPECT().DecrementStock(gomock.Any(), "store-1", "book-1", int64(3)).Return(false, nil)

	_, err := s.orderService.NewOrder(context.Background(), "buyer-1", "store-1", []OrderItem{
		{BookID: "book-1", Count: 3},
	})
	var stockErr *domain.InsufficientStockError
	s.Require().ErrorAs(err, &stockErr)
}

func (s *OrderServiceTestSuite) TestNewOrderEmptyItems() {
	// заказ без позиций отклоняется до присвоения id и любых запросов к базе.
	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), gomock.Any()).Times(0)

	orderID, err := s.orderService.NewOrder(context.Background(), "buyer-1", "store-1", nil)
	s.Require().ErrorIs(err, domain.ErrEmptyOrder)
	s.Empty(orderID)
}

func (s *OrderServiceTestSuite) TestNewOrderUnknownBuyer() {
	s.mockUserRepo.EXPECT().
		FindUserByID(gomock.Any(), "ghost").
		Return(nil, domain.ErrRecordNotFound)

	orderID, err := s.orderService.NewOrder(context.Background(), "ghost", "store-1", []OrderItem{
		{BookID: "book-1", Count: 1},
	})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
	s.Empty(orderID)
}

func (s *OrderServiceTestSuite) pendingLines(orderID string) []domain.OrderLine {
	now := time.Now()
	return []domain.OrderLine{
		{
			OrderID:    orderID,
			BookID:     "book-1",
			BuyerID:    "buyer-1",
			StoreID:    "store-1",
			Count:      2,
			TotalPrice: 100,
			Status:     domain.OrderStatusPending,
			CreatedAt:  now,
		},
		{
			OrderID:    orderID,
			BookID:     "book-2",
			BuyerID:    "buyer-1",
			StoreID:    "store-1",
			Count:      1,
			TotalPrice: 70,
			Status:     domain.OrderStatusPending,
			CreatedAt:  now,
		},
	}
}

func (s *OrderServiceTestSuite) TestPayment() {
	lines := s.pendingLines("order-1")
	buyer := domain.User{UserID: "buyer-1", Password: "hash", Balance: 500}
	store := domain.Store{StoreID: "store-1", OwnerID: "seller-1"}

	s.mockOrderRepo.EXPECT().GetLinesByOrderID(gomock.Any(), "order-1").Return(lines, nil)
	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), "buyer-1").Return(&buyer, nil)
	s.mockPsswd.EXPECT().ComparePassword("secret", "hash").Return(true)
	s.mockStoreRepo.EXPECT().FindStoreByID(gomock.Any(), "store-1").Return(&store, nil)

	s.expectDo()
	s.expectTxRepo(repoargs.UserRepoName, s.mockUserRepo)
	s.expectTxRepo(repoargs.OrderRepoName, s.mockOrderRepo)

	s.mockUserRepo.EXPECT().DebitBalance(gomock.Any(), "buyer-1", int64(170)).Return(true, nil)
	s.mockUserRepo.EXPECT().CreditBalance(gomock.Any(), "seller-1", int64(170)).Return(true, nil)
	s.mockOrderRepo.EXPECT().
		UpdateStatusFrom(gomock.Any(), "order-1", domain.OrderStatusPending, domain.OrderStatusPaid).
		Return(int64(2), nil)

	err := s.orderService.Payment(context.Background(), "buyer-1", "secret", "order-1")
	s.Require().NoError(err)
}

func (s *OrderServiceTestSuite) TestPaymentInsufficientFunds() {
	lines := s.pendingLines("order-1")
	buyer := domain.User{UserID: "buyer-1", Password: "hash", Balance: 100} // total 170

	s.mockOrderRepo.EXPECT().GetLinesByOrderID(gomock.Any(), "order-1").Return(lines, nil)
	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), "buyer-1").Return(&buyer, nil)
	s.mockPsswd.EXPECT().ComparePassword("secret", "hash").Return(true)
	s.mockStoreRepo.EXPECT().
		FindStoreByID(gomock.Any(), "store-1").
		Return(&domain.Store{StoreID: "store-1", OwnerID: "seller-1"}, nil)

	err := s.orderService.Payment(context.Background(), "buyer-1", "secret", "order-1")
	s.Require().ErrorIs(err, domain.ErrInsufficientFunds)
}

func (s *OrderServiceTestSuite) TestPaymentWrongPassword() {
	lines := s.pendingLines("order-1")
	buyer := domain.User{UserID: "buyer-1", Password: "hash", Balance: 500}

	s.mockOrderRepo.EXPECT().GetLinesByOrderID(gomock.Any(), "order-1").Return(lines, nil)
	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), "buyer-1").Return(&buyer, nil)
	s.mockPsswd.EXPECT().ComparePassword("wrong", "hash").Return(false)

	err := s.orderService.Payment(context.Background(), "buyer-1", "wrong", "order-1")
	s.Require().ErrorIs(err, domain.ErrAuthorizationFail)
}

func (s *OrderServiceTestSuite) TestPaymentForeignOrder() {
	lines := s.pendingLines("order-1")

	s.mockOrderRepo.EXPECT().GetLinesByOrderID(gomock.Any(), "order-1").Return(lines, nil)

	err := s.orderService.Payment(context.Background(), "intruder", "secret", "order-1")
	s.Require().ErrorIs(err, domain.ErrAuthorizationFail)
}

func (s *OrderServiceTestSuite) TestPaymentAlreadyPaid() {
	// повторная оплата: статус проверяется до списания, баланс не трогаем.
	lines := s.pendingLines("order-1")
	for i := range lines {
		lines[i].Status = domain.OrderStatusPaid
	}

	s.mockOrderRepo.EXPECT().GetLinesByOrderID(gomock.Any(), "order-1").Return(lines, nil)
	s.mockUserRepo.EXPECT().DebitBalance(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := s.orderService.Payment(context.Background(), "buyer-1", "secret", "order-1")
	s.Require().ErrorIs(err, domain.ErrInvalidOrderState)
}

func (s *OrderServiceTestSuite) TestPaymentLostStatusRace() {
	lines := s.pendingLines("order-1")
	buyer := domain.User{UserID: "buyer-1", Password: "hash", Balance: 500}
	store := domain.Store{StoreID: "store-1", OwnerID: "seller-1"}

	s.mockOrderRepo.EXPECT().GetLinesByOrderID(gomock.Any(), "order-1").Return(lines, nil)
	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), "buyer-1").Return(&buyer, nil)
	s.mockPsswd.EXPECT().ComparePassword("secret", "hash").Return(true)
	s.mockStoreRepo.EXPECT().FindStoreByID(gomock.Any(), "store-1").Return(&store, nil)

	s.expectDo()
	s.expectTxRepo(repoargs.UserRepoName, s.mockUserRepo)
	s.expectTxRepo(repoargs.OrderRepoName, s.mockOrderRepo)

	s.mockUserRepo.EXPECT().DebitBalance(gomock.Any(), "buyer-1", int64(170)).Return(true, nil)
	s.mockUserRepo.EXPECT().CreditBalance(gomock.Any(), "seller-1", int64(170)).Return(true, nil)
	// заказ отменен конкурентно между первичной проверкой и CAS.
	s.mockOrderRepo.EXPECT().
		UpdateStatusFrom(gomock.Any(), "order-1", domain.OrderStatusPending, domain.OrderStatusPaid).
		Return(int64(0), nil)

	err := s.orderService.Payment(context.Background(), "buyer-1", "secret", "order-1")
	s.Require().ErrorIs(err, domain.ErrInvalidOrderState)
}

func (s *OrderServiceTestSuite) TestCancelRestoresStock() {
	lines := s.pendingLines("order-1")
	buyer := domain.User{UserID: "buyer-1", Password: "hash"}

	s.mockOrderRepo.EXPECT().GetLinesByOrderID(gomock.Any(), "order-1").Return(lines, nil)
	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), "buyer-1").Return(&buyer, nil)
	s.mockPsswd.EXPECT().ComparePassword("secret", "hash").Return(true)

	s.expectDo()
	s.expectTxRepo(repoargs.OrderRepoName, s.mockOrderRepo)
	s.expectTxRepo(repoargs.BookRepoName, s.mockBookRepo)

	s.mockOrderRepo.EXPECT().
		UpdateStatusFrom(gomock.Any(), "order-1", domain.OrderStatusPending, domain.OrderStatusCanceled).
		Return(int64(2), nil)
	s.mockBookRepo.EXPECT().IncrementStock(gomock.Any(), "store-1", "book-1", int64(2)).Return(true, nil)
	s.mockBookRepo.EXPECT().IncrementStock(gomock.Any(), "store-1", "book-2", int64(1)).Return(true, nil)

	err := s.orderService.Cancel(context.Background(), "buyer-1", "secret", "order-1")
	s.Require().NoError(err)
}

func (s *OrderServiceTestSuite) TestCancelPaidOrder() {
	lines := s.pendingLines("order-1")
	for i := range lines {
		lines[i].Status = domain.OrderStatusPaid
	}
	buyer := domain.User{UserID: "buyer-1", Password: "hash"}

	s.mockOrderRepo.EXPECT().GetLinesByOrderID(gomock.Any(), "order-1").Return(lines, nil)
	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), "buyer-1").Return(&buyer, nil)
	s.mockPsswd.EXPECT().ComparePassword("secret", "hash").Return(true)

	err := s.orderService.Cancel(context.Background(), "buyer-1", "secret", "order-1")
	s.Require().ErrorIs(err, domain.ErrInvalidOrderState)
}

func (s *OrderServiceTestSuite) TestCancelExpired() {
	lines := s.pendingLines("order-1")

	s.mockOrderRepo.EXPECT().GetLinesByOrderID(gomock.Any(), "order-1").Return(lines, nil)

	s.expectDo()
	s.expectTxRepo(repoargs.OrderRepoName, s.mockOrderRepo)
	s.expectTxRepo(repoargs.BookRepoName, s.mockBookRepo)

	s.mockOrderRepo.EXPECT().
		UpdateStatusFrom(gomock.Any(), "order-1", domain.OrderStatusPending, domain.OrderStatusCanceled).
		Return(int64(2), nil)
	s.mockBookRepo.EXPECT().IncrementStock(gomock.Any(), "store-1", "book-1", int64(2)).Return(true, nil)
	s.mockBookRepo.EXPECT().IncrementStock(gomock.Any(), "store-1", "book-2", int64(1)).Return(true, nil)

	err := s.orderService.CancelExpired(context.Background(), "order-1")
	s.Require().NoError(err)
}

func (s *OrderServiceTestSuite) TestCancelExpiredLostRace() {
	lines := s.pendingLines("order-1")

	s.mockOrderRepo.EXPECT().GetLinesByOrderID(gomock.Any(), "order-1").Return(lines, nil)

	s.expectDo()
	s.expectTxRepo(repoargs.OrderRepoName, s.mockOrderRepo)
	s.expectTxRepo(repoargs.BookRepoName, s.mockBookRepo)

	// заказ успели оплатить: CAS не затрагивает ни одной строки и остатки
	// не возвращаются.
	s.mockOrderRepo.EXPECT().
		UpdateStatusFrom(gomock.Any(), "order-1", domain.OrderStatusPending, domain.OrderStatusCanceled).
		Return(int64(0), nil)

	err := s.orderService.CancelExpired(context.Background(), "order-1")
	s.Require().ErrorIs(err, domain.ErrInvalidOrderState)
}

func (s *OrderServiceTestSuite) TestSend() {
	lines := s.pendingLines("order-1")
	for i := range lines {
		lines[i].Status = domain.OrderStatusPaid
	}
	store := domain.Store{StoreID: "store-1", OwnerID: "seller-1"}

	s.mockOrderRepo.EXPECT().GetLinesByOrderID(gomock.Any(), "order-1").Return(lines, nil)
	s.mockStoreRepo.EXPECT().FindStoreByID(gomock.Any(), "store-1").Return(&store, nil)
	s.mockOrderRepo.EXPECT().
		UpdateStatusFrom(gomock.Any(), "order-1", domain.OrderStatusPaid, domain.OrderStatusSent).
		Return(int64(2), nil)

	err := s.orderService.Send(context.Background(), "seller-1", "order-1")
	s.Require().NoError(err)
}

func (s *OrderServiceTestSuite) TestSendNotOwner() {
	lines := s.pendingLines("order-1")
	for i := range lines {
		lines[i].Status = domain.OrderStatusPaid
	}
	store := domain.Store{StoreID: "store-1", OwnerID: "seller-1"}

	s.mockOrderRepo.EXPECT().GetLinesByOrderID(gomock.Any(), "order-1").Return(lines, nil)
	s.mockStoreRepo.EXPECT().FindStoreByID(gomock.Any(), "store-1").Return(&store, nil)

	err := s.orderService.Send(context.Background(), "intruder", "order-1")
	s.Require().ErrorIs(err, domain.ErrAuthorizationFail)
}

func (s *OrderServiceTestSuite) TestSendUnpaidOrder() {
	lines := s.pendingLines("order-1")
	store := domain.Store{StoreID: "store-1", OwnerID: "seller-1"}

	s.mockOrderRepo.EXPECT().GetLinesByOrderID(gomock.Any(), "order-1").Return(lines, nil)
	s.mockStoreRepo.EXPECT().FindStoreByID(gomock.Any(), "store-1").Return(&store, nil)

	err := s.orderService.Send(context.Background(), "seller-1", "order-1")
	s.Require().ErrorIs(err, domain.ErrInvalidOrderState)
}

func (s *OrderServiceTestSuite) TestReceive() {
	lines := s.pendingLines("order-1")
	for i := range lines {
		lines[i].Status = domain.OrderStatusSent
	}

	s.mockOrderRepo.EXPECT().GetLinesByOrderID(gomock.Any(), "order-1").Return(lines, nil)
	s.mockOrderRepo.EXPECT().
		UpdateStatusFrom(gomock.Any(), "order-1", domain.OrderStatusSent, domain.OrderStatusReceived).
		Return(int64(2), nil)

	err := s.orderService.Receive(context.Background(), "buyer-1", "order-1")
	s.Require().NoError(err)
}

func (s *OrderServiceTestSuite) TestQueryOrder() {
	lines := s.pendingLines("order-1")

	s.mockOrderRepo.EXPECT().GetLinesByOrderID(gomock.Any(), "order-1").Return(lines, nil)

	view, err := s.orderService.QueryOrder(context.Background(), "buyer-1", "order-1")
	s.Require().NoError(err)
	s.Equal("order-1", view.OrderID)
	s.Equal("buyer-1", view.BuyerID)
	s.Equal("store-1", view.StoreID)
	s.Equal(domain.OrderStatusPending, view.Status)
	s.Len(view.Books, 2)
	s.Equal(int64(170), view.TotalPrice)
}

func (s *OrderServiceTestSuite) TestQueryOrderNotFound() {
	s.mockOrderRepo.EXPECT().GetLinesByOrderID(gomock.Any(), "ghost").Return([]domain.OrderLine{}, nil)

	_, err := s.orderService.QueryOrder(context.Background(), "buyer-1", "ghost")
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *OrderServiceTestSuite) TestExpiredPendingOrders() {
	s.mockOrderRepo.EXPECT().
		ExpiredPendingOrderIDs(gomock.Any(), gomock.Any(), uint(50)).
		Return([]string{"order-1", "order-2"}, nil)

	orderIDs, err := s.orderService.ExpiredPendingOrders(context.Background(), 50)
	s.Require().NoError(err)
	s.Equal([]string{"order-1", "order-2"}, orderIDs)
}
