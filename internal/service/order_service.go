package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

// PaymentDeadlineTTL время, отведенное на оплату pending заказа. По его
// истечении заказ подлежит отмене свипером.
const PaymentDeadlineTTL = 1 * time.Hour

// OrderService движок жизненного цикла заказа:
//
//	pending -(payment)-> paid -(send)-> sent -(receive)-> received
//	pending -(cancel | expiry)-> canceled
//
// Все переходы конкурентно-безопасны: резервы остатков, списания баланса и
// смены статуса выполняются условными записями (guard в WHERE), а
// многошаговые операции - внутри одной uow транзакции.
type OrderService struct {
	uow       uow.UOW
	orderRepo OrderRepository
	userRepo  UserRepository
	storeRepo StoreRepository
	bookRepo  BookRepository
	psswd     PasswordHasher
	events    OrderEventNotifier
}

func NewOrderService(u uow.UOW, hasher PasswordHasher, notifier OrderEventNotifier) (*OrderService, error) {
	orderRepo, orderErr := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if orderErr != nil {
		return nil, orderErr
	}
	userRepo, userErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userErr != nil {
		return nil, userErr
	}
	storeRepo, storeErr := uow.GetRepositoryAs[StoreRepository](u, uow.RepositoryName(repoargs.StoreRepoName))
	if storeErr != nil {
		return nil, storeErr
	}
	bookRepo, bookErr := uow.GetRepositoryAs[BookRepository](u, uow.RepositoryName(repoargs.BookRepoName))
	if bookErr != nil {
		return nil, bookErr
	}
	return &OrderService{
		uow:       u,
		orderRepo: orderRepo,
		userRepo:  userRepo,
		storeRepo: storeRepo,
		bookRepo:  bookRepo,
		psswd:     hasher,
		events:    notifier,
	}, nil
}

type OrderItem struct {
	BookID string
	Count  int64
}

// NewOrder создает заказ покупателя в магазине: на каждую книгу резервирует
// остаток условным списанием (guard stock_level >= count) и вставляет по
// одной строке заказа со статусом pending и дедлайном оплаты.
//
// Все списания и вставка строк выполняются в одной транзакции: нехватка
// остатка любой позиции откатывает резервы предыдущих. Заказ при этом не
// создается, но уже присвоенный order_id возвращается вместе с ошибкой -
// по нему вызывающий может идентифицировать неудавшуюся попытку. Пустой
// order_id возвращается только при падении проверок существования
// покупателя/магазина, до того как id был присвоен.
func (s *OrderService) NewOrder(
	ctx context.Context,
	buyerID, storeID string,
	items []OrderItem,
) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("creating order: %w", domain.ErrEmptyOrder)
	}
	if _, err := s.userRepo.FindUserByID(ctx, buyerID); err != nil {
		return "", fmt.Errorf("creating order: %w", err)
	}
	if _, err := s.storeRepo.FindStoreByID(ctx, storeID); err != nil {
		return "", fmt.Errorf("creating order: %w", err)
	}

	// id кодирует покупателя и магазин - удобно при разборе инцидентов.
	orderID := fmt.Sprintf("%s_%s_%s", buyerID, storeID, uuid.NewString())
	now := time.Now()
	deadline := now.Add(PaymentDeadlineTTL)

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		bookRepo, bookRepoErr := uow.GetAs[BookRepository](tx, uow.RepositoryName(repoargs.BookRepoName))
		if bookRepoErr != nil {
			return bookRepoErr //nolint:wrapcheck
		}
		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr //nolint:wrapcheck
		}

		var lines = make([]repoargs.OrderLineCreate, 0, len(items))
		for _, item := range items {
			book, bookErr := bookRepo.FindBook(c, storeID, item.BookID)
			if bookErr != nil {
				return bookErr //nolint:wrapcheck
			}
			if book.StockLevel < item.Count {
				return domain.NewInsufficientStockError(item.BookID)
			}

			applied, decErr := bookRepo.DecrementStock(c, storeID, item.BookID, item.Count)
			if decErr != nil {
				return decErr //nolint:wrapcheck
			}
			if !applied {
				// остаток выбран конкурентным заказом между чтением и записью.
				return domain.NewInsufficientStockError(item.BookID)
			}

			lines = append(lines, repoargs.OrderLineCreate{
				OrderID:         orderID,
				BookID:          item.BookID,
				BuyerID:         buyerID,
				StoreID:         storeID,
				Count:           item.Count,
				TotalPrice:      book.Price * item.Count,
				Status:          domain.OrderStatusPending,
				CreatedAt:       now,
				PaymentDeadline: deadline,
			})
		}

		var insertErr error
		orderRepo.BatchCreateLines(c, lines, func(_ int, err error) {
			if err != nil && insertErr == nil {
				insertErr = err
			}
		})
		return insertErr
	})

	if txErr != nil {
		return orderID, fmt.Errorf("creating order `%s`: %w", orderID, txErr)
	}

	s.notify(ctx, orderID, domain.OrderStatusPending)
	return orderID, nil
}

// Payment оплачивает pending заказ: условно списывает с покупателя полную
// стоимость (guard balance >= total), зачисляет ее владельцу магазина и
// переводит все строки заказа в paid.
//
// Перевод статуса - compare-and-set с условием status = pending: если между
// первичной проверкой и записью заказ успел отмениться (гонка со свипером),
// CAS не затронет ни одной строки и вся транзакция, включая списание,
// откатится с ErrInvalidOrderState.
func (s *OrderService) Payment(ctx context.Context, buyerID, password, orderID string) error {
	lines, linesErr := s.orderRepo.GetLinesByOrderID(ctx, orderID)
	if linesErr != nil {
		return fmt.Errorf("paying order `%s`: %w", orderID, linesErr)
	}
	if len(lines) == 0 {
		return fmt.Errorf("paying order `%s`: %w", orderID, domain.ErrRecordNotFound)
	}

	head := lines[0]
	if head.Status != domain.OrderStatusPending {
		return fmt.Errorf("paying order `%s` in status `%s`: %w", orderID, head.Status, domain.ErrInvalidOrderState)
	}
	if head.BuyerID != buyerID {
		return fmt.Errorf("paying order `%s`: %w", orderID, domain.ErrAuthorizationFail)
	}

	buyer, buyerErr := s.userRepo.FindUserByID(ctx, buyerID)
	if buyerErr != nil {
		return fmt.Errorf("paying order `%s`: %w", orderID, buyerErr)
	}
	if !s.psswd.ComparePassword(password, buyer.Password) {
		return fmt.Errorf("paying order `%s`: %w", orderID, domain.ErrAuthorizationFail)
	}

	store, storeErr := s.storeRepo.FindStoreByID(ctx, head.StoreID)
	if storeErr != nil {
		return fmt.Errorf("paying order `%s`: %w", orderID, storeErr)
	}
	sellerID := store.OwnerID

	var total int64
	for _, line := range lines {
		total += line.TotalPrice
	}
	if buyer.Balance < total {
		return fmt.Errorf("paying order `%s`: %w", orderID, domain.ErrInsufficientFunds)
	}

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr //nolint:wrapcheck
		}

		debited, debitErr := userRepo.DebitBalance(c, buyerID, total)
		if debitErr != nil {
			return debitErr //nolint:wrapcheck
		}
		if !debited {
			// баланс изменился после чтения - условная запись авторитетна.
			return domain.ErrInsufficientFunds
		}

		credited, creditErr := userRepo.CreditBalance(c, sellerID, total)
		if creditErr != nil {
			return creditErr //nolint:wrapcheck
		}
		if !credited {
			return fmt.Errorf("seller `%s`: %w", sellerID, domain.ErrRecordNotFound)
		}

		updated, casErr := orderRepo.UpdateStatusFrom(c, orderID, domain.OrderStatusPending, domain.OrderStatusPaid)
		if casErr != nil {
			return casErr //nolint:wrapcheck
		}
		if updated == 0 {
			// поздняя перепроверка статуса: заказ отменен конкурентно,
			// откатываем списание и зачисление.
			return domain.ErrInvalidOrderState
		}
		return nil
	})

	if txErr != nil {
		return fmt.Errorf("paying order `%s`: %w", orderID, txErr)
	}

	s.notify(ctx, orderID, domain.OrderStatusPaid)
	return nil
}

// Cancel отмена pending заказа покупателем с проверкой пароля.
func (s *OrderService) Cancel(ctx context.Context, buyerID, password, orderID string) error {
	lines, linesErr := s.orderRepo.GetLinesByOrderID(ctx, orderID)
	if linesErr != nil {
		return fmt.Errorf("canceling order `%s`: %w", orderID, linesErr)
	}
	if len(lines) == 0 {
		return fmt.Errorf("canceling order `%s`: %w", orderID, domain.ErrRecordNotFound)
	}

	head := lines[0]
	if head.BuyerID != buyerID {
		return fmt.Errorf("canceling order `%s`: %w", orderID, domain.ErrAuthorizationFail)
	}

	buyer, buyerErr := s.userRepo.FindUserByID(ctx, buyerID)
	if buyerErr != nil {
		return fmt.Errorf("canceling order `%s`: %w", orderID, buyerErr)
	}
	if !s.psswd.ComparePassword(password, buyer.Password) {
		return fmt.Errorf("canceling order `%s`: %w", orderID, domain.ErrAuthorizationFail)
	}

	if head.Status != domain.OrderStatusPending {
		return fmt.Errorf("canceling order `%s` in status `%s`: %w", orderID, head.Status, domain.ErrInvalidOrderState)
	}

	if err := s.cancelLines(ctx, orderID, lines); err != nil {
		return fmt.Errorf("canceling order `%s`: %w", orderID, err)
	}

	s.notify(ctx, orderID, domain.OrderStatusCanceled)
	return nil
}

// CancelExpired отмена заказа от имени системы (свипер дедлайнов оплаты):
// авторизация и пароль не проверяются, требование status = pending
// обеспечивает CAS внутри cancelLines.
func (s *OrderService) CancelExpired(ctx context.Context, orderID string) error {
	lines, linesErr := s.orderRepo.GetLinesByOrderID(ctx, orderID)
	if linesErr != nil {
		return fmt.Errorf("canceling expired order `%s`: %w", orderID, linesErr)
	}
	if len(lines) == 0 {
		return fmt.Errorf("canceling expired order `%s`: %w", orderID, domain.ErrRecordNotFound)
	}

	if err := s.cancelLines(ctx, orderID, lines); err != nil {
		return fmt.Errorf("canceling expired order `%s`: %w", orderID, err)
	}

	s.notify(ctx, orderID, domain.OrderStatusCanceled)
	return nil
}

// cancelLines переводит заказ pending->canceled и возвращает зарезервированные
// остатки. CAS статуса и возвраты выполняются одной транзакцией; проигранная
// гонка (заказ уже оплачен или отменен) возвращает ErrInvalidOrderState без
// каких-либо изменений остатков.
func (s *OrderService) cancelLines(ctx context.Context, orderID string, lines []domain.OrderLine) error {
	return s.uow.Do(ctx, func(c context.Context, tx uow.TX) error { //nolint:wrapcheck
		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr //nolint:wrapcheck
		}
		bookRepo, bookRepoErr := uow.GetAs[BookRepository](tx, uow.RepositoryName(repoargs.BookRepoName))
		if bookRepoErr != nil {
			return bookRepoErr //nolint:wrapcheck
		}

		updated, casErr := orderRepo.UpdateStatusFrom(c, orderID, domain.OrderStatusPending, domain.OrderStatusCanceled)
		if casErr != nil {
			return casErr //nolint:wrapcheck
		}
		if updated == 0 {
			return domain.ErrInvalidOrderState
		}

		// компенсация резерва new_order: возвращаем остаток каждой строки.
		for _, line := range lines {
			applied, incErr := bookRepo.IncrementStock(c, line.StoreID, line.BookID, line.Count)
			if incErr != nil {
				return incErr //nolint:wrapcheck
			}
			if !applied {
				return fmt.Errorf("book `%s`: %w", line.BookID, domain.ErrRecordNotFound)
			}
		}
		return nil
	})
}

// Send отметка об отправке оплаченного заказа. Доступна только владельцу
// магазина.
func (s *OrderService) Send(ctx context.Context, sellerID, orderID string) error {
	if err := s.transit(ctx, orderID, domain.OrderStatusSent, func(head domain.OrderLine) error {
		store, storeErr := s.storeRepo.FindStoreByID(ctx, head.StoreID)
		if storeErr != nil {
			return storeErr //nolint:wrapcheck
		}
		if store.OwnerID != sellerID {
			return domain.ErrAuthorizationFail
		}
		return nil
	}); err != nil {
		return fmt.Errorf("sending order `%s`: %w", orderID, err)
	}

	s.notify(ctx, orderID, domain.OrderStatusSent)
	return nil
}

// Receive подтверждение получения отправленного заказа покупателем.
func (s *OrderService) Receive(ctx context.Context, buyerID, orderID string) error {
	if err := s.transit(ctx, orderID, domain.OrderStatusReceived, func(head domain.OrderLine) error {
		if head.BuyerID != buyerID {
			return domain.ErrAuthorizationFail
		}
		return nil
	}); err != nil {
		return fmt.Errorf("receiving order `%s`: %w", orderID, err)
	}

	s.notify(ctx, orderID, domain.OrderStatusReceived)
	return nil
}

// transit общий путь для простых переходов (send, receive): проверка
// авторизации на строках заказа, затем CAS из требуемого статуса в target.
func (s *OrderService) transit(
	ctx context.Context,
	orderID string,
	target domain.OrderStatusType,
	authorize func(head domain.OrderLine) error,
) error {
	from, ok := domain.RequiredStatusFor(target)
	if !ok {
		return domain.ErrInvalidOrderState
	}

	lines, linesErr := s.orderRepo.GetLinesByOrderID(ctx, orderID)
	if linesErr != nil {
		return linesErr //nolint:wrapcheck
	}
	if len(lines) == 0 {
		return domain.ErrRecordNotFound
	}

	if err := authorize(lines[0]); err != nil {
		return err
	}

	if lines[0].Status != from {
		return domain.ErrInvalidOrderState
	}

	updated, casErr := s.orderRepo.UpdateStatusFrom(ctx, orderID, from, target)
	if casErr != nil {
		return casErr //nolint:wrapcheck
	}
	if updated == 0 {
		return domain.ErrInvalidOrderState
	}
	return nil
}

// QueryOrder собирает представление заказа для его покупателя. Ничего не
// мутирует.
func (s *OrderService) QueryOrder(ctx context.Context, buyerID, orderID string) (*domain.OrderView, error) {
	lines, linesErr := s.orderRepo.GetLinesByOrderID(ctx, orderID)
	if linesErr != nil {
		return nil, fmt.Errorf("querying order `%s`: %w", orderID, linesErr)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("querying order `%s`: %w", orderID, domain.ErrRecordNotFound)
	}
	if lines[0].BuyerID != buyerID {
		return nil, fmt.Errorf("querying order `%s`: %w", orderID, domain.ErrAuthorizationFail)
	}

	view := domain.OrderView{
		OrderID:   orderID,
		BuyerID:   lines[0].BuyerID,
		StoreID:   lines[0].StoreID,
		Status:    lines[0].Status,
		CreatedAt: lines[0].CreatedAt,
		Books:     make([]domain.OrderViewItem, len(lines)),
	}
	for i, line := range lines {
		view.Books[i] = domain.OrderViewItem{
			BookID: line.BookID,
			Count:  line.Count,
			Price:  line.TotalPrice,
		}
		view.TotalPrice += line.TotalPrice
	}
	return &view, nil
}

// ExpiredPendingOrders возвращает id pending заказов с истекшим дедлайном
// оплаты. Используется свипером для выбора кандидатов на отмену.
func (s *OrderService) ExpiredPendingOrders(ctx context.Context, limit uint) ([]string, error) {
	orderIDs, err := s.orderRepo.ExpiredPendingOrderIDs(ctx, time.Now(), limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orderIDs, nil
}

func (s *OrderService) notify(ctx context.Context, orderID string, status domain.OrderStatusType) {
	if s.events == nil {
		return
	}
	s.events.NotifyOrderStatus(ctx, orderID, status)
}
