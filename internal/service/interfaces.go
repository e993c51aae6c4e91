package service

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	CreditBalance(ctx context.Context, userID string, amount int64) (bool, error)
	DebitBalance(ctx context.Context, userID string, amount int64) (bool, error)
	UpdatePassword(ctx context.Context, userID, password string) (bool, error)
	DeleteUser(ctx context.Context, userID string) (bool, error)
}

type StoreRepository interface {
	CreateStore(ctx context.Context, storeID, ownerID string) (*domain.Store, error)
	FindStoreByID(ctx context.Context, storeID string) (*domain.Store, error)
}

type BookRepository interface {
	CreateBook(ctx context.Context, args repoargs.CreateBook) (*domain.Book, error)
	FindBook(ctx context.Context, storeID, bookID string) (*domain.Book, error)
	DecrementStock(ctx context.Context, storeID, bookID string, count int64) (bool, error)
	IncrementStock(ctx context.Context, storeID, bookID string, delta int64) (bool, error)
	Search(ctx context.Context, args repoargs.SearchBooks) ([]domain.Book, error)
}

type OrderRepository interface {
	BatchCreateLines(ctx context.Context, lines []repoargs.OrderLineCreate, fn repoargs.BatchExecQueryRow)
	GetLinesByOrderID(ctx context.Context, orderID string) ([]domain.OrderLine, error)
	UpdateStatusFrom(ctx context.Context, orderID string, from, to domain.OrderStatusType) (int64, error)
	ExpiredPendingOrderIDs(ctx context.Context, now time.Time, limit uint) ([]string, error)
}

// OrderEventNotifier уведомляет внешний мир о переходах статусов заказов.
// Публикация best-effort: реализация не должна возвращать ошибки наверх.
type OrderEventNotifier interface {
	NotifyOrderStatus(ctx context.Context, orderID string, status domain.OrderStatusType)
}
