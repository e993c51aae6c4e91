package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/service"
)

type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
	Logout(ctx context.Context, userID, token string) error
	AddFunds(ctx context.Context, userID, password string, amount int64) error
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
	Unregister(ctx context.Context, userID, password string) error
}

type StoreServicer interface {
	CreateStore(ctx context.Context, userID, storeID string) (*domain.Store, error)
	AddBook(ctx context.Context, args service.AddBookArgs) (*domain.Book, error)
	AddStockLevel(ctx context.Context, userID, storeID, bookID string, add int64) error
	Search(ctx context.Context, keyword, storeID string, page, limit uint) ([]domain.Book, error)
}

type OrderServicer interface {
	NewOrder(ctx context.Context, buyerID, storeID string, items []service.OrderItem) (string, error)
	Payment(ctx context.Context, buyerID, password, orderID string) error
	Cancel(ctx context.Context, buyerID, password, orderID string) error
	Send(ctx context.Context, sellerID, orderID string) error
	Receive(ctx context.Context, buyerID, orderID string) error
	QueryOrder(ctx context.Context, buyerID, orderID string) (*domain.OrderView, error)
}
