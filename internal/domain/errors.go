package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrUnknown           = errors.New("unknown error")

	ErrAuthorizationFail = errors.New("authorization fail")
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidOrderState возвращается когда заказ не существует в нужном
	// статусе для запрошенного перехода: оплата не-pending заказа, отмена
	// уже оплаченного и т.п.
	ErrInvalidOrderState = errors.New("invalid order state")
	// ErrEmptyOrder попытка создать заказ без единой позиции.
	ErrEmptyOrder = errors.New("empty order")
)

// InsufficientStockError нехватка остатка конкретной книги при создании
// заказа. Хранит book_id чтобы вызывающий мог указать проблемную позицию.
type InsufficientStockError struct {
	BookID string
}

func NewInsufficientStockError(bookID string) error {
	return &InsufficientStockError{BookID: bookID}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock level low for book %s", e.BookID)
}
