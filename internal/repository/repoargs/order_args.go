package repoargs

import (
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
)

// OrderLineCreate одна строка заказа для батч вставки. Все строки одного
// заказа вставляются одним батчем с одинаковыми OrderID, BuyerID, StoreID,
// статусом и таймстемпами.
type OrderLineCreate struct {
	OrderID         string
	BookID          string
	BuyerID         string
	StoreID         string
	Count           int64
	TotalPrice      int64
	Status          domain.OrderStatusType
	CreatedAt       time.Time
	PaymentDeadline time.Time
}
