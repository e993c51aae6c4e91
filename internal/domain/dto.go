package domain

type OrderStatusType string

const (
	OrderStatusPending  OrderStatusType = "pending"
	OrderStatusPaid     OrderStatusType = "paid"
	OrderStatusSent     OrderStatusType = "sent"
	OrderStatusReceived OrderStatusType = "received"
	OrderStatusCanceled OrderStatusType = "canceled"
)

// Разрешенные переходы статусов. received, sent после receive и canceled -
// терминальные: из paid нельзя уйти никуда кроме sent (деньги уже переведены).
var orderStatusTransitions = map[OrderStatusType]OrderStatusType{
	OrderStatusPaid:     OrderStatusPending,
	OrderStatusSent:     OrderStatusPaid,
	OrderStatusReceived: OrderStatusSent,
	OrderStatusCanceled: OrderStatusPending,
}

// RequiredStatusFor возвращает статус, в котором должен находиться заказ,
// чтобы перейти в target. Второе значение false для неизвестного target.
func RequiredStatusFor(target OrderStatusType) (OrderStatusType, bool) {
	from, ok := orderStatusTransitions[target]
	return from, ok
}
