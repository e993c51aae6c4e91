package domain

import (
	"time"
)

// Все денежные значения (цены, балансы) хранятся в минимальных единицах валюты.

type User struct {
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
	Password  string
	Balance   int64
}

type Store struct {
	StoreID   string
	CreatedAt time.Time
	OwnerID   string
}

type Book struct {
	BookID     string
	StoreID    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Title      string
	Author     string
	Publisher  string
	BookIntro  string
	Content    string
	Tags       []string
	Price      int64
	StockLevel int64
}

// OrderLine одна строка заказа (одна книга). Полный заказ - множество строк
// с общим OrderID. Все строки одного заказа разделяют buyer_id, store_id,
// статус и таймстемпы и переходят между статусами только вместе.
type OrderLine struct {
	OrderID         string
	BookID          string
	BuyerID         string
	StoreID         string
	Count           int64
	TotalPrice      int64
	Status          OrderStatusType
	CreatedAt       time.Time
	PaymentDeadline time.Time
}

// OrderView собранное из строк представление заказа для покупателя.
type OrderView struct {
	OrderID    string
	BuyerID    string
	StoreID    string
	Status     OrderStatusType
	CreatedAt  time.Time
	Books      []OrderViewItem
	TotalPrice int64
}

type OrderViewItem struct {
	BookID string
	Count  int64
	Price  int64
}
