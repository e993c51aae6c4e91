package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/service"
)

type BuyerHandler struct {
	orderSvs OrderServicer
	userSvs  UserServicer
	storeSvs StoreServicer
}

func NewBuyerHandler(orderSvs OrderServicer, userSvs UserServicer, storeSvs StoreServicer) *BuyerHandler {
	return &BuyerHandler{
		orderSvs: orderSvs,
		userSvs:  userSvs,
		storeSvs: storeSvs,
	}
}

type NewOrderBookParams struct {
	ID    string `binding:"required"      json:"id"`
	Count int64  `binding:"required,gt=0" json:"count"`
}

type NewOrderParams struct {
	UserID  string               `binding:"required"              json:"user_id"`
	StoreID string               `binding:"required"              json:"store_id"`
	Books   []NewOrderBookParams `binding:"required,min=1,dive"   json:"books"`
}

// NewOrder POST BuyerRouteGroup + NewOrderRoute. Создает заказ. order_id
// возвращается и при неуспехе (если он уже был присвоен) - по нему можно
// идентифицировать неудавшуюся попытку.
func (h *BuyerHandler) NewOrder(c *gin.Context) {
	var params NewOrderParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	items := make([]service.OrderItem, len(params.Books))
	for i, book := range params.Books {
		items[i] = service.OrderItem{BookID: book.ID, Count: book.Count}
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orderID, err := h.orderSvs.NewOrder(ctx, params.UserID, params.StoreID, items)
	if err != nil {
		status, msg := serviceErrStatus(err)
		if status == http.StatusInternalServerError {
			_ = c.AbortWithError(status, err).SetType(gin.ErrorTypePrivate)
			return
		}
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(status, gin.H{"message": msg, "order_id": orderID})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok", "order_id": orderID})
}

type PaymentParams struct {
	UserID   string `binding:"required" json:"user_id"`
	Password string `binding:"required" json:"password"`
	OrderID  string `binding:"required" json:"order_id"`
}

// Payment POST BuyerRouteGroup + PaymentRoute.
func (h *BuyerHandler) Payment(c *gin.Context) {
	var params PaymentParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.orderSvs.Payment(ctx, params.UserID, params.Password, params.OrderID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

type AddFundsParams struct {
	UserID   string `binding:"required"      json:"user_id"`
	Password string `binding:"required"      json:"password"`
	AddValue int64  `binding:"required,gt=0" json:"add_value"`
}

// AddFunds POST BuyerRouteGroup + AddFundsRoute.
func (h *BuyerHandler) AddFunds(c *gin.Context) {
	var params AddFundsParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.userSvs.AddFunds(ctx, params.UserID, params.Password, params.AddValue); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

type ReceiveParams struct {
	UserID  string `binding:"required" json:"user_id"`
	OrderID string `binding:"required" json:"order_id"`
}

// Receive POST BuyerRouteGroup + ReceiveRoute. Подтверждение получения.
func (h *BuyerHandler) Receive(c *gin.Context) {
	var params ReceiveParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.orderSvs.Receive(ctx, params.UserID, params.OrderID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

type QueryOrderParams struct {
	UserID  string `binding:"required" json:"user_id"`
	OrderID string `binding:"required" json:"order_id"`
}

type OrderViewBookResponse struct {
	BookID string `json:"book_id"`
	Count  int64  `json:"count"`
	Price  int64  `json:"price"`
}

type OrderViewResponse struct {
	OrderID    string                  `json:"order_id"`
	BuyerID    string                  `json:"buyer_id"`
	StoreID    string                  `json:"store_id"`
	Status     domain.OrderStatusType  `json:"status"`
	CreatedAt  time.Time               `json:"created_at"`
	Books      []OrderViewBookResponse `json:"books"`
	TotalPrice int64                   `json:"total_price"`
}

// QueryOrder POST BuyerRouteGroup + QueryOrderRoute. Только чтение.
func (h *BuyerHandler) QueryOrder(c *gin.Context) {
	var params QueryOrderParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	view, err := h.orderSvs.QueryOrder(ctx, params.UserID, params.OrderID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := OrderViewResponse{
		OrderID:    view.OrderID,
		BuyerID:    view.BuyerID,
		StoreID:    view.StoreID,
		Status:     view.Status,
		CreatedAt:  view.CreatedAt,
		Books:      make([]OrderViewBookResponse, len(view.Books)),
		TotalPrice: view.TotalPrice,
	}
	for i, book := range view.Books {
		response.Books[i] = OrderViewBookResponse{
			BookID: book.BookID,
			Count:  book.Count,
			Price:  book.Price,
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok", "data": response})
}

type CancelOrderParams struct {
	UserID   string `binding:"required" json:"user_id"`
	OrderID  string `binding:"required" json:"order_id"`
	Password string `binding:"required" json:"password"`
}

// CancelOrder POST BuyerRouteGroup + CancelOrderRoute. Отмена pending заказа
// покупателем; резерв остатков возвращается магазину.
func (h *BuyerHandler) CancelOrder(c *gin.Context) {
	var params CancelOrderParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.orderSvs.Cancel(ctx, params.UserID, params.Password, params.OrderID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

type SearchParams struct {
	Keyword string `binding:"required" json:"keyword"`
	StoreID string `json:"store_id"`
	Page    uint   `json:"page"`
	Limit   uint   `json:"limit"`
}

type SearchBookResponse struct {
	BookID     string `json:"book_id"`
	StoreID    string `json:"store_id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	Publisher  string `json:"publisher"`
	Price      int64  `json:"price"`
	StockLevel int64  `json:"stock_level"`
}

// SearchGlobal POST BuyerRouteGroup + SearchGlobal. Поиск по всем магазинам.
func (h *BuyerHandler) SearchGlobal(c *gin.Context) {
	h.search(c, false)
}

// SearchInStore POST BuyerRouteGroup + SearchInStore. Поиск в одном магазине.
func (h *BuyerHandler) SearchInStore(c *gin.Context) {
	h.search(c, true)
}

func (h *BuyerHandler) search(c *gin.Context, inStore bool) {
	var params SearchParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	if inStore && params.StoreID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "store_id is required"})
		return
	}

	storeID := ""
	if inStore {
		storeID = params.StoreID
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	books, err := h.storeSvs.Search(ctx, params.Keyword, storeID, params.Page, params.Limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]SearchBookResponse, len(books))
	for i, book := range books {
		response[i] = SearchBookResponse{
			BookID:     book.BookID,
			StoreID:    book.StoreID,
			Title:      book.Title,
			Author:     book.Author,
			Publisher:  book.Publisher,
			Price:      book.Price,
			StockLevel: book.StockLevel,
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok", "data": response})
}
