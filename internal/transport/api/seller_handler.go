package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-market/internal/service"
)

type SellerHandler struct {
	storeSvs StoreServicer
	orderSvs OrderServicer
}

func NewSellerHandler(storeSvs StoreServicer, orderSvs OrderServicer) *SellerHandler {
	return &SellerHandler{
		storeSvs: storeSvs,
		orderSvs: orderSvs,
	}
}

type CreateStoreParams struct {
	UserID  string `binding:"required" json:"user_id"`
	StoreID string `binding:"required" json:"store_id"`
}

// CreateStore POST SellerRouteGroup + CreateStoreRoute.
func (h *SellerHandler) CreateStore(c *gin.Context) {
	var params CreateStoreParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	store, err := h.storeSvs.CreateStore(ctx, params.UserID, params.StoreID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok", "store_id": store.StoreID})
}

type AddBookParams struct {
	UserID     string   `binding:"required"       json:"user_id"`
	StoreID    string   `binding:"required"       json:"store_id"`
	BookID     string   `binding:"required"       json:"book_id"`
	Title      string   `binding:"required"       json:"title"`
	Author     string   `json:"author"`
	Publisher  string   `json:"publisher"`
	BookIntro  string   `json:"book_intro"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags"`
	Price      int64    `binding:"required,gte=0" json:"price"`
	StockLevel int64    `binding:"gte=0"          json:"stock_level"`
}

// AddBook POST SellerRouteGroup + AddBookRoute. Выставляет книгу с начальным
// остатком.
func (h *SellerHandler) AddBook(c *gin.Context) {
	var params AddBookParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	book, err := h.storeSvs.AddBook(ctx, service.AddBookArgs{
		UserID:     params.UserID,
		StoreID:    params.StoreID,
		BookID:     params.BookID,
		Title:      params.Title,
		Author:     params.Author,
		Publisher:  params.Publisher,
		BookIntro:  params.BookIntro,
		Content:    params.Content,
		Tags:       params.Tags,
		Price:      params.Price,
		StockLevel: params.StockLevel,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok", "book_id": book.BookID})
}

type AddStockLevelParams struct {
	UserID        string `binding:"required"      json:"user_id"`
	StoreID       string `binding:"required"      json:"store_id"`
	BookID        string `binding:"required"      json:"book_id"`
	AddStockLevel int64  `binding:"required,gt=0" json:"add_stock_level"`
}

// AddStockLevel POST SellerRouteGroup + AddStockLevelRoute.
func (h *SellerHandler) AddStockLevel(c *gin.Context) {
	var params AddStockLevelParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.storeSvs.AddStockLevel(ctx, params.UserID, params.StoreID, params.BookID, params.AddStockLevel); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

type SendParams struct {
	UserID  string `binding:"required" json:"user_id"`
	OrderID string `binding:"required" json:"order_id"`
}

// Send POST SellerRouteGroup + SendRoute. Отправка оплаченного заказа
// владельцем магазина.
func (h *SellerHandler) Send(c *gin.Context) {
	var params SendParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.orderSvs.Send(ctx, params.UserID, params.OrderID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}
