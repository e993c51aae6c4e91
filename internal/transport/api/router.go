package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-market/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	AuthRouteGroup  = "/auth"
	RegisterRoute   = "/register"
	LoginRoute      = "/login"
	LogoutRoute     = "/logout"
	PasswordRoute   = "/password"
	UnregisterRoute = "/unregister"

	BuyerRouteGroup  = "/buyer"
	NewOrderRoute    = "/new_order"
	PaymentRoute     = "/payment"
	AddFundsRoute    = "/add_funds"
	ReceiveRoute     = "/receive"
	QueryOrderRoute  = "/query_order"
	CancelOrderRoute = "/cancel_order"
	SearchGlobal     = "/search_global"
	SearchInStore    = "/search_in_store"

	SellerRouteGroup   = "/seller"
	CreateStoreRoute   = "/create_store"
	AddBookRoute       = "/add_book"
	AddStockLevelRoute = "/add_stock_level"
	SendRoute          = "/send"
)

type RouterArgs struct {
	Logger       *logrus.Logger
	UserService  UserServicer
	StoreService StoreServicer
	OrderService OrderServicer
	JWTSecretKey []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	buyerHandler := NewBuyerHandler(args.OrderService, args.UserService, args.StoreService)
	sellerHandler := NewSellerHandler(args.StoreService, args.OrderService)

	auth := r.Group(AuthRouteGroup)
	auth.POST(RegisterRoute, authHandler.Register)
	auth.POST(LoginRoute, authHandler.Login)
	auth.POST(LogoutRoute, authHandler.Logout)
	auth.POST(PasswordRoute, authHandler.ChangePassword)
	auth.POST(UnregisterRoute, authHandler.Unregister)

	// роуты ниже требуют авторизованного пользователя.
	buyer := r.Group(BuyerRouteGroup, middlewares.AuthRequired(args.JWTSecretKey))
	buyer.POST(NewOrderRoute, buyerHandler.NewOrder)
	buyer.POST(PaymentRoute, buyerHandler.Payment)
	buyer.POST(AddFundsRoute, buyerHandler.AddFunds)
	buyer.POST(ReceiveRoute, buyerHandler.Receive)
	buyer.POST(QueryOrderRoute, buyerHandler.QueryOrder)
	buyer.POST(CancelOrderRoute, buyerHandler.CancelOrder)
	buyer.POST(SearchGlobal, buyerHandler.SearchGlobal)
	buyer.POST(SearchInStore, buyerHandler.SearchInStore)

	seller := r.Group(SellerRouteGroup, middlewares.AuthRequired(args.JWTSecretKey))
	seller.POST(CreateStoreRoute, sellerHandler.CreateStore)
	seller.POST(AddBookRoute, sellerHandler.AddBook)
	seller.POST(AddStockLevelRoute, sellerHandler.AddStockLevel)
	seller.POST(SendRoute, sellerHandler.Send)

	return r
}
