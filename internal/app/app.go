package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-market/internal/config"
	"github.com/fsdevblog/groph-market/internal/events"
	"github.com/fsdevblog/groph-market/internal/expiry"
	"github.com/fsdevblog/groph-market/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/internal/service"
	"github.com/fsdevblog/groph-market/internal/transport/api"
	"github.com/fsdevblog/groph-market/pkg/uow"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %+v", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	// Публикация событий заказов опциональна: без брокеров движок работает
	// молча.
	var notifier service.OrderEventNotifier
	if brokers := a.Config.BrokerList(); len(brokers) > 0 {
		producer := events.NewProducer(brokers, a.Config.KafkaTopic, a.Logger)
		defer func() {
			if closeErr := producer.Close(); closeErr != nil {
				a.Logger.WithError(closeErr).Error("closing order events producer")
			}
		}()
		notifier = producer
	}

	services, sErr := service.Factory(unitOfWork, []byte(a.Config.JWTUserSecret), notifier)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:       a.Logger,
		UserService:  services.UserService,
		StoreService: services.StoreService,
		OrderService: services.OrderService,
		JWTSecretKey: []byte(a.Config.JWTUserSecret),
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	sweeper := expiry.New(services.OrderService, a.Logger).
		SetInterval(a.Config.SweeperInterval).
		SetLimitPerCycle(100) //nolint:mnd

	go sweeper.Run(notifyCtx)

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	// user repo
	userRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewUserRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.UserRepoName), userRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// store repo
	storeRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewStoreRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.StoreRepoName), storeRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// book repo
	bookRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewBookRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.BookRepoName), bookRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// order repo
	orderRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewOrderRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.OrderRepoName), orderRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	return unitOfWork, nil
}
