package service

import (
	"fmt"

	"github.com/fsdevblog/groph-market/internal/service/psswd"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

type AppServices struct {
	UserService  *UserService
	StoreService *StoreService
	OrderService *OrderService
}

func Factory(unitOfWork uow.UOW, jwtSecret []byte, notifier OrderEventNotifier) (*AppServices, error) {
	hasher := psswd.PasswordHash("")

	userService, userServiceErr := NewUserService(unitOfWork, jwtSecret, hasher)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	storeService, storeServiceErr := NewStoreService(unitOfWork)
	if storeServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", storeServiceErr.Error())
	}

	orderService, orderServiceErr := NewOrderService(unitOfWork, hasher, notifier)
	if orderServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", orderServiceErr.Error())
	}

	return &AppServices{
		UserService:  userService,
		StoreService: storeService,
		OrderService: orderService,
	}, nil
}
