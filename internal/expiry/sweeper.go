// Package expiry отменяет pending заказы с истекшим дедлайном оплаты и
// возвращает их резервы на остатки.
package expiry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-market/internal/domain"
)

const (
	defaultServiceTimeout      = 3 * time.Second
	defaultInterval            = 60 * time.Second
	defaultLimitPerCycle  uint = 100
)

//go:generate mockgen -source=sweeper.go -destination=mocks/mocks.go -package=mocks

// Servicer срез движка заказов, нужный свиперу. Свипер работает только через
// публичные операции движка, никакого разделяемого состояния кроме стора.
type Servicer interface {
	ExpiredPendingOrders(ctx context.Context, limit uint) ([]string, error)
	CancelExpired(ctx context.Context, orderID string) error
}

// Sweeper фоновый процесс отмены просроченных заказов.
type Sweeper struct {
	svs           Servicer
	l             *logrus.Entry
	interval      time.Duration
	limitPerCycle uint
}

func New(svs Servicer, l *logrus.Logger) *Sweeper {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "expiry",
		"module":    "sweeper",
	})

	return &Sweeper{
		svs:           svs,
		l:             loggerEntry,
		interval:      defaultInterval,
		limitPerCycle: defaultLimitPerCycle,
	}
}

// SetInterval устанавливает период между циклами свипа.
func (s *Sweeper) SetInterval(interval time.Duration) *Sweeper {
	s.interval = interval
	return s
}

// SetLimitPerCycle устанавливает кол-во заказов, отменяемых за один цикл.
func (s *Sweeper) SetLimitPerCycle(limit uint) *Sweeper {
	s.limitPerCycle = limit
	return s
}

// Run крутит циклы свипа до отмены контекста. Ошибка внутри цикла логируется
// и не прерывает процесс: недобитые заказы подхватит следующий цикл.
func (s *Sweeper) Run(ctx context.Context) {
	s.l.WithFields(logrus.Fields{
		"interval":      s.interval.String(),
		"limitPerCycle": s.limitPerCycle,
	}).Info("Starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.l.Info("Got stop signal, exiting...")
			return
		case <-ticker.C:
			if err := s.sweep(ctx); err != nil {
				s.l.WithError(err).Error("sweep error")
			}
		}
	}
}

// sweep один цикл: выбрать просроченные pending заказы и прогнать каждый
// через системную отмену движка.
func (s *Sweeper) sweep(ctx context.Context) error {
	listCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	orderIDs, listErr := s.svs.ExpiredPendingOrders(listCtx, s.limitPerCycle)
	cancel()

	if listErr != nil {
		return fmt.Errorf("sweep: %w", listErr)
	}
	if len(orderIDs) == 0 {
		return nil
	}

	var canceled int
	for _, orderID := range orderIDs {
		cancelCtx, cancelFn := context.WithTimeout(ctx, defaultServiceTimeout)
		err := s.svs.CancelExpired(cancelCtx, orderID)
		cancelFn()

		if err != nil {
			// заказ успели оплатить или отменить между выборкой и отменой -
			// это проигранная гонка, а не сбой цикла.
			if errors.Is(err, domain.ErrInvalidOrderState) {
				s.l.WithField("orderID", orderID).Debug("order left pending state concurrently")
				continue
			}
			s.l.WithError(err).WithField("orderID", orderID).Error("cancel expired order")
			continue
		}
		canceled++
	}

	s.l.WithFields(logrus.Fields{
		"expired":  len(orderIDs),
		"canceled": canceled,
	}).Info("sweep cycle done")
	return nil
}
