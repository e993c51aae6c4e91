// Package events публикует переходы статусов заказов в kafka. Публикация
// best-effort: движок заказов не зависит от доступности брокера, ошибки
// только логируются.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-market/internal/domain"
)

const DefaultTopic = "order-events"

type OrderEvent struct {
	OrderID    string                 `json:"order_id"`
	Status     domain.OrderStatusType `json:"status"`
	OccurredAt time.Time              `json:"occurred_at"`
}

type Producer struct {
	writer *kafka.Writer
	l      *logrus.Entry
}

func NewProducer(brokers []string, topic string, l *logrus.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}
	return &Producer{
		writer: writer,
		l: l.WithFields(logrus.Fields{
			"component": "events",
			"module":    "producer",
		}),
	}
}

// NotifyOrderStatus публикует событие перехода заказа. Ключ сообщения -
// order_id, так события одного заказа попадают в одну партицию и сохраняют
// порядок.
func (p *Producer) NotifyOrderStatus(ctx context.Context, orderID string, status domain.OrderStatusType) {
	event := OrderEvent{
		OrderID:    orderID,
		Status:     status,
		OccurredAt: time.Now(),
	}

	data, marshalErr := json.Marshal(event)
	if marshalErr != nil {
		p.l.WithError(marshalErr).Error("marshal order event")
		return
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(orderID),
		Value: data,
		Time:  event.OccurredAt,
	}); err != nil {
		p.l.WithError(err).WithField("orderID", orderID).Error("publish order event")
	}
}

func (p *Producer) Close() error {
	return p.writer.Close() //nolint:wrapcheck
}
