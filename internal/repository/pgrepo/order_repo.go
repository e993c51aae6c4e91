package pgrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

const orderLineColumns = `order_id, book_id, buyer_id, store_id, count, total_price,
	status, created_at, payment_deadline`

type OrderRepository struct {
	db uow.DBTX
}

func NewOrderRepository(db uow.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

// BatchCreateLines вставляет строки заказа одним батчем. Результат каждой
// вставки отдается в колбек fn; вызывающий решает, какие ошибки фатальны.
func (r *OrderRepository) BatchCreateLines(
	ctx context.Context,
	lines []repoargs.OrderLineCreate,
	fn repoargs.BatchExecQueryRow,
) {
	batch := new(pgx.Batch)
	for _, line := range lines {
		batch.Queue(
			`INSERT INTO order_lines (`+orderLineColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			line.OrderID, line.BookID, line.BuyerID, line.StoreID,
			line.Count, line.TotalPrice, line.Status, line.CreatedAt, line.PaymentDeadline,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close() //nolint:errcheck

	for i, line := range lines {
		_, err := results.Exec()
		fn(i, convertErr(err, "creating order line `%s`/`%s`", line.OrderID, line.BookID))
	}
}

// GetLinesByOrderID возвращает все строки заказа. Пустой срез - заказ
// не существует.
func (r *OrderRepository) GetLinesByOrderID(ctx context.Context, orderID string) ([]domain.OrderLine, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderLineColumns+` FROM order_lines WHERE order_id = $1 ORDER BY book_id`,
		orderID,
	)
	if err != nil {
		return nil, convertErr(err, "getting lines of order `%s`", orderID)
	}
	defer rows.Close()

	var lines []domain.OrderLine
	for rows.Next() {
		var line domain.OrderLine
		if scanErr := rows.Scan(
			&line.OrderID, &line.BookID, &line.BuyerID, &line.StoreID,
			&line.Count, &line.TotalPrice, &line.Status, &line.CreatedAt, &line.PaymentDeadline,
		); scanErr != nil {
			return nil, convertErr(scanErr, "getting lines of order `%s`", orderID)
		}
		lines = append(lines, line)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting lines of order `%s`", orderID)
	}
	return lines, nil
}

// UpdateStatusFrom compare-and-set статуса: переводит все строки заказа из
// from в to и возвращает число затронутых строк. Ноль означает, что заказ
// уже покинул статус from (проигранная гонка с конкурентным переходом) либо
// не существует - вызывающий обязан трактовать это как бизнес-ошибку.
func (r *OrderRepository) UpdateStatusFrom(
	ctx context.Context,
	orderID string,
	from, to domain.OrderStatusType,
) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE order_lines SET status = $3 WHERE order_id = $1 AND status = $2`,
		orderID, from, to,
	)
	if err != nil {
		return 0, convertErr(err, "updating status of order `%s` %s->%s", orderID, from, to)
	}
	return tag.RowsAffected(), nil
}

// ExpiredPendingOrderIDs возвращает id pending заказов с истекшим дедлайном
// оплаты. Строки одного заказа разделяют дедлайн, поэтому DISTINCT по
// order_id дает ровно по одному id на заказ.
func (r *OrderRepository) ExpiredPendingOrderIDs(
	ctx context.Context,
	now time.Time,
	limit uint,
) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT order_id FROM order_lines
		 WHERE status = 'pending' AND payment_deadline < $1
		 LIMIT $2`,
		now, limit,
	)
	if err != nil {
		return nil, convertErr(err, "getting expired pending orders")
	}
	defer rows.Close()

	var orderIDs []string
	for rows.Next() {
		var orderID string
		if scanErr := rows.Scan(&orderID); scanErr != nil {
			return nil, convertErr(scanErr, "getting expired pending orders")
		}
		orderIDs = append(orderIDs, orderID)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting expired pending orders")
	}
	return orderIDs, nil
}
