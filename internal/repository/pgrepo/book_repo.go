package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

const bookColumns = `book_id, store_id, title, author, publisher, book_intro, content,
	tags, price, stock_level, created_at, updated_at`

type BookRepository struct {
	db uow.DBTX
}

func NewBookRepository(db uow.DBTX) *BookRepository {
	return &BookRepository{db: db}
}

func (r *BookRepository) CreateBook(ctx context.Context, args repoargs.CreateBook) (*domain.Book, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO books (book_id, store_id, title, author, publisher, book_intro, content, tags, price, stock_level)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+bookColumns,
		args.BookID, args.StoreID, args.Title, args.Author, args.Publisher,
		args.BookIntro, args.Content, args.Tags, args.Price, args.StockLevel,
	)
	book, err := scanBook(row)
	if err != nil {
		return nil, convertErr(err, "creating book `%s` in store `%s`", args.BookID, args.StoreID)
	}
	return book, nil
}

func (r *BookRepository) FindBook(ctx context.Context, storeID, bookID string) (*domain.Book, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+bookColumns+` FROM books WHERE book_id = $1 AND store_id = $2`,
		bookID, storeID,
	)
	book, err := scanBook(row)
	if err != nil {
		return nil, convertErr(err, "finding book `%s` in store `%s`", bookID, storeID)
	}
	return book, nil
}

// DecrementStock условное резервирование остатка: списание применяется
// только если stock_level >= count на момент записи. false означает что
// остаток выбран конкурентным заказом между чтением и этим апдейтом.
func (r *BookRepository) DecrementStock(ctx context.Context, storeID, bookID string, count int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE books SET stock_level = stock_level - $3, updated_at = now()
		 WHERE book_id = $1 AND store_id = $2 AND stock_level >= $3`,
		bookID, storeID, count,
	)
	if err != nil {
		return false, convertErr(err, "decrementing stock of book `%s` in store `%s`", bookID, storeID)
	}
	return tag.RowsAffected() == 1, nil
}

// IncrementStock безусловно пополняет остаток (add_stock_level и возврат
// резерва при отмене). false если книга не найдена.
func (r *BookRepository) IncrementStock(ctx context.Context, storeID, bookID string, delta int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE books SET stock_level = stock_level + $3, updated_at = now()
		 WHERE book_id = $1 AND store_id = $2`,
		bookID, storeID, delta,
	)
	if err != nil {
		return false, convertErr(err, "incrementing stock of book `%s` in store `%s`", bookID, storeID)
	}
	return tag.RowsAffected() == 1, nil
}

// Search полнотекстовый поиск по метаданным книг с ранжированием по весам
// полей (title > tags/intro > content > author/publisher).
func (r *BookRepository) Search(ctx context.Context, args repoargs.SearchBooks) ([]domain.Book, error) {
	query := `SELECT ` + bookColumns + `
		 FROM books
		 WHERE search @@ plainto_tsquery('english', $1)`
	queryArgs := []any{args.Keyword}

	if args.StoreID != "" {
		query += ` AND store_id = $2`
		queryArgs = append(queryArgs, args.StoreID)
	}

	offset := (args.Page - 1) * args.Limit
	query += ` ORDER BY ts_rank(search, plainto_tsquery('english', $1)) DESC, book_id`
	query += ` LIMIT ` + placeholder(len(queryArgs)+1) + ` OFFSET ` + placeholder(len(queryArgs)+2)
	queryArgs = append(queryArgs, args.Limit, offset)

	rows, err := r.db.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, convertErr(err, "searching books by `%s`", args.Keyword)
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		book, scanErr := scanBook(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "searching books by `%s`", args.Keyword)
		}
		books = append(books, *book)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "searching books by `%s`", args.Keyword)
	}
	return books, nil
}

func scanBook(row pgx.Row) (*domain.Book, error) {
	var book domain.Book
	if err := row.Scan(
		&book.BookID, &book.StoreID, &book.Title, &book.Author, &book.Publisher,
		&book.BookIntro, &book.Content, &book.Tags, &book.Price, &book.StockLevel,
		&book.CreatedAt, &book.UpdatedAt,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &book, nil
}
