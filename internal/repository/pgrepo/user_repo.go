package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

const userColumns = "user_id, password, balance, created_at, updated_at"

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO users (user_id, password) VALUES ($1, $2) RETURNING `+userColumns,
		args.UserID, args.Password,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user `%s`", args.UserID)
	}
	return user, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user `%s`", userID)
	}
	return user, nil
}

// CreditBalance безусловно увеличивает баланс юзера. Возвращает false если
// юзер не найден.
func (r *UserRepository) CreditBalance(ctx context.Context, userID string, amount int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET balance = balance + $2, updated_at = now() WHERE user_id = $1`,
		userID, amount,
	)
	if err != nil {
		return false, convertErr(err, "crediting balance of user `%s`", userID)
	}
	return tag.RowsAffected() == 1, nil
}

// DebitBalance условное списание: применяется только если balance >= amount
// на момент записи. false означает, что баланса не хватило (в том числе из-за
// конкурентного списания между чтением и этим апдейтом).
func (r *UserRepository) DebitBalance(ctx context.Context, userID string, amount int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET balance = balance - $2, updated_at = now() WHERE user_id = $1 AND balance >= $2`,
		userID, amount,
	)
	if err != nil {
		return false, convertErr(err, "debiting balance of user `%s`", userID)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID, password string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET password = $2, updated_at = now() WHERE user_id = $1`,
		userID, password,
	)
	if err != nil {
		return false, convertErr(err, "updating password of user `%s`", userID)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, userID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, userID)
	if err != nil {
		return false, convertErr(err, "deleting user `%s`", userID)
	}
	return tag.RowsAffected() == 1, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(&user.UserID, &user.Password, &user.Balance, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}
