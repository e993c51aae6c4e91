package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

type StoreRepository struct {
	db uow.DBTX
}

func NewStoreRepository(db uow.DBTX) *StoreRepository {
	return &StoreRepository{db: db}
}

func (r *StoreRepository) CreateStore(ctx context.Context, storeID, ownerID string) (*domain.Store, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO stores (store_id, owner_id) VALUES ($1, $2) RETURNING store_id, owner_id, created_at`,
		storeID, ownerID,
	)
	var store domain.Store
	if err := row.Scan(&store.StoreID, &store.OwnerID, &store.CreatedAt); err != nil {
		return nil, convertErr(err, "creating store `%s`", storeID)
	}
	return &store, nil
}

func (r *StoreRepository) FindStoreByID(ctx context.Context, storeID string) (*domain.Store, error) {
	row := r.db.QueryRow(ctx,
		`SELECT store_id, owner_id, created_at FROM stores WHERE store_id = $1`, storeID)
	var store domain.Store
	if err := row.Scan(&store.StoreID, &store.OwnerID, &store.CreatedAt); err != nil {
		return nil, convertErr(err, "finding store `%s`", storeID)
	}
	return &store, nil
}
