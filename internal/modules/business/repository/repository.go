package repository

import (
	"context"

	"github.com/ummahconnect/backend/internal/entity"
	"github.com/ummahconnect/backend/internal/store"
)

const CollectionBusinesses = "businesses"

type BusinessRepository interface {
	Insert(ctx context.Context, b *entity.Business) error
	Find(ctx context.Context, filter store.Filter, limit int64) ([]entity.Business, error)
}

type businessRepository struct {
	store store.Store
}

func NewBusinessRepository(st store.Store) BusinessRepository {
	return &businessRepository{store: st}
}

func (r *businessRepository) Insert(ctx context.Context, b *entity.Business) error {
	return r.store.Insert(ctx, CollectionBusinesses, b)
}

func (r *businessRepository) Find(ctx context.Context, filter store.Filter, limit int64) ([]entity.Business, error) {
	var businesses []entity.Business
	if err := r.store.FindMany(ctx, CollectionBusinesses, filter, limit, &businesses); err != nil {
		return nil, err
	}
	return businesses, nil
}
