package repository

import (
	"context"

	"github.com/ummahconnect/backend/internal/entity"
	"github.com/ummahconnect/backend/internal/store"
)

const CollectionUsers = "users"

type UserRepository interface {
	Insert(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context, limit int64) ([]entity.User, error)
	UpdateByID(ctx context.Context, id string, set map[string]any) error
	IncrementPostsCount(ctx context.Context, id string, delta int64) error
	Count(ctx context.Context, filter store.Filter) (int64, error)
}

type userRepository struct {
	store store.Store
}

func NewUserRepository(st store.Store) UserRepository {
	return &userRepository{store: st}
}

func (r *userRepository) Insert(ctx context.Context, user *entity.User) error {
	return r.store.Insert(ctx, CollectionUsers, user)
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	if err := r.store.FindOne(ctx, CollectionUsers, store.Filter{"id": id}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	if err := r.store.FindOne(ctx, CollectionUsers, store.Filter{"email": email}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context, limit int64) ([]entity.User, error) {
	var users []entity.User
	if err := r.store.FindMany(ctx, CollectionUsers, store.Filter{}, limit, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdateByID(ctx context.Context, id string, set map[string]any) error {
	matched, err := r.store.Update(ctx, CollectionUsers, store.Filter{"id": id}, store.Patch{Set: set})
	if err != nil {
		return err
	}
	if matched == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *userRepository) IncrementPostsCount(ctx context.Context, id string, delta int64) error {
	_, err := r.store.Update(ctx, CollectionUsers, store.Filter{"id": id}, store.Patch{
		Inc: map[string]int64{"posts_count": delta},
	})
	return err
}

func (r *userRepository) Count(ctx context.Context, filter store.Filter) (int64, error) {
	return r.store.Count(ctx, CollectionUsers, filter)
}
