package repository

import (
	"context"

	"github.com/ummahconnect/backend/internal/entity"
	"github.com/ummahconnect/backend/internal/store"
)

const CollectionForumTopics = "forum_topics"

type ForumRepository interface {
	Insert(ctx context.Context, topic *entity.ForumTopic) error
	Find(ctx context.Context, filter store.Filter, limit int64) ([]entity.ForumTopic, error)
}

type forumRepository struct {
	store store.Store
}

func NewForumRepository(st store.Store) ForumRepository {
	return &forumRepository{store: st}
}

func (r *forumRepository) Insert(ctx context.Context, topic *entity.ForumTopic) error {
	return r.store.Insert(ctx, CollectionForumTopics, topic)
}

func (r *forumRepository) Find(ctx context.Context, filter store.Filter, limit int64) ([]entity.ForumTopic, error) {
	var topics []entity.ForumTopic
	if err := r.store.FindMany(ctx, CollectionForumTopics, filter, limit, &topics); err != nil {
		return nil, err
	}
	return topics, nil
}
