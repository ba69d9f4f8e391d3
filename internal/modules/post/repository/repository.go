package repository

import (
	"context"

	"github.com/ummahconnect/backend/internal/entity"
	"github.com/ummahconnect/backend/internal/store"
)

const (
	CollectionPosts    = "posts"
	CollectionComments = "comments"
)

type PostRepository interface {
	Insert(ctx context.Context, post *entity.Post) error
	FindByID(ctx context.Context, id string) (*entity.Post, error)
	FindAll(ctx context.Context, limit int64) ([]entity.Post, error)
	IncrementCommentsCount(ctx context.Context, id string, delta int64) error
	Count(ctx context.Context, filter store.Filter) (int64, error)

	InsertComment(ctx context.Context, comment *entity.Comment) error
	FindCommentsByPostID(ctx context.Context, postID string) ([]entity.Comment, error)
}

type postRepository struct {
	store store.Store
}

func NewPostRepository(st store.Store) PostRepository {
	return &postRepository{store: st}
}

func (r *postRepository) Insert(ctx context.Context, post *entity.Post) error {
	return r.store.Insert(ctx, CollectionPosts, post)
}

func (r *postRepository) FindByID(ctx context.Context, id string) (*entity.Post, error) {
	var post entity.Post
	if err := r.store.FindOne(ctx, CollectionPosts, store.Filter{"id": id}, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) FindAll(ctx context.Context, limit int64) ([]entity.Post, error) {
	var posts []entity.Post
	if err := r.store.FindMany(ctx, CollectionPosts, store.Filter{}, limit, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) IncrementCommentsCount(ctx context.Context, id string, delta int64) error {
	_, err := r.store.Update(ctx, CollectionPosts, store.Filter{"id": id}, store.Patch{
		Inc: map[string]int64{"comments_count": delta},
	})
	return err
}

func (r *postRepository) Count(ctx context.Context, filter store.Filter) (int64, error) {
	return r.store.Count(ctx, CollectionPosts, filter)
}

func (r *postRepository) InsertComment(ctx context.Context, comment *entity.Comment) error {
	return r.store.Insert(ctx, CollectionComments, comment)
}

func (r *postRepository) FindCommentsByPostID(ctx context.Context, postID string) ([]entity.Comment, error) {
	var comments []entity.Comment
	if err := r.store.FindMany(ctx, CollectionComments, store.Filter{"post_id": postID}, 0, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
