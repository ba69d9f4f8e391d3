package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ummahconnect/backend/internal/entity"
	"github.com/ummahconnect/backend/internal/modules/post/dto"
	"github.com/ummahconnect/backend/internal/modules/post/repository"
	userRepo "github.com/ummahconnect/backend/internal/modules/user/repository"
	"github.com/ummahconnect/backend/internal/store"
	"github.com/ummahconnect/backend/pkg/apperror"
)

type PostService interface {
	Create(ctx context.Context, author *entity.User, input dto.CreatePostInput) (*entity.Post, error)
	List(ctx context.Context, query dto.ListPostsQuery) ([]entity.Post, error)
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	CreateComment(ctx context.Context, author *entity.User, postID string, input dto.CreateCommentInput) (*entity.Comment, error)
	ListComments(ctx context.Context, postID string) ([]entity.Comment, error)
}

type postService struct {
	repo     repository.PostRepository
	userRepo userRepo.UserRepository
}

func NewPostService(repo repository.PostRepository, users userRepo.UserRepository) PostService {
	return &postService{repo: repo, userRepo: users}
}

// Create inserts a post with the author's display fields denormalized and
// bumps the author's posts_count. The counter moves only through this path.
func (s *postService) Create(ctx context.Context, author *entity.User, input dto.CreatePostInput) (*entity.Post, error) {
	postType := input.PostType
	if postType == "" {
		postType = entity.PostTypeGeneral
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	post := &entity.Post{
		ID:            uuid.NewString(),
		Content:       input.Content,
		AuthorID:      author.ID,
		AuthorName:    author.FullName,
		AuthorRole:    author.Role,
		AuthorCountry: author.Country,
		PostType:      postType,
		ImageURL:      input.ImageURL,
		Tags:          tags,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Insert(ctx, post); err != nil {
		return nil, err
	}

	if err := s.userRepo.IncrementPostsCount(ctx, author.ID, 1); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) List(ctx context.Context, query dto.ListPostsQuery) ([]entity.Post, error) {
	posts, err := s.repo.FindAll(ctx, 0)
	if err != nil {
		return nil, err
	}
	// Newest first, then cut; the store leaves ordering to callers, so
	// limiting the fetch would drop the newest records instead.
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	if query.Limit > 0 && int64(len(posts)) > query.Limit {
		posts = posts[:query.Limit]
	}
	return posts, nil
}

func (s *postService) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperror.New(0, "post not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	return post, nil
}

// CreateComment requires the parent post to exist and bumps only that
// post's comments_count.
func (s *postService) CreateComment(ctx context.Context, author *entity.User, postID string, input dto.CreateCommentInput) (*entity.Comment, error) {
	if _, err := s.repo.FindByID(ctx, postID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperror.New(0, "post not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	comment := &entity.Comment{
		ID:         uuid.NewString(),
		Content:    input.Content,
		PostID:     postID,
		AuthorID:   author.ID,
		AuthorName: author.FullName,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.InsertComment(ctx, comment); err != nil {
		return nil, err
	}

	if err := s.repo.IncrementCommentsCount(ctx, postID, 1); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *postService) ListComments(ctx context.Context, postID string) ([]entity.Comment, error) {
	comments, err := s.repo.FindCommentsByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	// Oldest first, conversation order.
	sort.Slice(comments, func(i, j int) bool { return comments[i].CreatedAt.Before(comments[j].CreatedAt) })
	return comments, nil
}
