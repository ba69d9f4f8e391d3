package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ummahconnect/backend/internal/entity"
	"github.com/ummahconnect/backend/internal/modules/forum/dto"
	"github.com/ummahconnect/backend/internal/modules/forum/repository"
	"github.com/ummahconnect/backend/internal/store"
)

type ForumService interface {
	CreateTopic(ctx context.Context, creator *entity.User, input dto.CreateTopicInput) (*entity.ForumTopic, error)
	ListTopics(ctx context.Context, query dto.ListTopicsQuery) ([]entity.ForumTopic, error)
}

type forumService struct {
	repo repository.ForumRepository
}

func NewForumService(repo repository.ForumRepository) ForumService {
	return &forumService{repo: repo}
}

func (s *forumService) CreateTopic(ctx context.Context, creator *entity.User, input dto.CreateTopicInput) (*entity.ForumTopic, error) {
	category := input.Category
	if category == "" {
		category = "General"
	}

	now := time.Now().UTC()
	topic := &entity.ForumTopic{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Description:  input.Description,
		Category:     category,
		CreatorID:    creator.ID,
		CreatorName:  creator.FullName,
		LastActivity: now,
		CreatedAt:    now,
	}

	if err := s.repo.Insert(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *forumService) ListTopics(ctx context.Context, query dto.ListTopicsQuery) ([]entity.ForumTopic, error) {
	filter := store.Filter{}
	if query.Category != "" {
		filter["category"] = query.Category
	}

	topics, err := s.repo.Find(ctx, filter, 0)
	if err != nil {
		return nil, err
	}

	// Most recently active first, then cut to the limit.
	sort.Slice(topics, func(i, j int) bool { return topics[i].LastActivity.After(topics[j].LastActivity) })
	if query.Limit > 0 && int64(len(topics)) > query.Limit {
		topics = topics[:query.Limit]
	}
	return topics, nil
}
