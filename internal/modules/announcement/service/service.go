package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ummahconnect/backend/internal/entity"
	"github.com/ummahconnect/backend/internal/modules/announcement/dto"
	"github.com/ummahconnect/backend/internal/modules/announcement/repository"
)

type AnnouncementService interface {
	Create(ctx context.Context, author *entity.User, input dto.CreateAnnouncementInput) (*entity.Announcement, error)
	ListActive(ctx context.Context, query dto.ListAnnouncementsQuery) ([]entity.Announcement, error)
}

type announcementService struct {
	repo repository.AnnouncementRepository
}

func NewAnnouncementService(repo repository.AnnouncementRepository) AnnouncementService {
	return &announcementService{repo: repo}
}

// Create stores an announcement. The admin check lives in the route
// middleware, not here.
func (s *announcementService) Create(ctx context.Context, author *entity.User, input dto.CreateAnnouncementInput) (*entity.Announcement, error) {
	announcementType := input.AnnouncementType
	if announcementType == "" {
		announcementType = entity.AnnouncementGeneral
	}
	priority := input.Priority
	if priority == "" {
		priority = entity.PriorityNormal
	}

	a := &entity.Announcement{
		ID:               uuid.NewString(),
		Title:            input.Title,
		Content:          input.Content,
		AuthorID:         author.ID,
		AuthorName:       author.FullName,
		AnnouncementType: announcementType,
		Priority:         priority,
		IsActive:         true,
		CreatedAt:        time.Now().UTC(),
		ExpiresAt:        input.ExpiresAt,
	}

	if err := s.repo.Insert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *announcementService) ListActive(ctx context.Context, query dto.ListAnnouncementsQuery) ([]entity.Announcement, error) {
	announcements, err := s.repo.FindActive(ctx, 0)
	if err != nil {
		return nil, err
	}
	// Sort before cutting to the limit so the newest survive.
	sort.Slice(announcements, func(i, j int) bool {
		return announcements[i].CreatedAt.After(announcements[j].CreatedAt)
	})
	if query.Limit > 0 && int64(len(announcements)) > query.Limit {
		announcements = announcements[:query.Limit]
	}
	return announcements, nil
}
