package repository

import (
	"context"

	"github.com/ummahconnect/backend/internal/entity"
	"github.com/ummahconnect/backend/internal/store"
)

const CollectionAnnouncements = "announcements"

type AnnouncementRepository interface {
	Insert(ctx context.Context, a *entity.Announcement) error
	FindActive(ctx context.Context, limit int64) ([]entity.Announcement, error)
}

type announcementRepository struct {
	store store.Store
}

func NewAnnouncementRepository(st store.Store) AnnouncementRepository {
	return &announcementRepository{store: st}
}

func (r *announcementRepository) Insert(ctx context.Context, a *entity.Announcement) error {
	return r.store.Insert(ctx, CollectionAnnouncements, a)
}

func (r *announcementRepository) FindActive(ctx context.Context, limit int64) ([]entity.Announcement, error) {
	var announcements []entity.Announcement
	if err := r.store.FindMany(ctx, CollectionAnnouncements, store.Filter{"is_active": true}, limit, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}
