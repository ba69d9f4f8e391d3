package service

import (
	"context"

	"github.com/ummahconnect/backend/internal/entity"
	postRepo "github.com/ummahconnect/backend/internal/modules/post/repository"
	userRepo "github.com/ummahconnect/backend/internal/modules/user/repository"
	"github.com/ummahconnect/backend/internal/store"
)

type DashboardStats struct {
	TotalMembers int64 `json:"total_members"`
	Mentors      int64 `json:"mentors"`
	Mentees      int64 `json:"mentees"`
	TotalPosts   int64 `json:"total_posts"`
}

type StatService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type statService struct {
	users userRepo.UserRepository
	posts postRepo.PostRepository
}

func NewStatService(users userRepo.UserRepository, posts postRepo.PostRepository) StatService {
	return &statService{users: users, posts: posts}
}

func (s *statService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalMembers, err = s.users.Count(ctx, store.Filter{}); err != nil {
		return nil, err
	}
	if stats.Mentors, err = s.users.Count(ctx, store.Filter{"role": entity.RoleMentor}); err != nil {
		return nil, err
	}
	if stats.Mentees, err = s.users.Count(ctx, store.Filter{"role": entity.RoleMentee}); err != nil {
		return nil, err
	}
	if stats.TotalPosts, err = s.posts.Count(ctx, store.Filter{}); err != nil {
		return nil, err
	}

	return stats, nil
}
