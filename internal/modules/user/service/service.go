package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ummahconnect/backend/internal/auth"
	"github.com/ummahconnect/backend/internal/entity"
	"github.com/ummahconnect/backend/internal/modules/user/dto"
	"github.com/ummahconnect/backend/internal/modules/user/repository"
	"github.com/ummahconnect/backend/internal/store"
	"github.com/ummahconnect/backend/pkg/apperror"
)

type UserService interface {
	Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error)
	Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	List(ctx context.Context, query dto.ListUsersQuery) ([]entity.User, error)
	UpdateProfile(ctx context.Context, userID string, input dto.UpdateProfileInput) (*entity.User, error)
}

type userService struct {
	repo   repository.UserRepository
	tokens *auth.TokenManager
}

func NewUserService(repo repository.UserRepository, tokens *auth.TokenManager) UserService {
	return &userService{repo: repo, tokens: tokens}
}

func (s *userService) Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error) {
	// Email uniqueness is a pre-check, not a store constraint; concurrent
	// registrations of the same address can still race.
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperror.New(0, "email already registered", apperror.ErrConflict)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = entity.RoleMember
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: hash,
		FullName:     input.FullName,
		Role:         role,
		Skills:       []string{},
		Interests:    []string{},
		SocialLinks:  map[string]string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, err
	}

	return s.buildAuthResponse(user.ID)
}

func (s *userService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperror.New(0, "invalid email or password", apperror.ErrUnauthorized)
		}
		return nil, err
	}

	if !auth.CheckPassword(input.Password, user.PasswordHash) {
		return nil, apperror.New(0, "invalid email or password", apperror.ErrUnauthorized)
	}

	return s.buildAuthResponse(user.ID)
}

func (s *userService) buildAuthResponse(userID string) (*dto.AuthResponse, error) {
	token, err := s.tokens.Issue(userID)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{AccessToken: token, TokenType: "bearer"}, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperror.New(0, "user not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	sanitized := user.Sanitize()
	return &sanitized, nil
}

// List returns members, optionally filtered by a case-insensitive substring
// over name, bio, skills, interests and country. The store only does
// equality matching, so the search happens here.
func (s *userService) List(ctx context.Context, query dto.ListUsersQuery) ([]entity.User, error) {
	users, err := s.repo.FindAll(ctx, 0)
	if err != nil {
		return nil, err
	}

	out := make([]entity.User, 0, len(users))
	needle := strings.ToLower(query.Search)
	for _, u := range users {
		if needle != "" && !userMatches(u, needle) {
			continue
		}
		out = append(out, u.Sanitize())
	}

	// Sort, then cut to the limit so the newest members survive.
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if query.Limit > 0 && int64(len(out)) > query.Limit {
		out = out[:query.Limit]
	}
	return out, nil
}

func userMatches(u entity.User, needle string) bool {
	if strings.Contains(strings.ToLower(u.FullName), needle) ||
		strings.Contains(strings.ToLower(u.Bio), needle) ||
		strings.Contains(strings.ToLower(u.Country), needle) {
		return true
	}
	for _, s := range u.Skills {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	for _, s := range u.Interests {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

// UpdateProfile applies a whitelisted self-update. The input type only
// carries the allow-listed fields, so nothing else can reach the store via
// this path no matter what the caller submitted.
func (s *userService) UpdateProfile(ctx context.Context, userID string, input dto.UpdateProfileInput) (*entity.User, error) {
	set := input.Fields()
	set["updated_at"] = time.Now().UTC()

	if err := s.repo.UpdateByID(ctx, userID, set); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperror.New(0, "user not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	return s.GetByID(ctx, userID)
}
