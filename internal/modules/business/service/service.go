package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ummahconnect/backend/internal/entity"
	"github.com/ummahconnect/backend/internal/modules/business/dto"
	"github.com/ummahconnect/backend/internal/modules/business/repository"
	"github.com/ummahconnect/backend/internal/store"
)

type BusinessService interface {
	Create(ctx context.Context, input dto.CreateBusinessInput) (*entity.Business, error)
	List(ctx context.Context, query dto.ListBusinessesQuery) ([]entity.Business, error)
}

type businessService struct {
	repo repository.BusinessRepository
}

func NewBusinessService(repo repository.BusinessRepository) BusinessService {
	return &businessService{repo: repo}
}

func (s *businessService) Create(ctx context.Context, input dto.CreateBusinessInput) (*entity.Business, error) {
	contactInfo := input.ContactInfo
	if contactInfo == nil {
		contactInfo = map[string]string{}
	}

	b := &entity.Business{
		ID:               uuid.NewString(),
		Name:             input.Name,
		Description:      input.Description,
		Category:         input.Category,
		ContactInfo:      contactInfo,
		Address:          input.Address,
		IsHalalCertified: input.IsHalalCertified,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// List filters by exact category through the store and by name/description
// substring in memory.
func (s *businessService) List(ctx context.Context, query dto.ListBusinessesQuery) ([]entity.Business, error) {
	filter := store.Filter{}
	if query.Category != "" {
		filter["category"] = query.Category
	}

	businesses, err := s.repo.Find(ctx, filter, 0)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query.Search)
	out := make([]entity.Business, 0, len(businesses))
	for _, b := range businesses {
		if needle != "" &&
			!strings.Contains(strings.ToLower(b.Name), needle) &&
			!strings.Contains(strings.ToLower(b.Description), needle) {
			continue
		}
		out = append(out, b)
	}

	// Newest first, then cut to the limit.
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if query.Limit > 0 && int64(len(out)) > query.Limit {
		out = out[:query.Limit]
	}
	return out, nil
}
