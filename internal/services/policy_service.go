package services

import (
	"context"
	"errors"

	"shop-service/internal/domain"
	"shop-service/internal/i18n"
	"shop-service/internal/repository"

	"github.com/google/uuid"
)

var ErrPolicyNotFound = errors.New("policy not found")

type PolicyService struct {
	policies repository.PolicyRepository
}

func NewPolicyService(r repository.PolicyRepository) *PolicyService {
	return &PolicyService{policies: r}
}

// Get returns the stored page for slug+locale, falling back to the bundled
// defaults when nothing has been saved yet.
func (s *PolicyService) Get(ctx context.Context, slug, locale string) (*domain.Policy, error) {
	p, err := s.policies.Find(ctx, slug, locale)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	if def, ok := i18n.DefaultPolicy(slug, locale); ok {
		return &def, nil
	}
	return nil, ErrPolicyNotFound
}

func (s *PolicyService) List(ctx context.Context) ([]domain.Policy, error) {
	return s.policies.List(ctx)
}

func (s *PolicyService) Upsert(ctx context.Context, p *domain.Policy) error {
	if p.Slug == "" || p.Locale == "" {
		return errors.New("slug and locale are required")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return s.policies.Upsert(ctx, p)
}
