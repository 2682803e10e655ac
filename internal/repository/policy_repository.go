package repository

import (
	"context"

	"shop-service/internal/domain"
)

type PolicyRepository interface {
	Find(ctx context.Context, slug, locale string) (*domain.Policy, error)
	List(ctx context.Context) ([]domain.Policy, error)
	Upsert(ctx context.Context, p *domain.Policy) error
}
