package mysql

import (
	"context"
	"errors"

	"shop-service/internal/domain"
	"shop-service/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type policyRepo struct {
	db *gorm.DB
}

func NewPolicyRepository(db *gorm.DB) repository.PolicyRepository {
	return &policyRepo{db: db}
}

func (r *policyRepo) Find(ctx context.Context, slug, locale string) (*domain.Policy, error) {
	var p domain.Policy
	err := r.db.WithContext(ctx).
		First(&p, "slug = ? AND locale = ?", slug, locale).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *policyRepo) List(ctx context.Context) ([]domain.Policy, error) {
	var out []domain.Policy
	if err := r.db.WithContext(ctx).Order("slug, locale").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *policyRepo) Upsert(ctx context.Context, p *domain.Policy) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}, {Name: "locale"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "intro", "sections", "updated_at"}),
		}).
		Create(p).Error
}
