package mysql

import (
	"context"
	"errors"
	"time"

	"shop-service/internal/domain"
	"shop-service/internal/repository"

	"gorm.io/gorm"
)

type inquiryRepo struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) repository.InquiryRepository {
	return &inquiryRepo{db: db}
}

func (r *inquiryRepo) Create(ctx context.Context, inq *domain.Inquiry) error {
	return r.db.WithContext(ctx).Create(inq).Error
}

func (r *inquiryRepo) FindByID(ctx context.Context, id string) (*domain.Inquiry, error) {
	var inq domain.Inquiry
	if err := r.db.WithContext(ctx).First(&inq, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inq, nil
}

func (r *inquiryRepo) List(ctx context.Context) ([]domain.Inquiry, error) {
	var out []domain.Inquiry
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *inquiryRepo) Reply(ctx context.Context, id, answer string) (*domain.Inquiry, error) {
	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&domain.Inquiry{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"answer":     answer,
			"is_replied": true,
			"replied_at": now,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, repository.ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *inquiryRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Inquiry{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *inquiryRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Inquiry{}).Count(&n).Error
	return n, err
}
