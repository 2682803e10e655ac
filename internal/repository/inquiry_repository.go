package repository

import (
	"context"

	"shop-service/internal/domain"
)

type InquiryRepository interface {
	Create(ctx context.Context, inq *domain.Inquiry) error
	FindByID(ctx context.Context, id string) (*domain.Inquiry, error)
	List(ctx context.Context) ([]domain.Inquiry, error)
	Reply(ctx context.Context, id, answer string) (*domain.Inquiry, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
