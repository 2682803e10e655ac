package repository

import (
	"context"

	"shop-service/internal/domain"
)

// DisplayOrder is one entry of a drag-and-drop reorder batch.
type DisplayOrder struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
	// Reorder applies a batch of display-order updates in one transaction.
	Reorder(ctx context.Context, items []DisplayOrder) error
	Count(ctx context.Context) (int64, error)
}
