package services

import (
	"context"
	"errors"

	"shop-service/internal/domain"
	"shop-service/internal/infra/cache"
	"shop-service/internal/repository"

	"github.com/google/uuid"
)

var ErrProductNotFound = errors.New("product not found")

type ProductService struct {
	products repository.ProductRepository
	cache    *cache.ProductCache
}

func NewProductService(r repository.ProductRepository) *ProductService {
	return &ProductService{products: r}
}

func (s *ProductService) SetProductCache(c *cache.ProductCache) {
	s.cache = c
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

// GetBySlug serves the public product detail page, Redis-first.
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	if p := s.cache.Get(ctx, slug); p != nil {
		return p, nil
	}

	p, err := s.products.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	s.cache.Set(ctx, p)
	return p, nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *ProductService) Create(ctx context.Context, p *domain.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return s.products.Create(ctx, p)
}

func (s *ProductService) Update(ctx context.Context, p *domain.Product) error {
	existing, err := s.products.FindByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}

	if err := s.products.Update(ctx, p); err != nil {
		return err
	}
	// the slug itself may have changed; drop both cache entries
	s.cache.Invalidate(ctx, existing.Slug, p.Slug)
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	existing, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, existing.Slug)
	return nil
}

// Reorder applies the admin drag-and-drop display order in one transaction.
func (s *ProductService) Reorder(ctx context.Context, items []repository.DisplayOrder) error {
	return s.products.Reorder(ctx, items)
}

// WarmupCache preloads the full catalogue into Redis.
func (s *ProductService) WarmupCache(ctx context.Context) error {
	products, err := s.products.List(ctx)
	if err != nil {
		return err
	}
	return s.cache.Warmup(ctx, products)
}
