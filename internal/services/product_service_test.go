package services

import (
	"context"
	"testing"

	"shop-service/internal/domain"
	"shop-service/internal/mocks"
	"shop-service/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductService_GetBySlug(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	repo.On("FindBySlug", mock.Anything, "bear").
		Return(testProduct("p1", "bear", "Classic Brown Bear", 35000, int64ptr(5), 3000), nil)
	repo.On("FindBySlug", mock.Anything, "ghost").Return(nil, nil)

	svc := NewProductService(repo)

	p, err := svc.GetBySlug(context.Background(), "bear")
	assert.NoError(t, err)
	assert.Equal(t, "p1", p.ID)

	_, err = svc.GetBySlug(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_Create(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.ID != "" && p.Slug == "bear"
	})).Return(nil)

	svc := NewProductService(repo)
	err := svc.Create(context.Background(), &domain.Product{Slug: "bear", Title: "Classic Brown Bear", Price: 35000})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestProductService_Update(t *testing.T) {
	t.Run("existing product", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		existing := testProduct("p1", "bear", "Classic Brown Bear", 35000, int64ptr(5), 3000)
		updated := testProduct("p1", "brown-bear", "Classic Brown Bear", 38000, int64ptr(5), 3000)
		repo.On("FindByID", mock.Anything, "p1").Return(existing, nil)
		repo.On("Update", mock.Anything, updated).Return(nil)

		svc := NewProductService(repo)
		assert.NoError(t, svc.Update(context.Background(), updated))
		repo.AssertExpectations(t)
	})

	t.Run("unknown product", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		repo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

		svc := NewProductService(repo)
		err := svc.Update(context.Background(), &domain.Product{ID: "ghost"})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestProductService_Delete(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	repo.On("FindByID", mock.Anything, "p1").
		Return(testProduct("p1", "bear", "Classic Brown Bear", 35000, int64ptr(5), 3000), nil)
	repo.On("Delete", mock.Anything, "p1").Return(nil)
	repo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

	svc := NewProductService(repo)
	assert.NoError(t, svc.Delete(context.Background(), "p1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "ghost"), ErrProductNotFound)
	repo.AssertExpectations(t)
}

func TestProductService_Reorder(t *testing.T) {
	items := []repository.DisplayOrder{{ID: "p2", Order: 0}, {ID: "p1", Order: 1}}
	repo := new(mocks.MockProductRepository)
	repo.On("Reorder", mock.Anything, items).Return(nil)

	svc := NewProductService(repo)
	assert.NoError(t, svc.Reorder(context.Background(), items))
	repo.AssertExpectations(t)
}
