package repository

import (
	"context"

	"shop-service/internal/domain"
)

// OrderTx is the view of the store available inside the atomic order commit.
// ProductForUpdate must hold a row lock (or equivalent) until the surrounding
// transaction ends, so that concurrent commits contending on the same stock
// are serialized.
type OrderTx interface {
	ProductForUpdate(ctx context.Context, id string) (*domain.Product, error)
	DecrementStock(ctx context.Context, id string, qty int64) error
	CreateOrder(ctx context.Context, order *domain.Order) error
}

// ProductSales is a dashboard aggregate: total quantity ordered per product.
type ProductSales struct {
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	Quantity  int64  `json:"quantity"`
}

type OrderRepository interface {
	// PlaceOrder runs fn inside one transaction; any error from fn rolls the
	// whole commit back.
	PlaceOrder(ctx context.Context, fn func(tx OrderTx) error) error

	FindByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, carrier, trackingNumber *string) error
	// Delete removes the order and its items in one transaction.
	Delete(ctx context.Context, id string) error

	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[domain.OrderStatus]int64, error)
	Recent(ctx context.Context, limit int) ([]domain.Order, error)
	TopProducts(ctx context.Context, limit int) ([]ProductSales, error)
}
