package services

import (
	"context"

	"shop-service/internal/domain"
	"shop-service/internal/repository"
)

// DashboardStats aggregates everything the admin landing page shows.
type DashboardStats struct {
	ProductCount  int64                        `json:"productCount"`
	OrderCount    int64                        `json:"orderCount"`
	InquiryCount  int64                        `json:"inquiryCount"`
	OrdersByState map[domain.OrderStatus]int64 `json:"ordersByStatus"`
	RecentOrders  []domain.Order               `json:"recentOrders"`
	TopProducts   []repository.ProductSales    `json:"topProducts"`
}

type DashboardService struct {
	products  repository.ProductRepository
	orders    repository.OrderRepository
	inquiries repository.InquiryRepository
}

func NewDashboardService(p repository.ProductRepository, o repository.OrderRepository, i repository.InquiryRepository) *DashboardService {
	return &DashboardService{products: p, orders: o, inquiries: i}
}

func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	productCount, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	orderCount, err := s.orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	inquiryCount, err := s.inquiries.Count(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.orders.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.orders.Recent(ctx, 5)
	if err != nil {
		return nil, err
	}
	top, err := s.orders.TopProducts(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		ProductCount:  productCount,
		OrderCount:    orderCount,
		InquiryCount:  inquiryCount,
		OrdersByState: byStatus,
		RecentOrders:  recent,
		TopProducts:   top,
	}, nil
}
