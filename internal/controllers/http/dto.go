package http

import (
	"shop-service/internal/domain"
	"shop-service/internal/repository"
)

type SubmitOrderResponse struct {
	OrderID   string `json:"orderId"`
	ClearCart bool   `json:"clearCart"`
}

type UpdateOrderStatusRequest struct {
	Status         string  `json:"status" binding:"required"`
	Carrier        *string `json:"carrier"`
	TrackingNumber *string `json:"trackingNumber"`
}

type SendOrderEmailRequest struct {
	Subject       string `json:"subject" binding:"required"`
	Message       string `json:"message" binding:"required"`
	AttachInvoice bool   `json:"attachInvoice"`
	Locale        string `json:"locale"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ProductRequest struct {
	Slug         string   `json:"slug" binding:"required"`
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	Price        int64    `json:"price" binding:"gte=0"`
	Stock        *int64   `json:"stock"`
	MadeToOrder  bool     `json:"madeToOrder"`
	LeadTimeDays int      `json:"leadTimeDays"`
	ShippingFee  int64    `json:"shippingFee"`
	Images       []string `json:"images"`
	DisplayOrder int      `json:"displayOrder"`
}

func (r ProductRequest) toDomain(id string) *domain.Product {
	return &domain.Product{
		ID:           id,
		Slug:         r.Slug,
		Title:        r.Title,
		Description:  r.Description,
		Price:        r.Price,
		Stock:        r.Stock,
		MadeToOrder:  r.MadeToOrder,
		LeadTimeDays: r.LeadTimeDays,
		ShippingFee:  r.ShippingFee,
		Images:       r.Images,
		DisplayOrder: r.DisplayOrder,
	}
}

type ReorderRequest struct {
	Items []repository.DisplayOrder `json:"items" binding:"required"`
}

type ReplyInquiryRequest struct {
	Answer       string `json:"answer" binding:"required"`
	SendEmail    bool   `json:"sendEmail"`
	EmailSubject string `json:"emailSubject"`
	EmailContent string `json:"emailContent"`
	EmailAddress string `json:"emailAddress"`
}

type PolicyRequest struct {
	Title    string                 `json:"title" binding:"required"`
	Intro    *string                `json:"intro"`
	Sections []domain.PolicySection `json:"sections"`
}
