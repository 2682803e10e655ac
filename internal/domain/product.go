package domain

import "time"

// Product is a catalogue entry. Stock is nil for made-to-order items, which
// are never depleted by orders.
type Product struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Slug         string    `json:"slug" gorm:"uniqueIndex;type:varchar(191);not null"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description" gorm:"type:text"`
	Price        int64     `json:"price" gorm:"not null"`
	Stock        *int64    `json:"stock"`
	MadeToOrder  bool      `json:"madeToOrder" gorm:"default:false"`
	LeadTimeDays int       `json:"leadTimeDays"`
	ShippingFee  int64     `json:"shippingFee" gorm:"default:3000"`
	Images       []string  `json:"images" gorm:"serializer:json"`
	DisplayOrder int       `json:"displayOrder" gorm:"column:display_order;index"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
