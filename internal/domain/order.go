package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// ValidStatus reports whether s is one of the known order statuses.
// Transitions between them are not constrained; the admin may move an order
// back and forth freely.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID             string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CustomerName   string      `json:"customerName" gorm:"not null"`
	CustomerEmail  *string     `json:"customerEmail"`
	CustomerPhone  string      `json:"customerPhone" gorm:"not null"`
	Address        string      `json:"address" gorm:"not null"`
	DetailAddress  *string     `json:"detailAddress"`
	Message        *string     `json:"message" gorm:"type:text"`
	TotalAmount    int64       `json:"totalAmount" gorm:"not null"`
	Status         OrderStatus `json:"status" gorm:"type:varchar(20);default:'PENDING';index"`
	Carrier        *string     `json:"carrier"`
	TrackingNumber *string     `json:"trackingNumber"`
	Items          []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time   `json:"createdAt" gorm:"autoCreateTime;index"`
}

// OrderItem snapshots the product price at order time. ProductID is a lookup
// reference only; deleting the product later leaves the snapshot intact.
type OrderItem struct {
	ID           string            `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID      string            `json:"orderId" gorm:"type:varchar(36);index;not null"`
	ProductID    string            `json:"productId" gorm:"type:varchar(36);index;not null"`
	ProductTitle string            `json:"productTitle"`
	Quantity     int64             `json:"quantity" gorm:"not null"`
	Price        int64             `json:"price" gorm:"not null"`
	Options      map[string]string `json:"options" gorm:"serializer:json"`
}
