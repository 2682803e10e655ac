package domain

import "time"

type OrderPlacedEvent struct {
	OrderID      string    `json:"orderId"`
	CustomerName string    `json:"customerName"`
	TotalAmount  int64     `json:"totalAmount"`
	ItemCount    int       `json:"itemCount"`
	CreatedAt    time.Time `json:"createdAt"`
}
