package services

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidCart = errors.New("Invalid cart items")
	ErrNoItems     = errors.New("No items to order")
)

// OrderForm carries the raw submitted fields. Exactly one order mode must
// resolve to line items: direct-buy (productId+quantity) or cart (items as a
// JSON-encoded array of {id, quantity}).
type OrderForm struct {
	CustomerName  string `json:"customerName" validate:"required"`
	CustomerEmail string `json:"customerEmail" validate:"omitempty,email"`
	CustomerPhone string `json:"customerPhone" validate:"required"`
	Address       string `json:"address" validate:"required"`
	DetailAddress string `json:"detailAddress"`
	Message       string `json:"message"`
	ProductID     string `json:"productId"`
	Quantity      int64  `json:"quantity"`
	Items         string `json:"items"`
}

// LineItem is one (product, quantity) pair prior to pricing.
type LineItem struct {
	ProductID string `json:"id"`
	Quantity  int64  `json:"quantity"`
}

type orderIntake struct {
	// direct distinguishes the two modes: a missing product hard-fails a
	// direct buy but is silently skipped for a cart entry.
	direct bool
	lines  []LineItem
}

var fieldMessages = map[string]string{
	"CustomerName":  "Name is required",
	"CustomerPhone": "Phone is required",
	"Address":       "Address is required",
	"CustomerEmail": "Invalid email",
}

// parseOrderForm validates the form and normalizes it into line items.
// Pure parsing: no store access happens here.
func parseOrderForm(v *validator.Validate, form OrderForm) (orderIntake, error) {
	if err := v.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			if msg, ok := fieldMessages[verrs[0].StructField()]; ok {
				return orderIntake{}, errors.New(msg)
			}
			return orderIntake{}, errors.New("Please check your inputs.")
		}
		return orderIntake{}, err
	}

	if form.ProductID != "" && form.Quantity > 0 {
		return orderIntake{
			direct: true,
			lines:  []LineItem{{ProductID: form.ProductID, Quantity: form.Quantity}},
		}, nil
	}

	if form.Items != "" {
		var entries []LineItem
		if err := json.Unmarshal([]byte(form.Items), &entries); err != nil {
			return orderIntake{}, ErrInvalidCart
		}
		lines := make([]LineItem, 0, len(entries))
		for _, e := range entries {
			if e.ProductID == "" || e.Quantity <= 0 {
				continue
			}
			lines = append(lines, e)
		}
		if len(lines) == 0 {
			return orderIntake{}, ErrNoItems
		}
		return orderIntake{lines: lines}, nil
	}

	return orderIntake{}, ErrNoItems
}
