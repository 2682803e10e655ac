package pdf

import (
	"testing"
	"time"

	"shop-service/internal/domain"
	"shop-service/internal/i18n"

	"github.com/stretchr/testify/assert"
)

func sampleOrder() *domain.Order {
	email := "kim@example.com"
	return &domain.Order{
		ID:            "ord-1234",
		CustomerName:  "Kim",
		CustomerEmail: &email,
		CustomerPhone: "010-1111-2222",
		Address:       "Seoul",
		TotalAmount:   73000,
		Status:        domain.StatusPending,
		CreatedAt:     time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		Items: []domain.OrderItem{
			{ID: "it1", OrderID: "ord-1234", ProductID: "p1", ProductTitle: "Classic Brown Bear", Quantity: 2, Price: 35000},
		},
	}
}

func TestRenderer_Generate(t *testing.T) {
	r := NewRenderer("")

	data, err := r.Generate(sampleOrder(), i18n.GetDictionary("en"))
	assert.NoError(t, err)
	assert.True(t, len(data) > 500)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderer_KoreanFallsBackWithoutFont(t *testing.T) {
	r := NewRenderer("")

	// Hangul labels cannot render with core fonts; the output must still be
	// a valid document, with English labels substituted.
	data, err := r.Generate(sampleOrder(), i18n.GetDictionary("ko"))
	assert.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderer_NilOrder(t *testing.T) {
	r := NewRenderer("")
	_, err := r.Generate(nil, i18n.GetDictionary("en"))
	assert.Error(t, err)
}

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "0", groupDigits(0))
	assert.Equal(t, "999", groupDigits(999))
	assert.Equal(t, "73,000", groupDigits(73000))
	assert.Equal(t, "1,234,567", groupDigits(1234567))
	assert.Equal(t, "-3,000", groupDigits(-3000))
}
