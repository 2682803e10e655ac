package services

import (
	"context"
	"sync"
	"testing"

	"shop-service/internal/domain"
	"shop-service/internal/repository"

	"github.com/stretchr/testify/assert"
)

// memOrderStore is an in-memory stand-in for the transactional order store.
// A mutex held for the whole of PlaceOrder plays the role of the row lock, so
// concurrent submissions are serialized the same way FOR UPDATE serializes
// them against MySQL.
type memOrderStore struct {
	repository.OrderRepository

	mu       sync.Mutex
	products map[string]*domain.Product
	orders   []*domain.Order
}

type memOrderTx struct {
	store *memOrderStore
	// staged mutations, applied only on commit
	decrements map[string]int64
	created    *domain.Order
}

func newMemOrderStore(products ...*domain.Product) *memOrderStore {
	s := &memOrderStore{products: map[string]*domain.Product{}}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

func (s *memOrderStore) PlaceOrder(_ context.Context, fn func(tx repository.OrderTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memOrderTx{store: s, decrements: map[string]int64{}}
	if err := fn(tx); err != nil {
		return err
	}
	for id, qty := range tx.decrements {
		*s.products[id].Stock -= qty
	}
	if tx.created != nil {
		s.orders = append(s.orders, tx.created)
	}
	return nil
}

func (t *memOrderTx) ProductForUpdate(_ context.Context, id string) (*domain.Product, error) {
	p, ok := t.store.products[id]
	if !ok {
		return nil, nil
	}
	if p.Stock == nil {
		return p, nil
	}
	// expose the stock as fn would see it mid-transaction
	remaining := *p.Stock - t.decrements[id]
	view := *p
	view.Stock = &remaining
	return &view, nil
}

func (t *memOrderTx) DecrementStock(_ context.Context, id string, qty int64) error {
	t.decrements[id] += qty
	return nil
}

func (t *memOrderTx) CreateOrder(_ context.Context, order *domain.Order) error {
	t.created = order
	return nil
}

func TestSubmitOrder_ConcurrentLastUnit(t *testing.T) {
	stock := int64(1)
	store := newMemOrderStore(&domain.Product{
		ID:          "p1",
		Slug:        "bear",
		Title:       "Classic Brown Bear",
		Price:       35000,
		Stock:       &stock,
		ShippingFee: 3000,
	})
	svc := NewOrderService(store, nil, nil, nil)

	form := OrderForm{
		CustomerName:  "Kim",
		CustomerPhone: "010-1111-2222",
		Address:       "Seoul",
		ProductID:     "p1",
		Quantity:      1,
	}

	const contenders = 8
	var wg sync.WaitGroup
	errs := make([]error, contenders)
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.SubmitOrder(context.Background(), form)
		}(i)
	}
	wg.Wait()

	var ok, rejected int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		var stockErr *InsufficientStockError
		assert.ErrorAs(t, err, &stockErr)
		rejected++
	}

	assert.Equal(t, 1, ok, "exactly one contender should win the last unit")
	assert.Equal(t, contenders-1, rejected)
	assert.Equal(t, int64(0), *store.products["p1"].Stock)
	assert.Len(t, store.orders, 1)
}

func TestSubmitOrder_RollbackLeavesStockUntouched(t *testing.T) {
	stock := int64(5)
	store := newMemOrderStore(&domain.Product{
		ID:          "p1",
		Slug:        "bear",
		Title:       "Classic Brown Bear",
		Price:       35000,
		Stock:       &stock,
		ShippingFee: 3000,
	})
	svc := NewOrderService(store, nil, nil, nil)

	// two lines: the first decrements, the second fails the whole commit
	_, err := svc.SubmitOrder(context.Background(), OrderForm{
		CustomerName:  "Kim",
		CustomerPhone: "010-1111-2222",
		Address:       "Seoul",
		Items:         `[{"id":"p1","quantity":2},{"id":"p1","quantity":10}]`,
	})
	var stockErr *InsufficientStockError
	assert.ErrorAs(t, err, &stockErr)

	assert.Equal(t, int64(5), *store.products["p1"].Stock)
	assert.Empty(t, store.orders)
}
