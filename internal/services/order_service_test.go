package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"shop-service/internal/domain"
	"shop-service/internal/infra/mailer"
	"shop-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func int64ptr(n int64) *int64 { return &n }

func testProduct(id, slug, title string, price int64, stock *int64, fee int64) *domain.Product {
	return &domain.Product{
		ID:          id,
		Slug:        slug,
		Title:       title,
		Price:       price,
		Stock:       stock,
		ShippingFee: fee,
	}
}

func TestOrderService_SubmitOrder(t *testing.T) {
	tests := []struct {
		name          string
		form          OrderForm
		setupMocks    func(*mocks.MockOrderRepository, *mocks.MockOrderTx)
		expectedError string
		expectedTotal int64
		expectedItems int
	}{
		{
			name: "direct buy with sufficient stock",
			form: OrderForm{
				CustomerName:  "Kim",
				CustomerPhone: "010-1111-2222",
				Address:       "Seoul",
				ProductID:     "p1",
				Quantity:      2,
			},
			setupMocks: func(repo *mocks.MockOrderRepository, tx *mocks.MockOrderTx) {
				tx.On("ProductForUpdate", mock.Anything, "p1").
					Return(testProduct("p1", "bear", "Classic Brown Bear", 35000, int64ptr(5), 3000), nil)
				tx.On("DecrementStock", mock.Anything, "p1", int64(2)).Return(nil)
				tx.On("CreateOrder", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
				repo.On("PlaceOrder", mock.Anything, mock.Anything).Return(tx, nil)
			},
			expectedTotal: 73000,
			expectedItems: 1,
		},
		{
			name: "insufficient stock rejects without creating",
			form: OrderForm{
				CustomerName:  "Kim",
				CustomerPhone: "010-1111-2222",
				Address:       "Seoul",
				ProductID:     "p1",
				Quantity:      2,
			},
			setupMocks: func(repo *mocks.MockOrderRepository, tx *mocks.MockOrderTx) {
				tx.On("ProductForUpdate", mock.Anything, "p1").
					Return(testProduct("p1", "bear", "Classic Brown Bear", 35000, int64ptr(1), 3000), nil)
				repo.On("PlaceOrder", mock.Anything, mock.Anything).Return(tx, nil)
			},
			expectedError: "insufficient stock for Classic Brown Bear: requested 2, available 1",
		},
		{
			name: "direct buy of unknown product fails",
			form: OrderForm{
				CustomerName:  "Kim",
				CustomerPhone: "010-1111-2222",
				Address:       "Seoul",
				ProductID:     "ghost",
				Quantity:      1,
			},
			setupMocks: func(repo *mocks.MockOrderRepository, tx *mocks.MockOrderTx) {
				tx.On("ProductForUpdate", mock.Anything, "ghost").Return(nil, nil)
				repo.On("PlaceOrder", mock.Anything, mock.Anything).Return(tx, nil)
			},
			expectedError: "product not found: ghost",
		},
		{
			name: "made-to-order product skips the stock check",
			form: OrderForm{
				CustomerName:  "Kim",
				CustomerPhone: "010-1111-2222",
				Address:       "Seoul",
				ProductID:     "p2",
				Quantity:      3,
			},
			setupMocks: func(repo *mocks.MockOrderRepository, tx *mocks.MockOrderTx) {
				tx.On("ProductForUpdate", mock.Anything, "p2").
					Return(testProduct("p2", "custom-bear", "Floral Dress Bear", 45000, nil, 3000), nil)
				tx.On("CreateOrder", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
				repo.On("PlaceOrder", mock.Anything, mock.Anything).Return(tx, nil)
			},
			expectedTotal: 138000,
			expectedItems: 1,
		},
		{
			name: "cart order takes the max shipping fee",
			form: OrderForm{
				CustomerName:  "Lee",
				CustomerPhone: "010-3333-4444",
				Address:       "Busan",
				Items:         `[{"id":"p1","quantity":1},{"id":"p2","quantity":2}]`,
			},
			setupMocks: func(repo *mocks.MockOrderRepository, tx *mocks.MockOrderTx) {
				tx.On("ProductForUpdate", mock.Anything, "p1").
					Return(testProduct("p1", "bear", "Classic Brown Bear", 35000, int64ptr(5), 3000), nil)
				tx.On("ProductForUpdate", mock.Anything, "p2").
					Return(testProduct("p2", "mini", "Mini Keychain Bear", 15000, int64ptr(20), 5000), nil)
				tx.On("DecrementStock", mock.Anything, "p1", int64(1)).Return(nil)
				tx.On("DecrementStock", mock.Anything, "p2", int64(2)).Return(nil)
				tx.On("CreateOrder", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
				repo.On("PlaceOrder", mock.Anything, mock.Anything).Return(tx, nil)
			},
			// 35000 + 2*15000 + max(3000, 3000, 5000)
			expectedTotal: 70000,
			expectedItems: 2,
		},
		{
			name: "cart entry for a deleted product is skipped",
			form: OrderForm{
				CustomerName:  "Lee",
				CustomerPhone: "010-3333-4444",
				Address:       "Busan",
				Items:         `[{"id":"gone","quantity":1},{"id":"p1","quantity":1}]`,
			},
			setupMocks: func(repo *mocks.MockOrderRepository, tx *mocks.MockOrderTx) {
				tx.On("ProductForUpdate", mock.Anything, "gone").Return(nil, nil)
				tx.On("ProductForUpdate", mock.Anything, "p1").
					Return(testProduct("p1", "bear", "Classic Brown Bear", 35000, int64ptr(5), 3000), nil)
				tx.On("DecrementStock", mock.Anything, "p1", int64(1)).Return(nil)
				tx.On("CreateOrder", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
				repo.On("PlaceOrder", mock.Anything, mock.Anything).Return(tx, nil)
			},
			expectedTotal: 38000,
			expectedItems: 1,
		},
		{
			name: "cart of only unknown products fails with no items",
			form: OrderForm{
				CustomerName:  "Lee",
				CustomerPhone: "010-3333-4444",
				Address:       "Busan",
				Items:         `[{"id":"gone","quantity":1},{"id":"gone2","quantity":2}]`,
			},
			setupMocks: func(repo *mocks.MockOrderRepository, tx *mocks.MockOrderTx) {
				tx.On("ProductForUpdate", mock.Anything, "gone").Return(nil, nil)
				tx.On("ProductForUpdate", mock.Anything, "gone2").Return(nil, nil)
				repo.On("PlaceOrder", mock.Anything, mock.Anything).Return(tx, nil)
			},
			expectedError: "No items to order",
		},
		{
			name: "store failure surfaces",
			form: OrderForm{
				CustomerName:  "Kim",
				CustomerPhone: "010-1111-2222",
				Address:       "Seoul",
				ProductID:     "p1",
				Quantity:      1,
			},
			setupMocks: func(repo *mocks.MockOrderRepository, tx *mocks.MockOrderTx) {
				tx.On("ProductForUpdate", mock.Anything, "p1").
					Return(nil, errors.New("database error"))
				repo.On("PlaceOrder", mock.Anything, mock.Anything).Return(tx, nil)
			},
			expectedError: "database error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockOrderRepository)
			tx := new(mocks.MockOrderTx)
			pub := new(mocks.MockPublisher)
			pub.On("Publish", mock.Anything, "order.placed", mock.Anything).Return(nil).Maybe()

			tt.setupMocks(repo, tx)

			svc := NewOrderService(repo, pub, nil, nil)
			order, err := svc.SubmitOrder(context.Background(), tt.form)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, order)
				assert.Equal(t, tt.expectedTotal, order.TotalAmount)
				assert.Len(t, order.Items, tt.expectedItems)
				assert.Equal(t, domain.StatusPending, order.Status)
				for _, item := range order.Items {
					assert.Equal(t, order.ID, item.OrderID)
					assert.NotEmpty(t, item.Price)
				}
			}

			time.Sleep(50 * time.Millisecond)
			repo.AssertExpectations(t)
			tx.AssertExpectations(t)
		})
	}
}

func TestOrderService_SubmitOrderNotifiesOnEmail(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	tx := new(mocks.MockOrderTx)
	pub := new(mocks.MockPublisher)
	notifier := new(mocks.MockNotifier)

	tx.On("ProductForUpdate", mock.Anything, "p1").
		Return(testProduct("p1", "bear", "Classic Brown Bear", 35000, int64ptr(5), 3000), nil)
	tx.On("DecrementStock", mock.Anything, "p1", int64(1)).Return(nil)
	tx.On("CreateOrder", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
	repo.On("PlaceOrder", mock.Anything, mock.Anything).Return(tx, nil)
	pub.On("Publish", mock.Anything, "order.placed", mock.Anything).Return(nil).Maybe()
	notifier.On("Enqueue", mock.AnythingOfType("string"), "kim@example.com").Once()

	svc := NewOrderService(repo, pub, nil, nil)
	svc.SetNotifier(notifier)

	order, err := svc.SubmitOrder(context.Background(), OrderForm{
		CustomerName:  "Kim",
		CustomerEmail: "kim@example.com",
		CustomerPhone: "010-1111-2222",
		Address:       "Seoul",
		ProductID:     "p1",
		Quantity:      1,
	})
	assert.NoError(t, err)
	assert.NotNil(t, order)

	time.Sleep(50 * time.Millisecond)
	notifier.AssertExpectations(t)
}

func TestOrderService_SubmitOrderSkipsNotifierWithoutEmail(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	tx := new(mocks.MockOrderTx)
	notifier := new(mocks.MockNotifier)

	tx.On("ProductForUpdate", mock.Anything, "p1").
		Return(testProduct("p1", "bear", "Classic Brown Bear", 35000, int64ptr(5), 3000), nil)
	tx.On("DecrementStock", mock.Anything, "p1", int64(1)).Return(nil)
	tx.On("CreateOrder", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
	repo.On("PlaceOrder", mock.Anything, mock.Anything).Return(tx, nil)

	svc := NewOrderService(repo, nil, nil, nil)
	svc.SetNotifier(notifier)

	_, err := svc.SubmitOrder(context.Background(), OrderForm{
		CustomerName:  "Kim",
		CustomerPhone: "010-1111-2222",
		Address:       "Seoul",
		ProductID:     "p1",
		Quantity:      1,
	})
	assert.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	notifier.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	carrier := "CJ"
	tracking := "123456"
	repo.On("UpdateStatus", mock.Anything, "o1", domain.StatusShipped, &carrier, &tracking).Return(nil)

	svc := NewOrderService(repo, nil, nil, nil)

	err := svc.UpdateStatus(context.Background(), "o1", domain.StatusShipped, &carrier, &tracking)
	assert.NoError(t, err)

	err = svc.UpdateStatus(context.Background(), "o1", domain.OrderStatus("TELEPORTED"), nil, nil)
	assert.EqualError(t, err, "invalid order status")

	repo.AssertExpectations(t)
}

func TestOrderService_SendOrderEmailWithoutInvoiceOnRenderFailure(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	m := new(mocks.MockMailer)
	renderer := new(mocks.MockRenderer)

	email := "kim@example.com"
	order := &domain.Order{
		ID:            "o1",
		CustomerName:  "Kim",
		CustomerEmail: &email,
		TotalAmount:   73000,
	}
	repo.On("FindByID", mock.Anything, "o1").Return(order, nil)
	renderer.On("Generate", order, mock.Anything).Return(nil, errors.New("font missing"))
	m.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To == email && len(msg.Attachments) == 0
	})).Return(nil)

	svc := NewOrderService(repo, nil, renderer, m)

	err := svc.SendOrderEmail(context.Background(), "o1", "Your order", "shipping soon", true, "en")
	assert.NoError(t, err)

	repo.AssertExpectations(t)
	m.AssertExpectations(t)
	renderer.AssertExpectations(t)
}
