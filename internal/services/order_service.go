package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"shop-service/internal/domain"
	"shop-service/internal/i18n"
	"shop-service/internal/infra/cache"
	"shop-service/internal/infra/mailer"
	"shop-service/internal/infra/pdf"
	rabbit "shop-service/internal/infra/rabbitmq"
	"shop-service/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var ErrOrderNotFound = errors.New("order not found")

// DefaultShippingFee is the floor applied to cart-mode orders; a direct buy
// charges exactly the product's own fee.
const DefaultShippingFee int64 = 3000

// InsufficientStockError is the user-facing rejection for an order that asks
// for more units than remain.
type InsufficientStockError struct {
	ProductTitle string
	Requested    int64
	Available    int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		e.ProductTitle, e.Requested, e.Available)
}

// NotFoundError identifies the missing product of a failed direct buy.
type NotFoundError struct {
	ProductID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product not found: %s", e.ProductID)
}

// OrderBroadcaster pushes freshly placed orders to connected admin clients.
type OrderBroadcaster interface {
	BroadcastOrder(order *domain.Order)
}

// OrderNotifierInterface enqueues the best-effort post-commit customer
// notification (invoice + email).
type OrderNotifierInterface interface {
	Enqueue(orderID, email string)
}

type OrderService struct {
	orders    repository.OrderRepository
	publisher rabbit.PublisherInterface
	notifier  OrderNotifierInterface
	cache     *cache.ProductCache
	hub       OrderBroadcaster
	mailer    mailer.MailerInterface
	renderer  pdf.RendererInterface
	validate  *validator.Validate
}

func NewOrderService(r repository.OrderRepository, pub rabbit.PublisherInterface, renderer pdf.RendererInterface, m mailer.MailerInterface) *OrderService {
	return &OrderService{
		orders:    r,
		publisher: pub,
		renderer:  renderer,
		mailer:    m,
		validate:  validator.New(),
	}
}

func (s *OrderService) SetNotifier(n OrderNotifierInterface)  { s.notifier = n }
func (s *OrderService) SetProductCache(c *cache.ProductCache) { s.cache = c }
func (s *OrderService) SetBroadcaster(hub OrderBroadcaster)   { s.hub = hub }

// SubmitOrder runs the whole order workflow: validate the form, price and
// stock-check every line inside one transaction, commit order plus items
// atomically, then fire the post-commit side effects. Either every stock
// decrement and the order row land together, or none of them do.
func (s *OrderService) SubmitOrder(ctx context.Context, form OrderForm) (*domain.Order, error) {
	intake, err := parseOrderForm(s.validate, form)
	if err != nil {
		return nil, err
	}

	var (
		order *domain.Order
		slugs []string
	)
	err = s.orders.PlaceOrder(ctx, func(tx repository.OrderTx) error {
		orderID := uuid.NewString()
		var (
			items    []domain.OrderItem
			subtotal int64
			fee      int64
		)
		if !intake.direct {
			fee = DefaultShippingFee
		}

		for _, line := range intake.lines {
			p, err := tx.ProductForUpdate(ctx, line.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				if intake.direct {
					return &NotFoundError{ProductID: line.ProductID}
				}
				// cart entries for deleted products are skipped
				continue
			}

			if p.Stock != nil {
				if *p.Stock < line.Quantity {
					return &InsufficientStockError{
						ProductTitle: p.Title,
						Requested:    line.Quantity,
						Available:    *p.Stock,
					}
				}
				if err := tx.DecrementStock(ctx, p.ID, line.Quantity); err != nil {
					return err
				}
			}

			subtotal += p.Price * line.Quantity
			if intake.direct {
				fee = p.ShippingFee
			} else if p.ShippingFee > fee {
				fee = p.ShippingFee
			}

			items = append(items, domain.OrderItem{
				ID:           uuid.NewString(),
				OrderID:      orderID,
				ProductID:    p.ID,
				ProductTitle: p.Title,
				Quantity:     line.Quantity,
				Price:        p.Price,
			})
			slugs = append(slugs, p.Slug)
		}

		if len(items) == 0 {
			return ErrNoItems
		}

		order = &domain.Order{
			ID:            orderID,
			CustomerName:  form.CustomerName,
			CustomerEmail: optional(form.CustomerEmail),
			CustomerPhone: form.CustomerPhone,
			Address:       form.Address,
			DetailAddress: optional(form.DetailAddress),
			Message:       optional(form.Message),
			TotalAmount:   subtotal + fee,
			Status:        domain.StatusPending,
			Items:         items,
			CreatedAt:     time.Now(),
		}
		return tx.CreateOrder(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.afterCommit(order, slugs)
	return order, nil
}

// afterCommit fires the best-effort side effects of a placed order. None of
// them can fail the submission; the order is already committed.
func (s *OrderService) afterCommit(order *domain.Order, slugs []string) {
	go s.publishOrderPlacedEvent(context.Background(), order)

	if s.hub != nil {
		s.hub.BroadcastOrder(order)
	}
	if s.cache != nil {
		s.cache.Invalidate(context.Background(), slugs...)
	}
	if s.notifier != nil && order.CustomerEmail != nil && *order.CustomerEmail != "" {
		s.notifier.Enqueue(order.ID, *order.CustomerEmail)
	}
}

func (s *OrderService) publishOrderPlacedEvent(ctx context.Context, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	evt := domain.OrderPlacedEvent{
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		TotalAmount:  order.TotalAmount,
		ItemCount:    len(order.Items),
		CreatedAt:    order.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, "order.placed", evt); err != nil {
		log.Printf("Failed to publish order.placed event: %v", err)
	}
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *OrderService) ListOrders(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error) {
	return s.orders.List(ctx, status)
}

// UpdateStatus moves an order to any known status; transitions are not
// constrained. Carrier and tracking number ride along when supplied.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, carrier, trackingNumber *string) error {
	if !domain.ValidStatus(status) {
		return errors.New("invalid order status")
	}
	err := s.orders.UpdateStatus(ctx, id, status, carrier, trackingNumber)
	if err != nil {
		if isNotFound(err) {
			return ErrOrderNotFound
		}
		return err
	}
	return nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrOrderNotFound
		}
		return err
	}
	return nil
}

// GenerateInvoice renders the invoice document for an order.
func (s *OrderService) GenerateInvoice(ctx context.Context, orderID, locale string) ([]byte, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return s.renderer.Generate(order, i18n.GetDictionary(locale))
}

// SendOrderEmail sends an admin-composed email about an order, optionally
// attaching the invoice. A failed invoice render downgrades to a plain email
// rather than failing the send.
func (s *OrderService) SendOrderEmail(ctx context.Context, orderID, subject, message string, attachInvoice bool, locale string) error {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}

	to := "delivered@resend.dev"
	if order.CustomerEmail != nil && *order.CustomerEmail != "" {
		to = *order.CustomerEmail
	}

	var attachments []mailer.Attachment
	if attachInvoice {
		data, err := s.renderer.Generate(order, i18n.GetDictionary(locale))
		if err != nil {
			log.Printf("Failed to generate invoice for order %s: %v", order.ID, err)
		} else {
			attachments = append(attachments, mailer.Attachment{
				Filename: "Invoice-" + order.ID + ".pdf",
				Content:  data,
			})
		}
	}

	return s.mailer.Send(ctx, mailer.Message{
		To:          to,
		Subject:     subject,
		Text:        message,
		Attachments: attachments,
	})
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
