package services

import (
	"errors"
	"testing"

	"shop-service/internal/domain"
	"shop-service/internal/infra/mailer"
	"shop-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotifier_SendsConfirmationWithInvoice(t *testing.T) {
	email := "kim@example.com"
	order := &domain.Order{
		ID:            "o1",
		CustomerName:  "Kim",
		CustomerEmail: &email,
		TotalAmount:   73000,
	}

	repo := new(mocks.MockOrderRepository)
	m := new(mocks.MockMailer)
	renderer := new(mocks.MockRenderer)

	repo.On("FindByID", mock.Anything, "o1").Return(order, nil)
	renderer.On("Generate", order, mock.Anything).Return([]byte("%PDF-1.4 fake"), nil)
	m.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To == email &&
			len(msg.Attachments) == 1 &&
			msg.Attachments[0].Filename == "Invoice-o1.pdf"
	})).Return(nil)

	n := NewNotifier(repo, m, renderer, "Nuna Gom")
	n.Start()
	n.Enqueue("o1", email)
	n.Stop()

	repo.AssertExpectations(t)
	renderer.AssertExpectations(t)
	m.AssertExpectations(t)
}

func TestNotifier_RenderFailureStillEmails(t *testing.T) {
	email := "kim@example.com"
	order := &domain.Order{ID: "o1", CustomerName: "Kim", CustomerEmail: &email, TotalAmount: 73000}

	repo := new(mocks.MockOrderRepository)
	m := new(mocks.MockMailer)
	renderer := new(mocks.MockRenderer)

	repo.On("FindByID", mock.Anything, "o1").Return(order, nil)
	renderer.On("Generate", order, mock.Anything).Return(nil, errors.New("font missing"))
	m.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.To == email && len(msg.Attachments) == 0
	})).Return(nil)

	n := NewNotifier(repo, m, renderer, "Nuna Gom")
	n.Start()
	n.Enqueue("o1", email)
	n.Stop()

	m.AssertExpectations(t)
}

func TestNotifier_EmptyEmailIsIgnored(t *testing.T) {
	repo := new(mocks.MockOrderRepository)

	n := NewNotifier(repo, nil, nil, "Nuna Gom")
	n.Start()
	n.Enqueue("o1", "")
	n.Stop()

	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", formatAmount(0))
	assert.Equal(t, "999", formatAmount(999))
	assert.Equal(t, "3,000", formatAmount(3000))
	assert.Equal(t, "73,000", formatAmount(73000))
	assert.Equal(t, "1,234,567", formatAmount(1234567))
}
