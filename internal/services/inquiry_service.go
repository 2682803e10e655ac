package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"shop-service/internal/domain"
	"shop-service/internal/infra/mailer"
	"shop-service/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrInquiryBlocked  = errors.New("부적절한 내용이 포함되어 있어 등록할 수 없습니다.")
)

type InquiryForm struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Content string `json:"content"`
	// Website is a honeypot field: humans never see it, bots fill it.
	Website string `json:"website"`
}

// ReplyOptions control the optional outbound email of an inquiry reply.
type ReplyOptions struct {
	SendEmail    bool
	EmailSubject string
	EmailContent string
	EmailAddress string
}

type ReplyResult struct {
	Inquiry    *domain.Inquiry
	EmailSent  bool
	EmailError string
}

type InquiryService struct {
	inquiries repository.InquiryRepository
	mailer    mailer.MailerInterface
	shopName  string
}

func NewInquiryService(r repository.InquiryRepository, m mailer.MailerInterface, shopName string) *InquiryService {
	return &InquiryService{inquiries: r, mailer: m, shopName: shopName}
}

// Submit stores a public inquiry. A filled honeypot simulates success
// without persisting anything; profanity rejects outright.
func (s *InquiryService) Submit(ctx context.Context, form InquiryForm, ipAddress string) error {
	if form.Name == "" || form.Contact == "" || form.Content == "" {
		return errors.New("Invalid inputs")
	}

	if form.Website != "" {
		log.Printf("inquiry: honeypot triggered from %s", ipAddress)
		return nil
	}

	if containsProfanity(form.Name) || containsProfanity(form.Content) {
		return ErrInquiryBlocked
	}

	return s.inquiries.Create(ctx, &domain.Inquiry{
		ID:        uuid.NewString(),
		Name:      form.Name,
		Contact:   form.Contact,
		Content:   form.Content,
		IPAddress: ipAddress,
	})
}

func (s *InquiryService) List(ctx context.Context) ([]domain.Inquiry, error) {
	return s.inquiries.List(ctx)
}

// Reply records the answer, then optionally emails it. Email problems never
// undo the stored reply; they are reported alongside the success.
func (s *InquiryService) Reply(ctx context.Context, id, answer string, opts *ReplyOptions) (*ReplyResult, error) {
	inq, err := s.inquiries.Reply(ctx, id, answer)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInquiryNotFound
		}
		return nil, err
	}

	res := &ReplyResult{Inquiry: inq}
	if opts == nil || !opts.SendEmail {
		return res, nil
	}

	recipient := opts.EmailAddress
	if recipient == "" {
		recipient = inq.Contact
	}
	if !strings.Contains(recipient, "@") {
		res.EmailError = "Invalid email address"
		return res, nil
	}

	subject := opts.EmailSubject
	if subject == "" {
		subject = "[" + s.shopName + "] Reply to your inquiry"
	}
	content := opts.EmailContent
	if content == "" {
		content = answer
	}

	if err := s.mailer.Send(ctx, mailer.Message{
		To:      recipient,
		Subject: subject,
		Text:    content,
	}); err != nil {
		res.EmailError = err.Error()
		return res, nil
	}
	res.EmailSent = true
	return res, nil
}

func (s *InquiryService) Delete(ctx context.Context, id string) error {
	if err := s.inquiries.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrInquiryNotFound
		}
		return err
	}
	return nil
}
