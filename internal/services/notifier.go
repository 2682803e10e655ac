package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"shop-service/internal/domain"
	"shop-service/internal/i18n"
	"shop-service/internal/infra/mailer"
	"shop-service/internal/infra/pdf"
	"shop-service/internal/repository"
)

const notifyQueueSize = 64

type notifyJob struct {
	orderID string
	email   string
}

// Notifier handles the post-commit order confirmation: render the invoice,
// email it to the customer. It runs on its own queue, decoupled from the
// request path; a full queue or a failed delivery is logged and dropped,
// never surfaced to the submitter.
type Notifier struct {
	orders   repository.OrderRepository
	mailer   mailer.MailerInterface
	renderer pdf.RendererInterface
	shopName string
	locale   string

	jobs chan notifyJob
	wg   sync.WaitGroup
	once sync.Once
}

var _ OrderNotifierInterface = (*Notifier)(nil)

func NewNotifier(orders repository.OrderRepository, m mailer.MailerInterface, renderer pdf.RendererInterface, shopName string) *Notifier {
	return &Notifier{
		orders:   orders,
		mailer:   m,
		renderer: renderer,
		shopName: shopName,
		locale:   string(i18n.DefaultLocale),
		jobs:     make(chan notifyJob, notifyQueueSize),
	}
}

// Start launches the worker goroutine. Safe to call once.
func (n *Notifier) Start() {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		for job := range n.jobs {
			n.process(job)
		}
	}()
}

// Stop drains the queue and waits for the worker to finish.
func (n *Notifier) Stop() {
	n.once.Do(func() { close(n.jobs) })
	n.wg.Wait()
}

// Enqueue schedules a confirmation send. Non-blocking: when the queue is
// full the job is dropped with a log line, the order stays committed.
func (n *Notifier) Enqueue(orderID, email string) {
	if email == "" {
		return
	}
	select {
	case n.jobs <- notifyJob{orderID: orderID, email: email}:
	default:
		log.Printf("notifier: queue full, dropping confirmation for order %s", orderID)
	}
}

func (n *Notifier) process(job notifyJob) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	order, err := n.orders.FindByID(ctx, job.orderID)
	if err != nil || order == nil {
		log.Printf("notifier: load order %s: %v", job.orderID, err)
		return
	}

	dict := i18n.GetDictionary(n.locale)

	var attachments []mailer.Attachment
	data, err := n.renderer.Generate(order, dict)
	if err != nil {
		// send without the invoice rather than not at all
		log.Printf("notifier: invoice render for order %s: %v", order.ID, err)
	} else {
		attachments = append(attachments, mailer.Attachment{
			Filename: "Invoice-" + order.ID + ".pdf",
			Content:  data,
		})
	}

	msg := mailer.Message{
		To:          job.email,
		Subject:     confirmationSubject(n.shopName, dict),
		Text:        confirmationBody(order, dict),
		Attachments: attachments,
	}
	if err := n.mailer.Send(ctx, msg); err != nil {
		log.Printf("notifier: send confirmation for order %s: %v", order.ID, err)
		return
	}
	log.Printf("notifier: confirmation sent for order %s", order.ID)
}

func confirmationSubject(shopName string, dict i18n.Dictionary) string {
	return fmt.Sprintf(dict.Email.OrderSubject, shopName)
}

func confirmationBody(order *domain.Order, dict i18n.Dictionary) string {
	total := fmt.Sprintf(dict.Invoice.CurrencyFmt, formatAmount(order.TotalAmount))
	return strings.Join([]string{
		fmt.Sprintf(dict.Email.OrderGreeting, order.CustomerName),
		fmt.Sprintf(dict.Email.OrderNo, order.ID),
		fmt.Sprintf(dict.Email.OrderTotal, total),
	}, "\n")
}

func formatAmount(n int64) string {
	s := strconv.FormatInt(n, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}
