package mailer

import "context"

type Attachment struct {
	Filename string
	Content  []byte
}

type Message struct {
	To          string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

type MailerInterface interface {
	Send(ctx context.Context, msg Message) error
}

var _ MailerInterface = (*Mailer)(nil)
