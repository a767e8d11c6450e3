package mail

import (
	"context"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type SendGrid struct {
	client   *sendgrid.Client
	From     string
	FromName string
}

var _ Sender = (*SendGrid)(nil)

func NewSendGrid(apiKey, from, fromName string) *SendGrid {
	return &SendGrid{
		client:   sendgrid.NewSendClient(apiKey),
		From:     from,
		FromName: fromName,
	}
}

func (s *SendGrid) Send(ctx context.Context, m Message) error {
	msg := sgmail.NewSingleEmail(
		sgmail.NewEmail(s.FromName, s.From),
		m.Subject,
		sgmail.NewEmail(m.ToName, m.To),
		m.Text,
		m.HTML,
	)
	resp, err := s.client.SendWithContext(ctx, msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode, Body: resp.Body}
	}
	return nil
}
