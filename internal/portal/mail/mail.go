// Package mail renders portal notifications and hands them to an email
// provider.
package mail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/clientportal/pkg/slogx"
)

type Message struct {
	To      string
	ToName  string
	Subject string
	Text    string
	HTML    string
}

type Sender interface {
	Send(ctx context.Context, m Message) error
}

// StatusError is a non-2xx answer from the provider.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("mail: provider returned %d: %s", e.Code, e.Body)
}

// Retryable reports whether a send failure may succeed on a later attempt.
func Retryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code == http.StatusTooManyRequests || se.Code >= 500
	}
	return !errors.Is(err, context.Canceled)
}

// Redirect delivers every message to one address. Used in staging so real
// clients never receive test mail.
type Redirect struct {
	Next Sender
	To   string
}

func (r Redirect) Send(ctx context.Context, m Message) error {
	m.Subject = fmt.Sprintf("[To: %s] %s", m.To, m.Subject)
	m.To = r.To
	m.ToName = ""
	return r.Next.Send(ctx, m)
}

// LogSender only logs. It is used when no provider key is configured.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, m Message) error {
	slogx.FromContext(ctx).Info("email not sent, no provider configured",
		slog.String("to", m.To),
		slog.String("subject", m.Subject),
	)
	return nil
}
