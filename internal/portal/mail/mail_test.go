package mail

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
)

type recordingSender struct {
	sent []Message
}

func (r *recordingSender) Send(_ context.Context, m Message) error {
	r.sent = append(r.sent, m)
	return nil
}

func TestEveryKindHasTemplate(t *testing.T) {
	kinds := []domain.NotificationKind{
		domain.NotifyInvite, domain.NotifyWelcome, domain.NotifyDocumentApproved,
		domain.NotifyDocumentRejected, domain.NotifyMessageToClient, domain.NotifyMessageToAdmin,
		domain.NotifyReportUploaded, domain.NotifyOnboardingComplete, domain.NotifyMeetingScheduled,
		domain.NotifyClientSignedUp,
	}
	for _, k := range kinds {
		m, err := Render(domain.Notification{Kind: k, Recipient: "a@example.com"})
		require.NoError(t, err, k)
		require.NotEmpty(t, m.Subject, k)
		require.Equal(t, "a@example.com", m.To)
	}
}

func TestRenderFillsData(t *testing.T) {
	m, err := Render(domain.Notification{
		Kind:      domain.NotifyDocumentRejected,
		Recipient: "c@example.com",
		Data: map[string]string{
			"name":          "Ada",
			"document_type": "bank_statements",
			"reason":        "blurry <scan>",
			"dashboard_url": "https://portal.example.com/dashboard",
		},
	})
	require.NoError(t, err)
	require.Equal(t, "Action needed: bank_statements", m.Subject)
	require.Contains(t, m.Text, "Reason: blurry <scan>")
	require.Contains(t, m.HTML, "blurry &lt;scan&gt;")
	require.NotContains(t, m.Text, "<no value>")
}

func TestRenderUnknownKind(t *testing.T) {
	_, err := Render(domain.Notification{Kind: "nope"})
	require.Error(t, err)
}

func TestRedirect(t *testing.T) {
	rec := &recordingSender{}
	r := Redirect{Next: rec, To: "qa@example.com"}
	require.NoError(t, r.Send(context.Background(), Message{To: "client@example.com", Subject: "Hello"}))
	require.Len(t, rec.sent, 1)
	require.Equal(t, "qa@example.com", rec.sent[0].To)
	require.Equal(t, "[To: client@example.com] Hello", rec.sent[0].Subject)
}

func TestRetryable(t *testing.T) {
	require.True(t, Retryable(&StatusError{Code: 503}))
	require.True(t, Retryable(&StatusError{Code: 429}))
	require.False(t, Retryable(&StatusError{Code: 400}))
	require.True(t, Retryable(errors.New("dial tcp: timeout")))
	require.False(t, Retryable(context.Canceled))
}
