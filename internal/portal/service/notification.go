package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
	"github.com/aussiebroadwan/clientportal/internal/portal/store"
	"github.com/aussiebroadwan/clientportal/pkg/idx"
	"github.com/aussiebroadwan/clientportal/pkg/slogx"
)

var ErrNoRecipient = errors.New("notification has no recipient")

// previewLength caps message previews quoted in emails.
const previewLength = 200

// NotificationService turns portal events into outbox rows. Delivery happens
// later in the OutboxWorker.
type NotificationService struct {
	Store      store.Store
	AdminEmail string
	AppURL     string
	Now        func() time.Time
}

func (s *NotificationService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *NotificationService) url(path string) string {
	return strings.TrimRight(s.AppURL, "/") + path
}

// Enqueue writes n to the outbox through st, which may be a transaction. A
// nil st uses the service's store.
func (s *NotificationService) Enqueue(ctx context.Context, st store.Store, n domain.Notification) (string, error) {
	if st == nil {
		st = s.Store
	}
	if n.Recipient == "" {
		return "", ErrNoRecipient
	}

	now := s.now()
	e := domain.OutboxEntry{
		ID:            idx.NewString(),
		Notification:  n,
		Status:        domain.OutboxPending,
		NextAttemptAt: now,
		CreatedAt:     now,
	}
	if err := st.Outbox().Enqueue(ctx, e); err != nil {
		return "", err
	}

	slogx.FromContext(ctx).Debug("notification queued",
		slog.String("notification_id", e.ID),
		slog.String("kind", string(n.Kind)),
	)
	return e.ID, nil
}

func (s *NotificationService) Welcome(ctx context.Context, st store.Store, c domain.Client, temporaryPassword string) (string, error) {
	return s.Enqueue(ctx, st, domain.Notification{
		Kind:      domain.NotifyWelcome,
		Recipient: c.Email,
		Data: map[string]string{
			"name":               c.Name,
			"email":              c.Email,
			"temporary_password": temporaryPassword,
			"login_url":          s.url("/login"),
		},
	})
}

func (s *NotificationService) Invite(ctx context.Context, inv domain.InviteCode) (string, error) {
	return s.Enqueue(ctx, nil, domain.Notification{
		Kind:      domain.NotifyInvite,
		Recipient: inv.Email,
		Data: map[string]string{
			"code":             inv.Code,
			"expires_at":       inv.ExpiresAt.Format("January 2, 2006"),
			"recommended_plan": inv.RecommendedPlan,
			"signup_url":       s.url("/signup?code=" + inv.Code),
		},
	})
}

// DocumentStatus records an approval or rejection on the client's checklist
// and notifies the client.
func (s *NotificationService) DocumentStatus(ctx context.Context, clientID string, docType domain.DocumentType, status domain.DocumentStatus, reason string) (string, error) {
	var kind domain.NotificationKind
	switch status {
	case domain.DocStatusApproved:
		kind = domain.NotifyDocumentApproved
	case domain.DocStatusRejected:
		kind = domain.NotifyDocumentRejected
	default:
		return "", invalid("status must be approved or rejected")
	}
	if clientID == "" || docType == "" {
		return "", invalid("client_id and document_type are required")
	}

	c, err := s.client(ctx, clientID)
	if err != nil {
		return "", err
	}

	var id string
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		err := tx.RequiredDocuments().UpdateRequiredDocumentStatus(ctx, c.ID, docType, status)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		id, err = s.Enqueue(ctx, tx, domain.Notification{
			Kind:      kind,
			Recipient: c.Email,
			Data: map[string]string{
				"name":          c.Name,
				"document_type": humanize(string(docType)),
				"reason":        reason,
				"dashboard_url": s.url("/dashboard/documents"),
			},
		})
		return err
	})
	return id, err
}

// Message notifies the other side of a conversation. Admin messages go to the
// client, client messages go to the admin address.
func (s *NotificationService) Message(ctx context.Context, st store.Store, c domain.Client, sender domain.SenderType, preview string) (string, error) {
	n := domain.Notification{
		Data: map[string]string{
			"name":        c.Name,
			"client_name": c.Name,
			"preview":     truncate(preview, previewLength),
		},
	}
	switch sender {
	case domain.SenderAdmin:
		n.Kind = domain.NotifyMessageToClient
		n.Recipient = c.Email
		n.Data["dashboard_url"] = s.url("/dashboard/messages")
	case domain.SenderClient:
		n.Kind = domain.NotifyMessageToAdmin
		n.Recipient = s.adminAddress(ctx, st)
		n.Data["dashboard_url"] = s.url("/admin/clients/" + c.ID)
	default:
		return "", invalid("sender_type must be admin or client")
	}
	return s.Enqueue(ctx, st, n)
}

func (s *NotificationService) ReportUploaded(ctx context.Context, clientID, reportName, period string) (string, error) {
	if reportName == "" {
		return "", invalid("report_name is required")
	}
	c, err := s.client(ctx, clientID)
	if err != nil {
		return "", err
	}
	return s.Enqueue(ctx, nil, domain.Notification{
		Kind:      domain.NotifyReportUploaded,
		Recipient: c.Email,
		Data: map[string]string{
			"name":          c.Name,
			"report_name":   reportName,
			"period":        period,
			"dashboard_url": s.url("/dashboard/reports"),
		},
	})
}

func (s *NotificationService) OnboardingComplete(ctx context.Context, st store.Store, c domain.Client) (string, error) {
	return s.Enqueue(ctx, st, domain.Notification{
		Kind:      domain.NotifyOnboardingComplete,
		Recipient: s.adminAddress(ctx, st),
		Data: map[string]string{
			"client_name":   c.Name,
			"client_email":  c.Email,
			"dashboard_url": s.url("/admin/clients/" + c.ID),
		},
	})
}

func (s *NotificationService) ClientSignedUp(ctx context.Context, st store.Store, c domain.Client, code string) (string, error) {
	return s.Enqueue(ctx, st, domain.Notification{
		Kind:      domain.NotifyClientSignedUp,
		Recipient: s.adminAddress(ctx, st),
		Data: map[string]string{
			"client_name":   c.Name,
			"client_email":  c.Email,
			"code":          code,
			"plan_id":       c.PlanID,
			"dashboard_url": s.url("/admin/clients/" + c.ID),
		},
	})
}

// Meeting confirms a booking to the attendee and copies the admin address.
func (s *NotificationService) Meeting(ctx context.Context, m domain.Meeting) ([]string, error) {
	data := map[string]string{
		"attendee_name": m.AttendeeName,
		"timezone":      m.Timezone,
		"meeting_url":   m.MeetingURL,
	}
	if !m.Start.IsZero() {
		start := m.Start
		if loc, err := time.LoadLocation(m.Timezone); err == nil && m.Timezone != "" {
			start = start.In(loc)
		}
		data["start"] = start.Format("Monday, January 2, 2006 at 3:04 PM MST")
	}

	var ids []string
	admin := s.adminAddress(ctx, nil)
	for i, to := range []string{m.AttendeeEmail, admin} {
		if to == "" || (i == 1 && strings.EqualFold(to, m.AttendeeEmail)) {
			continue
		}
		id, err := s.Enqueue(ctx, nil, domain.Notification{
			Kind:      domain.NotifyMeetingScheduled,
			Recipient: to,
			Data:      data,
		})
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, ErrNoRecipient
	}
	return ids, nil
}

// adminAddress is ADMIN_EMAIL, or the first admin profile when unset.
func (s *NotificationService) adminAddress(ctx context.Context, st store.Store) string {
	if s.AdminEmail != "" {
		return s.AdminEmail
	}
	if st == nil {
		st = s.Store
	}
	emails, err := st.Profiles().AdminEmails(ctx)
	if err != nil {
		slogx.FromContext(ctx).Warn("failed to look up admin emails", slog.Any("error", err))
		return ""
	}
	if len(emails) == 0 {
		return ""
	}
	return emails[0]
}

func (s *NotificationService) client(ctx context.Context, id string) (domain.Client, error) {
	if id == "" {
		return domain.Client{}, invalid("client_id is required")
	}
	c, err := s.Store.Clients().GetClient(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Client{}, ErrClientNotFound
	}
	return c, err
}

func humanize(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n]) + "…"
}
