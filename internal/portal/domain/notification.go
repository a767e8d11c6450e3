package domain

import "time"

// NotificationKind selects the email template.
type NotificationKind string

const (
	NotifyInvite             NotificationKind = "invite"
	NotifyWelcome            NotificationKind = "welcome"
	NotifyDocumentApproved   NotificationKind = "document_approved"
	NotifyDocumentRejected   NotificationKind = "document_rejected"
	NotifyMessageToClient    NotificationKind = "message_to_client"
	NotifyMessageToAdmin     NotificationKind = "message_to_admin"
	NotifyReportUploaded     NotificationKind = "report_uploaded"
	NotifyOnboardingComplete NotificationKind = "onboarding_complete"
	NotifyMeetingScheduled   NotificationKind = "meeting_scheduled"
	NotifyClientSignedUp     NotificationKind = "client_signed_up"
)

// Notification is an email waiting to be rendered and delivered.
type Notification struct {
	Kind      NotificationKind
	Recipient string
	Data      map[string]string
}

type OutboxStatus string

const (
	OutboxPending OutboxStatus = "pending"
	OutboxSent    OutboxStatus = "sent"
	OutboxFailed  OutboxStatus = "failed"
)

// OutboxEntry is a durable Notification plus its delivery state.
type OutboxEntry struct {
	ID            string
	Notification  Notification
	Status        OutboxStatus
	Attempts      int
	LastError     string
	NextAttemptAt time.Time
	CreatedAt     time.Time
	SentAt        *time.Time
}
