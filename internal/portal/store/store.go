package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrSchemaMissing means a table the operation needs has not been
	// created, typically because a migration was not applied.
	ErrSchemaMissing = errors.New("store: schema missing")

	// ErrConflict reports a conditional update that matched no row.
	ErrConflict = errors.New("store: conditional update matched no rows")
)

// Store is the root data access interface implemented by the sqlite and
// postgres drivers. Sub-repositories are obtained from it, or from a Tx so
// that they share the transaction.
type Store interface {
	Identities() Identities
	Profiles() Profiles
	Clients() Clients
	RequiredDocuments() RequiredDocuments
	InviteCodes() InviteCodes
	Documents() Documents
	Reports() Reports
	Messages() Messages
	Archives() Archives
	Outbox() Outbox

	ApplyMigrations() error

	// Tx starts a transaction. The caller must Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx commits when fn returns nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a Store bound to one transaction. Nested transactions are not
// supported.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Identities interface {
	CreateIdentity(ctx context.Context, id domain.Identity) error
	GetIdentityByID(ctx context.Context, id string) (domain.Identity, error)
	// GetIdentityByEmail matches case-insensitively.
	GetIdentityByEmail(ctx context.Context, email string) (domain.Identity, error)
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	DeleteIdentity(ctx context.Context, id string) error
}

type Profiles interface {
	CreateProfile(ctx context.Context, p domain.Profile) error
	GetProfile(ctx context.Context, id string) (domain.Profile, error)
	DeleteProfile(ctx context.Context, id string) error
	CountProfiles(ctx context.Context) (int, error)
	// AdminEmails lists the emails of every admin profile.
	AdminEmails(ctx context.Context) ([]string, error)
}

type Clients interface {
	CreateClient(ctx context.Context, c domain.Client) error
	GetClient(ctx context.Context, id string) (domain.Client, error)
	GetClientByUserID(ctx context.Context, userID string) (domain.Client, error)
	// ListClients returns clients newest first.
	ListClients(ctx context.Context) ([]domain.Client, error)
	UpdateOnboardingStatus(ctx context.Context, id string, status domain.OnboardingStatus) error
	SetBillingCustomer(ctx context.Context, id, customerID, planID string) error
	UpdateSubscription(ctx context.Context, id string, s domain.SubscriptionState) error
	// DeleteClient cascades to documents, reports, messages and the checklist.
	DeleteClient(ctx context.Context, id string) error
}

type RequiredDocuments interface {
	CreateRequiredDocuments(ctx context.Context, docs []domain.RequiredDocument) error
	ListRequiredDocuments(ctx context.Context, clientID string) ([]domain.RequiredDocument, error)
	UpdateRequiredDocumentStatus(ctx context.Context, clientID string, t domain.DocumentType, status domain.DocumentStatus) error
	DeleteRequiredDocumentsByClient(ctx context.Context, clientID string) (int, error)
}

type InviteCodes interface {
	// CreateInviteCode fails with ErrAlreadyExists when the code is taken.
	CreateInviteCode(ctx context.Context, inv domain.InviteCode) error
	GetInviteCode(ctx context.Context, code string) (domain.InviteCode, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	ListInviteCodes(ctx context.Context) ([]domain.InviteCode, error)
	// MarkInviteCodeUsed flips used from false to true in one statement and
	// returns ErrConflict when no unused row matched.
	MarkInviteCodeUsed(ctx context.Context, code, usedBy string, at time.Time) error
	// ReleaseInviteCode undoes MarkInviteCodeUsed for the same usedBy.
	ReleaseInviteCode(ctx context.Context, code, usedBy string) error
}

type Documents interface {
	CreateDocument(ctx context.Context, d domain.Document) error
	ListDocuments(ctx context.Context, clientID string) ([]domain.Document, error)
	DeleteDocumentsByClient(ctx context.Context, clientID string) (int, error)
}

type Reports interface {
	CreateReport(ctx context.Context, r domain.Report) error
	ListReports(ctx context.Context, clientID string) ([]domain.Report, error)
	DeleteReportsByClient(ctx context.Context, clientID string) (int, error)
}

type Messages interface {
	CreateMessage(ctx context.Context, m domain.Message) error
	// ListMessages returns a client's thread oldest first.
	ListMessages(ctx context.Context, clientID string) ([]domain.Message, error)
	// CountUnread counts unread messages not sent by readerID. An empty
	// clientID counts across every client.
	CountUnread(ctx context.Context, clientID, readerID string) (int, error)
	// MarkRead marks messages not sent by readerID as read.
	MarkRead(ctx context.Context, clientID, readerID string) (int, error)
	DeleteMessagesByClient(ctx context.Context, clientID string) (int, error)
}

type Archives interface {
	// CheckSchema returns ErrSchemaMissing when the archive tables are absent.
	CheckSchema(ctx context.Context) error
	ArchiveClient(ctx context.Context, c domain.ArchivedClient) error
	ArchiveDocuments(ctx context.Context, docs []domain.ArchivedDocument) error
	ArchiveReports(ctx context.Context, reports []domain.ArchivedReport) error
	ListArchivedClients(ctx context.Context) ([]domain.ArchivedClient, error)
	CountArchivedDocuments(ctx context.Context, clientID string) (int, error)
	CountArchivedReports(ctx context.Context, clientID string) (int, error)
}

type Outbox interface {
	Enqueue(ctx context.Context, e domain.OutboxEntry) error
	// ClaimDue leases up to limit pending entries due at now by pushing their
	// next attempt to leaseUntil. An entry is handed to one caller only.
	ClaimDue(ctx context.Context, now, leaseUntil time.Time, limit int) ([]domain.OutboxEntry, error)
	MarkSent(ctx context.Context, id string, at time.Time) error
	MarkRetry(ctx context.Context, id string, attempts int, lastErr string, next time.Time) error
	MarkFailed(ctx context.Context, id string, attempts int, lastErr string) error
	GetEntry(ctx context.Context, id string) (domain.OutboxEntry, error)
	DeleteSentBefore(ctx context.Context, before time.Time) (int, error)
}
