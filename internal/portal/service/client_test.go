package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
	"github.com/aussiebroadwan/clientportal/internal/portal/store"
	"github.com/aussiebroadwan/clientportal/pkg/idx"
)

func TestCreateClient(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	res, err := e.clients.Create(ctx, CreateClientRequest{
		Name:    "Ada Lovelace",
		Email:   "  Ada@Example.com ",
		Company: "Analytical Engines",
	})
	require.NoError(t, err)
	require.Len(t, res.TemporaryPassword, 16)
	require.Equal(t, "ada@example.com", res.Client.Email)
	require.Equal(t, domain.OnboardingPending, res.Client.OnboardingStatus)

	role, err := e.access.RoleOf(ctx, res.Client.UserID)
	require.NoError(t, err)
	require.Equal(t, "client", role)

	docs, err := e.store.RequiredDocuments().ListRequiredDocuments(ctx, res.Client.ID)
	require.NoError(t, err)
	require.Len(t, docs, len(domain.AdminChecklist))

	_, err = e.ids.Authenticate(ctx, "ada@example.com", res.TemporaryPassword)
	require.NoError(t, err)

	outbox := pendingOutbox(t, e.store, e.clock.Now())
	require.Equal(t, 1, countKind(outbox, domain.NotifyWelcome))
}

func TestCreateClientValidation(t *testing.T) {
	e := newEnv(t)
	var inv *InvalidError

	_, err := e.clients.Create(context.Background(), CreateClientRequest{Email: "a@example.com"})
	require.ErrorAs(t, err, &inv)

	_, err = e.clients.Create(context.Background(), CreateClientRequest{Name: "A", Email: "not-an-email"})
	require.ErrorAs(t, err, &inv)
}

func TestCreateClientDuplicateEmailWritesNothing(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	e.createClient(t, "dup@example.com")

	_, err := e.clients.Create(ctx, CreateClientRequest{Name: "Second", Email: "DUP@example.com", Password: "password123"})
	require.ErrorIs(t, err, ErrEmailTaken)

	clients, err := e.store.Clients().ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)

	n, err := e.store.Profiles().CountProfiles(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

// failingTx fails every transaction, simulating a profile insert failure.
type failingTx struct {
	store.Store
}

func (failingTx) WithTx(context.Context, func(store.Tx) error) error {
	return errors.New("insert profile: connection reset")
}

func TestCreateClientProfileFailureDeletesIdentity(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	svc := &ClientService{Store: failingTx{e.store}, Identities: e.ids, Now: e.clock.Now}
	_, err := svc.Create(ctx, CreateClientRequest{Name: "Grace", Email: "grace@example.com"})
	require.Error(t, err)

	_, err = e.store.Identities().GetIdentityByEmail(ctx, "grace@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteClient(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	c := e.createClient(t, "bye@example.com")

	var inv *InvalidError
	require.ErrorAs(t, e.clients.Delete(ctx, "", ""), &inv)

	require.NoError(t, e.clients.Delete(ctx, c.ID, c.UserID))

	_, err := e.store.Clients().GetClient(ctx, c.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = e.store.Profiles().GetProfile(ctx, c.UserID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = e.store.Identities().GetIdentityByID(ctx, c.UserID)
	require.ErrorIs(t, err, store.ErrNotFound)

	docs, err := e.store.RequiredDocuments().ListRequiredDocuments(ctx, c.ID)
	require.NoError(t, err)
	require.Empty(t, docs)

	require.ErrorIs(t, e.clients.Delete(ctx, c.ID, ""), ErrClientNotFound)
}

func TestArchiveClient(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	adminID := e.createAdmin(t, "admin@example.com")
	c := e.createClient(t, "archive@example.com")
	now := e.clock.Now()

	for _, dt := range []domain.DocumentType{domain.DocBankStatements, domain.DocBalanceSheet, domain.DocProfitAndLoss} {
		_, err := e.docs.RecordDocument(ctx, c.UserID, domain.RoleClient, DocumentInput{
			DocumentType: dt, FileName: string(dt) + ".pdf", StoragePath: c.ID + "/" + string(dt) + ".pdf",
		})
		require.NoError(t, err)
	}
	for _, period := range []string{"2025-Q3", "2025-Q4"} {
		_, _, err := e.docs.RecordReport(ctx, adminID, ReportInput{
			ClientID: c.ID, Name: "Quarterly " + period, Period: period, StoragePath: c.ID + "/" + period + ".pdf",
		})
		require.NoError(t, err)
	}
	_, err := e.messages.Post(ctx, c.UserID, domain.RoleClient, "", "hello")
	require.NoError(t, err)

	res, err := e.clients.Archive(ctx, c.ID, adminID)
	require.NoError(t, err)
	require.Equal(t, 3, res.DocumentsArchived)
	require.Equal(t, 2, res.ReportsArchived)

	archived, err := e.clients.ListArchived(ctx)
	require.NoError(t, err)
	require.Len(t, archived, 1)
	require.Equal(t, c.ID, archived[0].ID)
	require.Equal(t, adminID, archived[0].ArchivedBy)
	require.WithinDuration(t, now.AddDate(7, 0, 0), archived[0].DeleteAfterDate, time.Second)

	n, err := e.store.Archives().CountArchivedDocuments(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	n, err = e.store.Archives().CountArchivedReports(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	_, err = e.store.Clients().GetClient(ctx, c.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	docs, err := e.store.Documents().ListDocuments(ctx, c.ID)
	require.NoError(t, err)
	require.Empty(t, docs)
	reports, err := e.store.Reports().ListReports(ctx, c.ID)
	require.NoError(t, err)
	require.Empty(t, reports)
	msgs, err := e.store.Messages().ListMessages(ctx, c.ID)
	require.NoError(t, err)
	require.Empty(t, msgs)

	_, err = e.clients.Archive(ctx, c.ID, adminID)
	require.ErrorIs(t, err, ErrClientNotFound)
}

func TestArchiveWithoutArchiveTables(t *testing.T) {
	st, err := sqliteAtVersion(t, 1)
	require.NoError(t, err)
	ctx := context.Background()
	ids := &IdentityService{Store: st}
	svc := &ClientService{Store: st, Identities: ids}

	res, err := svc.Create(ctx, CreateClientRequest{Name: "Old", Email: "old@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Archive(ctx, res.Client.ID, "admin")
	require.ErrorIs(t, err, ErrArchiveSetupRequired)

	// Nothing was removed.
	_, err = st.Clients().GetClient(ctx, res.Client.ID)
	require.NoError(t, err)
}

func TestUpdateOnboarding(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	c := e.createClient(t, "onboard@example.com")

	var inv *InvalidError
	_, err := e.clients.UpdateOnboarding(ctx, c.UserID, "done")
	require.ErrorAs(t, err, &inv)

	got, err := e.clients.UpdateOnboarding(ctx, c.UserID, domain.OnboardingComplete)
	require.NoError(t, err)
	require.Equal(t, domain.OnboardingComplete, got.OnboardingStatus)

	// A second complete does not notify again.
	_, err = e.clients.UpdateOnboarding(ctx, c.UserID, domain.OnboardingComplete)
	require.NoError(t, err)

	outbox := pendingOutbox(t, e.store, e.clock.Now())
	require.Equal(t, 1, countKind(outbox, domain.NotifyOnboardingComplete))

	_, err = e.clients.UpdateOnboarding(ctx, idx.NewString(), domain.OnboardingComplete)
	require.ErrorIs(t, err, ErrClientNotFound)
}

func TestGetAndMe(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	c := e.createClient(t, "me@example.com")

	d, err := e.clients.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, c.ID, d.Client.ID)
	require.Len(t, d.RequiredDocuments, len(domain.AdminChecklist))

	p, detail, err := e.clients.Me(ctx, c.UserID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleClient, p.Role)
	require.NotNil(t, detail)
	require.Equal(t, c.ID, detail.Client.ID)

	_, err = e.clients.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrClientNotFound)
}
