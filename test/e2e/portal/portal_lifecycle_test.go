package portal_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/clientportal/pkg/portalapi"
)

func TestArchiveClient(t *testing.T) {
	env := setupPortal(t)
	ctx := context.Background()

	created, err := env.Admin.CreateClient(ctx, portalapi.CreateClientRequest{Name: "Alan Turing", Email: "alan@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, created.TemporaryPassword)

	client := env.loginAs(t, "alan@example.com", created.TemporaryPassword)
	_, err = client.RecordDocument(ctx, portalapi.RecordDocumentRequest{
		DocumentType: "prior_year_tax_return", FileName: "2024.pdf", StoragePath: created.Client.ID + "/2024.pdf",
	})
	require.NoError(t, err)
	rep, err := env.Admin.RecordReport(ctx, portalapi.RecordReportRequest{
		ClientID: created.Client.ID, Name: "Enigma audit", Period: "2025", StoragePath: created.Client.ID + "/audit.pdf", Notify: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, rep.NotificationID)

	res, err := env.Admin.ArchiveClient(ctx, created.Client.ID)
	require.NoError(t, err)
	require.Equal(t, created.Client.ID, res.ClientID)
	require.Equal(t, 1, res.DocumentsArchived)
	require.Equal(t, 1, res.ReportsArchived)
	require.WithinDuration(t, time.Now().AddDate(7, 0, 0), res.DeleteAfterDate, time.Minute)

	archived, err := env.Admin.ListArchivedClients(ctx)
	require.NoError(t, err)
	require.Len(t, archived, 1)
	require.Equal(t, "alan@example.com", archived[0].Email)

	clients, err := env.Admin.ListClients(ctx)
	require.NoError(t, err)
	require.Empty(t, clients)

	_, err = env.Admin.ArchiveClient(ctx, created.Client.ID)
	requireStatus(t, err, http.StatusNotFound)
}

func TestDuplicateClientEmail(t *testing.T) {
	env := setupPortal(t)
	ctx := context.Background()

	_, err := env.Admin.CreateClient(ctx, portalapi.CreateClientRequest{Name: "First", Email: "dup@example.com"})
	require.NoError(t, err)

	_, err = env.Admin.CreateClient(ctx, portalapi.CreateClientRequest{Name: "Second", Email: "DUP@example.com"})
	requireStatus(t, err, http.StatusBadRequest)

	clients, err := env.Admin.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
}

func TestConcurrentSignupsConsumeInviteOnce(t *testing.T) {
	env := setupPortal(t)
	ctx := context.Background()

	inv, err := env.Admin.CreateInvite(ctx, portalapi.CreateInviteRequest{})
	require.NoError(t, err)

	const callers = 6
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := env.Anon.Signup(ctx, portalapi.SignupRequest{
				Code:     inv.Invite.Code,
				Name:     "Racer",
				Email:    "racer" + string(rune('a'+i)) + "@example.com",
				Password: "Racing-Password-1",
			})
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
				return
			}
			require.Equal(t, http.StatusBadRequest, portalapi.StatusCode(err), err.Error())
		}(i)
	}
	wg.Wait()

	require.Equal(t, 1, successes)
	clients, err := env.Admin.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
}

func TestHealthAndBilling(t *testing.T) {
	env := setupPortal(t)
	ctx := context.Background()

	ready, err := env.Anon.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Checks.Database)

	plans, err := env.Anon.Plans(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 3)

	_, err = env.Admin.CreateClient(ctx, portalapi.CreateClientRequest{Name: "Billing", Email: "billing@example.com", Password: "Billing-Pass-1"})
	require.NoError(t, err)
	client := env.loginAs(t, "billing@example.com", "Billing-Pass-1")

	_, err = client.Checkout(ctx, "growth")
	requireStatus(t, err, http.StatusServiceUnavailable)

	_, err = client.BillingPortal(ctx)
	requireStatus(t, err, http.StatusBadRequest)
}
