package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
)

func TestRecordDocumentUpdatesChecklist(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	c := e.createClient(t, "docs@example.com")

	d, err := e.docs.RecordDocument(ctx, c.UserID, domain.RoleClient, DocumentInput{
		DocumentType: domain.DocBankStatements,
		FileName:     " march.pdf ",
		StoragePath:  c.ID + "/bank_statements/march.pdf",
	})
	require.NoError(t, err)
	require.Equal(t, c.ID, d.ClientID)
	require.Equal(t, "march.pdf", d.FileName)
	require.Equal(t, domain.DocStatusUploaded, d.Status)
	require.Equal(t, c.UserID, d.UploadedBy)

	checklist, err := e.store.RequiredDocuments().ListRequiredDocuments(ctx, c.ID)
	require.NoError(t, err)
	for _, rd := range checklist {
		if rd.DocumentType == domain.DocBankStatements {
			require.Equal(t, domain.DocStatusUploaded, rd.Status)
		} else {
			require.Equal(t, domain.DocStatusPending, rd.Status)
		}
	}

	// Types outside the checklist are stored without touching it.
	_, err = e.docs.RecordDocument(ctx, c.UserID, domain.RoleClient, DocumentInput{
		DocumentType: domain.DocOther, FileName: "notes.txt", StoragePath: c.ID + "/other/notes.txt",
	})
	require.NoError(t, err)

	docs, err := e.docs.ListDocuments(ctx, c.UserID, domain.RoleClient, "")
	require.NoError(t, err)
	require.Len(t, docs, 2)
}

func TestRecordDocumentValidatesAndScopes(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	adminID := e.createAdmin(t, "admin@example.com")
	a := e.createClient(t, "a@example.com")
	b := e.createClient(t, "b@example.com")

	var inv *InvalidError
	_, err := e.docs.RecordDocument(ctx, a.UserID, domain.RoleClient, DocumentInput{
		DocumentType: "passport", FileName: "x.pdf", StoragePath: "x.pdf",
	})
	require.ErrorAs(t, err, &inv)

	_, err = e.docs.RecordDocument(ctx, a.UserID, domain.RoleClient, DocumentInput{
		DocumentType: domain.DocBalanceSheet, FileName: "x.pdf",
	})
	require.ErrorAs(t, err, &inv)

	_, err = e.docs.RecordDocument(ctx, a.UserID, domain.RoleClient, DocumentInput{
		ClientID: b.ID, DocumentType: domain.DocBalanceSheet, FileName: "x.pdf", StoragePath: "x.pdf",
	})
	require.ErrorIs(t, err, ErrForbidden)

	// Admins record on behalf of a named client.
	d, err := e.docs.RecordDocument(ctx, adminID, domain.RoleAdmin, DocumentInput{
		ClientID: b.ID, DocumentType: domain.DocEngagementLetter, FileName: "letter.pdf", StoragePath: b.ID + "/letter.pdf",
	})
	require.NoError(t, err)
	require.Equal(t, b.ID, d.ClientID)

	_, err = e.docs.ListDocuments(ctx, adminID, domain.RoleAdmin, "")
	require.ErrorAs(t, err, &inv)
}

func TestRecordReportQueuesNotification(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	adminID := e.createAdmin(t, "admin@example.com")
	c := e.createClient(t, "reports@example.com")
	before := countKind(pendingOutbox(t, e.store, e.clock.Now()), domain.NotifyReportUploaded)
	require.Zero(t, before)

	rep, id, err := e.docs.RecordReport(ctx, adminID, ReportInput{
		ClientID: c.ID, Name: "Q1 Profit and Loss", Period: "2026-Q1", StoragePath: c.ID + "/reports/q1.pdf",
	})
	require.NoError(t, err)
	require.Empty(t, id)
	require.Equal(t, adminID, rep.UploadedBy)

	_, id, err = e.docs.RecordReport(ctx, adminID, ReportInput{
		ClientID: c.ID, Name: "Q1 Balance Sheet", Period: "2026-Q1", StoragePath: c.ID + "/reports/q1-bs.pdf", Notify: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	entries := pendingOutbox(t, e.store, e.clock.Now())
	require.Equal(t, 1, countKind(entries, domain.NotifyReportUploaded))

	reps, err := e.docs.ListReports(ctx, c.UserID, domain.RoleClient, "")
	require.NoError(t, err)
	require.Len(t, reps, 2)

	_, _, err = e.docs.RecordReport(ctx, adminID, ReportInput{ClientID: "missing", Name: "x", StoragePath: "x.pdf"})
	require.ErrorIs(t, err, ErrClientNotFound)

	var inv *InvalidError
	_, _, err = e.docs.RecordReport(ctx, adminID, ReportInput{ClientID: c.ID, StoragePath: "x.pdf"})
	require.ErrorAs(t, err, &inv)
}
