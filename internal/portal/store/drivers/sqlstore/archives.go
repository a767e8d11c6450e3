package sqlstore

import (
	"context"
	"database/sql"
	"strings"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
)

type archivesRepo struct{ conn }

func (r archivesRepo) CheckSchema(ctx context.Context) error {
	for _, table := range []string{"archived_clients", "archived_documents", "archived_reports"} {
		rows, err := r.query(ctx, `SELECT 1 FROM `+table+` WHERE 1 = 0`)
		if err != nil {
			return err
		}
		_ = rows.Close()
	}
	return nil
}

func (r archivesRepo) ArchiveClient(ctx context.Context, c domain.ArchivedClient) error {
	_, err := r.exec(ctx,
		`INSERT INTO archived_clients (id, user_id, name, email, phone, company, onboarding_status,
			plan_id, subscription_status, billing_customer_id, billing_subscription_id,
			created_at, archived_at, archived_by, delete_after_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.Name, strings.ToLower(c.Email), nullString(c.Phone), nullString(c.Company),
		string(c.OnboardingStatus), nullString(c.PlanID), nullString(c.SubscriptionStatus),
		nullString(c.BillingCustomerID), nullString(c.BillingSubscriptionID),
		ts(c.CreatedAt), ts(c.ArchivedAt), c.ArchivedBy, ts(c.DeleteAfterDate),
	)
	return err
}

func (r archivesRepo) ArchiveDocuments(ctx context.Context, docs []domain.ArchivedDocument) error {
	for _, d := range docs {
		_, err := r.exec(ctx,
			`INSERT INTO archived_documents (id, client_id, document_type, file_name, storage_path, status,
				uploaded_by, created_at, archived_at, delete_after_date)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			d.ID, d.ClientID, string(d.DocumentType), d.FileName, d.StoragePath, string(d.Status),
			nullString(d.UploadedBy), ts(d.CreatedAt), ts(d.ArchivedAt), ts(d.DeleteAfterDate),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r archivesRepo) ArchiveReports(ctx context.Context, reports []domain.ArchivedReport) error {
	for _, rep := range reports {
		_, err := r.exec(ctx,
			`INSERT INTO archived_reports (id, client_id, name, period, storage_path, uploaded_by,
				created_at, archived_at, delete_after_date)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rep.ID, rep.ClientID, rep.Name, nullString(rep.Period), rep.StoragePath,
			nullString(rep.UploadedBy), ts(rep.CreatedAt), ts(rep.ArchivedAt), ts(rep.DeleteAfterDate),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r archivesRepo) ListArchivedClients(ctx context.Context) ([]domain.ArchivedClient, error) {
	rows, err := r.query(ctx,
		`SELECT id, user_id, name, email, phone, company, onboarding_status, plan_id, subscription_status,
			billing_customer_id, billing_subscription_id, created_at, archived_at, archived_by, delete_after_date
		 FROM archived_clients ORDER BY archived_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	return collect(r.conn, rows, func(s scanner) (domain.ArchivedClient, error) {
		var (
			a                                    domain.ArchivedClient
			status                               string
			phone, company, plan, sub, cust, sid sql.NullString
		)
		err := s.Scan(&a.ID, &a.UserID, &a.Name, &a.Email, &phone, &company, &status, &plan, &sub,
			&cust, &sid, &a.CreatedAt, &a.ArchivedAt, &a.ArchivedBy, &a.DeleteAfterDate)
		a.Phone = fromNullString(phone)
		a.Company = fromNullString(company)
		a.OnboardingStatus = domain.OnboardingStatus(status)
		a.PlanID = fromNullString(plan)
		a.SubscriptionStatus = fromNullString(sub)
		a.BillingCustomerID = fromNullString(cust)
		a.BillingSubscriptionID = fromNullString(sid)
		a.CreatedAt = a.CreatedAt.UTC()
		a.ArchivedAt = a.ArchivedAt.UTC()
		a.DeleteAfterDate = a.DeleteAfterDate.UTC()
		return a, err
	})
}

func (r archivesRepo) CountArchivedDocuments(ctx context.Context, clientID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM archived_documents WHERE client_id = ?`, clientID)
}

func (r archivesRepo) CountArchivedReports(ctx context.Context, clientID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM archived_reports WHERE client_id = ?`, clientID)
}
