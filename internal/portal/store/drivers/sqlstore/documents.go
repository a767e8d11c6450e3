package sqlstore

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
)

type documentsRepo struct{ conn }

const documentColumns = `id, client_id, document_type, file_name, storage_path, status, uploaded_by, created_at, updated_at`

func (r documentsRepo) CreateDocument(ctx context.Context, d domain.Document) error {
	_, err := r.exec(ctx,
		`INSERT INTO documents (`+documentColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.ClientID, string(d.DocumentType), d.FileName, d.StoragePath, string(d.Status),
		nullString(d.UploadedBy), ts(d.CreatedAt), ts(d.UpdatedAt),
	)
	return err
}

func (r documentsRepo) ListDocuments(ctx context.Context, clientID string) ([]domain.Document, error) {
	rows, err := r.query(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE client_id = ? ORDER BY created_at, id`, clientID)
	if err != nil {
		return nil, err
	}
	return collect(r.conn, rows, func(s scanner) (domain.Document, error) {
		var (
			d           domain.Document
			typ, status string
			uploadedBy  sql.NullString
		)
		err := s.Scan(&d.ID, &d.ClientID, &typ, &d.FileName, &d.StoragePath, &status, &uploadedBy,
			&d.CreatedAt, &d.UpdatedAt)
		d.DocumentType = domain.DocumentType(typ)
		d.Status = domain.DocumentStatus(status)
		d.UploadedBy = fromNullString(uploadedBy)
		d.CreatedAt, d.UpdatedAt = d.CreatedAt.UTC(), d.UpdatedAt.UTC()
		return d, err
	})
}

func (r documentsRepo) DeleteDocumentsByClient(ctx context.Context, clientID string) (int, error) {
	return r.execCount(ctx, `DELETE FROM documents WHERE client_id = ?`, clientID)
}

type reportsRepo struct{ conn }

const reportColumns = `id, client_id, name, period, storage_path, uploaded_by, created_at`

func (r reportsRepo) CreateReport(ctx context.Context, rep domain.Report) error {
	_, err := r.exec(ctx,
		`INSERT INTO reports (`+reportColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rep.ID, rep.ClientID, rep.Name, nullString(rep.Period), rep.StoragePath,
		nullString(rep.UploadedBy), ts(rep.CreatedAt),
	)
	return err
}

func (r reportsRepo) ListReports(ctx context.Context, clientID string) ([]domain.Report, error) {
	rows, err := r.query(ctx,
		`SELECT `+reportColumns+` FROM reports WHERE client_id = ? ORDER BY created_at, id`, clientID)
	if err != nil {
		return nil, err
	}
	return collect(r.conn, rows, func(s scanner) (domain.Report, error) {
		var (
			rep                domain.Report
			period, uploadedBy sql.NullString
		)
		err := s.Scan(&rep.ID, &rep.ClientID, &rep.Name, &period, &rep.StoragePath, &uploadedBy, &rep.CreatedAt)
		rep.Period = fromNullString(period)
		rep.UploadedBy = fromNullString(uploadedBy)
		rep.CreatedAt = rep.CreatedAt.UTC()
		return rep, err
	})
}

func (r reportsRepo) DeleteReportsByClient(ctx context.Context, clientID string) (int, error) {
	return r.execCount(ctx, `DELETE FROM reports WHERE client_id = ?`, clientID)
}
