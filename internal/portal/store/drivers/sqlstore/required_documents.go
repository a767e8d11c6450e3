package sqlstore

import (
	"context"
	"time"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
)

type requiredDocsRepo struct{ conn }

func (r requiredDocsRepo) CreateRequiredDocuments(ctx context.Context, docs []domain.RequiredDocument) error {
	for _, d := range docs {
		_, err := r.exec(ctx,
			`INSERT INTO required_documents (id, client_id, document_type, is_required, status, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			d.ID, d.ClientID, string(d.DocumentType), d.IsRequired, string(d.Status), ts(d.CreatedAt), ts(d.UpdatedAt),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r requiredDocsRepo) ListRequiredDocuments(ctx context.Context, clientID string) ([]domain.RequiredDocument, error) {
	rows, err := r.query(ctx,
		`SELECT id, client_id, document_type, is_required, status, created_at, updated_at
		 FROM required_documents WHERE client_id = ? ORDER BY id`, clientID)
	if err != nil {
		return nil, err
	}
	return collect(r.conn, rows, func(s scanner) (domain.RequiredDocument, error) {
		var (
			d           domain.RequiredDocument
			typ, status string
		)
		err := s.Scan(&d.ID, &d.ClientID, &typ, &d.IsRequired, &status, &d.CreatedAt, &d.UpdatedAt)
		d.DocumentType = domain.DocumentType(typ)
		d.Status = domain.DocumentStatus(status)
		return d, err
	})
}

func (r requiredDocsRepo) UpdateRequiredDocumentStatus(ctx context.Context, clientID string, t domain.DocumentType, status domain.DocumentStatus) error {
	return r.execOne(ctx,
		`UPDATE required_documents SET status = ?, updated_at = ? WHERE client_id = ? AND document_type = ?`,
		string(status), ts(time.Now()), clientID, string(t),
	)
}

func (r requiredDocsRepo) DeleteRequiredDocumentsByClient(ctx context.Context, clientID string) (int, error) {
	return r.execCount(ctx, `DELETE FROM required_documents WHERE client_id = ?`, clientID)
}
