package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
	"github.com/aussiebroadwan/clientportal/internal/portal/store"
	"github.com/aussiebroadwan/clientportal/pkg/idx"
	"github.com/aussiebroadwan/clientportal/pkg/slogx"
)

// DocumentService records metadata for files held in object storage. The
// bytes themselves never pass through the portal.
type DocumentService struct {
	Store  store.Store
	Access *AccessService
	Notify *NotificationService
	Now    func() time.Time
}

func (s *DocumentService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

type DocumentInput struct {
	ClientID     string
	DocumentType domain.DocumentType
	FileName     string
	StoragePath  string
}

// RecordDocument stores an uploaded file against the client and moves the
// matching checklist row to uploaded.
func (s *DocumentService) RecordDocument(ctx context.Context, userID string, role domain.Role, in DocumentInput) (domain.Document, error) {
	in.FileName = strings.TrimSpace(in.FileName)
	in.StoragePath = strings.TrimSpace(in.StoragePath)
	if !in.DocumentType.Known() {
		return domain.Document{}, invalid("unknown document_type %q", in.DocumentType)
	}
	if in.FileName == "" || in.StoragePath == "" {
		return domain.Document{}, invalid("file_name and storage_path are required")
	}

	c, err := s.Access.ResolveClient(ctx, userID, role, in.ClientID)
	if err != nil {
		return domain.Document{}, err
	}

	now := s.now()
	d := domain.Document{
		ID:           idx.NewString(),
		ClientID:     c.ID,
		DocumentType: in.DocumentType,
		FileName:     in.FileName,
		StoragePath:  in.StoragePath,
		Status:       domain.DocStatusUploaded,
		UploadedBy:   userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Documents().CreateDocument(ctx, d); err != nil {
			return err
		}
		err := tx.RequiredDocuments().UpdateRequiredDocumentStatus(ctx, c.ID, d.DocumentType, domain.DocStatusUploaded)
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	})
	if err != nil {
		return domain.Document{}, err
	}
	return d, nil
}

func (s *DocumentService) ListDocuments(ctx context.Context, userID string, role domain.Role, clientID string) ([]domain.Document, error) {
	c, err := s.Access.ResolveClient(ctx, userID, role, clientID)
	if err != nil {
		return nil, err
	}
	return s.Store.Documents().ListDocuments(ctx, c.ID)
}

type ReportInput struct {
	ClientID    string
	Name        string
	Period      string
	StoragePath string
	// Notify queues the report-uploaded email once the row is stored.
	Notify bool
}

// RecordReport stores a report prepared by the firm. The returned id is the
// queued notification, empty when none was requested.
func (s *DocumentService) RecordReport(ctx context.Context, adminID string, in ReportInput) (domain.Report, string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.StoragePath = strings.TrimSpace(in.StoragePath)
	if in.Name == "" || in.StoragePath == "" {
		return domain.Report{}, "", invalid("name and storage_path are required")
	}

	c, err := s.Access.ResolveClient(ctx, adminID, domain.RoleAdmin, in.ClientID)
	if err != nil {
		return domain.Report{}, "", err
	}

	rep := domain.Report{
		ID:          idx.NewString(),
		ClientID:    c.ID,
		Name:        in.Name,
		Period:      strings.TrimSpace(in.Period),
		StoragePath: in.StoragePath,
		UploadedBy:  adminID,
		CreatedAt:   s.now(),
	}
	if err := s.Store.Reports().CreateReport(ctx, rep); err != nil {
		return domain.Report{}, "", err
	}

	if !in.Notify || s.Notify == nil {
		return rep, "", nil
	}
	id, err := s.Notify.ReportUploaded(ctx, c.ID, rep.Name, rep.Period)
	if err != nil {
		// The report is stored; only the email is lost.
		slogx.FromContext(ctx).Warn("report notification not queued", slog.String("report_id", rep.ID), slog.Any("error", err))
		return rep, "", nil
	}
	return rep, id, nil
}

func (s *DocumentService) ListReports(ctx context.Context, userID string, role domain.Role, clientID string) ([]domain.Report, error) {
	c, err := s.Access.ResolveClient(ctx, userID, role, clientID)
	if err != nil {
		return nil, err
	}
	return s.Store.Reports().ListReports(ctx, c.ID)
}
