package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
	"github.com/aussiebroadwan/clientportal/internal/portal/store"
	"github.com/aussiebroadwan/clientportal/pkg/cryptox"
	"github.com/aussiebroadwan/clientportal/pkg/idx"
	"github.com/aussiebroadwan/clientportal/pkg/lockx"
	"github.com/aussiebroadwan/clientportal/pkg/saga"
	"github.com/aussiebroadwan/clientportal/pkg/slogx"
)

// ErrArchiveSetupRequired means the archive tables have not been migrated.
var ErrArchiveSetupRequired = errors.New("archive tables not set up")

type CreateClientRequest struct {
	Name     string
	Email    string
	Phone    string
	Company  string
	Password string // generated when empty
	PlanID   string
}

type CreateClientResult struct {
	Client            domain.Client
	TemporaryPassword string // set only when the password was generated
}

// ClientDetail is a client with its checklist and files.
type ClientDetail struct {
	Client            domain.Client
	RequiredDocuments []domain.RequiredDocument
	Documents         []domain.Document
	Reports           []domain.Report
}

type ClientService struct {
	Store      store.Store
	Identities IdentityProvider
	Notify     *NotificationService
	Locker     lockx.Locker
	Now        func() time.Time
}

func (s *ClientService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *ClientService) lock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if s.Locker == nil {
		return fn(ctx)
	}
	return lockx.With(ctx, s.Locker, "client:"+key, fn)
}

// Create provisions an identity, profile, client row and checklist. A failure
// after the identity exists removes what was already written.
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (CreateClientResult, error) {
	log := slogx.FromContext(ctx)

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" {
		return CreateClientResult{}, invalid("name and email are required")
	}
	if !strings.Contains(req.Email, "@") {
		return CreateClientResult{}, invalid("invalid email address")
	}

	var res CreateClientResult
	err := s.lock(ctx, "email:"+req.Email, func(ctx context.Context) error {
		password := req.Password
		if password == "" {
			p, err := cryptox.GeneratePassword()
			if err != nil {
				return err
			}
			password = p
			res.TemporaryPassword = p
		}

		var ident domain.Identity
		now := s.now()
		client := domain.Client{
			ID:               idx.NewString(),
			Name:             req.Name,
			Email:            req.Email,
			Phone:            strings.TrimSpace(req.Phone),
			Company:          strings.TrimSpace(req.Company),
			OnboardingStatus: domain.OnboardingPending,
			PlanID:           req.PlanID,
			CreatedAt:        now,
			UpdatedAt:        now,
		}

		err := saga.New("create_client").
			Then("create_identity",
				func(ctx context.Context) error {
					var err error
					ident, err = s.Identities.CreateIdentity(ctx, req.Email, password)
					return err
				},
				func(ctx context.Context) error {
					return s.Identities.DeleteIdentity(ctx, ident.ID)
				}).
			Then("create_profile_and_client",
				func(ctx context.Context) error {
					client.UserID = ident.ID
					return s.Store.WithTx(ctx, func(tx store.Tx) error {
						return createProfileAndClient(ctx, tx, client, now)
					})
				},
				func(ctx context.Context) error {
					return s.removeClientRows(ctx, client.ID, ident.ID)
				}).
			Then("create_checklist",
				func(ctx context.Context) error {
					return s.Store.RequiredDocuments().CreateRequiredDocuments(ctx,
						checklist(client.ID, domain.AdminChecklist, now))
				},
				nil).
			Run(ctx)
		if err != nil {
			return err
		}
		res.Client = client
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrEmailTaken) {
			log.Error("failed to create client", slog.String("email", req.Email), slog.Any("error", err))
		}
		return CreateClientResult{}, err
	}

	if s.Notify != nil {
		if _, err := s.Notify.Welcome(ctx, nil, res.Client, res.TemporaryPassword); err != nil {
			log.Warn("failed to queue welcome email", slog.String("client_id", res.Client.ID), slog.Any("error", err))
		}
	}

	log.Info("client created", slog.String("client_id", res.Client.ID), slog.String("user_id", res.Client.UserID))
	return res, nil
}

func createProfileAndClient(ctx context.Context, tx store.Tx, c domain.Client, now time.Time) error {
	err := tx.Profiles().CreateProfile(ctx, domain.Profile{
		ID:        c.UserID,
		Email:     c.Email,
		FullName:  c.Name,
		Role:      domain.RoleClient,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return err
	}
	return tx.Clients().CreateClient(ctx, c)
}

// removeClientRows deletes the client and profile written by a failed
// create. Rows that are already gone are ignored.
func (s *ClientService) removeClientRows(ctx context.Context, clientID, userID string) error {
	if err := s.Store.Clients().DeleteClient(ctx, clientID); err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	if err := s.Store.Profiles().DeleteProfile(ctx, userID); err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return nil
}

func checklist(clientID string, items []domain.ChecklistItem, now time.Time) []domain.RequiredDocument {
	out := make([]domain.RequiredDocument, 0, len(items))
	for _, it := range items {
		out = append(out, domain.RequiredDocument{
			ID:           idx.NewString(),
			ClientID:     clientID,
			DocumentType: it.Type,
			IsRequired:   it.Required,
			Status:       domain.DocStatusPending,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	return out
}

// Delete removes a client row (cascading to its documents, reports, messages
// and checklist) and then the login. Either id may be empty, in which case
// that part is skipped.
func (s *ClientService) Delete(ctx context.Context, clientID, userID string) error {
	log := slogx.FromContext(ctx)

	if clientID == "" && userID == "" {
		return invalid("client_id or user_id is required")
	}

	key := clientID
	if key == "" {
		key = "user:" + userID
	}
	return s.lock(ctx, key, func(ctx context.Context) error {
		if clientID != "" {
			err := s.Store.Clients().DeleteClient(ctx, clientID)
			if errors.Is(err, store.ErrNotFound) {
				return ErrClientNotFound
			}
			if err != nil {
				return err
			}
		}
		if userID != "" {
			if err := s.Store.Profiles().DeleteProfile(ctx, userID); err != nil && !errors.Is(err, store.ErrNotFound) {
				return err
			}
			if err := s.Identities.DeleteIdentity(ctx, userID); err != nil {
				return err
			}
		}
		log.Info("client deleted", slog.String("client_id", clientID), slog.String("user_id", userID))
		return nil
	})
}

// Archive copies the client, its documents and its reports into the archive
// tables and removes the live rows, all in one transaction.
func (s *ClientService) Archive(ctx context.Context, clientID, archivedBy string) (domain.ArchiveResult, error) {
	log := slogx.FromContext(ctx)

	if clientID == "" {
		return domain.ArchiveResult{}, invalid("client_id is required")
	}

	var res domain.ArchiveResult
	err := s.lock(ctx, clientID, func(ctx context.Context) error {
		c, err := s.Store.Clients().GetClient(ctx, clientID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrClientNotFound
		}
		if err != nil {
			return err
		}

		if err := s.Store.Archives().CheckSchema(ctx); err != nil {
			if errors.Is(err, store.ErrSchemaMissing) {
				return ErrArchiveSetupRequired
			}
			return err
		}

		now := s.now()
		deadline := domain.RetentionDeadline(now)

		return s.Store.WithTx(ctx, func(tx store.Tx) error {
			docs, err := tx.Documents().ListDocuments(ctx, c.ID)
			if err != nil {
				return err
			}
			reports, err := tx.Reports().ListReports(ctx, c.ID)
			if err != nil {
				return err
			}

			err = tx.Archives().ArchiveClient(ctx, domain.ArchivedClient{
				Client:          c,
				ArchivedAt:      now,
				ArchivedBy:      archivedBy,
				DeleteAfterDate: deadline,
			})
			if err != nil {
				return err
			}

			archivedDocs := make([]domain.ArchivedDocument, 0, len(docs))
			for _, d := range docs {
				archivedDocs = append(archivedDocs, domain.ArchivedDocument{Document: d, ArchivedAt: now, DeleteAfterDate: deadline})
			}
			if err := tx.Archives().ArchiveDocuments(ctx, archivedDocs); err != nil {
				return err
			}

			archivedReports := make([]domain.ArchivedReport, 0, len(reports))
			for _, r := range reports {
				archivedReports = append(archivedReports, domain.ArchivedReport{Report: r, ArchivedAt: now, DeleteAfterDate: deadline})
			}
			if err := tx.Archives().ArchiveReports(ctx, archivedReports); err != nil {
				return err
			}

			if _, err := tx.Documents().DeleteDocumentsByClient(ctx, c.ID); err != nil {
				return err
			}
			if _, err := tx.Reports().DeleteReportsByClient(ctx, c.ID); err != nil {
				return err
			}
			if _, err := tx.RequiredDocuments().DeleteRequiredDocumentsByClient(ctx, c.ID); err != nil {
				return err
			}
			if _, err := tx.Messages().DeleteMessagesByClient(ctx, c.ID); err != nil {
				return err
			}
			if err := tx.Clients().DeleteClient(ctx, c.ID); err != nil {
				return err
			}

			res = domain.ArchiveResult{
				ClientID:          c.ID,
				DocumentsArchived: len(docs),
				ReportsArchived:   len(reports),
				DeleteAfterDate:   deadline,
			}
			return nil
		})
	})
	if err != nil {
		if !errors.Is(err, ErrClientNotFound) {
			log.Error("failed to archive client", slog.String("client_id", clientID), slog.Any("error", err))
		}
		return domain.ArchiveResult{}, err
	}

	log.Info("client archived",
		slog.String("client_id", res.ClientID),
		slog.Int("documents", res.DocumentsArchived),
		slog.Int("reports", res.ReportsArchived),
	)
	return res, nil
}

func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.Store.Clients().ListClients(ctx)
}

func (s *ClientService) Get(ctx context.Context, id string) (ClientDetail, error) {
	c, err := s.Store.Clients().GetClient(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ClientDetail{}, ErrClientNotFound
	}
	if err != nil {
		return ClientDetail{}, err
	}
	return s.detail(ctx, c)
}

func (s *ClientService) detail(ctx context.Context, c domain.Client) (ClientDetail, error) {
	out := ClientDetail{Client: c}
	var err error
	if out.RequiredDocuments, err = s.Store.RequiredDocuments().ListRequiredDocuments(ctx, c.ID); err != nil {
		return ClientDetail{}, err
	}
	if out.Documents, err = s.Store.Documents().ListDocuments(ctx, c.ID); err != nil {
		return ClientDetail{}, err
	}
	if out.Reports, err = s.Store.Reports().ListReports(ctx, c.ID); err != nil {
		return ClientDetail{}, err
	}
	return out, nil
}

func (s *ClientService) ListArchived(ctx context.Context) ([]domain.ArchivedClient, error) {
	out, err := s.Store.Archives().ListArchivedClients(ctx)
	if errors.Is(err, store.ErrSchemaMissing) {
		return nil, ErrArchiveSetupRequired
	}
	return out, err
}

// UpdateOnboarding sets the onboarding status of the caller's own client.
// Moving to complete notifies the firm.
func (s *ClientService) UpdateOnboarding(ctx context.Context, userID string, status domain.OnboardingStatus) (domain.Client, error) {
	if !status.Valid() {
		return domain.Client{}, invalid("status must be one of pending, in_progress, complete")
	}

	c, err := s.Store.Clients().GetClientByUserID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Client{}, ErrClientNotFound
	}
	if err != nil {
		return domain.Client{}, err
	}

	previous := c.OnboardingStatus
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Clients().UpdateOnboardingStatus(ctx, c.ID, status); err != nil {
			return err
		}
		if status == domain.OnboardingComplete && previous != domain.OnboardingComplete && s.Notify != nil {
			if _, err := s.Notify.OnboardingComplete(ctx, tx, c); err != nil && !errors.Is(err, ErrNoRecipient) {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.Client{}, err
	}

	c.OnboardingStatus = status
	return c, nil
}

// Me returns the caller's profile and, for clients, their client detail.
func (s *ClientService) Me(ctx context.Context, userID string) (domain.Profile, *ClientDetail, error) {
	p, err := s.Store.Profiles().GetProfile(ctx, userID)
	if err != nil {
		return domain.Profile{}, nil, err
	}
	if p.Role != domain.RoleClient {
		return p, nil, nil
	}
	c, err := s.Store.Clients().GetClientByUserID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return p, nil, nil
	}
	if err != nil {
		return domain.Profile{}, nil, err
	}
	d, err := s.detail(ctx, c)
	if err != nil {
		return domain.Profile{}, nil, err
	}
	return p, &d, nil
}
