package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/clientportal/internal/portal/billing"
	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
	"github.com/aussiebroadwan/clientportal/internal/portal/store"
	"github.com/aussiebroadwan/clientportal/pkg/cryptox"
	"github.com/aussiebroadwan/clientportal/pkg/idx"
	"github.com/aussiebroadwan/clientportal/pkg/lockx"
	"github.com/aussiebroadwan/clientportal/pkg/saga"
	"github.com/aussiebroadwan/clientportal/pkg/slogx"
)

var (
	ErrCodeSpaceExhausted = errors.New("could not generate a unique invite code")
	ErrInviteUnavailable  = errors.New("failed to use invite code")
)

// InviteCodeAttempts bounds how many codes Create tries before giving up.
const InviteCodeAttempts = 10

// InviteRejectedError carries the reason an invite cannot be redeemed.
type InviteRejectedError struct {
	Reason domain.InviteRejection
}

func (e *InviteRejectedError) Error() string {
	return fmt.Sprintf("invite rejected: %s", e.Reason)
}

// GenerateInviteCode returns a random XXXX-XXXX code.
func GenerateInviteCode() (string, error) {
	s, err := cryptox.RandomString(domain.InviteCodeAlphabet, 8)
	if err != nil {
		return "", err
	}
	return s[:4] + "-" + s[4:], nil
}

type CreateInviteRequest struct {
	Email                string
	ExpiresInDays        int // 0 means the default
	RecommendedPlan      string
	EngagementLetterPath string
	SendEmail            bool
	CreatedBy            string
}

type CreateInviteResult struct {
	Invite      domain.InviteCode
	EmailQueued bool
}

type SignupRequest struct {
	Code     string
	Name     string
	Email    string
	Password string
	Phone    string
	Company  string
}

type InviteService struct {
	Store      store.Store
	Identities IdentityProvider
	Notify     *NotificationService
	Locker     lockx.Locker
	DefaultTTL time.Duration
	Now        func() time.Time

	// Generate is GenerateInviteCode unless a test replaces it.
	Generate func() (string, error)
}

func (s *InviteService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *InviteService) generate() (string, error) {
	if s.Generate != nil {
		return s.Generate()
	}
	return GenerateInviteCode()
}

// Create stores a new invite code, retrying on collisions.
func (s *InviteService) Create(ctx context.Context, req CreateInviteRequest) (CreateInviteResult, error) {
	log := slogx.FromContext(ctx)

	if req.ExpiresInDays < 0 {
		return CreateInviteResult{}, invalid("expires_in_days must not be negative")
	}
	if req.RecommendedPlan != "" {
		if _, ok := billing.PlanByID(req.RecommendedPlan); !ok {
			return CreateInviteResult{}, invalid("unknown plan %q", req.RecommendedPlan)
		}
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != "" && !strings.Contains(email, "@") {
		return CreateInviteResult{}, invalid("invalid email address")
	}

	ttl := time.Duration(req.ExpiresInDays) * 24 * time.Hour
	if ttl == 0 {
		ttl = s.DefaultTTL
	}
	if ttl <= 0 {
		ttl = domain.DefaultInviteTTL
	}

	now := s.now()
	inv := domain.InviteCode{
		ID:                   idx.NewString(),
		Email:                email,
		ExpiresAt:            now.Add(ttl),
		RecommendedPlan:      req.RecommendedPlan,
		EngagementLetterPath: req.EngagementLetterPath,
		CreatedBy:            req.CreatedBy,
		CreatedAt:            now,
	}

	created := false
	for attempt := 1; attempt <= InviteCodeAttempts && !created; attempt++ {
		code, err := s.generate()
		if err != nil {
			return CreateInviteResult{}, err
		}
		exists, err := s.Store.InviteCodes().CodeExists(ctx, code)
		if err != nil {
			return CreateInviteResult{}, err
		}
		if exists {
			log.Debug("invite code collision", slog.Int("attempt", attempt))
			continue
		}

		inv.Code = code
		err = s.Store.InviteCodes().CreateInviteCode(ctx, inv)
		switch {
		case err == nil:
			created = true
		case errors.Is(err, store.ErrAlreadyExists):
			// Lost a race with a concurrent create of the same code.
			log.Debug("invite code collision on insert", slog.Int("attempt", attempt))
		default:
			log.Error("failed to create invite code", slog.Any("error", err))
			return CreateInviteResult{}, err
		}
	}
	if !created {
		log.Error("invite code space exhausted", slog.Int("attempts", InviteCodeAttempts))
		return CreateInviteResult{}, ErrCodeSpaceExhausted
	}

	res := CreateInviteResult{Invite: inv}
	if req.SendEmail && inv.Email != "" && s.Notify != nil {
		if _, err := s.Notify.Invite(ctx, inv); err != nil {
			log.Warn("failed to queue invite email", slog.String("invite_id", inv.ID), slog.Any("error", err))
		} else {
			res.EmailQueued = true
		}
	}

	log.Info("invite code created",
		slog.String("invite_id", inv.ID),
		slog.Time("expires_at", inv.ExpiresAt),
		slog.Bool("restricted", inv.Email != ""),
	)
	return res, nil
}

func (s *InviteService) List(ctx context.Context) ([]domain.InviteCode, error) {
	return s.Store.InviteCodes().ListInviteCodes(ctx)
}

// Validate looks up code and reports why it cannot be redeemed by email. The
// rejection is empty for a redeemable invite.
func (s *InviteService) Validate(ctx context.Context, code, email string) (domain.InviteCode, domain.InviteRejection, error) {
	code = domain.NormalizeInviteCode(code)
	if code == "" {
		return domain.InviteCode{}, "", invalid("code is required")
	}
	inv, err := s.Store.InviteCodes().GetInviteCode(ctx, code)
	if errors.Is(err, store.ErrNotFound) {
		return domain.InviteCode{}, domain.InviteNotFound, nil
	}
	if err != nil {
		return domain.InviteCode{}, "", err
	}
	return inv, inv.Check(email, s.now()), nil
}

// Use marks code as used by userID. Of concurrent callers at most one wins;
// the rest get ErrInviteUnavailable.
func (s *InviteService) Use(ctx context.Context, code, userID string) error {
	code = domain.NormalizeInviteCode(code)
	if code == "" || userID == "" {
		return invalid("code and user_id are required")
	}
	err := s.Store.InviteCodes().MarkInviteCodeUsed(ctx, code, userID, s.now())
	if errors.Is(err, store.ErrConflict) || errors.Is(err, store.ErrNotFound) {
		return ErrInviteUnavailable
	}
	return err
}

// Signup redeems an invite into a new client account.
func (s *InviteService) Signup(ctx context.Context, req SignupRequest) (domain.Client, error) {
	log := slogx.FromContext(ctx)

	req.Code = domain.NormalizeInviteCode(req.Code)
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	switch {
	case req.Code == "" || req.Name == "" || req.Email == "":
		return domain.Client{}, invalid("code, name and email are required")
	case !strings.Contains(req.Email, "@"):
		return domain.Client{}, invalid("invalid email address")
	case len(req.Password) < MinPasswordLength:
		return domain.Client{}, invalid("password must be at least %d characters", MinPasswordLength)
	}

	inv, reason, err := s.Validate(ctx, req.Code, req.Email)
	if err != nil {
		return domain.Client{}, err
	}
	if reason != "" {
		return domain.Client{}, &InviteRejectedError{Reason: reason}
	}

	var client domain.Client
	run := func(ctx context.Context) error {
		var ident domain.Identity
		now := s.now()
		client = domain.Client{
			ID:               idx.NewString(),
			Name:             req.Name,
			Email:            req.Email,
			Phone:            strings.TrimSpace(req.Phone),
			Company:          strings.TrimSpace(req.Company),
			OnboardingStatus: domain.OnboardingPending,
			PlanID:           inv.RecommendedPlan,
			CreatedAt:        now,
			UpdatedAt:        now,
		}

		return saga.New("signup").
			Then("create_identity",
				func(ctx context.Context) error {
					var err error
					ident, err = s.Identities.CreateIdentity(ctx, req.Email, req.Password)
					return err
				},
				func(ctx context.Context) error {
					return s.Identities.DeleteIdentity(ctx, ident.ID)
				}).
			Then("use_invite",
				func(ctx context.Context) error {
					err := s.Store.InviteCodes().MarkInviteCodeUsed(ctx, inv.Code, ident.ID, now)
					if errors.Is(err, store.ErrConflict) {
						return ErrInviteUnavailable
					}
					return err
				},
				func(ctx context.Context) error {
					return s.Store.InviteCodes().ReleaseInviteCode(ctx, inv.Code, ident.ID)
				}).
			Then("create_client",
				func(ctx context.Context) error {
					client.UserID = ident.ID
					return s.Store.WithTx(ctx, func(tx store.Tx) error {
						if err := createProfileAndClient(ctx, tx, client, now); err != nil {
							return err
						}
						if err := tx.RequiredDocuments().CreateRequiredDocuments(ctx, checklist(client.ID, domain.SignupChecklist, now)); err != nil {
							return err
						}
						if s.Notify == nil {
							return nil
						}
						if _, err := s.Notify.Welcome(ctx, tx, client, ""); err != nil {
							return err
						}
						if _, err := s.Notify.ClientSignedUp(ctx, tx, client, inv.Code); err != nil && !errors.Is(err, ErrNoRecipient) {
							return err
						}
						return nil
					})
				},
				nil).
			Run(ctx)
	}

	if s.Locker != nil {
		err = lockx.With(ctx, s.Locker, "client:email:"+req.Email, run)
	} else {
		err = run(ctx)
	}
	if err != nil {
		if !errors.Is(err, ErrEmailTaken) && !errors.Is(err, ErrInviteUnavailable) {
			log.Error("signup failed", slog.String("email", req.Email), slog.Any("error", err))
		}
		return domain.Client{}, err
	}

	log.Info("client signed up", slog.String("client_id", client.ID), slog.String("invite_id", inv.ID))
	return client, nil
}
