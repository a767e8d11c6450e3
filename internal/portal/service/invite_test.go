package service

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
	"github.com/aussiebroadwan/clientportal/pkg/idx"
)

var inviteCodePattern = regexp.MustCompile(`^[A-HJ-NP-Z2-9]{4}-[A-HJ-NP-Z2-9]{4}$`)

func TestGenerateInviteCode(t *testing.T) {
	seen := map[string]bool{}
	for range 200 {
		code, err := GenerateInviteCode()
		require.NoError(t, err)
		require.Regexp(t, inviteCodePattern, code)
		seen[code] = true
	}
	require.Greater(t, len(seen), 190)
}

func TestCreateInvite(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	res, err := e.invites.Create(ctx, CreateInviteRequest{
		Email:           "New@Example.com",
		RecommendedPlan: "growth",
		SendEmail:       true,
		CreatedBy:       "admin-1",
	})
	require.NoError(t, err)
	require.Regexp(t, inviteCodePattern, res.Invite.Code)
	require.Equal(t, "new@example.com", res.Invite.Email)
	require.Equal(t, e.clock.Now().Add(domain.DefaultInviteTTL), res.Invite.ExpiresAt)
	require.True(t, res.EmailQueued)

	outbox := pendingOutbox(t, e.store, e.clock.Now())
	require.Equal(t, 1, countKind(outbox, domain.NotifyInvite))

	list, err := e.invites.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	var inv *InvalidError
	_, err = e.invites.Create(ctx, CreateInviteRequest{RecommendedPlan: "enterprise"})
	require.ErrorAs(t, err, &inv)
}

func TestCreateInviteCodeSpaceExhausted(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	e.invites.Generate = func() (string, error) { return "AAAA-BBBB", nil }
	_, err := e.invites.Create(ctx, CreateInviteRequest{})
	require.NoError(t, err)

	calls := 0
	e.invites.Generate = func() (string, error) {
		calls++
		return "AAAA-BBBB", nil
	}
	_, err = e.invites.Create(ctx, CreateInviteRequest{})
	require.ErrorIs(t, err, ErrCodeSpaceExhausted)
	require.Equal(t, InviteCodeAttempts, calls)
}

func TestValidateInvite(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	open, err := e.invites.Create(ctx, CreateInviteRequest{})
	require.NoError(t, err)
	restricted, err := e.invites.Create(ctx, CreateInviteRequest{Email: "only@example.com"})
	require.NoError(t, err)
	short, err := e.invites.Create(ctx, CreateInviteRequest{ExpiresInDays: 1})
	require.NoError(t, err)
	used, err := e.invites.Create(ctx, CreateInviteRequest{})
	require.NoError(t, err)
	require.NoError(t, e.invites.Use(ctx, used.Invite.Code, idx.NewString()))

	e.clock.Advance(48 * time.Hour)

	tests := []struct {
		name   string
		code   string
		email  string
		reason domain.InviteRejection
	}{
		{"valid", open.Invite.Code, "", ""},
		{"lower case input", toLower(open.Invite.Code), "", ""},
		{"not found", "ZZZZ-ZZZZ", "", domain.InviteNotFound},
		{"used", used.Invite.Code, "", domain.InviteUsed},
		{"expired", short.Invite.Code, "", domain.InviteExpired},
		{"email mismatch", restricted.Invite.Code, "other@example.com", domain.InviteEmailMismatch},
		{"email match ignores case", restricted.Invite.Code, "ONLY@example.com", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, reason, err := e.invites.Validate(ctx, tc.code, tc.email)
			require.NoError(t, err)
			require.Equal(t, tc.reason, reason)
		})
	}
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

func TestUseInviteConcurrently(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	res, err := e.invites.Create(ctx, CreateInviteRequest{})
	require.NoError(t, err)

	const callers = 8
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		wins   int
		losses int
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := e.invites.Use(ctx, res.Invite.Code, idx.NewString())
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				wins++
			} else if err == ErrInviteUnavailable {
				losses++
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, wins)
	require.Equal(t, callers-1, losses)

	inv, err := e.store.InviteCodes().GetInviteCode(ctx, res.Invite.Code)
	require.NoError(t, err)
	require.True(t, inv.Used)
	require.NotNil(t, inv.UsedAt)
}

func TestSignup(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	res, err := e.invites.Create(ctx, CreateInviteRequest{Email: "signup@example.com", RecommendedPlan: "premium"})
	require.NoError(t, err)

	c, err := e.invites.Signup(ctx, SignupRequest{
		Code:     res.Invite.Code,
		Name:     "Sig Nup",
		Email:    "signup@example.com",
		Password: "long-enough",
	})
	require.NoError(t, err)
	require.Equal(t, "premium", c.PlanID)

	docs, err := e.store.RequiredDocuments().ListRequiredDocuments(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, docs, len(domain.SignupChecklist))
	for _, d := range docs {
		if d.DocumentType == domain.DocTaxIDEIN || d.DocumentType == domain.DocTaxIDSSN {
			require.True(t, d.IsRequired)
		}
	}

	inv, err := e.store.InviteCodes().GetInviteCode(ctx, res.Invite.Code)
	require.NoError(t, err)
	require.True(t, inv.Used)
	require.Equal(t, c.UserID, inv.UsedBy)

	outbox := pendingOutbox(t, e.store, e.clock.Now())
	require.Equal(t, 1, countKind(outbox, domain.NotifyWelcome))
	require.Equal(t, 1, countKind(outbox, domain.NotifyClientSignedUp))

	// The code cannot be redeemed twice.
	_, err = e.invites.Signup(ctx, SignupRequest{Code: res.Invite.Code, Name: "Again", Email: "signup@example.com", Password: "long-enough"})
	var rej *InviteRejectedError
	require.ErrorAs(t, err, &rej)
	require.Equal(t, domain.InviteUsed, rej.Reason)
}

func TestSignupDuplicateEmailKeepsInvite(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.createClient(t, "taken@example.com")

	res, err := e.invites.Create(ctx, CreateInviteRequest{})
	require.NoError(t, err)

	_, err = e.invites.Signup(ctx, SignupRequest{Code: res.Invite.Code, Name: "X", Email: "taken@example.com", Password: "long-enough"})
	require.ErrorIs(t, err, ErrEmailTaken)

	inv, err := e.store.InviteCodes().GetInviteCode(ctx, res.Invite.Code)
	require.NoError(t, err)
	require.False(t, inv.Used)
}

func TestSignupReleasesInviteWhenClientInsertFails(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	res, err := e.invites.Create(ctx, CreateInviteRequest{})
	require.NoError(t, err)

	svc := &InviteService{Store: failingTx{e.store}, Identities: e.ids, Now: e.clock.Now}
	_, err = svc.Signup(ctx, SignupRequest{Code: res.Invite.Code, Name: "Y", Email: "y@example.com", Password: "long-enough"})
	require.Error(t, err)

	inv, err := e.store.InviteCodes().GetInviteCode(ctx, res.Invite.Code)
	require.NoError(t, err)
	require.False(t, inv.Used)
	_, err = e.store.Identities().GetIdentityByEmail(ctx, "y@example.com")
	require.Error(t, err)
}
