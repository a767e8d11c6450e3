package service

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/clientportal/internal/portal/billing"
	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
	"github.com/aussiebroadwan/clientportal/internal/portal/mail"
	"github.com/aussiebroadwan/clientportal/internal/portal/store"
	"github.com/aussiebroadwan/clientportal/internal/portal/store/drivers/sqlite"
	"github.com/aussiebroadwan/clientportal/pkg/cryptox"
	"github.com/aussiebroadwan/clientportal/pkg/idx"
	"github.com/aussiebroadwan/clientportal/pkg/lockx"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "portal-service")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// clock is a settable time source.
type clock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock() *clock {
	return &clock{t: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())
	return st
}

type env struct {
	store    store.Store
	clock    *clock
	ids      *IdentityService
	access   *AccessService
	notify   *NotificationService
	clients  *ClientService
	invites  *InviteService
	messages *MessageService
	docs     *DocumentService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	st := newStore(t)
	clk := newClock()

	ids := &IdentityService{Store: st}
	access := &AccessService{Store: st}
	notify := &NotificationService{Store: st, AdminEmail: "firm@example.com", AppURL: "https://portal.example.com", Now: clk.Now}
	locker := lockx.NewLocal()

	return &env{
		store:    st,
		clock:    clk,
		ids:      ids,
		access:   access,
		notify:   notify,
		clients:  &ClientService{Store: st, Identities: ids, Notify: notify, Locker: locker, Now: clk.Now},
		invites:  &InviteService{Store: st, Identities: ids, Notify: notify, Locker: locker, Now: clk.Now},
		messages: &MessageService{Store: st, Access: access, Notify: notify, Now: clk.Now},
		docs:     &DocumentService{Store: st, Access: access, Notify: notify, Now: clk.Now},
	}
}

func (e *env) createClient(t *testing.T, email string) domain.Client {
	t.Helper()
	res, err := e.clients.Create(context.Background(), CreateClientRequest{Name: "Client " + email, Email: email})
	require.NoError(t, err)
	return res.Client
}

func (e *env) createAdmin(t *testing.T, email string) string {
	t.Helper()
	ctx := context.Background()
	ident, err := e.ids.CreateIdentity(ctx, email, "admin-password")
	require.NoError(t, err)
	now := e.clock.Now()
	require.NoError(t, e.store.Profiles().CreateProfile(ctx, domain.Profile{
		ID: ident.ID, Email: ident.Email, Role: domain.RoleAdmin, CreatedAt: now, UpdatedAt: now,
	}))
	return ident.ID
}

// pendingOutbox returns every pending notification, oldest first.
func pendingOutbox(t *testing.T, st store.Store, now time.Time) []domain.OutboxEntry {
	t.Helper()
	entries, err := st.Outbox().ClaimDue(context.Background(), now, now, 1000)
	require.NoError(t, err)
	return entries
}

func countKind(entries []domain.OutboxEntry, kind domain.NotificationKind) int {
	n := 0
	for _, e := range entries {
		if e.Notification.Kind == kind {
			n++
		}
	}
	return n
}

type fakeSender struct {
	mu   sync.Mutex
	sent []mail.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, m mail.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

type fakeProvider struct {
	customers     map[string]billing.Customer // by email
	subscriptions map[string][]billing.Subscription
	checkouts     []billing.CheckoutRequest
	created       int
}

var _ billing.Provider = (*fakeProvider)(nil)

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		customers:     map[string]billing.Customer{},
		subscriptions: map[string][]billing.Subscription{},
	}
}

func (f *fakeProvider) GetCustomer(_ context.Context, id string) (billing.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return billing.Customer{}, billing.ErrCustomerNotFound
}

func (f *fakeProvider) FindCustomerByEmail(_ context.Context, email string) (billing.Customer, error) {
	c, ok := f.customers[email]
	if !ok {
		return billing.Customer{}, billing.ErrCustomerNotFound
	}
	return c, nil
}

func (f *fakeProvider) CreateCustomer(_ context.Context, email, _ string, _ map[string]string) (billing.Customer, error) {
	f.created++
	c := billing.Customer{ID: "cus_" + idx.NewString(), Email: email}
	f.customers[email] = c
	return c, nil
}

func (f *fakeProvider) CreateCheckoutSession(_ context.Context, req billing.CheckoutRequest) (billing.CheckoutSession, error) {
	f.checkouts = append(f.checkouts, req)
	return billing.CheckoutSession{ID: "cs_test", URL: "https://checkout.example.com/cs_test"}, nil
}

func (f *fakeProvider) CreatePortalSession(_ context.Context, customerID, returnURL string) (string, error) {
	return "https://billing.example.com/" + customerID + "?return=" + returnURL, nil
}

func (f *fakeProvider) ListSubscriptions(_ context.Context, customerID string) ([]billing.Subscription, error) {
	return f.subscriptions[customerID], nil
}

// sqliteAtVersion returns a store migrated only up to version.
func sqliteAtVersion(t *testing.T, version uint) (*sqlite.Store, error) {
	t.Helper()
	st, err := sqlite.NewStore(":memory:")
	if err != nil {
		return nil, err
	}
	t.Cleanup(func() { _ = st.Close() })
	return st, st.MigrateTo(version)
}
