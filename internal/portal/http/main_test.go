package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/clientportal/internal/portal/billing"
	"github.com/aussiebroadwan/clientportal/internal/portal/service"
	"github.com/aussiebroadwan/clientportal/internal/portal/store/drivers/sqlite"
	"github.com/aussiebroadwan/clientportal/pkg/cryptox"
	"github.com/aussiebroadwan/clientportal/pkg/jwtx"
	"github.com/aussiebroadwan/clientportal/pkg/lockx"
	"github.com/aussiebroadwan/clientportal/pkg/portalapi"
)

const (
	testBootstrapToken = "boot-token"
	testWebhookSecret  = "whsec_test"
	testAdminEmail     = "admin@example.com"
	testAdminPassword  = "admin-password"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "portal-http")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type testServer struct {
	t      *testing.T
	router *Router
	store  *sqlite.Store
	ip     atomic.Int32
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	return newTestServerWithStore(t, st)
}

func newTestServerWithStore(t *testing.T, st *sqlite.Store) *testServer {
	t.Helper()

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA("test", pemKey)
	require.NoError(t, err)
	keys := jwtx.NewKeySet()
	keys.AddSigner(signer)
	verifier := jwtx.NewVerifierEdDSA(keys, "portal-test", []string{"portal"})

	ids := &service.IdentityService{Store: st}
	access := &service.AccessService{Store: st}
	notify := &service.NotificationService{Store: st, AdminEmail: "firm@example.com", AppURL: "https://portal.example.com"}
	locker := lockx.NewLocal()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := NewRouter(keys, verifier, "test", st, logger)
	r.Access = access
	r.TokenService = &service.TokenService{
		Store: st, Identities: ids, Signer: signer,
		Issuer: "portal-test", Audience: []string{"portal"}, TTL: time.Hour,
	}
	r.BootstrapService = &service.BootstrapService{Store: st, Identities: ids, Token: testBootstrapToken}
	r.ClientService = &service.ClientService{Store: st, Identities: ids, Notify: notify, Locker: locker}
	r.InviteService = &service.InviteService{Store: st, Identities: ids, Notify: notify, Locker: locker}
	r.BillingService = &service.BillingService{Store: st, Provider: billing.Disabled{}, AppURL: "https://portal.example.com"}
	r.NotificationService = notify
	r.MessageService = &service.MessageService{Store: st, Access: access, Notify: notify}
	r.DocumentService = &service.DocumentService{Store: st, Access: access, Notify: notify}
	r.WebhookService = &service.WebhookService{Notify: notify, Secret: testWebhookSecret}
	r.ApplyRoutes()

	return &testServer{t: t, router: r, store: st}
}

// do sends a JSON request and decodes the response into out when non-nil.
// Each call comes from a fresh address so per-IP limits stay out of the way.
func (s *testServer) do(method, path, token string, in, out any, headers ...string) *httptest.ResponseRecorder {
	s.t.Helper()

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		require.NoError(s.t, err)
		body = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, body)
	n := s.ip.Add(1)
	req.RemoteAddr = fmt.Sprintf("10.0.%d.%d:40000", n/250, n%250+1)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	if out != nil {
		require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}
	return rec
}

func (s *testServer) login(email, password string) string {
	s.t.Helper()
	var tok portalapi.TokenResponse
	rec := s.do(http.MethodPost, "/v1/auth/token", "", portalapi.TokenRequest{Email: email, Password: password}, &tok)
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())
	return tok.AccessToken
}

// bootstrapAdmin creates the first admin and returns its token.
func (s *testServer) bootstrapAdmin() string {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/v1/bootstrap", "",
		portalapi.BootstrapRequest{Email: testAdminEmail, Password: testAdminPassword, FullName: "Firm Admin"}, nil,
		"X-Bootstrap-Token", testBootstrapToken)
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
	return s.login(testAdminEmail, testAdminPassword)
}

// createClient creates a client with a known password and returns it with
// a client token.
func (s *testServer) createClient(adminToken, email string) (portalapi.ClientInfo, string) {
	s.t.Helper()
	var res portalapi.CreateClientResponse
	rec := s.do(http.MethodPost, "/v1/admin/clients", adminToken, portalapi.CreateClientRequest{
		Name: "Client " + email, Email: email, Password: "client-password",
	}, &res)
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
	return res.Client, s.login(email, "client-password")
}

func (s *testServer) doRaw(body []byte, signature string) *httptest.ResponseRecorder {
	s.t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/calendar", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set(SignatureHeader, signature)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(rec *httptest.ResponseRecorder, out any) error {
	return json.Unmarshal(rec.Body.Bytes(), out)
}
