package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/clientportal/pkg/cryptox"
	"github.com/aussiebroadwan/clientportal/pkg/httpx"
	"github.com/aussiebroadwan/clientportal/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mw("a"), mw("b"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"a", "b", "handler"}, order)
}

type roleLookup func(ctx context.Context, userID string) (string, error)

func (f roleLookup) RoleOf(ctx context.Context, userID string) (string, error) { return f(ctx, userID) }

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body httpx.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestRequireRoleFailsClosed(t *testing.T) {
	roles := map[string]string{"admin-1": "admin", "client-1": "client"}
	lookup := roleLookup(func(_ context.Context, id string) (string, error) {
		if id == "broken" {
			return "", errors.New("db down")
		}
		role, ok := roles[id]
		if !ok {
			return "", errors.New("no profile")
		}
		return role, nil
	})

	var seenRole string
	h := httpx.RequireRole(lookup, "admin")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenRole, _ = httpx.RoleFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	serve := func(userID string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/clients", nil)
		if userID != "" {
			req = req.WithContext(context.WithValue(req.Context(), httpx.CtxKeyUserID, userID))
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	rec := serve("admin-1")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "admin", seenRole)

	for _, id := range []string{"client-1", "broken", "ghost"} {
		rec := serve(id)
		require.Equal(t, http.StatusForbidden, rec.Code, id)
		require.Equal(t, "Forbidden", errorBody(t, rec))
	}

	rec = serve("")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthnMiddleware(t *testing.T) {
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA("k1", pemKey)
	require.NoError(t, err)
	keys := jwtx.NewKeySet()
	keys.AddSigner(signer)
	verifier := jwtx.NewVerifierEdDSA(keys, "portal", nil)

	var gotUser string
	h := httpx.AuthnMiddleware(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = httpx.UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	serve := func(authz string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		if authz != "" {
			req.Header.Set("Authorization", authz)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	tok, err := signer.Sign(jwtx.NewAccessClaims("user-9", "x@example.com", "client", time.Minute, "portal", nil, time.Now()))
	require.NoError(t, err)

	rec := serve("Bearer " + tok)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "user-9", gotUser)

	for _, authz := range []string{"", "Basic abc", "Bearer ", "Bearer nope"} {
		rec := serve(authz)
		require.Equal(t, http.StatusUnauthorized, rec.Code, authz)
		require.True(t, strings.HasPrefix(rec.Header().Get("WWW-Authenticate"), "Bearer"))
		require.Equal(t, "Unauthorized", errorBody(t, rec))
	}
}

func TestWriteSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteSuccess(rec, http.StatusCreated, map[string]any{"count": 2, "success": false})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, true, body["success"])
	require.Equal(t, float64(2), body["count"])
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Code string `json:"code"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"code":"ABCD-EFGH"}`))
	require.NoError(t, httpx.DecodeJSON(req, &dst))
	require.Equal(t, "ABCD-EFGH", dst.Code)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	require.NoError(t, httpx.DecodeJSON(req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
	require.ErrorIs(t, httpx.DecodeJSON(req, &dst), httpx.ErrBadJSON)
}
