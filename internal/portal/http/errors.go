package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/clientportal/internal/portal/billing"
	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
	"github.com/aussiebroadwan/clientportal/internal/portal/service"
	"github.com/aussiebroadwan/clientportal/internal/portal/store"
	"github.com/aussiebroadwan/clientportal/pkg/httpx"
	"github.com/aussiebroadwan/clientportal/pkg/portalapi"
	"github.com/aussiebroadwan/clientportal/pkg/slogx"
)

var rejectionMessages = map[domain.InviteRejection]string{
	domain.InviteNotFound:      "Invalid invite code",
	domain.InviteUsed:          "Invite code has already been used",
	domain.InviteExpired:       "Invite code has expired",
	domain.InviteEmailMismatch: "Invite code is not valid for this email",
}

// writeServiceError maps a service error to a status and message. Anything
// unrecognised is logged and answered with a 500 carrying fallback, so
// provider error text never reaches the caller.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var (
		inv      *service.InvalidError
		rejected *service.InviteRejectedError
	)

	switch {
	case errors.As(err, &inv):
		httpx.WriteError(w, http.StatusBadRequest, inv.Msg)
	case errors.As(err, &rejected):
		msg, ok := rejectionMessages[rejected.Reason]
		if !ok {
			msg = "Invalid invite code"
		}
		httpx.WriteError(w, http.StatusBadRequest, msg)
	case errors.Is(err, service.ErrEmailTaken):
		httpx.WriteError(w, http.StatusBadRequest, "email already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, service.ErrForbidden):
		httpx.WriteError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, service.ErrClientNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Client not found")
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, service.ErrInviteUnavailable):
		httpx.WriteError(w, http.StatusBadRequest, "Failed to use invite code")
	case errors.Is(err, service.ErrUnknownPlan):
		httpx.WriteError(w, http.StatusBadRequest, "Invalid plan")
	case errors.Is(err, service.ErrNoSubscription):
		httpx.WriteError(w, http.StatusBadRequest, "No subscription found")
	case errors.Is(err, service.ErrNoBillingCustomer):
		httpx.WriteError(w, http.StatusNotFound, "No billing customer found")
	case errors.Is(err, service.ErrNoRecipient):
		httpx.WriteError(w, http.StatusBadRequest, "No recipient address is configured")
	case errors.Is(err, service.ErrBadSignature):
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid signature")
	case errors.Is(err, service.ErrArchiveSetupRequired):
		slogx.FromContext(r.Context()).Error("archive tables missing", slog.Any("error", err))
		httpx.WriteJSON(w, http.StatusInternalServerError, portalapi.ErrorResponse{
			Error:         "Archive tables not set up",
			SetupRequired: true,
		})
	case errors.Is(err, billing.ErrNotConfigured):
		httpx.WriteError(w, http.StatusServiceUnavailable, "Billing is not configured")
	default:
		slogx.FromContext(r.Context()).Error(fallback, slog.Any("error", err))
		httpx.WriteError(w, http.StatusInternalServerError, fallback)
	}
}

// decode reads the JSON body into dst and answers 400 when it is malformed.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httpx.DecodeJSON(r, dst); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Request body must be valid JSON")
		return false
	}
	return true
}

// caller returns the authenticated user and the role RequireRole stored.
func caller(r *http.Request) (string, domain.Role) {
	userID, _ := httpx.UserIDFromContext(r.Context())
	role, _ := httpx.RoleFromContext(r.Context())
	return userID, domain.Role(role)
}
