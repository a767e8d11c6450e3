package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/clientportal/internal/portal/service"
	"github.com/aussiebroadwan/clientportal/pkg/httpx"
	"github.com/aussiebroadwan/clientportal/pkg/portalapi"
	"github.com/aussiebroadwan/clientportal/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP handles first-run setup.
//
//	@Summary		Bootstrap the portal
//	@Description	Creates the first admin account. Only available while BOOTSTRAP_TOKEN is configured and no profile exists.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string						true	"Bootstrap token"
//	@Param			request				body		portalapi.BootstrapRequest	true	"First admin"
//	@Success		201					{object}	portalapi.BootstrapResponse
//	@Failure		400					{object}	portalapi.ErrorResponse
//	@Failure		401					{object}	portalapi.ErrorResponse
//	@Failure		404					{object}	portalapi.ErrorResponse	"Bootstrap not enabled"
//	@Failure		409					{object}	portalapi.ErrorResponse	"Already bootstrapped"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	if h.BootstrapService.Token == "" {
		httpx.WriteError(w, http.StatusNotFound, "Bootstrap endpoint is not enabled")
		return
	}

	token := r.Header.Get("X-Bootstrap-Token")
	if token == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "Bootstrap token is required in X-Bootstrap-Token header")
		return
	}

	var req portalapi.BootstrapRequest
	if !decode(w, r, &req) {
		return
	}

	userID, err := h.BootstrapService.Bootstrap(r.Context(), token, req.Email, req.Password, strings.TrimSpace(req.FullName))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBootstrapAlready):
			httpx.WriteError(w, http.StatusConflict, "System has already been bootstrapped")
		case errors.Is(err, service.ErrBootstrapUnauthorized):
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid bootstrap token")
		case errors.Is(err, service.ErrBootstrapDisabled):
			httpx.WriteError(w, http.StatusNotFound, "Bootstrap endpoint is not enabled")
		default:
			writeServiceError(w, r, err, "Failed to bootstrap")
		}
		return
	}

	log.Info("bootstrap complete", "user_id", userID)
	httpx.WriteJSON(w, http.StatusCreated, portalapi.BootstrapResponse{Success: true, UserID: userID})
}
