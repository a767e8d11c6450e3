package http

import (
	"net/http"

	"github.com/aussiebroadwan/clientportal/internal/portal/service"
	"github.com/aussiebroadwan/clientportal/pkg/httpx"
	"github.com/aussiebroadwan/clientportal/pkg/portalapi"
)

type TokenHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Password login
//	@Description	Exchanges an email and password for an EdDSA-signed access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.TokenRequest	true	"Credentials"
//	@Success		200		{object}	portalapi.TokenResponse
//	@Failure		400		{object}	portalapi.ErrorResponse
//	@Failure		401		{object}	portalapi.ErrorResponse
//	@Router			/v1/auth/token [post].
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req portalapi.TokenRequest
	if !decode(w, r, &req) {
		return
	}

	res, err := h.TokenService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "Failed to issue token")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalapi.TokenResponse{
		Success:     true,
		AccessToken: res.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   res.ExpiresIn,
		Role:        string(res.Role),
		UserID:      res.UserID,
	})
}

type MeHandler struct {
	ClientService *service.ClientService
}

// ServeHTTP godoc
//
//	@Summary		Current user
//	@Description	Returns the caller's profile and, for clients, their client record with checklist, documents and reports.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	portalapi.MeResponse
//	@Failure		401	{object}	portalapi.ErrorResponse
//	@Failure		403	{object}	portalapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, _ := caller(r)

	profile, detail, err := h.ClientService.Me(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "Failed to load profile")
		return
	}

	resp := portalapi.MeResponse{Success: true, Profile: toProfile(profile)}
	if detail != nil {
		d := toClientDetail(*detail)
		resp.Client = &d
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
