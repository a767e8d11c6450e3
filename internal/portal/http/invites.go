package http

import (
	"net/http"

	"github.com/aussiebroadwan/clientportal/internal/portal/service"
	"github.com/aussiebroadwan/clientportal/pkg/httpx"
	"github.com/aussiebroadwan/clientportal/pkg/portalapi"
)

type InvitesHandler struct {
	InviteService *service.InviteService
}

// HandleCreate godoc
//
//	@Summary		Create invite code
//	@Description	Generates an XXXX-XXXX invite code, optionally restricted to one email, and queues the invite email when send_email is set.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.CreateInviteRequest	true	"Invite"
//	@Success		201		{object}	portalapi.CreateInviteResponse
//	@Failure		400		{object}	portalapi.ErrorResponse
//	@Failure		500		{object}	portalapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/admin/invites [post].
func (h *InvitesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req portalapi.CreateInviteRequest
	if !decode(w, r, &req) {
		return
	}
	userID, _ := caller(r)

	res, err := h.InviteService.Create(r.Context(), service.CreateInviteRequest{
		Email:                req.Email,
		ExpiresInDays:        req.ExpiresInDays,
		RecommendedPlan:      req.RecommendedPlan,
		EngagementLetterPath: req.EngagementLetterPath,
		SendEmail:            req.SendEmail,
		CreatedBy:            userID,
	})
	if err != nil {
		writeServiceError(w, r, err, "Failed to create invite code")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, portalapi.CreateInviteResponse{
		Success:     true,
		Invite:      toInvite(res.Invite),
		EmailQueued: res.EmailQueued,
	})
}

// HandleList godoc
//
//	@Summary	List invite codes
//	@Tags		Invites
//	@Produce	json
//	@Success	200	{object}	portalapi.InviteListResponse
//	@Security	BearerAuth
//	@Router		/v1/admin/invites [get].
func (h *InvitesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	invs, err := h.InviteService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to list invite codes")
		return
	}
	out := make([]portalapi.Invite, 0, len(invs))
	for _, inv := range invs {
		out = append(out, toInvite(inv))
	}
	httpx.WriteJSON(w, http.StatusOK, portalapi.InviteListResponse{Success: true, Invites: out})
}

// HandleValidate godoc
//
//	@Summary		Validate invite code
//	@Description	Reports whether a code can be redeemed. Invalid codes are still a 200 with valid=false and a reason of not_found, used, expired or email_mismatch.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.ValidateInviteRequest	true	"Code"
//	@Success		200		{object}	portalapi.ValidateInviteResponse
//	@Failure		400		{object}	portalapi.ErrorResponse
//	@Router			/v1/invites/validate [post].
func (h *InvitesHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	var req portalapi.ValidateInviteRequest
	if !decode(w, r, &req) {
		return
	}

	inv, reason, err := h.InviteService.Validate(r.Context(), req.Code, req.Email)
	if err != nil {
		writeServiceError(w, r, err, "Failed to validate invite code")
		return
	}
	if reason != "" {
		httpx.WriteJSON(w, http.StatusOK, portalapi.ValidateInviteResponse{Valid: false, Reason: string(reason)})
		return
	}
	out := toInvite(inv)
	httpx.WriteJSON(w, http.StatusOK, portalapi.ValidateInviteResponse{Valid: true, Invite: &out})
}

// HandleUse godoc
//
//	@Summary		Consume invite code
//	@Description	Marks the code used by user_id. Of concurrent callers at most one succeeds.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.UseInviteRequest	true	"Code and user"
//	@Success		200		{object}	portalapi.SuccessResponse
//	@Failure		400		{object}	portalapi.ErrorResponse
//	@Router			/v1/invites/use [post].
func (h *InvitesHandler) HandleUse(w http.ResponseWriter, r *http.Request) {
	var req portalapi.UseInviteRequest
	if !decode(w, r, &req) {
		return
	}
	if err := h.InviteService.Use(r.Context(), req.Code, req.UserID); err != nil {
		writeServiceError(w, r, err, "Failed to use invite code")
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, nil)
}

// HandleSignup godoc
//
//	@Summary		Sign up with an invite
//	@Description	Redeems an invite code into a new client account with the signup document checklist.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.SignupRequest	true	"Signup"
//	@Success		201		{object}	portalapi.SignupResponse
//	@Failure		400		{object}	portalapi.ErrorResponse
//	@Router			/v1/signup [post].
func (h *InvitesHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req portalapi.SignupRequest
	if !decode(w, r, &req) {
		return
	}

	c, err := h.InviteService.Signup(r.Context(), service.SignupRequest{
		Code:     req.Code,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Company:  req.Company,
	})
	if err != nil {
		writeServiceError(w, r, err, "Failed to complete signup")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, portalapi.SignupResponse{Success: true, Client: toClient(c)})
}
