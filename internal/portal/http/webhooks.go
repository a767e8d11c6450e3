package http

import (
	"io"
	"net/http"

	"github.com/aussiebroadwan/clientportal/internal/portal/service"
	"github.com/aussiebroadwan/clientportal/pkg/httpx"
	"github.com/aussiebroadwan/clientportal/pkg/portalapi"
)

// SignatureHeader carries "t=<unix>,v1=<hex>" when webhook signing is on.
const SignatureHeader = "X-Webhook-Signature"

type WebhookHandler struct {
	WebhookService *service.WebhookService
}

// ServeHTTP godoc
//
//	@Summary		Calendar webhook
//	@Description	Accepts a calendar push, an invitee.created event or a BOOKING_CREATED event and emails a meeting confirmation. Unknown or malformed payloads are acknowledged with ignored=true.
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Param			X-Webhook-Signature	header		string	false	"Required when signing is configured"
//	@Success		200					{object}	portalapi.WebhookResponse
//	@Failure		400					{object}	portalapi.ErrorResponse
//	@Failure		401					{object}	portalapi.ErrorResponse
//	@Router			/v1/webhooks/calendar [post].
func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, httpx.MaxBodyBytes))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	res, err := h.WebhookService.Handle(r.Context(), r.Header.Get(SignatureHeader), body)
	if err != nil {
		writeServiceError(w, r, err, "Failed to process webhook")
		return
	}

	resp := portalapi.WebhookResponse{Success: true, Ignored: res.Ignored, NotificationIDs: res.NotificationIDs}
	if !res.Ignored {
		resp.Meeting = toMeeting(res.Meeting)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
