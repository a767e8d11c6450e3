package http

import (
	"net/http"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
	"github.com/aussiebroadwan/clientportal/internal/portal/service"
	"github.com/aussiebroadwan/clientportal/pkg/httpx"
	"github.com/aussiebroadwan/clientportal/pkg/portalapi"
)

type NotificationsHandler struct {
	Notify *service.NotificationService
	Access *service.AccessService
}

func writeQueued(w http.ResponseWriter, id string) {
	httpx.WriteJSON(w, http.StatusOK, portalapi.NotificationResponse{Success: true, NotificationID: id})
}

// HandleDocumentStatus godoc
//
//	@Summary		Document reviewed
//	@Description	Records an approval or rejection on the client's checklist and emails the client.
//	@Tags			Notifications
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.DocumentStatusRequest	true	"Review"
//	@Success		200		{object}	portalapi.NotificationResponse
//	@Failure		400		{object}	portalapi.ErrorResponse
//	@Failure		404		{object}	portalapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/notifications/document-status [post].
func (h *NotificationsHandler) HandleDocumentStatus(w http.ResponseWriter, r *http.Request) {
	var req portalapi.DocumentStatusRequest
	if !decode(w, r, &req) {
		return
	}
	id, err := h.Notify.DocumentStatus(r.Context(), req.ClientID,
		domain.DocumentType(req.DocumentType), domain.DocumentStatus(req.Status), req.Reason)
	if err != nil {
		writeServiceError(w, r, err, "Failed to queue notification")
		return
	}
	writeQueued(w, id)
}

// HandleMessage godoc
//
//	@Summary		New message
//	@Description	Emails the other side of a conversation. Admin messages go to the client; client messages go to the firm.
//	@Tags			Notifications
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.MessageNotificationRequest	true	"Message"
//	@Success		200		{object}	portalapi.NotificationResponse
//	@Failure		400		{object}	portalapi.ErrorResponse
//	@Failure		403		{object}	portalapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/notifications/message [post].
func (h *NotificationsHandler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	var req portalapi.MessageNotificationRequest
	if !decode(w, r, &req) {
		return
	}
	userID, role := caller(r)

	sender := domain.SenderType(req.SenderType)
	if sender != domain.SenderAdmin && sender != domain.SenderClient {
		httpx.WriteError(w, http.StatusBadRequest, "sender_type must be admin or client")
		return
	}
	if role != domain.RoleAdmin && sender == domain.SenderAdmin {
		httpx.WriteError(w, http.StatusForbidden, "Forbidden")
		return
	}

	c, err := h.Access.ResolveClient(r.Context(), userID, role, req.ClientID)
	if err != nil {
		writeServiceError(w, r, err, "Failed to load client")
		return
	}
	id, err := h.Notify.Message(r.Context(), nil, c, sender, req.Preview)
	if err != nil {
		writeServiceError(w, r, err, "Failed to queue notification")
		return
	}
	writeQueued(w, id)
}

// HandleReportUploaded godoc
//
//	@Summary	Report uploaded
//	@Tags		Notifications
//	@Accept		json
//	@Produce	json
//	@Param		request	body		portalapi.ReportUploadedRequest	true	"Report"
//	@Success	200		{object}	portalapi.NotificationResponse
//	@Failure	400		{object}	portalapi.ErrorResponse
//	@Failure	404		{object}	portalapi.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/notifications/report-uploaded [post].
func (h *NotificationsHandler) HandleReportUploaded(w http.ResponseWriter, r *http.Request) {
	var req portalapi.ReportUploadedRequest
	if !decode(w, r, &req) {
		return
	}
	id, err := h.Notify.ReportUploaded(r.Context(), req.ClientID, req.ReportName, req.Period)
	if err != nil {
		writeServiceError(w, r, err, "Failed to queue notification")
		return
	}
	writeQueued(w, id)
}

// HandleOnboardingComplete godoc
//
//	@Summary	Onboarding complete
//	@Tags		Notifications
//	@Accept		json
//	@Produce	json
//	@Param		request	body		portalapi.OnboardingCompleteRequest	true	"Client"
//	@Success	200		{object}	portalapi.NotificationResponse
//	@Failure	400		{object}	portalapi.ErrorResponse
//	@Failure	403		{object}	portalapi.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/notifications/onboarding-complete [post].
func (h *NotificationsHandler) HandleOnboardingComplete(w http.ResponseWriter, r *http.Request) {
	var req portalapi.OnboardingCompleteRequest
	if !decode(w, r, &req) {
		return
	}
	userID, role := caller(r)

	c, err := h.Access.ResolveClient(r.Context(), userID, role, req.ClientID)
	if err != nil {
		writeServiceError(w, r, err, "Failed to load client")
		return
	}
	id, err := h.Notify.OnboardingComplete(r.Context(), nil, c)
	if err != nil {
		writeServiceError(w, r, err, "Failed to queue notification")
		return
	}
	writeQueued(w, id)
}
