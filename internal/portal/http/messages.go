package http

import (
	"net/http"

	"github.com/aussiebroadwan/clientportal/internal/portal/service"
	"github.com/aussiebroadwan/clientportal/pkg/httpx"
	"github.com/aussiebroadwan/clientportal/pkg/portalapi"
)

type MessagesHandler struct {
	MessageService *service.MessageService
}

// HandlePost godoc
//
//	@Summary		Post message
//	@Description	Clients post to their own thread; admins must pass client_id.
//	@Tags			Messages
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.PostMessageRequest	true	"Message"
//	@Success		201		{object}	portalapi.MessageResponse
//	@Failure		400		{object}	portalapi.ErrorResponse
//	@Failure		403		{object}	portalapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/messages [post].
func (h *MessagesHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	var req portalapi.PostMessageRequest
	if !decode(w, r, &req) {
		return
	}
	userID, role := caller(r)

	m, err := h.MessageService.Post(r.Context(), userID, role, req.ClientID, req.Body)
	if err != nil {
		writeServiceError(w, r, err, "Failed to post message")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, portalapi.MessageResponse{Success: true, Message: toMessage(m)})
}

// HandleList godoc
//
//	@Summary	List messages
//	@Tags		Messages
//	@Produce	json
//	@Param		client_id	query		string	false	"Client (admins)"
//	@Success	200			{object}	portalapi.MessageListResponse
//	@Failure	403			{object}	portalapi.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/messages [get].
func (h *MessagesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, role := caller(r)

	msgs, err := h.MessageService.List(r.Context(), userID, role, r.URL.Query().Get("client_id"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to list messages")
		return
	}
	out := make([]portalapi.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toMessage(m))
	}
	httpx.WriteJSON(w, http.StatusOK, portalapi.MessageListResponse{Success: true, Messages: out})
}

// HandleUnreadCount godoc
//
//	@Summary		Unread message count
//	@Description	Counts messages the caller did not send and has not read. Admins without client_id get the count across every client.
//	@Tags			Messages
//	@Produce		json
//	@Param			client_id	query		string	false	"Client"
//	@Success		200			{object}	portalapi.UnreadCountResponse
//	@Security		BearerAuth
//	@Router			/v1/messages/unread-count [get].
func (h *MessagesHandler) HandleUnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, role := caller(r)

	n, err := h.MessageService.UnreadCount(r.Context(), userID, role, r.URL.Query().Get("client_id"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to count messages")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, portalapi.UnreadCountResponse{Success: true, Count: n})
}

// HandleMarkRead godoc
//
//	@Summary	Mark messages read
//	@Tags		Messages
//	@Accept		json
//	@Produce	json
//	@Param		request	body		portalapi.MarkReadRequest	false	"Client (admins)"
//	@Success	200		{object}	portalapi.MarkReadResponse
//	@Security	BearerAuth
//	@Router		/v1/messages/read [post].
func (h *MessagesHandler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	var req portalapi.MarkReadRequest
	if !decode(w, r, &req) {
		return
	}
	userID, role := caller(r)

	n, err := h.MessageService.MarkRead(r.Context(), userID, role, req.ClientID)
	if err != nil {
		writeServiceError(w, r, err, "Failed to mark messages read")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, portalapi.MarkReadResponse{Success: true, Marked: n})
}
