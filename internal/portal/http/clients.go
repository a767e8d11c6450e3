package http

import (
	"net/http"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
	"github.com/aussiebroadwan/clientportal/internal/portal/service"
	"github.com/aussiebroadwan/clientportal/pkg/httpx"
	"github.com/aussiebroadwan/clientportal/pkg/portalapi"
)

type ClientsHandler struct {
	ClientService *service.ClientService
}

// HandleCreate godoc
//
//	@Summary		Create client
//	@Description	Creates the login, profile, client row and document checklist, then queues a welcome email. A temporary password is generated and returned when none is given.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.CreateClientRequest	true	"New client"
//	@Success		201		{object}	portalapi.CreateClientResponse
//	@Failure		400		{object}	portalapi.ErrorResponse
//	@Failure		403		{object}	portalapi.ErrorResponse
//	@Failure		500		{object}	portalapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/admin/clients [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req portalapi.CreateClientRequest
	if !decode(w, r, &req) {
		return
	}

	res, err := h.ClientService.Create(r.Context(), service.CreateClientRequest{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Company:  req.Company,
		Password: req.Password,
		PlanID:   req.PlanID,
	})
	if err != nil {
		writeServiceError(w, r, err, "Failed to create client")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, portalapi.CreateClientResponse{
		Success:           true,
		Client:            toClient(res.Client),
		TemporaryPassword: res.TemporaryPassword,
	})
}

// HandleList godoc
//
//	@Summary	List clients
//	@Tags		Clients
//	@Produce	json
//	@Success	200	{object}	portalapi.ClientListResponse
//	@Failure	403	{object}	portalapi.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/admin/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	cs, err := h.ClientService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to list clients")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, portalapi.ClientListResponse{Success: true, Clients: toClients(cs)})
}

// HandleGet godoc
//
//	@Summary	Get client
//	@Tags		Clients
//	@Produce	json
//	@Param		id	path		string	true	"Client ID"
//	@Success	200	{object}	portalapi.ClientResponse
//	@Failure	404	{object}	portalapi.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/admin/clients/{id} [get].
func (h *ClientsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	d, err := h.ClientService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to load client")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, portalapi.ClientResponse{Success: true, Client: toClientDetail(d)})
}

// HandleDelete godoc
//
//	@Summary		Delete client
//	@Description	Deletes the client row and everything under it, then the profile and login. Either id may be omitted to skip that part.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.DeleteClientRequest	true	"Target"
//	@Success		200		{object}	portalapi.SuccessResponse
//	@Failure		400		{object}	portalapi.ErrorResponse
//	@Failure		404		{object}	portalapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/admin/clients/delete [post].
func (h *ClientsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	var req portalapi.DeleteClientRequest
	if !decode(w, r, &req) {
		return
	}
	if err := h.ClientService.Delete(r.Context(), req.ClientID, req.UserID); err != nil {
		writeServiceError(w, r, err, "Failed to delete client")
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, nil)
}

// HandleArchive godoc
//
//	@Summary		Archive client
//	@Description	Moves the client, its documents and its reports into the archive tables in one transaction. Archived rows are retained for seven years.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.ArchiveClientRequest	true	"Target"
//	@Success		200		{object}	portalapi.ArchiveClientResponse
//	@Failure		400		{object}	portalapi.ErrorResponse
//	@Failure		404		{object}	portalapi.ErrorResponse
//	@Failure		500		{object}	portalapi.ErrorResponse	"setup_required when archive tables are missing"
//	@Security		BearerAuth
//	@Router			/v1/admin/clients/archive [post].
func (h *ClientsHandler) HandleArchive(w http.ResponseWriter, r *http.Request) {
	var req portalapi.ArchiveClientRequest
	if !decode(w, r, &req) {
		return
	}
	userID, _ := caller(r)

	res, err := h.ClientService.Archive(r.Context(), req.ClientID, userID)
	if err != nil {
		writeServiceError(w, r, err, "Failed to archive client")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, portalapi.ArchiveClientResponse{
		Success:           true,
		ClientID:          res.ClientID,
		DocumentsArchived: res.DocumentsArchived,
		ReportsArchived:   res.ReportsArchived,
		DeleteAfterDate:   res.DeleteAfterDate,
	})
}

// HandleListArchived godoc
//
//	@Summary	List archived clients
//	@Tags		Clients
//	@Produce	json
//	@Success	200	{object}	portalapi.ArchivedClientListResponse
//	@Failure	500	{object}	portalapi.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/admin/archived-clients [get].
func (h *ClientsHandler) HandleListArchived(w http.ResponseWriter, r *http.Request) {
	cs, err := h.ClientService.ListArchived(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to list archived clients")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, portalapi.ArchivedClientListResponse{Success: true, Clients: toArchivedClients(cs)})
}

// HandleOnboarding godoc
//
//	@Summary		Update onboarding status
//	@Description	Sets the caller's onboarding status. Moving to complete notifies the firm.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.OnboardingRequest	true	"pending, in_progress or complete"
//	@Success		200		{object}	portalapi.OnboardingResponse
//	@Failure		400		{object}	portalapi.ErrorResponse
//	@Failure		404		{object}	portalapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/client/onboarding [post].
func (h *ClientsHandler) HandleOnboarding(w http.ResponseWriter, r *http.Request) {
	var req portalapi.OnboardingRequest
	if !decode(w, r, &req) {
		return
	}
	userID, _ := caller(r)

	c, err := h.ClientService.UpdateOnboarding(r.Context(), userID, domain.OnboardingStatus(req.Status))
	if err != nil {
		writeServiceError(w, r, err, "Failed to update onboarding status")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, portalapi.OnboardingResponse{Success: true, Client: toClient(c)})
}
