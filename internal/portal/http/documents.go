package http

import (
	"net/http"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
	"github.com/aussiebroadwan/clientportal/internal/portal/service"
	"github.com/aussiebroadwan/clientportal/pkg/httpx"
	"github.com/aussiebroadwan/clientportal/pkg/portalapi"
)

type DocumentsHandler struct {
	DocumentService *service.DocumentService
}

// HandleRecordDocument godoc
//
//	@Summary		Record uploaded document
//	@Description	Stores metadata for a file already placed in storage and marks the checklist row uploaded. Admins must pass client_id.
//	@Tags			Documents
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.RecordDocumentRequest	true	"Document"
//	@Success		201		{object}	portalapi.DocumentResponse
//	@Failure		400		{object}	portalapi.ErrorResponse
//	@Failure		403		{object}	portalapi.ErrorResponse
//	@Failure		404		{object}	portalapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/documents [post].
func (h *DocumentsHandler) HandleRecordDocument(w http.ResponseWriter, r *http.Request) {
	var req portalapi.RecordDocumentRequest
	if !decode(w, r, &req) {
		return
	}
	userID, role := caller(r)

	d, err := h.DocumentService.RecordDocument(r.Context(), userID, role, service.DocumentInput{
		ClientID:     req.ClientID,
		DocumentType: domain.DocumentType(req.DocumentType),
		FileName:     req.FileName,
		StoragePath:  req.StoragePath,
	})
	if err != nil {
		writeServiceError(w, r, err, "Failed to record document")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, portalapi.DocumentResponse{Success: true, Document: toDocument(d)})
}

// HandleListDocuments godoc
//
//	@Summary	List documents
//	@Tags		Documents
//	@Produce	json
//	@Param		client_id	query		string	false	"Client (admins)"
//	@Success	200			{object}	portalapi.DocumentListResponse
//	@Failure	403			{object}	portalapi.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/documents [get].
func (h *DocumentsHandler) HandleListDocuments(w http.ResponseWriter, r *http.Request) {
	userID, role := caller(r)

	docs, err := h.DocumentService.ListDocuments(r.Context(), userID, role, r.URL.Query().Get("client_id"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to list documents")
		return
	}
	out := make([]portalapi.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocument(d))
	}
	httpx.WriteJSON(w, http.StatusOK, portalapi.DocumentListResponse{Success: true, Documents: out})
}

// HandleRecordReport godoc
//
//	@Summary		Record report
//	@Description	Stores metadata for a report prepared by the firm. With notify set the client is emailed.
//	@Tags			Documents
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.RecordReportRequest	true	"Report"
//	@Success		201		{object}	portalapi.ReportResponse
//	@Failure		400		{object}	portalapi.ErrorResponse
//	@Failure		404		{object}	portalapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/admin/reports [post].
func (h *DocumentsHandler) HandleRecordReport(w http.ResponseWriter, r *http.Request) {
	var req portalapi.RecordReportRequest
	if !decode(w, r, &req) {
		return
	}
	userID, _ := caller(r)

	rep, notificationID, err := h.DocumentService.RecordReport(r.Context(), userID, service.ReportInput{
		ClientID:    req.ClientID,
		Name:        req.Name,
		Period:      req.Period,
		StoragePath: req.StoragePath,
		Notify:      req.Notify,
	})
	if err != nil {
		writeServiceError(w, r, err, "Failed to record report")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, portalapi.ReportResponse{
		Success:        true,
		Report:         toReport(rep),
		NotificationID: notificationID,
	})
}

// HandleListReports godoc
//
//	@Summary	List reports
//	@Tags		Documents
//	@Produce	json
//	@Param		client_id	query		string	false	"Client (admins)"
//	@Success	200			{object}	portalapi.ReportListResponse
//	@Failure	403			{object}	portalapi.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/reports [get].
func (h *DocumentsHandler) HandleListReports(w http.ResponseWriter, r *http.Request) {
	userID, role := caller(r)

	reps, err := h.DocumentService.ListReports(r.Context(), userID, role, r.URL.Query().Get("client_id"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to list reports")
		return
	}
	out := make([]portalapi.Report, 0, len(reps))
	for _, rep := range reps {
		out = append(out, toReport(rep))
	}
	httpx.WriteJSON(w, http.StatusOK, portalapi.ReportListResponse{Success: true, Reports: out})
}
