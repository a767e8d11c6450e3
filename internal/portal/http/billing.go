package http

import (
	"net/http"

	"github.com/aussiebroadwan/clientportal/internal/portal/service"
	"github.com/aussiebroadwan/clientportal/pkg/httpx"
	"github.com/aussiebroadwan/clientportal/pkg/portalapi"
)

type BillingHandler struct {
	BillingService *service.BillingService
	Access         *service.AccessService
}

// HandlePlans godoc
//
//	@Summary	List plans
//	@Tags		Billing
//	@Produce	json
//	@Success	200	{object}	portalapi.PlansResponse
//	@Router		/v1/billing/plans [get].
func (h *BillingHandler) HandlePlans(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, portalapi.PlansResponse{Success: true, Plans: toPlans(h.BillingService.Plans())})
}

// HandleCheckout godoc
//
//	@Summary		Start checkout
//	@Description	Creates a subscription checkout session for the caller and returns its URL.
//	@Tags			Billing
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.CheckoutRequest	true	"Plan"
//	@Success		200		{object}	portalapi.CheckoutResponse
//	@Failure		400		{object}	portalapi.ErrorResponse
//	@Failure		404		{object}	portalapi.ErrorResponse
//	@Failure		500		{object}	portalapi.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/billing/checkout [post].
func (h *BillingHandler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	var req portalapi.CheckoutRequest
	if !decode(w, r, &req) {
		return
	}
	userID, _ := caller(r)

	c, err := h.Access.ClientFor(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "Failed to load client")
		return
	}
	res, err := h.BillingService.Checkout(r.Context(), c, req.PlanID)
	if err != nil {
		writeServiceError(w, r, err, "Failed to create checkout session")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, portalapi.CheckoutResponse{Success: true, URL: res.URL, SessionID: res.SessionID})
}

// HandlePortal godoc
//
//	@Summary		Open billing portal
//	@Description	Returns a provider-hosted billing portal URL for the caller's customer.
//	@Tags			Billing
//	@Produce		json
//	@Success		200	{object}	portalapi.PortalResponse
//	@Failure		400	{object}	portalapi.ErrorResponse	"No subscription found"
//	@Security		BearerAuth
//	@Router			/v1/billing/portal [post].
func (h *BillingHandler) HandlePortal(w http.ResponseWriter, r *http.Request) {
	userID, _ := caller(r)

	c, err := h.Access.ClientFor(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "Failed to load client")
		return
	}
	url, err := h.BillingService.Portal(r.Context(), c)
	if err != nil {
		writeServiceError(w, r, err, "Failed to create portal session")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, portalapi.PortalResponse{Success: true, URL: url})
}

// HandleSync godoc
//
//	@Summary		Sync subscription
//	@Description	Reads the customer's subscriptions from the provider and writes the result onto the client. Admins pass client_id.
//	@Tags			Billing
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.SyncRequest	false	"Target client (admins)"
//	@Success		200		{object}	portalapi.SyncResponse
//	@Failure		404		{object}	portalapi.ErrorResponse	"No billing customer found"
//	@Security		BearerAuth
//	@Router			/v1/billing/sync [post].
func (h *BillingHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	var req portalapi.SyncRequest
	if !decode(w, r, &req) {
		return
	}
	userID, role := caller(r)

	c, err := h.Access.ResolveClient(r.Context(), userID, role, req.ClientID)
	if err != nil {
		writeServiceError(w, r, err, "Failed to load client")
		return
	}
	view, err := h.BillingService.Sync(r.Context(), c)
	if err != nil {
		writeServiceError(w, r, err, "Failed to sync subscription")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, portalapi.SyncResponse{
		Success: true,
		Subscription: portalapi.Subscription{
			PlanID:            view.PlanID,
			Status:            view.Status,
			CurrentPeriodEnd:  view.CurrentPeriodEnd,
			CancelAtPeriodEnd: view.CancelAtPeriodEnd,
		},
	})
}
