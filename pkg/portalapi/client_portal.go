package portalapi

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) ValidateInvite(ctx context.Context, code, email string) (*ValidateInviteResponse, error) {
	var out ValidateInviteResponse
	req := ValidateInviteRequest{Code: code, Email: email}
	if err := c.do(ctx, http.MethodPost, "/v1/invites/validate", req, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UseInvite(ctx context.Context, code, userID string) error {
	req := UseInviteRequest{Code: code, UserID: userID}
	return c.do(ctx, http.MethodPost, "/v1/invites/use", req, nil, http.StatusOK, nil)
}

func (c *Client) Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error) {
	var out SignupResponse
	if err := c.do(ctx, http.MethodPost, "/v1/signup", req, &out, http.StatusCreated, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Plans(ctx context.Context) ([]Plan, error) {
	var out PlansResponse
	if err := c.do(ctx, http.MethodGet, "/v1/billing/plans", nil, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return out.Plans, nil
}

func (c *Client) Checkout(ctx context.Context, planID string) (*CheckoutResponse, error) {
	var out CheckoutResponse
	if err := c.do(ctx, http.MethodPost, "/v1/billing/checkout", CheckoutRequest{PlanID: planID}, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) BillingPortal(ctx context.Context) (*PortalResponse, error) {
	var out PortalResponse
	if err := c.do(ctx, http.MethodPost, "/v1/billing/portal", nil, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// SyncBilling refreshes the subscription fields. Admins pass a clientID;
// clients pass "".
func (c *Client) SyncBilling(ctx context.Context, clientID string) (*SyncResponse, error) {
	var out SyncResponse
	if err := c.do(ctx, http.MethodPost, "/v1/billing/sync", SyncRequest{ClientID: clientID}, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOnboarding(ctx context.Context, status string) (*ClientInfo, error) {
	var out OnboardingResponse
	if err := c.do(ctx, http.MethodPost, "/v1/client/onboarding", OnboardingRequest{Status: status}, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return &out.Client, nil
}

func (c *Client) PostMessage(ctx context.Context, req PostMessageRequest) (*Message, error) {
	var out MessageResponse
	if err := c.do(ctx, http.MethodPost, "/v1/messages", req, &out, http.StatusCreated, nil); err != nil {
		return nil, err
	}
	return &out.Message, nil
}

func (c *Client) ListMessages(ctx context.Context, clientID string) ([]Message, error) {
	var out MessageListResponse
	if err := c.do(ctx, http.MethodGet, "/v1/messages"+clientQuery(clientID), nil, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return out.Messages, nil
}

func (c *Client) UnreadCount(ctx context.Context, clientID string) (int, error) {
	var out UnreadCountResponse
	if err := c.do(ctx, http.MethodGet, "/v1/messages/unread-count"+clientQuery(clientID), nil, &out, http.StatusOK, nil); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (c *Client) MarkRead(ctx context.Context, clientID string) (int, error) {
	var out MarkReadResponse
	if err := c.do(ctx, http.MethodPost, "/v1/messages/read", MarkReadRequest{ClientID: clientID}, &out, http.StatusOK, nil); err != nil {
		return 0, err
	}
	return out.Marked, nil
}

// RecordDocument stores metadata for a file already placed in storage.
// Admins must set ClientID.
func (c *Client) RecordDocument(ctx context.Context, req RecordDocumentRequest) (*Document, error) {
	var out DocumentResponse
	if err := c.do(ctx, http.MethodPost, "/v1/documents", req, &out, http.StatusCreated, nil); err != nil {
		return nil, err
	}
	return &out.Document, nil
}

func (c *Client) ListDocuments(ctx context.Context, clientID string) ([]Document, error) {
	var out DocumentListResponse
	if err := c.do(ctx, http.MethodGet, "/v1/documents"+clientQuery(clientID), nil, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return out.Documents, nil
}

func (c *Client) ListReports(ctx context.Context, clientID string) ([]Report, error) {
	var out ReportListResponse
	if err := c.do(ctx, http.MethodGet, "/v1/reports"+clientQuery(clientID), nil, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return out.Reports, nil
}

func clientQuery(clientID string) string {
	if clientID == "" {
		return ""
	}
	return "?" + url.Values{"client_id": {clientID}}.Encode()
}
