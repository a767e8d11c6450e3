package portalapi

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) CreateClient(ctx context.Context, req CreateClientRequest) (*CreateClientResponse, error) {
	var out CreateClientResponse
	if err := c.do(ctx, http.MethodPost, "/v1/admin/clients", req, &out, http.StatusCreated, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListClients(ctx context.Context) ([]ClientInfo, error) {
	var out ClientListResponse
	if err := c.do(ctx, http.MethodGet, "/v1/admin/clients", nil, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return out.Clients, nil
}

func (c *Client) GetClient(ctx context.Context, id string) (*ClientDetail, error) {
	var out ClientResponse
	if err := c.do(ctx, http.MethodGet, "/v1/admin/clients/"+url.PathEscape(id), nil, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return &out.Client, nil
}

func (c *Client) DeleteClient(ctx context.Context, req DeleteClientRequest) error {
	return c.do(ctx, http.MethodPost, "/v1/admin/clients/delete", req, nil, http.StatusOK, nil)
}

func (c *Client) ArchiveClient(ctx context.Context, clientID string) (*ArchiveClientResponse, error) {
	var out ArchiveClientResponse
	req := ArchiveClientRequest{ClientID: clientID}
	if err := c.do(ctx, http.MethodPost, "/v1/admin/clients/archive", req, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListArchivedClients(ctx context.Context) ([]ArchivedClient, error) {
	var out ArchivedClientListResponse
	if err := c.do(ctx, http.MethodGet, "/v1/admin/archived-clients", nil, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return out.Clients, nil
}

func (c *Client) CreateInvite(ctx context.Context, req CreateInviteRequest) (*CreateInviteResponse, error) {
	var out CreateInviteResponse
	if err := c.do(ctx, http.MethodPost, "/v1/admin/invites", req, &out, http.StatusCreated, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListInvites(ctx context.Context) ([]Invite, error) {
	var out InviteListResponse
	if err := c.do(ctx, http.MethodGet, "/v1/admin/invites", nil, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return out.Invites, nil
}

func (c *Client) NotifyDocumentStatus(ctx context.Context, req DocumentStatusRequest) (*NotificationResponse, error) {
	return c.notify(ctx, "/v1/notifications/document-status", req)
}

func (c *Client) NotifyReportUploaded(ctx context.Context, req ReportUploadedRequest) (*NotificationResponse, error) {
	return c.notify(ctx, "/v1/notifications/report-uploaded", req)
}

func (c *Client) NotifyMessage(ctx context.Context, req MessageNotificationRequest) (*NotificationResponse, error) {
	return c.notify(ctx, "/v1/notifications/message", req)
}

func (c *Client) NotifyOnboardingComplete(ctx context.Context, clientID string) (*NotificationResponse, error) {
	return c.notify(ctx, "/v1/notifications/onboarding-complete", OnboardingCompleteRequest{ClientID: clientID})
}

func (c *Client) RecordReport(ctx context.Context, req RecordReportRequest) (*ReportResponse, error) {
	var out ReportResponse
	if err := c.do(ctx, http.MethodPost, "/v1/admin/reports", req, &out, http.StatusCreated, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) notify(ctx context.Context, path string, req any) (*NotificationResponse, error) {
	var out NotificationResponse
	if err := c.do(ctx, http.MethodPost, path, req, &out, http.StatusOK, nil); err != nil {
		return nil, err
	}
	return &out, nil
}
