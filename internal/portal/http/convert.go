package http

import (
	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
	"github.com/aussiebroadwan/clientportal/internal/portal/service"
	"github.com/aussiebroadwan/clientportal/pkg/portalapi"
)

func toClient(c domain.Client) portalapi.ClientInfo {
	return portalapi.ClientInfo{
		ID:                    c.ID,
		UserID:                c.UserID,
		Name:                  c.Name,
		Email:                 c.Email,
		Phone:                 c.Phone,
		Company:               c.Company,
		OnboardingStatus:      string(c.OnboardingStatus),
		PlanID:                c.PlanID,
		SubscriptionStatus:    c.SubscriptionStatus,
		BillingCustomerID:     c.BillingCustomerID,
		BillingSubscriptionID: c.BillingSubscriptionID,
		CurrentPeriodEnd:      c.CurrentPeriodEnd,
		SubscriptionUpdatedAt: c.SubscriptionUpdatedAt,
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
}

func toClients(cs []domain.Client) []portalapi.ClientInfo {
	out := make([]portalapi.ClientInfo, 0, len(cs))
	for _, c := range cs {
		out = append(out, toClient(c))
	}
	return out
}

func toClientDetail(d service.ClientDetail) portalapi.ClientDetail {
	out := portalapi.ClientDetail{
		ClientInfo:        toClient(d.Client),
		RequiredDocuments: make([]portalapi.RequiredDocument, 0, len(d.RequiredDocuments)),
		Documents:         make([]portalapi.Document, 0, len(d.Documents)),
		Reports:           make([]portalapi.Report, 0, len(d.Reports)),
	}
	for _, rd := range d.RequiredDocuments {
		out.RequiredDocuments = append(out.RequiredDocuments, portalapi.RequiredDocument{
			ID:           rd.ID,
			DocumentType: string(rd.DocumentType),
			IsRequired:   rd.IsRequired,
			Status:       string(rd.Status),
			UpdatedAt:    rd.UpdatedAt,
		})
	}
	for _, doc := range d.Documents {
		out.Documents = append(out.Documents, toDocument(doc))
	}
	for _, rep := range d.Reports {
		out.Reports = append(out.Reports, toReport(rep))
	}
	return out
}

func toDocument(d domain.Document) portalapi.Document {
	return portalapi.Document{
		ID:           d.ID,
		DocumentType: string(d.DocumentType),
		FileName:     d.FileName,
		StoragePath:  d.StoragePath,
		Status:       string(d.Status),
		UploadedBy:   d.UploadedBy,
		CreatedAt:    d.CreatedAt,
	}
}

func toReport(r domain.Report) portalapi.Report {
	return portalapi.Report{
		ID:          r.ID,
		Name:        r.Name,
		Period:      r.Period,
		StoragePath: r.StoragePath,
		UploadedBy:  r.UploadedBy,
		CreatedAt:   r.CreatedAt,
	}
}

func toArchivedClients(cs []domain.ArchivedClient) []portalapi.ArchivedClient {
	out := make([]portalapi.ArchivedClient, 0, len(cs))
	for _, c := range cs {
		out = append(out, portalapi.ArchivedClient{
			ClientInfo:      toClient(c.Client),
			ArchivedAt:      c.ArchivedAt,
			ArchivedBy:      c.ArchivedBy,
			DeleteAfterDate: c.DeleteAfterDate,
		})
	}
	return out
}

func toProfile(p domain.Profile) portalapi.Profile {
	return portalapi.Profile{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		Role:      string(p.Role),
		CreatedAt: p.CreatedAt,
	}
}

func toInvite(i domain.InviteCode) portalapi.Invite {
	return portalapi.Invite{
		ID:                   i.ID,
		Code:                 i.Code,
		Email:                i.Email,
		ExpiresAt:            i.ExpiresAt,
		Used:                 i.Used,
		UsedAt:               i.UsedAt,
		UsedBy:               i.UsedBy,
		RecommendedPlan:      i.RecommendedPlan,
		EngagementLetterPath: i.EngagementLetterPath,
		CreatedBy:            i.CreatedBy,
		CreatedAt:            i.CreatedAt,
	}
}

func toPlans(ps []domain.Plan) []portalapi.Plan {
	out := make([]portalapi.Plan, 0, len(ps))
	for _, p := range ps {
		out = append(out, portalapi.Plan{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.PriceMinor,
			Currency:    p.Currency,
			Interval:    p.Interval,
			Features:    p.Features,
		})
	}
	return out
}

func toMessage(m domain.Message) portalapi.Message {
	return portalapi.Message{
		ID:        m.ID,
		ClientID:  m.ClientID,
		SenderID:  m.SenderID,
		Body:      m.Body,
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
	}
}

func toMeeting(m domain.Meeting) *portalapi.Meeting {
	return &portalapi.Meeting{
		Title:         m.Title,
		AttendeeName:  m.AttendeeName,
		AttendeeEmail: m.AttendeeEmail,
		Start:         m.Start,
		End:           m.End,
		Timezone:      m.Timezone,
		MeetingURL:    m.MeetingURL,
		Source:        m.Source,
	}
}
