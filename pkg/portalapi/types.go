package portalapi

import "time"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error         string `json:"error"`
	SetupRequired bool   `json:"setup_required,omitempty"`
}

// SuccessResponse is the body of a request with nothing else to report.
type SuccessResponse struct {
	Success bool `json:"success"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// ---- auth ----

type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Success     bool   `json:"success"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Role        string `json:"role"`
	UserID      string `json:"user_id"`
}

type BootstrapRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type BootstrapResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"user_id"`
}

type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type MeResponse struct {
	Success bool          `json:"success"`
	Profile Profile       `json:"profile"`
	Client  *ClientDetail `json:"client,omitempty"`
}

// ---- clients ----

// ClientInfo is a client record as returned by the API.
type ClientInfo struct {
	ID                    string     `json:"id"`
	UserID                string     `json:"user_id"`
	Name                  string     `json:"name"`
	Email                 string     `json:"email"`
	Phone                 string     `json:"phone,omitempty"`
	Company               string     `json:"company,omitempty"`
	OnboardingStatus      string     `json:"onboarding_status"`
	PlanID                string     `json:"plan_id,omitempty"`
	SubscriptionStatus    string     `json:"subscription_status,omitempty"`
	BillingCustomerID     string     `json:"billing_customer_id,omitempty"`
	BillingSubscriptionID string     `json:"billing_subscription_id,omitempty"`
	CurrentPeriodEnd      *time.Time `json:"subscription_current_period_end,omitempty"`
	SubscriptionUpdatedAt *time.Time `json:"subscription_updated_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

type RequiredDocument struct {
	ID           string    `json:"id"`
	DocumentType string    `json:"document_type"`
	IsRequired   bool      `json:"is_required"`
	Status       string    `json:"status"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Document struct {
	ID           string    `json:"id"`
	DocumentType string    `json:"document_type"`
	FileName     string    `json:"file_name"`
	StoragePath  string    `json:"storage_path"`
	Status       string    `json:"status"`
	UploadedBy   string    `json:"uploaded_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type Report struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Period      string    `json:"period,omitempty"`
	StoragePath string    `json:"storage_path"`
	UploadedBy  string    `json:"uploaded_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ClientDetail is a client with its checklist and files.
type ClientDetail struct {
	ClientInfo
	RequiredDocuments []RequiredDocument `json:"required_documents"`
	Documents         []Document         `json:"documents"`
	Reports           []Report           `json:"reports"`
}

type CreateClientRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Company  string `json:"company,omitempty"`
	Password string `json:"password,omitempty"`
	PlanID   string `json:"plan_id,omitempty"`
}

type CreateClientResponse struct {
	Success           bool       `json:"success"`
	Client            ClientInfo `json:"client"`
	TemporaryPassword string     `json:"temporary_password,omitempty"`
}

type ClientListResponse struct {
	Success bool         `json:"success"`
	Clients []ClientInfo `json:"clients"`
}

type ClientResponse struct {
	Success bool         `json:"success"`
	Client  ClientDetail `json:"client"`
}

type DeleteClientRequest struct {
	ClientID string `json:"client_id,omitempty"`
	UserID   string `json:"user_id,omitempty"`
}

type ArchiveClientRequest struct {
	ClientID string `json:"client_id"`
}

type ArchiveClientResponse struct {
	Success           bool      `json:"success"`
	ClientID          string    `json:"client_id"`
	DocumentsArchived int       `json:"documents_archived"`
	ReportsArchived   int       `json:"reports_archived"`
	DeleteAfterDate   time.Time `json:"delete_after_date"`
}

type ArchivedClient struct {
	ClientInfo
	ArchivedAt      time.Time `json:"archived_at"`
	ArchivedBy      string    `json:"archived_by"`
	DeleteAfterDate time.Time `json:"delete_after_date"`
}

type ArchivedClientListResponse struct {
	Success bool             `json:"success"`
	Clients []ArchivedClient `json:"clients"`
}

type OnboardingRequest struct {
	Status string `json:"status"`
}

type OnboardingResponse struct {
	Success bool       `json:"success"`
	Client  ClientInfo `json:"client"`
}

// ---- documents ----

type RecordDocumentRequest struct {
	ClientID     string `json:"client_id,omitempty"`
	DocumentType string `json:"document_type"`
	FileName     string `json:"file_name"`
	StoragePath  string `json:"storage_path"`
}

type DocumentResponse struct {
	Success  bool     `json:"success"`
	Document Document `json:"document"`
}

type DocumentListResponse struct {
	Success   bool       `json:"success"`
	Documents []Document `json:"documents"`
}

type RecordReportRequest struct {
	ClientID    string `json:"client_id"`
	Name        string `json:"name"`
	Period      string `json:"period,omitempty"`
	StoragePath string `json:"storage_path"`
	Notify      bool   `json:"notify,omitempty"`
}

type ReportResponse struct {
	Success        bool   `json:"success"`
	Report         Report `json:"report"`
	NotificationID string `json:"notification_id,omitempty"`
}

type ReportListResponse struct {
	Success bool     `json:"success"`
	Reports []Report `json:"reports"`
}

// ---- invites ----

type Invite struct {
	ID                   string     `json:"id"`
	Code                 string     `json:"code"`
	Email                string     `json:"email,omitempty"`
	ExpiresAt            time.Time  `json:"expires_at"`
	Used                 bool       `json:"used"`
	UsedAt               *time.Time `json:"used_at,omitempty"`
	UsedBy               string     `json:"used_by,omitempty"`
	RecommendedPlan      string     `json:"recommended_plan,omitempty"`
	EngagementLetterPath string     `json:"engagement_letter_path,omitempty"`
	CreatedBy            string     `json:"created_by,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

type CreateInviteRequest struct {
	Email                string `json:"email,omitempty"`
	ExpiresInDays        int    `json:"expires_in_days,omitempty"`
	RecommendedPlan      string `json:"recommended_plan,omitempty"`
	EngagementLetterPath string `json:"engagement_letter_path,omitempty"`
	SendEmail            bool   `json:"send_email,omitempty"`
}

type CreateInviteResponse struct {
	Success     bool   `json:"success"`
	Invite      Invite `json:"invite"`
	EmailQueued bool   `json:"email_queued"`
}

type InviteListResponse struct {
	Success bool     `json:"success"`
	Invites []Invite `json:"invites"`
}

type ValidateInviteRequest struct {
	Code  string `json:"code"`
	Email string `json:"email,omitempty"`
}

type ValidateInviteResponse struct {
	Valid  bool    `json:"valid"`
	Reason string  `json:"reason,omitempty"`
	Invite *Invite `json:"invite,omitempty"`
}

type UseInviteRequest struct {
	Code   string `json:"code"`
	UserID string `json:"user_id"`
}

type SignupRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Company  string `json:"company,omitempty"`
}

type SignupResponse struct {
	Success bool       `json:"success"`
	Client  ClientInfo `json:"client"`
}

// ---- billing ----

type Plan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Currency    string   `json:"currency"`
	Interval    string   `json:"interval"`
	Features    []string `json:"features"`
}

type PlansResponse struct {
	Success bool   `json:"success"`
	Plans   []Plan `json:"plans"`
}

type CheckoutRequest struct {
	PlanID string `json:"plan_id"`
}

type CheckoutResponse struct {
	Success   bool   `json:"success"`
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

type PortalResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

type SyncRequest struct {
	ClientID string `json:"client_id,omitempty"`
}

type Subscription struct {
	PlanID            string     `json:"plan_id"`
	Status            string     `json:"status"`
	CurrentPeriodEnd  *time.Time `json:"current_period_end"`
	CancelAtPeriodEnd bool       `json:"cancel_at_period_end"`
}

type SyncResponse struct {
	Success      bool         `json:"success"`
	Subscription Subscription `json:"subscription"`
}

// ---- notifications ----

type DocumentStatusRequest struct {
	ClientID     string `json:"client_id"`
	DocumentType string `json:"document_type"`
	Status       string `json:"status"`
	Reason       string `json:"reason,omitempty"`
}

type MessageNotificationRequest struct {
	ClientID   string `json:"client_id"`
	SenderType string `json:"sender_type"`
	Preview    string `json:"preview,omitempty"`
}

type ReportUploadedRequest struct {
	ClientID   string `json:"client_id"`
	ReportName string `json:"report_name"`
	Period     string `json:"period,omitempty"`
}

type OnboardingCompleteRequest struct {
	ClientID string `json:"client_id"`
}

type NotificationResponse struct {
	Success        bool   `json:"success"`
	NotificationID string `json:"notification_id"`
}

// ---- messages ----

type Message struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	SenderID  string    `json:"sender_id"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type PostMessageRequest struct {
	ClientID string `json:"client_id,omitempty"`
	Body     string `json:"body"`
}

type MessageResponse struct {
	Success bool    `json:"success"`
	Message Message `json:"message"`
}

type MessageListResponse struct {
	Success  bool      `json:"success"`
	Messages []Message `json:"messages"`
}

type UnreadCountResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

type MarkReadRequest struct {
	ClientID string `json:"client_id,omitempty"`
}

type MarkReadResponse struct {
	Success bool `json:"success"`
	Marked  int  `json:"marked"`
}

// ---- webhooks ----

type Meeting struct {
	Title         string    `json:"title,omitempty"`
	AttendeeName  string    `json:"attendee_name,omitempty"`
	AttendeeEmail string    `json:"attendee_email"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Timezone      string    `json:"timezone,omitempty"`
	MeetingURL    string    `json:"meeting_url,omitempty"`
	Source        string    `json:"source"`
}

type WebhookResponse struct {
	Success         bool     `json:"success"`
	Ignored         bool     `json:"ignored,omitempty"`
	Meeting         *Meeting `json:"meeting,omitempty"`
	NotificationIDs []string `json:"notification_ids,omitempty"`
}
