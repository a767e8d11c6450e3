package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
	"github.com/aussiebroadwan/clientportal/internal/portal/service"
	"github.com/aussiebroadwan/clientportal/internal/portal/store"
	"github.com/aussiebroadwan/clientportal/pkg/httpx"
	"github.com/aussiebroadwan/clientportal/pkg/jwtx"
	"github.com/aussiebroadwan/clientportal/pkg/slogx"

	_ "github.com/aussiebroadwan/clientportal/api/portal" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	Access              *service.AccessService
	TokenService        *service.TokenService
	BootstrapService    *service.BootstrapService
	ClientService       *service.ClientService
	InviteService       *service.InviteService
	BillingService      *service.BillingService
	NotificationService *service.NotificationService
	MessageService      *service.MessageService
	DocumentService     *service.DocumentService
	WebhookService      *service.WebhookService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerBootstrap()
	r.registerClients()
	r.registerInvites()
	r.registerBilling()
	r.registerNotifications()
	r.registerMessages()
	r.registerDocuments()
	r.registerWebhooks()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Client Portal API
//	@version		0.1.0
//	@description	Admin and client API for an accounting firm's client portal: client lifecycle, invite codes, billing, notifications and messages.
//	@description
//	@description				Access tokens are EdDSA-signed JWTs issued by /v1/auth/token.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/clientportal
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// admin wraps h with bearer auth and the admin role guard.
func (r *Router) admin(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireRole(r.Access, string(domain.RoleAdmin)),
		httpx.RateLimitByUser(limit),
	)
}

// client wraps h with bearer auth and the client role guard.
func (r *Router) client(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireRole(r.Access, string(domain.RoleClient)),
		httpx.RateLimitByUser(limit),
	)
}

// anyRole admits any caller with a profile; the handler scopes by role.
func (r *Router) anyRole(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireRole(r.Access, string(domain.RoleAdmin), string(domain.RoleClient)),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerAuth() {
	// Password login: strict per-IP limit against guessing.
	r.Mux.Handle("POST /v1/auth/token",
		httpx.Chain(&TokenHandler{TokenService: r.TokenService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("GET /v1/me", r.anyRole(&MeHandler{ClientService: r.ClientService}, httpx.LenientLimit))
}

func (r *Router) registerBootstrap() {
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(&BootstrapHandler{BootstrapService: r.BootstrapService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerClients() {
	h := &ClientsHandler{ClientService: r.ClientService}

	r.Mux.Handle("POST /v1/admin/clients", r.admin(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/admin/clients", r.admin(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/admin/clients/{id}", r.admin(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/admin/clients/delete", r.admin(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/admin/clients/archive", r.admin(http.HandlerFunc(h.HandleArchive), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/admin/archived-clients", r.admin(http.HandlerFunc(h.HandleListArchived), httpx.LenientLimit))

	r.Mux.Handle("POST /v1/client/onboarding", r.client(http.HandlerFunc(h.HandleOnboarding), httpx.ModerateLimit))
}

func (r *Router) registerInvites() {
	h := &InvitesHandler{InviteService: r.InviteService}

	r.Mux.Handle("POST /v1/admin/invites", r.admin(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/admin/invites", r.admin(http.HandlerFunc(h.HandleList), httpx.LenientLimit))

	// Public invite endpoints are limited per IP so codes cannot be enumerated.
	r.Mux.Handle("POST /v1/invites/validate",
		httpx.Chain(http.HandlerFunc(h.HandleValidate), httpx.RateLimitByIP(httpx.StrictLimit)))
	r.Mux.Handle("POST /v1/invites/use",
		httpx.Chain(http.HandlerFunc(h.HandleUse), httpx.RateLimitByIP(httpx.StrictLimit)))
	r.Mux.Handle("POST /v1/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignup), httpx.RateLimitByIP(httpx.StrictLimit)))
}

func (r *Router) registerBilling() {
	h := &BillingHandler{BillingService: r.BillingService, Access: r.Access}

	r.Mux.Handle("GET /v1/billing/plans",
		httpx.Chain(http.HandlerFunc(h.HandlePlans), httpx.RateLimitByIP(httpx.PublicLimit)))
	r.Mux.Handle("POST /v1/billing/checkout", r.client(http.HandlerFunc(h.HandleCheckout), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/billing/portal", r.client(http.HandlerFunc(h.HandlePortal), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/billing/sync", r.anyRole(http.HandlerFunc(h.HandleSync), httpx.ModerateLimit))
}

func (r *Router) registerNotifications() {
	h := &NotificationsHandler{Notify: r.NotificationService, Access: r.Access}

	r.Mux.Handle("POST /v1/notifications/document-status", r.admin(http.HandlerFunc(h.HandleDocumentStatus), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/notifications/report-uploaded", r.admin(http.HandlerFunc(h.HandleReportUploaded), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/notifications/message", r.anyRole(http.HandlerFunc(h.HandleMessage), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/notifications/onboarding-complete", r.anyRole(http.HandlerFunc(h.HandleOnboardingComplete), httpx.ModerateLimit))
}

func (r *Router) registerMessages() {
	h := &MessagesHandler{MessageService: r.MessageService}

	r.Mux.Handle("POST /v1/messages", r.anyRole(http.HandlerFunc(h.HandlePost), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/messages", r.anyRole(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/messages/unread-count", r.anyRole(http.HandlerFunc(h.HandleUnreadCount), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/messages/read", r.anyRole(http.HandlerFunc(h.HandleMarkRead), httpx.ModerateLimit))
}

func (r *Router) registerDocuments() {
	h := &DocumentsHandler{DocumentService: r.DocumentService}

	r.Mux.Handle("POST /v1/documents", r.anyRole(http.HandlerFunc(h.HandleRecordDocument), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/documents", r.anyRole(http.HandlerFunc(h.HandleListDocuments), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/admin/reports", r.admin(http.HandlerFunc(h.HandleRecordReport), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/reports", r.anyRole(http.HandlerFunc(h.HandleListReports), httpx.LenientLimit))
}

func (r *Router) registerWebhooks() {
	r.Mux.Handle("POST /v1/webhooks/calendar",
		httpx.Chain(&WebhookHandler{WebhookService: r.WebhookService},
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
