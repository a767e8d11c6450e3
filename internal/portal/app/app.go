package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aussiebroadwan/clientportal/internal/portal/billing"
	httpapi "github.com/aussiebroadwan/clientportal/internal/portal/http"
	"github.com/aussiebroadwan/clientportal/internal/portal/mail"
	"github.com/aussiebroadwan/clientportal/internal/portal/service"
	"github.com/aussiebroadwan/clientportal/internal/portal/store"
	"github.com/aussiebroadwan/clientportal/internal/portal/store/drivers/postgres"
	"github.com/aussiebroadwan/clientportal/internal/portal/store/drivers/sqlite"
	"github.com/aussiebroadwan/clientportal/pkg/cryptox"
	"github.com/aussiebroadwan/clientportal/pkg/lockx"
	"github.com/aussiebroadwan/clientportal/pkg/slogx"
	"github.com/redis/go-redis/v9"
)

// BuildVersion is overridden at build time with -ldflags.
var BuildVersion = "v0.1.0"

// Application owns the portal's dependencies and their lifecycle.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	keys   SigningKeys
	redis  *redis.Client
	locker lockx.Locker

	provider billing.Provider
	sender   mail.Sender

	access              *service.AccessService
	identityService     *service.IdentityService
	tokenService        *service.TokenService
	bootstrapService    *service.BootstrapService
	notificationService *service.NotificationService
	clientService       *service.ClientService
	inviteService       *service.InviteService
	billingService      *service.BillingService
	messageService      *service.MessageService
	documentService     *service.DocumentService
	webhookService      *service.WebhookService
	outboxWorker        *service.OutboxWorker
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New builds the application. Nothing is started until Run or Start.
func New(ctx context.Context, cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "client-portal",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(cfg.PepperFile)

	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}

	keys, err := InitSigningKeys(cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.keys = keys

	if err := app.initLocker(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initProviders()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler is the fully wired HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Start launches the background workers.
func (app *Application) Start() {
	app.outboxWorker.Start()
	app.housekeepingService.Start()
}

// Run starts the workers and the HTTP server and blocks until a shutdown
// signal or a server failure.
func (app *Application) Run() error {
	app.Start()

	app.logger.Info("client portal starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.Shutdown()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains HTTP requests, stops the workers and closes connections.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down client portal...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.Stop()
	return app.Close()
}

// Stop halts the background workers started by Start.
func (app *Application) Stop() {
	app.outboxWorker.Stop()
	app.housekeepingService.Stop()
}

// Close releases the database and Redis connections.
func (app *Application) Close() error {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("error closing redis", "error", err)
		}
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}
	app.logger.Info("client portal stopped")
	return nil
}

func (app *Application) initDatabase(ctx context.Context) error {
	var (
		db  store.Store
		err error
	)
	switch app.cfg.DatabaseDriver {
	case "postgres":
		db, err = postgres.NewStore(ctx, app.cfg.DatabaseURL)
	default:
		db, err = sqlite.NewStore(fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseURL))
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied", "driver", app.cfg.DatabaseDriver)
	return nil
}

// initLocker uses Redis when configured so that replicas share client and
// email locks.
func (app *Application) initLocker(ctx context.Context) error {
	if app.cfg.RedisURL == "" {
		app.locker = lockx.NewLocal()
		return nil
	}
	client, err := lockx.Dial(ctx, app.cfg.RedisURL)
	if err != nil {
		return err
	}
	app.redis = client
	app.locker = lockx.NewRedis(client, "portal:lock:", 30*time.Second)
	app.logger.Info("redis locks enabled")
	return nil
}

func (app *Application) initProviders() {
	if app.cfg.StripeSecretKey != "" {
		app.provider = billing.NewStripe(app.cfg.StripeSecretKey)
	} else {
		app.provider = billing.Disabled{}
		app.logger.Warn("STRIPE_SECRET_KEY not set, billing endpoints will answer 503")
	}

	if app.cfg.SendGridAPIKey != "" {
		app.sender = mail.NewSendGrid(app.cfg.SendGridAPIKey, app.cfg.EmailFrom, app.cfg.EmailFromName)
	} else {
		app.sender = mail.LogSender{}
		app.logger.Warn("SENDGRID_API_KEY not set, emails will only be logged")
	}
	if app.cfg.UseTestEmail {
		app.sender = mail.Redirect{Next: app.sender, To: app.cfg.TestEmailAddress}
		app.logger.Info("test email mode enabled", "to", app.cfg.TestEmailAddress)
	}
}

func (app *Application) initServices() {
	app.access = &service.AccessService{Store: app.db}
	app.identityService = &service.IdentityService{Store: app.db}
	app.notificationService = &service.NotificationService{
		Store:      app.db,
		AdminEmail: app.cfg.AdminEmail,
		AppURL:     app.cfg.AppURL,
	}

	app.tokenService = &service.TokenService{
		Store:      app.db,
		Identities: app.identityService,
		Signer:     app.keys.Signer,
		Issuer:     app.cfg.Issuer,
		Audience:   []string{TokenAudience},
		TTL:        app.cfg.AccessTokenTTL,
	}
	app.bootstrapService = &service.BootstrapService{
		Store:      app.db,
		Identities: app.identityService,
		Token:      app.cfg.BootstrapToken,
	}
	app.clientService = &service.ClientService{
		Store:      app.db,
		Identities: app.identityService,
		Notify:     app.notificationService,
		Locker:     app.locker,
	}
	app.inviteService = &service.InviteService{
		Store:      app.db,
		Identities: app.identityService,
		Notify:     app.notificationService,
		Locker:     app.locker,
		DefaultTTL: time.Duration(app.cfg.InviteDefaultTTLDays) * 24 * time.Hour,
	}
	app.billingService = &service.BillingService{
		Store:    app.db,
		Provider: app.provider,
		AppURL:   app.cfg.AppURL,
	}
	app.messageService = &service.MessageService{
		Store:  app.db,
		Access: app.access,
		Notify: app.notificationService,
	}
	app.documentService = &service.DocumentService{
		Store:  app.db,
		Access: app.access,
		Notify: app.notificationService,
	}
	app.webhookService = &service.WebhookService{
		Notify: app.notificationService,
		Secret: app.cfg.WebhookSigningSecret,
	}
	if app.cfg.WebhookSigningSecret == "" {
		app.logger.Warn("WEBHOOK_SIGNING_SECRET not set, calendar webhooks are accepted unsigned")
	}

	app.outboxWorker = service.NewOutboxWorker(
		app.db,
		app.sender,
		app.logger,
		app.cfg.OutboxInterval,
		app.cfg.OutboxBatchSize,
		app.cfg.OutboxMaxAttempts,
	)
	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys.KeySet,
		app.keys.Verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.Access = app.access
	router.TokenService = app.tokenService
	router.BootstrapService = app.bootstrapService
	router.ClientService = app.clientService
	router.InviteService = app.inviteService
	router.BillingService = app.billingService
	router.NotificationService = app.notificationService
	router.MessageService = app.messageService
	router.DocumentService = app.documentService
	router.WebhookService = app.webhookService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
