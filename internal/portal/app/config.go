package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ConfigFileEnv names an optional YAML/JSON/TOML file whose keys are
// overridden by the environment.
const ConfigFileEnv = "PORTAL_CONFIG_FILE"

type Config struct {
	Env                 string        // dev, staging, prod (default: dev)
	LogLevel            string        // debug, info, warn, error (default: info)
	LogFormat           string        // json, text (default: json)
	Port                int           // HTTP port (default: 8080)
	ShutdownGracePeriod time.Duration // default: 10s

	DatabaseDriver string // sqlite or postgres (default: sqlite)
	DatabaseURL    string // sqlite file or postgres DSN (default: portal.db)
	PepperFile     string // password pepper (default: data/pepper)

	Issuer         string        // token issuer (default: client-portal)
	SigningKeyFile string        // Ed25519 key file; empty means an ephemeral key
	AccessTokenTTL time.Duration // default: 1h
	BootstrapToken string        // enables POST /v1/bootstrap when set

	AppURL string // public portal URL used in links and billing redirects

	StripeSecretKey  string // billing is disabled when empty
	SendGridAPIKey   string // emails are only logged when empty
	EmailFrom        string
	EmailFromName    string
	AdminEmail       string // firm inbox for admin notifications
	UseTestEmail     bool   // redirect every email to TestEmailAddress
	TestEmailAddress string

	RedisURL             string // shared lifecycle locks across replicas; in-process when empty
	WebhookSigningSecret string // calendar webhooks are unsigned when empty

	OutboxInterval       time.Duration // default: 10s
	OutboxBatchSize      int           // default: 25
	OutboxMaxAttempts    int           // default: 8
	HousekeepingInterval time.Duration // default: 1h
	InviteDefaultTTLDays int           // default: 7
}

var defaults = map[string]any{
	"ENV":                     "dev",
	"LOG_LEVEL":               "info",
	"LOG_FORMAT":              "json",
	"PORT":                    8080,
	"SHUTDOWN_GRACE_PERIOD":   "10s",
	"DATABASE_DRIVER":         "sqlite",
	"DATABASE_URL":            "portal.db",
	"PEPPER_FILE":             "data/pepper",
	"AUTH_ISSUER":             "client-portal",
	"AUTH_SIGNING_KEY_FILE":   "",
	"ACCESS_TOKEN_TTL":        "1h",
	"BOOTSTRAP_TOKEN":         "",
	"APP_URL":                 "http://localhost:3000",
	"STRIPE_SECRET_KEY":       "",
	"SENDGRID_API_KEY":        "",
	"EMAIL_FROM":              "noreply@example.com",
	"EMAIL_FROM_NAME":         "Client Portal",
	"ADMIN_EMAIL":             "",
	"USE_TEST_EMAIL":          false,
	"TEST_EMAIL_ADDRESS":      "",
	"REDIS_URL":               "",
	"WEBHOOK_SIGNING_SECRET":  "",
	"OUTBOX_INTERVAL":         "10s",
	"OUTBOX_BATCH_SIZE":       25,
	"OUTBOX_MAX_ATTEMPTS":     8,
	"HOUSEKEEPING_INTERVAL":   "1h",
	"INVITE_DEFAULT_TTL_DAYS": 7,
}

// LoadConfig reads the environment, and the file named by PORTAL_CONFIG_FILE
// when set, over the defaults above.
func LoadConfig() (Config, error) {
	v := viper.New()
	for key, def := range defaults {
		v.SetDefault(key, def)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := v.GetString(ConfigFileEnv); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := Config{
		Env:                 v.GetString("ENV"),
		LogLevel:            v.GetString("LOG_LEVEL"),
		LogFormat:           v.GetString("LOG_FORMAT"),
		Port:                v.GetInt("PORT"),
		ShutdownGracePeriod: getDuration(v, "SHUTDOWN_GRACE_PERIOD"),

		DatabaseDriver: strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		PepperFile:     v.GetString("PEPPER_FILE"),

		Issuer:         v.GetString("AUTH_ISSUER"),
		SigningKeyFile: v.GetString("AUTH_SIGNING_KEY_FILE"),
		AccessTokenTTL: getDuration(v, "ACCESS_TOKEN_TTL"),
		BootstrapToken: v.GetString("BOOTSTRAP_TOKEN"),

		AppURL: v.GetString("APP_URL"),

		StripeSecretKey:  v.GetString("STRIPE_SECRET_KEY"),
		SendGridAPIKey:   v.GetString("SENDGRID_API_KEY"),
		EmailFrom:        v.GetString("EMAIL_FROM"),
		EmailFromName:    v.GetString("EMAIL_FROM_NAME"),
		AdminEmail:       v.GetString("ADMIN_EMAIL"),
		UseTestEmail:     v.GetBool("USE_TEST_EMAIL"),
		TestEmailAddress: v.GetString("TEST_EMAIL_ADDRESS"),

		RedisURL:             v.GetString("REDIS_URL"),
		WebhookSigningSecret: v.GetString("WEBHOOK_SIGNING_SECRET"),

		OutboxInterval:       getDuration(v, "OUTBOX_INTERVAL"),
		OutboxBatchSize:      v.GetInt("OUTBOX_BATCH_SIZE"),
		OutboxMaxAttempts:    v.GetInt("OUTBOX_MAX_ATTEMPTS"),
		HousekeepingInterval: getDuration(v, "HOUSEKEEPING_INTERVAL"),
		InviteDefaultTTLDays: v.GetInt("INVITE_DEFAULT_TTL_DAYS"),
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.DatabaseDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("DATABASE_DRIVER must be sqlite or postgres, got %q", c.DatabaseDriver)
	}
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.UseTestEmail && c.TestEmailAddress == "" {
		return errors.New("TEST_EMAIL_ADDRESS is required when USE_TEST_EMAIL is set")
	}
	if c.AccessTokenTTL <= 0 {
		return errors.New("ACCESS_TOKEN_TTL must be positive")
	}
	return nil
}

// getDuration accepts Go durations ("90s", "1h") and, for older
// deployments, a bare number of minutes.
func getDuration(v *viper.Viper, key string) time.Duration {
	raw := strings.TrimSpace(v.GetString(key))
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if minutes, err := strconv.Atoi(raw); err == nil {
		return time.Duration(minutes) * time.Minute
	}
	d, _ := time.ParseDuration(fmt.Sprint(defaults[key]))
	return d
}
