// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
	IsDatabaseEnabled() bool
}

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTAccessSecret() string
}

// EmailConfig provides settings for email sending.
type EmailConfig interface {
	GetEmailProvider() string
	GetBrevoAPIKey() string
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetSESRegion() string
	GetEmailFromName() string
	GetEmailFromAddress() string
	GetLeadNotificationEmail() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
	GetBaseDomain() string
	GetPublicRateLimit() float64
	GetPublicRateBurst() int
}

// SchedulerConfig provides settings for the background job queue.
type SchedulerConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
	IsSchedulerEnabled() bool
}

// ScoringConfig provides the lead tier thresholds.
type ScoringConfig interface {
	GetLeadScoreHighThreshold() int
	GetLeadScoreMediumThreshold() int
}

// CalendarConfig provides settings for tour date generation.
type CalendarConfig interface {
	GetTimezone() string
	GetHolidaysFile() string
}

// CatalogConfig provides the location of the property catalog.
type CatalogConfig interface {
	GetPropertiesFile() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                      string
	HTTPAddr                 string
	DatabaseURL              string
	JWTAccessSecret          string
	CORSAllowAll             bool
	CORSOrigins              []string
	CORSAllowCreds           bool
	BaseDomain               string
	PublicRateLimit          float64
	PublicRateBurst          int
	EmailProvider            string
	BrevoAPIKey              string
	SMTPHost                 string
	SMTPPort                 int
	SMTPUsername             string
	SMTPPassword             string
	SESRegion                string
	EmailFromName            string
	EmailFromAddress         string
	LeadNotificationEmail    string
	RedisURL                 string
	RedisTLSInsecure         bool
	AsynqQueueName           string
	AsynqConcurrency         int
	LeadScoreHighThreshold   int
	LeadScoreMediumThreshold int
	Timezone                 string
	HolidaysFile             string
	PropertiesFile           string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string  { return c.DatabaseURL }
func (c *Config) IsDatabaseEnabled() bool { return c.DatabaseURL != "" }

// JWTConfig implementation
func (c *Config) GetJWTAccessSecret() string { return c.JWTAccessSecret }

// EmailConfig implementation
func (c *Config) GetEmailProvider() string         { return c.EmailProvider }
func (c *Config) GetBrevoAPIKey() string           { return c.BrevoAPIKey }
func (c *Config) GetSMTPHost() string              { return c.SMTPHost }
func (c *Config) GetSMTPPort() int                 { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string          { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string          { return c.SMTPPassword }
func (c *Config) GetSESRegion() string             { return c.SESRegion }
func (c *Config) GetEmailFromName() string         { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string      { return c.EmailFromAddress }
func (c *Config) GetLeadNotificationEmail() string { return c.LeadNotificationEmail }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string         { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool       { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string    { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool     { return c.CORSAllowCreds }
func (c *Config) GetBaseDomain() string       { return c.BaseDomain }
func (c *Config) GetPublicRateLimit() float64 { return c.PublicRateLimit }
func (c *Config) GetPublicRateBurst() int     { return c.PublicRateBurst }

// SchedulerConfig implementation
func (c *Config) GetRedisURL() string       { return c.RedisURL }
func (c *Config) GetRedisTLSInsecure() bool { return c.RedisTLSInsecure }
func (c *Config) GetAsynqQueueName() string { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int  { return c.AsynqConcurrency }
func (c *Config) IsSchedulerEnabled() bool  { return c.RedisURL != "" }

// ScoringConfig implementation
func (c *Config) GetLeadScoreHighThreshold() int   { return c.LeadScoreHighThreshold }
func (c *Config) GetLeadScoreMediumThreshold() int { return c.LeadScoreMediumThreshold }

// CalendarConfig implementation
func (c *Config) GetTimezone() string     { return c.Timezone }
func (c *Config) GetHolidaysFile() string { return c.HolidaysFile }

// CatalogConfig implementation
func (c *Config) GetPropertiesFile() string { return c.PropertiesFile }

// Load reads configuration from environment variables.
// Integrations left unset (database, redis, email) degrade to no-ops.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	env := envReader{lookup: lookup}

	corsOrigins := splitCSV(env.get("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(env.get("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                      env.get("APP_ENV", "development"),
		HTTPAddr:                 env.get("HTTP_ADDR", ":8080"),
		DatabaseURL:              env.get("DATABASE_URL", ""),
		JWTAccessSecret:          env.get("JWT_ACCESS_SECRET", ""),
		CORSAllowAll:             corsAllowAll,
		CORSOrigins:              corsOrigins,
		CORSAllowCreds:           strings.EqualFold(env.get("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		BaseDomain:               strings.ToLower(env.get("BASE_DOMAIN", "")),
		PublicRateLimit:          mustFloat(env.get("PUBLIC_RATE_LIMIT", "2")),
		PublicRateBurst:          mustInt(env.get("PUBLIC_RATE_BURST", "10")),
		EmailProvider:            strings.ToLower(strings.TrimSpace(env.get("EMAIL_PROVIDER", ""))),
		BrevoAPIKey:              env.get("BREVO_API_KEY", ""),
		SMTPHost:                 env.get("SMTP_HOST", ""),
		SMTPPort:                 mustInt(env.get("SMTP_PORT", "587")),
		SMTPUsername:             env.get("SMTP_USERNAME", ""),
		SMTPPassword:             env.get("SMTP_PASSWORD", ""),
		SESRegion:                env.get("SES_REGION", ""),
		EmailFromName:            env.get("EMAIL_FROM_NAME", "Plaza Leasing"),
		EmailFromAddress:         env.get("EMAIL_FROM_ADDRESS", ""),
		LeadNotificationEmail:    env.get("LEAD_NOTIFICATION_EMAIL", ""),
		RedisURL:                 env.get("REDIS_URL", ""),
		RedisTLSInsecure:         strings.EqualFold(env.get("REDIS_TLS_INSECURE", "false"), "true"),
		AsynqQueueName:           env.get("ASYNQ_QUEUE", "default"),
		AsynqConcurrency:         mustInt(env.get("ASYNQ_CONCURRENCY", "5")),
		Timezone:                 env.get("TIMEZONE", "America/New_York"),
		HolidaysFile:             env.get("HOLIDAYS_FILE", ""),
		PropertiesFile:           env.get("PROPERTIES_FILE", ""),
	}

	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	var err error
	if cfg.LeadScoreHighThreshold, err = env.strictInt("LEAD_SCORE_HIGH_THRESHOLD", 70); err != nil {
		return nil, err
	}
	if cfg.LeadScoreMediumThreshold, err = env.strictInt("LEAD_SCORE_MEDIUM_THRESHOLD", 45); err != nil {
		return nil, err
	}
	if err := validateThresholds(cfg.LeadScoreHighThreshold, cfg.LeadScoreMediumThreshold); err != nil {
		return nil, err
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("TIMEZONE %q: %w", cfg.Timezone, err)
	}
	if err := validateEmail(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateThresholds(high, medium int) error {
	if high < 0 || high > 100 || medium < 0 || medium > 100 {
		return fmt.Errorf("LEAD_SCORE_HIGH_THRESHOLD and LEAD_SCORE_MEDIUM_THRESHOLD must be within 0..100")
	}
	if medium > high {
		return fmt.Errorf("LEAD_SCORE_MEDIUM_THRESHOLD (%d) cannot exceed LEAD_SCORE_HIGH_THRESHOLD (%d)", medium, high)
	}
	return nil
}

func validateEmail(cfg *Config) error {
	switch cfg.EmailProvider {
	case "", "none", "brevo", "smtp", "ses":
	default:
		return fmt.Errorf("EMAIL_PROVIDER %q is not supported", cfg.EmailProvider)
	}
	if cfg.EmailProvider == "brevo" && cfg.BrevoAPIKey == "" {
		return fmt.Errorf("BREVO_API_KEY is required when EMAIL_PROVIDER is brevo")
	}
	if cfg.EmailProvider == "smtp" && cfg.SMTPHost == "" {
		return fmt.Errorf("SMTP_HOST is required when EMAIL_PROVIDER is smtp")
	}
	if cfg.EmailProvider == "ses" && cfg.SESRegion == "" {
		return fmt.Errorf("SES_REGION is required when EMAIL_PROVIDER is ses")
	}
	hasProvider := cfg.BrevoAPIKey != "" || cfg.SMTPHost != "" || cfg.SESRegion != ""
	if cfg.EmailProvider != "none" && hasProvider && cfg.EmailFromAddress == "" {
		return fmt.Errorf("EMAIL_FROM_ADDRESS is required when email is enabled")
	}
	return nil
}

type envReader struct {
	lookup func(string) (string, bool)
}

func (e envReader) get(key, fallback string) string {
	if val, ok := e.lookup(key); ok {
		return val
	}
	return fallback
}

// strictInt rejects set but unparsable values instead of reading them as zero.
func (e envReader) strictInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(e.get(key, ""))
	if raw == "" {
		return fallback, nil
	}
	result, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, raw)
	}
	return result, nil
}

func mustInt(value string) int {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
