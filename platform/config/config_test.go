package config

import (
	"strings"
	"testing"
)

func lookupFrom(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.HTTPAddr)
	}
	if cfg.GetLeadScoreHighThreshold() != 70 || cfg.GetLeadScoreMediumThreshold() != 45 {
		t.Fatalf("unexpected thresholds %d/%d", cfg.LeadScoreHighThreshold, cfg.LeadScoreMediumThreshold)
	}
	if cfg.GetTimezone() != "America/New_York" {
		t.Fatalf("unexpected timezone %q", cfg.Timezone)
	}
	if cfg.IsDatabaseEnabled() || cfg.IsSchedulerEnabled() {
		t.Fatal("expected optional integrations to be disabled")
	}
}

func TestFromEnvThresholds(t *testing.T) {
	cases := []struct {
		name    string
		high    string
		medium  string
		wantErr string
	}{
		{name: "custom", high: "80", medium: "50"},
		{name: "medium above high", high: "50", medium: "60", wantErr: "cannot exceed"},
		{name: "out of range", high: "120", medium: "45", wantErr: "within 0..100"},
		{name: "medium not a number", high: "70", medium: "abc", wantErr: "LEAD_SCORE_MEDIUM_THRESHOLD must be an integer"},
		{name: "high not a number", high: "7O", medium: "45", wantErr: "LEAD_SCORE_HIGH_THRESHOLD must be an integer"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := FromEnv(lookupFrom(map[string]string{
				"LEAD_SCORE_HIGH_THRESHOLD":   tc.high,
				"LEAD_SCORE_MEDIUM_THRESHOLD": tc.medium,
			}))
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.LeadScoreHighThreshold != 80 || cfg.LeadScoreMediumThreshold != 50 {
				t.Fatalf("unexpected thresholds %d/%d", cfg.LeadScoreHighThreshold, cfg.LeadScoreMediumThreshold)
			}
		})
	}
}

func TestFromEnvBlankThresholdUsesDefault(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(map[string]string{"LEAD_SCORE_MEDIUM_THRESHOLD": "  "}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LeadScoreMediumThreshold != 45 {
		t.Fatalf("expected default medium threshold, got %d", cfg.LeadScoreMediumThreshold)
	}
}

func TestFromEnvEmailProvider(t *testing.T) {
	if _, err := FromEnv(lookupFrom(map[string]string{"EMAIL_PROVIDER": "pigeon"})); err == nil {
		t.Fatal("expected unsupported provider error")
	}
	if _, err := FromEnv(lookupFrom(map[string]string{"EMAIL_PROVIDER": "smtp"})); err == nil {
		t.Fatal("expected missing SMTP_HOST error")
	}
	if _, err := FromEnv(lookupFrom(map[string]string{"BREVO_API_KEY": "key"})); err == nil {
		t.Fatal("expected missing from address error")
	}

	cfg, err := FromEnv(lookupFrom(map[string]string{
		"EMAIL_PROVIDER":     "SMTP",
		"SMTP_HOST":          "mail.example.com",
		"EMAIL_FROM_ADDRESS": "leasing@example.com",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GetEmailProvider() != "smtp" || cfg.GetSMTPPort() != 587 {
		t.Fatalf("unexpected smtp settings %q:%d", cfg.EmailProvider, cfg.SMTPPort)
	}
}

func TestFromEnvRejectsUnknownTimezone(t *testing.T) {
	if _, err := FromEnv(lookupFrom(map[string]string{"TIMEZONE": "Mars/Olympus"})); err == nil {
		t.Fatal("expected timezone error")
	}
}

func TestFromEnvCORS(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(map[string]string{"CORS_ORIGINS": "https://a.example.com, *"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.CORSAllowAll {
		t.Fatal("expected wildcard origin to allow all")
	}

	_, err = FromEnv(lookupFrom(map[string]string{"CORS_ALLOW_ALL": "true", "CORS_ALLOW_CREDENTIALS": "true"}))
	if err == nil {
		t.Fatal("expected credentials with allow-all to be rejected")
	}
}
