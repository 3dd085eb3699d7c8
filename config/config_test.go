package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"jwtSecret":  "",
			"bcryptCost": 10,
		},
		"recovery": map[string]any{
			"baseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_JWTSECRET", want: "auth.jwtSecret"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "RECOVERY_BASEURL", want: "recovery.baseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.Auth == nil || cfg.Auth.BcryptCost != defaultBcryptCost {
		t.Fatalf("Auth.BcryptCost not defaulted: %+v", cfg.Auth)
	}
	if cfg.Auth.TokenTTL != 7*24*time.Hour {
		t.Fatalf("Auth.TokenTTL = %v, want %v", cfg.Auth.TokenTTL, 7*24*time.Hour)
	}
	if cfg.Recovery == nil || cfg.Recovery.TokenTTL != time.Hour {
		t.Fatalf("Recovery.TokenTTL not defaulted: %+v", cfg.Recovery)
	}
	if cfg.SMTP != nil {
		t.Fatalf("SMTP should stay nil when not configured")
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Auth = &AuthConfig{JWTSecret: "s", TokenTTL: time.Minute, BcryptCost: 12}
	cfg.Recovery = &RecoveryConfig{BaseURL: "https://sapzurro.example", TokenTTL: 30 * time.Minute}
	cfg.SMTP = &SMTPConfig{Host: "mail.example", Port: 587}

	applyDefaults(cfg)

	if cfg.Auth.BcryptCost != 12 || cfg.Auth.TokenTTL != time.Minute {
		t.Fatalf("explicit auth values overwritten: %+v", cfg.Auth)
	}
	if cfg.Recovery.TokenTTL != 30*time.Minute {
		t.Fatalf("explicit recovery TTL overwritten: %+v", cfg.Recovery)
	}
	if cfg.SMTP.Timeout != defaultMailTimeout {
		t.Fatalf("SMTP.Timeout = %v, want %v", cfg.SMTP.Timeout, defaultMailTimeout)
	}
}
