package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func minimalConfig() *Config {
	cfg := &Config{}
	cfg.Store.Backend = "memory"
	cfg.Razorpay.KeySecret = "secret"
	cfg.Notifications.FromAddress = "noreply@agentpi.in"
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "sheets", cfg.Store.Backend)
	assert.Equal(t, "smtp", cfg.Mail.Provider)
	assert.Equal(t, "smtp.zoho.in", cfg.Mail.SMTP.Host)
	assert.Equal(t, 465, cfg.Mail.SMTP.Port)
	assert.Equal(t, []string{"hr@agentpi.in"}, cfg.Notifications.ScreeningCC)
	assert.Equal(t, []string{"hr@agentpi.in", "rohit.rajbhar@agentpi.in"}, cfg.Notifications.PaymentCC)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestValidateConfig_MemoryBackend(t *testing.T) {
	cfg := minimalConfig()
	applyDefaults(cfg)
	assert.NoError(t, validateConfig(cfg))
}

func TestValidateConfig_SheetsRequiresCredentials(t *testing.T) {
	cfg := minimalConfig()
	cfg.Store.Backend = "sheets"
	applyDefaults(cfg)

	err := validateConfig(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "spreadsheet_id")
}

func TestValidateConfig_UnknownBackend(t *testing.T) {
	cfg := minimalConfig()
	cfg.Store.Backend = "dynamo"
	applyDefaults(cfg)

	assert.Error(t, validateConfig(cfg))
}

func TestValidateConfig_MissingRazorpaySecret(t *testing.T) {
	cfg := minimalConfig()
	cfg.Razorpay.KeySecret = ""
	applyDefaults(cfg)

	err := validateConfig(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "razorpay")
}

func TestPostgresGetDSN(t *testing.T) {
	p := PostgresConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "app",
		Password: "pw",
		Database: "enrollments",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=localhost port=5432 user=app password=pw dbname=enrollments sslmode=disable", p.GetDSN())
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 10*time.Second, GetDuration(10))
}
