package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.gmail.com")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "")

	cfg := LoadConfig()

	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, 465, cfg.SMTPPort)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("FINNHUB_API_KEY", "key-123")
	t.Setenv("EMAIL_SENDER", "sender@example.com")
	t.Setenv("EMAIL_PASSWORD", "secret")
	t.Setenv("EMAIL_RECEIVER", "receiver@example.com")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "10")

	cfg := LoadConfig()

	assert.Equal(t, "key-123", cfg.FinnhubAPIKey)
	assert.Equal(t, "sender@example.com", cfg.EmailSender)
	assert.Equal(t, "secret", cfg.EmailPassword)
	assert.Equal(t, "receiver@example.com", cfg.EmailReceiver)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Empty(t, cfg.Validate())
}

func TestValidateReportsMissing(t *testing.T) {
	cfg := &Config{EmailSender: "sender@example.com"}

	missing := cfg.Validate()
	assert.ElementsMatch(t, []string{"FINNHUB_API_KEY", "EMAIL_PASSWORD", "EMAIL_RECEIVER"}, missing)
}

func TestGetEnvIntInvalidFallsBack(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")

	cfg := LoadConfig()
	assert.Equal(t, 465, cfg.SMTPPort)
}
