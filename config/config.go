package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds everything the monitor reads from the environment. It is
// loaded once at startup and passed into each component; business logic never
// reads ambient environment state.
type Config struct {
	FinnhubAPIKey string
	EmailSender   string
	EmailPassword string
	EmailReceiver string
	SMTPHost      string
	SMTPPort      int
	LogLevel      string
	HTTPTimeout   time.Duration
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		logrus.Warn("Error loading .env file, using system environment variables")
	}

	return &Config{
		FinnhubAPIKey: getEnv("FINNHUB_API_KEY", ""),
		EmailSender:   getEnv("EMAIL_SENDER", ""),
		EmailPassword: getEnv("EMAIL_PASSWORD", ""),
		EmailReceiver: getEnv("EMAIL_RECEIVER", ""),
		SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getEnvInt("SMTP_PORT", 465),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		HTTPTimeout:   time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
	}
}

// Validate returns the names of required variables that are missing. The run
// proceeds regardless; the failure then surfaces at the stage that needed the
// value, and the process still exits normally.
func (c *Config) Validate() []string {
	var missing []string

	if c.FinnhubAPIKey == "" {
		missing = append(missing, "FINNHUB_API_KEY")
	}
	if c.EmailSender == "" {
		missing = append(missing, "EMAIL_SENDER")
	}
	if c.EmailPassword == "" {
		missing = append(missing, "EMAIL_PASSWORD")
	}
	if c.EmailReceiver == "" {
		missing = append(missing, "EMAIL_RECEIVER")
	}

	return missing
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		logrus.Warnf("Invalid %s value: %s, using default %d", key, value, fallback)
		return fallback
	}

	return parsed
}
