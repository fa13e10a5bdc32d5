package config

import (
	"os"
	"strconv"
)

type Config struct {
	Storage StorageConfig
	Email   EmailConfig
	Seed    SeedConfig
}

type StorageConfig struct {
	// DataDir is where per-namespace snapshot files live.
	DataDir string
	// InMemory skips disk persistence entirely (tests, throwaway demos).
	InMemory bool
}

type EmailConfig struct {
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
	SMTPFrom      string
	SMTPFromName  string
	SMTPUseTLS    bool
	MailerSendKey string
	DevMode       bool // print emails to logs instead of sending
}

type SeedConfig struct {
	// DemoData loads the sample owners/visitors/requests when the
	// collections are empty.
	DemoData bool
}

func Load() *Config {
	return &Config{
		Storage: StorageConfig{
			DataDir:  getEnv("VISITFLOW_DATA_DIR", "./data"),
			InMemory: getBool("VISITFLOW_IN_MEMORY", false),
		},
		Email: EmailConfig{
			SMTPHost:      getEnv("SMTP_HOST", "localhost"),
			SMTPPort:      getInt("SMTP_PORT", 1025),
			SMTPUser:      getEnv("SMTP_USER", ""),
			SMTPPass:      getEnv("SMTP_PASS", ""),
			SMTPFrom:      getEnv("SMTP_FROM", "noreply@visitflow.local"),
			SMTPFromName:  getEnv("SMTP_FROM_NAME", "VisitFlow"),
			SMTPUseTLS:    getBool("SMTP_USE_TLS", false),
			MailerSendKey: getEnv("MAILERSEND_API_KEY", ""),
			DevMode:       getBool("EMAIL_DEV_MODE", true),
		},
		Seed: SeedConfig{
			DemoData: getBool("SEED_DEMO_DATA", true),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
