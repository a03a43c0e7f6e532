package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/log"
)

// Store backends.
const (
	StoreFirestore = "firestore"
	StorePostgres  = "postgres"
	StoreSQLite    = "sqlite"
)

// Recipient modes.
const (
	RecipientsRoles = "roles"
	RecipientsChat  = "chat"
)

// Error is a fatal configuration problem detected before any tick runs.
type Error struct {
	Key    string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config %s: %s", e.Key, e.Reason)
}

// Config holds the application settings.
type Config struct {
	TelegramToken   string
	TelegramTimeout time.Duration

	Store string
	// FirebaseServiceAccount is inline service-account JSON; when empty the
	// default credential lookup (GOOGLE_APPLICATION_CREDENTIALS) is used.
	FirebaseServiceAccount string
	FirebaseCredentialFile string
	FirebaseProjectID      string
	DatabaseURL            string
	DatabasePath           string

	Window       time.Duration
	SendPause    time.Duration
	Location     *time.Location
	TickSchedule string

	Recipients string
	ChatID     string

	LogLevel log.Level
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		TelegramToken:          strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		Store:                  strings.ToLower(getEnv("STORE", StoreFirestore)),
		FirebaseServiceAccount: strings.TrimSpace(os.Getenv("FIREBASE_SERVICE_ACCOUNT")),
		FirebaseCredentialFile: strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")),
		FirebaseProjectID:      strings.TrimSpace(os.Getenv("FIREBASE_PROJECT_ID")),
		DatabaseURL:            strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DatabasePath:           getEnv("DATABASE_PATH", "./sachaflor.db"),
		TickSchedule:           getEnv("TICK_SCHEDULE", "@every 5m"),
		Recipients:             strings.ToLower(getEnv("RECIPIENTS", RecipientsRoles)),
		ChatID:                 strings.TrimSpace(os.Getenv("CHAT_ID")),
	}

	if cfg.TelegramToken == "" {
		return nil, &Error{Key: "TELEGRAM_TOKEN", Reason: "not set"}
	}

	var err error
	if cfg.TelegramTimeout, err = getDuration("TELEGRAM_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}

	windowMinutes, err := getInt("WINDOW_MINUTES", 10)
	if err != nil {
		return nil, err
	}
	if windowMinutes <= 0 {
		return nil, &Error{Key: "WINDOW_MINUTES", Reason: "must be positive"}
	}
	cfg.Window = time.Duration(windowMinutes) * time.Minute

	sleepMS, err := getInt("SLEEP_MS", 200)
	if err != nil {
		return nil, err
	}
	if sleepMS < 0 {
		return nil, &Error{Key: "SLEEP_MS", Reason: "must not be negative"}
	}
	cfg.SendPause = time.Duration(sleepMS) * time.Millisecond

	tz := getEnv("APP_TZ", "America/Guayaquil")
	if cfg.Location, err = time.LoadLocation(tz); err != nil {
		return nil, &Error{Key: "APP_TZ", Reason: err.Error()}
	}

	if cfg.LogLevel, err = log.ParseLevel(os.Getenv("LOG_LEVEL")); err != nil {
		return nil, &Error{Key: "LOG_LEVEL", Reason: err.Error()}
	}

	if err := cfg.validateStore(); err != nil {
		return nil, err
	}

	switch cfg.Recipients {
	case RecipientsRoles:
	case RecipientsChat:
		if cfg.ChatID == "" {
			return nil, &Error{Key: "CHAT_ID", Reason: "required when RECIPIENTS=chat"}
		}
	default:
		return nil, &Error{Key: "RECIPIENTS", Reason: fmt.Sprintf("unknown mode %q", cfg.Recipients)}
	}

	return cfg, nil
}

func (c *Config) validateStore() error {
	switch c.Store {
	case StoreFirestore:
		if c.FirebaseServiceAccount == "" && c.FirebaseCredentialFile == "" {
			return &Error{Key: "FIREBASE_SERVICE_ACCOUNT", Reason: "neither inline credentials nor GOOGLE_APPLICATION_CREDENTIALS set"}
		}
		if c.FirebaseServiceAccount != "" {
			var creds struct {
				ProjectID string `json:"project_id"`
			}
			if err := json.Unmarshal([]byte(c.FirebaseServiceAccount), &creds); err != nil {
				return &Error{Key: "FIREBASE_SERVICE_ACCOUNT", Reason: "invalid JSON: " + err.Error()}
			}
			if c.FirebaseProjectID == "" {
				c.FirebaseProjectID = creds.ProjectID
			}
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			return &Error{Key: "DATABASE_URL", Reason: "required when STORE=postgres"}
		}
	case StoreSQLite:
		if c.DatabasePath == "" {
			return &Error{Key: "DATABASE_PATH", Reason: "required when STORE=sqlite"}
		}
	default:
		return &Error{Key: "STORE", Reason: fmt.Sprintf("unknown backend %q", c.Store)}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &Error{Key: key, Reason: fmt.Sprintf("not an integer: %q", raw)}
	}
	return n, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, &Error{Key: key, Reason: fmt.Sprintf("not a positive duration: %q", raw)}
	}
	return d, nil
}
