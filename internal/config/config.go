package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	ModePolling = "polling"
	ModeWebhook = "webhook"
)

// DefaultEnvFile is loaded when present; any other path must exist.
const DefaultEnvFile = ".env"

type Config struct {
	TelegramBotToken string `env:"TOKEN" validate:"required"`
	BotUsername      string `env:"BOT_USERNAME"`

	Users             []string `env:"USERS"`
	RosterFile        string   `env:"ROSTER_FILE"`
	FirestoreProject  string   `env:"FIRESTORE_PROJECT_ID"`
	FirestoreRosterID string   `env:"FIRESTORE_ROSTER_ID" validate:"required_with=FirestoreProject"`

	Timezone        string `env:"BOT_TIMEZONE" validate:"required,timezone"`
	LeetCodeBaseURL string `env:"LEETCODE_API_BASE_URL" validate:"required,url"`
	SubmissionLimit int    `env:"SUBMISSION_LIMIT" validate:"min=1,max=100"`
	HTTPTimeoutSec  int    `env:"HTTP_TIMEOUT_SEC" validate:"min=1"`

	Mode             string   `env:"BOT_MODE" validate:"oneof=polling webhook"`
	PollIntervalSec  int      `env:"POLL_INTERVAL_SEC" validate:"min=1"`
	Port             string   `env:"PORT" validate:"required,numeric"`
	WebhookSecret    string   `env:"WEBHOOK_SECRET" validate:"required_if=Mode webhook"`
	BotBaseURL       string   `env:"BOT_BASE_URL" validate:"omitempty,url"`
	AutoSetWebhook   bool     `env:"AUTO_SET_WEBHOOK"`
	AllowedUsernames []string `env:"ALLOWED_TELEGRAM_USERNAMES"`

	LogLevel  string `env:"LOG_LEVEL" validate:"oneof=trace debug info warn error"`
	LogFormat string `env:"LOG_FORMAT" validate:"oneof=json console"`
}

func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSec) * time.Second
}

func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSec) * time.Second
}

// Load reads a dotenv file, then the process environment. Values already
// present in the environment win over the file. A missing DefaultEnvFile is
// ignored; a missing file at any other path is an error.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil {
		if envFile != DefaultEnvFile || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	autoSetWebhook, err := parseBoolEnv("AUTO_SET_WEBHOOK", false)
	if err != nil {
		return Config{}, err
	}
	submissionLimit, err := parseIntEnv("SUBMISSION_LIMIT", 10)
	if err != nil {
		return Config{}, err
	}
	httpTimeoutSec, err := parseIntEnv("HTTP_TIMEOUT_SEC", 20)
	if err != nil {
		return Config{}, err
	}
	pollIntervalSec, err := parseIntEnv("POLL_INTERVAL_SEC", 2)
	if err != nil {
		return Config{}, err
	}

	token := getEnv("TOKEN", "")
	if token == "" {
		token = getEnv("TELEGRAM_BOT_TOKEN", "")
	}

	cfg := Config{
		TelegramBotToken:  token,
		BotUsername:       getEnv("BOT_USERNAME", ""),
		Users:             parseListEnv("USERS", normalizeRosterName),
		RosterFile:        getEnv("ROSTER_FILE", ""),
		FirestoreProject:  getEnv("FIRESTORE_PROJECT_ID", ""),
		FirestoreRosterID: getEnv("FIRESTORE_ROSTER_ID", "default"),
		Timezone:          getEnv("BOT_TIMEZONE", "Asia/Singapore"),
		LeetCodeBaseURL:   getEnv("LEETCODE_API_BASE_URL", "https://alfa-leetcode-api.onrender.com"),
		SubmissionLimit:   submissionLimit,
		HTTPTimeoutSec:    httpTimeoutSec,
		Mode:              strings.ToLower(getEnv("BOT_MODE", ModePolling)),
		PollIntervalSec:   pollIntervalSec,
		Port:              getEnv("PORT", "8080"),
		WebhookSecret:     getEnv("WEBHOOK_SECRET", ""),
		BotBaseURL:        getEnv("BOT_BASE_URL", ""),
		AutoSetWebhook:    autoSetWebhook,
		AllowedUsernames:  parseListEnv("ALLOWED_TELEGRAM_USERNAMES", normalizeUsername),
		LogLevel:          strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:         strings.ToLower(getEnv("LOG_FORMAT", "json")),
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	first := fieldErrs[0]
	name := envName(first.StructField())
	switch first.Tag() {
	case "required", "required_if", "required_with":
		return fmt.Errorf("%s is required", name)
	default:
		return fmt.Errorf("invalid %s: %q", name, fmt.Sprint(first.Value()))
	}
}

func envName(field string) string {
	f, ok := reflect.TypeOf(Config{}).FieldByName(field)
	if !ok {
		return field
	}
	if name := f.Tag.Get("env"); name != "" {
		return name
	}
	return field
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return fallback
}

func parseBoolEnv(key string, fallback bool) (bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return v, nil
}

func parseIntEnv(key string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return v, nil
}

// parseListEnv splits a comma-separated variable, normalizing each entry and
// dropping blanks and case-insensitive duplicates. Order is preserved.
func parseListEnv(key string, normalize func(string) string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}

	dedup := make(map[string]struct{})
	out := make([]string, 0)
	for _, token := range strings.Split(raw, ",") {
		item := normalize(token)
		if item == "" {
			continue
		}
		key := strings.ToLower(item)
		if _, exists := dedup[key]; exists {
			continue
		}
		dedup[key] = struct{}{}
		out = append(out, item)
	}

	return out
}

func normalizeUsername(raw string) string {
	username := strings.TrimSpace(strings.ToLower(raw))
	username = strings.TrimPrefix(username, "@")
	return username
}

// LeetCode usernames keep their case.
func normalizeRosterName(raw string) string {
	return strings.TrimPrefix(strings.TrimSpace(raw), "@")
}
