// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/slovoapp/slovo-server/internal/validation"
)

// Config holds the application configuration.
type Config struct {
	App      AppConfig
	Logger   LoggerConfig
	Telegram TelegramConfig
	Sheets   SheetsConfig
	Verses   VersesConfig
	Schedule ScheduleConfig
	Server   ServerConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string `env:"ENV" validate:"oneof=development staging production"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string `env:"LOG_LEVEL"`
}

// TelegramConfig holds Bot API credentials and the destination chat.
type TelegramConfig struct {
	// BotToken comes from @BotFather. Env only, never a flag.
	BotToken string `env:"TELEGRAM_BOT_TOKEN" validate:"required"`
	// ChatID is a numeric chat id or an @channelname.
	ChatID string `env:"TELEGRAM_CHAT_ID" validate:"required"`
}

// SheetsConfig identifies the published spreadsheet with weekly content.
type SheetsConfig struct {
	SheetID string `env:"GOOGLE_SHEET_ID" validate:"required"`
	// GID selects the tab within the spreadsheet (default: first tab).
	GID string `env:"GOOGLE_SHEET_GID" validate:"numeric"`
}

// VersesConfig holds the verse database location.
type VersesConfig struct {
	DBPath string `env:"VERSES_DB_PATH" validate:"required"`
}

// ScheduleConfig holds the daily send schedule.
type ScheduleConfig struct {
	// Timezone is the fixed reference timezone for "today" and the
	// scheduled send (default: Europe/Moscow).
	Timezone string `env:"TIMEZONE" validate:"required"`
	// SendAt is the local wall-clock send time, HH:MM (default: 04:10).
	SendAt string `env:"SEND_AT" validate:"required"`
	// SendOnStart triggers one pipeline run immediately at startup.
	SendOnStart bool `env:"SEND_ON_START"`
}

// ServerConfig holds liveness server configuration.
type ServerConfig struct {
	Port string `env:"SERVER_PORT" validate:"numeric"`
}

// Flags is the set of parsed command-line overrides. Flag registration is
// separated from LoadConfig so tests can load without touching the global
// flag set.
type Flags struct {
	Env         string
	LogLevel    string
	SheetID     string
	SheetGID    string
	VersesDB    string
	Timezone    string
	SendAt      string
	SendOnStart string
	Port        string
	EnvFile     string
}

// RegisterFlags defines the command-line flags on the given flag set.
// Call fs.Parse after this and pass the result to LoadConfig.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Env, "env", "", "Environment (development, staging, production)")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.SheetID, "sheet-id", "", "Google Sheets spreadsheet id")
	fs.StringVar(&f.SheetGID, "sheet-gid", "", "Google Sheets tab gid (default: 0)")
	fs.StringVar(&f.VersesDB, "verses-db", "", "Path to the verse database (default: synodal.sqlite)")
	fs.StringVar(&f.Timezone, "timezone", "", "Reference timezone (default: Europe/Moscow)")
	fs.StringVar(&f.SendAt, "send-at", "", "Daily send time HH:MM (default: 04:10)")
	fs.StringVar(&f.SendOnStart, "send-on-start", "", "Run the pipeline once at startup (default: true)")
	fs.StringVar(&f.Port, "port", "", "Liveness server port (default: 8080)")
	fs.StringVar(&f.EnvFile, "env-file", ".env", "Path to .env file")
	return f
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig(flags *Flags) (*Config, error) {
	if flags == nil {
		flags = &Flags{EnvFile: ".env"}
	}

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(flags.EnvFile)

	// Build config with proper precedence.
	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(flags.Env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(flags.LogLevel, "LOG_LEVEL", "info"),
		},
		Telegram: TelegramConfig{
			BotToken: getConfigValue("", "TELEGRAM_BOT_TOKEN", ""),
			ChatID:   getConfigValue("", "TELEGRAM_CHAT_ID", ""),
		},
		Sheets: SheetsConfig{
			SheetID: getConfigValue(flags.SheetID, "GOOGLE_SHEET_ID", ""),
			GID:     getConfigValue(flags.SheetGID, "GOOGLE_SHEET_GID", "0"),
		},
		Verses: VersesConfig{
			DBPath: getConfigValue(flags.VersesDB, "VERSES_DB_PATH", "synodal.sqlite"),
		},
		Schedule: ScheduleConfig{
			Timezone:    getConfigValue(flags.Timezone, "TIMEZONE", "Europe/Moscow"),
			SendAt:      getConfigValue(flags.SendAt, "SEND_AT", "04:10"),
			SendOnStart: getBoolConfigValue(flags.SendOnStart, "SEND_ON_START", true),
		},
		Server: ServerConfig{
			Port: getConfigValue(flags.Port, "SERVER_PORT", "8080"),
		},
	}

	// Validate configuration.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	if err := validation.New().Validate(c); err != nil {
		return err
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if _, _, err := ParseSendAt(c.Schedule.SendAt); err != nil {
		return err
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Schedule.Timezone, err)
	}

	return nil
}

// Location loads the configured reference timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Schedule.Timezone)
}

// ParseSendAt parses an HH:MM wall-clock time into its hour and minute.
func ParseSendAt(value string) (hour, minute int, err error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid send time %q (expected HH:MM): %w", value, err)
	}
	return parsed.Hour(), parsed.Minute(), nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	// Priority 1: Command-line flag.
	if flagValue != "" {
		return flagValue
	}

	// Priority 2: Environment variable.
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}

	// Priority 3: Default value.
	return defaultValue
}

// getBoolConfigValue returns a bool from flag, env var, or default.
// Accepts: "true", "1", "yes" (case-insensitive) as true; anything else is false.
func getBoolConfigValue(flagValue, envKey string, defaultValue bool) bool {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	strValue = strings.ToLower(strValue)
	return strValue == "true" || strValue == "1" || strValue == "yes"
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=value.
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present.
		value = strings.Trim(value, `"'`)

		// Only set if not already set (env vars take precedence over .env file).
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
