// Package providers contains dependency injection providers for the devotional bot.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/slovoapp/slovo-server/internal/config"
	"github.com/slovoapp/slovo-server/internal/logger"
)

// ProvideConfig returns a provider bound to the parsed command-line flags.
func ProvideConfig(flags *config.Flags) func(do.Injector) (*config.Config, error) {
	return func(do.Injector) (*config.Config, error) {
		return config.LoadConfig(flags)
	}
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development",
		Environment: cfg.App.Environment,
	})

	log.Info("Starting Slovo bot",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"sheet_id", cfg.Sheets.SheetID,
		"verses_db", cfg.Verses.DBPath,
		"timezone", cfg.Schedule.Timezone,
		"send_at", cfg.Schedule.SendAt,
	)

	return log, nil
}
