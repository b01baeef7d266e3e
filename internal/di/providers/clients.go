package providers

import (
	"github.com/samber/do/v2"

	"github.com/slovoapp/slovo-server/internal/config"
	"github.com/slovoapp/slovo-server/internal/logger"
	"github.com/slovoapp/slovo-server/internal/sheets"
	"github.com/slovoapp/slovo-server/internal/telegram"
)

// ProvideSheetsClient provides the weekly content source.
func ProvideSheetsClient(i do.Injector) (*sheets.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return sheets.NewClient(cfg.Sheets.SheetID, cfg.Sheets.GID, log.Logger), nil
}

// ProvideTelegramClient provides the message delivery client.
func ProvideTelegramClient(i do.Injector) (*telegram.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID, log.Logger), nil
}
