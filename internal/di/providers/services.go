package providers

import (
	"github.com/samber/do/v2"

	"github.com/slovoapp/slovo-server/internal/bible"
	"github.com/slovoapp/slovo-server/internal/compose"
	"github.com/slovoapp/slovo-server/internal/config"
	"github.com/slovoapp/slovo-server/internal/logger"
	"github.com/slovoapp/slovo-server/internal/service"
	"github.com/slovoapp/slovo-server/internal/sheets"
	"github.com/slovoapp/slovo-server/internal/telegram"
)

// ProvideComposer provides the message composer with its reference resolver.
func ProvideComposer(i do.Injector) (*compose.Composer, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	resolver := bible.NewResolver(bible.NewCatalog())

	return compose.NewComposer(resolver, storeHandle.Store, log.Logger), nil
}

// ProvideDevotionalService provides the daily pipeline service.
func ProvideDevotionalService(i do.Injector) (*service.DevotionalService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	sheetsClient := do.MustInvoke[*sheets.Client](i)
	composer := do.MustInvoke[*compose.Composer](i)
	telegramClient := do.MustInvoke[*telegram.Client](i)

	location, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	return service.NewDevotionalService(sheetsClient, composer, telegramClient, location, log.Logger), nil
}
