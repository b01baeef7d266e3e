// Package di provides dependency injection configuration for the devotional bot.
package di

import (
	"github.com/samber/do/v2"

	"github.com/slovoapp/slovo-server/internal/compose"
	"github.com/slovoapp/slovo-server/internal/config"
	"github.com/slovoapp/slovo-server/internal/di/providers"
	"github.com/slovoapp/slovo-server/internal/logger"
	"github.com/slovoapp/slovo-server/internal/service"
	"github.com/slovoapp/slovo-server/internal/sheets"
	"github.com/slovoapp/slovo-server/internal/telegram"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer(flags *config.Flags) *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig(flags))
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideVerseStore)

	// Remote clients
	do.Provide(injector, providers.ProvideSheetsClient)
	do.Provide(injector, providers.ProvideTelegramClient)

	// Pipeline services
	do.Provide(injector, providers.ProvideComposer)
	do.Provide(injector, providers.ProvideDevotionalService)

	// Workers
	do.Provide(injector, providers.ProvideDailySendJob)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	// Invoke core services to trigger initialization
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*logger.Logger](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.StoreHandle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*sheets.Client](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*telegram.Client](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*compose.Composer](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.DevotionalService](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.DailySendJob](injector); err != nil {
		return err
	}

	return nil
}
