package providers

import (
	"context"
	"os"

	"github.com/samber/do/v2"

	"github.com/slovoapp/slovo-server/internal/config"
	domainerrors "github.com/slovoapp/slovo-server/internal/errors"
	"github.com/slovoapp/slovo-server/internal/logger"
	"github.com/slovoapp/slovo-server/internal/store/sqlite"
)

// StoreHandle wraps the verse store with shutdown capability.
type StoreHandle struct {
	*sqlite.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideVerseStore provides the read-only verse database.
func ProvideVerseStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	// Fail fast before the first scheduled run rather than at 04:10.
	if _, err := os.Stat(cfg.Verses.DBPath); err != nil {
		return nil, domainerrors.Wrapf(err, domainerrors.CodeNotFound, "verse database not found at %s", cfg.Verses.DBPath)
	}

	db, err := sqlite.Open(cfg.Verses.DBPath, log.Logger)
	if err != nil {
		return nil, err
	}

	count, err := db.VerseCount(context.Background())
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Info("Verse database opened", "path", cfg.Verses.DBPath, "verses", count)

	return &StoreHandle{Store: db}, nil
}
