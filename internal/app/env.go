package app

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/hance08/fakturoid-mcp/internal/config"
	"github.com/hance08/fakturoid-mcp/internal/store"
)

var ErrJournalDisabled = errors.New("the journal is disabled (set journal.enabled or FAKTUROID_JOURNAL_ENABLED)")

// Env carries what commands need. Config and Logger are filled in once
// flags are parsed, so commands read them at run time.
type Env struct {
	Config     *config.Config
	Logger     *slog.Logger
	Migrations fs.FS
	Version    string
}

func (e *Env) Open() (*App, func(), error) {
	return NewApp(e.Config, e.Migrations, e.Logger, e.Version)
}

func (e *Env) OpenJournal() (store.Repository, error) {
	if !e.Config.Journal.Enabled {
		return nil, ErrJournalDisabled
	}
	return OpenJournal(e.Config, e.Migrations)
}
