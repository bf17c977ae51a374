package app

import (
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/hance08/fakturoid-mcp/internal/config"
	"github.com/hance08/fakturoid-mcp/internal/fakturoid"
	"github.com/hance08/fakturoid-mcp/internal/mcpserver"
	"github.com/hance08/fakturoid-mcp/internal/store"
	"github.com/hance08/fakturoid-mcp/internal/tools"
)

type App struct {
	Config  *config.Config
	Client  *fakturoid.Client
	Catalog *tools.Catalog
	Server  *mcpserver.Server
	// Journal is nil when the journal is disabled.
	Journal store.Repository
}

// NewApp wires the API client, the tool catalog, the journal and the MCP
// server. The returned cleanup closes the journal.
func NewApp(cfg *config.Config, migrationFS fs.FS, logger *slog.Logger, version string) (*App, func(), error) {
	if err := cfg.ValidateCredentials(); err != nil {
		return nil, nil, err
	}

	client, err := fakturoid.New(fakturoid.Options{
		BaseURL:           cfg.Fakturoid.BaseURL,
		Slug:              cfg.Fakturoid.Slug,
		ClientID:          cfg.Fakturoid.ClientID,
		ClientSecret:      cfg.Fakturoid.ClientSecret,
		UserAgent:         cfg.Fakturoid.UserAgent,
		Timeout:           cfg.Fakturoid.Timeout,
		RequestsPerMinute: cfg.Fakturoid.RequestsPerMinute,
		CacheTTL:          cfg.Cache.TTL,
	}, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize Fakturoid client: %w", err)
	}

	a := &App{
		Config:  cfg,
		Client:  client,
		Catalog: tools.NewCatalog(client),
	}
	cleanup := func() {}

	var journal mcpserver.Journal
	if cfg.Journal.Enabled {
		repo, err := OpenJournal(cfg, migrationFS)
		if err != nil {
			return nil, nil, err
		}
		if days := cfg.Journal.RetentionDays; days > 0 {
			pruned, err := repo.PruneCalls(time.Now().AddDate(0, 0, -days))
			if err != nil {
				logger.Warn("journal prune failed", "error", err)
			} else if pruned > 0 {
				logger.Info("journal pruned", "entries", pruned, "retention_days", days)
			}
		}
		a.Journal = repo
		journal = repo
		cleanup = func() {
			if err := repo.Close(); err != nil {
				logger.Error("error closing journal", "error", err)
			}
		}
	}

	a.Server = mcpserver.New(a.Catalog, journal, logger, version)
	return a, cleanup, nil
}

// OpenJournal opens the journal database at the configured path.
func OpenJournal(cfg *config.Config, migrationFS fs.FS) (store.Repository, error) {
	repo, err := store.NewStore(cfg.Journal.Path, migrationFS)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize journal: %w", err)
	}
	return repo, nil
}
