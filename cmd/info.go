package cmd

import (
	"net"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hance08/fakturoid-mcp/internal/app"
	"github.com/hance08/fakturoid-mcp/internal/config"
	"github.com/hance08/fakturoid-mcp/internal/ui/views"
)

type infoRunner struct {
	env *app.Env
}

func NewInfoCmd(env *app.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, journal path, and connection details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{env: env}
			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.env.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	journalExists := false
	if _, err := os.Stat(cfg.Journal.Path); err == nil {
		journalExists = true
	}

	address := ""
	if cfg.Server.Transport == config.TransportHTTP {
		address = net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	}

	items := views.SystemInfoItem{
		ConfigPath:    configPath,
		JournalPath:   cfg.Journal.Path,
		JournalExists: journalExists,
		JournalOn:     cfg.Journal.Enabled,
		Slug:          cfg.Fakturoid.Slug,
		BaseURL:       cfg.Fakturoid.BaseURL,
		Transport:     cfg.Server.Transport,
		Address:       address,
		AppDataDir:    appDataDirOrUnknown(),
		Version:       r.env.Version,
	}

	return views.RenderSystemInfo(items)
}

func appDataDirOrUnknown() string {
	dir, err := config.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
