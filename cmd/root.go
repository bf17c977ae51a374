package cmd

import (
	"io/fs"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hance08/fakturoid-mcp/cmd/journal"
	"github.com/hance08/fakturoid-mcp/cmd/tool"
	"github.com/hance08/fakturoid-mcp/internal/app"
	"github.com/hance08/fakturoid-mcp/internal/config"
	"github.com/hance08/fakturoid-mcp/internal/errhandler"
	"github.com/hance08/fakturoid-mcp/internal/logger"
)

func Execute(migrations fs.FS, version string) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	env := &app.Env{Migrations: migrations, Version: version}
	if err := NewRootCmd(env).Execute(); err != nil {
		errhandler.HandleError(err)
	}
}

func NewRootCmd(env *app.Env) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "fakturoid-mcp",
		Short: "MCP server for the Fakturoid invoicing API",
		Long: `fakturoid-mcp exposes a Fakturoid account (subjects, invoices, expenses,
invoice generators and bank accounts) as Model Context Protocol tools.`,
		Version:       env.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(viper.GetViper(), cfgFile)
			if err != nil {
				return err
			}
			env.Config = cfg
			env.Logger = logger.New(cfg.Log.Level, os.Stderr)
			slog.SetDefault(env.Logger)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(NewServeCmd(env))
	rootCmd.AddCommand(NewInitCmd(env))
	rootCmd.AddCommand(NewInfoCmd(env))
	rootCmd.AddCommand(tool.NewToolCmd(env))
	rootCmd.AddCommand(journal.NewJournalCmd(env))

	return rootCmd
}
