package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hance08/fakturoid-mcp/internal/app"
	"github.com/hance08/fakturoid-mcp/internal/config"
	"github.com/hance08/fakturoid-mcp/internal/ui/prompts"
)

type initRunner struct {
	env *app.Env
}

func NewInitCmd(env *app.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Set up Fakturoid credentials",
		Long:  `Ask for the account slug and OAuth client credentials and save them to the config file.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &initRunner{env: env}
			return runner.Run()
		},
	}
}

func (r *initRunner) Run() error {
	creds, err := prompts.PromptCredentials(r.env.Config.Fakturoid)
	if err != nil {
		return err
	}

	path, err := config.Save(viper.GetViper(), creds)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Configuration saved to %s\n", path)
	pterm.Info.Println("Start the server with 'fakturoid-mcp serve'")
	return nil
}
