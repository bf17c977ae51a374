package journal

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/fakturoid-mcp/internal/app"
	"github.com/hance08/fakturoid-mcp/internal/ui/prompts"
)

type ClearCommandRunner struct {
	env *app.Env
	yes bool
}

func NewClearCmd(env *app.Env) *cobra.Command {
	runner := &ClearCommandRunner{env: env}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every journal entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run()
		},
	}
	cmd.Flags().BoolVarP(&runner.yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func (r *ClearCommandRunner) Run() error {
	repo, err := r.env.OpenJournal()
	if err != nil {
		return err
	}
	defer repo.Close()

	if !r.yes {
		confirmation, err := prompts.Confirm("Do you want to delete every journal entry?")
		if err != nil {
			return err
		}
		if !confirmation {
			pterm.Info.Println("Clear cancelled")
			return nil
		}
	}

	removed, err := repo.ClearCalls()
	if err != nil {
		return err
	}

	pterm.Success.Printf("Removed %d journal entries\n", removed)
	return nil
}
