package journal

import (
	"github.com/spf13/cobra"

	"github.com/hance08/fakturoid-mcp/internal/app"
)

func NewJournalCmd(env *app.Env) *cobra.Command {
	journalCmd := &cobra.Command{
		Use:   "journal",
		Short: "Inspect the log of write tool calls.",
		Long: `Inspect the log of write tool calls. Every create, update, delete, event
and payment call made through the server is recorded with its arguments and outcome.`,
	}

	journalCmd.AddCommand(NewListCmd(env))
	journalCmd.AddCommand(NewShowCmd(env))
	journalCmd.AddCommand(NewClearCmd(env))

	return journalCmd
}
