package journal

import (
	"github.com/spf13/cobra"

	"github.com/hance08/fakturoid-mcp/internal/app"
	"github.com/hance08/fakturoid-mcp/internal/store"
	"github.com/hance08/fakturoid-mcp/internal/ui/views"
)

type ListCommandRunner struct {
	env    *app.Env
	filter store.CallFilter
}

func NewListCmd(env *app.Env) *cobra.Command {
	runner := &ListCommandRunner{env: env}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent tool calls, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run()
		},
	}
	cmd.Flags().IntVarP(&runner.filter.Limit, "limit", "n", 50, "maximum number of entries")
	cmd.Flags().StringVarP(&runner.filter.Tool, "tool", "t", "", "only calls of this tool")

	return cmd
}

func (r *ListCommandRunner) Run() error {
	repo, err := r.env.OpenJournal()
	if err != nil {
		return err
	}
	defer repo.Close()

	calls, err := repo.ListCalls(r.filter)
	if err != nil {
		return err
	}

	return views.NewJournalListView().Render(calls)
}
