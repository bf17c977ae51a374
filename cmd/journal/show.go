package journal

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hance08/fakturoid-mcp/internal/app"
	"github.com/hance08/fakturoid-mcp/internal/store"
	"github.com/hance08/fakturoid-mcp/internal/ui/views"
)

type ShowCommandRunner struct {
	env *app.Env
}

func NewShowCmd(env *app.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <entry-id>",
		Short: "Show one tool call with its arguments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ShowCommandRunner{env: env}
			return runner.Run(args[0])
		},
	}
}

func (r *ShowCommandRunner) Run(id string) error {
	repo, err := r.env.OpenJournal()
	if err != nil {
		return err
	}
	defer repo.Close()

	call, err := repo.GetCall(id)
	if errors.Is(err, store.ErrRecordNotFound) {
		return fmt.Errorf("no journal entry %s", id)
	}
	if err != nil {
		return err
	}

	return views.RenderJournalEntry(call)
}
