package tool

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hance08/fakturoid-mcp/internal/tools"
	"github.com/hance08/fakturoid-mcp/internal/ui/views"
)

type ListCommandRunner struct {
	entity string
}

func NewListCmd() *cobra.Command {
	runner := &ListCommandRunner{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every tool with its parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run()
		},
	}
	cmd.Flags().StringVarP(&runner.entity, "entity", "e", "", "only tools for this entity (e.g. invoice)")

	return cmd
}

func (r *ListCommandRunner) Run() error {
	// Metadata only, no record store needed.
	ops := tools.NewCatalog(nil).Operations()

	if r.entity != "" {
		filtered := ops[:0]
		for _, op := range ops {
			if strings.EqualFold(op.Entity, r.entity) {
				filtered = append(filtered, op)
			}
		}
		if len(filtered) == 0 {
			return fmt.Errorf("no tools for entity %q", r.entity)
		}
		ops = filtered
	}

	return views.NewToolListView().Render(ops)
}
