package tool

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hance08/fakturoid-mcp/internal/app"
	"github.com/hance08/fakturoid-mcp/internal/ui/views"
)

type CallCommandRunner struct {
	env  *app.Env
	args string
}

func NewCallCmd(env *app.Env) *cobra.Command {
	runner := &CallCommandRunner{env: env}

	cmd := &cobra.Command{
		Use:   "call <tool-name>",
		Short: "Call a tool against the configured account",
		Example: `  fakturoid-mcp tool call get_invoice --args '{"invoice_id": 42}'
  fakturoid-mcp tool call search_subjects --args '{"query": "acme"}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd, args[0])
		},
	}
	cmd.Flags().StringVarP(&runner.args, "args", "a", "{}", "tool arguments as a JSON object")

	return cmd
}

func (r *CallCommandRunner) Run(cmd *cobra.Command, name string) error {
	args, err := parseArgs(r.args)
	if err != nil {
		return err
	}

	a, cleanup, err := r.env.Open()
	if err != nil {
		return err
	}
	defer cleanup()

	if _, ok := a.Catalog.Lookup(name); !ok {
		return fmt.Errorf("unknown tool %q, see 'fakturoid-mcp tool list'", name)
	}

	text, failed := a.Server.Call(cmd.Context(), name, args)
	fmt.Fprintln(cmd.OutOrStdout(), views.Indent(text))
	if failed {
		return fmt.Errorf("tool %s failed", name)
	}
	return nil
}

func parseArgs(raw string) (map[string]any, error) {
	args := map[string]any{}
	if raw == "" {
		return args, nil
	}
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return nil, fmt.Errorf("invalid --args: expected a JSON object: %w", err)
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}
