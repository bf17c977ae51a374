package tool

import (
	"github.com/spf13/cobra"

	"github.com/hance08/fakturoid-mcp/internal/app"
)

func NewToolCmd(env *app.Env) *cobra.Command {
	toolCmd := &cobra.Command{
		Use:   "tool",
		Short: "List the MCP tools or call one from the command line.",
		Long:  `List the MCP tools or call one from the command line.`,
	}

	toolCmd.AddCommand(NewListCmd())
	toolCmd.AddCommand(NewCallCmd(env))

	return toolCmd
}
