package cmd

import (
	"context"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hance08/fakturoid-mcp/internal/app"
	"github.com/hance08/fakturoid-mcp/internal/config"
)

type serveRunner struct {
	env *app.Env
}

func NewServeCmd(env *app.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server",
		Long: `Run the MCP server over stdio (for desktop clients that spawn it) or
over streamable HTTP on /mcp.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &serveRunner{env: env}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().String("transport", config.TransportStdio, "transport: stdio or streamable-http")
	cmd.Flags().String("host", "0.0.0.0", "HTTP listen host")
	cmd.Flags().Int("port", 8000, "HTTP listen port")
	_ = viper.BindPFlag("server.transport", cmd.Flags().Lookup("transport"))
	_ = viper.BindPFlag("server.host", cmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("server.port", cmd.Flags().Lookup("port"))

	return cmd
}

func (r *serveRunner) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, cleanup, err := r.env.Open()
	if err != nil {
		return err
	}
	defer cleanup()

	srv := r.env.Config.Server
	if srv.Transport == config.TransportHTTP {
		return a.Server.ListenAndServe(ctx, net.JoinHostPort(srv.Host, strconv.Itoa(srv.Port)))
	}
	return a.Server.ServeStdio(ctx, os.Stdin, os.Stdout)
}
