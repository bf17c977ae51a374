// Package mcpserver exposes the tool catalog over the Model Context Protocol,
// on stdio or on streamable HTTP.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hance08/fakturoid-mcp/internal/envelope"
	"github.com/hance08/fakturoid-mcp/internal/store"
	"github.com/hance08/fakturoid-mcp/internal/tools"
)

const (
	Name         = "Fakturoid"
	instructions = "MCP server for Fakturoid.cz accounting service (API v3). " +
		"Every tool returns JSON; failures return {\"error\": \"...\"}. " +
		"Dates use YYYY-MM-DD."
)

// Journal receives every call of a tool that is not read-only.
type Journal interface {
	RecordCall(call *store.ToolCall) error
}

type Server struct {
	mcp     *server.MCPServer
	catalog *tools.Catalog
	journal Journal
	logger  *slog.Logger
}

// New registers every catalog operation as a tool. journal may be nil.
func New(catalog *tools.Catalog, journal Journal, logger *slog.Logger, version string) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		mcp: server.NewMCPServer(Name, version,
			server.WithToolCapabilities(false),
			server.WithInstructions(instructions),
			server.WithRecovery(),
		),
		catalog: catalog,
		journal: journal,
		logger:  logger,
	}
	for _, op := range catalog.Operations() {
		s.mcp.AddTool(toolFor(op), s.handle(op))
	}
	return s
}

// MCP returns the underlying protocol server.
func (s *Server) MCP() *server.MCPServer { return s.mcp }

func (s *Server) handle(op tools.Operation) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, failed := s.Call(ctx, op.Name, req.GetArguments())
		if failed {
			return mcp.NewToolResultError(text), nil
		}
		return mcp.NewToolResultText(text), nil
	}
}

// Call runs a tool, logs it and journals it when it is not read-only. It
// returns the envelope text and whether it is a failure.
func (s *Server) Call(ctx context.Context, name string, args map[string]any) (string, bool) {
	start := time.Now()
	text := s.catalog.Invoke(ctx, name, args)
	elapsed := time.Since(start)

	failed := envelope.IsFailure(text)
	if failed {
		s.logger.Warn("tool failed", "tool", name, "duration", elapsed, "error", failureMessage(text))
	} else {
		s.logger.Debug("tool call", "tool", name, "duration", elapsed)
	}

	if op, ok := s.catalog.Lookup(name); ok && !op.ReadOnly {
		s.record(name, args, text, failed, elapsed)
	}
	return text, failed
}

// record writes a journal entry. Journal errors are logged and never reach
// the caller.
func (s *Server) record(tool string, args map[string]any, text string, failed bool, elapsed time.Duration) {
	if s.journal == nil {
		return
	}
	if args == nil {
		args = map[string]any{}
	}
	encoded, err := json.Marshal(args)
	if err != nil {
		encoded = []byte("{}")
	}
	call := &store.ToolCall{
		Tool:       tool,
		Arguments:  string(encoded),
		Success:    !failed,
		DurationMS: elapsed.Milliseconds(),
	}
	if failed {
		call.Error = failureMessage(text)
	}
	if err := s.journal.RecordCall(call); err != nil {
		s.logger.Warn("journal write failed", "tool", tool, "error", err)
	}
}

func failureMessage(text string) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal([]byte(text), &body); err != nil {
		return text
	}
	return body.Error
}

// ServeStdio speaks the protocol over in/out until ctx is cancelled or in
// is closed.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))

	s.logger.Info("serving MCP on stdio")
	err := stdio.Listen(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Handler routes /mcp to the streamable HTTP transport and /healthz to a
// liveness probe.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, "ok")
	})
	r.Handle("/mcp", server.NewStreamableHTTPServer(s.mcp))
	return r
}

// ListenAndServe listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	s.logger.Info("serving MCP over streamable HTTP", "addr", addr, "endpoint", "/mcp")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
