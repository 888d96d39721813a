// Package mcpserver exposes the recordings store and the batch export over
// the Model Context Protocol.
package mcpserver

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jwulff/memoexport/internal/config"
	"github.com/jwulff/memoexport/internal/db"
	"github.com/jwulff/memoexport/internal/export"
	"github.com/jwulff/memoexport/internal/ledger"
	"github.com/jwulff/memoexport/internal/logging"
	"github.com/jwulff/memoexport/internal/naming"
	"github.com/jwulff/memoexport/internal/ui"
)

// Tool names.
const (
	ToolList   = "list_recordings"
	ToolExport = "export_recordings"
)

// Server holds the configuration the tools run with. Exports are serialized.
type Server struct {
	cfg config.Config
	log *logging.Logger
	mu  sync.Mutex
	now func() time.Time
}

// New returns a Server for cfg.
func New(cfg config.Config, log *logging.Logger) *Server {
	return &Server{cfg: cfg, log: log, now: time.Now}
}

// MCP builds the protocol server with both tools registered.
func (s *Server) MCP(version string) *server.MCPServer {
	srv := server.NewMCPServer("memoexport", version,
		server.WithToolCapabilities(false),
	)
	srv.AddTool(listTool(), s.handleList)
	srv.AddTool(exportTool(), s.handleExport)
	return srv
}

func listTool() mcp.Tool {
	return mcp.NewTool(ToolList,
		mcp.WithDescription("List Voice Memos recordings with their source file, export destination, and whether the audio is available locally."),
		mcp.WithBoolean("date_in_name",
			mcp.Description("Prefix destination file names with the recording date."),
		),
	)
}

func exportTool() mcp.Tool {
	return mcp.NewTool(ToolExport,
		mcp.WithDescription("Export every recording to the configured export folder without prompting. Failures are logged to failed_exports.txt and do not stop the run."),
		mcp.WithBoolean("date_in_name",
			mcp.Description("Prefix destination file names with the recording date."),
		),
	)
}

// configFor applies per-call arguments over the server config.
func (s *Server) configFor(req mcp.CallToolRequest) config.Config {
	cfg := s.cfg
	cfg.DateInName = req.GetBool("date_in_name", cfg.DateInName)
	return cfg
}

func (s *Server) load(ctx context.Context, cfg config.Config) ([]db.Recording, error) {
	if err := db.CheckReadable(cfg.DBPath); err != nil {
		return nil, fmt.Errorf("%w (grant Full Disk Access to the host application)", err)
	}
	store, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.Recordings(ctx)
}

func (s *Server) handleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := s.configFor(req)
	recs, err := s.load(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(recs) == 0 {
		return mcp.NewToolResultText("No recordings found."), nil
	}

	opts := naming.Options{DateInName: cfg.DateInName, DateFormat: cfg.DateFormat}
	var b strings.Builder
	fmt.Fprintf(&b, "%d recordings\n", len(recs))
	for _, rec := range recs {
		p := naming.Resolve(rec, cfg.DBDir(), cfg.ExportPath, opts)
		state := "missing"
		if !p.Empty() {
			if _, err := os.Stat(p.Source); err == nil {
				state = "present"
			}
		}
		fmt.Fprintf(&b, "%s | %s | %s | %s | %s | %s\n",
			export.DateLabel(rec.Time()), export.DurationLabel(rec.Duration),
			naming.SanitizeLabel(rec.Label), p.Source, p.Destination, state)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleExport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.configFor(req)
	cfg.All = true

	recs, err := s.load(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(recs) == 0 {
		return mcp.NewToolResultText("No recordings found."), nil
	}

	if err := os.MkdirAll(cfg.ExportPath, 0o755); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("create export directory: %v", err)), nil
	}
	l, err := ledger.Create(cfg.ExportPath, s.now())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var buf bytes.Buffer
	tbl := ui.NewTable(&buf)
	tbl.Header()
	summary, runErr := export.NewRunner(cfg, nil, l, tbl, s.log).Run(ctx, recs)
	tbl.Footer()
	tbl.Summary(summary, cfg.ExportPath)

	s.log.Info("MCP export: %d exported, %d failed", summary.Exported, summary.Failed)
	if runErr != nil {
		return mcp.NewToolResultError(fmt.Sprintf("export stopped: %v\n%s", runErr, buf.String())), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}
