// Command memoexport-mcp serves the Voice Memos export tools over MCP on
// stdio. Configuration comes from the config file and MEMOEXPORT_* variables.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/jwulff/memoexport/internal/config"
	"github.com/jwulff/memoexport/internal/logging"
	"github.com/jwulff/memoexport/internal/mcpserver"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	var configPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/memoexport/config.yml)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("memoexport-mcp %s\n", version)
		return
	}

	cfg, err := config.LoadEnv(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// stdout is the protocol stream; diagnostics go to stderr.
	log := logging.New(os.Stderr, cfg.Verbose)
	log.Info("Serving %s (export to %s)", cfg.DBPath, cfg.ExportPath)

	if err := server.ServeStdio(mcpserver.New(cfg, log).MCP(version)); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}
