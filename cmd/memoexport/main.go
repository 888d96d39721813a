// Command memoexport copies Voice Memos recordings out of the macOS library
// into a folder, renaming them after their labels and keeping their original
// dates. Each recording is confirmed with Enter (Esc skips) unless --all is set.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/jwulff/memoexport/internal/config"
	"github.com/jwulff/memoexport/internal/db"
	"github.com/jwulff/memoexport/internal/export"
	"github.com/jwulff/memoexport/internal/ledger"
	"github.com/jwulff/memoexport/internal/logging"
	"github.com/jwulff/memoexport/internal/prompt"
	"github.com/jwulff/memoexport/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "memoexport: %v\n", err)
		return 2
	}

	log := logging.New(os.Stderr, cfg.Verbose)
	if cfg.ConfigPath != "" {
		log.Debug("Config: %s", cfg.ConfigPath)
	}

	if err := db.CheckReadable(cfg.DBPath); err != nil {
		fmt.Println("CRITICAL ERROR: No permission to read the database.")
		fmt.Println("Please grant Terminal 'Full Disk Access' in System Preferences.")
		log.Debug("%v", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recs, err := loadRecordings(ctx, cfg.DBPath)
	if err != nil {
		log.Error("Database error: %v", err)
		return 1
	}
	if len(recs) == 0 {
		return 0
	}

	var keys export.KeyReader
	if cfg.Interactive() {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			log.Error("stdin is not a terminal; rerun with --all to export without prompting")
			return 1
		}
		reader := prompt.New(os.Stdin, os.Stdout)
		defer reader.Close()
		keys = reader
	}

	if err := os.MkdirAll(cfg.ExportPath, 0o755); err != nil {
		log.Error("Cannot create export directory: %v", err)
		return 1
	}

	l, err := ledger.Create(cfg.ExportPath, time.Now())
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	tbl := ui.NewTable(os.Stdout)
	tbl.Header()
	summary, runErr := export.NewRunner(cfg, keys, l, tbl, log).Run(ctx, recs)
	tbl.Footer()
	tbl.Summary(summary, cfg.ExportPath)

	if runErr != nil {
		if errors.Is(runErr, prompt.ErrInterrupted) || errors.Is(runErr, context.Canceled) {
			return 130
		}
		log.Error("%v", runErr)
		return 1
	}

	if !cfg.NoFinder {
		if err := openFolder(cfg.ExportPath); err != nil {
			log.Warn("Cannot open %s: %v", cfg.ExportPath, err)
		}
	}
	return 0
}

func loadRecordings(ctx context.Context, path string) ([]db.Recording, error) {
	store, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.Recordings(ctx)
}
