// Package logging provides leveled diagnostic output. Everything goes to one
// writer (stderr in practice) because stdout carries the export table.
package logging

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Level colors, matching the ui palette.
var (
	colorCyan   = lipgloss.Color("#00FFFF")
	colorYellow = lipgloss.Color("#FFFF00")
	colorRed    = lipgloss.Color("#FF0000")
	colorGray   = lipgloss.Color("#666666")
)

// Logger writes timestamped, leveled lines. Colors are applied only when the
// writer is a terminal that supports them.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool

	info, warn, errs, debug lipgloss.Style
}

// New returns a Logger writing to out. Debug lines are dropped unless
// verbose is set.
func New(out io.Writer, verbose bool) *Logger {
	r := lipgloss.NewRenderer(out)
	return &Logger{
		out:     out,
		verbose: verbose,
		info:    r.NewStyle().Foreground(colorCyan),
		warn:    r.NewStyle().Foreground(colorYellow).Bold(true),
		errs:    r.NewStyle().Foreground(colorRed).Bold(true),
		debug:   r.NewStyle().Foreground(colorGray),
	}
}

// Discard returns a Logger that writes nowhere.
func Discard() *Logger {
	return New(io.Discard, false)
}

func (l *Logger) line(level string, style lipgloss.Style, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, ts+" "+style.Render("["+level+"]")+" "+text+"\n")
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...any) {
	l.line("INFO", l.info, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...any) {
	l.line("WARN", l.warn, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level.
func (l *Logger) Error(format string, args ...any) {
	l.line("ERROR", l.errs, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level when verbose; no-op otherwise.
func (l *Logger) Debug(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", l.debug, fmt.Sprintf(format, args...))
}
