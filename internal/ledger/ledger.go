// Package ledger records per-recording export failures in a plain-text log
// inside the export directory and keeps the run's success/failure counters.
//
// The log is truncated once at run start and then reopened in append mode for
// every failure, so an interrupted run still leaves an ordered record of what
// failed up to that point.
package ledger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileName is the log written inside the export directory.
const FileName = "failed_exports.txt"

// headerTimeLayout matches Python's str(datetime.now()) which earlier logs used.
const headerTimeLayout = "2006-01-02 15:04:05.000000"

// Entry is one logged failure.
type Entry struct {
	Date   string
	Memo   string
	Reason string
}

// Line renders the entry as it appears in the log file.
func (e Entry) Line() string {
	return fmt.Sprintf("FAILED: %s | Memo: %s | Reason: %s", e.Date, e.Memo, e.Reason)
}

// Ledger is created once per run. Counters only ever increase.
type Ledger struct {
	path      string
	entries   []Entry
	successes int
	failures  int
}

// Create truncates (or creates) the log in dir and writes the header.
func Create(dir string, startedAt time.Time) (*Ledger, error) {
	path := filepath.Join(dir, FileName)
	header := fmt.Sprintf("Voice Memos Export Log - %s\n%s\n",
		startedAt.Format(headerTimeLayout), strings.Repeat("=", 50))
	if err := os.WriteFile(path, []byte(header), 0o644); err != nil {
		return nil, fmt.Errorf("create failure log: %w", err)
	}
	return &Ledger{path: path}, nil
}

// Path returns the log file path.
func (l *Ledger) Path() string { return l.path }

// Successes returns the number of exported recordings.
func (l *Ledger) Successes() int { return l.successes }

// Failures returns the number of failed recordings.
func (l *Ledger) Failures() int { return l.failures }

// Entries returns a copy of the failures recorded so far.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// RecordSuccess counts one exported recording.
func (l *Ledger) RecordSuccess() {
	l.successes++
}

// RecordFailure counts one failed recording and appends it to the log. The
// failure is counted even when the log write fails; the write error is
// returned so the caller can report it.
func (l *Ledger) RecordFailure(date, memo, reason string) error {
	e := Entry{Date: date, Memo: memo, Reason: oneLine(reason)}
	l.entries = append(l.entries, e)
	l.failures++
	return l.append(e.Line() + "\n")
}

// append opens, writes, syncs, and closes so each entry is durable before the
// next recording is processed.
func (l *Ledger) append(line string) error {
	f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("open failure log: %w", err)
	}
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return fmt.Errorf("write failure log: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync failure log: %w", err)
	}
	return f.Close()
}

// oneLine keeps multi-line error text from breaking the line format.
func oneLine(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "\n", " ")), " ")
}
