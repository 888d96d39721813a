package export

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/jwulff/memoexport/internal/naming"
)

// ErrMissingSource means the recording has no local audio file, which usually
// means it only exists in iCloud.
var ErrMissingSource = errors.New("audio file not found on disk (likely in iCloud)")

// missingSourceReason is the ledger wording for ErrMissingSource.
const missingSourceReason = "Audio file not found on disk (likely in iCloud)"

// OutcomeKind classifies what happened to one recording.
type OutcomeKind int

const (
	Skipped OutcomeKind = iota
	Exported
	Failed
)

func (k OutcomeKind) String() string {
	switch k {
	case Exported:
		return "exported"
	case Failed:
		return "failed"
	default:
		return "skipped"
	}
}

// Outcome is created once per recording and never mutated.
type Outcome struct {
	Kind OutcomeKind
	Err  error // set when Kind is Failed
}

// Reason is the human-readable failure description written to the ledger.
// A missing source is reported in fixed wording without the path.
func (o Outcome) Reason() string {
	switch {
	case o.Err == nil:
		return ""
	case errors.Is(o.Err, ErrMissingSource):
		return missingSourceReason
	}
	return o.Err.Error()
}

// Execute copies the recording's audio to its destination and stamps it with
// mtime. Errors are reported in the Outcome, never returned; there are no
// retries.
func Execute(p naming.Paths, mtime time.Time) Outcome {
	if p.Empty() {
		return Outcome{Kind: Failed, Err: ErrMissingSource}
	}
	if _, err := os.Stat(p.Source); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Outcome{Kind: Failed, Err: fmt.Errorf("%w: %s", ErrMissingSource, p.Source)}
		}
		return Outcome{Kind: Failed, Err: err}
	}
	if err := Copy(p.Source, p.Destination, mtime); err != nil {
		return Outcome{Kind: Failed, Err: err}
	}
	return Outcome{Kind: Exported}
}

// Copy writes src to dst byte for byte, creating or overwriting dst, and then
// sets dst's access and modification times to mtime.
func Copy(src, dst string, mtime time.Time) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	if err := checkDistinct(in, dst); err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy audio: %w", err)
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return fmt.Errorf("sync destination: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close destination: %w", err)
	}

	if err := os.Chtimes(dst, mtime, mtime); err != nil {
		return fmt.Errorf("set modification time: %w", err)
	}
	return nil
}

// checkDistinct refuses to truncate the source onto itself.
func checkDistinct(in *os.File, dst string) error {
	dstInfo, err := os.Stat(dst)
	if err != nil {
		return nil
	}
	srcInfo, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	if os.SameFile(srcInfo, dstInfo) {
		return fmt.Errorf("source and destination are the same file: %s", dst)
	}
	return nil
}
