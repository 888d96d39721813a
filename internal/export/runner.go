package export

import (
	"context"
	"time"

	"github.com/jwulff/memoexport/internal/config"
	"github.com/jwulff/memoexport/internal/db"
	"github.com/jwulff/memoexport/internal/ledger"
	"github.com/jwulff/memoexport/internal/logging"
	"github.com/jwulff/memoexport/internal/naming"
)

// Summary is the result of one run.
type Summary struct {
	Total       int
	Processed   int
	Exported    int
	Failed      int
	Skipped     int
	LogPath     string
	Interrupted bool
}

// Runner processes recordings sequentially.
type Runner struct {
	Config config.Config
	Engine Engine
	Ledger *ledger.Ledger
	Out    Presenter
	Log    *logging.Logger
}

// NewRunner wires a Runner for cfg. keys may be nil in batch mode.
func NewRunner(cfg config.Config, keys KeyReader, l *ledger.Ledger, out Presenter, log *logging.Logger) *Runner {
	return &Runner{
		Config: cfg,
		Engine: Engine{Interactive: cfg.Interactive(), Keys: keys},
		Ledger: l,
		Out:    out,
		Log:    log,
	}
}

// Run processes recs in order. It returns early only when ctx is cancelled
// between recordings or the key reader fails; per-recording failures are
// recorded and the loop continues.
func (r *Runner) Run(ctx context.Context, recs []db.Recording) (Summary, error) {
	s := Summary{Total: len(recs), LogPath: r.Ledger.Path()}
	opts := naming.Options{DateInName: r.Config.DateInName, DateFormat: r.Config.DateFormat}

	var runErr error
	for _, rec := range recs {
		if err := ctx.Err(); err != nil {
			r.Log.Warn("Interrupted")
			s.Interrupted = true
			runErr = err
			break
		}

		paths := naming.Resolve(rec, r.Config.DBDir(), r.Config.ExportPath, opts)
		if err := r.process(ctx, rec, paths, &s); err != nil {
			s.Interrupted = true
			runErr = err
			break
		}
		s.Processed++
	}

	s.Exported = r.Ledger.Successes()
	s.Failed = r.Ledger.Failures()
	return s, runErr
}

func (r *Runner) process(ctx context.Context, rec db.Recording, paths naming.Paths, s *Summary) error {
	when := rec.Time()
	row := Row{
		Date:        DateLabel(when),
		Duration:    DurationLabel(rec.Duration),
		Source:      paths.Source,
		Destination: paths.Destination,
	}

	decision, key, err := r.Engine.Decide(ctx, r.Out.FormatRow(row.WithStatus(StatusPrompt)))
	if err != nil {
		return err
	}

	switch {
	case decision == Export:
		out := Execute(paths, time.Unix(when.Unix(), 0))
		if out.Kind == Exported {
			r.Ledger.RecordSuccess()
			r.Log.Debug("Exported %s -> %s", paths.Source, paths.Destination)
			r.Out.WriteRow(row.WithStatus(StatusSuccess))
			return nil
		}
		label := naming.SanitizeLabel(rec.Label)
		if err := r.Ledger.RecordFailure(row.Date, label, out.Reason()); err != nil {
			r.Log.Error("Cannot write failure log: %v", err)
		}
		r.Log.Debug("Failed %q: %v", label, out.Err)
		r.Out.WriteRow(row.WithStatus(StatusFailed))

	case key == KeyEscape:
		s.Skipped++
		r.Out.WriteRow(row.WithStatus(StatusSkipped))

	default:
		// Unrecognized key: skipped without a row, the prompt line is replaced.
		s.Skipped++
		r.Log.Debug("Skipped %s on unrecognized key", row.Date)
	}
	return nil
}
