package export

import (
	"fmt"
	"time"
)

// Status is the text shown in a row's status column.
type Status string

const (
	StatusPrompt  Status = "Export?"
	StatusSuccess Status = "Success!"
	StatusFailed  Status = "FAILED (Logged)"
	StatusSkipped Status = "Skipped"
)

// Row is everything the presentation layer needs for one recording. Paths are
// full; shortening them for display is the presenter's job.
type Row struct {
	Date        string
	Duration    string
	Source      string
	Destination string
	Status      Status
}

// WithStatus returns a copy of r with the given status.
func (r Row) WithStatus(s Status) Row {
	r.Status = s
	return r
}

// Presenter renders rows. FormatRow is used for the interactive prompt line,
// WriteRow for a row's final state.
type Presenter interface {
	FormatRow(Row) string
	WriteRow(Row)
}

// DateLabel formats a recording time for the table and the failure log.
func DateLabel(t time.Time) string {
	return t.Format("02.01.2006 15:04:05")
}

// DurationLabel renders seconds as H:MM:SS, with a "N day(s), " prefix past a
// day. Fractions of a second are dropped.
func DurationLabel(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int64(seconds)
	days := total / 86400
	total %= 86400
	hms := fmt.Sprintf("%d:%02d:%02d", total/3600, total%3600/60, total%60)
	switch {
	case days == 1:
		return "1 day, " + hms
	case days > 1:
		return fmt.Sprintf("%d days, %s", days, hms)
	}
	return hms
}
