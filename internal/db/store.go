package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrPermissionDenied is returned by CheckReadable when the database file
// cannot be opened for reading.
var ErrPermissionDenied = errors.New("no permission to read the database")

// Store provides read-only access to the Voice Memos SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// DefaultDBPath returns the default database path.
func DefaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "Library", "Application Support",
		"com.apple.voicememos", "Recordings", "CloudRecordings.db")
}

// CheckReadable verifies that path can be opened for reading. Any failure,
// including a missing file, is reported as ErrPermissionDenied since on macOS
// an unreadable container usually means Full Disk Access is not granted.
func CheckReadable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	}
	return f.Close()
}

// Open opens the database in read-only mode.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Dir returns the directory containing the database file. Relative ZPATH
// values are resolved against it.
func (s *Store) Dir() string {
	return filepath.Dir(s.path)
}

// Recordings returns every recording ordered by ZDATE ascending.
func (s *Store) Recordings(ctx context.Context) ([]Recording, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT ZDATE, ZDURATION, ZCUSTOMLABEL, ZPATH
		FROM ZCLOUDRECORDING
		ORDER BY ZDATE
	`)
	if err != nil {
		return nil, fmt.Errorf("query recordings: %w", err)
	}
	defer rows.Close()

	var recs []Recording
	for rows.Next() {
		var r Recording
		var date, duration sql.NullFloat64
		var label, path sql.NullString
		if err := rows.Scan(&date, &duration, &label, &path); err != nil {
			return nil, fmt.Errorf("scan recording: %w", err)
		}
		r.Timestamp = date.Float64
		r.Duration = duration.Float64
		if label.Valid {
			r.Label = label.String
		}
		if path.Valid {
			r.StoredPath = path.String
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}
