package naming

import (
	"path/filepath"

	"github.com/ncruces/go-strftime"

	"github.com/jwulff/memoexport/internal/db"
)

// Options controls how destination file names are built.
type Options struct {
	DateInName bool
	DateFormat string // strftime pattern, e.g. %Y-%m-%d-%H-%M-%S_
}

// Paths is the resolved source and destination for one recording. Both are
// empty when the recording has no local audio.
type Paths struct {
	Source      string
	Destination string
}

// Empty reports whether the recording had no stored path.
func (p Paths) Empty() bool {
	return p.Source == ""
}

// Resolve computes the absolute source path and the destination path for rec.
// Relative stored paths are joined onto dbDir.
func Resolve(rec db.Recording, dbDir, exportRoot string, opts Options) Paths {
	if rec.StoredPath == "" {
		return Paths{}
	}

	src := rec.StoredPath
	if !filepath.IsAbs(src) {
		src = filepath.Join(dbDir, src)
	}

	return Paths{
		Source:      src,
		Destination: filepath.Join(exportRoot, FileName(rec, filepath.Ext(src), opts)),
	}
}

// FileName returns the destination base name for rec with the given
// extension (including the dot).
func FileName(rec db.Recording, ext string, opts Options) string {
	name := SanitizeLabel(rec.Label) + ext
	if opts.DateInName {
		name = sepReplacer.Replace(strftime.Format(opts.DateFormat, rec.Time())) + name
	}
	// Join would climb out of the export root.
	if name == "." || name == ".." {
		name = Untitled
	}
	return name
}
