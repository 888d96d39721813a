package naming

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Untitled replaces labels that are missing or sanitize to nothing.
const Untitled = "Untitled"

// printableASCII keeps 0x20-0x7E; everything else is dropped, not replaced.
var dropUnprintable = runes.Remove(runes.Predicate(func(r rune) bool {
	return r < 0x20 || r > 0x7e
}))

var sepReplacer = strings.NewReplacer("/", "_", string(filepath.Separator), "_")

// SanitizeLabel makes a recording label safe to use as a file name. It is
// idempotent.
func SanitizeLabel(label string) string {
	s, _, err := transform.String(dropUnprintable, label)
	if err != nil {
		s = ""
	}
	s = sepReplacer.Replace(s)
	if s == "" {
		return Untitled
	}
	return s
}
