package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/jwulff/memoexport/internal/export"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "/a/b.m4a", 32, "/a/b.m4a"},
		{"exact", "abcde", 5, "abcde"},
		{"keeps tail", "/Users/me/Library/Recordings/file.m4a", 12, ".../file.m4a"},
		{"runes not bytes", "ééééé", 4, "...é"},
		{"tiny width", "abcdef", 2, "ef"},
		{"wide runes by columns", "/録音/会議メモ.m4a", 12, "...メモ.m4a"},
		{"wide rune does not split", "ab会議", 5, "...議"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.width)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
			if n := runewidth.StringWidth(got); n > tt.width {
				t.Errorf("Truncate result is %d columns wide, limit %d", n, tt.width)
			}
		})
	}
}

func sampleRow(status export.Status) export.Row {
	return export.Row{
		Date:        "04.11.2023 07:05:09",
		Duration:    "0:01:05",
		Source:      "/Users/me/Library/Application Support/com.apple.voicememos/Recordings/20231104 070509.m4a",
		Destination: "/Users/me/Voice Memos Export/Standup.m4a",
		Status:      status,
	}
}

func TestFormatRowFixedWidth(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf)

	widths := map[int]bool{}
	for _, s := range []export.Status{export.StatusPrompt, export.StatusSuccess, export.StatusFailed, export.StatusSkipped} {
		line := tbl.FormatRow(sampleRow(s))
		if !strings.HasPrefix(line, "│ ") || !strings.HasSuffix(line, " │") {
			t.Errorf("row not framed: %q", line)
		}
		if !strings.Contains(line, string(s)) {
			t.Errorf("row missing status %q: %q", s, line)
		}
		widths[runewidth.StringWidth(line)] = true
	}
	if len(widths) != 1 {
		t.Errorf("rows have differing widths: %v", widths)
	}

	want := 2 + 19 + 3 + 11 + 3 + 32 + 3 + 60 + 3 + 15 + 2
	for w := range widths {
		if w != want {
			t.Errorf("row width = %d, want %d", w, want)
		}
	}
}

func TestFormatRowFixedWidthWithWideRunes(t *testing.T) {
	tbl := NewTable(&bytes.Buffer{})
	row := sampleRow(export.StatusPrompt)
	row.Source = "/Users/me/Library/録音/" + strings.Repeat("会議メモ", 10) + ".m4a"
	row.Destination = "/Users/me/Voice Memos Export/" + strings.Repeat("週次定例", 20) + ".m4a"

	got := runewidth.StringWidth(tbl.FormatRow(row))
	want := runewidth.StringWidth(tbl.FormatRow(sampleRow(export.StatusPrompt)))
	if got != want {
		t.Errorf("row with wide paths is %d columns, want %d", got, want)
	}
}

func TestFormatRowTruncatesOnlyForDisplay(t *testing.T) {
	tbl := NewTable(&bytes.Buffer{})
	row := sampleRow(export.StatusSuccess)
	line := tbl.FormatRow(row)

	if strings.Contains(line, row.Source) {
		t.Error("long source path should be truncated in the table")
	}
	if !strings.Contains(line, "...") {
		t.Errorf("expected ellipsis in %q", line)
	}
	if !strings.Contains(line, "070509.m4a") {
		t.Errorf("truncation should keep the path tail: %q", line)
	}
	if row.Source != sampleRow(export.StatusSuccess).Source {
		t.Error("FormatRow modified the row")
	}
}

func TestHeaderFooterAlign(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf)
	tbl.Header()
	tbl.WriteRow(sampleRow(export.StatusSkipped))
	tbl.Footer()

	lines := strings.Split(strings.Trim(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "┌─") || !strings.HasPrefix(lines[3], "│ ") || !strings.HasPrefix(lines[4], "└─") {
		t.Errorf("unexpected framing:\n%s", buf.String())
	}
	if !strings.Contains(lines[1], "Old Path") || !strings.Contains(lines[1], "Status") {
		t.Errorf("header = %q", lines[1])
	}

	w := runewidth.StringWidth(lines[0])
	for i, l := range lines {
		if got := runewidth.StringWidth(l); got != w {
			t.Errorf("line %d width = %d, want %d", i, got, w)
		}
	}
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	NewTable(&buf).Summary(export.Summary{Exported: 7, Failed: 2, LogPath: "/out/failed_exports.txt"}, "/out")

	out := buf.String()
	for _, want := range []string{
		"--- SUMMARY ---",
		"Successfully Exported: 7",
		"Failed/Inconsistent:   2",
		"Log file saved at:     /out/failed_exports.txt",
		"Done. Check the folder: /out",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Interrupted") {
		t.Error("complete run should not mention interruption")
	}
}
