// Package markdiff diffs rendered markup line-wise, for comparing two
// documents or two renderings of one document.
package markdiff

import (
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff computes a line-level diff between two rendered documents.
func Diff(from, to string) []diffpatch.Diff {
	cfg := diffpatch.New()
	fromRunes, toRunes, lines := cfg.DiffLinesToRunes(from, to)
	diffs := cfg.DiffMainRunes(fromRunes, toRunes, false)
	return cfg.DiffCharsToLines(diffs, lines)
}

// Equal reports whether the diff contains no insertions or deletions.
func Equal(diffs []diffpatch.Diff) bool {
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			return false
		}
	}
	return true
}

// Format writes the diff in unified-style +/- lines.
func Format(w io.Writer, diffs []diffpatch.Diff, colored bool) error {
	paint := func(s string, _ func(string, ...any) string) string { return s }
	if colored {
		paint = func(s string, f func(string, ...any) string) string { return f("%s", s) }
	}
	for i := range diffs {
		d := &diffs[i]
		prefix, painter := "  ", color.WhiteString
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix, painter = "- ", color.RedString
		case diffpatch.DiffInsert:
			prefix, painter = "+ ", color.GreenString
		}
		for _, line := range splitLines(d.Text) {
			if _, err := io.WriteString(w, paint(prefix+line, painter)+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
