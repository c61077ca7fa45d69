package sdldiff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff computes the differences between two rendered SDL documents. Both
// inputs are multi-line, so the line-mode speedup is always on.
func Diff(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, true)
	return diffCfg.DiffCleanupSemantic(diffs)
}

// Equal reports whether the two documents have no differences.
func Equal(from, to string) bool {
	for _, d := range Diff(from, to) {
		if d.Type != diffpatch.DiffEqual {
			return false
		}
	}
	return true
}

// Format renders diffs as text. With colored set, deletions are red and
// insertions green; otherwise they are wrapped in [-…-] and [+…+] markers.
func Format(diffs []diffpatch.Diff, colored bool) string {
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		case diffpatch.DiffDelete:
			if colored {
				b.WriteString(color.RedString("%s", d.Text))
			} else {
				b.WriteString("[-" + d.Text + "-]")
			}
		case diffpatch.DiffInsert:
			if colored {
				b.WriteString(color.GreenString("%s", d.Text))
			} else {
				b.WriteString("[+" + d.Text + "+]")
			}
		}
	}
	return b.String()
}
