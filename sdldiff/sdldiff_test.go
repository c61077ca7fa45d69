package sdldiff

import (
	"strings"
	"testing"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func TestEqual(t *testing.T) {
	sdl := "type Query {\n  id: ID\n}\n"
	if !Equal(sdl, sdl) {
		t.Error("identical documents reported unequal")
	}
	if Equal(sdl, "type Query {\n  id: ID!\n}\n") {
		t.Error("differing documents reported equal")
	}
	if !Equal("", "") {
		t.Error("empty documents reported unequal")
	}
}

func TestDiff(t *testing.T) {
	from := "type Query {\n  id: ID\n}\n"
	to := "type Query {\n  id: ID\n  name: String\n}\n"
	diffs := Diff(from, to)
	var inserted, deleted string
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			inserted += d.Text
		case diffpatch.DiffDelete:
			deleted += d.Text
		}
	}
	if !strings.Contains(inserted, "name: String") {
		t.Errorf("inserted = %q, want the new field", inserted)
	}
	if deleted != "" {
		t.Errorf("deleted = %q, want nothing", deleted)
	}
}

func TestFormatMarkers(t *testing.T) {
	diffs := []diffpatch.Diff{
		{Type: diffpatch.DiffEqual, Text: "scalar "},
		{Type: diffpatch.DiffDelete, Text: "Date"},
		{Type: diffpatch.DiffInsert, Text: "DateTime"},
	}
	got := Format(diffs, false)
	want := "scalar [-Date-][+DateTime+]"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	// equal-only diffs format back to the original document
	sdl := "enum Role {\n  ADMIN\n  USER\n}\n"
	if got := Format(Diff(sdl, sdl), false); got != sdl {
		t.Errorf("Format(Diff(x, x)) = %q, want %q", got, sdl)
	}
}
