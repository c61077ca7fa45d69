package encode

import (
	"io"
	"strings"

	"github.com/sdl-format/go-sdl/debug"
	"github.com/sdl-format/go-sdl/doc"
)

// DefaultWidth is the maximum line width used when no Width option is given.
const DefaultWidth = 120

type EncState struct {
	line, col int
	width     int
	indent    int
	broken    bool

	Color func(doc.Class, string) string
}

// Encode renders d to w. The encoder starts in broken mode: every Line
// outside a fitting Group renders as a newline. Groups re-decide flatness
// from the remaining width at their start column.
func Encode(d *doc.Doc, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		width:  DefaultWidth,
		broken: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	return encode(d, w, es)
}

func encode(d *doc.Doc, w io.Writer, es *EncState) error {
	switch d.Kind {
	case doc.TextKind:
		return writeText(w, es, d.Class, d.Text)
	case doc.LineKind:
		if es.broken {
			return writeNL(w, es)
		}
		return writeText(w, es, doc.ClassNone, d.Flat)
	case doc.ConcatKind:
		for _, dd := range d.Docs {
			if err := encode(dd, w, es); err != nil {
				return err
			}
		}
		return nil
	case doc.NestKind:
		es.indent += d.Delta
		broken := es.broken
		if d.Mode == doc.NestAlways {
			es.broken = true
		}
		err := encode(d.Inner, w, es)
		es.broken = broken
		es.indent -= d.Delta
		return err
	case doc.GroupKind:
		broken := es.broken
		es.broken = !fits(d.Inner, es.width-es.col)
		if debug.Layout() {
			debug.Logf("encode: group at %d:%d broken=%v\n", es.line, es.col, es.broken)
		}
		err := encode(d.Inner, w, es)
		es.broken = broken
		return err
	case doc.ForceBreakKind:
		broken := es.broken
		es.broken = true
		err := encode(d.Inner, w, es)
		es.broken = broken
		return err
	default:
		return errKind(d.Kind)
	}
}

// fits reports whether d, rendered flat, fits in the remaining width. It is
// a pure measurement: nothing is written and no state changes, so a failed
// attempt costs nothing.
func fits(d *doc.Doc, remain int) bool {
	if remain < 0 {
		return false
	}
	return flatWidth(d, remain) <= remain
}

// flatWidth measures d with every Line flattened, giving up with a value
// past budget as soon as the budget is exceeded or a mandatory break is hit.
func flatWidth(d *doc.Doc, budget int) int {
	switch d.Kind {
	case doc.TextKind:
		return len(d.Text)
	case doc.LineKind:
		return len(d.Flat)
	case doc.ConcatKind:
		used := 0
		for _, dd := range d.Docs {
			used += flatWidth(dd, budget-used)
			if used > budget {
				return used
			}
		}
		return used
	case doc.NestKind:
		if d.Mode == doc.NestAlways {
			return budget + 1
		}
		return flatWidth(d.Inner, budget)
	case doc.GroupKind:
		return flatWidth(d.Inner, budget)
	case doc.ForceBreakKind:
		return budget + 1
	default:
		return budget + 1
	}
}

func writeText(w io.Writer, es *EncState, cls doc.Class, v string) error {
	if v == "" {
		return nil
	}
	// Text containing newlines only occurs as a hard separator between
	// top-level documents; the column restarts after it, without indent.
	if i := strings.LastIndexByte(v, '\n'); i >= 0 {
		es.line += strings.Count(v, "\n")
		es.col = len(v) - i - 1
	} else {
		es.col += len(v)
	}
	if es.Color != nil && cls != doc.ClassNone {
		v = es.Color(cls, v)
	}
	return writeString(w, v)
}

func writeNL(w io.Writer, es *EncState) error {
	indentString := strings.Repeat(" ", es.indent)
	if err := writeString(w, "\n"+indentString); err != nil {
		return err
	}
	es.line++
	es.col = len(indentString)
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
