package doc

// Kind discriminates the layout node variants.
type Kind int

const (
	TextKind Kind = iota
	ConcatKind
	LineKind
	NestKind
	GroupKind
	ForceBreakKind
)

func (k Kind) String() string {
	switch k {
	case TextKind:
		return "Text"
	case ConcatKind:
		return "Concat"
	case LineKind:
		return "Line"
	case NestKind:
		return "Nest"
	case GroupKind:
		return "Group"
	case ForceBreakKind:
		return "ForceBreak"
	default:
		return "<unknown>"
	}
}

// NestMode controls when a Nest applies its indent delta.
type NestMode int

const (
	// NestBreak applies the indent only when an enclosing Group or
	// ForceBreak renders broken.
	NestBreak NestMode = iota
	// NestAlways forces the nested content broken and applies the indent.
	NestAlways
)

// Class tags text runs for optional syntax coloring at encode time.
// It has no effect on layout.
type Class int

const (
	ClassNone Class = iota
	ClassKeyword
	ClassName
	ClassField
	ClassString
	ClassPunct
)

// Doc is a single node in a layout document. Values are placed in fields
// depending on the node kind, and must not be mutated after construction:
// the encoder measures subtrees speculatively and relies on the tree being
// persistent.
type Doc struct {
	Kind  Kind
	Text  string   // TextKind
	Class Class    // TextKind
	Flat  string   // LineKind: rendering when the enclosing group is flat
	Docs  []*Doc   // ConcatKind
	Inner *Doc     // NestKind, GroupKind, ForceBreakKind
	Delta int      // NestKind
	Mode  NestMode // NestKind
}

var (
	empty    = &Doc{Kind: TextKind}
	line     = &Doc{Kind: LineKind, Flat: " "}
	softLine = &Doc{Kind: LineKind, Flat: ""}
)

// Empty returns the empty document. Rendering it produces no output.
func Empty() *Doc {
	return empty
}

// IsEmpty reports whether d is the empty document.
func (d *Doc) IsEmpty() bool {
	return d.Kind == TextKind && d.Text == ""
}

// Text returns a document holding a single run of text. The text should not
// contain newlines except as a hard separator between independent documents;
// the encoder resets its column tracking across such newlines but applies no
// indent.
func Text(s string) *Doc {
	if s == "" {
		return empty
	}
	return &Doc{Kind: TextKind, Text: s}
}

// Classed is Text with a coloring class attached.
func Classed(c Class, s string) *Doc {
	return &Doc{Kind: TextKind, Text: s, Class: c}
}

// Line returns the soft line break. It renders as one space when the
// enclosing group is flat, and as a newline plus indent when broken.
func Line() *Doc {
	return line
}

// SoftLine is like Line but renders as nothing when flat. It separates
// bracketing punctuation from grouped content.
func SoftLine() *Doc {
	return softLine
}

// Concat returns the ordered concatenation of docs.
func Concat(docs ...*Doc) *Doc {
	return &Doc{Kind: ConcatKind, Docs: docs}
}

// Glue returns concat(a, sep, b).
func Glue(a, sep, b *Doc) *Doc {
	return Concat(a, sep, b)
}

// Nest indents inner by delta spaces. With NestBreak the indent applies only
// where the content renders broken; NestAlways additionally forces the
// content broken.
func Nest(inner *Doc, delta int, mode NestMode) *Doc {
	return &Doc{Kind: NestKind, Inner: inner, Delta: delta, Mode: mode}
}

// Group marks a fit-or-break decision point: inner renders on one line if it
// fits the remaining width, otherwise every Line in it (outside any nested
// Group) breaks.
func Group(inner *Doc) *Doc {
	return &Doc{Kind: GroupKind, Inner: inner}
}

// ForceBreak renders inner broken unconditionally, skipping the fit check.
func ForceBreak(inner *Doc) *Doc {
	return &Doc{Kind: ForceBreakKind, Inner: inner}
}

// FoldDoc right-folds docs into a single document, applying combine from the
// last element toward the first. Folding no documents yields Empty.
func FoldDoc(docs []*Doc, combine func(d, acc *Doc) *Doc) *Doc {
	n := len(docs)
	if n == 0 {
		return empty
	}
	acc := docs[n-1]
	for i := n - 2; i >= 0; i-- {
		acc = combine(docs[i], acc)
	}
	return acc
}
