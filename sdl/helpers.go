package sdl

import (
	"strings"

	"github.com/sdl-format/go-sdl/doc"
	"github.com/sdl-format/go-sdl/introspection"
)

// indentDelta is the indent step for block bodies and broken argument lists.
const indentDelta = 2

// withDescription prefixes d with its description block: a triple-quoted
// block for multi-line descriptions, a double-quoted line otherwise.
func withDescription(d *doc.Doc, desc *string) *doc.Doc {
	if desc == nil || *desc == "" {
		return d
	}
	if strings.Contains(*desc, "\n") {
		return doc.Concat(tripleQuoted(*desc), doc.Line(), d)
	}
	return doc.Concat(doc.Classed(doc.ClassString, quote(*desc)), doc.Line(), d)
}

// deprecated suffixes d with deprecation markup. A nil reason renders the
// bare directive.
func deprecated(d *doc.Doc, isDeprecated bool, reason *string) *doc.Doc {
	if !isDeprecated {
		return d
	}
	if reason == nil {
		return doc.Concat(d, doc.Classed(doc.ClassKeyword, " @deprecated"))
	}
	return doc.Concat(d,
		doc.Classed(doc.ClassKeyword, " @deprecated"),
		doc.Text("(reason: "),
		quotedReason(*reason),
		doc.Text(")"),
	)
}

// quotedReason quotes a deprecation reason: one line double-quoted, several
// lines as a triple-quoted block reproducing the line breaks exactly.
func quotedReason(reason string) *doc.Doc {
	trimmed := strings.TrimSpace(reason)
	if !strings.Contains(trimmed, "\n") {
		return doc.Classed(doc.ClassString, quote(trimmed))
	}
	return tripleQuoted(trimmed)
}

// tripleQuoted renders a """-delimited block with each line of v on its own
// line, broken regardless of width.
func tripleQuoted(v string) *doc.Doc {
	parts := []*doc.Doc{doc.Classed(doc.ClassString, `"""`)}
	for _, ln := range strings.Split(v, "\n") {
		parts = append(parts, doc.Line(), doc.Classed(doc.ClassString, ln))
	}
	parts = append(parts, doc.Line(), doc.Classed(doc.ClassString, `"""`))
	return doc.ForceBreak(doc.Concat(parts...))
}

func defaultValue(v *string) *doc.Doc {
	if v == nil {
		return doc.Empty()
	}
	return doc.Concat(doc.Text(" = "), doc.Text(*v))
}

func implementsClause(interfaces []introspection.TypeRef) *doc.Doc {
	if len(interfaces) == 0 {
		return doc.Empty()
	}
	names := make([]string, 0, len(interfaces))
	for i := range interfaces {
		names = append(names, interfaces[i].Named())
	}
	return doc.Concat(
		doc.Classed(doc.ClassKeyword, " implements "),
		doc.Classed(doc.ClassName, strings.Join(names, ", ")),
	)
}

// argumentsClause renders a parenthesized argument list. A list where any
// argument carries a description is forced onto one line per argument; an
// undescribed list inlines when it fits the remaining width.
func argumentsClause(args []introspection.InputValue) (*doc.Doc, error) {
	if len(args) == 0 {
		return doc.Empty(), nil
	}
	described := false
	argDocs := make([]*doc.Doc, 0, len(args))
	for i := range args {
		a := &args[i]
		if a.Description != nil && *a.Description != "" {
			described = true
		}
		d, err := translateArg(a)
		if err != nil {
			return nil, err
		}
		argDocs = append(argDocs, d)
	}
	joined := doc.FoldDoc(argDocs, func(d, acc *doc.Doc) *doc.Doc {
		return doc.Concat(d, doc.Text(","), doc.Line(), acc)
	})
	inner := doc.Concat(
		doc.Text("("),
		doc.Nest(doc.Concat(doc.SoftLine(), joined), indentDelta, doc.NestBreak),
		doc.SoftLine(),
		doc.Text(")"),
	)
	if described {
		return doc.ForceBreak(inner), nil
	}
	return doc.Group(inner), nil
}

// block renders "<keyword> <header> {" with each surviving body document on
// its own indented line. A body whose members were all suppressed still
// renders, with nothing between the braces.
func block(keyword string, header *doc.Doc, body []*doc.Doc) *doc.Doc {
	var kept []*doc.Doc
	for _, d := range body {
		if !d.IsEmpty() {
			kept = append(kept, d)
		}
	}
	head := doc.Concat(
		doc.Classed(doc.ClassKeyword, keyword),
		doc.Text(" "),
		header,
		doc.Text(" {"),
	)
	if len(kept) == 0 {
		return doc.Concat(head, doc.Line(), doc.Text("}"))
	}
	joined := doc.FoldDoc(kept, func(d, acc *doc.Doc) *doc.Doc {
		return doc.Glue(d, doc.Line(), acc)
	})
	return doc.Concat(
		head,
		doc.Nest(doc.Concat(doc.Line(), joined), indentDelta, doc.NestAlways),
		doc.Line(),
		doc.Text("}"),
	)
}

// quote double-quotes v, escaping backslashes and embedded quotes.
func quote(v string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range v {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
