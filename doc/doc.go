// Package doc provides the layout document algebra used to render GraphQL
// SDL text.
//
// # Overview
//
// A Doc is an immutable tree of layout primitives: text runs, soft line
// breaks, concatenation, indentation, and grouping. The tree says nothing
// about the final line structure; it records where breaking is possible
// (Line, SoftLine), where it is mandatory (ForceBreak, NestAlways), and
// where a fit-or-break decision is to be made (Group). The encode package
// renders a Doc to text at a fixed maximum width.
//
// The algebra works as a recursive tagged union, where values are placed in
// fields depending on the node kind.
//
// # Creating Documents
//
// Use constructor functions to create documents:
//
//	d := doc.Concat(
//	    doc.Text("union SearchResult = "),
//	    doc.Text("Photo | Person"),
//	)
//	args := doc.Group(doc.Concat(
//	    doc.Text("("),
//	    doc.Nest(doc.Concat(doc.SoftLine(), inner), 2, doc.NestBreak),
//	    doc.SoftLine(),
//	    doc.Text(")"),
//	))
//
// FoldDoc combines a sequence of documents right to left:
//
//	body := doc.FoldDoc(fields, func(d, acc *doc.Doc) *doc.Doc {
//	    return doc.Glue(d, doc.Line(), acc)
//	})
//
// Folding an empty sequence yields Empty.
//
// # Immutability
//
// Constructors never copy their arguments and rendering never mutates a
// node, so subtrees may be shared freely; Line, SoftLine and Empty are
// package-level singletons. Do not modify a Doc after construction.
//
// # Related Packages
//
//   - github.com/sdl-format/go-sdl/encode - renders documents to text
//   - github.com/sdl-format/go-sdl/sdl - builds documents from introspection data
package doc
