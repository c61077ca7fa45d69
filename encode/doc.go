// Package encode renders layout documents to text.
//
// # Usage
//
//	d := doc.Group(doc.Concat(
//	    doc.Text("("),
//	    doc.Nest(doc.Concat(doc.SoftLine(), args), 2, doc.NestBreak),
//	    doc.SoftLine(),
//	    doc.Text(")"),
//	))
//	out, err := encode.String(d, encode.Width(120))
//
// Each Group renders flat if its flattened form fits the remaining width at
// the group's start column, and broken otherwise. The fit check is a pure
// measurement over the persistent doc tree, so attempting it has no side
// effects.
//
// # Related Packages
//
//   - github.com/sdl-format/go-sdl/doc - document representation
//   - github.com/sdl-format/go-sdl/sdl - SDL translation built on documents
package encode
