package sdl

import (
	"github.com/sdl-format/go-sdl/debug"
	"github.com/sdl-format/go-sdl/doc"
	"github.com/sdl-format/go-sdl/encode"
	"github.com/sdl-format/go-sdl/introspection"
)

// Render translates schema to SDL text: directives first, then types, in
// payload order, suppressed entries dropped, survivors separated by a blank
// line. The result ends in exactly one newline.
//
// Render is pure; concurrent calls need no coordination.
func Render(schema *introspection.Schema, opts ...encode.EncodeOption) (string, error) {
	d, err := Translate(schema)
	if err != nil {
		return "", err
	}
	out, err := encode.String(d, opts...)
	if err != nil {
		return "", err
	}
	return out + "\n", nil
}

// Translate builds the layout document for schema without rendering it.
func Translate(schema *introspection.Schema) (*doc.Doc, error) {
	if schema == nil {
		return nil, ErrNoSchema
	}
	docs := make([]*doc.Doc, 0, len(schema.Directives)+len(schema.Types))
	for i := range schema.Directives {
		dir := &schema.Directives[i]
		d, err := translateDirective(dir)
		if err != nil {
			return nil, err
		}
		if d.IsEmpty() {
			if debug.Translate() {
				debug.Logf("sdl: suppressed directive @%s\n", dir.Name)
			}
			continue
		}
		docs = append(docs, d)
	}
	for i := range schema.Types {
		typ := &schema.Types[i]
		d, err := translateType(typ)
		if err != nil {
			return nil, err
		}
		if d.IsEmpty() {
			if debug.Translate() {
				debug.Logf("sdl: suppressed type %s\n", typ.Name)
			}
			continue
		}
		docs = append(docs, d)
	}
	return doc.FoldDoc(docs, func(d, acc *doc.Doc) *doc.Doc {
		return doc.Glue(d, doc.Text("\n\n"), acc)
	}), nil
}
