// Package sdl renders GraphQL introspection results as canonical Schema
// Definition Language text.
//
// # Usage
//
//	schema, err := introspection.Decode(payload)
//	if err != nil {
//	    return err
//	}
//	text, err := sdl.Render(schema)
//
// Rendering suppresses what SDL never re-declares: builtin scalars (String,
// Int, Float, Boolean, ID), builtin directives (skip, include), and every
// name starting with "__". Everything else either renders or fails with
// ErrUnrecognized; nothing is silently dropped or guessed, and a failure
// aborts the whole render with no partial output.
//
// Output targets a 120 column width. Argument lists inline when they fit and
// break one-per-line when they do not, except that a list containing a
// described argument always breaks. Descriptions and multi-line deprecation
// reasons render as quoted lines or triple-quoted blocks.
//
// # Related Packages
//
//   - github.com/sdl-format/go-sdl/introspection - payload model and decoding
//   - github.com/sdl-format/go-sdl/doc - layout documents
//   - github.com/sdl-format/go-sdl/encode - document rendering
package sdl
