package sdl

import (
	"strings"

	"github.com/sdl-format/go-sdl/doc"
	"github.com/sdl-format/go-sdl/introspection"
)

// Translation follows a fixed rule order; the first matching rule wins.
// The order is load-bearing, so the rules are numbered here and referenced
// below rather than left implicit:
//
//	 1. name has prefix "__"   -> empty (introspection-internal)
//	 2. NON_NULL type ref      -> inner "!"
//	 3. LIST type ref          -> "[" inner "]"
//	 4. bare type ref          -> name
//	 5. builtin scalar         -> empty
//	 6. builtin directive      -> empty
//	 7. argument               -> name ": " type [" = " default]
//	 8. field                  -> name [args] ": " type [deprecation]
//	 9. OBJECT                 -> type block, with implements clause
//	10. INPUT_OBJECT           -> input block
//	11. UNION                  -> "union <name> = A | B"
//	12. INTERFACE              -> interface block
//	13. ENUM                   -> enum block
//	14. other SCALAR           -> "scalar <name>"
//	15. other directive        -> "directive @<name> [args] on LOCS"
//
// A node matching no rule is an ErrUnrecognized.

// translateTypeRef covers rules 1-4.
func translateTypeRef(r *introspection.TypeRef) (*doc.Doc, error) {
	switch {
	case r == nil:
		return nil, errNode("type ref", "", "")
	case r.Name != nil && introspection.Internal(*r.Name):
		return doc.Empty(), nil
	case r.Kind == introspection.NonNullKind:
		if r.OfType == nil {
			return nil, errNode("type ref", r.Kind, "")
		}
		inner, err := translateTypeRef(r.OfType)
		if err != nil {
			return nil, err
		}
		return doc.Concat(inner, doc.Text("!")), nil
	case r.Kind == introspection.ListKind:
		if r.OfType == nil {
			return nil, errNode("type ref", r.Kind, "")
		}
		inner, err := translateTypeRef(r.OfType)
		if err != nil {
			return nil, err
		}
		return doc.Concat(doc.Text("["), inner, doc.Text("]")), nil
	case r.Name != nil:
		return doc.Classed(doc.ClassName, *r.Name), nil
	default:
		return nil, errNode("type ref", r.Kind, "")
	}
}

// translateArg covers rule 7 (plus rule 1 on the argument name).
func translateArg(a *introspection.InputValue) (*doc.Doc, error) {
	if introspection.Internal(a.Name) {
		return doc.Empty(), nil
	}
	typ, err := translateTypeRef(&a.Type)
	if err != nil {
		return nil, err
	}
	d := doc.Concat(
		doc.Classed(doc.ClassField, a.Name),
		doc.Text(": "),
		typ,
		defaultValue(a.DefaultValue),
	)
	return withDescription(d, a.Description), nil
}

// translateField covers rule 8 (plus rule 1 on the field name).
func translateField(f *introspection.Field) (*doc.Doc, error) {
	if introspection.Internal(f.Name) {
		return doc.Empty(), nil
	}
	args, err := argumentsClause(f.Args)
	if err != nil {
		return nil, err
	}
	typ, err := translateTypeRef(&f.Type)
	if err != nil {
		return nil, err
	}
	d := doc.Concat(
		doc.Classed(doc.ClassField, f.Name),
		args,
		doc.Text(": "),
		typ,
	)
	d = deprecated(d, f.IsDeprecated, f.DeprecationReason)
	return withDescription(d, f.Description), nil
}

// translateType covers rules 1, 5 and 9-14, dispatching on the type kind.
func translateType(t *introspection.Type) (*doc.Doc, error) {
	if introspection.Internal(t.Name) {
		return doc.Empty(), nil
	}
	switch t.Kind {
	case introspection.ScalarKind:
		if introspection.BuiltinScalar(t.Name) {
			return doc.Empty(), nil
		}
		d := doc.Concat(
			doc.Classed(doc.ClassKeyword, "scalar "),
			doc.Classed(doc.ClassName, t.Name),
		)
		return withDescription(d, t.Description), nil
	case introspection.ObjectKind:
		body, err := translateFields(t.Fields)
		if err != nil {
			return nil, err
		}
		header := doc.Concat(
			doc.Classed(doc.ClassName, t.Name),
			implementsClause(t.Interfaces),
		)
		return withDescription(block("type", header, body), t.Description), nil
	case introspection.InputObjectKind:
		body := make([]*doc.Doc, 0, len(t.InputFields))
		for i := range t.InputFields {
			d, err := translateArg(&t.InputFields[i])
			if err != nil {
				return nil, err
			}
			body = append(body, d)
		}
		header := doc.Classed(doc.ClassName, t.Name)
		return withDescription(block("input", header, body), t.Description), nil
	case introspection.UnionKind:
		names := make([]string, 0, len(t.PossibleTypes))
		for i := range t.PossibleTypes {
			names = append(names, t.PossibleTypes[i].Named())
		}
		d := doc.Concat(
			doc.Classed(doc.ClassKeyword, "union "),
			doc.Classed(doc.ClassName, t.Name),
			doc.Text(" = "),
			doc.Classed(doc.ClassName, strings.Join(names, " | ")),
		)
		return withDescription(d, t.Description), nil
	case introspection.InterfaceKind:
		body, err := translateFields(t.Fields)
		if err != nil {
			return nil, err
		}
		header := doc.Classed(doc.ClassName, t.Name)
		return withDescription(block("interface", header, body), t.Description), nil
	case introspection.EnumKind:
		body := make([]*doc.Doc, 0, len(t.EnumValues))
		for i := range t.EnumValues {
			v := &t.EnumValues[i]
			if introspection.Internal(v.Name) {
				body = append(body, doc.Empty())
				continue
			}
			body = append(body, doc.Classed(doc.ClassField, v.Name))
		}
		header := doc.Classed(doc.ClassName, t.Name)
		return withDescription(block("enum", header, body), t.Description), nil
	default:
		return nil, errNode("type", t.Kind, t.Name)
	}
}

// translateDirective covers rules 1, 6 and 15.
func translateDirective(d *introspection.Directive) (*doc.Doc, error) {
	if introspection.Internal(d.Name) {
		return doc.Empty(), nil
	}
	if introspection.BuiltinDirective(d.Name) {
		return doc.Empty(), nil
	}
	args, err := argumentsClause(d.Args)
	if err != nil {
		return nil, err
	}
	out := doc.Concat(
		doc.Classed(doc.ClassKeyword, "directive "),
		doc.Classed(doc.ClassName, "@"+d.Name),
		args,
		doc.Classed(doc.ClassKeyword, " on "),
		doc.Text(strings.Join(d.Locations, " | ")),
	)
	return withDescription(out, d.Description), nil
}

func translateFields(fields []introspection.Field) ([]*doc.Doc, error) {
	body := make([]*doc.Doc, 0, len(fields))
	for i := range fields {
		d, err := translateField(&fields[i])
		if err != nil {
			return nil, err
		}
		body = append(body, d)
	}
	return body, nil
}
