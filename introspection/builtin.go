package introspection

import "strings"

var builtinScalars = map[string]bool{
	"String":  true,
	"Int":     true,
	"Float":   true,
	"Boolean": true,
	"ID":      true,
}

var builtinDirectives = map[string]bool{
	"skip":    true,
	"include": true,
}

// BuiltinScalar reports whether name is a scalar the SDL never re-declares.
func BuiltinScalar(name string) bool {
	return builtinScalars[name]
}

// BuiltinDirective reports whether name is a directive the SDL never
// re-declares.
func BuiltinDirective(name string) bool {
	return builtinDirectives[name]
}

// Internal reports whether name belongs to the introspection system itself
// ("__schema", "__Type", ...). Internal names never appear in output.
func Internal(name string) bool {
	return strings.HasPrefix(name, "__")
}
