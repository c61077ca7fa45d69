// Package introspection models GraphQL introspection results.
//
// The types mirror the standard introspection JSON shape (kind, name,
// description, fields, inputFields, interfaces, possibleTypes, enumValues,
// args, type/ofType chains, deprecation markers, defaultValue, locations).
// Decode accepts a raw GraphQL response, a bare data object, or a bare
// schema object, in JSON or YAML.
//
// Values are read-only input to rendering and are never mutated by this
// module.
package introspection
