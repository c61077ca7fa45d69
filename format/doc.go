// Package format names the serializations an introspection payload may
// arrive in.
package format
