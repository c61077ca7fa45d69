// Package sdldiff reports textual differences between two rendered SDL
// documents.
package sdldiff
