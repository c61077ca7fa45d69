// Package client fetches GraphQL introspection results over HTTP.
package client
