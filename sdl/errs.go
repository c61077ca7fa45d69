package sdl

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognized marks an introspection node matching none of the
	// translation rules. Translation fails rather than guess a rendering.
	ErrUnrecognized = errors.New("unrecognized introspection node")

	ErrNoSchema = errors.New("no schema")
)

func errNode(what, kind, name string) error {
	return fmt.Errorf("%w: %s kind=%q name=%q", ErrUnrecognized, what, kind, name)
}
