package encode

import (
	"errors"
	"fmt"

	"github.com/sdl-format/go-sdl/doc"
)

var ErrEncoding = errors.New("encoding error")

func errKind(k doc.Kind) error {
	return fmt.Errorf("%w: unknown doc kind %s", ErrEncoding, k)
}
