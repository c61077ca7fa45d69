package encode

import (
	"bytes"

	"github.com/sdl-format/go-sdl/doc"
)

// String renders d at the configured width and returns the result.
func String(d *doc.Doc, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(d, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func MustString(d *doc.Doc, opts ...EncodeOption) string {
	s, err := String(d, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
