package introspection

import "errors"

var ErrDecode = errors.New("introspection decode error")
