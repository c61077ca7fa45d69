package client

import "errors"

var ErrFetch = errors.New("introspection fetch error")
