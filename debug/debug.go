package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Translate bool
	Layout    bool
	Fetch     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Translate = boolEnv("SDL_DEBUG_TRANSLATE")
	d.Layout = boolEnv("SDL_DEBUG_LAYOUT")
	d.Fetch = boolEnv("SDL_DEBUG_FETCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Translate() bool {
	return d.Translate
}
func Layout() bool {
	return d.Layout
}
func Fetch() bool {
	return d.Fetch
}
