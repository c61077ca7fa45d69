package encode

import (
	"github.com/sdl-format/go-sdl/doc"

	"github.com/fatih/color"
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[doc.Class]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[doc.Class]func(string, ...any) string{},
	}
	colors.Map[doc.ClassKeyword] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[doc.ClassName] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[doc.ClassField] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[doc.ClassString] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[doc.ClassPunct] = color.RGB(255, 0, 196).SprintfFunc()
	return colors
}

func (c *Colors) Color(cls doc.Class, v string) string {
	f, ok := c.Map[cls]
	if !ok {
		f = c.Default
	}
	if f == nil {
		return v
	}
	return f("%s", v)
}

func colorDefault(format string, args ...any) string {
	return color.WhiteString(format, args...)
}
