package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/sdl-format/go-sdl/encode"
	"github.com/sdl-format/go-sdl/format"
	"github.com/sdl-format/go-sdl/introspection"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='color SDL output'"`

	J bool `cli:"name=j aliases=json desc='read payloads as json'"`
	Y bool `cli:"name=y aliases=yaml desc='read payloads as yaml'"`

	Width    int
	InFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtOpt() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.InFormat = &f
		return f, nil
	})
}

func (cfg *MainConfig) widthOpt() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: width %q", cli.ErrUsage, v)
		}
		cfg.Width = n
		return n, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// payloadFormat resolves the input serialization: explicit flags win, then
// the file suffix.
func (cfg *MainConfig) payloadFormat(file string) format.Format {
	switch {
	case cfg.InFormat != nil:
		return *cfg.InFormat
	case cfg.Y:
		return format.YAMLFormat
	case cfg.J:
		return format.JSONFormat
	default:
		return format.FromSuffix(file)
	}
}

func (cfg *MainConfig) decodeFile(file string, cc *cli.Context) (*introspection.Schema, error) {
	var r io.Reader = cc.In
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	schema, err := introspection.DecodeFormat(d, cfg.payloadFormat(file))
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return schema, nil
}

func (cfg *MainConfig) widthOpts() []encode.EncodeOption {
	if cfg.Width > 0 {
		return []encode.EncodeOption{encode.Width(cfg.Width)}
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer, forceColor bool) []encode.EncodeOption {
	res := cfg.widthOpts()
	if forceColor || cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor mirrors encOpts for non-SDL output like diffs.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type RenderConfig struct {
	*MainConfig

	Render *cli.Command
}

type FetchConfig struct {
	*MainConfig
	Raw     bool `cli:"name=raw desc='emit the introspection payload instead of SDL'"`
	Headers []string
	Bearer  string
	Timeout time.Duration

	Fetch *cli.Command
}

func (cfg *FetchConfig) timeoutOpt(_ *cli.Context, a string) (any, error) {
	d, err := time.ParseDuration(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Timeout = d
	return d, nil
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}
