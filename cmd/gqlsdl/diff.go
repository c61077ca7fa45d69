package main

import (
	"fmt"
	"io"

	"github.com/sdl-format/go-sdl/sdl"
	"github.com/sdl-format/go-sdl/sdldiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: expected two payload files", cli.ErrUsage)
	}
	texts := make([]string, 2)
	for i, file := range args {
		schema, err := cfg.decodeFile(file, cc)
		if err != nil {
			return err
		}
		// diffs never color the SDL itself, only insertions and deletions
		text, err := sdl.Render(schema, cfg.widthOpts()...)
		if err != nil {
			return fmt.Errorf("error rendering %s: %w", file, err)
		}
		texts[i] = text
	}
	if sdldiff.Equal(texts[0], texts[1]) {
		return nil
	}
	diffs := sdldiff.Diff(texts[0], texts[1])
	_, err = io.WriteString(cc.Out, sdldiff.Format(diffs, cfg.useColor(cc.Out)))
	return err
}
