package main

import (
	"fmt"
	"io"

	"github.com/sdl-format/go-sdl/sdl"

	"github.com/scott-cotton/cli"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	return renderFiles(cfg.MainConfig, cc, args, false)
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return renderFiles(cfg.MainConfig, cc, args, true)
}

func renderFiles(cfg *MainConfig, cc *cli.Context, files []string, forceColor bool) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		if err := renderFile(cfg, cc, file, cc.Out, forceColor); err != nil {
			return err
		}
	}
	return nil
}

func renderFile(cfg *MainConfig, cc *cli.Context, file string, w io.Writer, forceColor bool) error {
	schema, err := cfg.decodeFile(file, cc)
	if err != nil {
		return err
	}
	text, err := sdl.Render(schema, cfg.encOpts(w, forceColor)...)
	if err != nil {
		return fmt.Errorf("error rendering %s: %w", file, err)
	}
	_, err = io.WriteString(w, text)
	return err
}
