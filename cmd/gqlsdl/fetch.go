package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sdl-format/go-sdl/client"
	"github.com/sdl-format/go-sdl/introspection"
	"github.com/sdl-format/go-sdl/sdl"

	"github.com/scott-cotton/cli"
)

func (cfg *FetchConfig) headerOpt(_ *cli.Context, a string) (any, error) {
	if !strings.Contains(a, ":") {
		return nil, fmt.Errorf("%w: header %q expected 'key: value'", cli.ErrUsage, a)
	}
	cfg.Headers = append(cfg.Headers, a)
	return a, nil
}

func (cfg *FetchConfig) bearerOpt(_ *cli.Context, a string) (any, error) {
	cfg.Bearer = a
	return a, nil
}

func fetch(cfg *FetchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fetch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: expected one endpoint", cli.ErrUsage)
	}
	endpoint := args[0]
	opts := []client.Option{}
	for _, h := range cfg.Headers {
		key, val, _ := strings.Cut(h, ":")
		opts = append(opts, client.WithHeader(strings.TrimSpace(key), strings.TrimSpace(val)))
	}
	if cfg.Bearer != "" {
		opts = append(opts, client.WithBearerToken(cfg.Bearer))
	}
	theLog.Info("fetching schema", "endpoint", endpoint)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()
	schema, err := client.Fetch(ctx, endpoint, opts...)
	if err != nil {
		return err
	}
	if cfg.Raw {
		return writeRaw(cc.Out, schema)
	}
	text, err := sdl.Render(schema, cfg.encOpts(cc.Out, false)...)
	if err != nil {
		return fmt.Errorf("error rendering %s: %w", endpoint, err)
	}
	_, err = io.WriteString(cc.Out, text)
	return err
}

func writeRaw(w io.Writer, schema *introspection.Schema) error {
	d, err := json.MarshalIndent(&introspection.Data{Schema: schema}, "", "  ")
	if err != nil {
		return err
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}
