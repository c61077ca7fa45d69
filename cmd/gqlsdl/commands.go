package main

import (
	"time"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtOpt(), "(format)"),
		},
		&cli.Opt{
			Name:        "w",
			Aliases:     []string{"width"},
			Description: "maximum line width (default 120)",
			Type:        cli.NamedFuncOpt(cfg.widthOpt(), "(columns)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "gqlsdl").
		WithSynopsis("gqlsdl [opts] command [opts]").
		WithDescription("gqlsdl renders GraphQL introspection results as SDL.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gqlsdlMain(cfg, cc, args)
		}).
		WithSubs(
			RenderCommand(cfg),
			FetchCommand(cfg),
			DiffCommand(cfg),
			ViewCommand(cfg))
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenderConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("render").
		WithAliases("r").
		WithSynopsis("render [files]").
		WithDescription("render introspection payload files (or stdin) as SDL").
		WithRun(func(cc *cli.Context, args []string) error {
			return render(cfg, cc, args)
		})
	cfg.Render = cmd
	return cmd
}

func FetchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FetchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "H",
			Aliases:     []string{"header"},
			Description: "extra request header, key: value",
			Type:        cli.NamedFuncOpt(cfg.headerOpt, "(key: value)"),
		},
		&cli.Opt{
			Name:        "bearer",
			Description: "authorization bearer token",
			Type:        cli.NamedFuncOpt(cfg.bearerOpt, "(token)"),
		},
		&cli.Opt{
			Name:        "timeout",
			Description: "request timeout (default 30s)",
			Type:        cli.NamedFuncOpt(cfg.timeoutOpt, "(duration)"),
		})
	cfg.Timeout = 30 * time.Second
	cmd := cli.NewCommand("fetch").
		WithAliases("f").
		WithSynopsis("fetch [-H 'key: value']... [-bearer token] <endpoint>").
		WithDescription("fetch a schema from a GraphQL endpoint and render it as SDL").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fetch(cfg, cc, args)
		})
	cfg.Fetch = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <payload-a> <payload-b>").
		WithDescription("render two introspection payloads and diff the SDL").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view SDL in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}
