// Copyright 2026 Nodex Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "nodex").
		WithSynopsis("nodex [-scene file] command [opts]").
		WithDescription("nodex builds math node networks from expressions.").
		WithOpts(opts...).
		WithSubs(
			EvalCommand(cfg),
			SceneCommand(cfg),
			OpsCommand(cfg))
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Env: map[string]any{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "e",
		Description: "bind an expression identifier",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(name=value)"),
	})
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-e name=value]... <expression>...").
		WithDescription("Evaluate expressions, building backend nodes as needed").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return evalMain(cfg, cc, args)
		})
}

func SceneCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SceneConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Command, "scene").
		WithAliases("sc").
		WithSynopsis("scene").
		WithDescription("Dump the scene's nodes, attributes and connections").
		WithRun(func(cc *cli.Context, args []string) error {
			return sceneMain(cfg, cc, args)
		})
}

func OpsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &OpsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Command, "ops").
		WithSynopsis("ops").
		WithDescription("List supported operators and their shape rules").
		WithRun(func(cc *cli.Context, args []string) error {
			return opsMain(cfg, cc, args)
		})
}
