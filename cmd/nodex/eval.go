// Copyright 2026 Nodex Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/BigRoy/nodex"
	"github.com/BigRoy/nodex/internal/exprbuild"
)

var (
	exprColor   = color.RGB(128, 216, 236).SprintfFunc()
	resultColor = color.RGB(8, 196, 16).SprintfFunc()
	nodeColor   = color.RGB(196, 168, 128).SprintfFunc()
	errColor    = color.RGB(196, 96, 16).SprintfFunc()
)

func evalMain(cfg *EvalConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("eval: no expressions given")
	}
	color.NoColor = color.NoColor || cfg.NoColor

	backend, err := cfg.loadBackend()
	if err != nil {
		return err
	}
	g := nodex.NewGraph(backend)
	builder := exprbuild.New(g, cfg.Env)

	for _, src := range args {
		out, err := builder.Eval(src)
		if err != nil {
			fmt.Fprintf(cc.Out, "%s: %s\n", exprColor("%s", src), errColor("%v", err))
			return err
		}
		fmt.Fprintf(cc.Out, "%s = %s\n", exprColor("%s", src), resultColor("%s", out))
	}

	if cfg.Nodes {
		printNetwork(cc, backend)
	}
	return nil
}

// printNetwork lists the typed nodes and connections the evaluation built.
func printNetwork(cc *cli.Context, backend sceneBackend) {
	for _, name := range backend.NodeNames() {
		n, _ := backend.Node(name)
		if n.Kind == "" {
			continue
		}
		fmt.Fprintf(cc.Out, "%s (%s)\n", nodeColor("%s", name), n.Kind)
		for _, attr := range n.AttrNames() {
			a := n.Attrs[attr]
			if a.Value == nil {
				continue
			}
			fmt.Fprintf(cc.Out, "  .%s = %v\n", attr, a.Value)
		}
	}
	for _, c := range backend.Connections() {
		fmt.Fprintf(cc.Out, "%s -> %s\n", c[0], c[1])
	}
}
