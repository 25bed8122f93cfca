// Copyright 2026 Nodex Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/BigRoy/nodex"
	"github.com/BigRoy/nodex/backend/memory"
)

// sceneBackend is the inspection surface both commands print from.
type sceneBackend interface {
	NodeNames() []string
	Node(name string) (*memory.Node, bool)
	Connections() [][2]nodex.Port
}

func sceneMain(cfg *SceneConfig, cc *cli.Context, args []string) error {
	color.NoColor = color.NoColor || cfg.NoColor

	backend, err := cfg.loadBackend()
	if err != nil {
		return err
	}
	for _, name := range backend.NodeNames() {
		n, _ := backend.Node(name)
		kind := n.Kind
		if kind == "" {
			kind = "node"
		}
		fmt.Fprintf(cc.Out, "%s (%s)\n", nodeColor("%s", name), kind)
		for _, attr := range n.AttrNames() {
			a := n.Attrs[attr]
			if a.Shape == nodex.Scalar && a.Value == nil {
				continue
			}
			fmt.Fprintf(cc.Out, "  .%s %s/%s", attr, a.Shape, a.Kind)
			if a.Value != nil {
				fmt.Fprintf(cc.Out, " = %v", a.Value)
			}
			fmt.Fprintln(cc.Out)
		}
	}
	for _, c := range backend.Connections() {
		fmt.Fprintf(cc.Out, "%s -> %s\n", c[0], c[1])
	}
	return nil
}
