// Copyright 2026 Nodex Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/BigRoy/nodex"
)

func opsMain(cfg *OpsConfig, cc *cli.Context, args []string) error {
	color.NoColor = color.NoColor || cfg.NoColor
	opColor := color.CyanString

	probe := []nodex.Shape{nodex.Scalar, nodex.Vector2, nodex.Vector3, nodex.Matrix}
	for _, op := range nodex.Operators() {
		var rules []string
		for _, s := range probe {
			if _, out, err := nodex.ResolveShapes(op, []nodex.Shape{s}); err == nil {
				rules = append(rules, fmt.Sprintf("%s->%s", s, out))
			}
		}
		fmt.Fprintf(cc.Out, "%-16s %s\n", opColor("%s", op), strings.Join(rules, "  "))
	}
	return nil
}
