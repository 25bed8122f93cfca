// Copyright 2026 Nodex Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/BigRoy/nodex/backend/memory"
)

type MainConfig struct {
	Scene   string `cli:"name=scene aliases=s desc='YAML scene file to evaluate against'"`
	NoColor bool   `cli:"name=no-color desc='disable colored output'"`

	Main *cli.Command
}

// loadBackend opens the configured scene, or an empty one.
func (cfg *MainConfig) loadBackend() (*memory.Backend, error) {
	if cfg.Scene == "" {
		return memory.New(), nil
	}
	return memory.LoadScene(cfg.Scene)
}

type EvalConfig struct {
	*MainConfig
	Eval *cli.Command

	Nodes bool `cli:"name=nodes aliases=n desc='print created nodes and connections'"`

	Env map[string]any
}

type SceneConfig struct {
	*MainConfig
	Command *cli.Command
}

type OpsConfig struct {
	*MainConfig
	Command *cli.Command
}

// envOptTypeFunc parses one "-e name=value" binding. Values are a number,
// a comma-separated component list or an attribute address.
func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		name, raw, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("binding %q: want name=value", a)
		}
		env[name] = parseEnvValue(raw)
		return 0, nil
	}
}

func parseEnvValue(raw string) any {
	parts := strings.Split(raw, ",")
	comps := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return raw // not numeric, keep as attribute address
		}
		comps = append(comps, f)
	}
	if len(comps) == 1 {
		return comps[0]
	}
	return comps
}
