// Copyright 2026 Nodex Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package memory

import (
	"github.com/BigRoy/nodex"
	internalmemory "github.com/BigRoy/nodex/internal/backend/memory"
)

// Backend is an in-memory scene graph backend.
//
// It resolves attribute metadata, instantiates the math node vocabulary and
// records values and connections, without an external scene application.
type Backend = internalmemory.Backend

// Node is a named scene object holding attributes.
type Node = internalmemory.Node

// Attribute is one typed slot on a node.
type Attribute = internalmemory.Attribute

// Compile-time check that Backend implements nodex.Backend.
var _ nodex.Backend = (*Backend)(nil)

// New creates an empty in-memory scene.
//
// Example:
//
//	backend := memory.New()
//	g := nodex.NewGraph(backend)
func New() *Backend {
	return internalmemory.New()
}

// LoadScene reads a YAML scene description into a fresh backend.
func LoadScene(path string) (*Backend, error) {
	return internalmemory.LoadScene(path)
}

// LoadSceneBytes parses a YAML scene description into a fresh backend.
func LoadSceneBytes(data []byte) (*Backend, error) {
	return internalmemory.LoadSceneBytes(data)
}
