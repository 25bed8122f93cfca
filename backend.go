// Copyright 2026 Nodex Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nodex

import (
	internal "github.com/BigRoy/nodex/internal/nodex"
)

// Port addresses one attribute on one backend node.
type Port = internal.Port

// ParsePort splits a "node.attribute" address into a port.
func ParsePort(address string) (Port, error) { return internal.ParsePort(address) }

// Backend is the attribute graph the dispatcher builds against.
type Backend = internal.Backend

// ComponentSuffix returns the conventional suffix for a compound
// component index (X, Y, Z, W, then bracketed indices).
func ComponentSuffix(index int) string { return internal.ComponentSuffix(index) }

// MockBackend is a recording backend for tests.
type MockBackend = internal.MockBackend

// CreatedNode records one node creation on a MockBackend.
type CreatedNode = internal.CreatedNode

// NewMockBackend creates an empty recording backend.
func NewMockBackend() *MockBackend { return internal.NewMockBackend() }
