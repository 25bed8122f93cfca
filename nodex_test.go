// Copyright 2026 Nodex Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nodex_test

import (
	"testing"

	"github.com/BigRoy/nodex"
)

// Public surface smoke test; behavior is covered in internal/nodex.
func TestPublicAPI(t *testing.T) {
	backend := nodex.NewMockBackend()
	backend.Declare("pSphere1.translate", nodex.Vector3, nodex.Float)

	g := nodex.NewGraph(backend)
	out, err := g.Add("pSphere1.translate", []float64{0, 1, 0})
	if err != nil {
		t.Fatal(err)
	}
	if out.Shape() != nodex.Vector3 {
		t.Errorf("shape = %s, want vector3", out.Shape())
	}
	if len(backend.Created) != 1 {
		t.Errorf("created = %v", backend.Created)
	}

	if _, _, err := nodex.ResolveBinary(nodex.OpAdd, nodex.Scalar, nodex.Vector3); err != nil {
		t.Errorf("ResolveBinary: %v", err)
	}
	if n := len(nodex.Operators()); n == 0 {
		t.Error("empty operator inventory")
	}
}
