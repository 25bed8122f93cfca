package nodex

import (
	"errors"
	"testing"
)

func TestConnectEqualShapes(t *testing.T) {
	g, backend := newTestGraph()
	backend.Declare("a.v", Vector3, Float)
	backend.Declare("b.v", Vector3, Float)

	if err := g.Connect("a.v", "b.v"); err != nil {
		t.Fatal(err)
	}
	if got := backend.ConnectionsTo("b.v"); len(got) != 1 || got[0] != "a.v" {
		t.Errorf("connections = %v", got)
	}
}

func TestConnectScalarFanOut(t *testing.T) {
	g, backend := newTestGraph()
	backend.Declare("a.tx", Scalar, Float)
	backend.Declare("b.v", Vector3, Float)

	if err := g.Connect("a.tx", "b.v"); err != nil {
		t.Fatal(err)
	}
	if len(backend.Connections) != 3 {
		t.Fatalf("connections = %v, want exactly 3", backend.Connections)
	}
	for _, comp := range []string{"X", "Y", "Z"} {
		if got := backend.ConnectionsTo("b.v" + comp); len(got) != 1 || got[0] != "a.tx" {
			t.Errorf("component %s connections = %v", comp, got)
		}
	}
}

func TestConnectTruncationRejected(t *testing.T) {
	g, backend := newTestGraph()
	backend.Declare("a.v", Vector3, Float)
	backend.Declare("b.tx", Scalar, Float)
	backend.Declare("b.uv", Vector2, Float)

	err := g.Connect("a.v", "b.tx")
	if !errors.Is(err, ErrNonAdaptableConnection) {
		t.Errorf("vector3->scalar: err = %v, want ErrNonAdaptableConnection", err)
	}
	err = g.Connect("a.v", "b.uv")
	if !errors.Is(err, ErrNonAdaptableConnection) {
		t.Errorf("vector3->vector2: err = %v, want ErrNonAdaptableConnection", err)
	}
	// Nothing was wired before the failure.
	if len(backend.Connections) != 0 {
		t.Errorf("connections = %v, want none", backend.Connections)
	}
}

func TestConnectWideningMismatch(t *testing.T) {
	g, backend := newTestGraph()
	backend.Declare("a.uv", Vector2, Float)
	backend.Declare("b.v", Vector3, Float)

	if err := g.Connect("a.uv", "b.v"); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("vector2->vector3: err = %v, want ErrDimensionMismatch", err)
	}
}

func TestConnectLiteralAssigns(t *testing.T) {
	g, backend := newTestGraph()
	backend.Declare("b.v", Vector3, Float)

	if err := g.Connect([]float64{1, 2, 3}, "b.v"); err != nil {
		t.Fatal(err)
	}
	if got := backend.Static["b.v"]; len(got) != 3 || got[1] != 2 {
		t.Errorf("static = %v", got)
	}
	if len(backend.Connections) != 0 {
		t.Errorf("connections = %v, want none", backend.Connections)
	}
}

func TestConnectScalarLiteralFanOut(t *testing.T) {
	g, backend := newTestGraph()
	backend.Declare("b.v", Vector3, Float)

	if err := g.Connect(5, "b.v"); err != nil {
		t.Fatal(err)
	}
	for _, comp := range []string{"X", "Y", "Z"} {
		if got := backend.Static["b.v"+comp]; len(got) != 1 || got[0] != 5 {
			t.Errorf("component %s static = %v", comp, got)
		}
	}
}

func TestConnectArray(t *testing.T) {
	g, backend := newTestGraph()
	backend.Declare("a.tx", Scalar, Float)
	backend.Declare("b.v", Vector3, Float)

	if err := g.Connect([]any{1.0, "a.tx", 2.0}, "b.v"); err != nil {
		t.Fatal(err)
	}
	if got := backend.Static["b.vX"]; len(got) != 1 || got[0] != 1 {
		t.Errorf("b.vX = %v", got)
	}
	if got := backend.ConnectionsTo("b.vY"); len(got) != 1 || got[0] != "a.tx" {
		t.Errorf("b.vY connections = %v", got)
	}
	if got := backend.Static["b.vZ"]; len(got) != 1 || got[0] != 2 {
		t.Errorf("b.vZ = %v", got)
	}
}

func TestConnectArrayLengthMismatch(t *testing.T) {
	g, backend := newTestGraph()
	backend.Declare("a.tx", Scalar, Float)
	backend.Declare("b.v", Vector3, Float)

	err := g.Connect([]any{1.0, "a.tx"}, "b.v")
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("err = %v, want ErrDimensionMismatch", err)
	}
}

func TestConnectTargetNotAttribute(t *testing.T) {
	g, _ := newTestGraph()
	if err := g.Connect(1.0, 2.0); !errors.Is(err, ErrUnsupportedInputKind) {
		t.Errorf("err = %v, want ErrUnsupportedInputKind", err)
	}
}
