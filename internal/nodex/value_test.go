package nodex

import (
	"errors"
	"testing"
)

func newTestGraph() (*Graph, *MockBackend) {
	backend := NewMockBackend()
	return NewGraph(backend), backend
}

func assertLiteral(t *testing.T, n Nodex, shape Shape, kind ValueKind, want []float64) {
	t.Helper()
	lit, ok := n.Literal()
	if !ok {
		t.Fatalf("want literal, got %s", n)
	}
	if n.Shape() != shape {
		t.Errorf("shape = %s, want %s", n.Shape(), shape)
	}
	if n.Kind() != kind {
		t.Errorf("kind = %s, want %s", n.Kind(), kind)
	}
	got := lit.Components()
	if len(got) != len(want) {
		t.Fatalf("components = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("components = %v, want %v", got, want)
		}
	}
}

func TestClassifyScalars(t *testing.T) {
	g, _ := newTestGraph()

	n, err := g.Classify(3)
	if err != nil {
		t.Fatalf("Classify(3): %v", err)
	}
	assertLiteral(t, n, Scalar, Int, []float64{3})

	n, err = g.Classify(2.5)
	if err != nil {
		t.Fatalf("Classify(2.5): %v", err)
	}
	assertLiteral(t, n, Scalar, Float, []float64{2.5})

	n, err = g.Classify(true)
	if err != nil {
		t.Fatalf("Classify(true): %v", err)
	}
	assertLiteral(t, n, Scalar, Bool, []float64{1})
}

func TestClassifySequences(t *testing.T) {
	g, _ := newTestGraph()

	n, err := g.Classify([]float64{1, 2, 3})
	if err != nil {
		t.Fatalf("vector3: %v", err)
	}
	assertLiteral(t, n, Vector3, Float, []float64{1, 2, 3})

	n, err = g.Classify([]int{4, 5})
	if err != nil {
		t.Fatalf("vector2: %v", err)
	}
	assertLiteral(t, n, Vector2, Int, []float64{4, 5})

	identity := make([]float64, 16)
	for i := 0; i < 4; i++ {
		identity[i*4+i] = 1
	}
	n, err = g.Classify(identity)
	if err != nil {
		t.Fatalf("matrix: %v", err)
	}
	if n.Shape() != Matrix {
		t.Errorf("shape = %s, want matrix", n.Shape())
	}

	if _, err := g.Classify([]float64{1, 2, 3, 4}); !errors.Is(err, ErrUnsupportedInputKind) {
		t.Errorf("length 4: err = %v, want ErrUnsupportedInputKind", err)
	}
}

func TestClassifyAddress(t *testing.T) {
	g, backend := newTestGraph()
	backend.Declare("pSphere1.translate", Vector3, Float)

	n, err := g.Classify("pSphere1.translate")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	ref, ok := n.Reference()
	if !ok {
		t.Fatalf("want reference, got %s", n)
	}
	if ref.Port() != (Port{Node: "pSphere1", Attr: "translate"}) {
		t.Errorf("port = %s", ref.Port())
	}
	if n.Shape() != Vector3 || n.Kind() != Float {
		t.Errorf("metadata = %s/%s, want vector3/float", n.Shape(), n.Kind())
	}

	if _, err := g.Classify("nosuch.attr"); !errors.Is(err, ErrUnknownAttributeAddress) {
		t.Errorf("unknown address: err = %v, want ErrUnknownAttributeAddress", err)
	}
	if _, err := g.Classify("noDotHere"); !errors.Is(err, ErrUnsupportedInputKind) {
		t.Errorf("malformed address: err = %v, want ErrUnsupportedInputKind", err)
	}
	if _, err := g.Classify("1bad.attr"); !errors.Is(err, ErrUnsupportedInputKind) {
		t.Errorf("bad identifier: err = %v, want ErrUnsupportedInputKind", err)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	g, _ := newTestGraph()

	first, err := g.Classify([]float64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	second, err := g.Classify(first)
	if err != nil {
		t.Fatal(err)
	}
	assertLiteral(t, second, Vector3, Float, []float64{1, 2, 3})

	third, err := g.Classify(&second)
	if err != nil {
		t.Fatal(err)
	}
	assertLiteral(t, third, Vector3, Float, []float64{1, 2, 3})
}

func TestClassifyMixedSequence(t *testing.T) {
	g, backend := newTestGraph()
	backend.Declare("a.tx", Scalar, Float)

	n, err := g.Classify([]any{1, "a.tx", 2.5})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if !n.IsArray() || n.Len() != 3 {
		t.Fatalf("want array of 3, got %s", n)
	}
	elems := n.Elements()
	if !elems[0].IsLiteral() || !elems[1].IsReference() || !elems[2].IsLiteral() {
		t.Errorf("element variants wrong: %s", n)
	}
	if n.Kind() != Float {
		t.Errorf("array kind = %s, want promoted float", n.Kind())
	}
}

func TestClassifyArrayElementError(t *testing.T) {
	g, _ := newTestGraph()
	_, err := g.Classify([]any{1.0, "unknown.attr"})
	if !errors.Is(err, ErrUnknownAttributeAddress) {
		t.Errorf("err = %v, want ErrUnknownAttributeAddress", err)
	}
}

func TestClassifyUnsupported(t *testing.T) {
	g, _ := newTestGraph()
	if _, err := g.Classify(struct{}{}); !errors.Is(err, ErrUnsupportedInputKind) {
		t.Errorf("err = %v, want ErrUnsupportedInputKind", err)
	}
	if _, err := g.Classify(nil); !errors.Is(err, ErrUnsupportedInputKind) {
		t.Errorf("nil: err = %v, want ErrUnsupportedInputKind", err)
	}
}

func TestPromote(t *testing.T) {
	if Promote(Bool, Int) != Int {
		t.Error("Promote(Bool, Int) != Int")
	}
	if Promote(Int, Float) != Float {
		t.Error("Promote(Int, Float) != Float")
	}
	if Promote(Float, Bool) != Float {
		t.Error("Promote(Float, Bool) != Float")
	}
}
