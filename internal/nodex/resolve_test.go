package nodex

import (
	"errors"
	"testing"
)

func TestResolveBinaryEqualShapes(t *testing.T) {
	for _, shape := range []Shape{Scalar, Vector2, Vector3} {
		broadcast, out, err := ResolveBinary(OpAdd, shape, shape)
		if err != nil {
			t.Fatalf("%s: %v", shape, err)
		}
		if broadcast != shape || out != shape {
			t.Errorf("%s: broadcast/out = %s/%s", shape, broadcast, out)
		}
	}
}

func TestResolveBinaryScalarBroadcast(t *testing.T) {
	broadcast, out, err := ResolveBinary(OpMul, Scalar, Vector3)
	if err != nil {
		t.Fatal(err)
	}
	if broadcast != Vector3 || out != Vector3 {
		t.Errorf("broadcast/out = %s/%s, want vector3/vector3", broadcast, out)
	}

	// Symmetric.
	broadcast, _, err = ResolveBinary(OpMul, Vector2, Scalar)
	if err != nil {
		t.Fatal(err)
	}
	if broadcast != Vector2 {
		t.Errorf("broadcast = %s, want vector2", broadcast)
	}
}

func TestResolveBinaryScalarMatrixRejected(t *testing.T) {
	for _, op := range []Operator{OpAdd, OpMul, OpMultiplyMatrix} {
		if _, _, err := ResolveBinary(op, Scalar, Matrix); !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("%s scalar*matrix: err = %v, want ErrDimensionMismatch", op, err)
		}
	}
}

func TestResolveBinaryVectorMismatch(t *testing.T) {
	if _, _, err := ResolveBinary(OpAdd, Vector2, Vector3); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("err = %v, want ErrDimensionMismatch", err)
	}
}

func TestResolveBinaryOutputRules(t *testing.T) {
	_, out, err := ResolveBinary(OpDot, Vector3, Vector3)
	if err != nil {
		t.Fatal(err)
	}
	if out != Scalar {
		t.Errorf("dot out = %s, want scalar", out)
	}

	_, out, err = ResolveBinary(OpCross, Vector3, Vector3)
	if err != nil {
		t.Fatal(err)
	}
	if out != Vector3 {
		t.Errorf("cross out = %s, want vector3", out)
	}

	_, out, err = ResolveBinary(OpEq, Vector3, Vector3)
	if err != nil {
		t.Fatal(err)
	}
	if out != Scalar {
		t.Errorf("eq out = %s, want scalar", out)
	}
}

func TestResolveBinaryVectorMatrixPair(t *testing.T) {
	broadcast, out, err := ResolveBinary(OpMultiplyMatrix, Vector3, Matrix)
	if err != nil {
		t.Fatal(err)
	}
	if broadcast != Vector3 || out != Vector3 {
		t.Errorf("broadcast/out = %s/%s, want vector3/vector3", broadcast, out)
	}

	// The pairing holds in either operand order.
	broadcast, _, err = ResolveBinary(OpMultiplyMatrix, Matrix, Vector3)
	if err != nil {
		t.Fatal(err)
	}
	if broadcast != Vector3 {
		t.Errorf("broadcast = %s, want vector3", broadcast)
	}

	// No other operator accepts the pairing.
	if _, _, err := ResolveBinary(OpAdd, Vector3, Matrix); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("add vector*matrix: err = %v, want ErrDimensionMismatch", err)
	}
}

func TestResolveBinaryOrderingVectorRejected(t *testing.T) {
	for _, op := range []Operator{OpGt, OpGe, OpLt, OpLe} {
		if _, _, err := ResolveBinary(op, Vector3, Vector3); !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("%s on vectors: err = %v, want ErrDimensionMismatch", op, err)
		}
	}
}

func TestResolveBinaryArrayRejected(t *testing.T) {
	if _, _, err := ResolveBinary(OpAdd, Array, Scalar); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("err = %v, want ErrDimensionMismatch", err)
	}
}

func TestResolveShapesFold(t *testing.T) {
	broadcast, out, err := ResolveShapes(OpSum, []Shape{Scalar, Vector3, Scalar})
	if err != nil {
		t.Fatal(err)
	}
	if broadcast != Vector3 || out != Vector3 {
		t.Errorf("broadcast/out = %s/%s, want vector3/vector3", broadcast, out)
	}

	if _, _, err := ResolveShapes(OpSum, []Shape{Vector2, Vector3}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("err = %v, want ErrDimensionMismatch", err)
	}
}

func TestResolveShapesSingle(t *testing.T) {
	broadcast, out, err := ResolveShapes(OpNormalize, []Shape{Vector3})
	if err != nil {
		t.Fatal(err)
	}
	if broadcast != Vector3 || out != Vector3 {
		t.Errorf("broadcast/out = %s/%s", broadcast, out)
	}

	_, out, err = ResolveShapes(OpLength, []Shape{Vector3})
	if err != nil {
		t.Fatal(err)
	}
	if out != Scalar {
		t.Errorf("length out = %s, want scalar", out)
	}

	if _, _, err := ResolveShapes(OpNormalize, []Shape{Scalar}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("normalize scalar: err = %v, want ErrDimensionMismatch", err)
	}
}
