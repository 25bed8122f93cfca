package exprbuild

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BigRoy/nodex/internal/nodex"
)

func newBuilder(t *testing.T) (*Builder, *nodex.MockBackend) {
	t.Helper()
	backend := nodex.NewMockBackend()
	g := nodex.NewGraph(backend)
	return New(g, nil), backend
}

func requireLiteral(t *testing.T, n nodex.Nodex, want []float64) {
	t.Helper()
	lit, ok := n.Literal()
	require.True(t, ok, "want literal, got %s", n)
	require.Equal(t, want, lit.Components())
}

func TestEvalArithmetic(t *testing.T) {
	b, backend := newBuilder(t)

	out, err := b.Eval("1 + 2 * 3")
	require.NoError(t, err)
	requireLiteral(t, out, []float64{7})

	out, err = b.Eval("[1, 2, 3] + 1")
	require.NoError(t, err)
	requireLiteral(t, out, []float64{2, 3, 4})

	out, err = b.Eval("2 ** 3")
	require.NoError(t, err)
	requireLiteral(t, out, []float64{8})

	out, err = b.Eval("-(1 + 2)")
	require.NoError(t, err)
	requireLiteral(t, out, []float64{-3})

	require.Empty(t, backend.Created, "literal math should not create nodes")
}

func TestEvalFunctions(t *testing.T) {
	b, _ := newBuilder(t)

	out, err := b.Eval("dot([1, 2, 3], [4, 5, 6])")
	require.NoError(t, err)
	requireLiteral(t, out, []float64{32})

	out, err = b.Eval("cross([1, 0, 0], [0, 1, 0])")
	require.NoError(t, err)
	requireLiteral(t, out, []float64{0, 0, 1})

	out, err = b.Eval("clamp(5, 0, 2)")
	require.NoError(t, err)
	requireLiteral(t, out, []float64{2})

	out, err = b.Eval("length([3, 4, 0])")
	require.NoError(t, err)
	requireLiteral(t, out, []float64{5})

	_, err = b.Eval("frobnicate(1)")
	require.ErrorIs(t, err, nodex.ErrUnsupportedInputKind)
}

func TestEvalEnvironment(t *testing.T) {
	b, _ := newBuilder(t)
	b.Bind("a", 2.0)
	b.Bind("v", []float64{1, 2, 3})

	out, err := b.Eval("a * v")
	require.NoError(t, err)
	requireLiteral(t, out, []float64{2, 4, 6})

	_, err = b.Eval("unknown + 1")
	require.ErrorIs(t, err, nodex.ErrUnsupportedInputKind)
}

func TestEvalAttributeAddress(t *testing.T) {
	b, backend := newBuilder(t)
	backend.Declare("pSphere1.translateX", nodex.Scalar, nodex.Float)

	out, err := b.Eval("pSphere1.translateX + 1")
	require.NoError(t, err)

	ref, ok := out.Reference()
	require.True(t, ok)
	require.Equal(t, "add1", ref.Port().Node)
	require.Len(t, backend.Created, 1)
	require.Equal(t, "plusMinusAverage", backend.Created[0].Kind)
	require.Equal(t, []string{"pSphere1.translateX"}, backend.ConnectionsTo("add1.input1D[0]"))
}

func TestEvalConditional(t *testing.T) {
	b, _ := newBuilder(t)

	out, err := b.Eval("2 > 1 ? 10 : 20")
	require.NoError(t, err)
	requireLiteral(t, out, []float64{10})

	out, err = b.Eval("1 == 2 ? 10 : [1, 2, 3]")
	require.NoError(t, err)
	requireLiteral(t, out, []float64{1, 2, 3})

	// Only comparisons carry select branches.
	_, err = b.Eval("true ? 1 : 2")
	require.ErrorIs(t, err, nodex.ErrUnsupportedInputKind)
}

func TestEvalComparisonPredicate(t *testing.T) {
	b, _ := newBuilder(t)

	out, err := b.Eval("3 >= 3")
	require.NoError(t, err)
	require.Equal(t, nodex.Bool, out.Kind())
	requireLiteral(t, out, []float64{1})
}

func TestEvalShapeMismatch(t *testing.T) {
	b, _ := newBuilder(t)
	_, err := b.Eval("[1, 2] + [1, 2, 3]")
	require.ErrorIs(t, err, nodex.ErrDimensionMismatch)
}

func TestEvalEnvironmentShadowsScene(t *testing.T) {
	b, backend := newBuilder(t)
	backend.Declare("a.tx", nodex.Scalar, nodex.Float)
	b.Bind("a", 1.0)

	_, err := b.Eval("a.tx + 1")
	require.ErrorIs(t, err, nodex.ErrUnsupportedInputKind)
}

func TestEvalParseError(t *testing.T) {
	b, _ := newBuilder(t)
	_, err := b.Eval("1 +")
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse expression")
}
