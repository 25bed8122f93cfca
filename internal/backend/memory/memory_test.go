package memory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BigRoy/nodex/internal/nodex"
)

func TestDeclareAndMetadata(t *testing.T) {
	b := New()
	require.NoError(t, b.DeclareAttribute("pSphere1", "translate", nodex.Vector3, nodex.Float, []float64{0, 1, 0}))

	shape, kind, err := b.AttributeMetadata(nodex.Port{Node: "pSphere1", Attr: "translate"})
	require.NoError(t, err)
	require.Equal(t, nodex.Vector3, shape)
	require.Equal(t, nodex.Float, kind)

	// Compound components resolve as scalars.
	shape, _, err = b.AttributeMetadata(nodex.Port{Node: "pSphere1", Attr: "translateX"})
	require.NoError(t, err)
	require.Equal(t, nodex.Scalar, shape)

	_, _, err = b.AttributeMetadata(nodex.Port{Node: "pSphere1", Attr: "nosuch"})
	require.ErrorIs(t, err, nodex.ErrUnknownAttributeAddress)
	_, _, err = b.AttributeMetadata(nodex.Port{Node: "nosuch", Attr: "translate"})
	require.ErrorIs(t, err, nodex.ErrUnknownAttributeAddress)
}

func TestCreateNodeUniqueNames(t *testing.T) {
	b := New()

	first, err := b.CreateNode("multiplyDivide", "mul1")
	require.NoError(t, err)
	require.Equal(t, "mul1", first)

	second, err := b.CreateNode("multiplyDivide", "mul1")
	require.NoError(t, err)
	require.Equal(t, "mul1_1", second)

	_, err = b.CreateNode("noSuchKind", "x")
	require.ErrorIs(t, err, nodex.ErrBackendNodeCreationFailure)
}

func TestCreateNodeDeclaresSchema(t *testing.T) {
	b := New()
	name, err := b.CreateNode("condition", "cond1")
	require.NoError(t, err)

	shape, kind, err := b.AttributeMetadata(nodex.Port{Node: name, Attr: "outColor"})
	require.NoError(t, err)
	require.Equal(t, nodex.Vector3, shape)
	require.Equal(t, nodex.Float, kind)

	// Color compounds expose R/G/B components.
	port := b.ComponentPort(nodex.Port{Node: name, Attr: "outColor"}, 0)
	require.Equal(t, "outColorR", port.Attr)

	shape, _, err = b.AttributeMetadata(port)
	require.NoError(t, err)
	require.Equal(t, nodex.Scalar, shape)
}

func TestSetStaticValue(t *testing.T) {
	b := New()
	name, err := b.CreateNode("multiplyDivide", "mul1")
	require.NoError(t, err)

	require.NoError(t, b.SetStaticValue(nodex.Port{Node: name, Attr: "input1"}, []float64{1, 2, 3}))
	n, _ := b.Node(name)
	require.Equal(t, []float64{1, 2, 3}, n.Attrs["input1"].Value)

	// A scalar fans across a compound port.
	require.NoError(t, b.SetStaticValue(nodex.Port{Node: name, Attr: "input2"}, []float64{5}))
	require.Equal(t, []float64{5, 5, 5}, n.Attrs["input2"].Value)

	// Wrong widths fail loudly.
	err = b.SetStaticValue(nodex.Port{Node: name, Attr: "operation"}, []float64{1, 2})
	require.ErrorIs(t, err, nodex.ErrBackendNodeCreationFailure)
}

func TestLazyIndexedPorts(t *testing.T) {
	b := New()
	name, err := b.CreateNode("plusMinusAverage", "add1")
	require.NoError(t, err)

	// input3D[0] is not in the schema; assignment declares it as a vector.
	require.NoError(t, b.SetStaticValue(nodex.Port{Node: name, Attr: "input3D[0]"}, []float64{1, 2, 3}))
	shape, _, err := b.AttributeMetadata(nodex.Port{Node: name, Attr: "input3D[0]"})
	require.NoError(t, err)
	require.Equal(t, nodex.Vector3, shape)

	mm, err := b.CreateNode("multMatrix", "mm1")
	require.NoError(t, err)
	require.NoError(t, b.DeclareAttribute("src", "worldMatrix", nodex.Matrix, nodex.Float, nil))
	require.NoError(t, b.Connect(
		nodex.Port{Node: "src", Attr: "worldMatrix"},
		nodex.Port{Node: mm, Attr: "matrixIn[0]"}))
	shape, _, err = b.AttributeMetadata(nodex.Port{Node: mm, Attr: "matrixIn[0]"})
	require.NoError(t, err)
	require.Equal(t, nodex.Matrix, shape)
}

func TestConnectRecords(t *testing.T) {
	b := New()
	require.NoError(t, b.DeclareAttribute("a", "tx", nodex.Scalar, nodex.Float, nil))
	require.NoError(t, b.DeclareAttribute("b", "tx", nodex.Scalar, nodex.Float, nil))

	src := nodex.Port{Node: "a", Attr: "tx"}
	dst := nodex.Port{Node: "b", Attr: "tx"}
	require.NoError(t, b.Connect(src, dst))

	conns := b.Connections()
	require.Len(t, conns, 1)
	require.Equal(t, [2]nodex.Port{src, dst}, conns[0])

	n, _ := b.Node("b")
	require.Equal(t, []nodex.Port{src}, n.Attrs["tx"].Inputs)

	// Unknown source fails before anything is recorded.
	err := b.Connect(nodex.Port{Node: "nosuch", Attr: "tx"}, dst)
	require.ErrorIs(t, err, nodex.ErrUnknownAttributeAddress)
	require.Len(t, b.Connections(), 1)
}

// End to end: dispatch against the in-memory scene.
func TestGraphDispatchOverMemory(t *testing.T) {
	b := New()
	require.NoError(t, b.DeclareAttribute("pSphere1", "translate", nodex.Vector3, nodex.Float, []float64{0, 1, 0}))

	g := nodex.NewGraph(b)
	out, err := g.Add("pSphere1.translate", []float64{1, 0, 0})
	require.NoError(t, err)

	ref, ok := out.Reference()
	require.True(t, ok)
	require.Equal(t, nodex.Vector3, out.Shape())

	node, found := b.Node(ref.Port().Node)
	require.True(t, found)
	require.Equal(t, "plusMinusAverage", node.Kind)
	require.Equal(t, []float64{1}, node.Attrs["operation"].Value)
	require.Equal(t, []float64{1, 0, 0}, node.Attrs["input3D[1]"].Value)

	conns := b.Connections()
	require.Len(t, conns, 1)
	require.Equal(t, nodex.Port{Node: "pSphere1", Attr: "translate"}, conns[0][0])
	require.Equal(t, nodex.Port{Node: ref.Port().Node, Attr: "input3D[0]"}, conns[0][1])
}

func TestGraphConnectOverMemory(t *testing.T) {
	b := New()
	require.NoError(t, b.DeclareAttribute("a", "tx", nodex.Scalar, nodex.Float, nil))
	require.NoError(t, b.DeclareAttribute("b", "scale", nodex.Vector3, nodex.Float, nil))

	g := nodex.NewGraph(b)
	require.NoError(t, g.Connect("a.tx", "b.scale"))
	require.Len(t, b.Connections(), 3)

	err := g.Connect("b.scale", "a.tx")
	require.ErrorIs(t, err, nodex.ErrNonAdaptableConnection)
	require.Len(t, b.Connections(), 3)
}
