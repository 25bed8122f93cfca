// Package memory implements the nodex backend against an in-memory scene
// graph. It backs the CLI and integration tests; nothing persists.
package memory

import (
	"fmt"
	"strings"

	"github.com/BigRoy/nodex/internal/nodex"
)

// Verify that Backend implements nodex.Backend.
var _ nodex.Backend = (*Backend)(nil)

// Attribute is one typed slot on a node.
type Attribute struct {
	Name   string
	Shape  nodex.Shape
	Kind   nodex.ValueKind
	Value  []float64
	Inputs []nodex.Port // incoming connections

	comps  []string // component attribute names, if compound
	parent string   // owning compound, if this is a component
}

// Node is a named scene object holding attributes.
type Node struct {
	Name  string
	Kind  string // empty for plain scene nodes
	Attrs map[string]*Attribute
	order []string
}

func (n *Node) attr(name string) *Attribute { return n.Attrs[name] }

func (n *Node) addAttr(a *Attribute) {
	n.Attrs[a.Name] = a
	n.order = append(n.order, a.Name)
}

// AttrNames returns the node's attribute names in declaration order.
func (n *Node) AttrNames() []string {
	return append([]string(nil), n.order...)
}

// Backend is an in-memory scene graph.
type Backend struct {
	nodes map[string]*Node
	names []string // creation order
	conns [][2]nodex.Port
}

// New creates an empty scene.
func New() *Backend {
	return &Backend{nodes: map[string]*Node{}}
}

// AddNode declares a plain scene node and returns it.
func (b *Backend) AddNode(name string) *Node {
	n := &Node{Name: name, Attrs: map[string]*Attribute{}}
	b.nodes[name] = n
	b.names = append(b.names, name)
	return n
}

// DeclareAttribute adds a typed attribute (with component children for
// compounds) to a scene node, creating the node as needed.
func (b *Backend) DeclareAttribute(node, attr string, shape nodex.Shape, kind nodex.ValueKind, value []float64) error {
	n, ok := b.nodes[node]
	if !ok {
		n = b.AddNode(node)
	}
	if n.attr(attr) != nil {
		return fmt.Errorf("attribute %s.%s already declared", node, attr)
	}
	schema := attrSchema{name: attr, shape: shape, kind: kind}
	if shape == nodex.Vector2 || shape == nodex.Vector3 {
		for i := 0; i < shape.Components(); i++ {
			schema.comps = append(schema.comps, attr+nodex.ComponentSuffix(i))
		}
	}
	declareFromSchema(n, schema)
	if value != nil {
		if len(value) != expectedLen(shape, len(value)) {
			return fmt.Errorf("attribute %s.%s: %d components for %s", node, attr, len(value), shape)
		}
		n.attr(attr).Value = append([]float64(nil), value...)
	}
	return nil
}

func expectedLen(shape nodex.Shape, got int) int {
	if n := shape.Components(); n >= 0 {
		return n
	}
	return got // Array attributes take whatever length was declared
}

func declareFromSchema(n *Node, schema attrSchema) {
	a := &Attribute{Name: schema.name, Shape: schema.shape, Kind: schema.kind, comps: schema.comps}
	n.addAttr(a)
	for _, comp := range schema.comps {
		n.addAttr(&Attribute{Name: comp, Shape: nodex.Scalar, Kind: schema.kind, parent: schema.name})
	}
}

// Node returns a scene node by name.
func (b *Backend) Node(name string) (*Node, bool) {
	n, ok := b.nodes[name]
	return n, ok
}

// NodeNames returns all node names in creation order.
func (b *Backend) NodeNames() []string {
	return append([]string(nil), b.names...)
}

// Connections returns every connection in creation order.
func (b *Backend) Connections() [][2]nodex.Port {
	return append([][2]nodex.Port(nil), b.conns...)
}

// AttributeMetadata resolves a declared attribute or compound component.
func (b *Backend) AttributeMetadata(port nodex.Port) (nodex.Shape, nodex.ValueKind, error) {
	a, err := b.resolve(port, false)
	if err != nil {
		return 0, 0, err
	}
	return a.Shape, a.Kind, nil
}

// CreateNode instantiates a node of a known kind under a unique name.
func (b *Backend) CreateNode(kind, name string) (string, error) {
	schema, ok := kindSchemas[kind]
	if !ok {
		return "", fmt.Errorf("%w: unknown node kind %q", nodex.ErrBackendNodeCreationFailure, kind)
	}
	unique := name
	for i := 1; ; i++ {
		if _, taken := b.nodes[unique]; !taken {
			break
		}
		unique = fmt.Sprintf("%s_%d", name, i)
	}
	n := b.AddNode(unique)
	n.Kind = kind
	for _, a := range schema.attrs {
		declareFromSchema(n, a)
	}
	return unique, nil
}

// SetStaticValue assigns literal components to an input port, creating
// lazily declared indexed ports on typed nodes as needed.
func (b *Backend) SetStaticValue(port nodex.Port, value []float64) error {
	a, err := b.resolve(port, true)
	if err != nil {
		return err
	}
	if a.Shape == nodex.Scalar && len(value) != 1 {
		return fmt.Errorf("%w: %d components into scalar port %s",
			nodex.ErrBackendNodeCreationFailure, len(value), port)
	}
	if n := a.Shape.Components(); n >= 0 && len(value) != n && a.Shape != nodex.Scalar {
		// A scalar assigned to a compound fans to every component.
		if len(value) != 1 {
			return fmt.Errorf("%w: %d components into %s port %s",
				nodex.ErrBackendNodeCreationFailure, len(value), a.Shape, port)
		}
		fanned := make([]float64, n)
		for i := range fanned {
			fanned[i] = value[0]
		}
		value = fanned
	}
	a.Value = append([]float64(nil), value...)
	return nil
}

// Connect wires a source port into a destination port.
func (b *Backend) Connect(src, dst nodex.Port) error {
	if _, err := b.resolve(src, false); err != nil {
		return err
	}
	d, err := b.resolve(dst, true)
	if err != nil {
		return err
	}
	d.Inputs = append(d.Inputs, src)
	b.conns = append(b.conns, [2]nodex.Port{src, dst})
	return nil
}

// ComponentPort resolves a compound's component by its declared name.
func (b *Backend) ComponentPort(port nodex.Port, index int) nodex.Port {
	if n, ok := b.nodes[port.Node]; ok {
		if a := n.attr(port.Attr); a != nil && index < len(a.comps) {
			return nodex.Port{Node: port.Node, Attr: a.comps[index]}
		}
	}
	return nodex.Port{Node: port.Node, Attr: port.Attr + nodex.ComponentSuffix(index)}
}

// resolve finds an attribute; on typed nodes unknown input ports are
// created lazily when create is set (indexed variadic ports, components).
func (b *Backend) resolve(port nodex.Port, create bool) (*Attribute, error) {
	n, ok := b.nodes[port.Node]
	if !ok {
		return nil, fmt.Errorf("%w: %s", nodex.ErrUnknownAttributeAddress, port)
	}
	if a := n.attr(port.Attr); a != nil {
		return a, nil
	}
	if create && n.Kind != "" {
		shape := nodex.Scalar
		if strings.Contains(port.Attr, "3D[") {
			shape = nodex.Vector3
		} else if strings.Contains(port.Attr, "2D[") {
			shape = nodex.Vector2
		} else if strings.HasPrefix(port.Attr, "matrixIn[") {
			shape = nodex.Matrix
		}
		schema := attrSchema{name: port.Attr, shape: shape, kind: nodex.Float}
		if shape == nodex.Vector2 || shape == nodex.Vector3 {
			for i := 0; i < shape.Components(); i++ {
				schema.comps = append(schema.comps, port.Attr+nodex.ComponentSuffix(i))
			}
		}
		declareFromSchema(n, schema)
		return n.attr(port.Attr), nil
	}
	return nil, fmt.Errorf("%w: %s", nodex.ErrUnknownAttributeAddress, port)
}
