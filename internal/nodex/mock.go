package nodex

import (
	"fmt"
	"strings"
)

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a recording backend for tests. It declares attributes up
// front, accepts every node creation, and records static assignments and
// connections for inspection.
type MockBackend struct {
	declared map[string][2]int // port -> (shape, kind)

	Created     []CreatedNode
	Static      map[string][]float64
	Connections [][2]string

	// FailNextCreate makes the next CreateNode call fail, for testing
	// backend failure propagation.
	FailNextCreate bool
}

// CreatedNode records one CreateNode call.
type CreatedNode struct {
	Kind string
	Name string
}

// NewMockBackend creates an empty MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{
		declared: map[string][2]int{},
		Static:   map[string][]float64{},
	}
}

// Declare registers an attribute address with its metadata.
func (m *MockBackend) Declare(address string, shape Shape, kind ValueKind) {
	m.declared[address] = [2]int{int(shape), int(kind)}
}

// AttributeMetadata resolves a declared attribute.
func (m *MockBackend) AttributeMetadata(port Port) (Shape, ValueKind, error) {
	meta, ok := m.declared[port.String()]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s", ErrUnknownAttributeAddress, port)
	}
	return Shape(meta[0]), ValueKind(meta[1]), nil
}

// CreateNode records the creation and returns the name hint as the handle.
func (m *MockBackend) CreateNode(kind, name string) (string, error) {
	if m.FailNextCreate {
		m.FailNextCreate = false
		return "", fmt.Errorf("%w: refused %s", ErrBackendNodeCreationFailure, kind)
	}
	m.Created = append(m.Created, CreatedNode{Kind: kind, Name: name})
	return name, nil
}

// SetStaticValue records a static assignment.
func (m *MockBackend) SetStaticValue(port Port, value []float64) error {
	m.Static[port.String()] = append([]float64(nil), value...)
	return nil
}

// Connect records a connection.
func (m *MockBackend) Connect(src, dst Port) error {
	m.Connections = append(m.Connections, [2]string{src.String(), dst.String()})
	return nil
}

// ComponentPort appends the conventional component suffix, with an R/G/B
// layout for color-style compounds.
func (m *MockBackend) ComponentPort(port Port, index int) Port {
	if isColorAttr(port.Attr) {
		suffixes := [...]string{"R", "G", "B"}
		if index < len(suffixes) {
			return Port{Node: port.Node, Attr: port.Attr + suffixes[index]}
		}
	}
	return Port{Node: port.Node, Attr: port.Attr + ComponentSuffix(index)}
}

func isColorAttr(attr string) bool {
	if strings.Contains(attr, "olor") {
		return true
	}
	// Clamp-style compounds use the R/G/B layout under plain names.
	return attr == "input" || attr == "min" || attr == "max"
}

// ConnectionsTo returns the sources recorded against one destination port.
func (m *MockBackend) ConnectionsTo(dst string) []string {
	var out []string
	for _, c := range m.Connections {
		if c[1] == dst {
			out = append(out, c[0])
		}
	}
	return out
}
