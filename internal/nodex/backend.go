package nodex

import (
	"fmt"
	"strings"
)

// Port addresses a single attribute on a backend node.
type Port struct {
	Node string // node name or handle
	Attr string // attribute path on the node, e.g. "translate" or "input3D[0]"
}

// String renders the port as "node.attr".
func (p Port) String() string {
	return p.Node + "." + p.Attr
}

// ParsePort parses a "node.attrPath" address. The node part must be a
// non-empty identifier before the first dot and the attribute path must be
// non-empty. Anything else is not a well-formed address.
func ParsePort(address string) (Port, error) {
	dot := strings.IndexByte(address, '.')
	if dot <= 0 || dot == len(address)-1 {
		return Port{}, fmt.Errorf("%w: malformed address %q", ErrUnsupportedInputKind, address)
	}
	node := address[:dot]
	for i := 0; i < len(node); i++ {
		c := node[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return Port{}, fmt.Errorf("%w: malformed address %q", ErrUnsupportedInputKind, address)
			}
		default:
			return Port{}, fmt.Errorf("%w: malformed address %q", ErrUnsupportedInputKind, address)
		}
	}
	return Port{Node: node, Attr: address[dot+1:]}, nil
}

// Backend is the external graph-authoring system consumed by the dispatcher
// and the smart-connect adapter. It owns node lifetime and attribute wiring;
// this package only requests creation and connections.
//
// Implementations:
//   - internal/backend/memory: in-memory scene graph for tests and the CLI
//   - internal/nodex MockBackend: recording double for package tests
//
// Every method is expected to fail loudly: no call partially succeeds.
type Backend interface {
	// AttributeMetadata returns the declared shape and kind of an existing
	// attribute. It fails with ErrUnknownAttributeAddress if the address
	// does not resolve.
	AttributeMetadata(port Port) (Shape, ValueKind, error)

	// CreateNode instantiates a node of the given kind and returns its
	// handle. The name is a hint; the returned handle wins.
	CreateNode(kind, name string) (string, error)

	// SetStaticValue assigns literal components to an input port.
	SetStaticValue(port Port, value []float64) error

	// Connect wires a source port into a destination port.
	Connect(src, dst Port) error

	// ComponentPort returns the port addressing one component of a
	// compound port, e.g. translate -> translateX.
	ComponentPort(port Port, index int) Port
}

// ComponentSuffix returns the conventional single-letter component suffix
// for compound attributes: X, Y, Z then W. Backends with other layouts
// (color compounds, indexed elements) override this in ComponentPort.
func ComponentSuffix(index int) string {
	suffixes := [...]string{"X", "Y", "Z", "W"}
	if index < 0 || index >= len(suffixes) {
		return fmt.Sprintf("[%d]", index)
	}
	return suffixes[index]
}
