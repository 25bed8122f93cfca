package nodex

import (
	"fmt"
	"strconv"
	"strings"
)

// Literal is an immutable constant: one component for Scalar, a fixed
// row-major sequence of components for Vector2/Vector3/Matrix.
type Literal struct {
	shape Shape
	kind  ValueKind
	comps []float64
}

// NewLiteral builds a literal from raw components. The component count must
// be 1, 2, 3 or 16.
func NewLiteral(kind ValueKind, comps ...float64) (Literal, error) {
	shape, ok := shapeForLength(len(comps))
	if !ok {
		return Literal{}, fmt.Errorf("%w: literal with %d components", ErrUnsupportedInputKind, len(comps))
	}
	return Literal{shape: shape, kind: kind, comps: append([]float64(nil), comps...)}, nil
}

// Shape returns the literal's shape.
func (l Literal) Shape() Shape { return l.shape }

// Kind returns the literal's value kind.
func (l Literal) Kind() ValueKind { return l.kind }

// Components returns a copy of the literal's components.
func (l Literal) Components() []float64 {
	return append([]float64(nil), l.comps...)
}

// Float returns the single component of a scalar literal.
func (l Literal) Float() float64 { return l.comps[0] }

// Bool reports whether the single component of a scalar literal is non-zero.
func (l Literal) Bool() bool { return l.comps[0] != 0 }

// AttributeReference is a non-owning address into the backend plus the
// declared metadata cached at construction time. The backend owns the node;
// the reference stays valid as an address even if the node is later removed.
type AttributeReference struct {
	port  Port
	shape Shape
	kind  ValueKind
}

// NewAttributeReference wraps a port with its declared metadata.
func NewAttributeReference(port Port, shape Shape, kind ValueKind) AttributeReference {
	return AttributeReference{port: port, shape: shape, kind: kind}
}

// Port returns the referenced backend port.
func (r AttributeReference) Port() Port { return r.port }

// Shape returns the declared shape cached at construction.
func (r AttributeReference) Shape() Shape { return r.shape }

// Kind returns the declared value kind cached at construction.
func (r AttributeReference) Kind() ValueKind { return r.kind }

// Nodex is the unit of computation: a tagged variant over a literal, an
// attribute reference, or an ordered array of further Nodex values. Shape and
// kind are resolved once at construction and never overridden.
type Nodex struct {
	shape Shape
	kind  ValueKind
	lit   *Literal
	ref   *AttributeReference
	elems []Nodex
}

// FromLiteral wraps a literal.
func FromLiteral(l Literal) Nodex {
	return Nodex{shape: l.shape, kind: l.kind, lit: &l}
}

// FromReference wraps an attribute reference.
func FromReference(r AttributeReference) Nodex {
	return Nodex{shape: r.shape, kind: r.kind, ref: &r}
}

// FromElements wraps an ordered array of values. Element count and
// per-element shapes are fixed from here on. The array's kind is the
// promoted kind over its elements.
func FromElements(elems []Nodex) Nodex {
	kind := Bool
	for _, e := range elems {
		kind = Promote(kind, e.kind)
	}
	return Nodex{shape: Array, kind: kind, elems: append([]Nodex(nil), elems...)}
}

// Shape returns the resolved shape.
func (n Nodex) Shape() Shape { return n.shape }

// Kind returns the resolved value kind.
func (n Nodex) Kind() ValueKind { return n.kind }

// IsLiteral reports whether the value wraps a literal.
func (n Nodex) IsLiteral() bool { return n.lit != nil }

// IsReference reports whether the value wraps an attribute reference.
func (n Nodex) IsReference() bool { return n.ref != nil }

// IsArray reports whether the value is an array.
func (n Nodex) IsArray() bool { return n.shape == Array }

// Literal returns the wrapped literal, if any.
func (n Nodex) Literal() (Literal, bool) {
	if n.lit == nil {
		return Literal{}, false
	}
	return *n.lit, true
}

// Reference returns the wrapped attribute reference, if any.
func (n Nodex) Reference() (AttributeReference, bool) {
	if n.ref == nil {
		return AttributeReference{}, false
	}
	return *n.ref, true
}

// Elements returns a copy of the array elements.
func (n Nodex) Elements() []Nodex {
	return append([]Nodex(nil), n.elems...)
}

// Len returns the element count of an array, or -1 for non-arrays.
func (n Nodex) Len() int {
	if n.shape != Array {
		return -1
	}
	return len(n.elems)
}

// String renders the value for diagnostics.
func (n Nodex) String() string {
	switch {
	case n.lit != nil:
		comps := n.lit.comps
		if len(comps) == 1 {
			return "Nodex(" + strconv.FormatFloat(comps[0], 'g', -1, 64) + ")"
		}
		parts := make([]string, len(comps))
		for i, c := range comps {
			parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
		}
		return "Nodex([" + strings.Join(parts, ", ") + "])"
	case n.ref != nil:
		return "Nodex(" + n.ref.port.String() + ")"
	default:
		parts := make([]string, len(n.elems))
		for i, e := range n.elems {
			parts[i] = e.String()
		}
		return "Nodex([" + strings.Join(parts, ", ") + "])"
	}
}

// Classify wraps an input as a Nodex. Accepted inputs: numeric scalars,
// booleans, fixed numeric sequences of length 1, 2, 3 or 16, a well-formed
// "node.attr" address string, an existing Literal, AttributeReference or
// Nodex (idempotent), and heterogeneous sequences mixing any of the above,
// which classify as Array element by element.
//
// Classifying an address string performs exactly one backend metadata
// lookup; classifying a literal never touches the backend.
func (g *Graph) Classify(input any) (Nodex, error) {
	switch v := input.(type) {
	case Nodex:
		return v, nil
	case *Nodex:
		return *v, nil
	case Literal:
		return FromLiteral(v), nil
	case AttributeReference:
		return FromReference(v), nil
	case string:
		return g.classifyAddress(v)
	case []Nodex:
		return FromElements(v), nil
	}

	if kind, f, ok := scalarValue(input); ok {
		lit, err := NewLiteral(kind, f)
		if err != nil {
			return Nodex{}, err
		}
		return FromLiteral(lit), nil
	}

	if seq, ok := sequenceValue(input); ok {
		return g.classifySequence(seq)
	}

	return Nodex{}, fmt.Errorf("%w: %T", ErrUnsupportedInputKind, input)
}

func (g *Graph) classifyAddress(address string) (Nodex, error) {
	port, err := ParsePort(address)
	if err != nil {
		return Nodex{}, err
	}
	shape, kind, err := g.backend.AttributeMetadata(port)
	if err != nil {
		return Nodex{}, err
	}
	return FromReference(NewAttributeReference(port, shape, kind)), nil
}

func (g *Graph) classifySequence(seq []any) (Nodex, error) {
	// A purely numeric sequence is a literal and must have a literal
	// length. Anything mixed classifies as Array, element by element.
	comps := make([]float64, 0, len(seq))
	kind := Bool
	numeric := true
	for _, item := range seq {
		k, f, ok := scalarValue(item)
		if !ok {
			numeric = false
			break
		}
		kind = Promote(kind, k)
		comps = append(comps, f)
	}
	if numeric {
		lit, err := NewLiteral(kind, comps...)
		if err != nil {
			return Nodex{}, err
		}
		return FromLiteral(lit), nil
	}

	elems := make([]Nodex, 0, len(seq))
	for i, item := range seq {
		e, err := g.Classify(item)
		if err != nil {
			return Nodex{}, fmt.Errorf("array element %d: %w", i, err)
		}
		elems = append(elems, e)
	}
	return FromElements(elems), nil
}

// scalarValue normalizes a plain numeric or boolean input to its kind and
// float64 representation.
func scalarValue(input any) (ValueKind, float64, bool) {
	switch v := input.(type) {
	case bool:
		if v {
			return Bool, 1, true
		}
		return Bool, 0, true
	case int:
		return Int, float64(v), true
	case int8:
		return Int, float64(v), true
	case int16:
		return Int, float64(v), true
	case int32:
		return Int, float64(v), true
	case int64:
		return Int, float64(v), true
	case uint:
		return Int, float64(v), true
	case uint8:
		return Int, float64(v), true
	case uint16:
		return Int, float64(v), true
	case uint32:
		return Int, float64(v), true
	case uint64:
		return Int, float64(v), true
	case float32:
		return Float, float64(v), true
	case float64:
		return Float, v, true
	default:
		return 0, 0, false
	}
}

// sequenceValue normalizes the accepted slice types to []any.
func sequenceValue(input any) ([]any, bool) {
	switch v := input.(type) {
	case []any:
		return v, true
	case []float64:
		out := make([]any, len(v))
		for i, x := range v {
			out[i] = x
		}
		return out, true
	case []float32:
		out := make([]any, len(v))
		for i, x := range v {
			out[i] = x
		}
		return out, true
	case []int:
		out := make([]any, len(v))
		for i, x := range v {
			out[i] = x
		}
		return out, true
	case []bool:
		out := make([]any, len(v))
		for i, x := range v {
			out[i] = x
		}
		return out, true
	case []string:
		out := make([]any, len(v))
		for i, x := range v {
			out[i] = x
		}
		return out, true
	default:
		return nil, false
	}
}
