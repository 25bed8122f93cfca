// Package nodex implements the core value model, dimension resolution and
// operation dispatch for building math node graphs inside an attribute-graph
// backend.
package nodex

// Shape classifies the dimensionality of a value.
type Shape int

// Supported shapes, ordered by component count. Array is handled
// structurally and takes no part in the broadcast ordering.
const (
	Scalar Shape = iota
	Vector2
	Vector3
	Matrix
	Array
)

// Components returns the number of numeric components for the shape.
// Array has no fixed component count and returns -1.
func (s Shape) Components() int {
	switch s {
	case Scalar:
		return 1
	case Vector2:
		return 2
	case Vector3:
		return 3
	case Matrix:
		return 16
	default:
		return -1
	}
}

// String returns a human-readable name for the shape.
func (s Shape) String() string {
	switch s {
	case Scalar:
		return "scalar"
	case Vector2:
		return "vector2"
	case Vector3:
		return "vector3"
	case Matrix:
		return "matrix"
	case Array:
		return "array"
	default:
		return "unknown"
	}
}

// shapeForLength maps a fixed sequence length to its shape.
// Lengths outside {1, 2, 3, 16} have no shape.
func shapeForLength(n int) (Shape, bool) {
	switch n {
	case 1:
		return Scalar, true
	case 2:
		return Vector2, true
	case 3:
		return Vector3, true
	case 16:
		return Matrix, true
	default:
		return 0, false
	}
}

// ValueKind is the underlying numeric kind of a value.
type ValueKind int

// Supported value kinds, ordered by promotion rank (Bool < Int < Float).
const (
	Bool ValueKind = iota
	Int
	Float
)

// String returns a human-readable name for the value kind.
func (k ValueKind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	default:
		return "unknown"
	}
}

// Promote returns the wider of two kinds under the usual numeric
// promotion rule.
func Promote(a, b ValueKind) ValueKind {
	if a > b {
		return a
	}
	return b
}
