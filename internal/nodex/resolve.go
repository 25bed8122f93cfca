package nodex

import "fmt"

// ResolveBinary computes the broadcast shape and output shape for a pair of
// operand shapes under the given operator.
//
// Rules, in order:
//  1. Equal supported shapes pass through unchanged.
//  2. Scalar paired with Vector2/Vector3 broadcasts the scalar
//     component-wise; the vector shape drives the result.
//  3. Scalar paired with Matrix is rejected; no operator permits
//     scalar-matrix scaling.
//  4. Vector/Matrix pairings pass only for operators that explicitly
//     declare them (matrix-vector multiply); the vector shape drives.
//  5. Everything else is a dimension mismatch.
//
// Array operands never reach this function; the dispatcher resolves arrays
// element-wise.
func ResolveBinary(op Operator, a, b Shape) (broadcast, out Shape, err error) {
	spec, ok := opSpecs[op]
	if !ok {
		return 0, 0, fmt.Errorf("%w: unknown operator %q", ErrDimensionMismatch, op)
	}
	if a == Array || b == Array {
		return 0, 0, fmt.Errorf("%w: %s does not resolve array shapes directly", ErrDimensionMismatch, op)
	}

	switch {
	case a == b && spec.supportsShape(a):
		broadcast = a
	case a == Scalar && (b == Vector2 || b == Vector3) && spec.supportsShape(b):
		broadcast = b
	case b == Scalar && (a == Vector2 || a == Vector3) && spec.supportsShape(a):
		broadcast = a
	case spec.supportsPair(a, b):
		// Mixed vector/matrix pairing; the vector operand drives the
		// result shape.
		broadcast = a
		if a == Matrix {
			broadcast = b
		}
	default:
		return 0, 0, fmt.Errorf("%w: %s does not combine %s with %s", ErrDimensionMismatch, op, a, b)
	}

	return broadcast, resolvedOutput(spec, broadcast), nil
}

// ResolveShapes folds an operand shape list pairwise into one unified
// broadcast shape and the operator's output shape. It fails fast on the
// first incompatible pair.
func ResolveShapes(op Operator, shapes []Shape) (broadcast, out Shape, err error) {
	spec, ok := opSpecs[op]
	if !ok {
		return 0, 0, fmt.Errorf("%w: unknown operator %q", ErrDimensionMismatch, op)
	}
	if len(shapes) == 0 {
		return 0, 0, fmt.Errorf("%w: %s with no operands", ErrInvalidOperatorArity, op)
	}
	broadcast = shapes[0]
	if len(shapes) == 1 {
		if broadcast == Array || !spec.supportsShape(broadcast) {
			return 0, 0, fmt.Errorf("%w: %s does not accept %s", ErrDimensionMismatch, op, broadcast)
		}
		return broadcast, resolvedOutput(spec, broadcast), nil
	}
	for _, s := range shapes[1:] {
		broadcast, _, err = ResolveBinary(op, broadcast, s)
		if err != nil {
			return 0, 0, err
		}
	}
	return broadcast, resolvedOutput(spec, broadcast), nil
}

func resolvedOutput(spec *opSpec, broadcast Shape) Shape {
	switch spec.out {
	case outScalarBool, outScalar:
		return Scalar
	case outVector3, outTriple:
		return Vector3
	default:
		return broadcast
	}
}

// resolvedKind computes the output kind for an operand kind list.
func resolvedKind(spec *opSpec, kinds []ValueKind) ValueKind {
	switch spec.kind {
	case kindBool:
		return Bool
	case kindFloat:
		return Float
	default:
		out := Bool
		for _, k := range kinds {
			out = Promote(out, k)
		}
		return out
	}
}
