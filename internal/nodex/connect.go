package nodex

import (
	"fmt"

	"github.com/BigRoy/nodex/internal/debug"
)

// Connect adapts a source value into a destination attribute. This is the
// only place where resolution adapts toward a caller-supplied target shape;
// dispatch always produces the operand-derived minimal shape.
//
// Rules:
//   - equal shapes wire directly (literals assign statically);
//   - a Scalar source fans out to every component of a vector target;
//   - a source wider than the target fails ErrNonAdaptableConnection
//     before any connection is made, never truncating silently;
//   - an Array source connects index for index.
func (g *Graph) Connect(source, target any) error {
	src, err := g.Classify(source)
	if err != nil {
		return err
	}
	dst, err := g.Classify(target)
	if err != nil {
		return err
	}
	ref, ok := dst.Reference()
	if !ok {
		return fmt.Errorf("%w: connect target %s is not an attribute", ErrUnsupportedInputKind, dst)
	}
	if debug.Connect() {
		debug.Logf("connect %s -> %s\n", src, ref.port)
	}

	if src.IsArray() {
		return g.connectArray(src, ref)
	}

	srcShape, dstShape := src.Shape(), ref.Shape()
	switch {
	case srcShape == dstShape:
		return g.connectValue(src, ref.port)
	case srcShape == Scalar && (dstShape == Vector2 || dstShape == Vector3):
		for i := 0; i < dstShape.Components(); i++ {
			if err := g.connectValue(src, g.backend.ComponentPort(ref.port, i)); err != nil {
				return err
			}
		}
		return nil
	case srcShape.Components() > dstShape.Components():
		return fmt.Errorf("%w: %s source into %s target would truncate",
			ErrNonAdaptableConnection, srcShape, dstShape)
	default:
		return fmt.Errorf("%w: cannot adapt %s source to %s target",
			ErrDimensionMismatch, srcShape, dstShape)
	}
}

// connectArray wires array elements index for index onto the target's
// component slots: literal elements assign statically, references connect.
func (g *Graph) connectArray(src Nodex, ref AttributeReference) error {
	elems := src.Elements()
	if n := ref.Shape().Components(); n >= 0 && n != len(elems) {
		return fmt.Errorf("%w: array of length %d into target with %d components",
			ErrDimensionMismatch, len(elems), n)
	}
	for i, e := range elems {
		if e.Shape() != Scalar {
			return fmt.Errorf("%w: array element %d is %s, component slots are scalar",
				ErrDimensionMismatch, i, e.Shape())
		}
		if err := g.connectValue(e, g.backend.ComponentPort(ref.Port(), i)); err != nil {
			return err
		}
	}
	return nil
}

// connectValue performs a single static assignment or connection.
func (g *Graph) connectValue(src Nodex, dst Port) error {
	if lit, ok := src.Literal(); ok {
		return g.setStatic(dst, lit.Components())
	}
	ref, _ := src.Reference()
	return g.connectPorts(ref.Port(), dst)
}
