package nodex

// Named dispatch entry points. Each accepts the same input surface as
// Classify and thin-wraps Dispatch; no logic lives here.

func (g *Graph) dispatch1(op Operator, inputs []any, params *Params) (Nodex, error) {
	operands := make([]Nodex, len(inputs))
	for i, in := range inputs {
		o, err := g.Classify(in)
		if err != nil {
			return Nodex{}, err
		}
		operands[i] = o
	}
	results, err := g.Dispatch(op, operands, params)
	if err != nil {
		return Nodex{}, err
	}
	return results[0], nil
}

// Add returns a + b.
func (g *Graph) Add(a, b any) (Nodex, error) { return g.dispatch1(OpAdd, []any{a, b}, nil) }

// Sub returns a - b.
func (g *Graph) Sub(a, b any) (Nodex, error) { return g.dispatch1(OpSub, []any{a, b}, nil) }

// Mul returns a * b component-wise.
func (g *Graph) Mul(a, b any) (Nodex, error) { return g.dispatch1(OpMul, []any{a, b}, nil) }

// Div returns a / b component-wise.
func (g *Graph) Div(a, b any) (Nodex, error) { return g.dispatch1(OpDiv, []any{a, b}, nil) }

// Pow returns a raised to b component-wise.
func (g *Graph) Pow(a, b any) (Nodex, error) { return g.dispatch1(OpPow, []any{a, b}, nil) }

// Eq compares a == b; all components must match.
func (g *Graph) Eq(a, b any, params *Params) (Nodex, error) {
	return g.dispatch1(OpEq, []any{a, b}, params)
}

// Neq compares a != b.
func (g *Graph) Neq(a, b any, params *Params) (Nodex, error) {
	return g.dispatch1(OpNeq, []any{a, b}, params)
}

// Gt compares a > b.
func (g *Graph) Gt(a, b any, params *Params) (Nodex, error) {
	return g.dispatch1(OpGt, []any{a, b}, params)
}

// Ge compares a >= b.
func (g *Graph) Ge(a, b any, params *Params) (Nodex, error) {
	return g.dispatch1(OpGe, []any{a, b}, params)
}

// Lt compares a < b.
func (g *Graph) Lt(a, b any, params *Params) (Nodex, error) {
	return g.dispatch1(OpLt, []any{a, b}, params)
}

// Le compares a <= b.
func (g *Graph) Le(a, b any, params *Params) (Nodex, error) {
	return g.dispatch1(OpLe, []any{a, b}, params)
}

// Sum adds all operands.
func (g *Graph) Sum(operands ...any) (Nodex, error) { return g.dispatch1(OpSum, operands, nil) }

// Average returns the mean of all operands.
func (g *Graph) Average(operands ...any) (Nodex, error) {
	return g.dispatch1(OpAverage, operands, nil)
}

// Clamp limits value between min and max component-wise.
func (g *Graph) Clamp(value, min, max any) (Nodex, error) {
	return g.dispatch1(OpClamp, []any{value, min, max}, nil)
}

// Blend mixes a and b by blender: a*blender + b*(1-blender).
func (g *Graph) Blend(a, b, blender any) (Nodex, error) {
	return g.dispatch1(OpBlend, []any{a, b, blender}, nil)
}

// Dot returns the dot product of two vectors.
func (g *Graph) Dot(a, b any) (Nodex, error) { return g.dispatch1(OpDot, []any{a, b}, nil) }

// Cross returns the cross product of two vectors.
func (g *Graph) Cross(a, b any) (Nodex, error) { return g.dispatch1(OpCross, []any{a, b}, nil) }

// Normalize returns the unit vector of v.
func (g *Graph) Normalize(v any) (Nodex, error) { return g.dispatch1(OpNormalize, []any{v}, nil) }

// Length returns the magnitude of v.
func (g *Graph) Length(v any) (Nodex, error) { return g.dispatch1(OpLength, []any{v}, nil) }

// SquareLength returns the squared magnitude of v.
func (g *Graph) SquareLength(v any) (Nodex, error) {
	return g.dispatch1(OpSquareLength, []any{v}, nil)
}

// AngleTo returns the angle between a and b in radians.
func (g *Graph) AngleTo(a, b any) (Nodex, error) { return g.dispatch1(OpAngleTo, []any{a, b}, nil) }

// AngleBetween returns the angle between a and b in radians.
func (g *Graph) AngleBetween(a, b any) (Nodex, error) {
	return g.dispatch1(OpAngleBetween, []any{a, b}, nil)
}

// DistanceTo returns the distance between points a and b.
func (g *Graph) DistanceTo(a, b any) (Nodex, error) {
	return g.dispatch1(OpDistanceTo, []any{a, b}, nil)
}

// MultiplyMatrix chains matrix products, or transforms a vector through a
// matrix when the first operand is a vector.
func (g *Graph) MultiplyMatrix(operands ...any) (Nodex, error) {
	return g.dispatch1(OpMultiplyMatrix, operands, nil)
}

// Inverse returns the inverse of a 4x4 matrix.
func (g *Graph) Inverse(m any) (Nodex, error) { return g.dispatch1(OpInverse, []any{m}, nil) }

// Decompose splits a 4x4 transform into translate, rotate (XYZ euler,
// radians) and scale, each an independent result.
func (g *Graph) Decompose(m any) (translate, rotate, scale Nodex, err error) {
	operand, err := g.Classify(m)
	if err != nil {
		return Nodex{}, Nodex{}, Nodex{}, err
	}
	results, err := g.Dispatch(OpDecompose, []Nodex{operand}, nil)
	if err != nil {
		return Nodex{}, Nodex{}, Nodex{}, err
	}
	return results[0], results[1], results[2], nil
}
