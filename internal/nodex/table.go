package nodex

import "fmt"

// Pattern describes how one operator at one resolved shape is realized in
// the backend: which node kind to create, how operands map onto its input
// ports and which output port is primary. Patterns are data; the dispatcher
// never special-cases an operator beyond what a row declares.
type Pattern struct {
	NodeKind string

	// Inputs names one input port per operand. OperandMap, when set,
	// redirects input port i to operand OperandMap[i]; squareLength binds
	// the same operand to both vectorProduct inputs this way.
	Inputs     []string
	OperandMap []int

	// Variadic, when non-empty, binds operand i to fmt.Sprintf(Variadic, i)
	// instead of Inputs; used by n-ary node kinds with indexed ports.
	Variadic string

	// Pre, when set, routes the operands through a leading reduction node
	// whose primary output becomes the first operand of the main node,
	// with a literal zero as the second. Realizes vector equality as
	// distanceBetween feeding condition.
	Pre *Pattern

	Primary string
	// Outputs names every exposed port of a multi-output node, primary
	// first. Empty for single-output patterns.
	Outputs []string

	// BranchTrue/BranchFalse are the select ports of comparison nodes.
	BranchTrue  string
	BranchFalse string
	// BranchPrimary is the primary port when select branches yield a
	// compound result instead of a scalar predicate.
	BranchPrimary string

	// Settings are static ports assigned at node creation, such as the
	// operation selector of multi-mode node kinds.
	Settings map[string]float64
}

// variadicPort returns the input port for operand i.
func (p *Pattern) variadicPort(i int) string {
	return fmt.Sprintf(p.Variadic, i)
}

func pma(operation float64, dim int) Pattern {
	return Pattern{
		NodeKind: "plusMinusAverage",
		Variadic: fmt.Sprintf("input%dD[%%d]", dim),
		Primary:  fmt.Sprintf("output%dD", dim),
		Settings: map[string]float64{"operation": operation},
	}
}

func mdv(operation float64, shape Shape) Pattern {
	p := Pattern{
		NodeKind: "multiplyDivide",
		Inputs:   []string{"input1", "input2"},
		Primary:  "output",
		Settings: map[string]float64{"operation": operation},
	}
	if shape == Scalar {
		p.Inputs = []string{"input1X", "input2X"}
		p.Primary = "outputX"
	}
	return p
}

func cond(operation float64, shape Shape) Pattern {
	p := Pattern{
		NodeKind:      "condition",
		Inputs:        []string{"firstTerm", "secondTerm"},
		Primary:       "outColorR",
		BranchTrue:    "colorIfTrue",
		BranchFalse:   "colorIfFalse",
		BranchPrimary: "outColor",
		Settings:      map[string]float64{"operation": operation},
	}
	if shape != Scalar {
		// Vector equality reduces through a distance node; the condition
		// then tests the distance against zero.
		p.Pre = &Pattern{
			NodeKind: "distanceBetween",
			Inputs:   []string{"point1", "point2"},
			Primary:  "distance",
		}
	}
	return p
}

func clampRow(shape Shape) Pattern {
	p := Pattern{
		NodeKind: "clamp",
		Inputs:   []string{"input", "min", "max"},
		Primary:  "output",
	}
	if shape == Scalar {
		p.Inputs = []string{"inputR", "minR", "maxR"}
		p.Primary = "outputR"
	}
	return p
}

func blendRow(shape Shape) Pattern {
	p := Pattern{
		NodeKind: "blendColors",
		Inputs:   []string{"color1", "color2", "blender"},
		Primary:  "output",
	}
	if shape == Scalar {
		p.Inputs = []string{"color1R", "color2R", "blender"}
		p.Primary = "outputR"
	}
	return p
}

// patterns is the operator table: one row per (operator, resolved broadcast
// shape). Adding an operator means adding a spec in ops.go plus rows here.
var patterns = map[Operator]map[Shape]Pattern{
	OpAdd: {Scalar: pma(1, 1), Vector2: pma(1, 2), Vector3: pma(1, 3)},
	OpSub: {Scalar: pma(2, 1), Vector2: pma(2, 2), Vector3: pma(2, 3)},
	OpSum: {Scalar: pma(1, 1), Vector2: pma(1, 2), Vector3: pma(1, 3)},
	OpAverage: {Scalar: pma(3, 1), Vector2: pma(3, 2), Vector3: pma(3, 3)},

	OpMul: {Scalar: mdv(1, Scalar), Vector2: mdv(1, Vector2), Vector3: mdv(1, Vector3)},
	OpDiv: {Scalar: mdv(2, Scalar), Vector2: mdv(2, Vector2), Vector3: mdv(2, Vector3)},
	OpPow: {Scalar: mdv(3, Scalar), Vector2: mdv(3, Vector2), Vector3: mdv(3, Vector3)},

	OpEq:  {Scalar: cond(0, Scalar), Vector2: cond(0, Vector2), Vector3: cond(0, Vector3)},
	OpNeq: {Scalar: cond(1, Scalar), Vector2: cond(1, Vector2), Vector3: cond(1, Vector3)},
	OpGt:  {Scalar: cond(2, Scalar)},
	OpGe:  {Scalar: cond(3, Scalar)},
	OpLt:  {Scalar: cond(4, Scalar)},
	OpLe:  {Scalar: cond(5, Scalar)},

	OpClamp: {Scalar: clampRow(Scalar), Vector2: clampRow(Vector2), Vector3: clampRow(Vector3)},
	OpBlend: {Scalar: blendRow(Scalar), Vector2: blendRow(Vector2), Vector3: blendRow(Vector3)},

	OpDot: {Vector3: {
		NodeKind: "vectorProduct",
		Inputs:   []string{"input1", "input2"},
		Primary:  "outputX",
		Settings: map[string]float64{"operation": 1},
	}},
	OpCross: {Vector3: {
		NodeKind: "vectorProduct",
		Inputs:   []string{"input1", "input2"},
		Primary:  "output",
		Settings: map[string]float64{"operation": 2},
	}},
	OpNormalize: {Vector3: {
		NodeKind: "vectorProduct",
		Inputs:   []string{"input1"},
		Primary:  "output",
		Settings: map[string]float64{"operation": 0, "normalizeOutput": 1},
	}},
	OpSquareLength: {Vector3: {
		NodeKind:   "vectorProduct",
		Inputs:     []string{"input1", "input2"},
		OperandMap: []int{0, 0},
		Primary:    "outputX",
		Settings:   map[string]float64{"operation": 1},
	}},
	OpLength: {Vector3: {
		NodeKind: "distanceBetween",
		Inputs:   []string{"point1"},
		Primary:  "distance",
	}},
	OpDistanceTo: {Vector3: {
		NodeKind: "distanceBetween",
		Inputs:   []string{"point1", "point2"},
		Primary:  "distance",
	}},
	OpAngleTo: {Vector3: {
		NodeKind: "angleBetween",
		Inputs:   []string{"vector1", "vector2"},
		Primary:  "angle",
	}},
	OpAngleBetween: {Vector3: {
		NodeKind: "angleBetween",
		Inputs:   []string{"vector1", "vector2"},
		Primary:  "angle",
	}},

	OpMultiplyMatrix: {
		Matrix: {
			NodeKind: "multMatrix",
			Variadic: "matrixIn[%d]",
			Primary:  "matrixSum",
		},
		// Vector by matrix: the vector operand drives the shape key.
		Vector3: {
			NodeKind: "vectorProduct",
			Inputs:   []string{"input1", "matrix"},
			Primary:  "output",
			Settings: map[string]float64{"operation": 3},
		},
	},
	OpInverse: {Matrix: {
		NodeKind: "inverseMatrix",
		Inputs:   []string{"inputMatrix"},
		Primary:  "outputMatrix",
	}},
	OpDecompose: {Matrix: {
		NodeKind: "decomposeMatrix",
		Inputs:   []string{"inputMatrix"},
		Primary:  "outputTranslate",
		Outputs:  []string{"outputTranslate", "outputRotate", "outputScale"},
	}},
}

// LookupPattern returns the backend pattern for an operator at a resolved
// broadcast shape.
func LookupPattern(op Operator, shape Shape) (Pattern, error) {
	rows, ok := patterns[op]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: no backend pattern for operator %q", ErrDimensionMismatch, op)
	}
	p, ok := rows[shape]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: operator %q has no backend pattern at %s", ErrDimensionMismatch, op, shape)
	}
	return p, nil
}
