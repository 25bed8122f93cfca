package nodex

// Operator names a dispatchable operation.
type Operator string

// Arithmetic operators.
const (
	OpAdd Operator = "add"
	OpSub Operator = "sub"
	OpMul Operator = "mul"
	OpDiv Operator = "div"
	OpPow Operator = "pow"
)

// Comparison operators. Each accepts optional ifTrue/ifFalse select
// branches through Params.
const (
	OpEq  Operator = "eq"
	OpNeq Operator = "neq"
	OpGt  Operator = "gt"
	OpGe  Operator = "ge"
	OpLt  Operator = "lt"
	OpLe  Operator = "le"
)

// Aggregate operators (n-ary).
const (
	OpSum     Operator = "sum"
	OpAverage Operator = "average"
	OpClamp   Operator = "clamp"
	OpBlend   Operator = "blend"
)

// Vector operators.
const (
	OpDot          Operator = "dot"
	OpCross        Operator = "cross"
	OpNormalize    Operator = "normalize"
	OpLength       Operator = "length"
	OpSquareLength Operator = "squareLength"
	OpAngleTo      Operator = "angleTo"
	OpDistanceTo   Operator = "distanceTo"
	OpAngleBetween Operator = "angleBetween"
)

// Matrix operators.
const (
	OpMultiplyMatrix Operator = "multiplyMatrix"
	OpInverse        Operator = "inverse"
	OpDecompose      Operator = "decompose"
)

// outputRule selects how an operator's output shape derives from its
// resolved broadcast shape.
type outputRule int

const (
	outBroadcast  outputRule = iota // output equals the broadcast shape
	outScalarBool                   // Scalar of kind Bool (comparisons)
	outScalar                       // Scalar (reductions)
	outVector3                      // Vector3 (cross)
	outTriple                       // three Vector3 outputs (decompose)
)

// kindRule selects how an operator's output kind derives from its operands.
type kindRule int

const (
	kindPromote kindRule = iota // promoted operand kind
	kindBool                    // Bool (comparisons without branches)
	kindFloat                   // Float (lengths, angles, averages)
)

// opSpec declares an operator's arity, supported shapes and output rules.
// The backend realization lives in the pattern table; adding an operator
// means adding a spec plus table rows.
type opSpec struct {
	minArity int
	maxArity int // -1 for unbounded
	foldable bool
	out      outputRule
	kind     kindRule
	shapes   []Shape    // uniform operand shapes the operator accepts
	pairs    [][2]Shape // explicit mixed pairings beyond scalar broadcast
}

func (s *opSpec) supportsShape(shape Shape) bool {
	for _, x := range s.shapes {
		if x == shape {
			return true
		}
	}
	return false
}

func (s *opSpec) supportsPair(a, b Shape) bool {
	for _, p := range s.pairs {
		if (p[0] == a && p[1] == b) || (p[0] == b && p[1] == a) {
			return true
		}
	}
	return false
}

var numericShapes = []Shape{Scalar, Vector2, Vector3}

var opSpecs = map[Operator]*opSpec{
	OpAdd: {minArity: 2, maxArity: 2, foldable: true, out: outBroadcast, kind: kindPromote, shapes: numericShapes},
	OpSub: {minArity: 2, maxArity: 2, foldable: true, out: outBroadcast, kind: kindPromote, shapes: numericShapes},
	OpMul: {minArity: 2, maxArity: 2, foldable: true, out: outBroadcast, kind: kindPromote, shapes: numericShapes},
	OpDiv: {minArity: 2, maxArity: 2, foldable: true, out: outBroadcast, kind: kindPromote, shapes: numericShapes},
	OpPow: {minArity: 2, maxArity: 2, foldable: true, out: outBroadcast, kind: kindPromote, shapes: numericShapes},

	// Equality comparisons reduce component-wise ("all components equal")
	// and so accept vectors; ordering comparisons have no defined
	// reduction over vectors and stay scalar.
	OpEq:  {minArity: 2, maxArity: 2, foldable: true, out: outScalarBool, kind: kindBool, shapes: numericShapes},
	OpNeq: {minArity: 2, maxArity: 2, foldable: true, out: outScalarBool, kind: kindBool, shapes: numericShapes},
	OpGt:  {minArity: 2, maxArity: 2, foldable: true, out: outScalarBool, kind: kindBool, shapes: []Shape{Scalar}},
	OpGe:  {minArity: 2, maxArity: 2, foldable: true, out: outScalarBool, kind: kindBool, shapes: []Shape{Scalar}},
	OpLt:  {minArity: 2, maxArity: 2, foldable: true, out: outScalarBool, kind: kindBool, shapes: []Shape{Scalar}},
	OpLe:  {minArity: 2, maxArity: 2, foldable: true, out: outScalarBool, kind: kindBool, shapes: []Shape{Scalar}},

	OpSum:     {minArity: 2, maxArity: -1, foldable: true, out: outBroadcast, kind: kindPromote, shapes: numericShapes},
	OpAverage: {minArity: 2, maxArity: -1, foldable: true, out: outBroadcast, kind: kindFloat, shapes: numericShapes},
	OpClamp:   {minArity: 3, maxArity: 3, foldable: true, out: outBroadcast, kind: kindPromote, shapes: numericShapes},
	OpBlend:   {minArity: 3, maxArity: 3, foldable: true, out: outBroadcast, kind: kindFloat, shapes: numericShapes},

	OpDot:          {minArity: 2, maxArity: 2, foldable: true, out: outScalar, kind: kindPromote, shapes: []Shape{Vector3}},
	OpCross:        {minArity: 2, maxArity: 2, foldable: true, out: outVector3, kind: kindPromote, shapes: []Shape{Vector3}},
	OpNormalize:    {minArity: 1, maxArity: 1, foldable: true, out: outBroadcast, kind: kindFloat, shapes: []Shape{Vector3}},
	OpLength:       {minArity: 1, maxArity: 1, foldable: true, out: outScalar, kind: kindFloat, shapes: []Shape{Vector3}},
	OpSquareLength: {minArity: 1, maxArity: 1, foldable: true, out: outScalar, kind: kindFloat, shapes: []Shape{Vector3}},
	OpAngleTo:      {minArity: 2, maxArity: 2, foldable: true, out: outScalar, kind: kindFloat, shapes: []Shape{Vector3}},
	OpDistanceTo:   {minArity: 2, maxArity: 2, foldable: true, out: outScalar, kind: kindFloat, shapes: []Shape{Vector3}},
	OpAngleBetween: {minArity: 2, maxArity: 2, foldable: true, out: outScalar, kind: kindFloat, shapes: []Shape{Vector3}},

	OpMultiplyMatrix: {minArity: 2, maxArity: -1, foldable: true, out: outBroadcast, kind: kindFloat, shapes: []Shape{Matrix}, pairs: [][2]Shape{{Vector3, Matrix}}},
	OpInverse:        {minArity: 1, maxArity: 1, foldable: true, out: outBroadcast, kind: kindFloat, shapes: []Shape{Matrix}},
	OpDecompose:      {minArity: 1, maxArity: 1, foldable: true, out: outTriple, kind: kindFloat, shapes: []Shape{Matrix}},
}

// Operators returns the full operator inventory in a stable order.
func Operators() []Operator {
	return []Operator{
		OpAdd, OpSub, OpMul, OpDiv, OpPow,
		OpEq, OpNeq, OpGt, OpGe, OpLt, OpLe,
		OpSum, OpAverage, OpClamp, OpBlend,
		OpDot, OpCross, OpNormalize, OpLength, OpSquareLength,
		OpAngleTo, OpDistanceTo, OpAngleBetween,
		OpMultiplyMatrix, OpInverse, OpDecompose,
	}
}
