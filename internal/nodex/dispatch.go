package nodex

import (
	"errors"
	"fmt"
	"sort"

	"github.com/BigRoy/nodex/internal/debug"
)

// Graph builds math node networks against one backend. It is the explicit
// context threaded through every classify, dispatch and connect call; there
// is no ambient graph state. A Graph assumes a single logical writer.
type Graph struct {
	backend Backend
	seq     map[Operator]int
}

// NewGraph returns a graph builder over the given backend.
func NewGraph(b Backend) *Graph {
	return &Graph{backend: b, seq: map[Operator]int{}}
}

// Backend returns the backend this graph builds against.
func (g *Graph) Backend() Backend { return g.backend }

// Params carries optional per-dispatch arguments.
type Params struct {
	// IfTrue and IfFalse select the comparison result value. When unset a
	// comparison yields a Scalar Bool; when set it yields the selected
	// branch, broadcast over both branches. Accepted input surface is the
	// same as Classify.
	IfTrue  any
	IfFalse any

	// Name overrides the created node's name hint.
	Name string
}

// Dispatch validates, resolves and realizes one operation, returning the
// result values: one for single-output operators, one per named output port
// for multi-output operators (decompose).
//
// Every non-folded dispatch creates fresh backend nodes; there is no
// memoization and no rollback on partial failure of composite dispatches.
func (g *Graph) Dispatch(op Operator, operands []Nodex, params *Params) ([]Nodex, error) {
	spec, ok := opSpecs[op]
	if !ok {
		return nil, fmt.Errorf("%w: unknown operator %q", ErrDimensionMismatch, op)
	}
	if len(operands) < spec.minArity || (spec.maxArity >= 0 && len(operands) > spec.maxArity) {
		return nil, fmt.Errorf("%w: %s takes %s operands, got %d",
			ErrInvalidOperatorArity, op, arityString(spec), len(operands))
	}
	if debug.Dispatch() {
		debug.Logf("dispatch %s %v\n", op, operands)
	}

	if hasArray(operands) {
		return g.dispatchArray(op, operands, params)
	}

	shapes := make([]Shape, len(operands))
	kinds := make([]ValueKind, len(operands))
	for i, o := range operands {
		shapes[i] = o.Shape()
		kinds[i] = o.Kind()
	}
	broadcast, outShape, err := ResolveShapes(op, shapes)
	if err != nil {
		return nil, err
	}
	outKind := resolvedKind(spec, kinds)

	// Mixed vector/matrix products bind the vector operand first, on the
	// fold path as much as the backend path. Longer products chain
	// pairwise: v * m1 * m2 is (v * m1) * m2.
	if op == OpMultiplyMatrix && broadcast != Matrix {
		operands = vectorFirst(operands)
		if len(operands) > 2 {
			return g.chainMatrixProducts(operands, params)
		}
	}

	var branches *branchPair
	if spec.out == outScalarBool && params != nil && (params.IfTrue != nil || params.IfFalse != nil) {
		branches, err = g.classifyBranches(params)
		if err != nil {
			return nil, err
		}
		outShape = branches.shape
		outKind = branches.kind
	}

	if spec.foldable && allLiteral(operands) && (branches == nil || branches.literal()) {
		return g.fold(op, spec, operands, broadcast, outShape, outKind, branches)
	}

	return g.realize(op, spec, operands, broadcast, outShape, outKind, branches, params)
}

// dispatchArray resolves an operation element-wise over array operands.
// Arrays must agree on length; non-array operands broadcast against every
// element. One backend node is created per element; earlier elements stay
// in place if a later one fails.
func (g *Graph) dispatchArray(op Operator, operands []Nodex, params *Params) ([]Nodex, error) {
	length := -1
	for _, o := range operands {
		if !o.IsArray() {
			continue
		}
		if length >= 0 && o.Len() != length {
			return nil, fmt.Errorf("%w: array operands of length %d and %d", ErrDimensionMismatch, length, o.Len())
		}
		length = o.Len()
	}

	var outs [][]Nodex
	for i := 0; i < length; i++ {
		elem := make([]Nodex, len(operands))
		for j, o := range operands {
			if o.IsArray() {
				elem[j] = o.elems[i]
			} else {
				elem[j] = o
			}
		}
		results, err := g.Dispatch(op, elem, params)
		if err != nil {
			return nil, fmt.Errorf("array element %d: %w", i, err)
		}
		if outs == nil {
			outs = make([][]Nodex, len(results))
		}
		for k, r := range results {
			outs[k] = append(outs[k], r)
		}
	}
	if outs == nil {
		return nil, fmt.Errorf("%w: empty array operand", ErrDimensionMismatch)
	}

	results := make([]Nodex, len(outs))
	for k, elems := range outs {
		results[k] = FromElements(elems)
	}
	return results, nil
}

// branchPair holds classified ifTrue/ifFalse select values with their
// common broadcast shape and promoted kind.
type branchPair struct {
	ifTrue  Nodex
	ifFalse Nodex
	shape   Shape
	kind    ValueKind
}

func (b *branchPair) literal() bool {
	return b.ifTrue.IsLiteral() && b.ifFalse.IsLiteral()
}

func (g *Graph) classifyBranches(params *Params) (*branchPair, error) {
	one, zero := any(1.0), any(0.0)
	if params.IfTrue == nil {
		params.IfTrue = one
	}
	if params.IfFalse == nil {
		params.IfFalse = zero
	}
	t, err := g.Classify(params.IfTrue)
	if err != nil {
		return nil, fmt.Errorf("ifTrue: %w", err)
	}
	f, err := g.Classify(params.IfFalse)
	if err != nil {
		return nil, fmt.Errorf("ifFalse: %w", err)
	}
	shape, err := broadcastPair(t.Shape(), f.Shape())
	if err != nil {
		return nil, err
	}
	return &branchPair{ifTrue: t, ifFalse: f, shape: shape, kind: Promote(t.Kind(), f.Kind())}, nil
}

// broadcastPair applies the plain scalar-broadcast rule to a shape pair,
// independent of any operator table entry.
func broadcastPair(a, b Shape) (Shape, error) {
	switch {
	case a == b && a != Array:
		return a, nil
	case a == Scalar && (b == Vector2 || b == Vector3):
		return b, nil
	case b == Scalar && (a == Vector2 || a == Vector3):
		return a, nil
	default:
		return 0, fmt.Errorf("%w: cannot broadcast %s with %s", ErrDimensionMismatch, a, b)
	}
}

// fold evaluates a pure-literal dispatch in-process; no backend call.
func (g *Graph) fold(op Operator, spec *opSpec, operands []Nodex, broadcast, outShape Shape, outKind ValueKind, branches *branchPair) ([]Nodex, error) {
	lits := make([]Literal, len(operands))
	for i, o := range operands {
		lits[i] = *o.lit
	}

	switch {
	case op == OpDecompose:
		t, r, s := foldDecompose(lits[0])
		return []Nodex{
			literalNodex(outKind, t),
			literalNodex(outKind, r),
			literalNodex(outKind, s),
		}, nil
	case spec.out == outScalarBool:
		pred, err := foldPredicate(op, lits[0], lits[1], broadcast)
		if err != nil {
			return nil, err
		}
		if branches == nil {
			v := 0.0
			if pred {
				v = 1
			}
			return []Nodex{literalNodex(Bool, []float64{v})}, nil
		}
		chosen := *branches.ifFalse.lit
		if pred {
			chosen = *branches.ifTrue.lit
		}
		return []Nodex{literalNodex(outKind, expand(chosen, outShape))}, nil
	default:
		comps, err := foldArithmetic(op, lits, broadcast)
		if err != nil {
			return nil, err
		}
		return []Nodex{literalNodex(outKind, comps)}, nil
	}
}

func literalNodex(kind ValueKind, comps []float64) Nodex {
	lit, err := NewLiteral(kind, comps...)
	if err != nil {
		// Fold output lengths come from the shape table; a bad length is
		// a bug, not an input error.
		panic(err)
	}
	return FromLiteral(lit)
}

// realize creates the backend node pattern for a resolved dispatch and
// wraps its primary output(s).
func (g *Graph) realize(op Operator, spec *opSpec, operands []Nodex, broadcast, outShape Shape, outKind ValueKind, branches *branchPair, params *Params) ([]Nodex, error) {
	pattern, err := LookupPattern(op, broadcast)
	if err != nil {
		return nil, err
	}

	bindShape := broadcast
	if pattern.Pre != nil {
		// Route the operands through the reduction node; the main node
		// then consumes its scalar output against zero.
		pre, err := g.createPattern(*pattern.Pre, op, operands, broadcast, params)
		if err != nil {
			return nil, err
		}
		zero := literalNodex(Int, []float64{0})
		operands = []Nodex{pre, zero}
		bindShape = Scalar
	}

	handle, err := g.createNode(pattern, op, params)
	if err != nil {
		return nil, err
	}
	if err := g.bindOperands(handle, pattern, operands, bindShape); err != nil {
		return nil, err
	}

	primary := pattern.Primary
	if spec.out == outScalarBool {
		if branches == nil {
			// Predicate use: default select branches 1 and 0.
			if err := g.setStatic(Port{Node: handle, Attr: pattern.BranchTrue}, expand(literalOne, Vector3)); err != nil {
				return nil, err
			}
			if err := g.setStatic(Port{Node: handle, Attr: pattern.BranchFalse}, expand(literalZero, Vector3)); err != nil {
				return nil, err
			}
		} else {
			if err := g.bindInput(handle, pattern.BranchTrue, branches.ifTrue, branches.shape); err != nil {
				return nil, err
			}
			if err := g.bindInput(handle, pattern.BranchFalse, branches.ifFalse, branches.shape); err != nil {
				return nil, err
			}
			if outShape != Scalar {
				primary = pattern.BranchPrimary
			}
		}
	}

	if len(pattern.Outputs) > 0 {
		results := make([]Nodex, len(pattern.Outputs))
		for i, name := range pattern.Outputs {
			ref := NewAttributeReference(Port{Node: handle, Attr: name}, outShape, outKind)
			results[i] = FromReference(ref)
		}
		return results, nil
	}
	ref := NewAttributeReference(Port{Node: handle, Attr: primary}, outShape, outKind)
	return []Nodex{FromReference(ref)}, nil
}

var (
	literalOne  = Literal{shape: Scalar, kind: Int, comps: []float64{1}}
	literalZero = Literal{shape: Scalar, kind: Int, comps: []float64{0}}
)

// createPattern creates one pattern node, binds the operands and returns
// its primary output as a reference.
func (g *Graph) createPattern(pattern Pattern, op Operator, operands []Nodex, broadcast Shape, params *Params) (Nodex, error) {
	handle, err := g.createNode(pattern, op, params)
	if err != nil {
		return Nodex{}, err
	}
	if err := g.bindOperands(handle, pattern, operands, broadcast); err != nil {
		return Nodex{}, err
	}
	ref := NewAttributeReference(Port{Node: handle, Attr: pattern.Primary}, Scalar, Float)
	return FromReference(ref), nil
}

func (g *Graph) createNode(pattern Pattern, op Operator, params *Params) (string, error) {
	name := ""
	if params != nil {
		name = params.Name
	}
	if name == "" {
		g.seq[op]++
		name = fmt.Sprintf("%s%d", op, g.seq[op])
	}
	handle, err := g.backend.CreateNode(pattern.NodeKind, name)
	if err != nil {
		return "", backendErr("create %s node: %v", pattern.NodeKind, err)
	}

	keys := make([]string, 0, len(pattern.Settings))
	for k := range pattern.Settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := g.setStatic(Port{Node: handle, Attr: k}, []float64{pattern.Settings[k]}); err != nil {
			return "", err
		}
	}
	return handle, nil
}

func (g *Graph) bindOperands(handle string, pattern Pattern, operands []Nodex, broadcast Shape) error {
	if pattern.Variadic != "" {
		for i, o := range operands {
			if err := g.bindInput(handle, pattern.variadicPort(i), o, broadcast); err != nil {
				return err
			}
		}
		return nil
	}
	for j, portName := range pattern.Inputs {
		idx := j
		if pattern.OperandMap != nil {
			idx = pattern.OperandMap[j]
		}
		if idx >= len(operands) {
			continue // optional trailing port, e.g. length's point2
		}
		if err := g.bindInput(handle, portName, operands[idx], broadcast); err != nil {
			return err
		}
	}
	return nil
}

// bindInput supplies one operand to one input port: literals become static
// defaults, references become connections. Scalar operands feeding a wider
// port fan out component-wise.
func (g *Graph) bindInput(handle, portName string, operand Nodex, broadcast Shape) error {
	port := Port{Node: handle, Attr: portName}
	if lit, ok := operand.Literal(); ok {
		return g.setStatic(port, expand(lit, broadcast))
	}
	ref, ok := operand.Reference()
	if !ok {
		return fmt.Errorf("%w: cannot bind array to port %s", ErrDimensionMismatch, port)
	}
	if ref.shape == Scalar && broadcast != Scalar && operandWidens(broadcast) {
		for i := 0; i < broadcast.Components(); i++ {
			dst := g.backend.ComponentPort(port, i)
			if err := g.connectPorts(ref.port, dst); err != nil {
				return err
			}
		}
		return nil
	}
	return g.connectPorts(ref.port, port)
}

func operandWidens(shape Shape) bool {
	return shape == Vector2 || shape == Vector3
}

func (g *Graph) setStatic(port Port, value []float64) error {
	if err := g.backend.SetStaticValue(port, value); err != nil {
		return backendErr("set %s: %v", port, err)
	}
	return nil
}

func (g *Graph) connectPorts(src, dst Port) error {
	if debug.Dispatch() {
		debug.Logf("connect %s -> %s\n", src, dst)
	}
	if err := g.backend.Connect(src, dst); err != nil {
		return backendErr("connect %s -> %s: %v", src, dst, err)
	}
	return nil
}

// backendErr wraps a backend-side failure without losing its message.
func backendErr(format string, args ...any) error {
	for _, a := range args {
		if err, ok := a.(error); ok && errors.Is(err, ErrBackendNodeCreationFailure) {
			return err
		}
	}
	return fmt.Errorf("%w: "+format, append([]any{ErrBackendNodeCreationFailure}, args...)...)
}

// vectorFirst moves the single non-matrix operand of a mixed product to
// the front, keeping the matrix order.
func vectorFirst(operands []Nodex) []Nodex {
	if operands[0].Shape() != Matrix {
		return operands
	}
	for i, o := range operands {
		if o.Shape() != Matrix {
			out := make([]Nodex, 0, len(operands))
			out = append(out, o)
			out = append(out, operands[:i]...)
			out = append(out, operands[i+1:]...)
			return out
		}
	}
	return operands
}

// chainMatrixProducts folds a vector through each matrix in turn, so no
// trailing operand is ever dropped. The name hint applies to the final
// product only.
func (g *Graph) chainMatrixProducts(operands []Nodex, params *Params) ([]Nodex, error) {
	acc := operands[0]
	rest := operands[1:]
	for i, m := range rest {
		p := params
		if i < len(rest)-1 {
			p = nil
		}
		results, err := g.Dispatch(OpMultiplyMatrix, []Nodex{acc, m}, p)
		if err != nil {
			return nil, err
		}
		acc = results[0]
	}
	return []Nodex{acc}, nil
}

func hasArray(operands []Nodex) bool {
	for _, o := range operands {
		if o.IsArray() {
			return true
		}
	}
	return false
}

func allLiteral(operands []Nodex) bool {
	for _, o := range operands {
		if !o.IsLiteral() {
			return false
		}
	}
	return true
}

func arityString(spec *opSpec) string {
	if spec.maxArity < 0 {
		return fmt.Sprintf("at least %d", spec.minArity)
	}
	if spec.minArity == spec.maxArity {
		return fmt.Sprintf("exactly %d", spec.minArity)
	}
	return fmt.Sprintf("%d to %d", spec.minArity, spec.maxArity)
}
