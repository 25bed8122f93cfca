// Package exprbuild lowers math expression strings onto graph dispatch
// calls, so chains like "a + b * c" or "dot(n, up) > 0 ? 1 : -1" build the
// same node networks as the named entry points.
package exprbuild

import (
	"fmt"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"

	"github.com/BigRoy/nodex/internal/nodex"
)

// Builder evaluates expressions against one graph. Identifiers resolve
// through the environment first and fall back to backend attribute
// addresses (pSphere1.translateX).
type Builder struct {
	graph *nodex.Graph
	env   map[string]any
}

// New creates a builder over the graph with an optional identifier
// environment. Environment values take the Classify input surface.
func New(g *nodex.Graph, env map[string]any) *Builder {
	if env == nil {
		env = map[string]any{}
	}
	return &Builder{graph: g, env: env}
}

// Bind adds or replaces one environment value.
func (b *Builder) Bind(name string, value any) {
	b.env[name] = value
}

// Eval parses and evaluates one expression, building backend nodes as
// needed, and returns the resulting value.
func (b *Builder) Eval(src string) (nodex.Nodex, error) {
	tree, err := parser.Parse(src)
	if err != nil {
		return nodex.Nodex{}, fmt.Errorf("parse expression: %w", err)
	}
	out, err := b.eval(tree.Node)
	if err != nil {
		return nodex.Nodex{}, err
	}
	return b.graph.Classify(out)
}

// binaryOps maps expression operators onto dispatch operators.
var binaryOps = map[string]nodex.Operator{
	"+":  nodex.OpAdd,
	"-":  nodex.OpSub,
	"*":  nodex.OpMul,
	"/":  nodex.OpDiv,
	"**": nodex.OpPow,
	"^":  nodex.OpPow,
	"==": nodex.OpEq,
	"!=": nodex.OpNeq,
	">":  nodex.OpGt,
	">=": nodex.OpGe,
	"<":  nodex.OpLt,
	"<=": nodex.OpLe,
}

var comparisonOps = map[string]bool{
	"==": true, "!=": true, ">": true, ">=": true, "<": true, "<=": true,
}

// callOps maps call syntax onto operators; arity is validated by dispatch.
var callOps = map[string]nodex.Operator{
	"add":            nodex.OpAdd,
	"sub":            nodex.OpSub,
	"mul":            nodex.OpMul,
	"div":            nodex.OpDiv,
	"pow":            nodex.OpPow,
	"sum":            nodex.OpSum,
	"average":        nodex.OpAverage,
	"clamp":          nodex.OpClamp,
	"blend":          nodex.OpBlend,
	"dot":            nodex.OpDot,
	"cross":          nodex.OpCross,
	"normalize":      nodex.OpNormalize,
	"length":         nodex.OpLength,
	"squareLength":   nodex.OpSquareLength,
	"angleTo":        nodex.OpAngleTo,
	"distanceTo":     nodex.OpDistanceTo,
	"angleBetween":   nodex.OpAngleBetween,
	"multiplyMatrix": nodex.OpMultiplyMatrix,
	"inverse":        nodex.OpInverse,
}

func (b *Builder) eval(node ast.Node) (any, error) {
	switch n := node.(type) {
	case *ast.IntegerNode:
		return n.Value, nil
	case *ast.FloatNode:
		return n.Value, nil
	case *ast.BoolNode:
		return n.Value, nil
	case *ast.StringNode:
		return n.Value, nil
	case *ast.IdentifierNode:
		if v, ok := b.env[n.Value]; ok {
			return v, nil
		}
		return nil, fmt.Errorf("%w: unknown identifier %q", nodex.ErrUnsupportedInputKind, n.Value)
	case *ast.MemberNode:
		return b.memberAddress(n)
	case *ast.UnaryNode:
		return b.evalUnary(n)
	case *ast.BinaryNode:
		return b.evalBinary(n)
	case *ast.ConditionalNode:
		return b.evalConditional(n)
	case *ast.ArrayNode:
		items := make([]any, len(n.Nodes))
		for i, elem := range n.Nodes {
			v, err := b.eval(elem)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return items, nil
	case *ast.CallNode:
		return b.evalCall(n)
	case *ast.BuiltinNode:
		// Names colliding with expr builtins (sum) parse as BuiltinNode.
		op, ok := callOps[n.Name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown function %q", nodex.ErrUnsupportedInputKind, n.Name)
		}
		return b.evalArgs(op, n.Arguments)
	default:
		return nil, fmt.Errorf("%w: unsupported expression node %T", nodex.ErrUnsupportedInputKind, node)
	}
}

// memberAddress flattens a member chain into a backend attribute address.
// Environment values shadow scene nodes for the chain root.
func (b *Builder) memberAddress(n *ast.MemberNode) (any, error) {
	switch root := n.Node.(type) {
	case *ast.IdentifierNode:
		prop, ok := n.Property.(*ast.StringNode)
		if !ok {
			return nil, fmt.Errorf("%w: computed attribute access", nodex.ErrUnsupportedInputKind)
		}
		if _, shadowed := b.env[root.Value]; shadowed {
			return nil, fmt.Errorf("%w: %q is bound in the environment, not a scene node",
				nodex.ErrUnsupportedInputKind, root.Value)
		}
		return root.Value + "." + prop.Value, nil
	case *ast.MemberNode:
		base, err := b.memberAddress(root)
		if err != nil {
			return nil, err
		}
		prop, ok := n.Property.(*ast.StringNode)
		if !ok {
			return nil, fmt.Errorf("%w: computed attribute access", nodex.ErrUnsupportedInputKind)
		}
		return base.(string) + "." + prop.Value, nil
	default:
		return nil, fmt.Errorf("%w: unsupported attribute access root %T", nodex.ErrUnsupportedInputKind, n.Node)
	}
}

func (b *Builder) evalUnary(n *ast.UnaryNode) (any, error) {
	v, err := b.eval(n.Node)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case "+":
		return v, nil
	case "-":
		return b.dispatch(nodex.OpSub, []any{0, v}, nil)
	default:
		return nil, fmt.Errorf("%w: unary %q", nodex.ErrUnsupportedInputKind, n.Operator)
	}
}

func (b *Builder) evalBinary(n *ast.BinaryNode) (any, error) {
	op, ok := binaryOps[n.Operator]
	if !ok {
		return nil, fmt.Errorf("%w: operator %q", nodex.ErrUnsupportedInputKind, n.Operator)
	}
	left, err := b.eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := b.eval(n.Right)
	if err != nil {
		return nil, err
	}
	return b.dispatch(op, []any{left, right}, nil)
}

// evalConditional lowers "cond ? a : b" onto the comparison's select
// branches; only comparison conditions have a node realization.
func (b *Builder) evalConditional(n *ast.ConditionalNode) (any, error) {
	cond, ok := n.Cond.(*ast.BinaryNode)
	if !ok || !comparisonOps[cond.Operator] {
		return nil, fmt.Errorf("%w: conditional requires a comparison condition", nodex.ErrUnsupportedInputKind)
	}
	left, err := b.eval(cond.Left)
	if err != nil {
		return nil, err
	}
	right, err := b.eval(cond.Right)
	if err != nil {
		return nil, err
	}
	ifTrue, err := b.eval(n.Exp1)
	if err != nil {
		return nil, err
	}
	ifFalse, err := b.eval(n.Exp2)
	if err != nil {
		return nil, err
	}
	return b.dispatch(binaryOps[cond.Operator], []any{left, right},
		&nodex.Params{IfTrue: ifTrue, IfFalse: ifFalse})
}

func (b *Builder) evalCall(n *ast.CallNode) (any, error) {
	ident, ok := n.Callee.(*ast.IdentifierNode)
	if !ok {
		return nil, fmt.Errorf("%w: computed call target", nodex.ErrUnsupportedInputKind)
	}
	op, ok := callOps[ident.Value]
	if !ok {
		return nil, fmt.Errorf("%w: unknown function %q", nodex.ErrUnsupportedInputKind, ident.Value)
	}
	return b.evalArgs(op, n.Arguments)
}

func (b *Builder) evalArgs(op nodex.Operator, argNodes []ast.Node) (any, error) {
	args := make([]any, len(argNodes))
	for i, arg := range argNodes {
		v, err := b.eval(arg)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return b.dispatch(op, args, nil)
}

func (b *Builder) dispatch(op nodex.Operator, inputs []any, params *nodex.Params) (any, error) {
	operands := make([]nodex.Nodex, len(inputs))
	for i, in := range inputs {
		o, err := b.graph.Classify(in)
		if err != nil {
			return nil, err
		}
		operands[i] = o
	}
	results, err := b.graph.Dispatch(op, operands, params)
	if err != nil {
		return nil, err
	}
	return results[0], nil
}
