// Copyright 2026 Nodex Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nodex provides the public API for building math node networks
// inside an attribute-graph backend.
//
// The package defines the core types for dimension-aware math dispatch:
//   - Nodex: a classified value (literal, attribute reference or array)
//   - Graph: the dispatch surface that realizes operations as backend nodes
//   - Backend: interface to the attribute graph being built against
//   - Shape, ValueKind: dimension and numeric flavor of a value
//
// Example:
//
//	backend := memory.New()
//	g := nodex.NewGraph(backend)
//	out, err := g.Add("pSphere1.translate", []float64{0, 1, 0})
package nodex

import (
	internal "github.com/BigRoy/nodex/internal/nodex"
)

// Type aliases for public API

// Shape is the dimensionality of a value.
type Shape = internal.Shape

// Shape constants.
const (
	Scalar  Shape = internal.Scalar
	Vector2 Shape = internal.Vector2
	Vector3 Shape = internal.Vector3
	Matrix  Shape = internal.Matrix
	Array   Shape = internal.Array
)

// ValueKind is the numeric flavor of a value.
type ValueKind = internal.ValueKind

// ValueKind constants, in promotion order.
const (
	Bool  ValueKind = internal.Bool
	Int   ValueKind = internal.Int
	Float ValueKind = internal.Float
)

// Promote returns the wider of two value kinds.
func Promote(a, b ValueKind) ValueKind { return internal.Promote(a, b) }

// Nodex is a classified operand: a literal, an attribute reference or an
// array of either.
type Nodex = internal.Nodex

// Literal is a constant value with a shape and kind.
type Literal = internal.Literal

// AttributeReference points at a live backend attribute.
type AttributeReference = internal.AttributeReference

// NewLiteral builds a literal from components; the component count must
// correspond to a shape (1, 2, 3 or 16).
func NewLiteral(kind ValueKind, comps ...float64) (Literal, error) {
	return internal.NewLiteral(kind, comps...)
}

// NewAttributeReference builds a reference with known metadata.
func NewAttributeReference(port Port, shape Shape, kind ValueKind) AttributeReference {
	return internal.NewAttributeReference(port, shape, kind)
}

// FromLiteral wraps a literal as an operand.
func FromLiteral(l Literal) Nodex { return internal.FromLiteral(l) }

// FromReference wraps a reference as an operand.
func FromReference(r AttributeReference) Nodex { return internal.FromReference(r) }

// FromElements wraps operands as an array operand.
func FromElements(elems []Nodex) Nodex { return internal.FromElements(elems) }

// Operator names a dispatchable math operation.
type Operator = internal.Operator

// Operator constants.
const (
	OpAdd Operator = internal.OpAdd
	OpSub Operator = internal.OpSub
	OpMul Operator = internal.OpMul
	OpDiv Operator = internal.OpDiv
	OpPow Operator = internal.OpPow

	OpEq  Operator = internal.OpEq
	OpNeq Operator = internal.OpNeq
	OpGt  Operator = internal.OpGt
	OpGe  Operator = internal.OpGe
	OpLt  Operator = internal.OpLt
	OpLe  Operator = internal.OpLe

	OpSum     Operator = internal.OpSum
	OpAverage Operator = internal.OpAverage
	OpClamp   Operator = internal.OpClamp
	OpBlend   Operator = internal.OpBlend

	OpDot          Operator = internal.OpDot
	OpCross        Operator = internal.OpCross
	OpNormalize    Operator = internal.OpNormalize
	OpLength       Operator = internal.OpLength
	OpSquareLength Operator = internal.OpSquareLength
	OpAngleTo      Operator = internal.OpAngleTo
	OpDistanceTo   Operator = internal.OpDistanceTo
	OpAngleBetween Operator = internal.OpAngleBetween

	OpMultiplyMatrix Operator = internal.OpMultiplyMatrix
	OpInverse        Operator = internal.OpInverse
	OpDecompose      Operator = internal.OpDecompose
)

// Operators returns every supported operator in stable order.
func Operators() []Operator { return internal.Operators() }

// ResolveBinary resolves the broadcast and output shapes for one operator
// over two operand shapes.
func ResolveBinary(op Operator, a, b Shape) (broadcast, out Shape, err error) {
	return internal.ResolveBinary(op, a, b)
}

// ResolveShapes resolves the broadcast and output shapes for one operator
// over any number of operand shapes.
func ResolveShapes(op Operator, shapes []Shape) (broadcast, out Shape, err error) {
	return internal.ResolveShapes(op, shapes)
}

// Graph dispatches math operations against a backend.
type Graph = internal.Graph

// Params carries optional per-dispatch settings, such as the select
// branches of a comparison.
type Params = internal.Params

// NewGraph creates a dispatch graph over a backend.
//
// Example:
//
//	g := nodex.NewGraph(nodex.NewMockBackend())
//	sum, err := g.Add(1, 2)
func NewGraph(b Backend) *Graph { return internal.NewGraph(b) }

// Sentinel errors. Wrapped errors returned by the graph match these with
// errors.Is.
var (
	ErrUnsupportedInputKind       = internal.ErrUnsupportedInputKind
	ErrDimensionMismatch          = internal.ErrDimensionMismatch
	ErrInvalidOperatorArity       = internal.ErrInvalidOperatorArity
	ErrNonAdaptableConnection     = internal.ErrNonAdaptableConnection
	ErrUnknownAttributeAddress    = internal.ErrUnknownAttributeAddress
	ErrBackendNodeCreationFailure = internal.ErrBackendNodeCreationFailure
)
