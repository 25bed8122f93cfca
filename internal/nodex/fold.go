package nodex

import (
	"fmt"
	"math"
)

// expand broadcasts a literal's components to the component count of the
// broadcast shape. Only scalars grow; everything else already matches.
func expand(l Literal, shape Shape) []float64 {
	n := shape.Components()
	if l.shape == Scalar && n > 1 {
		out := make([]float64, n)
		for i := range out {
			out[i] = l.comps[0]
		}
		return out
	}
	return append([]float64(nil), l.comps...)
}

// foldArithmetic evaluates a single-output operator over pure literals.
// Operands are broadcast to the given shape first. Comparisons and
// decompose do not fold here.
func foldArithmetic(op Operator, operands []Literal, broadcast Shape) ([]float64, error) {
	if op == OpMultiplyMatrix {
		return foldMultiplyMatrix(operands)
	}

	vals := make([][]float64, len(operands))
	for i, l := range operands {
		vals[i] = expand(l, broadcast)
	}

	switch op {
	case OpAdd, OpSum:
		return foldAccumulate(vals, func(acc, x float64) float64 { return acc + x }), nil
	case OpSub:
		return foldAccumulate(vals, func(acc, x float64) float64 { return acc - x }), nil
	case OpAverage:
		out := foldAccumulate(vals, func(acc, x float64) float64 { return acc + x })
		for i := range out {
			out[i] /= float64(len(vals))
		}
		return out, nil
	case OpMul:
		return mapPair(vals[0], vals[1], func(a, b float64) float64 { return a * b }), nil
	case OpDiv:
		return mapPair(vals[0], vals[1], func(a, b float64) float64 { return a / b }), nil
	case OpPow:
		return mapPair(vals[0], vals[1], math.Pow), nil
	case OpClamp:
		out := make([]float64, len(vals[0]))
		for i := range out {
			out[i] = math.Min(math.Max(vals[0][i], vals[1][i]), vals[2][i])
		}
		return out, nil
	case OpBlend:
		// blendColors semantics: color1*blender + color2*(1-blender).
		out := make([]float64, len(vals[0]))
		for i := range out {
			t := vals[2][i]
			out[i] = vals[0][i]*t + vals[1][i]*(1-t)
		}
		return out, nil
	case OpDot:
		return []float64{dot3(vals[0], vals[1])}, nil
	case OpCross:
		a, b := vals[0], vals[1]
		return []float64{
			a[1]*b[2] - a[2]*b[1],
			a[2]*b[0] - a[0]*b[2],
			a[0]*b[1] - a[1]*b[0],
		}, nil
	case OpNormalize:
		v := vals[0]
		n := math.Sqrt(dot3(v, v))
		if n == 0 {
			return []float64{0, 0, 0}, nil
		}
		return []float64{v[0] / n, v[1] / n, v[2] / n}, nil
	case OpLength:
		v := vals[0]
		return []float64{math.Sqrt(dot3(v, v))}, nil
	case OpSquareLength:
		v := vals[0]
		return []float64{dot3(v, v)}, nil
	case OpDistanceTo:
		d := mapPair(vals[0], vals[1], func(a, b float64) float64 { return a - b })
		return []float64{math.Sqrt(dot3(d, d))}, nil
	case OpAngleTo, OpAngleBetween:
		a, b := vals[0], vals[1]
		na, nb := math.Sqrt(dot3(a, a)), math.Sqrt(dot3(b, b))
		if na == 0 || nb == 0 {
			return []float64{0}, nil
		}
		cos := dot3(a, b) / (na * nb)
		cos = math.Min(math.Max(cos, -1), 1)
		return []float64{math.Acos(cos)}, nil
	case OpInverse:
		return mat4Inverse(vals[0])
	default:
		return nil, fmt.Errorf("%w: operator %q is not constant-foldable", ErrDimensionMismatch, op)
	}
}

// foldPredicate evaluates a comparison over two broadcast literals.
// Component-wise results reduce by "all components" for eq, "any component
// differs" for neq; ordering comparisons are scalar by construction.
func foldPredicate(op Operator, a, b Literal, broadcast Shape) (bool, error) {
	av, bv := expand(a, broadcast), expand(b, broadcast)
	switch op {
	case OpEq:
		for i := range av {
			if av[i] != bv[i] {
				return false, nil
			}
		}
		return true, nil
	case OpNeq:
		for i := range av {
			if av[i] != bv[i] {
				return true, nil
			}
		}
		return false, nil
	case OpGt:
		return av[0] > bv[0], nil
	case OpGe:
		return av[0] >= bv[0], nil
	case OpLt:
		return av[0] < bv[0], nil
	case OpLe:
		return av[0] <= bv[0], nil
	default:
		return false, fmt.Errorf("%w: %q is not a comparison", ErrDimensionMismatch, op)
	}
}

// foldDecompose splits a literal 4x4 transform (row-major, row-vector
// convention) into translate, XYZ euler rotation in radians, and scale.
func foldDecompose(m Literal) (translate, rotate, scale []float64) {
	c := m.comps
	translate = []float64{c[12], c[13], c[14]}

	rows := [3][3]float64{
		{c[0], c[1], c[2]},
		{c[4], c[5], c[6]},
		{c[8], c[9], c[10]},
	}
	scale = make([]float64, 3)
	for i, r := range rows {
		scale[i] = math.Sqrt(r[0]*r[0] + r[1]*r[1] + r[2]*r[2])
	}

	// Normalize the basis rows before extracting rotation.
	var r [3][3]float64
	for i := range rows {
		s := scale[i]
		if s == 0 {
			s = 1
		}
		for j := range rows[i] {
			r[i][j] = rows[i][j] / s
		}
	}

	// Row-vector XYZ euler: m02 = -sin(ry).
	sy := -r[0][2]
	sy = math.Min(math.Max(sy, -1), 1)
	ry := math.Asin(sy)
	var rx, rz float64
	if math.Abs(sy) < 1-1e-9 {
		rx = math.Atan2(r[1][2], r[2][2])
		rz = math.Atan2(r[0][1], r[0][0])
	} else {
		// Gimbal lock: fold the z rotation into x.
		rx = math.Atan2(sy*r[1][0], r[1][1])
		rz = 0
	}
	rotate = []float64{rx, ry, rz}
	return translate, rotate, scale
}

func foldMultiplyMatrix(operands []Literal) ([]float64, error) {
	if operands[0].shape == Vector3 {
		// Vector by matrix: direction transform through the 3x3 basis.
		v := operands[0].comps
		m := operands[1].comps
		return []float64{
			v[0]*m[0] + v[1]*m[4] + v[2]*m[8],
			v[0]*m[1] + v[1]*m[5] + v[2]*m[9],
			v[0]*m[2] + v[1]*m[6] + v[2]*m[10],
		}, nil
	}
	out := append([]float64(nil), operands[0].comps...)
	for _, m := range operands[1:] {
		out = mat4Mul(out, m.comps)
	}
	return out, nil
}

func foldAccumulate(vals [][]float64, f func(acc, x float64) float64) []float64 {
	out := append([]float64(nil), vals[0]...)
	for _, v := range vals[1:] {
		for i := range out {
			out[i] = f(out[i], v[i])
		}
	}
	return out
}

func mapPair(a, b []float64, f func(x, y float64) float64) []float64 {
	out := make([]float64, len(a))
	for i := range out {
		out[i] = f(a[i], b[i])
	}
	return out
}

func dot3(a, b []float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// mat4Mul multiplies two row-major 4x4 matrices.
func mat4Mul(a, b []float64) []float64 {
	out := make([]float64, 16)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += a[i*4+k] * b[k*4+j]
			}
			out[i*4+j] = sum
		}
	}
	return out
}

// mat4Inverse inverts a row-major 4x4 matrix by Gauss-Jordan elimination.
func mat4Inverse(m []float64) ([]float64, error) {
	// Augmented [m | I].
	var a [4][8]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			a[i][j] = m[i*4+j]
		}
		a[i][4+i] = 1
	}
	for col := 0; col < 4; col++ {
		pivot := col
		for r := col + 1; r < 4; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, fmt.Errorf("%w: singular matrix has no inverse", ErrUnsupportedInputKind)
		}
		a[col], a[pivot] = a[pivot], a[col]
		p := a[col][col]
		for j := 0; j < 8; j++ {
			a[col][j] /= p
		}
		for r := 0; r < 4; r++ {
			if r == col {
				continue
			}
			f := a[r][col]
			for j := 0; j < 8; j++ {
				a[r][j] -= f * a[col][j]
			}
		}
	}
	out := make([]float64, 16)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i*4+j] = a[i][4+j]
		}
	}
	return out, nil
}
