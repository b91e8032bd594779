package geom

// Matrix represents a 2D affine transformation matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// which maps
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// In the vocabulary of office formats A is sx, B is shx, D is shy, E is sy,
// C is tx and F is ty.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Multiply returns m * other, which applies other first and m second.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// IsIdentity reports whether the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}
