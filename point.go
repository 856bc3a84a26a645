package geom

import "math"

// Point is a location in 2D space. Its coordinates are ordered X
// then Y everywhere order matters.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for constructing a Point.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// PtUniform returns a Point with every coordinate set to v.
func PtUniform[T Scalar](v T) Point[T] {
	return Point[T]{X: v, Y: v}
}

// PtMin returns the Point with every coordinate at the scalar's
// minimum representable value.
func PtMin[T Integer]() Point[T] {
	return PtUniform(MinOf[T]())
}

// PtMax returns the Point with every coordinate at the scalar's
// maximum representable value.
func PtMax[T Integer]() Point[T] {
	return PtUniform(MaxOf[T]())
}

// Add returns the coordinate-wise sum of p and q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Pt(p.X+q.X, p.Y+q.Y)
}

// Sub returns the coordinate-wise difference of p and q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Pt(p.X-q.X, p.Y-q.Y)
}

// Mul returns the coordinate-wise product of p and q.
func (p Point[T]) Mul(q Point[T]) Point[T] {
	return Pt(p.X*q.X, p.Y*q.Y)
}

// Div returns the coordinate-wise quotient of p and q. For integer
// scalars it truncates toward zero, and every coordinate of q must be
// non-zero. For floating scalars it follows IEEE 754.
func (p Point[T]) Div(q Point[T]) Point[T] {
	return Pt(p.X/q.X, p.Y/q.Y)
}

// Scale returns p with every coordinate multiplied by v.
func (p Point[T]) Scale(v T) Point[T] {
	return Pt(p.X*v, p.Y*v)
}

// Less reports whether the sum of p's coordinates is less than the
// sum of q's. This is a weak ordering: two unequal points whose
// coordinates sum to the same value are unordered relative to each
// other. It is not lexicographic.
func (p Point[T]) Less(q Point[T]) bool {
	return p.X+p.Y < q.X+q.Y
}

// Shift returns p moved by d.
func (p Point[T]) Shift(d Delta[T]) Point[T] {
	return Pt(p.X+d.DX, p.Y+d.DY)
}

// To returns the displacement from p to q.
func (p Point[T]) To(q Point[T]) Delta[T] {
	return Dl(q.X-p.X, q.Y-p.Y)
}

// Magnitude returns the Euclidean distance from the origin to p,
// computed in float64. For 64-bit integer coordinates the conversion
// may lose precision.
func (p Point[T]) Magnitude() float64 {
	return math.Hypot(float64(p.X), float64(p.Y))
}
