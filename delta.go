package geom

import "math"

// Delta is a displacement between two locations in 2D space. It is
// the type that moves a [Point] and grows or shrinks a [Size].
type Delta[T Scalar] struct {
	DX, DY T
}

// Dl is shorthand for constructing a Delta.
func Dl[T Scalar](dx, dy T) Delta[T] {
	return Delta[T]{DX: dx, DY: dy}
}

// DlUniform returns a Delta with every coordinate set to v.
func DlUniform[T Scalar](v T) Delta[T] {
	return Delta[T]{DX: v, DY: v}
}

// DlMin returns the Delta with every coordinate at the scalar's
// minimum representable value.
func DlMin[T Integer]() Delta[T] {
	return DlUniform(MinOf[T]())
}

// DlMax returns the Delta with every coordinate at the scalar's
// maximum representable value.
func DlMax[T Integer]() Delta[T] {
	return DlUniform(MaxOf[T]())
}

// Add returns the coordinate-wise sum of d and e.
func (d Delta[T]) Add(e Delta[T]) Delta[T] {
	return Dl(d.DX+e.DX, d.DY+e.DY)
}

// Sub returns the coordinate-wise difference of d and e.
func (d Delta[T]) Sub(e Delta[T]) Delta[T] {
	return Dl(d.DX-e.DX, d.DY-e.DY)
}

// Scale returns d with every coordinate multiplied by v.
func (d Delta[T]) Scale(v T) Delta[T] {
	return Dl(d.DX*v, d.DY*v)
}

// Div returns d with every coordinate divided by v, with the same
// divisor requirements as [Point.Div].
func (d Delta[T]) Div(v T) Delta[T] {
	return Dl(d.DX/v, d.DY/v)
}

// Less reports whether the sum of d's coordinates is less than the
// sum of e's. See [Point.Less] for the ordering caveats.
func (d Delta[T]) Less(e Delta[T]) bool {
	return d.DX+d.DY < e.DX+e.DY
}

// Magnitude returns the Euclidean length of d, computed in float64.
func (d Delta[T]) Magnitude() float64 {
	return math.Hypot(float64(d.DX), float64(d.DY))
}
