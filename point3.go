package geom

import "math"

// Point3 is a location in 3D space. Its coordinates are ordered X, Y,
// Z everywhere order matters.
type Point3[T Scalar] struct {
	X, Y, Z T
}

// Pt3 is shorthand for constructing a Point3.
func Pt3[T Scalar](x, y, z T) Point3[T] {
	return Point3[T]{X: x, Y: y, Z: z}
}

// Pt3Uniform returns a Point3 with every coordinate set to v.
func Pt3Uniform[T Scalar](v T) Point3[T] {
	return Point3[T]{X: v, Y: v, Z: v}
}

// Pt3Min returns the Point3 with every coordinate at the scalar's
// minimum representable value.
func Pt3Min[T Integer]() Point3[T] {
	return Pt3Uniform(MinOf[T]())
}

// Pt3Max returns the Point3 with every coordinate at the scalar's
// maximum representable value.
func Pt3Max[T Integer]() Point3[T] {
	return Pt3Uniform(MaxOf[T]())
}

// Add returns the coordinate-wise sum of p and q.
func (p Point3[T]) Add(q Point3[T]) Point3[T] {
	return Pt3(p.X+q.X, p.Y+q.Y, p.Z+q.Z)
}

// Sub returns the coordinate-wise difference of p and q.
func (p Point3[T]) Sub(q Point3[T]) Point3[T] {
	return Pt3(p.X-q.X, p.Y-q.Y, p.Z-q.Z)
}

// Mul returns the coordinate-wise product of p and q.
func (p Point3[T]) Mul(q Point3[T]) Point3[T] {
	return Pt3(p.X*q.X, p.Y*q.Y, p.Z*q.Z)
}

// Div returns the coordinate-wise quotient of p and q, with the same
// divisor requirements as [Point.Div].
func (p Point3[T]) Div(q Point3[T]) Point3[T] {
	return Pt3(p.X/q.X, p.Y/q.Y, p.Z/q.Z)
}

// Scale returns p with every coordinate multiplied by v.
func (p Point3[T]) Scale(v T) Point3[T] {
	return Pt3(p.X*v, p.Y*v, p.Z*v)
}

// Less reports whether the sum of p's coordinates is less than the
// sum of q's. See [Point.Less] for the ordering caveats.
func (p Point3[T]) Less(q Point3[T]) bool {
	return p.X+p.Y+p.Z < q.X+q.Y+q.Z
}

// Magnitude returns the Euclidean distance from the origin to p,
// computed in float64.
func (p Point3[T]) Magnitude() float64 {
	x, y, z := float64(p.X), float64(p.Y), float64(p.Z)
	return math.Sqrt(x*x + y*y + z*z)
}
