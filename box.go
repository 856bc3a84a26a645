package geom

// Box is an axis-aligned 2D region described by an origin corner and
// an extent. The origin and size are independently owned values, not
// shared references. The zero Box has its origin at the vector zero
// and zero size.
type Box[T Scalar] struct {
	Origin Point[T]
	Size   Size[T]
}

// Bx is shorthand for constructing a Box.
func Bx[T Scalar](origin Point[T], size Size[T]) Box[T] {
	return Box[T]{Origin: origin, Size: size}
}

// Shift returns b moved by d. The size is unchanged.
func (b Box[T]) Shift(d Delta[T]) Box[T] {
	return Bx(b.Origin.Shift(d), b.Size)
}

// Resize returns b with the given size. The origin is unchanged.
func (b Box[T]) Resize(size Size[T]) Box[T] {
	return Bx(b.Origin, size)
}

// Canon returns the canonical form of b: a box covering the same
// region with non-negative width and height.
func (b Box[T]) Canon() Box[T] {
	if b.Size.Width < 0 {
		b.Origin.X += b.Size.Width
		b.Size.Width = -b.Size.Width
	}
	if b.Size.Height < 0 {
		b.Origin.Y += b.Size.Height
		b.Size.Height = -b.Size.Height
	}
	return b
}

// Empty reports whether b covers no area.
func (b Box[T]) Empty() bool {
	return b.Size.Empty()
}

// Contains reports whether p is inside b. Points on the origin edges
// are inside; points on the far edges are not.
func (b Box[T]) Contains(p Point[T]) bool {
	return p.X >= b.Origin.X && p.X < b.Origin.X+b.Size.Width &&
		p.Y >= b.Origin.Y && p.Y < b.Origin.Y+b.Size.Height
}

// Center returns the center of an integer-coordinate box. The half
// extent is computed with an arithmetic right shift, so an odd
// negative extent rounds toward negative infinity rather than toward
// zero. [CenterF] is the floating-point counterpart.
func Center[T Integer](b Box[T]) Point[T] {
	return Pt(b.Origin.X+b.Size.Width>>1, b.Origin.Y+b.Size.Height>>1)
}

// CenterF returns the center of a floating-point-coordinate box,
// using true division for the half extent.
func CenterF[T Float](b Box[T]) Point[T] {
	return Pt(b.Origin.X+b.Size.Width/2, b.Origin.Y+b.Size.Height/2)
}
