package geom

// The Wrap function variants perform overflow-wrapping arithmetic:
// they always succeed, and a result that does not fit the scalar's
// bit width silently wraps to the bit-truncated two's-complement
// value. Unlike the ordinary methods, overflow here is defined
// behavior, not a precondition violation.

// WrapAdd returns the coordinate-wise sum of p and q, wrapping on
// overflow.
func WrapAdd[T Integer](p, q Point[T]) Point[T] {
	return Pt(p.X+q.X, p.Y+q.Y)
}

// WrapSub returns the coordinate-wise difference of p and q, wrapping
// on overflow.
func WrapSub[T Integer](p, q Point[T]) Point[T] {
	return Pt(p.X-q.X, p.Y-q.Y)
}

// WrapMul returns the coordinate-wise product of p and q, wrapping on
// overflow.
func WrapMul[T Integer](p, q Point[T]) Point[T] {
	return Pt(p.X*q.X, p.Y*q.Y)
}

// WrapAdd3 returns the coordinate-wise sum of p and q, wrapping on
// overflow.
func WrapAdd3[T Integer](p, q Point3[T]) Point3[T] {
	return Pt3(p.X+q.X, p.Y+q.Y, p.Z+q.Z)
}

// WrapSub3 returns the coordinate-wise difference of p and q,
// wrapping on overflow.
func WrapSub3[T Integer](p, q Point3[T]) Point3[T] {
	return Pt3(p.X-q.X, p.Y-q.Y, p.Z-q.Z)
}

// WrapMul3 returns the coordinate-wise product of p and q, wrapping
// on overflow.
func WrapMul3[T Integer](p, q Point3[T]) Point3[T] {
	return Pt3(p.X*q.X, p.Y*q.Y, p.Z*q.Z)
}

// WrapAddDelta returns the coordinate-wise sum of d and e, wrapping
// on overflow.
func WrapAddDelta[T Integer](d, e Delta[T]) Delta[T] {
	return Dl(d.DX+e.DX, d.DY+e.DY)
}

// WrapSubDelta returns the coordinate-wise difference of d and e,
// wrapping on overflow.
func WrapSubDelta[T Integer](d, e Delta[T]) Delta[T] {
	return Dl(d.DX-e.DX, d.DY-e.DY)
}
