package geom

// Neg returns p with every coordinate replaced by its additive
// inverse. Negating a coordinate at a signed integer type's minimum
// value is a precondition violation: the inverse is not
// representable, and the wrapped result must not be relied upon.
func Neg[T Signable](p Point[T]) Point[T] {
	return Pt(-p.X, -p.Y)
}

// Neg3 returns p with every coordinate replaced by its additive
// inverse, with the same precondition as [Neg].
func Neg3[T Signable](p Point3[T]) Point3[T] {
	return Pt3(-p.X, -p.Y, -p.Z)
}

// NegDelta returns the displacement opposite to d, with the same
// precondition as [Neg].
func NegDelta[T Signable](d Delta[T]) Delta[T] {
	return Dl(-d.DX, -d.DY)
}
