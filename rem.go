package geom

import "math"

// Rem returns the coordinate-wise remainder of p divided by q, using
// Go's truncated integer remainder. Every coordinate of q must be
// non-zero.
func Rem[T Integer](p, q Point[T]) Point[T] {
	return Pt(p.X%q.X, p.Y%q.Y)
}

// Rem3 returns the coordinate-wise remainder of p divided by q, with
// the same requirements as [Rem].
func Rem3[T Integer](p, q Point3[T]) Point3[T] {
	return Pt3(p.X%q.X, p.Y%q.Y, p.Z%q.Z)
}

// FRem returns the coordinate-wise floating remainder of p divided by
// q, following math.Mod: the result keeps the sign of the dividend.
func FRem[T Float](p, q Point[T]) Point[T] {
	return Pt(
		T(math.Mod(float64(p.X), float64(q.X))),
		T(math.Mod(float64(p.Y), float64(q.Y))),
	)
}

// FRem3 returns the coordinate-wise floating remainder of p divided
// by q, following math.Mod.
func FRem3[T Float](p, q Point3[T]) Point3[T] {
	return Pt3(
		T(math.Mod(float64(p.X), float64(q.X))),
		T(math.Mod(float64(p.Y), float64(q.Y))),
		T(math.Mod(float64(p.Z), float64(q.Z))),
	)
}
