package geom

import (
	"image"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// ImagePt converts an integer-coordinate point to an image.Point.
// Coordinates outside the range of int are a precondition violation.
func ImagePt[T Integer](p Point[T]) image.Point {
	return image.Pt(int(p.X), int(p.Y))
}

// PtFromImage converts an image.Point to a Point.
func PtFromImage(p image.Point) Point[int] {
	return Pt(p.X, p.Y)
}

// ImageRect converts an integer-coordinate box to an
// image.Rectangle, with the same precondition as [ImagePt].
func ImageRect[T Integer](b Box[T]) image.Rectangle {
	return image.Rect(
		int(b.Origin.X),
		int(b.Origin.Y),
		int(b.Origin.X+b.Size.Width),
		int(b.Origin.Y+b.Size.Height),
	)
}

// BoxFromImage converts an image.Rectangle to a Box.
func BoxFromImage(r image.Rectangle) Box[int] {
	return Bx(Pt(r.Min.X, r.Min.Y), Sz(r.Dx(), r.Dy()))
}

// R2 converts p to a gonum r2.Vec for float computation beyond this
// package. The conversion has the same precision caveat as
// [Point.Magnitude].
func R2[T Scalar](p Point[T]) r2.Vec {
	return r2.Vec{X: float64(p.X), Y: float64(p.Y)}
}

// R2Delta converts d to a gonum r2.Vec.
func R2Delta[T Scalar](d Delta[T]) r2.Vec {
	return r2.Vec{X: float64(d.DX), Y: float64(d.DY)}
}

// R3 converts p to a gonum r3.Vec.
func R3[T Scalar](p Point3[T]) r3.Vec {
	return r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}
