package geom

import (
	"errors"
	"fmt"
)

// ErrNotRepresentable indicates that an exact conversion failed
// because the source value has no exact representation in the target
// scalar type.
var ErrNotRepresentable = errors.New("not representable")

// Three conversion policies exist between same-shape types over
// different scalars. The Convert variants fail explicitly when a
// coordinate is not exactly representable. The Trunc variants are
// plain Go conversions: float to integer truncates toward zero, and a
// source coordinate outside the target's range is a precondition
// violation. The Clamp variants never fail and pin out-of-range
// integer coordinates to the target's bounds.

func convertScalar[U, T Scalar](v T) (U, error) {
	u := U(v)
	if T(u) != v || (u < 0) != (v < 0) {
		return 0, fmt.Errorf("convert %v: %w", v, ErrNotRepresentable)
	}
	return u, nil
}

func clampScalar[U, T Integer](v T) U {
	if v < 0 {
		lo := MinOf[U]()
		if lo == 0 || int64(v) < int64(lo) {
			return lo
		}
		return U(v)
	}
	hi := MaxOf[U]()
	if uint64(v) > uint64(hi) {
		return hi
	}
	return U(v)
}

// PtConvert converts p to the scalar type U, failing if any
// coordinate is not exactly representable in U.
func PtConvert[U, T Scalar](p Point[T]) (Point[U], error) {
	x, err := convertScalar[U](p.X)
	if err != nil {
		return Point[U]{}, fmt.Errorf("x: %w", err)
	}
	y, err := convertScalar[U](p.Y)
	if err != nil {
		return Point[U]{}, fmt.Errorf("y: %w", err)
	}
	return Pt(x, y), nil
}

// Pt3Convert converts p to the scalar type U, failing if any
// coordinate is not exactly representable in U.
func Pt3Convert[U, T Scalar](p Point3[T]) (Point3[U], error) {
	x, err := convertScalar[U](p.X)
	if err != nil {
		return Point3[U]{}, fmt.Errorf("x: %w", err)
	}
	y, err := convertScalar[U](p.Y)
	if err != nil {
		return Point3[U]{}, fmt.Errorf("y: %w", err)
	}
	z, err := convertScalar[U](p.Z)
	if err != nil {
		return Point3[U]{}, fmt.Errorf("z: %w", err)
	}
	return Pt3(x, y, z), nil
}

// SzConvert converts s to the scalar type U, failing if the width or
// height is not exactly representable in U.
func SzConvert[U, T Scalar](s Size[T]) (Size[U], error) {
	w, err := convertScalar[U](s.Width)
	if err != nil {
		return Size[U]{}, fmt.Errorf("width: %w", err)
	}
	h, err := convertScalar[U](s.Height)
	if err != nil {
		return Size[U]{}, fmt.Errorf("height: %w", err)
	}
	return Sz(w, h), nil
}

// DlConvert converts d to the scalar type U, failing if any
// coordinate is not exactly representable in U.
func DlConvert[U, T Scalar](d Delta[T]) (Delta[U], error) {
	dx, err := convertScalar[U](d.DX)
	if err != nil {
		return Delta[U]{}, fmt.Errorf("dx: %w", err)
	}
	dy, err := convertScalar[U](d.DY)
	if err != nil {
		return Delta[U]{}, fmt.Errorf("dy: %w", err)
	}
	return Dl(dx, dy), nil
}

// PtTrunc converts p to the scalar type U by plain conversion,
// truncating fractional coordinates toward zero. Coordinates outside
// U's range are a precondition violation.
func PtTrunc[U, T Scalar](p Point[T]) Point[U] {
	return Pt(U(p.X), U(p.Y))
}

// Pt3Trunc converts p to the scalar type U by plain conversion, with
// the same precondition as [PtTrunc].
func Pt3Trunc[U, T Scalar](p Point3[T]) Point3[U] {
	return Pt3(U(p.X), U(p.Y), U(p.Z))
}

// SzTrunc converts s to the scalar type U by plain conversion, with
// the same precondition as [PtTrunc].
func SzTrunc[U, T Scalar](s Size[T]) Size[U] {
	return Sz(U(s.Width), U(s.Height))
}

// DlTrunc converts d to the scalar type U by plain conversion, with
// the same precondition as [PtTrunc].
func DlTrunc[U, T Scalar](d Delta[T]) Delta[U] {
	return Dl(U(d.DX), U(d.DY))
}

// PtClamp converts p to the integer scalar type U, pinning
// out-of-range coordinates to U's bounds. It never fails.
func PtClamp[U, T Integer](p Point[T]) Point[U] {
	return Pt(clampScalar[U](p.X), clampScalar[U](p.Y))
}

// Pt3Clamp converts p to the integer scalar type U, pinning
// out-of-range coordinates to U's bounds.
func Pt3Clamp[U, T Integer](p Point3[T]) Point3[U] {
	return Pt3(clampScalar[U](p.X), clampScalar[U](p.Y), clampScalar[U](p.Z))
}

// SzClamp converts s to the integer scalar type U, pinning
// out-of-range coordinates to U's bounds.
func SzClamp[U, T Integer](s Size[T]) Size[U] {
	return Sz(clampScalar[U](s.Width), clampScalar[U](s.Height))
}

// DlClamp converts d to the integer scalar type U, pinning
// out-of-range coordinates to U's bounds.
func DlClamp[U, T Integer](d Delta[T]) Delta[U] {
	return Dl(clampScalar[U](d.DX), clampScalar[U](d.DY))
}
