// Package geom provides generic vector geometry value types: points,
// sizes, displacements, and boxes parameterized over a numeric scalar.
//
// It is patterned after image.Point and image.Rectangle, but type
// parameterization extends them to every numeric coordinate type, and
// arithmetic is derived from a small set of composable scalar
// capability constraints instead of being written once per coordinate
// type.
//
// Operations whose scalar capability is narrower than [Scalar] (the
// overflow-wrapping variants, negation, remainder, bounds, the
// integral box center) are package-level functions constrained to the
// capability they need, so they do not exist at all for scalar types
// that lack it.
//
// All types in this package are plain comparable value types. Copies
// never share state, == compares coordinate-wise, and the zero value
// of each type is its vector zero.
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that geom types and functions
// can handle: every numeric type usable as a coordinate. Any Scalar
// supports addition, subtraction, multiplication, division, ordering,
// and conversion to float64.
//
// Division follows Go semantics: truncation toward zero for integer
// types, IEEE 754 for floating types. The float64 conversion used for
// magnitudes is exact for integer types up to 32 bits; 64-bit integer
// coordinates may lose precision.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Integer is a constraint for any integer scalar. Integer scalars are
// fixed width: they have [MinOf] and [MaxOf] bounds, and the Wrap
// function variants perform modular arithmetic on them.
type Integer interface {
	constraints.Integer
}

// Signed is a constraint for any signed integer scalar.
type Signed interface {
	constraints.Signed
}

// Unsigned is a constraint for any unsigned integer scalar.
type Unsigned interface {
	constraints.Unsigned
}

// Float is a constraint for any floating-point scalar.
type Float interface {
	constraints.Float
}

// Signable is a constraint for scalars that have an additive inverse
// for every value except, for fixed-width signed integers, the
// minimum. Negating MinOf of a signed integer type is a precondition
// violation: the result is not representable, and Go's wraparound
// result must not be relied upon.
type Signable interface {
	constraints.Signed | constraints.Float
}

// Edges is a bitmask representing zero or more edges of a box.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)
