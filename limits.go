package geom

import "unsafe"

// MinOf returns the minimum representable value of a fixed-width
// integer scalar: zero for unsigned types, the most negative value
// for signed types.
func MinOf[T Integer]() T {
	ones := ^T(0)
	if ones > 0 {
		return 0
	}
	return ones << (bitsOf[T]() - 1)
}

// MaxOf returns the maximum representable value of a fixed-width
// integer scalar.
func MaxOf[T Integer]() T {
	return ^MinOf[T]()
}

func bitsOf[T Integer]() uintptr {
	var v T
	return unsafe.Sizeof(v) * 8
}
