package geom

// Size is a 2D extent. Sizes deliberately do not combine with each
// other: the sum of two sizes is not a meaningful quantity, so Add
// and Sub take a [Delta] instead. Uniform scaling goes through Scale
// and Div.
type Size[T Scalar] struct {
	Width, Height T
}

// Sz is shorthand for constructing a Size.
func Sz[T Scalar](w, h T) Size[T] {
	return Size[T]{Width: w, Height: h}
}

// SzUniform returns a Size with every coordinate set to v.
func SzUniform[T Scalar](v T) Size[T] {
	return Size[T]{Width: v, Height: v}
}

// SzMin returns the Size with every coordinate at the scalar's
// minimum representable value.
func SzMin[T Integer]() Size[T] {
	return SzUniform(MinOf[T]())
}

// SzMax returns the Size with every coordinate at the scalar's
// maximum representable value.
func SzMax[T Integer]() Size[T] {
	return SzUniform(MaxOf[T]())
}

// Add returns s grown by d.
func (s Size[T]) Add(d Delta[T]) Size[T] {
	return Sz(s.Width+d.DX, s.Height+d.DY)
}

// Sub returns s shrunk by d.
func (s Size[T]) Sub(d Delta[T]) Size[T] {
	return Sz(s.Width-d.DX, s.Height-d.DY)
}

// Scale returns s uniformly scaled by v.
func (s Size[T]) Scale(v T) Size[T] {
	return Sz(s.Width*v, s.Height*v)
}

// Div returns s uniformly divided by v, with the same divisor
// requirements as [Point.Div].
func (s Size[T]) Div(v T) Size[T] {
	return Sz(s.Width/v, s.Height/v)
}

// Less reports whether the sum of s's coordinates is less than the
// sum of t's. See [Point.Less] for the ordering caveats.
func (s Size[T]) Less(t Size[T]) bool {
	return s.Width+s.Height < t.Width+t.Height
}

// Empty reports whether s has a zero width or height.
func (s Size[T]) Empty() bool {
	return s.Width == 0 || s.Height == 0
}
