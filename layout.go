package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// hsplit splits a box into two boxes arranged horizontally.
func hsplit[T Scalar](b Box[T], w T) (left, right Box[T]) {
	left = b.Resize(Sz(w, b.Size.Height))
	right = b.Resize(Sz(b.Size.Width-w, b.Size.Height)).Shift(Dl(w, 0))
	return left, right
}

func hsplitHalf[T Scalar](b Box[T]) (left, right Box[T]) {
	return hsplit(b, b.Size.Width/2)
}

// vsplit splits a box into two boxes arranged vertically.
func vsplit[T Scalar](b Box[T], h T) (top, bottom Box[T]) {
	top = b.Resize(Sz(b.Size.Width, h))
	bottom = b.Resize(Sz(b.Size.Width, b.Size.Height-h)).Shift(Dl(0, h))
	return top, bottom
}

func vsplitHalf[T Scalar](b Box[T]) (top, bottom Box[T]) {
	return vsplit(b, b.Size.Height/2)
}

// TileRightThenDown arranges and resizes the elements of tiles in
// order to split b into a series of boxes that recursively split each
// section halfway to the right and then downwards. In other words,
//
//	tiles := make([]geom.Box[float64], 4)
//	TileRightThenDown(tiles, b)
//
// will produce
//
//	------------
//	|    |     |
//	|    -------
//	|    |  |  |
//	------------
func TileRightThenDown[T Scalar](tiles []Box[T], b Box[T]) {
	insertTilesFromSeq(tiles, TiledRightThenDown(len(tiles), b))
}

// TiledRightThenDown is the same as [TileRightThenDown] but yields
// the successive tiles from an iterator instead of inserting them
// into a slice.
func TiledRightThenDown[T Scalar](numtiles int, b Box[T]) iter.Seq[Box[T]] {
	return func(yield func(Box[T]) bool) {
		split, next := hsplitHalf[T], vsplitHalf[T]

		c, n := split(b)
		for range numtiles - 1 {
			if !yield(c) {
				return
			}

			c, n = split(n)
			split, next = next, split
		}

		yield(n)
	}
}

// TileTwoThirdsSidebar arranges and resizes the elements of tiles so
// that the result are a series of boxes where the first is two-thirds
// the width of b and the rest are arranged vertically in an even
// split in the remaining space.
func TileTwoThirdsSidebar[T Scalar](tiles []Box[T], b Box[T]) {
	insertTilesFromSeq(tiles, TiledTwoThirdsSidebar(len(tiles), b))
}

// TiledTwoThirdsSidebar is the same as [TileTwoThirdsSidebar] except
// that it yields the successive boxes from an iterator instead of
// inserting them into a slice.
func TiledTwoThirdsSidebar[T Scalar](numtiles int, b Box[T]) iter.Seq[Box[T]] {
	return func(yield func(Box[T]) bool) {
		first, rem := hsplit(b, 2*b.Size.Width/3)
		if !yield(first) {
			return
		}

		for t := range TiledEvenVertically(numtiles-1, rem) {
			if !yield(t) {
				return
			}
		}
	}
}

// TileEvenVertically arranges and resizes the elements of tiles so
// that the result are a series of boxes that comprise an even,
// vertical splitting of b. In other words,
//
//	tiles := make([]geom.Box[float64], 3)
//	TileEvenVertically(tiles, b)
//
// will produce
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
//	|        |
//	----------
func TileEvenVertically[T Scalar](tiles []Box[T], b Box[T]) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), b))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator.
func TiledEvenVertically[T Scalar](numtiles int, b Box[T]) iter.Seq[Box[T]] {
	return func(yield func(Box[T]) bool) {
		shift := Dl(0, b.Size.Height/T(numtiles))
		c, _ := vsplit(b, shift.DY)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Shift(shift)
		}
	}
}

// TileEvenHorizontally arranges and resizes the elements of tiles so
// that the result are a series of boxes that comprise an even,
// horizontal splitting of b. In other words,
//
//	tiles := make([]geom.Box[float64], 3)
//	TileEvenHorizontally(tiles, b)
//
// will produce
//
// ----------
// |  |  |  |
// ----------
func TileEvenHorizontally[T Scalar](tiles []Box[T], b Box[T]) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), b))
}

func TiledEvenHorizontally[T Scalar](numtiles int, b Box[T]) iter.Seq[Box[T]] {
	return func(yield func(Box[T]) bool) {
		shift := Dl(b.Size.Width/T(numtiles), 0)
		c, _ := hsplit(b, shift.DX)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Shift(shift)
		}
	}
}

// TileRows arranges and resizes the elements of tiles to produce a
// series of rows and columns the union of which reproduces b. The
// final row of the table is split evenly into at most cols columns.
// When that number is exceeded, a new row is added below it instead.
func TileRows[T Scalar](tiles []Box[T], b Box[T], cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), b, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows[T Scalar](numtiles int, b Box[T], cols int) iter.Seq[Box[T]] {
	return func(yield func(Box[T]) bool) {
		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}
		rows := TiledEvenVertically(numrows, b)

		for row := range rows {
			if numtiles <= 0 {
				break
			}

			numcols := min(numtiles, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

// VerticalStack returns an iterator that yields the box provided and
// then identical copies shifted downwards by its height repeatedly,
// thus producing an infinite vertical stack of boxes below the first.
func VerticalStack[T Scalar](first Box[T]) iter.Seq[Box[T]] {
	return func(yield func(Box[T]) bool) {
		shift := Dl(0, first.Canon().Size.Height)
		for {
			if !yield(first) {
				return
			}
			first = first.Shift(shift)
		}
	}
}

// ArrangeVerticalStack arranges the subsequent boxes of boxes
// underneath the first vertically, expanding all for which it is
// necessary so that they are all the same width including the first.
func ArrangeVerticalStack[T Scalar](boxes []Box[T]) {
	if len(boxes) <= 1 {
		return
	}

	prev := boxes[0].Canon()
	for _, b := range boxes {
		if b.Size.Width > prev.Size.Width {
			prev.Size.Width = b.Size.Width
		}
	}
	boxes[0] = prev

	for i := 1; i < len(boxes); i++ {
		boxes[i] = Bx(
			Pt(prev.Origin.X, prev.Origin.Y+prev.Size.Height),
			Sz(prev.Size.Width, boxes[i].Size.Height),
		)
		prev = boxes[i]
	}
}

// Align shifts the specified edges of inner to align with the
// corresponding edges of outer, stretching the box as necessary if
// opposite edges are specified. When no edge is specified along an
// axis, inner is centered along that axis, using truncating division
// for integer scalars.
func Align[T Scalar](outer, inner Box[T], edges Edges) Box[T] {
	inner = alignCenter(outer, inner)
	switch {
	case edges&EdgeTop != 0:
		inner.Origin.Y = outer.Origin.Y
		if edges&EdgeBottom != 0 {
			inner.Size.Height = outer.Size.Height
		}
	case edges&EdgeBottom != 0:
		inner.Origin.Y = outer.Origin.Y + outer.Size.Height - inner.Size.Height
	}
	switch {
	case edges&EdgeLeft != 0:
		inner.Origin.X = outer.Origin.X
		if edges&EdgeRight != 0 {
			inner.Size.Width = outer.Size.Width
		}
	case edges&EdgeRight != 0:
		inner.Origin.X = outer.Origin.X + outer.Size.Width - inner.Size.Width
	}

	return inner
}

func alignCenter[T Scalar](outer, inner Box[T]) Box[T] {
	inner.Origin.X = outer.Origin.X + (outer.Size.Width-inner.Size.Width)/2
	inner.Origin.Y = outer.Origin.Y + (outer.Size.Height-inner.Size.Height)/2
	return inner
}

func insertTilesFromSeq[T Scalar](tiles []Box[T], s iter.Seq[Box[T]]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
