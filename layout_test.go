package geom_test

import (
	"testing"

	"deedles.dev/geom"
	"github.com/stretchr/testify/require"
)

func TestTileEvenVertically(t *testing.T) {
	tiles := make([]geom.Box[int], 3)
	geom.TileEvenVertically(tiles, geom.Bx(geom.Pt(0, 0), geom.Sz(100, 90)))

	require.Equal(t, []geom.Box[int]{
		geom.Bx(geom.Pt(0, 0), geom.Sz(100, 30)),
		geom.Bx(geom.Pt(0, 30), geom.Sz(100, 30)),
		geom.Bx(geom.Pt(0, 60), geom.Sz(100, 30)),
	}, tiles)
}

func TestTileEvenHorizontally(t *testing.T) {
	tiles := make([]geom.Box[float64], 2)
	geom.TileEvenHorizontally(tiles, geom.Bx(geom.Pt(0.0, 0.0), geom.Sz(50.0, 10.0)))

	require.Equal(t, []geom.Box[float64]{
		geom.Bx(geom.Pt(0.0, 0.0), geom.Sz(25.0, 10.0)),
		geom.Bx(geom.Pt(25.0, 0.0), geom.Sz(25.0, 10.0)),
	}, tiles)
}

func TestTileRightThenDown(t *testing.T) {
	tiles := make([]geom.Box[int], 4)
	geom.TileRightThenDown(tiles, geom.Bx(geom.Pt(0, 0), geom.Sz(100, 100)))

	require.Equal(t, []geom.Box[int]{
		geom.Bx(geom.Pt(0, 0), geom.Sz(50, 100)),
		geom.Bx(geom.Pt(50, 0), geom.Sz(50, 50)),
		geom.Bx(geom.Pt(50, 50), geom.Sz(25, 50)),
		geom.Bx(geom.Pt(75, 50), geom.Sz(25, 50)),
	}, tiles)
}

func TestTileRows(t *testing.T) {
	tiles := make([]geom.Box[int], 3)
	geom.TileRows(tiles, geom.Bx(geom.Pt(0, 0), geom.Sz(40, 40)), 2)

	require.Equal(t, []geom.Box[int]{
		geom.Bx(geom.Pt(0, 0), geom.Sz(20, 20)),
		geom.Bx(geom.Pt(20, 0), geom.Sz(20, 20)),
		geom.Bx(geom.Pt(0, 20), geom.Sz(40, 20)),
	}, tiles)
}

func TestVerticalStack(t *testing.T) {
	var got []geom.Box[int]
	for b := range geom.VerticalStack(geom.Bx(geom.Pt(5, 0), geom.Sz(10, 20))) {
		got = append(got, b)
		if len(got) == 3 {
			break
		}
	}

	require.Equal(t, []geom.Box[int]{
		geom.Bx(geom.Pt(5, 0), geom.Sz(10, 20)),
		geom.Bx(geom.Pt(5, 20), geom.Sz(10, 20)),
		geom.Bx(geom.Pt(5, 40), geom.Sz(10, 20)),
	}, got)
}

func TestArrangeVerticalStack(t *testing.T) {
	boxes := []geom.Box[int]{
		geom.Bx(geom.Pt(0, 0), geom.Sz(10, 5)),
		geom.Bx(geom.Pt(3, 9), geom.Sz(20, 7)),
		geom.Bx(geom.Pt(1, 1), geom.Sz(5, 2)),
	}
	geom.ArrangeVerticalStack(boxes)

	require.Equal(t, []geom.Box[int]{
		geom.Bx(geom.Pt(0, 0), geom.Sz(20, 5)),
		geom.Bx(geom.Pt(0, 5), geom.Sz(20, 7)),
		geom.Bx(geom.Pt(0, 12), geom.Sz(20, 2)),
	}, boxes)
}

func TestAlign(t *testing.T) {
	outer := geom.Bx(geom.Pt(0, 0), geom.Sz(100, 100))
	inner := geom.Bx(geom.Pt(17, 23), geom.Sz(10, 20))

	require.Equal(t,
		geom.Bx(geom.Pt(45, 40), geom.Sz(10, 20)),
		geom.Align(outer, inner, geom.EdgeNone))
	require.Equal(t,
		geom.Bx(geom.Pt(0, 0), geom.Sz(10, 20)),
		geom.Align(outer, inner, geom.EdgeTop|geom.EdgeLeft))
	require.Equal(t,
		geom.Bx(geom.Pt(90, 80), geom.Sz(10, 20)),
		geom.Align(outer, inner, geom.EdgeBottom|geom.EdgeRight))
	require.Equal(t,
		geom.Bx(geom.Pt(45, 0), geom.Sz(10, 100)),
		geom.Align(outer, inner, geom.EdgeTop|geom.EdgeBottom))
}
