package geom_test

import (
	"testing"

	"deedles.dev/geom"
	"github.com/stretchr/testify/require"
)

func TestSizeGrowShrink(t *testing.T) {
	s := geom.Sz(10, 20)
	d := geom.Dl(5, -5)
	require.Equal(t, geom.Sz(15, 15), s.Add(d))
	require.Equal(t, geom.Sz(5, 25), s.Sub(d))
	require.Equal(t, s, s.Add(d).Sub(d))
}

func TestSizeScaling(t *testing.T) {
	s := geom.Sz(10, 20)
	require.Equal(t, geom.Sz(30, 60), s.Scale(3))
	require.Equal(t, geom.Sz(5, 10), s.Div(2))
	require.Equal(t, geom.Sz(1.25, 2.5), geom.Sz(2.5, 5.0).Div(2))
}

func TestSizeEmpty(t *testing.T) {
	require.True(t, geom.Sz(0, 10).Empty())
	require.True(t, geom.Sz(10, 0).Empty())
	require.False(t, geom.Sz(1, 1).Empty())
}

func TestSizeLess(t *testing.T) {
	require.True(t, geom.Sz(1, 2).Less(geom.Sz(2, 2)))
	require.False(t, geom.Sz(4, 0).Less(geom.Sz(0, 4)))
}

func TestDeltaArith(t *testing.T) {
	d := geom.Dl(3, -4)
	e := geom.Dl(1, 1)
	require.Equal(t, geom.Dl(4, -3), d.Add(e))
	require.Equal(t, geom.Dl(2, -5), d.Sub(e))
	require.Equal(t, geom.Dl(6, -8), d.Scale(2))
	require.Equal(t, geom.Dl(1, -2), d.Div(2))
	require.Equal(t, 5.0, d.Magnitude())
	require.True(t, d.Scale(-1).Less(e))
}
