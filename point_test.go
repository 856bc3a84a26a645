package geom_test

import (
	"testing"

	"deedles.dev/geom"
	"github.com/stretchr/testify/require"
)

func TestPointIdentity(t *testing.T) {
	p := geom.Pt(6, -3)
	var zero geom.Point[int]
	require.Equal(t, p, zero.Add(p))
	require.Equal(t, zero, p.Sub(p))

	f := geom.Pt(1.5, -0.25)
	var zerof geom.Point[float64]
	require.Equal(t, f, zerof.Add(f))
	require.Equal(t, zerof, f.Sub(f))
}

func TestPointArith(t *testing.T) {
	require.Equal(t, geom.Pt(8, 15), geom.Pt(2, 3).Mul(geom.Pt(4, 5)))
	require.Equal(t, geom.Pt(3, -2), geom.Pt(7, -5).Div(geom.Pt(2, 2)))
	require.Equal(t, geom.Pt(1.75, -1.0), geom.Pt(3.5, -2.0).Div(geom.Pt(2.0, 2.0)))
	require.Equal(t, geom.Pt(-6, 9), geom.Pt(-2, 3).Scale(3))
}

func TestPointLess(t *testing.T) {
	// The ordering compares coordinate sums, not coordinates
	// pairwise.
	require.True(t, geom.Pt(2, 0).Less(geom.Pt(0, 3)))
	require.False(t, geom.Pt(6, 4).Less(geom.Pt(2, 7)))
	require.True(t, geom.Pt(2, 7).Less(geom.Pt(6, 4)))

	// Unequal points with equal sums are mutually unordered.
	require.False(t, geom.Pt(3, 7).Less(geom.Pt(10, 0)))
	require.False(t, geom.Pt(10, 0).Less(geom.Pt(3, 7)))
	require.NotEqual(t, geom.Pt(3, 7), geom.Pt(10, 0))
}

func TestPointMagnitude(t *testing.T) {
	require.Equal(t, 5.0, geom.Pt(3, -4).Magnitude())
	require.Equal(t, 0.0, geom.Pt3(0, 0, 0).Magnitude())
	require.Equal(t, 3.0, geom.Pt3(2, -2, 1).Magnitude())
}

func TestPointShiftTo(t *testing.T) {
	p := geom.Pt(2, 3)
	q := p.Shift(geom.Dl(5, -1))
	require.Equal(t, geom.Pt(7, 2), q)
	require.Equal(t, geom.Dl(5, -1), p.To(q))
	require.Equal(t, p, q.Shift(geom.NegDelta(p.To(q))))
}

func TestPointUniform(t *testing.T) {
	require.Equal(t, geom.Pt(7, 7), geom.PtUniform(7))
	require.Equal(t, geom.Pt3(-1.5, -1.5, -1.5), geom.Pt3Uniform(-1.5))
}

func TestPoint3Arith(t *testing.T) {
	p := geom.Pt3(1, 2, 3)
	q := geom.Pt3(4, 5, 6)
	require.Equal(t, geom.Pt3(5, 7, 9), p.Add(q))
	require.Equal(t, geom.Pt3(-3, -3, -3), p.Sub(q))
	require.Equal(t, geom.Pt3(4, 10, 18), p.Mul(q))
	require.Equal(t, geom.Pt3(2, 4, 6), p.Scale(2))
	require.True(t, p.Less(q))
}

func BenchmarkPointMagnitude(b *testing.B) {
	p := geom.Pt(3, -4)
	for i := 0; i < b.N; i++ {
		p.Magnitude()
	}
}
