package ecm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- helpers ----------

func mustCurve(t *testing.T, a, b, n uint64) Curve {
	t.Helper()
	c, err := NewCurve(a, b, n)
	require.NoError(t, err)
	return c
}

func pt(x, y uint64) Point { return NewPoint(x, y) }

// ---------- unit tests ----------

func TestNewCurveRejectsModulus(t *testing.T) {
	_, err := NewCurve(0, 1, 1)
	assert.ErrorIs(t, err, ErrModulusTooSmall)
	_, err = NewCurve(0, 1, MaxModulus)
	assert.ErrorIs(t, err, ErrModulusTooLarge)
}

func TestDiscriminant(t *testing.T) {
	// y^2 = x^3 is singular over any modulus
	assert.Equal(t, uint64(0), mustCurve(t, 0, 0, 11).Discriminant())
	// y^2 = x^3 + 1 over 11: 27 ≡ 5
	assert.Equal(t, uint64(5), mustCurve(t, 0, 1, 11).Discriminant())
}

func TestContains(t *testing.T) {
	c := mustCurve(t, 0, 1, 11) // y^2 = x^3 + 1
	assert.True(t, c.Contains(pt(0, 1)))
	assert.True(t, c.Contains(pt(2, 3)))  // 9 = 8 + 1
	assert.True(t, c.Contains(pt(10, 0))) // 1001 = 11 * 91
	assert.False(t, c.Contains(pt(1, 1)))
	assert.True(t, c.Contains(Inf()))
	assert.False(t, c.Contains(factorFound(3)))
}

func TestAddIdentityAndInverse(t *testing.T) {
	c := mustCurve(t, 0, 1, 11)
	P := pt(0, 1)
	assert.True(t, c.Add(P, Inf()).Equal(P), "P + O != P")
	assert.True(t, c.Add(Inf(), P).Equal(P), "O + P != P")
	assert.True(t, c.Add(P, c.Neg(P)).IsInfinity(), "P + (-P) != O")
	assert.True(t, c.Add(Inf(), Inf()).IsInfinity())
}

func TestAddSecantAndTangent(t *testing.T) {
	c := mustCurve(t, 0, 1, 11)
	// slope (3-1)/(2-0) = 1; x = 1 - 0 - 2 ≡ 10; y = 1*(0-10) - 1 ≡ 0
	R := c.Add(pt(0, 1), pt(2, 3))
	require.Equal(t, Affine, R.Kind())
	assert.True(t, R.Equal(pt(10, 0)), "got %v", R)
	assert.True(t, c.Contains(R))

	// tangent at (0,1) has slope 0, so 2P = (0, -1)
	assert.True(t, c.Double(pt(0, 1)).Equal(pt(0, 10)))
	// vertical tangent at y = 0
	assert.True(t, c.Double(pt(10, 0)).IsInfinity())
}

func TestAddCommutes(t *testing.T) {
	c := mustCurve(t, 2, 3, 97)
	var pts []Point
	for x := uint64(0); x < 97; x++ {
		for y := uint64(0); y < 97; y++ {
			if c.Contains(pt(x, y)) {
				pts = append(pts, pt(x, y))
			}
		}
	}
	require.NotEmpty(t, pts)
	pts = append(pts, Inf())
	for _, P := range pts {
		for _, Q := range pts {
			PQ, QP := c.Add(P, Q), c.Add(Q, P)
			require.True(t, PQ.Equal(QP), "%v + %v: %v vs %v", P, Q, PQ, QP)
			require.True(t, c.Contains(PQ), "%v + %v = %v off curve", P, Q, PQ)
		}
	}
}

func TestAddFindsFactorOnSecant(t *testing.T) {
	c := mustCurve(t, 0, 0, 15)
	// xQ - xP = 3 shares 3 with 15
	R := c.Add(pt(1, 2), pt(4, 5))
	d, ok := R.Factor()
	require.True(t, ok, "got %v", R)
	assert.Equal(t, uint64(3), d)
}

func TestAddFindsFactorOnTangent(t *testing.T) {
	c := mustCurve(t, 0, 0, 15)
	// 2y = 6 shares 3 with 15
	d, ok := c.Double(pt(1, 3)).Factor()
	require.True(t, ok)
	assert.Equal(t, uint64(3), d)
}

func TestAddSameXSplitsModulus(t *testing.T) {
	c := mustCurve(t, 0, 0, 15)
	// 1 + 4 ≢ 0, but 1 - 4 = -3 shares 3 with 15
	d, ok := c.Add(pt(2, 1), pt(2, 4)).Factor()
	require.True(t, ok)
	assert.Equal(t, uint64(3), d)
}

func TestFactorMarkerPropagates(t *testing.T) {
	c := mustCurve(t, 0, 1, 11)
	F := factorFound(7)
	for _, P := range []Point{Inf(), pt(0, 1), pt(2, 3), factorFound(5)} {
		assert.True(t, c.Add(F, P).Equal(F), "F + %v", P)
		if !P.IsFactor() {
			assert.True(t, c.Add(P, F).Equal(F), "%v + F", P)
		}
	}
	for _, k := range []uint64{0, 1, 2, 3, 1000} {
		assert.True(t, c.Mul(k, F).Equal(F), "%d * F", k)
	}
	assert.True(t, c.Double(F).Equal(F))
}

func TestMulZeroAndOne(t *testing.T) {
	c := mustCurve(t, 0, 1, 11)
	for _, P := range []Point{Inf(), pt(0, 1), pt(2, 3), pt(10, 0)} {
		assert.True(t, c.Mul(0, P).IsInfinity(), "0 * %v", P)
		assert.True(t, c.Mul(1, P).Equal(P), "1 * %v", P)
	}
}

func TestMulMatchesRepeatedAdd(t *testing.T) {
	c := mustCurve(t, 2, 3, 97)
	P := pt(3, 6) // 27 + 6 + 3 = 36
	require.True(t, c.Contains(P))
	acc := Inf()
	for k := uint64(0); k < 120; k++ {
		got := c.Mul(k, P)
		require.True(t, got.Equal(acc), "%d * P: got %v want %v", k, got, acc)
		acc = c.Add(acc, P)
	}
}

func TestMulOrderThree(t *testing.T) {
	c := mustCurve(t, 0, 1, 11)
	P := pt(0, 1)
	assert.True(t, c.Mul(2, P).Equal(pt(0, 10)))
	assert.True(t, c.Mul(3, P).IsInfinity())
	assert.True(t, c.Mul(4, P).Equal(P))
}

func TestMulStopsAtFactor(t *testing.T) {
	c := mustCurve(t, 0, 0, 15)
	P := pt(1, 3)
	for _, k := range []uint64{2, 3, 5, 1 << 20} {
		d, ok := c.Mul(k, P).Factor()
		require.True(t, ok, "%d * P", k)
		assert.Equal(t, uint64(3), d)
	}
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "O", Inf().String())
	assert.Equal(t, "(2, 3)", pt(2, 3).String())
	assert.Equal(t, "factor(31)", factorFound(31).String())
	assert.Equal(t, "affine", Affine.String())
}
