package ecm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleCurveProducesPointOnCurve(t *testing.T) {
	src := NewSource(1)
	curves := 0
	for i := 0; i < 200; i++ {
		c, P, g, err := SampleCurve(src, 1271, DefaultMaxCurveSamples)
		require.NoError(t, err)
		if g > 1 {
			assert.Contains(t, []uint64{31, 41}, g)
			continue
		}
		curves++
		assert.Equal(t, uint64(1271), c.N())
		assert.True(t, c.Contains(P), "sampled %v not on y^2 = x^3 + %dx + %d", P, c.A, c.B)
		assert.NotEqual(t, uint64(1271), uint64(GCD(int64(c.Discriminant()), 1271)))
	}
	assert.NotZero(t, curves)
}

func TestSampleCurveIsDeterministicPerSeed(t *testing.T) {
	c1, P1, g1, err := SampleCurve(NewSource(42), 1000003, 10)
	require.NoError(t, err)
	c2, P2, g2, err := SampleCurve(NewSource(42), 1000003, 10)
	require.NoError(t, err)
	assert.Equal(t, c1, c2)
	assert.True(t, P1.Equal(P2))
	assert.Equal(t, g1, g2)
}

func TestSampleCurveCap(t *testing.T) {
	// every discriminant is ≡ 0 mod 1
	_, _, _, err := SampleCurve(NewSource(3), 1, 5)
	assert.ErrorIs(t, err, ErrSingularModulus)

	_, _, _, err = SampleCurve(NewSource(3), 1271, 0)
	assert.ErrorIs(t, err, ErrSingularModulus)
}

func TestSampleCurveRejectsModulus(t *testing.T) {
	_, _, _, err := SampleCurve(NewSource(3), 0, 5)
	assert.ErrorIs(t, err, ErrModulusTooSmall)
	_, _, _, err = SampleCurve(NewSource(3), MaxModulus, 5)
	assert.ErrorIs(t, err, ErrModulusTooLarge)
}
