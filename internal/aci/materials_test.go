package aci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeta1(t *testing.T) {
	t.Run("imperial low strength", func(t *testing.T) {
		assert.Equal(t, 0.85, Beta1(Imperial, 3000))
		assert.Equal(t, 0.85, Beta1(Imperial, 4000))
	})

	t.Run("imperial high strength", func(t *testing.T) {
		assert.Equal(t, 0.65, Beta1(Imperial, 8000))
		assert.Equal(t, 0.65, Beta1(Imperial, 12000))
	})

	t.Run("imperial mid range interpolation", func(t *testing.T) {
		// β1 = 0.85 - 0.05·(6000-4000)/1000 = 0.75
		assert.InDelta(t, 0.75, Beta1(Imperial, 6000), 1e-12)
	})

	t.Run("imperial continuity at breakpoints", func(t *testing.T) {
		assert.InDelta(t, 0.85, Beta1(Imperial, 4000.001), 1e-6)
		assert.InDelta(t, 0.65, Beta1(Imperial, 7999.999), 1e-6)
	})

	t.Run("si low strength", func(t *testing.T) {
		assert.Equal(t, 0.85, Beta1(SI, 20))
		assert.Equal(t, 0.85, Beta1(SI, 28))
	})

	t.Run("si high strength", func(t *testing.T) {
		assert.Equal(t, 0.65, Beta1(SI, 55))
		assert.Equal(t, 0.65, Beta1(SI, 80))
	})

	t.Run("si continuity at breakpoints", func(t *testing.T) {
		assert.InDelta(t, 0.85, Beta1(SI, 28.0001), 1e-5)
		assert.InDelta(t, 0.65, Beta1(SI, 54.9999), 1e-5)
		// midpoint: 0.85 - 0.05·(41.5-28)/7
		assert.InDelta(t, 0.85-0.05*13.5/7, Beta1(SI, 41.5), 1e-12)
	})
}

func TestPhi(t *testing.T) {
	t.Run("tension controlled", func(t *testing.T) {
		assert.Equal(t, 0.90, Phi(0.005))
		assert.Equal(t, 0.90, Phi(0.02))
	})

	t.Run("compression controlled", func(t *testing.T) {
		assert.Equal(t, 0.65, Phi(0.002))
		assert.Equal(t, 0.65, Phi(0.0001))
		assert.Equal(t, 0.65, Phi(-0.001))
	})

	t.Run("transition zone midpoint", func(t *testing.T) {
		// φ = 0.65 + 0.25·(0.0035-0.002)/0.003 = 0.775
		assert.InDelta(t, 0.775, Phi(0.0035), 1e-12)
	})

	t.Run("monotonic and bounded", func(t *testing.T) {
		prev := Phi(0)
		for et := 0.0; et <= 0.01; et += 0.0001 {
			phi := Phi(et)
			require.GreaterOrEqual(t, phi, prev, "phi must not decrease with strain")
			require.GreaterOrEqual(t, phi, 0.65)
			require.LessOrEqual(t, phi, 0.90)
			prev = phi
		}
	})
}

func TestMinSteelArea(t *testing.T) {
	t.Run("imperial 200/fy floor governs", func(t *testing.T) {
		// max(3·√4000/60000, 200/60000)·12·17.5; the flat term governs
		got := MinSteelArea(Imperial, 4000, 60000, 12, 17.5)
		assert.InDelta(t, 200.0/60000*12*17.5, got, 1e-9)
	})

	t.Run("imperial root term governs at high fc", func(t *testing.T) {
		// 3·√10000/60000 = 0.005 > 200/60000
		got := MinSteelArea(Imperial, 10000, 60000, 12, 17.5)
		assert.InDelta(t, 0.005*12*17.5, got, 1e-9)
	})

	t.Run("si floor governs at low fc", func(t *testing.T) {
		// 0.25·√20/420 ≈ 0.00266 < 1.4/420 ≈ 0.00333
		got := MinSteelArea(SI, 20, 420, 250, 500)
		assert.InDelta(t, 1.4/420*250*500, got, 1e-6)
	})
}

func TestDefaultSteelModulus(t *testing.T) {
	assert.Equal(t, 29000000.0, DefaultSteelModulus(Imperial))
	assert.Equal(t, 200000.0, DefaultSteelModulus(SI))
}

func TestParseUnitSystem(t *testing.T) {
	cases := []struct {
		in   string
		want UnitSystem
	}{
		{"imperial", Imperial},
		{"Imperial", Imperial},
		{"us", Imperial},
		{"si", SI},
		{"SI", SI},
		{"metric", SI},
	}
	for _, c := range cases {
		got, err := ParseUnitSystem(c.in)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}

	_, err := ParseUnitSystem("furlongs")
	assert.Error(t, err)
}

func TestUnitsFor(t *testing.T) {
	t.Run("imperial labels", func(t *testing.T) {
		u := UnitsFor(Imperial)
		assert.Equal(t, "in", u.Length)
		assert.Equal(t, "psi", u.Stress)
		assert.Equal(t, "kips", u.ForceK)
		assert.Equal(t, "k-ft", u.MomentDisplay)
	})

	t.Run("si labels", func(t *testing.T) {
		u := UnitsFor(SI)
		assert.Equal(t, "mm", u.Length)
		assert.Equal(t, "MPa", u.Stress)
		assert.Equal(t, "kN", u.ForceK)
		assert.Equal(t, "kN-m", u.MomentDisplay)
	})
}
