package beam

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structcalc/beamcap/internal/aci"
)

func TestNewRectangular(t *testing.T) {
	t.Run("derives steel area from bars", func(t *testing.T) {
		s, err := NewRectangular(aci.Imperial, 12, 20, 17.5, 4000, 60000, 4, 0.79)
		require.NoError(t, err)
		assert.Equal(t, 4*0.79, s.SteelArea)
	})

	t.Run("single bar", func(t *testing.T) {
		s, err := NewRectangular(aci.Imperial, 12, 20, 17.5, 4000, 60000, 1, 0.79)
		require.NoError(t, err)
		assert.Equal(t, 0.79, s.SteelArea)
	})

	t.Run("applies unit system defaults", func(t *testing.T) {
		imp, err := NewRectangular(aci.Imperial, 12, 20, 17.5, 4000, 60000, 4, 0.79)
		require.NoError(t, err)
		assert.Equal(t, 29000000.0, imp.Es)
		assert.Equal(t, 0.85, imp.Beta1)
		assert.Equal(t, 0.003, imp.UltimateStrain)

		si, err := NewRectangular(aci.SI, 250, 565, 500, 20, 420, 3, 510)
		require.NoError(t, err)
		assert.Equal(t, 200000.0, si.Es)
		assert.Equal(t, 0.85, si.Beta1)
	})

	t.Run("beta1 override is used verbatim", func(t *testing.T) {
		s, err := NewRectangular(aci.Imperial, 12, 20, 17.5, 4000, 60000, 4, 0.79,
			WithStressBlockFactor(0.70))
		require.NoError(t, err)
		assert.Equal(t, 0.70, s.Beta1)
	})

	t.Run("custom ultimate strain", func(t *testing.T) {
		s, err := NewRectangular(aci.Imperial, 12, 20, 17.5, 4000, 60000, 4, 0.79,
			WithUltimateStrain(0.0035))
		require.NoError(t, err)
		assert.Equal(t, 0.0035, s.UltimateStrain)
	})

	t.Run("custom steel modulus", func(t *testing.T) {
		s, err := NewRectangular(aci.SI, 250, 565, 500, 20, 420, 3, 510,
			WithSteelModulus(210000))
		require.NoError(t, err)
		assert.Equal(t, 210000.0, s.Es)
	})
}

func TestNewRectangularArea(t *testing.T) {
	t.Run("equivalent to single bar of total area", func(t *testing.T) {
		byArea, err := NewRectangularArea(aci.Imperial, 12, 20, 17.5, 4000, 60000, 3.16)
		require.NoError(t, err)
		assert.Equal(t, 1, byArea.Bars)
		assert.Equal(t, 3.16, byArea.BarArea)
		assert.Equal(t, 3.16, byArea.SteelArea)
	})

	t.Run("both entry points solve identically for equal As", func(t *testing.T) {
		byBars, err := NewRectangular(aci.Imperial, 12, 20, 17.5, 4000, 60000, 4, 0.79)
		require.NoError(t, err)
		byArea, err := NewRectangularArea(aci.Imperial, 12, 20, 17.5, 4000, 60000, byBars.SteelArea)
		require.NoError(t, err)

		r1, err := byBars.Solve()
		require.NoError(t, err)
		r2, err := byArea.Solve()
		require.NoError(t, err)
		assert.Equal(t, r1, r2)
	})
}

func TestNewRectangularValidation(t *testing.T) {
	cases := []struct {
		name  string
		build func() (*Rectangular, error)
	}{
		{"zero width", func() (*Rectangular, error) {
			return NewRectangular(aci.Imperial, 0, 20, 17.5, 4000, 60000, 4, 0.79)
		}},
		{"negative width", func() (*Rectangular, error) {
			return NewRectangular(aci.Imperial, -12, 20, 17.5, 4000, 60000, 4, 0.79)
		}},
		{"zero height", func() (*Rectangular, error) {
			return NewRectangular(aci.Imperial, 12, 0, 17.5, 4000, 60000, 4, 0.79)
		}},
		{"zero effective depth", func() (*Rectangular, error) {
			return NewRectangular(aci.Imperial, 12, 20, 0, 4000, 60000, 4, 0.79)
		}},
		{"effective depth exceeds total depth", func() (*Rectangular, error) {
			return NewRectangular(aci.Imperial, 12, 20, 20.5, 4000, 60000, 4, 0.79)
		}},
		{"zero concrete strength", func() (*Rectangular, error) {
			return NewRectangular(aci.Imperial, 12, 20, 17.5, 0, 60000, 4, 0.79)
		}},
		{"negative steel strength", func() (*Rectangular, error) {
			return NewRectangular(aci.Imperial, 12, 20, 17.5, 4000, -60000, 4, 0.79)
		}},
		{"zero bar count", func() (*Rectangular, error) {
			return NewRectangular(aci.Imperial, 12, 20, 17.5, 4000, 60000, 0, 0.79)
		}},
		{"negative bar count", func() (*Rectangular, error) {
			return NewRectangular(aci.Imperial, 12, 20, 17.5, 4000, 60000, -2, 0.79)
		}},
		{"zero bar area", func() (*Rectangular, error) {
			return NewRectangular(aci.Imperial, 12, 20, 17.5, 4000, 60000, 4, 0)
		}},
		{"negative steel modulus", func() (*Rectangular, error) {
			return NewRectangular(aci.Imperial, 12, 20, 17.5, 4000, 60000, 4, 0.79,
				WithSteelModulus(-29000000))
		}},
		{"negative beta1 override", func() (*Rectangular, error) {
			return NewRectangular(aci.Imperial, 12, 20, 17.5, 4000, 60000, 4, 0.79,
				WithStressBlockFactor(-0.85))
		}},
		{"negative ultimate strain", func() (*Rectangular, error) {
			return NewRectangular(aci.Imperial, 12, 20, 17.5, 4000, 60000, 4, 0.79,
				WithUltimateStrain(-0.003))
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := c.build()
			require.Error(t, err)
			assert.Nil(t, s, "no section may be produced on invalid input")

			var invalid *InvalidSectionError
			assert.True(t, errors.As(err, &invalid), "error must be *InvalidSectionError, got %T", err)
		})
	}
}
