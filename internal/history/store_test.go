package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structcalc/beamcap/internal/aci"
	"github.com/structcalc/beamcap/internal/beam"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func solved(t *testing.T) (*beam.Rectangular, *beam.MomentResult) {
	t.Helper()
	s, err := beam.NewRectangular(aci.Imperial, 12, 20, 17.5, 4000, 60000, 4, 0.79)
	require.NoError(t, err)
	r, err := s.Solve()
	require.NoError(t, err)
	return s, r
}

func TestOpen(t *testing.T) {
	t.Run("creates the schema", func(t *testing.T) {
		store := openTestStore(t)
		entries, err := store.List(context.Background(), 10)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("rejects empty path", func(t *testing.T) {
		_, err := Open("  ")
		assert.Error(t, err)
	})
}

func TestRecordAndList(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	section, result := solved(t)

	require.NoError(t, store.Record(ctx, section, result))

	entries, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "imperial", e.UnitSystem)
	assert.False(t, e.CreatedAt.IsZero())

	t.Run("inputs survive as numeric map", func(t *testing.T) {
		assert.Equal(t, 12.0, e.Inputs["b"])
		assert.Equal(t, 20.0, e.Inputs["h"])
		assert.Equal(t, 17.5, e.Inputs["d"])
		assert.InDelta(t, 3.16, e.Inputs["As"].(float64), 1e-9)
		assert.Equal(t, "imperial", e.Inputs["unit_system"])
	})

	t.Run("results survive as numeric map", func(t *testing.T) {
		assert.InDelta(t, result.StressBlockDepth, e.Results["a"].(float64), 1e-9)
		assert.InDelta(t, result.ReductionFactor, e.Results["phi"].(float64), 1e-9)
		assert.Equal(t, true, e.Results["yield_check"])
	})
}

func TestListOrderAndLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	section, result := solved(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(ctx, section, result))
	}

	entries, err := store.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Newest first
	assert.Greater(t, entries[0].ID, entries[1].ID)
	assert.Greater(t, entries[1].ID, entries[2].ID)
}
