package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowcal/wellobs/internal/schedule"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "wellobs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleSchedule() *schedule.Schedule {
	s := schedule.New()
	s.Append(schedule.Event{
		Date: time.Date(2005, 11, 1, 0, 0, 0, 0, time.UTC),
		Well: "A-1",
		Kind: schedule.KindProductionHistory,
		Fields: map[string]float64{
			schedule.VectorOilRate: 1000,
			schedule.VectorBHP:     250,
		},
	})
	s.Append(schedule.Event{
		Date: time.Date(2005, 11, 1, 0, 0, 0, 0, time.UTC),
		Well: "I-1",
		Kind: schedule.KindInjectionHistory,
		Fields: map[string]float64{
			schedule.VectorWaterInjRate: 3000,
		},
	})
	s.Append(schedule.Event{
		Date: time.Date(2005, 12, 1, 0, 0, 0, 0, time.UTC),
		Well: "A-1",
		Kind: schedule.KindProductionHistory,
		Fields: map[string]float64{
			schedule.VectorOilRate: 980,
			schedule.VectorBHP:     248,
		},
	})
	return s
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	original := sampleSchedule()
	require.NoError(t, s.SaveSchedule(ctx, original))

	loaded, err := s.LoadSchedule(ctx)
	require.NoError(t, err)

	require.Equal(t, original.Len(), loaded.Len())
	assert.Equal(t, original.Wells(), loaded.Wells())
	assert.Equal(t, original.Events(), loaded.Events())
}

func TestStore_LoadEmpty(t *testing.T) {
	s := openTestStore(t)

	loaded, err := s.LoadSchedule(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Len())
}

func TestStore_SaveAppends(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSchedule(ctx, sampleSchedule()))
	require.NoError(t, s.SaveSchedule(ctx, sampleSchedule()))

	loaded, err := s.LoadSchedule(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, loaded.Len(), "saves append to the event log")
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wellobs.db")

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.SaveSchedule(context.Background(), sampleSchedule()))
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()

	loaded, err := second.LoadSchedule(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Len(), "reopening keeps stored events")
}
