package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gw2-tracker/internal/catalog"
	"gw2-tracker/internal/models"
	"gw2-tracker/internal/services/valuation"
	"gw2-tracker/internal/snapshot"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeSource returns canned valuations and can fail or stall per craft.
// It tracks the peak number of concurrently running calls.
type fakeSource struct {
	valuations map[string]map[string]float64
	failing    map[string]error
	delay      time.Duration

	mu     sync.Mutex
	active int
	peak   int
}

func (f *fakeSource) Valuation(ctx context.Context, craftID string) (map[string]float64, error) {
	f.mu.Lock()
	f.active++
	if f.active > f.peak {
		f.peak = f.active
	}
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.active--
		f.mu.Unlock()
	}()

	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if err, ok := f.failing[craftID]; ok {
		return nil, err
	}
	v, ok := f.valuations[craftID]
	if !ok {
		return nil, valuation.ErrUnknownCraft
	}
	return v, nil
}

func newTestScheduler(t *testing.T, source ValuationSource, crafts []catalog.Entry) (*Scheduler, *snapshot.Store) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CraftSnapshot{}))

	store := snapshot.NewStore(db)
	sched := New(source, store, crafts, Options{
		RetentionDays: 14,
		StampLocation: time.FixedZone("UTC+2", 2*3600),
	})
	return sched, store
}

func testCrafts(ids ...string) []catalog.Entry {
	crafts := make([]catalog.Entry, len(ids))
	for i, id := range ids {
		crafts[i] = catalog.Entry{ID: id, Prefixes: []string{"crafting_cost", "sell"}}
	}
	return crafts
}

func TestFetchTick_AppendsProjectedSnapshots(t *testing.T) {
	source := &fakeSource{
		valuations: map[string]map[string]float64{
			"scholar_rune": {
				"crafting_cost_g": 10,
				"sell_g":          12,
				"flip_g":          1,
				"profit_g":        2,
			},
		},
	}
	sched, store := newTestScheduler(t, source, testCrafts("scholar_rune"))

	sched.FetchTick()

	records, err := store.QueryRange("scholar_rune", "", "")
	require.NoError(t, err)
	require.Len(t, records, 1)
	// flip and profit are dropped at write time
	assert.Equal(t, models.FieldMap{"crafting_cost_g": 10, "sell_g": 12}, records[0].Fields)

	// Stamp carries the configured fixed offset
	ts, err := time.Parse(snapshot.TimeLayout, records[0].Timestamp)
	require.NoError(t, err)
	_, offset := ts.Zone()
	assert.Equal(t, 2*3600, offset)
}

func TestFetchTick_OneFailingCraftDoesNotAbortOthers(t *testing.T) {
	source := &fakeSource{
		valuations: map[string]map[string]float64{
			"craft_one":   {"sell_g": 1},
			"craft_three": {"sell_g": 3},
		},
		failing: map[string]error{
			"craft_two": errors.New("connection refused"),
		},
	}
	sched, store := newTestScheduler(t, source, testCrafts("craft_one", "craft_two", "craft_three"))

	sched.FetchTick()

	for craft, want := range map[string]int{"craft_one": 1, "craft_two": 0, "craft_three": 1} {
		records, err := store.QueryRange(craft, "", "")
		require.NoError(t, err)
		assert.Len(t, records, want, craft)
	}
}

func TestFetchTick_UnknownCraftIsSkipped(t *testing.T) {
	source := &fakeSource{valuations: map[string]map[string]float64{}}
	sched, store := newTestScheduler(t, source, testCrafts("gone_craft"))

	sched.FetchTick()

	records, err := store.QueryRange("gone_craft", "", "")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFetchTick_SingleFlight(t *testing.T) {
	source := &fakeSource{
		valuations: map[string]map[string]float64{"scholar_rune": {"sell_g": 1}},
		delay:      100 * time.Millisecond,
	}
	sched, store := newTestScheduler(t, source, testCrafts("scholar_rune"))

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sched.FetchTick()
		}()
	}
	wg.Wait()

	// Overlapping ticks were skipped, not queued: only one snapshot
	// written, and never more than one valuation in flight.
	records, err := store.QueryRange("scholar_rune", "", "")
	require.NoError(t, err)
	assert.Len(t, records, 1)

	source.mu.Lock()
	peak := source.peak
	source.mu.Unlock()
	assert.Equal(t, 1, peak)
}

func TestCleanupTick_PurgesPastRetentionHorizon(t *testing.T) {
	source := &fakeSource{}
	sched, store := newTestScheduler(t, source, nil)

	now := time.Now().UTC()
	require.NoError(t, store.Append("scholar_rune", models.FieldMap{}, now.AddDate(0, 0, -15).Format(snapshot.TimeLayout)))
	require.NoError(t, store.Append("scholar_rune", models.FieldMap{}, now.Format(snapshot.TimeLayout)))

	sched.CleanupTick()

	records, err := store.QueryRange("scholar_rune", "", "")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, now.Format(snapshot.TimeLayout), records[0].Timestamp)
}
