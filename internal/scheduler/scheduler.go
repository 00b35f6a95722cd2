// Package scheduler drives the two recurring snapshot actions: sampling
// every tracked craft's valuation into the store, and purging stored
// snapshots past the retention horizon.
package scheduler

import (
	"context"
	"errors"
	"log"
	"sync/atomic"
	"time"

	"gw2-tracker/internal/catalog"
	"gw2-tracker/internal/services/valuation"
	"gw2-tracker/internal/snapshot"

	"github.com/robfig/cron/v3"
)

// ValuationSource supplies the current figures for one craft. One request
// per craft; valuation.ErrUnknownCraft plays the not-found sentinel.
type ValuationSource interface {
	Valuation(ctx context.Context, craftID string) (map[string]float64, error)
}

// Options carries the deployment knobs the surrounding process decides.
type Options struct {
	// Production selects the slow cadence: fetch every 15 minutes and
	// cleanup daily at midnight UTC. Development runs fetch every 10
	// seconds and cleanup hourly.
	Production bool
	// RetentionDays is the purge horizon for stored snapshots.
	RetentionDays int
	// StampLocation is the fixed offset snapshots are stamped in.
	StampLocation *time.Location
}

type Scheduler struct {
	source ValuationSource
	store  *snapshot.Store
	crafts []catalog.Entry
	opts   Options
	cron   *cron.Cron

	// Per-action single-flight guards. An overlapping tick is skipped
	// outright, never queued.
	fetchBusy   atomic.Bool
	cleanupBusy atomic.Bool
}

func New(source ValuationSource, store *snapshot.Store, crafts []catalog.Entry, opts Options) *Scheduler {
	return &Scheduler{
		source: source,
		store:  store,
		crafts: crafts,
		opts:   opts,
		cron:   cron.New(cron.WithLocation(time.UTC)),
	}
}

// Start registers both recurring actions at the configured cadence and
// launches the cron loop in its own goroutine.
func (s *Scheduler) Start() error {
	fetchSpec, cleanupSpec := "@every 10s", "@every 1h"
	if s.opts.Production {
		fetchSpec, cleanupSpec = "@every 15m", "0 0 * * *"
	}

	if _, err := s.cron.AddFunc(fetchSpec, s.FetchTick); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(cleanupSpec, s.CleanupTick); err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("[scheduler] started (fetch %s, cleanup %s)", fetchSpec, cleanupSpec)
	return nil
}

// Stop halts the cron loop and waits for any running tick to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("[scheduler] stopped")
}

// FetchTick samples every tracked craft once, in catalog order. A failure
// for one craft never aborts the others; at most one fetch tick runs at a
// time.
func (s *Scheduler) FetchTick() {
	if !s.fetchBusy.CompareAndSwap(false, true) {
		log.Println("[scheduler] fetch tick still running, skipping")
		return
	}
	defer s.fetchBusy.Store(false)

	log.Println("[scheduler] fetching data...")
	for _, craft := range s.crafts {
		s.sampleCraft(craft)
	}
	log.Println("[scheduler] fetching done")
}

func (s *Scheduler) sampleCraft(craft catalog.Entry) {
	fields, err := s.source.Valuation(context.Background(), craft.ID)
	if errors.Is(err, valuation.ErrUnknownCraft) {
		log.Printf("[scheduler] craft %q not found, skipping", craft.ID)
		return
	}
	if err != nil {
		log.Printf("[scheduler] fetch failed for %q: %v", craft.ID, err)
		return
	}

	projected := snapshot.Project(fields, craft.Prefixes)
	stamp := time.Now().In(s.opts.StampLocation).Format(snapshot.TimeLayout)
	if err := s.store.Append(craft.ID, projected, stamp); err != nil {
		log.Printf("[scheduler] append failed for %q: %v", craft.ID, err)
	}
}

// CleanupTick purges snapshots older than the retention horizon. The
// cutoff is wall-clock UTC at delete time.
func (s *Scheduler) CleanupTick() {
	if !s.cleanupBusy.CompareAndSwap(false, true) {
		log.Println("[scheduler] cleanup tick still running, skipping")
		return
	}
	defer s.cleanupBusy.Store(false)

	cutoff := time.Now().UTC().AddDate(0, 0, -s.opts.RetentionDays).Format(snapshot.TimeLayout)
	count, err := s.store.PurgeOlderThan(cutoff)
	if err != nil {
		log.Printf("[scheduler] cleanup failed: %v", err)
		return
	}
	log.Printf("[scheduler] database cleanup completed (%d snapshots removed)", count)
}
