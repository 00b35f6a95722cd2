// Package history serves stored snapshot series to the charting front end.
package history

import (
	"time"

	"gw2-tracker/internal/snapshot"
)

// Window is how far back the history endpoint looks.
const Window = 24 * time.Hour

// Service reconstructs a bounded time window of snapshots for one craft.
type Service struct {
	store *snapshot.Store
	loc   *time.Location
}

// NewService builds the query service. loc is the shared stamp offset; the
// window's "now" is expressed in it, matching how snapshots were stamped.
func NewService(store *snapshot.Store, loc *time.Location) *Service {
	return &Service{store: store, loc: loc}
}

// GetHistory returns the craft's snapshots from the trailing 24-hour
// window, oldest first in write order. An empty window yields an empty
// slice, not an error. Returned records carry no storage identifiers.
func (s *Service) GetHistory(craftID string) ([]snapshot.Record, error) {
	end := time.Now().In(s.loc)
	start := end.Add(-Window)

	records, err := s.store.QueryRange(
		craftID,
		start.Format(snapshot.TimeLayout),
		end.Format(snapshot.TimeLayout),
	)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []snapshot.Record{}
	}
	return records, nil
}
