// Package snapshot holds the persisted craft snapshot store and the field
// projection applied before anything is written.
package snapshot

import (
	"errors"
	"fmt"

	"gw2-tracker/internal/models"

	"gorm.io/gorm"
)

// ErrStorageUnavailable wraps every storage-layer failure so callers can
// tell it apart from upstream errors with errors.Is.
var ErrStorageUnavailable = errors.New("snapshot storage unavailable")

// TimeLayout renders timestamps with an explicit numeric offset ("+00:00"
// for UTC, never "Z") so stored strings of equal length sort lexically in
// time order.
const TimeLayout = "2006-01-02T15:04:05-07:00"

// Record is a snapshot as seen by readers: no storage-internal ID.
type Record struct {
	CraftID   string          `json:"craft_id"`
	Fields    models.FieldMap `json:"fields"`
	Timestamp string          `json:"timestamp"`
}

// Store persists craft snapshots. Each craft is an independent namespace;
// rows are immutable once written.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Append durably persists one snapshot. Content is never rejected; the only
// failure mode is the storage layer itself.
func (s *Store) Append(craftID string, fields models.FieldMap, timestamp string) error {
	snap := models.CraftSnapshot{
		CraftID:   craftID,
		Fields:    fields,
		Timestamp: timestamp,
	}
	if err := s.db.Create(&snap).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// QueryRange returns the craft's snapshots with timestamp >= start (if
// non-empty) and <= end (if non-empty), in storage order. Timestamps are
// fixed-layout RFC 3339 strings, so the comparison is lexical, same as the
// storage layer this replaces.
func (s *Store) QueryRange(craftID, start, end string) ([]Record, error) {
	q := s.db.Model(&models.CraftSnapshot{}).Where("craft_id = ?", craftID)
	if start != "" {
		q = q.Where("timestamp >= ?", start)
	}
	if end != "" {
		q = q.Where("timestamp <= ?", end)
	}

	var snaps []models.CraftSnapshot
	if err := q.Order("id asc").Find(&snaps).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	records := make([]Record, len(snaps))
	for i, snap := range snaps {
		records[i] = Record{
			CraftID:   snap.CraftID,
			Fields:    snap.Fields,
			Timestamp: snap.Timestamp,
		}
	}
	return records, nil
}

// PurgeOlderThan deletes, across all crafts, every snapshot whose timestamp
// sorts before the cutoff string. Idempotent: a second run with the same
// cutoff deletes nothing.
func (s *Store) PurgeOlderThan(cutoff string) (int64, error) {
	res := s.db.Where("timestamp < ?", cutoff).Delete(&models.CraftSnapshot{})
	if res.Error != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorageUnavailable, res.Error)
	}
	return res.RowsAffected, nil
}
