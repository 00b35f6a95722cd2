package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// FieldMap holds the numeric valuation fields kept in a snapshot. It is
// persisted as a JSON column so the set of fields can differ per craft.
type FieldMap map[string]float64

// Value implements driver.Valuer.
func (m FieldMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (m *FieldMap) Scan(value interface{}) error {
	if value == nil {
		*m = FieldMap{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported column type %T for FieldMap", value)
	}
	return json.Unmarshal(raw, m)
}

// CraftSnapshot stores one periodic snapshot of a craft's valuation
// to build historical series for charting. The ID is storage-internal
// and never leaves the store.
type CraftSnapshot struct {
	ID      uint     `json:"id" gorm:"primaryKey"`
	CraftID string   `json:"craft_id" gorm:"index:idx_craft_ts,priority:1;not null"`
	Fields  FieldMap `json:"fields" gorm:"type:json"`
	// RFC 3339 string at the configured stamp offset; compared lexically.
	Timestamp string `json:"timestamp" gorm:"index:idx_craft_ts,priority:2;not null"`
}
