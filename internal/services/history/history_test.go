package history

import (
	"testing"
	"time"

	"gw2-tracker/internal/models"
	"gw2-tracker/internal/snapshot"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var stampZone = time.FixedZone("UTC+2", 2*3600)

func newTestService(t *testing.T) (*Service, *snapshot.Store) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CraftSnapshot{}))
	store := snapshot.NewStore(db)
	return NewService(store, stampZone), store
}

func TestGetHistory_TrailingDayOnly(t *testing.T) {
	svc, store := newTestService(t)
	now := time.Now().In(stampZone)

	old := now.Add(-26 * time.Hour).Format(snapshot.TimeLayout)
	recent := now.Add(-1 * time.Hour).Format(snapshot.TimeLayout)
	require.NoError(t, store.Append("scholar_rune", models.FieldMap{"sell_g": 1}, old))
	require.NoError(t, store.Append("scholar_rune", models.FieldMap{"sell_g": 2}, recent))

	records, err := svc.GetHistory("scholar_rune")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, recent, records[0].Timestamp)
}

func TestGetHistory_EmptyWindowIsEmptySlice(t *testing.T) {
	svc, _ := newTestService(t)

	records, err := svc.GetHistory("guardian_rune")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}
