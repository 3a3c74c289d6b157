package tracker

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"scholarship-tracker-go/internal/fingerprint"
	"scholarship-tracker-go/internal/model"
	"scholarship-tracker-go/internal/store"
)

const week = 7 * 24 * time.Hour

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Scholarship{}))

	return New(store.New(db))
}

func TestIngestEmpty(t *testing.T) {
	tr := newTestTracker(t)

	n, err := tr.Ingest(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	unsent, err := tr.CollectForDelivery(week)
	require.NoError(t, err)
	assert.Empty(t, unsent)
}

func TestIngestAssignsFingerprints(t *testing.T) {
	tr := newTestTracker(t)

	n, err := tr.Ingest([]model.Scholarship{
		{Title: "X", Source: "Y"},
		{Title: "X", Source: "Z"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	unsent, err := tr.CollectForDelivery(week)
	require.NoError(t, err)
	require.Len(t, unsent, 2)

	ids := map[string]bool{}
	for _, rec := range unsent {
		ids[rec.ID] = true
	}
	assert.True(t, ids[fingerprint.Sum("X", "Y")])
	assert.True(t, ids[fingerprint.Sum("X", "Z")])
}

func TestIngestDeduplicates(t *testing.T) {
	tr := newTestTracker(t)

	rec := model.Scholarship{Title: "KVPY", Source: "DST", Description: "v1"}
	_, err := tr.Ingest([]model.Scholarship{rec})
	require.NoError(t, err)

	rec.Description = "v2"
	_, err = tr.Ingest([]model.Scholarship{rec})
	require.NoError(t, err)

	unsent, err := tr.CollectForDelivery(week)
	require.NoError(t, err)
	require.Len(t, unsent, 1)
	assert.Equal(t, "v2", unsent[0].Description)
}

func TestAtLeastOnceDelivery(t *testing.T) {
	tr := newTestTracker(t)

	_, err := tr.Ingest([]model.Scholarship{
		{Title: "X", Source: "Y"},
		{Title: "X", Source: "Z"},
	})
	require.NoError(t, err)

	// No confirmation yet: both records stay eligible on a second collect.
	unsent, err := tr.CollectForDelivery(week)
	require.NoError(t, err)
	require.Len(t, unsent, 2)

	unsent, err = tr.CollectForDelivery(week)
	require.NoError(t, err)
	require.Len(t, unsent, 2)

	// Confirming only A leaves B eligible.
	require.NoError(t, tr.ConfirmDelivery([]string{fingerprint.Sum("X", "Y")}))

	unsent, err = tr.CollectForDelivery(week)
	require.NoError(t, err)
	require.Len(t, unsent, 1)
	assert.Equal(t, fingerprint.Sum("X", "Z"), unsent[0].ID)
}

func TestReIngestKeepsSentTerminal(t *testing.T) {
	tr := newTestTracker(t)

	rec := model.Scholarship{Title: "CSIR JRF", Source: "CSIR"}
	_, err := tr.Ingest([]model.Scholarship{rec})
	require.NoError(t, err)

	require.NoError(t, tr.ConfirmDelivery([]string{fingerprint.Sum("CSIR JRF", "CSIR")}))

	_, err = tr.Ingest([]model.Scholarship{rec})
	require.NoError(t, err)

	unsent, err := tr.CollectForDelivery(week)
	require.NoError(t, err)
	assert.Empty(t, unsent)
}
