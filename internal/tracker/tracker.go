// Package tracker glues ingestion to notification: it deduplicates incoming
// scholarship records and selects unsent, non-expired ones for delivery.
package tracker

import (
	"time"

	"scholarship-tracker-go/internal/fingerprint"
	"scholarship-tracker-go/internal/model"
	"scholarship-tracker-go/internal/store"
)

type Tracker struct {
	store *store.Store
}

func New(s *store.Store) *Tracker {
	return &Tracker{store: s}
}

// Ingest fingerprints each record and upserts it into the store. All upserts
// run in one transaction: a failure on any record rolls back the whole batch
// and surfaces the storage error. Returns the number of records ingested.
// Ingest never touches the sent flag.
func (t *Tracker) Ingest(records []model.Scholarship) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	now := time.Now()
	err := t.store.Transaction(func(tx *store.Store) error {
		for _, rec := range records {
			rec.ID = fingerprint.Sum(rec.Title, rec.Source)
			rec.ObservedAt = now
			rec.Sent = false
			if err := tx.Upsert(rec); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// CollectForDelivery returns all unsent records observed within the window.
// Pure read, no mutation.
func (t *Tracker) CollectForDelivery(window time.Duration) ([]model.Scholarship, error) {
	return t.store.SelectUnsent(window)
}

// ConfirmDelivery marks the given ids as sent. Call only after the notifier
// has reported success; skipping it on failure is what gives at-least-once
// delivery.
func (t *Tracker) ConfirmDelivery(ids []string) error {
	return t.store.MarkSent(ids)
}
