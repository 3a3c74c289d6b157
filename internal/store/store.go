// Package store provides durable keyed storage for scholarship records with
// upsert and notification-status operations.
package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scholarship-tracker-go/internal/model"
)

// StorageError wraps a storage-layer failure. Callers treat it as fatal to
// the operation that produced it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error in %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Store is the record store backed by a single scholarships table.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Upsert inserts or replaces the row for rec.ID. All fields are replaced,
// including observed_at, except sent: once a record has been marked sent it
// stays sent across re-observations. Overwriting is not an error.
func (s *Store) Upsert(rec model.Scholarship) error {
	result := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "description", "source", "url", "amount", "deadline", "observed_at",
		}),
	}).Create(&rec)
	if result.Error != nil {
		return &StorageError{Op: "upsert", Err: result.Error}
	}
	return nil
}

// MarkSent sets sent=true for each given id. Ids with no matching row are
// silently ignored.
func (s *Store) MarkSent(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	result := s.db.Model(&model.Scholarship{}).
		Where("id IN ?", ids).
		Update("sent", true)
	if result.Error != nil {
		return &StorageError{Op: "mark_sent", Err: result.Error}
	}
	return nil
}

// SelectUnsent returns all records with sent=false observed within the given
// window. Ordering is not part of the contract.
func (s *Store) SelectUnsent(window time.Duration) ([]model.Scholarship, error) {
	var records []model.Scholarship
	cutoff := time.Now().Add(-window)
	result := s.db.Where("sent = ? AND observed_at >= ?", false, cutoff).Find(&records)
	if result.Error != nil {
		return nil, &StorageError{Op: "select_unsent", Err: result.Error}
	}
	return records, nil
}

// WithTx returns a Store bound to the given transaction handle.
func (s *Store) WithTx(tx *gorm.DB) *Store {
	return &Store{db: tx}
}

// Transaction runs fn inside a database transaction.
func (s *Store) Transaction(fn func(tx *Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(s.WithTx(tx))
	})
}

// CountUnsent returns the number of unsent records within the window. Used by
// the metrics gauge and the admin API.
func (s *Store) CountUnsent(window time.Duration) (int64, error) {
	var n int64
	cutoff := time.Now().Add(-window)
	result := s.db.Model(&model.Scholarship{}).
		Where("sent = ? AND observed_at >= ?", false, cutoff).
		Count(&n)
	if result.Error != nil {
		return 0, &StorageError{Op: "count_unsent", Err: result.Error}
	}
	return n, nil
}

// All returns every stored record. Admin API use only.
func (s *Store) All() ([]model.Scholarship, error) {
	var records []model.Scholarship
	if result := s.db.Find(&records); result.Error != nil {
		return nil, &StorageError{Op: "all", Err: result.Error}
	}
	return records, nil
}
