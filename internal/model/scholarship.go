package model

import (
	"time"
)

// Scholarship represents one scholarship opportunity tracked in the database.
// The ID is a content-derived fingerprint of (title, source), so re-observing
// the same opportunity replaces the existing row instead of creating a new one.
type Scholarship struct {
	ID          string    `json:"id" gorm:"type:varchar(64);primaryKey"`
	Title       string    `json:"title" gorm:"type:text;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Source      string    `json:"source" gorm:"type:varchar(255);not null"`
	URL         string    `json:"url" gorm:"type:text"`
	Amount      string    `json:"amount" gorm:"type:text"`
	Deadline    string    `json:"deadline" gorm:"type:text"`
	ObservedAt  time.Time `json:"observed_at" gorm:"index"`
	Sent        bool      `json:"sent" gorm:"default:false"`
}

// TableName specifies the table name for Scholarship
func (Scholarship) TableName() string {
	return "scholarships"
}
