// Package formatter turns scholarship records into the HTML digest body via
// a generative-text API.
package formatter

import (
	"context"

	"scholarship-tracker-go/internal/model"
)

// Formatter produces the digest body for a batch of scholarship records.
type Formatter interface {
	Format(ctx context.Context, records []model.Scholarship) (string, error)
}
