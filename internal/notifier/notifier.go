// Package notifier delivers the formatted digest by email. Two transports
// are available: plain SMTP submission and the Gmail API, selected by
// configuration.
package notifier

import (
	"context"
	"fmt"

	"scholarship-tracker-go/internal/config"
)

// Notifier accepts a formatted payload and reports success or failure.
// Callers must only confirm delivery after Deliver returns nil.
type Notifier interface {
	Deliver(ctx context.Context, subject, htmlBody string) error
	Close() error
}

// New builds the notifier selected by cfg.Mode.
func New(cfg *config.MailConfig) (Notifier, error) {
	switch cfg.Mode {
	case "smtp":
		return NewSMTP(cfg), nil
	case "gmail":
		return NewGmail(cfg)
	default:
		return nil, fmt.Errorf("unknown mail mode: %q", cfg.Mode)
	}
}
