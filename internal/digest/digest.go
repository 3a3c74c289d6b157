// Package digest runs one full notification cycle: fetch, ingest, collect,
// format, deliver, confirm.
package digest

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"scholarship-tracker-go/internal/formatter"
	"scholarship-tracker-go/internal/metrics"
	"scholarship-tracker-go/internal/notifier"
	"scholarship-tracker-go/internal/source"
	"scholarship-tracker-go/internal/tracker"
)

// Service orchestrates a single digest run. Runs are sequential: one
// invocation completes (or fails) before the next scheduled one begins.
type Service struct {
	source    source.Source
	tracker   *tracker.Tracker
	formatter formatter.Formatter
	notifier  notifier.Notifier
	metrics   *metrics.Metrics
	window    time.Duration
}

func NewService(src source.Source, tr *tracker.Tracker, fm formatter.Formatter, nt notifier.Notifier, m *metrics.Metrics, window time.Duration) *Service {
	return &Service{
		source:    src,
		tracker:   tr,
		formatter: fm,
		notifier:  nt,
		metrics:   m,
		window:    window,
	}
}

// Run executes one digest cycle. Error handling follows the run-level
// taxonomy: source failures degrade to zero new records, formatter and
// notifier failures end the run without confirming delivery, and storage
// failures abort. The returned error is for logging only; a failed run never
// prevents the next one.
func (s *Service) Run(ctx context.Context) error {
	start := time.Now()
	s.metrics.RunCount.Inc()
	defer func() {
		s.metrics.RunDuration.Observe(time.Since(start).Seconds())
	}()

	logrus.Info("Starting digest run")

	// Source failures are recoverable: previously stored unsent records can
	// still produce a digest.
	fetched, _ := s.source.Fetch(ctx)

	ingested, err := s.tracker.Ingest(fetched)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}
	s.metrics.RecordsIngested.Add(float64(ingested))
	logrus.Infof("Ingested %d scholarship records", ingested)

	pending, err := s.tracker.CollectForDelivery(s.window)
	if err != nil {
		return fmt.Errorf("collecting unsent records failed: %w", err)
	}
	s.metrics.UnsentRecords.Set(float64(len(pending)))

	if len(pending) == 0 {
		logrus.Info("No unsent scholarships within the retention window, ending run")
		return nil
	}

	content, err := s.formatter.Format(ctx, pending)
	if err != nil {
		s.metrics.FormatterFailures.Inc()
		return fmt.Errorf("formatter failed, skipping delivery: %w", err)
	}

	subject := fmt.Sprintf("🎓 Scholarship Updates - %s", time.Now().Format("02 January 2006"))
	body, err := renderShell(content)
	if err != nil {
		return fmt.Errorf("rendering mail body failed: %w", err)
	}

	if err := s.notifier.Deliver(ctx, subject, body); err != nil {
		// Skipping confirmation keeps the records eligible for the next run.
		s.metrics.DeliveryFailures.Inc()
		return fmt.Errorf("delivery failed, records remain unsent: %w", err)
	}

	ids := make([]string, len(pending))
	for i, rec := range pending {
		ids[i] = rec.ID
	}
	if err := s.tracker.ConfirmDelivery(ids); err != nil {
		// Delivered but unmarked: the records will be re-offered next run.
		return fmt.Errorf("delivery confirmed but marking sent failed: %w", err)
	}

	s.metrics.DigestsSent.Inc()
	logrus.Infof("Digest with %d scholarships delivered and confirmed in %v", len(pending), time.Since(start))
	return nil
}
