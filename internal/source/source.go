// Package source provides the content sources that produce candidate
// scholarship records for ingestion.
package source

import (
	"context"

	"github.com/sirupsen/logrus"

	"scholarship-tracker-go/internal/model"
)

// Source fetches candidate scholarship records. Implementations report
// errors, but callers treat a failing source as yielding zero records rather
// than aborting the run.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]model.Scholarship, error)
}

// Multi fans over a list of sources. A source failure is logged as a warning
// and contributes nothing; Multi itself never fails.
type Multi struct {
	sources []Source
}

func NewMulti(sources ...Source) *Multi {
	return &Multi{sources: sources}
}

func (m *Multi) Name() string {
	return "multi"
}

func (m *Multi) Fetch(ctx context.Context) ([]model.Scholarship, error) {
	var all []model.Scholarship
	for _, s := range m.sources {
		records, err := s.Fetch(ctx)
		if err != nil {
			logrus.Warnf("Source %s failed, continuing without it: %v", s.Name(), err)
			continue
		}
		logrus.Infof("Fetched %d scholarships from %s", len(records), s.Name())
		all = append(all, records...)
	}
	return all, nil
}
