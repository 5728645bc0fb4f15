package extraction

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/divinosdoces/contratos-api/internal/core"
)

// ErrTaggerUnavailable means the service was started without its NLP model.
// That is a deployment defect, not a per-request condition; callers should
// not retry per call.
var ErrTaggerUnavailable = errors.New("entity tagger not configured")

var (
	reCPFShape   = regexp.MustCompile(`(\d{3}\.\d{3}\.\d{3}-\d{2})`)
	rePhoneShape = regexp.MustCompile(`(\(?\d{2}\)?\s*\d{4,5}-?\d{4})`)
	reEmailShape = regexp.MustCompile(`([\w.\-]+@[\w.\-]+)`)
	// Intentionally loose: arbitrary text may sit between the keyword and the
	// amount, so an unrelated later amount can win. Kept as-is.
	reLooseTotal  = regexp.MustCompile(`(?i)(?:valor\s*total|preço\s*final)[\s\S]*?(R\$\s*[\d.,]+)`)
	reLabeledDate = regexp.MustCompile(`(?i)data\s*do\s*evento[:\s]*(\d{2}/\d{2}/\d{4})`)
)

// StatisticalStrategy is the fallback parser for contracts of unknown layout.
// It leans on a named-entity tagger plus light regex; coverage over accuracy.
type StatisticalStrategy struct {
	tagger core.EntityTagger
}

func NewStatisticalStrategy(tagger core.EntityTagger) *StatisticalStrategy {
	return &StatisticalStrategy{tagger: tagger}
}

// Extract runs the full text through the tagger and takes the first
// person-type entity as the party name and the first location-type entity as
// the event location; no disambiguation when several are named. Line items
// and the payment fields are never populated here and keep their "verify in
// document" sentinels.
func (s *StatisticalStrategy) Extract(ctx context.Context, text string) (*Record, error) {
	if s.tagger == nil {
		return nil, ErrTaggerUnavailable
	}

	ents, err := s.tagger.Tag(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("tag text: %w", err)
	}

	rec := newStatisticalRecord()
	for _, e := range ents {
		switch e.Label {
		case core.LabelPerson:
			if rec.Party.Name == NotFound {
				rec.Party.Name = e.Text
			}
		case core.LabelLocation:
			if rec.EventLocation == NotFound {
				rec.EventLocation = e.Text
			}
		}
	}

	setMatch(&rec.Party.CPF, reCPFShape, text)
	setMatch(&rec.Party.Phone, rePhoneShape, text)
	setMatch(&rec.Party.Email, reEmailShape, text)
	setMatch(&rec.OrderTotal, reLooseTotal, text)
	setMatch(&rec.EventDate, reLabeledDate, text)

	return rec, nil
}
