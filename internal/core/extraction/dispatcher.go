package extraction

import (
	"context"
	"fmt"

	"github.com/divinosdoces/contratos-api/internal/core"
)

// Mode selects the extraction strategy for one call.
type Mode string

const (
	ModePattern     Mode = "pattern"
	ModeStatistical Mode = "statistical"
)

// ParseMode maps a caller-supplied selector onto a Mode, defaulting to the
// statistical fallback when the value is empty or unrecognized.
func ParseMode(s string) Mode {
	if Mode(s) == ModePattern {
		return ModePattern
	}
	return ModeStatistical
}

// Strategy converts extracted text into a normalized record.
type Strategy interface {
	Extract(ctx context.Context, text string) (*Record, error)
}

// Dispatcher is the sole public entry point to the extraction core. It holds
// no per-call state; a single instance is safe for concurrent use. The
// entity tagger is injected at construction and may be nil: the statistical
// strategy then fails on use, not at startup.
type Dispatcher struct {
	source      TextSource
	pattern     Strategy
	statistical Strategy
}

func NewDispatcher(source TextSource, tagger core.EntityTagger) *Dispatcher {
	return &Dispatcher{
		source:      source,
		pattern:     NewPatternStrategy(),
		statistical: NewStatisticalStrategy(tagger),
	}
}

// Extract runs the text extractor and routes to the strategy named by mode.
// A document that yields no text returns (nil, nil): extraction impossible,
// distinct from an error. Strategy errors (a missing or failing tagger)
// propagate.
func (d *Dispatcher) Extract(ctx context.Context, data []byte, mode Mode) (*Record, error) {
	text := d.source.PlainText(data)
	if text == "" {
		return nil, nil
	}

	switch mode {
	case ModePattern:
		return d.pattern.Extract(ctx, text)
	case ModeStatistical:
		return d.statistical.Extract(ctx, text)
	default:
		return nil, fmt.Errorf("unknown extraction mode %q", mode)
	}
}
