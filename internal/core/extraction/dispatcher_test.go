package extraction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divinosdoces/contratos-api/internal/core"
)

type stubSource struct{ text string }

func (s *stubSource) PlainText(_ []byte) string { return s.text }

func TestDispatcherNoTextMeansNoResult(t *testing.T) {
	d := NewDispatcher(&stubSource{text: ""}, &fakeTagger{})

	for _, mode := range []Mode{ModePattern, ModeStatistical} {
		rec, err := d.Extract(context.Background(), []byte("corrupt bytes"), mode)
		assert.NoError(t, err, "mode %s", mode)
		assert.Nil(t, rec, "mode %s", mode)
	}
}

func TestDispatcherRoutesByMode(t *testing.T) {
	tagger := &fakeTagger{entities: []core.Entity{{Text: "Alguém", Label: core.LabelPerson}}}
	d := NewDispatcher(&stubSource{text: "texto sem âncoras"}, tagger)

	pat, err := d.Extract(context.Background(), nil, ModePattern)
	require.NoError(t, err)
	assert.Equal(t, NotAvailable, pat.Party.Name)

	stat, err := d.Extract(context.Background(), nil, ModeStatistical)
	require.NoError(t, err)
	assert.Equal(t, "Alguém", stat.Party.Name)
}

func TestDispatcherStatisticalWithoutTagger(t *testing.T) {
	d := NewDispatcher(&stubSource{text: "texto"}, nil)

	rec, err := d.Extract(context.Background(), nil, ModeStatistical)
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, ErrTaggerUnavailable)

	// The pattern strategy stays usable without the model.
	rec, err = d.Extract(context.Background(), nil, ModePattern)
	assert.NoError(t, err)
	assert.NotNil(t, rec)
}

func TestDispatcherIsIdempotent(t *testing.T) {
	d := NewDispatcher(&stubSource{text: sampleContract}, nil)

	first, err := d.Extract(context.Background(), []byte("same"), ModePattern)
	require.NoError(t, err)
	second, err := d.Extract(context.Background(), []byte("same"), ModePattern)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModePattern, ParseMode("pattern"))
	assert.Equal(t, ModeStatistical, ParseMode("statistical"))
	assert.Equal(t, ModeStatistical, ParseMode(""))
	assert.Equal(t, ModeStatistical, ParseMode("anything-else"))
}

func TestDocconvSourceRejectsGarbage(t *testing.T) {
	got := NewDocconvSource().PlainText([]byte("definitely not a pdf"))
	assert.Empty(t, got)
}
