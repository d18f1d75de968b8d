package adaptive

import (
	"errors"

	"github.com/abhisek/wortiz/internal/vocab"
)

// ErrEmptyRemediation is returned when no previously-missed items are
// available to build a remedial cycle from.
var ErrEmptyRemediation = errors.New("no missed items to remediate")

// BuildRemedial assembles a synthetic cycle from previously-missed items,
// weakest first. Items without a recorded miss are ignored. limit caps the
// cycle size (required for the number module); limit <= 0 means use all.
// Each item keeps its historical solution and labels so the session can
// grade it without further lookups.
func BuildRemedial(kind vocab.Kind, items []vocab.Item, cycleIndexHint, limit int) (*vocab.Cycle, error) {
	missed := make([]vocab.Item, 0, len(items))
	for _, item := range items {
		if item.Stats.Wrong > 0 {
			missed = append(missed, item)
		}
	}
	if len(missed) == 0 {
		return nil, ErrEmptyRemediation
	}

	selected := make([]vocab.Item, 0, len(missed))
	for item := range Weakest(missed) {
		if limit > 0 && len(selected) >= limit {
			break
		}
		selected = append(selected, item)
	}

	return &vocab.Cycle{
		Number: cycleIndexHint,
		Mode:   vocab.ModeRemedial,
		Kind:   kind,
		Items:  selected,
	}, nil
}
