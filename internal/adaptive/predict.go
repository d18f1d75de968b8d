// Package adaptive decides how the next practice cycle is built: whether
// item selection should be random or accuracy-weighted, how items are
// picked for an adaptive cycle, and how previously-missed items are ranked
// and assembled into a remedial cycle.
package adaptive

import "github.com/abhisek/wortiz/internal/vocab"

// Thresholds governing the switch from random to adaptive selection.
// The picker and the predictor share these so the recommendation shown to
// the learner matches how the next cycle is actually built.
const (
	// AdaptiveAfterCycles: from the following cycle on, selection is
	// always adaptive.
	AdaptiveAfterCycles = 5

	// MinAttemptsForAdaptive is the attempt floor for the early switch.
	MinAttemptsForAdaptive = 25

	// HighAccuracyThreshold is the accuracy needed for the early switch,
	// and the bar below which an item counts as "hard" during selection.
	HighAccuracyThreshold = 0.88

	// EasyReviewFraction is the share of well-known items kept in an
	// adaptive cycle so mastered material still gets refreshed.
	EasyReviewFraction = 0.25
)

// RecommendNextMode maps a stats snapshot to the selection mode of the
// learner's next cycle: adaptive once enough cycles have been played, or
// earlier when a solid attempt history shows high accuracy.
func RecommendNextMode(stats vocab.StatsSnapshot) string {
	cycleIndex := stats.CycleCount + 1
	if cycleIndex > AdaptiveAfterCycles {
		return vocab.ModeAdaptive
	}
	if stats.Attempts >= MinAttemptsForAdaptive && stats.Accuracy() >= HighAccuracyThreshold {
		return vocab.ModeAdaptive
	}
	return vocab.ModeRandom
}
