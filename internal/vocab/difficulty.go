package vocab

import "time"

// Difficulty estimates how hard an item currently is for the learner,
// on an open scale where 5.0 means "never seen" and values near 0.1 mean
// "thoroughly known". Adaptive cycles present selected items hardest-first.
//
// The score starts from inaccuracy, is eased by a correct streak, hardened
// by reveals, and nudged up the longer the item has not been seen.
func Difficulty(s ItemStats, now time.Time) float64 {
	if s.Attempts == 0 {
		return 5.0
	}

	accuracy := float64(s.Attempts-s.Wrong) / float64(s.Attempts)
	diff := 1.0 + (1.0-accuracy)*4.0
	diff -= float64(min(s.Streak, 6)) * 0.25
	diff += float64(min(s.Reveals, 5)) * 0.15

	if !s.LastSeen.IsZero() {
		days := now.Sub(s.LastSeen).Seconds() / 86400.0
		diff += clamp(days/4.0, 0.0, 1.0)
	}

	if diff < 0.1 {
		return 0.1
	}
	return diff
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
