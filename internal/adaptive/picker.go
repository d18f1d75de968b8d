package adaptive

import (
	"math/rand/v2"
	"sort"
	"time"

	"github.com/abhisek/wortiz/internal/vocab"
)

// ChooseCycleItems selects and orders the items of a new cycle.
//
// Random mode shuffles the pool and caps it at size. Adaptive mode splits
// the pool into hard items (unseen, below the accuracy bar, or without a
// settled streak) and easy ones, keeps a small easy-review share, fills up
// from whatever remains, and presents the selection hardest-first.
//
// size <= 0 means "use the whole pool". The input slice is not mutated.
func ChooseCycleItems(items []vocab.Item, adaptive bool, size int, rng *rand.Rand, now time.Time) []vocab.Item {
	if len(items) == 0 {
		return nil
	}

	pool := make([]vocab.Item, len(items))
	copy(pool, items)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	target := len(pool)
	if size > 0 && size < target {
		target = size
	}

	if !adaptive {
		return pool[:target]
	}

	var hard, easy []vocab.Item
	for _, item := range pool {
		s := item.Stats
		if s.Attempts == 0 || s.Accuracy() < HighAccuracyThreshold || s.Streak < 3 {
			hard = append(hard, item)
		} else {
			easy = append(easy, item)
		}
	}

	easyCount := max(1, int(float64(target)*EasyReviewFraction))
	hardCount := max(0, target-easyCount)

	hardTaken := min(hardCount, len(hard))
	easyTaken := min(easyCount, len(easy))

	selected := make([]vocab.Item, 0, target)
	selected = append(selected, hard[:hardTaken]...)
	selected = append(selected, easy[:easyTaken]...)

	if len(selected) < target {
		remaining := make([]vocab.Item, 0, len(pool)-len(selected))
		remaining = append(remaining, hard[hardTaken:]...)
		remaining = append(remaining, easy[easyTaken:]...)
		selected = append(selected, remaining[:target-len(selected)]...)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return vocab.Difficulty(selected[i].Stats, now) > vocab.Difficulty(selected[j].Stats, now)
	})
	return selected
}
