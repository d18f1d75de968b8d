package adaptive

import (
	"iter"
	"sort"

	"github.com/abhisek/wortiz/internal/vocab"
)

// Weakest returns the items ordered weakest-first as a restartable
// sequence: ascending accuracy (an unseen item counts as fully known and
// sorts last), ties broken by descending attempts so a thoroughly-drilled
// weak item outranks a barely-tried one, original order otherwise.
// The input slice is not mutated.
func Weakest(items []vocab.Item) iter.Seq[vocab.Item] {
	ranked := make([]vocab.Item, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		ai, aj := ranked[i].Stats.Accuracy(), ranked[j].Stats.Accuracy()
		if ai != aj {
			return ai < aj
		}
		return ranked[i].Stats.Attempts > ranked[j].Stats.Attempts
	})
	return func(yield func(vocab.Item) bool) {
		for _, item := range ranked {
			if !yield(item) {
				return
			}
		}
	}
}
