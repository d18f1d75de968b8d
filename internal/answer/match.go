package answer

import "github.com/abhisek/wortiz/internal/vocab"

// Match reports whether a submitted answer set matches the solution set
// under the module's normalization rules. Every index must compare equal.
//
// A nil solution fails closed: credit is never awarded without a known
// solution. Length alignment with the item's labels is the caller's
// contract; a short answer set simply fails to match.
func Match(answers, solution []string, kind vocab.Kind) bool {
	if solution == nil {
		return false
	}
	if len(answers) != len(solution) {
		return false
	}
	opts := OptionsFor(kind)
	for i := range solution {
		if Normalize(answers[i], opts) != Normalize(solution[i], opts) {
			return false
		}
	}
	return true
}
