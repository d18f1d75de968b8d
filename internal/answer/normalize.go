// Package answer canonicalizes and grades free-text answers.
//
// German answers tolerate different sloppiness depending on the module:
// number and family-phrase answers may substitute ae/oe/ue for umlauts
// (the learner is typing longer phrases where ASCII input is common), while
// noun and verb answers must use exact diacritics but forgive extra internal
// whitespace between the article and the noun.
package answer

import (
	"strings"

	"github.com/abhisek/wortiz/internal/vocab"
)

// Options control answer normalization.
type Options struct {
	// UmlautFallback maps ä→ae, ö→oe, ü→ue after lowercasing.
	UmlautFallback bool

	// CollapseSpaces collapses internal whitespace runs to single spaces.
	CollapseSpaces bool
}

// OptionsFor returns the normalization options of a module. The table is
// the single source of truth; call sites never toggle the booleans ad hoc.
func OptionsFor(kind vocab.Kind) Options {
	switch kind {
	case vocab.KindNumber, vocab.KindFamily:
		return Options{UmlautFallback: true, CollapseSpaces: false}
	default:
		return Options{UmlautFallback: false, CollapseSpaces: true}
	}
}

var umlautReplacer = strings.NewReplacer("ä", "ae", "ö", "oe", "ü", "ue")

// Normalize canonicalizes text for comparison: trim, lowercase, ß→ss,
// then the optional space collapse and umlaut fallback. Idempotent.
func Normalize(text string, opts Options) string {
	cleaned := strings.ToLower(strings.TrimSpace(text))
	cleaned = strings.ReplaceAll(cleaned, "ß", "ss")
	if opts.CollapseSpaces {
		cleaned = strings.Join(strings.Fields(cleaned), " ")
	}
	if opts.UmlautFallback {
		cleaned = umlautReplacer.Replace(cleaned)
	}
	return cleaned
}
