package answer

import (
	"testing"

	"github.com/abhisek/wortiz/internal/vocab"
)

func TestNormalize_TrimLowerEszett(t *testing.T) {
	opts := OptionsFor(vocab.KindNoun)
	cases := []struct{ in, want string }{
		{"  Straße ", "strasse"},
		{"Der Hund", "der hund"},
		{"der  hund", "der hund"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in, opts); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalize_UmlautFallback(t *testing.T) {
	opts := OptionsFor(vocab.KindNumber)
	if got := Normalize("für", opts); got != "fuer" {
		t.Errorf("Normalize(für) = %q, want fuer", got)
	}
	if got := Normalize("fuer", opts); got != "fuer" {
		t.Errorf("Normalize(fuer) = %q, want fuer", got)
	}
	if got := Normalize("zwölf", opts); got != "zwoelf" {
		t.Errorf("Normalize(zwölf) = %q, want zwoelf", got)
	}
}

// Noun/verb modules keep exact diacritics but collapse internal spaces;
// number/family modules are the inverse.
func TestNormalize_PerModuleOptions(t *testing.T) {
	noun := OptionsFor(vocab.KindNoun)
	if Normalize("für", noun) == "fuer" {
		t.Error("noun module must not apply umlaut fallback")
	}
	if Normalize("der  Hund", noun) != "der hund" {
		t.Error("noun module must collapse internal spaces")
	}

	number := OptionsFor(vocab.KindNumber)
	if got := Normalize("drei  tausend", number); got != "drei  tausend" {
		t.Errorf("number module must not collapse internal spaces, got %q", got)
	}
	// Trimming still applies without collapsing.
	if got := Normalize("drei  ", number); got != "drei" {
		t.Errorf("Normalize(\"drei  \") = %q, want drei", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"  Straße ", "Der  Hund", "für", "zwölf  Häuser", "", "ÄÖÜ ß"}
	for _, kind := range vocab.AllKinds() {
		opts := OptionsFor(kind)
		for _, in := range inputs {
			once := Normalize(in, opts)
			twice := Normalize(once, opts)
			if once != twice {
				t.Errorf("kind %s: Normalize not idempotent for %q: %q -> %q", kind, in, once, twice)
			}
		}
	}
}

func TestMatch(t *testing.T) {
	cases := []struct {
		name     string
		answers  []string
		solution []string
		kind     vocab.Kind
		want     bool
	}{
		{"exact", []string{"der Hund"}, []string{"der Hund"}, vocab.KindNoun, true},
		{"case and spacing", []string{"DER  hund"}, []string{"der Hund"}, vocab.KindNoun, true},
		{"eszett", []string{"strasse"}, []string{"Straße"}, vocab.KindNoun, true},
		{"wrong word", []string{"die Katze"}, []string{"der Hund"}, vocab.KindNoun, false},
		{"umlaut fallback number", []string{"fuenf"}, []string{"fünf"}, vocab.KindNumber, true},
		{"no fallback for verbs", []string{"faehrt"}, []string{"fährt"}, vocab.KindVerb, false},
		{"multi-field verb", []string{"gehen", "geht", "ging", "ist gegangen"},
			[]string{"gehen", "geht", "ging", "ist gegangen"}, vocab.KindVerb, true},
		{"one field wrong", []string{"gehen", "geht", "ging", "ist gegangen"},
			[]string{"gehen", "geht", "ging", "hat gegangen"}, vocab.KindVerb, false},
		{"short answer set", []string{"gehen"},
			[]string{"gehen", "geht", "ging", "ist gegangen"}, vocab.KindVerb, false},
		{"empty answers", []string{""}, []string{"der Hund"}, vocab.KindNoun, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Match(tc.answers, tc.solution, tc.kind); got != tc.want {
				t.Errorf("Match(%v, %v, %s) = %v, want %v",
					tc.answers, tc.solution, tc.kind, got, tc.want)
			}
		})
	}
}

// Credit is never awarded without a known solution.
func TestMatch_NilSolutionFailsClosed(t *testing.T) {
	for _, kind := range vocab.AllKinds() {
		if Match([]string{""}, nil, kind) {
			t.Errorf("kind %s: Match with nil solution must be false", kind)
		}
		if Match(nil, nil, kind) {
			t.Errorf("kind %s: Match(nil, nil) must be false", kind)
		}
	}
}
