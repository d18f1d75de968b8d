package vocab

import (
	"fmt"
	"strings"
)

// Family module parameters.
const FamilyCycleSize = 20

// FamilyLevel is the CEFR level of a family word.
type FamilyLevel string

const (
	LevelA1 FamilyLevel = "A1"
	LevelA2 FamilyLevel = "A2"
)

// FamilyMode selects what a family card asks for.
type FamilyMode string

const (
	FamilyModeNoun   FamilyMode = "noun"   // article + noun (and/or plural)
	FamilyModePhrase FamilyMode = "phrase" // possessive phrase in a case
)

// GrammaticalCase is a German case exercised by phrase cards.
type GrammaticalCase string

const (
	CaseNominative GrammaticalCase = "nominative"
	CaseAccusative GrammaticalCase = "accusative"
	CaseDative     GrammaticalCase = "dative"
)

// FamilyCases lists the cases in teaching order.
func FamilyCases() []GrammaticalCase {
	return []GrammaticalCase{CaseNominative, CaseAccusative, CaseDative}
}

var caseLabels = map[GrammaticalCase]string{
	CaseNominative: "Nominativ",
	CaseAccusative: "Akuzativ",
	CaseDative:     "Dativ",
}

// Pronoun is a possessive pronoun key.
type Pronoun string

const (
	PronounMy         Pronoun = "my"
	PronounYour       Pronoun = "your"
	PronounHis        Pronoun = "his"
	PronounHer        Pronoun = "her"
	PronounOur        Pronoun = "our"
	PronounYourPl     Pronoun = "your_pl"
	PronounTheir      Pronoun = "their"
	PronounYourFormal Pronoun = "your_formal"
)

// FamilyPronouns lists the possessive pronouns in teaching order.
func FamilyPronouns() []Pronoun {
	return []Pronoun{
		PronounMy, PronounYour, PronounHis, PronounHer,
		PronounOur, PronounYourPl, PronounTheir, PronounYourFormal,
	}
}

var germanPossessiveStems = map[Pronoun]string{
	PronounMy:         "mein",
	PronounYour:       "dein",
	PronounHis:        "sein",
	PronounHer:        "ihr",
	PronounOur:        "unser",
	PronounYourPl:     "euer",
	PronounTheir:      "ihr",
	PronounYourFormal: "Ihr",
}

// Possessive endings by case and gender.
var germanEndings = map[GrammaticalCase]map[string]string{
	CaseNominative: {"m": "", "f": "e", "n": "", "pl": "e"},
	CaseAccusative: {"m": "en", "f": "e", "n": "", "pl": "e"},
	CaseDative:     {"m": "em", "f": "er", "n": "em", "pl": "en"},
}

var germanArticles = map[string]string{
	"m": "der", "f": "die", "n": "das", "pl": "die",
}

var slovenianPossessives = map[Pronoun]map[string]string{
	PronounMy:         {"m": "moj", "f": "moja", "n": "moje", "pl": "moji"},
	PronounYour:       {"m": "tvoj", "f": "tvoja", "n": "tvoje", "pl": "tvoji"},
	PronounHis:        {"m": "njegov", "f": "njegova", "n": "njegovo", "pl": "njegovi"},
	PronounHer:        {"m": "njen", "f": "njena", "n": "njeno", "pl": "njeni"},
	PronounOur:        {"m": "naš", "f": "naša", "n": "naše", "pl": "naši"},
	PronounYourPl:     {"m": "vaš", "f": "vaša", "n": "vaše", "pl": "vaši"},
	PronounTheir:      {"m": "njihov", "f": "njihova", "n": "njihovo", "pl": "njihovi"},
	PronounYourFormal: {"m": "Vaš", "f": "Vaša", "n": "Vaše", "pl": "Vaši"},
}

// GermanPossessive declines a possessive pronoun for a case and gender.
// The euer stem drops the inner e before vowel endings (euer+e → eure).
func GermanPossessive(p Pronoun, c GrammaticalCase, gender string) string {
	stem := germanPossessiveStems[p]
	ending := germanEndings[c][gender]
	if stem == "euer" && strings.HasPrefix(ending, "e") {
		return "eur" + ending
	}
	return stem + ending
}

// SlovenianPossessive returns the Slovenian display form of a possessive
// pronoun agreeing with the noun's gender.
func SlovenianPossessive(p Pronoun, gender string) string {
	forms := slovenianPossessives[p]
	if form, ok := forms[gender]; ok {
		return form
	}
	return forms["m"]
}

// DativePlural applies the German dative-plural -n rule.
func DativePlural(plural string) string {
	if strings.HasSuffix(plural, "n") || strings.HasSuffix(plural, "s") {
		return plural
	}
	return plural + "n"
}

// FamilyWord is one imported family-vocabulary entry.
type FamilyWord struct {
	ID         int64
	Lemma      string
	Gender     string // m, f, n, or pl (plurale tantum)
	Plural     string
	SlSingular string
	SlPlural   string
	Level      FamilyLevel
}

// NounForm selects which forms a noun-mode card asks for.
type NounForm string

const (
	FormSingular NounForm = "singular"
	FormPlural   NounForm = "plural"
	FormPair     NounForm = "pair" // singular and plural together
)

// FamilyCard is one concrete question derived from a FamilyWord.
type FamilyCard struct {
	Word    FamilyWord
	Mode    FamilyMode
	Case    GrammaticalCase // phrase mode only
	Pronoun Pronoun         // phrase mode only
	Form    NounForm
}

// CardID derives a stable identifier for the card so per-card stats survive
// regeneration. The low byte encodes the variant, the rest the word id.
func (c FamilyCard) CardID() int64 {
	return c.Word.ID<<8 | int64(c.variant())
}

func (c FamilyCard) variant() int {
	if c.Mode == FamilyModeNoun {
		switch c.Form {
		case FormSingular:
			return 0
		case FormPlural:
			return 1
		default:
			return 2
		}
	}
	caseIdx := 0
	for i, gc := range FamilyCases() {
		if gc == c.Case {
			caseIdx = i
			break
		}
	}
	pronounIdx := 0
	for i, p := range FamilyPronouns() {
		if p == c.Pronoun {
			pronounIdx = i
			break
		}
	}
	return 3 + caseIdx*len(FamilyPronouns()) + pronounIdx
}

// CardsForWord expands a family word into its question cards. Plurale
// tantum words get a single plural noun card; other words get a pair card
// and a singular card. Phrase cards cover every case × pronoun.
func CardsForWord(w FamilyWord) []FamilyCard {
	var cards []FamilyCard
	if w.Gender == "pl" {
		cards = append(cards, FamilyCard{Word: w, Mode: FamilyModeNoun, Form: FormPlural})
	} else {
		cards = append(cards,
			FamilyCard{Word: w, Mode: FamilyModeNoun, Form: FormPair},
			FamilyCard{Word: w, Mode: FamilyModeNoun, Form: FormSingular},
		)
	}
	phraseForm := FormSingular
	if w.Gender == "pl" {
		phraseForm = FormPlural
	}
	for _, gc := range FamilyCases() {
		for _, p := range FamilyPronouns() {
			cards = append(cards, FamilyCard{
				Word: w, Mode: FamilyModePhrase, Case: gc, Pronoun: p, Form: phraseForm,
			})
		}
	}
	return cards
}

// Item builds the flashcard payload for a family card: the Slovenian prompt,
// the answer labels, and the German solution.
func (c FamilyCard) Item(stats ItemStats) Item {
	translation, labels, solution := c.payload()
	return Item{
		ID:          c.CardID(),
		Translation: translation,
		Labels:      labels,
		Solution:    solution,
		Stats:       stats,
	}
}

func (c FamilyCard) payload() (string, []string, []string) {
	w := c.Word
	if c.Mode == FamilyModeNoun {
		switch c.Form {
		case FormPlural:
			return w.SlPlural,
				[]string{"plural (z die)"},
				[]string{"die " + w.Plural}
		case FormSingular:
			return w.SlSingular,
				[]string{"člen + samostalnik"},
				[]string{germanArticles[w.Gender] + " " + w.Lemma}
		default:
			return w.SlSingular + " / " + w.SlPlural,
				[]string{"člen + samostalnik", "plural (z die)"},
				[]string{
					germanArticles[w.Gender] + " " + w.Lemma,
					"die " + w.Plural,
				}
		}
	}

	gender := w.Gender
	slNoun := w.SlSingular
	nounForm := w.Lemma
	if w.Gender == "pl" {
		slNoun = w.SlPlural
		nounForm = w.Plural
	}
	if c.Case == CaseDative && w.Gender == "pl" {
		nounForm = DativePlural(nounForm)
	}
	prompt := fmt.Sprintf("%s: %s %s",
		caseLabels[c.Case], SlovenianPossessive(c.Pronoun, gender), slNoun)
	determiner := GermanPossessive(c.Pronoun, c.Case, gender)
	return prompt, PhraseLabels, []string{determiner + " " + nounForm}
}
