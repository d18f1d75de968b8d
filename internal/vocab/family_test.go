package vocab

import "testing"

func TestGermanPossessive(t *testing.T) {
	cases := []struct {
		pronoun Pronoun
		gcase   GrammaticalCase
		gender  string
		want    string
	}{
		{PronounMy, CaseNominative, "m", "mein"},
		{PronounMy, CaseNominative, "f", "meine"},
		{PronounMy, CaseAccusative, "m", "meinen"},
		{PronounMy, CaseDative, "n", "meinem"},
		{PronounHer, CaseDative, "f", "ihrer"},
		{PronounYourFormal, CaseNominative, "f", "Ihre"},
		// euer elides the inner e before vowel endings.
		{PronounYourPl, CaseNominative, "f", "eure"},
		{PronounYourPl, CaseAccusative, "m", "euren"},
		{PronounYourPl, CaseNominative, "m", "euer"},
		{PronounYourPl, CaseDative, "m", "eurem"},
		{PronounTheir, CaseDative, "pl", "ihren"},
	}
	for _, tc := range cases {
		got := GermanPossessive(tc.pronoun, tc.gcase, tc.gender)
		if got != tc.want {
			t.Errorf("GermanPossessive(%s, %s, %s) = %q, want %q",
				tc.pronoun, tc.gcase, tc.gender, got, tc.want)
		}
	}
}

func TestDativePlural(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Kinder", "Kindern"},
		{"Eltern", "Eltern"},
		{"Omas", "Omas"},
		{"Brüder", "Brüdern"},
	}
	for _, tc := range cases {
		if got := DativePlural(tc.in); got != tc.want {
			t.Errorf("DativePlural(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func testWord() FamilyWord {
	return FamilyWord{
		ID: 7, Lemma: "Bruder", Gender: "m", Plural: "Brüder",
		SlSingular: "brat", SlPlural: "bratje", Level: LevelA1,
	}
}

func TestCardsForWord(t *testing.T) {
	cards := CardsForWord(testWord())
	// pair + singular noun cards, plus 3 cases × 8 pronouns phrase cards.
	want := 2 + 3*8
	if len(cards) != want {
		t.Fatalf("len(cards) = %d, want %d", len(cards), want)
	}

	seen := map[int64]bool{}
	for _, c := range cards {
		id := c.CardID()
		if seen[id] {
			t.Errorf("duplicate card id %d", id)
		}
		seen[id] = true
	}
}

func TestCardsForWord_PluraleTantum(t *testing.T) {
	w := FamilyWord{
		ID: 3, Lemma: "Eltern", Gender: "pl", Plural: "Eltern",
		SlSingular: "starši", SlPlural: "starši", Level: LevelA1,
	}
	cards := CardsForWord(w)
	want := 1 + 3*8
	if len(cards) != want {
		t.Fatalf("len(cards) = %d, want %d", len(cards), want)
	}
	if cards[0].Form != FormPlural {
		t.Errorf("first card form = %s, want plural", cards[0].Form)
	}
}

func TestFamilyCard_Item_NounPair(t *testing.T) {
	card := FamilyCard{Word: testWord(), Mode: FamilyModeNoun, Form: FormPair}
	item := card.Item(ItemStats{})

	if item.Translation != "brat / bratje" {
		t.Errorf("Translation = %q", item.Translation)
	}
	if len(item.Solution) != 2 {
		t.Fatalf("Solution = %v, want two entries", item.Solution)
	}
	if item.Solution[0] != "der Bruder" || item.Solution[1] != "die Brüder" {
		t.Errorf("Solution = %v", item.Solution)
	}
	if len(item.Labels) != len(item.Solution) {
		t.Errorf("labels (%d) not aligned with solution (%d)", len(item.Labels), len(item.Solution))
	}
}

func TestFamilyCard_Item_Phrase(t *testing.T) {
	card := FamilyCard{
		Word: testWord(), Mode: FamilyModePhrase,
		Case: CaseAccusative, Pronoun: PronounMy, Form: FormSingular,
	}
	item := card.Item(ItemStats{})

	if item.Translation != "Akuzativ: moj brat" {
		t.Errorf("Translation = %q", item.Translation)
	}
	if len(item.Solution) != 1 || item.Solution[0] != "meinen Bruder" {
		t.Errorf("Solution = %v, want [meinen Bruder]", item.Solution)
	}
}

func TestFamilyCard_Item_DativePluralPhrase(t *testing.T) {
	w := FamilyWord{
		ID: 9, Lemma: "Kind", Gender: "pl", Plural: "Kinder",
		SlSingular: "otrok", SlPlural: "otroci", Level: LevelA1,
	}
	card := FamilyCard{
		Word: w, Mode: FamilyModePhrase,
		Case: CaseDative, Pronoun: PronounTheir, Form: FormPlural,
	}
	item := card.Item(ItemStats{})
	if len(item.Solution) != 1 || item.Solution[0] != "ihren Kindern" {
		t.Errorf("Solution = %v, want [ihren Kindern]", item.Solution)
	}
}
