package vocab

import "testing"

func TestNumberToGerman(t *testing.T) {
	cases := []struct {
		value int
		want  string
	}{
		{0, "null"},
		{1, "eins"},
		{7, "sieben"},
		{12, "zwölf"},
		{16, "sechzehn"},
		{17, "siebzehn"},
		{20, "zwanzig"},
		{21, "einundzwanzig"},
		{30, "dreißig"},
		{45, "fünfundvierzig"},
		{99, "neunundneunzig"},
		{100, "einhundert"},
		{101, "einhunderteins"},
		{121, "einhunderteinundzwanzig"},
		{345, "dreihundertfünfundvierzig"},
		{1000, "eintausend"},
		{1001, "eintausendeins"},
		{2345, "zweitausenddreihundertfünfundvierzig"},
		{21000, "einundzwanzigtausend"},
		{999999, "neunhundertneunundneunzigtausendneunhundertneunundneunzig"},
		{1_000_000, "eine Million"},
	}
	for _, tc := range cases {
		got, err := NumberToGerman(tc.value)
		if err != nil {
			t.Fatalf("NumberToGerman(%d): %v", tc.value, err)
		}
		if got != tc.want {
			t.Errorf("NumberToGerman(%d) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestNumberToGerman_OutOfRange(t *testing.T) {
	if _, err := NumberToGerman(-1); err == nil {
		t.Error("expected error for negative number")
	}
	if _, err := NumberToGerman(NumberMaxLimit + 1); err == nil {
		t.Error("expected error above max limit")
	}
}

func TestComponentOf(t *testing.T) {
	cases := []struct {
		value int
		want  NumberComponent
	}{
		{0, ComponentBasic},
		{12, ComponentBasic},
		{13, ComponentTeens},
		{19, ComponentTeens},
		{20, ComponentTens},
		{90, ComponentTens},
		{21, ComponentCompositeTens},
		{99, ComponentCompositeTens},
		{100, ComponentHundreds},
		{900, ComponentHundreds},
		{101, ComponentCompositeHundreds},
		{999, ComponentCompositeHundreds},
		{1000, ComponentThousands},
		{21000, ComponentThousands},
		{1001, ComponentCompositeThousands},
	}
	for _, tc := range cases {
		if got := ComponentOf(tc.value); got != tc.want {
			t.Errorf("ComponentOf(%d) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestNumberItem(t *testing.T) {
	item, err := NumberItem(42, ItemStats{Attempts: 3, Wrong: 1})
	if err != nil {
		t.Fatal(err)
	}
	if item.ID != 42 {
		t.Errorf("ID = %d, want 42", item.ID)
	}
	if item.Translation != "42" {
		t.Errorf("Translation = %q, want \"42\"", item.Translation)
	}
	if len(item.Solution) != 1 || item.Solution[0] != "zweiundvierzig" {
		t.Errorf("Solution = %v, want [zweiundvierzig]", item.Solution)
	}
	if item.Stats.Attempts != 3 {
		t.Errorf("Stats not carried: %+v", item.Stats)
	}
}
