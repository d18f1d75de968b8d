package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/wortiz/internal/store"
)

type fakeItemRepo struct {
	items []store.StoredItem
	words []store.FamilyWordRecord
}

func (f *fakeItemRepo) ListByKind(_ context.Context, kind string) ([]store.StoredItem, error) {
	return nil, nil
}

func (f *fakeItemRepo) ImportItems(_ context.Context, items []store.StoredItem) (int, error) {
	inserted := 0
	for _, it := range items {
		dup := false
		for _, have := range f.items {
			if have.Kind == it.Kind && have.Translation == it.Translation {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		f.items = append(f.items, it)
		inserted++
	}
	return inserted, nil
}

func (f *fakeItemRepo) ListFamilyWords(_ context.Context, level string) ([]store.FamilyWordRecord, error) {
	return nil, nil
}

func (f *fakeItemRepo) ImportFamilyWords(_ context.Context, words []store.FamilyWordRecord) (int, error) {
	f.words = append(f.words, words...)
	return len(words), nil
}

func TestNouns(t *testing.T) {
	csv := `german,slovenian
der Hund,pes
die Katze,mačka
Hund,pes brez člena
das Haus,hiša
`
	repo := &fakeItemRepo{}
	res, err := Nouns(context.Background(), strings.NewReader(csv), repo)
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if res.Inserted != 3 {
		t.Errorf("inserted = %d, want 3", res.Inserted)
	}
	if len(res.Errors) != 1 {
		t.Fatalf("errors = %d, want 1 (missing article)", len(res.Errors))
	}
	if res.Errors[0].Line != 4 {
		t.Errorf("error line = %d, want 4", res.Errors[0].Line)
	}
	if got := repo.items[0]; got.Translation != "pes" || got.Solution[0] != "der Hund" {
		t.Errorf("unexpected first item: %+v", got)
	}
}

func TestNounsSkipsDuplicates(t *testing.T) {
	repo := &fakeItemRepo{}
	csv := "der Hund,pes\n"

	if _, err := Nouns(context.Background(), strings.NewReader(csv), repo); err != nil {
		t.Fatal(err)
	}
	res, err := Nouns(context.Background(), strings.NewReader(csv), repo)
	if err != nil {
		t.Fatal(err)
	}
	if res.Inserted != 0 || res.Skipped != 1 {
		t.Errorf("inserted/skipped = %d/%d, want 0/1", res.Inserted, res.Skipped)
	}
}

func TestVerbs(t *testing.T) {
	csv := `gehen,geht,ging,ist gegangen,iti
sein,ist,war,ist gewesen
`
	repo := &fakeItemRepo{}
	res, err := Verbs(context.Background(), strings.NewReader(csv), repo)
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if res.Inserted != 1 {
		t.Errorf("inserted = %d, want 1", res.Inserted)
	}
	if len(res.Errors) != 1 {
		t.Fatalf("errors = %d, want 1 (short row)", len(res.Errors))
	}
	got := repo.items[0]
	if got.Translation != "iti" {
		t.Errorf("translation = %q, want iti", got.Translation)
	}
	want := []string{"gehen", "geht", "ging", "ist gegangen"}
	if len(got.Solution) != 4 {
		t.Fatalf("solution = %v, want 4 forms", got.Solution)
	}
	for i, form := range want {
		if got.Solution[i] != form {
			t.Errorf("solution[%d] = %q, want %q", i, got.Solution[i], form)
		}
	}
}

func TestFamilyWords(t *testing.T) {
	csv := `lemma,gender,plural,sl_singular,sl_plural,level
Mutter,f,Mütter,mama,mame,A1
Bruder,x,Brüder,brat,brata,A1
Onkel,m,Onkel,stric,strici,B2
Eltern,pl,Eltern,starši,starši,A1
`
	repo := &fakeItemRepo{}
	res, err := FamilyWords(context.Background(), strings.NewReader(csv), repo)
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if res.Inserted != 2 {
		t.Errorf("inserted = %d, want 2 (Mutter, Eltern)", res.Inserted)
	}
	if len(res.Errors) != 2 {
		t.Fatalf("errors = %d, want 2 (bad gender, bad level)", len(res.Errors))
	}
	if res.Errors[0].Line != 3 || res.Errors[1].Line != 4 {
		t.Errorf("error lines = %d,%d, want 3,4", res.Errors[0].Line, res.Errors[1].Line)
	}
}

func TestBlankLinesIgnored(t *testing.T) {
	csv := "der Hund,pes\n\ndie Katze,mačka\n"
	repo := &fakeItemRepo{}
	res, err := Nouns(context.Background(), strings.NewReader(csv), repo)
	if err != nil {
		t.Fatal(err)
	}
	if res.Inserted != 2 || len(res.Errors) != 0 {
		t.Errorf("inserted = %d errors = %d, want 2/0", res.Inserted, len(res.Errors))
	}
}
