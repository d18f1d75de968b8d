package progress

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/abhisek/wortiz/internal/session"
	"github.com/abhisek/wortiz/internal/store"
	"github.com/abhisek/wortiz/internal/vocab"
)

type mockItems struct {
	items []store.StoredItem
	words []store.FamilyWordRecord
}

func (m *mockItems) ListByKind(_ context.Context, kind string) ([]store.StoredItem, error) {
	var out []store.StoredItem
	for _, it := range m.items {
		if it.Kind == kind {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *mockItems) ImportItems(_ context.Context, items []store.StoredItem) (int, error) {
	m.items = append(m.items, items...)
	return len(items), nil
}

func (m *mockItems) ListFamilyWords(_ context.Context, level string) ([]store.FamilyWordRecord, error) {
	var out []store.FamilyWordRecord
	for _, w := range m.words {
		if level == "" || w.Level == level {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *mockItems) ImportFamilyWords(_ context.Context, words []store.FamilyWordRecord) (int, error) {
	m.words = append(m.words, words...)
	return len(words), nil
}

type mockAttempts struct {
	records []store.AttemptRecord
	err     error
}

func (m *mockAttempts) Record(_ context.Context, at store.AttemptRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, at)
	return nil
}

type mockStats struct {
	byKind map[string]map[int64]store.StatRecord
}

func (m *mockStats) ByKind(_ context.Context, kind string) (map[int64]store.StatRecord, error) {
	out := make(map[int64]store.StatRecord)
	for id, r := range m.byKind[kind] {
		out[id] = r
	}
	return out, nil
}

func (m *mockStats) TotalsFor(_ context.Context, kind string) (store.Totals, error) {
	var t store.Totals
	for _, r := range m.byKind[kind] {
		t.Attempts += r.Attempts
		t.Correct += r.Correct
		t.Wrong += r.Wrong
		t.Reveals += r.Reveals
	}
	return t, nil
}

func (m *mockStats) Reset(_ context.Context) error {
	m.byKind = nil
	return nil
}

type mockCycles struct {
	counts map[string]int
}

func (m *mockCycles) Complete(_ context.Context, kind string) (int, error) {
	if m.counts == nil {
		m.counts = make(map[string]int)
	}
	m.counts[kind]++
	return m.counts[kind], nil
}

func (m *mockCycles) Count(_ context.Context, kind string) (int, error) {
	return m.counts[kind], nil
}

func testService(items *mockItems, stats *mockStats, cycles *mockCycles) (*Service, *mockAttempts) {
	if stats == nil {
		stats = &mockStats{}
	}
	if cycles == nil {
		cycles = &mockCycles{}
	}
	attempts := &mockAttempts{}
	s := newService(items, attempts, stats, cycles)
	s.rng = rand.New(rand.NewPCG(1, 2))
	s.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return s, attempts
}

func nounItems() *mockItems {
	return &mockItems{items: []store.StoredItem{
		{ID: 1, Kind: "noun", Translation: "pes", Labels: []string{"člen + samostalnik"}, Solution: []string{"der Hund"}},
		{ID: 2, Kind: "noun", Translation: "mačka", Labels: []string{"člen + samostalnik"}, Solution: []string{"die Katze"}},
		{ID: 3, Kind: "noun", Translation: "hiša", Labels: []string{"člen + samostalnik"}, Solution: []string{"das Haus"}},
		{ID: 4, Kind: "noun", Translation: "miza", Labels: []string{"člen + samostalnik"}, Solution: []string{"der Tisch"}},
		{ID: 5, Kind: "noun", Translation: "okno", Labels: []string{"člen + samostalnik"}, Solution: []string{"das Fenster"}},
	}}
}

func TestRecordAttemptPassesThrough(t *testing.T) {
	s, attempts := testService(nounItems(), nil, nil)

	err := s.RecordAttempt(context.Background(), session.AttemptRequest{
		ItemID:      3,
		Kind:        vocab.KindNoun,
		Answers:     []string{"das Haus"},
		Correct:     true,
		CycleNumber: 2,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	if len(attempts.records) != 1 {
		t.Fatalf("records = %d, want 1", len(attempts.records))
	}
	got := attempts.records[0]
	if got.Kind != "noun" || got.ItemID != 3 || !got.Correct || got.Revealed || got.CycleNumber != 2 {
		t.Errorf("unexpected record: %+v", got)
	}
}

func TestStatsSnapshot(t *testing.T) {
	stats := &mockStats{byKind: map[string]map[int64]store.StatRecord{
		"verb": {
			1: {Attempts: 10, Correct: 8, Wrong: 2, Reveals: 1},
			2: {Attempts: 5, Correct: 5},
		},
	}}
	cycles := &mockCycles{counts: map[string]int{"verb": 4}}
	s, _ := testService(&mockItems{}, stats, cycles)

	snap, err := s.Stats(context.Background(), vocab.KindVerb)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	want := vocab.StatsSnapshot{Attempts: 15, Correct: 13, Wrong: 2, Reveals: 1, CycleCount: 4}
	if snap != want {
		t.Errorf("snapshot = %+v, want %+v", snap, want)
	}
}

func TestCreateCycle_RandomNoun(t *testing.T) {
	cycles := &mockCycles{counts: map[string]int{"noun": 2}}
	s, _ := testService(nounItems(), nil, cycles)

	cycle, err := s.CreateCycle(context.Background(), CycleRequest{
		Kind: vocab.KindNoun,
		Mode: vocab.ModeRandom,
		Size: 3,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if cycle.Kind != vocab.KindNoun || cycle.Mode != vocab.ModeRandom {
		t.Errorf("cycle = %s/%s, want noun/random", cycle.Kind, cycle.Mode)
	}
	if cycle.Number != 3 {
		t.Errorf("number = %d, want 3 (count+1)", cycle.Number)
	}
	if len(cycle.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(cycle.Items))
	}
	seen := map[int64]bool{}
	for _, it := range cycle.Items {
		if seen[it.ID] {
			t.Errorf("duplicate item %d", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestCreateCycle_AutoModeRecommendsAdaptive(t *testing.T) {
	cycles := &mockCycles{counts: map[string]int{"noun": 6}}
	s, _ := testService(nounItems(), nil, cycles)

	cycle, err := s.CreateCycle(context.Background(), CycleRequest{Kind: vocab.KindNoun})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if cycle.Mode != vocab.ModeAdaptive {
		t.Errorf("mode = %s, want adaptive after 6 cycles", cycle.Mode)
	}
}

func TestCreateCycle_NumberComponentFilter(t *testing.T) {
	s, _ := testService(&mockItems{}, nil, nil)

	cycle, err := s.CreateCycle(context.Background(), CycleRequest{
		Kind:       vocab.KindNumber,
		Mode:       vocab.ModeRandom,
		Size:       5,
		NumberMax:  1000,
		Components: []vocab.NumberComponent{vocab.ComponentBasic},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if len(cycle.Items) != 5 {
		t.Fatalf("items = %d, want 5", len(cycle.Items))
	}
	for _, it := range cycle.Items {
		if it.ID < 1 || it.ID > 12 {
			t.Errorf("item %d outside the basic component", it.ID)
		}
		if len(it.Solution) != 1 || it.Solution[0] == "" {
			t.Errorf("item %d has no spelled solution", it.ID)
		}
	}
}

func TestCreateCycle_FamilyPhraseFilters(t *testing.T) {
	items := &mockItems{words: []store.FamilyWordRecord{
		{ID: 1, Lemma: "Mutter", Gender: "f", Plural: "Mütter", SlSingular: "mama", SlPlural: "mame", Level: "A1"},
	}}
	s, _ := testService(items, nil, nil)

	cycle, err := s.CreateCycle(context.Background(), CycleRequest{
		Kind:        vocab.KindFamily,
		Mode:        vocab.ModeRandom,
		FamilyLevel: vocab.LevelA1,
		FamilyMode:  vocab.FamilyModePhrase,
		Cases:       []vocab.GrammaticalCase{vocab.CaseNominative},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// One word, phrase mode, one case: a card per pronoun.
	if want := len(vocab.FamilyPronouns()); len(cycle.Items) != want {
		t.Fatalf("items = %d, want %d", len(cycle.Items), want)
	}
}

func TestCreateCycle_NoContent(t *testing.T) {
	s, _ := testService(&mockItems{}, nil, nil)

	_, err := s.CreateCycle(context.Background(), CycleRequest{
		Kind: vocab.KindNoun,
		Mode: vocab.ModeRandom,
	})
	if !errors.Is(err, ErrNoItems) {
		t.Errorf("err = %v, want ErrNoItems", err)
	}
}

func TestRemedialCycle(t *testing.T) {
	stats := &mockStats{byKind: map[string]map[int64]store.StatRecord{
		"noun": {
			1: {Attempts: 4, Correct: 1, Wrong: 3},
			2: {Attempts: 4, Correct: 4},
			3: {Attempts: 4, Correct: 3, Wrong: 1},
		},
	}}
	s, _ := testService(nounItems(), stats, &mockCycles{counts: map[string]int{"noun": 1}})

	cycle, err := s.RemedialCycle(context.Background(), vocab.KindNoun, 0)
	if err != nil {
		t.Fatalf("remedial: %v", err)
	}

	if cycle.Mode != vocab.ModeRemedial {
		t.Errorf("mode = %s, want remedial", cycle.Mode)
	}
	if len(cycle.Items) != 2 {
		t.Fatalf("items = %d, want the 2 missed nouns", len(cycle.Items))
	}
	if cycle.Items[0].ID != 1 {
		t.Errorf("first item = %d, want the weakest (1)", cycle.Items[0].ID)
	}
}

func TestResults_NumberReturnsAttemptedSorted(t *testing.T) {
	stats := &mockStats{byKind: map[string]map[int64]store.StatRecord{
		"number": {
			21: {Attempts: 2, Correct: 1, Wrong: 1},
			7:  {Attempts: 1, Correct: 1},
		},
	}}
	s, _ := testService(&mockItems{}, stats, nil)

	items, err := s.Results(context.Background(), vocab.KindNumber)
	if err != nil {
		t.Fatalf("results: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if items[0].ID != 7 || items[1].ID != 21 {
		t.Errorf("order = [%d %d], want [7 21]", items[0].ID, items[1].ID)
	}
	if items[1].Solution[0] != "einundzwanzig" {
		t.Errorf("solution = %q, want einundzwanzig", items[1].Solution[0])
	}
}

func TestCompleteCycleIncrements(t *testing.T) {
	cycles := &mockCycles{}
	s, _ := testService(&mockItems{}, nil, cycles)

	if err := s.CompleteCycle(context.Background(), vocab.KindFamily); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if cycles.counts["family"] != 1 {
		t.Errorf("count = %d, want 1", cycles.counts["family"])
	}
}
