package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestImportItemsSkipsDuplicates(t *testing.T) {
	s := openTestStore(t)
	repo := s.ItemRepo()
	ctx := context.Background()

	items := []StoredItem{
		{Kind: "noun", Translation: "pes", Labels: []string{"člen + samostalnik"}, Solution: []string{"der Hund"}},
		{Kind: "noun", Translation: "mačka", Labels: []string{"člen + samostalnik"}, Solution: []string{"die Katze"}},
	}

	n, err := repo.ImportItems(ctx, items)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 2 {
		t.Fatalf("inserted = %d, want 2", n)
	}

	// Second import of the same rows inserts nothing.
	n, err = repo.ImportItems(ctx, items)
	if err != nil {
		t.Fatalf("re-import: %v", err)
	}
	if n != 0 {
		t.Errorf("re-import inserted = %d, want 0", n)
	}

	got, err := repo.ListByKind(ctx, "noun")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Translation != "pes" || got[0].Solution[0] != "der Hund" {
		t.Errorf("unexpected first item: %+v", got[0])
	}
}

func TestFamilyWordsFilterByLevel(t *testing.T) {
	s := openTestStore(t)
	repo := s.ItemRepo()
	ctx := context.Background()

	words := []FamilyWordRecord{
		{Lemma: "Mutter", Gender: "f", Plural: "Mütter", SlSingular: "mama", SlPlural: "mame", Level: "A1"},
		{Lemma: "Schwiegervater", Gender: "m", Plural: "Schwiegerväter", SlSingular: "tast", SlPlural: "tasti", Level: "A2"},
	}
	if _, err := repo.ImportFamilyWords(ctx, words); err != nil {
		t.Fatalf("import: %v", err)
	}

	a1, err := repo.ListFamilyWords(ctx, "A1")
	if err != nil {
		t.Fatalf("list A1: %v", err)
	}
	if len(a1) != 1 || a1[0].Lemma != "Mutter" {
		t.Errorf("A1 = %+v, want only Mutter", a1)
	}

	all, err := repo.ListFamilyWords(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("all = %d words, want 2", len(all))
	}
}

func TestRecordAttemptUpdatesAggregates(t *testing.T) {
	s := openTestStore(t)
	attempts := s.AttemptRepo()
	stats := s.StatsRepo()
	ctx := context.Background()

	// Two correct, then one miss with reveal.
	for i := 0; i < 2; i++ {
		err := attempts.Record(ctx, AttemptRecord{
			Kind:        "number",
			ItemID:      42,
			Answers:     []string{"zweiundvierzig"},
			Correct:     true,
			CycleNumber: 1,
		})
		if err != nil {
			t.Fatalf("record correct %d: %v", i, err)
		}
	}
	err := attempts.Record(ctx, AttemptRecord{
		Kind:        "number",
		ItemID:      42,
		Answers:     []string{"zwei und vierzig"},
		Correct:     false,
		Revealed:    true,
		CycleNumber: 1,
	})
	if err != nil {
		t.Fatalf("record wrong: %v", err)
	}

	byKind, err := stats.ByKind(ctx, "number")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	st, ok := byKind[42]
	if !ok {
		t.Fatal("expected stat row for item 42")
	}
	if st.Attempts != 3 || st.Correct != 2 || st.Wrong != 1 || st.Reveals != 1 {
		t.Errorf("aggregates = %+v, want attempts 3 correct 2 wrong 1 reveals 1", st)
	}
	if st.Streak != 0 {
		t.Errorf("streak = %d, want 0 after a miss", st.Streak)
	}
	if st.LastSeen == nil {
		t.Error("expected last_seen to be set")
	}
}

func TestStreakGrowsOnConsecutiveCorrect(t *testing.T) {
	s := openTestStore(t)
	attempts := s.AttemptRepo()
	stats := s.StatsRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := attempts.Record(ctx, AttemptRecord{
			Kind:    "noun",
			ItemID:  7,
			Answers: []string{"die Katze"},
			Correct: true,
		})
		if err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	byKind, err := stats.ByKind(ctx, "noun")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if got := byKind[7].Streak; got != 3 {
		t.Errorf("streak = %d, want 3", got)
	}
}

func TestCycleCounter(t *testing.T) {
	s := openTestStore(t)
	repo := s.CycleRepo()
	ctx := context.Background()

	n, err := repo.Count(ctx, "family")
	if err != nil {
		t.Fatalf("count (empty): %v", err)
	}
	if n != 0 {
		t.Fatalf("count = %d, want 0 before any cycle", n)
	}

	for want := 1; want <= 3; want++ {
		got, err := repo.Complete(ctx, "family")
		if err != nil {
			t.Fatalf("complete %d: %v", want, err)
		}
		if got != want {
			t.Errorf("complete returned %d, want %d", got, want)
		}
	}

	// Counters are independent per kind.
	n, err = repo.Count(ctx, "number")
	if err != nil {
		t.Fatalf("count number: %v", err)
	}
	if n != 0 {
		t.Errorf("number count = %d, want 0", n)
	}
}

func TestResetKeepsVocabulary(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.ItemRepo().ImportItems(ctx, []StoredItem{
		{Kind: "verb", Translation: "iti", Labels: []string{"nedoločnik"}, Solution: []string{"gehen"}},
	})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	err = s.AttemptRepo().Record(ctx, AttemptRecord{
		Kind: "verb", ItemID: 1, Answers: []string{"gehen"}, Correct: true,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := s.CycleRepo().Complete(ctx, "verb"); err != nil {
		t.Fatalf("complete: %v", err)
	}

	if err := s.StatsRepo().Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	byKind, err := s.StatsRepo().ByKind(ctx, "verb")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(byKind) != 0 {
		t.Errorf("expected no stats after reset, got %d", len(byKind))
	}
	n, err := s.CycleRepo().Count(ctx, "verb")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("cycle count = %d, want 0 after reset", n)
	}
	items, err := s.ItemRepo().ListByKind(ctx, "verb")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("expected vocabulary to survive reset, got %d items", len(items))
	}
}

func TestAppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "coach-tip",
		InputTokens:  120,
		OutputTokens: 60,
		LatencyMs:    900,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	n, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("event count = %d, want 1", n)
	}
}

func TestLLMRequestQueries(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i, model := range []string{"gpt-4o-mini", "gpt-4o-mini", "gemini-2.0-flash"} {
		err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "test",
			Model:        model,
			Purpose:      "coach-tip",
			InputTokens:  100 + i,
			OutputTokens: 50,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := s.EventRepo().ListLLMRequests(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("listed %d events, want 2", len(events))
	}

	usage, err := s.EventRepo().LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("usage rows = %d, want 2", len(usage))
	}
	for _, u := range usage {
		if u.Model == "gpt-4o-mini" {
			if u.Calls != 2 || u.InputTokens != 201 {
				t.Errorf("gpt-4o-mini usage = %+v, want 2 calls / 201 input tokens", u)
			}
		}
	}
}
