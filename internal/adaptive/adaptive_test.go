package adaptive

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/abhisek/wortiz/internal/vocab"
)

func TestRecommendNextMode(t *testing.T) {
	cases := []struct {
		name  string
		stats vocab.StatsSnapshot
		want  string
	}{
		{"sixth cycle boundary", vocab.StatsSnapshot{CycleCount: 5}, vocab.ModeAdaptive},
		{"fifth cycle stays random", vocab.StatsSnapshot{CycleCount: 4}, vocab.ModeRandom},
		{"high accuracy early switch", vocab.StatsSnapshot{Attempts: 30, Correct: 27}, vocab.ModeAdaptive},
		{"accuracy below bar", vocab.StatsSnapshot{Attempts: 30, Correct: 26}, vocab.ModeRandom},
		{"attempts below floor", vocab.StatsSnapshot{Attempts: 10, Correct: 10}, vocab.ModeRandom},
		{"exactly at both thresholds", vocab.StatsSnapshot{Attempts: 25, Correct: 22}, vocab.ModeAdaptive},
		{"no history", vocab.StatsSnapshot{}, vocab.ModeRandom},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RecommendNextMode(tc.stats); got != tc.want {
				t.Errorf("RecommendNextMode(%+v) = %q, want %q", tc.stats, got, tc.want)
			}
		})
	}
}

func statsItem(id int64, attempts, correct int) vocab.Item {
	return vocab.Item{
		ID: id,
		Stats: vocab.ItemStats{
			Attempts: attempts,
			Correct:  correct,
			Wrong:    attempts - correct,
		},
	}
}

func collect(items []vocab.Item) []int64 {
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func TestWeakest_Ordering(t *testing.T) {
	items := []vocab.Item{
		statsItem(1, 0, 0),  // unseen: accuracy 1.0, sorts last
		statsItem(2, 10, 2), // accuracy 0.2
		statsItem(3, 5, 1),  // accuracy 0.2, fewer attempts
		statsItem(4, 4, 4),  // accuracy 1.0, more attempts than unseen
	}

	var got []int64
	for item := range Weakest(items) {
		got = append(got, item.ID)
	}

	want := []int64{2, 3, 4, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestWeakest_StableAndRestartable(t *testing.T) {
	items := []vocab.Item{
		statsItem(1, 10, 5),
		statsItem(2, 10, 5), // exact tie with item 1: original order kept
		statsItem(3, 2, 0),
	}
	seq := Weakest(items)

	var first, second []int64
	for item := range seq {
		first = append(first, item.ID)
	}
	for item := range seq {
		second = append(second, item.ID)
	}

	want := []int64{3, 1, 2}
	for i := range want {
		if first[i] != want[i] {
			t.Fatalf("first pass = %v, want %v", first, want)
		}
		if second[i] != first[i] {
			t.Fatalf("second pass = %v, differs from first %v", second, first)
		}
	}

	// Input order is untouched.
	if items[0].ID != 1 || items[2].ID != 3 {
		t.Error("Weakest must not mutate its input")
	}
}

func TestWeakest_EarlyBreak(t *testing.T) {
	items := []vocab.Item{statsItem(1, 2, 0), statsItem(2, 2, 0), statsItem(3, 2, 0)}
	count := 0
	for range Weakest(items) {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("yielded %d items after break, want 2", count)
	}
}

func TestBuildRemedial(t *testing.T) {
	items := []vocab.Item{
		statsItem(1, 10, 9), // wrong 1, accuracy 0.9
		statsItem(2, 10, 2), // wrong 8, accuracy 0.2
		statsItem(3, 10, 5), // wrong 5, accuracy 0.5
		statsItem(4, 10, 7), // wrong 3, accuracy 0.7
		statsItem(5, 10, 4), // wrong 6, accuracy 0.4
	}

	cycle, err := BuildRemedial(vocab.KindNoun, items, 7, 2)
	if err != nil {
		t.Fatal(err)
	}
	if cycle.Mode != vocab.ModeRemedial {
		t.Errorf("Mode = %q, want remedial", cycle.Mode)
	}
	if cycle.Number != 7 {
		t.Errorf("Number = %d, want 7", cycle.Number)
	}
	got := collect(cycle.Items)
	if len(got) != 2 || got[0] != 2 || got[1] != 5 {
		t.Errorf("items = %v, want [2 5] (two lowest accuracies)", got)
	}
}

func TestBuildRemedial_FiltersUnmissed(t *testing.T) {
	items := []vocab.Item{
		statsItem(1, 10, 10), // never wrong
		statsItem(2, 10, 4),
	}
	cycle, err := BuildRemedial(vocab.KindVerb, items, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := collect(cycle.Items); len(got) != 1 || got[0] != 2 {
		t.Errorf("items = %v, want [2]", got)
	}
}

func TestBuildRemedial_Empty(t *testing.T) {
	_, err := BuildRemedial(vocab.KindNoun, []vocab.Item{statsItem(1, 5, 5)}, 1, 0)
	if err != ErrEmptyRemediation {
		t.Errorf("err = %v, want ErrEmptyRemediation", err)
	}
	if _, err := BuildRemedial(vocab.KindNoun, nil, 1, 0); err != ErrEmptyRemediation {
		t.Errorf("err = %v, want ErrEmptyRemediation for nil input", err)
	}
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestChooseCycleItems_RandomCapsSize(t *testing.T) {
	var items []vocab.Item
	for i := range 50 {
		items = append(items, statsItem(int64(i+1), 0, 0))
	}

	got := ChooseCycleItems(items, false, 20, testRNG(), time.Now())
	if len(got) != 20 {
		t.Fatalf("len = %d, want 20", len(got))
	}
	seen := map[int64]bool{}
	for _, it := range got {
		if seen[it.ID] {
			t.Errorf("duplicate item %d in random selection", it.ID)
		}
		seen[it.ID] = true
	}
	if len(items) != 50 {
		t.Error("input must not be mutated")
	}
}

func TestChooseCycleItems_RandomUsesAllWithoutSize(t *testing.T) {
	items := []vocab.Item{statsItem(1, 0, 0), statsItem(2, 0, 0), statsItem(3, 0, 0)}
	got := ChooseCycleItems(items, false, 0, testRNG(), time.Now())
	if len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
}

func TestChooseCycleItems_AdaptiveKeepsEasyReview(t *testing.T) {
	now := time.Now()
	var items []vocab.Item
	// 12 hard items (low accuracy) and 8 easy ones (high accuracy, streak).
	for i := range 12 {
		it := statsItem(int64(i+1), 10, 2)
		it.Stats.LastSeen = now
		items = append(items, it)
	}
	for i := range 8 {
		it := statsItem(int64(100+i), 20, 20)
		it.Stats.Streak = 5
		it.Stats.LastSeen = now
		items = append(items, it)
	}

	got := ChooseCycleItems(items, true, 12, testRNG(), now)
	if len(got) != 12 {
		t.Fatalf("len = %d, want 12", len(got))
	}

	easy := 0
	for _, it := range got {
		if it.ID >= 100 {
			easy++
		}
	}
	// 25% of 12 = 3 easy-review slots.
	if easy != 3 {
		t.Errorf("easy review items = %d, want 3", easy)
	}

	// Hardest-first ordering: no item may be harder than its predecessor.
	for i := 1; i < len(got); i++ {
		if vocab.Difficulty(got[i].Stats, now) > vocab.Difficulty(got[i-1].Stats, now) {
			t.Fatalf("selection not ordered hardest-first at index %d", i)
		}
	}
}

func TestChooseCycleItems_AdaptiveFillsWhenFewHard(t *testing.T) {
	now := time.Now()
	var items []vocab.Item
	for i := range 10 {
		it := statsItem(int64(i+1), 20, 20)
		it.Stats.Streak = 5
		it.Stats.LastSeen = now
		items = append(items, it)
	}
	items = append(items, statsItem(99, 10, 1))

	got := ChooseCycleItems(items, true, 6, testRNG(), now)
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6 (filled from easy pool)", len(got))
	}
	if got[0].ID != 99 {
		t.Errorf("hardest item must come first, got %d", got[0].ID)
	}
}

func TestChooseCycleItems_Empty(t *testing.T) {
	if got := ChooseCycleItems(nil, true, 10, testRNG(), time.Now()); got != nil {
		t.Errorf("ChooseCycleItems(nil) = %v, want nil", got)
	}
}
