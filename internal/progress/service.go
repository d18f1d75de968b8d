// Package progress is the engine's local collaborator: it builds practice
// cycles from the store, records attempts, and serves aggregate stats.
package progress

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/wortiz/internal/adaptive"
	"github.com/abhisek/wortiz/internal/session"
	"github.com/abhisek/wortiz/internal/store"
	"github.com/abhisek/wortiz/internal/vocab"
)

// defaultCycleSize caps noun and verb cycles; numbers and family carry
// their own constants.
const defaultCycleSize = 20

// ErrNoItems is returned when no content is available for the requested
// kind and filters.
var ErrNoItems = errors.New("no items available for cycle")

// CycleRequest selects and filters the content of a new cycle.
// Zero values mean defaults: automatic mode, kind-specific size.
type CycleRequest struct {
	Kind vocab.Kind
	Mode string // vocab.ModeRandom or vocab.ModeAdaptive; empty = recommended
	Size int

	// Number filters.
	NumberMax  int
	Components []vocab.NumberComponent

	// Family filters.
	FamilyLevel vocab.FamilyLevel
	FamilyMode  vocab.FamilyMode // empty = both noun and phrase cards
	Cases       []vocab.GrammaticalCase
}

var _ session.Backend = (*Service)(nil)

// Service implements the session backend against the local store.
type Service struct {
	items    store.ItemRepo
	attempts store.AttemptRepo
	stats    store.StatsRepo
	cycles   store.CycleRepo

	rng *rand.Rand
	now func() time.Time
}

// NewService wires a Service to the given store.
func NewService(s *store.Store) *Service {
	return newService(s.ItemRepo(), s.AttemptRepo(), s.StatsRepo(), s.CycleRepo())
}

func newService(items store.ItemRepo, attempts store.AttemptRepo, stats store.StatsRepo, cycles store.CycleRepo) *Service {
	return &Service{
		items:    items,
		attempts: attempts,
		stats:    stats,
		cycles:   cycles,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:      time.Now,
	}
}

// RecordAttempt persists one graded answer.
func (s *Service) RecordAttempt(ctx context.Context, req session.AttemptRequest) error {
	err := s.attempts.Record(ctx, store.AttemptRecord{
		Kind:        string(req.Kind),
		ItemID:      req.ItemID,
		Answers:     req.Answers,
		Correct:     req.Correct,
		Revealed:    req.Revealed,
		CycleNumber: req.CycleNumber,
	})
	if err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

// CompleteCycle increments the per-kind cycle counter.
func (s *Service) CompleteCycle(ctx context.Context, kind vocab.Kind) error {
	if _, err := s.cycles.Complete(ctx, string(kind)); err != nil {
		return fmt.Errorf("complete cycle: %w", err)
	}
	return nil
}

// Stats returns the aggregate snapshot driving the mode recommendation.
func (s *Service) Stats(ctx context.Context, kind vocab.Kind) (vocab.StatsSnapshot, error) {
	totals, err := s.stats.TotalsFor(ctx, string(kind))
	if err != nil {
		return vocab.StatsSnapshot{}, fmt.Errorf("totals: %w", err)
	}
	count, err := s.cycles.Count(ctx, string(kind))
	if err != nil {
		return vocab.StatsSnapshot{}, fmt.Errorf("cycle count: %w", err)
	}
	return vocab.StatsSnapshot{
		Attempts:   totals.Attempts,
		Correct:    totals.Correct,
		Wrong:      totals.Wrong,
		Reveals:    totals.Reveals,
		CycleCount: count,
	}, nil
}

// CreateCycle builds a new cycle for the requested kind. Random mode
// shuffles the candidate pool; adaptive mode favors weak items while
// keeping a slice of easy review.
func (s *Service) CreateCycle(ctx context.Context, req CycleRequest) (*vocab.Cycle, error) {
	if !req.Kind.Valid() {
		return nil, fmt.Errorf("create cycle: unknown kind %q", req.Kind)
	}

	pool, err := s.candidatePool(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("create cycle for %s: %w", req.Kind, ErrNoItems)
	}

	mode := req.Mode
	if mode == "" {
		snap, err := s.Stats(ctx, req.Kind)
		if err != nil {
			return nil, err
		}
		mode = adaptive.RecommendNextMode(snap)
	}

	size := req.Size
	if size <= 0 {
		size = cycleSizeFor(req.Kind)
	}

	items := adaptive.ChooseCycleItems(pool, mode == vocab.ModeAdaptive, size, s.rng, s.now())

	count, err := s.cycles.Count(ctx, string(req.Kind))
	if err != nil {
		return nil, fmt.Errorf("cycle count: %w", err)
	}

	return &vocab.Cycle{
		ID:     uuid.New(),
		Number: count + 1,
		Mode:   mode,
		Kind:   req.Kind,
		Items:  items,
	}, nil
}

// RemedialCycle builds a short cycle from the items the learner has
// missed, weakest first.
func (s *Service) RemedialCycle(ctx context.Context, kind vocab.Kind, limit int) (*vocab.Cycle, error) {
	items, err := s.Results(ctx, kind)
	if err != nil {
		return nil, err
	}
	count, err := s.cycles.Count(ctx, string(kind))
	if err != nil {
		return nil, fmt.Errorf("cycle count: %w", err)
	}
	cycle, err := adaptive.BuildRemedial(kind, items, count+1, limit)
	if err != nil {
		return nil, fmt.Errorf("build remedial for %s: %w", kind, err)
	}
	cycle.ID = uuid.New()
	return cycle, nil
}

// Results returns the attempted items of a kind with their historical
// counters, for the results view and remedial building. Stored kinds
// include never-attempted items as well.
func (s *Service) Results(ctx context.Context, kind vocab.Kind) ([]vocab.Item, error) {
	stats, err := s.statsFor(ctx, kind)
	if err != nil {
		return nil, err
	}

	switch kind {
	case vocab.KindNumber:
		items := make([]vocab.Item, 0, len(stats))
		for id, st := range stats {
			item, err := vocab.NumberItem(int(id), st)
			if err != nil {
				continue // stale row outside the supported range
			}
			items = append(items, item)
		}
		sortByID(items)
		return items, nil

	case vocab.KindFamily:
		words, err := s.familyWords(ctx, "")
		if err != nil {
			return nil, err
		}
		var items []vocab.Item
		for _, w := range words {
			for _, card := range vocab.CardsForWord(w) {
				if st, ok := stats[card.CardID()]; ok {
					items = append(items, card.Item(st))
				}
			}
		}
		return items, nil

	default:
		stored, err := s.items.ListByKind(ctx, string(kind))
		if err != nil {
			return nil, fmt.Errorf("list %s items: %w", kind, err)
		}
		items := make([]vocab.Item, 0, len(stored))
		for _, it := range stored {
			items = append(items, storedItem(it, stats[it.ID]))
		}
		return items, nil
	}
}

func (s *Service) candidatePool(ctx context.Context, req CycleRequest) ([]vocab.Item, error) {
	stats, err := s.statsFor(ctx, req.Kind)
	if err != nil {
		return nil, err
	}

	switch req.Kind {
	case vocab.KindNumber:
		return s.numberPool(req, stats), nil
	case vocab.KindFamily:
		return s.familyPool(ctx, req, stats)
	default:
		stored, err := s.items.ListByKind(ctx, string(req.Kind))
		if err != nil {
			return nil, fmt.Errorf("list %s items: %w", req.Kind, err)
		}
		pool := make([]vocab.Item, 0, len(stored))
		for _, it := range stored {
			pool = append(pool, storedItem(it, stats[it.ID]))
		}
		return pool, nil
	}
}

// numberPool mixes previously practiced numbers with fresh values drawn
// per component, so adaptive mode has history to work with and narrow
// filters still fill a cycle. The item ID is the number itself, which
// keeps stats stable across cycles.
func (s *Service) numberPool(req CycleRequest, stats map[int64]vocab.ItemStats) []vocab.Item {
	max := req.NumberMax
	if max <= 0 {
		max = vocab.NumberDefaultMax
	}
	if max > vocab.NumberMaxLimit {
		max = vocab.NumberMaxLimit
	}

	comps := req.Components
	if len(comps) == 0 {
		comps = vocab.AllNumberComponents()
	}
	inComps := func(v int) bool {
		got := vocab.ComponentOf(v)
		for _, c := range comps {
			if c == got {
				return true
			}
		}
		return false
	}

	seen := make(map[int]bool)
	var pool []vocab.Item
	add := func(v int, st vocab.ItemStats) {
		if seen[v] || v < 1 || v > max || !inComps(v) {
			return
		}
		item, err := vocab.NumberItem(v, st)
		if err != nil {
			return
		}
		seen[v] = true
		pool = append(pool, item)
	}

	for id, st := range stats {
		add(int(id), st)
	}

	size := req.Size
	if size <= 0 {
		size = vocab.NumberCycleSize
	}
	perComp := (size*3)/len(comps) + 1
	for _, c := range comps {
		for _, v := range s.drawComponent(c, max, perComp) {
			add(v, stats[int64(v)])
		}
	}
	return pool
}

// drawComponent yields up to n candidate values of one spelling component
// that fit under max. Small components are enumerated; the composite
// ranges are sampled.
func (s *Service) drawComponent(c vocab.NumberComponent, max, n int) []int {
	enumerate := func(lo, hi, step int) []int {
		var out []int
		for v := lo; v <= hi && v <= max; v += step {
			out = append(out, v)
		}
		return out
	}
	sample := func(lo, hi int, skip func(int) bool) []int {
		if hi > max {
			hi = max
		}
		if lo > hi {
			return nil
		}
		var out []int
		for tries := 0; len(out) < n && tries < n*20; tries++ {
			v := lo + s.rng.IntN(hi-lo+1)
			if !skip(v) {
				out = append(out, v)
			}
		}
		return out
	}

	switch c {
	case vocab.ComponentBasic:
		return enumerate(1, 12, 1)
	case vocab.ComponentTeens:
		return enumerate(13, 19, 1)
	case vocab.ComponentTens:
		return enumerate(20, 90, 10)
	case vocab.ComponentCompositeTens:
		return sample(21, 99, func(v int) bool { return v%10 == 0 })
	case vocab.ComponentHundreds:
		return enumerate(100, 900, 100)
	case vocab.ComponentCompositeHundreds:
		return sample(101, 999, func(v int) bool { return v%100 == 0 })
	case vocab.ComponentThousands:
		kMax := max / 1000
		if kMax < 1 {
			return nil
		}
		if kMax <= n {
			return enumerate(1000, kMax*1000, 1000)
		}
		out := make([]int, 0, n)
		for len(out) < n {
			out = append(out, 1000*(1+s.rng.IntN(kMax)))
		}
		return out
	case vocab.ComponentCompositeThousands:
		return sample(1001, vocab.NumberMaxLimit-1, func(v int) bool { return v%1000 == 0 })
	}
	return nil
}

func (s *Service) familyPool(ctx context.Context, req CycleRequest, stats map[int64]vocab.ItemStats) ([]vocab.Item, error) {
	words, err := s.familyWords(ctx, string(req.FamilyLevel))
	if err != nil {
		return nil, err
	}

	caseAllowed := func(c vocab.GrammaticalCase) bool {
		if len(req.Cases) == 0 {
			return true
		}
		for _, want := range req.Cases {
			if want == c {
				return true
			}
		}
		return false
	}

	var pool []vocab.Item
	for _, w := range words {
		for _, card := range vocab.CardsForWord(w) {
			if req.FamilyMode != "" && card.Mode != req.FamilyMode {
				continue
			}
			if card.Mode == vocab.FamilyModePhrase && !caseAllowed(card.Case) {
				continue
			}
			pool = append(pool, card.Item(stats[card.CardID()]))
		}
	}
	return pool, nil
}

func (s *Service) familyWords(ctx context.Context, level string) ([]vocab.FamilyWord, error) {
	records, err := s.items.ListFamilyWords(ctx, level)
	if err != nil {
		return nil, fmt.Errorf("list family words: %w", err)
	}
	words := make([]vocab.FamilyWord, 0, len(records))
	for _, r := range records {
		words = append(words, vocab.FamilyWord{
			ID:         r.ID,
			Lemma:      r.Lemma,
			Gender:     r.Gender,
			Plural:     r.Plural,
			SlSingular: r.SlSingular,
			SlPlural:   r.SlPlural,
			Level:      vocab.FamilyLevel(r.Level),
		})
	}
	return words, nil
}

func (s *Service) statsFor(ctx context.Context, kind vocab.Kind) (map[int64]vocab.ItemStats, error) {
	records, err := s.stats.ByKind(ctx, string(kind))
	if err != nil {
		return nil, fmt.Errorf("stats for %s: %w", kind, err)
	}
	stats := make(map[int64]vocab.ItemStats, len(records))
	for id, r := range records {
		st := vocab.ItemStats{
			Attempts: r.Attempts,
			Correct:  r.Correct,
			Wrong:    r.Wrong,
			Reveals:  r.Reveals,
			Streak:   r.Streak,
		}
		if r.LastSeen != nil {
			st.LastSeen = *r.LastSeen
		}
		stats[id] = st
	}
	return stats, nil
}

func storedItem(it store.StoredItem, stats vocab.ItemStats) vocab.Item {
	labels := it.Labels
	if len(labels) == 0 {
		labels = vocab.DefaultLabels(vocab.Kind(it.Kind))
	}
	return vocab.Item{
		ID:          it.ID,
		Translation: it.Translation,
		Labels:      labels,
		Solution:    it.Solution,
		Stats:       stats,
	}
}

func cycleSizeFor(kind vocab.Kind) int {
	switch kind {
	case vocab.KindNumber:
		return vocab.NumberCycleSize
	case vocab.KindFamily:
		return vocab.FamilyCycleSize
	default:
		return defaultCycleSize
	}
}

func sortByID(items []vocab.Item) {
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
}
