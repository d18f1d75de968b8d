package store

import (
	"context"
	"fmt"

	"github.com/abhisek/wortiz/ent"
	"github.com/abhisek/wortiz/ent/itemstat"
)

// statsRepo implements StatsRepo backed by ent.
type statsRepo struct {
	client *ent.Client
}

func (r *statsRepo) ByKind(ctx context.Context, kind string) (map[int64]StatRecord, error) {
	rows, err := r.client.ItemStat.Query().
		Where(itemstat.Kind(kind)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query %s stats: %w", kind, err)
	}

	stats := make(map[int64]StatRecord, len(rows))
	for _, row := range rows {
		stats[row.ItemID] = StatRecord{
			Kind:     row.Kind,
			ItemID:   row.ItemID,
			Attempts: row.Attempts,
			Correct:  row.Correct,
			Wrong:    row.Wrong,
			Reveals:  row.Reveals,
			Streak:   row.Streak,
			LastSeen: row.LastSeen,
		}
	}
	return stats, nil
}

func (r *statsRepo) TotalsFor(ctx context.Context, kind string) (Totals, error) {
	rows, err := r.client.ItemStat.Query().
		Where(itemstat.Kind(kind)).
		All(ctx)
	if err != nil {
		return Totals{}, fmt.Errorf("query %s totals: %w", kind, err)
	}

	var t Totals
	for _, row := range rows {
		t.Attempts += row.Attempts
		t.Correct += row.Correct
		t.Wrong += row.Wrong
		t.Reveals += row.Reveals
	}
	return t, nil
}

// Reset wipes attempt history, aggregates and cycle counters while
// keeping the imported vocabulary intact.
func (r *statsRepo) Reset(ctx context.Context) error {
	if _, err := r.client.Attempt.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete attempts: %w", err)
	}
	if _, err := r.client.ItemStat.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete item stats: %w", err)
	}
	if _, err := r.client.CycleCounter.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete cycle counters: %w", err)
	}
	return nil
}
