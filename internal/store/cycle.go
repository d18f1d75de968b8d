package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/wortiz/ent"
	"github.com/abhisek/wortiz/ent/cyclecounter"
)

// cycleRepo implements CycleRepo backed by ent.
type cycleRepo struct {
	client *ent.Client
}

func (r *cycleRepo) Complete(ctx context.Context, kind string) (int, error) {
	now := time.Now().UTC()

	counter, err := r.client.CycleCounter.Query().
		Where(cyclecounter.Kind(kind)).
		Only(ctx)
	if ent.IsNotFound(err) {
		created, err := r.client.CycleCounter.Create().
			SetKind(kind).
			SetCycles(1).
			SetLastCycleAt(now).
			Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("create cycle counter: %w", err)
		}
		return created.Cycles, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query cycle counter: %w", err)
	}

	updated, err := counter.Update().
		SetCycles(counter.Cycles + 1).
		SetLastCycleAt(now).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("update cycle counter: %w", err)
	}
	return updated.Cycles, nil
}

func (r *cycleRepo) Count(ctx context.Context, kind string) (int, error) {
	counter, err := r.client.CycleCounter.Query().
		Where(cyclecounter.Kind(kind)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query cycle counter: %w", err)
	}
	return counter.Cycles, nil
}
