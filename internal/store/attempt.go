package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/wortiz/ent"
	"github.com/abhisek/wortiz/ent/itemstat"
)

// attemptRepo implements AttemptRepo backed by ent.
type attemptRepo struct {
	client *ent.Client
}

// Record appends the attempt row and updates the ItemStat aggregate in
// a single transaction, so the aggregate can never drift from the
// attempt history.
func (r *attemptRepo) Record(ctx context.Context, at AttemptRecord) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := recordInTx(ctx, tx, at); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit attempt: %w", err)
	}
	return nil
}

func recordInTx(ctx context.Context, tx *ent.Tx, at AttemptRecord) error {
	_, err := tx.Attempt.Create().
		SetKind(at.Kind).
		SetItemID(at.ItemID).
		SetAnswers(at.Answers).
		SetCorrect(at.Correct).
		SetRevealed(at.Revealed).
		SetCycleNumber(at.CycleNumber).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}

	now := time.Now().UTC()

	stat, err := tx.ItemStat.Query().
		Where(itemstat.Kind(at.Kind), itemstat.ItemID(at.ItemID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		create := tx.ItemStat.Create().
			SetKind(at.Kind).
			SetItemID(at.ItemID).
			SetAttempts(1).
			SetLastSeen(now)
		if at.Correct {
			create.SetCorrect(1).SetStreak(1)
		} else {
			create.SetWrong(1)
		}
		if at.Revealed {
			create.SetReveals(1)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create item stat: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("query item stat: %w", err)
	}

	update := stat.Update().
		SetAttempts(stat.Attempts + 1).
		SetLastSeen(now)
	if at.Correct {
		update.SetCorrect(stat.Correct + 1).SetStreak(stat.Streak + 1)
	} else {
		update.SetWrong(stat.Wrong + 1).SetStreak(0)
	}
	if at.Revealed {
		update.SetReveals(stat.Reveals + 1)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("update item stat: %w", err)
	}
	return nil
}
