package store

import (
	"context"
	"fmt"

	"github.com/abhisek/wortiz/ent"
	"github.com/abhisek/wortiz/ent/familyword"
	"github.com/abhisek/wortiz/ent/vocabitem"
)

// itemRepo implements ItemRepo backed by ent.
type itemRepo struct {
	client *ent.Client
}

func (r *itemRepo) ListByKind(ctx context.Context, kind string) ([]StoredItem, error) {
	rows, err := r.client.VocabItem.Query().
		Where(vocabitem.Kind(kind)).
		Order(ent.Asc(vocabitem.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s items: %w", kind, err)
	}

	items := make([]StoredItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, StoredItem{
			ID:          int64(row.ID),
			Kind:        row.Kind,
			Translation: row.Translation,
			Labels:      row.Labels,
			Solution:    row.Solution,
		})
	}
	return items, nil
}

func (r *itemRepo) ImportItems(ctx context.Context, items []StoredItem) (int, error) {
	inserted := 0
	for _, it := range items {
		exists, err := r.client.VocabItem.Query().
			Where(vocabitem.Kind(it.Kind), vocabitem.Translation(it.Translation)).
			Exist(ctx)
		if err != nil {
			return inserted, fmt.Errorf("check %q: %w", it.Translation, err)
		}
		if exists {
			continue
		}
		_, err = r.client.VocabItem.Create().
			SetKind(it.Kind).
			SetTranslation(it.Translation).
			SetLabels(it.Labels).
			SetSolution(it.Solution).
			Save(ctx)
		if err != nil {
			return inserted, fmt.Errorf("insert %q: %w", it.Translation, err)
		}
		inserted++
	}
	return inserted, nil
}

func (r *itemRepo) ListFamilyWords(ctx context.Context, level string) ([]FamilyWordRecord, error) {
	q := r.client.FamilyWord.Query().Order(ent.Asc(familyword.FieldID))
	if level != "" {
		q = q.Where(familyword.Level(level))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list family words: %w", err)
	}

	words := make([]FamilyWordRecord, 0, len(rows))
	for _, row := range rows {
		words = append(words, FamilyWordRecord{
			ID:         int64(row.ID),
			Lemma:      row.Lemma,
			Gender:     row.Gender,
			Plural:     row.Plural,
			SlSingular: row.SlSingular,
			SlPlural:   row.SlPlural,
			Level:      row.Level,
		})
	}
	return words, nil
}

func (r *itemRepo) ImportFamilyWords(ctx context.Context, words []FamilyWordRecord) (int, error) {
	inserted := 0
	for _, w := range words {
		exists, err := r.client.FamilyWord.Query().
			Where(familyword.Lemma(w.Lemma), familyword.Gender(w.Gender)).
			Exist(ctx)
		if err != nil {
			return inserted, fmt.Errorf("check %q: %w", w.Lemma, err)
		}
		if exists {
			continue
		}
		_, err = r.client.FamilyWord.Create().
			SetLemma(w.Lemma).
			SetGender(w.Gender).
			SetPlural(w.Plural).
			SetSlSingular(w.SlSingular).
			SetSlPlural(w.SlPlural).
			SetLevel(w.Level).
			Save(ctx)
		if err != nil {
			return inserted, fmt.Errorf("insert %q: %w", w.Lemma, err)
		}
		inserted++
	}
	return inserted, nil
}
