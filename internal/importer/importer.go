// Package importer loads vocabulary content from CSV files into the store.
//
// Three list formats are supported:
//
//	nouns:  german,slovenian            e.g. "der Hund,pes"
//	verbs:  infinitive,third person,preterite,perfect,slovenian
//	family: lemma,gender,plural,sl_singular,sl_plural,level
//
// A header row is detected and skipped. Rows that fail validation are
// reported per line and do not abort the import; duplicates already in
// the store are skipped silently.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/wortiz/internal/store"
	"github.com/abhisek/wortiz/internal/vocab"
)

// RowError ties a validation failure to its CSV line number.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Result summarizes one import run.
type Result struct {
	Inserted int
	Skipped  int // duplicates already present
	Errors   []RowError
}

// Nouns imports a noun list. Each German entry must carry its article.
func Nouns(ctx context.Context, r io.Reader, repo store.ItemRepo) (Result, error) {
	rows, errs, err := readRows(r, 2, "german")
	if err != nil {
		return Result{}, err
	}

	var items []store.StoredItem
	for _, row := range rows {
		german, slovenian := row.fields[0], row.fields[1]
		if !hasArticle(german) {
			errs = append(errs, RowError{row.line, fmt.Errorf("%q must start with der, die or das", german)})
			continue
		}
		items = append(items, store.StoredItem{
			Kind:        string(vocab.KindNoun),
			Translation: slovenian,
			Labels:      vocab.DefaultLabels(vocab.KindNoun),
			Solution:    []string{german},
		})
	}
	return insertItems(ctx, repo, items, errs)
}

// Verbs imports a verb list with four principal forms per entry.
func Verbs(ctx context.Context, r io.Reader, repo store.ItemRepo) (Result, error) {
	rows, errs, err := readRows(r, 5, "infinitive")
	if err != nil {
		return Result{}, err
	}

	var items []store.StoredItem
	for _, row := range rows {
		items = append(items, store.StoredItem{
			Kind:        string(vocab.KindVerb),
			Translation: row.fields[4],
			Labels:      vocab.DefaultLabels(vocab.KindVerb),
			Solution:    row.fields[:4],
		})
	}
	return insertItems(ctx, repo, items, errs)
}

// FamilyWords imports the kinship noun list driving declension cards.
func FamilyWords(ctx context.Context, r io.Reader, repo store.ItemRepo) (Result, error) {
	rows, errs, err := readRows(r, 6, "lemma")
	if err != nil {
		return Result{}, err
	}

	var words []store.FamilyWordRecord
	for _, row := range rows {
		w := store.FamilyWordRecord{
			Lemma:      row.fields[0],
			Gender:     row.fields[1],
			Plural:     row.fields[2],
			SlSingular: row.fields[3],
			SlPlural:   row.fields[4],
			Level:      row.fields[5],
		}
		if err := validateFamilyWord(w); err != nil {
			errs = append(errs, RowError{row.line, err})
			continue
		}
		words = append(words, w)
	}

	result := Result{Errors: errs}
	if len(words) > 0 {
		inserted, err := repo.ImportFamilyWords(ctx, words)
		if err != nil {
			return result, fmt.Errorf("import family words: %w", err)
		}
		result.Inserted = inserted
		result.Skipped = len(words) - inserted
	}
	return result, nil
}

type row struct {
	line   int
	fields []string
}

// readRows parses the CSV, trims fields, validates column count and
// non-emptiness, and drops a header row whose first column matches
// headerKey.
func readRows(r io.Reader, wantFields int, headerKey string) ([]row, []RowError, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows []row
	var errs []RowError
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			if parseErr, ok := err.(*csv.ParseError); ok {
				errs = append(errs, RowError{parseErr.Line, fmt.Errorf("malformed row: %w", parseErr.Err)})
				continue
			}
			return nil, nil, fmt.Errorf("read csv: %w", err)
		}

		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		if line == 1 && strings.EqualFold(record[0], headerKey) {
			continue
		}
		if len(record) == 1 && record[0] == "" {
			continue // blank line
		}
		if len(record) != wantFields {
			errs = append(errs, RowError{line, fmt.Errorf("expected %d fields, got %d", wantFields, len(record))})
			continue
		}
		empty := false
		for _, f := range record {
			if f == "" {
				empty = true
				break
			}
		}
		if empty {
			errs = append(errs, RowError{line, fmt.Errorf("empty field")})
			continue
		}
		rows = append(rows, row{line: line, fields: record})
	}
	return rows, errs, nil
}

func insertItems(ctx context.Context, repo store.ItemRepo, items []store.StoredItem, errs []RowError) (Result, error) {
	result := Result{Errors: errs}
	if len(items) > 0 {
		inserted, err := repo.ImportItems(ctx, items)
		if err != nil {
			return result, fmt.Errorf("import items: %w", err)
		}
		result.Inserted = inserted
		result.Skipped = len(items) - inserted
	}
	return result, nil
}

func hasArticle(german string) bool {
	first, _, _ := strings.Cut(german, " ")
	switch strings.ToLower(first) {
	case "der", "die", "das":
		return true
	}
	return false
}

func validateFamilyWord(w store.FamilyWordRecord) error {
	switch w.Gender {
	case "m", "f", "n", "pl":
	default:
		return fmt.Errorf("gender %q must be m, f, n or pl", w.Gender)
	}
	switch vocab.FamilyLevel(w.Level) {
	case vocab.LevelA1, vocab.LevelA2:
	default:
		return fmt.Errorf("level %q must be A1 or A2", w.Level)
	}
	return nil
}
