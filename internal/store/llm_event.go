package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/wortiz/ent"
	"github.com/abhisek/wortiz/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent.
type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.client.LLMRequestEvent.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListLLMRequests(ctx context.Context, limit int) ([]LLMRequestEventRecord, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list LLM request events: %w", err)
	}

	records := make([]LLMRequestEventRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, LLMRequestEventRecord{
			ID:           row.ID,
			Time:         row.CreatedAt,
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
		})
	}
	return records, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	rows, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	byModel := make(map[string]*LLMModelUsage)
	for _, row := range rows {
		u := byModel[row.Model]
		if u == nil {
			u = &LLMModelUsage{Model: row.Model}
			byModel[row.Model] = u
		}
		u.Calls++
		u.InputTokens += row.InputTokens
		u.OutputTokens += row.OutputTokens
	}

	usage := make([]LLMModelUsage, 0, len(byModel))
	for _, u := range byModel {
		usage = append(usage, *u)
	}
	sort.Slice(usage, func(i, j int) bool { return usage[i].Model < usage[j].Model })
	return usage, nil
}
