// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "kind", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeInt64},
		{Name: "answers", Type: field.TypeJSON},
		{Name: "correct", Type: field.TypeBool},
		{Name: "revealed", Type: field.TypeBool},
		{Name: "cycle_number", Type: field.TypeInt, Default: 0},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_created_at",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1]},
			},
			{
				Name:    "attempt_kind_item_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[2], AttemptsColumns[3]},
			},
			{
				Name:    "attempt_kind_cycle_number",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[2], AttemptsColumns[7]},
			},
		},
	}
	// CycleCountersColumns holds the columns for the "cycle_counters" table.
	CycleCountersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "cycles", Type: field.TypeInt, Default: 0},
		{Name: "last_cycle_at", Type: field.TypeTime, Nullable: true},
	}
	// CycleCountersTable holds the schema information for the "cycle_counters" table.
	CycleCountersTable = &schema.Table{
		Name:       "cycle_counters",
		Columns:    CycleCountersColumns,
		PrimaryKey: []*schema.Column{CycleCountersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cyclecounter_kind",
				Unique:  true,
				Columns: []*schema.Column{CycleCountersColumns[1]},
			},
		},
	}
	// FamilyWordsColumns holds the columns for the "family_words" table.
	FamilyWordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "lemma", Type: field.TypeString},
		{Name: "gender", Type: field.TypeString},
		{Name: "plural", Type: field.TypeString, Default: ""},
		{Name: "sl_singular", Type: field.TypeString},
		{Name: "sl_plural", Type: field.TypeString, Default: ""},
		{Name: "level", Type: field.TypeString, Default: "A1"},
	}
	// FamilyWordsTable holds the schema information for the "family_words" table.
	FamilyWordsTable = &schema.Table{
		Name:       "family_words",
		Columns:    FamilyWordsColumns,
		PrimaryKey: []*schema.Column{FamilyWordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "familyword_level",
				Unique:  false,
				Columns: []*schema.Column{FamilyWordsColumns[6]},
			},
			{
				Name:    "familyword_lemma_gender",
				Unique:  true,
				Columns: []*schema.Column{FamilyWordsColumns[1], FamilyWordsColumns[2]},
			},
		},
	}
	// ItemStatsColumns holds the columns for the "item_stats" table.
	ItemStatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeInt64},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "wrong", Type: field.TypeInt, Default: 0},
		{Name: "reveals", Type: field.TypeInt, Default: 0},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "last_seen", Type: field.TypeTime, Nullable: true},
	}
	// ItemStatsTable holds the schema information for the "item_stats" table.
	ItemStatsTable = &schema.Table{
		Name:       "item_stats",
		Columns:    ItemStatsColumns,
		PrimaryKey: []*schema.Column{ItemStatsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "itemstat_kind_item_id",
				Unique:  true,
				Columns: []*schema.Column{ItemStatsColumns[1], ItemStatsColumns[2]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_model",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
		},
	}
	// VocabItemsColumns holds the columns for the "vocab_items" table.
	VocabItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "translation", Type: field.TypeString},
		{Name: "labels", Type: field.TypeJSON},
		{Name: "solution", Type: field.TypeJSON},
	}
	// VocabItemsTable holds the schema information for the "vocab_items" table.
	VocabItemsTable = &schema.Table{
		Name:       "vocab_items",
		Columns:    VocabItemsColumns,
		PrimaryKey: []*schema.Column{VocabItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vocabitem_kind",
				Unique:  false,
				Columns: []*schema.Column{VocabItemsColumns[1]},
			},
			{
				Name:    "vocabitem_kind_translation",
				Unique:  true,
				Columns: []*schema.Column{VocabItemsColumns[1], VocabItemsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
		CycleCountersTable,
		FamilyWordsTable,
		ItemStatsTable,
		LlmRequestEventsTable,
		VocabItemsTable,
	}
)

func init() {
}
