// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/wortiz/ent/attempt"
	"github.com/abhisek/wortiz/ent/cyclecounter"
	"github.com/abhisek/wortiz/ent/familyword"
	"github.com/abhisek/wortiz/ent/itemstat"
	"github.com/abhisek/wortiz/ent/llmrequestevent"
	"github.com/abhisek/wortiz/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptMixin := schema.Attempt{}.Mixin()
	attemptMixinFields0 := attemptMixin[0].Fields()
	_ = attemptMixinFields0
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescCreatedAt is the schema descriptor for created_at field.
	attemptDescCreatedAt := attemptMixinFields0[0].Descriptor()
	// attempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	attempt.DefaultCreatedAt = attemptDescCreatedAt.Default.(func() time.Time)
	// attemptDescCycleNumber is the schema descriptor for cycle_number field.
	attemptDescCycleNumber := attemptFields[5].Descriptor()
	// attempt.DefaultCycleNumber holds the default value on creation for the cycle_number field.
	attempt.DefaultCycleNumber = attemptDescCycleNumber.Default.(int)
	cyclecounterFields := schema.CycleCounter{}.Fields()
	_ = cyclecounterFields
	// cyclecounterDescCycles is the schema descriptor for cycles field.
	cyclecounterDescCycles := cyclecounterFields[1].Descriptor()
	// cyclecounter.DefaultCycles holds the default value on creation for the cycles field.
	cyclecounter.DefaultCycles = cyclecounterDescCycles.Default.(int)
	familywordFields := schema.FamilyWord{}.Fields()
	_ = familywordFields
	// familywordDescPlural is the schema descriptor for plural field.
	familywordDescPlural := familywordFields[2].Descriptor()
	// familyword.DefaultPlural holds the default value on creation for the plural field.
	familyword.DefaultPlural = familywordDescPlural.Default.(string)
	// familywordDescSlPlural is the schema descriptor for sl_plural field.
	familywordDescSlPlural := familywordFields[4].Descriptor()
	// familyword.DefaultSlPlural holds the default value on creation for the sl_plural field.
	familyword.DefaultSlPlural = familywordDescSlPlural.Default.(string)
	// familywordDescLevel is the schema descriptor for level field.
	familywordDescLevel := familywordFields[5].Descriptor()
	// familyword.DefaultLevel holds the default value on creation for the level field.
	familyword.DefaultLevel = familywordDescLevel.Default.(string)
	itemstatFields := schema.ItemStat{}.Fields()
	_ = itemstatFields
	// itemstatDescAttempts is the schema descriptor for attempts field.
	itemstatDescAttempts := itemstatFields[2].Descriptor()
	// itemstat.DefaultAttempts holds the default value on creation for the attempts field.
	itemstat.DefaultAttempts = itemstatDescAttempts.Default.(int)
	// itemstatDescCorrect is the schema descriptor for correct field.
	itemstatDescCorrect := itemstatFields[3].Descriptor()
	// itemstat.DefaultCorrect holds the default value on creation for the correct field.
	itemstat.DefaultCorrect = itemstatDescCorrect.Default.(int)
	// itemstatDescWrong is the schema descriptor for wrong field.
	itemstatDescWrong := itemstatFields[4].Descriptor()
	// itemstat.DefaultWrong holds the default value on creation for the wrong field.
	itemstat.DefaultWrong = itemstatDescWrong.Default.(int)
	// itemstatDescReveals is the schema descriptor for reveals field.
	itemstatDescReveals := itemstatFields[5].Descriptor()
	// itemstat.DefaultReveals holds the default value on creation for the reveals field.
	itemstat.DefaultReveals = itemstatDescReveals.Default.(int)
	// itemstatDescStreak is the schema descriptor for streak field.
	itemstatDescStreak := itemstatFields[6].Descriptor()
	// itemstat.DefaultStreak holds the default value on creation for the streak field.
	itemstat.DefaultStreak = itemstatDescStreak.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescCreatedAt is the schema descriptor for created_at field.
	llmrequesteventDescCreatedAt := llmrequesteventMixinFields0[0].Descriptor()
	// llmrequestevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmrequestevent.DefaultCreatedAt = llmrequesteventDescCreatedAt.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
}
