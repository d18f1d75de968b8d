// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/wortiz/ent/attempt"
	"github.com/abhisek/wortiz/ent/cyclecounter"
	"github.com/abhisek/wortiz/ent/familyword"
	"github.com/abhisek/wortiz/ent/itemstat"
	"github.com/abhisek/wortiz/ent/llmrequestevent"
	"github.com/abhisek/wortiz/ent/predicate"
	"github.com/abhisek/wortiz/ent/vocabitem"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAttempt         = "Attempt"
	TypeCycleCounter    = "CycleCounter"
	TypeFamilyWord      = "FamilyWord"
	TypeItemStat        = "ItemStat"
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypeVocabItem       = "VocabItem"
)

// AttemptMutation represents an operation that mutates the Attempt nodes in the graph.
type AttemptMutation struct {
	config
	op              Op
	typ             string
	id              *int
	created_at      *time.Time
	kind            *string
	item_id         *int64
	additem_id      *int64
	answers         *[]string
	appendanswers   []string
	correct         *bool
	revealed        *bool
	cycle_number    *int
	addcycle_number *int
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Attempt, error)
	predicates      []predicate.Attempt
}

var _ ent.Mutation = (*AttemptMutation)(nil)

// attemptOption allows management of the mutation configuration using functional options.
type attemptOption func(*AttemptMutation)

// newAttemptMutation creates new mutation for the Attempt entity.
func newAttemptMutation(c config, op Op, opts ...attemptOption) *AttemptMutation {
	m := &AttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptID sets the ID field of the mutation.
func withAttemptID(id int) attemptOption {
	return func(m *AttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *Attempt
		)
		m.oldValue = func(ctx context.Context) (*Attempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Attempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttempt sets the old Attempt of the mutation.
func withAttempt(node *Attempt) attemptOption {
	return func(m *AttemptMutation) {
		m.oldValue = func(context.Context) (*Attempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Attempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AttemptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AttemptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AttemptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetKind sets the "kind" field.
func (m *AttemptMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *AttemptMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *AttemptMutation) ResetKind() {
	m.kind = nil
}

// SetItemID sets the "item_id" field.
func (m *AttemptMutation) SetItemID(i int64) {
	m.item_id = &i
	m.additem_id = nil
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *AttemptMutation) ItemID() (r int64, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldItemID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// AddItemID adds i to the "item_id" field.
func (m *AttemptMutation) AddItemID(i int64) {
	if m.additem_id != nil {
		*m.additem_id += i
	} else {
		m.additem_id = &i
	}
}

// AddedItemID returns the value that was added to the "item_id" field in this mutation.
func (m *AttemptMutation) AddedItemID() (r int64, exists bool) {
	v := m.additem_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemID resets all changes to the "item_id" field.
func (m *AttemptMutation) ResetItemID() {
	m.item_id = nil
	m.additem_id = nil
}

// SetAnswers sets the "answers" field.
func (m *AttemptMutation) SetAnswers(s []string) {
	m.answers = &s
	m.appendanswers = nil
}

// Answers returns the value of the "answers" field in the mutation.
func (m *AttemptMutation) Answers() (r []string, exists bool) {
	v := m.answers
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswers returns the old "answers" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldAnswers(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswers: %w", err)
	}
	return oldValue.Answers, nil
}

// AppendAnswers adds s to the "answers" field.
func (m *AttemptMutation) AppendAnswers(s []string) {
	m.appendanswers = append(m.appendanswers, s...)
}

// AppendedAnswers returns the list of values that were appended to the "answers" field in this mutation.
func (m *AttemptMutation) AppendedAnswers() ([]string, bool) {
	if len(m.appendanswers) == 0 {
		return nil, false
	}
	return m.appendanswers, true
}

// ResetAnswers resets all changes to the "answers" field.
func (m *AttemptMutation) ResetAnswers() {
	m.answers = nil
	m.appendanswers = nil
}

// SetCorrect sets the "correct" field.
func (m *AttemptMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AttemptMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *AttemptMutation) ResetCorrect() {
	m.correct = nil
}

// SetRevealed sets the "revealed" field.
func (m *AttemptMutation) SetRevealed(b bool) {
	m.revealed = &b
}

// Revealed returns the value of the "revealed" field in the mutation.
func (m *AttemptMutation) Revealed() (r bool, exists bool) {
	v := m.revealed
	if v == nil {
		return
	}
	return *v, true
}

// OldRevealed returns the old "revealed" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldRevealed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevealed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevealed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevealed: %w", err)
	}
	return oldValue.Revealed, nil
}

// ResetRevealed resets all changes to the "revealed" field.
func (m *AttemptMutation) ResetRevealed() {
	m.revealed = nil
}

// SetCycleNumber sets the "cycle_number" field.
func (m *AttemptMutation) SetCycleNumber(i int) {
	m.cycle_number = &i
	m.addcycle_number = nil
}

// CycleNumber returns the value of the "cycle_number" field in the mutation.
func (m *AttemptMutation) CycleNumber() (r int, exists bool) {
	v := m.cycle_number
	if v == nil {
		return
	}
	return *v, true
}

// OldCycleNumber returns the old "cycle_number" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldCycleNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCycleNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCycleNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCycleNumber: %w", err)
	}
	return oldValue.CycleNumber, nil
}

// AddCycleNumber adds i to the "cycle_number" field.
func (m *AttemptMutation) AddCycleNumber(i int) {
	if m.addcycle_number != nil {
		*m.addcycle_number += i
	} else {
		m.addcycle_number = &i
	}
}

// AddedCycleNumber returns the value that was added to the "cycle_number" field in this mutation.
func (m *AttemptMutation) AddedCycleNumber() (r int, exists bool) {
	v := m.addcycle_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetCycleNumber resets all changes to the "cycle_number" field.
func (m *AttemptMutation) ResetCycleNumber() {
	m.cycle_number = nil
	m.addcycle_number = nil
}

// Where appends a list predicates to the AttemptMutation builder.
func (m *AttemptMutation) Where(ps ...predicate.Attempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Attempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Attempt).
func (m *AttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, attempt.FieldCreatedAt)
	}
	if m.kind != nil {
		fields = append(fields, attempt.FieldKind)
	}
	if m.item_id != nil {
		fields = append(fields, attempt.FieldItemID)
	}
	if m.answers != nil {
		fields = append(fields, attempt.FieldAnswers)
	}
	if m.correct != nil {
		fields = append(fields, attempt.FieldCorrect)
	}
	if m.revealed != nil {
		fields = append(fields, attempt.FieldRevealed)
	}
	if m.cycle_number != nil {
		fields = append(fields, attempt.FieldCycleNumber)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attempt.FieldCreatedAt:
		return m.CreatedAt()
	case attempt.FieldKind:
		return m.Kind()
	case attempt.FieldItemID:
		return m.ItemID()
	case attempt.FieldAnswers:
		return m.Answers()
	case attempt.FieldCorrect:
		return m.Correct()
	case attempt.FieldRevealed:
		return m.Revealed()
	case attempt.FieldCycleNumber:
		return m.CycleNumber()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attempt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case attempt.FieldKind:
		return m.OldKind(ctx)
	case attempt.FieldItemID:
		return m.OldItemID(ctx)
	case attempt.FieldAnswers:
		return m.OldAnswers(ctx)
	case attempt.FieldCorrect:
		return m.OldCorrect(ctx)
	case attempt.FieldRevealed:
		return m.OldRevealed(ctx)
	case attempt.FieldCycleNumber:
		return m.OldCycleNumber(ctx)
	}
	return nil, fmt.Errorf("unknown Attempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attempt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case attempt.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case attempt.FieldItemID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case attempt.FieldAnswers:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswers(v)
		return nil
	case attempt.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case attempt.FieldRevealed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevealed(v)
		return nil
	case attempt.FieldCycleNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCycleNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Attempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptMutation) AddedFields() []string {
	var fields []string
	if m.additem_id != nil {
		fields = append(fields, attempt.FieldItemID)
	}
	if m.addcycle_number != nil {
		fields = append(fields, attempt.FieldCycleNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attempt.FieldItemID:
		return m.AddedItemID()
	case attempt.FieldCycleNumber:
		return m.AddedCycleNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attempt.FieldItemID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemID(v)
		return nil
	case attempt.FieldCycleNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCycleNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Attempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Attempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptMutation) ResetField(name string) error {
	switch name {
	case attempt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case attempt.FieldKind:
		m.ResetKind()
		return nil
	case attempt.FieldItemID:
		m.ResetItemID()
		return nil
	case attempt.FieldAnswers:
		m.ResetAnswers()
		return nil
	case attempt.FieldCorrect:
		m.ResetCorrect()
		return nil
	case attempt.FieldRevealed:
		m.ResetRevealed()
		return nil
	case attempt.FieldCycleNumber:
		m.ResetCycleNumber()
		return nil
	}
	return fmt.Errorf("unknown Attempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Attempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Attempt edge %s", name)
}

// CycleCounterMutation represents an operation that mutates the CycleCounter nodes in the graph.
type CycleCounterMutation struct {
	config
	op            Op
	typ           string
	id            *int
	kind          *string
	cycles        *int
	addcycles     *int
	last_cycle_at *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*CycleCounter, error)
	predicates    []predicate.CycleCounter
}

var _ ent.Mutation = (*CycleCounterMutation)(nil)

// cyclecounterOption allows management of the mutation configuration using functional options.
type cyclecounterOption func(*CycleCounterMutation)

// newCycleCounterMutation creates new mutation for the CycleCounter entity.
func newCycleCounterMutation(c config, op Op, opts ...cyclecounterOption) *CycleCounterMutation {
	m := &CycleCounterMutation{
		config:        c,
		op:            op,
		typ:           TypeCycleCounter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCycleCounterID sets the ID field of the mutation.
func withCycleCounterID(id int) cyclecounterOption {
	return func(m *CycleCounterMutation) {
		var (
			err   error
			once  sync.Once
			value *CycleCounter
		)
		m.oldValue = func(ctx context.Context) (*CycleCounter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CycleCounter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCycleCounter sets the old CycleCounter of the mutation.
func withCycleCounter(node *CycleCounter) cyclecounterOption {
	return func(m *CycleCounterMutation) {
		m.oldValue = func(context.Context) (*CycleCounter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CycleCounterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CycleCounterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CycleCounterMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CycleCounterMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CycleCounter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *CycleCounterMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *CycleCounterMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the CycleCounter entity.
// If the CycleCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CycleCounterMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *CycleCounterMutation) ResetKind() {
	m.kind = nil
}

// SetCycles sets the "cycles" field.
func (m *CycleCounterMutation) SetCycles(i int) {
	m.cycles = &i
	m.addcycles = nil
}

// Cycles returns the value of the "cycles" field in the mutation.
func (m *CycleCounterMutation) Cycles() (r int, exists bool) {
	v := m.cycles
	if v == nil {
		return
	}
	return *v, true
}

// OldCycles returns the old "cycles" field's value of the CycleCounter entity.
// If the CycleCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CycleCounterMutation) OldCycles(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCycles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCycles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCycles: %w", err)
	}
	return oldValue.Cycles, nil
}

// AddCycles adds i to the "cycles" field.
func (m *CycleCounterMutation) AddCycles(i int) {
	if m.addcycles != nil {
		*m.addcycles += i
	} else {
		m.addcycles = &i
	}
}

// AddedCycles returns the value that was added to the "cycles" field in this mutation.
func (m *CycleCounterMutation) AddedCycles() (r int, exists bool) {
	v := m.addcycles
	if v == nil {
		return
	}
	return *v, true
}

// ResetCycles resets all changes to the "cycles" field.
func (m *CycleCounterMutation) ResetCycles() {
	m.cycles = nil
	m.addcycles = nil
}

// SetLastCycleAt sets the "last_cycle_at" field.
func (m *CycleCounterMutation) SetLastCycleAt(t time.Time) {
	m.last_cycle_at = &t
}

// LastCycleAt returns the value of the "last_cycle_at" field in the mutation.
func (m *CycleCounterMutation) LastCycleAt() (r time.Time, exists bool) {
	v := m.last_cycle_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCycleAt returns the old "last_cycle_at" field's value of the CycleCounter entity.
// If the CycleCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CycleCounterMutation) OldLastCycleAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCycleAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCycleAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCycleAt: %w", err)
	}
	return oldValue.LastCycleAt, nil
}

// ClearLastCycleAt clears the value of the "last_cycle_at" field.
func (m *CycleCounterMutation) ClearLastCycleAt() {
	m.last_cycle_at = nil
	m.clearedFields[cyclecounter.FieldLastCycleAt] = struct{}{}
}

// LastCycleAtCleared returns if the "last_cycle_at" field was cleared in this mutation.
func (m *CycleCounterMutation) LastCycleAtCleared() bool {
	_, ok := m.clearedFields[cyclecounter.FieldLastCycleAt]
	return ok
}

// ResetLastCycleAt resets all changes to the "last_cycle_at" field.
func (m *CycleCounterMutation) ResetLastCycleAt() {
	m.last_cycle_at = nil
	delete(m.clearedFields, cyclecounter.FieldLastCycleAt)
}

// Where appends a list predicates to the CycleCounterMutation builder.
func (m *CycleCounterMutation) Where(ps ...predicate.CycleCounter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CycleCounterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CycleCounterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CycleCounter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CycleCounterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CycleCounterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CycleCounter).
func (m *CycleCounterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CycleCounterMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.kind != nil {
		fields = append(fields, cyclecounter.FieldKind)
	}
	if m.cycles != nil {
		fields = append(fields, cyclecounter.FieldCycles)
	}
	if m.last_cycle_at != nil {
		fields = append(fields, cyclecounter.FieldLastCycleAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CycleCounterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cyclecounter.FieldKind:
		return m.Kind()
	case cyclecounter.FieldCycles:
		return m.Cycles()
	case cyclecounter.FieldLastCycleAt:
		return m.LastCycleAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CycleCounterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cyclecounter.FieldKind:
		return m.OldKind(ctx)
	case cyclecounter.FieldCycles:
		return m.OldCycles(ctx)
	case cyclecounter.FieldLastCycleAt:
		return m.OldLastCycleAt(ctx)
	}
	return nil, fmt.Errorf("unknown CycleCounter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CycleCounterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cyclecounter.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case cyclecounter.FieldCycles:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCycles(v)
		return nil
	case cyclecounter.FieldLastCycleAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCycleAt(v)
		return nil
	}
	return fmt.Errorf("unknown CycleCounter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CycleCounterMutation) AddedFields() []string {
	var fields []string
	if m.addcycles != nil {
		fields = append(fields, cyclecounter.FieldCycles)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CycleCounterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cyclecounter.FieldCycles:
		return m.AddedCycles()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CycleCounterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cyclecounter.FieldCycles:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCycles(v)
		return nil
	}
	return fmt.Errorf("unknown CycleCounter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CycleCounterMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(cyclecounter.FieldLastCycleAt) {
		fields = append(fields, cyclecounter.FieldLastCycleAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CycleCounterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CycleCounterMutation) ClearField(name string) error {
	switch name {
	case cyclecounter.FieldLastCycleAt:
		m.ClearLastCycleAt()
		return nil
	}
	return fmt.Errorf("unknown CycleCounter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CycleCounterMutation) ResetField(name string) error {
	switch name {
	case cyclecounter.FieldKind:
		m.ResetKind()
		return nil
	case cyclecounter.FieldCycles:
		m.ResetCycles()
		return nil
	case cyclecounter.FieldLastCycleAt:
		m.ResetLastCycleAt()
		return nil
	}
	return fmt.Errorf("unknown CycleCounter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CycleCounterMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CycleCounterMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CycleCounterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CycleCounterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CycleCounterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CycleCounterMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CycleCounterMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CycleCounter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CycleCounterMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CycleCounter edge %s", name)
}

// FamilyWordMutation represents an operation that mutates the FamilyWord nodes in the graph.
type FamilyWordMutation struct {
	config
	op            Op
	typ           string
	id            *int
	lemma         *string
	gender        *string
	plural        *string
	sl_singular   *string
	sl_plural     *string
	level         *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*FamilyWord, error)
	predicates    []predicate.FamilyWord
}

var _ ent.Mutation = (*FamilyWordMutation)(nil)

// familywordOption allows management of the mutation configuration using functional options.
type familywordOption func(*FamilyWordMutation)

// newFamilyWordMutation creates new mutation for the FamilyWord entity.
func newFamilyWordMutation(c config, op Op, opts ...familywordOption) *FamilyWordMutation {
	m := &FamilyWordMutation{
		config:        c,
		op:            op,
		typ:           TypeFamilyWord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFamilyWordID sets the ID field of the mutation.
func withFamilyWordID(id int) familywordOption {
	return func(m *FamilyWordMutation) {
		var (
			err   error
			once  sync.Once
			value *FamilyWord
		)
		m.oldValue = func(ctx context.Context) (*FamilyWord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FamilyWord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFamilyWord sets the old FamilyWord of the mutation.
func withFamilyWord(node *FamilyWord) familywordOption {
	return func(m *FamilyWordMutation) {
		m.oldValue = func(context.Context) (*FamilyWord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FamilyWordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FamilyWordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FamilyWordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FamilyWordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FamilyWord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLemma sets the "lemma" field.
func (m *FamilyWordMutation) SetLemma(s string) {
	m.lemma = &s
}

// Lemma returns the value of the "lemma" field in the mutation.
func (m *FamilyWordMutation) Lemma() (r string, exists bool) {
	v := m.lemma
	if v == nil {
		return
	}
	return *v, true
}

// OldLemma returns the old "lemma" field's value of the FamilyWord entity.
// If the FamilyWord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyWordMutation) OldLemma(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLemma is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLemma requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLemma: %w", err)
	}
	return oldValue.Lemma, nil
}

// ResetLemma resets all changes to the "lemma" field.
func (m *FamilyWordMutation) ResetLemma() {
	m.lemma = nil
}

// SetGender sets the "gender" field.
func (m *FamilyWordMutation) SetGender(s string) {
	m.gender = &s
}

// Gender returns the value of the "gender" field in the mutation.
func (m *FamilyWordMutation) Gender() (r string, exists bool) {
	v := m.gender
	if v == nil {
		return
	}
	return *v, true
}

// OldGender returns the old "gender" field's value of the FamilyWord entity.
// If the FamilyWord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyWordMutation) OldGender(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGender: %w", err)
	}
	return oldValue.Gender, nil
}

// ResetGender resets all changes to the "gender" field.
func (m *FamilyWordMutation) ResetGender() {
	m.gender = nil
}

// SetPlural sets the "plural" field.
func (m *FamilyWordMutation) SetPlural(s string) {
	m.plural = &s
}

// Plural returns the value of the "plural" field in the mutation.
func (m *FamilyWordMutation) Plural() (r string, exists bool) {
	v := m.plural
	if v == nil {
		return
	}
	return *v, true
}

// OldPlural returns the old "plural" field's value of the FamilyWord entity.
// If the FamilyWord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyWordMutation) OldPlural(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlural is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlural requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlural: %w", err)
	}
	return oldValue.Plural, nil
}

// ResetPlural resets all changes to the "plural" field.
func (m *FamilyWordMutation) ResetPlural() {
	m.plural = nil
}

// SetSlSingular sets the "sl_singular" field.
func (m *FamilyWordMutation) SetSlSingular(s string) {
	m.sl_singular = &s
}

// SlSingular returns the value of the "sl_singular" field in the mutation.
func (m *FamilyWordMutation) SlSingular() (r string, exists bool) {
	v := m.sl_singular
	if v == nil {
		return
	}
	return *v, true
}

// OldSlSingular returns the old "sl_singular" field's value of the FamilyWord entity.
// If the FamilyWord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyWordMutation) OldSlSingular(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlSingular is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlSingular requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlSingular: %w", err)
	}
	return oldValue.SlSingular, nil
}

// ResetSlSingular resets all changes to the "sl_singular" field.
func (m *FamilyWordMutation) ResetSlSingular() {
	m.sl_singular = nil
}

// SetSlPlural sets the "sl_plural" field.
func (m *FamilyWordMutation) SetSlPlural(s string) {
	m.sl_plural = &s
}

// SlPlural returns the value of the "sl_plural" field in the mutation.
func (m *FamilyWordMutation) SlPlural() (r string, exists bool) {
	v := m.sl_plural
	if v == nil {
		return
	}
	return *v, true
}

// OldSlPlural returns the old "sl_plural" field's value of the FamilyWord entity.
// If the FamilyWord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyWordMutation) OldSlPlural(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlPlural is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlPlural requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlPlural: %w", err)
	}
	return oldValue.SlPlural, nil
}

// ResetSlPlural resets all changes to the "sl_plural" field.
func (m *FamilyWordMutation) ResetSlPlural() {
	m.sl_plural = nil
}

// SetLevel sets the "level" field.
func (m *FamilyWordMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *FamilyWordMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the FamilyWord entity.
// If the FamilyWord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyWordMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *FamilyWordMutation) ResetLevel() {
	m.level = nil
}

// Where appends a list predicates to the FamilyWordMutation builder.
func (m *FamilyWordMutation) Where(ps ...predicate.FamilyWord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FamilyWordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FamilyWordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FamilyWord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FamilyWordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FamilyWordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FamilyWord).
func (m *FamilyWordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FamilyWordMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.lemma != nil {
		fields = append(fields, familyword.FieldLemma)
	}
	if m.gender != nil {
		fields = append(fields, familyword.FieldGender)
	}
	if m.plural != nil {
		fields = append(fields, familyword.FieldPlural)
	}
	if m.sl_singular != nil {
		fields = append(fields, familyword.FieldSlSingular)
	}
	if m.sl_plural != nil {
		fields = append(fields, familyword.FieldSlPlural)
	}
	if m.level != nil {
		fields = append(fields, familyword.FieldLevel)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FamilyWordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case familyword.FieldLemma:
		return m.Lemma()
	case familyword.FieldGender:
		return m.Gender()
	case familyword.FieldPlural:
		return m.Plural()
	case familyword.FieldSlSingular:
		return m.SlSingular()
	case familyword.FieldSlPlural:
		return m.SlPlural()
	case familyword.FieldLevel:
		return m.Level()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FamilyWordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case familyword.FieldLemma:
		return m.OldLemma(ctx)
	case familyword.FieldGender:
		return m.OldGender(ctx)
	case familyword.FieldPlural:
		return m.OldPlural(ctx)
	case familyword.FieldSlSingular:
		return m.OldSlSingular(ctx)
	case familyword.FieldSlPlural:
		return m.OldSlPlural(ctx)
	case familyword.FieldLevel:
		return m.OldLevel(ctx)
	}
	return nil, fmt.Errorf("unknown FamilyWord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FamilyWordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case familyword.FieldLemma:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLemma(v)
		return nil
	case familyword.FieldGender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGender(v)
		return nil
	case familyword.FieldPlural:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlural(v)
		return nil
	case familyword.FieldSlSingular:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlSingular(v)
		return nil
	case familyword.FieldSlPlural:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlPlural(v)
		return nil
	case familyword.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	}
	return fmt.Errorf("unknown FamilyWord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FamilyWordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FamilyWordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FamilyWordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FamilyWord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FamilyWordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FamilyWordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FamilyWordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FamilyWord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FamilyWordMutation) ResetField(name string) error {
	switch name {
	case familyword.FieldLemma:
		m.ResetLemma()
		return nil
	case familyword.FieldGender:
		m.ResetGender()
		return nil
	case familyword.FieldPlural:
		m.ResetPlural()
		return nil
	case familyword.FieldSlSingular:
		m.ResetSlSingular()
		return nil
	case familyword.FieldSlPlural:
		m.ResetSlPlural()
		return nil
	case familyword.FieldLevel:
		m.ResetLevel()
		return nil
	}
	return fmt.Errorf("unknown FamilyWord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FamilyWordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FamilyWordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FamilyWordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FamilyWordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FamilyWordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FamilyWordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FamilyWordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FamilyWord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FamilyWordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FamilyWord edge %s", name)
}

// ItemStatMutation represents an operation that mutates the ItemStat nodes in the graph.
type ItemStatMutation struct {
	config
	op            Op
	typ           string
	id            *int
	kind          *string
	item_id       *int64
	additem_id    *int64
	attempts      *int
	addattempts   *int
	correct       *int
	addcorrect    *int
	wrong         *int
	addwrong      *int
	reveals       *int
	addreveals    *int
	streak        *int
	addstreak     *int
	last_seen     *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ItemStat, error)
	predicates    []predicate.ItemStat
}

var _ ent.Mutation = (*ItemStatMutation)(nil)

// itemstatOption allows management of the mutation configuration using functional options.
type itemstatOption func(*ItemStatMutation)

// newItemStatMutation creates new mutation for the ItemStat entity.
func newItemStatMutation(c config, op Op, opts ...itemstatOption) *ItemStatMutation {
	m := &ItemStatMutation{
		config:        c,
		op:            op,
		typ:           TypeItemStat,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withItemStatID sets the ID field of the mutation.
func withItemStatID(id int) itemstatOption {
	return func(m *ItemStatMutation) {
		var (
			err   error
			once  sync.Once
			value *ItemStat
		)
		m.oldValue = func(ctx context.Context) (*ItemStat, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ItemStat.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withItemStat sets the old ItemStat of the mutation.
func withItemStat(node *ItemStat) itemstatOption {
	return func(m *ItemStatMutation) {
		m.oldValue = func(context.Context) (*ItemStat, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ItemStatMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ItemStatMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ItemStatMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ItemStatMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ItemStat.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *ItemStatMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ItemStatMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ItemStat entity.
// If the ItemStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemStatMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ItemStatMutation) ResetKind() {
	m.kind = nil
}

// SetItemID sets the "item_id" field.
func (m *ItemStatMutation) SetItemID(i int64) {
	m.item_id = &i
	m.additem_id = nil
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *ItemStatMutation) ItemID() (r int64, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the ItemStat entity.
// If the ItemStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemStatMutation) OldItemID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// AddItemID adds i to the "item_id" field.
func (m *ItemStatMutation) AddItemID(i int64) {
	if m.additem_id != nil {
		*m.additem_id += i
	} else {
		m.additem_id = &i
	}
}

// AddedItemID returns the value that was added to the "item_id" field in this mutation.
func (m *ItemStatMutation) AddedItemID() (r int64, exists bool) {
	v := m.additem_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemID resets all changes to the "item_id" field.
func (m *ItemStatMutation) ResetItemID() {
	m.item_id = nil
	m.additem_id = nil
}

// SetAttempts sets the "attempts" field.
func (m *ItemStatMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *ItemStatMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the ItemStat entity.
// If the ItemStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemStatMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *ItemStatMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *ItemStatMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *ItemStatMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetCorrect sets the "correct" field.
func (m *ItemStatMutation) SetCorrect(i int) {
	m.correct = &i
	m.addcorrect = nil
}

// Correct returns the value of the "correct" field in the mutation.
func (m *ItemStatMutation) Correct() (r int, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the ItemStat entity.
// If the ItemStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemStatMutation) OldCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// AddCorrect adds i to the "correct" field.
func (m *ItemStatMutation) AddCorrect(i int) {
	if m.addcorrect != nil {
		*m.addcorrect += i
	} else {
		m.addcorrect = &i
	}
}

// AddedCorrect returns the value that was added to the "correct" field in this mutation.
func (m *ItemStatMutation) AddedCorrect() (r int, exists bool) {
	v := m.addcorrect
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrect resets all changes to the "correct" field.
func (m *ItemStatMutation) ResetCorrect() {
	m.correct = nil
	m.addcorrect = nil
}

// SetWrong sets the "wrong" field.
func (m *ItemStatMutation) SetWrong(i int) {
	m.wrong = &i
	m.addwrong = nil
}

// Wrong returns the value of the "wrong" field in the mutation.
func (m *ItemStatMutation) Wrong() (r int, exists bool) {
	v := m.wrong
	if v == nil {
		return
	}
	return *v, true
}

// OldWrong returns the old "wrong" field's value of the ItemStat entity.
// If the ItemStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemStatMutation) OldWrong(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWrong is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWrong requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWrong: %w", err)
	}
	return oldValue.Wrong, nil
}

// AddWrong adds i to the "wrong" field.
func (m *ItemStatMutation) AddWrong(i int) {
	if m.addwrong != nil {
		*m.addwrong += i
	} else {
		m.addwrong = &i
	}
}

// AddedWrong returns the value that was added to the "wrong" field in this mutation.
func (m *ItemStatMutation) AddedWrong() (r int, exists bool) {
	v := m.addwrong
	if v == nil {
		return
	}
	return *v, true
}

// ResetWrong resets all changes to the "wrong" field.
func (m *ItemStatMutation) ResetWrong() {
	m.wrong = nil
	m.addwrong = nil
}

// SetReveals sets the "reveals" field.
func (m *ItemStatMutation) SetReveals(i int) {
	m.reveals = &i
	m.addreveals = nil
}

// Reveals returns the value of the "reveals" field in the mutation.
func (m *ItemStatMutation) Reveals() (r int, exists bool) {
	v := m.reveals
	if v == nil {
		return
	}
	return *v, true
}

// OldReveals returns the old "reveals" field's value of the ItemStat entity.
// If the ItemStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemStatMutation) OldReveals(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReveals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReveals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReveals: %w", err)
	}
	return oldValue.Reveals, nil
}

// AddReveals adds i to the "reveals" field.
func (m *ItemStatMutation) AddReveals(i int) {
	if m.addreveals != nil {
		*m.addreveals += i
	} else {
		m.addreveals = &i
	}
}

// AddedReveals returns the value that was added to the "reveals" field in this mutation.
func (m *ItemStatMutation) AddedReveals() (r int, exists bool) {
	v := m.addreveals
	if v == nil {
		return
	}
	return *v, true
}

// ResetReveals resets all changes to the "reveals" field.
func (m *ItemStatMutation) ResetReveals() {
	m.reveals = nil
	m.addreveals = nil
}

// SetStreak sets the "streak" field.
func (m *ItemStatMutation) SetStreak(i int) {
	m.streak = &i
	m.addstreak = nil
}

// Streak returns the value of the "streak" field in the mutation.
func (m *ItemStatMutation) Streak() (r int, exists bool) {
	v := m.streak
	if v == nil {
		return
	}
	return *v, true
}

// OldStreak returns the old "streak" field's value of the ItemStat entity.
// If the ItemStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemStatMutation) OldStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreak: %w", err)
	}
	return oldValue.Streak, nil
}

// AddStreak adds i to the "streak" field.
func (m *ItemStatMutation) AddStreak(i int) {
	if m.addstreak != nil {
		*m.addstreak += i
	} else {
		m.addstreak = &i
	}
}

// AddedStreak returns the value that was added to the "streak" field in this mutation.
func (m *ItemStatMutation) AddedStreak() (r int, exists bool) {
	v := m.addstreak
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreak resets all changes to the "streak" field.
func (m *ItemStatMutation) ResetStreak() {
	m.streak = nil
	m.addstreak = nil
}

// SetLastSeen sets the "last_seen" field.
func (m *ItemStatMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *ItemStatMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the ItemStat entity.
// If the ItemStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemStatMutation) OldLastSeen(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ClearLastSeen clears the value of the "last_seen" field.
func (m *ItemStatMutation) ClearLastSeen() {
	m.last_seen = nil
	m.clearedFields[itemstat.FieldLastSeen] = struct{}{}
}

// LastSeenCleared returns if the "last_seen" field was cleared in this mutation.
func (m *ItemStatMutation) LastSeenCleared() bool {
	_, ok := m.clearedFields[itemstat.FieldLastSeen]
	return ok
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *ItemStatMutation) ResetLastSeen() {
	m.last_seen = nil
	delete(m.clearedFields, itemstat.FieldLastSeen)
}

// Where appends a list predicates to the ItemStatMutation builder.
func (m *ItemStatMutation) Where(ps ...predicate.ItemStat) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ItemStatMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ItemStatMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ItemStat, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ItemStatMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ItemStatMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ItemStat).
func (m *ItemStatMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ItemStatMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.kind != nil {
		fields = append(fields, itemstat.FieldKind)
	}
	if m.item_id != nil {
		fields = append(fields, itemstat.FieldItemID)
	}
	if m.attempts != nil {
		fields = append(fields, itemstat.FieldAttempts)
	}
	if m.correct != nil {
		fields = append(fields, itemstat.FieldCorrect)
	}
	if m.wrong != nil {
		fields = append(fields, itemstat.FieldWrong)
	}
	if m.reveals != nil {
		fields = append(fields, itemstat.FieldReveals)
	}
	if m.streak != nil {
		fields = append(fields, itemstat.FieldStreak)
	}
	if m.last_seen != nil {
		fields = append(fields, itemstat.FieldLastSeen)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ItemStatMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case itemstat.FieldKind:
		return m.Kind()
	case itemstat.FieldItemID:
		return m.ItemID()
	case itemstat.FieldAttempts:
		return m.Attempts()
	case itemstat.FieldCorrect:
		return m.Correct()
	case itemstat.FieldWrong:
		return m.Wrong()
	case itemstat.FieldReveals:
		return m.Reveals()
	case itemstat.FieldStreak:
		return m.Streak()
	case itemstat.FieldLastSeen:
		return m.LastSeen()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ItemStatMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case itemstat.FieldKind:
		return m.OldKind(ctx)
	case itemstat.FieldItemID:
		return m.OldItemID(ctx)
	case itemstat.FieldAttempts:
		return m.OldAttempts(ctx)
	case itemstat.FieldCorrect:
		return m.OldCorrect(ctx)
	case itemstat.FieldWrong:
		return m.OldWrong(ctx)
	case itemstat.FieldReveals:
		return m.OldReveals(ctx)
	case itemstat.FieldStreak:
		return m.OldStreak(ctx)
	case itemstat.FieldLastSeen:
		return m.OldLastSeen(ctx)
	}
	return nil, fmt.Errorf("unknown ItemStat field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemStatMutation) SetField(name string, value ent.Value) error {
	switch name {
	case itemstat.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case itemstat.FieldItemID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case itemstat.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case itemstat.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case itemstat.FieldWrong:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWrong(v)
		return nil
	case itemstat.FieldReveals:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReveals(v)
		return nil
	case itemstat.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreak(v)
		return nil
	case itemstat.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	}
	return fmt.Errorf("unknown ItemStat field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ItemStatMutation) AddedFields() []string {
	var fields []string
	if m.additem_id != nil {
		fields = append(fields, itemstat.FieldItemID)
	}
	if m.addattempts != nil {
		fields = append(fields, itemstat.FieldAttempts)
	}
	if m.addcorrect != nil {
		fields = append(fields, itemstat.FieldCorrect)
	}
	if m.addwrong != nil {
		fields = append(fields, itemstat.FieldWrong)
	}
	if m.addreveals != nil {
		fields = append(fields, itemstat.FieldReveals)
	}
	if m.addstreak != nil {
		fields = append(fields, itemstat.FieldStreak)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ItemStatMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case itemstat.FieldItemID:
		return m.AddedItemID()
	case itemstat.FieldAttempts:
		return m.AddedAttempts()
	case itemstat.FieldCorrect:
		return m.AddedCorrect()
	case itemstat.FieldWrong:
		return m.AddedWrong()
	case itemstat.FieldReveals:
		return m.AddedReveals()
	case itemstat.FieldStreak:
		return m.AddedStreak()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemStatMutation) AddField(name string, value ent.Value) error {
	switch name {
	case itemstat.FieldItemID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemID(v)
		return nil
	case itemstat.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case itemstat.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrect(v)
		return nil
	case itemstat.FieldWrong:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWrong(v)
		return nil
	case itemstat.FieldReveals:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReveals(v)
		return nil
	case itemstat.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreak(v)
		return nil
	}
	return fmt.Errorf("unknown ItemStat numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ItemStatMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(itemstat.FieldLastSeen) {
		fields = append(fields, itemstat.FieldLastSeen)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ItemStatMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ItemStatMutation) ClearField(name string) error {
	switch name {
	case itemstat.FieldLastSeen:
		m.ClearLastSeen()
		return nil
	}
	return fmt.Errorf("unknown ItemStat nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ItemStatMutation) ResetField(name string) error {
	switch name {
	case itemstat.FieldKind:
		m.ResetKind()
		return nil
	case itemstat.FieldItemID:
		m.ResetItemID()
		return nil
	case itemstat.FieldAttempts:
		m.ResetAttempts()
		return nil
	case itemstat.FieldCorrect:
		m.ResetCorrect()
		return nil
	case itemstat.FieldWrong:
		m.ResetWrong()
		return nil
	case itemstat.FieldReveals:
		m.ResetReveals()
		return nil
	case itemstat.FieldStreak:
		m.ResetStreak()
		return nil
	case itemstat.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	}
	return fmt.Errorf("unknown ItemStat field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ItemStatMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ItemStatMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ItemStatMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ItemStatMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ItemStatMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ItemStatMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ItemStatMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ItemStat unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ItemStatMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ItemStat edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	created_at       *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *LLMRequestEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LLMRequestEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LLMRequestEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, llmrequestevent.FieldCreatedAt)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldCreatedAt:
		return m.CreatedAt()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// VocabItemMutation represents an operation that mutates the VocabItem nodes in the graph.
type VocabItemMutation struct {
	config
	op             Op
	typ            string
	id             *int
	kind           *string
	translation    *string
	labels         *[]string
	appendlabels   []string
	solution       *[]string
	appendsolution []string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*VocabItem, error)
	predicates     []predicate.VocabItem
}

var _ ent.Mutation = (*VocabItemMutation)(nil)

// vocabitemOption allows management of the mutation configuration using functional options.
type vocabitemOption func(*VocabItemMutation)

// newVocabItemMutation creates new mutation for the VocabItem entity.
func newVocabItemMutation(c config, op Op, opts ...vocabitemOption) *VocabItemMutation {
	m := &VocabItemMutation{
		config:        c,
		op:            op,
		typ:           TypeVocabItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVocabItemID sets the ID field of the mutation.
func withVocabItemID(id int) vocabitemOption {
	return func(m *VocabItemMutation) {
		var (
			err   error
			once  sync.Once
			value *VocabItem
		)
		m.oldValue = func(ctx context.Context) (*VocabItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VocabItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVocabItem sets the old VocabItem of the mutation.
func withVocabItem(node *VocabItem) vocabitemOption {
	return func(m *VocabItemMutation) {
		m.oldValue = func(context.Context) (*VocabItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VocabItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VocabItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VocabItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VocabItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VocabItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *VocabItemMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *VocabItemMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the VocabItem entity.
// If the VocabItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabItemMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *VocabItemMutation) ResetKind() {
	m.kind = nil
}

// SetTranslation sets the "translation" field.
func (m *VocabItemMutation) SetTranslation(s string) {
	m.translation = &s
}

// Translation returns the value of the "translation" field in the mutation.
func (m *VocabItemMutation) Translation() (r string, exists bool) {
	v := m.translation
	if v == nil {
		return
	}
	return *v, true
}

// OldTranslation returns the old "translation" field's value of the VocabItem entity.
// If the VocabItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabItemMutation) OldTranslation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranslation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranslation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranslation: %w", err)
	}
	return oldValue.Translation, nil
}

// ResetTranslation resets all changes to the "translation" field.
func (m *VocabItemMutation) ResetTranslation() {
	m.translation = nil
}

// SetLabels sets the "labels" field.
func (m *VocabItemMutation) SetLabels(s []string) {
	m.labels = &s
	m.appendlabels = nil
}

// Labels returns the value of the "labels" field in the mutation.
func (m *VocabItemMutation) Labels() (r []string, exists bool) {
	v := m.labels
	if v == nil {
		return
	}
	return *v, true
}

// OldLabels returns the old "labels" field's value of the VocabItem entity.
// If the VocabItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabItemMutation) OldLabels(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabels: %w", err)
	}
	return oldValue.Labels, nil
}

// AppendLabels adds s to the "labels" field.
func (m *VocabItemMutation) AppendLabels(s []string) {
	m.appendlabels = append(m.appendlabels, s...)
}

// AppendedLabels returns the list of values that were appended to the "labels" field in this mutation.
func (m *VocabItemMutation) AppendedLabels() ([]string, bool) {
	if len(m.appendlabels) == 0 {
		return nil, false
	}
	return m.appendlabels, true
}

// ResetLabels resets all changes to the "labels" field.
func (m *VocabItemMutation) ResetLabels() {
	m.labels = nil
	m.appendlabels = nil
}

// SetSolution sets the "solution" field.
func (m *VocabItemMutation) SetSolution(s []string) {
	m.solution = &s
	m.appendsolution = nil
}

// Solution returns the value of the "solution" field in the mutation.
func (m *VocabItemMutation) Solution() (r []string, exists bool) {
	v := m.solution
	if v == nil {
		return
	}
	return *v, true
}

// OldSolution returns the old "solution" field's value of the VocabItem entity.
// If the VocabItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VocabItemMutation) OldSolution(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSolution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSolution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSolution: %w", err)
	}
	return oldValue.Solution, nil
}

// AppendSolution adds s to the "solution" field.
func (m *VocabItemMutation) AppendSolution(s []string) {
	m.appendsolution = append(m.appendsolution, s...)
}

// AppendedSolution returns the list of values that were appended to the "solution" field in this mutation.
func (m *VocabItemMutation) AppendedSolution() ([]string, bool) {
	if len(m.appendsolution) == 0 {
		return nil, false
	}
	return m.appendsolution, true
}

// ResetSolution resets all changes to the "solution" field.
func (m *VocabItemMutation) ResetSolution() {
	m.solution = nil
	m.appendsolution = nil
}

// Where appends a list predicates to the VocabItemMutation builder.
func (m *VocabItemMutation) Where(ps ...predicate.VocabItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VocabItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VocabItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VocabItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VocabItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VocabItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VocabItem).
func (m *VocabItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VocabItemMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.kind != nil {
		fields = append(fields, vocabitem.FieldKind)
	}
	if m.translation != nil {
		fields = append(fields, vocabitem.FieldTranslation)
	}
	if m.labels != nil {
		fields = append(fields, vocabitem.FieldLabels)
	}
	if m.solution != nil {
		fields = append(fields, vocabitem.FieldSolution)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VocabItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vocabitem.FieldKind:
		return m.Kind()
	case vocabitem.FieldTranslation:
		return m.Translation()
	case vocabitem.FieldLabels:
		return m.Labels()
	case vocabitem.FieldSolution:
		return m.Solution()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VocabItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vocabitem.FieldKind:
		return m.OldKind(ctx)
	case vocabitem.FieldTranslation:
		return m.OldTranslation(ctx)
	case vocabitem.FieldLabels:
		return m.OldLabels(ctx)
	case vocabitem.FieldSolution:
		return m.OldSolution(ctx)
	}
	return nil, fmt.Errorf("unknown VocabItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VocabItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vocabitem.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case vocabitem.FieldTranslation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranslation(v)
		return nil
	case vocabitem.FieldLabels:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabels(v)
		return nil
	case vocabitem.FieldSolution:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSolution(v)
		return nil
	}
	return fmt.Errorf("unknown VocabItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VocabItemMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VocabItemMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VocabItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown VocabItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VocabItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VocabItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VocabItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown VocabItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VocabItemMutation) ResetField(name string) error {
	switch name {
	case vocabitem.FieldKind:
		m.ResetKind()
		return nil
	case vocabitem.FieldTranslation:
		m.ResetTranslation()
		return nil
	case vocabitem.FieldLabels:
		m.ResetLabels()
		return nil
	case vocabitem.FieldSolution:
		m.ResetSolution()
		return nil
	}
	return fmt.Errorf("unknown VocabItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VocabItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VocabItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VocabItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VocabItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VocabItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VocabItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VocabItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown VocabItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VocabItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown VocabItem edge %s", name)
}
