// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/wortiz/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/wortiz/ent/attempt"
	"github.com/abhisek/wortiz/ent/cyclecounter"
	"github.com/abhisek/wortiz/ent/familyword"
	"github.com/abhisek/wortiz/ent/itemstat"
	"github.com/abhisek/wortiz/ent/llmrequestevent"
	"github.com/abhisek/wortiz/ent/vocabitem"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Attempt is the client for interacting with the Attempt builders.
	Attempt *AttemptClient
	// CycleCounter is the client for interacting with the CycleCounter builders.
	CycleCounter *CycleCounterClient
	// FamilyWord is the client for interacting with the FamilyWord builders.
	FamilyWord *FamilyWordClient
	// ItemStat is the client for interacting with the ItemStat builders.
	ItemStat *ItemStatClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// VocabItem is the client for interacting with the VocabItem builders.
	VocabItem *VocabItemClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Attempt = NewAttemptClient(c.config)
	c.CycleCounter = NewCycleCounterClient(c.config)
	c.FamilyWord = NewFamilyWordClient(c.config)
	c.ItemStat = NewItemStatClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.VocabItem = NewVocabItemClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Attempt:         NewAttemptClient(cfg),
		CycleCounter:    NewCycleCounterClient(cfg),
		FamilyWord:      NewFamilyWordClient(cfg),
		ItemStat:        NewItemStatClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		VocabItem:       NewVocabItemClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Attempt:         NewAttemptClient(cfg),
		CycleCounter:    NewCycleCounterClient(cfg),
		FamilyWord:      NewFamilyWordClient(cfg),
		ItemStat:        NewItemStatClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		VocabItem:       NewVocabItemClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Attempt.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Attempt, c.CycleCounter, c.FamilyWord, c.ItemStat, c.LLMRequestEvent,
		c.VocabItem,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Attempt, c.CycleCounter, c.FamilyWord, c.ItemStat, c.LLMRequestEvent,
		c.VocabItem,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AttemptMutation:
		return c.Attempt.mutate(ctx, m)
	case *CycleCounterMutation:
		return c.CycleCounter.mutate(ctx, m)
	case *FamilyWordMutation:
		return c.FamilyWord.mutate(ctx, m)
	case *ItemStatMutation:
		return c.ItemStat.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *VocabItemMutation:
		return c.VocabItem.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AttemptClient is a client for the Attempt schema.
type AttemptClient struct {
	config
}

// NewAttemptClient returns a client for the Attempt from the given config.
func NewAttemptClient(c config) *AttemptClient {
	return &AttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attempt.Hooks(f(g(h())))`.
func (c *AttemptClient) Use(hooks ...Hook) {
	c.hooks.Attempt = append(c.hooks.Attempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attempt.Intercept(f(g(h())))`.
func (c *AttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Attempt = append(c.inters.Attempt, interceptors...)
}

// Create returns a builder for creating a Attempt entity.
func (c *AttemptClient) Create() *AttemptCreate {
	mutation := newAttemptMutation(c.config, OpCreate)
	return &AttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Attempt entities.
func (c *AttemptClient) CreateBulk(builders ...*AttemptCreate) *AttemptCreateBulk {
	return &AttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptClient) MapCreateBulk(slice any, setFunc func(*AttemptCreate, int)) *AttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptCreateBulk{err: fmt.Errorf("calling to AttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Attempt.
func (c *AttemptClient) Update() *AttemptUpdate {
	mutation := newAttemptMutation(c.config, OpUpdate)
	return &AttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptClient) UpdateOne(_m *Attempt) *AttemptUpdateOne {
	mutation := newAttemptMutation(c.config, OpUpdateOne, withAttempt(_m))
	return &AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptClient) UpdateOneID(id int) *AttemptUpdateOne {
	mutation := newAttemptMutation(c.config, OpUpdateOne, withAttemptID(id))
	return &AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Attempt.
func (c *AttemptClient) Delete() *AttemptDelete {
	mutation := newAttemptMutation(c.config, OpDelete)
	return &AttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptClient) DeleteOne(_m *Attempt) *AttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptClient) DeleteOneID(id int) *AttemptDeleteOne {
	builder := c.Delete().Where(attempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptDeleteOne{builder}
}

// Query returns a query builder for Attempt.
func (c *AttemptClient) Query() *AttemptQuery {
	return &AttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a Attempt entity by its id.
func (c *AttemptClient) Get(ctx context.Context, id int) (*Attempt, error) {
	return c.Query().Where(attempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptClient) GetX(ctx context.Context, id int) *Attempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AttemptClient) Hooks() []Hook {
	return c.hooks.Attempt
}

// Interceptors returns the client interceptors.
func (c *AttemptClient) Interceptors() []Interceptor {
	return c.inters.Attempt
}

func (c *AttemptClient) mutate(ctx context.Context, m *AttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Attempt mutation op: %q", m.Op())
	}
}

// CycleCounterClient is a client for the CycleCounter schema.
type CycleCounterClient struct {
	config
}

// NewCycleCounterClient returns a client for the CycleCounter from the given config.
func NewCycleCounterClient(c config) *CycleCounterClient {
	return &CycleCounterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cyclecounter.Hooks(f(g(h())))`.
func (c *CycleCounterClient) Use(hooks ...Hook) {
	c.hooks.CycleCounter = append(c.hooks.CycleCounter, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cyclecounter.Intercept(f(g(h())))`.
func (c *CycleCounterClient) Intercept(interceptors ...Interceptor) {
	c.inters.CycleCounter = append(c.inters.CycleCounter, interceptors...)
}

// Create returns a builder for creating a CycleCounter entity.
func (c *CycleCounterClient) Create() *CycleCounterCreate {
	mutation := newCycleCounterMutation(c.config, OpCreate)
	return &CycleCounterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CycleCounter entities.
func (c *CycleCounterClient) CreateBulk(builders ...*CycleCounterCreate) *CycleCounterCreateBulk {
	return &CycleCounterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CycleCounterClient) MapCreateBulk(slice any, setFunc func(*CycleCounterCreate, int)) *CycleCounterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CycleCounterCreateBulk{err: fmt.Errorf("calling to CycleCounterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CycleCounterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CycleCounterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CycleCounter.
func (c *CycleCounterClient) Update() *CycleCounterUpdate {
	mutation := newCycleCounterMutation(c.config, OpUpdate)
	return &CycleCounterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CycleCounterClient) UpdateOne(_m *CycleCounter) *CycleCounterUpdateOne {
	mutation := newCycleCounterMutation(c.config, OpUpdateOne, withCycleCounter(_m))
	return &CycleCounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CycleCounterClient) UpdateOneID(id int) *CycleCounterUpdateOne {
	mutation := newCycleCounterMutation(c.config, OpUpdateOne, withCycleCounterID(id))
	return &CycleCounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CycleCounter.
func (c *CycleCounterClient) Delete() *CycleCounterDelete {
	mutation := newCycleCounterMutation(c.config, OpDelete)
	return &CycleCounterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CycleCounterClient) DeleteOne(_m *CycleCounter) *CycleCounterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CycleCounterClient) DeleteOneID(id int) *CycleCounterDeleteOne {
	builder := c.Delete().Where(cyclecounter.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CycleCounterDeleteOne{builder}
}

// Query returns a query builder for CycleCounter.
func (c *CycleCounterClient) Query() *CycleCounterQuery {
	return &CycleCounterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCycleCounter},
		inters: c.Interceptors(),
	}
}

// Get returns a CycleCounter entity by its id.
func (c *CycleCounterClient) Get(ctx context.Context, id int) (*CycleCounter, error) {
	return c.Query().Where(cyclecounter.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CycleCounterClient) GetX(ctx context.Context, id int) *CycleCounter {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CycleCounterClient) Hooks() []Hook {
	return c.hooks.CycleCounter
}

// Interceptors returns the client interceptors.
func (c *CycleCounterClient) Interceptors() []Interceptor {
	return c.inters.CycleCounter
}

func (c *CycleCounterClient) mutate(ctx context.Context, m *CycleCounterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CycleCounterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CycleCounterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CycleCounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CycleCounterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CycleCounter mutation op: %q", m.Op())
	}
}

// FamilyWordClient is a client for the FamilyWord schema.
type FamilyWordClient struct {
	config
}

// NewFamilyWordClient returns a client for the FamilyWord from the given config.
func NewFamilyWordClient(c config) *FamilyWordClient {
	return &FamilyWordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `familyword.Hooks(f(g(h())))`.
func (c *FamilyWordClient) Use(hooks ...Hook) {
	c.hooks.FamilyWord = append(c.hooks.FamilyWord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `familyword.Intercept(f(g(h())))`.
func (c *FamilyWordClient) Intercept(interceptors ...Interceptor) {
	c.inters.FamilyWord = append(c.inters.FamilyWord, interceptors...)
}

// Create returns a builder for creating a FamilyWord entity.
func (c *FamilyWordClient) Create() *FamilyWordCreate {
	mutation := newFamilyWordMutation(c.config, OpCreate)
	return &FamilyWordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FamilyWord entities.
func (c *FamilyWordClient) CreateBulk(builders ...*FamilyWordCreate) *FamilyWordCreateBulk {
	return &FamilyWordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FamilyWordClient) MapCreateBulk(slice any, setFunc func(*FamilyWordCreate, int)) *FamilyWordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FamilyWordCreateBulk{err: fmt.Errorf("calling to FamilyWordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FamilyWordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FamilyWordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FamilyWord.
func (c *FamilyWordClient) Update() *FamilyWordUpdate {
	mutation := newFamilyWordMutation(c.config, OpUpdate)
	return &FamilyWordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FamilyWordClient) UpdateOne(_m *FamilyWord) *FamilyWordUpdateOne {
	mutation := newFamilyWordMutation(c.config, OpUpdateOne, withFamilyWord(_m))
	return &FamilyWordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FamilyWordClient) UpdateOneID(id int) *FamilyWordUpdateOne {
	mutation := newFamilyWordMutation(c.config, OpUpdateOne, withFamilyWordID(id))
	return &FamilyWordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FamilyWord.
func (c *FamilyWordClient) Delete() *FamilyWordDelete {
	mutation := newFamilyWordMutation(c.config, OpDelete)
	return &FamilyWordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FamilyWordClient) DeleteOne(_m *FamilyWord) *FamilyWordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FamilyWordClient) DeleteOneID(id int) *FamilyWordDeleteOne {
	builder := c.Delete().Where(familyword.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FamilyWordDeleteOne{builder}
}

// Query returns a query builder for FamilyWord.
func (c *FamilyWordClient) Query() *FamilyWordQuery {
	return &FamilyWordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFamilyWord},
		inters: c.Interceptors(),
	}
}

// Get returns a FamilyWord entity by its id.
func (c *FamilyWordClient) Get(ctx context.Context, id int) (*FamilyWord, error) {
	return c.Query().Where(familyword.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FamilyWordClient) GetX(ctx context.Context, id int) *FamilyWord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FamilyWordClient) Hooks() []Hook {
	return c.hooks.FamilyWord
}

// Interceptors returns the client interceptors.
func (c *FamilyWordClient) Interceptors() []Interceptor {
	return c.inters.FamilyWord
}

func (c *FamilyWordClient) mutate(ctx context.Context, m *FamilyWordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FamilyWordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FamilyWordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FamilyWordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FamilyWordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FamilyWord mutation op: %q", m.Op())
	}
}

// ItemStatClient is a client for the ItemStat schema.
type ItemStatClient struct {
	config
}

// NewItemStatClient returns a client for the ItemStat from the given config.
func NewItemStatClient(c config) *ItemStatClient {
	return &ItemStatClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `itemstat.Hooks(f(g(h())))`.
func (c *ItemStatClient) Use(hooks ...Hook) {
	c.hooks.ItemStat = append(c.hooks.ItemStat, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `itemstat.Intercept(f(g(h())))`.
func (c *ItemStatClient) Intercept(interceptors ...Interceptor) {
	c.inters.ItemStat = append(c.inters.ItemStat, interceptors...)
}

// Create returns a builder for creating a ItemStat entity.
func (c *ItemStatClient) Create() *ItemStatCreate {
	mutation := newItemStatMutation(c.config, OpCreate)
	return &ItemStatCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ItemStat entities.
func (c *ItemStatClient) CreateBulk(builders ...*ItemStatCreate) *ItemStatCreateBulk {
	return &ItemStatCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ItemStatClient) MapCreateBulk(slice any, setFunc func(*ItemStatCreate, int)) *ItemStatCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ItemStatCreateBulk{err: fmt.Errorf("calling to ItemStatClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ItemStatCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ItemStatCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ItemStat.
func (c *ItemStatClient) Update() *ItemStatUpdate {
	mutation := newItemStatMutation(c.config, OpUpdate)
	return &ItemStatUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ItemStatClient) UpdateOne(_m *ItemStat) *ItemStatUpdateOne {
	mutation := newItemStatMutation(c.config, OpUpdateOne, withItemStat(_m))
	return &ItemStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ItemStatClient) UpdateOneID(id int) *ItemStatUpdateOne {
	mutation := newItemStatMutation(c.config, OpUpdateOne, withItemStatID(id))
	return &ItemStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ItemStat.
func (c *ItemStatClient) Delete() *ItemStatDelete {
	mutation := newItemStatMutation(c.config, OpDelete)
	return &ItemStatDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ItemStatClient) DeleteOne(_m *ItemStat) *ItemStatDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ItemStatClient) DeleteOneID(id int) *ItemStatDeleteOne {
	builder := c.Delete().Where(itemstat.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ItemStatDeleteOne{builder}
}

// Query returns a query builder for ItemStat.
func (c *ItemStatClient) Query() *ItemStatQuery {
	return &ItemStatQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeItemStat},
		inters: c.Interceptors(),
	}
}

// Get returns a ItemStat entity by its id.
func (c *ItemStatClient) Get(ctx context.Context, id int) (*ItemStat, error) {
	return c.Query().Where(itemstat.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ItemStatClient) GetX(ctx context.Context, id int) *ItemStat {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ItemStatClient) Hooks() []Hook {
	return c.hooks.ItemStat
}

// Interceptors returns the client interceptors.
func (c *ItemStatClient) Interceptors() []Interceptor {
	return c.inters.ItemStat
}

func (c *ItemStatClient) mutate(ctx context.Context, m *ItemStatMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ItemStatCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ItemStatUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ItemStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ItemStatDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ItemStat mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// VocabItemClient is a client for the VocabItem schema.
type VocabItemClient struct {
	config
}

// NewVocabItemClient returns a client for the VocabItem from the given config.
func NewVocabItemClient(c config) *VocabItemClient {
	return &VocabItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vocabitem.Hooks(f(g(h())))`.
func (c *VocabItemClient) Use(hooks ...Hook) {
	c.hooks.VocabItem = append(c.hooks.VocabItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vocabitem.Intercept(f(g(h())))`.
func (c *VocabItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.VocabItem = append(c.inters.VocabItem, interceptors...)
}

// Create returns a builder for creating a VocabItem entity.
func (c *VocabItemClient) Create() *VocabItemCreate {
	mutation := newVocabItemMutation(c.config, OpCreate)
	return &VocabItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VocabItem entities.
func (c *VocabItemClient) CreateBulk(builders ...*VocabItemCreate) *VocabItemCreateBulk {
	return &VocabItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VocabItemClient) MapCreateBulk(slice any, setFunc func(*VocabItemCreate, int)) *VocabItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VocabItemCreateBulk{err: fmt.Errorf("calling to VocabItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VocabItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VocabItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VocabItem.
func (c *VocabItemClient) Update() *VocabItemUpdate {
	mutation := newVocabItemMutation(c.config, OpUpdate)
	return &VocabItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VocabItemClient) UpdateOne(_m *VocabItem) *VocabItemUpdateOne {
	mutation := newVocabItemMutation(c.config, OpUpdateOne, withVocabItem(_m))
	return &VocabItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VocabItemClient) UpdateOneID(id int) *VocabItemUpdateOne {
	mutation := newVocabItemMutation(c.config, OpUpdateOne, withVocabItemID(id))
	return &VocabItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VocabItem.
func (c *VocabItemClient) Delete() *VocabItemDelete {
	mutation := newVocabItemMutation(c.config, OpDelete)
	return &VocabItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VocabItemClient) DeleteOne(_m *VocabItem) *VocabItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VocabItemClient) DeleteOneID(id int) *VocabItemDeleteOne {
	builder := c.Delete().Where(vocabitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VocabItemDeleteOne{builder}
}

// Query returns a query builder for VocabItem.
func (c *VocabItemClient) Query() *VocabItemQuery {
	return &VocabItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVocabItem},
		inters: c.Interceptors(),
	}
}

// Get returns a VocabItem entity by its id.
func (c *VocabItemClient) Get(ctx context.Context, id int) (*VocabItem, error) {
	return c.Query().Where(vocabitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VocabItemClient) GetX(ctx context.Context, id int) *VocabItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VocabItemClient) Hooks() []Hook {
	return c.hooks.VocabItem
}

// Interceptors returns the client interceptors.
func (c *VocabItemClient) Interceptors() []Interceptor {
	return c.inters.VocabItem
}

func (c *VocabItemClient) mutate(ctx context.Context, m *VocabItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VocabItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VocabItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VocabItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VocabItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VocabItem mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Attempt, CycleCounter, FamilyWord, ItemStat, LLMRequestEvent,
		VocabItem []ent.Hook
	}
	inters struct {
		Attempt, CycleCounter, FamilyWord, ItemStat, LLMRequestEvent,
		VocabItem []ent.Interceptor
	}
)
