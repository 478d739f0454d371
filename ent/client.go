// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/edforge/qconvert/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/edforge/qconvert/ent/conversionrun"
	"github.com/edforge/qconvert/ent/fileresult"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ConversionRun is the client for interacting with the ConversionRun builders.
	ConversionRun *ConversionRunClient
	// FileResult is the client for interacting with the FileResult builders.
	FileResult *FileResultClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ConversionRun = NewConversionRunClient(c.config)
	c.FileResult = NewFileResultClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		ConversionRun: NewConversionRunClient(cfg),
		FileResult:    NewFileResultClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		ConversionRun: NewConversionRunClient(cfg),
		FileResult:    NewFileResultClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ConversionRun.
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
	c.ConversionRun.Use(hooks...)
	c.FileResult.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ConversionRun.Intercept(interceptors...)
	c.FileResult.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ConversionRunMutation:
		return c.ConversionRun.mutate(ctx, m)
	case *FileResultMutation:
		return c.FileResult.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ConversionRunClient is a client for the ConversionRun schema.
type ConversionRunClient struct {
	config
}

// NewConversionRunClient returns a client for the ConversionRun from the given config.
func NewConversionRunClient(c config) *ConversionRunClient {
	return &ConversionRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversionrun.Hooks(f(g(h())))`.
func (c *ConversionRunClient) Use(hooks ...Hook) {
	c.hooks.ConversionRun = append(c.hooks.ConversionRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversionrun.Intercept(f(g(h())))`.
func (c *ConversionRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConversionRun = append(c.inters.ConversionRun, interceptors...)
}

// Create returns a builder for creating a ConversionRun entity.
func (c *ConversionRunClient) Create() *ConversionRunCreate {
	mutation := newConversionRunMutation(c.config, OpCreate)
	return &ConversionRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConversionRun entities.
func (c *ConversionRunClient) CreateBulk(builders ...*ConversionRunCreate) *ConversionRunCreateBulk {
	return &ConversionRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversionRunClient) MapCreateBulk(slice any, setFunc func(*ConversionRunCreate, int)) *ConversionRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversionRunCreateBulk{err: fmt.Errorf("calling to ConversionRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversionRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversionRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConversionRun.
func (c *ConversionRunClient) Update() *ConversionRunUpdate {
	mutation := newConversionRunMutation(c.config, OpUpdate)
	return &ConversionRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversionRunClient) UpdateOne(_m *ConversionRun) *ConversionRunUpdateOne {
	mutation := newConversionRunMutation(c.config, OpUpdateOne, withConversionRun(_m))
	return &ConversionRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversionRunClient) UpdateOneID(id int) *ConversionRunUpdateOne {
	mutation := newConversionRunMutation(c.config, OpUpdateOne, withConversionRunID(id))
	return &ConversionRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConversionRun.
func (c *ConversionRunClient) Delete() *ConversionRunDelete {
	mutation := newConversionRunMutation(c.config, OpDelete)
	return &ConversionRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversionRunClient) DeleteOne(_m *ConversionRun) *ConversionRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversionRunClient) DeleteOneID(id int) *ConversionRunDeleteOne {
	builder := c.Delete().Where(conversionrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversionRunDeleteOne{builder}
}

// Query returns a query builder for ConversionRun.
func (c *ConversionRunClient) Query() *ConversionRunQuery {
	return &ConversionRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversionRun},
		inters: c.Interceptors(),
	}
}

// Get returns a ConversionRun entity by its id.
func (c *ConversionRunClient) Get(ctx context.Context, id int) (*ConversionRun, error) {
	return c.Query().Where(conversionrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversionRunClient) GetX(ctx context.Context, id int) *ConversionRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConversionRunClient) Hooks() []Hook {
	return c.hooks.ConversionRun
}

// Interceptors returns the client interceptors.
func (c *ConversionRunClient) Interceptors() []Interceptor {
	return c.inters.ConversionRun
}

func (c *ConversionRunClient) mutate(ctx context.Context, m *ConversionRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversionRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversionRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversionRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversionRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConversionRun mutation op: %q", m.Op())
	}
}

// FileResultClient is a client for the FileResult schema.
type FileResultClient struct {
	config
}

// NewFileResultClient returns a client for the FileResult from the given config.
func NewFileResultClient(c config) *FileResultClient {
	return &FileResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fileresult.Hooks(f(g(h())))`.
func (c *FileResultClient) Use(hooks ...Hook) {
	c.hooks.FileResult = append(c.hooks.FileResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fileresult.Intercept(f(g(h())))`.
func (c *FileResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.FileResult = append(c.inters.FileResult, interceptors...)
}

// Create returns a builder for creating a FileResult entity.
func (c *FileResultClient) Create() *FileResultCreate {
	mutation := newFileResultMutation(c.config, OpCreate)
	return &FileResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FileResult entities.
func (c *FileResultClient) CreateBulk(builders ...*FileResultCreate) *FileResultCreateBulk {
	return &FileResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FileResultClient) MapCreateBulk(slice any, setFunc func(*FileResultCreate, int)) *FileResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FileResultCreateBulk{err: fmt.Errorf("calling to FileResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FileResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FileResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FileResult.
func (c *FileResultClient) Update() *FileResultUpdate {
	mutation := newFileResultMutation(c.config, OpUpdate)
	return &FileResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FileResultClient) UpdateOne(_m *FileResult) *FileResultUpdateOne {
	mutation := newFileResultMutation(c.config, OpUpdateOne, withFileResult(_m))
	return &FileResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FileResultClient) UpdateOneID(id int) *FileResultUpdateOne {
	mutation := newFileResultMutation(c.config, OpUpdateOne, withFileResultID(id))
	return &FileResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FileResult.
func (c *FileResultClient) Delete() *FileResultDelete {
	mutation := newFileResultMutation(c.config, OpDelete)
	return &FileResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FileResultClient) DeleteOne(_m *FileResult) *FileResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FileResultClient) DeleteOneID(id int) *FileResultDeleteOne {
	builder := c.Delete().Where(fileresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FileResultDeleteOne{builder}
}

// Query returns a query builder for FileResult.
func (c *FileResultClient) Query() *FileResultQuery {
	return &FileResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFileResult},
		inters: c.Interceptors(),
	}
}

// Get returns a FileResult entity by its id.
func (c *FileResultClient) Get(ctx context.Context, id int) (*FileResult, error) {
	return c.Query().Where(fileresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FileResultClient) GetX(ctx context.Context, id int) *FileResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FileResultClient) Hooks() []Hook {
	return c.hooks.FileResult
}

// Interceptors returns the client interceptors.
func (c *FileResultClient) Interceptors() []Interceptor {
	return c.inters.FileResult
}

func (c *FileResultClient) mutate(ctx context.Context, m *FileResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FileResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FileResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FileResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FileResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FileResult mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ConversionRun, FileResult []ent.Hook
	}
	inters struct {
		ConversionRun, FileResult []ent.Interceptor
	}
)
