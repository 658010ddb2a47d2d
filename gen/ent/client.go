// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/exporthistory"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/fieldmapping"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/invoice"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/invoiceitem"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/profile"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/subscription"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/subscriptiontier"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ExportHistory is the client for interacting with the ExportHistory builders.
	ExportHistory *ExportHistoryClient
	// FieldMapping is the client for interacting with the FieldMapping builders.
	FieldMapping *FieldMappingClient
	// Invoice is the client for interacting with the Invoice builders.
	Invoice *InvoiceClient
	// InvoiceItem is the client for interacting with the InvoiceItem builders.
	InvoiceItem *InvoiceItemClient
	// Profile is the client for interacting with the Profile builders.
	Profile *ProfileClient
	// Subscription is the client for interacting with the Subscription builders.
	Subscription *SubscriptionClient
	// SubscriptionTier is the client for interacting with the SubscriptionTier builders.
	SubscriptionTier *SubscriptionTierClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ExportHistory = NewExportHistoryClient(c.config)
	c.FieldMapping = NewFieldMappingClient(c.config)
	c.Invoice = NewInvoiceClient(c.config)
	c.InvoiceItem = NewInvoiceItemClient(c.config)
	c.Profile = NewProfileClient(c.config)
	c.Subscription = NewSubscriptionClient(c.config)
	c.SubscriptionTier = NewSubscriptionTierClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		ExportHistory:    NewExportHistoryClient(cfg),
		FieldMapping:     NewFieldMappingClient(cfg),
		Invoice:          NewInvoiceClient(cfg),
		InvoiceItem:      NewInvoiceItemClient(cfg),
		Profile:          NewProfileClient(cfg),
		Subscription:     NewSubscriptionClient(cfg),
		SubscriptionTier: NewSubscriptionTierClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		ExportHistory:    NewExportHistoryClient(cfg),
		FieldMapping:     NewFieldMappingClient(cfg),
		Invoice:          NewInvoiceClient(cfg),
		InvoiceItem:      NewInvoiceItemClient(cfg),
		Profile:          NewProfileClient(cfg),
		Subscription:     NewSubscriptionClient(cfg),
		SubscriptionTier: NewSubscriptionTierClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ExportHistory.
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
		c.ExportHistory, c.FieldMapping, c.Invoice, c.InvoiceItem, c.Profile,
		c.Subscription, c.SubscriptionTier,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ExportHistory, c.FieldMapping, c.Invoice, c.InvoiceItem, c.Profile,
		c.Subscription, c.SubscriptionTier,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExportHistoryMutation:
		return c.ExportHistory.mutate(ctx, m)
	case *FieldMappingMutation:
		return c.FieldMapping.mutate(ctx, m)
	case *InvoiceMutation:
		return c.Invoice.mutate(ctx, m)
	case *InvoiceItemMutation:
		return c.InvoiceItem.mutate(ctx, m)
	case *ProfileMutation:
		return c.Profile.mutate(ctx, m)
	case *SubscriptionMutation:
		return c.Subscription.mutate(ctx, m)
	case *SubscriptionTierMutation:
		return c.SubscriptionTier.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExportHistoryClient is a client for the ExportHistory schema.
type ExportHistoryClient struct {
	config
}

// NewExportHistoryClient returns a client for the ExportHistory from the given config.
func NewExportHistoryClient(c config) *ExportHistoryClient {
	return &ExportHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `exporthistory.Hooks(f(g(h())))`.
func (c *ExportHistoryClient) Use(hooks ...Hook) {
	c.hooks.ExportHistory = append(c.hooks.ExportHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `exporthistory.Intercept(f(g(h())))`.
func (c *ExportHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExportHistory = append(c.inters.ExportHistory, interceptors...)
}

// Create returns a builder for creating a ExportHistory entity.
func (c *ExportHistoryClient) Create() *ExportHistoryCreate {
	mutation := newExportHistoryMutation(c.config, OpCreate)
	return &ExportHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExportHistory entities.
func (c *ExportHistoryClient) CreateBulk(builders ...*ExportHistoryCreate) *ExportHistoryCreateBulk {
	return &ExportHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExportHistoryClient) MapCreateBulk(slice any, setFunc func(*ExportHistoryCreate, int)) *ExportHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExportHistoryCreateBulk{err: fmt.Errorf("calling to ExportHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExportHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExportHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExportHistory.
func (c *ExportHistoryClient) Update() *ExportHistoryUpdate {
	mutation := newExportHistoryMutation(c.config, OpUpdate)
	return &ExportHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExportHistoryClient) UpdateOne(_m *ExportHistory) *ExportHistoryUpdateOne {
	mutation := newExportHistoryMutation(c.config, OpUpdateOne, withExportHistory(_m))
	return &ExportHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExportHistoryClient) UpdateOneID(id uuid.UUID) *ExportHistoryUpdateOne {
	mutation := newExportHistoryMutation(c.config, OpUpdateOne, withExportHistoryID(id))
	return &ExportHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExportHistory.
func (c *ExportHistoryClient) Delete() *ExportHistoryDelete {
	mutation := newExportHistoryMutation(c.config, OpDelete)
	return &ExportHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExportHistoryClient) DeleteOne(_m *ExportHistory) *ExportHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExportHistoryClient) DeleteOneID(id uuid.UUID) *ExportHistoryDeleteOne {
	builder := c.Delete().Where(exporthistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExportHistoryDeleteOne{builder}
}

// Query returns a query builder for ExportHistory.
func (c *ExportHistoryClient) Query() *ExportHistoryQuery {
	return &ExportHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExportHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a ExportHistory entity by its id.
func (c *ExportHistoryClient) Get(ctx context.Context, id uuid.UUID) (*ExportHistory, error) {
	return c.Query().Where(exporthistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExportHistoryClient) GetX(ctx context.Context, id uuid.UUID) *ExportHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProfile queries the profile edge of a ExportHistory.
func (c *ExportHistoryClient) QueryProfile(_m *ExportHistory) *ProfileQuery {
	query := (&ProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(exporthistory.Table, exporthistory.FieldID, id),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, exporthistory.ProfileTable, exporthistory.ProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExportHistoryClient) Hooks() []Hook {
	return c.hooks.ExportHistory
}

// Interceptors returns the client interceptors.
func (c *ExportHistoryClient) Interceptors() []Interceptor {
	return c.inters.ExportHistory
}

func (c *ExportHistoryClient) mutate(ctx context.Context, m *ExportHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExportHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExportHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExportHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExportHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExportHistory mutation op: %q", m.Op())
	}
}

// FieldMappingClient is a client for the FieldMapping schema.
type FieldMappingClient struct {
	config
}

// NewFieldMappingClient returns a client for the FieldMapping from the given config.
func NewFieldMappingClient(c config) *FieldMappingClient {
	return &FieldMappingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fieldmapping.Hooks(f(g(h())))`.
func (c *FieldMappingClient) Use(hooks ...Hook) {
	c.hooks.FieldMapping = append(c.hooks.FieldMapping, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fieldmapping.Intercept(f(g(h())))`.
func (c *FieldMappingClient) Intercept(interceptors ...Interceptor) {
	c.inters.FieldMapping = append(c.inters.FieldMapping, interceptors...)
}

// Create returns a builder for creating a FieldMapping entity.
func (c *FieldMappingClient) Create() *FieldMappingCreate {
	mutation := newFieldMappingMutation(c.config, OpCreate)
	return &FieldMappingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FieldMapping entities.
func (c *FieldMappingClient) CreateBulk(builders ...*FieldMappingCreate) *FieldMappingCreateBulk {
	return &FieldMappingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FieldMappingClient) MapCreateBulk(slice any, setFunc func(*FieldMappingCreate, int)) *FieldMappingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FieldMappingCreateBulk{err: fmt.Errorf("calling to FieldMappingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FieldMappingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FieldMappingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FieldMapping.
func (c *FieldMappingClient) Update() *FieldMappingUpdate {
	mutation := newFieldMappingMutation(c.config, OpUpdate)
	return &FieldMappingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FieldMappingClient) UpdateOne(_m *FieldMapping) *FieldMappingUpdateOne {
	mutation := newFieldMappingMutation(c.config, OpUpdateOne, withFieldMapping(_m))
	return &FieldMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FieldMappingClient) UpdateOneID(id uuid.UUID) *FieldMappingUpdateOne {
	mutation := newFieldMappingMutation(c.config, OpUpdateOne, withFieldMappingID(id))
	return &FieldMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FieldMapping.
func (c *FieldMappingClient) Delete() *FieldMappingDelete {
	mutation := newFieldMappingMutation(c.config, OpDelete)
	return &FieldMappingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FieldMappingClient) DeleteOne(_m *FieldMapping) *FieldMappingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FieldMappingClient) DeleteOneID(id uuid.UUID) *FieldMappingDeleteOne {
	builder := c.Delete().Where(fieldmapping.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FieldMappingDeleteOne{builder}
}

// Query returns a query builder for FieldMapping.
func (c *FieldMappingClient) Query() *FieldMappingQuery {
	return &FieldMappingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFieldMapping},
		inters: c.Interceptors(),
	}
}

// Get returns a FieldMapping entity by its id.
func (c *FieldMappingClient) Get(ctx context.Context, id uuid.UUID) (*FieldMapping, error) {
	return c.Query().Where(fieldmapping.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FieldMappingClient) GetX(ctx context.Context, id uuid.UUID) *FieldMapping {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProfile queries the profile edge of a FieldMapping.
func (c *FieldMappingClient) QueryProfile(_m *FieldMapping) *ProfileQuery {
	query := (&ProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fieldmapping.Table, fieldmapping.FieldID, id),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, fieldmapping.ProfileTable, fieldmapping.ProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FieldMappingClient) Hooks() []Hook {
	return c.hooks.FieldMapping
}

// Interceptors returns the client interceptors.
func (c *FieldMappingClient) Interceptors() []Interceptor {
	return c.inters.FieldMapping
}

func (c *FieldMappingClient) mutate(ctx context.Context, m *FieldMappingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FieldMappingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FieldMappingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FieldMappingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FieldMappingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FieldMapping mutation op: %q", m.Op())
	}
}

// InvoiceClient is a client for the Invoice schema.
type InvoiceClient struct {
	config
}

// NewInvoiceClient returns a client for the Invoice from the given config.
func NewInvoiceClient(c config) *InvoiceClient {
	return &InvoiceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `invoice.Hooks(f(g(h())))`.
func (c *InvoiceClient) Use(hooks ...Hook) {
	c.hooks.Invoice = append(c.hooks.Invoice, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `invoice.Intercept(f(g(h())))`.
func (c *InvoiceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Invoice = append(c.inters.Invoice, interceptors...)
}

// Create returns a builder for creating a Invoice entity.
func (c *InvoiceClient) Create() *InvoiceCreate {
	mutation := newInvoiceMutation(c.config, OpCreate)
	return &InvoiceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Invoice entities.
func (c *InvoiceClient) CreateBulk(builders ...*InvoiceCreate) *InvoiceCreateBulk {
	return &InvoiceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InvoiceClient) MapCreateBulk(slice any, setFunc func(*InvoiceCreate, int)) *InvoiceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InvoiceCreateBulk{err: fmt.Errorf("calling to InvoiceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InvoiceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InvoiceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Invoice.
func (c *InvoiceClient) Update() *InvoiceUpdate {
	mutation := newInvoiceMutation(c.config, OpUpdate)
	return &InvoiceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InvoiceClient) UpdateOne(_m *Invoice) *InvoiceUpdateOne {
	mutation := newInvoiceMutation(c.config, OpUpdateOne, withInvoice(_m))
	return &InvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InvoiceClient) UpdateOneID(id uuid.UUID) *InvoiceUpdateOne {
	mutation := newInvoiceMutation(c.config, OpUpdateOne, withInvoiceID(id))
	return &InvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Invoice.
func (c *InvoiceClient) Delete() *InvoiceDelete {
	mutation := newInvoiceMutation(c.config, OpDelete)
	return &InvoiceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InvoiceClient) DeleteOne(_m *Invoice) *InvoiceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InvoiceClient) DeleteOneID(id uuid.UUID) *InvoiceDeleteOne {
	builder := c.Delete().Where(invoice.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InvoiceDeleteOne{builder}
}

// Query returns a query builder for Invoice.
func (c *InvoiceClient) Query() *InvoiceQuery {
	return &InvoiceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInvoice},
		inters: c.Interceptors(),
	}
}

// Get returns a Invoice entity by its id.
func (c *InvoiceClient) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return c.Query().Where(invoice.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InvoiceClient) GetX(ctx context.Context, id uuid.UUID) *Invoice {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProfile queries the profile edge of a Invoice.
func (c *InvoiceClient) QueryProfile(_m *Invoice) *ProfileQuery {
	query := (&ProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(invoice.Table, invoice.FieldID, id),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, invoice.ProfileTable, invoice.ProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryItems queries the items edge of a Invoice.
func (c *InvoiceClient) QueryItems(_m *Invoice) *InvoiceItemQuery {
	query := (&InvoiceItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(invoice.Table, invoice.FieldID, id),
			sqlgraph.To(invoiceitem.Table, invoiceitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, invoice.ItemsTable, invoice.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InvoiceClient) Hooks() []Hook {
	return c.hooks.Invoice
}

// Interceptors returns the client interceptors.
func (c *InvoiceClient) Interceptors() []Interceptor {
	return c.inters.Invoice
}

func (c *InvoiceClient) mutate(ctx context.Context, m *InvoiceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InvoiceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InvoiceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InvoiceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Invoice mutation op: %q", m.Op())
	}
}

// InvoiceItemClient is a client for the InvoiceItem schema.
type InvoiceItemClient struct {
	config
}

// NewInvoiceItemClient returns a client for the InvoiceItem from the given config.
func NewInvoiceItemClient(c config) *InvoiceItemClient {
	return &InvoiceItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `invoiceitem.Hooks(f(g(h())))`.
func (c *InvoiceItemClient) Use(hooks ...Hook) {
	c.hooks.InvoiceItem = append(c.hooks.InvoiceItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `invoiceitem.Intercept(f(g(h())))`.
func (c *InvoiceItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.InvoiceItem = append(c.inters.InvoiceItem, interceptors...)
}

// Create returns a builder for creating a InvoiceItem entity.
func (c *InvoiceItemClient) Create() *InvoiceItemCreate {
	mutation := newInvoiceItemMutation(c.config, OpCreate)
	return &InvoiceItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InvoiceItem entities.
func (c *InvoiceItemClient) CreateBulk(builders ...*InvoiceItemCreate) *InvoiceItemCreateBulk {
	return &InvoiceItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InvoiceItemClient) MapCreateBulk(slice any, setFunc func(*InvoiceItemCreate, int)) *InvoiceItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InvoiceItemCreateBulk{err: fmt.Errorf("calling to InvoiceItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InvoiceItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InvoiceItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InvoiceItem.
func (c *InvoiceItemClient) Update() *InvoiceItemUpdate {
	mutation := newInvoiceItemMutation(c.config, OpUpdate)
	return &InvoiceItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InvoiceItemClient) UpdateOne(_m *InvoiceItem) *InvoiceItemUpdateOne {
	mutation := newInvoiceItemMutation(c.config, OpUpdateOne, withInvoiceItem(_m))
	return &InvoiceItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InvoiceItemClient) UpdateOneID(id uuid.UUID) *InvoiceItemUpdateOne {
	mutation := newInvoiceItemMutation(c.config, OpUpdateOne, withInvoiceItemID(id))
	return &InvoiceItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InvoiceItem.
func (c *InvoiceItemClient) Delete() *InvoiceItemDelete {
	mutation := newInvoiceItemMutation(c.config, OpDelete)
	return &InvoiceItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InvoiceItemClient) DeleteOne(_m *InvoiceItem) *InvoiceItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InvoiceItemClient) DeleteOneID(id uuid.UUID) *InvoiceItemDeleteOne {
	builder := c.Delete().Where(invoiceitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InvoiceItemDeleteOne{builder}
}

// Query returns a query builder for InvoiceItem.
func (c *InvoiceItemClient) Query() *InvoiceItemQuery {
	return &InvoiceItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInvoiceItem},
		inters: c.Interceptors(),
	}
}

// Get returns a InvoiceItem entity by its id.
func (c *InvoiceItemClient) Get(ctx context.Context, id uuid.UUID) (*InvoiceItem, error) {
	return c.Query().Where(invoiceitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InvoiceItemClient) GetX(ctx context.Context, id uuid.UUID) *InvoiceItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInvoice queries the invoice edge of a InvoiceItem.
func (c *InvoiceItemClient) QueryInvoice(_m *InvoiceItem) *InvoiceQuery {
	query := (&InvoiceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(invoiceitem.Table, invoiceitem.FieldID, id),
			sqlgraph.To(invoice.Table, invoice.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, invoiceitem.InvoiceTable, invoiceitem.InvoiceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InvoiceItemClient) Hooks() []Hook {
	return c.hooks.InvoiceItem
}

// Interceptors returns the client interceptors.
func (c *InvoiceItemClient) Interceptors() []Interceptor {
	return c.inters.InvoiceItem
}

func (c *InvoiceItemClient) mutate(ctx context.Context, m *InvoiceItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InvoiceItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InvoiceItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InvoiceItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InvoiceItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InvoiceItem mutation op: %q", m.Op())
	}
}

// ProfileClient is a client for the Profile schema.
type ProfileClient struct {
	config
}

// NewProfileClient returns a client for the Profile from the given config.
func NewProfileClient(c config) *ProfileClient {
	return &ProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `profile.Hooks(f(g(h())))`.
func (c *ProfileClient) Use(hooks ...Hook) {
	c.hooks.Profile = append(c.hooks.Profile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `profile.Intercept(f(g(h())))`.
func (c *ProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.Profile = append(c.inters.Profile, interceptors...)
}

// Create returns a builder for creating a Profile entity.
func (c *ProfileClient) Create() *ProfileCreate {
	mutation := newProfileMutation(c.config, OpCreate)
	return &ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Profile entities.
func (c *ProfileClient) CreateBulk(builders ...*ProfileCreate) *ProfileCreateBulk {
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProfileClient) MapCreateBulk(slice any, setFunc func(*ProfileCreate, int)) *ProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProfileCreateBulk{err: fmt.Errorf("calling to ProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Profile.
func (c *ProfileClient) Update() *ProfileUpdate {
	mutation := newProfileMutation(c.config, OpUpdate)
	return &ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProfileClient) UpdateOne(_m *Profile) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfile(_m))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProfileClient) UpdateOneID(id uuid.UUID) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfileID(id))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Profile.
func (c *ProfileClient) Delete() *ProfileDelete {
	mutation := newProfileMutation(c.config, OpDelete)
	return &ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProfileClient) DeleteOne(_m *Profile) *ProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProfileClient) DeleteOneID(id uuid.UUID) *ProfileDeleteOne {
	builder := c.Delete().Where(profile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProfileDeleteOne{builder}
}

// Query returns a query builder for Profile.
func (c *ProfileClient) Query() *ProfileQuery {
	return &ProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a Profile entity by its id.
func (c *ProfileClient) Get(ctx context.Context, id uuid.UUID) (*Profile, error) {
	return c.Query().Where(profile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileClient) GetX(ctx context.Context, id uuid.UUID) *Profile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFieldMappings queries the field_mappings edge of a Profile.
func (c *ProfileClient) QueryFieldMappings(_m *Profile) *FieldMappingQuery {
	query := (&FieldMappingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(profile.Table, profile.FieldID, id),
			sqlgraph.To(fieldmapping.Table, fieldmapping.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, profile.FieldMappingsTable, profile.FieldMappingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInvoices queries the invoices edge of a Profile.
func (c *ProfileClient) QueryInvoices(_m *Profile) *InvoiceQuery {
	query := (&InvoiceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(profile.Table, profile.FieldID, id),
			sqlgraph.To(invoice.Table, invoice.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, profile.InvoicesTable, profile.InvoicesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExports queries the exports edge of a Profile.
func (c *ProfileClient) QueryExports(_m *Profile) *ExportHistoryQuery {
	query := (&ExportHistoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(profile.Table, profile.FieldID, id),
			sqlgraph.To(exporthistory.Table, exporthistory.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, profile.ExportsTable, profile.ExportsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySubscriptions queries the subscriptions edge of a Profile.
func (c *ProfileClient) QuerySubscriptions(_m *Profile) *SubscriptionQuery {
	query := (&SubscriptionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(profile.Table, profile.FieldID, id),
			sqlgraph.To(subscription.Table, subscription.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, profile.SubscriptionsTable, profile.SubscriptionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProfileClient) Hooks() []Hook {
	return c.hooks.Profile
}

// Interceptors returns the client interceptors.
func (c *ProfileClient) Interceptors() []Interceptor {
	return c.inters.Profile
}

func (c *ProfileClient) mutate(ctx context.Context, m *ProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Profile mutation op: %q", m.Op())
	}
}

// SubscriptionClient is a client for the Subscription schema.
type SubscriptionClient struct {
	config
}

// NewSubscriptionClient returns a client for the Subscription from the given config.
func NewSubscriptionClient(c config) *SubscriptionClient {
	return &SubscriptionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subscription.Hooks(f(g(h())))`.
func (c *SubscriptionClient) Use(hooks ...Hook) {
	c.hooks.Subscription = append(c.hooks.Subscription, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subscription.Intercept(f(g(h())))`.
func (c *SubscriptionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Subscription = append(c.inters.Subscription, interceptors...)
}

// Create returns a builder for creating a Subscription entity.
func (c *SubscriptionClient) Create() *SubscriptionCreate {
	mutation := newSubscriptionMutation(c.config, OpCreate)
	return &SubscriptionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Subscription entities.
func (c *SubscriptionClient) CreateBulk(builders ...*SubscriptionCreate) *SubscriptionCreateBulk {
	return &SubscriptionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubscriptionClient) MapCreateBulk(slice any, setFunc func(*SubscriptionCreate, int)) *SubscriptionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubscriptionCreateBulk{err: fmt.Errorf("calling to SubscriptionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubscriptionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubscriptionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Subscription.
func (c *SubscriptionClient) Update() *SubscriptionUpdate {
	mutation := newSubscriptionMutation(c.config, OpUpdate)
	return &SubscriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubscriptionClient) UpdateOne(_m *Subscription) *SubscriptionUpdateOne {
	mutation := newSubscriptionMutation(c.config, OpUpdateOne, withSubscription(_m))
	return &SubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubscriptionClient) UpdateOneID(id uuid.UUID) *SubscriptionUpdateOne {
	mutation := newSubscriptionMutation(c.config, OpUpdateOne, withSubscriptionID(id))
	return &SubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Subscription.
func (c *SubscriptionClient) Delete() *SubscriptionDelete {
	mutation := newSubscriptionMutation(c.config, OpDelete)
	return &SubscriptionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubscriptionClient) DeleteOne(_m *Subscription) *SubscriptionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubscriptionClient) DeleteOneID(id uuid.UUID) *SubscriptionDeleteOne {
	builder := c.Delete().Where(subscription.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubscriptionDeleteOne{builder}
}

// Query returns a query builder for Subscription.
func (c *SubscriptionClient) Query() *SubscriptionQuery {
	return &SubscriptionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubscription},
		inters: c.Interceptors(),
	}
}

// Get returns a Subscription entity by its id.
func (c *SubscriptionClient) Get(ctx context.Context, id uuid.UUID) (*Subscription, error) {
	return c.Query().Where(subscription.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubscriptionClient) GetX(ctx context.Context, id uuid.UUID) *Subscription {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProfile queries the profile edge of a Subscription.
func (c *SubscriptionClient) QueryProfile(_m *Subscription) *ProfileQuery {
	query := (&ProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(subscription.Table, subscription.FieldID, id),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, subscription.ProfileTable, subscription.ProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubscriptionClient) Hooks() []Hook {
	return c.hooks.Subscription
}

// Interceptors returns the client interceptors.
func (c *SubscriptionClient) Interceptors() []Interceptor {
	return c.inters.Subscription
}

func (c *SubscriptionClient) mutate(ctx context.Context, m *SubscriptionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubscriptionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubscriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubscriptionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Subscription mutation op: %q", m.Op())
	}
}

// SubscriptionTierClient is a client for the SubscriptionTier schema.
type SubscriptionTierClient struct {
	config
}

// NewSubscriptionTierClient returns a client for the SubscriptionTier from the given config.
func NewSubscriptionTierClient(c config) *SubscriptionTierClient {
	return &SubscriptionTierClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subscriptiontier.Hooks(f(g(h())))`.
func (c *SubscriptionTierClient) Use(hooks ...Hook) {
	c.hooks.SubscriptionTier = append(c.hooks.SubscriptionTier, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subscriptiontier.Intercept(f(g(h())))`.
func (c *SubscriptionTierClient) Intercept(interceptors ...Interceptor) {
	c.inters.SubscriptionTier = append(c.inters.SubscriptionTier, interceptors...)
}

// Create returns a builder for creating a SubscriptionTier entity.
func (c *SubscriptionTierClient) Create() *SubscriptionTierCreate {
	mutation := newSubscriptionTierMutation(c.config, OpCreate)
	return &SubscriptionTierCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SubscriptionTier entities.
func (c *SubscriptionTierClient) CreateBulk(builders ...*SubscriptionTierCreate) *SubscriptionTierCreateBulk {
	return &SubscriptionTierCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubscriptionTierClient) MapCreateBulk(slice any, setFunc func(*SubscriptionTierCreate, int)) *SubscriptionTierCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubscriptionTierCreateBulk{err: fmt.Errorf("calling to SubscriptionTierClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubscriptionTierCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubscriptionTierCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SubscriptionTier.
func (c *SubscriptionTierClient) Update() *SubscriptionTierUpdate {
	mutation := newSubscriptionTierMutation(c.config, OpUpdate)
	return &SubscriptionTierUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubscriptionTierClient) UpdateOne(_m *SubscriptionTier) *SubscriptionTierUpdateOne {
	mutation := newSubscriptionTierMutation(c.config, OpUpdateOne, withSubscriptionTier(_m))
	return &SubscriptionTierUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubscriptionTierClient) UpdateOneID(id uuid.UUID) *SubscriptionTierUpdateOne {
	mutation := newSubscriptionTierMutation(c.config, OpUpdateOne, withSubscriptionTierID(id))
	return &SubscriptionTierUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SubscriptionTier.
func (c *SubscriptionTierClient) Delete() *SubscriptionTierDelete {
	mutation := newSubscriptionTierMutation(c.config, OpDelete)
	return &SubscriptionTierDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubscriptionTierClient) DeleteOne(_m *SubscriptionTier) *SubscriptionTierDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubscriptionTierClient) DeleteOneID(id uuid.UUID) *SubscriptionTierDeleteOne {
	builder := c.Delete().Where(subscriptiontier.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubscriptionTierDeleteOne{builder}
}

// Query returns a query builder for SubscriptionTier.
func (c *SubscriptionTierClient) Query() *SubscriptionTierQuery {
	return &SubscriptionTierQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubscriptionTier},
		inters: c.Interceptors(),
	}
}

// Get returns a SubscriptionTier entity by its id.
func (c *SubscriptionTierClient) Get(ctx context.Context, id uuid.UUID) (*SubscriptionTier, error) {
	return c.Query().Where(subscriptiontier.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubscriptionTierClient) GetX(ctx context.Context, id uuid.UUID) *SubscriptionTier {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SubscriptionTierClient) Hooks() []Hook {
	return c.hooks.SubscriptionTier
}

// Interceptors returns the client interceptors.
func (c *SubscriptionTierClient) Interceptors() []Interceptor {
	return c.inters.SubscriptionTier
}

func (c *SubscriptionTierClient) mutate(ctx context.Context, m *SubscriptionTierMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubscriptionTierCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubscriptionTierUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubscriptionTierUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubscriptionTierDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SubscriptionTier mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ExportHistory, FieldMapping, Invoice, InvoiceItem, Profile, Subscription,
		SubscriptionTier []ent.Hook
	}
	inters struct {
		ExportHistory, FieldMapping, Invoice, InvoiceItem, Profile, Subscription,
		SubscriptionTier []ent.Interceptor
	}
)
