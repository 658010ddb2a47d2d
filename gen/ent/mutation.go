// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/exporthistory"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/fieldmapping"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/invoice"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/invoiceitem"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/predicate"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/profile"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/subscription"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/subscriptiontier"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExportHistory    = "ExportHistory"
	TypeFieldMapping     = "FieldMapping"
	TypeInvoice          = "Invoice"
	TypeInvoiceItem      = "InvoiceItem"
	TypeProfile          = "Profile"
	TypeSubscription     = "Subscription"
	TypeSubscriptionTier = "SubscriptionTier"
)

// ExportHistoryMutation represents an operation that mutates the ExportHistory nodes in the graph.
type ExportHistoryMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	invoice_ids       *[]uuid.UUID
	appendinvoice_ids []uuid.UUID
	export_type       *string
	file_name         *string
	file_size         *int64
	addfile_size      *int64
	file_url          *string
	status            *string
	error_message     *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	profile           *uuid.UUID
	clearedprofile    bool
	done              bool
	oldValue          func(context.Context) (*ExportHistory, error)
	predicates        []predicate.ExportHistory
}

var _ ent.Mutation = (*ExportHistoryMutation)(nil)

// exporthistoryOption allows management of the mutation configuration using functional options.
type exporthistoryOption func(*ExportHistoryMutation)

// newExportHistoryMutation creates new mutation for the ExportHistory entity.
func newExportHistoryMutation(c config, op Op, opts ...exporthistoryOption) *ExportHistoryMutation {
	m := &ExportHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeExportHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExportHistoryID sets the ID field of the mutation.
func withExportHistoryID(id uuid.UUID) exporthistoryOption {
	return func(m *ExportHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *ExportHistory
		)
		m.oldValue = func(ctx context.Context) (*ExportHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExportHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExportHistory sets the old ExportHistory of the mutation.
func withExportHistory(node *ExportHistory) exporthistoryOption {
	return func(m *ExportHistoryMutation) {
		m.oldValue = func(context.Context) (*ExportHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExportHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExportHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExportHistory entities.
func (m *ExportHistoryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExportHistoryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExportHistoryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExportHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfileID sets the "profile_id" field.
func (m *ExportHistoryMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *ExportHistoryMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the ExportHistory entity.
// If the ExportHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportHistoryMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *ExportHistoryMutation) ResetProfileID() {
	m.profile = nil
}

// SetInvoiceIds sets the "invoice_ids" field.
func (m *ExportHistoryMutation) SetInvoiceIds(u []uuid.UUID) {
	m.invoice_ids = &u
	m.appendinvoice_ids = nil
}

// InvoiceIds returns the value of the "invoice_ids" field in the mutation.
func (m *ExportHistoryMutation) InvoiceIds() (r []uuid.UUID, exists bool) {
	v := m.invoice_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceIds returns the old "invoice_ids" field's value of the ExportHistory entity.
// If the ExportHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportHistoryMutation) OldInvoiceIds(ctx context.Context) (v []uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceIds: %w", err)
	}
	return oldValue.InvoiceIds, nil
}

// AppendInvoiceIds adds u to the "invoice_ids" field.
func (m *ExportHistoryMutation) AppendInvoiceIds(u []uuid.UUID) {
	m.appendinvoice_ids = append(m.appendinvoice_ids, u...)
}

// AppendedInvoiceIds returns the list of values that were appended to the "invoice_ids" field in this mutation.
func (m *ExportHistoryMutation) AppendedInvoiceIds() ([]uuid.UUID, bool) {
	if len(m.appendinvoice_ids) == 0 {
		return nil, false
	}
	return m.appendinvoice_ids, true
}

// ResetInvoiceIds resets all changes to the "invoice_ids" field.
func (m *ExportHistoryMutation) ResetInvoiceIds() {
	m.invoice_ids = nil
	m.appendinvoice_ids = nil
}

// SetExportType sets the "export_type" field.
func (m *ExportHistoryMutation) SetExportType(s string) {
	m.export_type = &s
}

// ExportType returns the value of the "export_type" field in the mutation.
func (m *ExportHistoryMutation) ExportType() (r string, exists bool) {
	v := m.export_type
	if v == nil {
		return
	}
	return *v, true
}

// OldExportType returns the old "export_type" field's value of the ExportHistory entity.
// If the ExportHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportHistoryMutation) OldExportType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExportType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExportType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExportType: %w", err)
	}
	return oldValue.ExportType, nil
}

// ResetExportType resets all changes to the "export_type" field.
func (m *ExportHistoryMutation) ResetExportType() {
	m.export_type = nil
}

// SetFileName sets the "file_name" field.
func (m *ExportHistoryMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *ExportHistoryMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the ExportHistory entity.
// If the ExportHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportHistoryMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *ExportHistoryMutation) ResetFileName() {
	m.file_name = nil
}

// SetFileSize sets the "file_size" field.
func (m *ExportHistoryMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *ExportHistoryMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the ExportHistory entity.
// If the ExportHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportHistoryMutation) OldFileSize(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *ExportHistoryMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *ExportHistoryMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ClearFileSize clears the value of the "file_size" field.
func (m *ExportHistoryMutation) ClearFileSize() {
	m.file_size = nil
	m.addfile_size = nil
	m.clearedFields[exporthistory.FieldFileSize] = struct{}{}
}

// FileSizeCleared returns if the "file_size" field was cleared in this mutation.
func (m *ExportHistoryMutation) FileSizeCleared() bool {
	_, ok := m.clearedFields[exporthistory.FieldFileSize]
	return ok
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *ExportHistoryMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
	delete(m.clearedFields, exporthistory.FieldFileSize)
}

// SetFileURL sets the "file_url" field.
func (m *ExportHistoryMutation) SetFileURL(s string) {
	m.file_url = &s
}

// FileURL returns the value of the "file_url" field in the mutation.
func (m *ExportHistoryMutation) FileURL() (r string, exists bool) {
	v := m.file_url
	if v == nil {
		return
	}
	return *v, true
}

// OldFileURL returns the old "file_url" field's value of the ExportHistory entity.
// If the ExportHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportHistoryMutation) OldFileURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileURL: %w", err)
	}
	return oldValue.FileURL, nil
}

// ClearFileURL clears the value of the "file_url" field.
func (m *ExportHistoryMutation) ClearFileURL() {
	m.file_url = nil
	m.clearedFields[exporthistory.FieldFileURL] = struct{}{}
}

// FileURLCleared returns if the "file_url" field was cleared in this mutation.
func (m *ExportHistoryMutation) FileURLCleared() bool {
	_, ok := m.clearedFields[exporthistory.FieldFileURL]
	return ok
}

// ResetFileURL resets all changes to the "file_url" field.
func (m *ExportHistoryMutation) ResetFileURL() {
	m.file_url = nil
	delete(m.clearedFields, exporthistory.FieldFileURL)
}

// SetStatus sets the "status" field.
func (m *ExportHistoryMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExportHistoryMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExportHistory entity.
// If the ExportHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportHistoryMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExportHistoryMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ExportHistoryMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExportHistoryMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExportHistory entity.
// If the ExportHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportHistoryMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
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

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExportHistoryMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[exporthistory.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExportHistoryMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[exporthistory.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExportHistoryMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, exporthistory.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExportHistoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExportHistoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExportHistory entity.
// If the ExportHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportHistoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ExportHistoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExportHistoryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExportHistoryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExportHistory entity.
// If the ExportHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportHistoryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExportHistoryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (m *ExportHistoryMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[exporthistory.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the Profile entity was cleared.
func (m *ExportHistoryMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *ExportHistoryMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *ExportHistoryMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// Where appends a list predicates to the ExportHistoryMutation builder.
func (m *ExportHistoryMutation) Where(ps ...predicate.ExportHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExportHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExportHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExportHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExportHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExportHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExportHistory).
func (m *ExportHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExportHistoryMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.profile != nil {
		fields = append(fields, exporthistory.FieldProfileID)
	}
	if m.invoice_ids != nil {
		fields = append(fields, exporthistory.FieldInvoiceIds)
	}
	if m.export_type != nil {
		fields = append(fields, exporthistory.FieldExportType)
	}
	if m.file_name != nil {
		fields = append(fields, exporthistory.FieldFileName)
	}
	if m.file_size != nil {
		fields = append(fields, exporthistory.FieldFileSize)
	}
	if m.file_url != nil {
		fields = append(fields, exporthistory.FieldFileURL)
	}
	if m.status != nil {
		fields = append(fields, exporthistory.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, exporthistory.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, exporthistory.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, exporthistory.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExportHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case exporthistory.FieldProfileID:
		return m.ProfileID()
	case exporthistory.FieldInvoiceIds:
		return m.InvoiceIds()
	case exporthistory.FieldExportType:
		return m.ExportType()
	case exporthistory.FieldFileName:
		return m.FileName()
	case exporthistory.FieldFileSize:
		return m.FileSize()
	case exporthistory.FieldFileURL:
		return m.FileURL()
	case exporthistory.FieldStatus:
		return m.Status()
	case exporthistory.FieldErrorMessage:
		return m.ErrorMessage()
	case exporthistory.FieldCreatedAt:
		return m.CreatedAt()
	case exporthistory.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExportHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case exporthistory.FieldProfileID:
		return m.OldProfileID(ctx)
	case exporthistory.FieldInvoiceIds:
		return m.OldInvoiceIds(ctx)
	case exporthistory.FieldExportType:
		return m.OldExportType(ctx)
	case exporthistory.FieldFileName:
		return m.OldFileName(ctx)
	case exporthistory.FieldFileSize:
		return m.OldFileSize(ctx)
	case exporthistory.FieldFileURL:
		return m.OldFileURL(ctx)
	case exporthistory.FieldStatus:
		return m.OldStatus(ctx)
	case exporthistory.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case exporthistory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case exporthistory.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExportHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExportHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case exporthistory.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case exporthistory.FieldInvoiceIds:
		v, ok := value.([]uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceIds(v)
		return nil
	case exporthistory.FieldExportType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExportType(v)
		return nil
	case exporthistory.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case exporthistory.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case exporthistory.FieldFileURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileURL(v)
		return nil
	case exporthistory.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case exporthistory.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case exporthistory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case exporthistory.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExportHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExportHistoryMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, exporthistory.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExportHistoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case exporthistory.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExportHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case exporthistory.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown ExportHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExportHistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(exporthistory.FieldFileSize) {
		fields = append(fields, exporthistory.FieldFileSize)
	}
	if m.FieldCleared(exporthistory.FieldFileURL) {
		fields = append(fields, exporthistory.FieldFileURL)
	}
	if m.FieldCleared(exporthistory.FieldErrorMessage) {
		fields = append(fields, exporthistory.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExportHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExportHistoryMutation) ClearField(name string) error {
	switch name {
	case exporthistory.FieldFileSize:
		m.ClearFileSize()
		return nil
	case exporthistory.FieldFileURL:
		m.ClearFileURL()
		return nil
	case exporthistory.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ExportHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExportHistoryMutation) ResetField(name string) error {
	switch name {
	case exporthistory.FieldProfileID:
		m.ResetProfileID()
		return nil
	case exporthistory.FieldInvoiceIds:
		m.ResetInvoiceIds()
		return nil
	case exporthistory.FieldExportType:
		m.ResetExportType()
		return nil
	case exporthistory.FieldFileName:
		m.ResetFileName()
		return nil
	case exporthistory.FieldFileSize:
		m.ResetFileSize()
		return nil
	case exporthistory.FieldFileURL:
		m.ResetFileURL()
		return nil
	case exporthistory.FieldStatus:
		m.ResetStatus()
		return nil
	case exporthistory.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case exporthistory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case exporthistory.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExportHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExportHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.profile != nil {
		edges = append(edges, exporthistory.EdgeProfile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExportHistoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case exporthistory.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExportHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExportHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExportHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedprofile {
		edges = append(edges, exporthistory.EdgeProfile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExportHistoryMutation) EdgeCleared(name string) bool {
	switch name {
	case exporthistory.EdgeProfile:
		return m.clearedprofile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExportHistoryMutation) ClearEdge(name string) error {
	switch name {
	case exporthistory.EdgeProfile:
		m.ClearProfile()
		return nil
	}
	return fmt.Errorf("unknown ExportHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExportHistoryMutation) ResetEdge(name string) error {
	switch name {
	case exporthistory.EdgeProfile:
		m.ResetProfile()
		return nil
	}
	return fmt.Errorf("unknown ExportHistory edge %s", name)
}

// FieldMappingMutation represents an operation that mutates the FieldMapping nodes in the graph.
type FieldMappingMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	field_name         *string
	validation_kind    *string
	validation_pattern *string
	validation_message *string
	required           *bool
	custom_rules       *json.RawMessage
	appendcustom_rules json.RawMessage
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	profile            *uuid.UUID
	clearedprofile     bool
	done               bool
	oldValue           func(context.Context) (*FieldMapping, error)
	predicates         []predicate.FieldMapping
}

var _ ent.Mutation = (*FieldMappingMutation)(nil)

// fieldmappingOption allows management of the mutation configuration using functional options.
type fieldmappingOption func(*FieldMappingMutation)

// newFieldMappingMutation creates new mutation for the FieldMapping entity.
func newFieldMappingMutation(c config, op Op, opts ...fieldmappingOption) *FieldMappingMutation {
	m := &FieldMappingMutation{
		config:        c,
		op:            op,
		typ:           TypeFieldMapping,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFieldMappingID sets the ID field of the mutation.
func withFieldMappingID(id uuid.UUID) fieldmappingOption {
	return func(m *FieldMappingMutation) {
		var (
			err   error
			once  sync.Once
			value *FieldMapping
		)
		m.oldValue = func(ctx context.Context) (*FieldMapping, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FieldMapping.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFieldMapping sets the old FieldMapping of the mutation.
func withFieldMapping(node *FieldMapping) fieldmappingOption {
	return func(m *FieldMappingMutation) {
		m.oldValue = func(context.Context) (*FieldMapping, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FieldMappingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FieldMappingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FieldMapping entities.
func (m *FieldMappingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FieldMappingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FieldMappingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FieldMapping.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfileID sets the "profile_id" field.
func (m *FieldMappingMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *FieldMappingMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the FieldMapping entity.
// If the FieldMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMappingMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *FieldMappingMutation) ResetProfileID() {
	m.profile = nil
}

// SetFieldName sets the "field_name" field.
func (m *FieldMappingMutation) SetFieldName(s string) {
	m.field_name = &s
}

// FieldName returns the value of the "field_name" field in the mutation.
func (m *FieldMappingMutation) FieldName() (r string, exists bool) {
	v := m.field_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldName returns the old "field_name" field's value of the FieldMapping entity.
// If the FieldMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMappingMutation) OldFieldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldName: %w", err)
	}
	return oldValue.FieldName, nil
}

// ResetFieldName resets all changes to the "field_name" field.
func (m *FieldMappingMutation) ResetFieldName() {
	m.field_name = nil
}

// SetValidationKind sets the "validation_kind" field.
func (m *FieldMappingMutation) SetValidationKind(s string) {
	m.validation_kind = &s
}

// ValidationKind returns the value of the "validation_kind" field in the mutation.
func (m *FieldMappingMutation) ValidationKind() (r string, exists bool) {
	v := m.validation_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationKind returns the old "validation_kind" field's value of the FieldMapping entity.
// If the FieldMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMappingMutation) OldValidationKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationKind: %w", err)
	}
	return oldValue.ValidationKind, nil
}

// ClearValidationKind clears the value of the "validation_kind" field.
func (m *FieldMappingMutation) ClearValidationKind() {
	m.validation_kind = nil
	m.clearedFields[fieldmapping.FieldValidationKind] = struct{}{}
}

// ValidationKindCleared returns if the "validation_kind" field was cleared in this mutation.
func (m *FieldMappingMutation) ValidationKindCleared() bool {
	_, ok := m.clearedFields[fieldmapping.FieldValidationKind]
	return ok
}

// ResetValidationKind resets all changes to the "validation_kind" field.
func (m *FieldMappingMutation) ResetValidationKind() {
	m.validation_kind = nil
	delete(m.clearedFields, fieldmapping.FieldValidationKind)
}

// SetValidationPattern sets the "validation_pattern" field.
func (m *FieldMappingMutation) SetValidationPattern(s string) {
	m.validation_pattern = &s
}

// ValidationPattern returns the value of the "validation_pattern" field in the mutation.
func (m *FieldMappingMutation) ValidationPattern() (r string, exists bool) {
	v := m.validation_pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationPattern returns the old "validation_pattern" field's value of the FieldMapping entity.
// If the FieldMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMappingMutation) OldValidationPattern(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationPattern: %w", err)
	}
	return oldValue.ValidationPattern, nil
}

// ClearValidationPattern clears the value of the "validation_pattern" field.
func (m *FieldMappingMutation) ClearValidationPattern() {
	m.validation_pattern = nil
	m.clearedFields[fieldmapping.FieldValidationPattern] = struct{}{}
}

// ValidationPatternCleared returns if the "validation_pattern" field was cleared in this mutation.
func (m *FieldMappingMutation) ValidationPatternCleared() bool {
	_, ok := m.clearedFields[fieldmapping.FieldValidationPattern]
	return ok
}

// ResetValidationPattern resets all changes to the "validation_pattern" field.
func (m *FieldMappingMutation) ResetValidationPattern() {
	m.validation_pattern = nil
	delete(m.clearedFields, fieldmapping.FieldValidationPattern)
}

// SetValidationMessage sets the "validation_message" field.
func (m *FieldMappingMutation) SetValidationMessage(s string) {
	m.validation_message = &s
}

// ValidationMessage returns the value of the "validation_message" field in the mutation.
func (m *FieldMappingMutation) ValidationMessage() (r string, exists bool) {
	v := m.validation_message
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationMessage returns the old "validation_message" field's value of the FieldMapping entity.
// If the FieldMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMappingMutation) OldValidationMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationMessage: %w", err)
	}
	return oldValue.ValidationMessage, nil
}

// ClearValidationMessage clears the value of the "validation_message" field.
func (m *FieldMappingMutation) ClearValidationMessage() {
	m.validation_message = nil
	m.clearedFields[fieldmapping.FieldValidationMessage] = struct{}{}
}

// ValidationMessageCleared returns if the "validation_message" field was cleared in this mutation.
func (m *FieldMappingMutation) ValidationMessageCleared() bool {
	_, ok := m.clearedFields[fieldmapping.FieldValidationMessage]
	return ok
}

// ResetValidationMessage resets all changes to the "validation_message" field.
func (m *FieldMappingMutation) ResetValidationMessage() {
	m.validation_message = nil
	delete(m.clearedFields, fieldmapping.FieldValidationMessage)
}

// SetRequired sets the "required" field.
func (m *FieldMappingMutation) SetRequired(b bool) {
	m.required = &b
}

// Required returns the value of the "required" field in the mutation.
func (m *FieldMappingMutation) Required() (r bool, exists bool) {
	v := m.required
	if v == nil {
		return
	}
	return *v, true
}

// OldRequired returns the old "required" field's value of the FieldMapping entity.
// If the FieldMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMappingMutation) OldRequired(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequired: %w", err)
	}
	return oldValue.Required, nil
}

// ResetRequired resets all changes to the "required" field.
func (m *FieldMappingMutation) ResetRequired() {
	m.required = nil
}

// SetCustomRules sets the "custom_rules" field.
func (m *FieldMappingMutation) SetCustomRules(jm json.RawMessage) {
	m.custom_rules = &jm
	m.appendcustom_rules = nil
}

// CustomRules returns the value of the "custom_rules" field in the mutation.
func (m *FieldMappingMutation) CustomRules() (r json.RawMessage, exists bool) {
	v := m.custom_rules
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomRules returns the old "custom_rules" field's value of the FieldMapping entity.
// If the FieldMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMappingMutation) OldCustomRules(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomRules is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomRules requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomRules: %w", err)
	}
	return oldValue.CustomRules, nil
}

// AppendCustomRules adds jm to the "custom_rules" field.
func (m *FieldMappingMutation) AppendCustomRules(jm json.RawMessage) {
	m.appendcustom_rules = append(m.appendcustom_rules, jm...)
}

// AppendedCustomRules returns the list of values that were appended to the "custom_rules" field in this mutation.
func (m *FieldMappingMutation) AppendedCustomRules() (json.RawMessage, bool) {
	if len(m.appendcustom_rules) == 0 {
		return nil, false
	}
	return m.appendcustom_rules, true
}

// ClearCustomRules clears the value of the "custom_rules" field.
func (m *FieldMappingMutation) ClearCustomRules() {
	m.custom_rules = nil
	m.appendcustom_rules = nil
	m.clearedFields[fieldmapping.FieldCustomRules] = struct{}{}
}

// CustomRulesCleared returns if the "custom_rules" field was cleared in this mutation.
func (m *FieldMappingMutation) CustomRulesCleared() bool {
	_, ok := m.clearedFields[fieldmapping.FieldCustomRules]
	return ok
}

// ResetCustomRules resets all changes to the "custom_rules" field.
func (m *FieldMappingMutation) ResetCustomRules() {
	m.custom_rules = nil
	m.appendcustom_rules = nil
	delete(m.clearedFields, fieldmapping.FieldCustomRules)
}

// SetCreatedAt sets the "created_at" field.
func (m *FieldMappingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FieldMappingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FieldMapping entity.
// If the FieldMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMappingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *FieldMappingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FieldMappingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FieldMappingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FieldMapping entity.
// If the FieldMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldMappingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FieldMappingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (m *FieldMappingMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[fieldmapping.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the Profile entity was cleared.
func (m *FieldMappingMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *FieldMappingMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *FieldMappingMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// Where appends a list predicates to the FieldMappingMutation builder.
func (m *FieldMappingMutation) Where(ps ...predicate.FieldMapping) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FieldMappingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FieldMappingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FieldMapping, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FieldMappingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FieldMappingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FieldMapping).
func (m *FieldMappingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FieldMappingMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.profile != nil {
		fields = append(fields, fieldmapping.FieldProfileID)
	}
	if m.field_name != nil {
		fields = append(fields, fieldmapping.FieldFieldName)
	}
	if m.validation_kind != nil {
		fields = append(fields, fieldmapping.FieldValidationKind)
	}
	if m.validation_pattern != nil {
		fields = append(fields, fieldmapping.FieldValidationPattern)
	}
	if m.validation_message != nil {
		fields = append(fields, fieldmapping.FieldValidationMessage)
	}
	if m.required != nil {
		fields = append(fields, fieldmapping.FieldRequired)
	}
	if m.custom_rules != nil {
		fields = append(fields, fieldmapping.FieldCustomRules)
	}
	if m.created_at != nil {
		fields = append(fields, fieldmapping.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, fieldmapping.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FieldMappingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fieldmapping.FieldProfileID:
		return m.ProfileID()
	case fieldmapping.FieldFieldName:
		return m.FieldName()
	case fieldmapping.FieldValidationKind:
		return m.ValidationKind()
	case fieldmapping.FieldValidationPattern:
		return m.ValidationPattern()
	case fieldmapping.FieldValidationMessage:
		return m.ValidationMessage()
	case fieldmapping.FieldRequired:
		return m.Required()
	case fieldmapping.FieldCustomRules:
		return m.CustomRules()
	case fieldmapping.FieldCreatedAt:
		return m.CreatedAt()
	case fieldmapping.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FieldMappingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fieldmapping.FieldProfileID:
		return m.OldProfileID(ctx)
	case fieldmapping.FieldFieldName:
		return m.OldFieldName(ctx)
	case fieldmapping.FieldValidationKind:
		return m.OldValidationKind(ctx)
	case fieldmapping.FieldValidationPattern:
		return m.OldValidationPattern(ctx)
	case fieldmapping.FieldValidationMessage:
		return m.OldValidationMessage(ctx)
	case fieldmapping.FieldRequired:
		return m.OldRequired(ctx)
	case fieldmapping.FieldCustomRules:
		return m.OldCustomRules(ctx)
	case fieldmapping.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case fieldmapping.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FieldMapping field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FieldMappingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fieldmapping.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case fieldmapping.FieldFieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldName(v)
		return nil
	case fieldmapping.FieldValidationKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationKind(v)
		return nil
	case fieldmapping.FieldValidationPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationPattern(v)
		return nil
	case fieldmapping.FieldValidationMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationMessage(v)
		return nil
	case fieldmapping.FieldRequired:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequired(v)
		return nil
	case fieldmapping.FieldCustomRules:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomRules(v)
		return nil
	case fieldmapping.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case fieldmapping.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FieldMapping field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FieldMappingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FieldMappingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FieldMappingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FieldMapping numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FieldMappingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fieldmapping.FieldValidationKind) {
		fields = append(fields, fieldmapping.FieldValidationKind)
	}
	if m.FieldCleared(fieldmapping.FieldValidationPattern) {
		fields = append(fields, fieldmapping.FieldValidationPattern)
	}
	if m.FieldCleared(fieldmapping.FieldValidationMessage) {
		fields = append(fields, fieldmapping.FieldValidationMessage)
	}
	if m.FieldCleared(fieldmapping.FieldCustomRules) {
		fields = append(fields, fieldmapping.FieldCustomRules)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FieldMappingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FieldMappingMutation) ClearField(name string) error {
	switch name {
	case fieldmapping.FieldValidationKind:
		m.ClearValidationKind()
		return nil
	case fieldmapping.FieldValidationPattern:
		m.ClearValidationPattern()
		return nil
	case fieldmapping.FieldValidationMessage:
		m.ClearValidationMessage()
		return nil
	case fieldmapping.FieldCustomRules:
		m.ClearCustomRules()
		return nil
	}
	return fmt.Errorf("unknown FieldMapping nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FieldMappingMutation) ResetField(name string) error {
	switch name {
	case fieldmapping.FieldProfileID:
		m.ResetProfileID()
		return nil
	case fieldmapping.FieldFieldName:
		m.ResetFieldName()
		return nil
	case fieldmapping.FieldValidationKind:
		m.ResetValidationKind()
		return nil
	case fieldmapping.FieldValidationPattern:
		m.ResetValidationPattern()
		return nil
	case fieldmapping.FieldValidationMessage:
		m.ResetValidationMessage()
		return nil
	case fieldmapping.FieldRequired:
		m.ResetRequired()
		return nil
	case fieldmapping.FieldCustomRules:
		m.ResetCustomRules()
		return nil
	case fieldmapping.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case fieldmapping.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown FieldMapping field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FieldMappingMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.profile != nil {
		edges = append(edges, fieldmapping.EdgeProfile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FieldMappingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case fieldmapping.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FieldMappingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FieldMappingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FieldMappingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedprofile {
		edges = append(edges, fieldmapping.EdgeProfile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FieldMappingMutation) EdgeCleared(name string) bool {
	switch name {
	case fieldmapping.EdgeProfile:
		return m.clearedprofile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FieldMappingMutation) ClearEdge(name string) error {
	switch name {
	case fieldmapping.EdgeProfile:
		m.ClearProfile()
		return nil
	}
	return fmt.Errorf("unknown FieldMapping unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FieldMappingMutation) ResetEdge(name string) error {
	switch name {
	case fieldmapping.EdgeProfile:
		m.ResetProfile()
		return nil
	}
	return fmt.Errorf("unknown FieldMapping edge %s", name)
}

// InvoiceMutation represents an operation that mutates the Invoice nodes in the graph.
type InvoiceMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	vendor_name           *string
	invoice_number        *string
	invoice_date          *time.Time
	due_date              *time.Time
	total_amount          *float64
	addtotal_amount       *float64
	tax_amount            *float64
	addtax_amount         *float64
	subtotal              *float64
	addsubtotal           *float64
	discount_amount       *float64
	adddiscount_amount    *float64
	additional_fees       *float64
	addadditional_fees    *float64
	currency              *string
	payment_terms         *string
	purchase_order_number *string
	billing_address       *string
	shipping_address      *string
	payment_method        *string
	notes                 *string
	file_url              *string
	status                *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	profile               *uuid.UUID
	clearedprofile        bool
	items                 map[uuid.UUID]struct{}
	removeditems          map[uuid.UUID]struct{}
	cleareditems          bool
	done                  bool
	oldValue              func(context.Context) (*Invoice, error)
	predicates            []predicate.Invoice
}

var _ ent.Mutation = (*InvoiceMutation)(nil)

// invoiceOption allows management of the mutation configuration using functional options.
type invoiceOption func(*InvoiceMutation)

// newInvoiceMutation creates new mutation for the Invoice entity.
func newInvoiceMutation(c config, op Op, opts ...invoiceOption) *InvoiceMutation {
	m := &InvoiceMutation{
		config:        c,
		op:            op,
		typ:           TypeInvoice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvoiceID sets the ID field of the mutation.
func withInvoiceID(id uuid.UUID) invoiceOption {
	return func(m *InvoiceMutation) {
		var (
			err   error
			once  sync.Once
			value *Invoice
		)
		m.oldValue = func(ctx context.Context) (*Invoice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Invoice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvoice sets the old Invoice of the mutation.
func withInvoice(node *Invoice) invoiceOption {
	return func(m *InvoiceMutation) {
		m.oldValue = func(context.Context) (*Invoice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvoiceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvoiceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Invoice entities.
func (m *InvoiceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvoiceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvoiceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Invoice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfileID sets the "profile_id" field.
func (m *InvoiceMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *InvoiceMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *InvoiceMutation) ResetProfileID() {
	m.profile = nil
}

// SetVendorName sets the "vendor_name" field.
func (m *InvoiceMutation) SetVendorName(s string) {
	m.vendor_name = &s
}

// VendorName returns the value of the "vendor_name" field in the mutation.
func (m *InvoiceMutation) VendorName() (r string, exists bool) {
	v := m.vendor_name
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorName returns the old "vendor_name" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldVendorName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorName: %w", err)
	}
	return oldValue.VendorName, nil
}

// ClearVendorName clears the value of the "vendor_name" field.
func (m *InvoiceMutation) ClearVendorName() {
	m.vendor_name = nil
	m.clearedFields[invoice.FieldVendorName] = struct{}{}
}

// VendorNameCleared returns if the "vendor_name" field was cleared in this mutation.
func (m *InvoiceMutation) VendorNameCleared() bool {
	_, ok := m.clearedFields[invoice.FieldVendorName]
	return ok
}

// ResetVendorName resets all changes to the "vendor_name" field.
func (m *InvoiceMutation) ResetVendorName() {
	m.vendor_name = nil
	delete(m.clearedFields, invoice.FieldVendorName)
}

// SetInvoiceNumber sets the "invoice_number" field.
func (m *InvoiceMutation) SetInvoiceNumber(s string) {
	m.invoice_number = &s
}

// InvoiceNumber returns the value of the "invoice_number" field in the mutation.
func (m *InvoiceMutation) InvoiceNumber() (r string, exists bool) {
	v := m.invoice_number
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceNumber returns the old "invoice_number" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldInvoiceNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceNumber: %w", err)
	}
	return oldValue.InvoiceNumber, nil
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (m *InvoiceMutation) ClearInvoiceNumber() {
	m.invoice_number = nil
	m.clearedFields[invoice.FieldInvoiceNumber] = struct{}{}
}

// InvoiceNumberCleared returns if the "invoice_number" field was cleared in this mutation.
func (m *InvoiceMutation) InvoiceNumberCleared() bool {
	_, ok := m.clearedFields[invoice.FieldInvoiceNumber]
	return ok
}

// ResetInvoiceNumber resets all changes to the "invoice_number" field.
func (m *InvoiceMutation) ResetInvoiceNumber() {
	m.invoice_number = nil
	delete(m.clearedFields, invoice.FieldInvoiceNumber)
}

// SetInvoiceDate sets the "invoice_date" field.
func (m *InvoiceMutation) SetInvoiceDate(t time.Time) {
	m.invoice_date = &t
}

// InvoiceDate returns the value of the "invoice_date" field in the mutation.
func (m *InvoiceMutation) InvoiceDate() (r time.Time, exists bool) {
	v := m.invoice_date
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceDate returns the old "invoice_date" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldInvoiceDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceDate: %w", err)
	}
	return oldValue.InvoiceDate, nil
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (m *InvoiceMutation) ClearInvoiceDate() {
	m.invoice_date = nil
	m.clearedFields[invoice.FieldInvoiceDate] = struct{}{}
}

// InvoiceDateCleared returns if the "invoice_date" field was cleared in this mutation.
func (m *InvoiceMutation) InvoiceDateCleared() bool {
	_, ok := m.clearedFields[invoice.FieldInvoiceDate]
	return ok
}

// ResetInvoiceDate resets all changes to the "invoice_date" field.
func (m *InvoiceMutation) ResetInvoiceDate() {
	m.invoice_date = nil
	delete(m.clearedFields, invoice.FieldInvoiceDate)
}

// SetDueDate sets the "due_date" field.
func (m *InvoiceMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *InvoiceMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldDueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ClearDueDate clears the value of the "due_date" field.
func (m *InvoiceMutation) ClearDueDate() {
	m.due_date = nil
	m.clearedFields[invoice.FieldDueDate] = struct{}{}
}

// DueDateCleared returns if the "due_date" field was cleared in this mutation.
func (m *InvoiceMutation) DueDateCleared() bool {
	_, ok := m.clearedFields[invoice.FieldDueDate]
	return ok
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *InvoiceMutation) ResetDueDate() {
	m.due_date = nil
	delete(m.clearedFields, invoice.FieldDueDate)
}

// SetTotalAmount sets the "total_amount" field.
func (m *InvoiceMutation) SetTotalAmount(f float64) {
	m.total_amount = &f
	m.addtotal_amount = nil
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *InvoiceMutation) TotalAmount() (r float64, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldTotalAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// AddTotalAmount adds f to the "total_amount" field.
func (m *InvoiceMutation) AddTotalAmount(f float64) {
	if m.addtotal_amount != nil {
		*m.addtotal_amount += f
	} else {
		m.addtotal_amount = &f
	}
}

// AddedTotalAmount returns the value that was added to the "total_amount" field in this mutation.
func (m *InvoiceMutation) AddedTotalAmount() (r float64, exists bool) {
	v := m.addtotal_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (m *InvoiceMutation) ClearTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
	m.clearedFields[invoice.FieldTotalAmount] = struct{}{}
}

// TotalAmountCleared returns if the "total_amount" field was cleared in this mutation.
func (m *InvoiceMutation) TotalAmountCleared() bool {
	_, ok := m.clearedFields[invoice.FieldTotalAmount]
	return ok
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *InvoiceMutation) ResetTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
	delete(m.clearedFields, invoice.FieldTotalAmount)
}

// SetTaxAmount sets the "tax_amount" field.
func (m *InvoiceMutation) SetTaxAmount(f float64) {
	m.tax_amount = &f
	m.addtax_amount = nil
}

// TaxAmount returns the value of the "tax_amount" field in the mutation.
func (m *InvoiceMutation) TaxAmount() (r float64, exists bool) {
	v := m.tax_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxAmount returns the old "tax_amount" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldTaxAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxAmount: %w", err)
	}
	return oldValue.TaxAmount, nil
}

// AddTaxAmount adds f to the "tax_amount" field.
func (m *InvoiceMutation) AddTaxAmount(f float64) {
	if m.addtax_amount != nil {
		*m.addtax_amount += f
	} else {
		m.addtax_amount = &f
	}
}

// AddedTaxAmount returns the value that was added to the "tax_amount" field in this mutation.
func (m *InvoiceMutation) AddedTaxAmount() (r float64, exists bool) {
	v := m.addtax_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (m *InvoiceMutation) ClearTaxAmount() {
	m.tax_amount = nil
	m.addtax_amount = nil
	m.clearedFields[invoice.FieldTaxAmount] = struct{}{}
}

// TaxAmountCleared returns if the "tax_amount" field was cleared in this mutation.
func (m *InvoiceMutation) TaxAmountCleared() bool {
	_, ok := m.clearedFields[invoice.FieldTaxAmount]
	return ok
}

// ResetTaxAmount resets all changes to the "tax_amount" field.
func (m *InvoiceMutation) ResetTaxAmount() {
	m.tax_amount = nil
	m.addtax_amount = nil
	delete(m.clearedFields, invoice.FieldTaxAmount)
}

// SetSubtotal sets the "subtotal" field.
func (m *InvoiceMutation) SetSubtotal(f float64) {
	m.subtotal = &f
	m.addsubtotal = nil
}

// Subtotal returns the value of the "subtotal" field in the mutation.
func (m *InvoiceMutation) Subtotal() (r float64, exists bool) {
	v := m.subtotal
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtotal returns the old "subtotal" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldSubtotal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtotal: %w", err)
	}
	return oldValue.Subtotal, nil
}

// AddSubtotal adds f to the "subtotal" field.
func (m *InvoiceMutation) AddSubtotal(f float64) {
	if m.addsubtotal != nil {
		*m.addsubtotal += f
	} else {
		m.addsubtotal = &f
	}
}

// AddedSubtotal returns the value that was added to the "subtotal" field in this mutation.
func (m *InvoiceMutation) AddedSubtotal() (r float64, exists bool) {
	v := m.addsubtotal
	if v == nil {
		return
	}
	return *v, true
}

// ClearSubtotal clears the value of the "subtotal" field.
func (m *InvoiceMutation) ClearSubtotal() {
	m.subtotal = nil
	m.addsubtotal = nil
	m.clearedFields[invoice.FieldSubtotal] = struct{}{}
}

// SubtotalCleared returns if the "subtotal" field was cleared in this mutation.
func (m *InvoiceMutation) SubtotalCleared() bool {
	_, ok := m.clearedFields[invoice.FieldSubtotal]
	return ok
}

// ResetSubtotal resets all changes to the "subtotal" field.
func (m *InvoiceMutation) ResetSubtotal() {
	m.subtotal = nil
	m.addsubtotal = nil
	delete(m.clearedFields, invoice.FieldSubtotal)
}

// SetDiscountAmount sets the "discount_amount" field.
func (m *InvoiceMutation) SetDiscountAmount(f float64) {
	m.discount_amount = &f
	m.adddiscount_amount = nil
}

// DiscountAmount returns the value of the "discount_amount" field in the mutation.
func (m *InvoiceMutation) DiscountAmount() (r float64, exists bool) {
	v := m.discount_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscountAmount returns the old "discount_amount" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldDiscountAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscountAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscountAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscountAmount: %w", err)
	}
	return oldValue.DiscountAmount, nil
}

// AddDiscountAmount adds f to the "discount_amount" field.
func (m *InvoiceMutation) AddDiscountAmount(f float64) {
	if m.adddiscount_amount != nil {
		*m.adddiscount_amount += f
	} else {
		m.adddiscount_amount = &f
	}
}

// AddedDiscountAmount returns the value that was added to the "discount_amount" field in this mutation.
func (m *InvoiceMutation) AddedDiscountAmount() (r float64, exists bool) {
	v := m.adddiscount_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearDiscountAmount clears the value of the "discount_amount" field.
func (m *InvoiceMutation) ClearDiscountAmount() {
	m.discount_amount = nil
	m.adddiscount_amount = nil
	m.clearedFields[invoice.FieldDiscountAmount] = struct{}{}
}

// DiscountAmountCleared returns if the "discount_amount" field was cleared in this mutation.
func (m *InvoiceMutation) DiscountAmountCleared() bool {
	_, ok := m.clearedFields[invoice.FieldDiscountAmount]
	return ok
}

// ResetDiscountAmount resets all changes to the "discount_amount" field.
func (m *InvoiceMutation) ResetDiscountAmount() {
	m.discount_amount = nil
	m.adddiscount_amount = nil
	delete(m.clearedFields, invoice.FieldDiscountAmount)
}

// SetAdditionalFees sets the "additional_fees" field.
func (m *InvoiceMutation) SetAdditionalFees(f float64) {
	m.additional_fees = &f
	m.addadditional_fees = nil
}

// AdditionalFees returns the value of the "additional_fees" field in the mutation.
func (m *InvoiceMutation) AdditionalFees() (r float64, exists bool) {
	v := m.additional_fees
	if v == nil {
		return
	}
	return *v, true
}

// OldAdditionalFees returns the old "additional_fees" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldAdditionalFees(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdditionalFees is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdditionalFees requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdditionalFees: %w", err)
	}
	return oldValue.AdditionalFees, nil
}

// AddAdditionalFees adds f to the "additional_fees" field.
func (m *InvoiceMutation) AddAdditionalFees(f float64) {
	if m.addadditional_fees != nil {
		*m.addadditional_fees += f
	} else {
		m.addadditional_fees = &f
	}
}

// AddedAdditionalFees returns the value that was added to the "additional_fees" field in this mutation.
func (m *InvoiceMutation) AddedAdditionalFees() (r float64, exists bool) {
	v := m.addadditional_fees
	if v == nil {
		return
	}
	return *v, true
}

// ClearAdditionalFees clears the value of the "additional_fees" field.
func (m *InvoiceMutation) ClearAdditionalFees() {
	m.additional_fees = nil
	m.addadditional_fees = nil
	m.clearedFields[invoice.FieldAdditionalFees] = struct{}{}
}

// AdditionalFeesCleared returns if the "additional_fees" field was cleared in this mutation.
func (m *InvoiceMutation) AdditionalFeesCleared() bool {
	_, ok := m.clearedFields[invoice.FieldAdditionalFees]
	return ok
}

// ResetAdditionalFees resets all changes to the "additional_fees" field.
func (m *InvoiceMutation) ResetAdditionalFees() {
	m.additional_fees = nil
	m.addadditional_fees = nil
	delete(m.clearedFields, invoice.FieldAdditionalFees)
}

// SetCurrency sets the "currency" field.
func (m *InvoiceMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *InvoiceMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *InvoiceMutation) ResetCurrency() {
	m.currency = nil
}

// SetPaymentTerms sets the "payment_terms" field.
func (m *InvoiceMutation) SetPaymentTerms(s string) {
	m.payment_terms = &s
}

// PaymentTerms returns the value of the "payment_terms" field in the mutation.
func (m *InvoiceMutation) PaymentTerms() (r string, exists bool) {
	v := m.payment_terms
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentTerms returns the old "payment_terms" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldPaymentTerms(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentTerms is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentTerms requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentTerms: %w", err)
	}
	return oldValue.PaymentTerms, nil
}

// ClearPaymentTerms clears the value of the "payment_terms" field.
func (m *InvoiceMutation) ClearPaymentTerms() {
	m.payment_terms = nil
	m.clearedFields[invoice.FieldPaymentTerms] = struct{}{}
}

// PaymentTermsCleared returns if the "payment_terms" field was cleared in this mutation.
func (m *InvoiceMutation) PaymentTermsCleared() bool {
	_, ok := m.clearedFields[invoice.FieldPaymentTerms]
	return ok
}

// ResetPaymentTerms resets all changes to the "payment_terms" field.
func (m *InvoiceMutation) ResetPaymentTerms() {
	m.payment_terms = nil
	delete(m.clearedFields, invoice.FieldPaymentTerms)
}

// SetPurchaseOrderNumber sets the "purchase_order_number" field.
func (m *InvoiceMutation) SetPurchaseOrderNumber(s string) {
	m.purchase_order_number = &s
}

// PurchaseOrderNumber returns the value of the "purchase_order_number" field in the mutation.
func (m *InvoiceMutation) PurchaseOrderNumber() (r string, exists bool) {
	v := m.purchase_order_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPurchaseOrderNumber returns the old "purchase_order_number" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldPurchaseOrderNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurchaseOrderNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurchaseOrderNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurchaseOrderNumber: %w", err)
	}
	return oldValue.PurchaseOrderNumber, nil
}

// ClearPurchaseOrderNumber clears the value of the "purchase_order_number" field.
func (m *InvoiceMutation) ClearPurchaseOrderNumber() {
	m.purchase_order_number = nil
	m.clearedFields[invoice.FieldPurchaseOrderNumber] = struct{}{}
}

// PurchaseOrderNumberCleared returns if the "purchase_order_number" field was cleared in this mutation.
func (m *InvoiceMutation) PurchaseOrderNumberCleared() bool {
	_, ok := m.clearedFields[invoice.FieldPurchaseOrderNumber]
	return ok
}

// ResetPurchaseOrderNumber resets all changes to the "purchase_order_number" field.
func (m *InvoiceMutation) ResetPurchaseOrderNumber() {
	m.purchase_order_number = nil
	delete(m.clearedFields, invoice.FieldPurchaseOrderNumber)
}

// SetBillingAddress sets the "billing_address" field.
func (m *InvoiceMutation) SetBillingAddress(s string) {
	m.billing_address = &s
}

// BillingAddress returns the value of the "billing_address" field in the mutation.
func (m *InvoiceMutation) BillingAddress() (r string, exists bool) {
	v := m.billing_address
	if v == nil {
		return
	}
	return *v, true
}

// OldBillingAddress returns the old "billing_address" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldBillingAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBillingAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBillingAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBillingAddress: %w", err)
	}
	return oldValue.BillingAddress, nil
}

// ClearBillingAddress clears the value of the "billing_address" field.
func (m *InvoiceMutation) ClearBillingAddress() {
	m.billing_address = nil
	m.clearedFields[invoice.FieldBillingAddress] = struct{}{}
}

// BillingAddressCleared returns if the "billing_address" field was cleared in this mutation.
func (m *InvoiceMutation) BillingAddressCleared() bool {
	_, ok := m.clearedFields[invoice.FieldBillingAddress]
	return ok
}

// ResetBillingAddress resets all changes to the "billing_address" field.
func (m *InvoiceMutation) ResetBillingAddress() {
	m.billing_address = nil
	delete(m.clearedFields, invoice.FieldBillingAddress)
}

// SetShippingAddress sets the "shipping_address" field.
func (m *InvoiceMutation) SetShippingAddress(s string) {
	m.shipping_address = &s
}

// ShippingAddress returns the value of the "shipping_address" field in the mutation.
func (m *InvoiceMutation) ShippingAddress() (r string, exists bool) {
	v := m.shipping_address
	if v == nil {
		return
	}
	return *v, true
}

// OldShippingAddress returns the old "shipping_address" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldShippingAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShippingAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShippingAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShippingAddress: %w", err)
	}
	return oldValue.ShippingAddress, nil
}

// ClearShippingAddress clears the value of the "shipping_address" field.
func (m *InvoiceMutation) ClearShippingAddress() {
	m.shipping_address = nil
	m.clearedFields[invoice.FieldShippingAddress] = struct{}{}
}

// ShippingAddressCleared returns if the "shipping_address" field was cleared in this mutation.
func (m *InvoiceMutation) ShippingAddressCleared() bool {
	_, ok := m.clearedFields[invoice.FieldShippingAddress]
	return ok
}

// ResetShippingAddress resets all changes to the "shipping_address" field.
func (m *InvoiceMutation) ResetShippingAddress() {
	m.shipping_address = nil
	delete(m.clearedFields, invoice.FieldShippingAddress)
}

// SetPaymentMethod sets the "payment_method" field.
func (m *InvoiceMutation) SetPaymentMethod(s string) {
	m.payment_method = &s
}

// PaymentMethod returns the value of the "payment_method" field in the mutation.
func (m *InvoiceMutation) PaymentMethod() (r string, exists bool) {
	v := m.payment_method
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentMethod returns the old "payment_method" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldPaymentMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentMethod: %w", err)
	}
	return oldValue.PaymentMethod, nil
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (m *InvoiceMutation) ClearPaymentMethod() {
	m.payment_method = nil
	m.clearedFields[invoice.FieldPaymentMethod] = struct{}{}
}

// PaymentMethodCleared returns if the "payment_method" field was cleared in this mutation.
func (m *InvoiceMutation) PaymentMethodCleared() bool {
	_, ok := m.clearedFields[invoice.FieldPaymentMethod]
	return ok
}

// ResetPaymentMethod resets all changes to the "payment_method" field.
func (m *InvoiceMutation) ResetPaymentMethod() {
	m.payment_method = nil
	delete(m.clearedFields, invoice.FieldPaymentMethod)
}

// SetNotes sets the "notes" field.
func (m *InvoiceMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *InvoiceMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *InvoiceMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[invoice.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *InvoiceMutation) NotesCleared() bool {
	_, ok := m.clearedFields[invoice.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *InvoiceMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, invoice.FieldNotes)
}

// SetFileURL sets the "file_url" field.
func (m *InvoiceMutation) SetFileURL(s string) {
	m.file_url = &s
}

// FileURL returns the value of the "file_url" field in the mutation.
func (m *InvoiceMutation) FileURL() (r string, exists bool) {
	v := m.file_url
	if v == nil {
		return
	}
	return *v, true
}

// OldFileURL returns the old "file_url" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldFileURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileURL: %w", err)
	}
	return oldValue.FileURL, nil
}

// ResetFileURL resets all changes to the "file_url" field.
func (m *InvoiceMutation) ResetFileURL() {
	m.file_url = nil
}

// SetStatus sets the "status" field.
func (m *InvoiceMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *InvoiceMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InvoiceMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InvoiceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvoiceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *InvoiceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InvoiceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InvoiceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InvoiceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (m *InvoiceMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[invoice.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the Profile entity was cleared.
func (m *InvoiceMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *InvoiceMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *InvoiceMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// AddItemIDs adds the "items" edge to the InvoiceItem entity by ids.
func (m *InvoiceMutation) AddItemIDs(ids ...uuid.UUID) {
	if m.items == nil {
		m.items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the InvoiceItem entity.
func (m *InvoiceMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the InvoiceItem entity was cleared.
func (m *InvoiceMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the InvoiceItem entity by IDs.
func (m *InvoiceMutation) RemoveItemIDs(ids ...uuid.UUID) {
	if m.removeditems == nil {
		m.removeditems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the InvoiceItem entity.
func (m *InvoiceMutation) RemovedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *InvoiceMutation) ItemsIDs() (ids []uuid.UUID) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *InvoiceMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// Where appends a list predicates to the InvoiceMutation builder.
func (m *InvoiceMutation) Where(ps ...predicate.Invoice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvoiceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvoiceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Invoice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvoiceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvoiceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Invoice).
func (m *InvoiceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvoiceMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.profile != nil {
		fields = append(fields, invoice.FieldProfileID)
	}
	if m.vendor_name != nil {
		fields = append(fields, invoice.FieldVendorName)
	}
	if m.invoice_number != nil {
		fields = append(fields, invoice.FieldInvoiceNumber)
	}
	if m.invoice_date != nil {
		fields = append(fields, invoice.FieldInvoiceDate)
	}
	if m.due_date != nil {
		fields = append(fields, invoice.FieldDueDate)
	}
	if m.total_amount != nil {
		fields = append(fields, invoice.FieldTotalAmount)
	}
	if m.tax_amount != nil {
		fields = append(fields, invoice.FieldTaxAmount)
	}
	if m.subtotal != nil {
		fields = append(fields, invoice.FieldSubtotal)
	}
	if m.discount_amount != nil {
		fields = append(fields, invoice.FieldDiscountAmount)
	}
	if m.additional_fees != nil {
		fields = append(fields, invoice.FieldAdditionalFees)
	}
	if m.currency != nil {
		fields = append(fields, invoice.FieldCurrency)
	}
	if m.payment_terms != nil {
		fields = append(fields, invoice.FieldPaymentTerms)
	}
	if m.purchase_order_number != nil {
		fields = append(fields, invoice.FieldPurchaseOrderNumber)
	}
	if m.billing_address != nil {
		fields = append(fields, invoice.FieldBillingAddress)
	}
	if m.shipping_address != nil {
		fields = append(fields, invoice.FieldShippingAddress)
	}
	if m.payment_method != nil {
		fields = append(fields, invoice.FieldPaymentMethod)
	}
	if m.notes != nil {
		fields = append(fields, invoice.FieldNotes)
	}
	if m.file_url != nil {
		fields = append(fields, invoice.FieldFileURL)
	}
	if m.status != nil {
		fields = append(fields, invoice.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, invoice.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, invoice.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvoiceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invoice.FieldProfileID:
		return m.ProfileID()
	case invoice.FieldVendorName:
		return m.VendorName()
	case invoice.FieldInvoiceNumber:
		return m.InvoiceNumber()
	case invoice.FieldInvoiceDate:
		return m.InvoiceDate()
	case invoice.FieldDueDate:
		return m.DueDate()
	case invoice.FieldTotalAmount:
		return m.TotalAmount()
	case invoice.FieldTaxAmount:
		return m.TaxAmount()
	case invoice.FieldSubtotal:
		return m.Subtotal()
	case invoice.FieldDiscountAmount:
		return m.DiscountAmount()
	case invoice.FieldAdditionalFees:
		return m.AdditionalFees()
	case invoice.FieldCurrency:
		return m.Currency()
	case invoice.FieldPaymentTerms:
		return m.PaymentTerms()
	case invoice.FieldPurchaseOrderNumber:
		return m.PurchaseOrderNumber()
	case invoice.FieldBillingAddress:
		return m.BillingAddress()
	case invoice.FieldShippingAddress:
		return m.ShippingAddress()
	case invoice.FieldPaymentMethod:
		return m.PaymentMethod()
	case invoice.FieldNotes:
		return m.Notes()
	case invoice.FieldFileURL:
		return m.FileURL()
	case invoice.FieldStatus:
		return m.Status()
	case invoice.FieldCreatedAt:
		return m.CreatedAt()
	case invoice.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvoiceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invoice.FieldProfileID:
		return m.OldProfileID(ctx)
	case invoice.FieldVendorName:
		return m.OldVendorName(ctx)
	case invoice.FieldInvoiceNumber:
		return m.OldInvoiceNumber(ctx)
	case invoice.FieldInvoiceDate:
		return m.OldInvoiceDate(ctx)
	case invoice.FieldDueDate:
		return m.OldDueDate(ctx)
	case invoice.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case invoice.FieldTaxAmount:
		return m.OldTaxAmount(ctx)
	case invoice.FieldSubtotal:
		return m.OldSubtotal(ctx)
	case invoice.FieldDiscountAmount:
		return m.OldDiscountAmount(ctx)
	case invoice.FieldAdditionalFees:
		return m.OldAdditionalFees(ctx)
	case invoice.FieldCurrency:
		return m.OldCurrency(ctx)
	case invoice.FieldPaymentTerms:
		return m.OldPaymentTerms(ctx)
	case invoice.FieldPurchaseOrderNumber:
		return m.OldPurchaseOrderNumber(ctx)
	case invoice.FieldBillingAddress:
		return m.OldBillingAddress(ctx)
	case invoice.FieldShippingAddress:
		return m.OldShippingAddress(ctx)
	case invoice.FieldPaymentMethod:
		return m.OldPaymentMethod(ctx)
	case invoice.FieldNotes:
		return m.OldNotes(ctx)
	case invoice.FieldFileURL:
		return m.OldFileURL(ctx)
	case invoice.FieldStatus:
		return m.OldStatus(ctx)
	case invoice.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case invoice.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Invoice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invoice.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case invoice.FieldVendorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorName(v)
		return nil
	case invoice.FieldInvoiceNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceNumber(v)
		return nil
	case invoice.FieldInvoiceDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceDate(v)
		return nil
	case invoice.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case invoice.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case invoice.FieldTaxAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxAmount(v)
		return nil
	case invoice.FieldSubtotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtotal(v)
		return nil
	case invoice.FieldDiscountAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscountAmount(v)
		return nil
	case invoice.FieldAdditionalFees:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdditionalFees(v)
		return nil
	case invoice.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case invoice.FieldPaymentTerms:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentTerms(v)
		return nil
	case invoice.FieldPurchaseOrderNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurchaseOrderNumber(v)
		return nil
	case invoice.FieldBillingAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBillingAddress(v)
		return nil
	case invoice.FieldShippingAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShippingAddress(v)
		return nil
	case invoice.FieldPaymentMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentMethod(v)
		return nil
	case invoice.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case invoice.FieldFileURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileURL(v)
		return nil
	case invoice.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case invoice.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case invoice.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Invoice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvoiceMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_amount != nil {
		fields = append(fields, invoice.FieldTotalAmount)
	}
	if m.addtax_amount != nil {
		fields = append(fields, invoice.FieldTaxAmount)
	}
	if m.addsubtotal != nil {
		fields = append(fields, invoice.FieldSubtotal)
	}
	if m.adddiscount_amount != nil {
		fields = append(fields, invoice.FieldDiscountAmount)
	}
	if m.addadditional_fees != nil {
		fields = append(fields, invoice.FieldAdditionalFees)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvoiceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case invoice.FieldTotalAmount:
		return m.AddedTotalAmount()
	case invoice.FieldTaxAmount:
		return m.AddedTaxAmount()
	case invoice.FieldSubtotal:
		return m.AddedSubtotal()
	case invoice.FieldDiscountAmount:
		return m.AddedDiscountAmount()
	case invoice.FieldAdditionalFees:
		return m.AddedAdditionalFees()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case invoice.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAmount(v)
		return nil
	case invoice.FieldTaxAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaxAmount(v)
		return nil
	case invoice.FieldSubtotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubtotal(v)
		return nil
	case invoice.FieldDiscountAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDiscountAmount(v)
		return nil
	case invoice.FieldAdditionalFees:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAdditionalFees(v)
		return nil
	}
	return fmt.Errorf("unknown Invoice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvoiceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(invoice.FieldVendorName) {
		fields = append(fields, invoice.FieldVendorName)
	}
	if m.FieldCleared(invoice.FieldInvoiceNumber) {
		fields = append(fields, invoice.FieldInvoiceNumber)
	}
	if m.FieldCleared(invoice.FieldInvoiceDate) {
		fields = append(fields, invoice.FieldInvoiceDate)
	}
	if m.FieldCleared(invoice.FieldDueDate) {
		fields = append(fields, invoice.FieldDueDate)
	}
	if m.FieldCleared(invoice.FieldTotalAmount) {
		fields = append(fields, invoice.FieldTotalAmount)
	}
	if m.FieldCleared(invoice.FieldTaxAmount) {
		fields = append(fields, invoice.FieldTaxAmount)
	}
	if m.FieldCleared(invoice.FieldSubtotal) {
		fields = append(fields, invoice.FieldSubtotal)
	}
	if m.FieldCleared(invoice.FieldDiscountAmount) {
		fields = append(fields, invoice.FieldDiscountAmount)
	}
	if m.FieldCleared(invoice.FieldAdditionalFees) {
		fields = append(fields, invoice.FieldAdditionalFees)
	}
	if m.FieldCleared(invoice.FieldPaymentTerms) {
		fields = append(fields, invoice.FieldPaymentTerms)
	}
	if m.FieldCleared(invoice.FieldPurchaseOrderNumber) {
		fields = append(fields, invoice.FieldPurchaseOrderNumber)
	}
	if m.FieldCleared(invoice.FieldBillingAddress) {
		fields = append(fields, invoice.FieldBillingAddress)
	}
	if m.FieldCleared(invoice.FieldShippingAddress) {
		fields = append(fields, invoice.FieldShippingAddress)
	}
	if m.FieldCleared(invoice.FieldPaymentMethod) {
		fields = append(fields, invoice.FieldPaymentMethod)
	}
	if m.FieldCleared(invoice.FieldNotes) {
		fields = append(fields, invoice.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvoiceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvoiceMutation) ClearField(name string) error {
	switch name {
	case invoice.FieldVendorName:
		m.ClearVendorName()
		return nil
	case invoice.FieldInvoiceNumber:
		m.ClearInvoiceNumber()
		return nil
	case invoice.FieldInvoiceDate:
		m.ClearInvoiceDate()
		return nil
	case invoice.FieldDueDate:
		m.ClearDueDate()
		return nil
	case invoice.FieldTotalAmount:
		m.ClearTotalAmount()
		return nil
	case invoice.FieldTaxAmount:
		m.ClearTaxAmount()
		return nil
	case invoice.FieldSubtotal:
		m.ClearSubtotal()
		return nil
	case invoice.FieldDiscountAmount:
		m.ClearDiscountAmount()
		return nil
	case invoice.FieldAdditionalFees:
		m.ClearAdditionalFees()
		return nil
	case invoice.FieldPaymentTerms:
		m.ClearPaymentTerms()
		return nil
	case invoice.FieldPurchaseOrderNumber:
		m.ClearPurchaseOrderNumber()
		return nil
	case invoice.FieldBillingAddress:
		m.ClearBillingAddress()
		return nil
	case invoice.FieldShippingAddress:
		m.ClearShippingAddress()
		return nil
	case invoice.FieldPaymentMethod:
		m.ClearPaymentMethod()
		return nil
	case invoice.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown Invoice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvoiceMutation) ResetField(name string) error {
	switch name {
	case invoice.FieldProfileID:
		m.ResetProfileID()
		return nil
	case invoice.FieldVendorName:
		m.ResetVendorName()
		return nil
	case invoice.FieldInvoiceNumber:
		m.ResetInvoiceNumber()
		return nil
	case invoice.FieldInvoiceDate:
		m.ResetInvoiceDate()
		return nil
	case invoice.FieldDueDate:
		m.ResetDueDate()
		return nil
	case invoice.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case invoice.FieldTaxAmount:
		m.ResetTaxAmount()
		return nil
	case invoice.FieldSubtotal:
		m.ResetSubtotal()
		return nil
	case invoice.FieldDiscountAmount:
		m.ResetDiscountAmount()
		return nil
	case invoice.FieldAdditionalFees:
		m.ResetAdditionalFees()
		return nil
	case invoice.FieldCurrency:
		m.ResetCurrency()
		return nil
	case invoice.FieldPaymentTerms:
		m.ResetPaymentTerms()
		return nil
	case invoice.FieldPurchaseOrderNumber:
		m.ResetPurchaseOrderNumber()
		return nil
	case invoice.FieldBillingAddress:
		m.ResetBillingAddress()
		return nil
	case invoice.FieldShippingAddress:
		m.ResetShippingAddress()
		return nil
	case invoice.FieldPaymentMethod:
		m.ResetPaymentMethod()
		return nil
	case invoice.FieldNotes:
		m.ResetNotes()
		return nil
	case invoice.FieldFileURL:
		m.ResetFileURL()
		return nil
	case invoice.FieldStatus:
		m.ResetStatus()
		return nil
	case invoice.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case invoice.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Invoice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvoiceMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.profile != nil {
		edges = append(edges, invoice.EdgeProfile)
	}
	if m.items != nil {
		edges = append(edges, invoice.EdgeItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvoiceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case invoice.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	case invoice.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvoiceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeditems != nil {
		edges = append(edges, invoice.EdgeItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvoiceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case invoice.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvoiceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedprofile {
		edges = append(edges, invoice.EdgeProfile)
	}
	if m.cleareditems {
		edges = append(edges, invoice.EdgeItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvoiceMutation) EdgeCleared(name string) bool {
	switch name {
	case invoice.EdgeProfile:
		return m.clearedprofile
	case invoice.EdgeItems:
		return m.cleareditems
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvoiceMutation) ClearEdge(name string) error {
	switch name {
	case invoice.EdgeProfile:
		m.ClearProfile()
		return nil
	}
	return fmt.Errorf("unknown Invoice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvoiceMutation) ResetEdge(name string) error {
	switch name {
	case invoice.EdgeProfile:
		m.ResetProfile()
		return nil
	case invoice.EdgeItems:
		m.ResetItems()
		return nil
	}
	return fmt.Errorf("unknown Invoice edge %s", name)
}

// InvoiceItemMutation represents an operation that mutates the InvoiceItem nodes in the graph.
type InvoiceItemMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	description    *string
	quantity       *float64
	addquantity    *float64
	unit_price     *float64
	addunit_price  *float64
	total          *float64
	addtotal       *float64
	clearedFields  map[string]struct{}
	invoice        *uuid.UUID
	clearedinvoice bool
	done           bool
	oldValue       func(context.Context) (*InvoiceItem, error)
	predicates     []predicate.InvoiceItem
}

var _ ent.Mutation = (*InvoiceItemMutation)(nil)

// invoiceitemOption allows management of the mutation configuration using functional options.
type invoiceitemOption func(*InvoiceItemMutation)

// newInvoiceItemMutation creates new mutation for the InvoiceItem entity.
func newInvoiceItemMutation(c config, op Op, opts ...invoiceitemOption) *InvoiceItemMutation {
	m := &InvoiceItemMutation{
		config:        c,
		op:            op,
		typ:           TypeInvoiceItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvoiceItemID sets the ID field of the mutation.
func withInvoiceItemID(id uuid.UUID) invoiceitemOption {
	return func(m *InvoiceItemMutation) {
		var (
			err   error
			once  sync.Once
			value *InvoiceItem
		)
		m.oldValue = func(ctx context.Context) (*InvoiceItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InvoiceItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvoiceItem sets the old InvoiceItem of the mutation.
func withInvoiceItem(node *InvoiceItem) invoiceitemOption {
	return func(m *InvoiceItemMutation) {
		m.oldValue = func(context.Context) (*InvoiceItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvoiceItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvoiceItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InvoiceItem entities.
func (m *InvoiceItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvoiceItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvoiceItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InvoiceItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInvoiceID sets the "invoice_id" field.
func (m *InvoiceItemMutation) SetInvoiceID(u uuid.UUID) {
	m.invoice = &u
}

// InvoiceID returns the value of the "invoice_id" field in the mutation.
func (m *InvoiceItemMutation) InvoiceID() (r uuid.UUID, exists bool) {
	v := m.invoice
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceID returns the old "invoice_id" field's value of the InvoiceItem entity.
// If the InvoiceItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceItemMutation) OldInvoiceID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceID: %w", err)
	}
	return oldValue.InvoiceID, nil
}

// ResetInvoiceID resets all changes to the "invoice_id" field.
func (m *InvoiceItemMutation) ResetInvoiceID() {
	m.invoice = nil
}

// SetDescription sets the "description" field.
func (m *InvoiceItemMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *InvoiceItemMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the InvoiceItem entity.
// If the InvoiceItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceItemMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *InvoiceItemMutation) ResetDescription() {
	m.description = nil
}

// SetQuantity sets the "quantity" field.
func (m *InvoiceItemMutation) SetQuantity(f float64) {
	m.quantity = &f
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *InvoiceItemMutation) Quantity() (r float64, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the InvoiceItem entity.
// If the InvoiceItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceItemMutation) OldQuantity(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds f to the "quantity" field.
func (m *InvoiceItemMutation) AddQuantity(f float64) {
	if m.addquantity != nil {
		*m.addquantity += f
	} else {
		m.addquantity = &f
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *InvoiceItemMutation) AddedQuantity() (r float64, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ClearQuantity clears the value of the "quantity" field.
func (m *InvoiceItemMutation) ClearQuantity() {
	m.quantity = nil
	m.addquantity = nil
	m.clearedFields[invoiceitem.FieldQuantity] = struct{}{}
}

// QuantityCleared returns if the "quantity" field was cleared in this mutation.
func (m *InvoiceItemMutation) QuantityCleared() bool {
	_, ok := m.clearedFields[invoiceitem.FieldQuantity]
	return ok
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *InvoiceItemMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
	delete(m.clearedFields, invoiceitem.FieldQuantity)
}

// SetUnitPrice sets the "unit_price" field.
func (m *InvoiceItemMutation) SetUnitPrice(f float64) {
	m.unit_price = &f
	m.addunit_price = nil
}

// UnitPrice returns the value of the "unit_price" field in the mutation.
func (m *InvoiceItemMutation) UnitPrice() (r float64, exists bool) {
	v := m.unit_price
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitPrice returns the old "unit_price" field's value of the InvoiceItem entity.
// If the InvoiceItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceItemMutation) OldUnitPrice(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitPrice: %w", err)
	}
	return oldValue.UnitPrice, nil
}

// AddUnitPrice adds f to the "unit_price" field.
func (m *InvoiceItemMutation) AddUnitPrice(f float64) {
	if m.addunit_price != nil {
		*m.addunit_price += f
	} else {
		m.addunit_price = &f
	}
}

// AddedUnitPrice returns the value that was added to the "unit_price" field in this mutation.
func (m *InvoiceItemMutation) AddedUnitPrice() (r float64, exists bool) {
	v := m.addunit_price
	if v == nil {
		return
	}
	return *v, true
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (m *InvoiceItemMutation) ClearUnitPrice() {
	m.unit_price = nil
	m.addunit_price = nil
	m.clearedFields[invoiceitem.FieldUnitPrice] = struct{}{}
}

// UnitPriceCleared returns if the "unit_price" field was cleared in this mutation.
func (m *InvoiceItemMutation) UnitPriceCleared() bool {
	_, ok := m.clearedFields[invoiceitem.FieldUnitPrice]
	return ok
}

// ResetUnitPrice resets all changes to the "unit_price" field.
func (m *InvoiceItemMutation) ResetUnitPrice() {
	m.unit_price = nil
	m.addunit_price = nil
	delete(m.clearedFields, invoiceitem.FieldUnitPrice)
}

// SetTotal sets the "total" field.
func (m *InvoiceItemMutation) SetTotal(f float64) {
	m.total = &f
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *InvoiceItemMutation) Total() (r float64, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the InvoiceItem entity.
// If the InvoiceItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceItemMutation) OldTotal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds f to the "total" field.
func (m *InvoiceItemMutation) AddTotal(f float64) {
	if m.addtotal != nil {
		*m.addtotal += f
	} else {
		m.addtotal = &f
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *InvoiceItemMutation) AddedTotal() (r float64, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotal clears the value of the "total" field.
func (m *InvoiceItemMutation) ClearTotal() {
	m.total = nil
	m.addtotal = nil
	m.clearedFields[invoiceitem.FieldTotal] = struct{}{}
}

// TotalCleared returns if the "total" field was cleared in this mutation.
func (m *InvoiceItemMutation) TotalCleared() bool {
	_, ok := m.clearedFields[invoiceitem.FieldTotal]
	return ok
}

// ResetTotal resets all changes to the "total" field.
func (m *InvoiceItemMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
	delete(m.clearedFields, invoiceitem.FieldTotal)
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (m *InvoiceItemMutation) ClearInvoice() {
	m.clearedinvoice = true
	m.clearedFields[invoiceitem.FieldInvoiceID] = struct{}{}
}

// InvoiceCleared reports if the "invoice" edge to the Invoice entity was cleared.
func (m *InvoiceItemMutation) InvoiceCleared() bool {
	return m.clearedinvoice
}

// InvoiceIDs returns the "invoice" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InvoiceID instead. It exists only for internal usage by the builders.
func (m *InvoiceItemMutation) InvoiceIDs() (ids []uuid.UUID) {
	if id := m.invoice; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInvoice resets all changes to the "invoice" edge.
func (m *InvoiceItemMutation) ResetInvoice() {
	m.invoice = nil
	m.clearedinvoice = false
}

// Where appends a list predicates to the InvoiceItemMutation builder.
func (m *InvoiceItemMutation) Where(ps ...predicate.InvoiceItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvoiceItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvoiceItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InvoiceItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvoiceItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvoiceItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InvoiceItem).
func (m *InvoiceItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvoiceItemMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.invoice != nil {
		fields = append(fields, invoiceitem.FieldInvoiceID)
	}
	if m.description != nil {
		fields = append(fields, invoiceitem.FieldDescription)
	}
	if m.quantity != nil {
		fields = append(fields, invoiceitem.FieldQuantity)
	}
	if m.unit_price != nil {
		fields = append(fields, invoiceitem.FieldUnitPrice)
	}
	if m.total != nil {
		fields = append(fields, invoiceitem.FieldTotal)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvoiceItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invoiceitem.FieldInvoiceID:
		return m.InvoiceID()
	case invoiceitem.FieldDescription:
		return m.Description()
	case invoiceitem.FieldQuantity:
		return m.Quantity()
	case invoiceitem.FieldUnitPrice:
		return m.UnitPrice()
	case invoiceitem.FieldTotal:
		return m.Total()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvoiceItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invoiceitem.FieldInvoiceID:
		return m.OldInvoiceID(ctx)
	case invoiceitem.FieldDescription:
		return m.OldDescription(ctx)
	case invoiceitem.FieldQuantity:
		return m.OldQuantity(ctx)
	case invoiceitem.FieldUnitPrice:
		return m.OldUnitPrice(ctx)
	case invoiceitem.FieldTotal:
		return m.OldTotal(ctx)
	}
	return nil, fmt.Errorf("unknown InvoiceItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invoiceitem.FieldInvoiceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceID(v)
		return nil
	case invoiceitem.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case invoiceitem.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case invoiceitem.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitPrice(v)
		return nil
	case invoiceitem.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	}
	return fmt.Errorf("unknown InvoiceItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvoiceItemMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, invoiceitem.FieldQuantity)
	}
	if m.addunit_price != nil {
		fields = append(fields, invoiceitem.FieldUnitPrice)
	}
	if m.addtotal != nil {
		fields = append(fields, invoiceitem.FieldTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvoiceItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case invoiceitem.FieldQuantity:
		return m.AddedQuantity()
	case invoiceitem.FieldUnitPrice:
		return m.AddedUnitPrice()
	case invoiceitem.FieldTotal:
		return m.AddedTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case invoiceitem.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case invoiceitem.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitPrice(v)
		return nil
	case invoiceitem.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	}
	return fmt.Errorf("unknown InvoiceItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvoiceItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(invoiceitem.FieldQuantity) {
		fields = append(fields, invoiceitem.FieldQuantity)
	}
	if m.FieldCleared(invoiceitem.FieldUnitPrice) {
		fields = append(fields, invoiceitem.FieldUnitPrice)
	}
	if m.FieldCleared(invoiceitem.FieldTotal) {
		fields = append(fields, invoiceitem.FieldTotal)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvoiceItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvoiceItemMutation) ClearField(name string) error {
	switch name {
	case invoiceitem.FieldQuantity:
		m.ClearQuantity()
		return nil
	case invoiceitem.FieldUnitPrice:
		m.ClearUnitPrice()
		return nil
	case invoiceitem.FieldTotal:
		m.ClearTotal()
		return nil
	}
	return fmt.Errorf("unknown InvoiceItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvoiceItemMutation) ResetField(name string) error {
	switch name {
	case invoiceitem.FieldInvoiceID:
		m.ResetInvoiceID()
		return nil
	case invoiceitem.FieldDescription:
		m.ResetDescription()
		return nil
	case invoiceitem.FieldQuantity:
		m.ResetQuantity()
		return nil
	case invoiceitem.FieldUnitPrice:
		m.ResetUnitPrice()
		return nil
	case invoiceitem.FieldTotal:
		m.ResetTotal()
		return nil
	}
	return fmt.Errorf("unknown InvoiceItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvoiceItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.invoice != nil {
		edges = append(edges, invoiceitem.EdgeInvoice)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvoiceItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case invoiceitem.EdgeInvoice:
		if id := m.invoice; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvoiceItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvoiceItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvoiceItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinvoice {
		edges = append(edges, invoiceitem.EdgeInvoice)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvoiceItemMutation) EdgeCleared(name string) bool {
	switch name {
	case invoiceitem.EdgeInvoice:
		return m.clearedinvoice
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvoiceItemMutation) ClearEdge(name string) error {
	switch name {
	case invoiceitem.EdgeInvoice:
		m.ClearInvoice()
		return nil
	}
	return fmt.Errorf("unknown InvoiceItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvoiceItemMutation) ResetEdge(name string) error {
	switch name {
	case invoiceitem.EdgeInvoice:
		m.ResetInvoice()
		return nil
	}
	return fmt.Errorf("unknown InvoiceItem edge %s", name)
}

// ProfileMutation represents an operation that mutates the Profile nodes in the graph.
type ProfileMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	email                 *string
	name                  *string
	subscription_tier     *string
	default_currency      *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	field_mappings        map[uuid.UUID]struct{}
	removedfield_mappings map[uuid.UUID]struct{}
	clearedfield_mappings bool
	invoices              map[uuid.UUID]struct{}
	removedinvoices       map[uuid.UUID]struct{}
	clearedinvoices       bool
	exports               map[uuid.UUID]struct{}
	removedexports        map[uuid.UUID]struct{}
	clearedexports        bool
	subscriptions         map[uuid.UUID]struct{}
	removedsubscriptions  map[uuid.UUID]struct{}
	clearedsubscriptions  bool
	done                  bool
	oldValue              func(context.Context) (*Profile, error)
	predicates            []predicate.Profile
}

var _ ent.Mutation = (*ProfileMutation)(nil)

// profileOption allows management of the mutation configuration using functional options.
type profileOption func(*ProfileMutation)

// newProfileMutation creates new mutation for the Profile entity.
func newProfileMutation(c config, op Op, opts ...profileOption) *ProfileMutation {
	m := &ProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProfileID sets the ID field of the mutation.
func withProfileID(id uuid.UUID) profileOption {
	return func(m *ProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *Profile
		)
		m.oldValue = func(ctx context.Context) (*Profile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Profile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProfile sets the old Profile of the mutation.
func withProfile(node *Profile) profileOption {
	return func(m *ProfileMutation) {
		m.oldValue = func(context.Context) (*Profile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Profile entities.
func (m *ProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Profile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *ProfileMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ProfileMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *ProfileMutation) ResetEmail() {
	m.email = nil
}

// SetName sets the "name" field.
func (m *ProfileMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProfileMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProfileMutation) ResetName() {
	m.name = nil
}

// SetSubscriptionTier sets the "subscription_tier" field.
func (m *ProfileMutation) SetSubscriptionTier(s string) {
	m.subscription_tier = &s
}

// SubscriptionTier returns the value of the "subscription_tier" field in the mutation.
func (m *ProfileMutation) SubscriptionTier() (r string, exists bool) {
	v := m.subscription_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldSubscriptionTier returns the old "subscription_tier" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldSubscriptionTier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubscriptionTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubscriptionTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubscriptionTier: %w", err)
	}
	return oldValue.SubscriptionTier, nil
}

// ResetSubscriptionTier resets all changes to the "subscription_tier" field.
func (m *ProfileMutation) ResetSubscriptionTier() {
	m.subscription_tier = nil
}

// SetDefaultCurrency sets the "default_currency" field.
func (m *ProfileMutation) SetDefaultCurrency(s string) {
	m.default_currency = &s
}

// DefaultCurrency returns the value of the "default_currency" field in the mutation.
func (m *ProfileMutation) DefaultCurrency() (r string, exists bool) {
	v := m.default_currency
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultCurrency returns the old "default_currency" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldDefaultCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultCurrency: %w", err)
	}
	return oldValue.DefaultCurrency, nil
}

// ResetDefaultCurrency resets all changes to the "default_currency" field.
func (m *ProfileMutation) ResetDefaultCurrency() {
	m.default_currency = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddFieldMappingIDs adds the "field_mappings" edge to the FieldMapping entity by ids.
func (m *ProfileMutation) AddFieldMappingIDs(ids ...uuid.UUID) {
	if m.field_mappings == nil {
		m.field_mappings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.field_mappings[ids[i]] = struct{}{}
	}
}

// ClearFieldMappings clears the "field_mappings" edge to the FieldMapping entity.
func (m *ProfileMutation) ClearFieldMappings() {
	m.clearedfield_mappings = true
}

// FieldMappingsCleared reports if the "field_mappings" edge to the FieldMapping entity was cleared.
func (m *ProfileMutation) FieldMappingsCleared() bool {
	return m.clearedfield_mappings
}

// RemoveFieldMappingIDs removes the "field_mappings" edge to the FieldMapping entity by IDs.
func (m *ProfileMutation) RemoveFieldMappingIDs(ids ...uuid.UUID) {
	if m.removedfield_mappings == nil {
		m.removedfield_mappings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.field_mappings, ids[i])
		m.removedfield_mappings[ids[i]] = struct{}{}
	}
}

// RemovedFieldMappings returns the removed IDs of the "field_mappings" edge to the FieldMapping entity.
func (m *ProfileMutation) RemovedFieldMappingsIDs() (ids []uuid.UUID) {
	for id := range m.removedfield_mappings {
		ids = append(ids, id)
	}
	return
}

// FieldMappingsIDs returns the "field_mappings" edge IDs in the mutation.
func (m *ProfileMutation) FieldMappingsIDs() (ids []uuid.UUID) {
	for id := range m.field_mappings {
		ids = append(ids, id)
	}
	return
}

// ResetFieldMappings resets all changes to the "field_mappings" edge.
func (m *ProfileMutation) ResetFieldMappings() {
	m.field_mappings = nil
	m.clearedfield_mappings = false
	m.removedfield_mappings = nil
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by ids.
func (m *ProfileMutation) AddInvoiceIDs(ids ...uuid.UUID) {
	if m.invoices == nil {
		m.invoices = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.invoices[ids[i]] = struct{}{}
	}
}

// ClearInvoices clears the "invoices" edge to the Invoice entity.
func (m *ProfileMutation) ClearInvoices() {
	m.clearedinvoices = true
}

// InvoicesCleared reports if the "invoices" edge to the Invoice entity was cleared.
func (m *ProfileMutation) InvoicesCleared() bool {
	return m.clearedinvoices
}

// RemoveInvoiceIDs removes the "invoices" edge to the Invoice entity by IDs.
func (m *ProfileMutation) RemoveInvoiceIDs(ids ...uuid.UUID) {
	if m.removedinvoices == nil {
		m.removedinvoices = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.invoices, ids[i])
		m.removedinvoices[ids[i]] = struct{}{}
	}
}

// RemovedInvoices returns the removed IDs of the "invoices" edge to the Invoice entity.
func (m *ProfileMutation) RemovedInvoicesIDs() (ids []uuid.UUID) {
	for id := range m.removedinvoices {
		ids = append(ids, id)
	}
	return
}

// InvoicesIDs returns the "invoices" edge IDs in the mutation.
func (m *ProfileMutation) InvoicesIDs() (ids []uuid.UUID) {
	for id := range m.invoices {
		ids = append(ids, id)
	}
	return
}

// ResetInvoices resets all changes to the "invoices" edge.
func (m *ProfileMutation) ResetInvoices() {
	m.invoices = nil
	m.clearedinvoices = false
	m.removedinvoices = nil
}

// AddExportIDs adds the "exports" edge to the ExportHistory entity by ids.
func (m *ProfileMutation) AddExportIDs(ids ...uuid.UUID) {
	if m.exports == nil {
		m.exports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.exports[ids[i]] = struct{}{}
	}
}

// ClearExports clears the "exports" edge to the ExportHistory entity.
func (m *ProfileMutation) ClearExports() {
	m.clearedexports = true
}

// ExportsCleared reports if the "exports" edge to the ExportHistory entity was cleared.
func (m *ProfileMutation) ExportsCleared() bool {
	return m.clearedexports
}

// RemoveExportIDs removes the "exports" edge to the ExportHistory entity by IDs.
func (m *ProfileMutation) RemoveExportIDs(ids ...uuid.UUID) {
	if m.removedexports == nil {
		m.removedexports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.exports, ids[i])
		m.removedexports[ids[i]] = struct{}{}
	}
}

// RemovedExports returns the removed IDs of the "exports" edge to the ExportHistory entity.
func (m *ProfileMutation) RemovedExportsIDs() (ids []uuid.UUID) {
	for id := range m.removedexports {
		ids = append(ids, id)
	}
	return
}

// ExportsIDs returns the "exports" edge IDs in the mutation.
func (m *ProfileMutation) ExportsIDs() (ids []uuid.UUID) {
	for id := range m.exports {
		ids = append(ids, id)
	}
	return
}

// ResetExports resets all changes to the "exports" edge.
func (m *ProfileMutation) ResetExports() {
	m.exports = nil
	m.clearedexports = false
	m.removedexports = nil
}

// AddSubscriptionIDs adds the "subscriptions" edge to the Subscription entity by ids.
func (m *ProfileMutation) AddSubscriptionIDs(ids ...uuid.UUID) {
	if m.subscriptions == nil {
		m.subscriptions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.subscriptions[ids[i]] = struct{}{}
	}
}

// ClearSubscriptions clears the "subscriptions" edge to the Subscription entity.
func (m *ProfileMutation) ClearSubscriptions() {
	m.clearedsubscriptions = true
}

// SubscriptionsCleared reports if the "subscriptions" edge to the Subscription entity was cleared.
func (m *ProfileMutation) SubscriptionsCleared() bool {
	return m.clearedsubscriptions
}

// RemoveSubscriptionIDs removes the "subscriptions" edge to the Subscription entity by IDs.
func (m *ProfileMutation) RemoveSubscriptionIDs(ids ...uuid.UUID) {
	if m.removedsubscriptions == nil {
		m.removedsubscriptions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.subscriptions, ids[i])
		m.removedsubscriptions[ids[i]] = struct{}{}
	}
}

// RemovedSubscriptions returns the removed IDs of the "subscriptions" edge to the Subscription entity.
func (m *ProfileMutation) RemovedSubscriptionsIDs() (ids []uuid.UUID) {
	for id := range m.removedsubscriptions {
		ids = append(ids, id)
	}
	return
}

// SubscriptionsIDs returns the "subscriptions" edge IDs in the mutation.
func (m *ProfileMutation) SubscriptionsIDs() (ids []uuid.UUID) {
	for id := range m.subscriptions {
		ids = append(ids, id)
	}
	return
}

// ResetSubscriptions resets all changes to the "subscriptions" edge.
func (m *ProfileMutation) ResetSubscriptions() {
	m.subscriptions = nil
	m.clearedsubscriptions = false
	m.removedsubscriptions = nil
}

// Where appends a list predicates to the ProfileMutation builder.
func (m *ProfileMutation) Where(ps ...predicate.Profile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Profile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Profile).
func (m *ProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProfileMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.email != nil {
		fields = append(fields, profile.FieldEmail)
	}
	if m.name != nil {
		fields = append(fields, profile.FieldName)
	}
	if m.subscription_tier != nil {
		fields = append(fields, profile.FieldSubscriptionTier)
	}
	if m.default_currency != nil {
		fields = append(fields, profile.FieldDefaultCurrency)
	}
	if m.created_at != nil {
		fields = append(fields, profile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, profile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case profile.FieldEmail:
		return m.Email()
	case profile.FieldName:
		return m.Name()
	case profile.FieldSubscriptionTier:
		return m.SubscriptionTier()
	case profile.FieldDefaultCurrency:
		return m.DefaultCurrency()
	case profile.FieldCreatedAt:
		return m.CreatedAt()
	case profile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case profile.FieldEmail:
		return m.OldEmail(ctx)
	case profile.FieldName:
		return m.OldName(ctx)
	case profile.FieldSubscriptionTier:
		return m.OldSubscriptionTier(ctx)
	case profile.FieldDefaultCurrency:
		return m.OldDefaultCurrency(ctx)
	case profile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case profile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Profile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case profile.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case profile.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case profile.FieldSubscriptionTier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubscriptionTier(v)
		return nil
	case profile.FieldDefaultCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultCurrency(v)
		return nil
	case profile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case profile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Profile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProfileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProfileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Profile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProfileMutation) ResetField(name string) error {
	switch name {
	case profile.FieldEmail:
		m.ResetEmail()
		return nil
	case profile.FieldName:
		m.ResetName()
		return nil
	case profile.FieldSubscriptionTier:
		m.ResetSubscriptionTier()
		return nil
	case profile.FieldDefaultCurrency:
		m.ResetDefaultCurrency()
		return nil
	case profile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case profile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.field_mappings != nil {
		edges = append(edges, profile.EdgeFieldMappings)
	}
	if m.invoices != nil {
		edges = append(edges, profile.EdgeInvoices)
	}
	if m.exports != nil {
		edges = append(edges, profile.EdgeExports)
	}
	if m.subscriptions != nil {
		edges = append(edges, profile.EdgeSubscriptions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProfileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case profile.EdgeFieldMappings:
		ids := make([]ent.Value, 0, len(m.field_mappings))
		for id := range m.field_mappings {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeInvoices:
		ids := make([]ent.Value, 0, len(m.invoices))
		for id := range m.invoices {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeExports:
		ids := make([]ent.Value, 0, len(m.exports))
		for id := range m.exports {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeSubscriptions:
		ids := make([]ent.Value, 0, len(m.subscriptions))
		for id := range m.subscriptions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedfield_mappings != nil {
		edges = append(edges, profile.EdgeFieldMappings)
	}
	if m.removedinvoices != nil {
		edges = append(edges, profile.EdgeInvoices)
	}
	if m.removedexports != nil {
		edges = append(edges, profile.EdgeExports)
	}
	if m.removedsubscriptions != nil {
		edges = append(edges, profile.EdgeSubscriptions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProfileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case profile.EdgeFieldMappings:
		ids := make([]ent.Value, 0, len(m.removedfield_mappings))
		for id := range m.removedfield_mappings {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeInvoices:
		ids := make([]ent.Value, 0, len(m.removedinvoices))
		for id := range m.removedinvoices {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeExports:
		ids := make([]ent.Value, 0, len(m.removedexports))
		for id := range m.removedexports {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeSubscriptions:
		ids := make([]ent.Value, 0, len(m.removedsubscriptions))
		for id := range m.removedsubscriptions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedfield_mappings {
		edges = append(edges, profile.EdgeFieldMappings)
	}
	if m.clearedinvoices {
		edges = append(edges, profile.EdgeInvoices)
	}
	if m.clearedexports {
		edges = append(edges, profile.EdgeExports)
	}
	if m.clearedsubscriptions {
		edges = append(edges, profile.EdgeSubscriptions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProfileMutation) EdgeCleared(name string) bool {
	switch name {
	case profile.EdgeFieldMappings:
		return m.clearedfield_mappings
	case profile.EdgeInvoices:
		return m.clearedinvoices
	case profile.EdgeExports:
		return m.clearedexports
	case profile.EdgeSubscriptions:
		return m.clearedsubscriptions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProfileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Profile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProfileMutation) ResetEdge(name string) error {
	switch name {
	case profile.EdgeFieldMappings:
		m.ResetFieldMappings()
		return nil
	case profile.EdgeInvoices:
		m.ResetInvoices()
		return nil
	case profile.EdgeExports:
		m.ResetExports()
		return nil
	case profile.EdgeSubscriptions:
		m.ResetSubscriptions()
		return nil
	}
	return fmt.Errorf("unknown Profile edge %s", name)
}

// SubscriptionMutation represents an operation that mutates the Subscription nodes in the graph.
type SubscriptionMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	customer_email     *string
	price_id           *string
	status             *string
	current_period_end *time.Time
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	profile            *uuid.UUID
	clearedprofile     bool
	done               bool
	oldValue           func(context.Context) (*Subscription, error)
	predicates         []predicate.Subscription
}

var _ ent.Mutation = (*SubscriptionMutation)(nil)

// subscriptionOption allows management of the mutation configuration using functional options.
type subscriptionOption func(*SubscriptionMutation)

// newSubscriptionMutation creates new mutation for the Subscription entity.
func newSubscriptionMutation(c config, op Op, opts ...subscriptionOption) *SubscriptionMutation {
	m := &SubscriptionMutation{
		config:        c,
		op:            op,
		typ:           TypeSubscription,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubscriptionID sets the ID field of the mutation.
func withSubscriptionID(id uuid.UUID) subscriptionOption {
	return func(m *SubscriptionMutation) {
		var (
			err   error
			once  sync.Once
			value *Subscription
		)
		m.oldValue = func(ctx context.Context) (*Subscription, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Subscription.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubscription sets the old Subscription of the mutation.
func withSubscription(node *Subscription) subscriptionOption {
	return func(m *SubscriptionMutation) {
		m.oldValue = func(context.Context) (*Subscription, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubscriptionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubscriptionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Subscription entities.
func (m *SubscriptionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubscriptionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubscriptionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Subscription.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfileID sets the "profile_id" field.
func (m *SubscriptionMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *SubscriptionMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *SubscriptionMutation) ResetProfileID() {
	m.profile = nil
}

// SetCustomerEmail sets the "customer_email" field.
func (m *SubscriptionMutation) SetCustomerEmail(s string) {
	m.customer_email = &s
}

// CustomerEmail returns the value of the "customer_email" field in the mutation.
func (m *SubscriptionMutation) CustomerEmail() (r string, exists bool) {
	v := m.customer_email
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerEmail returns the old "customer_email" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldCustomerEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerEmail: %w", err)
	}
	return oldValue.CustomerEmail, nil
}

// ResetCustomerEmail resets all changes to the "customer_email" field.
func (m *SubscriptionMutation) ResetCustomerEmail() {
	m.customer_email = nil
}

// SetPriceID sets the "price_id" field.
func (m *SubscriptionMutation) SetPriceID(s string) {
	m.price_id = &s
}

// PriceID returns the value of the "price_id" field in the mutation.
func (m *SubscriptionMutation) PriceID() (r string, exists bool) {
	v := m.price_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPriceID returns the old "price_id" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldPriceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriceID: %w", err)
	}
	return oldValue.PriceID, nil
}

// ResetPriceID resets all changes to the "price_id" field.
func (m *SubscriptionMutation) ResetPriceID() {
	m.price_id = nil
}

// SetStatus sets the "status" field.
func (m *SubscriptionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SubscriptionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SubscriptionMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentPeriodEnd sets the "current_period_end" field.
func (m *SubscriptionMutation) SetCurrentPeriodEnd(t time.Time) {
	m.current_period_end = &t
}

// CurrentPeriodEnd returns the value of the "current_period_end" field in the mutation.
func (m *SubscriptionMutation) CurrentPeriodEnd() (r time.Time, exists bool) {
	v := m.current_period_end
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPeriodEnd returns the old "current_period_end" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldCurrentPeriodEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPeriodEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPeriodEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPeriodEnd: %w", err)
	}
	return oldValue.CurrentPeriodEnd, nil
}

// ClearCurrentPeriodEnd clears the value of the "current_period_end" field.
func (m *SubscriptionMutation) ClearCurrentPeriodEnd() {
	m.current_period_end = nil
	m.clearedFields[subscription.FieldCurrentPeriodEnd] = struct{}{}
}

// CurrentPeriodEndCleared returns if the "current_period_end" field was cleared in this mutation.
func (m *SubscriptionMutation) CurrentPeriodEndCleared() bool {
	_, ok := m.clearedFields[subscription.FieldCurrentPeriodEnd]
	return ok
}

// ResetCurrentPeriodEnd resets all changes to the "current_period_end" field.
func (m *SubscriptionMutation) ResetCurrentPeriodEnd() {
	m.current_period_end = nil
	delete(m.clearedFields, subscription.FieldCurrentPeriodEnd)
}

// SetCreatedAt sets the "created_at" field.
func (m *SubscriptionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubscriptionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SubscriptionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SubscriptionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SubscriptionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SubscriptionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (m *SubscriptionMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[subscription.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the Profile entity was cleared.
func (m *SubscriptionMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *SubscriptionMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *SubscriptionMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// Where appends a list predicates to the SubscriptionMutation builder.
func (m *SubscriptionMutation) Where(ps ...predicate.Subscription) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubscriptionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubscriptionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Subscription, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubscriptionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubscriptionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Subscription).
func (m *SubscriptionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubscriptionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.profile != nil {
		fields = append(fields, subscription.FieldProfileID)
	}
	if m.customer_email != nil {
		fields = append(fields, subscription.FieldCustomerEmail)
	}
	if m.price_id != nil {
		fields = append(fields, subscription.FieldPriceID)
	}
	if m.status != nil {
		fields = append(fields, subscription.FieldStatus)
	}
	if m.current_period_end != nil {
		fields = append(fields, subscription.FieldCurrentPeriodEnd)
	}
	if m.created_at != nil {
		fields = append(fields, subscription.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, subscription.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubscriptionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subscription.FieldProfileID:
		return m.ProfileID()
	case subscription.FieldCustomerEmail:
		return m.CustomerEmail()
	case subscription.FieldPriceID:
		return m.PriceID()
	case subscription.FieldStatus:
		return m.Status()
	case subscription.FieldCurrentPeriodEnd:
		return m.CurrentPeriodEnd()
	case subscription.FieldCreatedAt:
		return m.CreatedAt()
	case subscription.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubscriptionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subscription.FieldProfileID:
		return m.OldProfileID(ctx)
	case subscription.FieldCustomerEmail:
		return m.OldCustomerEmail(ctx)
	case subscription.FieldPriceID:
		return m.OldPriceID(ctx)
	case subscription.FieldStatus:
		return m.OldStatus(ctx)
	case subscription.FieldCurrentPeriodEnd:
		return m.OldCurrentPeriodEnd(ctx)
	case subscription.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case subscription.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Subscription field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubscriptionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subscription.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case subscription.FieldCustomerEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerEmail(v)
		return nil
	case subscription.FieldPriceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriceID(v)
		return nil
	case subscription.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case subscription.FieldCurrentPeriodEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPeriodEnd(v)
		return nil
	case subscription.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case subscription.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Subscription field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubscriptionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubscriptionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubscriptionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Subscription numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubscriptionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(subscription.FieldCurrentPeriodEnd) {
		fields = append(fields, subscription.FieldCurrentPeriodEnd)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubscriptionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubscriptionMutation) ClearField(name string) error {
	switch name {
	case subscription.FieldCurrentPeriodEnd:
		m.ClearCurrentPeriodEnd()
		return nil
	}
	return fmt.Errorf("unknown Subscription nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubscriptionMutation) ResetField(name string) error {
	switch name {
	case subscription.FieldProfileID:
		m.ResetProfileID()
		return nil
	case subscription.FieldCustomerEmail:
		m.ResetCustomerEmail()
		return nil
	case subscription.FieldPriceID:
		m.ResetPriceID()
		return nil
	case subscription.FieldStatus:
		m.ResetStatus()
		return nil
	case subscription.FieldCurrentPeriodEnd:
		m.ResetCurrentPeriodEnd()
		return nil
	case subscription.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case subscription.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Subscription field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubscriptionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.profile != nil {
		edges = append(edges, subscription.EdgeProfile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubscriptionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case subscription.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubscriptionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubscriptionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubscriptionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedprofile {
		edges = append(edges, subscription.EdgeProfile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubscriptionMutation) EdgeCleared(name string) bool {
	switch name {
	case subscription.EdgeProfile:
		return m.clearedprofile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubscriptionMutation) ClearEdge(name string) error {
	switch name {
	case subscription.EdgeProfile:
		m.ClearProfile()
		return nil
	}
	return fmt.Errorf("unknown Subscription unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubscriptionMutation) ResetEdge(name string) error {
	switch name {
	case subscription.EdgeProfile:
		m.ResetProfile()
		return nil
	}
	return fmt.Errorf("unknown Subscription edge %s", name)
}

// SubscriptionTierMutation represents an operation that mutates the SubscriptionTier nodes in the graph.
type SubscriptionTierMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	name                    *string
	monthly_export_limit    *int
	addmonthly_export_limit *int
	file_size_limit_mb      *int
	addfile_size_limit_mb   *int
	features                *[]string
	appendfeatures          []string
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*SubscriptionTier, error)
	predicates              []predicate.SubscriptionTier
}

var _ ent.Mutation = (*SubscriptionTierMutation)(nil)

// subscriptiontierOption allows management of the mutation configuration using functional options.
type subscriptiontierOption func(*SubscriptionTierMutation)

// newSubscriptionTierMutation creates new mutation for the SubscriptionTier entity.
func newSubscriptionTierMutation(c config, op Op, opts ...subscriptiontierOption) *SubscriptionTierMutation {
	m := &SubscriptionTierMutation{
		config:        c,
		op:            op,
		typ:           TypeSubscriptionTier,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubscriptionTierID sets the ID field of the mutation.
func withSubscriptionTierID(id uuid.UUID) subscriptiontierOption {
	return func(m *SubscriptionTierMutation) {
		var (
			err   error
			once  sync.Once
			value *SubscriptionTier
		)
		m.oldValue = func(ctx context.Context) (*SubscriptionTier, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SubscriptionTier.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubscriptionTier sets the old SubscriptionTier of the mutation.
func withSubscriptionTier(node *SubscriptionTier) subscriptiontierOption {
	return func(m *SubscriptionTierMutation) {
		m.oldValue = func(context.Context) (*SubscriptionTier, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubscriptionTierMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubscriptionTierMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SubscriptionTier entities.
func (m *SubscriptionTierMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubscriptionTierMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubscriptionTierMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SubscriptionTier.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SubscriptionTierMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SubscriptionTierMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the SubscriptionTier entity.
// If the SubscriptionTier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionTierMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SubscriptionTierMutation) ResetName() {
	m.name = nil
}

// SetMonthlyExportLimit sets the "monthly_export_limit" field.
func (m *SubscriptionTierMutation) SetMonthlyExportLimit(i int) {
	m.monthly_export_limit = &i
	m.addmonthly_export_limit = nil
}

// MonthlyExportLimit returns the value of the "monthly_export_limit" field in the mutation.
func (m *SubscriptionTierMutation) MonthlyExportLimit() (r int, exists bool) {
	v := m.monthly_export_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldMonthlyExportLimit returns the old "monthly_export_limit" field's value of the SubscriptionTier entity.
// If the SubscriptionTier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionTierMutation) OldMonthlyExportLimit(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonthlyExportLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonthlyExportLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonthlyExportLimit: %w", err)
	}
	return oldValue.MonthlyExportLimit, nil
}

// AddMonthlyExportLimit adds i to the "monthly_export_limit" field.
func (m *SubscriptionTierMutation) AddMonthlyExportLimit(i int) {
	if m.addmonthly_export_limit != nil {
		*m.addmonthly_export_limit += i
	} else {
		m.addmonthly_export_limit = &i
	}
}

// AddedMonthlyExportLimit returns the value that was added to the "monthly_export_limit" field in this mutation.
func (m *SubscriptionTierMutation) AddedMonthlyExportLimit() (r int, exists bool) {
	v := m.addmonthly_export_limit
	if v == nil {
		return
	}
	return *v, true
}

// ResetMonthlyExportLimit resets all changes to the "monthly_export_limit" field.
func (m *SubscriptionTierMutation) ResetMonthlyExportLimit() {
	m.monthly_export_limit = nil
	m.addmonthly_export_limit = nil
}

// SetFileSizeLimitMB sets the "file_size_limit_mb" field.
func (m *SubscriptionTierMutation) SetFileSizeLimitMB(i int) {
	m.file_size_limit_mb = &i
	m.addfile_size_limit_mb = nil
}

// FileSizeLimitMB returns the value of the "file_size_limit_mb" field in the mutation.
func (m *SubscriptionTierMutation) FileSizeLimitMB() (r int, exists bool) {
	v := m.file_size_limit_mb
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSizeLimitMB returns the old "file_size_limit_mb" field's value of the SubscriptionTier entity.
// If the SubscriptionTier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionTierMutation) OldFileSizeLimitMB(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSizeLimitMB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSizeLimitMB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSizeLimitMB: %w", err)
	}
	return oldValue.FileSizeLimitMB, nil
}

// AddFileSizeLimitMB adds i to the "file_size_limit_mb" field.
func (m *SubscriptionTierMutation) AddFileSizeLimitMB(i int) {
	if m.addfile_size_limit_mb != nil {
		*m.addfile_size_limit_mb += i
	} else {
		m.addfile_size_limit_mb = &i
	}
}

// AddedFileSizeLimitMB returns the value that was added to the "file_size_limit_mb" field in this mutation.
func (m *SubscriptionTierMutation) AddedFileSizeLimitMB() (r int, exists bool) {
	v := m.addfile_size_limit_mb
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSizeLimitMB resets all changes to the "file_size_limit_mb" field.
func (m *SubscriptionTierMutation) ResetFileSizeLimitMB() {
	m.file_size_limit_mb = nil
	m.addfile_size_limit_mb = nil
}

// SetFeatures sets the "features" field.
func (m *SubscriptionTierMutation) SetFeatures(s []string) {
	m.features = &s
	m.appendfeatures = nil
}

// Features returns the value of the "features" field in the mutation.
func (m *SubscriptionTierMutation) Features() (r []string, exists bool) {
	v := m.features
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatures returns the old "features" field's value of the SubscriptionTier entity.
// If the SubscriptionTier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionTierMutation) OldFeatures(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatures: %w", err)
	}
	return oldValue.Features, nil
}

// AppendFeatures adds s to the "features" field.
func (m *SubscriptionTierMutation) AppendFeatures(s []string) {
	m.appendfeatures = append(m.appendfeatures, s...)
}

// AppendedFeatures returns the list of values that were appended to the "features" field in this mutation.
func (m *SubscriptionTierMutation) AppendedFeatures() ([]string, bool) {
	if len(m.appendfeatures) == 0 {
		return nil, false
	}
	return m.appendfeatures, true
}

// ClearFeatures clears the value of the "features" field.
func (m *SubscriptionTierMutation) ClearFeatures() {
	m.features = nil
	m.appendfeatures = nil
	m.clearedFields[subscriptiontier.FieldFeatures] = struct{}{}
}

// FeaturesCleared returns if the "features" field was cleared in this mutation.
func (m *SubscriptionTierMutation) FeaturesCleared() bool {
	_, ok := m.clearedFields[subscriptiontier.FieldFeatures]
	return ok
}

// ResetFeatures resets all changes to the "features" field.
func (m *SubscriptionTierMutation) ResetFeatures() {
	m.features = nil
	m.appendfeatures = nil
	delete(m.clearedFields, subscriptiontier.FieldFeatures)
}

// Where appends a list predicates to the SubscriptionTierMutation builder.
func (m *SubscriptionTierMutation) Where(ps ...predicate.SubscriptionTier) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubscriptionTierMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubscriptionTierMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SubscriptionTier, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubscriptionTierMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubscriptionTierMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SubscriptionTier).
func (m *SubscriptionTierMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubscriptionTierMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, subscriptiontier.FieldName)
	}
	if m.monthly_export_limit != nil {
		fields = append(fields, subscriptiontier.FieldMonthlyExportLimit)
	}
	if m.file_size_limit_mb != nil {
		fields = append(fields, subscriptiontier.FieldFileSizeLimitMB)
	}
	if m.features != nil {
		fields = append(fields, subscriptiontier.FieldFeatures)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubscriptionTierMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subscriptiontier.FieldName:
		return m.Name()
	case subscriptiontier.FieldMonthlyExportLimit:
		return m.MonthlyExportLimit()
	case subscriptiontier.FieldFileSizeLimitMB:
		return m.FileSizeLimitMB()
	case subscriptiontier.FieldFeatures:
		return m.Features()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubscriptionTierMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subscriptiontier.FieldName:
		return m.OldName(ctx)
	case subscriptiontier.FieldMonthlyExportLimit:
		return m.OldMonthlyExportLimit(ctx)
	case subscriptiontier.FieldFileSizeLimitMB:
		return m.OldFileSizeLimitMB(ctx)
	case subscriptiontier.FieldFeatures:
		return m.OldFeatures(ctx)
	}
	return nil, fmt.Errorf("unknown SubscriptionTier field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubscriptionTierMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subscriptiontier.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case subscriptiontier.FieldMonthlyExportLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonthlyExportLimit(v)
		return nil
	case subscriptiontier.FieldFileSizeLimitMB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSizeLimitMB(v)
		return nil
	case subscriptiontier.FieldFeatures:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatures(v)
		return nil
	}
	return fmt.Errorf("unknown SubscriptionTier field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubscriptionTierMutation) AddedFields() []string {
	var fields []string
	if m.addmonthly_export_limit != nil {
		fields = append(fields, subscriptiontier.FieldMonthlyExportLimit)
	}
	if m.addfile_size_limit_mb != nil {
		fields = append(fields, subscriptiontier.FieldFileSizeLimitMB)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubscriptionTierMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case subscriptiontier.FieldMonthlyExportLimit:
		return m.AddedMonthlyExportLimit()
	case subscriptiontier.FieldFileSizeLimitMB:
		return m.AddedFileSizeLimitMB()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubscriptionTierMutation) AddField(name string, value ent.Value) error {
	switch name {
	case subscriptiontier.FieldMonthlyExportLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMonthlyExportLimit(v)
		return nil
	case subscriptiontier.FieldFileSizeLimitMB:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSizeLimitMB(v)
		return nil
	}
	return fmt.Errorf("unknown SubscriptionTier numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubscriptionTierMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(subscriptiontier.FieldFeatures) {
		fields = append(fields, subscriptiontier.FieldFeatures)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubscriptionTierMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubscriptionTierMutation) ClearField(name string) error {
	switch name {
	case subscriptiontier.FieldFeatures:
		m.ClearFeatures()
		return nil
	}
	return fmt.Errorf("unknown SubscriptionTier nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubscriptionTierMutation) ResetField(name string) error {
	switch name {
	case subscriptiontier.FieldName:
		m.ResetName()
		return nil
	case subscriptiontier.FieldMonthlyExportLimit:
		m.ResetMonthlyExportLimit()
		return nil
	case subscriptiontier.FieldFileSizeLimitMB:
		m.ResetFileSizeLimitMB()
		return nil
	case subscriptiontier.FieldFeatures:
		m.ResetFeatures()
		return nil
	}
	return fmt.Errorf("unknown SubscriptionTier field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubscriptionTierMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubscriptionTierMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubscriptionTierMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubscriptionTierMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubscriptionTierMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubscriptionTierMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubscriptionTierMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SubscriptionTier unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubscriptionTierMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SubscriptionTier edge %s", name)
}
