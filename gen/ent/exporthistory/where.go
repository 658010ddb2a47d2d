// Code generated by ent, DO NOT EDIT.

package exporthistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldEQ(FieldProfileID, v))
}

// ExportType applies equality check predicate on the "export_type" field. It's identical to ExportTypeEQ.
func ExportType(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldEQ(FieldExportType, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldEQ(FieldFileName, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int64) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldEQ(FieldFileSize, v))
}

// FileURL applies equality check predicate on the "file_url" field. It's identical to FileURLEQ.
func FileURL(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldEQ(FieldFileURL, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldNotIn(FieldProfileID, vs...))
}

// ExportTypeEQ applies the EQ predicate on the "export_type" field.
func ExportTypeEQ(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldEQ(FieldExportType, v))
}

// ExportTypeNEQ applies the NEQ predicate on the "export_type" field.
func ExportTypeNEQ(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldNEQ(FieldExportType, v))
}

// ExportTypeIn applies the In predicate on the "export_type" field.
func ExportTypeIn(vs ...string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldIn(FieldExportType, vs...))
}

// ExportTypeNotIn applies the NotIn predicate on the "export_type" field.
func ExportTypeNotIn(vs ...string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldNotIn(FieldExportType, vs...))
}

// ExportTypeGT applies the GT predicate on the "export_type" field.
func ExportTypeGT(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldGT(FieldExportType, v))
}

// ExportTypeGTE applies the GTE predicate on the "export_type" field.
func ExportTypeGTE(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldGTE(FieldExportType, v))
}

// ExportTypeLT applies the LT predicate on the "export_type" field.
func ExportTypeLT(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldLT(FieldExportType, v))
}

// ExportTypeLTE applies the LTE predicate on the "export_type" field.
func ExportTypeLTE(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldLTE(FieldExportType, v))
}

// ExportTypeContains applies the Contains predicate on the "export_type" field.
func ExportTypeContains(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldContains(FieldExportType, v))
}

// ExportTypeHasPrefix applies the HasPrefix predicate on the "export_type" field.
func ExportTypeHasPrefix(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldHasPrefix(FieldExportType, v))
}

// ExportTypeHasSuffix applies the HasSuffix predicate on the "export_type" field.
func ExportTypeHasSuffix(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldHasSuffix(FieldExportType, v))
}

// ExportTypeEqualFold applies the EqualFold predicate on the "export_type" field.
func ExportTypeEqualFold(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldEqualFold(FieldExportType, v))
}

// ExportTypeContainsFold applies the ContainsFold predicate on the "export_type" field.
func ExportTypeContainsFold(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldContainsFold(FieldExportType, v))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldContainsFold(FieldFileName, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int64) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int64) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int64) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int64) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int64) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int64) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int64) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int64) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldLTE(FieldFileSize, v))
}

// FileSizeIsNil applies the IsNil predicate on the "file_size" field.
func FileSizeIsNil() predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldIsNull(FieldFileSize))
}

// FileSizeNotNil applies the NotNil predicate on the "file_size" field.
func FileSizeNotNil() predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldNotNull(FieldFileSize))
}

// FileURLEQ applies the EQ predicate on the "file_url" field.
func FileURLEQ(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldEQ(FieldFileURL, v))
}

// FileURLNEQ applies the NEQ predicate on the "file_url" field.
func FileURLNEQ(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldNEQ(FieldFileURL, v))
}

// FileURLIn applies the In predicate on the "file_url" field.
func FileURLIn(vs ...string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldIn(FieldFileURL, vs...))
}

// FileURLNotIn applies the NotIn predicate on the "file_url" field.
func FileURLNotIn(vs ...string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldNotIn(FieldFileURL, vs...))
}

// FileURLGT applies the GT predicate on the "file_url" field.
func FileURLGT(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldGT(FieldFileURL, v))
}

// FileURLGTE applies the GTE predicate on the "file_url" field.
func FileURLGTE(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldGTE(FieldFileURL, v))
}

// FileURLLT applies the LT predicate on the "file_url" field.
func FileURLLT(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldLT(FieldFileURL, v))
}

// FileURLLTE applies the LTE predicate on the "file_url" field.
func FileURLLTE(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldLTE(FieldFileURL, v))
}

// FileURLContains applies the Contains predicate on the "file_url" field.
func FileURLContains(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldContains(FieldFileURL, v))
}

// FileURLHasPrefix applies the HasPrefix predicate on the "file_url" field.
func FileURLHasPrefix(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldHasPrefix(FieldFileURL, v))
}

// FileURLHasSuffix applies the HasSuffix predicate on the "file_url" field.
func FileURLHasSuffix(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldHasSuffix(FieldFileURL, v))
}

// FileURLIsNil applies the IsNil predicate on the "file_url" field.
func FileURLIsNil() predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldIsNull(FieldFileURL))
}

// FileURLNotNil applies the NotNil predicate on the "file_url" field.
func FileURLNotNil() predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldNotNull(FieldFileURL))
}

// FileURLEqualFold applies the EqualFold predicate on the "file_url" field.
func FileURLEqualFold(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldEqualFold(FieldFileURL, v))
}

// FileURLContainsFold applies the ContainsFold predicate on the "file_url" field.
func FileURLContainsFold(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldContainsFold(FieldFileURL, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ExportHistory {
	return predicate.ExportHistory(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.ExportHistory {
	return predicate.ExportHistory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.Profile) predicate.ExportHistory {
	return predicate.ExportHistory(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExportHistory) predicate.ExportHistory {
	return predicate.ExportHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExportHistory) predicate.ExportHistory {
	return predicate.ExportHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExportHistory) predicate.ExportHistory {
	return predicate.ExportHistory(sql.NotPredicates(p))
}
