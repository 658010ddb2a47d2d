// Code generated by ent, DO NOT EDIT.

package subscriptiontier

import (
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldEQ(FieldName, v))
}

// MonthlyExportLimit applies equality check predicate on the "monthly_export_limit" field. It's identical to MonthlyExportLimitEQ.
func MonthlyExportLimit(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldEQ(FieldMonthlyExportLimit, v))
}

// FileSizeLimitMB applies equality check predicate on the "file_size_limit_mb" field. It's identical to FileSizeLimitMBEQ.
func FileSizeLimitMB(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldEQ(FieldFileSizeLimitMB, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldContainsFold(FieldName, v))
}

// MonthlyExportLimitEQ applies the EQ predicate on the "monthly_export_limit" field.
func MonthlyExportLimitEQ(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldEQ(FieldMonthlyExportLimit, v))
}

// MonthlyExportLimitNEQ applies the NEQ predicate on the "monthly_export_limit" field.
func MonthlyExportLimitNEQ(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldNEQ(FieldMonthlyExportLimit, v))
}

// MonthlyExportLimitIn applies the In predicate on the "monthly_export_limit" field.
func MonthlyExportLimitIn(vs ...int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldIn(FieldMonthlyExportLimit, vs...))
}

// MonthlyExportLimitNotIn applies the NotIn predicate on the "monthly_export_limit" field.
func MonthlyExportLimitNotIn(vs ...int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldNotIn(FieldMonthlyExportLimit, vs...))
}

// MonthlyExportLimitGT applies the GT predicate on the "monthly_export_limit" field.
func MonthlyExportLimitGT(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldGT(FieldMonthlyExportLimit, v))
}

// MonthlyExportLimitGTE applies the GTE predicate on the "monthly_export_limit" field.
func MonthlyExportLimitGTE(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldGTE(FieldMonthlyExportLimit, v))
}

// MonthlyExportLimitLT applies the LT predicate on the "monthly_export_limit" field.
func MonthlyExportLimitLT(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldLT(FieldMonthlyExportLimit, v))
}

// MonthlyExportLimitLTE applies the LTE predicate on the "monthly_export_limit" field.
func MonthlyExportLimitLTE(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldLTE(FieldMonthlyExportLimit, v))
}

// FileSizeLimitMBEQ applies the EQ predicate on the "file_size_limit_mb" field.
func FileSizeLimitMBEQ(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldEQ(FieldFileSizeLimitMB, v))
}

// FileSizeLimitMBNEQ applies the NEQ predicate on the "file_size_limit_mb" field.
func FileSizeLimitMBNEQ(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldNEQ(FieldFileSizeLimitMB, v))
}

// FileSizeLimitMBIn applies the In predicate on the "file_size_limit_mb" field.
func FileSizeLimitMBIn(vs ...int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldIn(FieldFileSizeLimitMB, vs...))
}

// FileSizeLimitMBNotIn applies the NotIn predicate on the "file_size_limit_mb" field.
func FileSizeLimitMBNotIn(vs ...int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldNotIn(FieldFileSizeLimitMB, vs...))
}

// FileSizeLimitMBGT applies the GT predicate on the "file_size_limit_mb" field.
func FileSizeLimitMBGT(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldGT(FieldFileSizeLimitMB, v))
}

// FileSizeLimitMBGTE applies the GTE predicate on the "file_size_limit_mb" field.
func FileSizeLimitMBGTE(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldGTE(FieldFileSizeLimitMB, v))
}

// FileSizeLimitMBLT applies the LT predicate on the "file_size_limit_mb" field.
func FileSizeLimitMBLT(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldLT(FieldFileSizeLimitMB, v))
}

// FileSizeLimitMBLTE applies the LTE predicate on the "file_size_limit_mb" field.
func FileSizeLimitMBLTE(v int) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldLTE(FieldFileSizeLimitMB, v))
}

// FeaturesIsNil applies the IsNil predicate on the "features" field.
func FeaturesIsNil() predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldIsNull(FieldFeatures))
}

// FeaturesNotNil applies the NotNil predicate on the "features" field.
func FeaturesNotNil() predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.FieldNotNull(FieldFeatures))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubscriptionTier) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubscriptionTier) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubscriptionTier) predicate.SubscriptionTier {
	return predicate.SubscriptionTier(sql.NotPredicates(p))
}
