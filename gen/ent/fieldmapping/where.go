// Code generated by ent, DO NOT EDIT.

package fieldmapping

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldProfileID, v))
}

// FieldName applies equality check predicate on the "field_name" field. It's identical to FieldNameEQ.
func FieldName(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldFieldName, v))
}

// ValidationKind applies equality check predicate on the "validation_kind" field. It's identical to ValidationKindEQ.
func ValidationKind(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldValidationKind, v))
}

// ValidationPattern applies equality check predicate on the "validation_pattern" field. It's identical to ValidationPatternEQ.
func ValidationPattern(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldValidationPattern, v))
}

// ValidationMessage applies equality check predicate on the "validation_message" field. It's identical to ValidationMessageEQ.
func ValidationMessage(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldValidationMessage, v))
}

// Required applies equality check predicate on the "required" field. It's identical to RequiredEQ.
func Required(v bool) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldRequired, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNotIn(FieldProfileID, vs...))
}

// FieldNameEQ applies the EQ predicate on the "field_name" field.
func FieldNameEQ(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldFieldName, v))
}

// FieldNameNEQ applies the NEQ predicate on the "field_name" field.
func FieldNameNEQ(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNEQ(FieldFieldName, v))
}

// FieldNameIn applies the In predicate on the "field_name" field.
func FieldNameIn(vs ...string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldIn(FieldFieldName, vs...))
}

// FieldNameNotIn applies the NotIn predicate on the "field_name" field.
func FieldNameNotIn(vs ...string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNotIn(FieldFieldName, vs...))
}

// FieldNameGT applies the GT predicate on the "field_name" field.
func FieldNameGT(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGT(FieldFieldName, v))
}

// FieldNameGTE applies the GTE predicate on the "field_name" field.
func FieldNameGTE(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGTE(FieldFieldName, v))
}

// FieldNameLT applies the LT predicate on the "field_name" field.
func FieldNameLT(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLT(FieldFieldName, v))
}

// FieldNameLTE applies the LTE predicate on the "field_name" field.
func FieldNameLTE(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLTE(FieldFieldName, v))
}

// FieldNameContains applies the Contains predicate on the "field_name" field.
func FieldNameContains(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldContains(FieldFieldName, v))
}

// FieldNameHasPrefix applies the HasPrefix predicate on the "field_name" field.
func FieldNameHasPrefix(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldHasPrefix(FieldFieldName, v))
}

// FieldNameHasSuffix applies the HasSuffix predicate on the "field_name" field.
func FieldNameHasSuffix(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldHasSuffix(FieldFieldName, v))
}

// FieldNameEqualFold applies the EqualFold predicate on the "field_name" field.
func FieldNameEqualFold(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEqualFold(FieldFieldName, v))
}

// FieldNameContainsFold applies the ContainsFold predicate on the "field_name" field.
func FieldNameContainsFold(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldContainsFold(FieldFieldName, v))
}

// ValidationKindEQ applies the EQ predicate on the "validation_kind" field.
func ValidationKindEQ(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldValidationKind, v))
}

// ValidationKindNEQ applies the NEQ predicate on the "validation_kind" field.
func ValidationKindNEQ(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNEQ(FieldValidationKind, v))
}

// ValidationKindIn applies the In predicate on the "validation_kind" field.
func ValidationKindIn(vs ...string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldIn(FieldValidationKind, vs...))
}

// ValidationKindNotIn applies the NotIn predicate on the "validation_kind" field.
func ValidationKindNotIn(vs ...string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNotIn(FieldValidationKind, vs...))
}

// ValidationKindGT applies the GT predicate on the "validation_kind" field.
func ValidationKindGT(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGT(FieldValidationKind, v))
}

// ValidationKindGTE applies the GTE predicate on the "validation_kind" field.
func ValidationKindGTE(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGTE(FieldValidationKind, v))
}

// ValidationKindLT applies the LT predicate on the "validation_kind" field.
func ValidationKindLT(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLT(FieldValidationKind, v))
}

// ValidationKindLTE applies the LTE predicate on the "validation_kind" field.
func ValidationKindLTE(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLTE(FieldValidationKind, v))
}

// ValidationKindContains applies the Contains predicate on the "validation_kind" field.
func ValidationKindContains(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldContains(FieldValidationKind, v))
}

// ValidationKindHasPrefix applies the HasPrefix predicate on the "validation_kind" field.
func ValidationKindHasPrefix(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldHasPrefix(FieldValidationKind, v))
}

// ValidationKindHasSuffix applies the HasSuffix predicate on the "validation_kind" field.
func ValidationKindHasSuffix(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldHasSuffix(FieldValidationKind, v))
}

// ValidationKindIsNil applies the IsNil predicate on the "validation_kind" field.
func ValidationKindIsNil() predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldIsNull(FieldValidationKind))
}

// ValidationKindNotNil applies the NotNil predicate on the "validation_kind" field.
func ValidationKindNotNil() predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNotNull(FieldValidationKind))
}

// ValidationKindEqualFold applies the EqualFold predicate on the "validation_kind" field.
func ValidationKindEqualFold(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEqualFold(FieldValidationKind, v))
}

// ValidationKindContainsFold applies the ContainsFold predicate on the "validation_kind" field.
func ValidationKindContainsFold(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldContainsFold(FieldValidationKind, v))
}

// ValidationPatternEQ applies the EQ predicate on the "validation_pattern" field.
func ValidationPatternEQ(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldValidationPattern, v))
}

// ValidationPatternNEQ applies the NEQ predicate on the "validation_pattern" field.
func ValidationPatternNEQ(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNEQ(FieldValidationPattern, v))
}

// ValidationPatternIn applies the In predicate on the "validation_pattern" field.
func ValidationPatternIn(vs ...string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldIn(FieldValidationPattern, vs...))
}

// ValidationPatternNotIn applies the NotIn predicate on the "validation_pattern" field.
func ValidationPatternNotIn(vs ...string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNotIn(FieldValidationPattern, vs...))
}

// ValidationPatternGT applies the GT predicate on the "validation_pattern" field.
func ValidationPatternGT(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGT(FieldValidationPattern, v))
}

// ValidationPatternGTE applies the GTE predicate on the "validation_pattern" field.
func ValidationPatternGTE(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGTE(FieldValidationPattern, v))
}

// ValidationPatternLT applies the LT predicate on the "validation_pattern" field.
func ValidationPatternLT(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLT(FieldValidationPattern, v))
}

// ValidationPatternLTE applies the LTE predicate on the "validation_pattern" field.
func ValidationPatternLTE(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLTE(FieldValidationPattern, v))
}

// ValidationPatternContains applies the Contains predicate on the "validation_pattern" field.
func ValidationPatternContains(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldContains(FieldValidationPattern, v))
}

// ValidationPatternHasPrefix applies the HasPrefix predicate on the "validation_pattern" field.
func ValidationPatternHasPrefix(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldHasPrefix(FieldValidationPattern, v))
}

// ValidationPatternHasSuffix applies the HasSuffix predicate on the "validation_pattern" field.
func ValidationPatternHasSuffix(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldHasSuffix(FieldValidationPattern, v))
}

// ValidationPatternIsNil applies the IsNil predicate on the "validation_pattern" field.
func ValidationPatternIsNil() predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldIsNull(FieldValidationPattern))
}

// ValidationPatternNotNil applies the NotNil predicate on the "validation_pattern" field.
func ValidationPatternNotNil() predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNotNull(FieldValidationPattern))
}

// ValidationPatternEqualFold applies the EqualFold predicate on the "validation_pattern" field.
func ValidationPatternEqualFold(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEqualFold(FieldValidationPattern, v))
}

// ValidationPatternContainsFold applies the ContainsFold predicate on the "validation_pattern" field.
func ValidationPatternContainsFold(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldContainsFold(FieldValidationPattern, v))
}

// ValidationMessageEQ applies the EQ predicate on the "validation_message" field.
func ValidationMessageEQ(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldValidationMessage, v))
}

// ValidationMessageNEQ applies the NEQ predicate on the "validation_message" field.
func ValidationMessageNEQ(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNEQ(FieldValidationMessage, v))
}

// ValidationMessageIn applies the In predicate on the "validation_message" field.
func ValidationMessageIn(vs ...string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldIn(FieldValidationMessage, vs...))
}

// ValidationMessageNotIn applies the NotIn predicate on the "validation_message" field.
func ValidationMessageNotIn(vs ...string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNotIn(FieldValidationMessage, vs...))
}

// ValidationMessageGT applies the GT predicate on the "validation_message" field.
func ValidationMessageGT(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGT(FieldValidationMessage, v))
}

// ValidationMessageGTE applies the GTE predicate on the "validation_message" field.
func ValidationMessageGTE(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGTE(FieldValidationMessage, v))
}

// ValidationMessageLT applies the LT predicate on the "validation_message" field.
func ValidationMessageLT(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLT(FieldValidationMessage, v))
}

// ValidationMessageLTE applies the LTE predicate on the "validation_message" field.
func ValidationMessageLTE(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLTE(FieldValidationMessage, v))
}

// ValidationMessageContains applies the Contains predicate on the "validation_message" field.
func ValidationMessageContains(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldContains(FieldValidationMessage, v))
}

// ValidationMessageHasPrefix applies the HasPrefix predicate on the "validation_message" field.
func ValidationMessageHasPrefix(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldHasPrefix(FieldValidationMessage, v))
}

// ValidationMessageHasSuffix applies the HasSuffix predicate on the "validation_message" field.
func ValidationMessageHasSuffix(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldHasSuffix(FieldValidationMessage, v))
}

// ValidationMessageIsNil applies the IsNil predicate on the "validation_message" field.
func ValidationMessageIsNil() predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldIsNull(FieldValidationMessage))
}

// ValidationMessageNotNil applies the NotNil predicate on the "validation_message" field.
func ValidationMessageNotNil() predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNotNull(FieldValidationMessage))
}

// ValidationMessageEqualFold applies the EqualFold predicate on the "validation_message" field.
func ValidationMessageEqualFold(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEqualFold(FieldValidationMessage, v))
}

// ValidationMessageContainsFold applies the ContainsFold predicate on the "validation_message" field.
func ValidationMessageContainsFold(v string) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldContainsFold(FieldValidationMessage, v))
}

// RequiredEQ applies the EQ predicate on the "required" field.
func RequiredEQ(v bool) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldRequired, v))
}

// RequiredNEQ applies the NEQ predicate on the "required" field.
func RequiredNEQ(v bool) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNEQ(FieldRequired, v))
}

// CustomRulesIsNil applies the IsNil predicate on the "custom_rules" field.
func CustomRulesIsNil() predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldIsNull(FieldCustomRules))
}

// CustomRulesNotNil applies the NotNil predicate on the "custom_rules" field.
func CustomRulesNotNil() predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNotNull(FieldCustomRules))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.FieldMapping {
	return predicate.FieldMapping(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.FieldMapping {
	return predicate.FieldMapping(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.Profile) predicate.FieldMapping {
	return predicate.FieldMapping(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FieldMapping) predicate.FieldMapping {
	return predicate.FieldMapping(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FieldMapping) predicate.FieldMapping {
	return predicate.FieldMapping(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FieldMapping) predicate.FieldMapping {
	return predicate.FieldMapping(sql.NotPredicates(p))
}
