// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExportHistory is the predicate function for exporthistory builders.
type ExportHistory func(*sql.Selector)

// FieldMapping is the predicate function for fieldmapping builders.
type FieldMapping func(*sql.Selector)

// Invoice is the predicate function for invoice builders.
type Invoice func(*sql.Selector)

// InvoiceItem is the predicate function for invoiceitem builders.
type InvoiceItem func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// Subscription is the predicate function for subscription builders.
type Subscription func(*sql.Selector)

// SubscriptionTier is the predicate function for subscriptiontier builders.
type SubscriptionTier func(*sql.Selector)
