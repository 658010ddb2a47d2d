package constants

// InvoiceStatus is the canonical lifecycle tag for rows in invoices.
type InvoiceStatus string

// Stable values (store these exact strings in DB).
const (
	InvoiceStatusPending   InvoiceStatus = "PENDING"   // persisted, downstream processing not finished
	InvoiceStatusProcessed InvoiceStatus = "PROCESSED" // fully processed
	InvoiceStatusFailed    InvoiceStatus = "FAILED"    // terminal failure
)

// ExportStatus tracks the outbox state of an export_history row.
type ExportStatus string

const (
	ExportStatusPending   ExportStatus = "PENDING"
	ExportStatusCompleted ExportStatus = "COMPLETED"
	ExportStatusFailed    ExportStatus = "FAILED"
)

// Export types for export_history.export_type.
// "MERGE" for merged documents; otherwise the output format name.
const (
	ExportTypeMerge = "MERGE"
	ExportTypeText  = "TEXT"
	ExportTypeCSV   = "CSV"
	ExportTypeJSON  = "JSON"
	ExportTypeXLSX  = "XLSX"
)

// ExportTypes holds the allowed values for export_history.export_type.
var ExportTypes = []string{ExportTypeMerge, ExportTypeText, ExportTypeCSV, ExportTypeJSON, ExportTypeXLSX}

// PlanTier is the subscription level set by the billing webhook.
type PlanTier string

const (
	TierFree       PlanTier = "free"
	TierPro        PlanTier = "pro"
	TierEnterprise PlanTier = "enterprise"
)

// PlanTiers holds the allowed values for profiles.subscription_tier.
var PlanTiers = []string{string(TierFree), string(TierPro), string(TierEnterprise)}
