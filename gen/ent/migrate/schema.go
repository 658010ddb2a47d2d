// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExportHistoryColumns holds the columns for the "export_history" table.
	ExportHistoryColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "invoice_ids", Type: field.TypeJSON},
		{Name: "export_type", Type: field.TypeString},
		{Name: "file_name", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt64, Nullable: true},
		{Name: "file_url", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// ExportHistoryTable holds the schema information for the "export_history" table.
	ExportHistoryTable = &schema.Table{
		Name:       "export_history",
		Columns:    ExportHistoryColumns,
		PrimaryKey: []*schema.Column{ExportHistoryColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "export_history_profiles_exports",
				Columns:    []*schema.Column{ExportHistoryColumns[10]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "exporthistory_profile_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExportHistoryColumns[10], ExportHistoryColumns[8]},
			},
			{
				Name:    "exporthistory_profile_id_status",
				Unique:  false,
				Columns: []*schema.Column{ExportHistoryColumns[10], ExportHistoryColumns[6]},
			},
		},
	}
	// FieldMappingsColumns holds the columns for the "field_mappings" table.
	FieldMappingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "field_name", Type: field.TypeString},
		{Name: "validation_kind", Type: field.TypeString, Nullable: true},
		{Name: "validation_pattern", Type: field.TypeString, Nullable: true},
		{Name: "validation_message", Type: field.TypeString, Nullable: true},
		{Name: "required", Type: field.TypeBool, Default: false},
		{Name: "custom_rules", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// FieldMappingsTable holds the schema information for the "field_mappings" table.
	FieldMappingsTable = &schema.Table{
		Name:       "field_mappings",
		Columns:    FieldMappingsColumns,
		PrimaryKey: []*schema.Column{FieldMappingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "field_mappings_profiles_field_mappings",
				Columns:    []*schema.Column{FieldMappingsColumns[9]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "fieldmapping_profile_id_field_name",
				Unique:  true,
				Columns: []*schema.Column{FieldMappingsColumns[9], FieldMappingsColumns[1]},
			},
		},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "vendor_name", Type: field.TypeString, Nullable: true},
		{Name: "invoice_number", Type: field.TypeString, Nullable: true},
		{Name: "invoice_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "due_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "total_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "tax_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "subtotal", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "discount_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "additional_fees", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "currency", Type: field.TypeString, Size: 8, Default: ""},
		{Name: "payment_terms", Type: field.TypeString, Nullable: true},
		{Name: "purchase_order_number", Type: field.TypeString, Nullable: true},
		{Name: "billing_address", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "shipping_address", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "payment_method", Type: field.TypeString, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "file_url", Type: field.TypeString, Default: ""},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoices_profiles_invoices",
				Columns:    []*schema.Column{InvoicesColumns[21]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_profile_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[21], InvoicesColumns[19]},
			},
			{
				Name:    "invoice_profile_id_invoice_date",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[21], InvoicesColumns[3]},
			},
		},
	}
	// InvoiceItemsColumns holds the columns for the "invoice_items" table.
	InvoiceItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "quantity", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,3)"}},
		{Name: "unit_price", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "invoice_id", Type: field.TypeUUID},
	}
	// InvoiceItemsTable holds the schema information for the "invoice_items" table.
	InvoiceItemsTable = &schema.Table{
		Name:       "invoice_items",
		Columns:    InvoiceItemsColumns,
		PrimaryKey: []*schema.Column{InvoiceItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoice_items_invoices_items",
				Columns:    []*schema.Column{InvoiceItemsColumns[5]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoiceitem_invoice_id",
				Unique:  false,
				Columns: []*schema.Column{InvoiceItemsColumns[5]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "subscription_tier", Type: field.TypeString, Default: "free"},
		{Name: "default_currency", Type: field.TypeString, Size: 3, Default: "USD", SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profile_email",
				Unique:  true,
				Columns: []*schema.Column{ProfilesColumns[1]},
			},
		},
	}
	// SubscriptionsColumns holds the columns for the "subscriptions" table.
	SubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "customer_email", Type: field.TypeString},
		{Name: "price_id", Type: field.TypeString, Default: ""},
		{Name: "status", Type: field.TypeString, Default: ""},
		{Name: "current_period_end", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// SubscriptionsTable holds the schema information for the "subscriptions" table.
	SubscriptionsTable = &schema.Table{
		Name:       "subscriptions",
		Columns:    SubscriptionsColumns,
		PrimaryKey: []*schema.Column{SubscriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subscriptions_profiles_subscriptions",
				Columns:    []*schema.Column{SubscriptionsColumns[7]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subscription_customer_email",
				Unique:  true,
				Columns: []*schema.Column{SubscriptionsColumns[1]},
			},
		},
	}
	// SubscriptionTiersColumns holds the columns for the "subscription_tiers" table.
	SubscriptionTiersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "monthly_export_limit", Type: field.TypeInt, Default: 0},
		{Name: "file_size_limit_mb", Type: field.TypeInt, Default: 0},
		{Name: "features", Type: field.TypeJSON, Nullable: true},
	}
	// SubscriptionTiersTable holds the schema information for the "subscription_tiers" table.
	SubscriptionTiersTable = &schema.Table{
		Name:       "subscription_tiers",
		Columns:    SubscriptionTiersColumns,
		PrimaryKey: []*schema.Column{SubscriptionTiersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subscriptiontier_name",
				Unique:  true,
				Columns: []*schema.Column{SubscriptionTiersColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExportHistoryTable,
		FieldMappingsTable,
		InvoicesTable,
		InvoiceItemsTable,
		ProfilesTable,
		SubscriptionsTable,
		SubscriptionTiersTable,
	}
)

func init() {
	ExportHistoryTable.ForeignKeys[0].RefTable = ProfilesTable
	ExportHistoryTable.Annotation = &entsql.Annotation{
		Table: "export_history",
	}
	FieldMappingsTable.ForeignKeys[0].RefTable = ProfilesTable
	FieldMappingsTable.Annotation = &entsql.Annotation{
		Table: "field_mappings",
	}
	InvoicesTable.ForeignKeys[0].RefTable = ProfilesTable
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
	InvoiceItemsTable.ForeignKeys[0].RefTable = InvoicesTable
	InvoiceItemsTable.Annotation = &entsql.Annotation{
		Table: "invoice_items",
	}
	ProfilesTable.Annotation = &entsql.Annotation{
		Table: "profiles",
	}
	SubscriptionsTable.ForeignKeys[0].RefTable = ProfilesTable
	SubscriptionsTable.Annotation = &entsql.Annotation{
		Table: "subscriptions",
	}
	SubscriptionTiersTable.Annotation = &entsql.Annotation{
		Table: "subscription_tiers",
	}
}
