// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/seyi-ajadi/invoiceflow/db/ent/schema"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/exporthistory"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/fieldmapping"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/invoice"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/invoiceitem"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/profile"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/subscription"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/subscriptiontier"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	exporthistoryFields := schema.ExportHistory{}.Fields()
	_ = exporthistoryFields
	// exporthistoryDescExportType is the schema descriptor for export_type field.
	exporthistoryDescExportType := exporthistoryFields[3].Descriptor()
	// exporthistory.ExportTypeValidator is a validator for the "export_type" field. It is called by the builders before save.
	exporthistory.ExportTypeValidator = func() func(string) error {
		validators := exporthistoryDescExportType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(export_type string) error {
			for _, fn := range fns {
				if err := fn(export_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// exporthistoryDescFileName is the schema descriptor for file_name field.
	exporthistoryDescFileName := exporthistoryFields[4].Descriptor()
	// exporthistory.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	exporthistory.FileNameValidator = exporthistoryDescFileName.Validators[0].(func(string) error)
	// exporthistoryDescStatus is the schema descriptor for status field.
	exporthistoryDescStatus := exporthistoryFields[7].Descriptor()
	// exporthistory.DefaultStatus holds the default value on creation for the status field.
	exporthistory.DefaultStatus = exporthistoryDescStatus.Default.(string)
	// exporthistory.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	exporthistory.StatusValidator = exporthistoryDescStatus.Validators[0].(func(string) error)
	// exporthistoryDescCreatedAt is the schema descriptor for created_at field.
	exporthistoryDescCreatedAt := exporthistoryFields[9].Descriptor()
	// exporthistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	exporthistory.DefaultCreatedAt = exporthistoryDescCreatedAt.Default.(func() time.Time)
	// exporthistoryDescUpdatedAt is the schema descriptor for updated_at field.
	exporthistoryDescUpdatedAt := exporthistoryFields[10].Descriptor()
	// exporthistory.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	exporthistory.DefaultUpdatedAt = exporthistoryDescUpdatedAt.Default.(func() time.Time)
	// exporthistory.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	exporthistory.UpdateDefaultUpdatedAt = exporthistoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// exporthistoryDescID is the schema descriptor for id field.
	exporthistoryDescID := exporthistoryFields[0].Descriptor()
	// exporthistory.DefaultID holds the default value on creation for the id field.
	exporthistory.DefaultID = exporthistoryDescID.Default.(func() uuid.UUID)
	fieldmappingFields := schema.FieldMapping{}.Fields()
	_ = fieldmappingFields
	// fieldmappingDescFieldName is the schema descriptor for field_name field.
	fieldmappingDescFieldName := fieldmappingFields[2].Descriptor()
	// fieldmapping.FieldNameValidator is a validator for the "field_name" field. It is called by the builders before save.
	fieldmapping.FieldNameValidator = fieldmappingDescFieldName.Validators[0].(func(string) error)
	// fieldmappingDescRequired is the schema descriptor for required field.
	fieldmappingDescRequired := fieldmappingFields[6].Descriptor()
	// fieldmapping.DefaultRequired holds the default value on creation for the required field.
	fieldmapping.DefaultRequired = fieldmappingDescRequired.Default.(bool)
	// fieldmappingDescCreatedAt is the schema descriptor for created_at field.
	fieldmappingDescCreatedAt := fieldmappingFields[8].Descriptor()
	// fieldmapping.DefaultCreatedAt holds the default value on creation for the created_at field.
	fieldmapping.DefaultCreatedAt = fieldmappingDescCreatedAt.Default.(func() time.Time)
	// fieldmappingDescUpdatedAt is the schema descriptor for updated_at field.
	fieldmappingDescUpdatedAt := fieldmappingFields[9].Descriptor()
	// fieldmapping.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	fieldmapping.DefaultUpdatedAt = fieldmappingDescUpdatedAt.Default.(func() time.Time)
	// fieldmapping.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	fieldmapping.UpdateDefaultUpdatedAt = fieldmappingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// fieldmappingDescID is the schema descriptor for id field.
	fieldmappingDescID := fieldmappingFields[0].Descriptor()
	// fieldmapping.DefaultID holds the default value on creation for the id field.
	fieldmapping.DefaultID = fieldmappingDescID.Default.(func() uuid.UUID)
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescCurrency is the schema descriptor for currency field.
	invoiceDescCurrency := invoiceFields[11].Descriptor()
	// invoice.DefaultCurrency holds the default value on creation for the currency field.
	invoice.DefaultCurrency = invoiceDescCurrency.Default.(string)
	// invoice.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	invoice.CurrencyValidator = invoiceDescCurrency.Validators[0].(func(string) error)
	// invoiceDescFileURL is the schema descriptor for file_url field.
	invoiceDescFileURL := invoiceFields[18].Descriptor()
	// invoice.DefaultFileURL holds the default value on creation for the file_url field.
	invoice.DefaultFileURL = invoiceDescFileURL.Default.(string)
	// invoiceDescStatus is the schema descriptor for status field.
	invoiceDescStatus := invoiceFields[19].Descriptor()
	// invoice.DefaultStatus holds the default value on creation for the status field.
	invoice.DefaultStatus = invoiceDescStatus.Default.(string)
	// invoice.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	invoice.StatusValidator = invoiceDescStatus.Validators[0].(func(string) error)
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[20].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceFields[21].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	invoiceitemFields := schema.InvoiceItem{}.Fields()
	_ = invoiceitemFields
	// invoiceitemDescDescription is the schema descriptor for description field.
	invoiceitemDescDescription := invoiceitemFields[2].Descriptor()
	// invoiceitem.DefaultDescription holds the default value on creation for the description field.
	invoiceitem.DefaultDescription = invoiceitemDescDescription.Default.(string)
	// invoiceitemDescID is the schema descriptor for id field.
	invoiceitemDescID := invoiceitemFields[0].Descriptor()
	// invoiceitem.DefaultID holds the default value on creation for the id field.
	invoiceitem.DefaultID = invoiceitemDescID.Default.(func() uuid.UUID)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescEmail is the schema descriptor for email field.
	profileDescEmail := profileFields[1].Descriptor()
	// profile.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	profile.EmailValidator = profileDescEmail.Validators[0].(func(string) error)
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[2].Descriptor()
	// profile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	profile.NameValidator = profileDescName.Validators[0].(func(string) error)
	// profileDescSubscriptionTier is the schema descriptor for subscription_tier field.
	profileDescSubscriptionTier := profileFields[3].Descriptor()
	// profile.DefaultSubscriptionTier holds the default value on creation for the subscription_tier field.
	profile.DefaultSubscriptionTier = profileDescSubscriptionTier.Default.(string)
	// profile.SubscriptionTierValidator is a validator for the "subscription_tier" field. It is called by the builders before save.
	profile.SubscriptionTierValidator = profileDescSubscriptionTier.Validators[0].(func(string) error)
	// profileDescDefaultCurrency is the schema descriptor for default_currency field.
	profileDescDefaultCurrency := profileFields[4].Descriptor()
	// profile.DefaultDefaultCurrency holds the default value on creation for the default_currency field.
	profile.DefaultDefaultCurrency = profileDescDefaultCurrency.Default.(string)
	// profile.DefaultCurrencyValidator is a validator for the "default_currency" field. It is called by the builders before save.
	profile.DefaultCurrencyValidator = func() func(string) error {
		validators := profileDescDefaultCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(default_currency string) error {
			for _, fn := range fns {
				if err := fn(default_currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[5].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[6].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileFields[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
	subscriptionFields := schema.Subscription{}.Fields()
	_ = subscriptionFields
	// subscriptionDescCustomerEmail is the schema descriptor for customer_email field.
	subscriptionDescCustomerEmail := subscriptionFields[2].Descriptor()
	// subscription.CustomerEmailValidator is a validator for the "customer_email" field. It is called by the builders before save.
	subscription.CustomerEmailValidator = subscriptionDescCustomerEmail.Validators[0].(func(string) error)
	// subscriptionDescPriceID is the schema descriptor for price_id field.
	subscriptionDescPriceID := subscriptionFields[3].Descriptor()
	// subscription.DefaultPriceID holds the default value on creation for the price_id field.
	subscription.DefaultPriceID = subscriptionDescPriceID.Default.(string)
	// subscriptionDescStatus is the schema descriptor for status field.
	subscriptionDescStatus := subscriptionFields[4].Descriptor()
	// subscription.DefaultStatus holds the default value on creation for the status field.
	subscription.DefaultStatus = subscriptionDescStatus.Default.(string)
	// subscriptionDescCreatedAt is the schema descriptor for created_at field.
	subscriptionDescCreatedAt := subscriptionFields[6].Descriptor()
	// subscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	subscription.DefaultCreatedAt = subscriptionDescCreatedAt.Default.(func() time.Time)
	// subscriptionDescUpdatedAt is the schema descriptor for updated_at field.
	subscriptionDescUpdatedAt := subscriptionFields[7].Descriptor()
	// subscription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subscription.DefaultUpdatedAt = subscriptionDescUpdatedAt.Default.(func() time.Time)
	// subscription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subscription.UpdateDefaultUpdatedAt = subscriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// subscriptionDescID is the schema descriptor for id field.
	subscriptionDescID := subscriptionFields[0].Descriptor()
	// subscription.DefaultID holds the default value on creation for the id field.
	subscription.DefaultID = subscriptionDescID.Default.(func() uuid.UUID)
	subscriptiontierFields := schema.SubscriptionTier{}.Fields()
	_ = subscriptiontierFields
	// subscriptiontierDescName is the schema descriptor for name field.
	subscriptiontierDescName := subscriptiontierFields[1].Descriptor()
	// subscriptiontier.NameValidator is a validator for the "name" field. It is called by the builders before save.
	subscriptiontier.NameValidator = subscriptiontierDescName.Validators[0].(func(string) error)
	// subscriptiontierDescMonthlyExportLimit is the schema descriptor for monthly_export_limit field.
	subscriptiontierDescMonthlyExportLimit := subscriptiontierFields[2].Descriptor()
	// subscriptiontier.DefaultMonthlyExportLimit holds the default value on creation for the monthly_export_limit field.
	subscriptiontier.DefaultMonthlyExportLimit = subscriptiontierDescMonthlyExportLimit.Default.(int)
	// subscriptiontierDescFileSizeLimitMB is the schema descriptor for file_size_limit_mb field.
	subscriptiontierDescFileSizeLimitMB := subscriptiontierFields[3].Descriptor()
	// subscriptiontier.DefaultFileSizeLimitMB holds the default value on creation for the file_size_limit_mb field.
	subscriptiontier.DefaultFileSizeLimitMB = subscriptiontierDescFileSizeLimitMB.Default.(int)
	// subscriptiontierDescID is the schema descriptor for id field.
	subscriptiontierDescID := subscriptiontierFields[0].Descriptor()
	// subscriptiontier.DefaultID holds the default value on creation for the id field.
	subscriptiontier.DefaultID = subscriptiontierDescID.Default.(func() uuid.UUID)
}
