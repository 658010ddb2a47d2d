// Package utils holds converters between generated ent rows and the entity
// DTOs the services exchange.
package utils

import (
	"time"

	"github.com/seyi-ajadi/invoiceflow/gen/ent"
	"github.com/seyi-ajadi/invoiceflow/internal/entity"
)

// ParseYMD parses a strict YYYY-MM-DD date.
func ParseYMD(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func ToProfile(row *ent.Profile) *entity.Profile {
	if row == nil {
		return nil
	}
	return &entity.Profile{
		ID:               row.ID,
		Email:            row.Email,
		Name:             row.Name,
		SubscriptionTier: row.SubscriptionTier,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func ToFieldMapping(row *ent.FieldMapping) *entity.FieldMapping {
	if row == nil {
		return nil
	}
	return &entity.FieldMapping{
		ID:                row.ID,
		ProfileID:         row.ProfileID,
		FieldName:         row.FieldName,
		ValidationKind:    row.ValidationKind,
		ValidationPattern: row.ValidationPattern,
		ValidationMessage: row.ValidationMessage,
		Required:          row.Required,
		CustomRules:       row.CustomRules,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}

// ToInvoice converts a row; the items edge is included when loaded.
func ToInvoice(row *ent.Invoice) *entity.Invoice {
	if row == nil {
		return nil
	}
	inv := &entity.Invoice{
		ID:                  row.ID,
		ProfileID:           row.ProfileID,
		VendorName:          row.VendorName,
		InvoiceNumber:       row.InvoiceNumber,
		InvoiceDate:         row.InvoiceDate,
		DueDate:             row.DueDate,
		TotalAmount:         row.TotalAmount,
		TaxAmount:           row.TaxAmount,
		Subtotal:            row.Subtotal,
		DiscountAmount:      row.DiscountAmount,
		AdditionalFees:      row.AdditionalFees,
		Currency:            row.Currency,
		PaymentTerms:        row.PaymentTerms,
		PurchaseOrderNumber: row.PurchaseOrderNumber,
		BillingAddress:      row.BillingAddress,
		ShippingAddress:     row.ShippingAddress,
		PaymentMethod:       row.PaymentMethod,
		Notes:               row.Notes,
		FileURL:             row.FileURL,
		Status:              row.Status,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
	for _, it := range row.Edges.Items {
		inv.Items = append(inv.Items, entity.InvoiceItem{
			ID:          it.ID,
			InvoiceID:   it.InvoiceID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return inv
}

func ToExportHistory(row *ent.ExportHistory) *entity.ExportHistory {
	if row == nil {
		return nil
	}
	return &entity.ExportHistory{
		ID:           row.ID,
		ProfileID:    row.ProfileID,
		InvoiceIDs:   row.InvoiceIds,
		ExportType:   row.ExportType,
		FileName:     row.FileName,
		FileSize:     row.FileSize,
		FileURL:      row.FileURL,
		Status:       row.Status,
		ErrorMessage: row.ErrorMessage,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func ToSubscription(row *ent.Subscription) *entity.Subscription {
	if row == nil {
		return nil
	}
	return &entity.Subscription{
		ID:            row.ID,
		ProfileID:     row.ProfileID,
		CustomerEmail: row.CustomerEmail,
		PriceID:       row.PriceID,
		Status:        row.Status,
		CurrentPeriod: row.CurrentPeriodEnd,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func ToSubscriptionTier(row *ent.SubscriptionTier) *entity.SubscriptionTier {
	if row == nil {
		return nil
	}
	return &entity.SubscriptionTier{
		ID:                 row.ID,
		Name:               row.Name,
		MonthlyExportLimit: row.MonthlyExportLimit,
		FileSizeLimitMB:    row.FileSizeLimitMB,
		Features:           row.Features,
	}
}
