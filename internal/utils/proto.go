package utils

import (
	"time"

	"github.com/google/uuid"

	invoicespb "github.com/seyi-ajadi/invoiceflow/gen/proto/invoices/v1"
	"github.com/seyi-ajadi/invoiceflow/internal/entity"
)

func ToPBProfile(p *entity.Profile) *invoicespb.Profile {
	if p == nil {
		return nil
	}
	return &invoicespb.Profile{
		Id:               p.ID.String(),
		Email:            p.Email,
		Name:             p.Name,
		SubscriptionTier: p.SubscriptionTier,
		CreatedAt:        p.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:        p.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func ToPBFieldMapping(m *entity.FieldMapping) *invoicespb.FieldMapping {
	if m == nil {
		return nil
	}
	pb := &invoicespb.FieldMapping{
		Id:        m.ID.String(),
		ProfileId: m.ProfileID.String(),
		FieldName: m.FieldName,
		Required:  m.Required,
		CreatedAt: m.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: m.UpdatedAt.Format(time.RFC3339Nano),
	}
	if m.ValidationKind != nil {
		pb.ValidationKind = *m.ValidationKind
	}
	if m.ValidationPattern != nil {
		pb.ValidationPattern = *m.ValidationPattern
	}
	if m.ValidationMessage != nil {
		pb.ValidationMessage = *m.ValidationMessage
	}
	if m.CustomRules != nil {
		pb.CustomRulesJson = string(m.CustomRules)
	}
	return pb
}

func ToPBInvoice(inv *entity.Invoice) *invoicespb.Invoice {
	if inv == nil {
		return nil
	}
	pb := &invoicespb.Invoice{
		Id:                  inv.ID.String(),
		ProfileId:           inv.ProfileID.String(),
		VendorName:          inv.VendorName,
		InvoiceNumber:       inv.InvoiceNumber,
		InvoiceDate:         fmtDatePtr(inv.InvoiceDate),
		DueDate:             fmtDatePtr(inv.DueDate),
		TotalAmount:         inv.TotalAmount,
		TaxAmount:           inv.TaxAmount,
		Subtotal:            inv.Subtotal,
		DiscountAmount:      inv.DiscountAmount,
		AdditionalFees:      inv.AdditionalFees,
		Currency:            inv.Currency,
		PaymentTerms:        inv.PaymentTerms,
		PurchaseOrderNumber: inv.PurchaseOrderNumber,
		BillingAddress:      inv.BillingAddress,
		ShippingAddress:     inv.ShippingAddress,
		PaymentMethod:       inv.PaymentMethod,
		Notes:               inv.Notes,
		FileUrl:             inv.FileURL,
		Status:              inv.Status,
		CreatedAt:           inv.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:           inv.UpdatedAt.Format(time.RFC3339Nano),
	}
	for _, it := range inv.Items {
		pb.Items = append(pb.Items, &invoicespb.InvoiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return pb
}

func ToPBExportHistory(rec *entity.ExportHistory) *invoicespb.ExportHistoryRecord {
	if rec == nil {
		return nil
	}
	pb := &invoicespb.ExportHistoryRecord{
		Id:         rec.ID.String(),
		ProfileId:  rec.ProfileID.String(),
		ExportType: rec.ExportType,
		FileName:   rec.FileName,
		Status:     rec.Status,
		CreatedAt:  rec.CreatedAt.Format(time.RFC3339Nano),
	}
	for _, id := range rec.InvoiceIDs {
		pb.InvoiceIds = append(pb.InvoiceIds, id.String())
	}
	if rec.FileSize != nil {
		pb.FileSize = *rec.FileSize
	}
	if rec.FileURL != nil {
		pb.FileUrl = *rec.FileURL
	}
	if rec.ErrorMessage != nil {
		pb.ErrorMessage = *rec.ErrorMessage
	}
	return pb
}

// ParseUUIDs parses a list of string ids, failing on the first bad one.
func ParseUUIDs(ids []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, len(ids))
	for i, s := range ids {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		out[i] = id
	}
	return out, nil
}

func fmtDatePtr(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
