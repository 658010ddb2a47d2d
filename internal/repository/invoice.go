package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/seyi-ajadi/invoiceflow/gen/ent"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/invoice"
	"github.com/seyi-ajadi/invoiceflow/internal/common"
	"github.com/seyi-ajadi/invoiceflow/internal/entity"
	"github.com/seyi-ajadi/invoiceflow/internal/utils"
)

// InvoiceRepository persists invoices and serves the read paths of merge and
// export.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *entity.Invoice) (*entity.Invoice, error)
	GetByID(ctx context.Context, profileID, id uuid.UUID) (*entity.Invoice, error)
	ListByIDs(ctx context.Context, profileID uuid.UUID, ids []uuid.UUID) ([]*entity.Invoice, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.Invoice, error)
	SetStatus(ctx context.Context, profileID, id uuid.UUID, status string) error
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{client: client, logger: logger}
}

// Create writes the invoice and its line items in one transaction.
func (r *invoiceRepository) Create(ctx context.Context, inv *entity.Invoice) (*entity.Invoice, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	builder := tx.Invoice.Create().
		SetProfileID(inv.ProfileID).
		SetCurrency(inv.Currency).
		SetFileURL(inv.FileURL).
		SetNillableVendorName(inv.VendorName).
		SetNillableInvoiceNumber(inv.InvoiceNumber).
		SetNillableInvoiceDate(inv.InvoiceDate).
		SetNillableDueDate(inv.DueDate).
		SetNillableTotalAmount(inv.TotalAmount).
		SetNillableTaxAmount(inv.TaxAmount).
		SetNillableSubtotal(inv.Subtotal).
		SetNillableDiscountAmount(inv.DiscountAmount).
		SetNillableAdditionalFees(inv.AdditionalFees).
		SetNillablePaymentTerms(inv.PaymentTerms).
		SetNillablePurchaseOrderNumber(inv.PurchaseOrderNumber).
		SetNillableBillingAddress(inv.BillingAddress).
		SetNillableShippingAddress(inv.ShippingAddress).
		SetNillablePaymentMethod(inv.PaymentMethod).
		SetNillableNotes(inv.Notes)
	if inv.Status != "" {
		builder = builder.SetStatus(inv.Status)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to create invoice", "profile_id", inv.ProfileID, "error", err)
		return nil, err
	}

	for _, it := range inv.Items {
		_, err := tx.InvoiceItem.Create().
			SetInvoiceID(row.ID).
			SetDescription(it.Description).
			SetNillableQuantity(it.Quantity).
			SetNillableUnitPrice(it.UnitPrice).
			SetNillableTotal(it.Total).
			Save(ctx)
		if err != nil {
			_ = tx.Rollback()
			r.logger.Error("failed to create invoice item", "invoice_id", row.ID, "error", err)
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, inv.ProfileID, row.ID)
}

func (r *invoiceRepository) GetByID(ctx context.Context, profileID, id uuid.UUID) (*entity.Invoice, error) {
	row, err := r.client.Invoice.Query().
		Where(invoice.ID(id), invoice.ProfileID(profileID)).
		WithItems().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("invoice %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return utils.ToInvoice(row), nil
}

// ListByIDs returns the caller's invoices among ids; absent ids are simply
// not in the result.
func (r *invoiceRepository) ListByIDs(ctx context.Context, profileID uuid.UUID, ids []uuid.UUID) ([]*entity.Invoice, error) {
	rows, err := r.client.Invoice.Query().
		Where(invoice.ProfileID(profileID), invoice.IDIn(ids...)).
		WithItems().
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices by ids", "profile_id", profileID, "error", err)
		return nil, err
	}
	result := make([]*entity.Invoice, len(rows))
	for i, row := range rows {
		result[i] = utils.ToInvoice(row)
	}
	return result, nil
}

func (r *invoiceRepository) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.Invoice, error) {
	rows, err := r.client.Invoice.Query().
		Where(invoice.ProfileID(profileID)).
		WithItems().
		Order(ent.Desc(invoice.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "profile_id", profileID, "error", err)
		return nil, err
	}
	result := make([]*entity.Invoice, len(rows))
	for i, row := range rows {
		result[i] = utils.ToInvoice(row)
	}
	return result, nil
}

func (r *invoiceRepository) SetStatus(ctx context.Context, profileID, id uuid.UUID, status string) error {
	n, err := r.client.Invoice.Update().
		Where(invoice.ID(id), invoice.ProfileID(profileID)).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("invoice %s: %w", id, common.ErrNotFound)
	}
	return nil
}
