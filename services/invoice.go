package services

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"
)

// Invoice status values. A fresh invoice is always Unpaid.
var invoiceStatuses = []any{"Unpaid", "Partially Paid", "Paid", "Cancelled"}

// maxNumberAttempts bounds regenerate-and-retry when a generated invoice
// number collides with a concurrently created invoice.
const maxNumberAttempts = 3

// CreateInvoiceRequest carries the caller-supplied fields for deriving an
// invoice from a quotation. InvoiceNumber, InvoiceDate and DueDate are
// optional; an absent number is generated, an absent date defaults to now.
type CreateInvoiceRequest struct {
	QuotationID   string `json:"quotation_id"`
	InvoiceNumber string `json:"invoice_number"`
	InvoiceDate   string `json:"invoice_date"`
	DueDate       string `json:"due_date"`
}

func (r CreateInvoiceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.QuotationID, validation.Required),
	)
}

// InvoiceUpdate is a partial update of the mutable invoice fields. Items,
// dates and totals are frozen at creation and cannot be patched.
type InvoiceUpdate struct {
	Status             *string `json:"status"`
	PaymentMode        *string `json:"payment_mode"`
	TallyVoucherNumber *string `json:"tally_voucher_number"`
}

// CreateInvoiceFromQuotation freezes the current state of a quotation into a
// new invoice: items are copied by value, packaging is carried over and
// totals are recomputed over the copy. The source quotation is not marked,
// locked or deleted; repeated calls produce further invoices.
//
// An explicit invoice number that already exists fails with ErrConflict.
// A generated number is retried with regeneration a bounded number of times
// before the conflict is surfaced.
func CreateInvoiceFromQuotation(app core.App, req CreateInvoiceRequest) (*core.Record, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	quotation, err := app.FindRecordById("quotations", req.QuotationID)
	if err != nil {
		return nil, fmt.Errorf("%w: quotation %s", ErrNotFound, req.QuotationID)
	}

	// Snapshot: LineItem is a value type, so the new slice shares no
	// storage with the quotation's items.
	source := recordItems(quotation)
	snapshot := make([]LineItem, len(source))
	copy(snapshot, source)

	packaging := quotation.GetFloat("packaging")
	items, totals := ComputeTotals(snapshot, packaging)

	invoiceDate, err := parseDateOrNow(req.InvoiceDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invoice_date: %v", ErrValidation, err)
	}

	var dueDate types.DateTime
	if req.DueDate != "" {
		dueDate, err = types.ParseDateTime(req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: due_date: %v", ErrValidation, err)
		}
	}

	col, err := app.FindCollectionByNameOrId("invoices")
	if err != nil {
		return nil, fmt.Errorf("find invoices collection: %w", err)
	}

	pinned := req.InvoiceNumber != ""
	attempts := maxNumberAttempts
	if pinned {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		number := req.InvoiceNumber
		if !pinned {
			number, err = GenerateInvoiceNumber(app, invoiceDate.Time())
			if err != nil {
				return nil, fmt.Errorf("generate invoice number: %w", err)
			}
		}

		if existing, _ := app.FindFirstRecordByData("invoices", "invoice_number", number); existing != nil {
			if pinned {
				return nil, fmt.Errorf("%w: invoice number %s already exists", ErrConflict, number)
			}
			continue
		}

		rec := core.NewRecord(col)
		rec.Set("quotation", req.QuotationID)
		rec.Set("enquiry", quotation.GetString("enquiry"))
		rec.Set("invoice_number", number)
		rec.Set("invoice_date", invoiceDate)
		rec.Set("due_date", dueDate)
		rec.Set("status", "Unpaid")
		rec.Set("tally_exported", false)
		setComputedFields(rec, items, packaging, totals)

		if err := app.Save(rec); err != nil {
			if !isInvoiceNumberTaken(err) {
				return nil, fmt.Errorf("save invoice: %w", err)
			}
			if pinned {
				return nil, fmt.Errorf("%w: invoice number %s already exists", ErrConflict, number)
			}
			// Lost a generation race; the winner's row is visible on
			// the next scan.
			continue
		}
		return rec, nil
	}

	return nil, fmt.Errorf("%w: could not allocate a unique invoice number after %d attempts", ErrConflict, attempts)
}

// UpdateInvoice patches the post-creation mutable fields: status, payment
// mode and the Tally correlation id.
func UpdateInvoice(app core.App, id string, patch InvoiceUpdate) (*core.Record, error) {
	rec, err := app.FindRecordById("invoices", id)
	if err != nil {
		return nil, fmt.Errorf("%w: invoice %s", ErrNotFound, id)
	}

	if patch.Status != nil {
		if err := validation.Validate(*patch.Status, validation.Required, validation.In(invoiceStatuses...)); err != nil {
			return nil, fmt.Errorf("%w: status: %v", ErrValidation, err)
		}
		rec.Set("status", *patch.Status)
	}
	if patch.PaymentMode != nil {
		rec.Set("payment_mode", *patch.PaymentMode)
	}
	if patch.TallyVoucherNumber != nil {
		rec.Set("tally_voucher_number", *patch.TallyVoucherNumber)
	}

	if err := app.Save(rec); err != nil {
		return nil, fmt.Errorf("save invoice: %w", err)
	}
	return rec, nil
}

// ListInvoices returns all invoices, newest first.
func ListInvoices(app core.App) ([]*core.Record, error) {
	records := []*core.Record{}
	err := app.RecordQuery("invoices").OrderBy("created DESC").All(&records)
	return records, err
}

// isInvoiceNumberTaken reports whether a save failure is the unique index on
// invoice_number firing. PocketBase surfaces unique constraint violations as
// a validation error keyed by the offending field; anything else (bad field
// value, storage failure) is a different problem and must not read as a
// number conflict.
func isInvoiceNumberTaken(err error) bool {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return false
	}
	_, ok := verrs["invoice_number"]
	return ok
}

func parseDateOrNow(value string) (types.DateTime, error) {
	if value == "" {
		return types.ParseDateTime(time.Now().UTC())
	}
	return types.ParseDateTime(value)
}
