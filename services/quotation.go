package services

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/pocketbase/core"
)

// Quotation status values. A quotation always starts at Pending unless the
// caller overrides it; transitions are externally driven only.
var quotationStatuses = []any{"Pending", "Pass", "Reject", "Sent", "Done"}

// FollowUp is one entry of a quotation's follow-up history. Insertion order
// is meaningful and preserved.
type FollowUp struct {
	Date        string `json:"date"`
	Note        string `json:"note"`
	IsCompleted bool   `json:"is_completed"`
	CreatedAt   string `json:"created_at"`
}

// FollowUpAppend is the single-entry append form of a follow-up update.
type FollowUpAppend struct {
	Date string `json:"date"`
	Note string `json:"note"`
}

// CreateQuotationRequest carries the caller-supplied fields for a new quotation.
type CreateQuotationRequest struct {
	EnquiryID    string     `json:"enquiry_id"`
	Items        []LineItem `json:"items"`
	Packaging    float64    `json:"packaging"`
	Status       string     `json:"status"`
	PDFPath      string     `json:"pdf_path"`
	NextFollowUp string     `json:"next_follow_up"`
}

func (r CreateQuotationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EnquiryID, validation.Required),
		validation.Field(&r.Items, validation.Required),
		validation.Field(&r.Packaging, validation.Min(0.0)),
		validation.Field(&r.Status, validation.In(quotationStatuses...)),
	)
}

func (i LineItem) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Product, validation.Required),
		validation.Field(&i.Quantity, validation.Required, validation.Min(1)),
		validation.Field(&i.UnitPrice, validation.Min(0.0)),
		validation.Field(&i.GSTPercent, validation.Min(0.0)),
	)
}

// QuotationUpdate is a partial update; nil fields are left untouched.
// FollowUp appends a single history entry, FollowUps replaces the whole
// history; supplying both in one update is rejected.
type QuotationUpdate struct {
	Status       *string         `json:"status"`
	PDFPath      *string         `json:"pdf_path"`
	NextFollowUp *string         `json:"next_follow_up"`
	FollowUp     *FollowUpAppend `json:"follow_up"`
	FollowUps    *[]FollowUp     `json:"follow_ups"`
	Items        *[]LineItem     `json:"items"`
	Packaging    *float64        `json:"packaging"`
}

// CreateQuotation validates the request, marks the source enquiry Processed
// and persists a new quotation with freshly computed totals. The enquiry
// status change and the quotation insert happen in one transaction, so a
// failed create leaves the enquiry untouched.
func CreateQuotation(app core.App, req CreateQuotationRequest) (*core.Record, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	enquiry, err := app.FindRecordById("enquiries", req.EnquiryID)
	if err != nil {
		return nil, fmt.Errorf("%w: enquiry %s", ErrNotFound, req.EnquiryID)
	}

	items, totals := ComputeTotals(req.Items, req.Packaging)

	status := req.Status
	if status == "" {
		status = "Pending"
	}

	var quotation *core.Record
	err = app.RunInTransaction(func(tx core.App) error {
		enquiry.Set("status", "Processed")
		if err := tx.Save(enquiry); err != nil {
			return fmt.Errorf("mark enquiry processed: %w", err)
		}

		col, err := tx.FindCollectionByNameOrId("quotations")
		if err != nil {
			return fmt.Errorf("find quotations collection: %w", err)
		}

		rec := core.NewRecord(col)
		rec.Set("enquiry", req.EnquiryID)
		rec.Set("status", status)
		rec.Set("pdf_path", req.PDFPath)
		rec.Set("next_follow_up", req.NextFollowUp)
		rec.Set("follow_ups", []FollowUp{})
		setComputedFields(rec, items, req.Packaging, totals)

		if err := tx.Save(rec); err != nil {
			return fmt.Errorf("save quotation: %w", err)
		}
		quotation = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return quotation, nil
}

// UpdateQuotation applies a partial update. Any change to items or packaging
// re-runs ComputeTotals before saving, so stored totals never go stale.
func UpdateQuotation(app core.App, id string, patch QuotationUpdate) (*core.Record, error) {
	rec, err := app.FindRecordById("quotations", id)
	if err != nil {
		return nil, fmt.Errorf("%w: quotation %s", ErrNotFound, id)
	}

	if patch.FollowUp != nil && patch.FollowUps != nil {
		return nil, fmt.Errorf("%w: follow_up and follow_ups cannot be combined in one update", ErrValidation)
	}

	if patch.Status != nil {
		if err := validation.Validate(*patch.Status, validation.Required, validation.In(quotationStatuses...)); err != nil {
			return nil, fmt.Errorf("%w: status: %v", ErrValidation, err)
		}
		rec.Set("status", *patch.Status)
	}
	if patch.PDFPath != nil {
		rec.Set("pdf_path", *patch.PDFPath)
	}
	if patch.NextFollowUp != nil {
		rec.Set("next_follow_up", *patch.NextFollowUp)
	}

	if patch.FollowUp != nil {
		if patch.FollowUp.Date == "" || patch.FollowUp.Note == "" {
			return nil, fmt.Errorf("%w: follow_up requires both date and note", ErrValidation)
		}
		history := recordFollowUps(rec)
		history = append(history, FollowUp{
			Date:      patch.FollowUp.Date,
			Note:      patch.FollowUp.Note,
			CreatedAt: nowRFC3339(),
		})
		rec.Set("follow_ups", history)
	}
	if patch.FollowUps != nil {
		rec.Set("follow_ups", *patch.FollowUps)
	}

	if patch.Items != nil || patch.Packaging != nil {
		items := recordItems(rec)
		if patch.Items != nil {
			if err := validateItems(*patch.Items); err != nil {
				return nil, err
			}
			items = *patch.Items
		}
		packaging := rec.GetFloat("packaging")
		if patch.Packaging != nil {
			if *patch.Packaging < 0 {
				return nil, fmt.Errorf("%w: packaging must not be negative", ErrValidation)
			}
			packaging = *patch.Packaging
		}
		items, totals := ComputeTotals(items, packaging)
		setComputedFields(rec, items, packaging, totals)
	}

	if err := app.Save(rec); err != nil {
		return nil, fmt.Errorf("save quotation: %w", err)
	}
	return rec, nil
}

// DeleteQuotation removes a quotation and its embedded follow-up history.
func DeleteQuotation(app core.App, id string) error {
	rec, err := app.FindRecordById("quotations", id)
	if err != nil {
		return fmt.Errorf("%w: quotation %s", ErrNotFound, id)
	}
	if err := app.Delete(rec); err != nil {
		return fmt.Errorf("delete quotation: %w", err)
	}
	return nil
}

// ListQuotations returns all quotations, newest first.
func ListQuotations(app core.App) ([]*core.Record, error) {
	records := []*core.Record{}
	err := app.RecordQuery("quotations").OrderBy("created DESC").All(&records)
	return records, err
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func validateItems(items []LineItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: items must not be empty", ErrValidation)
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("%w: item %d: %v", ErrValidation, i, err)
		}
	}
	return nil
}

// setComputedFields writes items, packaging and all derived totals in one
// place so a reader can never observe items without matching totals.
func setComputedFields(rec *core.Record, items []LineItem, packaging float64, totals Totals) {
	rec.Set("items", items)
	rec.Set("packaging", packaging)
	rec.Set("packaging_gst", totals.PackagingGST)
	rec.Set("sub_total", totals.Subtotal)
	rec.Set("gst_total", totals.GSTTotal)
	rec.Set("grand_total", totals.GrandTotal)
}

func recordItems(rec *core.Record) []LineItem {
	var items []LineItem
	if err := rec.UnmarshalJSONField("items", &items); err != nil {
		return nil
	}
	return items
}

func recordFollowUps(rec *core.Record) []FollowUp {
	var history []FollowUp
	if err := rec.UnmarshalJSONField("follow_ups", &history); err != nil {
		return nil
	}
	return history
}
