package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"
)

// GetFiscalYear derives the two-digit "start-end" fiscal year label an
// invoice number is stamped with. Indian fiscal years run April through
// March, so January 2026 falls in "25-26" while May 2026 opens "26-27".
func GetFiscalYear(t time.Time) string {
	year := t.Year()
	month := t.Month()

	var startYear int
	if month >= time.April {
		startYear = year
	} else {
		startYear = year - 1
	}
	endYear := startYear + 1

	return fmt.Sprintf("%02d-%02d", startYear%100, endYear%100)
}

// formatInvoiceNumber renders "INV-{fy}-{seq}" with a zero-padded sequence.
func formatInvoiceNumber(fiscalYear string, sequence int) string {
	return fmt.Sprintf("INV-%s-%04d", fiscalYear, sequence)
}

// GenerateInvoiceNumber creates the next invoice number for the fiscal year
// of the given date. Format: INV-{fiscal_year}-{sequence}, e.g. INV-25-26-0007.
//
// The sequence is one past the highest sequence already stored for the
// fiscal-year prefix, so deleted invoices cannot cause a regenerated
// collision. Under concurrent creation two callers can still produce the
// same number; the unique index on invoices.invoice_number rejects the
// loser and CreateInvoiceFromQuotation regenerates, at which point the
// winner's row is visible and the rescan yields a fresh sequence.
func GenerateInvoiceNumber(app core.App, now time.Time) (string, error) {
	fiscalYear := GetFiscalYear(now)
	prefix := fmt.Sprintf("INV-%s-", fiscalYear)

	existing, err := app.FindRecordsByFilter(
		"invoices",
		"invoice_number ~ {:prefix}",
		"",
		0,
		0,
		map[string]any{"prefix": prefix + "%"},
	)
	if err != nil {
		existing = nil
	}

	maxSeq := 0
	for _, rec := range existing {
		number := rec.GetString("invoice_number")
		if !strings.HasPrefix(number, prefix) {
			continue
		}
		var seq int
		if _, err := fmt.Sscanf(number[len(prefix):], "%d", &seq); err == nil && seq > maxSeq {
			maxSeq = seq
		}
	}

	return formatInvoiceNumber(fiscalYear, maxSeq+1), nil
}
