// Package services provides the pricing, lifecycle, derivation and export
// logic for quotations and invoices.
package services

// packagingGSTRate is the GST applied to packaging charges. Fixed at 18%;
// line items carry their own negotiated rate instead.
const packagingGSTRate = 0.18

// LineItem is one negotiated product line on a quotation or invoice.
// Amount is always derived from UnitPrice and Quantity; a caller-supplied
// value is overwritten by ComputeTotals before anything is persisted.
type LineItem struct {
	Product    string  `json:"product"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	GSTPercent float64 `json:"gst_percent"`
	Amount     float64 `json:"amount"`
}

// Totals holds the derived money fields of a quotation or invoice.
type Totals struct {
	Subtotal     float64
	ItemGSTTotal float64
	PackagingGST float64
	GSTTotal     float64
	GrandTotal   float64
}

// ComputeTotals derives line amounts and document totals from the given
// items and packaging charge. It returns a fresh item slice with Amount
// rewritten rather than mutating its input, so callers can recompute
// freely and persist items and totals together.
//
// Intermediate sums stay at full float precision; rounding to currency
// precision happens only at presentation and export boundaries.
func ComputeTotals(items []LineItem, packaging float64) ([]LineItem, Totals) {
	out := make([]LineItem, len(items))

	var totals Totals
	for i, item := range items {
		item.Amount = item.UnitPrice * float64(item.Quantity)
		totals.Subtotal += item.Amount
		totals.ItemGSTTotal += item.Amount * item.GSTPercent / 100
		out[i] = item
	}

	totals.PackagingGST = packaging * packagingGSTRate
	totals.GSTTotal = totals.ItemGSTTotal + totals.PackagingGST
	totals.GrandTotal = totals.Subtotal + packaging + totals.GSTTotal

	return out, totals
}
