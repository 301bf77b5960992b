package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateInvoicePDF creates a PDF document for an invoice using maroto/v2.
// It returns the raw PDF bytes or an error.
func GenerateInvoicePDF(data *InvoiceExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addInvoiceHeader(m, data)
	addInvoiceMeta(m, data)
	addInvoiceItemsTable(m, data)
	addInvoiceTotals(m, data)
	addInvoiceAmountInWords(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invoice PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addInvoiceHeader adds the company letterhead and the invoice number.
func addInvoiceHeader(m core.Maroto, data *InvoiceExportData) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(data.CompanyName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("TAX INVOICE", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("%s | %s", data.CompanyAddress, data.CompanyEmail), props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Invoice #: %s", data.InvoiceNumber), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

// addInvoiceMeta adds the billed party on the left and dates/status on the right.
func addInvoiceMeta(m core.Maroto, data *InvoiceExportData) {
	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Left,
	}
	rightLabelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	rightValueStyle := props.Text{
		Size:  8,
		Align: align.Right,
	}

	m.AddRows(
		row.New(5).Add(
			col.New(6).Add(text.New("BILL TO", labelStyle)),
			col.New(6).Add(text.New("INVOICE DATE", rightLabelStyle)),
		),
		row.New(5).Add(
			col.New(6).Add(text.New(data.PartyName, props.Text{Size: 9, Style: fontstyle.Bold})),
			col.New(6).Add(text.New(data.InvoiceDate, rightValueStyle)),
		),
	)

	contact := data.PartyEmail
	if data.PartyPhone != "" {
		if contact != "" {
			contact += " | "
		}
		contact += data.PartyPhone
	}

	dueLabel := ""
	if data.DueDate != "" {
		dueLabel = "Due: " + data.DueDate
	}

	m.AddRows(
		row.New(5).Add(
			col.New(6).Add(text.New(contact, valueStyle)),
			col.New(6).Add(text.New(dueLabel, rightValueStyle)),
		),
		row.New(5).Add(
			col.New(6),
			col.New(6).Add(text.New("Status: "+data.Status, rightValueStyle)),
		),
	)

	m.AddRows(row.New(3))
}

// addInvoiceItemsTable adds the line-item table with GST columns.
func addInvoiceItemsTable(m core.Maroto, data *InvoiceExportData) {
	headerStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
	}
	headerRightStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	headerCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New("#", headerStyle)).WithStyle(headerCell),
			col.New(4).Add(text.New("Item", headerStyle)).WithStyle(headerCell),
			col.New(1).Add(text.New("Qty", headerRightStyle)).WithStyle(headerCell),
			col.New(2).Add(text.New("Rate", headerRightStyle)).WithStyle(headerCell),
			col.New(1).Add(text.New("GST%", headerRightStyle)).WithStyle(headerCell),
			col.New(3).Add(text.New("Amount", headerRightStyle)).WithStyle(headerCell),
		),
	)

	cellStyle := props.Text{Size: 8, Align: align.Left}
	cellRightStyle := props.Text{Size: 8, Align: align.Right}

	for _, item := range data.LineItems {
		m.AddRows(
			row.New(6).Add(
				col.New(1).Add(text.New(fmt.Sprintf("%d", item.SINo), cellStyle)),
				col.New(4).Add(text.New(item.ProductName, cellStyle)),
				col.New(1).Add(text.New(fmt.Sprintf("%d", item.Quantity), cellRightStyle)),
				col.New(2).Add(text.New(FormatINR(item.UnitPrice), cellRightStyle)),
				col.New(1).Add(text.New(fmt.Sprintf("%.0f", item.GSTPercent), cellRightStyle)),
				col.New(3).Add(text.New(FormatINR(item.Amount), cellRightStyle)),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addInvoiceTotals adds the totals block aligned to the right.
func addInvoiceTotals(m core.Maroto, data *InvoiceExportData) {
	labelStyle := props.Text{
		Size:  8,
		Align: align.Right,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Right,
	}

	totalsRow := func(label string, value float64) core.Row {
		return row.New(5).Add(
			col.New(9).Add(text.New(label, labelStyle)),
			col.New(3).Add(text.New(FormatINR(value), valueStyle)),
		)
	}

	m.AddRows(
		totalsRow("Subtotal", data.Subtotal),
		totalsRow("Packaging", data.Packaging),
		totalsRow("Packaging GST (18%)", data.PackagingGST),
		totalsRow("Total GST", data.GSTTotal),
		row.New(7).Add(
			col.New(9).Add(text.New("Grand Total", props.Text{
				Size:  10,
				Style: fontstyle.Bold,
				Align: align.Right,
			})),
			col.New(3).Add(text.New(FormatINR(data.GrandTotal), props.Text{
				Size:  10,
				Style: fontstyle.Bold,
				Align: align.Right,
			})),
		),
	)
}

// addInvoiceAmountInWords adds the grand total spelled out.
func addInvoiceAmountInWords(m core.Maroto, data *InvoiceExportData) {
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New("Amount in words: "+data.AmountInWords, props.Text{
					Size:  8,
					Style: fontstyle.Italic,
					Align: align.Left,
				}),
			),
		),
	)
}
