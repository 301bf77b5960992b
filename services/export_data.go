package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"
)

// Company letterhead values (hardcoded for now).
const (
	companyName    = "Shree Enterprises"
	companyAddress = "Plot 14, MIDC Industrial Area, Pune 411026"
	companyEmail   = "accounts@shreeenterprises.in"
)

// InvoiceExportData holds all data needed to generate an invoice PDF.
type InvoiceExportData struct {
	CompanyName    string
	CompanyAddress string
	CompanyEmail   string

	InvoiceNumber string
	InvoiceDate   string
	DueDate       string
	Status        string
	PaymentMode   string

	PartyName  string
	PartyEmail string
	PartyPhone string

	LineItems []InvoiceExportLineItem

	Subtotal      float64
	Packaging     float64
	PackagingGST  float64
	GSTTotal      float64
	GrandTotal    float64
	AmountInWords string
}

// InvoiceExportLineItem holds a single line item for PDF export.
type InvoiceExportLineItem struct {
	SINo        int
	ProductName string
	Quantity    int
	UnitPrice   float64
	GSTPercent  float64
	Amount      float64
}

// InvoiceRegisterRow is one invoice in the Excel register export.
type InvoiceRegisterRow struct {
	InvoiceNumber string
	InvoiceDate   string
	PartyName     string
	Status        string
	PaymentMode   string
	Subtotal      float64
	GSTTotal      float64
	GrandTotal    float64
	TallyExported bool
}

const displayDateLayout = "02 Jan 2006"

// BuildInvoiceExportData resolves an invoice and its referenced records into
// the flat structure the PDF generator consumes.
func BuildInvoiceExportData(app core.App, invoiceID string) (*InvoiceExportData, error) {
	invoice, err := app.FindRecordById("invoices", invoiceID)
	if err != nil {
		return nil, fmt.Errorf("%w: invoice %s", ErrNotFound, invoiceID)
	}

	data := &InvoiceExportData{
		CompanyName:    companyName,
		CompanyAddress: companyAddress,
		CompanyEmail:   companyEmail,
		InvoiceNumber:  invoice.GetString("invoice_number"),
		InvoiceDate:    invoice.GetDateTime("invoice_date").Time().Format(displayDateLayout),
		Status:         invoice.GetString("status"),
		PaymentMode:    invoice.GetString("payment_mode"),
		PartyName:      unknownPartyName,
		Subtotal:       invoice.GetFloat("sub_total"),
		Packaging:      invoice.GetFloat("packaging"),
		PackagingGST:   invoice.GetFloat("packaging_gst"),
		GSTTotal:       invoice.GetFloat("gst_total"),
		GrandTotal:     invoice.GetFloat("grand_total"),
	}
	data.AmountInWords = AmountToWords(data.GrandTotal)

	if due := invoice.GetDateTime("due_date"); !due.IsZero() {
		data.DueDate = due.Time().Format(displayDateLayout)
	}

	if enquiry, err := app.FindRecordById("enquiries", invoice.GetString("enquiry")); err == nil {
		data.PartyName = enquiry.GetString("name")
		data.PartyEmail = enquiry.GetString("email")
		data.PartyPhone = enquiry.GetString("phone")
	}

	for i, item := range recordItems(invoice) {
		name := item.Product
		if product, err := app.FindRecordById("products", item.Product); err == nil {
			name = product.GetString("name")
		}
		data.LineItems = append(data.LineItems, InvoiceExportLineItem{
			SINo:        i + 1,
			ProductName: name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			GSTPercent:  item.GSTPercent,
			Amount:      item.Amount,
		})
	}

	return data, nil
}

// BuildInvoiceRegister collects all invoices, newest first, for the Excel
// register export.
func BuildInvoiceRegister(app core.App) ([]InvoiceRegisterRow, error) {
	invoices, err := ListInvoices(app)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}

	rows := make([]InvoiceRegisterRow, 0, len(invoices))
	for _, invoice := range invoices {
		partyName := unknownPartyName
		if enquiry, err := app.FindRecordById("enquiries", invoice.GetString("enquiry")); err == nil {
			partyName = enquiry.GetString("name")
		}
		rows = append(rows, InvoiceRegisterRow{
			InvoiceNumber: invoice.GetString("invoice_number"),
			InvoiceDate:   invoice.GetDateTime("invoice_date").Time().Format(displayDateLayout),
			PartyName:     partyName,
			Status:        invoice.GetString("status"),
			PaymentMode:   invoice.GetString("payment_mode"),
			Subtotal:      invoice.GetFloat("sub_total"),
			GSTTotal:      invoice.GetFloat("gst_total"),
			GrandTotal:    invoice.GetFloat("grand_total"),
			TallyExported: invoice.GetBool("tally_exported"),
		})
	}
	return rows, nil
}
