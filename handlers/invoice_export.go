package handlers

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ordermanagement/services"
)

// HandleInvoicePDF handles GET /api/invoices/{id}/pdf.
func HandleInvoicePDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		data, err := services.BuildInvoiceExportData(app, id)
		if err != nil {
			return apiError(e, "invoice_pdf", err)
		}

		pdf, err := services.GenerateInvoicePDF(data)
		if err != nil {
			return apiError(e, "invoice_pdf", err)
		}

		filename := fmt.Sprintf("Invoice_%s.pdf", data.InvoiceNumber)
		return writeAttachment(e, "application/pdf", filename, pdf)
	}
}

// HandleInvoiceRegisterExcel handles GET /api/invoices/export/excel.
func HandleInvoiceRegisterExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rows, err := services.BuildInvoiceRegister(app)
		if err != nil {
			return apiError(e, "invoice_register_excel", err)
		}

		xlsx, err := services.GenerateInvoiceRegisterExcel(rows)
		if err != nil {
			return apiError(e, "invoice_register_excel", err)
		}

		const contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		return writeAttachment(e, contentType, "Invoice_Register.xlsx", xlsx)
	}
}
