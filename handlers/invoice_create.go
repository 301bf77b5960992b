package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ordermanagement/services"
)

// HandleInvoiceCreate handles POST /api/invoices/from-quotation.
// The new invoice freezes a snapshot of the quotation's items and totals.
func HandleInvoiceCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req services.CreateInvoiceRequest
		if err := e.BindBody(&req); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		}

		invoice, err := services.CreateInvoiceFromQuotation(app, req)
		if err != nil {
			return apiError(e, "invoice_create", err)
		}

		return e.JSON(http.StatusOK, invoice)
	}
}
