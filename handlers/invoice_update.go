package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ordermanagement/services"
)

// HandleInvoiceUpdate handles PUT /api/invoices/{id}.
// Only status, payment mode and the Tally voucher number are mutable;
// items, dates and totals are frozen at creation.
func HandleInvoiceUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		var patch services.InvoiceUpdate
		if err := e.BindBody(&patch); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		}

		invoice, err := services.UpdateInvoice(app, id, patch)
		if err != nil {
			return apiError(e, "invoice_update", err)
		}

		return e.JSON(http.StatusOK, invoice)
	}
}
