package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ordermanagement/services"
)

// HandleInvoiceList handles GET /api/invoices.
func HandleInvoiceList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := services.ListInvoices(app)
		if err != nil {
			return apiError(e, "invoice_list", err)
		}
		return e.JSON(http.StatusOK, records)
	}
}
