package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ordermanagement/services"
)

// HandleQuotationUpdate handles PUT /api/quotations/{id}.
// Status, pdf_path, next_follow_up, follow-up history, items and packaging
// may be patched independently; item or packaging changes recompute totals.
func HandleQuotationUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		var patch services.QuotationUpdate
		if err := e.BindBody(&patch); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		}

		quotation, err := services.UpdateQuotation(app, id, patch)
		if err != nil {
			return apiError(e, "quotation_update", err)
		}

		return e.JSON(http.StatusOK, quotation)
	}
}
