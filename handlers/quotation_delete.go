package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ordermanagement/services"
)

// HandleQuotationDelete handles DELETE /api/quotations/{id}.
func HandleQuotationDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		if err := services.DeleteQuotation(app, id); err != nil {
			return apiError(e, "quotation_delete", err)
		}

		return e.JSON(http.StatusOK, map[string]string{"message": "Quotation removed"})
	}
}
