package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ordermanagement/services"
)

// HandleQuotationList handles GET /api/quotations.
func HandleQuotationList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := services.ListQuotations(app)
		if err != nil {
			return apiError(e, "quotation_list", err)
		}
		return e.JSON(http.StatusOK, records)
	}
}
