package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ordermanagement/services"
)

// HandleQuotationCreate handles POST /api/quotations.
// Creating a quotation marks the source enquiry as Processed.
func HandleQuotationCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req services.CreateQuotationRequest
		if err := e.BindBody(&req); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		}

		quotation, err := services.CreateQuotation(app, req)
		if err != nil {
			return apiError(e, "quotation_create", err)
		}

		return e.JSON(http.StatusOK, quotation)
	}
}
