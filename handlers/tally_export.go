package handlers

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ordermanagement/services"
)

// HandleTallyExport handles GET /api/invoices/{id}/tally-xml.
// It streams the Tally import voucher as a downloadable XML attachment and
// marks the invoice as exported.
func HandleTallyExport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		xml, filename, err := services.ExportTallyVoucher(app, id)
		if err != nil {
			return apiError(e, "tally_export", err)
		}

		return writeAttachment(e, "text/xml", filename, xml)
	}
}
