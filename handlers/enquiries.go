package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleEnquiryCreate handles POST /api/enquiries.
func HandleEnquiryCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var body struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Phone   string `json:"phone"`
			Message string `json:"message"`
		}
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		}
		if body.Name == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"message": "Name is required"})
		}

		col, err := app.FindCollectionByNameOrId("enquiries")
		if err != nil {
			return apiError(e, "enquiries: find collection", err)
		}

		rec := core.NewRecord(col)
		rec.Set("name", body.Name)
		rec.Set("email", body.Email)
		rec.Set("phone", body.Phone)
		rec.Set("message", body.Message)
		rec.Set("status", "Pending")

		if err := app.Save(rec); err != nil {
			log.Printf("enquiries: could not save enquiry: %v", err)
			return e.JSON(http.StatusBadRequest, map[string]string{"message": "Could not save enquiry"})
		}

		return e.JSON(http.StatusOK, rec)
	}
}

// HandleEnquiryList handles GET /api/enquiries.
func HandleEnquiryList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records := []*core.Record{}
		err := app.RecordQuery("enquiries").OrderBy("created DESC").All(&records)
		if err != nil {
			return apiError(e, "enquiries: list", err)
		}
		return e.JSON(http.StatusOK, records)
	}
}
