package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleProductCreate handles POST /api/products.
func HandleProductCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var body struct {
			Name        string  `json:"name"`
			Description string  `json:"description"`
			Price       float64 `json:"price"`
		}
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		}
		if body.Name == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"message": "Name is required"})
		}

		col, err := app.FindCollectionByNameOrId("products")
		if err != nil {
			return apiError(e, "products: find collection", err)
		}

		rec := core.NewRecord(col)
		rec.Set("name", body.Name)
		rec.Set("description", body.Description)
		rec.Set("price", body.Price)

		if err := app.Save(rec); err != nil {
			log.Printf("products: could not save product: %v", err)
			return e.JSON(http.StatusBadRequest, map[string]string{"message": "Could not save product"})
		}

		return e.JSON(http.StatusOK, rec)
	}
}

// HandleProductList handles GET /api/products.
func HandleProductList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records := []*core.Record{}
		err := app.RecordQuery("products").OrderBy("created DESC").All(&records)
		if err != nil {
			return apiError(e, "products: list", err)
		}
		return e.JSON(http.StatusOK, records)
	}
}
