package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type productDef struct {
	name        string
	description string
	price       float64
}

type enquiryDef struct {
	name    string
	email   string
	phone   string
	message string
}

var seedProducts = []productDef{
	{"MS Angle 50x50x6", "Mild steel angle, 6m length", 1450},
	{"GI Sheet 0.8mm", "Galvanized iron sheet, 8x4 ft", 2100},
	{"SS Pipe 2in", "Stainless steel pipe, schedule 40, 6m", 3250},
	{"Cable Tray 300mm", "Perforated cable tray, 2.5m section", 880},
}

var seedEnquiries = []enquiryDef{
	{"Patil Fabricators", "purchase@patilfab.in", "+91 98220 11223", "Need rates for structural steel, monthly offtake."},
	{"Kores Engineering", "stores@koreseng.co.in", "+91 98500 44556", "Quotation required for cable trays, site delivery Pune."},
}

// Seed inserts demo products and enquiries into an empty database so the
// quotation flow is usable immediately after first start.
func Seed(app *pocketbase.PocketBase) error {
	// idempotency: skip if products already exist
	productsCol, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		return fmt.Errorf("seed: could not find products collection: %w", err)
	}
	existing, err := app.FindAllRecords(productsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query products: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: products collection is empty, inserting seed data")

	enquiriesCol, err := app.FindCollectionByNameOrId("enquiries")
	if err != nil {
		return fmt.Errorf("seed: could not find enquiries collection: %w", err)
	}

	for _, p := range seedProducts {
		rec := core.NewRecord(productsCol)
		rec.Set("name", p.name)
		rec.Set("description", p.description)
		rec.Set("price", p.price)
		if err := app.Save(rec); err != nil {
			return fmt.Errorf("seed: could not save product %q: %w", p.name, err)
		}
	}

	for _, e := range seedEnquiries {
		rec := core.NewRecord(enquiriesCol)
		rec.Set("name", e.name)
		rec.Set("email", e.email)
		rec.Set("phone", e.phone)
		rec.Set("message", e.message)
		rec.Set("status", "Pending")
		if err := app.Save(rec); err != nil {
			return fmt.Errorf("seed: could not save enquiry %q: %w", e.name, err)
		}
	}

	return nil
}
