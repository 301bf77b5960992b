package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the enquiries, products, quotations
// and invoices collections exist. Line items and follow-up history live as
// JSON fields on their parent record, so a single save updates items and
// totals atomically.
func Setup(app *pocketbase.PocketBase) {
	enquiries := ensureCollection(app, "enquiries", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.EmailField{Name: "email"})
		c.Fields.Add(&core.TextField{Name: "phone"})
		c.Fields.Add(&core.TextField{Name: "message"})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Values:    []string{"Pending", "Processed"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "products", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "description"})
		c.Fields.Add(&core.NumberField{Name: "price"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	quotations := ensureCollection(app, "quotations", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:         "enquiry",
			Required:     true,
			CollectionId: enquiries.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.JSONField{Name: "items", MaxSize: 1 << 20})
		c.Fields.Add(&core.NumberField{Name: "packaging"})
		c.Fields.Add(&core.NumberField{Name: "packaging_gst"})
		c.Fields.Add(&core.NumberField{Name: "sub_total"})
		c.Fields.Add(&core.NumberField{Name: "gst_total"})
		c.Fields.Add(&core.NumberField{Name: "grand_total"})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"Pending", "Pass", "Reject", "Sent", "Done"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.JSONField{Name: "follow_ups", MaxSize: 1 << 20})
		c.Fields.Add(&core.DateField{Name: "next_follow_up"})
		c.Fields.Add(&core.TextField{Name: "pdf_path"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "invoices", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:         "quotation",
			CollectionId: quotations.Id,
			MaxSelect:    1,
		})
		// Not required: the invoice is a frozen snapshot, so it stays
		// valid even if the enquiry is later removed. Exports fall back
		// to an "Unknown" party in that case.
		c.Fields.Add(&core.RelationField{
			Name:         "enquiry",
			CollectionId: enquiries.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "invoice_number", Required: true})
		c.Fields.Add(&core.DateField{Name: "invoice_date"})
		c.Fields.Add(&core.DateField{Name: "due_date"})
		c.Fields.Add(&core.JSONField{Name: "items", MaxSize: 1 << 20})
		c.Fields.Add(&core.NumberField{Name: "packaging"})
		c.Fields.Add(&core.NumberField{Name: "packaging_gst"})
		c.Fields.Add(&core.NumberField{Name: "sub_total"})
		c.Fields.Add(&core.NumberField{Name: "gst_total"})
		c.Fields.Add(&core.NumberField{Name: "grand_total"})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"Unpaid", "Partially Paid", "Paid", "Cancelled"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "payment_mode"})
		c.Fields.Add(&core.BoolField{Name: "tally_exported"})
		c.Fields.Add(&core.TextField{Name: "tally_voucher_number"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})

		// Uniqueness of invoice numbers is enforced here, at the
		// persistence boundary; the derivation service retries
		// generated numbers on collision.
		c.AddIndex("idx_invoices_invoice_number", true, "invoice_number", "")
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
