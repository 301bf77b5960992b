package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ordermanagement/collections"
	"ordermanagement/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Enquiries ───────────────────────────────────────────
		se.Router.POST("/api/enquiries", handlers.HandleEnquiryCreate(app))
		se.Router.GET("/api/enquiries", handlers.HandleEnquiryList(app))

		// ── Products ────────────────────────────────────────────
		se.Router.POST("/api/products", handlers.HandleProductCreate(app))
		se.Router.GET("/api/products", handlers.HandleProductList(app))

		// ── Quotations ──────────────────────────────────────────
		se.Router.POST("/api/quotations", handlers.HandleQuotationCreate(app))
		se.Router.GET("/api/quotations", handlers.HandleQuotationList(app))
		se.Router.PUT("/api/quotations/{id}", handlers.HandleQuotationUpdate(app))
		se.Router.DELETE("/api/quotations/{id}", handlers.HandleQuotationDelete(app))

		// ── Invoices ────────────────────────────────────────────
		se.Router.POST("/api/invoices/from-quotation", handlers.HandleInvoiceCreate(app))
		se.Router.GET("/api/invoices", handlers.HandleInvoiceList(app))
		se.Router.PUT("/api/invoices/{id}", handlers.HandleInvoiceUpdate(app))

		// ── Invoice exports (before /api/invoices/{id}/* so "export"
		// is not matched as an invoice ID) ──────────────────────
		se.Router.GET("/api/invoices/export/excel", handlers.HandleInvoiceRegisterExcel(app))
		se.Router.GET("/api/invoices/{id}/tally-xml", handlers.HandleTallyExport(app))
		se.Router.GET("/api/invoices/{id}/pdf", handlers.HandleInvoicePDF(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
