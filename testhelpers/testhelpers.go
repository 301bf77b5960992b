// Package testhelpers provides utilities for testing the PocketBase-backed
// order management application.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ordermanagement/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestEnquiry creates an enquiry record with the given name and returns it.
func CreateTestEnquiry(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("enquiries")
	if err != nil {
		t.Fatalf("failed to find enquiries collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("status", "Pending")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test enquiry: %v", err)
	}

	return record
}

// CreateTestProduct creates a product record with the given name and returns it.
func CreateTestProduct(t *testing.T, app *pocketbase.PocketBase, name string, price float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		t.Fatalf("failed to find products collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("price", price)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test product: %v", err)
	}

	return record
}

// CreateTestInvoice creates a minimal invoice record with the given invoice
// number. A fresh enquiry record is created to satisfy the required relation.
func CreateTestInvoice(t *testing.T, app *pocketbase.PocketBase, invoiceNumber string) *core.Record {
	t.Helper()

	enquiry := CreateTestEnquiry(t, app, "Invoice Party "+invoiceNumber)

	col, err := app.FindCollectionByNameOrId("invoices")
	if err != nil {
		t.Fatalf("failed to find invoices collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("enquiry", enquiry.Id)
	record.Set("invoice_number", invoiceNumber)
	record.Set("status", "Unpaid")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test invoice: %v", err)
	}

	return record
}

// AssertBodyContains checks that body contains all specified fragments.
func AssertBodyContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("response body does not contain %q\nbody: %s", frag, body)
		}
	}
}
