package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ordermanagement/services"
	"ordermanagement/testhelpers"
)

func TestHandleTallyExport(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	enquiry := testhelpers.CreateTestEnquiry(t, app, "Acme Industries")
	product := testhelpers.CreateTestProduct(t, app, "Widget", 100)

	quotation, err := services.CreateQuotation(app, services.CreateQuotationRequest{
		EnquiryID: enquiry.Id,
		Items: []services.LineItem{
			{Product: product.Id, Quantity: 2, UnitPrice: 100, GSTPercent: 18},
		},
		Packaging: 50,
	})
	if err != nil {
		t.Fatalf("CreateQuotation failed: %v", err)
	}

	invoice, err := services.CreateInvoiceFromQuotation(app, services.CreateInvoiceRequest{
		QuotationID: quotation.Id,
	})
	if err != nil {
		t.Fatalf("CreateInvoiceFromQuotation failed: %v", err)
	}

	handler := HandleTallyExport(app)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/"+invoice.Id+"/tally-xml", nil)
	req.SetPathValue("id", invoice.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	if got := rec.Header().Get("Content-Type"); got != "text/xml" {
		t.Errorf("Content-Type = %q, want text/xml", got)
	}
	disposition := rec.Header().Get("Content-Disposition")
	number := invoice.GetString("invoice_number")
	if !strings.Contains(disposition, "Tally_Invoice_"+number+".xml") {
		t.Errorf("Content-Disposition = %q, want filename Tally_Invoice_%s.xml", disposition, number)
	}

	testhelpers.AssertBodyContains(t, rec.Body.String(),
		"<ENVELOPE>",
		"<VOUCHERNUMBER>"+number+"</VOUCHERNUMBER>",
		"<PARTYLEDGERNAME>Acme Industries</PARTYLEDGERNAME>",
	)

	refreshed, err := app.FindRecordById("invoices", invoice.Id)
	if err != nil {
		t.Fatalf("failed to reload invoice: %v", err)
	}
	if !refreshed.GetBool("tally_exported") {
		t.Error("invoice not marked tally_exported after export")
	}
}

func TestHandleTallyExport_MissingInvoice(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleTallyExport(app)

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/missing123/tally-xml", nil)
	req.SetPathValue("id", "missing123")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404, body: %s", rec.Code, rec.Body.String())
	}
}
