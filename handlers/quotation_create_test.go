package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ordermanagement/testhelpers"
)

func TestHandleQuotationCreate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	enquiry := testhelpers.CreateTestEnquiry(t, app, "Acme Industries")
	product := testhelpers.CreateTestProduct(t, app, "Widget", 100)

	handler := HandleQuotationCreate(app)

	body := `{
		"enquiry_id": "` + enquiry.Id + `",
		"items": [{"product": "` + product.Id + `", "quantity": 2, "unit_price": 100, "gst_percent": 18}],
		"packaging": 50
	}`
	req := newJSONRequest(http.MethodPost, "/api/quotations", body)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	testhelpers.AssertBodyContains(t, rec.Body.String(), `"grand_total":295`, `"status":"Pending"`)

	// Enquiry moved to Processed.
	refreshed, err := app.FindRecordById("enquiries", enquiry.Id)
	if err != nil {
		t.Fatalf("failed to reload enquiry: %v", err)
	}
	if got := refreshed.GetString("status"); got != "Processed" {
		t.Errorf("enquiry status = %q, want Processed", got)
	}
}

func TestHandleQuotationCreate_UnknownEnquiry(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleQuotationCreate(app)

	body := `{"enquiry_id": "missing123", "items": [{"product": "p1", "quantity": 1, "unit_price": 10}]}`
	req := newJSONRequest(http.MethodPost, "/api/quotations", body)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404, body: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleQuotationCreate_MissingItems(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	enquiry := testhelpers.CreateTestEnquiry(t, app, "Acme Industries")

	handler := HandleQuotationCreate(app)

	body := `{"enquiry_id": "` + enquiry.Id + `"}`
	req := newJSONRequest(http.MethodPost, "/api/quotations", body)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400, body: %s", rec.Code, rec.Body.String())
	}
}
