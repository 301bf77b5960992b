package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ordermanagement/services"
	"ordermanagement/testhelpers"
)

func TestHandleQuotationUpdate_Status(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	enquiry := testhelpers.CreateTestEnquiry(t, app, "Acme Industries")

	quotation, err := services.CreateQuotation(app, services.CreateQuotationRequest{
		EnquiryID: enquiry.Id,
		Items: []services.LineItem{
			{Product: "p1", Quantity: 1, UnitPrice: 500, GSTPercent: 18},
		},
	})
	if err != nil {
		t.Fatalf("CreateQuotation failed: %v", err)
	}

	handler := HandleQuotationUpdate(app)

	req := newJSONRequest(http.MethodPut, "/api/quotations/"+quotation.Id, `{"status": "Sent"}`)
	req.SetPathValue("id", quotation.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	testhelpers.AssertBodyContains(t, rec.Body.String(), `"status":"Sent"`)
}

func TestHandleQuotationUpdate_InvalidStatus(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	enquiry := testhelpers.CreateTestEnquiry(t, app, "Acme Industries")

	quotation, err := services.CreateQuotation(app, services.CreateQuotationRequest{
		EnquiryID: enquiry.Id,
		Items: []services.LineItem{
			{Product: "p1", Quantity: 1, UnitPrice: 500, GSTPercent: 18},
		},
	})
	if err != nil {
		t.Fatalf("CreateQuotation failed: %v", err)
	}

	handler := HandleQuotationUpdate(app)

	req := newJSONRequest(http.MethodPut, "/api/quotations/"+quotation.Id, `{"status": "Approved"}`)
	req.SetPathValue("id", quotation.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400, body: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleQuotationDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	enquiry := testhelpers.CreateTestEnquiry(t, app, "Acme Industries")

	quotation, err := services.CreateQuotation(app, services.CreateQuotationRequest{
		EnquiryID: enquiry.Id,
		Items: []services.LineItem{
			{Product: "p1", Quantity: 1, UnitPrice: 10, GSTPercent: 0},
		},
	})
	if err != nil {
		t.Fatalf("CreateQuotation failed: %v", err)
	}

	handler := HandleQuotationDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/api/quotations/"+quotation.Id, nil)
	req.SetPathValue("id", quotation.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	if _, err := app.FindRecordById("quotations", quotation.Id); err == nil {
		t.Error("quotation still exists after delete")
	}
}

func TestHandleQuotationDelete_Missing(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleQuotationDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/api/quotations/missing123", nil)
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
