package services

import (
	"testing"
)

func TestGenerateInvoicePDF(t *testing.T) {
	data := &InvoiceExportData{
		CompanyName:    "Shree Enterprises",
		CompanyAddress: "Plot 14, MIDC Industrial Area, Pune 411026",
		CompanyEmail:   "accounts@shreeenterprises.in",
		InvoiceNumber:  "INV-25-26-0001",
		InvoiceDate:    "15 Jan 2026",
		DueDate:        "30 Jan 2026",
		Status:         "Unpaid",
		PartyName:      "Acme Industries",
		PartyEmail:     "purchase@acme.example",
		LineItems: []InvoiceExportLineItem{
			{SINo: 1, ProductName: "Widget", Quantity: 2, UnitPrice: 100, GSTPercent: 18, Amount: 200},
		},
		Subtotal:      200,
		Packaging:     50,
		PackagingGST:  9,
		GSTTotal:      45,
		GrandTotal:    295,
		AmountInWords: "Two Hundred and Ninety Five Rupees Only/-",
	}

	result, err := GenerateInvoicePDF(data)
	if err != nil {
		t.Fatalf("GenerateInvoicePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateInvoicePDF() returned empty bytes")
	}
	// PDF files start with %PDF
	if len(result) > 4 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGenerateInvoicePDF_NoLineItems(t *testing.T) {
	data := &InvoiceExportData{
		CompanyName:   "Shree Enterprises",
		InvoiceNumber: "INV-25-26-0002",
		InvoiceDate:   "15 Jan 2026",
		Status:        "Unpaid",
		PartyName:     "Unknown",
		AmountInWords: "Zero Rupees Only/-",
	}

	result, err := GenerateInvoicePDF(data)
	if err != nil {
		t.Fatalf("GenerateInvoicePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateInvoicePDF() returned empty bytes")
	}
}
