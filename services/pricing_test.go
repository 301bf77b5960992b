package services

import "testing"

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		items        []LineItem
		packaging    float64
		expectSub    float64
		expectPkgGST float64
		expectGST    float64
		expectGrand  float64
	}{
		{
			name: "single item with packaging",
			items: []LineItem{
				{Product: "p1", Quantity: 2, UnitPrice: 100, GSTPercent: 18},
			},
			packaging:    50,
			expectSub:    200,
			expectPkgGST: 9,
			expectGST:    45,
			expectGrand:  295,
		},
		{
			name: "mixed gst rates",
			items: []LineItem{
				{Product: "p1", Quantity: 1, UnitPrice: 1000, GSTPercent: 18},
				{Product: "p2", Quantity: 3, UnitPrice: 200, GSTPercent: 5},
			},
			packaging:    0,
			expectSub:    1600,
			expectPkgGST: 0,
			expectGST:    210,
			expectGrand:  1810,
		},
		{
			name: "zero gst item",
			items: []LineItem{
				{Product: "p1", Quantity: 4, UnitPrice: 25, GSTPercent: 0},
			},
			packaging:    100,
			expectSub:    100,
			expectPkgGST: 18,
			expectGST:    18,
			expectGrand:  218,
		},
		{
			name:         "no items, packaging only",
			items:        nil,
			packaging:    200,
			expectSub:    0,
			expectPkgGST: 36,
			expectGST:    36,
			expectGrand:  236,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, totals := ComputeTotals(tt.items, tt.packaging)
			if !floatClose(totals.Subtotal, tt.expectSub) {
				t.Errorf("Subtotal = %v, want %v", totals.Subtotal, tt.expectSub)
			}
			if !floatClose(totals.PackagingGST, tt.expectPkgGST) {
				t.Errorf("PackagingGST = %v, want %v", totals.PackagingGST, tt.expectPkgGST)
			}
			if !floatClose(totals.GSTTotal, tt.expectGST) {
				t.Errorf("GSTTotal = %v, want %v", totals.GSTTotal, tt.expectGST)
			}
			if !floatClose(totals.GrandTotal, tt.expectGrand) {
				t.Errorf("GrandTotal = %v, want %v", totals.GrandTotal, tt.expectGrand)
			}
		})
	}
}

func TestComputeTotalsOverwritesAmount(t *testing.T) {
	items := []LineItem{
		{Product: "p1", Quantity: 3, UnitPrice: 10, GSTPercent: 18, Amount: 99999},
	}

	out, totals := ComputeTotals(items, 0)

	if !floatClose(out[0].Amount, 30) {
		t.Errorf("Amount = %v, want 30 (caller-supplied value must be ignored)", out[0].Amount)
	}
	if !floatClose(totals.Subtotal, 30) {
		t.Errorf("Subtotal = %v, want 30", totals.Subtotal)
	}
}

func TestComputeTotalsDoesNotMutateInput(t *testing.T) {
	items := []LineItem{
		{Product: "p1", Quantity: 2, UnitPrice: 50, GSTPercent: 18},
	}

	out, _ := ComputeTotals(items, 0)

	if items[0].Amount != 0 {
		t.Errorf("input Amount = %v, want 0 (input slice must not be mutated)", items[0].Amount)
	}
	if out[0].Amount != 100 {
		t.Errorf("output Amount = %v, want 100", out[0].Amount)
	}
}

func TestComputeTotalsIdempotent(t *testing.T) {
	items := []LineItem{
		{Product: "p1", Quantity: 2, UnitPrice: 100, GSTPercent: 18},
		{Product: "p2", Quantity: 1, UnitPrice: 75.5, GSTPercent: 12},
	}

	first, totalsA := ComputeTotals(items, 40)
	_, totalsB := ComputeTotals(first, 40)

	if totalsA != totalsB {
		t.Errorf("recompute changed totals: first %+v, second %+v", totalsA, totalsB)
	}
}
