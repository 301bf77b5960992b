package services

import "testing"

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in     float64
		expect string
	}{
		{295, "295"},
		{295.5, "295.5"},
		{0, "0"},
		{1234.56, "1234.56"},
		{100.10, "100.1"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.expect {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.expect)
		}
	}
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		expect string
	}{
		{"zero", 0, "₹0.00"},
		{"under thousand", 999, "₹999.00"},
		{"thousands", 1234, "₹1,234.00"},
		{"lakhs", 123456, "₹1,23,456.00"},
		{"crores", 12345678.90, "₹1,23,45,678.90"},
		{"negative", -1234.50, "-₹1,234.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatINR(tt.amount); got != tt.expect {
				t.Errorf("FormatINR(%v) = %q, want %q", tt.amount, got, tt.expect)
			}
		})
	}
}

func TestApplyIndianGrouping(t *testing.T) {
	tests := []struct {
		in     string
		expect string
	}{
		{"1", "1"},
		{"123", "123"},
		{"1234", "1,234"},
		{"123456", "1,23,456"},
		{"12345678", "1,23,45,678"},
	}

	for _, tt := range tests {
		if got := applyIndianGrouping(tt.in); got != tt.expect {
			t.Errorf("applyIndianGrouping(%q) = %q, want %q", tt.in, got, tt.expect)
		}
	}
}
