package services

import "testing"

func TestAmountToWords(t *testing.T) {
	tests := []struct {
		amount float64
		expect string
	}{
		{0, "Zero Rupees Only/-"},
		{7, "Seven Rupees Only/-"},
		{15, "Fifteen Rupees Only/-"},
		{42, "Forty Two Rupees Only/-"},
		{100, "One Hundred Rupees Only/-"},
		{295, "Two Hundred and Ninety Five Rupees Only/-"},
		{1810, "One Thousand Eight Hundred and Ten Rupees Only/-"},
		{913183, "Nine Lakhs Thirteen Thousand One Hundred and Eighty Three Rupees Only/-"},
		{10000000, "One Crores Rupees Only/-"},
		{295.4, "Two Hundred and Ninety Five Rupees Only/-"},
		{295.6, "Two Hundred and Ninety Six Rupees Only/-"},
	}

	for _, tt := range tests {
		if got := AmountToWords(tt.amount); got != tt.expect {
			t.Errorf("AmountToWords(%v) = %q, want %q", tt.amount, got, tt.expect)
		}
	}
}
