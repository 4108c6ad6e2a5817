package parse

import "testing"

func TestNormalizeNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"1,234.56", 1234.56, true},
		{"123,45", 123.45, true}, // decimal comma
		{"1,234", 1234, true},    // thousands separator
		{"12,345,678", 12345678, true},
		{"117.00", 117, true},
		{"0", 0, true},
		{"  250 ", 250, true},
		{"123.456", 0, false}, // three decimals is not money
		{"12,3", 123, true},   // odd grouping, commas stripped
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := NormalizeNumber(tt.raw)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Fatalf("NormalizeNumber(%q) = (%v, %v), want (%v, %v)", tt.raw, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64 // 0 means nil expected
	}{
		{
			"total beats vat",
			"מע\"מ 17.00\nסה\"כ לתשלום 117.00",
			117.00,
		},
		{
			"grand total keyword",
			"items 3\nGrand Total 542.90\nthank you",
			542.90,
		},
		{
			"tie broken by magnitude",
			"total 100\ntotal 250",
			250,
		},
		{
			"currency marker breaks score tie",
			"shipping 45.00\nitem 30.00 ₪",
			30.00,
		},
		{
			"implausible rejected",
			"ref 5,000,000",
			0,
		},
		{
			"largest plain number with no hints",
			"12.50\n99.90\n7.00",
			99.90,
		},
		{"no numbers", "שלום וברכה", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseAmount(tt.text)
			if tt.want == 0 {
				if got != nil {
					t.Fatalf("parseAmount(%q) = %v, want nil", tt.text, *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Fatalf("parseAmount(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
