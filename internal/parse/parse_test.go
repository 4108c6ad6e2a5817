package parse

import (
	"testing"
	"time"

	"github.com/docledger/docledger/constants"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string // YYYY-MM-DD, "" for none
	}{
		{"iso", "תאריך: 2024-03-15\nסה\"כ 100", "2024-03-15"},
		{"iso dots", "2024.03.05", "2024-03-05"},
		{"dmy slashes", "תאריך 15/03/2024", "2024-03-15"},
		{"dmy single digit", "5.3.2024", "2024-03-05"},
		{"invalid skipped, later match wins", "2024-13-40 ... 15.03.2024", "2024-03-15"},
		{"impossible calendar date", "2023-02-30", ""},
		{"no date", "סה\"כ לתשלום 117.00", ""},
		{"pre-2000 ignored", "01/01/1999", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseDate(tt.text)
			if tt.want == "" {
				if got != nil {
					t.Fatalf("parseDate(%q) = %v, want nil", tt.text, got)
				}
				return
			}
			want, _ := time.Parse("2006-01-02", tt.want)
			if got == nil || !got.Equal(want) {
				t.Fatalf("parseDate(%q) = %v, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseDocNumber(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"hebrew invoice", "חשבונית מס 12345", "12345"},
		{"english invoice", "Invoice no. 2024-0042", "2024-0042"},
		{"receipt hash", "receipt #A1B2C3", "A1B2C3"},
		{"no keyword anchor", "ref 99887766", ""},
		{"too short", "invoice 123", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseDocNumber(tt.text); got != tt.want {
				t.Fatalf("parseDocNumber(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectCurrency(t *testing.T) {
	tests := []struct {
		name string
		text string
		want constants.Currency
	}{
		{"shekel symbol", "סה\"כ 100 ₪", constants.ILS},
		{"shekel letters", `סה"כ 100 ש"ח`, constants.ILS},
		{"dollar symbol", "Total $25.00", constants.USD},
		{"usd code", "total 25 USD", constants.USD},
		{"euro symbol", "Gesamt 30 €", constants.EUR},
		{"no marker latin text", "Starbucks Coffee Seattle Total 12.50", constants.USD},
		{"no marker hebrew text", "קפה ארומה תל אביב 25.00", constants.ILS},
		{"digits only", "123 456", constants.ILS},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCurrency(tt.text); got != tt.want {
				t.Fatalf("DetectCurrency(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseVendor(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"first clean line",
			"Acme Office Supplies Ltd\nInvoice no. 555\nTotal 100",
			"Acme Office Supplies Ltd",
		},
		{
			"boilerplate header skipped",
			"חשבונית מס\nסופר יוחננוף\n123",
			"סופר יוחננוף",
		},
		{
			"phone-heavy line skipped",
			"03-1234567 550123456789\nBlue Sky Cafe\n",
			"Blue Sky Cafe",
		},
		{"too short skipped", "ab\nGood Vendor Name", "Good Vendor Name"},
		{"digits only skipped", "1234 5678\n", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseVendor(tt.text); got != tt.want {
				t.Fatalf("parseVendor(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseCombined(t *testing.T) {
	text := "Acme Office Supplies Ltd\n" +
		"Invoice no. 2024-0042\n" +
		"Date 2024-05-10\n" +
		"Subtotal 100.00\n" +
		"VAT 17.00\n" +
		"Total $117.00\n"

	f := Parse(text)
	if f.Vendor != "Acme Office Supplies Ltd" {
		t.Errorf("vendor = %q", f.Vendor)
	}
	if f.DocNumber != "2024-0042" {
		t.Errorf("doc number = %q", f.DocNumber)
	}
	if f.Date == nil || f.Date.Format("2006-01-02") != "2024-05-10" {
		t.Errorf("date = %v", f.Date)
	}
	if f.Amount == nil || *f.Amount != 117.00 {
		t.Errorf("amount = %v", f.Amount)
	}
	if f.Currency != constants.USD {
		t.Errorf("currency = %s", f.Currency)
	}
}

func TestParseEmptyText(t *testing.T) {
	f := Parse("")
	if f.Date != nil || f.Amount != nil || f.Vendor != "" || f.DocNumber != "" {
		t.Fatalf("Parse(\"\") produced fields: %+v", f)
	}
	if f.Currency != constants.LocalCurrency {
		t.Fatalf("Parse(\"\") currency = %s", f.Currency)
	}
}
