package webhook

import (
	"testing"

	"github.com/docledger/docledger/constants"
)

func TestParseQuickTransaction(t *testing.T) {
	tests := []struct {
		name string
		body string
		want QuickTransaction
		ok   bool
	}{
		{
			"hebrew with keyword",
			"סופר יוחננוף סכום 123.50",
			QuickTransaction{Vendor: "סופר יוחננוף", Amount: 123.50, Currency: constants.ILS},
			true,
		},
		{
			"english with keyword and currency",
			"office depot amount 200 usd",
			QuickTransaction{Vendor: "office depot", Amount: 200, Currency: constants.USD},
			true,
		},
		{
			"bare vendor and amount",
			"מונית 50",
			QuickTransaction{Vendor: "מונית", Amount: 50, Currency: constants.ILS},
			true,
		},
		{
			"shekel marker",
			"taxi 50 ₪",
			QuickTransaction{Vendor: "taxi", Amount: 50, Currency: constants.ILS},
			true,
		},
		{
			"decimal comma amount",
			"חניה 12,50",
			QuickTransaction{Vendor: "חניה", Amount: 12.50, Currency: constants.ILS},
			true,
		},
		{"single token", "שלום", QuickTransaction{}, false},
		{"no amount", "סתם הודעה ארוכה בלי מספרים", QuickTransaction{}, false},
		{"amount without vendor", "123.50", QuickTransaction{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseQuickTransaction(tt.body)
			if ok != tt.ok {
				t.Fatalf("ParseQuickTransaction(%q) ok = %v, want %v", tt.body, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Fatalf("ParseQuickTransaction(%q) = %+v, want %+v", tt.body, got, tt.want)
			}
		})
	}
}
