package webhook

import (
	"strings"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/internal/parse"
)

// QuickTransaction is a ledger entry parsed from free text, e.g.
// "סופר יוחננוף סכום 123.50" or "office depot amount 200 usd".
type QuickTransaction struct {
	Vendor   string
	Amount   float64
	Currency constants.Currency
}

var quickAmountKeywords = map[string]struct{}{
	"סכום":   {},
	"amount": {},
}

var quickCurrencyMarkers = map[string]constants.Currency{
	"₪":    constants.ILS,
	`ש"ח`:  constants.ILS,
	"שח":   constants.ILS,
	"nis":  constants.ILS,
	"ils":  constants.ILS,
	"$":    constants.USD,
	"usd":  constants.USD,
	"€":    constants.EUR,
	"eur":  constants.EUR,
}

// ParseQuickTransaction recognizes "<vendor> [keyword] <amount> [currency]".
// The amount is the last token that normalizes to a plausible number;
// everything before it (minus an optional amount keyword) is the vendor.
func ParseQuickTransaction(body string) (QuickTransaction, bool) {
	tokens := strings.Fields(strings.TrimSpace(body))
	if len(tokens) < 2 {
		return QuickTransaction{}, false
	}

	amountIdx := -1
	var amount float64
	for i := len(tokens) - 1; i >= 1; i-- {
		if v, ok := parse.NormalizeNumber(tokens[i]); ok && v > 0 {
			amountIdx, amount = i, v
			break
		}
	}
	if amountIdx < 1 {
		return QuickTransaction{}, false
	}

	currency := constants.LocalCurrency
	if amountIdx+1 < len(tokens) {
		marker := strings.ToLower(tokens[amountIdx+1])
		if c, ok := quickCurrencyMarkers[marker]; ok {
			currency = c
		}
	}

	vendorTokens := tokens[:amountIdx]
	if len(vendorTokens) > 0 {
		if _, ok := quickAmountKeywords[strings.ToLower(vendorTokens[len(vendorTokens)-1])]; ok {
			vendorTokens = vendorTokens[:len(vendorTokens)-1]
		}
	}
	vendor := strings.TrimSpace(strings.Join(vendorTokens, " "))
	if vendor == "" {
		return QuickTransaction{}, false
	}

	return QuickTransaction{Vendor: vendor, Amount: amount, Currency: currency}, true
}
