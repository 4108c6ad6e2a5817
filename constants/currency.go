package constants

// Currency is an ISO 4217 code. The system books everything in ILS;
// USD and EUR are recognized on parse and converted (USD) or carried
// through (EUR, no rate source).
type Currency string

const (
	ILS Currency = "ILS"
	USD Currency = "USD"
	EUR Currency = "EUR"
)

// LocalCurrency is the bookkeeping currency.
const LocalCurrency = ILS

// Currencies holds allowed values for currency columns.
var Currencies = []string{string(ILS), string(USD), string(EUR)}
