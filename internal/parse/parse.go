package parse

import (
	"regexp"
	"strconv"
	"time"
	"unicode"

	"github.com/docledger/docledger/constants"
)

// Fields holds the candidate values derived from one raw-text parse.
// Every field is optional except Currency, which always resolves via the
// default heuristic. A parse producing no fields is valid.
type Fields struct {
	Date      *time.Time
	Amount    *float64
	Vendor    string
	DocNumber string
	Currency  constants.Currency
}

// Parse runs all extraction rules over raw OCR text. It is pure: same text
// in, same fields out, no I/O.
func Parse(text string) Fields {
	return Fields{
		Date:      parseDate(text),
		Amount:    parseAmount(text),
		Vendor:    parseVendor(text),
		DocNumber: parseDocNumber(text),
		Currency:  DetectCurrency(text),
	}
}

var (
	reDateISO = regexp.MustCompile(`\b(20\d{2})[-/.](\d{1,2})[-/.](\d{1,2})\b`)
	reDateDMY = regexp.MustCompile(`\b(\d{1,2})[-/.](\d{1,2})[-/.](20\d{2})\b`)
)

// parseDate scans for yyyy-mm-dd first, then dd/mm/yyyy. The first match
// that is a real calendar date wins; impossible dates (day 32, month 13)
// are skipped and scanning continues.
func parseDate(text string) *time.Time {
	for _, m := range reDateISO.FindAllStringSubmatch(text, -1) {
		if d := validDate(m[1], m[2], m[3]); d != nil {
			return d
		}
	}
	for _, m := range reDateDMY.FindAllStringSubmatch(text, -1) {
		if d := validDate(m[3], m[2], m[1]); d != nil {
			return d
		}
	}
	return nil
}

func validDate(ys, ms, ds string) *time.Time {
	y, _ := strconv.Atoi(ys)
	mo, _ := strconv.Atoi(ms)
	d, _ := strconv.Atoi(ds)
	if mo < 1 || mo > 12 || d < 1 || d > 31 {
		return nil
	}
	t := time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 -> Mar 2); reject those.
	if t.Year() != y || t.Month() != time.Month(mo) || t.Day() != d {
		return nil
	}
	return &t
}

var reDocNumber = regexp.MustCompile(
	`(?i)(?:חשבונית\s*מס|חשבונית|קבלה|מסמך|document|invoice|receipt)\s*(?:מספר|מס'|no\.?|#)?\s*[:\-]?\s*([A-Za-z0-9\-/]{4,})`)

// parseDocNumber matches an alphanumeric token of at least 4 characters
// anchored on an invoice/receipt/document keyword.
func parseDocNumber(text string) string {
	m := reDocNumber.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

var (
	reILS = regexp.MustCompile(`(?i)[₪]|ש["״׳']?ח|\bnis\b|\bils\b`)
	reUSD = regexp.MustCompile(`(?i)[$]|\busd\b`)
	reEUR = regexp.MustCompile(`(?i)[€]|\beur\b`)
)

// DetectCurrency resolves the document currency. Explicit symbols or codes
// win; with no marker, text that is mostly non-Hebrew but contains Latin
// letters is assumed to be a foreign (USD) receipt, anything else defaults
// to the local currency.
func DetectCurrency(text string) constants.Currency {
	switch {
	case reILS.MatchString(text):
		return constants.ILS
	case reUSD.MatchString(text):
		return constants.USD
	case reEUR.MatchString(text):
		return constants.EUR
	}
	var hebrew, latin int
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Hebrew, r):
			hebrew++
		case r < 128 && unicode.IsLetter(r):
			latin++
		}
	}
	if latin > 0 && latin > hebrew {
		return constants.USD
	}
	return constants.LocalCurrency
}
