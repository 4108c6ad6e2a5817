package parse

import (
	"strings"
	"unicode"
)

const (
	vendorScanLines = 15
	vendorMinLen    = 3
	vendorMaxLen    = 120
	vendorTruncLen  = 80
)

// Lines containing these are headers/boilerplate, never a vendor name.
var vendorBoilerplate = []string{
	"חשבונית",
	"קבלה",
	"מס",
	"תאריך",
	`סה"כ`,
	"סה״כ",
	"total",
	"tax",
	"vat",
	"invoice",
	"receipt",
	"date",
}

// parseVendor returns the first of the leading non-empty lines that looks
// like a business name: not too short or long, no boilerplate keywords, at
// most 10 digits (more is likely a phone or registration number), and at
// least one letter.
func parseVendor(text string) string {
	seen := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		seen++
		if seen > vendorScanLines {
			break
		}

		runes := []rune(line)
		if len(runes) < vendorMinLen || len(runes) > vendorMaxLen {
			continue
		}
		lower := strings.ToLower(line)
		if containsAny(lower, vendorBoilerplate) {
			continue
		}
		digits, letters := 0, 0
		for _, r := range runes {
			switch {
			case unicode.IsDigit(r):
				digits++
			case unicode.IsLetter(r):
				letters++
			}
		}
		if digits > 10 || letters == 0 {
			continue
		}
		if len(runes) > vendorTruncLen {
			return string(runes[:vendorTruncLen])
		}
		return line
	}
	return ""
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}
