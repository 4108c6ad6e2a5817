package parse

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const maxPlausibleAmount = 1_000_000

var (
	reTotalHints = regexp.MustCompile(`(?i)סה["״׳']?כ|סך\s*הכל|לתשלום|grand\s*total|total|amount\s*due`)
	reVATHints   = regexp.MustCompile(`(?i)מע["״׳']?מ|\bvat\b|\btax\b`)

	// number followed by an optional adjacent currency marker
	reAmount = regexp.MustCompile(
		`(?i)(\d{1,3}(?:[, ]\d{3})*(?:[.,]\d{2})?|\d+(?:[.,]\d{2})?)\s*(₪|ש["״׳']?ח|ils|nis|usd|eur|\$|€)?`)

	reBareNumber = regexp.MustCompile(
		`\b(\d{1,3}(?:[, ]\d{3})*(?:[.,]\d{2})?|\d+(?:[.,]\d{2})?)\b`)

	reAllDigits  = regexp.MustCompile(`^\d+$`)
	reTwoDigits  = regexp.MustCompile(`^\d{2}$`)
	reNormalized = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
)

// NormalizeNumber converts OCR-flavored numeric tokens to a float. A single
// comma followed by exactly two digits with no dot is a decimal comma
// ("123,45" -> 123.45); otherwise commas are thousands separators
// ("1,234.56" -> 1234.56).
func NormalizeNumber(raw string) (float64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		parts := strings.Split(s, ",")
		if len(parts) == 2 && reAllDigits.MatchString(parts[0]) && reTwoDigits.MatchString(parts[1]) {
			s = parts[0] + "." + parts[1]
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}
	if !reNormalized.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

type amountCandidate struct {
	value float64
	score int
}

// parseAmount picks the most plausible document total. Line-scoped
// candidates are scored (+5 total keyword, -3 VAT/tax keyword, +1 adjacent
// currency marker); highest score wins, ties broken by larger magnitude.
// With no line candidates at all, the largest plausible number anywhere in
// the text is used.
func parseAmount(text string) *float64 {
	var candidates []amountCandidate

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		hasTotal := reTotalHints.MatchString(line)
		hasVAT := reVATHints.MatchString(line)

		for _, m := range reAmount.FindAllStringSubmatch(line, -1) {
			v, ok := NormalizeNumber(m[1])
			if !ok || v <= 0 || v > maxPlausibleAmount {
				continue
			}
			score := 0
			if hasTotal {
				score += 5
			}
			if hasVAT {
				score -= 3
			}
			if m[2] != "" {
				score++
			}
			candidates = append(candidates, amountCandidate{value: v, score: score})
		}
	}

	if len(candidates) > 0 {
		sort.SliceStable(candidates, func(i, j int) bool {
			if candidates[i].score != candidates[j].score {
				return candidates[i].score > candidates[j].score
			}
			return candidates[i].value > candidates[j].value
		})
		return &candidates[0].value
	}

	// Fallback: largest plausible number in the document.
	best := math.Inf(-1)
	for _, m := range reBareNumber.FindAllStringSubmatch(text, -1) {
		v, ok := NormalizeNumber(m[1])
		if !ok || v <= 0 || v >= maxPlausibleAmount {
			continue
		}
		if v > best {
			best = v
		}
	}
	if math.IsInf(best, -1) {
		return nil
	}
	return &best
}
