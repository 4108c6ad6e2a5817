package webhook

import "strings"

// NormalizePhone reduces a provider-formatted sender to the digit string
// stored on users. WhatsApp numbers arrive as "whatsapp:+972501234567";
// local numbers may arrive as "050-1234567" or bare nine digits.
func NormalizePhone(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if len(cleaned) >= 9 && strings.EqualFold(cleaned[:9], "whatsapp:") {
		cleaned = cleaned[9:]
	}
	var b strings.Builder
	for _, r := range cleaned {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case strings.HasPrefix(digits, "972") && len(digits) >= 12:
		return digits
	case strings.HasPrefix(digits, "0") && len(digits) >= 9:
		return "972" + digits[1:]
	case len(digits) >= 9:
		return "972" + digits[len(digits)-9:]
	}
	return digits
}
