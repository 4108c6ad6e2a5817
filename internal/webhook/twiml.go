package webhook

import (
	"fmt"
	"net/http"
	"strings"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// writeTwiML replies to the messaging provider with a single outbound
// message. Providers expect 200 with an XML body; error statuses trigger
// provider-side retries.
func writeTwiML(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w,
		`<?xml version="1.0" encoding="UTF-8"?><Response><Message><Body>%s</Body></Message></Response>`,
		xmlEscaper.Replace(text),
	)
}
