package backfill

import (
	"math"
	"strings"
	"time"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/internal/entity"
	"github.com/docledger/docledger/internal/parse"
)

// amountRefineTolerance: a stored amount this close to the previous parse's
// own guess was auto-filled, so a fresh parse may refine it.
const amountRefineTolerance = 0.01

// Merge decides which parsed fields may overwrite the stored document.
// OCR output never clobbers a value the user set: only recognized
// placeholders are overwritten. prevAmount is the amount the previous parse
// of this document's stored text produced (nil when there is no stored
// text). usdToILS is only invoked when a USD amount actually needs
// converting.
func Merge(doc *entity.Document, f parse.Fields, prevAmount *float64, usdToILS func() float64) entity.ExtractionUpdate {
	var upd entity.ExtractionUpdate

	if f.Vendor != "" && isVendorPlaceholder(doc.Vendor) {
		upd.Vendor = &f.Vendor
	}
	if f.DocNumber != "" && (doc.DocNumber == nil || *doc.DocNumber == "") {
		upd.DocNumber = &f.DocNumber
	}
	if f.Date != nil && sameDay(doc.Date, doc.CreatedAt) {
		upd.Date = f.Date
	}

	amountEligible := shouldOverwriteAmount(doc.Amount, prevAmount)
	if f.Amount != nil && amountEligible {
		upd.Amount = f.Amount
	}

	if f.Currency != "" {
		cur := string(f.Currency)
		upd.Currency = &cur
	}

	// Bookkeeping is always in ILS: a USD amount that is being written is
	// converted first and stored with the local currency. The original
	// foreign figure stays recoverable from the raw text.
	if f.Currency == constants.USD && upd.Amount != nil {
		converted := round2(*upd.Amount * usdToILS())
		upd.Amount = &converted
		local := string(constants.LocalCurrency)
		upd.Currency = &local
	}

	return upd
}

// shouldOverwriteAmount: overwrite when the stored amount is still the
// upload default (zero) or when it matches the previous parse's own guess,
// meaning it was auto-filled rather than user-entered.
func shouldOverwriteAmount(current float64, prevGuess *float64) bool {
	if current == 0 {
		return true
	}
	return prevGuess != nil && math.Abs(current-*prevGuess) <= amountRefineTolerance
}

func isVendorPlaceholder(vendor string) bool {
	v := strings.TrimSpace(vendor)
	switch {
	case v == "", v == constants.PlaceholderVendor, v == "-":
		return true
	case strings.EqualFold(v, constants.UnknownVendor), v == constants.UnknownVendorHe:
		return true
	}
	return false
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
