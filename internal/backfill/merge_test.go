package backfill

import (
	"testing"
	"time"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/internal/entity"
	"github.com/docledger/docledger/internal/parse"
)

func staticRate(rate float64) func() float64 {
	return func() float64 { return rate }
}

func ptr[T any](v T) *T { return &v }

func baseDoc() *entity.Document {
	created := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)
	return &entity.Document{
		Date:      created,
		CreatedAt: created,
		Amount:    0,
		Vendor:    constants.PlaceholderVendor,
		Currency:  string(constants.LocalCurrency),
	}
}

func TestMergeFillsPlaceholders(t *testing.T) {
	doc := baseDoc()
	date := time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)
	f := parse.Fields{
		Date:      &date,
		Amount:    ptr(117.50),
		Vendor:    "Blue Sky Cafe",
		DocNumber: "2024-0042",
		Currency:  constants.ILS,
	}

	upd := Merge(doc, f, nil, staticRate(3.7))

	if upd.Vendor == nil || *upd.Vendor != "Blue Sky Cafe" {
		t.Errorf("vendor = %v", upd.Vendor)
	}
	if upd.Amount == nil || *upd.Amount != 117.50 {
		t.Errorf("amount = %v", upd.Amount)
	}
	if upd.DocNumber == nil || *upd.DocNumber != "2024-0042" {
		t.Errorf("doc number = %v", upd.DocNumber)
	}
	if upd.Date == nil || !upd.Date.Equal(date) {
		t.Errorf("date = %v", upd.Date)
	}
	if upd.Currency == nil || *upd.Currency != "ILS" {
		t.Errorf("currency = %v", upd.Currency)
	}
}

func TestMergeNeverClobbersUserVendor(t *testing.T) {
	doc := baseDoc()
	doc.Vendor = "Acme Corp"
	f := parse.Fields{Vendor: "Some OCR Noise", Currency: constants.ILS}

	upd := Merge(doc, f, nil, staticRate(3.7))
	if upd.Vendor != nil {
		t.Fatalf("vendor overwritten to %q", *upd.Vendor)
	}
}

func TestMergeVendorPlaceholderVariants(t *testing.T) {
	for _, v := range []string{"", "—", "-", "Unknown", "unknown", "לא ידוע", "  — "} {
		doc := baseDoc()
		doc.Vendor = v
		f := parse.Fields{Vendor: "Real Vendor", Currency: constants.ILS}
		upd := Merge(doc, f, nil, staticRate(3.7))
		if upd.Vendor == nil {
			t.Errorf("placeholder %q not overwritten", v)
		}
	}
}

func TestMergeAmountGuards(t *testing.T) {
	t.Run("user amount preserved", func(t *testing.T) {
		doc := baseDoc()
		doc.Amount = 99.00
		f := parse.Fields{Amount: ptr(117.00), Currency: constants.ILS}
		upd := Merge(doc, f, nil, staticRate(3.7))
		if upd.Amount != nil {
			t.Fatalf("amount overwritten to %v", *upd.Amount)
		}
	})

	t.Run("refines own previous guess", func(t *testing.T) {
		doc := baseDoc()
		doc.Amount = 117.00
		f := parse.Fields{Amount: ptr(117.35), Currency: constants.ILS}
		upd := Merge(doc, f, ptr(117.00), staticRate(3.7))
		if upd.Amount == nil || *upd.Amount != 117.35 {
			t.Fatalf("amount = %v, want refinement to 117.35", upd.Amount)
		}
	})

	t.Run("stored amount far from previous guess preserved", func(t *testing.T) {
		doc := baseDoc()
		doc.Amount = 200.00
		f := parse.Fields{Amount: ptr(117.00), Currency: constants.ILS}
		upd := Merge(doc, f, ptr(117.00), staticRate(3.7))
		if upd.Amount != nil {
			t.Fatalf("amount overwritten to %v", *upd.Amount)
		}
	})
}

func TestMergeDateOnlyWhenDefaulted(t *testing.T) {
	doc := baseDoc()
	// User picked a date distinct from the upload day.
	doc.Date = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	parsed := time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)
	f := parse.Fields{Date: &parsed, Currency: constants.ILS}

	upd := Merge(doc, f, nil, staticRate(3.7))
	if upd.Date != nil {
		t.Fatalf("date overwritten to %v", *upd.Date)
	}
}

func TestMergeConvertsUSD(t *testing.T) {
	doc := baseDoc()
	f := parse.Fields{Amount: ptr(100.0), Currency: constants.USD}

	upd := Merge(doc, f, nil, staticRate(3.65))
	if upd.Amount == nil || *upd.Amount != 365.00 {
		t.Fatalf("amount = %v, want 365.00", upd.Amount)
	}
	if upd.Currency == nil || *upd.Currency != "ILS" {
		t.Fatalf("currency = %v, want ILS after conversion", upd.Currency)
	}
}

func TestMergeUSDWithoutEligibleAmountNotConverted(t *testing.T) {
	doc := baseDoc()
	doc.Amount = 42.00 // user-entered
	f := parse.Fields{Amount: ptr(100.0), Currency: constants.USD}

	called := false
	upd := Merge(doc, f, nil, func() float64 {
		called = true
		return 3.7
	})
	if upd.Amount != nil {
		t.Fatalf("amount overwritten to %v", *upd.Amount)
	}
	if called {
		t.Fatal("rate source consulted with nothing to convert")
	}
	if upd.Currency == nil || *upd.Currency != "USD" {
		t.Fatalf("currency = %v, want detected USD", upd.Currency)
	}
}

func TestMergeEURStoredUnconverted(t *testing.T) {
	doc := baseDoc()
	f := parse.Fields{Amount: ptr(80.0), Currency: constants.EUR}

	upd := Merge(doc, f, nil, staticRate(3.7))
	if upd.Amount == nil || *upd.Amount != 80.0 {
		t.Fatalf("amount = %v, want 80.0 unconverted", upd.Amount)
	}
	if upd.Currency == nil || *upd.Currency != "EUR" {
		t.Fatalf("currency = %v, want EUR", upd.Currency)
	}
}
