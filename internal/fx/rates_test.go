package fx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newTestRates(t *testing.T, url string) *Rates {
	t.Helper()
	return NewRates(Config{
		RateURL:      url,
		FallbackRate: 3.7,
		FetchTimeout: time.Second,
		TTL:          6 * time.Hour,
	}, nil)
}

func TestUSDToILSFetchAndCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"result":"success","rates":{"ILS":3.65,"EUR":0.92}}`))
	}))
	defer srv.Close()

	r := newTestRates(t, srv.URL)
	ctx := context.Background()

	if got := r.USDToILS(ctx); got != 3.65 {
		t.Fatalf("USDToILS = %v, want 3.65", got)
	}
	if got := r.USDToILS(ctx); got != 3.65 {
		t.Fatalf("cached USDToILS = %v, want 3.65", got)
	}
	if hits.Load() != 1 {
		t.Fatalf("source hit %d times, want 1", hits.Load())
	}
}

func TestUSDToILSFallbackOnError(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := newTestRates(t, srv.URL)
	ctx := context.Background()

	if got := r.USDToILS(ctx); got != 3.7 {
		t.Fatalf("USDToILS = %v, want fallback 3.7", got)
	}
	// The fallback is cached too: no hammering within the TTL.
	if got := r.USDToILS(ctx); got != 3.7 {
		t.Fatalf("cached fallback = %v, want 3.7", got)
	}
	if hits.Load() != 1 {
		t.Fatalf("source hit %d times, want 1", hits.Load())
	}
}

func TestUSDToILSRejectsImplausibleRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"rates":{"ILS":55.0}}`))
	}))
	defer srv.Close()

	r := newTestRates(t, srv.URL)
	if got := r.USDToILS(context.Background()); got != 3.7 {
		t.Fatalf("USDToILS = %v, want fallback 3.7", got)
	}
}

func TestUSDToILSRefreshAfterTTL(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		if hits.Load() == 1 {
			w.Write([]byte(`{"rates":{"ILS":3.60}}`))
			return
		}
		w.Write([]byte(`{"rates":{"ILS":3.80}}`))
	}))
	defer srv.Close()

	r := newTestRates(t, srv.URL)
	base := time.Now()
	r.now = func() time.Time { return base }

	ctx := context.Background()
	if got := r.USDToILS(ctx); got != 3.60 {
		t.Fatalf("first USDToILS = %v, want 3.60", got)
	}

	r.now = func() time.Time { return base.Add(7 * time.Hour) }
	if got := r.USDToILS(ctx); got != 3.80 {
		t.Fatalf("post-TTL USDToILS = %v, want 3.80", got)
	}
	if hits.Load() != 2 {
		t.Fatalf("source hit %d times, want 2", hits.Load())
	}
}

func TestUSDToILSMissingILSKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"rates":{"EUR":0.92}}`))
	}))
	defer srv.Close()

	r := newTestRates(t, srv.URL)
	if got := r.USDToILS(context.Background()); got != 3.7 {
		t.Fatalf("USDToILS = %v, want fallback 3.7", got)
	}
}
