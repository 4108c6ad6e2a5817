package fx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Sane band for a USD->ILS rate; anything outside means the source is
// returning garbage and the fallback is used instead.
const (
	minSaneRate = 2.0
	maxSaneRate = 10.0
)

// Source provides a USD->ILS rate. It never fails: on any upstream problem
// a configured static rate is returned.
type Source interface {
	USDToILS(ctx context.Context) float64
}

// Config for the rate cache.
type Config struct {
	RateURL      string
	FallbackRate float64
	FetchTimeout time.Duration
	TTL          time.Duration
}

// Rates is a single-slot cache of the USD->ILS rate, refreshed at most once
// per TTL. Failed refreshes populate the slot with the fallback so a flaky
// source is not hammered within the TTL window.
type Rates struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
	now    func() time.Time

	mu        sync.Mutex
	rate      float64
	fetchedAt time.Time
}

func NewRates(cfg Config, logger *slog.Logger) *Rates {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.RateURL == "" {
		cfg.RateURL = "https://open.er-api.com/v6/latest/USD"
	}
	if cfg.FallbackRate <= minSaneRate || cfg.FallbackRate >= maxSaneRate {
		cfg.FallbackRate = 3.7
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 2500 * time.Millisecond
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 6 * time.Hour
	}
	return &Rates{
		cfg:    cfg,
		client: &http.Client{},
		logger: logger,
		now:    time.Now,
	}
}

// USDToILS returns the cached rate, refreshing it when the TTL has lapsed.
func (r *Rates) USDToILS(ctx context.Context) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if !r.fetchedAt.IsZero() && now.Sub(r.fetchedAt) < r.cfg.TTL {
		return r.rate
	}

	rate, err := r.fetch(ctx)
	if err != nil {
		r.logger.Warn("rate fetch failed, using fallback", "error", err, "fallback", r.cfg.FallbackRate)
		rate = r.cfg.FallbackRate
	}
	r.rate = rate
	r.fetchedAt = now
	return r.rate
}

func (r *Rates) fetch(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.cfg.RateURL, nil)
	if err != nil {
		return 0, err
	}
	res, err := r.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return 0, err
	}
	if res.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate source returned %d", res.StatusCode)
	}

	var payload struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, fmt.Errorf("decode rate response: %w", err)
	}
	rate, ok := payload.Rates["ILS"]
	if !ok {
		return 0, fmt.Errorf("rate response missing ILS")
	}
	if rate <= minSaneRate || rate >= maxSaneRate {
		return 0, fmt.Errorf("implausible rate %v", rate)
	}
	return rate, nil
}
