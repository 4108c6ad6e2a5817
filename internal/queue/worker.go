package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/internal/backfill"
	"github.com/docledger/docledger/internal/entity"
	"github.com/docledger/docledger/internal/fx"
	"github.com/docledger/docledger/internal/ocr"
	"github.com/docledger/docledger/internal/parse"
	"github.com/docledger/docledger/internal/repository"
	"github.com/docledger/docledger/internal/storage"
)

// MaxAttempts is the total attempt budget per job, including the first run.
const MaxAttempts = 3

// backoffTable holds the delay before retry n (1-indexed by attempts used).
var backoffTable = []time.Duration{
	10 * time.Second,
	30 * time.Second,
	120 * time.Second,
}

// Backoff returns the retry delay after `attempts` attempts have been used.
// Out-of-range values clamp to the table edges.
func Backoff(attempts int) time.Duration {
	if attempts < 1 {
		return backoffTable[0]
	}
	if attempts > len(backoffTable) {
		return backoffTable[len(backoffTable)-1]
	}
	return backoffTable[attempts-1]
}

// terminalError marks a failure that retrying cannot fix.
type terminalError struct{ err error }

func (t terminalError) Error() string { return t.err.Error() }
func (t terminalError) Unwrap() error { return t.err }

var errEmptyExtraction = terminalError{errors.New("empty extraction result")}

// staleAttemptMsg is recorded when the last attempt in the budget was
// claimed by a worker that never finished it.
const staleAttemptMsg = "worker terminated before the attempt finished"

// Config tunes the worker loop.
type Config struct {
	TickInterval  time.Duration
	BatchLimit    int
	BatchDeadline time.Duration
	// StaleRunning is how long a job may sit in running before it is
	// assumed orphaned and reclaimed. Zero disables reclaiming.
	StaleRunning time.Duration
}

// Worker drains the extraction queue: claim a job, fetch the file, extract
// text, parse fields, and backfill the document.
type Worker struct {
	cfg       Config
	jobs      repository.JobRepository
	docs      repository.DocumentRepository
	store     storage.ObjectStore
	extractor ocr.TextExtractor
	rates     fx.Source
	logger    *slog.Logger
	now       func() time.Time
}

func NewWorker(
	cfg Config,
	jobs repository.JobRepository,
	docs repository.DocumentRepository,
	store storage.ObjectStore,
	extractor ocr.TextExtractor,
	rates fx.Source,
	logger *slog.Logger,
) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 15 * time.Second
	}
	if cfg.BatchLimit <= 0 {
		cfg.BatchLimit = 20
	}
	if cfg.BatchDeadline <= 0 {
		cfg.BatchDeadline = 25 * time.Second
	}
	return &Worker{
		cfg:       cfg,
		jobs:      jobs,
		docs:      docs,
		store:     store,
		extractor: extractor,
		rates:     rates,
		logger:    logger,
		now:       time.Now,
	}
}

// Run drains the queue on every tick until the context is canceled.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.TickInterval)
	defer ticker.Stop()

	w.logger.Info("worker started", "tick", w.cfg.TickInterval.String(), "batch_limit", w.cfg.BatchLimit)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("worker stopped")
			return
		case <-ticker.C:
			if n, err := w.Drain(ctx); err != nil {
				w.logger.Error("drain pass failed", "processed", n, "error", err)
			}
		}
	}
}

// Drain processes eligible jobs until the queue is empty, the batch limit is
// hit, or the batch deadline passes. Returns the number of jobs processed.
func (w *Worker) Drain(ctx context.Context) (int, error) {
	deadline := w.now().Add(w.cfg.BatchDeadline)

	if w.cfg.StaleRunning > 0 {
		cutoff := w.now().Add(-w.cfg.StaleRunning)
		if _, err := w.jobs.ReclaimStale(ctx, cutoff, MaxAttempts); err != nil {
			return 0, err
		}
		// A stale row with no attempts left cannot go back to pending;
		// it would never be selected again. Settle it terminally.
		abandoned, err := w.jobs.FailStale(ctx, cutoff, MaxAttempts, w.now(), staleAttemptMsg)
		if err != nil {
			return 0, err
		}
		for _, job := range abandoned {
			w.logger.Error("job failed terminally", "job_id", job.ID, "doc_id", job.DocID, "attempt", job.Attempts, "error", staleAttemptMsg)
			if err := w.docs.MarkOCRFailed(ctx, job.DocID, "OCR job failed: "+staleAttemptMsg); err != nil {
				w.logger.Error("document fail mark failed", "doc_id", job.DocID, "error", err)
			}
		}
	}

	processed := 0
	for processed < w.cfg.BatchLimit && w.now().Before(deadline) {
		if err := ctx.Err(); err != nil {
			return processed, err
		}
		ok, err := w.RunOne(ctx)
		if err != nil {
			return processed, err
		}
		if !ok {
			break
		}
		processed++
	}
	return processed, nil
}

// RunOne claims and processes a single eligible job. Returns false when no
// job was claimed. A processing failure is absorbed into the job's retry
// state and does not surface as an error here.
func (w *Worker) RunOne(ctx context.Context) (bool, error) {
	job, err := w.jobs.NextEligible(ctx, w.now(), MaxAttempts)
	if err != nil {
		return false, err
	}
	if job == nil {
		return false, nil
	}

	claimed, err := w.jobs.Claim(ctx, job.ID, w.now())
	if err != nil {
		return false, err
	}
	if !claimed {
		// Another worker won the row between select and claim.
		return false, nil
	}
	attempts := job.Attempts + 1

	log := w.logger.With("job_id", job.ID, "doc_id", job.DocID, "attempt", attempts)
	log.Info("job claimed")

	if err := w.process(ctx, job); err != nil {
		w.settleFailure(ctx, job, attempts, err, log)
		return true, nil
	}

	if err := w.jobs.MarkSuccess(ctx, job.ID, w.now()); err != nil {
		return true, err
	}
	log.Info("job succeeded")
	return true, nil
}

func (w *Worker) process(ctx context.Context, job *entity.OCRJob) error {
	doc, err := w.docs.GetByID(ctx, job.UserID, job.DocID)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	data, err := w.store.Get(ctx, doc.FileKey)
	if err != nil {
		return fmt.Errorf("fetch file %s: %w", doc.FileKey, err)
	}

	text, err := w.extractor.Extract(ctx, data, doc.FileMime, doc.FileName)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return errEmptyExtraction
	}

	fields := parse.Parse(text)

	// Re-parsing the previously stored text tells the merge which stored
	// amount was our own earlier guess rather than user input.
	var prevAmount *float64
	if doc.OCRText != nil && strings.TrimSpace(*doc.OCRText) != "" {
		prev := parse.Parse(*doc.OCRText)
		prevAmount = prev.Amount
	}

	upd := backfill.Merge(doc, fields, prevAmount, func() float64 {
		return w.rates.USDToILS(ctx)
	})
	upd.OCRStatus = string(constants.OCRSuccess)
	upd.OCRText = text

	if err := w.docs.ApplyExtraction(ctx, job.DocID, upd); err != nil {
		return fmt.Errorf("apply extraction: %w", err)
	}
	return nil
}

// settleFailure routes a processing error into retry or terminal failure.
func (w *Worker) settleFailure(ctx context.Context, job *entity.OCRJob, attempts int, procErr error, log *slog.Logger) {
	var term terminalError
	terminal := errors.As(procErr, &term)
	willRetry := !terminal && attempts < MaxAttempts

	if willRetry {
		delay := Backoff(attempts)
		runAt := w.now().Add(delay)
		log.Warn("job failed, will retry", "delay", delay.String(), "error", procErr)
		if err := w.jobs.ScheduleRetry(ctx, job.ID, runAt, procErr.Error()); err != nil {
			log.Error("retry schedule failed", "error", err)
		}
		return
	}

	log.Error("job failed terminally", "error", procErr)
	if err := w.jobs.MarkFailed(ctx, job.ID, w.now(), procErr.Error()); err != nil {
		log.Error("terminal mark failed", "error", err)
	}
	msg := "OCR job failed: " + friendlyError(procErr)
	if err := w.docs.MarkOCRFailed(ctx, job.DocID, msg); err != nil {
		log.Error("document fail mark failed", "error", err)
	}
}

// friendlyError strips transport noise so the document-facing message stays
// readable.
func friendlyError(err error) string {
	msg := err.Error()
	if strings.Contains(msg, "stream error") || strings.Contains(msg, "connection reset") {
		return "upstream OCR service connection failed"
	}
	return msg
}
