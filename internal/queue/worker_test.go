package queue

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/entity"
)

// fakeJobs is an in-memory JobRepository with the same claim semantics as
// the database: a conditional flip on status.
type fakeJobs struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*entity.OCRJob
}

func newFakeJobs() *fakeJobs {
	return &fakeJobs{jobs: make(map[uuid.UUID]*entity.OCRJob)}
}

func (f *fakeJobs) add(userID, docID uuid.UUID) *entity.OCRJob {
	f.mu.Lock()
	defer f.mu.Unlock()
	j := &entity.OCRJob{
		ID:        uuid.New(),
		UserID:    userID,
		DocID:     docID,
		Status:    string(constants.JobPending),
		CreatedAt: time.Now(),
	}
	f.jobs[j.ID] = j
	return j
}

func (f *fakeJobs) get(id uuid.UUID) entity.OCRJob {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.jobs[id]
}

func (f *fakeJobs) setRunning(id uuid.UUID, attempts int, startedAt time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j := f.jobs[id]
	j.Status = string(constants.JobRunning)
	j.Attempts = attempts
	j.StartedAt = &startedAt
}

func (f *fakeJobs) countByDoc(docID uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, j := range f.jobs {
		if j.DocID == docID {
			n++
		}
	}
	return n
}

func (f *fakeJobs) Enqueue(_ context.Context, userID, docID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, j := range f.jobs {
		if j.DocID == docID {
			j.Status = string(constants.JobPending)
			j.NextRunAt = nil
			j.LastError = nil
			return nil
		}
	}
	j := &entity.OCRJob{
		ID:        uuid.New(),
		UserID:    userID,
		DocID:     docID,
		Status:    string(constants.JobPending),
		CreatedAt: time.Now(),
	}
	f.jobs[j.ID] = j
	return nil
}

func (f *fakeJobs) Reset(_ context.Context, docID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, j := range f.jobs {
		if j.DocID == docID {
			j.Status = string(constants.JobPending)
			j.Attempts = 0
			j.NextRunAt = nil
			j.LastError = nil
			j.StartedAt = nil
			j.FinishedAt = nil
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeJobs) NextEligible(_ context.Context, now time.Time, maxAttempts int) (*entity.OCRJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var best *entity.OCRJob
	for _, j := range f.jobs {
		if j.Status != string(constants.JobPending) || j.Attempts >= maxAttempts {
			continue
		}
		if j.NextRunAt != nil && j.NextRunAt.After(now) {
			continue
		}
		if best == nil || j.CreatedAt.Before(best.CreatedAt) {
			best = j
		}
	}
	if best == nil {
		return nil, nil
	}
	cp := *best
	return &cp, nil
}

func (f *fakeJobs) Claim(_ context.Context, jobID uuid.UUID, now time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[jobID]
	if !ok || j.Status != string(constants.JobPending) {
		return false, nil
	}
	j.Status = string(constants.JobRunning)
	j.StartedAt = &now
	j.Attempts++
	j.NextRunAt = nil
	return true, nil
}

func (f *fakeJobs) MarkSuccess(_ context.Context, jobID uuid.UUID, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j := f.jobs[jobID]
	j.Status = string(constants.JobSuccess)
	j.FinishedAt = &now
	j.LastError = nil
	return nil
}

func (f *fakeJobs) ScheduleRetry(_ context.Context, jobID uuid.UUID, runAt time.Time, errMsg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j := f.jobs[jobID]
	j.Status = string(constants.JobPending)
	j.NextRunAt = &runAt
	j.LastError = &errMsg
	return nil
}

func (f *fakeJobs) MarkFailed(_ context.Context, jobID uuid.UUID, now time.Time, errMsg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j := f.jobs[jobID]
	j.Status = string(constants.JobFailed)
	j.FinishedAt = &now
	j.LastError = &errMsg
	return nil
}

func (f *fakeJobs) ReclaimStale(_ context.Context, cutoff time.Time, maxAttempts int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, j := range f.jobs {
		if j.Status == string(constants.JobRunning) && j.StartedAt != nil && j.StartedAt.Before(cutoff) && j.Attempts < maxAttempts {
			j.Status = string(constants.JobPending)
			j.StartedAt = nil
			n++
		}
	}
	return n, nil
}

func (f *fakeJobs) FailStale(_ context.Context, cutoff time.Time, maxAttempts int, now time.Time, errMsg string) ([]*entity.OCRJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.OCRJob
	for _, j := range f.jobs {
		if j.Status == string(constants.JobRunning) && j.StartedAt != nil && j.StartedAt.Before(cutoff) && j.Attempts >= maxAttempts {
			j.Status = string(constants.JobFailed)
			j.FinishedAt = &now
			msg := errMsg
			j.LastError = &msg
			cp := *j
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeJobs) GetByDocID(_ context.Context, docID uuid.UUID) (*entity.OCRJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, j := range f.jobs {
		if j.DocID == docID {
			cp := *j
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

// fakeDocs stores documents keyed by id.
type fakeDocs struct {
	mu   sync.Mutex
	docs map[uuid.UUID]*entity.Document
}

func newFakeDocs() *fakeDocs {
	return &fakeDocs{docs: make(map[uuid.UUID]*entity.Document)}
}

func (f *fakeDocs) add(doc *entity.Document) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	f.docs[doc.ID] = doc
}

func (f *fakeDocs) get(id uuid.UUID) entity.Document {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.docs[id]
}

func (f *fakeDocs) Create(_ context.Context, doc *entity.Document) (*entity.Document, error) {
	f.add(doc)
	cp := *doc
	return &cp, nil
}

func (f *fakeDocs) GetByID(_ context.Context, userID, docID uuid.UUID) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.docs[docID]
	if !ok || d.UserID != userID {
		return nil, common.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDocs) FindByHash(_ context.Context, userID uuid.UUID, hash string) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.docs {
		if d.UserID == userID && d.ContentHash == hash {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeDocs) LatestInbound(_ context.Context, userID uuid.UUID, since time.Time) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var best *entity.Document
	for _, d := range f.docs {
		if d.UserID != userID || d.CreatedAt.Before(since) || !strings.HasPrefix(d.FileName, "webhook-") {
			continue
		}
		if best == nil || d.CreatedAt.After(best.CreatedAt) {
			best = d
		}
	}
	if best == nil {
		return nil, nil
	}
	cp := *best
	return &cp, nil
}

func (f *fakeDocs) SetType(_ context.Context, docID uuid.UUID, docType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs[docID].Type = docType
	return nil
}

func (f *fakeDocs) SetFileKey(_ context.Context, docID uuid.UUID, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs[docID].FileKey = key
	return nil
}

func (f *fakeDocs) ResetOCR(_ context.Context, docID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := f.docs[docID]
	d.OCRStatus = string(constants.OCRPending)
	d.OCRText = nil
	return nil
}

func (f *fakeDocs) ApplyExtraction(_ context.Context, docID uuid.UUID, upd entity.ExtractionUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := f.docs[docID]
	d.OCRStatus = upd.OCRStatus
	text := upd.OCRText
	d.OCRText = &text
	if upd.Date != nil {
		d.Date = *upd.Date
	}
	if upd.Amount != nil {
		d.Amount = *upd.Amount
	}
	if upd.Vendor != nil {
		d.Vendor = *upd.Vendor
	}
	if upd.DocNumber != nil {
		d.DocNumber = upd.DocNumber
	}
	if upd.Currency != nil {
		d.Currency = *upd.Currency
	}
	return nil
}

func (f *fakeDocs) MarkOCRFailed(_ context.Context, docID uuid.UUID, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := f.docs[docID]
	d.OCRStatus = string(constants.OCRFailed)
	d.OCRText = &message
	return nil
}

func (f *fakeDocs) List(_ context.Context, userID uuid.UUID, _, _ *time.Time) ([]*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Document
	for _, d := range f.docs {
		if d.UserID == userID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeStore holds objects in a map.
type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string][]byte)}
}

func (f *fakeStore) Put(_ context.Context, key string, data []byte, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = data
	return nil
}

func (f *fakeStore) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[key]
	if !ok {
		return nil, errors.New("object not found: " + key)
	}
	return data, nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

func (f *fakeStore) Exists(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[key]
	return ok, nil
}

// fakeExtractor returns scripted results per call.
type fakeExtractor struct {
	mu    sync.Mutex
	text  string
	err   error
	calls int
}

func (f *fakeExtractor) Extract(_ context.Context, _ []byte, _, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.text, f.err
}

type staticRates struct{ rate float64 }

func (s staticRates) USDToILS(context.Context) float64 { return s.rate }

type workerFixture struct {
	worker    *Worker
	jobs      *fakeJobs
	docs      *fakeDocs
	store     *fakeStore
	extractor *fakeExtractor
	clock     *time.Time
}

func newWorkerFixture(t *testing.T) *workerFixture {
	t.Helper()
	jobs := newFakeJobs()
	docs := newFakeDocs()
	store := newFakeStore()
	extractor := &fakeExtractor{}
	w := NewWorker(Config{
		BatchLimit:    50,
		BatchDeadline: time.Minute,
	}, jobs, docs, store, extractor, staticRates{rate: 3.7}, nil)

	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return clock }
	fx := &workerFixture{worker: w, jobs: jobs, docs: docs, store: store, extractor: extractor, clock: &clock}
	return fx
}

func (fx *workerFixture) advance(d time.Duration) {
	*fx.clock = fx.clock.Add(d)
}

func (fx *workerFixture) seedDoc(t *testing.T) (*entity.Document, *entity.OCRJob) {
	t.Helper()
	userID := uuid.New()
	doc := &entity.Document{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      string(constants.DocExpense),
		Date:      *fx.clock,
		CreatedAt: *fx.clock,
		Vendor:    constants.PlaceholderVendor,
		Currency:  string(constants.LocalCurrency),
		FileKey:   "receipts/test/doc.pdf",
		FileName:  "doc.pdf",
		FileMime:  "application/pdf",
		OCRStatus: string(constants.OCRPending),
	}
	fx.docs.add(doc)
	fx.store.Put(context.Background(), doc.FileKey, []byte("%PDF-1.4 test"), doc.FileMime)
	job := fx.jobs.add(userID, doc.ID)
	return doc, job
}

func TestBackoff(t *testing.T) {
	tests := []struct {
		attempts int
		want     time.Duration
	}{
		{0, 10 * time.Second},
		{1, 10 * time.Second},
		{2, 30 * time.Second},
		{3, 120 * time.Second},
		{7, 120 * time.Second},
	}
	for _, tt := range tests {
		if got := Backoff(tt.attempts); got != tt.want {
			t.Errorf("Backoff(%d) = %v, want %v", tt.attempts, got, tt.want)
		}
	}
}

func TestRunOneSuccess(t *testing.T) {
	fx := newWorkerFixture(t)
	doc, job := fx.seedDoc(t)
	fx.extractor.text = "ACME STORE\nInvoice no. 77881\nTotal $100.00\n"

	ok, err := fx.worker.RunOne(context.Background())
	if err != nil || !ok {
		t.Fatalf("RunOne = (%v, %v), want (true, nil)", ok, err)
	}

	gotJob := fx.jobs.get(job.ID)
	if gotJob.Status != string(constants.JobSuccess) {
		t.Errorf("job status = %s, want success", gotJob.Status)
	}
	if gotJob.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", gotJob.Attempts)
	}

	gotDoc := fx.docs.get(doc.ID)
	if gotDoc.OCRStatus != string(constants.OCRSuccess) {
		t.Errorf("ocr_status = %s, want success", gotDoc.OCRStatus)
	}
	if gotDoc.Vendor != "ACME STORE" {
		t.Errorf("vendor = %q", gotDoc.Vendor)
	}
	// $100 converted at the static 3.7 rate and booked in ILS.
	if gotDoc.Amount != 370.00 {
		t.Errorf("amount = %v, want 370.00", gotDoc.Amount)
	}
	if gotDoc.Currency != "ILS" {
		t.Errorf("currency = %s, want ILS", gotDoc.Currency)
	}
	if gotDoc.DocNumber == nil || *gotDoc.DocNumber != "77881" {
		t.Errorf("doc number = %v", gotDoc.DocNumber)
	}
	if gotDoc.OCRText == nil || !strings.Contains(*gotDoc.OCRText, "ACME STORE") {
		t.Errorf("ocr text = %v", gotDoc.OCRText)
	}
}

func TestRunOneNoEligibleJobs(t *testing.T) {
	fx := newWorkerFixture(t)
	ok, err := fx.worker.RunOne(context.Background())
	if err != nil || ok {
		t.Fatalf("RunOne on empty queue = (%v, %v), want (false, nil)", ok, err)
	}
}

func TestRetryThenExhaustion(t *testing.T) {
	fx := newWorkerFixture(t)
	doc, job := fx.seedDoc(t)
	fx.extractor.err = errors.New("vision: 503 backend unavailable")

	// Attempt 1: fails, scheduled 10s out.
	if ok, err := fx.worker.RunOne(context.Background()); err != nil || !ok {
		t.Fatalf("attempt 1: (%v, %v)", ok, err)
	}
	j := fx.jobs.get(job.ID)
	if j.Status != string(constants.JobPending) || j.Attempts != 1 {
		t.Fatalf("after attempt 1: status=%s attempts=%d", j.Status, j.Attempts)
	}
	if j.NextRunAt == nil || !j.NextRunAt.Equal(fx.clock.Add(10*time.Second)) {
		t.Fatalf("after attempt 1: next_run_at=%v, want +10s", j.NextRunAt)
	}

	// Not yet eligible.
	if ok, _ := fx.worker.RunOne(context.Background()); ok {
		t.Fatal("job ran before its backoff elapsed")
	}

	// Attempt 2 after backoff: 30s out.
	fx.advance(11 * time.Second)
	if ok, err := fx.worker.RunOne(context.Background()); err != nil || !ok {
		t.Fatalf("attempt 2: (%v, %v)", ok, err)
	}
	j = fx.jobs.get(job.ID)
	if j.Attempts != 2 || j.NextRunAt == nil || !j.NextRunAt.Equal(fx.clock.Add(30*time.Second)) {
		t.Fatalf("after attempt 2: attempts=%d next_run_at=%v", j.Attempts, j.NextRunAt)
	}

	// Attempt 3: budget exhausted, job and document fail.
	fx.advance(31 * time.Second)
	if ok, err := fx.worker.RunOne(context.Background()); err != nil || !ok {
		t.Fatalf("attempt 3: (%v, %v)", ok, err)
	}
	j = fx.jobs.get(job.ID)
	if j.Status != string(constants.JobFailed) || j.Attempts != 3 {
		t.Fatalf("after attempt 3: status=%s attempts=%d", j.Status, j.Attempts)
	}
	if j.LastError == nil || !strings.Contains(*j.LastError, "503") {
		t.Fatalf("last_error = %v", j.LastError)
	}

	d := fx.docs.get(doc.ID)
	if d.OCRStatus != string(constants.OCRFailed) {
		t.Fatalf("ocr_status = %s, want failed", d.OCRStatus)
	}
	if d.OCRText == nil || !strings.HasPrefix(*d.OCRText, "OCR job failed: ") {
		t.Fatalf("ocr text = %v, want failure message", d.OCRText)
	}
}

func TestEmptyExtractionFailsTerminally(t *testing.T) {
	fx := newWorkerFixture(t)
	doc, job := fx.seedDoc(t)
	fx.extractor.text = "   \n  "

	if ok, err := fx.worker.RunOne(context.Background()); err != nil || !ok {
		t.Fatalf("RunOne = (%v, %v)", ok, err)
	}

	j := fx.jobs.get(job.ID)
	if j.Status != string(constants.JobFailed) {
		t.Fatalf("job status = %s, want failed with no retries", j.Status)
	}
	if j.Attempts != 1 {
		t.Fatalf("attempts = %d, want 1", j.Attempts)
	}
	d := fx.docs.get(doc.ID)
	if d.OCRStatus != string(constants.OCRFailed) {
		t.Fatalf("ocr_status = %s", d.OCRStatus)
	}
	if d.OCRText == nil || !strings.Contains(*d.OCRText, "empty extraction result") {
		t.Fatalf("ocr text = %v", d.OCRText)
	}
}

func TestDrainProcessesBatch(t *testing.T) {
	fx := newWorkerFixture(t)
	fx.extractor.text = "Some Store\nTotal 50 ₪\n"
	for i := 0; i < 5; i++ {
		fx.seedDoc(t)
	}

	n, err := fx.worker.Drain(context.Background())
	if err != nil {
		t.Fatalf("Drain: %v", err)
	}
	if n != 5 {
		t.Fatalf("Drain processed %d, want 5", n)
	}
	if fx.extractor.calls != 5 {
		t.Fatalf("extractor called %d times, want 5", fx.extractor.calls)
	}
}

func TestDrainReclaimsStaleRunning(t *testing.T) {
	fx := newWorkerFixture(t)
	fx.worker.cfg.StaleRunning = 10 * time.Minute
	fx.extractor.text = "Some Store\nTotal 50 ₪\n"

	_, job := fx.seedDoc(t)
	// Simulate a worker that died mid-claim 20 minutes ago.
	ctx := context.Background()
	if ok, _ := fx.jobs.Claim(ctx, job.ID, fx.clock.Add(-20*time.Minute)); !ok {
		t.Fatal("claim setup failed")
	}

	n, err := fx.worker.Drain(ctx)
	if err != nil {
		t.Fatalf("Drain: %v", err)
	}
	if n != 1 {
		t.Fatalf("Drain processed %d, want 1 reclaimed job", n)
	}
	j := fx.jobs.get(job.ID)
	if j.Status != string(constants.JobSuccess) {
		t.Fatalf("job status = %s, want success after reclaim", j.Status)
	}
}

func TestRunOneSkipsAlreadyRunningJobs(t *testing.T) {
	fx := newWorkerFixture(t)
	_, job := fx.seedDoc(t)
	// Another worker holds the claim.
	if ok, _ := fx.jobs.Claim(context.Background(), job.ID, *fx.clock); !ok {
		t.Fatal("claim setup failed")
	}

	ok, err := fx.worker.RunOne(context.Background())
	if err != nil {
		t.Fatalf("RunOne: %v", err)
	}
	if ok {
		t.Fatal("RunOne reported work with nothing claimable")
	}
	if fx.extractor.calls != 0 {
		t.Fatal("extractor called despite lost claim")
	}
}

// raceJobs claims every job it hands out before the caller can, standing in
// for a second worker winning the row between select and claim.
type raceJobs struct {
	*fakeJobs
}

func (r *raceJobs) NextEligible(ctx context.Context, now time.Time, maxAttempts int) (*entity.OCRJob, error) {
	j, err := r.fakeJobs.NextEligible(ctx, now, maxAttempts)
	if j != nil {
		r.fakeJobs.Claim(ctx, j.ID, now)
	}
	return j, err
}

func TestRunOneLostClaimReportsNoWork(t *testing.T) {
	fx := newWorkerFixture(t)
	fx.seedDoc(t)
	fx.worker.jobs = &raceJobs{fx.jobs}

	ok, err := fx.worker.RunOne(context.Background())
	if err != nil {
		t.Fatalf("RunOne: %v", err)
	}
	if ok {
		t.Fatal("RunOne reported work after losing the claim")
	}
	if fx.extractor.calls != 0 {
		t.Fatal("extractor called despite lost claim")
	}
}

func TestRunOneClaimExclusiveUnderContention(t *testing.T) {
	fx := newWorkerFixture(t)
	_, job := fx.seedDoc(t)
	fx.extractor.text = "Some Store\nTotal 50 ₪\n"

	const workers = 8
	results := make(chan bool, workers)
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := fx.worker.RunOne(context.Background())
			results <- ok
			errs <- err
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("RunOne: %v", err)
		}
	}
	processed := 0
	for ok := range results {
		if ok {
			processed++
		}
	}
	if processed != 1 {
		t.Fatalf("processed = %d, want exactly 1", processed)
	}
	if fx.extractor.calls != 1 {
		t.Fatalf("extractor called %d times, want 1", fx.extractor.calls)
	}
	j := fx.jobs.get(job.ID)
	if j.Status != string(constants.JobSuccess) || j.Attempts != 1 {
		t.Fatalf("job status=%s attempts=%d, want success/1", j.Status, j.Attempts)
	}
}

func TestEnqueueTwiceResetsSameRow(t *testing.T) {
	fx := newWorkerFixture(t)
	doc, job := fx.seedDoc(t)
	ctx := context.Background()

	// First attempt fails, leaving a backed-off pending row behind.
	fx.extractor.err = errors.New("vision: 503 backend unavailable")
	if ok, err := fx.worker.RunOne(ctx); err != nil || !ok {
		t.Fatalf("attempt 1: (%v, %v)", ok, err)
	}
	j := fx.jobs.get(job.ID)
	if j.NextRunAt == nil || j.LastError == nil {
		t.Fatalf("setup: next_run_at=%v last_error=%v", j.NextRunAt, j.LastError)
	}

	// The same document arrives again.
	if err := fx.jobs.Enqueue(ctx, doc.UserID, doc.ID); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	if n := fx.jobs.countByDoc(doc.ID); n != 1 {
		t.Fatalf("rows for doc = %d, want 1", n)
	}
	j = fx.jobs.get(job.ID)
	if j.Status != string(constants.JobPending) {
		t.Fatalf("status = %s, want pending", j.Status)
	}
	if j.NextRunAt != nil || j.LastError != nil {
		t.Fatalf("re-enqueue kept next_run_at=%v last_error=%v", j.NextRunAt, j.LastError)
	}
	if j.Attempts != 1 {
		t.Fatalf("attempts = %d, want 1 preserved", j.Attempts)
	}

	// Eligible immediately, no backoff wait.
	fx.extractor.err = nil
	fx.extractor.text = "Some Store\nTotal 50 ₪\n"
	if ok, err := fx.worker.RunOne(ctx); err != nil || !ok {
		t.Fatalf("run after re-enqueue: (%v, %v)", ok, err)
	}
	if got := fx.jobs.get(job.ID); got.Status != string(constants.JobSuccess) {
		t.Fatalf("status = %s, want success", got.Status)
	}
}

func TestDrainFailsAbandonedFinalAttempt(t *testing.T) {
	fx := newWorkerFixture(t)
	fx.worker.cfg.StaleRunning = 10 * time.Minute

	doc, job := fx.seedDoc(t)
	// A worker died mid-way through the last attempt in the budget.
	fx.jobs.setRunning(job.ID, MaxAttempts, fx.clock.Add(-20*time.Minute))

	n, err := fx.worker.Drain(context.Background())
	if err != nil {
		t.Fatalf("Drain: %v", err)
	}
	if n != 0 {
		t.Fatalf("Drain processed %d, want 0", n)
	}

	j := fx.jobs.get(job.ID)
	if j.Status != string(constants.JobFailed) {
		t.Fatalf("job status = %s, want failed", j.Status)
	}
	if j.LastError == nil {
		t.Fatal("last_error not recorded")
	}
	d := fx.docs.get(doc.ID)
	if d.OCRStatus != string(constants.OCRFailed) {
		t.Fatalf("ocr_status = %s, want failed", d.OCRStatus)
	}
	if d.OCRText == nil || !strings.HasPrefix(*d.OCRText, "OCR job failed: ") {
		t.Fatalf("ocr text = %v, want failure message", d.OCRText)
	}
	if fx.extractor.calls != 0 {
		t.Fatal("extractor ran an exhausted job")
	}

	// Later passes leave the terminal state alone.
	fx.advance(time.Hour)
	if n, err := fx.worker.Drain(context.Background()); err != nil || n != 0 {
		t.Fatalf("second drain: (%d, %v), want (0, nil)", n, err)
	}
	if got := fx.jobs.get(job.ID); got.Status != string(constants.JobFailed) {
		t.Fatalf("second drain moved job to %s", got.Status)
	}
}
