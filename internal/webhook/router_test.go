package webhook

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/entity"
)

type stubUsers struct {
	byPhone    map[string]*entity.User
	byIncoming map[string]*entity.User
}

func (s *stubUsers) GetByID(context.Context, uuid.UUID) (*entity.User, error) {
	return nil, common.ErrNotFound
}

func (s *stubUsers) FindByPhone(_ context.Context, phone string) (*entity.User, error) {
	return s.byPhone[strings.TrimPrefix(phone, "+")], nil
}

func (s *stubUsers) FindByIncomingNumber(_ context.Context, phone string) (*entity.User, error) {
	return s.byIncoming[strings.TrimPrefix(phone, "+")], nil
}

func (s *stubUsers) Create(context.Context, string, *string, *string) (*entity.User, error) {
	return nil, nil
}

type stubDocs struct {
	mu      sync.Mutex
	docs    map[uuid.UUID]*entity.Document
	created int
}

func newStubDocs() *stubDocs { return &stubDocs{docs: make(map[uuid.UUID]*entity.Document)} }

func (s *stubDocs) Create(_ context.Context, doc *entity.Document) (*entity.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	s.docs[doc.ID] = doc
	s.created++
	cp := *doc
	return &cp, nil
}

func (s *stubDocs) GetByID(_ context.Context, _, docID uuid.UUID) (*entity.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.docs[docID]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, common.ErrNotFound
}

func (s *stubDocs) FindByHash(_ context.Context, userID uuid.UUID, hash string) (*entity.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.docs {
		if d.UserID == userID && d.ContentHash == hash {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *stubDocs) LatestInbound(_ context.Context, userID uuid.UUID, since time.Time) (*entity.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var best *entity.Document
	for _, d := range s.docs {
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

func (s *stubDocs) SetType(_ context.Context, docID uuid.UUID, docType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[docID].Type = docType
	return nil
}

func (s *stubDocs) SetFileKey(context.Context, uuid.UUID, string) error { return nil }
func (s *stubDocs) ResetOCR(context.Context, uuid.UUID) error           { return nil }
func (s *stubDocs) ApplyExtraction(context.Context, uuid.UUID, entity.ExtractionUpdate) error {
	return nil
}
func (s *stubDocs) MarkOCRFailed(context.Context, uuid.UUID, string) error { return nil }
func (s *stubDocs) List(context.Context, uuid.UUID, *time.Time, *time.Time) ([]*entity.Document, error) {
	return nil, nil
}

type stubJobs struct {
	mu       sync.Mutex
	enqueued []uuid.UUID
}

func (s *stubJobs) Enqueue(_ context.Context, _, docID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enqueued = append(s.enqueued, docID)
	return nil
}

func (s *stubJobs) Reset(context.Context, uuid.UUID) error { return nil }
func (s *stubJobs) NextEligible(context.Context, time.Time, int) (*entity.OCRJob, error) {
	return nil, nil
}
func (s *stubJobs) Claim(context.Context, uuid.UUID, time.Time) (bool, error) { return false, nil }
func (s *stubJobs) MarkSuccess(context.Context, uuid.UUID, time.Time) error   { return nil }
func (s *stubJobs) ScheduleRetry(context.Context, uuid.UUID, time.Time, string) error {
	return nil
}
func (s *stubJobs) MarkFailed(context.Context, uuid.UUID, time.Time, string) error { return nil }
func (s *stubJobs) ReclaimStale(context.Context, time.Time, int) (int, error)      { return 0, nil }
func (s *stubJobs) FailStale(context.Context, time.Time, int, time.Time, string) ([]*entity.OCRJob, error) {
	return nil, nil
}
func (s *stubJobs) GetByDocID(context.Context, uuid.UUID) (*entity.OCRJob, error) {
	return nil, common.ErrNotFound
}

type stubCats struct{}

func (stubCats) GetOrCreateDefault(_ context.Context, userID uuid.UUID) (*entity.Category, error) {
	return &entity.Category{ID: uuid.New(), UserID: userID, Name: constants.DefaultCategoryName}, nil
}
func (stubCats) List(context.Context, uuid.UUID) ([]*entity.Category, error) { return nil, nil }

type stubTxs struct {
	mu  sync.Mutex
	txs []*entity.Transaction
}

func (s *stubTxs) Create(_ context.Context, tx *entity.Transaction) (*entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *tx
	cp.ID = uuid.New()
	s.txs = append(s.txs, &cp)
	return &cp, nil
}

func (s *stubTxs) List(context.Context, uuid.UUID, *time.Time, *time.Time) ([]*entity.Transaction, error) {
	return nil, nil
}

type stubStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newStubStore() *stubStore { return &stubStore{objects: make(map[string][]byte)} }

func (s *stubStore) Put(_ context.Context, key string, data []byte, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}
func (s *stubStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.objects[key], nil
}
func (s *stubStore) Delete(context.Context, string) error { return nil }
func (s *stubStore) Exists(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok, nil
}

type stubMedia struct {
	data        []byte
	contentType string
}

func (s *stubMedia) Fetch(context.Context, string) ([]byte, string, error) {
	return s.data, s.contentType, nil
}

type routerFixture struct {
	router *Router
	user   *entity.User
	docs   *stubDocs
	jobs   *stubJobs
	txs    *stubTxs
	store  *stubStore
	media  *stubMedia
	clock  time.Time
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	user := &entity.User{ID: uuid.New(), Name: "Test User"}
	users := &stubUsers{
		byPhone:    map[string]*entity.User{"972501234567": user},
		byIncoming: map[string]*entity.User{"972599999999": user},
	}
	docs := newStubDocs()
	jobs := &stubJobs{}
	txs := &stubTxs{}
	store := newStubStore()
	media := &stubMedia{data: []byte("fake image bytes"), contentType: "image/jpeg"}

	r := NewRouter(users, docs, jobs, stubCats{}, txs, store, media, nil)
	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return clock }

	return &routerFixture{router: r, user: user, docs: docs, jobs: jobs, txs: txs, store: store, media: media, clock: clock}
}

func (fx *routerFixture) post(t *testing.T, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/incoming", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	fx.router.HandleIncoming(rec, req)
	return rec
}

func TestWebhookUnknownSender(t *testing.T) {
	fx := newRouterFixture(t)
	rec := fx.post(t, url.Values{
		"From": {"whatsapp:+15550001111"},
		"To":   {"whatsapp:+15552223333"},
		"Body": {"hello"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "לא נמצא חשבון") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestWebhookRecipientFallback(t *testing.T) {
	fx := newRouterFixture(t)
	// Unknown sender, but the To number is a registered business number.
	rec := fx.post(t, url.Values{
		"From": {"whatsapp:+15550001111"},
		"To":   {"whatsapp:+972599999999"},
		"Body": {"היי"},
	})
	if !strings.Contains(rec.Body.String(), "שלח תמונה") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestWebhookClassificationIntent(t *testing.T) {
	fx := newRouterFixture(t)
	doc := &entity.Document{
		UserID:    fx.user.ID,
		Type:      string(constants.DocExpense),
		FileName:  "webhook-123.jpg",
		CreatedAt: fx.clock.Add(-5 * time.Minute),
	}
	fx.docs.Create(context.Background(), doc)

	rec := fx.post(t, url.Values{
		"From": {"whatsapp:+972501234567"},
		"Body": {"2"},
	})
	if !strings.Contains(rec.Body.String(), "חשבונית") {
		t.Fatalf("body = %s", rec.Body.String())
	}
	got, _ := fx.docs.GetByID(context.Background(), fx.user.ID, doc.ID)
	if got.Type != string(constants.DocIncome) {
		t.Fatalf("doc type = %s, want income", got.Type)
	}
}

func TestWebhookClassificationOutsideWindow(t *testing.T) {
	fx := newRouterFixture(t)
	doc := &entity.Document{
		UserID:    fx.user.ID,
		Type:      string(constants.DocExpense),
		FileName:  "webhook-123.jpg",
		CreatedAt: fx.clock.Add(-45 * time.Minute),
	}
	fx.docs.Create(context.Background(), doc)

	rec := fx.post(t, url.Values{
		"From": {"whatsapp:+972501234567"},
		"Body": {"1"},
	})
	if !strings.Contains(rec.Body.String(), "לא מצאתי מסמך") {
		t.Fatalf("body = %s", rec.Body.String())
	}
	got, _ := fx.docs.GetByID(context.Background(), fx.user.ID, doc.ID)
	if got.Type != string(constants.DocExpense) {
		t.Fatalf("doc type changed to %s", got.Type)
	}
}

func TestWebhookQuickTransaction(t *testing.T) {
	fx := newRouterFixture(t)
	rec := fx.post(t, url.Values{
		"From": {"whatsapp:+972501234567"},
		"Body": {"מונית 50"},
	})
	if !strings.Contains(rec.Body.String(), "רשמתי") {
		t.Fatalf("body = %s", rec.Body.String())
	}
	if len(fx.txs.txs) != 1 {
		t.Fatalf("transactions created = %d, want 1", len(fx.txs.txs))
	}
	tx := fx.txs.txs[0]
	if tx.Vendor != "מונית" || tx.Amount != 50 || tx.Currency != "ILS" {
		t.Fatalf("tx = %+v", tx)
	}
}

func TestWebhookAttachmentCreatesDocumentAndJob(t *testing.T) {
	fx := newRouterFixture(t)
	rec := fx.post(t, url.Values{
		"From":              {"whatsapp:+972501234567"},
		"Body":              {""},
		"NumMedia":          {"1"},
		"MediaUrl0":         {"https://api.example.com/media/abc"},
		"MediaContentType0": {"image/jpeg"},
	})
	if !strings.Contains(rec.Body.String(), "קיבלתי את המסמך") {
		t.Fatalf("body = %s", rec.Body.String())
	}
	if fx.docs.created != 1 {
		t.Fatalf("documents created = %d, want 1", fx.docs.created)
	}
	if len(fx.jobs.enqueued) != 1 {
		t.Fatalf("jobs enqueued = %d, want 1", len(fx.jobs.enqueued))
	}
	if len(fx.store.objects) != 1 {
		t.Fatalf("objects stored = %d, want 1", len(fx.store.objects))
	}

	var doc *entity.Document
	for _, d := range fx.docs.docs {
		doc = d
	}
	if doc.OCRStatus != string(constants.OCRPending) {
		t.Errorf("ocr_status = %s", doc.OCRStatus)
	}
	if doc.Vendor != constants.PlaceholderVendor {
		t.Errorf("vendor = %q", doc.Vendor)
	}
	if doc.Amount != 0 {
		t.Errorf("amount = %v", doc.Amount)
	}
	if !strings.HasPrefix(doc.FileName, "webhook-") {
		t.Errorf("file name = %q", doc.FileName)
	}
	wantHash := sha256.Sum256([]byte("fake image bytes"))
	if doc.ContentHash != hex.EncodeToString(wantHash[:]) {
		t.Errorf("content hash = %q", doc.ContentHash)
	}
}

func TestWebhookDuplicateAttachment(t *testing.T) {
	fx := newRouterFixture(t)
	form := url.Values{
		"From":              {"whatsapp:+972501234567"},
		"NumMedia":          {"1"},
		"MediaUrl0":         {"https://api.example.com/media/abc"},
		"MediaContentType0": {"image/jpeg"},
	}
	fx.post(t, form)
	rec := fx.post(t, form)

	if !strings.Contains(rec.Body.String(), "כבר נשמרה") {
		t.Fatalf("body = %s", rec.Body.String())
	}
	if fx.docs.created != 1 {
		t.Fatalf("documents created = %d, want 1", fx.docs.created)
	}
	if len(fx.jobs.enqueued) != 1 {
		t.Fatalf("jobs enqueued = %d, want 1", len(fx.jobs.enqueued))
	}
}
