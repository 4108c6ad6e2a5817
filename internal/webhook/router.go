package webhook

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/internal/entity"
	"github.com/docledger/docledger/internal/repository"
	"github.com/docledger/docledger/internal/storage"
)

// classificationWindow bounds how old a webhook document may be and still
// be reclassified by a follow-up "1"/"2" reply.
const classificationWindow = 20 * time.Minute

// User-facing replies. The audience writes in Hebrew.
const (
	replyNoAccount = "לא נמצא חשבון. אם אתה משתמש – הכנס את מספר הטלפון שלך בהגדרות (המספר שממנו אתה שולח). אם אתה לקוח – שלח למספר העסקי שהתקבל ממך."
	replyNoRecent  = "לא מצאתי מסמך אחרון שסיכמת. שלח קודם תמונה/קובץ ואז השב: 1=קבלה, 2=חשבונית."
	replyExpense   = "סבבה—סימנתי כקבלה (הוצאה)."
	replyIncome    = "סבבה—סימנתי כחשבונית (הכנסה)."
	replyHelp      = "שלח תמונה/קובץ של קבלה או חשבונית.\nאחרי השליחה—אענה לך ואפשר להשיב:\n1 = קבלה (הוצאה)\n2 = חשבונית (הכנסה)"
	replyDuplicate = "הקבלה הזו כבר נשמרה במערכת."
	replySaved     = "קיבלתי את המסמך והוא ייסרק ב‑OCR.\nמה זה?\n1 = קבלה (הוצאה)\n2 = חשבונית (הכנסה)\n\n(אפשר גם לשנות אחר כך בתוך האפליקציה)"
	replyError     = "אירעה שגיאה בעיבוד התמונה. נסה שוב או העלה מהאפליקציה."
)

var (
	reWantsReceipt = regexp.MustCompile(`(?i)קבלה|הוצאה|expense|receipt`)
	reWantsInvoice = regexp.MustCompile(`(?i)חשבונית|הכנסה|income|invoice`)
)

// Router handles inbound provider messages: attachments become documents
// with queued extraction, bare text is a classification reply or a quick
// transaction.
type Router struct {
	users  repository.UserRepository
	docs   repository.DocumentRepository
	jobs   repository.JobRepository
	cats   repository.CategoryRepository
	txs    repository.TransactionRepository
	store  storage.ObjectStore
	media  MediaFetcher
	logger *slog.Logger
	now    func() time.Time
}

func NewRouter(
	users repository.UserRepository,
	docs repository.DocumentRepository,
	jobs repository.JobRepository,
	cats repository.CategoryRepository,
	txs repository.TransactionRepository,
	store storage.ObjectStore,
	media MediaFetcher,
	logger *slog.Logger,
) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		users:  users,
		docs:   docs,
		jobs:   jobs,
		cats:   cats,
		txs:    txs,
		store:  store,
		media:  media,
		logger: logger,
		now:    time.Now,
	}
}

func (h *Router) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Get("/webhooks/incoming", h.handleProbe)
	r.Post("/webhooks/incoming", h.HandleIncoming)
	return r
}

// handleProbe answers health checks and browser visits so provider logs
// show 200 rather than a redirect.
func (h *Router) handleProbe(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"ok":      true,
		"message": "Webhook expects POST with provider incoming message body.",
	})
}

func (h *Router) HandleIncoming(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("webhook form parse failed", "error", err)
		writeTwiML(w, replyError)
		return
	}
	from := r.PostFormValue("From")
	to := r.PostFormValue("To")
	body := strings.TrimSpace(r.PostFormValue("Body"))
	numMedia, _ := strconv.Atoi(r.PostFormValue("NumMedia"))
	mediaURL := r.PostFormValue("MediaUrl0")
	mediaType := r.PostFormValue("MediaContentType0")
	if mediaType == "" {
		mediaType = "image/jpeg"
	}

	h.logger.Info("webhook message received", "from", from, "num_media", numMedia, "has_media_url", mediaURL != "")

	user := h.resolveUser(r, from, to)
	if user == nil {
		writeTwiML(w, replyNoAccount)
		return
	}

	if numMedia == 0 || mediaURL == "" {
		h.handleText(w, r, user, body)
		return
	}
	h.handleAttachment(w, r, user, mediaURL, mediaType)
}

// resolveUser tries the sender's number first (user forwarding their own
// receipt), then the receiving business number (customer sending to the
// user's incoming number).
func (h *Router) resolveUser(r *http.Request, from, to string) *entity.User {
	ctx := r.Context()
	if p := NormalizePhone(from); p != "" {
		u, err := h.users.FindByPhone(ctx, p)
		if err != nil {
			h.logger.Error("sender lookup failed", "error", err)
			return nil
		}
		if u != nil {
			return u
		}
	}
	if p := NormalizePhone(to); p != "" {
		u, err := h.users.FindByIncomingNumber(ctx, p)
		if err != nil {
			h.logger.Error("recipient lookup failed", "error", err)
			return nil
		}
		return u
	}
	return nil
}

func (h *Router) handleText(w http.ResponseWriter, r *http.Request, user *entity.User, body string) {
	ctx := r.Context()
	wantsReceipt := body == "1" || reWantsReceipt.MatchString(body)
	wantsInvoice := body == "2" || reWantsInvoice.MatchString(body)

	if wantsReceipt || wantsInvoice {
		since := h.now().Add(-classificationWindow)
		latest, err := h.docs.LatestInbound(ctx, user.ID, since)
		if err != nil {
			h.logger.Error("latest inbound lookup failed", "user_id", user.ID, "error", err)
			writeTwiML(w, replyError)
			return
		}
		if latest == nil {
			writeTwiML(w, replyNoRecent)
			return
		}

		newType, reply := constants.DocExpense, replyExpense
		if wantsInvoice {
			newType, reply = constants.DocIncome, replyIncome
		}
		if err := h.docs.SetType(ctx, latest.ID, string(newType)); err != nil {
			h.logger.Error("reclassify failed", "doc_id", latest.ID, "error", err)
			writeTwiML(w, replyError)
			return
		}
		h.logger.Info("document reclassified", "doc_id", latest.ID, "type", newType)
		writeTwiML(w, reply)
		return
	}

	if qt, ok := ParseQuickTransaction(body); ok {
		h.handleQuickTransaction(w, r, user, qt)
		return
	}

	writeTwiML(w, replyHelp)
}

func (h *Router) handleQuickTransaction(w http.ResponseWriter, r *http.Request, user *entity.User, qt QuickTransaction) {
	ctx := r.Context()
	cat, err := h.cats.GetOrCreateDefault(ctx, user.ID)
	if err != nil {
		h.logger.Error("default category lookup failed", "user_id", user.ID, "error", err)
		writeTwiML(w, replyError)
		return
	}

	tx := &entity.Transaction{
		UserID:     user.ID,
		CategoryID: cat.ID,
		Type:       string(constants.DocExpense),
		Date:       h.now(),
		Amount:     qt.Amount,
		Currency:   string(qt.Currency),
		Vendor:     qt.Vendor,
	}
	created, err := h.txs.Create(ctx, tx)
	if err != nil {
		h.logger.Error("quick transaction create failed", "user_id", user.ID, "error", err)
		writeTwiML(w, replyError)
		return
	}
	h.logger.Info("quick transaction created", "transaction_id", created.ID, "user_id", user.ID)
	writeTwiML(w, fmt.Sprintf("רשמתי הוצאה: %s, %.2f %s", qt.Vendor, qt.Amount, qt.Currency))
}

func (h *Router) handleAttachment(w http.ResponseWriter, r *http.Request, user *entity.User, mediaURL, mediaType string) {
	ctx := r.Context()

	data, contentType, err := h.media.Fetch(ctx, mediaURL)
	if err != nil {
		h.logger.Error("media fetch failed", "user_id", user.ID, "error", err)
		writeTwiML(w, replyError)
		return
	}
	if contentType == "" {
		contentType = mediaType
	}

	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	existing, err := h.docs.FindByHash(ctx, user.ID, hash)
	if err != nil {
		h.logger.Error("dedup lookup failed", "user_id", user.ID, "error", err)
		writeTwiML(w, replyError)
		return
	}
	if existing != nil {
		writeTwiML(w, replyDuplicate)
		return
	}

	now := h.now()
	docID := uuid.New()
	ext := constants.ExtForMIME(contentType)
	fileName := fmt.Sprintf("%s%d.%s", repository.InboundFilePrefix, now.UnixMilli(), ext)
	fileKey := storage.DocumentKey(user.ID, docID, now, ext)

	if err := h.store.Put(ctx, fileKey, data, contentType); err != nil {
		h.logger.Error("object store put failed", "user_id", user.ID, "key", fileKey, "error", err)
		writeTwiML(w, replyError)
		return
	}

	doc := &entity.Document{
		ID:          docID,
		UserID:      user.ID,
		Type:        string(constants.DocExpense),
		Date:        now,
		Amount:      0,
		Currency:    string(constants.LocalCurrency),
		Vendor:      constants.PlaceholderVendor,
		FileKey:     fileKey,
		FileName:    fileName,
		FileMime:    contentType,
		FileSize:    len(data),
		ContentHash: hash,
		OCRStatus:   string(constants.OCRPending),
	}
	created, err := h.docs.Create(ctx, doc)
	if err != nil {
		h.logger.Error("webhook document create failed", "user_id", user.ID, "error", err)
		writeTwiML(w, replyError)
		return
	}

	if err := h.jobs.Enqueue(ctx, user.ID, created.ID); err != nil {
		h.logger.Error("webhook enqueue failed", "doc_id", created.ID, "error", err)
		writeTwiML(w, replyError)
		return
	}

	h.logger.Info("webhook document created", "doc_id", created.ID, "user_id", user.ID)
	writeTwiML(w, replySaved)
}
