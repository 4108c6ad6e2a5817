package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	docledgerpb "github.com/docledger/docledger/gen/docledger/v1"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/entity"
	"github.com/docledger/docledger/internal/queue"
	"github.com/docledger/docledger/internal/repository"
	"github.com/docledger/docledger/internal/storage"
)

type DocumentsService struct {
	docledgerpb.UnimplementedDocumentsServiceServer
	docs   repository.DocumentRepository
	jobs   repository.JobRepository
	store  storage.ObjectStore
	worker *queue.Worker
	logger *slog.Logger
}

func NewDocumentsService(
	docs repository.DocumentRepository,
	jobs repository.JobRepository,
	store storage.ObjectStore,
	worker *queue.Worker,
	logger *slog.Logger,
) *DocumentsService {
	return &DocumentsService{
		docs:   docs,
		jobs:   jobs,
		store:  store,
		worker: worker,
		logger: logger,
	}
}

func (s *DocumentsService) UploadDocument(ctx context.Context, req *docledgerpb.UploadDocumentRequest) (*docledgerpb.UploadDocumentResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	fileName := strings.TrimSpace(req.GetFileName())
	if fileName == "" {
		s.logger.Error("upload request missing file_name", "user_id", userID)
		return nil, common.InvalidArgumentError("file_name is required")
	}
	content := req.GetContent()
	if len(content) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}
	docType := strings.TrimSpace(req.GetType())
	if docType == "" {
		docType = string(constants.DocExpense)
	}
	if !validDocType(docType) {
		return nil, common.InvalidArgumentErrorf("type must be one of %v", constants.DocTypes)
	}
	contentType := strings.TrimSpace(req.GetContentType())
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	sum := sha256.Sum256(content)
	hash := hex.EncodeToString(sum[:])

	existing, err := s.docs.FindByHash(ctx, userID, hash)
	if err != nil {
		s.logger.Error("dedup lookup failed", "user_id", userID, "error", err)
		return nil, common.InternalError("upload failed")
	}
	if existing != nil {
		s.logger.Info("duplicate upload rejected", "user_id", userID, "doc_id", existing.ID)
		return nil, common.AlreadyExistsErrorf("document already exists: %s", existing.ID)
	}

	now := time.Now()
	docID := uuid.New()
	ext := constants.NormalizeExt(extOf(fileName, contentType))
	fileKey := storage.DocumentKey(userID, docID, now, ext)

	if err := s.store.Put(ctx, fileKey, content, contentType); err != nil {
		s.logger.Error("object store put failed", "user_id", userID, "key", fileKey, "error", err)
		return nil, common.InternalError("upload failed")
	}

	doc := &entity.Document{
		ID:          docID,
		UserID:      userID,
		Type:        docType,
		Date:        now,
		Amount:      0,
		Currency:    string(constants.LocalCurrency),
		Vendor:      constants.PlaceholderVendor,
		FileKey:     fileKey,
		FileName:    fileName,
		FileMime:    contentType,
		FileSize:    len(content),
		ContentHash: hash,
		OCRStatus:   string(constants.OCRPending),
	}
	created, err := s.docs.Create(ctx, doc)
	if err != nil {
		s.logger.Error("document create failed", "user_id", userID, "error", err)
		return nil, common.InternalError("upload failed")
	}

	if err := s.jobs.Enqueue(ctx, userID, created.ID); err != nil {
		s.logger.Error("enqueue failed", "doc_id", created.ID, "error", err)
		return nil, common.InternalError("upload failed")
	}

	s.logger.Info("document uploaded", "doc_id", created.ID, "user_id", userID, "file_name", fileName)
	return &docledgerpb.UploadDocumentResponse{Document: toPBDocument(created)}, nil
}

func (s *DocumentsService) GetDocument(ctx context.Context, req *docledgerpb.GetDocumentRequest) (*docledgerpb.GetDocumentResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	docID, err := uuid.Parse(strings.TrimSpace(req.GetDocumentId()))
	if err != nil {
		return nil, common.InvalidArgumentError("document_id must be a UUID")
	}

	doc, err := s.docs.GetByID(ctx, userID, docID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("document not found")
		}
		s.logger.Error("get document failed", "doc_id", docID, "error", err)
		return nil, common.InternalError("get document failed")
	}

	resp := &docledgerpb.GetDocumentResponse{Document: toPBDocument(doc)}
	if doc.OCRText != nil {
		resp.OcrText = *doc.OCRText
	}
	return resp, nil
}

func (s *DocumentsService) ListDocuments(ctx context.Context, req *docledgerpb.ListDocumentsRequest) (*docledgerpb.ListDocumentsResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}

	var from, to *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("from_date invalid (YYYY-MM-DD): %v", err)
		}
		from = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("to_date invalid (YYYY-MM-DD): %v", err)
		}
		to = &t
	}

	docs, err := s.docs.List(ctx, userID, from, to)
	if err != nil {
		s.logger.Error("list documents failed", "user_id", userID, "error", err)
		return nil, common.InternalError("list documents failed")
	}

	out := make([]*docledgerpb.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, toPBDocument(d))
	}
	return &docledgerpb.ListDocumentsResponse{Documents: out}, nil
}

func (s *DocumentsService) RetryExtraction(ctx context.Context, req *docledgerpb.RetryExtractionRequest) (*docledgerpb.RetryExtractionResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	docID, err := uuid.Parse(strings.TrimSpace(req.GetDocumentId()))
	if err != nil {
		return nil, common.InvalidArgumentError("document_id must be a UUID")
	}

	doc, err := s.docs.GetByID(ctx, userID, docID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("document not found")
		}
		s.logger.Error("retry lookup failed", "doc_id", docID, "error", err)
		return nil, common.InternalError("retry failed")
	}

	if err := s.docs.ResetOCR(ctx, docID); err != nil {
		s.logger.Error("ocr reset failed", "doc_id", docID, "error", err)
		return nil, common.InternalError("retry failed")
	}
	if err := s.jobs.Reset(ctx, docID); err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.logger.Error("job reset failed", "doc_id", docID, "error", err)
			return nil, common.InternalError("retry failed")
		}
		// Document predates the queue row (or the row was purged).
		if err := s.jobs.Enqueue(ctx, userID, docID); err != nil {
			s.logger.Error("retry enqueue failed", "doc_id", docID, "error", err)
			return nil, common.InternalError("retry failed")
		}
	}

	s.logger.Info("extraction retry queued", "doc_id", docID, "user_id", userID)
	doc.OCRStatus = string(constants.OCRPending)
	return &docledgerpb.RetryExtractionResponse{Document: toPBDocument(doc)}, nil
}

func (s *DocumentsService) ProcessNextJob(ctx context.Context, _ *docledgerpb.ProcessNextJobRequest) (*docledgerpb.ProcessNextJobResponse, error) {
	processed, err := s.worker.RunOne(ctx)
	if err != nil {
		s.logger.Error("inline job run failed", "error", err)
		return nil, common.InternalError("job run failed")
	}
	return &docledgerpb.ProcessNextJobResponse{Processed: processed}, nil
}

func parseUserID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentError("user_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("user_id must be a UUID")
	}
	return id, nil
}

func validDocType(t string) bool {
	for _, v := range constants.DocTypes {
		if v == t {
			return true
		}
	}
	return false
}

func extOf(fileName, contentType string) string {
	if i := strings.LastIndex(fileName, "."); i >= 0 && i < len(fileName)-1 {
		ext := fileName[i+1:]
		if _, ok := constants.AllowedExtensions[strings.ToLower(ext)]; ok {
			return ext
		}
	}
	return constants.ExtForMIME(contentType)
}

func toPBDocument(d *entity.Document) *docledgerpb.Document {
	pb := &docledgerpb.Document{
		Id:        d.ID.String(),
		UserId:    d.UserID.String(),
		Type:      d.Type,
		Date:      d.Date.Format("2006-01-02"),
		Amount:    d.Amount,
		Currency:  d.Currency,
		Vendor:    d.Vendor,
		FileName:  d.FileName,
		FileMime:  d.FileMime,
		FileSize:  int64(d.FileSize),
		OcrStatus: d.OCRStatus,
		CreatedAt: d.CreatedAt.Format(time.RFC3339Nano),
	}
	if d.DocNumber != nil {
		pb.DocNumber = *d.DocNumber
	}
	return pb
}
