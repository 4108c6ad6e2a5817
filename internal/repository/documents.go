package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/gen/ent"
	"github.com/docledger/docledger/gen/ent/document"
	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/entity"
)

// InboundFilePrefix marks documents created by the messaging webhook; the
// classification intent only ever reclassifies these.
const InboundFilePrefix = "webhook-"

type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) (*entity.Document, error)
	GetByID(ctx context.Context, userID, docID uuid.UUID) (*entity.Document, error)
	// FindByHash returns (nil, nil) when no document with the hash exists.
	FindByHash(ctx context.Context, userID uuid.UUID, hash string) (*entity.Document, error)
	// LatestInbound returns the most recent webhook-created document newer
	// than since, or (nil, nil).
	LatestInbound(ctx context.Context, userID uuid.UUID, since time.Time) (*entity.Document, error)
	SetType(ctx context.Context, docID uuid.UUID, docType string) error
	SetFileKey(ctx context.Context, docID uuid.UUID, key string) error
	// ResetOCR puts the document back to pending and clears stored text.
	ResetOCR(ctx context.Context, docID uuid.UUID) error
	// ApplyExtraction writes the outcome of one extraction attempt.
	ApplyExtraction(ctx context.Context, docID uuid.UUID, upd entity.ExtractionUpdate) error
	// MarkOCRFailed records a terminal failure with a human-readable message.
	MarkOCRFailed(ctx context.Context, docID uuid.UUID, message string) error
	List(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]*entity.Document, error)
}

type documentRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, log *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, log: log}
}

func (r *documentRepo) Create(ctx context.Context, doc *entity.Document) (*entity.Document, error) {
	builder := r.ent.Document.Create().
		SetUserID(doc.UserID)
	// Callers that pre-derive the storage key from the document ID pass the
	// ID in; otherwise the schema default applies.
	if doc.ID != uuid.Nil {
		builder = builder.SetID(doc.ID)
	}
	builder = builder.
		SetType(doc.Type).
		SetDate(doc.Date).
		SetAmount(doc.Amount).
		SetCurrency(doc.Currency).
		SetVendor(doc.Vendor).
		SetNillableCategoryID(doc.CategoryID).
		SetNillableDescription(doc.Description).
		SetNillableDocNumber(doc.DocNumber).
		SetFileKey(doc.FileKey).
		SetFileName(doc.FileName).
		SetFileMime(doc.FileMime).
		SetFileSize(doc.FileSize).
		SetContentHash(doc.ContentHash).
		SetOcrStatus(doc.OCRStatus)

	created, err := builder.Save(ctx)
	if err != nil {
		r.log.Error("document create failed", "user_id", doc.UserID, "error", err)
		return nil, err
	}
	r.log.Info("document created", "doc_id", created.ID, "user_id", doc.UserID, "file_name", doc.FileName)
	return toDocument(created), nil
}

func (r *documentRepo) GetByID(ctx context.Context, userID, docID uuid.UUID) (*entity.Document, error) {
	d, err := r.ent.Document.Query().
		Where(document.ID(docID), document.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toDocument(d), nil
}

func (r *documentRepo) FindByHash(ctx context.Context, userID uuid.UUID, hash string) (*entity.Document, error) {
	d, err := r.ent.Document.Query().
		Where(document.UserID(userID), document.ContentHash(hash)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toDocument(d), nil
}

func (r *documentRepo) LatestInbound(ctx context.Context, userID uuid.UUID, since time.Time) (*entity.Document, error) {
	d, err := r.ent.Document.Query().
		Where(
			document.UserID(userID),
			document.CreatedAtGTE(since),
			document.FileNameHasPrefix(InboundFilePrefix),
		).
		Order(ent.Desc(document.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toDocument(d), nil
}

func (r *documentRepo) SetType(ctx context.Context, docID uuid.UUID, docType string) error {
	return r.ent.Document.UpdateOneID(docID).SetType(docType).Exec(ctx)
}

func (r *documentRepo) SetFileKey(ctx context.Context, docID uuid.UUID, key string) error {
	return r.ent.Document.UpdateOneID(docID).SetFileKey(key).Exec(ctx)
}

func (r *documentRepo) ResetOCR(ctx context.Context, docID uuid.UUID) error {
	return r.ent.Document.UpdateOneID(docID).
		SetOcrStatus(string(constants.OCRPending)).
		ClearOcrText().
		Exec(ctx)
}

func (r *documentRepo) ApplyExtraction(ctx context.Context, docID uuid.UUID, upd entity.ExtractionUpdate) error {
	u := r.ent.Document.UpdateOneID(docID).
		SetOcrStatus(upd.OCRStatus).
		SetOcrText(common.Truncate(upd.OCRText, constants.MaxOCRTextLen))
	if upd.Date != nil {
		u.SetDate(*upd.Date)
	}
	if upd.Amount != nil {
		u.SetAmount(*upd.Amount)
	}
	if upd.Vendor != nil {
		u.SetVendor(*upd.Vendor)
	}
	if upd.DocNumber != nil {
		u.SetDocNumber(*upd.DocNumber)
	}
	if upd.Currency != nil {
		u.SetCurrency(*upd.Currency)
	}
	if err := u.Exec(ctx); err != nil {
		r.log.Error("apply extraction failed", "doc_id", docID, "error", err)
		return err
	}
	return nil
}

func (r *documentRepo) MarkOCRFailed(ctx context.Context, docID uuid.UUID, message string) error {
	err := r.ent.Document.UpdateOneID(docID).
		SetOcrStatus(string(constants.OCRFailed)).
		SetOcrText(common.Truncate(message, constants.MaxOCRTextLen)).
		Exec(ctx)
	if err != nil {
		r.log.Error("mark ocr failed errored", "doc_id", docID, "error", err)
	}
	return err
}

func (r *documentRepo) List(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]*entity.Document, error) {
	q := r.ent.Document.Query().Where(document.UserID(userID))
	if from != nil {
		q = q.Where(document.DateGTE(*from))
	}
	if to != nil {
		q = q.Where(document.DateLTE(*to))
	}
	docs, err := q.Order(ent.Desc(document.FieldDate)).All(ctx)
	if err != nil {
		r.log.Error("list documents failed", "user_id", userID, "error", err)
		return nil, err
	}
	out := make([]*entity.Document, len(docs))
	for i, d := range docs {
		out[i] = toDocument(d)
	}
	return out, nil
}
