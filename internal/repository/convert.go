package repository

import (
	"github.com/docledger/docledger/gen/ent"
	"github.com/docledger/docledger/internal/entity"
)

func toDocument(d *ent.Document) *entity.Document {
	if d == nil {
		return nil
	}
	return &entity.Document{
		ID:          d.ID,
		UserID:      d.UserID,
		Type:        d.Type,
		Date:        d.Date,
		Amount:      d.Amount,
		Currency:    d.Currency,
		Vendor:      d.Vendor,
		CategoryID:  d.CategoryID,
		Description: d.Description,
		DocNumber:   d.DocNumber,
		FileKey:     d.FileKey,
		FileName:    d.FileName,
		FileMime:    d.FileMime,
		FileSize:    d.FileSize,
		ContentHash: d.ContentHash,
		OCRStatus:   d.OcrStatus,
		OCRText:     d.OcrText,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toJob(j *ent.OCRJob) *entity.OCRJob {
	if j == nil {
		return nil
	}
	return &entity.OCRJob{
		ID:         j.ID,
		UserID:     j.UserID,
		DocID:      j.DocID,
		Status:     j.Status,
		Attempts:   j.Attempts,
		NextRunAt:  j.NextRunAt,
		LastError:  j.LastError,
		StartedAt:  j.StartedAt,
		FinishedAt: j.FinishedAt,
		CreatedAt:  j.CreatedAt,
	}
}

func toUser(u *ent.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		ID:                     u.ID,
		Name:                   u.Name,
		PhoneNumber:            u.PhoneNumber,
		WhatsappIncomingNumber: u.WhatsappIncomingNumber,
		CreatedAt:              u.CreatedAt,
	}
}

func toCategory(c *ent.Category) *entity.Category {
	if c == nil {
		return nil
	}
	return &entity.Category{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

func toTransaction(t *ent.Transaction) *entity.Transaction {
	if t == nil {
		return nil
	}
	return &entity.Transaction{
		ID:          t.ID,
		UserID:      t.UserID,
		CategoryID:  t.CategoryID,
		Type:        t.Type,
		Date:        t.Date,
		Amount:      t.Amount,
		Currency:    t.Currency,
		Vendor:      t.Vendor,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}
