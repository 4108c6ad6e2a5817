package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document represents a user-submitted financial record for data transfer
// between layers.
type Document struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Type        string     `json:"type"`
	Date        time.Time  `json:"date"`
	Amount      float64    `json:"amount"`
	Currency    string     `json:"currency"`
	Vendor      string     `json:"vendor"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	Description *string    `json:"description,omitempty"`
	DocNumber   *string    `json:"doc_number,omitempty"`
	FileKey     string     `json:"file_key"`
	FileName    string     `json:"file_name"`
	FileMime    string     `json:"file_mime"`
	FileSize    int        `json:"file_size"`
	ContentHash string     `json:"content_hash"`
	OCRStatus   string     `json:"ocr_status"`
	OCRText     *string    `json:"ocr_text,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ExtractionUpdate carries the fields a finished extraction attempt writes
// back to a document. Nil pointers mean "leave as is".
type ExtractionUpdate struct {
	OCRStatus string
	OCRText   string
	Date      *time.Time
	Amount    *float64
	Vendor    *string
	DocNumber *string
	Currency  *string
}
