package entity

import (
	"time"

	"github.com/google/uuid"
)

// OCRJob represents a queue row for data transfer between layers.
type OCRJob struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	DocID      uuid.UUID  `json:"doc_id"`
	Status     string     `json:"status"`
	Attempts   int        `json:"attempts"`
	NextRunAt  *time.Time `json:"next_run_at,omitempty"`
	LastError  *string    `json:"last_error,omitempty"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
