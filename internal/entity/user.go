package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the owning account for documents and transactions.
type User struct {
	ID                     uuid.UUID `json:"id"`
	Name                   string    `json:"name"`
	PhoneNumber            *string   `json:"phone_number,omitempty"`
	WhatsappIncomingNumber *string   `json:"whatsapp_incoming_number,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
}

// Category groups documents and transactions for bookkeeping.
type Category struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
