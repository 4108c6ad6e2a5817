package storage

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestDocumentKey(t *testing.T) {
	userID := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	docID := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	at := time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC)

	got := DocumentKey(userID, docID, at, "pdf")
	want := fmt.Sprintf("receipts/%s/2024/03/%s.pdf", userID, docID)
	if got != want {
		t.Fatalf("DocumentKey = %q, want %q", got, want)
	}
}
