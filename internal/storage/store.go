package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ObjectStore is the byte-level interface the core needs from object
// storage. Signed-URL generation is a UI concern and lives elsewhere.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// DocumentKey builds the stable storage key for a document's file.
func DocumentKey(userID, docID uuid.UUID, at time.Time, ext string) string {
	return fmt.Sprintf("receipts/%s/%04d/%02d/%s.%s", userID, at.Year(), int(at.Month()), docID, ext)
}
