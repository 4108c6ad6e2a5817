package ocr

import "context"

// TextExtractor turns a stored file into best-effort plain text. A
// successful call may legitimately return empty text (blank page, photo of
// nothing); the queue treats that as a soft failure rather than retrying.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, mime, filename string) (string, error)
}
