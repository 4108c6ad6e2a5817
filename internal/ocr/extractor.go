package ocr

import (
	"context"
	"log/slog"
	"strings"

	"github.com/docledger/docledger/constants"
)

// Extractor picks an extraction strategy per file type and chains
// fallbacks: PDFs try the embedded text layer first and fall back to cloud
// OCR, images go straight to cloud OCR.
type Extractor struct {
	vision *VisionClient
	logger *slog.Logger
}

func NewExtractor(vision *VisionClient, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{vision: vision, logger: logger}
}

// Extract returns best-effort plain text for the file. Transport and
// service errors propagate to the caller, which governs retry; empty text
// from a successful call is returned as-is.
func (e *Extractor) Extract(ctx context.Context, data []byte, mime, filename string) (string, error) {
	if constants.IsPDF(mime, filename) {
		return e.extractPDF(ctx, data, filename)
	}

	text, err := e.vision.DetectImageText(ctx, data)
	if err != nil {
		e.logger.Error("image ocr failed", "file", filename, "error", err)
		return "", err
	}
	return text, nil
}

func (e *Extractor) extractPDF(ctx context.Context, data []byte, filename string) (string, error) {
	// Fast path: born-digital PDFs carry a text layer. Errors here are not
	// fatal; scanned PDFs simply have nothing to give.
	text, err := pdfTextLayer(data)
	if err != nil {
		e.logger.Debug("pdf text layer failed, falling back to cloud ocr", "file", filename, "error", err)
		text = ""
	}
	if strings.TrimSpace(text) != "" {
		return text, nil
	}

	text, err = e.vision.DetectPDFText(ctx, data, filename)
	if err != nil {
		e.logger.Error("pdf cloud ocr failed", "file", filename, "error", err)
		return "", err
	}
	return text, nil
}
