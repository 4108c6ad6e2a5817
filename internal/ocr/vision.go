package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

const (
	visionAnnotateURL   = "https://vision.googleapis.com/v1/images:annotate"
	visionFilesAsyncURL = "https://vision.googleapis.com/v1/files:asyncBatchAnnotate"
	visionOperationsURL = "https://vision.googleapis.com/v1/"

	pollInitialDelay = 500 * time.Millisecond
	pollMaxDelay     = 2 * time.Second
)

// VisionConfig configures the cloud OCR client.
type VisionConfig struct {
	APIKey        string
	Bucket        string // scratch bucket for async PDF OCR
	ScratchPrefix string
	PDFMaxPages   int
	PollTimeout   time.Duration
}

// VisionClient calls the Google Vision REST API: synchronous text detection
// for images, and the asynchronous GCS-backed job-and-poll protocol for
// scanned PDFs.
type VisionClient struct {
	cfg    VisionConfig
	http   *http.Client
	bucket *storage.BucketHandle
	logger *slog.Logger
}

func NewVisionClient(cfg VisionConfig, gcs *storage.Client, logger *slog.Logger) *VisionClient {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ScratchPrefix == "" {
		cfg.ScratchPrefix = "vision"
	}
	if cfg.PDFMaxPages <= 0 || cfg.PDFMaxPages > 20 {
		cfg.PDFMaxPages = 5
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = 30 * time.Second
	}
	var bucket *storage.BucketHandle
	if gcs != nil {
		bucket = gcs.Bucket(cfg.Bucket)
	}
	return &VisionClient{
		cfg:    cfg,
		http:   &http.Client{},
		bucket: bucket,
		logger: logger,
	}
}

// DetectImageText runs synchronous TEXT_DETECTION on image bytes and
// returns the full-text annotation.
func (v *VisionClient) DetectImageText(ctx context.Context, data []byte) (string, error) {
	if v.cfg.APIKey == "" {
		return "", fmt.Errorf("vision: GOOGLE_VISION_API_KEY is not set")
	}
	reqBody := map[string]any{
		"requests": []map[string]any{{
			"image":    map[string]any{"content": base64.StdEncoding.EncodeToString(data)},
			"features": []map[string]any{{"type": "TEXT_DETECTION", "maxResults": 10}},
		}},
	}
	var out struct {
		Responses []struct {
			FullTextAnnotation *struct {
				Text string `json:"text"`
			} `json:"fullTextAnnotation"`
			Error *struct {
				Message string `json:"message"`
			} `json:"error"`
		} `json:"responses"`
	}
	if err := v.post(ctx, visionAnnotateURL, reqBody, &out); err != nil {
		return "", err
	}
	if len(out.Responses) == 0 {
		return "", nil
	}
	first := out.Responses[0]
	if first.Error != nil {
		return "", fmt.Errorf("vision: %s", first.Error.Message)
	}
	if first.FullTextAnnotation == nil {
		return "", nil
	}
	return first.FullTextAnnotation.Text, nil
}

// DetectPDFText runs asynchronous DOCUMENT_TEXT_DETECTION on a PDF: the
// bytes are parked in the scratch area of the bucket, the async operation
// is started and polled, and the per-page output JSON files are read back
// and concatenated. Scratch objects are deleted best-effort regardless of
// outcome. A poll timeout is not treated as failure: the remote job may
// finish moments later, so output listing is attempted anyway.
func (v *VisionClient) DetectPDFText(ctx context.Context, data []byte, docID string) (string, error) {
	if v.cfg.APIKey == "" {
		return "", fmt.Errorf("vision: GOOGLE_VISION_API_KEY is not set")
	}
	if v.bucket == nil {
		return "", fmt.Errorf("vision: no scratch bucket configured for pdf ocr")
	}

	prefix := fmt.Sprintf("%s/%s/%d", v.cfg.ScratchPrefix, docID, time.Now().UnixMilli())
	sourceName := prefix + "/input.pdf"
	defer v.cleanupScratch(prefix)

	w := v.bucket.Object(sourceName).NewWriter(ctx)
	w.ContentType = "application/pdf"
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("vision: upload scratch pdf: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("vision: upload scratch pdf: %w", err)
	}

	attrs, err := v.bucket.Attrs(ctx)
	if err != nil {
		return "", fmt.Errorf("vision: bucket attrs: %w", err)
	}
	sourceURI := fmt.Sprintf("gs://%s/%s", attrs.Name, sourceName)
	destURI := fmt.Sprintf("gs://%s/%s/", attrs.Name, prefix)

	opName, err := v.startPDFOperation(ctx, sourceURI, destURI)
	if err != nil {
		return "", err
	}

	if err := v.waitOperation(ctx, opName); err != nil {
		// The operation may still complete shortly; try the output listing
		// before giving up.
		v.logger.Warn("vision pdf operation not done, checking outputs anyway",
			"doc_id", docID, "operation", opName, "error", err)
	}

	return v.collectOutputs(ctx, prefix)
}

func (v *VisionClient) startPDFOperation(ctx context.Context, sourceURI, destURI string) (string, error) {
	pages := make([]int, v.cfg.PDFMaxPages)
	for i := range pages {
		pages[i] = i + 1
	}
	reqBody := map[string]any{
		"requests": []map[string]any{{
			"inputConfig":  map[string]any{"gcsSource": map[string]any{"uri": sourceURI}, "mimeType": "application/pdf"},
			"features":     []map[string]any{{"type": "DOCUMENT_TEXT_DETECTION"}},
			"pages":        pages,
			"outputConfig": map[string]any{"gcsDestination": map[string]any{"uri": destURI}},
		}},
	}
	var out struct {
		Name string `json:"name"`
	}
	if err := v.post(ctx, visionFilesAsyncURL, reqBody, &out); err != nil {
		return "", err
	}
	if out.Name == "" {
		return "", fmt.Errorf("vision: async start returned no operation name")
	}
	return out.Name, nil
}

// waitOperation polls with exponential backoff capped at pollMaxDelay,
// up to the configured overall timeout.
func (v *VisionClient) waitOperation(ctx context.Context, opName string) error {
	deadline := time.Now().Add(v.cfg.PollTimeout)
	delay := pollInitialDelay
	for time.Now().Before(deadline) {
		reqURL := visionOperationsURL + url.PathEscape(opName) + "?key=" + url.QueryEscape(v.cfg.APIKey)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return err
		}
		res, err := v.http.Do(req)
		if err != nil {
			return fmt.Errorf("vision: poll: %w", err)
		}
		body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
		res.Body.Close()
		if err != nil {
			return fmt.Errorf("vision: poll read: %w", err)
		}
		if res.StatusCode != http.StatusOK {
			return fmt.Errorf("vision: poll returned %d: %s", res.StatusCode, truncateBody(body))
		}
		var op struct {
			Done  bool `json:"done"`
			Error *struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(body, &op); err != nil {
			return fmt.Errorf("vision: poll decode: %w", err)
		}
		if op.Error != nil {
			return fmt.Errorf("vision: operation failed: %s", op.Error.Message)
		}
		if op.Done {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay = delay * 3 / 2
		if delay > pollMaxDelay {
			delay = pollMaxDelay
		}
	}
	return fmt.Errorf("vision: operation still running after %s", v.cfg.PollTimeout)
}

// collectOutputs lists the per-page JSON files Vision wrote under the
// scratch prefix, validates each against the output schema, and
// concatenates the page texts. Malformed files are skipped.
func (v *VisionClient) collectOutputs(ctx context.Context, prefix string) (string, error) {
	it := v.bucket.Objects(ctx, &storage.Query{Prefix: prefix})
	var b strings.Builder
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return "", fmt.Errorf("vision: list outputs: %w", err)
		}
		if !strings.HasSuffix(attrs.Name, ".json") {
			continue
		}
		r, err := v.bucket.Object(attrs.Name).NewReader(ctx)
		if err != nil {
			v.logger.Warn("vision output unreadable", "object", attrs.Name, "error", err)
			continue
		}
		content, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			v.logger.Warn("vision output unreadable", "object", attrs.Name, "error", err)
			continue
		}
		for _, t := range extractOutputTexts(content) {
			if b.Len() > 0 {
				b.WriteString("\n\n")
			}
			b.WriteString(t)
		}
	}
	return b.String(), nil
}

// cleanupScratch deletes everything under the scratch prefix, best-effort.
// Runs on its own short-lived context so cleanup still happens when the
// caller's context is already dead.
func (v *VisionClient) cleanupScratch(prefix string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	it := v.bucket.Objects(ctx, &storage.Query{Prefix: prefix})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			return
		}
		if err != nil {
			v.logger.Warn("vision scratch cleanup listing failed", "prefix", prefix, "error", err)
			return
		}
		if err := v.bucket.Object(attrs.Name).Delete(ctx); err != nil {
			v.logger.Warn("vision scratch cleanup delete failed", "object", attrs.Name, "error", err)
		}
	}
}

func (v *VisionClient) post(ctx context.Context, endpoint string, reqBody any, out any) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}
	reqURL := endpoint + "?key=" + url.QueryEscape(v.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := v.http.Do(req)
	if err != nil {
		return fmt.Errorf("vision: %w", err)
	}
	defer res.Body.Close()
	body, err := io.ReadAll(io.LimitReader(res.Body, 8<<20))
	if err != nil {
		return fmt.Errorf("vision: read response: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("vision: %s returned %d: %s", endpoint, res.StatusCode, truncateBody(body))
	}
	return json.Unmarshal(body, out)
}

func truncateBody(b []byte) string {
	const max = 500
	if len(b) > max {
		b = b[:max]
	}
	return string(b)
}
