package webhook

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// maxMediaBytes caps inbound attachments; WhatsApp media tops out well
// below this.
const maxMediaBytes = 32 << 20

// MediaFetcher retrieves an inbound attachment from the provider's media
// endpoint.
type MediaFetcher interface {
	Fetch(ctx context.Context, url string) (data []byte, contentType string, err error)
}

// TwilioFetcher fetches media URLs with Basic auth (Account SID and Auth
// Token), as Twilio's media endpoints require.
type TwilioFetcher struct {
	AccountSID string
	AuthToken  string
	Client     *http.Client
}

func (f *TwilioFetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	if f.AccountSID == "" || f.AuthToken == "" {
		return nil, "", fmt.Errorf("twilio credentials not configured")
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	req.SetBasicAuth(f.AccountSID, f.AuthToken)

	res, err := client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("media fetch failed: %d", res.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(res.Body, maxMediaBytes))
	if err != nil {
		return nil, "", err
	}
	contentType := res.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return data, contentType, nil
}
