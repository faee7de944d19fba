package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// EmailNotifier delivers the order payload to the email notification
// endpoint. One attempt, no retries: the caller treats delivery as
// best-effort.
type EmailNotifier struct {
	client *http.Client
	url    string
	token  string
}

func NewEmailNotifier(url, token string, timeout time.Duration) *EmailNotifier {
	return &EmailNotifier{
		client: &http.Client{Timeout: timeout},
		url:    url,
		token:  token,
	}
}

func (n *EmailNotifier) Notify(ctx context.Context, payload OrderPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode order payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if n.token != "" {
		req.Header.Set("Authorization", "Bearer "+n.token)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("notification request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notification endpoint returned %d", resp.StatusCode)
	}
	return nil
}
