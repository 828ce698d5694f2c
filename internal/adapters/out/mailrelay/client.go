// Package mailrelay sends templated notification emails through the mail
// relay service's HTTP API. The relay owns template rendering and provider
// integration; this client only posts the template identifier, the recipient,
// and the template data.
package mailrelay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client is an HTTP mailer backed by the mail relay service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a mail relay client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type sendRequest struct {
	TemplateID string            `json:"template_id"`
	To         string            `json:"to"`
	Data       map[string]string `json:"data"`
}

// Send posts one templated email to the relay.
// Any non-2xx response is reported as an error so the outbox keeps the
// record pending for a later retry.
func (c *Client) Send(ctx context.Context, templateID string, recipient string, data map[string]string) error {
	payload, err := json.Marshal(sendRequest{
		TemplateID: templateID,
		To:         recipient,
		Data:       data,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/send", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("mail relay returned status %d", resp.StatusCode)
	}

	return nil
}
