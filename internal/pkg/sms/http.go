package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPProvider delivers messages through a JSON HTTP gateway. Most SMS
// aggregators expose this shape: POST with api key auth and a to/body pair.
type HTTPProvider struct {
	endpoint string
	apiKey   string
	sender   string
	client   *http.Client
}

// NewHTTPProvider configures a gateway client. The sender id is the
// originator shown on the recipient's phone.
func NewHTTPProvider(endpoint, apiKey, sender string) *HTTPProvider {
	return &HTTPProvider{
		endpoint: endpoint,
		apiKey:   apiKey,
		sender:   sender,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type gatewayRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Body string `json:"body"`
}

// Send posts the message to the gateway and fails on any non-2xx response.
func (p *HTTPProvider) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(gatewayRequest{From: p.sender, To: msg.To, Body: msg.Body})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}

	return nil
}
