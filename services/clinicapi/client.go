package clinicapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"clinovia/utils"
)

// envelope is the clinic backend's response convention:
// { success: boolean, data: ..., message?: string }.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
}

// Client is a thin typed wrapper over the clinic backend REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient returns a clinic API client rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     utils.GetLogger(),
	}
}

// get issues a GET and decodes the envelope data into out.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	return c.do(req, out)
}

// post issues a POST with a JSON body and decodes the envelope data into out.
func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// do executes the request and unwraps the response envelope. A success=false
// envelope becomes an *APIError carrying the classified rejection kind.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("clinic api request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read clinic api response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.logger.Warn("clinic api returned an unrecognized payload",
			zap.String("path", req.URL.Path), zap.Int("status", resp.StatusCode))
		return &APIError{
			Kind:       KindUnknown,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected response from clinic api (status %d)", resp.StatusCode),
		}
	}

	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("clinic api rejected the request (status %d)", resp.StatusCode)
		}
		return &APIError{
			Kind:       Classify(msg),
			StatusCode: resp.StatusCode,
			Message:    msg,
		}
	}

	if out == nil {
		return nil
	}
	if len(env.Data) == 0 {
		return &APIError{
			Kind:       KindUnknown,
			StatusCode: resp.StatusCode,
			Message:    "clinic api response carried no data",
		}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode clinic api data: %w", err)
	}
	return nil
}
