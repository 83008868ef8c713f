package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quillboard/quill/internal/api"
	internal_errors "github.com/quillboard/quill/internal/errors"
)

// Client handles all communication with the backend API. It is stateless:
// the bearer credential is passed into every call by the session, never
// stored here, so an in-flight request can't observe a credential that
// changed after it was issued.
type Client struct {
	BaseURL    string
	HttpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HttpClient: &http.Client{
			Timeout:   timeout,
			Transport: instrument(http.DefaultTransport),
		},
	}
}

// maxErrorBody caps how much of an error response we read back for the
// normalized message.
const maxErrorBody = 4 << 10

// do is the single, unified helper for making API requests. body, when
// non-nil, is validated and marshaled to JSON. An empty token sends the
// request unauthenticated; whether that is acceptable is the server's call.
func (c *Client) do(ctx context.Context, method, path, token string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		if err := api.Validate(body); err != nil {
			return nil, err
		}
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend unavailable: %w", err)
	}
	return resp, nil
}

// doJSON issues the request and decodes a 2xx response into out (skipped when
// out is nil). Non-2xx responses become a normalized StatusError.
func (c *Client) doJSON(ctx context.Context, method, path, token string, body, out any) error {
	resp, err := c.do(ctx, method, path, token, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		// io.EOF: some endpoints answer 2xx with an empty body
		return fmt.Errorf("cannot decode %s %s response: %w", method, path, err)
	}
	return nil
}

// statusError turns a failed response into a StatusError. A structured error
// payload is preferred, the raw body comes next, a generic message last.
func statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	msg := ""
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		if payload.Error != "" {
			msg = payload.Error
		} else {
			msg = payload.Message
		}
	}
	if msg == "" {
		msg = strings.TrimSpace(string(raw))
	}
	if msg == "" {
		msg = fmt.Sprintf("backend returned status %d", resp.StatusCode)
	}
	return &internal_errors.StatusError{Message: msg, StatusCode: resp.StatusCode}
}
