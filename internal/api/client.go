package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"habitctl/internal/logger"
)

// Error is a non-2xx response carrying the server-supplied detail message.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

// errorBody is the shape the server uses for failure responses.
type errorBody struct {
	Detail string `json:"detail"`
}

// Client issues JSON requests against the habit service. It is the only
// place request headers, error decoding, and response decoding happen.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a Client for the given API base URL, e.g.
// "http://localhost:8000/api/v1". No request timeout is set; callers
// control cancellation through their context.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

// Do performs a request against endpoint (a path under the API base, e.g.
// "/habits/"). A non-empty token is attached as a bearer credential. When
// body is non-nil it is sent as JSON; when out is non-nil the response body
// is decoded into it. Non-2xx responses are returned as *Error with the
// server's detail message, or a generic message when the body is not
// decodable.
func (c *Client) Do(ctx context.Context, method, endpoint, token string, body, out any) error {
	url := c.BaseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode, Detail: "Network error"}
		var eb errorBody
		if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil && eb.Detail != "" {
			apiErr.Detail = eb.Detail
		}
		logger.Debug("API request failed", "method", method, "endpoint", endpoint, "status", resp.StatusCode, "detail", apiErr.Detail)
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
