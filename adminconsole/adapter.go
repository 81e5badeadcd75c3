// Package adminconsole is the admin UI's client for vendor management. The
// vendor endpoints drifted across backend iterations (paths, methods and body
// shapes all changed), so every call walks an ordered candidate list and
// settles on the first one the backend understands.
package adminconsole

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Attempt is one (method, path, body shape) candidate. Path templates use
// :id for the vendor id; Body may be nil for bodyless requests.
type Attempt struct {
	Method string
	Path   string
	Body   func(approved bool) interface{}
}

var setApprovalAttempts = []Attempt{
	{http.MethodPatch, "/api/vendors/:id/approval", func(a bool) interface{} {
		return map[string]bool{"isApproved": a}
	}},
	{http.MethodPut, "/api/admin/vendors/:id", func(a bool) interface{} {
		return map[string]bool{"approved": a}
	}},
	{http.MethodPost, "/api/vendors/:id/approve", nil},
	{http.MethodPatch, "/api/vendors/:id", func(a bool) interface{} {
		status := "pending"
		if a {
			status = "approved"
		}
		return map[string]string{"status": status}
	}},
}

var deleteAttempts = []Attempt{
	{http.MethodDelete, "/api/vendors/:id", nil},
	{http.MethodDelete, "/api/admin/vendors/:id", nil},
	{http.MethodPost, "/api/vendors/:id/delete", nil},
}

// DeleteResult reports what actually happened: Hard=false means no delete
// endpoint worked and the vendor was disabled instead.
type DeleteResult struct {
	Hard bool `json:"hard"`
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(baseURL, token string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// SetApproval toggles a vendor, trying each candidate in order and returning
// on the first 2xx. An error is returned only when every candidate fails.
func (c *Client) SetApproval(ctx context.Context, vendorID string, approved bool) error {
	var lastErr error
	for _, attempt := range setApprovalAttempts {
		err := c.do(ctx, attempt, vendorID, approved, nil)
		if err == nil {
			return nil
		}
		lastErr = err
		c.log.Debug().
			Str("method", attempt.Method).
			Str("path", attempt.Path).
			Err(err).
			Msg("approval candidate failed, trying next")
	}
	return fmt.Errorf("all approval endpoints failed: %w", lastErr)
}

// DeleteVendor tries the hard-delete candidates; when none succeed it falls
// back to disabling the vendor and truthfully reports Hard=false. A reported
// hard delete always means a delete endpoint returned 2xx.
func (c *Client) DeleteVendor(ctx context.Context, vendorID string) (DeleteResult, error) {
	var lastErr error
	for _, attempt := range deleteAttempts {
		err := c.do(ctx, attempt, vendorID, false, nil)
		if err == nil {
			return DeleteResult{Hard: true}, nil
		}
		lastErr = err
		c.log.Debug().
			Str("method", attempt.Method).
			Str("path", attempt.Path).
			Err(err).
			Msg("delete candidate failed, trying next")
	}

	if err := c.SetApproval(ctx, vendorID, false); err != nil {
		return DeleteResult{}, fmt.Errorf("hard delete failed (%v); soft-delete fallback also failed: %w", lastErr, err)
	}
	return DeleteResult{Hard: false}, nil
}

func (c *Client) do(ctx context.Context, attempt Attempt, vendorID string, approved bool, out interface{}) error {
	url := c.baseURL + strings.ReplaceAll(attempt.Path, ":id", vendorID)

	var bodyReader io.Reader
	if attempt.Body != nil {
		payload, err := json.Marshal(attempt.Body(approved))
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, attempt.Method, url, bodyReader)
	if err != nil {
		return err
	}
	if attempt.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s returned %d: %s", attempt.Method, attempt.Path, resp.StatusCode, strings.TrimSpace(string(payload)))
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
