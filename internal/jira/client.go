// Package jira implements the subset of the Jira Cloud REST API (v3) that
// the tix commands need: issue links, workflow transitions, ticket detail,
// and the current-user lookup. Responses are decoded into pkg/models values
// at the boundary; nothing downstream touches raw JSON.
package jira

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	jira "github.com/andygrunwald/go-jira"

	"github.com/danielolaszy/tix/internal/config"
	"github.com/danielolaszy/tix/internal/logging"
)

// Client issues authenticated JSON requests against a single Jira site.
// It holds no mutable state; each operation re-fetches whatever reference
// data it needs (link types and transitions are never cached across calls).
type Client struct {
	site       string
	baseURL    string
	httpClient *http.Client
}

// NewClient loads credentials from the environment and returns a client
// bound to the configured site. Missing email or API token fails here,
// before any network call.
func NewClient() (*Client, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewClientWithConfig(cfg), nil
}

// NewClientWithConfig returns a client for an already-loaded configuration.
func NewClientWithConfig(cfg *config.Config) *Client {
	// Basic auth with the account email and API token, the same transport
	// setup the Atlassian cloud API expects.
	tp := jira.BasicAuthTransport{
		Username: cfg.Atlassian.Email,
		Password: cfg.Atlassian.APIToken,
	}

	logging.Debug("configured jira client",
		"site", cfg.Atlassian.Site,
		"email", cfg.Atlassian.Email,
		"token", logging.MaskSensitive(cfg.Atlassian.APIToken))

	return &Client{
		site:       cfg.Atlassian.Site,
		baseURL:    fmt.Sprintf("https://%s/rest/api/3", cfg.Atlassian.Site),
		httpClient: tp.Client(),
	}
}

// Site returns the configured Jira hostname.
func (c *Client) Site() string {
	return c.site
}

// request performs one authenticated JSON request against the API. A 204 or
// empty body maps to a nil payload. Non-2xx responses become a
// *RequestError carrying the numeric status and the first errorMessages
// entry when the failure body has one.
func (c *Client) request(method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	logging.Debug("jira request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", c.site, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reqErr := newRequestError(resp.StatusCode, data)
		logging.Debug("jira request failed",
			"method", method,
			"path", path,
			"status", reqErr.StatusCode,
			"message", reqErr.Message)
		return nil, reqErr
	}

	if resp.StatusCode == http.StatusNoContent || len(data) == 0 {
		return nil, nil
	}
	return json.RawMessage(data), nil
}

// get fetches path and decodes the response into out.
func (c *Client) get(path string, out any) error {
	data, err := c.request(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unexpected response from %s: %w", path, err)
	}
	return nil
}
