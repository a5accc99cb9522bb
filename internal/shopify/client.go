// Package shopify is a minimal Admin GraphQL API client: one POST per
// operation, typed wrappers for the handful of queries and mutations the
// order generator needs, and typed errors for everything the platform can
// answer with.
package shopify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Config holds the connection details for one store.
type Config struct {
	ShopDomain  string // e.g. "my-store.myshopify.com"
	AccessToken string
	APIVersion  string        // e.g. "2025-10"
	Endpoint    string        // optional full URL override, wins over ShopDomain+APIVersion
	Timeout     time.Duration // per-request timeout, zero means 30s
}

// Client talks to the platform's Admin GraphQL endpoint. Every method issues
// exactly one HTTP request and never retries.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// NewClient creates a Client for cfg.
func NewClient(cfg Config) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s/admin/api/%s/graphql.json", cfg.ShopDomain, cfg.APIVersion)
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint:   endpoint,
		token:      cfg.AccessToken,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

// execute posts one GraphQL document and decodes the data payload into out.
// Transport-level failures (connectivity, non-200, undecodable bodies) come
// back as *TransportError, a GraphQL error envelope as *APIError.
func (c *Client) execute(op, query string, variables map[string]any, out any) error {
	payload, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("failed to encode request: %w", err)}
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}
	if resp.StatusCode != http.StatusOK {
		return &TransportError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status: %s", truncate(body))}
	}

	var envelope graphqlEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &TransportError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if len(envelope.Errors) > 0 {
		return &APIError{Op: op, Errors: envelope.Errors}
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return &TransportError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode data payload: %w", err)}
		}
	}
	return nil
}

// truncate keeps error messages readable when the platform answers with HTML
// or some other long body.
func truncate(body []byte) string {
	const max = 200
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
