// Package client is a typed Go client for the public brochure API. Paths,
// methods, expected statuses and input rules all come from the contract
// package, so a request the server would reject with 400 is rejected here
// before it leaves the process.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"solene-digital.backend/internal/domain/contract"
	"solene-digital.backend/internal/domain/entities"
)

// APIError is returned for any response status the endpoint does not
// declare, such as a 500.
type APIError struct {
	Status  int
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
}

// Client is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default client, which has a 30 second timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SubmitContact validates input and posts it. A rule violation, local or
// reported by the server, is returned as *contract.ValidationError.
func (c *Client) SubmitContact(ctx context.Context, input entities.ContactInput) (*entities.Contact, error) {
	if verr := contract.Parse(&input); verr != nil {
		return nil, verr
	}

	var out entities.Contact
	if err := c.do(ctx, contract.CreateContact, nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitContactIdempotent is SubmitContact with an Idempotency-Key header,
// so retries with the same key store at most one contact.
func (c *Client) SubmitContactIdempotent(ctx context.Context, key string, input entities.ContactInput) (*entities.Contact, error) {
	if verr := contract.Parse(&input); verr != nil {
		return nil, verr
	}

	var out entities.Contact
	headers := map[string]string{"Idempotency-Key": key}
	if err := c.do(ctx, contract.CreateContact, headers, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListServices(ctx context.Context) ([]entities.Service, error) {
	out := []entities.Service{}
	if err := c.do(ctx, contract.ListServices, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListTeamMembers(ctx context.Context) ([]entities.TeamMember, error) {
	out := []entities.TeamMember{}
	if err := c.do(ctx, contract.ListTeam, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, e contract.Endpoint, headers map[string]string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, e.Method, c.baseURL+contract.BuildURL(e.Path, nil), bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", e.Name, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", e.Name, err)
	}

	switch {
	case resp.StatusCode == e.SuccessStatus:
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%s: decode response: %w", e.Name, err)
		}
		return nil
	case resp.StatusCode == http.StatusBadRequest && e.Declares(http.StatusBadRequest):
		verr := &contract.ValidationError{}
		if err := json.Unmarshal(raw, verr); err != nil || verr.Message == "" {
			return &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
		}
		return verr
	default:
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.Unmarshal(raw, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return apiErr
	}
}
