// Package transport issues the single outbound HTTP call for a document
// submission. It performs no retries and draws no conclusions from the
// response; status code and body are handed back to the caller untouched.
package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultURL is the production documents/create endpoint.
const DefaultURL = "https://ismp.crpt.ru/api/v3/lk/documents/create"

// DefaultTimeout bounds a single submission round trip.
const DefaultTimeout = 30 * time.Second

// Receipt is the uninterpreted outcome of one submission.
type Receipt struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the status code is in the 2xx range.
func (r *Receipt) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Submitter sends one signed JSON payload to the remote endpoint.
type Submitter interface {
	Submit(ctx context.Context, payload []byte, signature string) (*Receipt, error)
}

// HTTPConfig configures an HTTPSubmitter.
type HTTPConfig struct {
	// URL is the submission endpoint. Empty selects DefaultURL.
	URL string

	// Client is the HTTP client to use. Nil selects a client with
	// DefaultTimeout.
	Client *http.Client
}

// HTTPSubmitter performs exactly one POST per submission.
type HTTPSubmitter struct {
	url    string
	client *http.Client
}

// NewHTTPSubmitter creates an HTTPSubmitter.
func NewHTTPSubmitter(cfg HTTPConfig) (*HTTPSubmitter, error) {
	endpoint := cfg.URL
	if endpoint == "" {
		endpoint = DefaultURL
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, NewInvalidURLError(endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, NewInvalidURLError(endpoint, ErrUnsupportedScheme)
	}

	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	return &HTTPSubmitter{url: endpoint, client: client}, nil
}

// Submit posts payload as application/json with the detached signature in
// the Signature header.
func (s *HTTPSubmitter) Submit(ctx context.Context, payload []byte, signature string) (*Receipt, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return nil, NewRequestFailedError(s.url, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Signature", signature)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, NewRequestFailedError(s.url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewReadBodyError(s.url, err)
	}

	return &Receipt{StatusCode: resp.StatusCode, Body: body}, nil
}
