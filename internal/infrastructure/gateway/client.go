// Package gateway holds the HTTP adapters for the supported payment providers.
package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

type httpClient struct {
	name       string
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

type Option func(*httpClient)

// WithHTTPClient replaces the default client, mainly for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(h *httpClient) {
		h.httpClient = c
	}
}

func newHTTPClient(name, baseURL, secretKey string, opts ...Option) *httpClient {
	c := &httpClient{
		name:       name,
		baseURL:    strings.TrimRight(baseURL, "/"),
		secretKey:  secretKey,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// sendRequest performs one call and decodes a 2xx body into Resp. It returns the raw body alongside
// the decoded value so callers can keep the provider's answer for auditing.
func sendRequest[Req any, Resp any](c *httpClient, ctx context.Context, method, url string, reqBody *Req) (*Resp, []byte, error) {
	op := method + " " + url

	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)
	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, nil, transportError(c.name, op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, transportError(c.name, op, fmt.Errorf("error reading response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err != nil {
			if resp.StatusCode < http.StatusInternalServerError {
				return nil, body, transportError(c.name, op,
					fmt.Errorf("undecodable %d response: %s", resp.StatusCode, string(body)))
			}
			errResp.Message = http.StatusText(resp.StatusCode)
		}
		return nil, body, &GatewayError{
			Gateway:    c.name,
			StatusCode: resp.StatusCode,
			Message:    errResp.Message,
			Body:       body,
		}
	}

	var out Resp
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, body, transportError(c.name, op, fmt.Errorf("error decoding json response: %w", err))
	}

	return &out, body, nil
}
