/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/unikorn-cloud/conformance/pkg/constants"
)

// APIClient issues one synchronous request per call against a base URL.
// It holds no per-request state and may be shared between tests.
type APIClient struct {
	baseURL      string
	client       HTTPDoer
	timeout      time.Duration
	logger       logr.Logger
	logRequests  bool
	logResponses bool
}

func NewAPIClient(baseURL string, opts ...ClientOption) *APIClient {
	c := &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logr.Discard(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{}
	}

	return c
}

// NewAPIClientWithConfig creates a client for baseURL with logging and
// timeouts taken from the test configuration.
func NewAPIClientWithConfig(config *TestConfig, baseURL string, opts ...ClientOption) *APIClient {
	options := []ClientOption{
		WithTimeout(config.RequestTimeout),
		WithRequestLogging(config.LogRequests || config.DebugLogging),
		WithResponseLogging(config.LogResponses || config.DebugLogging),
	}

	return NewAPIClient(baseURL, append(options, opts...)...)
}

func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// URL joins the base URL and endpoint with a single separating slash.
func (c *APIClient) URL(endpoint string) string {
	return c.baseURL + "/" + strings.TrimPrefix(endpoint, "/")
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, url string, duration time.Duration, traceParent, requestID string, err error, context string) {
	c.logger.Error(err, context, "method", method, "url", url, "duration", duration, "traceID", extractTraceID(traceParent), "requestID", requestID)
}

// generateTraceID creates a new W3C trace ID.
// Every request gets its own so a failure can be found in the service logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// SendRequest sends method to the endpoint relative to the base URL and
// returns the JSON decoded response body and status code.  Request options
// are forwarded unmodified.  There is a single attempt, any failure to
// complete the request or decode the response is an ErrTransport.
//
//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) SendRequest(ctx context.Context, method, endpoint string, opts ...RequestOption) (any, int, error) {
	options := newRequestOptions(opts)

	timeout := c.timeout
	if options.timeout > 0 {
		timeout = options.timeout
	}

	if timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	fullURL := c.URL(endpoint)

	var body io.Reader

	if options.hasBody {
		data, err := json.Marshal(options.body)
		if err != nil {
			return nil, 0, transportError(fmt.Errorf("marshaling request body: %w", err))
		}

		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, 0, transportError(fmt.Errorf("creating request: %w", err))
	}

	if len(options.query) > 0 {
		req.URL.RawQuery = options.query.Encode()
	}

	traceParent := createTraceParent()
	requestID := uuid.NewString()

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constants.VersionString())
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("X-Request-Id", requestID)

	if options.hasBody {
		req.Header.Set("Content-Type", "application/json")
	}

	// Caller headers win.
	for key, values := range options.headers {
		req.Header[key] = values
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, req.URL.String(), duration, traceParent, requestID, err, "http request failed")
		return nil, 0, transportError(fmt.Errorf("http request failed: %w", err))
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logError(method, req.URL.String(), duration, traceParent, requestID, err, "reading response body")
		return nil, resp.StatusCode, transportError(fmt.Errorf("reading response body: %w", err))
	}

	if c.logRequests {
		c.logger.Info("request completed", "method", method, "url", req.URL.String(), "status", resp.StatusCode, "duration", duration, "traceID", extractTraceID(traceParent), "requestID", requestID)
	}

	if c.logResponses && len(respBody) > 0 {
		c.logger.Info("response body", "method", method, "url", req.URL.String(), "body", string(respBody))
	}

	decoded, err := decodeBody(respBody)
	if err != nil {
		c.logError(method, req.URL.String(), duration, traceParent, requestID, err, "decoding response body")
		return nil, resp.StatusCode, transportError(fmt.Errorf("decoding response body (status %d, trace ID %s): %w", resp.StatusCode, extractTraceID(traceParent), err))
	}

	return decoded, resp.StatusCode, nil
}

// decodeBody decodes a JSON document, an empty body is not a JSON document.
func decodeBody(data []byte) (any, error) {
	var body any

	if err := json.Unmarshal(data, &body); err != nil {
		return nil, err
	}

	return body, nil
}

// ValidateStatusCode see the package level ValidateStatusCode.
func (c *APIClient) ValidateStatusCode(expected, actual int) error {
	return ValidateStatusCode(expected, actual)
}

// ValidateResponseBody see the package level ValidateResponseBody.
func (c *APIClient) ValidateResponseBody(expected, actual any) error {
	return ValidateResponseBody(expected, actual)
}
