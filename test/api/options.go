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

package api

//go:generate mockgen -source=options.go -destination=mock/interfaces.go -package=mock

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-logr/logr"
)

// HTTPDoer is the transport used to issue requests, satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientOption configures an APIClient.
type ClientOption func(*APIClient)

// WithHTTPClient replaces the default transport.
func WithHTTPClient(client HTTPDoer) ClientOption {
	return func(c *APIClient) {
		c.client = client
	}
}

// WithTimeout bounds every request through its context, whatever the
// transport.  Zero leaves the transport default.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *APIClient) {
		c.timeout = timeout
	}
}

func WithLogger(logger logr.Logger) ClientOption {
	return func(c *APIClient) {
		c.logger = logger
	}
}

func WithRequestLogging(enabled bool) ClientOption {
	return func(c *APIClient) {
		c.logRequests = enabled
	}
}

func WithResponseLogging(enabled bool) ClientOption {
	return func(c *APIClient) {
		c.logResponses = enabled
	}
}

// requestOptions are the caller supplied parts of a request, forwarded as is.
type requestOptions struct {
	query   url.Values
	headers http.Header
	body    any
	hasBody bool
	timeout time.Duration
}

// RequestOption customizes a single SendRequest call.
type RequestOption func(*requestOptions)

// WithQuery adds a query parameter, the value is formatted with fmt.Sprint
// so e.g. WithQuery("results", -5) is sent as results=-5.
func WithQuery(key string, value any) RequestOption {
	return func(o *requestOptions) {
		o.query.Add(key, fmt.Sprint(value))
	}
}

// WithQueryParams adds all the given query parameters.
func WithQueryParams(values url.Values) RequestOption {
	return func(o *requestOptions) {
		for key, list := range values {
			for _, value := range list {
				o.query.Add(key, value)
			}
		}
	}
}

func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		o.headers.Add(key, value)
	}
}

// WithJSONBody sends body encoded as JSON.
func WithJSONBody(body any) RequestOption {
	return func(o *requestOptions) {
		o.body = body
		o.hasBody = true
	}
}

// WithRequestTimeout bounds this request only, overriding WithTimeout.
func WithRequestTimeout(timeout time.Duration) RequestOption {
	return func(o *requestOptions) {
		o.timeout = timeout
	}
}

func newRequestOptions(opts []RequestOption) *requestOptions {
	o := &requestOptions{
		query:   url.Values{},
		headers: http.Header{},
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}
