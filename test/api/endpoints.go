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

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"k8s.io/apimachinery/pkg/runtime"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

// BaseURLKey is the reserved catalog entry holding the API host root.
const BaseURLKey = "base_url"

//go:embed catalog.schema.json
var catalogSchema []byte

var pathParameterRegex = regexp.MustCompile(`\{([^{}]+)\}`)

// EndpointKind distinguishes descriptor shapes.
type EndpointKind int

const (
	// ListableResource endpoints map symbolic outcomes to status codes.
	ListableResource EndpointKind = iota
	// FixedResponse endpoints define a single expected body and status code.
	FixedResponse
)

func (k EndpointKind) String() string {
	switch k {
	case ListableResource:
		return "listable-resource"
	case FixedResponse:
		return "fixed-response"
	}

	return "unknown"
}

// ExpectedResponse is the fixed response of a FixedResponse endpoint.
type ExpectedResponse struct {
	Body       any
	StatusCode int
}

// Endpoint is an immutable endpoint descriptor.  Accessors hand out copies
// so a descriptor can be shared across concurrently running tests.
type Endpoint struct {
	name         string
	method       string
	path         string
	statusCodes  map[string]int
	expected     bool
	expectedBody any
	expectedCode int
	raw          json.RawMessage
}

func (e *Endpoint) Name() string {
	return e.name
}

func (e *Endpoint) Method() string {
	return e.method
}

// Path is the path segment appended to the base URL, it may contain
// {name} placeholders, see ResolvePath.
func (e *Endpoint) Path() string {
	return e.path
}

func (e *Endpoint) Kind() EndpointKind {
	if e.expected {
		return FixedResponse
	}

	return ListableResource
}

// StatusCode returns the status code for a symbolic outcome e.g. "ok".
func (e *Endpoint) StatusCode(outcome string) (int, error) {
	code, ok := e.statusCodes[outcome]
	if !ok {
		return 0, fmt.Errorf("%w: endpoint %q has no %q outcome", ErrUnknownOutcome, e.name, outcome)
	}

	return code, nil
}

// Outcomes lists the symbolic outcomes in lexical order.
func (e *Endpoint) Outcomes() []string {
	outcomes := make([]string, 0, len(e.statusCodes))

	for outcome := range e.statusCodes {
		outcomes = append(outcomes, outcome)
	}

	slices.Sort(outcomes)

	return outcomes
}

// ExpectedResponse returns a deep copy of the expected response.
func (e *Endpoint) ExpectedResponse() (*ExpectedResponse, bool) {
	if !e.expected {
		return nil, false
	}

	return &ExpectedResponse{
		Body:       runtime.DeepCopyJSONValue(e.expectedBody),
		StatusCode: e.expectedCode,
	}, true
}

// Raw returns the descriptor exactly as it appears in the endpoints file.
func (e *Endpoint) Raw() json.RawMessage {
	return slices.Clone(e.raw)
}

// ResolvePath substitutes {name} placeholders with escaped parameter values.
func (e *Endpoint) ResolvePath(params map[string]string) (string, error) {
	var missing []string

	resolved := pathParameterRegex.ReplaceAllStringFunc(e.path, func(placeholder string) string {
		name := placeholder[1 : len(placeholder)-1]

		value, ok := params[name]
		if !ok {
			missing = append(missing, name)
			return placeholder
		}

		return url.PathEscape(value)
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("endpoint %q missing path parameters: %s", e.name, strings.Join(missing, ", "))
	}

	return resolved, nil
}

// Endpoints is the catalog of endpoint descriptors loaded from an endpoints
// file.  It is never modified after LoadEndpoints returns.
type Endpoints struct {
	path      string
	baseURL   string
	endpoints map[string]*Endpoint
}

type statusCodeDocument struct {
	Code int `json:"code"`
}

type expectedResponseDocument struct {
	Body       json.RawMessage `json:"body"`
	StatusCode int             `json:"status_code"`
}

type endpointDocument struct {
	Method           string                        `json:"method"`
	Endpoint         string                        `json:"endpoint"`
	StatusCode       map[string]statusCodeDocument `json:"status_code"`
	ExpectedResponse *expectedResponseDocument     `json:"expected_response"`
}

// LoadEndpoints reads, validates and decodes the endpoints file at path.
func LoadEndpoints(path string) (*Endpoints, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at: %s", ErrConfigNotFound, path)
		}

		return nil, fmt.Errorf("reading endpoints file %s: %w", path, err)
	}

	return parseEndpoints(path, data)
}

func parseEndpoints(path string, data []byte) (*Endpoints, error) {
	var document map[string]json.RawMessage

	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON format in file %s: %w", ErrConfigParse, path, err)
	}

	// A literal null decodes without error.
	if document == nil {
		return nil, fmt.Errorf("%w: invalid JSON format in file %s: top level must be an object", ErrConfigParse, path)
	}

	if err := validateSchema(data); err != nil {
		return nil, fmt.Errorf("%w: schema validation of %s failed: %w", ErrConfigParse, path, err)
	}

	endpoints := &Endpoints{
		path:      path,
		endpoints: make(map[string]*Endpoint, len(document)),
	}

	var errs []error

	for name, raw := range document {
		if name == BaseURLKey {
			baseURL, err := decodeBaseURL(raw)
			if err != nil {
				errs = append(errs, err)
				continue
			}

			endpoints.baseURL = baseURL

			continue
		}

		endpoint, err := decodeEndpoint(name, raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		endpoints.endpoints[name] = endpoint
	}

	if err := utilerrors.NewAggregate(errs); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigParse, path, err)
	}

	return endpoints, nil
}

func validateSchema(data []byte) error {
	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(catalogSchema), gojsonschema.NewBytesLoader(data))
	if err != nil {
		return err
	}

	if result.Valid() {
		return nil
	}

	errs := make([]error, 0, len(result.Errors()))

	for _, resultError := range result.Errors() {
		errs = append(errs, errors.New(resultError.String()))
	}

	return utilerrors.NewAggregate(errs)
}

// decodeBaseURL accepts either a bare string or an object with an endpoint.
func decodeBaseURL(raw json.RawMessage) (string, error) {
	var baseURL string

	if err := json.Unmarshal(raw, &baseURL); err == nil {
		return baseURL, nil
	}

	var document struct {
		Endpoint string `json:"endpoint"`
	}

	if err := json.Unmarshal(raw, &document); err != nil {
		return "", fmt.Errorf("decoding %s: %w", BaseURLKey, err)
	}

	return document.Endpoint, nil
}

func decodeEndpoint(name string, raw json.RawMessage) (*Endpoint, error) {
	var document endpointDocument

	if err := json.Unmarshal(raw, &document); err != nil {
		return nil, fmt.Errorf("decoding endpoint %q: %w", name, err)
	}

	endpoint := &Endpoint{
		name:        name,
		method:      document.Method,
		path:        document.Endpoint,
		statusCodes: make(map[string]int, len(document.StatusCode)),
		raw:         slices.Clone(raw),
	}

	for outcome, statusCode := range document.StatusCode {
		endpoint.statusCodes[outcome] = statusCode.Code
	}

	if document.ExpectedResponse != nil {
		endpoint.expected = true
		endpoint.expectedCode = document.ExpectedResponse.StatusCode

		// A JSON null body is still an expected response.
		if document.ExpectedResponse.Body != nil {
			if err := json.Unmarshal(document.ExpectedResponse.Body, &endpoint.expectedBody); err != nil {
				return nil, fmt.Errorf("decoding endpoint %q expected response body: %w", name, err)
			}
		}
	}

	return endpoint, nil
}

// Path returns the file the catalog was loaded from.
func (e *Endpoints) Path() string {
	return e.path
}

// BaseURL returns the API host root defined by the base_url entry.
func (e *Endpoints) BaseURL() (string, error) {
	if e.baseURL == "" {
		return "", &UnknownEndpointError{Name: BaseURLKey}
	}

	return e.baseURL, nil
}

// Endpoint looks up a descriptor by name.
func (e *Endpoints) Endpoint(name string) (*Endpoint, error) {
	endpoint, ok := e.endpoints[name]
	if !ok {
		return nil, &UnknownEndpointError{Name: name}
	}

	return endpoint, nil
}

// Names lists all endpoint names, excluding base_url, in lexical order.
func (e *Endpoints) Names() []string {
	names := make([]string, 0, len(e.endpoints))

	for name := range e.endpoints {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
