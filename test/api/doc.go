/*
Copyright 2024-2025 the Unikorn Authors.

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

// Package api provides API conformance test utilities.
//
// # Endpoints Catalog
//
// Endpoint contracts (method, path, expected status codes and fixed response
// bodies) live in a JSON endpoints file, not in test code.  New endpoints and
// scenarios are added by editing the file.  LoadEndpoints validates the whole
// file once against an embedded JSON schema and decodes every entry into a
// typed Endpoint, so a malformed catalog fails the session up front with a
// single ErrConfigParse rather than as scattered failures in individual tests.
//
// # Client
//
// APIClient sends one synchronous request per call and returns the decoded
// JSON body and status code.  It performs no retries, authentication or
// caching.  ValidateStatusCode and ValidateResponseBody are independent so
// each test composes exactly the checks relevant to its endpoint:
//   - a listing endpoint checks the status code and per item fields
//   - a fixed response endpoint checks the status code and exact body
//
// Every request carries W3C trace context and a request ID, these are logged
// on failure so the request can be found in the service logs.
//
// # Session
//
// NewSession builds the catalog and client once per test run.  Both are read
// only afterwards and safe to share between parallel specs.
package api
