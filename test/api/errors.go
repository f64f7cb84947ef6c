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
	"errors"
	"fmt"
)

var (
	// ErrConfigNotFound is raised when the endpoints file does not exist.
	ErrConfigNotFound = errors.New("endpoints file not found")

	// ErrConfigParse is raised when the endpoints file exists but is not a
	// valid endpoints catalog.
	ErrConfigParse = errors.New("invalid endpoints file")

	// ErrUnknownEndpoint is raised when a name is absent from the catalog.
	ErrUnknownEndpoint = errors.New("endpoint not found in the endpoints file")

	// ErrUnknownOutcome is raised when a descriptor has no status code for
	// the requested symbolic outcome.
	ErrUnknownOutcome = errors.New("status code outcome not defined")

	// ErrTransport is raised when a request cannot be completed or its
	// response cannot be decoded.
	ErrTransport = errors.New("failed to send a request to API")

	// ErrAssertion is raised by the validation helpers on a mismatch.
	ErrAssertion = errors.New("assertion failed")
)

// UnknownEndpointError carries the name that was looked up.
type UnknownEndpointError struct {
	Name string
}

func (e *UnknownEndpointError) Error() string {
	return fmt.Sprintf("endpoint %q not found in the endpoints file", e.Name)
}

func (e *UnknownEndpointError) Is(target error) bool {
	return target == ErrUnknownEndpoint
}

// AssertionFailure is a status code or response body mismatch.  Both values
// are retained so a failed test can be diagnosed from its output alone.
type AssertionFailure struct {
	// Subject is a human readable name of what was compared e.g. "status code".
	Subject  string
	Expected any
	Actual   any
	// Diff is an optional structural diff, empty for scalar comparisons.
	Diff string
}

func (e *AssertionFailure) Error() string {
	msg := fmt.Sprintf("Actual %[1]s does not match the expected %[1]s! Actual %[1]s: %[2]v, expected %[1]s: %[3]v", e.Subject, e.Actual, e.Expected)

	if e.Diff != "" {
		msg += "\n(-expected +actual):\n" + e.Diff
	}

	return msg
}

func (e *AssertionFailure) Is(target error) bool {
	return target == ErrAssertion
}

func transportError(err error) error {
	return fmt.Errorf("%w! Error: %w", ErrTransport, err)
}
