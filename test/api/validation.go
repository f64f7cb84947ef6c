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
	"encoding/json"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// ValidateStatusCode returns an AssertionFailure unless expected == actual.
func ValidateStatusCode(expected, actual int) error {
	if expected == actual {
		return nil
	}

	return &AssertionFailure{
		Subject:  "status code",
		Expected: expected,
		Actual:   actual,
	}
}

// ValidateResponseBody returns an AssertionFailure unless both values are
// structurally equal: same keys and values recursively, same list order and
// length.  Values are compared in their JSON form, so a typed Go value and
// its decoded equivalent are equal.
func ValidateResponseBody(expected, actual any) error {
	normalizedExpected, expectedErr := normalize(expected)
	normalizedActual, actualErr := normalize(actual)

	if expectedErr != nil || actualErr != nil {
		if reflect.DeepEqual(expected, actual) {
			return nil
		}

		return &AssertionFailure{
			Subject:  "response body",
			Expected: expected,
			Actual:   actual,
		}
	}

	if reflect.DeepEqual(normalizedExpected, normalizedActual) {
		return nil
	}

	return &AssertionFailure{
		Subject:  "response body",
		Expected: expected,
		Actual:   actual,
		Diff:     cmp.Diff(normalizedExpected, normalizedActual),
	}
}

// normalize converts a value into the generic form produced by decoding JSON.
func normalize(value any) (any, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	var out any

	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}

	return out, nil
}
