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
	"strconv"

	"k8s.io/utils/ptr"
)

// ProductQueryBuilder builds product listing query parameters.  Unset
// parameters are omitted from the request.
type ProductQueryBuilder struct {
	category  *string
	results   *int
	available *bool
}

func NewProductQuery() *ProductQueryBuilder {
	return &ProductQueryBuilder{}
}

func (b *ProductQueryBuilder) WithCategory(category string) *ProductQueryBuilder {
	b.category = ptr.To(category)
	return b
}

// WithResults sets the result limit, out of range values are sent as is.
func (b *ProductQueryBuilder) WithResults(results int) *ProductQueryBuilder {
	b.results = ptr.To(results)
	return b
}

func (b *ProductQueryBuilder) WithAvailable(available bool) *ProductQueryBuilder {
	b.available = ptr.To(available)
	return b
}

// Build returns the request options for SendRequest.
func (b *ProductQueryBuilder) Build() []RequestOption {
	var opts []RequestOption

	if b.category != nil {
		opts = append(opts, WithQuery("category", *b.category))
	}

	if b.results != nil {
		opts = append(opts, WithQuery("results", strconv.Itoa(*b.results)))
	}

	if b.available != nil {
		opts = append(opts, WithQuery("available", strconv.FormatBool(*b.available)))
	}

	return opts
}
