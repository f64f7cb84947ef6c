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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"fmt"

	. "github.com/onsi/gomega"

	"k8s.io/apimachinery/pkg/util/sets"
)

// Session is the state shared by every test in a run.  It is built once and
// only read afterwards.
type Session struct {
	Config    *TestConfig
	Endpoints *Endpoints
	Client    *APIClient
}

// NewSession loads the endpoints catalog and creates a client for its base
// URL, or for config.BaseURL when that is set.
func NewSession(config *TestConfig, opts ...ClientOption) (*Session, error) {
	endpoints, err := LoadEndpoints(config.EndpointsFile)
	if err != nil {
		return nil, err
	}

	baseURL := config.BaseURL

	if baseURL == "" {
		if baseURL, err = endpoints.BaseURL(); err != nil {
			return nil, fmt.Errorf("base URL not found in endpoints configuration: %w", err)
		}
	}

	session := &Session{
		Config:    config,
		Endpoints: endpoints,
		Client:    NewAPIClientWithConfig(config, baseURL, opts...),
	}

	return session, nil
}

// ProductListFields are present on every item of a product listing.
func ProductListFields() sets.Set[string] {
	return sets.New("id", "category", "name", "inStock")
}

// ExpectProducts asserts the body is a list of objects and returns them.
func ExpectProducts(body any) []map[string]any {
	items, ok := body.([]any)
	Expect(ok).To(BeTrue(), "Response body should be a list of products, got %T", body)

	products := make([]map[string]any, len(items))

	for i, item := range items {
		product, ok := item.(map[string]any)
		Expect(ok).To(BeTrue(), "Product %d should be an object, got %T", i, item)

		products[i] = product
	}

	return products
}

// VerifyProductFields verifies every product has all the required fields.
func VerifyProductFields(products []map[string]any, required sets.Set[string]) {
	for _, product := range products {
		missing := required.Difference(sets.KeySet(product))
		Expect(sets.List(missing)).To(BeEmpty(), "Product %v should have fields %v", product["id"], sets.List(missing))
	}
}

// VerifyProductCategory verifies every product belongs to the category.
func VerifyProductCategory(products []map[string]any, category string) {
	for _, product := range products {
		Expect(product).To(HaveKeyWithValue("category", category), "All products should belong to the '%s' category", category)
	}
}

// VerifyProductsInStock verifies every product is in stock.
func VerifyProductsInStock(products []map[string]any) {
	for _, product := range products {
		Expect(product).To(HaveKeyWithValue("inStock", true), "All products should be in stock")
	}
}
