/*
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

package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unikorn-cloud/conformance/pkg/server"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	handler, err := server.NewHandler()
	require.NoError(t, err)

	s := httptest.NewServer(handler)
	t.Cleanup(s.Close)

	return s
}

func get(t *testing.T, s *httptest.Server, path string) (int, any) {
	t.Helper()

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, s.URL+path, nil)
	require.NoError(t, err)

	resp, err := s.Client().Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	var body any

	if resp.StatusCode < http.StatusBadRequest {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	}

	return resp.StatusCode, body
}

func products(t *testing.T, body any) []map[string]any {
	t.Helper()

	items, ok := body.([]any)
	require.True(t, ok)

	result := make([]map[string]any, len(items))

	for i, item := range items {
		product, ok := item.(map[string]any)
		require.True(t, ok)
		require.ElementsMatch(t, []string{"id", "category", "name", "inStock"}, keys(product))

		result[i] = product
	}

	return result
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))

	for key := range m {
		out = append(out, key)
	}

	return out
}

func TestStatus(t *testing.T) {
	t.Parallel()

	status, body := get(t, newServer(t), "/status")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, map[string]any{"status": "UP"}, body)
}

func TestProducts(t *testing.T) {
	t.Parallel()

	status, body := get(t, newServer(t), "/products")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, products(t, body), 12)
}

func TestProductsFiltered(t *testing.T) {
	t.Parallel()

	s := newServer(t)

	tests := []struct {
		name     string
		query    string
		count    int
		category string
		inStock  *bool
	}{
		{name: "Category", query: "?category=coffee", count: 4, category: "coffee"},
		{name: "CategoryAndResults", query: "?category=coffee&results=2", count: 2, category: "coffee"},
		{name: "Available", query: "?category=coffee&results=2&available=true", count: 2, category: "coffee", inStock: ptr(true)},
		{name: "Unavailable", query: "?available=false", count: 3, inStock: ptr(false)},
		{name: "Results", query: "?results=1", count: 1},
		{name: "MaximumResults", query: "?results=20", count: 12},
		{name: "EmptyCategory", query: "?category=eggs&available=false", count: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			status, body := get(t, s, "/products"+test.query)
			require.Equal(t, http.StatusOK, status)

			items := products(t, body)
			require.Len(t, items, test.count)

			for _, item := range items {
				if test.category != "" {
					require.Equal(t, test.category, item["category"])
				}

				if test.inStock != nil {
					require.Equal(t, *test.inStock, item["inStock"])
				}
			}
		})
	}
}

func TestProductsInvalidParameters(t *testing.T) {
	t.Parallel()

	s := newServer(t)

	for _, query := range []string{"?results=-5", "?results=0", "?results=21", "?results=ten", "?category=tea", "?available=maybe"} {
		status, _ := get(t, s, "/products"+query)
		require.Equal(t, http.StatusBadRequest, status, query)
	}
}

func TestProduct(t *testing.T) {
	t.Parallel()

	status, body := get(t, newServer(t), "/products/4643")
	require.Equal(t, http.StatusOK, status)

	product, ok := body.(map[string]any)
	require.True(t, ok)
	require.InDelta(t, 4643, product["id"], 0)
	require.Equal(t, "coffee", product["category"])
	require.Contains(t, product, "manufacturer")
	require.Contains(t, product, "price")
	require.Contains(t, product, "current-stock")
}

func TestProductErrors(t *testing.T) {
	t.Parallel()

	s := newServer(t)

	status, _ := get(t, s, "/products/1")
	require.Equal(t, http.StatusNotFound, status)

	status, _ = get(t, s, "/products/coffee")
	require.Equal(t, http.StatusBadRequest, status)

	status, _ = get(t, s, "/orders")
	require.Equal(t, http.StatusNotFound, status)
}

func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()

	s := newServer(t)

	req, err := http.NewRequestWithContext(t.Context(), http.MethodDelete, s.URL+"/status", nil)
	require.NoError(t, err)

	resp, err := s.Client().Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func ptr[T any](v T) *T {
	return &v
}
