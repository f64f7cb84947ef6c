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

package products

import (
	"slices"

	"github.com/unikorn-cloud/conformance/pkg/openapi"
	"github.com/unikorn-cloud/core/pkg/server/errors"
)

// DefaultResults is the number of products returned without a results limit.
const DefaultResults = 20

// Client provides read only access to the product inventory.
type Client struct {
	products []openapi.ProductDetail
}

func NewClient() *Client {
	return &Client{
		products: inventory(),
	}
}

func convert(in *openapi.ProductDetail) openapi.Product {
	return openapi.Product{
		Id:       in.Id,
		Category: in.Category,
		Name:     in.Name,
		InStock:  in.InStock,
	}
}

// List returns products matching the parameters, in inventory order.
func (c *Client) List(params openapi.GetProductsParams) openapi.Products {
	limit := DefaultResults

	if params.Results != nil {
		limit = max(*params.Results, 0)
	}

	filter := func(product openapi.ProductDetail) bool {
		if params.Category != nil && product.Category != *params.Category {
			return true
		}

		if params.Available != nil && product.InStock != *params.Available {
			return true
		}

		return false
	}

	filtered := slices.DeleteFunc(slices.Clone(c.products), filter)

	result := make(openapi.Products, 0, min(limit, len(filtered)))

	for i := range filtered {
		if len(result) == limit {
			break
		}

		result = append(result, convert(&filtered[i]))
	}

	return result
}

// Get returns a single product.
func (c *Client) Get(productID openapi.ProductIDParameter) (*openapi.ProductDetail, error) {
	index := slices.IndexFunc(c.products, func(product openapi.ProductDetail) bool {
		return product.Id == productID
	})

	if index < 0 {
		return nil, errors.HTTPNotFound()
	}

	product := c.products[index]

	return &product, nil
}
