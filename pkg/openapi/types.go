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

package openapi

// Status is the service health.
type Status struct {
	Status string `json:"status"`
}

// Product is a product listing item.
type Product struct {
	Id       int             `json:"id"`
	Category ProductCategory `json:"category"`
	Name     string          `json:"name"`
	InStock  bool            `json:"inStock"`
}

// Products is a list of products.
type Products []Product

// ProductDetail is a single product.
type ProductDetail struct {
	Id           int             `json:"id"`
	Category     ProductCategory `json:"category"`
	Name         string          `json:"name"`
	Manufacturer string          `json:"manufacturer"`
	Price        float64         `json:"price"`
	CurrentStock int             `json:"current-stock"`
	InStock      bool            `json:"inStock"`
}

// ProductIDParameter is the productId path parameter.
type ProductIDParameter = int

// GetProductsParams defines parameters for GetProducts.
type GetProductsParams struct {
	// Category only return products in this category.
	Category *ProductCategory `form:"category,omitempty" json:"category,omitempty"`

	// Results maximum number of products to return.
	Results *int `form:"results,omitempty" json:"results,omitempty"`

	// Available only return products that are, or are not, in stock.
	Available *bool `form:"available,omitempty" json:"available,omitempty"`
}
