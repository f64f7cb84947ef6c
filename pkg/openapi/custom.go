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

import (
	"errors"
	"slices"
)

var ErrInvalidProductCategory = errors.New("invalid category: must be one of meat-seafood, fresh-produce, candy, bread-bakery, dairy, eggs or coffee")

// ProductCategories are the valid product categories.
//
//nolint:gochecknoglobals
var ProductCategories = []ProductCategory{
	"meat-seafood",
	"fresh-produce",
	"candy",
	"bread-bakery",
	"dairy",
	"eggs",
	"coffee",
}

type ProductCategory string

func (c *ProductCategory) UnmarshalText(text []byte) error {
	category := ProductCategory(text)

	if !slices.Contains(ProductCategories, category) {
		return ErrInvalidProductCategory
	}

	*c = category

	return nil
}
