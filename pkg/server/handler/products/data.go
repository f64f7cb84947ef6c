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
	"github.com/unikorn-cloud/conformance/pkg/openapi"
)

// inventory is the fixed product catalog served by the reference service.
func inventory() []openapi.ProductDetail {
	return []openapi.ProductDetail{
		{Id: 4643, Category: "coffee", Name: "Starbucks Coffee Variety Pack, 100% Arabica", Manufacturer: "Starbucks", Price: 40.91, CurrentStock: 14, InStock: true},
		{Id: 4646, Category: "coffee", Name: "Ethical Bean Medium Dark Roast, Espresso", Manufacturer: "Ethical Bean Coffee", Price: 15.99, CurrentStock: 8, InStock: true},
		{Id: 4641, Category: "coffee", Name: "Starbucks Medium Roast Ground Coffee, Pike Place", Manufacturer: "Starbucks", Price: 9.99, CurrentStock: 0, InStock: false},
		{Id: 4875, Category: "coffee", Name: "Lavazza Super Crema Whole Bean Coffee", Manufacturer: "Lavazza", Price: 22.49, CurrentStock: 5, InStock: true},
		{Id: 5477, Category: "meat-seafood", Name: "Beef Tenderloin Filet Mignon", Manufacturer: "Omaha Steaks", Price: 59.99, CurrentStock: 0, InStock: false},
		{Id: 5774, Category: "meat-seafood", Name: "Atlantic Salmon Fillet", Manufacturer: "Blue Harbor", Price: 12.49, CurrentStock: 21, InStock: true},
		{Id: 8733, Category: "fresh-produce", Name: "Organic Bananas, Bunch", Manufacturer: "Dole", Price: 2.29, CurrentStock: 140, InStock: true},
		{Id: 8554, Category: "fresh-produce", Name: "Hass Avocados, 4 Count", Manufacturer: "Mission", Price: 5.99, CurrentStock: 33, InStock: true},
		{Id: 2177, Category: "candy", Name: "Dark Chocolate Sea Salt Bar", Manufacturer: "Ghirardelli", Price: 3.49, CurrentStock: 64, InStock: true},
		{Id: 1225, Category: "bread-bakery", Name: "Sourdough Loaf", Manufacturer: "Boudin", Price: 6.5, CurrentStock: 0, InStock: false},
		{Id: 7395, Category: "dairy", Name: "Whole Milk, 1 Gallon", Manufacturer: "Horizon Organic", Price: 6.79, CurrentStock: 12, InStock: true},
		{Id: 9482, Category: "eggs", Name: "Large Brown Eggs, 12 Count", Manufacturer: "Vital Farms", Price: 7.29, CurrentStock: 30, InStock: true},
	}
}
