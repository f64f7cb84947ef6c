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

//nolint:revive
package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/unikorn-cloud/conformance/pkg/openapi"
	"github.com/unikorn-cloud/conformance/pkg/server/handler/products"
	"github.com/unikorn-cloud/core/pkg/server/errors"
	"github.com/unikorn-cloud/core/pkg/server/util"
)

type Handler struct {
	// products gives read only access to the inventory.
	products *products.Client
}

func New() *Handler {
	return &Handler{
		products: products.NewClient(),
	}
}

func (h *Handler) setUncacheable(w http.ResponseWriter) {
	w.Header().Add("Cache-Control", "no-cache")
}

// Register adds all routes to the router.
func (h *Handler) Register(router chi.Router) {
	router.Get("/status", h.GetStatus)
	router.Get("/products", h.GetProducts)
	router.Get("/products/{productId}", h.GetProductsProductID)
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, &openapi.Status{Status: "UP"})
}

func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	params, err := bindGetProductsParams(r)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, h.products.List(*params))
}

func (h *Handler) GetProductsProductID(w http.ResponseWriter, r *http.Request) {
	var productID openapi.ProductIDParameter

	//nolint:staticcheck // matches the generated binding
	if err := runtime.BindStyledParameterWithLocation("simple", false, "productId", runtime.ParamLocationPath, chi.URLParam(r, "productId"), &productID); err != nil {
		errors.HandleError(w, r, errors.OAuth2InvalidRequest("invalid productId parameter").WithError(err))
		return
	}

	result, err := h.products.Get(productID)
	if err != nil {
		errors.HandleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

func bindGetProductsParams(r *http.Request) (*openapi.GetProductsParams, error) {
	params := &openapi.GetProductsParams{}
	query := r.URL.Query()

	var category *string

	if err := runtime.BindQueryParameter("form", true, false, "category", query, &category); err != nil {
		return nil, errors.OAuth2InvalidRequest("invalid category parameter").WithError(err)
	}

	if category != nil {
		params.Category = new(openapi.ProductCategory)

		if err := params.Category.UnmarshalText([]byte(*category)); err != nil {
			return nil, errors.OAuth2InvalidRequest("invalid category parameter").WithError(err)
		}
	}

	if err := runtime.BindQueryParameter("form", true, false, "results", query, &params.Results); err != nil {
		return nil, errors.OAuth2InvalidRequest("invalid results parameter").WithError(err)
	}

	if params.Results != nil && (*params.Results < 1 || *params.Results > products.DefaultResults) {
		return nil, errors.OAuth2InvalidRequest(fmt.Sprintf("results must be between 1 and %d", products.DefaultResults))
	}

	if err := runtime.BindQueryParameter("form", true, false, "available", query, &params.Available); err != nil {
		return nil, errors.OAuth2InvalidRequest("invalid available parameter").WithError(err)
	}

	return params, nil
}
