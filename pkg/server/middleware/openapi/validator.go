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
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"

	"github.com/unikorn-cloud/core/pkg/server/errors"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Validator checks requests against the OpenAPI document before they reach
// a handler.  Requests for unknown routes are passed on untouched so the
// router can reply with its own 404 or 405.
type Validator struct {
	next   http.Handler
	router routers.Router
}

// NewValidator returns middleware that validates requests against doc.
func NewValidator(doc *openapi3.T) (func(http.Handler) http.Handler, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	middleware := func(next http.Handler) http.Handler {
		return &Validator{
			next:   next,
			router: router,
		}
	}

	return middleware, nil
}

func (v *Validator) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	route, pathParams, err := v.router.FindRoute(r)
	if err != nil {
		v.next.ServeHTTP(w, r)
		return
	}

	input := &openapi3filter.RequestValidationInput{
		Request:    r,
		PathParams: pathParams,
		Route:      route,
		Options: &openapi3filter.Options{
			MultiError: true,
		},
	}

	if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
		log.FromContext(r.Context()).V(1).Info("request validation failed", "method", r.Method, "path", r.URL.Path, "error", err.Error())
		errors.HandleError(w, r, errors.OAuth2InvalidRequest("request invalid").WithError(err))

		return
	}

	v.next.ServeHTTP(w, r)
}
