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

//nolint:revive,testpackage // dot imports and package naming standard for Ginkgo
package suites

import (
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/conformance/test/api"
)

func statusCode(endpoint *api.Endpoint, outcome string) int {
	code, err := endpoint.StatusCode(outcome)
	Expect(err).NotTo(HaveOccurred())

	return code
}

var _ = Describe("Product Listing", func() {
	var endpoint *api.Endpoint

	BeforeEach(func() {
		var err error

		endpoint, err = session.Endpoints.Endpoint("get_all_products")
		Expect(err).NotTo(HaveOccurred())
		Expect(endpoint.Kind()).To(Equal(api.ListableResource))
	})

	Context("When listing products", func() {
		It("should return all products with the listing fields", func(ctx SpecContext) {
			body, status, err := session.Client.SendRequest(ctx, endpoint.Method(), endpoint.Path())
			Expect(err).NotTo(HaveOccurred())
			Expect(session.Client.ValidateStatusCode(statusCode(endpoint, "ok"), status)).To(Succeed())

			products := api.ExpectProducts(body)
			Expect(products).NotTo(BeEmpty())

			api.VerifyProductFields(products, api.ProductListFields())

			GinkgoWriter.Printf("Listed %d products\n", len(products))
		})

		It("should filter products by category", func(ctx SpecContext) {
			body, status, err := session.Client.SendRequest(ctx, endpoint.Method(), endpoint.Path(),
				api.NewProductQuery().WithCategory("coffee").Build()...)
			Expect(err).NotTo(HaveOccurred())
			Expect(session.Client.ValidateStatusCode(statusCode(endpoint, "ok"), status)).To(Succeed())

			products := api.ExpectProducts(body)
			api.VerifyProductFields(products, api.ProductListFields())
			api.VerifyProductCategory(products, "coffee")
		})

		It("should apply multiple query parameters", func(ctx SpecContext) {
			query := api.NewProductQuery().WithCategory("coffee").WithResults(2).WithAvailable(true)

			body, status, err := session.Client.SendRequest(ctx, endpoint.Method(), endpoint.Path(), query.Build()...)
			Expect(err).NotTo(HaveOccurred())
			Expect(session.Client.ValidateStatusCode(statusCode(endpoint, "ok"), status)).To(Succeed())

			products := api.ExpectProducts(body)
			Expect(len(products)).To(BeNumerically("<=", 2), "Number of products should not exceed the results limit")

			api.VerifyProductCategory(products, "coffee")
			api.VerifyProductsInStock(products)
		})

		It("should reject a negative results limit", func(ctx SpecContext) {
			_, status, err := session.Client.SendRequest(ctx, endpoint.Method(), endpoint.Path(),
				api.NewProductQuery().WithResults(-5).Build()...)
			Expect(err).NotTo(HaveOccurred())
			Expect(session.Client.ValidateStatusCode(statusCode(endpoint, "bad_request"), status)).To(Succeed())
		})
	})

	DescribeTable("When filtering by category and results limit",
		func(ctx SpecContext, category string, results int, outcome string) {
			query := api.NewProductQuery().WithCategory(category).WithResults(results)

			body, status, err := session.Client.SendRequest(ctx, endpoint.Method(), endpoint.Path(), query.Build()...)
			Expect(err).NotTo(HaveOccurred())
			Expect(session.Client.ValidateStatusCode(statusCode(endpoint, outcome), status)).To(Succeed())

			if outcome != "ok" {
				return
			}

			products := api.ExpectProducts(body)
			Expect(len(products)).To(BeNumerically("<=", results))

			api.VerifyProductFields(products, api.ProductListFields())
			api.VerifyProductCategory(products, category)
		},
		Entry("coffee with a single result", "coffee", 1, "ok"),
		Entry("dairy with the maximum results", "dairy", 20, "ok"),
		Entry("fresh produce with five results", "fresh-produce", 5, "ok"),
		Entry("meat and seafood with no results", "meat-seafood", 0, "bad_request"),
		Entry("candy over the maximum results", "candy", 21, "bad_request"),
	)
})

var _ = Describe("Product Detail", func() {
	var endpoint *api.Endpoint

	BeforeEach(func() {
		var err error

		endpoint, err = session.Endpoints.Endpoint("get_product")
		Expect(err).NotTo(HaveOccurred())
	})

	Context("When getting a listed product", func() {
		It("should return the product", func(ctx SpecContext) {
			listing, err := session.Endpoints.Endpoint("get_all_products")
			Expect(err).NotTo(HaveOccurred())

			body, _, err := session.Client.SendRequest(ctx, listing.Method(), listing.Path(),
				api.NewProductQuery().WithResults(1).Build()...)
			Expect(err).NotTo(HaveOccurred())

			products := api.ExpectProducts(body)
			Expect(products).To(HaveLen(1))

			id, ok := products[0]["id"].(float64)
			Expect(ok).To(BeTrue(), "Product id should be a number")

			path, err := endpoint.ResolvePath(map[string]string{"productId": strconv.Itoa(int(id))})
			Expect(err).NotTo(HaveOccurred())

			body, status, err := session.Client.SendRequest(ctx, endpoint.Method(), path)
			Expect(err).NotTo(HaveOccurred())
			Expect(session.Client.ValidateStatusCode(statusCode(endpoint, "ok"), status)).To(Succeed())
			Expect(body).To(HaveKeyWithValue("id", id))
			Expect(body).To(HaveKeyWithValue("category", products[0]["category"]))
		})
	})

	Context("When getting a product that does not exist", func() {
		It("should return not found", func(ctx SpecContext) {
			path, err := endpoint.ResolvePath(map[string]string{"productId": "1"})
			Expect(err).NotTo(HaveOccurred())

			_, status, err := session.Client.SendRequest(ctx, endpoint.Method(), path)
			Expect(err).NotTo(HaveOccurred())
			Expect(session.Client.ValidateStatusCode(statusCode(endpoint, "not_found"), status)).To(Succeed())
		})
	})
})
