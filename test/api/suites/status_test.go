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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/conformance/test/api"
)

var _ = Describe("Service Status", func() {
	var endpoint *api.Endpoint

	BeforeEach(func() {
		var err error

		endpoint, err = session.Endpoints.Endpoint("status")
		Expect(err).NotTo(HaveOccurred())
		Expect(endpoint.Kind()).To(Equal(api.FixedResponse))
	})

	Context("When checking the service health", func() {
		It("should return the expected response", func(ctx SpecContext) {
			expected, ok := endpoint.ExpectedResponse()
			Expect(ok).To(BeTrue())

			body, status, err := session.Client.SendRequest(ctx, endpoint.Method(), endpoint.Path())
			Expect(err).NotTo(HaveOccurred())

			Expect(session.Client.ValidateStatusCode(expected.StatusCode, status)).To(Succeed())
			Expect(session.Client.ValidateResponseBody(expected.Body, body)).To(Succeed())

			GinkgoWriter.Printf("Service status %v\n", body)
		})
	})
})
