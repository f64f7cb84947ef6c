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
	"net/http/httptest"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/conformance/pkg/server"
	"github.com/unikorn-cloud/conformance/test/api"
)

//nolint:gochecknoglobals
var session *api.Session

var _ = BeforeSuite(func() {
	config, err := api.LoadTestConfig()
	Expect(err).NotTo(HaveOccurred())

	if config.SkipIntegration {
		Skip("integration tests disabled by SKIP_INTEGRATION")
	}

	if config.ReferenceServer && config.BaseURL == "" {
		handler, err := server.NewHandler()
		Expect(err).NotTo(HaveOccurred())

		reference := httptest.NewServer(handler)
		DeferCleanup(reference.Close)

		config.BaseURL = reference.URL

		GinkgoLogr.Info("using reference products service", "url", reference.URL)
	}

	session, err = api.NewSession(config, api.WithLogger(GinkgoLogr))
	Expect(err).NotTo(HaveOccurred())
})

func TestSuites(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "API Test Suites")
}
