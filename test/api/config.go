/*
Copyright 2024-2025 the Unikorn Authors.

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

package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

// DefaultEndpointsFile is relative to the test/api/suites directory.
const DefaultEndpointsFile = "../../../config/endpoints.json"

type TestConfig struct {
	// EndpointsFile is the endpoints catalog to load.
	EndpointsFile string
	// BaseURL overrides the catalog base_url when set.
	BaseURL string
	// RequestTimeout bounds each request, zero keeps the transport default.
	RequestTimeout time.Duration
	// ReferenceServer runs the suites against an in-process products service.
	ReferenceServer bool
	SkipIntegration bool
	DebugLogging    bool
	LogRequests     bool
	LogResponses    bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if configuration values are malformed.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	var errs []error

	requestTimeout, err := getDuration("REQUEST_TIMEOUT", 0)
	if err != nil {
		errs = append(errs, err)
	}

	getBool := func(key string, defaultValue bool) bool {
		value, err := getBoolWithDefault(key, defaultValue)
		if err != nil {
			errs = append(errs, err)
		}

		return value
	}

	config := &TestConfig{
		EndpointsFile:   getStringWithDefault("ENDPOINTS_FILE", DefaultEndpointsFile),
		BaseURL:         os.Getenv("API_BASE_URL"),
		RequestTimeout:  requestTimeout,
		ReferenceServer: getBool("REFERENCE_SERVER", true),
		SkipIntegration: getBool("SKIP_INTEGRATION", false),
		DebugLogging:    getBool("DEBUG_LOGGING", false),
		LogRequests:     getBool("LOG_REQUESTS", false),
		LogResponses:    getBool("LOG_RESPONSES", false),
	}

	if err := utilerrors.NewAggregate(errs); err != nil {
		return nil, err
	}

	if err := validateFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

func getStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDuration gets a duration from environment variable or returns default.
// A malformed value is an error.
func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return duration, nil
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
// A malformed value is an error.
func getBoolWithDefault(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}

	return boolValue, nil
}

func loadEnvFile() {
	envPaths := []string{
		"../../../test/.env", // From test/api/suites directory
		"../../test/.env",    // From test/api directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateFields checks configuration values are usable.
func validateFields(config *TestConfig) error {
	var invalid []string

	if config.RequestTimeout < 0 {
		invalid = append(invalid, "REQUEST_TIMEOUT must not be negative")
	}

	if config.BaseURL != "" && !strings.HasPrefix(config.BaseURL, "http://") && !strings.HasPrefix(config.BaseURL, "https://") {
		invalid = append(invalid, "API_BASE_URL must be an http or https URL")
	}

	if len(invalid) > 0 {
		return fmt.Errorf("invalid configuration: %s. Please fix these environment variables or the .env file", strings.Join(invalid, ", "))
	}

	return nil
}
