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

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/conformance/pkg/openapi"
	"github.com/unikorn-cloud/conformance/pkg/server/handler"
	openapimiddleware "github.com/unikorn-cloud/conformance/pkg/server/middleware/openapi"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Options allows behaviour to be defined on the CLI.
type Options struct {
	// ListenAddress tells the server what to listen on.
	ListenAddress string

	// ReadTimeout is the maximum time to read a request.
	ReadTimeout time.Duration

	// ReadHeaderTimeout is the maximum time to read request headers.
	ReadHeaderTimeout time.Duration

	// WriteTimeout is the maximum time to write a response.
	WriteTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "server-listen-address", ":6080", "API listener address.")
	f.DurationVar(&o.ReadTimeout, "server-read-timeout", time.Second, "How long to wait for the client to send the request body.")
	f.DurationVar(&o.ReadHeaderTimeout, "server-read-header-timeout", time.Second, "How long to wait for the client to send headers.")
	f.DurationVar(&o.WriteTimeout, "server-write-timeout", 10*time.Second, "How long to wait for the API to respond to the client.")
	f.DurationVar(&o.ShutdownTimeout, "server-shutdown-timeout", 10*time.Second, "How long to wait for in flight requests on shutdown.")
}

// NewHandler returns the products service HTTP handler.
func NewHandler() (http.Handler, error) {
	doc, err := openapi.GetSwagger()
	if err != nil {
		return nil, err
	}

	validator, err := openapimiddleware.NewValidator(doc)
	if err != nil {
		return nil, fmt.Errorf("creating request validator: %w", err)
	}

	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	router.Use(validator)

	handler.New().Register(router)

	return router, nil
}

// Run serves the products service until the context is cancelled.
func Run(ctx context.Context, options *Options) error {
	logger := log.FromContext(ctx)

	h, err := NewHandler()
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              options.ListenAddress,
		ReadTimeout:       options.ReadTimeout,
		ReadHeaderTimeout: options.ReadHeaderTimeout,
		WriteTimeout:      options.WriteTimeout,
		Handler:           h,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), options.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error(err, "server shutdown failed")
		}
	}()

	logger.Info("listening", "address", options.ListenAddress)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
