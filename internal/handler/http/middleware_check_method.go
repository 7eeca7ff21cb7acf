// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// Chi answers 405 whenever a path matches a route but the method does not.
// This handler answers with a not_found [models.APIError] instead, so an
// unsupported method does not reveal that a document route exists. Requests
// whose method does match (chi.Mux.Match, which expands URL parameters) are
// forwarded to the router's normal pipeline.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			writeError(w, r, ErrRouteNotFound, "CheckHTTPMethod")
			return
		}

		router.ServeHTTP(w, r)
	}
}
