// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-accounts/internal/app"
)

// CheckHTTPMethod is meant for [chi.Mux.MethodNotAllowed]. Instead of chi's
// 405 it answers 404 with a JSON error body, so a caller can't tell a known
// path from an unknown one by probing methods.
//
// Requests the router can in fact serve with their method (chi reports a
// method miss on a static node even when a parameterised sibling matches)
// are handed back to the router.
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		routeNotFound(w, r)
	}
}

// routeNotFound is the router's NotFound handler.
func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	writeErrorMessage(w, app.MsgRouteNotFound, http.StatusNotFound)
}
