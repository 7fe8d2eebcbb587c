// Package http implements the HTTP transport layer of the account service.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as the auth gate, request tracing, access
// logging and request metrics are handled in this package before requests
// are delegated to the service layer.
package http
