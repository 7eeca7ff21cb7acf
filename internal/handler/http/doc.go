// Package http implements the HTTP transport layer of the document server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing, access logging,
// metrics, per-client rate limiting, body size limits and response
// compression are handled in this package before requests are delegated to
// the service layer.
//
// Every rejection is written as a JSON [models.APIError] with a stable
// machine-readable code; internal error detail never leaves the server.
package http
