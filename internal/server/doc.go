// Package server runs the HTTP transport of the document server.
//
// It owns the listener lifecycle: startup, serving until the caller's
// context ends, and a bounded graceful shutdown that lets in-flight requests
// finish.
package server
