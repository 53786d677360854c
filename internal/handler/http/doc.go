// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, page and form handlers, and middleware used by
// the server-rendered account pages. Cross-cutting concerns such as session
// authentication, request tracing, access logging, and per-request timeouts
// are handled in this package before requests are delegated to the service
// layer.
package http
