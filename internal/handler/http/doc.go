// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing, access logging,
// response compression, rate limiting, and request metrics are handled in
// this package before requests reach the library packages that do the
// actual work.
package http
