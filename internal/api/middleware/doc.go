// Package middleware holds the HTTP middleware of the API: request tracing,
// Prometheus metrics and the bearer-token guard for protected routes.
package middleware
