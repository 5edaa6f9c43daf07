// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request correlation, tracing, request logging, CORS,
// metrics and panic recovery.
package middleware
