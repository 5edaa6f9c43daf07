// Package errs defines the error types returned to API clients.
//
// Every failure that reaches the HTTP layer is expressed as an *HTTPError
// so the global error handler can render one consistent JSON shape.
package errs
