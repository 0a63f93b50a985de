// Package httperr defines the request-time error taxonomy recovered by the
// error-mapping filter.
//
// Handlers and filters signal failures by returning errors. Errors created
// by this package carry an HTTP status code; NotFound, Forbidden, and
// BadRequest messages are passed through to the client, while anything else
// maps to a generic 500 with the detail suppressed from the response.
package httperr
