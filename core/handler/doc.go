// Package handler defines the function types shared by the router, filters,
// and adapters.
//
// Handlers are first-class closure values stored directly in route records;
// no dispatch hierarchy exists beyond the function type. Filters wrap
// handlers onion-style: a filter receives the current request and a next
// callable, may substitute a derived request before calling next, and may
// transform the response on the way out.
package handler
