// Package filter implements path-pattern-scoped middleware: matching filter
// patterns against request paths and composing matching filters around a
// terminal route handler in onion order.
//
// A filter pattern follows route pattern syntax, except its last segment may
// be the wildcard "*", which matches zero or more trailing segments. The
// pattern "/*" matches every path, including the empty one.
//
// Composition is onion-style: the first-declared matching filter is the
// outermost wrapper. It runs first on the way in and last on the way out,
// with the route handler as the innermost call.
//
// The package also ships the standard pipeline installed by the route table
// builder: error mapping, content encoding, and opt-in CORS handling, plus
// request-id and logging filters for observability.
package filter
