// Package assets defines the static asset store contract used by
// static-file routes, plus a filesystem-backed implementation for local
// directories and embedded filesystems.
//
// A static-file route captures the remainder of the request path below its
// mount point and passes it to a Store as a relative lookup key. Stores are
// collaborators: the routing core only cares about Open and ErrNotFound.
package assets
