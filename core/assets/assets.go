package assets

import (
	"context"
	"errors"
)

// ErrNotFound indicates the store has no asset for the requested key.
// Static-file routes map it to a 404.
var ErrNotFound = errors.New("asset not found")

// Asset is a single static asset.
type Asset struct {
	// Content is the raw asset bytes.
	Content []byte

	// ContentType is the asset's media type. May be empty when the store
	// cannot determine one; static routes then fall back to sniffing.
	ContentType string
}

// Store resolves relative lookup keys to assets. Implementations must be
// safe for concurrent use.
type Store interface {
	Open(ctx context.Context, key string) (*Asset, error)
}
