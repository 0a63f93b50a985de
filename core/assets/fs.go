package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"
)

// FSStore serves assets from an fs.FS, including embed.FS. Directory
// listings are not supported; keys resolve to files only.
type FSStore struct {
	fsys fs.FS
}

// NewFS creates a store backed by the given filesystem.
func NewFS(fsys fs.FS) *FSStore {
	return &FSStore{fsys: fsys}
}

// Open implements Store. Keys are cleaned before lookup; traversal outside
// the filesystem root is rejected as not found.
func (s *FSStore) Open(ctx context.Context, key string) (*Asset, error) {
	name := path.Clean(strings.TrimPrefix(key, "/"))
	if name == "." || name == ".." || strings.HasPrefix(name, "../") {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}

	content, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
		}
		return nil, fmt.Errorf("open asset %q: %w", key, err)
	}

	return &Asset{
		Content:     content,
		ContentType: detectContentType(name, content),
	}, nil
}

// detectContentType prefers the file extension and falls back to content
// sniffing for unknown extensions.
func detectContentType(name string, content []byte) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return http.DetectContentType(content)
}
