package render

import (
	"encoding/base64"
	"errors"
	"mime"
	"os"
	"path/filepath"
	"sync"
)

// SourceCache caches resolved image sources (typically data URIs) by key.
//
// This is an opt-in helper for image annotations that reference local
// files: encoding a file once and reusing the data URI avoids re-reading
// assets on every render pass.
type SourceCache struct {
	mu    sync.Mutex
	items map[string]string
}

// NewSourceCache creates an empty source cache.
func NewSourceCache() *SourceCache {
	return &SourceCache{items: make(map[string]string)}
}

// Get returns a cached source or loads and caches it using the loader.
//
// If the cache is nil, the loader is invoked directly.
//
// Note: to avoid holding the lock during I/O, concurrent requests for the
// same uncached key may invoke the loader multiple times. Only one result
// is stored; duplicates are discarded.
func (c *SourceCache) Get(key string, loader func() (string, error)) (string, error) {
	if loader == nil {
		return "", errors.New("render: loader is nil")
	}
	if c == nil {
		return loader()
	}

	c.mu.Lock()
	if src, ok := c.items[key]; ok {
		c.mu.Unlock()
		return src, nil
	}
	c.mu.Unlock()

	src, err := loader()
	if err != nil || src == "" {
		return src, err
	}

	c.mu.Lock()
	if existing, ok := c.items[key]; ok {
		c.mu.Unlock()
		return existing, nil
	}
	c.items[key] = src
	c.mu.Unlock()

	return src, nil
}

// EncodeFileDataURI reads an image file and encodes it as a base64 data
// URI suitable for inlining into an SVG href.
func EncodeFileDataURI(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
