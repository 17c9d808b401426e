package xmldoc

import (
	"go.dw1.io/fastcache"

	"go.dw1.io/xmldoc/internal/annotations"
)

const (
	cacheMaxEntries = 256
)

// AnnotationCache caches parsed external annotation files, keyed by file
// path, so repeated resolutions against the same assembly skip the disk
// read and re-parse.
//
// The conversion core itself re-reads the annotations file on every call;
// caching is strictly opt-in via [WithAnnotationCache]. A cached entry does
// not observe edits to the annotations file made after it was stored.
type AnnotationCache struct {
	entries *fastcache.Cache[string, *annotations.File]
}

// NewAnnotationCache creates a cache holding up to maxEntries parsed
// annotation files. A non-positive maxEntries uses a default capacity.
func NewAnnotationCache(maxEntries int) *AnnotationCache {
	if maxEntries <= 0 {
		maxEntries = cacheMaxEntries
	}

	return &AnnotationCache{
		entries: fastcache.New[string, *annotations.File](maxEntries),
	}
}

func (c *AnnotationCache) get(path string) (*annotations.File, bool) {
	if c == nil || c.entries == nil {
		return nil, false
	}

	return c.entries.Get(path)
}

func (c *AnnotationCache) put(path string, file *annotations.File) {
	if c == nil || c.entries == nil {
		return
	}

	c.entries.Set(path, file)
}
