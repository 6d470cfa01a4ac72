package label

import (
	"github.com/gogpu/replay/internal/cache"
	"github.com/gogpu/replay/internal/logging"
)

// DefaultCapacity is the number of label images kept by a Cache created
// without WithCapacity.
const DefaultCapacity = 2048

// Option configures a Cache.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity bounds the number of cached images. Values of 0 or less
// keep DefaultCapacity.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// Cache maps label keys to rendered images. When an insert exceeds the
// capacity, the least recently used image is evicted.
//
// Cache is safe for concurrent use, so a single cache can serve every
// replay of a render session.
type Cache struct {
	images *cache.Cache[string, *Image]
}

// NewCache creates an empty label cache.
func NewCache(opts ...Option) *Cache {
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	c := &Cache{images: cache.New[string, *Image](o.capacity)}
	c.images.OnEvict(func(key string, img *Image) {
		logging.Logger().Debug("label: evicted image",
			"key", key, "width", img.Width(), "height", img.Height())
	})
	return c
}

// Get returns the image stored under key.
func (c *Cache) Get(key string) (*Image, bool) {
	return c.images.Get(key)
}

// Contains reports whether key is cached without touching its recency.
func (c *Cache) Contains(key string) bool {
	return c.images.Contains(key)
}

// GetOrRender returns the image stored under key, or calls render and
// stores its result. hit reports whether the image came from the cache.
// A failed render stores nothing.
func (c *Cache) GetOrRender(key string, render func() (*Image, error)) (img *Image, hit bool, err error) {
	img, hit, err = c.images.GetOrCreateErr(key, render)
	if err == nil && !hit {
		logging.Logger().Debug("label: rendered image",
			"key", key, "width", img.Width(), "height", img.Height())
	}
	return img, hit, err
}

// Len returns the number of cached images.
func (c *Cache) Len() int { return c.images.Len() }

// Capacity returns the maximum number of cached images.
func (c *Cache) Capacity() int { return c.images.Capacity() }

// Clear drops every image. Evictions caused by Clear are not counted.
func (c *Cache) Clear() { c.images.Clear() }

// Stats describes the cache usage.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns hits / (hits + misses), or 0 before the first lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Stats returns a snapshot of the cache usage.
func (c *Cache) Stats() Stats {
	s := c.images.Stats()
	return Stats{
		Len:       s.Len,
		Capacity:  s.Capacity,
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
	}
}
