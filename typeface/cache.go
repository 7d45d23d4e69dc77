package typeface

import (
	"math"
	"sync"

	"github.com/gogpu/caption/internal/cache"
	"github.com/gogpu/caption/internal/logging"
)

// Capacity limits of a Cache. Sources hold whole font files; faces are small.
const (
	maxSources = 16
	maxFaces   = 256
)

type faceKey struct {
	name string
	size int32 // 1/64 px
}

// Cache memoizes parsed sources by family and faces by (family, size).
// Resolution never fails: a family the resolver cannot serve, or whose bytes
// do not parse, is replaced by the built-in default face.
//
// Cache is safe for concurrent use.
type Cache struct {
	resolver Resolver
	sources  *cache.Cache[string, *Source]
	faces    *cache.Cache[faceKey, *Face]

	fallbackOnce sync.Once
	fallback     *Source
	warned       logging.Once
}

// NewCache creates a cache resolving families through r. A nil resolver
// serves only the built-in faces.
func NewCache(r Resolver) *Cache {
	if r == nil {
		r = Builtin
	} else {
		r = Chain{r, Builtin}
	}
	return &Cache{
		resolver: r,
		sources:  cache.New[string, *Source](maxSources),
		faces:    cache.New[faceKey, *Face](maxFaces),
	}
}

// Face returns the face for family at the given pixel size.
func (c *Cache) Face(family string, size float64) *Face {
	if size <= 0 || math.IsNaN(size) {
		size = 1
	}
	key := faceKey{name: family, size: int32(math.Round(size * 64))}
	return c.faces.GetOrCreate(key, func() *Face {
		return c.Source(family).Face(float64(key.size) / 64)
	})
}

// Source returns the parsed font for family.
func (c *Cache) Source(family string) *Source {
	if family == "" {
		family = DefaultName
	}
	return c.sources.GetOrCreate(family, func() *Source {
		return c.load(family)
	})
}

func (c *Cache) load(family string) *Source {
	data, err := c.resolver.Resolve(family)
	if err == nil {
		src, perr := NewSource(family, data)
		if perr == nil {
			logging.Logger().Debug("typeface: loaded font", "family", family, "bytes", len(data))
			return src
		}
		err = perr
	}
	c.warned.Warn(family, "typeface: font unavailable, using default", "family", family, "err", err)
	return c.defaultSource()
}

func (c *Cache) defaultSource() *Source {
	c.fallbackOnce.Do(func() {
		src, err := NewSource(DefaultName, Default())
		if err != nil {
			panic("typeface: built-in font does not parse: " + err.Error())
		}
		c.fallback = src
	})
	return c.fallback
}

// Stats reports memoization counters.
type Stats struct {
	Sources, Faces       int
	FaceHits, FaceMisses uint64
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	fs, ss := c.faces.Stats(), c.sources.Stats()
	return Stats{
		Sources:    ss.Len,
		Faces:      fs.Len,
		FaceHits:   fs.Hits,
		FaceMisses: fs.Misses,
	}
}
