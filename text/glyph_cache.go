package text

import (
	"sort"

	"github.com/slint-ui/femtovg/internal/cache"
)

// GlyphCache maps glyph ids to extracted geometry for one font.
//
// The cache is append-only: an entry is created on the first successful
// extraction and then never updated or evicted. Failed extractions are not
// recorded, so a missing glyph is looked up in the backend every time.
//
// GlyphCache is safe for concurrent use.
type GlyphCache struct {
	store *cache.Store[GlyphID, Glyph]
}

// GlyphCacheStats holds cache statistics.
type GlyphCacheStats struct {
	// Entries is the number of cached glyphs.
	Entries int

	// Hits is the number of lookups served from the cache.
	Hits uint64

	// Misses is the number of lookups that went to the backend.
	Misses uint64

	// Insertions is the number of glyphs ever added.
	Insertions uint64
}

// HitRate returns the hit rate as a percentage.
// Returns 0 if there are no accesses.
func (s GlyphCacheStats) HitRate() float64 {
	return cache.Stats{Hits: s.Hits, Misses: s.Misses}.HitRate()
}

// NewGlyphCache creates an empty glyph cache.
func NewGlyphCache() *GlyphCache {
	return &GlyphCache{store: cache.New[GlyphID, Glyph]()}
}

// Get returns the cached glyph for id without extracting it.
func (c *GlyphCache) Get(id GlyphID) (Glyph, bool) {
	return c.store.Get(id)
}

// GetOrExtract returns the cached glyph for id, calling extract on a miss.
// The result of extract is stored only when it reports ok.
func (c *GlyphCache) GetOrExtract(id GlyphID, extract func() (Glyph, bool)) (Glyph, bool) {
	return c.store.GetOrCreate(id, extract)
}

// Len returns the number of cached glyphs.
func (c *GlyphCache) Len() int {
	return c.store.Len()
}

// IDs returns the cached glyph ids in ascending order.
func (c *GlyphCache) IDs() []GlyphID {
	ids := c.store.Keys()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Stats returns cache statistics.
func (c *GlyphCache) Stats() GlyphCacheStats {
	s := c.store.Stats()
	return GlyphCacheStats{
		Entries:    s.Len,
		Hits:       s.Hits,
		Misses:     s.Misses,
		Insertions: s.Insertions,
	}
}
