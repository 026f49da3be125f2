// Package cache provides the generic append-only store behind the glyph cache.
//
// # Store[K, V]
//
// Entries are created lazily on first lookup and live as long as the store.
// There is no eviction, no update and no negative caching: a creation that
// fails leaves no entry behind.
//
//	s := cache.New[uint16, Glyph]()
//	g, ok := s.GetOrCreate(42, func() (Glyph, bool) {
//	    return extract(42)
//	})
//
// # Thread Safety
//
// Store is safe for concurrent use and must not be copied after creation.
package cache
