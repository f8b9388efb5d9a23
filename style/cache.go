package style

import "hash/maphash"

// Cache memoizes sheet resolution per frame, keyed by the hash of the
// live path combined with the hash of the attribute key. Negative
// results are cached too, so repeated misses skip the rule scan. The
// driver clears it at pass boundaries; entries never outlive a frame.
type Cache struct {
	seed    maphash.Seed
	entries map[uint64]cacheEntry
}

type cacheEntry struct {
	attr  Attribute
	spec  Specificity
	found bool
}

// NewCache returns an empty cache with a fresh hash seed.
func NewCache() *Cache {
	return &Cache{
		seed:    maphash.MakeSeed(),
		entries: make(map[uint64]cacheEntry),
	}
}

// HashPath hashes a live selector path.
func (c *Cache) HashPath(path Path) uint64 {
	var h maphash.Hash
	h.SetSeed(c.seed)
	for i := range path {
		l := &path[i]
		h.WriteString(l.Element)
		h.WriteByte(0)
		for _, cl := range l.Classes {
			h.WriteByte('.')
			h.WriteString(cl)
		}
		for _, st := range l.States {
			h.WriteByte(':')
			h.WriteString(st)
		}
		h.WriteByte('\n')
	}
	return h.Sum64()
}

func (c *Cache) hashKey(key string) uint64 {
	return maphash.String(c.seed, key)
}

// Get looks up a memoized resolution. The second result distinguishes
// "not cached" from a cached negative: cached=true, found=false means
// the sheet was already scanned and had no match.
func (c *Cache) Get(pathHash uint64, key string) (Attribute, Specificity, bool, bool) {
	e, ok := c.entries[pathHash^c.hashKey(key)]
	if !ok {
		return Attribute{}, Specificity{}, false, false
	}
	return e.attr, e.spec, e.found, true
}

// Put memoizes a resolution result, negative ones included.
func (c *Cache) Put(pathHash uint64, key string, at Attribute, sp Specificity, found bool) {
	c.entries[pathHash^c.hashKey(key)] = cacheEntry{attr: at, spec: sp, found: found}
}

// Clear drops all entries, keeping the seed so path hashes computed
// earlier in the same process remain comparable.
func (c *Cache) Clear() {
	clear(c.entries)
}

// Len returns the number of memoized entries.
func (c *Cache) Len() int {
	return len(c.entries)
}
