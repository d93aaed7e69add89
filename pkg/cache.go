package pkg

import (
	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache memoizes Encode results keyed by a hash of the input text, for
// callers that re-encode the same text repeatedly. The engine itself stays
// pure; the cache only stores finished Results.
type Cache struct {
	results *lru.Cache[uint64, Result]
}

// NewCache returns a Cache holding at most size results.
func NewCache(size int) (*Cache, error) {
	c, err := lru.New[uint64, Result](size)
	if err != nil {
		return nil, err
	}
	return &Cache{results: c}, nil
}

// Encode returns the cached Result for text, encoding and storing it on a
// miss.
func (c *Cache) Encode(text string) Result {
	key := xxhash.Sum64String(text)
	if r, ok := c.results.Get(key); ok {
		return r
	}
	r := Encode(text)
	c.results.Add(key, r)
	return r
}

// Len reports how many results are currently cached.
func (c *Cache) Len() int {
	return c.results.Len()
}
