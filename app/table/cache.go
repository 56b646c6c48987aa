package table

import (
	"github.com/dascoin/dascoin-go/common/constants"
	"github.com/dascoin/dascoin-go/iservices"
	"github.com/dascoin/dascoin-go/prototype"
	lru "github.com/hashicorp/golang-lru"
)

// NameCache caches name to id lookups. The mapping is append-only (names
// are never reassigned), so only positive results are cached and nothing
// ever needs invalidating.
type NameCache struct {
	cache *lru.Cache
}

func NewNameCache() *NameCache {
	cache, err := lru.New(constants.AccountCacheSize)
	if err != nil {
		panic(err)
	}
	return &NameCache{cache: cache}
}

// Lookup resolves name through the cache, falling back to the name index.
func (c *NameCache) Lookup(db iservices.IDatabaseService, name string) (prototype.AccountIdType, bool) {
	if v, ok := c.cache.Get(name); ok {
		return v.(prototype.AccountIdType), true
	}
	id, ok := AccountIdByName(db, name)
	if ok {
		c.cache.Add(name, id)
	}
	return id, ok
}

// Seed records a fresh registration without a database round trip.
func (c *NameCache) Seed(name string, id prototype.AccountIdType) {
	c.cache.Add(name, id)
}

func (c *NameCache) Len() int {
	return c.cache.Len()
}
