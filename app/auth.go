package app

import (
	"encoding/binary"
	"encoding/json"
	"math/big"
	"sync"
	"sync/atomic"

	"github.com/coocood/freecache"
	"github.com/dascoin/dascoin-go/app/table"
	"github.com/dascoin/dascoin-go/iservices"
	"github.com/dascoin/dascoin-go/prototype"
	"github.com/sirupsen/logrus"
)

const (
	// maximum cache size (in bytes) for {accountId, authority} pairs.
	// an authority with a couple of keys serializes to roughly 200 bytes,
	// so a 16MB cache holds about 80,000 most recently used authorities.
	sAuthCacheMaxSize = 16 * 1024 * 1024
)

const (
	authKindActive byte = iota
	authKindOwner
)

// AuthFetcher answers the owner and active authority of accounts. Signature
// verification hits it once per required account, so it keeps a memory cache
// in front of the database.
type AuthFetcher struct {
	db                     iservices.IDatabaseService // committed state, not a transaction session
	log                    *logrus.Logger
	cache                  *freecache.Cache // (kind|accountId) -> authority json
	lock                   sync.RWMutex
	totalQueries, totalHit int64 // for hit rate stats
}

// NewAuthFetcher creates an instance of AuthFetcher
func NewAuthFetcher(db iservices.IDatabaseService, logger *logrus.Logger) *AuthFetcher {
	return &AuthFetcher{
		db:    db,
		log:   logger,
		cache: freecache.NewCache(sAuthCacheMaxSize),
	}
}

// GetActive returns the active authority of given account, or nil if the
// account does not exist. The signature matches prototype.AuthorityGetter.
func (f *AuthFetcher) GetActive(id prototype.AccountIdType) *prototype.Authority {
	return f.getAuthority(id, authKindActive)
}

// GetOwner returns the owner authority of given account, or nil if the
// account does not exist.
func (f *AuthFetcher) GetOwner(id prototype.AccountIdType) *prototype.Authority {
	return f.getAuthority(id, authKindOwner)
}

func (f *AuthFetcher) getAuthority(id prototype.AccountIdType, kind byte) *prototype.Authority {
	f.lock.RLock()
	defer f.lock.RUnlock()

	// count the query
	atomic.AddInt64(&f.totalQueries, 1)
	// query the cache first
	data, err := f.cache.Get(authCacheKey(id, kind))
	// if cache missed, query the database
	if err != nil {
		record := table.NewAccountWrap(f.db, id).Get()
		if record == nil {
			// missing accounts are not cached; the id may be assigned later
			return nil
		}
		auth := record.Active
		if kind == authKindOwner {
			auth = record.Owner
		}
		if auth == nil {
			return nil
		}
		// update cache
		if data, err = json.Marshal(auth); err == nil {
			_ = f.cache.Set(authCacheKey(id, kind), data, 0)
		}
		return auth
	}
	// count the cache hit
	atomic.AddInt64(&f.totalHit, 1)
	auth := new(prototype.Authority)
	if err := json.Unmarshal(data, auth); err != nil {
		f.log.Errorf("dropping corrupted auth cache entry of account %d: %v", id, err)
		f.cache.Del(authCacheKey(id, kind))
		return f.getAuthorityFromDb(id, kind)
	}
	return auth
}

func (f *AuthFetcher) getAuthorityFromDb(id prototype.AccountIdType, kind byte) *prototype.Authority {
	record := table.NewAccountWrap(f.db, id).Get()
	if record == nil {
		return nil
	}
	if kind == authKindOwner {
		return record.Owner
	}
	return record.Active
}

// HitRate returns cache hit rate, in range [0, 1].
// Hit rate is the most important factor of AuthFetcher's performance, which is roughly proportional to 1/(1-hit_rate).
// If the rate is constantly below 0.99, we should consider increasing sAuthCacheMaxSize.
func (f *AuthFetcher) HitRate() (rate float64) {
	a, b := atomic.LoadInt64(&f.totalHit), atomic.LoadInt64(&f.totalQueries)
	if a > 0 && b > 0 && a <= b {
		rate, _ = big.NewRat(a, b).Float64()
	}
	return
}

// CacheCount returns number of cached {accountId, authority} pairs.
func (f *AuthFetcher) CacheCount() int64 {
	return f.cache.EntryCount()
}

// TrxApplied *MUST* be called *AFTER* a transaction was successfully
// committed. It drops cache entries of every account whose authorities the
// transaction may have changed. Invalidating before the commit would let a
// concurrent reader repopulate the cache from pre-commit state.
func (f *AuthFetcher) TrxApplied(w *prototype.TransactionWrapper) {
	if w.Receipt == nil || w.Receipt.Status != prototype.StatusSuccess {
		return
	}

	f.lock.Lock()
	defer f.lock.Unlock()

	for _, op := range w.SigTrx.Trx.Operations {
		switch v := op.Op.(type) {
		// newly created accounts never have stale entries, their ids are fresh
		case *prototype.AccountUpdateOperation:
			if v.Owner != nil || v.Active != nil {
				f.invalidate(v.Account)
			}
		case *prototype.ChangePublicKeysOperation:
			f.invalidate(v.Account)
		case *prototype.RollBackPublicKeysOperation:
			f.invalidate(v.Account)
		case *prototype.AccountTransferOperation:
			f.invalidate(v.AccountId)
		}
	}
}

func (f *AuthFetcher) invalidate(id prototype.AccountIdType) {
	f.cache.Del(authCacheKey(id, authKindActive))
	f.cache.Del(authCacheKey(id, authKindOwner))
}

func authCacheKey(id prototype.AccountIdType, kind byte) []byte {
	key := make([]byte, 9)
	key[0] = kind
	binary.BigEndian.PutUint64(key[1:], uint64(id))
	return key
}
