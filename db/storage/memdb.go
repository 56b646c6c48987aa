package storage

//
// This file implements Database interface based on an in-memory red-black
// tree. Keys keep the same byte-wise ordering as the levelDB implementation,
// so range scans behave identically. Used by tests and the sandbox.
//

import (
	"bytes"
	"errors"
	"sync"

	"github.com/dascoin/dascoin-go/common"
	"github.com/petar/GoLLRB/llrb"
)

// ErrKeyNotFound is returned by Get for missing keys.
var ErrKeyNotFound = errors.New("not found")

type memItem struct {
	key, value []byte
}

var sMinItem, sMaxItem = llrb.Inf(-1), llrb.Inf(1)

func (item *memItem) Less(than llrb.Item) bool {
	if than == sMinItem {
		return false
	} else if than == sMaxItem {
		return true
	} else {
		return bytes.Compare(item.key, than.(*memItem).key) < 0
	}
}

type MemDatabase struct {
	rb   *llrb.LLRB
	lock sync.RWMutex
}

func NewMemDatabase() *MemDatabase {
	return &MemDatabase{rb: llrb.New()}
}

func (db *MemDatabase) Close() {

}

func (db *MemDatabase) Has(key []byte) (bool, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	return db.rb.Has(&memItem{key: key}), nil
}

func (db *MemDatabase) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if item := db.rb.Get(&memItem{key: key}); item != nil {
		return item.(*memItem).value, nil
	}
	return nil, ErrKeyNotFound
}

func (db *MemDatabase) Put(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	return db.put(key, value)
}

func (db *MemDatabase) put(key []byte, value []byte) error {
	db.rb.ReplaceOrInsert(&memItem{key: common.CopyBytes(key), value: common.CopyBytes(value)})
	return nil
}

func (db *MemDatabase) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	return db.delete(key)
}

func (db *MemDatabase) delete(key []byte) error {
	db.rb.Delete(&memItem{key: key})
	return nil
}

func (db *MemDatabase) Iterate(start, limit []byte, reverse bool, callback func(key, value []byte) bool) {
	// a read lock blocks writes for the whole scan
	db.lock.RLock()
	defer db.lock.RUnlock()

	if callback == nil {
		return
	}
	startItem, limitItem := sMinItem, sMaxItem
	if start != nil {
		startItem = &memItem{key: start}
	}
	if limit != nil {
		limitItem = &memItem{key: limit}
	}
	if !reverse {
		db.rb.AscendRange(startItem, limitItem, func(item llrb.Item) bool {
			kv := item.(*memItem)
			return callback(kv.key, kv.value)
		})
		return
	}

	// LLRB has no descending range scan. Find the smallest item of
	// [start, limit), then walk (-infinity, limit] downwards and stop
	// once the smallest item is seen, skipping the limit item itself.
	var skip, smallest *memItem
	db.rb.AscendGreaterOrEqual(startItem, func(item llrb.Item) bool {
		smallest = item.(*memItem)
		return false
	})
	if smallest == nil {
		return
	}
	if limit != nil {
		if item := db.rb.Get(limitItem); item != nil {
			skip = item.(*memItem)
		}
	}
	db.rb.DescendLessOrEqual(limitItem, func(item llrb.Item) bool {
		kv := item.(*memItem)
		if kv == skip {
			return true
		}
		return callback(kv.key, kv.value) && kv != smallest
	})
}

func (db *MemDatabase) NewBatch() Batch {
	return &memDatabaseBatch{db: db}
}

func (db *MemDatabase) DeleteBatch(b Batch) {

}

type memDatabaseBatch struct {
	db   *MemDatabase
	op   []writeOp
	lock sync.RWMutex
}

func (b *memDatabaseBatch) Write() error {
	b.lock.RLock()
	defer b.lock.RUnlock()

	b.db.lock.Lock()
	defer b.db.lock.Unlock()

	for _, kv := range b.op {
		if kv.Del {
			_ = b.db.delete(kv.Key)
		} else {
			_ = b.db.put(kv.Key, kv.Value)
		}
	}
	return nil
}

func (b *memDatabaseBatch) Reset() {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.op = b.op[:0]
}

func (b *memDatabaseBatch) Put(key []byte, value []byte) error {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.op = append(b.op, writeOp{common.CopyBytes(key), common.CopyBytes(value), false})
	return nil
}

func (b *memDatabaseBatch) Delete(key []byte) error {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.op = append(b.op, writeOp{common.CopyBytes(key), nil, true})
	return nil
}
