package storage

import (
	"bytes"

	"github.com/dascoin/dascoin-go/common"
)

// TrxSession buffers writes on top of a base database so that a group of
// related changes commits atomically or not at all. Reads see the buffered
// writes; the base stays untouched until Commit.
//
// A session is not safe for concurrent use.
type TrxSession struct {
	base Database
	mem  *MemDatabase
	dels map[string]bool
	ops  []writeOp
}

func NewTrxSession(base Database) *TrxSession {
	return &TrxSession{
		base: base,
		mem:  NewMemDatabase(),
		dels: make(map[string]bool),
	}
}

func (s *TrxSession) Has(key []byte) (bool, error) {
	if s.dels[string(key)] {
		return false, nil
	}
	if found, _ := s.mem.Has(key); found {
		return true, nil
	}
	return s.base.Has(key)
}

func (s *TrxSession) Get(key []byte) ([]byte, error) {
	if s.dels[string(key)] {
		return nil, ErrKeyNotFound
	}
	if found, _ := s.mem.Has(key); found {
		return s.mem.Get(key)
	}
	return s.base.Get(key)
}

func (s *TrxSession) Put(key []byte, value []byte) error {
	delete(s.dels, string(key))
	if err := s.mem.Put(key, value); err != nil {
		return err
	}
	s.ops = append(s.ops, writeOp{
		Key:   common.CopyBytes(key),
		Value: common.CopyBytes(value),
		Del:   false,
	})
	return nil
}

func (s *TrxSession) Delete(key []byte) error {
	s.dels[string(key)] = true
	if err := s.mem.Delete(key); err != nil {
		return err
	}
	s.ops = append(s.ops, writeOp{Key: common.CopyBytes(key), Del: true})
	return nil
}

// Iterate walks the merged view of the overlay and the base. Overlay rows
// shadow base rows of the same key; deleted base rows are skipped.
func (s *TrxSession) Iterate(start, limit []byte, reverse bool, callback func(key, value []byte) bool) {
	type kv struct{ k, v []byte }
	var overlay []kv
	s.mem.Iterate(start, limit, reverse, func(k, v []byte) bool {
		overlay = append(overlay, kv{k, v})
		return true
	})

	before := func(a, b []byte) bool {
		if reverse {
			return bytes.Compare(a, b) > 0
		}
		return bytes.Compare(a, b) < 0
	}

	i := 0
	stopped := false
	s.base.Iterate(start, limit, reverse, func(k, v []byte) bool {
		for i < len(overlay) && before(overlay[i].k, k) {
			if !callback(overlay[i].k, overlay[i].v) {
				stopped = true
				return false
			}
			i++
		}
		if i < len(overlay) && bytes.Equal(overlay[i].k, k) {
			if !callback(overlay[i].k, overlay[i].v) {
				stopped = true
				return false
			}
			i++
			return true
		}
		if s.dels[string(k)] {
			return true
		}
		if !callback(k, v) {
			stopped = true
			return false
		}
		return true
	})
	if stopped {
		return
	}
	for ; i < len(overlay); i++ {
		if !callback(overlay[i].k, overlay[i].v) {
			return
		}
	}
}

// Commit replays the buffered writes into one batch against the base.
func (s *TrxSession) Commit() error {
	if len(s.ops) == 0 {
		return nil
	}
	batch := s.base.NewBatch()
	defer s.base.DeleteBatch(batch)
	for _, op := range s.ops {
		if op.Del {
			if err := batch.Delete(op.Key); err != nil {
				return err
			}
		} else {
			if err := batch.Put(op.Key, op.Value); err != nil {
				return err
			}
		}
	}
	if err := batch.Write(); err != nil {
		return err
	}
	s.reset()
	return nil
}

// Discard drops the buffered writes without touching the base.
func (s *TrxSession) Discard() {
	s.reset()
}

func (s *TrxSession) Close() {
	s.reset()
}

func (s *TrxSession) reset() {
	s.mem = NewMemDatabase()
	s.dels = make(map[string]bool)
	s.ops = nil
}
