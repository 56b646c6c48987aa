package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrxSessionCommit(t *testing.T) {
	a := assert.New(t)

	base := NewMemDatabase()
	a.NoError(base.Put([]byte("key_a"), []byte("one")))
	a.NoError(base.Put([]byte("key_b"), []byte("two")))

	s := NewTrxSession(base)
	a.NoError(s.Put([]byte("key_b"), []byte("two-new")))
	a.NoError(s.Put([]byte("key_c"), []byte("three")))
	a.NoError(s.Delete([]byte("key_a")))

	// session sees the buffered state
	found, _ := s.Has([]byte("key_a"))
	a.False(found)
	v, err := s.Get([]byte("key_b"))
	a.NoError(err)
	a.Equal([]byte("two-new"), v)
	v, err = s.Get([]byte("key_c"))
	a.NoError(err)
	a.Equal([]byte("three"), v)

	// base does not, until commit
	v, err = base.Get([]byte("key_b"))
	a.NoError(err)
	a.Equal([]byte("two"), v)
	found, _ = base.Has([]byte("key_a"))
	a.True(found)

	a.NoError(s.Commit())

	found, _ = base.Has([]byte("key_a"))
	a.False(found)
	v, err = base.Get([]byte("key_b"))
	a.NoError(err)
	a.Equal([]byte("two-new"), v)
	v, err = base.Get([]byte("key_c"))
	a.NoError(err)
	a.Equal([]byte("three"), v)
}

func TestTrxSessionDiscard(t *testing.T) {
	a := assert.New(t)

	base := NewMemDatabase()
	a.NoError(base.Put([]byte("key_a"), []byte("one")))

	s := NewTrxSession(base)
	a.NoError(s.Put([]byte("key_a"), []byte("changed")))
	a.NoError(s.Put([]byte("key_b"), []byte("two")))
	s.Discard()

	v, err := base.Get([]byte("key_a"))
	a.NoError(err)
	a.Equal([]byte("one"), v)
	found, _ := base.Has([]byte("key_b"))
	a.False(found)

	// a discarded session reads through to the base again
	v, err = s.Get([]byte("key_a"))
	a.NoError(err)
	a.Equal([]byte("one"), v)
}

func TestTrxSessionIterateMergesOverlay(t *testing.T) {
	a := assert.New(t)

	base := NewMemDatabase()
	a.NoError(base.Put([]byte("k1"), []byte("base1")))
	a.NoError(base.Put([]byte("k3"), []byte("base3")))
	a.NoError(base.Put([]byte("k5"), []byte("base5")))

	s := NewTrxSession(base)
	a.NoError(s.Put([]byte("k2"), []byte("sess2")))
	a.NoError(s.Put([]byte("k3"), []byte("sess3")))
	a.NoError(s.Delete([]byte("k5")))
	a.NoError(s.Put([]byte("k6"), []byte("sess6")))

	var keys, values []string
	s.Iterate([]byte("k"), []byte("l"), false, func(k, v []byte) bool {
		keys = append(keys, string(k))
		values = append(values, string(v))
		return true
	})
	a.Equal([]string{"k1", "k2", "k3", "k6"}, keys)
	a.Equal([]string{"base1", "sess2", "sess3", "sess6"}, values)

	keys = keys[:0]
	s.Iterate([]byte("k"), []byte("l"), true, func(k, v []byte) bool {
		keys = append(keys, string(k))
		return true
	})
	a.Equal([]string{"k6", "k3", "k2", "k1"}, keys)

	// early break stops the walk
	keys = keys[:0]
	s.Iterate([]byte("k"), []byte("l"), false, func(k, v []byte) bool {
		keys = append(keys, string(k))
		return len(keys) < 2
	})
	a.Equal([]string{"k1", "k2"}, keys)
}
