package kope

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUint64KeysSortNumerically(t *testing.T) {
	a := assert.New(t)

	ids := []uint64{0, 1, 9, 10, 255, 256, 1 << 32, 1<<63 + 5}
	keys := make([][]byte, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, AppendUint64(Table("acct"), id))
	}
	sorted := sort.SliceIsSorted(keys, func(i, j int) bool {
		return bytes.Compare(keys[i], keys[j]) < 0
	})
	a.True(sorted)
}

func TestPrefixRange(t *testing.T) {
	a := assert.New(t)

	start, limit := PrefixRange(Table("acct"))
	a.Equal([]byte("acct:"), []byte(start))
	a.Equal([]byte("acct;"), []byte(limit))

	inside := AppendUint64(Table("acct"), 42)
	a.True(bytes.Compare(inside, start) >= 0)
	a.True(bytes.Compare(inside, limit) < 0)

	outside := Table("auth")
	a.False(bytes.Compare(outside, start) >= 0 && bytes.Compare(outside, limit) < 0)
}

func TestPrefixRangeCarry(t *testing.T) {
	a := assert.New(t)

	_, limit := PrefixRange(Key{0x01, 0xff, 0xff})
	a.Equal(Key{0x02}, limit)

	_, limit = PrefixRange(Key{0xff, 0xff})
	a.Nil(limit)
}
