package kope

import "encoding/binary"

//
// Key building helpers for KV table rows.
//
// Encoded keys sort in the natural order of their typed parts, so a range
// scan over a table prefix walks rows in id order (uint64 parts are stored
// big-endian) or in name order (string parts are stored raw).
//

type Key []byte

// Table starts a key for the named table.
func Table(name string) Key {
	k := make(Key, 0, len(name)+9)
	k = append(k, name...)
	return append(k, ':')
}

// AppendUint64 appends v in big-endian order.
func AppendUint64(k Key, v uint64) Key {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(k, b[:]...)
}

// AppendString appends s byte-for-byte.
func AppendString(k Key, s string) Key {
	return append(k, s...)
}

// PrefixRange returns the [start, limit) pair covering every key that begins
// with prefix. limit is nil when prefix is all 0xff bytes, which iterators
// treat as the logical maximum.
func PrefixRange(prefix Key) (start, limit Key) {
	start = make(Key, len(prefix))
	copy(start, prefix)

	limit = make(Key, len(prefix))
	copy(limit, prefix)
	for i := len(limit) - 1; i >= 0; i-- {
		limit[i]++
		if limit[i] != 0 {
			return start, limit[:i+1]
		}
	}
	return start, nil
}
