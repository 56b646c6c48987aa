package storage

import (
	"io/ioutil"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func dbTest(t *testing.T, db Database) {
	a := assert.New(t)

	// fail to get non-existent keys
	_, err := db.Get([]byte("key_one"))
	a.Error(err)

	// normal puts
	a.NoError(db.Put([]byte("key_one"), []byte("value_one")))
	a.NoError(db.Put([]byte("key_two"), []byte("value_two")))
	a.NoError(db.Put([]byte("key_three"), []byte("value_three")))

	// fetched values must be the same as put values
	v, err := db.Get([]byte("key_one"))
	a.NoError(err)
	a.Equal([]byte("value_one"), v)

	has, err := db.Has([]byte("key_two"))
	a.NoError(err)
	a.True(has)

	// delete an existent key, then a non-existent one
	a.NoError(db.Delete([]byte("key_two")))
	a.NoError(db.Delete([]byte("key_ten")))

	_, err = db.Get([]byte("key_two"))
	a.Error(err)
	has, err = db.Has([]byte("key_two"))
	a.NoError(err)
	a.False(has)

	a.NoError(db.Put([]byte("key_four"), []byte("value_four")))
	a.NoError(db.Put([]byte("key_five"), []byte("value_five")))

	// ascending scan, key_three filtered by the limit "key_s"
	var keys []string
	db.Iterate([]byte("key_"), []byte("key_s"), false, func(key, value []byte) bool {
		keys = append(keys, string(key))
		return true
	})
	a.Equal([]string{"key_five", "key_four", "key_one"}, keys)

	// descending scan over the same range
	keys = keys[:0]
	db.Iterate([]byte("key_"), []byte("key_s"), true, func(key, value []byte) bool {
		keys = append(keys, string(key))
		return true
	})
	a.Equal([]string{"key_one", "key_four", "key_five"}, keys)

	// early break
	keys = keys[:0]
	db.Iterate(nil, nil, false, func(key, value []byte) bool {
		keys = append(keys, string(key))
		return false
	})
	a.Len(keys, 1)

	// batch of deletions and puts applies atomically
	b := db.NewBatch()
	a.NoError(b.Delete([]byte("key_one")))
	a.NoError(b.Delete([]byte("key_three")))
	a.NoError(b.Delete([]byte("key_five")))
	a.NoError(b.Delete([]byte("key_four")))
	a.NoError(b.Put([]byte("key_two"), []byte("2")))
	a.NoError(b.Write())
	db.DeleteBatch(b)

	v, err = db.Get([]byte("key_two"))
	a.NoError(err)
	a.Equal([]byte("2"), v)
	_, err = db.Get([]byte("key_four"))
	a.Error(err)
	_, err = db.Get([]byte("key_five"))
	a.Error(err)
}

func TestMemDatabase(t *testing.T) {
	db := NewMemDatabase()
	defer db.Close()

	dbTest(t, db)
}

const letterBytes = "abcdefghijklmnopqrstuvwxyz"

func randomString(size uint) string {
	b := make([]byte, size)
	for i := range b {
		b[i] = letterBytes[rand.Intn(len(letterBytes))]
	}
	return string(b)
}

func TestLevelDatabase(t *testing.T) {
	dir, err := ioutil.TempDir("", "lvldb")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	fn := filepath.Join(dir, randomString(8))
	db, err := NewLevelDatabase(fn)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	dbTest(t, db)
}

func TestMemDatabaseDetachesValues(t *testing.T) {
	a := assert.New(t)

	db := NewMemDatabase()
	defer db.Close()

	key := []byte("k")
	value := []byte("value")
	a.NoError(db.Put(key, value))
	value[0] = 'X'

	got, err := db.Get(key)
	a.NoError(err)
	a.Equal([]byte("value"), got)
}
