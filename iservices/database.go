package iservices

//
// This file defines interfaces of Database service.
//

var DbServerName = "db"

// IDatabaseService is the key-value store the application state lives in.
// Implementations must serialize access; callers treat the store as
// thread safe.
type IDatabaseService interface {
	// check existence of the given key
	Has(key []byte) (bool, error)

	// query the value of the given key
	Get(key []byte) ([]byte, error)

	// insert a new key-value pair, or update the value if the given key already exists
	Put(key []byte, value []byte) error

	// delete the given key and its value
	// if the given key does not exist, just return nil, indicating a successful deletion without doing anything.
	Delete(key []byte) error

	// Iterate calls callback for each key in [start, limit), in ascending
	// order unless reverse is set. Iteration stops early when callback
	// returns false.
	Iterate(start, limit []byte, reverse bool, callback func(key, value []byte) bool)

	// close the database
	Close()
}
