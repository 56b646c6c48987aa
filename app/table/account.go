package table

import (
	"encoding/binary"
	"encoding/json"

	"github.com/dascoin/dascoin-go/common/encoding/kope"
	"github.com/dascoin/dascoin-go/iservices"
	"github.com/dascoin/dascoin-go/prototype"
	"github.com/pkg/errors"
)

var (
	accountTable     = kope.Table("account")
	accountNameTable = kope.Table("accountname")
)

var (
	ErrRecordExists  = errors.New("record already exists")
	ErrRecordMissing = errors.New("record not found")
)

func accountKey(id prototype.AccountIdType) []byte {
	return kope.AppendUint64(append(kope.Key(nil), accountTable...), uint64(id))
}

func accountNameKey(name string) []byte {
	return kope.AppendString(append(kope.Key(nil), accountNameTable...), name)
}

// AccountWrap is a handle on one account row.
type AccountWrap struct {
	db iservices.IDatabaseService
	id prototype.AccountIdType
}

func NewAccountWrap(db iservices.IDatabaseService, id prototype.AccountIdType) *AccountWrap {
	return &AccountWrap{db: db, id: id}
}

func (w *AccountWrap) Id() prototype.AccountIdType {
	return w.id
}

func (w *AccountWrap) CheckExist() bool {
	found, _ := w.db.Has(accountKey(w.id))
	return found
}

// Get loads the record, or nil when the account does not exist.
func (w *AccountWrap) Get() *AccountRecord {
	data, err := w.db.Get(accountKey(w.id))
	if err != nil {
		return nil
	}
	record := &AccountRecord{}
	if err := json.Unmarshal(data, record); err != nil {
		return nil
	}
	return record
}

// Create stores a fresh record built by mutate and indexes its name.
func (w *AccountWrap) Create(mutate func(record *AccountRecord)) error {
	if w.CheckExist() {
		return ErrRecordExists
	}
	record := &AccountRecord{Id: w.id}
	mutate(record)
	if record.Name == "" {
		return errors.New("account record needs a name")
	}
	if found, _ := w.db.Has(accountNameKey(record.Name)); found {
		return errors.New("account name already indexed")
	}
	if err := w.put(record); err != nil {
		return err
	}
	var idBytes [8]byte
	binary.BigEndian.PutUint64(idBytes[:], uint64(w.id))
	return w.db.Put(accountNameKey(record.Name), idBytes[:])
}

// Modify applies mutate to the stored record and writes it back. The name
// is immutable; mutate must not touch it.
func (w *AccountWrap) Modify(mutate func(record *AccountRecord)) error {
	record := w.Get()
	if record == nil {
		return ErrRecordMissing
	}
	name := record.Name
	mutate(record)
	if record.Name != name {
		return errors.New("account name cannot change")
	}
	return w.put(record)
}

func (w *AccountWrap) put(record *AccountRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return w.db.Put(accountKey(w.id), data)
}

// AccountIdByName resolves the name index.
func AccountIdByName(db iservices.IDatabaseService, name string) (prototype.AccountIdType, bool) {
	data, err := db.Get(accountNameKey(name))
	if err != nil || len(data) != 8 {
		return 0, false
	}
	return prototype.AccountIdType(binary.BigEndian.Uint64(data)), true
}

// EachAccount walks every account record in id order until callback
// returns false.
func EachAccount(db iservices.IDatabaseService, callback func(record *AccountRecord) bool) {
	start, limit := kope.PrefixRange(accountTable)
	db.Iterate(start, limit, false, func(key, value []byte) bool {
		record := &AccountRecord{}
		if err := json.Unmarshal(value, record); err != nil {
			return true
		}
		return callback(record)
	})
}
