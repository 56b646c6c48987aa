package table

import (
	"encoding/json"

	"github.com/dascoin/dascoin-go/common/encoding/kope"
	"github.com/dascoin/dascoin-go/iservices"
	"github.com/dascoin/dascoin-go/prototype"
)

var globalKey = []byte(kope.Table("gprops"))

// GlobalWrap is a handle on the single global properties row.
type GlobalWrap struct {
	db iservices.IDatabaseService
}

func NewGlobalWrap(db iservices.IDatabaseService) *GlobalWrap {
	return &GlobalWrap{db: db}
}

func (w *GlobalWrap) CheckExist() bool {
	found, _ := w.db.Has(globalKey)
	return found
}

func (w *GlobalWrap) Get() *GlobalProperties {
	data, err := w.db.Get(globalKey)
	if err != nil {
		return nil
	}
	props := &GlobalProperties{}
	if err := json.Unmarshal(data, props); err != nil {
		return nil
	}
	return props
}

func (w *GlobalWrap) Create(mutate func(props *GlobalProperties)) error {
	if w.CheckExist() {
		return ErrRecordExists
	}
	props := &GlobalProperties{
		ChainAuthorities: make(map[string]prototype.AccountIdType),
	}
	mutate(props)
	return w.put(props)
}

func (w *GlobalWrap) Modify(mutate func(props *GlobalProperties)) error {
	props := w.Get()
	if props == nil {
		return ErrRecordMissing
	}
	mutate(props)
	return w.put(props)
}

// ChainAuthority resolves the holder of a named administrative role.
func (w *GlobalWrap) ChainAuthority(kind string) (prototype.AccountIdType, bool) {
	props := w.Get()
	if props == nil {
		return 0, false
	}
	id, ok := props.ChainAuthorities[kind]
	return id, ok
}

func (w *GlobalWrap) put(props *GlobalProperties) error {
	data, err := json.Marshal(props)
	if err != nil {
		return err
	}
	return w.db.Put(globalKey, data)
}
