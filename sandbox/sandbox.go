// Package sandbox hosts a complete controller over an in-memory database,
// so tests drive real transactions through the full pipeline: validation,
// duplicate guard, authority checks, fees and evaluators.
package sandbox

import (
	"crypto/sha256"
	"fmt"
	"io/ioutil"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/dascoin/dascoin-go/app"
	"github.com/dascoin/dascoin-go/app/table"
	"github.com/dascoin/dascoin-go/common/constants"
	"github.com/dascoin/dascoin-go/db/storage"
	"github.com/dascoin/dascoin-go/prototype"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// core asset satoshis handed to each actor account
const defaultActorBalance = 20000 * constants.AssetPrecision

type Sandbox struct {
	db      storage.Database
	control *app.Controller
	bus     EventBus.Bus
	keys    map[string]*prototype.PublicKeyType
	trxSeq  uint32
}

func NewSandbox(logger *logrus.Logger) *Sandbox {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(ioutil.Discard)
	}

	db := storage.NewMemDatabase()
	bus := EventBus.New()
	s := &Sandbox{
		db:      db,
		control: app.NewController(db, logger, bus),
		bus:     bus,
		keys:    make(map[string]*prototype.PublicKeyType),
	}
	s.control.Open(nil)

	rootKey, _ := prototype.PublicKeyFromWIF(constants.GenesisRootPubKey)
	registrarKey, _ := prototype.PublicKeyFromWIF(constants.GenesisRegistrarPubKey)
	adminKey, _ := prototype.PublicKeyFromWIF(constants.GenesisLicenseAdminPubKey)
	s.PutKey(constants.GenesisRootAccount, rootKey)
	s.PutKey(constants.GenesisRegistrarAccount, registrarKey)
	s.PutKey(constants.GenesisLicenseAdminAccount, adminKey)

	return s
}

type SandboxTestFunc func(*testing.T, *Sandbox)

// NewSandboxTest wraps a test function with a fresh sandbox carrying n
// funded wallet accounts named actor0, actor1, ...
func NewSandboxTest(f SandboxTestFunc, actors int) func(*testing.T) {
	return func(t *testing.T) {
		d := NewSandbox(nil)
		if err := d.CreateAndFund("actor", actors, defaultActorBalance); err != nil {
			t.Fatalf("sandbox createAndFund failed: %s", err.Error())
		}
		f(t, d)
	}
}

// Test runs a test function against this sandbox, for subtests sharing
// one chain state.
func (d *Sandbox) Test(f SandboxTestFunc) func(*testing.T) {
	return func(t *testing.T) {
		f(t, d)
	}
}

// CreateAndFund registers n wallet accounts through real transactions,
// signed by the genesis registrar, and credits each balance. The root
// account referees, it is a lifetime member.
func (d *Sandbox) CreateAndFund(prefix string, n int, balance int64) error {
	if n <= 0 {
		return nil
	}
	registrar, ok := d.control.AccountIdByName(constants.GenesisRegistrarAccount)
	if !ok {
		return fmt.Errorf("unknown account: %s", constants.GenesisRegistrarAccount)
	}
	root, _ := d.control.AccountIdByName(constants.GenesisRootAccount)

	var ops []*prototype.Operation
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("%s%d", prefix, i)
		ops = append(ops, AccountCreate(registrar, root, prototype.KindWallet, name, d.KeyOf(name)))
	}
	if err := d.SendTrxByAccount(constants.GenesisRegistrarAccount, ops...); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := d.Fund(fmt.Sprintf("%s%d", prefix, i), balance); err != nil {
			return err
		}
	}
	return nil
}

// Fund credits an account balance directly in state. The catalog has no
// plain money transfer, so tests top balances up here.
func (d *Sandbox) Fund(name string, amount int64) error {
	id, ok := d.control.AccountIdByName(name)
	if !ok {
		return fmt.Errorf("unknown account: %s", name)
	}
	var addErr error
	if err := table.NewAccountWrap(d.db, id).Modify(func(r *table.AccountRecord) {
		addErr = r.Balance.Add(prototype.NewAsset(amount))
	}); err != nil {
		return err
	}
	return addErr
}

// KeyOf is the sandbox key of an account name. Keys derive from the name,
// so the key is known before the account exists.
func (d *Sandbox) KeyOf(name string) *prototype.PublicKeyType {
	if key, ok := d.keys[name]; ok {
		return key
	}
	digest := sha256.Sum256([]byte("sandbox key of " + name))
	data := make([]byte, 33)
	data[0] = 0x2
	copy(data[1:], digest[:])
	key := prototype.PublicKeyFromBytes(data)
	d.keys[name] = key
	return key
}

func (d *Sandbox) PutKey(name string, key *prototype.PublicKeyType) {
	d.keys[name] = key
}

func (d *Sandbox) sendTrx(signees []*prototype.PublicKeyType, operations ...*prototype.Operation) *prototype.TransactionReceipt {
	// a fresh expiration per transaction keeps the duplicate guard out of
	// the way of unrelated sends
	d.trxSeq++
	trx := &prototype.Transaction{
		Expiration: d.control.HeadBlockTime() + prototype.TimePointSec(30+d.trxSeq),
		Operations: operations,
	}
	return d.control.PushTrx(&prototype.SignedTransaction{Trx: trx, Signees: signees})
}

// SendTrxByAccount applies one transaction proven by the named account's
// key and collapses a failed receipt into an error.
func (d *Sandbox) SendTrxByAccount(name string, operations ...*prototype.Operation) error {
	receipt, err := d.SendTrxByAccountEx(name, operations...)
	if err != nil {
		return err
	}
	if receipt.Status != prototype.StatusSuccess {
		return errors.Errorf("transaction execute fail: %v", receipt.ErrorInfo)
	}
	return nil
}

func (d *Sandbox) SendTrxByAccountEx(name string, operations ...*prototype.Operation) (*prototype.TransactionReceipt, error) {
	key, ok := d.keys[name]
	if !ok {
		return nil, fmt.Errorf("unknown account: %s", name)
	}
	return d.sendTrx([]*prototype.PublicKeyType{key}, operations...), nil
}

// SendTrxByAccounts proves the transaction with several accounts' keys at
// once, for operations that demand more than one authority.
func (d *Sandbox) SendTrxByAccounts(names []string, operations ...*prototype.Operation) (*prototype.TransactionReceipt, error) {
	signees := make([]*prototype.PublicKeyType, 0, len(names))
	for _, name := range names {
		key, ok := d.keys[name]
		if !ok {
			return nil, fmt.Errorf("unknown account: %s", name)
		}
		signees = append(signees, key)
	}
	return d.sendTrx(signees, operations...), nil
}

// TrxReceiptByAccount is SendTrxByAccountEx for tests that inspect the
// receipt of an expected failure; a send error yields a nil receipt.
func (d *Sandbox) TrxReceiptByAccount(name string, operations ...*prototype.Operation) *prototype.TransactionReceipt {
	receipt, err := d.SendTrxByAccountEx(name, operations...)
	if err != nil {
		return nil
	}
	return receipt
}

// Advance moves the chain clock forward by seconds, standing in for block
// production.
func (d *Sandbox) Advance(seconds uint32) {
	d.control.AdvanceHeadTime(d.control.HeadBlockTime() + prototype.TimePointSec(seconds))
}

func (d *Sandbox) GlobalProps() *table.GlobalProperties {
	return d.control.GetProps()
}

// Account makes a handle on the named account. The handle binds the id at
// construction, take a fresh one after creating the account.
func (d *Sandbox) Account(name string) *SandboxAccount {
	return NewSandboxAccount(name, d)
}

func (d *Sandbox) Database() storage.Database {
	return d.db
}

func (d *Sandbox) Controller() *app.Controller {
	return d.control
}

func (d *Sandbox) Noticer() EventBus.Bus {
	return d.bus
}
