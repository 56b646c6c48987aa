package app

import (
	"fmt"
	"io/ioutil"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/dascoin/dascoin-go/app/table"
	"github.com/dascoin/dascoin-go/common/constants"
	"github.com/dascoin/dascoin-go/db/storage"
	"github.com/dascoin/dascoin-go/prototype"
	"github.com/sirupsen/logrus"
)

// Controller drives the transaction pipeline: structural validation,
// duplicate suppression, authority verification, then fee charging and
// evaluator dispatch per operation. Every transaction runs inside a session
// that commits only when all of its operations succeeded.
type Controller struct {
	sync.Mutex
	db          storage.Database
	log         *logrus.Logger
	noticer     EventBus.Bus
	fetcher     *AuthFetcher
	names       *table.NameCache
	dupGuard    *DupGuard
	feeSchedule *prototype.FeeSchedule
}

func NewController(db storage.Database, lg *logrus.Logger, bus EventBus.Bus) *Controller {
	if lg == nil {
		lg = logrus.New()
		lg.SetOutput(ioutil.Discard)
	}
	return &Controller{
		db:          db,
		log:         lg,
		noticer:     bus,
		fetcher:     NewAuthFetcher(db, lg),
		names:       table.NewNameCache(),
		dupGuard:    NewDupGuard(),
		feeSchedule: prototype.DefaultFeeSchedule(),
	}
}

// Open initializes chain state on first use. A database that already has a
// global properties row is left as it is, so reopening is harmless.
func (c *Controller) Open(genesis *Genesis) {
	c.Lock()
	defer c.Unlock()

	if genesis == nil {
		genesis = DefaultGenesis()
	}
	if table.NewGlobalWrap(c.db).CheckExist() {
		return
	}
	c.initGenesis(genesis)
}

func (c *Controller) initGenesis(genesis *Genesis) {
	session := storage.NewTrxSession(c.db)
	defer func() {
		if err := recover(); err != nil {
			session.Discard()
			panic(err)
		}
	}()

	ids := make(map[string]prototype.AccountIdType)
	nextId := prototype.AccountIdType(constants.FirstAvailableAccountId)
	for _, ga := range genesis.Accounts {
		pub, err := prototype.PublicKeyFromWIF(ga.PubKey)
		mustNoError(err, "genesis key of "+ga.Name)

		id := nextId
		nextId++
		mustNoError(table.NewAccountWrap(session, id).Create(func(r *table.AccountRecord) {
			r.Name = ga.Name
			r.Kind = ga.Kind
			r.Owner = prototype.NewAuthorityFromPubKey(pub)
			r.Active = prototype.NewAuthorityFromPubKey(pub)
			r.Options = &prototype.AccountOptions{MemoKey: pub, VotingAccount: id}
			r.Registrar = id
			r.Referrer = id
			r.CreatedAt = genesis.Timestamp
			r.LifetimeMember = ga.LifetimeMember
			r.Balance = *prototype.NewAsset(ga.Balance)
		}), "genesis account "+ga.Name)
		ids[ga.Name] = id
	}

	mustNoError(table.NewGlobalWrap(session).Create(func(p *table.GlobalProperties) {
		p.HeadBlockTime = genesis.Timestamp
		p.NextAccountId = nextId
		p.StartingCycleAssetAmount = genesis.StartingCycleAssetAmount
		for kind, name := range genesis.ChainAuthorities {
			holder, ok := ids[name]
			if !ok {
				panic("chain authority " + kind + " names unknown account " + name)
			}
			p.ChainAuthorities[kind] = holder
		}
	}), "genesis global properties")

	mustNoError(session.Commit(), "genesis commit")

	for name, id := range ids {
		c.names.Seed(name, id)
	}
	c.log.Infof("genesis initialized: %d accounts, next id %d", len(genesis.Accounts), nextId)
}

// PushTrx applies one signed transaction and returns its receipt. A failed
// transaction leaves no trace in state.
func (c *Controller) PushTrx(trx *prototype.SignedTransaction) *prototype.TransactionReceipt {
	c.Lock()
	defer c.Unlock()

	wrapper := &prototype.TransactionWrapper{
		SigTrx:  trx,
		Receipt: &prototype.TransactionReceipt{Status: prototype.StatusFailed},
	}
	c.applyTransaction(wrapper)
	return wrapper.Receipt
}

func (c *Controller) applyTransaction(wrapper *prototype.TransactionWrapper) {
	receipt, sigTrx := wrapper.Receipt, wrapper.SigTrx

	if err := sigTrx.Validate(); err != nil {
		receipt.ErrorInfo = err.Error()
		c.notifyTrxApplyResult(wrapper)
		return
	}
	digest := sigTrx.Digest()
	if c.dupGuard.Has(digest) {
		receipt.ErrorInfo = "transaction was already applied"
		c.notifyTrxApplyResult(wrapper)
		return
	}

	session := storage.NewTrxSession(c.db)
	trxCtx := NewTrxContext(wrapper, session, c)

	defer func() {
		if err := recover(); err != nil {
			session.Discard()
			receipt.Status = prototype.StatusFailed
			receipt.ErrorInfo = fmt.Sprintf("applyTransaction failed : %v", err)
			receipt.FeePaid = 0
			c.log.Debugf("trx %x failed: %v", digest, err)
		} else if err := session.Commit(); err != nil {
			receipt.Status = prototype.StatusFailed
			receipt.ErrorInfo = fmt.Sprintf("trx commit failed : %v", err)
			receipt.FeePaid = 0
			c.log.Errorf("trx %x commit failed: %v", digest, err)
		} else {
			receipt.Status = prototype.StatusSuccess
			c.dupGuard.Record(digest)
			c.fetcher.TrxApplied(wrapper)
		}
		c.notifyTrxApplyResult(wrapper)
	}()

	opAssert(sigTrx.Trx.Expiration > c.HeadBlockTime(), "transaction expired")
	trxCtx.VerifyAuthority()

	applyCtx := &ApplyContext{db: session, control: c, trxCtx: trxCtx}
	for _, op := range sigTrx.Trx.Operations {
		c.applyOperation(applyCtx, op)
	}
}

func (c *Controller) applyOperation(ctx *ApplyContext, op *prototype.Operation) {
	base := prototype.GetBaseOperation(op)

	required, err := base.CalculateFee(c.feeSchedule)
	mustNoError(err, "fee calculation failed")
	declared := base.GetFee()
	// the declared fee is the amount actually charged; it must reach the
	// schedule's price and overpaying is allowed
	opAssert(declared.AssetId == required.AssetId, "fee offered in wrong asset")
	opAssert(declared.Amount >= required.Amount, "fee offer below the schedule")
	ctx.trxCtx.ChargeFee(base.FeePayer(), &declared)

	eva := GetBaseEvaluator(ctx, op)
	eva.Apply()

	ctx.trxCtx.AddOpReceipt(base, prototype.StatusSuccess, "")
}

func (c *Controller) notifyTrxApplyResult(wrapper *prototype.TransactionWrapper) {
	if c.noticer == nil {
		return
	}
	sigTrx, receipt := wrapper.SigTrx, wrapper.Receipt
	if sigTrx != nil && sigTrx.Trx != nil {
		digest := sigTrx.Digest()
		for opIdx, op := range sigTrx.Trx.Operations {
			c.noticer.Publish(constants.NoticeOpPost,
				&prototype.OperationNotification{
					TrxStatus: receipt.Status,
					TrxDigest: digest,
					OpInTrx:   uint64(opIdx),
					Op:        op,
				})
		}
		c.noticer.Publish(constants.NoticeTrxPost, sigTrx)
	}
	c.noticer.Publish(constants.NoticeTrxApplied, wrapper)
}

// HeadBlockTime reads the chain clock.
func (c *Controller) HeadBlockTime() prototype.TimePointSec {
	props := table.NewGlobalWrap(c.db).Get()
	if props == nil {
		return 0
	}
	return props.HeadBlockTime
}

// AdvanceHeadTime moves the chain clock forward. The clock never moves
// backwards; an older timestamp is ignored.
func (c *Controller) AdvanceHeadTime(t prototype.TimePointSec) {
	c.Lock()
	defer c.Unlock()

	mustNoError(table.NewGlobalWrap(c.db).Modify(func(p *table.GlobalProperties) {
		if t > p.HeadBlockTime {
			p.HeadBlockTime = t
		}
	}), "head time update failed")
}

func (c *Controller) GetProps() *table.GlobalProperties {
	return table.NewGlobalWrap(c.db).Get()
}

// AccountIdByName resolves an account name through the name cache.
func (c *Controller) AccountIdByName(name string) (prototype.AccountIdType, bool) {
	return c.names.Lookup(c.db, name)
}

func (c *Controller) Noticer() EventBus.Bus {
	return c.noticer
}

func (c *Controller) FeeSchedule() *prototype.FeeSchedule {
	return c.feeSchedule
}

// SetFeeSchedule replaces the fee parameters used for every following
// transaction.
func (c *Controller) SetFeeSchedule(schedule *prototype.FeeSchedule) {
	c.Lock()
	defer c.Unlock()
	c.feeSchedule = schedule
}

func (c *Controller) AuthCacheHitRate() float64 {
	return c.fetcher.HitRate()
}

func (c *Controller) AuthCacheCount() int64 {
	return c.fetcher.CacheCount()
}
