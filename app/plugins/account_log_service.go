package plugins

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/dascoin/dascoin-go/common/constants"
	"github.com/dascoin/dascoin-go/config"
	"github.com/dascoin/dascoin-go/prototype"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

var AccountLogServiceName = "accountlog"

// AccountOpRecord is one applied operation flattened into a SQL row, so
// downstream consumers can query account history without a chain node.
type AccountOpRecord struct {
	ID        uint64 `gorm:"primary_key;auto_increment"`
	TrxId     string `gorm:"index;unique_index:idx_trx_op"`
	OpInTrx   uint64 `gorm:"unique_index:idx_trx_op"`
	OpType    string `gorm:"index"`
	FeePayer  uint64 `gorm:"index"`
	Fee       int64
	Operation string `gorm:"type:longtext"`
	AppliedAt time.Time
}

func (AccountOpRecord) TableName() string {
	return "account_op_record"
}

// AccountLogService subscribes to the operation notice bus and mirrors every
// committed operation into MySQL.
type AccountLogService struct {
	sync.Mutex
	config *config.DatabaseConfig
	logger *logrus.Logger
	bus    EventBus.Bus
	db     *gorm.DB
}

func NewAccountLogService(bus EventBus.Bus, config *config.DatabaseConfig, logger *logrus.Logger) (*AccountLogService, error) {
	return &AccountLogService{config: config, logger: logger, bus: bus}, nil
}

func (s *AccountLogService) Start() error {
	if err := s.initDatabase(); err != nil {
		return fmt.Errorf("invalid database: %s", err.Error())
	}
	return s.bus.Subscribe(constants.NoticeOpPost, s.onOpApplied)
}

func (s *AccountLogService) Stop() error {
	_ = s.bus.Unsubscribe(constants.NoticeOpPost, s.onOpApplied)
	s.Lock()
	defer s.Unlock()
	if s.db != nil {
		_ = s.db.Close()
		s.db = nil
	}
	return nil
}

func (s *AccountLogService) initDatabase() error {
	connStr := fmt.Sprintf("%s:%s@/%s?charset=utf8mb4&parseTime=True&loc=Local", s.config.User, s.config.Password, s.config.Db)
	db, err := gorm.Open(s.config.Driver, connStr)
	if err != nil {
		return err
	}
	if !db.HasTable(&AccountOpRecord{}) {
		if err := db.CreateTable(&AccountOpRecord{}).Error; err != nil {
			_ = db.Close()
			return err
		}
	}
	s.db = db
	return nil
}

func (s *AccountLogService) onOpApplied(note *prototype.OperationNotification) {
	// only committed operations reach the table
	if note.TrxStatus != prototype.StatusSuccess {
		return
	}
	s.Lock()
	defer s.Unlock()
	if s.db == nil {
		return
	}

	base := prototype.GetBaseOperation(note.Op)
	opJson, err := json.Marshal(note.Op)
	if err != nil {
		s.logger.Errorf("[account log] op serialization failed: %v", err)
		return
	}
	record := &AccountOpRecord{
		TrxId:     hex.EncodeToString(note.TrxDigest),
		OpInTrx:   note.OpInTrx,
		OpType:    base.OpType().String(),
		FeePayer:  uint64(base.FeePayer()),
		Fee:       base.GetFee().Amount,
		Operation: string(opJson),
		AppliedAt: time.Now().UTC(),
	}
	// the unique (trx, op) index turns replayed notices into no-ops
	if err := s.db.Create(record).Error; err != nil {
		s.logger.Debugf("[account log] insert skipped: %v", err)
	}
}
