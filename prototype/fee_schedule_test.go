package prototype

import (
	"testing"

	"github.com/dascoin/dascoin-go/common/constants"
	"github.com/stretchr/testify/assert"
)

func TestEveryVariantHasAFee(t *testing.T) {
	a := assert.New(t)

	schedule := DefaultFeeSchedule()
	for tag := OpType(0); tag < opTypeCount; tag++ {
		op, err := NewBaseOperation(tag)
		a.NoError(err)
		fee, err := op.CalculateFee(schedule)
		a.NoError(err)
		a.True(fee.Amount >= 0)
	}
}

func TestFixedFees(t *testing.T) {
	a := assert.New(t)
	schedule := DefaultFeeSchedule()

	fee, err := (&AccountWhitelistOperation{}).CalculateFee(schedule)
	a.NoError(err)
	a.Equal(int64(300000), fee.Amount)

	fee, err = (&AccountTransferOperation{}).CalculateFee(schedule)
	a.NoError(err)
	a.Equal(int64(500*constants.AssetPrecision), fee.Amount)

	fee, err = (&AccountCreateOperation{}).CalculateFee(schedule)
	a.NoError(err)
	a.Equal(int64(0), fee.Amount)

	fee, err = (&TetherAccountsOperation{}).CalculateFee(schedule)
	a.NoError(err)
	a.Equal(int64(0), fee.Amount)
}

func TestUpgradeFeeByMembership(t *testing.T) {
	a := assert.New(t)
	schedule := DefaultFeeSchedule()

	annual := &AccountUpgradeOperation{AccountToUpgrade: 12}
	fee, err := annual.CalculateFee(schedule)
	a.NoError(err)
	a.Equal(int64(2000*constants.AssetPrecision), fee.Amount)

	lifetime := &AccountUpgradeOperation{AccountToUpgrade: 12, UpgradeToLifetimeMember: true}
	fee, err = lifetime.CalculateFee(schedule)
	a.NoError(err)
	a.Equal(int64(10000*constants.AssetPrecision), fee.Amount)
}

func TestUpdateFeeGrowsPerKbyte(t *testing.T) {
	a := assert.New(t)
	schedule := DefaultFeeSchedule()

	small := &AccountUpdateOperation{
		Fee:     *NewAsset(1),
		Account: 8,
		Active:  NewAuthorityFromPubKey(testPubKey(1)),
	}
	a.True(len(PackOperation(small)) <= 1024)
	fee, err := small.CalculateFee(schedule)
	a.NoError(err)
	a.Equal(int64(21*constants.AssetPrecision), fee.Amount)

	big := &AccountUpdateOperation{
		Fee:     *NewAsset(1),
		Account: 8,
		Active:  &Authority{WeightThreshold: 1},
	}
	for i := 0; i < 40; i++ {
		big.Active.KeyAuths = append(big.Active.KeyAuths, KeyAuth{Key: testPubKey(byte(i)), Weight: 1})
	}
	size := len(PackOperation(big))
	a.True(size > 1024 && size <= 2048)
	fee, err = big.CalculateFee(schedule)
	a.NoError(err)
	a.Equal(int64(22*constants.AssetPrecision), fee.Amount)
}

func TestLoadFeeScheduleOverrides(t *testing.T) {
	a := assert.New(t)

	schedule, err := LoadFeeSchedule([]byte(`{"account_whitelist":{"fee":123}}`))
	a.NoError(err)
	a.Equal(uint64(123), schedule.AccountWhitelist.Fee)

	// untouched variants keep their genesis values
	a.Equal(uint64(500*constants.AssetPrecision), schedule.AccountTransfer.Fee)
	a.Equal(uint64(constants.AssetPrecision), schedule.AccountUpdate.PricePerKbyte)

	_, err = LoadFeeSchedule([]byte(`{broken`))
	a.Error(err)
}
