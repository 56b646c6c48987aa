package app

import (
	"sync"

	"github.com/dascoin/dascoin-go/common/constants"
	"github.com/willf/bloom"
)

// DupGuard remembers digests of applied transactions so a replayed
// transaction is rejected without touching state. Two bloom filters overlap:
// the second half of one filter's lifetime is the first half of the other's,
// so rotation never forgets the most recent digests.
type DupGuard struct {
	sync.Mutex
	trxCount   int
	filter1    *bloom.BloomFilter
	filter2    *bloom.BloomFilter
	useFilter2 bool
}

func NewDupGuard() *DupGuard {
	return &DupGuard{
		filter1: bloom.New(constants.DupFilterBitSize, constants.DupFilterHashCount),
		filter2: bloom.New(constants.DupFilterBitSize, constants.DupFilterHashCount),
	}
}

func (g *DupGuard) Has(digest []byte) bool {
	g.Lock()
	defer g.Unlock()

	if g.useFilter2 {
		return g.filter2.Test(digest)
	}
	return g.filter1.Test(digest)
}

func (g *DupGuard) Record(digest []byte) {
	g.Lock()
	defer g.Unlock()

	g.trxCount++

	if g.trxCount <= constants.DupFilterCapacity/2 {
		g.filter1.Add(digest)
	} else {
		g.filter1.Add(digest)
		g.filter2.Add(digest)

		if g.trxCount == constants.DupFilterCapacity {
			if g.useFilter2 {
				g.useFilter2 = false
				g.filter2 = bloom.New(constants.DupFilterBitSize, constants.DupFilterHashCount)
			} else {
				g.useFilter2 = true
				g.filter1 = bloom.New(constants.DupFilterBitSize, constants.DupFilterHashCount)
			}
			g.trxCount = constants.DupFilterCapacity / 2
		}
	}
}
