package dsp

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUnitFloat(t *testing.T) {
	assert.Equal(t, float32(2), unitFloat(0))
	assert.Equal(t, float32(3), unitFloat(1<<31))
	assert.Equal(t, math.Nextafter32(4, 0), unitFloat(math.MaxUint32))
}

func TestRand_SeedZeroUsesClock(t *testing.T) {
	before := uint32(time.Now().Unix())
	r := NewRand(0)
	after := uint32(time.Now().Unix())
	assert.GreaterOrEqual(t, r.state, before)
	assert.LessOrEqual(t, r.state, after)
	assert.Equal(t, uint32(1), r.count)
}

func TestRand_PinkBinSelection(t *testing.T) {
	// Bin k is touched on samples whose count has k trailing zeros.
	r := NewRand(5)
	for n := 1; n <= 64; n++ {
		before := r.pinkStore
		r.Pink()
		for k := range before {
			if k == bitsTrailing(uint32(n)) {
				continue
			}
			assert.Equal(t, before[k], r.pinkStore[k], "sample %d changed bin %d", n, k)
		}
	}
}

func bitsTrailing(n uint32) int {
	k := 0
	for n&1 == 0 && k < 32 {
		n >>= 1
		k++
	}
	return k & (NumPinkBins - 1)
}

func TestRand_PinkCountWrap(t *testing.T) {
	r := NewRand(5)
	r.count = math.MaxUint32
	r.Pink()
	assert.Equal(t, uint32(0), r.count)

	// A zero count has 32 trailing zeros, which masks to bin 0.
	before := r.pinkStore
	r.Pink()
	assert.Equal(t, uint32(1), r.count)
	for k := 1; k < NumPinkBins; k++ {
		assert.Equal(t, before[k], r.pinkStore[k], "bin %d", k)
	}
}

func TestRand_RejectionKeepsBounds(t *testing.T) {
	r := NewRand(11)
	r.pink = pinkBound
	r.brown = -brownBound
	for i := 0; i < 10000; i++ {
		r.Pink()
		r.Brown()
		assert.LessOrEqual(t, r.pink, float32(pinkBound))
		assert.GreaterOrEqual(t, r.pink, float32(-pinkBound))
		assert.LessOrEqual(t, r.brown, float32(brownBound))
		assert.GreaterOrEqual(t, r.brown, float32(-brownBound))
	}
}

func TestRand_DrawCap(t *testing.T) {
	// No draw can bring an accumulator of 100 back within bounds.
	r := NewRand(11)
	r.brown = 100
	r.pink = 100
	state := r.state
	r.Brown()
	assert.Equal(t, float32(100), r.brown)
	r.Pink()
	assert.Equal(t, float32(100), r.pink)
	assert.NotEqual(t, state, r.state)
}
