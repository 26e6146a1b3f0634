// Package dsp generates white, pink and brown noise.
package dsp

import (
	"math"
	"math/bits"
	"time"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("dsp")

const (
	// NumPinkBins is the number of octave bins summed by Rand.Pink.
	NumPinkBins = 16

	// WhiteScale is the default scale of Rand.White.
	WhiteScale = 0.5

	pinkBound  = 4
	brownBound = 8

	// maxDraws bounds the rejection loops in Pink and Brown.  It is only
	// reached from accumulator states that leave almost no admissible draw.
	maxDraws = 1 << 12
)

// Rand generates white, pink and brown noise from a single linear
// congruential sequence.
//
// Pink noise sums NumPinkBins octave bins, bin k being refreshed every 2^k
// samples.  Brown noise integrates white noise.  Both accumulators are kept
// in bounds by rejecting draws that would leave them.
//
// A Rand must not be used from multiple goroutines at once.
type Rand struct {
	state     uint32
	count     uint32
	pink      float32
	brown     float32
	pinkStore [NumPinkBins]float32
}

// NewRand returns a Rand seeded with seed.  See Seed.
func NewRand(seed uint32) *Rand {
	r := &Rand{count: 1}
	r.Seed(seed)
	return r
}

// Seed sets the generator state.  A zero seed is replaced by the current
// Unix time in seconds.
func (r *Rand) Seed(seed uint32) {
	if seed == 0 {
		seed = uint32(time.Now().Unix())
	}
	r.state = seed
}

// White returns uniform noise in [-scale, scale).
func (r *Rand) White(scale float32) float32 {
	r.state = r.state*196314165 + 907633515
	return float32(unitFloat(r.state)-3) * scale
}

// Float returns White(WhiteScale).
func (r *Rand) Float() float32 {
	return r.White(WhiteScale)
}

// unitFloat assembles an IEEE-754 single with sign 0, biased exponent 128
// and the top 23 bits of x as mantissa, giving a value in [2, 4).
func unitFloat(x uint32) float32 {
	const (
		exponent = 128 << 23
		mantissa = 1<<23 - 1
	)
	return math.Float32frombits(exponent | (x>>9)&mantissa)
}

// Pink returns pink noise in [-0.5625, 0.5625).
func (r *Rand) Pink() float32 {
	k := bits.TrailingZeros32(r.count) & (NumPinkBins - 1)
	prev := r.pinkStore[k]
	for i := 0; i < maxDraws; i++ {
		w := r.Float()
		sum := r.pink + float32(w-prev)
		if sum < -pinkBound || sum > pinkBound {
			continue
		}
		r.pinkStore[k] = w
		r.pink = sum
		break
	}
	r.count++
	return float32(r.Float()+r.pink) * 0.125
}

// Brown returns brown noise in [-0.5, 0.5].
func (r *Rand) Brown() float32 {
	for i := 0; i < maxDraws; i++ {
		sum := r.brown + r.Float()
		if sum < -brownBound || sum > brownBound {
			continue
		}
		r.brown = sum
		break
	}
	return r.brown * 0.0625
}

// PinkSum returns the pink accumulator, always within [-4, 4].
func (r *Rand) PinkSum() float32 { return r.pink }

// BrownSum returns the brown accumulator, always within [-8, 8].
func (r *Rand) BrownSum() float32 { return r.brown }
