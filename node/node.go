package node

import (
	"math/rand"

	"github.com/gordonklaus/colornoise/dsp"
)

// A Node processes signals.
// In addition to Init, a Node must have a method named Process whose parameters and results are all of type float32.
type Node interface {
	Init(Config) error
}

type Config struct {
	SampleRate float32

	// Seed seeds the noise generators.  Zero seeds from the clock.
	Seed uint32

	// Range is the output range of VossNoise.  Zero means dsp.DefaultRange.
	Range uint32

	Rand *rand.Rand
}

func (c *Config) GetRand() *rand.Rand {
	if c.Rand == nil {
		seed := int64(c.Seed)
		if seed == 0 {
			seed = 1
		}
		c.Rand = rand.New(rand.NewSource(seed))
	}
	return c.Rand
}

func (c *Config) GetRange() uint32 {
	if c.Range == 0 {
		return dsp.DefaultRange
	}
	return c.Range
}
