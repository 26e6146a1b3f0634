package node

import (
	"github.com/gordonklaus/colornoise/dsp"
)

type WhiteNoise struct {
	rand *dsp.Rand
}

func (n *WhiteNoise) Init(c Config) error {
	n.rand = dsp.NewRand(c.Seed)
	return nil
}

func (n *WhiteNoise) Process() float32 {
	return n.rand.White(dsp.WhiteScale)
}

type PinkNoise struct {
	rand *dsp.Rand
}

func (n *PinkNoise) Init(c Config) error {
	n.rand = dsp.NewRand(c.Seed)
	return nil
}

func (n *PinkNoise) Process() float32 {
	return n.rand.Pink()
}

type BrownNoise struct {
	rand *dsp.Rand
}

func (n *BrownNoise) Init(c Config) error {
	n.rand = dsp.NewRand(c.Seed)
	return nil
}

func (n *BrownNoise) Process() float32 {
	return n.rand.Brown()
}

// VossNoise is pink noise from a dsp.Counter, scaled to [-1, 1].
// A range below 10 leaves a single value per bin, and VossNoise is silent.
type VossNoise struct {
	counter *dsp.Counter
	max     float32
}

func (n *VossNoise) Init(c Config) error {
	counter, err := dsp.NewCounter(c.GetRand(), c.GetRange())
	if err != nil {
		return err
	}
	n.counter = counter
	n.max = float32(counter.Max())
	return nil
}

func (n *VossNoise) Process() float32 {
	if n.max == 0 {
		return 0
	}
	return 2*float32(n.counter.Next())/n.max - 1
}

// DitherNoise reads the shared pink noise table.  Its level is about -150 dB.
type DitherNoise struct {
	table  *dsp.Table
	cursor uint32
}

func (n *DitherNoise) Init(c Config) error {
	n.table = dsp.PinkTable()
	n.cursor = c.Seed
	return nil
}

func (n *DitherNoise) Process() float32 {
	return n.table.Next(&n.cursor)
}
