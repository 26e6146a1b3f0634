package dsp

// DefaultRange is the default output range of a Counter.
const DefaultRange = 128

const (
	numCounterBins = 5
	counterMask    = 1<<numCounterBins - 1
)

// Source is a source of uniformly distributed 32-bit values.
// *math/rand.Rand satisfies it.
type Source interface {
	Uint32() uint32
}

// A Counter generates pink noise with the Voss algorithm: five bins are
// summed, and bin i is redrawn whenever bit i of a 5-bit counter changes.
type Counter struct {
	src   Source
	key   uint32
	width uint32
	bins  [numCounterBins]uint32
}

// NewCounter returns a Counter whose bins are drawn from src in
// [0, rng/5).
func NewCounter(src Source, rng uint32) (*Counter, error) {
	if src == nil {
		return nil, Error.New("nil source")
	}
	if rng/numCounterBins == 0 {
		return nil, Error.New("range must be at least %d: %d", numCounterBins, rng)
	}
	c := &Counter{src: src, width: rng / numCounterBins}
	for i := range c.bins {
		c.bins[i] = c.draw()
	}
	return c, nil
}

func (c *Counter) draw() uint32 {
	return c.src.Uint32() % c.width
}

// Next advances the counter and returns the sum of the bins.
// When the counter wraps from 31 to 0 every bin is redrawn.
func (c *Counter) Next() uint32 {
	last := c.key
	c.key = (c.key + 1) & counterMask
	diff := last ^ c.key
	var sum uint32
	for i := range c.bins {
		if diff&(1<<i) != 0 {
			c.bins[i] = c.draw()
		}
		sum += c.bins[i]
	}
	return sum
}

// Max returns the largest value Next can return.
func (c *Counter) Max() uint32 {
	return numCounterBins * (c.width - 1)
}
