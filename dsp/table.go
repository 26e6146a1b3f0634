package dsp

import "sync"

const (
	// TableSize is the number of samples in a Table.
	TableSize = 1 << 15
	tableMask = TableSize - 1

	// Inaudible is 2^-24, the scale of PinkTable samples.
	Inaudible = 1.0 / (1 << 24)
)

// A Table holds precomputed noise samples for cheap indexed access,
// e.g. to keep filter state out of the denormal range.
type Table [TableSize]float32

// NewTable fills a Table with r.Pink scaled by Inaudible.
func NewTable(r *Rand) *Table {
	t := new(Table)
	for i := range t {
		t[i] = float32(Inaudible * float64(r.Pink()))
	}
	return t
}

var (
	pinkTable     *Table
	pinkTableOnce sync.Once
)

// PinkTable returns the process-wide pink noise table, building it with a
// time-seeded Rand on first use.  The table must not be modified.
func PinkTable() *Table {
	pinkTableOnce.Do(func() {
		pinkTable = NewTable(NewRand(0))
	})
	return pinkTable
}

// Sample returns the sample at cursor, modulo TableSize, and the next cursor.
func (t *Table) Sample(cursor uint32) (float32, uint32) {
	return t[cursor&tableMask], cursor + 1
}

// Next returns the sample at *cursor and advances it.
func (t *Table) Next(cursor *uint32) float32 {
	v, c := t.Sample(*cursor)
	*cursor = c
	return v
}
