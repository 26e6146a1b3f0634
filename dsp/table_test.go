package dsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/gordonklaus/colornoise/dsp"
)

func TestTable_Contents(t *testing.T) {
	table := dsp.NewTable(dsp.NewRand(1))
	r := dsp.NewRand(1)
	for i, v := range table {
		require.Equal(t, float32(dsp.Inaudible*float64(r.Pink())), v, "entry %d", i)
		require.False(t, math.IsNaN(float64(v)) || math.IsInf(float64(v), 0), "entry %d", i)
		require.Less(t, math.Abs(float64(v)), 0.5625*dsp.Inaudible, "entry %d", i)
	}
	assert.Len(t, table[:], 32768)
}

func TestTable_Wrap(t *testing.T) {
	table := dsp.NewTable(dsp.NewRand(2))

	v, c := table.Sample(32767)
	assert.Equal(t, table[32767], v)
	v, c = table.Sample(c)
	assert.Equal(t, table[0], v, "cursor wraps to the first entry")
	assert.Equal(t, uint32(32769), c)

	cursor := uint32(math.MaxUint32)
	assert.Equal(t, table[32767], table.Next(&cursor))
	assert.Equal(t, uint32(0), cursor)
	assert.Equal(t, table[0], table.Next(&cursor))
	assert.Equal(t, uint32(1), cursor)
}

func TestPinkTable_Shared(t *testing.T) {
	defer goleak.VerifyNone(t)

	var g errgroup.Group
	tables := make([]*dsp.Table, 8)
	sums := make([]float64, len(tables))
	for i := range tables {
		g.Go(func() error {
			table := dsp.PinkTable()
			tables[i] = table
			cursor := uint32(i)
			for j := 0; j < 2*dsp.TableSize; j++ {
				sums[i] += float64(table.Next(&cursor))
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i := range tables {
		assert.Same(t, tables[0], tables[i], "one table per process")
		assert.InDelta(t, sums[0], sums[i], 1e-9, "every reader sees the same samples")
	}
}
