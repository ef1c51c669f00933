package postage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceTableLookupBounds(t *testing.T) {
	table := NewPriceTable()
	table.Load([]PriceRow{
		{ID: 1, Area: "A1", CarrierCode: "ZMAU-S", MinWeight: 0, MaxWeight: 500, BasicPrice: 5.0, CalcPrice: 10.0},
		{ID: 2, Area: "A1", CarrierCode: "ZMAU-S", MinWeight: 501, MaxWeight: 2000, BasicPrice: 8.0, CalcPrice: 9.0},
	})

	band, ok := table.Lookup("A1", "ZMAU-S", 0)
	require.True(t, ok)
	assert.Equal(t, uint(1), band.ID)

	// both ends of a band are inclusive
	band, ok = table.Lookup("A1", "ZMAU-S", 500)
	require.True(t, ok)
	assert.Equal(t, uint(1), band.ID)

	band, ok = table.Lookup("A1", "ZMAU-S", 501)
	require.True(t, ok)
	assert.Equal(t, uint(2), band.ID)

	_, ok = table.Lookup("A1", "ZMAU-S", 2001)
	assert.False(t, ok)

	_, ok = table.Lookup("A2", "ZMAU-S", 100)
	assert.False(t, ok)

	_, ok = table.Lookup("A1", "ZMAU-L", 100)
	assert.False(t, ok)
}

func TestPriceTableOverlappingBandsDeterministic(t *testing.T) {
	table := NewPriceTable()
	// malformed overlapping bands: smallest min_weight wins, then lowest id
	table.Load([]PriceRow{
		{ID: 3, Area: "A1", CarrierCode: "X", MinWeight: 100, MaxWeight: 900, BasicPrice: 2.0},
		{ID: 1, Area: "A1", CarrierCode: "X", MinWeight: 0, MaxWeight: 1000, BasicPrice: 1.0},
		{ID: 2, Area: "A1", CarrierCode: "X", MinWeight: 0, MaxWeight: 500, BasicPrice: 3.0},
	})

	band, ok := table.Lookup("A1", "X", 300)
	require.True(t, ok)
	assert.Equal(t, uint(1), band.ID)

	// still deterministic above the lower bands
	band, ok = table.Lookup("A1", "X", 950)
	require.True(t, ok)
	assert.Equal(t, uint(1), band.ID)
}

func TestPriceTableCostFormula(t *testing.T) {
	table := NewPriceTable()
	table.Load([]PriceRow{
		{ID: 1, Area: "A1", CarrierCode: "ZMAU-S", MinWeight: 0, MaxWeight: 500, BasicPrice: 5.0, CalcPrice: 10.0},
	})

	assert.Equal(t, 7.0, table.Cost("A1", "ZMAU-S", 200))
	assert.Equal(t, 5.0, table.Cost("A1", "ZMAU-S", 0))
	// no band -> unpriced, surfaced as 0
	assert.Equal(t, 0.0, table.Cost("A1", "ZMAU-S", 9999))
	assert.Equal(t, 0.0, table.Cost("", "4PX_WBP", 200))
}

func TestPriceTableCostMonotonicInWeight(t *testing.T) {
	table := NewPriceTable()
	table.Load([]PriceRow{
		{ID: 1, Area: "A1", CarrierCode: "C", MinWeight: 0, MaxWeight: 5000, BasicPrice: 4.5, CalcPrice: 12.3},
	})

	prev := -1.0
	for weight := 0; weight <= 5000; weight += 250 {
		cost := table.Cost("A1", "C", weight)
		assert.True(t, cost >= prev, "cost must not decrease, weight %d", weight)
		prev = cost
	}
}

func TestRound2HalfToEven(t *testing.T) {
	// 125/1000 = 0.125 exactly; the tie goes to the even cent
	assert.Equal(t, 0.12, Round2(0.125))
	assert.Equal(t, 0.38, Round2(0.375))
	assert.Equal(t, 1.0, Round2(0.999))
	assert.Equal(t, 7.0, Round2(7.0))
	assert.Equal(t, 2.35, Round2(2.346))
}
