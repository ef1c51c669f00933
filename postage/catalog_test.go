package postage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAreaCatalogExactMatch(t *testing.T) {
	catalog := NewAreaCatalog()
	catalog.Load([]AreaRow{
		{CountryCode: "AU", Name: "小包", ShipCode: "ZMAU-S", PostCode: "2000", Area: "A1", IsService: true},
		{CountryCode: "AU", Name: "大包", ShipCode: "ZMAU-B", PostCode: "2000", Area: "A1", IsService: true},
		{CountryCode: "GB", Name: "平邮", ShipCode: "GB-STD", PostCode: "2000", Area: "B2", IsService: true},
	})

	rows := catalog.Lookup("AU", "2000")
	require.Len(t, rows, 2)
	assert.Equal(t, "ZMAU-S", rows[0].ShipCode)
	assert.Equal(t, "ZMAU-B", rows[1].ShipCode)

	// postcode matching is exact equality, no prefixing
	assert.Empty(t, catalog.Lookup("AU", "200"))
	assert.Empty(t, catalog.Lookup("AU", "20000"))
	assert.Empty(t, catalog.Lookup("US", "2000"))
}

func TestAreaCatalogKeepsDuplicates(t *testing.T) {
	catalog := NewAreaCatalog()
	row := AreaRow{CountryCode: "AU", Name: "小包", ShipCode: "ZMAU-S", PostCode: "2000", Area: "A1", IsService: true}
	catalog.Load([]AreaRow{row, row})

	assert.Len(t, catalog.Lookup("AU", "2000"), 2)
	assert.Equal(t, 2, catalog.Size())
}

func TestAreaCatalogLookupReturnsCopy(t *testing.T) {
	catalog := NewAreaCatalog()
	catalog.Load([]AreaRow{
		{CountryCode: "AU", ShipCode: "ZMAU-S", PostCode: "2000", Area: "A1"},
	})

	rows := catalog.Lookup("AU", "2000")
	rows = append(rows, AreaRow{ShipCode: "INJECTED"})
	rows[0].ShipCode = "MUTATED"

	fresh := catalog.Lookup("AU", "2000")
	require.Len(t, fresh, 1)
	assert.Equal(t, "ZMAU-S", fresh[0].ShipCode)
}

func TestAreaCatalogSnapshotSwap(t *testing.T) {
	catalog := NewAreaCatalog()
	catalog.Load([]AreaRow{
		{CountryCode: "AU", ShipCode: "OLD-1", PostCode: "2000"},
		{CountryCode: "AU", ShipCode: "OLD-2", PostCode: "3000"},
	})

	before := catalog.Lookup("AU", "2000")

	catalog.Load([]AreaRow{
		{CountryCode: "AU", ShipCode: "NEW-1", PostCode: "2000"},
	})

	// the slice read before the swap keeps the old rows
	require.Len(t, before, 1)
	assert.Equal(t, "OLD-1", before[0].ShipCode)

	// a fresh read sees the whole new set and nothing else
	after := catalog.Lookup("AU", "2000")
	require.Len(t, after, 1)
	assert.Equal(t, "NEW-1", after[0].ShipCode)
	assert.Empty(t, catalog.Lookup("AU", "3000"))
	assert.Equal(t, 1, catalog.Size())
}

func TestAreaCatalogConcurrentReload(t *testing.T) {
	catalog := NewAreaCatalog()
	old := make([]AreaRow, 5)
	for i := range old {
		old[i] = AreaRow{CountryCode: "AU", PostCode: "2000", ShipCode: "OLD"}
	}
	next := make([]AreaRow, 9)
	for i := range next {
		next[i] = AreaRow{CountryCode: "AU", PostCode: "2000", ShipCode: "NEW"}
	}
	catalog.Load(old)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			if i%2 == 0 {
				catalog.Load(old)
			} else {
				catalog.Load(next)
			}
		}
		close(done)
	}()

	// readers only ever observe a complete snapshot
	for {
		select {
		case <-done:
			return
		default:
		}
		n := len(catalog.Lookup("AU", "2000"))
		assert.True(t, n == 5 || n == 9, "saw partial snapshot of %d rows", n)
	}
}
