package postage

import (
	"sync/atomic"
)

// AreaRow is one shipping partition candidate for a (country, postcode)
// pair. Duplicates are allowed and kept in insertion order.
type AreaRow struct {
	CountryCode string `json:"country_code"`
	Name        string `json:"name"`
	ShipCode    string `json:"ship_code"`
	PostCode    string `json:"post_code"`
	Area        string `json:"area"`
	IsService   bool   `json:"is_service"`
}

// AreaCatalog holds an immutable snapshot of the area_code table. Load
// swaps the whole snapshot so readers see either the old or the new set,
// never a partial one.
type AreaCatalog struct {
	snap atomic.Value // map[string][]AreaRow
}

func NewAreaCatalog() *AreaCatalog {
	c := &AreaCatalog{}
	c.Load(nil)
	return c
}

func areaKey(countryCode string, postCode string) string {
	return countryCode + "|" + postCode
}

func (c *AreaCatalog) Load(rows []AreaRow) {
	m := make(map[string][]AreaRow)
	for _, row := range rows {
		key := areaKey(row.CountryCode, row.PostCode)
		m[key] = append(m[key], row)
	}
	c.snap.Store(m)
}

// Lookup returns every row matching both fields exactly. The result is a
// copy, callers may append to it.
func (c *AreaCatalog) Lookup(countryCode string, postCode string) []AreaRow {
	m := c.snap.Load().(map[string][]AreaRow)
	rows := m[areaKey(countryCode, postCode)]
	out := make([]AreaRow, len(rows))
	copy(out, rows)
	return out
}

func (c *AreaCatalog) Size() int {
	m := c.snap.Load().(map[string][]AreaRow)
	n := 0
	for _, rows := range m {
		n += len(rows)
	}
	return n
}
