package postage

import (
	"math"
	"sort"
	"sync/atomic"
)

// PriceRow is one weight band for an (area, carrier_code) pair.
type PriceRow struct {
	ID          uint    `json:"id"`
	CountryCode string  `json:"country_code"`
	CarrierName string  `json:"carrier_name"`
	CarrierCode string  `json:"carrier_code"`
	Area        string  `json:"area"`
	IsElec      bool    `json:"is_elec"`
	MinWeight   int     `json:"min_weight"`
	MaxWeight   int     `json:"max_weight"`
	BasicPrice  float64 `json:"basic_price"`
	CalcPrice   float64 `json:"calc_price"`
	VolumeRatio int     `json:"volume_ratio"`
}

// PriceTable holds an immutable snapshot of the post_price table, bands
// grouped per (area, carrier_code) and ordered by (min_weight, id) so
// overlapping bands resolve deterministically: the first band containing
// the weight wins.
type PriceTable struct {
	snap atomic.Value // map[string][]PriceRow
}

func NewPriceTable() *PriceTable {
	t := &PriceTable{}
	t.Load(nil)
	return t
}

func priceKey(area string, carrierCode string) string {
	return area + "|" + carrierCode
}

func (t *PriceTable) Load(rows []PriceRow) {
	m := make(map[string][]PriceRow)
	for _, row := range rows {
		key := priceKey(row.Area, row.CarrierCode)
		m[key] = append(m[key], row)
	}
	for _, bands := range m {
		sort.SliceStable(bands, func(i, j int) bool {
			if bands[i].MinWeight != bands[j].MinWeight {
				return bands[i].MinWeight < bands[j].MinWeight
			}
			return bands[i].ID < bands[j].ID
		})
	}
	t.snap.Store(m)
}

// Lookup returns the band where min_weight <= weight <= max_weight.
func (t *PriceTable) Lookup(area string, carrierCode string, weight int) (PriceRow, bool) {
	m := t.snap.Load().(map[string][]PriceRow)
	for _, band := range m[priceKey(area, carrierCode)] {
		if band.MinWeight <= weight && weight <= band.MaxWeight {
			return band, true
		}
	}
	return PriceRow{}, false
}

// Cost computes calc_price * weight / 1000 + basic_price rounded to two
// decimals. No matching band means unpriced, surfaced as 0.
func (t *PriceTable) Cost(area string, carrierCode string, weight int) float64 {
	band, ok := t.Lookup(area, carrierCode, weight)
	if !ok {
		return 0
	}
	total := band.CalcPrice*float64(weight)/1000 + band.BasicPrice
	return Round2(total)
}

func (t *PriceTable) Size() int {
	m := t.snap.Load().(map[string][]PriceRow)
	n := 0
	for _, bands := range m {
		n += len(bands)
	}
	return n
}

// Round2 rounds to two decimals, ties to the even cent.
func Round2(x float64) float64 {
	return math.RoundToEven(x*100) / 100
}
