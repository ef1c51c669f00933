package postage

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(areas []AreaRow, prices []PriceRow) *Engine {
	areaCatalog := NewAreaCatalog()
	areaCatalog.Load(areas)
	priceTable := NewPriceTable()
	priceTable.Load(prices)
	return NewEngine(areaCatalog, priceTable)
}

func TestRankAustraliaScenario(t *testing.T) {
	engine := newTestEngine(
		[]AreaRow{
			{CountryCode: "AU", Name: "标准小包", ShipCode: "ZMAU-S", PostCode: "2000", Area: "A1", IsService: true},
		},
		[]PriceRow{
			{ID: 1, Area: "A1", CarrierCode: "ZMAU-S", MinWeight: 0, MaxWeight: 500, BasicPrice: 5.0, CalcPrice: 10.0},
		},
	)

	quotes := engine.Rank("AU", "2000", 200)
	require.Len(t, quotes, 2)

	// the envelope channel has no price rows, quotes 0 and sorts first
	assert.Equal(t, "信封", quotes[0].Name)
	assert.Equal(t, 0.0, quotes[0].Postage)
	assert.True(t, quotes[0].IsService)

	// 10.0*200/1000 + 5.0
	assert.Equal(t, "标准小包", quotes[1].Name)
	assert.Equal(t, "A1", quotes[1].Area)
	assert.Equal(t, 7.0, quotes[1].Postage)
}

func TestRankAustraliaEnvelopeAlwaysPresent(t *testing.T) {
	engine := newTestEngine(nil, nil)

	for _, variant := range []func(string, string, int) []Quote{engine.Rank, engine.RankList} {
		quotes := variant("AU", "9999", 300)
		require.Len(t, quotes, 1)
		assert.Equal(t, "信封", quotes[0].Name)

		count := 0
		for _, q := range variant("AU", "9999", 300) {
			if q.Name == "信封" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	}
}

func TestRankUnknownCountryEmpty(t *testing.T) {
	engine := newTestEngine(
		[]AreaRow{{CountryCode: "AU", ShipCode: "ZMAU-S", PostCode: "2000", Area: "A1"}},
		nil,
	)

	assert.Empty(t, engine.Rank("US", "2000", 100))
	assert.Empty(t, engine.RankList("", "2000", 100))
	assert.Empty(t, engine.Rank("GB", "SW1A", 100))
}

func TestRankListBritainFallback(t *testing.T) {
	engine := newTestEngine(
		[]AreaRow{
			{CountryCode: "GB", Name: "平邮", ShipCode: "GB-STD", PostCode: "SW1A", Area: "B1", IsService: true},
		},
		[]PriceRow{
			{ID: 1, Area: "", CarrierCode: "4PX_WBP", MinWeight: 0, MaxWeight: 2000, BasicPrice: 3.0, CalcPrice: 8.0},
			{ID: 2, Area: "B1", CarrierCode: "GB-STD", MinWeight: 0, MaxWeight: 2000, BasicPrice: 20.0, CalcPrice: 30.0},
		},
	)

	quotes := engine.RankList("GB", "SW1A", 500)
	require.Len(t, quotes, 2)
	// 8.0*500/1000 + 3.0 beats 30.0*500/1000 + 20.0
	assert.Equal(t, "联邮通(普货)", quotes[0].Name)
	assert.Equal(t, 7.0, quotes[0].Postage)
	assert.Equal(t, "平邮", quotes[1].Name)
	assert.Equal(t, 35.0, quotes[1].Postage)

	// the fallback is a list-page channel only
	detail := engine.Rank("GB", "SW1A", 500)
	require.Len(t, detail, 1)
	assert.Equal(t, "平邮", detail[0].Name)
}

func TestRankListZeroWeightOverride(t *testing.T) {
	engine := newTestEngine(
		[]AreaRow{
			{CountryCode: "GB", Name: "平邮", ShipCode: "GB-STD", PostCode: "SW1A", Area: "B1", IsService: true},
		},
		[]PriceRow{
			{ID: 1, Area: "", CarrierCode: "4PX_WBP", MinWeight: 0, MaxWeight: 2000, BasicPrice: 3.0, CalcPrice: 8.0},
			{ID: 2, Area: "B1", CarrierCode: "GB-STD", MinWeight: 0, MaxWeight: 2000, BasicPrice: 20.0, CalcPrice: 30.0},
		},
	)

	quotes := engine.RankList("GB", "SW1A", 0)
	require.Len(t, quotes, 2)
	// catalog channels are forced to 0 at zero weight, the fallback is not
	assert.Equal(t, "平邮", quotes[0].Name)
	assert.Equal(t, 0.0, quotes[0].Postage)
	assert.Equal(t, "联邮通(普货)", quotes[1].Name)
	assert.Equal(t, 3.0, quotes[1].Postage)

	// the detail view still quotes the minimum band
	detail := engine.Rank("GB", "SW1A", 0)
	require.Len(t, detail, 1)
	assert.Equal(t, 20.0, detail[0].Postage)
}

func TestRankListZeroWeightCoversInjectedEnvelope(t *testing.T) {
	engine := newTestEngine(
		[]AreaRow{
			{CountryCode: "AU", Name: "标准小包", ShipCode: "ZMAU-S", PostCode: "2000", Area: "A1", IsService: true},
		},
		[]PriceRow{
			{ID: 1, Area: "A1", CarrierCode: "ZMAU-S", MinWeight: 0, MaxWeight: 500, BasicPrice: 5.0, CalcPrice: 10.0},
			{ID: 2, Area: "", CarrierCode: "ZMAU-L", MinWeight: 0, MaxWeight: 500, BasicPrice: 2.0, CalcPrice: 1.0},
		},
	)

	// the envelope joins the candidate loop, so the override applies to it too
	quotes := engine.RankList("AU", "2000", 0)
	require.Len(t, quotes, 2)
	for _, q := range quotes {
		assert.Equal(t, 0.0, q.Postage)
	}
}

func TestRankSortedAscendingStable(t *testing.T) {
	engine := newTestEngine(
		[]AreaRow{
			{CountryCode: "AU", Name: "渠道甲", ShipCode: "C-A", PostCode: "2000", Area: "A1", IsService: true},
			{CountryCode: "AU", Name: "渠道乙", ShipCode: "C-B", PostCode: "2000", Area: "A1", IsService: true},
			{CountryCode: "AU", Name: "渠道丙", ShipCode: "C-C", PostCode: "2000", Area: "A1", IsService: true},
		},
		[]PriceRow{
			{ID: 1, Area: "A1", CarrierCode: "C-A", MinWeight: 0, MaxWeight: 1000, BasicPrice: 4.0},
			{ID: 2, Area: "A1", CarrierCode: "C-B", MinWeight: 0, MaxWeight: 1000, BasicPrice: 2.0},
			{ID: 3, Area: "A1", CarrierCode: "C-C", MinWeight: 0, MaxWeight: 1000, BasicPrice: 4.0},
		},
	)

	quotes := engine.Rank("AU", "2000", 100)
	require.Len(t, quotes, 4)
	for i := 1; i < len(quotes); i++ {
		assert.True(t, quotes[i-1].Postage <= quotes[i].Postage)
	}
	// equal postage keeps catalog order
	assert.Equal(t, "渠道甲", quotes[2].Name)
	assert.Equal(t, "渠道丙", quotes[3].Name)
}

func TestRankNegativeWeightClamped(t *testing.T) {
	engine := newTestEngine(
		[]AreaRow{
			{CountryCode: "AU", Name: "标准小包", ShipCode: "ZMAU-S", PostCode: "2000", Area: "A1"},
		},
		[]PriceRow{
			{ID: 1, Area: "A1", CarrierCode: "ZMAU-S", MinWeight: 0, MaxWeight: 500, BasicPrice: 5.0, CalcPrice: 10.0},
		},
	)

	assert.Equal(t, engine.Rank("AU", "2000", 0), engine.Rank("AU", "2000", -50))
}

func TestRankIdempotent(t *testing.T) {
	engine := newTestEngine(
		[]AreaRow{
			{CountryCode: "AU", Name: "标准小包", ShipCode: "ZMAU-S", PostCode: "2000", Area: "A1", IsService: true},
			{CountryCode: "AU", Name: "加急", ShipCode: "ZMAU-E", PostCode: "2000", Area: "A1", IsService: false},
		},
		[]PriceRow{
			{ID: 1, Area: "A1", CarrierCode: "ZMAU-S", MinWeight: 0, MaxWeight: 500, BasicPrice: 5.0, CalcPrice: 10.0},
			{ID: 2, Area: "A1", CarrierCode: "ZMAU-E", MinWeight: 0, MaxWeight: 500, BasicPrice: 15.0, CalcPrice: 20.0},
		},
	)

	first := engine.Rank("AU", "2000", 250)
	second := engine.Rank("AU", "2000", 250)
	assert.True(t, reflect.DeepEqual(first, second))
}

func TestCountryCodeFromDisplay(t *testing.T) {
	assert.Equal(t, "AU", CountryCodeFromDisplay("澳大利亚"))
	assert.Equal(t, "GB", CountryCodeFromDisplay("英国"))
	assert.Equal(t, "", CountryCodeFromDisplay("美国"))
	assert.Equal(t, "", CountryCodeFromDisplay(""))
}
