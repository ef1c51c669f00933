package postage

import (
	"sort"
)

// Quote is one priced candidate channel for a destination, transient per
// request.
type Quote struct {
	Name      string  `json:"name"`
	Area      string  `json:"area"`
	IsService bool    `json:"is_service"`
	Postage   float64 `json:"postage"`
}

// Engine ranks eligible shipping channels for a destination by computed
// postage. It is stateless; both catalogs are read-only snapshots, so
// concurrent calls need no locking.
type Engine struct {
	areas  *AreaCatalog
	prices *PriceTable
}

func NewEngine(areas *AreaCatalog, prices *PriceTable) *Engine {
	return &Engine{areas: areas, prices: prices}
}

// Rank resolves and prices every eligible channel for the order detail
// view. Weight is grams; negative weights are treated as 0.
func (e *Engine) Rank(countryCode string, postCode string, weight int) []Quote {
	return e.rank(countryCode, postCode, weight, false)
}

// RankList is the order-list variant: the GB fallback channel is prepended
// and a zero weight forces catalog quotes to 0 instead of quoting the
// minimum band.
func (e *Engine) RankList(countryCode string, postCode string, weight int) []Quote {
	return e.rank(countryCode, postCode, weight, true)
}

func (e *Engine) rank(countryCode string, postCode string, weight int, listMode bool) []Quote {
	if weight < 0 {
		weight = 0
	}

	candidates := e.areas.Lookup(countryCode, postCode)
	quotes := []Quote{}

	for _, rule := range countryInjections[countryCode] {
		if rule.ListOnly && !listMode {
			continue
		}
		if rule.Prepend {
			quotes = append(quotes, Quote{
				Name:      rule.Name,
				IsService: rule.IsService,
				Postage:   e.prices.Cost("", rule.ShipCode, weight),
			})
			continue
		}
		candidates = append(candidates, AreaRow{
			Name:      rule.Name,
			ShipCode:  rule.ShipCode,
			IsService: rule.IsService,
		})
	}

	for _, cand := range candidates {
		postage := e.prices.Cost(cand.Area, cand.ShipCode, weight)
		if listMode && weight == 0 {
			postage = 0
		}
		quotes = append(quotes, Quote{
			Name:      cand.Name,
			Area:      cand.Area,
			IsService: cand.IsService,
			Postage:   postage,
		})
	}

	// cheapest first, ties keep discovery order
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].Postage < quotes[j].Postage
	})
	return quotes
}
