package helper

import (
	"mbapi/db"
	"mbapi/model"
	"mbapi/postage"
)

// process-wide catalog snapshots and the engine reading them; rebuilt on
// startup and after every successful import
var (
	areaCatalog = postage.NewAreaCatalog()
	priceTable  = postage.NewPriceTable()
	engine      = postage.NewEngine(areaCatalog, priceTable)
)

func Engine() *postage.Engine {
	return engine
}

// ReloadCatalogs rebuilds both snapshots from the database.
func ReloadCatalogs() {
	areas := []model.AreaCode{}
	db.DbManager().Order("id").Find(&areas)
	areaCatalog.Load(toAreaRows(areas))

	prices := []model.PostPrice{}
	db.DbManager().Order("id").Find(&prices)
	priceTable.Load(toPriceRows(prices))
}

func toAreaRows(areas []model.AreaCode) []postage.AreaRow {
	rows := make([]postage.AreaRow, 0, len(areas))
	for _, a := range areas {
		rows = append(rows, postage.AreaRow{
			CountryCode: a.CountryCode,
			Name:        a.Name,
			ShipCode:    a.ShipCode,
			PostCode:    a.PostCode,
			Area:        a.Area,
			IsService:   a.IsService,
		})
	}
	return rows
}

func toPriceRows(prices []model.PostPrice) []postage.PriceRow {
	rows := make([]postage.PriceRow, 0, len(prices))
	for _, p := range prices {
		rows = append(rows, postage.PriceRow{
			ID:          p.ID,
			CountryCode: p.CountryCode,
			CarrierName: p.CarrierName,
			CarrierCode: p.CarrierCode,
			Area:        p.Area,
			IsElec:      p.IsElec,
			MinWeight:   p.MinWeight,
			MaxWeight:   p.MaxWeight,
			BasicPrice:  p.BasicPrice,
			CalcPrice:   p.CalcPrice,
			VolumeRatio: p.VolumeRatio,
		})
	}
	return rows
}
