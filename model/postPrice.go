package model

import (
	"time"
)

// PostPrice is one weight-banded pricing rule for an (area, carrier_code)
// pair. Weights are grams, prices RMB.
type PostPrice struct {
	ID          uint      `gorm:"primary_key"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CountryCode string    `gorm:"size:5" json:"country_code"`
	CarrierName string    `gorm:"size:20" json:"carrier_name"`
	CarrierCode string    `gorm:"size:20;index" json:"carrier_code"`
	Area        string    `gorm:"size:10;index" json:"area"`
	IsElec      bool      `gorm:"default:false" json:"is_elec"`
	MinWeight   int       `json:"min_weight"`
	MaxWeight   int       `json:"max_weight"`
	BasicPrice  float64   `json:"basic_price"`
	CalcPrice   float64   `json:"calc_price"`
	VolumeRatio int       `json:"volume_ratio"`
}

func (PostPrice) TableName() string {
	return "post_price"
}
