package model

import (
	"time"
)

// AreaCode is one eligible logistics partition for a (country, postcode)
// pair. Rows are bulk replaced on every import and duplicates are kept as
// distinct candidates.
type AreaCode struct {
	ID          uint      `gorm:"primary_key"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CountryCode string    `gorm:"size:5;index" json:"country_code"`
	Name        string    `gorm:"size:20" json:"name"`
	ShipCode    string    `gorm:"size:20" json:"ship_code"`
	PostCode    string    `gorm:"size:10;index" json:"post_code"`
	Area        string    `gorm:"size:10" json:"area"`
	IsService   bool      `gorm:"default:true" json:"is_service"`
}

func (AreaCode) TableName() string {
	return "area_code"
}
