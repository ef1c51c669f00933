package model

import (
	"time"
)

type OrderItem struct {
	ID        uint      `gorm:"primary_key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	OrderRef uint `gorm:"index" json:"order_ref"`

	PlatformProperty string  `gorm:"size:150" json:"platform_property"`
	ItemId           string  `gorm:"size:50" json:"item_id"`
	ItemUrl          string  `gorm:"size:200" json:"item_url"`
	Sku              string  `gorm:"size:30" json:"sku"`
	ItemName         string  `gorm:"size:200" json:"item_name"`
	ItemQty          int     `json:"item_qty"`
	ImageUrl         string  `gorm:"size:200" json:"image_url"`
	ItemCost         float64 `json:"item_cost"`
}

func (OrderItem) TableName() string {
	return "items"
}
