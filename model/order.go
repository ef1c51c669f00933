package model

import (
	"time"
)

type Order struct {
	ID        uint      `gorm:"primary_key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	OrderNumber     string `gorm:"size:30;index" json:"order_number"`
	OrderId         string `gorm:"size:30;index" json:"order_id"`
	IsRefund        bool   `json:"is_refund"`
	IsChangeConfirm bool   `json:"is_change_confirm"`
	PlatformNumber  string `gorm:"size:30" json:"platform_number"`
	PlatformStatus  string `gorm:"size:20" json:"platform_status"`
	OrderNote       string `gorm:"size:600" json:"order_note"`

	PaidTime      *time.Time `json:"paid_time"`
	OrderSentTime *time.Time `json:"order_sent_time"`
	CreateTime    *time.Time `json:"create_time"`

	CarrierCompany  string `gorm:"size:50" json:"carrier_company"`
	CarrierName     string `gorm:"size:50" json:"carrier_name"`
	SelectedCarrier string `gorm:"size:100" json:"selected_carrier"`
	TrackingNumber  string `gorm:"size:50" json:"tracking_number"`
	CountryCode     string `gorm:"size:10" json:"country_code"`

	StoreName string `gorm:"size:50" json:"store_name"`
	Platform  string `gorm:"size:30" json:"platform"`

	OrderWeight float64 `json:"order_weight"`
	SkuTotalQty int     `json:"sku_total_qty"`

	OrderStatus  string `gorm:"size:30" json:"order_status"`
	IsResent     bool   `json:"is_resent"`
	ResentReason string `gorm:"size:100" json:"resent_reason"`
	ResentSn     string `gorm:"size:30" json:"resent_sn"`

	BuyerId   string `gorm:"size:100" json:"buyer_id"`
	BuyerName string `gorm:"size:100" json:"buyer_name"`
	Phone     string `gorm:"size:20" json:"phone"`
	Country   string `gorm:"size:50" json:"country"`
	State     string `gorm:"size:50" json:"state"`
	City      string `gorm:"size:80" json:"city"`
	PostCode  string `gorm:"size:20" json:"post_code"`
	Address   string `gorm:"size:200" json:"address"`
	Email     string `gorm:"size:50" json:"email"`

	PostageInF     float64 `json:"postage_in_f"`
	PostageInRmb   float64 `json:"postage_in_rmb"`
	PostageOutRmb  float64 `json:"postage_out_rmb"`
	PlatformFeeF   float64 `json:"platform_fee_f"`
	OrderPriceF    float64 `json:"order_price_f"`
	OrderPriceRmb  float64 `json:"order_price_rmb"`
	ProductCost    float64 `json:"product_cost"`
	Currency       string  `gorm:"size:10" json:"currency"`
	PlatformFeeRmb float64 `json:"platform_fee_rmb"`
	ProfitRmb      float64 `json:"profit_rmb"`
	ProfitF        float64 `json:"profit_f"`
	Margin         float64 `json:"margin"`
	AdFeeF         float64 `json:"ad_fee_f"`
	AdFeeRmb       float64 `json:"ad_fee_rmb"`
	ExRate         float64 `json:"ex_rate"`

	TransactionId string `gorm:"size:30" json:"transaction_id"`
	PlatformNote  string `gorm:"size:600" json:"platform_note"`

	OrderItems []*OrderItem `gorm:"foreignkey:OrderRef" json:"order_items"`
}

func (Order) TableName() string {
	return "orders"
}
