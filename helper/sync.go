package helper

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"mbapi/constant"
	"mbapi/db"
	"mbapi/model"
	"mbapi/services"
)

// SyncLastWeek pulls the trailing 7 days, the nightly catch-up window.
func SyncLastWeek() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("ERROR MUST FIX: ", err)
		}
	}()
	endDate := time.Now().Format(constant.DATE_LAYOUT_ISO)
	startDate := time.Now().AddDate(0, 0, -7).Format(constant.DATE_LAYOUT_ISO)
	msg, err := SyncOrders(startDate+" 00:00:00", endDate+" 23:59:59")
	if err != nil {
		fmt.Println("ERROR MUST FIX: ", err)
		return
	}
	fmt.Println(msg)
}

// SyncOrders merges the ERP order list for the paid-time range into the
// local store. Re-running with identical source data changes nothing.
func SyncOrders(startTime string, endTime string) (string, error) {
	allOrders, err := services.FetchOrders(startTime, endTime)
	if err != nil {
		return "", err
	}

	createNum := 0
	updateNum := 0
	for _, m := range allOrders {
		carrierName, carrierCompany := services.ParseCarrier(m.CansendLogisticsHtml)

		od := model.Order{}
		db.DbManager().Where("order_number = ?", m.PlatformOrderId).First(&od)
		if od.ID != 0 {
			if ApplyOrderUpdate(&od, m, carrierName, carrierCompany) {
				db.DbManager().Save(&od)
				updateNum = updateNum + 1
			}
			continue
		}

		newOrder := BuildOrder(m, carrierName, carrierCompany)
		db.DbManager().Create(&newOrder)
		createNum = createNum + 1
	}

	idList := []string{}
	for _, m := range allOrders {
		idList = append(idList, m.Id)
	}
	allItems, err := services.FetchItems(idList)
	if err != nil {
		fmt.Println("ERROR MUST FIX: ", err)
	} else {
		for orderId, html := range allItems {
			syncOrderItems(orderId, html)
		}
	}

	return fmt.Sprintf("获取到 %d 个订单数据，新增 %d 个，更新 %d 个", len(allOrders), createNum, updateNum), nil
}

// ApplyOrderUpdate reconciles a stored order against a fresh ERP row and
// reports whether anything changed. A flip into the shipped status
// refreshes every field that can change and flags the item set for reload.
func ApplyOrderUpdate(od *model.Order, m services.MabangOrder, carrierName string, carrierCompany string) bool {
	changed := false

	if od.OrderStatus != m.ShowOrderStatusText && m.ShowOrderStatusText == constant.ORDER_STATUS_SENT {
		od.OrderStatus = m.ShowOrderStatusText
		od.OrderSentTime = sentTime(m)
		od.CarrierCompany = carrierCompany
		od.CarrierName = carrierName
		od.TrackingNumber = m.TrackNumber
		od.BuyerName = m.BuyerName
		od.Country = m.CountryCodeEn
		od.State = m.Province
		od.City = m.City
		od.PostCode = m.PostCode
		od.Address = m.Street1 + m.Street2
		od.Email = m.Email
		od.OrderNote = m.OrderRemarkText
		od.IsChangeConfirm = true
		changed = true
	}
	if od.OrderStatus != m.ShowOrderStatusText {
		od.OrderStatus = m.ShowOrderStatusText
		od.IsRefund = m.IsRefund == 1
		changed = true
	}
	if od.CarrierName != carrierName || od.TrackingNumber != m.TrackNumber {
		od.CarrierName = carrierName
		od.CarrierCompany = carrierCompany
		od.TrackingNumber = m.TrackNumber
		changed = true
	}
	return changed
}

// BuildOrder maps a fresh ERP row onto a new order record.
func BuildOrder(m services.MabangOrder, carrierName string, carrierCompany string) model.Order {
	od := model.Order{}
	od.OrderId = m.Id
	od.IsRefund = m.IsRefund == 1
	od.OrderNumber = m.PlatformOrderId
	od.PlatformNumber = m.SalesRecordNumber
	od.PlatformStatus = m.PlatformOrderStatus
	if strings.Contains(m.PlatformOrderId, "_") {
		od.IsResent = true
	}
	od.OrderNote = m.OrderRemarkText

	if m.PaidTimeTimezone != "" && m.PaidTimeTimezone != "--" {
		od.PaidTime = RobustTime(m.PaidTimeTimezone)
	} else {
		od.PaidTime = RobustTime(m.PaidTime)
	}
	od.OrderSentTime = sentTime(m)
	if m.CreateDateTimezone != "" && m.CreateDateTimezone != "--" {
		od.CreateTime = RobustTime(m.CreateDateTimezone)
	} else {
		od.CreateTime = RobustTime(m.CreateDate)
	}

	od.CarrierCompany = carrierCompany
	od.CarrierName = carrierName
	od.SelectedCarrier = m.ShippingService
	od.TrackingNumber = m.TrackNumber

	od.CountryCode = m.CountryCode
	od.StoreName = m.ShopIdText
	od.Platform = m.PlatformIdText

	od.OrderWeight, _ = m.OrderWeight.Float64()
	od.OrderStatus = m.ShowOrderStatusText

	od.BuyerId = m.BuyerUserId
	od.BuyerName = m.BuyerName
	od.Country = m.CountryCodeEn
	od.State = m.Province
	od.City = m.City
	od.PostCode = m.PostCode
	od.Address = m.Street1 + m.Street2
	od.Email = m.Email

	od.PostageInF = ParseMoney(m.ShippingFeeOriginal)
	od.PostageInRmb = ParseMoney(m.ShippingFee)
	od.PostageOutRmb = ParseMoney(m.ShippingCost)
	od.OrderPriceF = ParseMoney(m.AccountOrderFeeOrig)
	od.OrderPriceRmb = ParseMoney(m.AccountOrderFee)
	od.Currency = m.CurrencyId
	od.ProfitRmb = ParseMoney(m.Profit)
	od.ProfitF = ParseMoney(m.ProfitOriginal)
	od.Margin, _ = m.ProfitRate.Float64()

	if m.BuyerMessageText != "" {
		note := m.BuyerMessageText
		if len(note) > 500 {
			note = note[:500]
		}
		od.PlatformNote = note
	}
	return od
}

func sentTime(m services.MabangOrder) *time.Time {
	if m.ExpressTime == "--" || m.ExpressTime == "" {
		return nil
	}
	if m.ExpressTimezone != "" && m.ExpressTimezone != "--" {
		return RobustTime(m.ExpressTimezone)
	}
	return RobustTime(m.ExpressTime)
}

func syncOrderItems(orderId string, html string) {
	od := model.Order{}
	db.DbManager().Where("order_id = ?", orderId).First(&od)
	if od.ID == 0 {
		return
	}

	if od.IsChangeConfirm {
		// shipped since last sync: item set may have changed, reload it
		db.DbManager().Where("order_ref = ?", od.ID).Delete(&model.OrderItem{})
		od.SkuTotalQty = 0
		od.IsChangeConfirm = false
		db.DbManager().Save(&od)
	}
	if od.SkuTotalQty > 0 {
		// items already populated, skip
		return
	}

	parsed := services.ParseItems(html)
	for _, it := range parsed {
		db.DbManager().Create(&model.OrderItem{
			OrderRef:         od.ID,
			ItemId:           it.ItemId,
			ItemUrl:          it.ItemUrl,
			PlatformProperty: it.PlatformProperty,
			Sku:              it.Sku,
			ItemName:         it.ItemName,
			ItemQty:          it.ItemQty,
			ImageUrl:         it.ImageUrl,
			ItemCost:         it.ItemCost,
		})
	}
	od.SkuTotalQty = len(parsed)
	db.DbManager().Save(&od)
}

// RobustTime parses the ERP's assorted timestamp formats, with or without
// the (UTC+8) suffix. Unparseable input yields nil.
func RobustTime(s string) *time.Time {
	if s == "" || s == "--" {
		return nil
	}
	s = strings.Replace(s, " (UTC+8)", "", -1)
	s = strings.Replace(s, "(UTC+8)", "", -1)
	s = strings.TrimSpace(s)

	layouts := []string{
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// ParseMoney strips the thousands separators and currency marker the ERP
// bakes into money strings. Empty input is 0.
func ParseMoney(s string) float64 {
	s = strings.Replace(s, "RMB", "", -1)
	s = strings.Replace(s, ",", "", -1)
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
