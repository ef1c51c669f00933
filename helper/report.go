package helper

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"mbapi/constant"
	"mbapi/db"
	"mbapi/services"
)

// day/week order reports: raw SQL aggregates over the synced order store,
// rendered into the webhook's input map.

type StoreStat struct {
	StoreName string `json:"store_name"`
	OdQty     string `json:"od_qty"`
}

type productStat struct {
	Sku      string `json:"sku"`
	ItemName string `json:"item_name"`
	ImageUrl string `json:"image_url"`
	TotalQty int    `json:"total_qty"`
}

type itemStat struct {
	ItemId     string `json:"item_id"`
	ItemUrl    string `json:"item_url"`
	ItemName   string `json:"item_name"`
	StoreName  string `json:"store_name"`
	OrderCount int    `json:"order_count"`
}

type orderStat struct {
	OrderNumber string  `json:"order_number"`
	StoreName   string  `json:"store_name"`
	OrderPriceF float64 `json:"order_price_f"`
	Currency    string  `json:"currency"`
}

type carrierStat struct {
	CarrierName string `json:"carrier_name"`
	OrderCount  int    `json:"order_count"`
}

type typeValueStat struct {
	Type  string `json:"type"`
	Value int    `json:"value"`
}

type accountDailyStat struct {
	Account string `json:"account"`
	Type    string `json:"type"`
	Value   int    `json:"value"`
}

var weekdayCn = map[time.Weekday]string{
	time.Monday:    "星期一",
	time.Tuesday:   "星期二",
	time.Wednesday: "星期三",
	time.Thursday:  "星期四",
	time.Friday:    "星期五",
	time.Saturday:  "星期六",
	time.Sunday:    "星期日",
}

var weekdayShortCn = map[string]string{
	"Monday":    "周一",
	"Tuesday":   "周二",
	"Wednesday": "周三",
	"Thursday":  "周四",
	"Friday":    "周五",
	"Saturday":  "周六",
	"Sunday":    "周日",
}

// DayReport aggregates yesterday's orders against the day before and sends
// the daily report.
func DayReport() (string, error) {
	yesterday := time.Now().AddDate(0, 0, -1)
	endDate := yesterday.Format(constant.DATE_LAYOUT_ISO)
	startDate := time.Now().AddDate(0, 0, -2).Format(constant.DATE_LAYOUT_ISO)
	fullDate := endDate + " " + weekdayCn[yesterday.Weekday()]

	startDatetime := startDate + " 00:00:00"
	endDatetime := endDate + " 23:59:59"

	topStores, err := topStoreNames(startDatetime, endDatetime, 8)
	if err != nil {
		return "", err
	}
	if len(topStores) == 0 {
		return "", errors.New("订单数据为空")
	}

	data, err := dailyStoreCounts(topStores,
		"paid_time BETWEEN ? AND ?", startDatetime, endDatetime)
	if err != nil {
		return "", err
	}

	dayCond := "DATE(paid_time) = ?"
	totalCount, totalAmount, err := orderTotals(dayCond, endDate)
	if err != nil {
		return "", err
	}
	products, err := topProducts("DATE(o.paid_time) = ?", []interface{}{endDate}, 5)
	if err != nil {
		return "", err
	}
	items, err := topItems("DATE(o.paid_time) = ?", []interface{}{endDate}, 5)
	if err != nil {
		return "", err
	}
	topOrders, err := topOrdersByAmount(dayCond, []interface{}{endDate}, 5)
	if err != nil {
		return "", err
	}
	carriers, err := carrierBreakdown(dayCond, endDate)
	if err != nil {
		return "", err
	}
	countries, err := countryBreakdown(dayCond, endDate)
	if err != nil {
		return "", err
	}

	inputs := map[string]interface{}{
		"report_type":          "DAY",
		"store_order_stats":    mustJSON(DayStoreTrends(topStores, data)),
		"total_count":          totalCount,
		"total_amount":         totalAmount,
		"full_date":            fullDate,
		"formatted_carriers":   mustJSON(carriers),
		"formatted_products":   mustJSON(products),
		"formatted_items":      mustJSON(items),
		"formatted_top_orders": mustJSON(topOrders),
		"country_stats":        mustJSON(countries),
		"formatted_data":       mustJSON(data),
	}

	artifact, _ := json.Marshal(inputs)
	services.UploadReportArtifact("day_report_"+endDate+".json", artifact)

	if err := services.PostReport(inputs); err != nil {
		return "", errors.New("订单日报发送失败")
	}
	return "订单日报发送成功", nil
}

// WeekReport compares last week against the week before and sends the
// weekly report.
func WeekReport() (string, error) {
	today := time.Now()
	// python-style weekday, Monday = 0
	pyWeekday := (int(today.Weekday()) + 6) % 7
	lastSunday := today.AddDate(0, 0, -(pyWeekday + 1))
	lastMonday := lastSunday.AddDate(0, 0, -6)
	prevSunday := lastMonday.AddDate(0, 0, -1)
	prevMonday := prevSunday.AddDate(0, 0, -6)

	startDatetime := lastMonday.Format(constant.DATE_LAYOUT_ISO) + " 00:00:00"
	endDatetime := lastSunday.Format(constant.DATE_LAYOUT_ISO) + " 23:59:59"
	prevStartDatetime := prevMonday.Format(constant.DATE_LAYOUT_ISO) + " 00:00:00"
	prevEndDatetime := prevSunday.Format(constant.DATE_LAYOUT_ISO) + " 23:59:59"

	topStores, err := topStoreNames(startDatetime, endDatetime, 8)
	if err != nil {
		return "", err
	}
	if len(topStores) == 0 {
		return "", errors.New("订单数据为空")
	}

	data, err := dailyStoreCounts(topStores,
		"(paid_time BETWEEN ? AND ? OR paid_time BETWEEN ? AND ?)",
		prevStartDatetime, prevEndDatetime, startDatetime, endDatetime)
	if err != nil {
		return "", err
	}

	storeStats := WeekStoreTrends(topStores, data,
		prevMonday.Format(constant.DATE_LAYOUT_ISO), prevSunday.Format(constant.DATE_LAYOUT_ISO),
		lastMonday.Format(constant.DATE_LAYOUT_ISO), lastSunday.Format(constant.DATE_LAYOUT_ISO))

	rangeCond := "paid_time BETWEEN ? AND ?"
	rangeArgs := []interface{}{startDatetime, endDatetime}
	totalCount, totalAmount, err := orderTotals(rangeCond, rangeArgs...)
	if err != nil {
		return "", err
	}
	products, err := topProducts("o.paid_time BETWEEN ? AND ?", rangeArgs, 10)
	if err != nil {
		return "", err
	}
	items, err := topItems("o.paid_time BETWEEN ? AND ?", rangeArgs, 10)
	if err != nil {
		return "", err
	}
	topOrders, err := topOrdersByAmount(rangeCond, rangeArgs, 5)
	if err != nil {
		return "", err
	}
	carriers, err := carrierBreakdown(rangeCond, rangeArgs...)
	if err != nil {
		return "", err
	}
	accountDaily, err := accountDailyBreakdown(startDatetime, endDatetime)
	if err != nil {
		return "", err
	}

	inputs := map[string]interface{}{
		"report_type":             "WEEK",
		"store_order_stats":       mustJSON(storeStats),
		"total_count":             totalCount,
		"total_amount":            totalAmount,
		"full_date":               lastMonday.Format(constant.DATE_LAYOUT_ISO) + " 至 " + lastSunday.Format(constant.DATE_LAYOUT_ISO),
		"formatted_carriers":      mustJSON(carriers),
		"formatted_products":      mustJSON(products),
		"formatted_items":         mustJSON(items),
		"formatted_top_orders":    mustJSON(topOrders),
		"formatted_account_daily": mustJSON(accountDaily),
		"formatted_data":          mustJSON(data),
	}

	artifact, _ := json.Marshal(inputs)
	services.UploadReportArtifact("week_report_"+lastMonday.Format(constant.DATE_LAYOUT_ISO)+".json", artifact)

	if err := services.PostReport(inputs); err != nil {
		return "", errors.New("订单周报发送失败")
	}
	return "订单周报发送成功", nil
}

// DayStoreTrends joins the per-day counts per store with arrows, marking
// drops against the previous day.
func DayStoreTrends(stores []string, data map[string]map[string]int) []StoreStat {
	dates := sortedDates(data)
	stats := []StoreStat{}
	for _, store := range stores {
		parts := []string{}
		prev := -1
		for _, date := range dates {
			count := data[date][store]
			part := fmt.Sprintf("%d", count)
			if prev >= 0 && count < prev {
				part = part + " ⬇️"
			}
			parts = append(parts, part)
			prev = count
		}
		stats = append(stats, StoreStat{StoreName: store, OdQty: strings.Join(parts, " → ")})
	}
	return stats
}

// WeekStoreTrends compares per-store weekly totals across two week windows
// (date strings are ISO, so string comparison is safe).
func WeekStoreTrends(stores []string, data map[string]map[string]int,
	prevMonday string, prevSunday string, lastMonday string, lastSunday string) []StoreStat {
	stats := []StoreStat{}
	for _, store := range stores {
		prevTotal := 0
		lastTotal := 0
		for date, counts := range data {
			if date >= prevMonday && date <= prevSunday {
				prevTotal += counts[store]
			}
			if date >= lastMonday && date <= lastSunday {
				lastTotal += counts[store]
			}
		}
		trend := ""
		if prevTotal > 0 && lastTotal < prevTotal {
			trend = " ⬇️"
		}
		stats = append(stats, StoreStat{
			StoreName: store,
			OdQty:     fmt.Sprintf("%d → %d%s", prevTotal, lastTotal, trend),
		})
	}
	return stats
}

/// FormatAmount renders a total the way the report shows it: thousands
// separators, two decimals, RMB unit.
func FormatAmount(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)
	dot := strings.Index(s, ".")
	intPart := s[:dot]
	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign = "-"
		intPart = intPart[1:]
	}
	var grouped []string
	for len(intPart) > 3 {
		grouped = append([]string{intPart[len(intPart)-3:]}, grouped...)
		intPart = intPart[:len(intPart)-3]
	}
	grouped = append([]string{intPart}, grouped...)
	return sign + strings.Join(grouped, ",") + s[dot:] + " 元"
}

func sortedDates(data map[string]map[string]int) []string {
	dates := []string{}
	for date := range data {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

func mustJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func topStoreNames(startDatetime string, endDatetime string, limit int) ([]string, error) {
	rows, err := db.DbManager().Raw(`
		SELECT store_name
		FROM orders
		WHERE paid_time BETWEEN ? AND ?
		GROUP BY store_name
		ORDER BY COUNT(order_id) DESC
		LIMIT ?`, startDatetime, endDatetime, limit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	stores := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		stores = append(stores, name)
	}
	return stores, nil
}

func dailyStoreCounts(stores []string, cond string, args ...interface{}) (map[string]map[string]int, error) {
	queryArgs := append([]interface{}{}, args...)
	for _, store := range stores {
		queryArgs = append(queryArgs, store)
	}
	rows, err := db.DbManager().Raw(`
		SELECT DATE(paid_time) AS date, store_name, COUNT(id) AS count
		FROM orders
		WHERE `+cond+` AND store_name IN (`+placeholders(len(stores))+`)
		GROUP BY date, store_name
		ORDER BY date`, queryArgs...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	data := map[string]map[string]int{}
	for rows.Next() {
		var date time.Time
		var store string
		var count int
		if err := rows.Scan(&date, &store, &count); err != nil {
			return nil, err
		}
		dateStr := date.Format(constant.DATE_LAYOUT_ISO)
		if data[dateStr] == nil {
			data[dateStr] = map[string]int{}
		}
		data[dateStr][store] = count
	}
	return data, nil
}

func orderTotals(cond string, args ...interface{}) (int, string, error) {
	row := db.DbManager().Raw(`
		SELECT COUNT(order_id) AS total_count, SUM(order_price_rmb) AS total_amount
		FROM orders
		WHERE `+cond, args...).Row()
	var count int
	var amount sql.NullFloat64
	if err := row.Scan(&count, &amount); err != nil {
		return 0, "", err
	}
	if !amount.Valid {
		return count, "0.00 元", nil
	}
	return count, FormatAmount(amount.Float64), nil
}

func topProducts(cond string, args []interface{}, limit int) ([]productStat, error) {
	queryArgs := append(append([]interface{}{}, args...), limit)
	rows, err := db.DbManager().Raw(`
		SELECT oi.sku, oi.item_name, oi.image_url, SUM(oi.item_qty) AS total_qty
		FROM orders o
		JOIN items oi ON o.id = oi.order_ref
		WHERE `+cond+`
		GROUP BY oi.sku, oi.item_name, oi.image_url
		ORDER BY total_qty DESC
		LIMIT ?`, queryArgs...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	stats := []productStat{}
	for rows.Next() {
		s := productStat{}
		if err := rows.Scan(&s.Sku, &s.ItemName, &s.ImageUrl, &s.TotalQty); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, nil
}

func topItems(cond string, args []interface{}, limit int) ([]itemStat, error) {
	queryArgs := append(append([]interface{}{}, args...), limit)
	rows, err := db.DbManager().Raw(`
		SELECT oi.item_id, oi.item_url, MAX(oi.item_name) AS item_name,
			MAX(o.store_name) AS store_name, COUNT(DISTINCT o.id) AS order_count
		FROM orders o
		JOIN items oi ON o.id = oi.order_ref
		WHERE `+cond+`
		GROUP BY oi.item_id, oi.item_url
		ORDER BY order_count DESC
		LIMIT ?`, queryArgs...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	stats := []itemStat{}
	for rows.Next() {
		s := itemStat{}
		if err := rows.Scan(&s.ItemId, &s.ItemUrl, &s.ItemName, &s.StoreName, &s.OrderCount); err != nil {
			return nil, err
		}
		s.ItemName = ShortName(s.ItemName)
		stats = append(stats, s)
	}
	return stats, nil
}

// ShortName keeps the first 10 characters of a product name.
func ShortName(name string) string {
	runes := []rune(name)
	if len(runes) > 10 {
		return string(runes[:10]) + "..."
	}
	return name
}

func topOrdersByAmount(cond string, args []interface{}, limit int) ([]orderStat, error) {
	queryArgs := append(append([]interface{}{}, args...), limit)
	rows, err := db.DbManager().Raw(`
		SELECT order_number, store_name, order_price_f, currency
		FROM orders
		WHERE `+cond+`
		ORDER BY order_price_rmb DESC
		LIMIT ?`, queryArgs...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	stats := []orderStat{}
	for rows.Next() {
		s := orderStat{}
		if err := rows.Scan(&s.OrderNumber, &s.StoreName, &s.OrderPriceF, &s.Currency); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, nil
}

func carrierBreakdown(cond string, args ...interface{}) ([]carrierStat, error) {
	rows, err := db.DbManager().Raw(`
		SELECT carrier_name, COUNT(order_id) AS order_count
		FROM orders
		WHERE `+cond+` AND carrier_name <> ''
		GROUP BY carrier_name
		ORDER BY order_count DESC`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	stats := []carrierStat{}
	for rows.Next() {
		s := carrierStat{}
		if err := rows.Scan(&s.CarrierName, &s.OrderCount); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, nil
}

func countryBreakdown(cond string, args ...interface{}) ([]typeValueStat, error) {
	rows, err := db.DbManager().Raw(`
		SELECT country_code, COUNT(order_id) AS order_count
		FROM orders
		WHERE `+cond+` AND country_code <> ''
		GROUP BY country_code
		ORDER BY order_count DESC`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	stats := []typeValueStat{}
	for rows.Next() {
		s := typeValueStat{}
		if err := rows.Scan(&s.Type, &s.Value); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, nil
}

func accountDailyBreakdown(startDatetime string, endDatetime string) ([]accountDailyStat, error) {
	stores, err := topStoreNames(startDatetime, endDatetime, 6)
	if err != nil {
		return nil, err
	}
	if len(stores) == 0 {
		return []accountDailyStat{}, nil
	}

	queryArgs := []interface{}{startDatetime, endDatetime}
	for _, store := range stores {
		queryArgs = append(queryArgs, store)
	}
	rows, err := db.DbManager().Raw(`
		SELECT store_name AS account, DAYNAME(paid_time) AS weekday, COUNT(order_id) AS order_count
		FROM orders
		WHERE paid_time BETWEEN ? AND ?
			AND store_name IN (`+placeholders(len(stores))+`)
		GROUP BY store_name, DAYNAME(paid_time)
		ORDER BY store_name, FIELD(weekday, 'Monday', 'Tuesday', 'Wednesday', 'Thursday', 'Friday', 'Saturday', 'Sunday')`,
		queryArgs...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []accountDailyStat{}
	for rows.Next() {
		var account, weekday string
		var count int
		if err := rows.Scan(&account, &weekday, &count); err != nil {
			return nil, err
		}
		label := weekday
		if cn, ok := weekdayShortCn[weekday]; ok {
			label = cn
		}
		stats = append(stats, accountDailyStat{Account: account, Type: label, Value: count})
	}
	return stats, nil
}
