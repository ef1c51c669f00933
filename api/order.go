package api

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"mbapi/db"
	"mbapi/helper"
	"mbapi/model"
	"mbapi/postage"
	"mbapi/validator"
)

// ListOrders returns the latest 100 synced orders with their items.
func ListOrders(c echo.Context) error {
	orders := []*model.Order{}
	db.DbManager().Preload("OrderItems").Order("paid_time desc").Limit(100).Find(&orders)

	payload := &PayloadSuccess{
		Data: orders,
	}
	return c.JSON(http.StatusOK, payload)
}

// GetOrderInfo returns per-order items and the ranked postage quotes the
// customer service view shows.
func GetOrderInfo(c echo.Context) error {
	defer c.Request().Body.Close()

	req := struct {
		OrderNums []string `json:"order_nums"`
	}{}
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "")
	}

	orderList := []echo.Map{}
	for _, orderNum := range req.OrderNums {
		order := model.Order{}
		db.DbManager().Where("order_number = ?", orderNum).First(&order)
		if order.ID == 0 {
			continue
		}

		items := []echo.Map{}
		orderItems := []model.OrderItem{}
		db.DbManager().Where("order_ref = ?", order.ID).Find(&orderItems)
		for _, item := range orderItems {
			items = append(items, echo.Map{
				"item_cost":         item.ItemCost,
				"sku":               item.Sku,
				"platform_property": item.PlatformProperty,
			})
		}

		postList := helper.Engine().Rank(order.CountryCode, order.PostCode, int(order.OrderWeight))

		orderList = append(orderList, echo.Map{
			"order_number":    order.OrderNumber,
			"postage_out_rmb": order.PostageOutRmb,
			"profit_rmb":      postage.Round2(order.ProfitRmb),
			"order_items":     items,
			"post_list":       postList,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"order_list": orderList})
}

// GetOrderListInfo quotes postage for the order list page. Rows arrive
// with a localized country name and a loosely typed weight.
func GetOrderListInfo(c echo.Context) error {
	defer c.Request().Body.Close()

	orders := []map[string]interface{}{}
	if err := c.Bind(&orders); err != nil {
		return c.String(http.StatusBadRequest, "")
	}

	orderList := []echo.Map{}
	for _, od := range orders {
		orderNum, _ := od["orderNumber"].(string)
		country, _ := od["country"].(string)
		postCode, _ := od["postCode"].(string)
		countryCode := postage.CountryCodeFromDisplay(country)
		weight := coerceWeight(od["weight"])

		postList := helper.Engine().RankList(countryCode, postCode, weight)

		orderList = append(orderList, echo.Map{
			"order_number": orderNum,
			"post_list":    postList,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"order_list": orderList})
}

// coerceWeight turns whatever the caller sent into grams; anything
// non-numeric is 0, not an error.
func coerceWeight(v interface{}) int {
	switch w := v.(type) {
	case float64:
		return int(w)
	case json.Number:
		f, err := w.Float64()
		if err != nil {
			return 0
		}
		return int(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
		if err != nil {
			return 0
		}
		return int(f)
	case int:
		return w
	}
	return 0
}

// SqlQuery runs a caller-supplied SELECT against the order store.
func SqlQuery(c echo.Context) error {
	defer c.Request().Body.Close()

	b, err := ioutil.ReadAll(c.Request().Body)
	if err != nil {
		return c.String(http.StatusInternalServerError, "")
	}
	d := map[string]string{}
	if err := json.Unmarshal(b, &d); err != nil {
		return c.String(http.StatusBadRequest, "")
	}

	errs := validator.SqlQueryValidator(d["sql"])
	if len(errs) > 0 {
		payload := &PayloadError{
			Errors: errs,
		}
		return c.JSON(http.StatusBadRequest, payload)
	}

	// callers know the store as mb_orders
	safeSql := strings.Replace(d["sql"], "mb_orders", "orders", -1)
	safeSql = strings.Replace(safeSql, "ORDERS", "orders", -1)
	safeSql = strings.Replace(safeSql, "Orders", "orders", -1)
	rawSql := strings.TrimSpace(safeSql)

	if !strings.HasPrefix(strings.ToUpper(rawSql), "SELECT") {
		payload := &PayloadError{
			Errors: "仅支持SELECT查询",
		}
		return c.JSON(http.StatusForbidden, payload)
	}

	rows, err := db.DbManager().Raw(rawSql).Rows()
	if err != nil {
		payload := &PayloadError{
			Errors: "执行查询失败: " + err.Error(),
		}
		return c.JSON(http.StatusBadRequest, payload)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		payload := &PayloadError{
			Errors: "执行查询失败: " + err.Error(),
		}
		return c.JSON(http.StatusBadRequest, payload)
	}

	result := []map[string]interface{}{}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			payload := &PayloadError{
				Errors: "执行查询失败: " + err.Error(),
			}
			return c.JSON(http.StatusBadRequest, payload)
		}
		row := map[string]interface{}{}
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		result = append(result, row)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "success",
		"data":   result,
	})
}
