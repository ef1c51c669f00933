package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"mbapi/config"
)

// MabangOrder is one row of the ERP order list endpoint. Money fields come
// back as display strings ("1,234.56", "12.30RMB") and are parsed later.
type MabangOrder struct {
	Id                   string      `json:"id"`
	PlatformOrderId      string      `json:"platformOrderId"`
	IsRefund             int         `json:"isRefund"`
	SalesRecordNumber    string      `json:"salesRecordNumber"`
	PlatformOrderStatus  string      `json:"platform_order_status"`
	ShowOrderStatusText  string      `json:"showOrderStatusText"`
	OrderRemarkText      string      `json:"orderRemarkText"`
	PaidTime             string      `json:"paidTime"`
	PaidTimeTimezone     string      `json:"paidTimeTimezone"`
	ExpressTime          string      `json:"expressTime"`
	ExpressTimezone      string      `json:"expressTimezone"`
	CreateDate           string      `json:"createDate"`
	CreateDateTimezone   string      `json:"createDateTimezone"`
	ShippingService      string      `json:"shippingService"`
	TrackNumber          string      `json:"trackNumber"`
	CountryCode          string      `json:"countryCode"`
	CountryCodeEn        string      `json:"countryCodeEn"`
	ShopIdText           string      `json:"shopIdText"`
	PlatformIdText       string      `json:"platformIdText"`
	OrderWeight          json.Number `json:"orderWeight"`
	BuyerUserId          string      `json:"buyerUserId"`
	BuyerName            string      `json:"buyerName"`
	Province             string      `json:"province"`
	City                 string      `json:"city"`
	PostCode             string      `json:"postCode"`
	Street1              string      `json:"street1"`
	Street2              string      `json:"street2"`
	Email                string      `json:"email"`
	ShippingFeeOriginal  string      `json:"shippingFee_original"`
	ShippingFee          string      `json:"shippingFee"`
	ShippingCost         string      `json:"shippingCost"`
	AccountOrderFeeOrig  string      `json:"accountOrderFee_original"`
	AccountOrderFee      string      `json:"accountOrderFee"`
	CurrencyId           string      `json:"currencyId"`
	Profit               string      `json:"profit"`
	ProfitOriginal       string      `json:"profit_original"`
	ProfitRate           json.Number `json:"profit_rate"`
	BuyerMessageText     string      `json:"buyerMessageText"`
	CansendLogisticsHtml string      `json:"cansend1logisticsHtml"`
}

type orderPage struct {
	PageCount     int           `json:"pageCount"`
	OrderDataList []MabangOrder `json:"orderDataList"`
}

type itemPage struct {
	OrderListHtmlHeader map[string]string `json:"order_list_html_header"`
}

var ErrCookieExpired = errors.New("cookies过期")

const ordersPerPage = 500

func postForm(mod string, form url.Values) ([]byte, int, error) {
	cfg := config.GetConfig()
	token, err := LoadToken()
	if err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequest("POST", cfg.MB_BASE_URL+"?mod="+mod, bytes.NewBufferString(form.Encode()))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("cookie", token.Cookie)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	b, err := ioutil.ReadAll(resp.Body)
	return b, resp.StatusCode, err
}

func fetchOrderPage(startTime string, endTime string, page int) (*orderPage, error) {
	form := url.Values{}
	form.Set("queryTime", "paidTime")
	form.Set("startTime1", startTime)
	form.Set("endTime1", endTime)
	form.Set("page", strconv.Itoa(page))
	form.Set("rowsPerPage", strconv.Itoa(ordersPerPage))
	form.Set("a", "orderalllist")
	form.Set("TextZx", "")
	form.Set("TextZd", "")
	form.Set("post_tableBase", "1")

	b, status, err := postForm("order.oTc", form)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("获取订单失败: http %d", status)
	}

	data := &orderPage{}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(data); err != nil {
		// the ERP answers an HTML error page when the session is stale
		doc, derr := goquery.NewDocumentFromReader(bytes.NewReader(b))
		if derr == nil && strings.Contains(doc.Find("p").First().Text(), "登录信息已超时") {
			return nil, ErrCookieExpired
		}
		return nil, err
	}
	return data, nil
}

// FetchOrders pages through the ERP order list for the paid-time range.
func FetchOrders(startTime string, endTime string) ([]MabangOrder, error) {
	first, err := fetchOrderPage(startTime, endTime, 1)
	if err != nil {
		return nil, err
	}
	allOrders := first.OrderDataList
	totalPage := int(math.Ceil(float64(first.PageCount) / float64(ordersPerPage)))
	for page := 2; page <= totalPage; page++ {
		pageData, err := fetchOrderPage(startTime, endTime, page)
		if err != nil {
			fmt.Println("ERROR MUST FIX: ", err)
			continue
		}
		allOrders = append(allOrders, pageData.OrderDataList...)
	}
	return allOrders, nil
}

// FetchItems returns the item-table HTML fragment per order id, batched
// the way the ERP expects.
func FetchItems(orderIds []string) (map[string]string, error) {
	allItems := map[string]string{}
	batchSize := 1000
	for i := 0; i < len(orderIds); i += batchSize {
		end := i + batchSize
		if end > len(orderIds) {
			end = len(orderIds)
		}
		form := url.Values{}
		form.Set("orderItemIq", strings.Join(orderIds[i:end], ","))
		form.Set("tableBase", "2")
		form.Set("isAllList", "1")

		b, status, err := postForm("order.showOrderItems", form)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			continue
		}
		page := itemPage{}
		if err := json.Unmarshal(b, &page); err != nil {
			return nil, err
		}
		for orderId, html := range page.OrderListHtmlHeader {
			allItems[orderId] = html
		}
	}
	return allItems, nil
}

// ParseCarrier pulls the channel and company name out of the logistics
// cell. An unselected channel yields empty strings.
func ParseCarrier(html string) (string, string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", ""
	}
	text := doc.Find("p").First().Text()
	if text == "" || text == "物流渠道未选择" {
		return "", ""
	}
	parts := strings.SplitN(text, "[", 2)
	carrierName := parts[0]
	carrierCompany := ""
	if len(parts) > 1 {
		carrierCompany = strings.Replace(parts[1], "]", "", -1)
	}
	return carrierName, carrierCompany
}

// ParsedItem is one row of an order's item table fragment.
type ParsedItem struct {
	Sku              string
	ItemId           string
	ItemUrl          string
	ItemName         string
	PlatformProperty string
	ItemQty          int
	ImageUrl         string
	ItemCost         float64
}

// ParseItems walks the <tr> rows of the item fragment.
func ParseItems(html string) []ParsedItem {
	items := []ParsedItem{}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return items
	}
	doc.Find("tr").Each(func(i int, tr *goquery.Selection) {
		skuTag := tr.Find(`a[data-copy-id="copySkuNumber"]`).First()
		if skuTag.Length() == 0 {
			return
		}
		item := ParsedItem{Sku: skuTag.Text()}

		item.ImageUrl, _ = tr.Find("img").First().Attr("src")

		qty, _ := strconv.Atoi(strings.TrimSpace(tr.Find("span.stock-product-nums").First().Text()))
		item.ItemQty = qty

		itemIdTag := skuTag.NextAll().Filter("a").First()
		if itemIdTag.Length() == 0 {
			itemIdTag = skuTag.Parent().Find("a").Eq(1)
		}
		if itemIdTag.Length() > 0 {
			item.ItemId = itemIdTag.Text()
			item.ItemUrl, _ = itemIdTag.Attr("href")
		}

		item.ItemName, _ = tr.Find(`span[data-field="productName"]`).First().Attr("title")

		specifics, _ := tr.Find(`p[data-field="specifics"]`).First().Attr("data-original-title")
		item.PlatformProperty = strings.Replace(specifics, "<br/>", ",", -1)

		priceText := strings.TrimSpace(tr.Find(`td[data-field="sellPrice"] p`).First().Text())
		item.ItemCost, _ = strconv.ParseFloat(priceText, 64)

		items = append(items, item)
	})
	return items
}
