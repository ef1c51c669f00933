package helper

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"mbapi/db"
	"mbapi/model"
)

// bulk catalog import: the source file is replaced wholesale, so the whole
// table is dropped and rebuilt inside one transaction. On any row error
// nothing is committed and the old snapshot stays live.

func ImportAreaCode() (int, error) {
	f, err := os.Open(filepath.Join("media", "load", "area_code.csv"))
	if err != nil {
		return 0, err
	}
	defer f.Close()

	rows, err := ParseAreaCodeCSV(f)
	if err != nil {
		return 0, err
	}

	tx := db.DbManager().Begin()
	if err := tx.Delete(&model.AreaCode{}).Error; err != nil {
		tx.Rollback()
		return 0, err
	}
	for i := range rows {
		if err := tx.Create(&rows[i]).Error; err != nil {
			tx.Rollback()
			return 0, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return 0, err
	}

	areaCatalog.Load(toAreaRows(rows))
	return len(rows), nil
}

func ImportPostPrice() (int, error) {
	f, err := os.Open(filepath.Join("media", "load", "post_price.csv"))
	if err != nil {
		return 0, err
	}
	defer f.Close()

	rows, err := ParsePostPriceCSV(f)
	if err != nil {
		return 0, err
	}

	tx := db.DbManager().Begin()
	if err := tx.Delete(&model.PostPrice{}).Error; err != nil {
		tx.Rollback()
		return 0, err
	}
	for i := range rows {
		if err := tx.Create(&rows[i]).Error; err != nil {
			tx.Rollback()
			return 0, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return 0, err
	}

	priceTable.Load(toPriceRows(rows))
	return len(rows), nil
}

// ParseAreaCodeCSV builds catalog rows from a headered CSV file. A missing
// required column fails the whole parse.
func ParseAreaCodeCSV(r io.Reader) ([]model.AreaCode, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := readHeader(reader, []string{"country_code", "name", "ship_code", "post_code", "area", "service"})
	if err != nil {
		return nil, err
	}

	rows := []model.AreaCode{}
	for {
		line, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		rows = append(rows, model.AreaCode{
			CountryCode: cell(line, header["country_code"]),
			Name:        cell(line, header["name"]),
			ShipCode:    cell(line, header["ship_code"]),
			PostCode:    cell(line, header["post_code"]),
			Area:        cell(line, header["area"]),
			IsService:   strings.ToLower(cell(line, header["service"])) != "out of network",
		})
	}
	return rows, nil
}

func ParsePostPriceCSV(r io.Reader) ([]model.PostPrice, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := readHeader(reader, []string{"country_code", "carrier_name", "carrier_code", "min_weight",
		"max_weight", "area", "basic_price", "calc_price", "volume_ratio", "is_elec"})
	if err != nil {
		return nil, err
	}

	rows := []model.PostPrice{}
	rowNum := 1
	for {
		line, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		rowNum = rowNum + 1

		minWeight, err := parseIntCell(cell(line, header["min_weight"]))
		if err != nil {
			return nil, fmt.Errorf("第%d行 min_weight 非法: %v", rowNum, err)
		}
		maxWeight, err := parseIntCell(cell(line, header["max_weight"]))
		if err != nil {
			return nil, fmt.Errorf("第%d行 max_weight 非法: %v", rowNum, err)
		}
		basicPrice, err := strconv.ParseFloat(cell(line, header["basic_price"]), 64)
		if err != nil {
			return nil, fmt.Errorf("第%d行 basic_price 非法: %v", rowNum, err)
		}
		calcPrice, err := strconv.ParseFloat(cell(line, header["calc_price"]), 64)
		if err != nil {
			return nil, fmt.Errorf("第%d行 calc_price 非法: %v", rowNum, err)
		}
		volumeRatio, err := parseIntCell(cell(line, header["volume_ratio"]))
		if err != nil {
			return nil, fmt.Errorf("第%d行 volume_ratio 非法: %v", rowNum, err)
		}

		rows = append(rows, model.PostPrice{
			CountryCode: cell(line, header["country_code"]),
			CarrierName: cell(line, header["carrier_name"]),
			CarrierCode: cell(line, header["carrier_code"]),
			Area:        cell(line, header["area"]),
			IsElec:      parseBoolCell(cell(line, header["is_elec"])),
			MinWeight:   minWeight,
			MaxWeight:   maxWeight,
			BasicPrice:  basicPrice,
			CalcPrice:   calcPrice,
			VolumeRatio: volumeRatio,
		})
	}
	return rows, nil
}

func readHeader(reader *csv.Reader, required []string) (map[string]int, error) {
	line, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("文件缺少标题行")
	}
	header := map[string]int{}
	for i, name := range line {
		header[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	missing := []string{}
	for _, col := range required {
		if _, ok := header[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("文件缺少必要列: %s", strings.Join(missing, ", "))
	}
	return header, nil
}

func cell(line []string, idx int) string {
	if idx < 0 || idx >= len(line) {
		return ""
	}
	return strings.TrimSpace(line[idx])
}

// weights may arrive as "500" or "500.0" depending on the export tool
func parseIntCell(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func parseBoolCell(s string) bool {
	switch strings.ToLower(s) {
	case "", "0", "false":
		return false
	}
	return true
}
