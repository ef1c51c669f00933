package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAreaCodeCSV(t *testing.T) {
	csvData := `country_code,name,ship_code,post_code,area,service
AU,标准小包,ZMAU-S,2000,A1,In Network
AU,标准小包,ZMAU-S,2001,A1,Out Of Network
GB,平邮,GB-STD,SW1A,B1,
`
	rows, err := ParseAreaCodeCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "AU", rows[0].CountryCode)
	assert.Equal(t, "ZMAU-S", rows[0].ShipCode)
	assert.Equal(t, "2000", rows[0].PostCode)
	assert.Equal(t, "A1", rows[0].Area)
	assert.True(t, rows[0].IsService)

	// only the literal "out of network" marker disables a row
	assert.False(t, rows[1].IsService)
	assert.True(t, rows[2].IsService)
}

func TestParseAreaCodeCSVBOMHeader(t *testing.T) {
	csvData := "\ufeffcountry_code,name,ship_code,post_code,area,service\nAU,小包,ZMAU-S,2000,A1,ok\n"
	rows, err := ParseAreaCodeCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "AU", rows[0].CountryCode)
}

func TestParseAreaCodeCSVMissingColumn(t *testing.T) {
	csvData := "country_code,name,ship_code,post_code\nAU,小包,ZMAU-S,2000\n"
	_, err := ParseAreaCodeCSV(strings.NewReader(csvData))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "文件缺少必要列")
	assert.Contains(t, err.Error(), "area")
	assert.Contains(t, err.Error(), "service")
}

func TestParsePostPriceCSV(t *testing.T) {
	csvData := `country_code,carrier_name,carrier_code,min_weight,max_weight,area,basic_price,calc_price,volume_ratio,is_elec
AU,标准小包,ZMAU-S,0,500.0,A1,5.0,10.0,0,0
AU,标准小包,ZMAU-S,501,2000,A1,8.5,9.25,8000,1
`
	rows, err := ParsePostPriceCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// "500.0" style weights are truncated to int
	assert.Equal(t, 0, rows[0].MinWeight)
	assert.Equal(t, 500, rows[0].MaxWeight)
	assert.Equal(t, 5.0, rows[0].BasicPrice)
	assert.Equal(t, 10.0, rows[0].CalcPrice)
	assert.False(t, rows[0].IsElec)

	assert.Equal(t, 501, rows[1].MinWeight)
	assert.Equal(t, 8000, rows[1].VolumeRatio)
	assert.True(t, rows[1].IsElec)
}

func TestParsePostPriceCSVBadNumber(t *testing.T) {
	csvData := `country_code,carrier_name,carrier_code,min_weight,max_weight,area,basic_price,calc_price,volume_ratio,is_elec
AU,标准小包,ZMAU-S,abc,500,A1,5.0,10.0,0,0
`
	_, err := ParsePostPriceCSV(strings.NewReader(csvData))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "第2行")
	assert.Contains(t, err.Error(), "min_weight")
}

func TestParsePostPriceCSVShuffledColumns(t *testing.T) {
	csvData := `carrier_code,country_code,carrier_name,max_weight,min_weight,basic_price,area,calc_price,is_elec,volume_ratio
ZMAU-S,AU,标准小包,500,0,5.0,A1,10.0,0,0
`
	rows, err := ParsePostPriceCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ZMAU-S", rows[0].CarrierCode)
	assert.Equal(t, 500, rows[0].MaxWeight)
	assert.Equal(t, "A1", rows[0].Area)
}
