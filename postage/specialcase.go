package postage

// injection is a synthetic channel added for a country regardless of what
// the catalog returned. Appended injections run through the normal
// candidate loop (including the list-mode zero-weight override); prepended
// ones are quoted directly and always priced.
type injection struct {
	Name      string
	ShipCode  string
	Prepend   bool
	ListOnly  bool
	IsService bool
}

var countryInjections = map[string][]injection{
	// always-available envelope channel, not tracked in area_code
	"AU": {
		{Name: "信封", ShipCode: "ZMAU-L", IsService: true},
	},
	// 联邮通 general cargo, shown first on the order list page
	"GB": {
		{Name: "联邮通(普货)", ShipCode: "4PX_WBP", Prepend: true, ListOnly: true, IsService: true},
	},
}

// CountryCodeFromDisplay maps the ERP's localized country name to the
// two-letter code the catalogs key on. Unknown names map to "".
func CountryCodeFromDisplay(country string) string {
	switch country {
	case "澳大利亚":
		return "AU"
	case "英国":
		return "GB"
	}
	return ""
}
