package shopify

// codeByCountry maps the country names Shopify returns on addresses to their
// ISO 3166-1 alpha-2 codes. Shopify exposes only the display name; the
// canonical address requires the code.
var codeByCountry = map[string]string{
	"Argentina":            "AR",
	"Australia":            "AU",
	"Austria":              "AT",
	"Bangladesh":           "BD",
	"Belgium":              "BE",
	"Brazil":               "BR",
	"Bulgaria":             "BG",
	"Canada":               "CA",
	"Chile":                "CL",
	"China":                "CN",
	"Colombia":             "CO",
	"Croatia":              "HR",
	"Czech Republic":       "CZ",
	"Czechia":              "CZ",
	"Denmark":              "DK",
	"Egypt":                "EG",
	"Estonia":              "EE",
	"Finland":              "FI",
	"France":               "FR",
	"Germany":              "DE",
	"Greece":               "GR",
	"Hong Kong":            "HK",
	"Hungary":              "HU",
	"Iceland":              "IS",
	"India":                "IN",
	"Indonesia":            "ID",
	"Ireland":              "IE",
	"Israel":               "IL",
	"Italy":                "IT",
	"Japan":                "JP",
	"Latvia":               "LV",
	"Lithuania":            "LT",
	"Luxembourg":           "LU",
	"Malaysia":             "MY",
	"Mexico":               "MX",
	"Netherlands":          "NL",
	"New Zealand":          "NZ",
	"Nigeria":              "NG",
	"Norway":               "NO",
	"Pakistan":             "PK",
	"Peru":                 "PE",
	"Philippines":          "PH",
	"Poland":               "PL",
	"Portugal":             "PT",
	"Romania":              "RO",
	"Saudi Arabia":         "SA",
	"Singapore":            "SG",
	"Slovakia":             "SK",
	"Slovenia":             "SI",
	"South Africa":         "ZA",
	"South Korea":          "KR",
	"Spain":                "ES",
	"Sweden":               "SE",
	"Switzerland":          "CH",
	"Taiwan":               "TW",
	"Thailand":             "TH",
	"Turkey":               "TR",
	"Ukraine":              "UA",
	"United Arab Emirates": "AE",
	"United Kingdom":       "GB",
	"United States":        "US",
	"Vietnam":              "VN",
}

// CodeByCountry resolves a Shopify country display name to its ISO 3166-1
// alpha-2 code. Unknown names resolve to the empty string.
func CodeByCountry(country string) string {
	return codeByCountry[country]
}
