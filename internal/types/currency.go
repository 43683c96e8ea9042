package types

import "strings"

// CurrencyConfig holds the display symbol and the minor-unit precision
// for a 3 digit ISO 4217 currency code
type CurrencyConfig struct {
	Symbol    string
	Precision int32
}

// currencyConfigs is a map of 3 digit ISO currency codes in lowercase
// to their configs. Currencies not listed here fall back to the default
// config with 2 decimal places.
var currencyConfigs = map[string]CurrencyConfig{
	"usd": {Symbol: "$", Precision: 2},
	"eur": {Symbol: "€", Precision: 2},
	"gbp": {Symbol: "£", Precision: 2},
	"aud": {Symbol: "AU$", Precision: 2},
	"cad": {Symbol: "CA$", Precision: 2},
	"chf": {Symbol: "CHF", Precision: 2},
	"sek": {Symbol: "kr", Precision: 2},
	"nzd": {Symbol: "NZ$", Precision: 2},
	"hkd": {Symbol: "HK$", Precision: 2},
	"sgd": {Symbol: "S$", Precision: 2},
	"inr": {Symbol: "₹", Precision: 2},
	"brl": {Symbol: "R$", Precision: 2},
	"mxn": {Symbol: "MX$", Precision: 2},
	"try": {Symbol: "₺", Precision: 2},
	"zar": {Symbol: "R", Precision: 2},
	"myr": {Symbol: "RM", Precision: 2},
	"thb": {Symbol: "฿", Precision: 2},
	"aed": {Symbol: "د.إ", Precision: 2},

	// zero and three decimal currencies
	"jpy": {Symbol: "¥", Precision: 0},
	"krw": {Symbol: "₩", Precision: 0},
	"vnd": {Symbol: "₫", Precision: 0},
	"bhd": {Symbol: ".د.ب", Precision: 3},
	"kwd": {Symbol: "د.ك", Precision: 3},
	"omr": {Symbol: "ر.ع.", Precision: 3},
}

// DefaultCurrencyPrecision is used for currencies not present in the map
const DefaultCurrencyPrecision int32 = 2

// GetCurrencyConfig returns the config for a given currency code.
// Lookup is case-insensitive. Unknown codes get the code itself as
// symbol and 2 decimal places.
func GetCurrencyConfig(code string) CurrencyConfig {
	if config, ok := currencyConfigs[strings.ToLower(code)]; ok {
		return config
	}
	return CurrencyConfig{Symbol: code, Precision: DefaultCurrencyPrecision}
}

// GetCurrencyPrecision returns the minor-unit precision for a currency code
func GetCurrencyPrecision(code string) int32 {
	return GetCurrencyConfig(code).Precision
}

// GetCurrencySymbol returns the symbol for a given currency code
// if the code is not found, it returns the code itself
func GetCurrencySymbol(code string) string {
	return GetCurrencyConfig(code).Symbol
}

// IsValidCurrency reports whether the code is a known ISO 4217 code
func IsValidCurrency(code string) bool {
	_, ok := currencyConfigs[strings.ToLower(code)]
	return ok
}
