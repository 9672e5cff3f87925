package cambio

import "slices"

// translationLanguage is the translation preferred for display names.
const translationLanguage = "por"

// specialNames overrides display names the directory gets wrong or leaves untranslated.
var specialNames = map[string]string{
	"US": "Estados Unidos",
	"GB": "Reino Unido",
	"NZ": "Nova Zelândia",
}

// pinnedQuery is the folded query that always lists pinnedRegion first.
const (
	pinnedQuery  = "usd"
	pinnedRegion = "US"
)

// supportedCurrencies are the currency codes the rate provider can convert.
// The currency-restricted directory only keeps countries using one of these.
var supportedCurrencies = map[string]bool{
	"AED": true, "AFN": true, "ALL": true, "AMD": true, "ANG": true, "AOA": true,
	"ARS": true, "AUD": true, "AZN": true, "BAM": true, "BBD": true, "BDT": true,
	"BGN": true, "BHD": true, "BIF": true, "BND": true, "BOB": true, "BRL": true,
	"BSD": true, "BWP": true, "BYN": true, "BZD": true, "CAD": true, "CHF": true,
	"CLP": true, "CNY": true, "COP": true, "CRC": true, "CUP": true, "CVE": true,
	"CZK": true, "DJF": true, "DKK": true, "DOP": true, "DZD": true, "EGP": true,
	"ETB": true, "EUR": true, "FJD": true, "GBP": true, "GEL": true, "GHS": true,
	"GMD": true, "GNF": true, "GTQ": true, "HKD": true, "HNL": true, "HRK": true,
	"HTG": true, "HUF": true, "IDR": true, "ILS": true, "INR": true, "IQD": true,
	"IRR": true, "ISK": true, "JMD": true, "JOD": true, "JPY": true, "KES": true,
	"KGS": true, "KHR": true, "KMF": true, "KRW": true, "KWD": true, "KYD": true,
	"KZT": true, "LAK": true, "LBP": true, "LKR": true, "LSL": true, "LYD": true,
	"MAD": true, "MDL": true, "MGA": true, "MKD": true, "MMK": true, "MNT": true,
	"MOP": true, "MUR": true, "MVR": true, "MWK": true, "MXN": true, "MYR": true,
	"MZN": true, "NAD": true, "NGN": true, "NIO": true, "NOK": true, "NPR": true,
	"NZD": true, "OMR": true, "PAB": true, "PEN": true, "PGK": true, "PHP": true,
	"PKR": true, "PLN": true, "PYG": true, "QAR": true, "RON": true, "RSD": true,
	"RUB": true, "RWF": true, "SAR": true, "SCR": true, "SDG": true, "SEK": true,
	"SGD": true, "SLL": true, "SOS": true, "SYP": true, "SZL": true, "THB": true,
	"TJS": true, "TMT": true, "TND": true, "TRY": true, "TTD": true, "TWD": true,
	"TZS": true, "UAH": true, "UGX": true, "USD": true, "UYU": true, "UZS": true,
	"VES": true, "VND": true, "XAF": true, "XCD": true, "XOF": true, "XPF": true,
	"YER": true, "ZAR": true, "ZMW": true,
}

// Supported reports whether code is in the convertible currency allow-list.
func Supported(code string) bool { return supportedCurrencies[code] }

// SupportedCodes returns the allow-listed currency codes, sorted.
func SupportedCodes() []string {
	codes := make([]string, 0, len(supportedCurrencies))
	for c := range supportedCurrencies {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	return codes
}

// displayName resolves the name shown for a record.
func displayName(r Record) string {
	name := r.Translations[translationLanguage]
	if name == "" {
		name = r.Common
	}
	if special, ok := specialNames[r.Code]; ok {
		name = special
	}
	return name
}
