package domain

import "github.com/shopspring/decimal"

// ReferenceCurrencyCode is the currency every amount is normalized to for
// aggregation and comparison. Its rate is 1.0 in the table below.
const ReferenceCurrencyCode = "BDT"

// Currency is a static reference entity. Rate is the multiplicative factor
// converting one unit of this currency into the reference currency, and is
// always positive.
type Currency struct {
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Symbol string          `json:"symbol"`
	Rate   decimal.Decimal `json:"rate"`
}

// DefaultCurrencies is the fixed currency table.
var DefaultCurrencies = []Currency{
	{Code: "USD", Name: "US Dollar", Symbol: "$", Rate: decimal.NewFromFloat(110.0)},
	{Code: "BDT", Name: "Bangladeshi Taka", Symbol: "৳", Rate: decimal.NewFromFloat(1.0)},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹", Rate: decimal.NewFromFloat(1.32)},
	{Code: "EUR", Name: "Euro", Symbol: "€", Rate: decimal.NewFromFloat(120.0)},
	{Code: "GBP", Name: "British Pound", Symbol: "£", Rate: decimal.NewFromFloat(140.0)},
	{Code: "BTC", Name: "Bitcoin", Symbol: "₿", Rate: decimal.NewFromFloat(4620000.0)},
	{Code: "ETH", Name: "Ethereum", Symbol: "Ξ", Rate: decimal.NewFromFloat(275000.0)},
}

// CurrencyByCode looks up a currency in the static table.
func CurrencyByCode(code string) (Currency, bool) {
	for _, c := range DefaultCurrencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}
