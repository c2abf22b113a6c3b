package domain

import "strings"

// Currency a currency code
type Currency string

// Normalize upper-cases and trims a currency code so lookups are case-insensitive.
func (c Currency) Normalize() Currency {
	return Currency(strings.ToUpper(strings.TrimSpace(string(c))))
}

// Amount a sum of money in the account or conversion currency
type Amount float64

// Rate an exchange rate, in base currency units per one unit of a currency
type Rate float64

// UnsetRate marks a currency whose exchange rate has never been recorded
const UnsetRate Rate = 0

// BaseRate is the permanent rate of the base currency
const BaseRate Rate = 1

// CurrencyInfo is a registered currency with its display name and current rate.
type CurrencyInfo struct {
	Code Currency
	Name string
	Rate Rate
}

// IsRateSet reports whether a rate has been recorded for the currency.
func (c CurrencyInfo) IsRateSet() bool {
	return c.Rate != UnsetRate
}

// Exchanged result of a conversion: the cross rate used and the converted amount
type Exchanged struct {
	Rate   Rate
	Amount Amount
}

// Account the single bank account of a session. An empty Name means unregistered.
type Account struct {
	Name     string
	Balance  Amount
	Currency Currency
}

// Registered reports whether the account has been given a name.
func (a Account) Registered() bool {
	return a.Name != ""
}

// ProjectionRow one day of an interest projection. Values are rounded for display.
type ProjectionRow struct {
	Day      int
	Interest Amount
	Balance  Amount
}
