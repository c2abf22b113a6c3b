package exchange

import "go-banking-simulator/domain"

// DefaultBase the base currency of the default seed
const DefaultBase domain.Currency = "PHP"

// DefaultCurrencies the currencies a session starts with. Only the base has a rate.
func DefaultCurrencies() []domain.CurrencyInfo {
	return []domain.CurrencyInfo{
		{Code: "PHP", Name: "Philippine Peso", Rate: domain.BaseRate},
		{Code: "USD", Name: "United States Dollar"},
		{Code: "JPY", Name: "Japanese Yen"},
		{Code: "GBP", Name: "British Pound Sterling"},
		{Code: "EUR", Name: "Euro"},
		{Code: "CNY", Name: "Chinese Yuan Renminbi"},
	}
}
