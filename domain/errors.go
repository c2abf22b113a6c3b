package domain

import "errors"

var (
	// ErrInvalidState an account precondition (registered or not yet registered) does not hold
	ErrInvalidState = errors.New("invalid account state")

	// ErrInvalidAmount an amount is non-numeric, non-finite, zero or negative
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds a withdrawal exceeds the balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUnknownCurrency a currency code is not in the registry
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrInvalidRate a rate is non-numeric, non-finite or negative
	ErrInvalidRate = errors.New("invalid rate")

	// ErrImmutableBaseRate the base currency rate cannot be overwritten
	ErrImmutableBaseRate = errors.New("base currency rate is fixed")

	// ErrRateNotSet a conversion needs a rate that was never recorded
	ErrRateNotSet = errors.New("exchange rate not set")

	// ErrInvalidDayCount a projection was requested for fewer than one day
	ErrInvalidDayCount = errors.New("invalid day count")
)
