package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValidateAmount checks that amount is a finite number greater than zero.
func ValidateAmount(amount Amount) error {
	f := float64(amount)
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	return nil
}

// ValidateRate checks that rate is a finite number, zero or greater.
func ValidateRate(rate Rate) error {
	f := float64(rate)
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRate, rate)
	}
	return nil
}

// ParseAmount parses one line of user input as a positive amount.
func ParseAmount(s string) (Amount, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	amount := Amount(f)
	if err := ValidateAmount(amount); err != nil {
		return 0, err
	}
	return amount, nil
}

// ParseRate parses one line of user input as an exchange or interest rate.
func ParseRate(s string) (Rate, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidRate, s)
	}
	rate := Rate(f)
	if err := ValidateRate(rate); err != nil {
		return 0, err
	}
	return rate, nil
}

// ParseDays parses one line of user input as a day count of at least one.
func ParseDays(s string) (int, error) {
	days, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidDayCount, s)
	}
	if days < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDayCount, days)
	}
	return days, nil
}
