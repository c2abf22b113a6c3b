package exchange

import (
	"fmt"

	"go-banking-simulator/domain"
)

// Service interface for the currency registry and cross-rate conversions
type Service interface {
	// Lookup finds a currency by code, ignoring case.
	Lookup(code domain.Currency) (domain.CurrencyInfo, error)

	// RecordRate overwrites the rate of a non-base currency.
	RecordRate(code domain.Currency, rate domain.Rate) (domain.CurrencyInfo, error)

	// Convert converts amount from one currency to another through the base currency.
	Convert(amount domain.Amount, from domain.Currency, to domain.Currency) (domain.Exchanged, error)

	// Currencies lists the registered currencies in seed order.
	Currencies() []domain.CurrencyInfo

	// Base returns the base currency.
	Base() domain.CurrencyInfo
}

// Registry owns the seeded set of currencies. Rates change only through RecordRate
// and the base currency rate stays at domain.BaseRate.
type Registry struct {
	// currencies indexed by normalized code
	currencies map[domain.Currency]*domain.CurrencyInfo

	// order codes in seed order, for display
	order []domain.Currency

	// base code of the base currency
	base domain.Currency
}

// NewRegistry returns an empty, unseeded Registry
func NewRegistry() *Registry {
	return &Registry{
		currencies: map[domain.Currency]*domain.CurrencyInfo{},
	}
}

// NewService constructs a Service seeded with currencies, base being the pivot currency.
func NewService(base domain.Currency, currencies []domain.CurrencyInfo) (Service, error) {
	r := NewRegistry()
	if err := r.Seed(base, currencies); err != nil {
		return nil, err
	}
	return r, nil
}

// Seed initializes the fixed currency set. The base currency gets domain.BaseRate and
// every other currency starts unset, whatever rate was supplied. Seed runs once.
func (r *Registry) Seed(base domain.Currency, currencies []domain.CurrencyInfo) error {
	if len(r.order) > 0 {
		return fmt.Errorf("seed: %w: registry already seeded", domain.ErrInvalidState)
	}
	base = base.Normalize()

	seeded := map[domain.Currency]*domain.CurrencyInfo{}
	order := make([]domain.Currency, 0, len(currencies))
	for _, c := range currencies {
		code := c.Code.Normalize()
		if code == "" {
			return fmt.Errorf("seed: %w: empty currency code", domain.ErrUnknownCurrency)
		}
		if _, ok := seeded[code]; ok {
			return fmt.Errorf("seed: duplicate currency [%v]", code)
		}
		rate := domain.UnsetRate
		if code == base {
			rate = domain.BaseRate
		}
		seeded[code] = &domain.CurrencyInfo{Code: code, Name: c.Name, Rate: rate}
		order = append(order, code)
	}
	if _, ok := seeded[base]; !ok {
		return fmt.Errorf("seed: base currency [%v]: %w", base, domain.ErrUnknownCurrency)
	}

	r.currencies = seeded
	r.order = order
	r.base = base
	return nil
}

// Lookup finds a currency by code, ignoring case.
func (r *Registry) Lookup(code domain.Currency) (domain.CurrencyInfo, error) {
	c, ok := r.currencies[code.Normalize()]
	if !ok {
		return domain.CurrencyInfo{}, fmt.Errorf("lookup [%v]: %w", code, domain.ErrUnknownCurrency)
	}
	return *c, nil
}

// RecordRate overwrites the rate of a non-base currency. Recording 0 clears the rate.
func (r *Registry) RecordRate(code domain.Currency, rate domain.Rate) (domain.CurrencyInfo, error) {
	c, ok := r.currencies[code.Normalize()]
	if !ok {
		return domain.CurrencyInfo{}, fmt.Errorf("record rate [%v]: %w", code, domain.ErrUnknownCurrency)
	}
	if c.Code == r.base {
		return domain.CurrencyInfo{}, fmt.Errorf("record rate [%v]: %w", c.Code, domain.ErrImmutableBaseRate)
	}
	if err := domain.ValidateRate(rate); err != nil {
		return domain.CurrencyInfo{}, fmt.Errorf("record rate [%v]: %w", c.Code, err)
	}
	c.Rate = rate
	return *c, nil
}

// Convert computes amount * rate(from) / rate(to). Both rates are base currency units
// per unit, so the base cancels out and the result is in units of to.
func (r *Registry) Convert(amount domain.Amount, from domain.Currency, to domain.Currency) (domain.Exchanged, error) {
	source, err := r.Lookup(from)
	if err != nil {
		return domain.Exchanged{}, fmt.Errorf("convert from [%v]: %w", from, err)
	}
	target, err := r.Lookup(to)
	if err != nil {
		return domain.Exchanged{}, fmt.Errorf("convert to [%v]: %w", to, err)
	}
	if !source.IsRateSet() {
		return domain.Exchanged{}, fmt.Errorf("convert from [%v]: %w", source.Code, domain.ErrRateNotSet)
	}
	if !target.IsRateSet() {
		return domain.Exchanged{}, fmt.Errorf("convert to [%v]: %w", target.Code, domain.ErrRateNotSet)
	}
	if err := domain.ValidateAmount(amount); err != nil {
		return domain.Exchanged{}, fmt.Errorf("convert [%v -> %v]: %w", source.Code, target.Code, err)
	}
	if source.Code == target.Code {
		return domain.Exchanged{Rate: 1, Amount: amount}, nil
	}

	result := domain.Exchanged{
		Rate:   source.Rate / target.Rate,
		Amount: domain.Amount(float64(amount) * float64(source.Rate) / float64(target.Rate)),
	}
	return result, nil
}

// Currencies lists the registered currencies in seed order.
func (r *Registry) Currencies() []domain.CurrencyInfo {
	out := make([]domain.CurrencyInfo, 0, len(r.order))
	for _, code := range r.order {
		out = append(out, *r.currencies[code])
	}
	return out
}

// Base returns the base currency. The zero value is returned before seeding.
func (r *Registry) Base() domain.CurrencyInfo {
	c, ok := r.currencies[r.base]
	if !ok {
		return domain.CurrencyInfo{}
	}
	return *c
}
