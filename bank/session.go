// Package bank assembles the account ledger, currency registry and interest projector
// a terminal shell holds for the lifetime of one run. Its methods take raw input lines
// so malformed numbers surface as typed errors rather than crashing the shell.
package bank

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-banking-simulator/config"
	"go-banking-simulator/domain"
	"go-banking-simulator/exchange"
	"go-banking-simulator/interest"
	"go-banking-simulator/ledger"
)

// Session one account, one currency registry and the interest policy of a run
type Session struct {
	ledger   ledger.Service
	exchange exchange.Service
	interest interest.Service
}

// NewSession seeds the default currencies, opens an unregistered account in the base
// currency and decorates every component with logging.
func NewSession(cfg config.Config, logger log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	exchangeService, err := exchange.NewService(exchange.DefaultBase, exchange.DefaultCurrencies())
	if err != nil {
		return nil, fmt.Errorf("seeding currencies: %w", err)
	}
	exchangeService = exchange.NewLoggingService(log.With(logger, "component", "exchange"), exchangeService)

	var ledgerService ledger.Service = ledger.New(exchangeService.Base().Code)
	ledgerService = ledger.NewLoggingService(log.With(logger, "component", "ledger"), ledgerService)

	interestService, err := interest.NewService(cfg.InterestRate)
	if err != nil {
		return nil, err
	}
	interestService = interest.NewLoggingService(log.With(logger, "component", "interest"), interestService)

	level.Info(logger).Log(
		"msg", "session ready",
		"base_currency", exchangeService.Base().Code,
		"interest_rate", cfg.InterestRate,
	)

	return &Session{
		ledger:   ledgerService,
		exchange: exchangeService,
		interest: interestService,
	}, nil
}

// Register names the account.
func (s *Session) Register(name string) (domain.Account, error) {
	return s.ledger.Register(name)
}

// Deposit parses input as an amount and deposits it. An unregistered account is
// reported before the input is looked at.
func (s *Session) Deposit(input string) (domain.Amount, error) {
	if !s.ledger.Account().Registered() {
		return 0, fmt.Errorf("deposit: %w: no account registered", domain.ErrInvalidState)
	}
	amount, err := domain.ParseAmount(input)
	if err != nil {
		return s.ledger.Account().Balance, fmt.Errorf("deposit: %w", err)
	}
	return s.ledger.Deposit(amount)
}

// Withdraw parses input as an amount and withdraws it. An unregistered account is
// reported before the input is looked at.
func (s *Session) Withdraw(input string) (domain.Amount, error) {
	if !s.ledger.Account().Registered() {
		return 0, fmt.Errorf("withdraw: %w: no account registered", domain.ErrInvalidState)
	}
	amount, err := domain.ParseAmount(input)
	if err != nil {
		return s.ledger.Account().Balance, fmt.Errorf("withdraw: %w", err)
	}
	return s.ledger.Withdraw(amount)
}

// Account returns a copy of the account.
func (s *Session) Account() domain.Account {
	return s.ledger.Account()
}

// Currencies lists the currencies a shell can offer, in seed order.
func (s *Session) Currencies() []domain.CurrencyInfo {
	return s.exchange.Currencies()
}

// RecordRate parses input as a rate and records it for code.
func (s *Session) RecordRate(code string, input string) (domain.CurrencyInfo, error) {
	currency, err := s.exchange.Lookup(domain.Currency(code))
	if err != nil {
		return domain.CurrencyInfo{}, err
	}
	if currency.Code == s.exchange.Base().Code {
		// the base rate is refused whatever the input, so skip parsing
		return s.exchange.RecordRate(currency.Code, domain.BaseRate)
	}
	rate, err := domain.ParseRate(input)
	if err != nil {
		return domain.CurrencyInfo{}, fmt.Errorf("record rate [%v]: %w", currency.Code, err)
	}
	return s.exchange.RecordRate(currency.Code, rate)
}

// Convert parses input as an amount and converts it between two currency codes.
func (s *Session) Convert(input string, from string, to string) (domain.Exchanged, error) {
	amount, err := domain.ParseAmount(input)
	if err != nil {
		return domain.Exchanged{}, fmt.Errorf("convert: %w", err)
	}
	return s.exchange.Convert(amount, domain.Currency(from), domain.Currency(to))
}

// Project parses input as a day count and projects the current balance at the policy rate.
func (s *Session) Project(input string) ([]domain.ProjectionRow, error) {
	days, err := domain.ParseDays(input)
	if err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}
	return s.interest.Project(s.ledger.Account().Balance, days)
}

// InterestRate the annual policy rate used by Project.
func (s *Session) InterestRate() domain.Rate {
	return s.interest.AnnualRate()
}
