package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"go-banking-simulator/domain"
)

// Service interface for the single account of a session
type Service interface {
	// Register names the account. It fails once the account has a name.
	Register(name string) (domain.Account, error)

	// Deposit adds a positive amount and returns the new balance.
	Deposit(amount domain.Amount) (domain.Amount, error)

	// Withdraw removes a positive amount no larger than the balance and returns the new balance.
	Withdraw(amount domain.Amount) (domain.Amount, error)

	// Account returns a copy of the account.
	Account() domain.Account
}

// Ledger holds one account. Failed operations leave it unchanged.
type Ledger struct {
	account domain.Account

	// balance is the authoritative balance; account.Balance mirrors it.
	// Summing decimals keeps a deposit followed by an equal withdrawal exact.
	balance decimal.Decimal
}

// New returns an unregistered Ledger whose account is held in currency.
func New(currency domain.Currency) *Ledger {
	return &Ledger{
		account: domain.Account{Currency: currency.Normalize()},
	}
}

// Register sets the account name, leaving balance and currency untouched.
func (l *Ledger) Register(name string) (domain.Account, error) {
	if l.account.Registered() {
		return domain.Account{}, fmt.Errorf("register: %w: account [%v] already exists", domain.ErrInvalidState, l.account.Name)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Account{}, fmt.Errorf("register: %w: account name is empty", domain.ErrInvalidState)
	}
	l.account.Name = name
	return l.account, nil
}

// Deposit adds amount to the balance.
func (l *Ledger) Deposit(amount domain.Amount) (domain.Amount, error) {
	if err := l.checkTransaction(amount); err != nil {
		return l.account.Balance, fmt.Errorf("deposit: %w", err)
	}
	next := l.balance.Add(decimal.NewFromFloat(float64(amount)))
	if err := domain.ValidateAmount(domain.Amount(next.InexactFloat64())); err != nil {
		return l.account.Balance, fmt.Errorf("deposit %v: balance out of range: %w", amount, err)
	}
	l.setBalance(next)
	return l.account.Balance, nil
}

// Withdraw subtracts amount from the balance. The balance never goes negative.
func (l *Ledger) Withdraw(amount domain.Amount) (domain.Amount, error) {
	if err := l.checkTransaction(amount); err != nil {
		return l.account.Balance, fmt.Errorf("withdraw: %w", err)
	}
	value := decimal.NewFromFloat(float64(amount))
	if value.GreaterThan(l.balance) {
		return l.account.Balance, fmt.Errorf("withdraw %v from balance %v: %w", amount, l.account.Balance, domain.ErrInsufficientFunds)
	}
	l.setBalance(l.balance.Sub(value))
	return l.account.Balance, nil
}

// Account returns a copy of the account.
func (l *Ledger) Account() domain.Account {
	return l.account
}

func (l *Ledger) checkTransaction(amount domain.Amount) error {
	if !l.account.Registered() {
		return fmt.Errorf("%w: no account registered", domain.ErrInvalidState)
	}
	return domain.ValidateAmount(amount)
}

func (l *Ledger) setBalance(balance decimal.Decimal) {
	l.balance = balance
	l.account.Balance = domain.Amount(balance.InexactFloat64())
}
