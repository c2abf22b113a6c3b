package ledger

import (
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-banking-simulator/domain"
)

// loggingService decorates a ledger.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService return a new logging service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Register(name string) (account domain.Account, err error) {
	defer func(begin time.Time) {
		leveled(s.logger, err).Log(
			"method", "register",
			"name", name,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Register(name)
}

func (s *loggingService) Deposit(amount domain.Amount) (balance domain.Amount, err error) {
	defer func(begin time.Time) {
		leveled(s.logger, err).Log(
			"method", "deposit",
			"amount", amount,
			"balance", balance,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Deposit(amount)
}

func (s *loggingService) Withdraw(amount domain.Amount) (balance domain.Amount, err error) {
	defer func(begin time.Time) {
		leveled(s.logger, err).Log(
			"method", "withdraw",
			"amount", amount,
			"balance", balance,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Withdraw(amount)
}

func (s *loggingService) Account() domain.Account {
	return s.next.Account()
}

// logger picks the level of a method record from its outcome
func leveled(l log.Logger, err error) log.Logger {
	if err != nil {
		return level.Error(l)
	}
	return level.Info(l)
}
