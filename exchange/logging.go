package exchange

import (
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-banking-simulator/domain"
)

// loggingService decorates an exchange.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Lookup(code domain.Currency) (c domain.CurrencyInfo, err error) {
	defer func(begin time.Time) {
		leveled(s.logger, err).Log(
			"method", "lookup",
			"currency", code,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Lookup(code)
}

func (s *loggingService) RecordRate(code domain.Currency, rate domain.Rate) (c domain.CurrencyInfo, err error) {
	defer func(begin time.Time) {
		leveled(s.logger, err).Log(
			"method", "record_rate",
			"currency", code,
			"rate", rate,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.RecordRate(code, rate)
}

func (s *loggingService) Convert(amount domain.Amount, from domain.Currency, to domain.Currency) (ex domain.Exchanged, err error) {
	defer func(begin time.Time) {
		leveled(s.logger, err).Log(
			"method", "convert",
			"amount", amount,
			"from", from,
			"to", to,
			"rate", ex.Rate,
			"converted_amount", ex.Amount,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Convert(amount, from, to)
}

func (s *loggingService) Currencies() []domain.CurrencyInfo {
	return s.next.Currencies()
}

func (s *loggingService) Base() domain.CurrencyInfo {
	return s.next.Base()
}

// logger picks the level of a method record from its outcome
func leveled(l log.Logger, err error) log.Logger {
	if err != nil {
		return level.Error(l)
	}
	return level.Info(l)
}
