package interest

import (
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-banking-simulator/domain"
)

// loggingService decorates an interest.Service with logging
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

func (s *loggingService) Project(balance domain.Amount, days int) (rows []domain.ProjectionRow, err error) {
	defer func(begin time.Time) {
		var final domain.Amount
		if len(rows) > 0 {
			final = rows[len(rows)-1].Balance
		}
		leveled(s.logger, err).Log(
			"method", "project",
			"balance", balance,
			"annual_rate", s.next.AnnualRate(),
			"days", days,
			"final_balance", final,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Project(balance, days)
}

func (s *loggingService) AnnualRate() domain.Rate {
	return s.next.AnnualRate()
}

// logger picks the level of a method record from its outcome
func leveled(l log.Logger, err error) log.Logger {
	if err != nil {
		return level.Error(l)
	}
	return level.Info(l)
}
