package interest

import (
	"fmt"

	"go-banking-simulator/domain"
)

// DefaultAnnualRate the policy interest rate, 5% a year
const DefaultAnnualRate domain.Rate = 0.05

// DaysPerYear days the annual rate is spread over
const DaysPerYear = 365.0

// Project compounds balance daily at annualRate for days days. Each row is rounded for
// display while the unrounded balance is carried into the next day.
func Project(balance domain.Amount, annualRate domain.Rate, days int) ([]domain.ProjectionRow, error) {
	if days < 1 {
		return nil, fmt.Errorf("project %d days: %w", days, domain.ErrInvalidDayCount)
	}
	if err := domain.ValidateRate(annualRate); err != nil {
		return nil, fmt.Errorf("project at annual rate %v: %w", annualRate, err)
	}

	daily := float64(annualRate) / DaysPerYear
	running := float64(balance)
	rows := make([]domain.ProjectionRow, 0, days)
	for day := 1; day <= days; day++ {
		accrued := running * daily
		running += accrued
		rows = append(rows, domain.ProjectionRow{
			Day:      day,
			Interest: domain.Amount(accrued).Round(domain.DisplayPlaces),
			Balance:  domain.Amount(running).Round(domain.DisplayPlaces),
		})
	}
	return rows, nil
}

// Service interface for interest projections at a fixed policy rate
type Service interface {
	// Project projects balance over days at the policy rate.
	Project(balance domain.Amount, days int) ([]domain.ProjectionRow, error)

	// AnnualRate the policy rate used by Project.
	AnnualRate() domain.Rate
}

type service struct {
	// annualRate policy rate, validated on construction
	annualRate domain.Rate
}

// NewService constructs a Service projecting at annualRate.
func NewService(annualRate domain.Rate) (Service, error) {
	if err := domain.ValidateRate(annualRate); err != nil {
		return nil, fmt.Errorf("interest policy: %w", err)
	}
	return &service{annualRate: annualRate}, nil
}

func (s *service) Project(balance domain.Amount, days int) ([]domain.ProjectionRow, error) {
	return Project(balance, s.annualRate, days)
}

func (s *service) AnnualRate() domain.Rate {
	return s.annualRate
}
