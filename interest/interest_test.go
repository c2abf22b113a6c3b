package interest

import (
	"bytes"
	"math"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-banking-simulator/domain"
)

func TestProject_OneDay(t *testing.T) {
	rows, err := Project(1000.0, 0.05, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.ProjectionRow{{Day: 1, Interest: 0.14, Balance: 1000.14}}, rows)
}

func TestProject_Compounds(t *testing.T) {
	rows, err := Project(1000.0, DefaultAnnualRate, 365)
	require.NoError(t, err)
	require.Len(t, rows, 365)

	for i, row := range rows {
		assert.Equal(t, i+1, row.Day)
	}
	assert.Equal(t, domain.ProjectionRow{Day: 2, Interest: 0.14, Balance: 1000.27}, rows[1])
	assert.Equal(t, domain.ProjectionRow{Day: 30, Interest: 0.14, Balance: 1004.12}, rows[29])

	// carrying the rounded balance forward would end at 1051.10
	assert.Equal(t, domain.Amount(1051.27), rows[364].Balance)
}

func TestProject_Deterministic(t *testing.T) {
	first, err := Project(2500, 0.031, 90)
	require.NoError(t, err)
	second, err := Project(2500, 0.031, 90)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProject_ZeroCases(t *testing.T) {
	rows, err := Project(0, DefaultAnnualRate, 3)
	require.NoError(t, err)
	for _, row := range rows {
		assert.Equal(t, domain.Amount(0), row.Interest)
		assert.Equal(t, domain.Amount(0), row.Balance)
	}

	rows, err = Project(100, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(100), rows[1].Balance)
}

func TestProject_Errors(t *testing.T) {
	tests := []struct {
		name    string
		rate    domain.Rate
		days    int
		wantErr error
	}{
		{"zero days", 0.05, 0, domain.ErrInvalidDayCount},
		{"negative days", 0.05, -7, domain.ErrInvalidDayCount},
		{"negative rate", -0.01, 10, domain.ErrInvalidRate},
		{"nan rate", domain.Rate(math.NaN()), 10, domain.ErrInvalidRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Project(1000, tt.rate, tt.days)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, rows)
		})
	}
}

func TestService(t *testing.T) {
	_, err := NewService(-1)
	assert.ErrorIs(t, err, domain.ErrInvalidRate)

	s, err := NewService(DefaultAnnualRate)
	require.NoError(t, err)
	assert.Equal(t, DefaultAnnualRate, s.AnnualRate())

	var buf bytes.Buffer
	s = NewLoggingService(log.NewLogfmtLogger(&buf), s)
	rows, err := s.Project(1000, 1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Contains(t, buf.String(), "method=project balance=1000.00 annual_rate=0.05 days=1 final_balance=1000.14")

	buf.Reset()
	_, err = s.Project(1000, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidDayCount)
	assert.Contains(t, buf.String(), "level=error method=project")
	assert.Contains(t, buf.String(), "final_balance=0.00")
}
