package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Amount
		wantErr error
	}{
		{"integer", "500", 500, nil},
		{"decimal with spaces", "  12.5\n", 12.5, nil},
		{"zero", "0", 0, ErrInvalidAmount},
		{"negative", "-3", 0, ErrInvalidAmount},
		{"not a number", "abc", 0, ErrInvalidAmount},
		{"empty", "", 0, ErrInvalidAmount},
		{"nan", "NaN", 0, ErrInvalidAmount},
		{"infinite", "+Inf", 0, ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Rate
		wantErr error
	}{
		{"rate", "56.0", 56, nil},
		{"zero is allowed", "0", 0, nil},
		{"negative", "-1", 0, ErrInvalidRate},
		{"garbage", "fifty", 0, ErrInvalidRate},
		{"infinite", "Inf", 0, ErrInvalidRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRate(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDays(t *testing.T) {
	days, err := ParseDays(" 30 ")
	assert.NoError(t, err)
	assert.Equal(t, 30, days)

	for _, input := range []string{"0", "-2", "1.5", "x"} {
		_, err := ParseDays(input)
		assert.ErrorIs(t, err, ErrInvalidDayCount, input)
	}
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(0.01))
	assert.ErrorIs(t, ValidateAmount(Amount(math.NaN())), ErrInvalidAmount)
	assert.ErrorIs(t, ValidateAmount(Amount(math.Inf(-1))), ErrInvalidAmount)
}

func TestAmount_Round(t *testing.T) {
	assert.Equal(t, Amount(0.14), Amount(1000.0*0.05/365.0).Round(DisplayPlaces))
	assert.Equal(t, Amount(1.01), Amount(1.005).Round(DisplayPlaces))
	assert.Equal(t, "1.79", Amount(100.0/56.0).String())
}

func TestAmount_StringNotFinite(t *testing.T) {
	assert.Equal(t, "NaN", Amount(math.NaN()).String())
	assert.Equal(t, "+Inf", Amount(math.Inf(1)).String())
}
