package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPrice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "150.200", Price("USDJPY", d("150.2")))
	assert.Equal(t, "1.10225", Price("EURUSD", d("1.10225")))
	assert.Equal(t, "1.10150", Price("EURUSD", d("1.1015")))
	assert.Equal(t, "0.012", Price("JPYUSD", d("0.0123")))
}

func TestCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"600000", "¥600,000"},
		{"580800", "¥580,800"},
		{"1234567.6", "¥1,234,567.6"},
		{"1666.6666", "¥1,666.667"},
		{"0.12345", "¥0.123"},
		{"20000.000", "¥20,000"},
		{"0", "¥0"},
		{"999", "¥999"},
		{"-20000", "¥-20,000"},
		{"-0.5", "¥-0.5"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Currency(d(tt.in)), tt.in)
	}
}

func TestLotUnitsPercentRatio(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.22", Lot(d("0.22")))
	assert.Equal(t, "1.00", Lot(d("1")))
	assert.Equal(t, "0.00", Lot(decimal.Zero))
	assert.Equal(t, "88,000", Units(88000))
	assert.Equal(t, "2.00%", Percent(d("2")))
	assert.Equal(t, "1:1.5", Ratio(d("1.5")))
	assert.Equal(t, "1:2", Ratio(d("2")))
}
