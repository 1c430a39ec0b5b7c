package market

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNotionalInJPY_JPYQuote(t *testing.T) {
	t.Parallel()

	got, err := NotionalInJPY("USDJPY", 100000, d("150.00"), decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "15000000", got.String())

	got, err = NotionalInJPY("EURJPY", 22000, d("165.00"), decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "3630000", got.String())

	// Rate is ignored for JPY quoted pairs.
	got, err = NotionalInJPY("EURJPY", 1000, d("165.50"), d("999"))
	require.NoError(t, err)
	assert.Equal(t, "165500", got.String())

	got, err = NotionalInJPY("USDJPY", 0, d("150.00"), decimal.Zero)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestNotionalInJPY_CrossPairs(t *testing.T) {
	t.Parallel()

	// One formula for every base currency: units × entry × quote/JPY.
	tests := []struct {
		pair  string
		units int64
		entry string
		rate  string
		want  string
	}{
		{"EURUSD", 88000, "1.1000", "150.00", "14520000"},
		{"GBPUSD", 10000, "1.2500", "150.00", "1875000"},
		{"AUDUSD", 10000, "0.6500", "150.00", "975000"},
		{"USDCAD", 10000, "1.3600", "110.00", "1496000"},
		{"USDCHF", 10000, "0.9000", "170.00", "1530000"},
		{"EURGBP", 10000, "0.8500", "190.00", "1615000"},
		{"EURAUD", 10000, "1.6500", "100.00", "1650000"},
		{"EURCHF", 10000, "0.9500", "170.00", "1615000"},
		{"GBPAUD", 50000, "1.9000", "100.00", "9500000"},
		{"GBPCHF", 10000, "1.1000", "170.00", "1870000"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.pair, func(t *testing.T) {
			t.Parallel()
			got, err := NotionalInJPY(tt.pair, tt.units, d(tt.entry), d(tt.rate))
			require.NoError(t, err)
			assert.True(t, d(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestNotionalInJPY_MissingRate(t *testing.T) {
	t.Parallel()

	for _, rate := range []decimal.Decimal{decimal.Zero, d("-1")} {
		_, err := NotionalInJPY("EURUSD", 100000, d("1.1000"), rate)
		assert.True(t, errors.Is(err, ErrMissingConversionRate))

		_, err = MarginJPY("GBPAUD", 50000, d("1.9000"), d("25"), rate)
		assert.ErrorIs(t, err, ErrMissingConversionRate)
	}
}

func TestMarginJPY(t *testing.T) {
	t.Parallel()

	got, err := MarginJPY("USDJPY", 100000, d("150.00"), d("25"), decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "600000", got.String())

	got, err = MarginJPY("EURUSD", 88000, d("1.1000"), d("25"), d("150.00"))
	require.NoError(t, err)
	assert.Equal(t, "580800", got.String())

	_, err = MarginJPY("USDJPY", 100000, d("150.00"), decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidLeverage)
}

func TestQuoteToJPYRate(t *testing.T) {
	t.Parallel()

	r, err := QuoteToJPYRate("GBPJPY", decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "1", r.String())

	r, err = QuoteToJPYRate("EURGBP", d("190"))
	require.NoError(t, err)
	assert.Equal(t, "190", r.String())
}
