package market

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code       string
		base       string
		quote      string
		pip        string
		quoteIsJPY bool
	}{
		{"USDJPY", "USD", "JPY", "0.01", true},
		{"EURJPY", "EUR", "JPY", "0.01", true},
		{"EURUSD", "EUR", "USD", "0.0001", false},
		{"GBPAUD", "GBP", "AUD", "0.0001", false},
		{"USDCHF", "USD", "CHF", "0.0001", false},
		// JPY in base position still gets the JPY pip size.
		{"JPYUSD", "JPY", "USD", "0.01", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()
			p := Classify(tt.code)
			assert.Equal(t, tt.code, p.Code)
			assert.Equal(t, tt.base, p.Base)
			assert.Equal(t, tt.quote, p.Quote)
			assert.True(t, decimal.RequireFromString(tt.pip).Equal(p.PipSize), "pip %s", p.PipSize)
			assert.Equal(t, tt.quoteIsJPY, p.QuoteIsJPY)
		})
	}
}

func TestClassifyShortInput(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		p := Classify("EU")
		assert.Equal(t, "EU", p.Base)
		assert.Equal(t, "", p.Quote)
		assert.False(t, p.QuoteIsJPY)
	})
}

func TestCatalogue(t *testing.T) {
	t.Parallel()

	assert.Len(t, Instruments, 16)
	assert.True(t, IsSupported("GBPCHF"))
	assert.False(t, IsSupported("XAUUSD"))

	m, ok := Lookup("USDJPY")
	assert.True(t, ok)
	assert.Equal(t, -2, m.PipLocation)
	assert.Equal(t, 3, m.DisplayDecimals)

	m, ok = Lookup("EURGBP")
	assert.True(t, ok)
	assert.Equal(t, "EUR", m.BaseCurrency)
	assert.Equal(t, "GBP", m.QuoteCurrency)
	assert.Equal(t, -4, m.PipLocation)
	assert.Equal(t, 5, m.DisplayDecimals)

	pairs := Pairs()
	assert.Len(t, pairs, 16)
	assert.Equal(t, "AUDJPY", pairs[0].Name)
	assert.Equal(t, "AUDUSD", pairs[6].Name)
	for i, p := range pairs[:6] {
		assert.Equal(t, JPY, p.QuoteCurrency, "index %d", i)
	}
}
