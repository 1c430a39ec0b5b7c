package risk

// Policy holds advisory limits checked against a sizing Result. Zero disables a limit.
type Policy struct {
	// Maximum loss at the stop, percent of balance (2 = 2%).
	MaxRiskPct float64 `json:"max_risk_pct" yaml:"max_risk_pct" split_words:"true"`

	// Maximum required margin, percent of balance.
	MaxMarginPct float64 `json:"max_margin_pct" yaml:"max_margin_pct" split_words:"true"`

	// Smallest lot the broker accepts, in lots (0.01 = one step).
	MinLot float64 `json:"min_lot" yaml:"min_lot" split_words:"true"`
}

// DefaultPolicy matches a conservative retail setup.
func DefaultPolicy() Policy {
	return Policy{
		MaxRiskPct:   5,
		MaxMarginPct: 80,
		MinLot:       0.01,
	}
}
