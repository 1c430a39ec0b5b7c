// market/instruments.go
package market

import "sort"

// PairMeta describes a currency pair offered for sizing.
type PairMeta struct {
	Name          string
	BaseCurrency  string
	QuoteCurrency string
	PipLocation   int
	// DisplayDecimals is the number of price decimals shown for the pair.
	DisplayDecimals int
}

func meta(code string) PairMeta {
	p := Classify(code)
	m := PairMeta{
		Name:            code,
		BaseCurrency:    p.Base,
		QuoteCurrency:   p.Quote,
		PipLocation:     -4,
		DisplayDecimals: 5,
	}
	if p.HasJPY() {
		m.PipLocation = -2
		m.DisplayDecimals = 3
	}
	return m
}

// Instruments is the catalogue of supported pairs keyed by pair code.
var Instruments = map[string]PairMeta{
	"USDJPY": meta("USDJPY"),
	"EURJPY": meta("EURJPY"),
	"GBPJPY": meta("GBPJPY"),
	"AUDJPY": meta("AUDJPY"),
	"CADJPY": meta("CADJPY"),
	"CHFJPY": meta("CHFJPY"),
	"EURUSD": meta("EURUSD"),
	"GBPUSD": meta("GBPUSD"),
	"AUDUSD": meta("AUDUSD"),
	"USDCAD": meta("USDCAD"),
	"USDCHF": meta("USDCHF"),
	"EURGBP": meta("EURGBP"),
	"EURAUD": meta("EURAUD"),
	"EURCHF": meta("EURCHF"),
	"GBPAUD": meta("GBPAUD"),
	"GBPCHF": meta("GBPCHF"),
}

// Lookup returns the catalogue entry for code.
func Lookup(code string) (PairMeta, bool) {
	m, ok := Instruments[code]
	return m, ok
}

// IsSupported reports whether code is in the catalogue.
func IsSupported(code string) bool {
	_, ok := Instruments[code]
	return ok
}

// Pairs returns the catalogue sorted with JPY-quoted pairs first, then by code.
func Pairs() []PairMeta {
	out := make([]PairMeta, 0, len(Instruments))
	for _, m := range Instruments {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		ji, jj := out[i].QuoteCurrency == JPY, out[j].QuoteCurrency == JPY
		if ji != jj {
			return ji
		}
		return out[i].Name < out[j].Name
	})
	return out
}
