package sources

import "strings"

// Pair is a supported base/quote combination. The set is closed: adding a
// pair means adding a routing entry for every venue that should serve it.
type Pair int

const (
	// PairZECUSD is the ZEC/USD pair, the only pair supported today.
	PairZECUSD Pair = iota
)

// ResolvePair maps a requested currency code to a Pair. The second return
// value is false for unsupported currencies; that is a normal outcome, not
// an error.
func ResolvePair(currency string) (Pair, bool) {
	switch strings.ToUpper(strings.TrimSpace(currency)) {
	case "USD":
		return PairZECUSD, true
	default:
		return 0, false
	}
}

// String returns the unified symbol for the pair.
func (p Pair) String() string {
	switch p {
	case PairZECUSD:
		return "ZEC/USD"
	default:
		return "unknown"
	}
}
