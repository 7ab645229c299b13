package strategy

import "strings"

// Type identifies one of the supported trading strategies. Keeping this a
// closed enum makes the dispatch in Evaluate a compile-visible switch instead
// of a string comparison scattered over the rules.
type Type int

const (
	TypeUnknown Type = iota
	TypeDCA
	TypeGridTrading
	TypeMomentum
	TypeMeanReversion
)

// ParseType maps a strategy tag to its Type. Matching is case-insensitive;
// unrecognized tags map to TypeUnknown, which evaluates to a hold.
func ParseType(tag string) Type {
	switch strings.ToLower(tag) {
	case "dca":
		return TypeDCA
	case "grid-trading":
		return TypeGridTrading
	case "momentum":
		return TypeMomentum
	case "mean-reversion":
		return TypeMeanReversion
	default:
		return TypeUnknown
	}
}

// String returns the canonical tag for the strategy type.
func (t Type) String() string {
	switch t {
	case TypeDCA:
		return "dca"
	case TypeGridTrading:
		return "grid-trading"
	case TypeMomentum:
		return "momentum"
	case TypeMeanReversion:
		return "mean-reversion"
	default:
		return "unknown"
	}
}
