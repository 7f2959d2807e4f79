package prefix

import "math"

// Entry pairs an SI prefix symbol with its exponent of 10.
type Entry struct {
	Symbol   string
	Exponent int
}

// Match returns true if this entry's symbol matches the given symbol.
func (e Entry) Match(symbol string) bool {
	if e.Symbol == symbol {
		return true
	}

	// ASCII spellings of the zero and micro symbols.
	switch e.Exponent {
	case 0:
		return symbol == " "
	case -6:
		return symbol == "u"
	}

	return false
}

// Table is the full set of SI prefixes in exponent order. Exponents are
// multiples of 3 covering -24 to +24. The exponent 0 entry has the empty
// symbol.
var Table = []Entry{
	{"y", -24},
	{"z", -21},
	{"a", -18},
	{"f", -15},
	{"p", -12},
	{"n", -9},
	{"µ", -6},
	{"m", -3},
	{"", 0},
	{"k", 3},
	{"M", 6},
	{"G", 9},
	{"T", 12},
	{"P", 15},
	{"E", 18},
	{"Z", 21},
	{"Y", 24},
}

// Symbol returns the SI prefix symbol for an exponent of 10. If the exponent
// is not one of the multiples of 3 in [-24, 24] it returns ErrOutOfRange. It
// never clamps.
func Symbol(exponent int) (symbol string, err error) {
	for _, e := range Table {
		if e.Exponent == exponent {
			return e.Symbol, nil
		}
	}

	return "", ErrOutOfRange
}

// Exponent returns the exponent of 10 for an SI prefix symbol. The empty
// string and a single space both denote the exponent 0 entry. "u" is accepted
// as an alias for "µ". Unknown symbols return ErrUnknownSymbol.
func Exponent(symbol string) (exponent int, err error) {
	for _, e := range Table {
		if e.Match(symbol) {
			return e.Exponent, nil
		}
	}

	return 0, ErrUnknownSymbol
}

// Scale returns the multiple associated with an SI prefix symbol, e.g. 1000
// for "k" and 1e-6 for "µ".
func Scale(symbol string) (scale float64, err error) {
	exponent, err := Exponent(symbol)
	if err != nil {
		return 0, err
	}

	return math.Pow(10, float64(exponent)), nil
}
