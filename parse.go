package si

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/calebcase/si/prefix"
)

// Numeric notation: optional sign, digits, optional fraction, optional
// exponent marker. Anything float-parsable.
var creNumber = regexp.MustCompile(
	`^(?P<sign>[+\-])?` +
		`(?P<integer>\d+)?` +
		`(?P<fraction>\.\d+)?` +
		`(?:[eE][+\-]?\d+)?$`,
)

// SI notation: optional sign, digits, optional fraction, at most one
// trailing prefix symbol separated by at most one space. A bare space in the
// symbol position denotes the exponent 0 entry.
var creSINumber = regexp.MustCompile(
	`^(?P<sign>[+\-])?` +
		`(?P<integer>\d+)?` +
		`(?P<fraction>\.\d+)?` +
		` ?(?P<symbol>[yzafpnµum kMGTPEZY])?$`,
)

// Parse converts text in SI prefix notation (as produced by Format) or plain
// decimal/exponential notation to a value.
//
// Text with no digits returns ErrNoNumber. Text that fits neither notation,
// including multiple trailing symbols or a symbol combined with an explicit
// exponent marker, returns ErrInvalidNumber.
func Parse(text string) (value float64, err error) {
	text = strings.TrimSpace(text)

	if m := creNumber.FindStringSubmatch(text); m != nil {
		if !hasDigits(creNumber, m) {
			return 0, ErrNoNumber
		}

		value, err = strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, Error.Wrap(err)
		}

		return value, nil
	}

	m := creSINumber.FindStringSubmatch(text)
	if m == nil {
		return 0, ErrInvalidNumber
	}
	if !hasDigits(creSINumber, m) {
		return 0, ErrNoNumber
	}

	number := m[creSINumber.SubexpIndex("sign")] +
		m[creSINumber.SubexpIndex("integer")] +
		m[creSINumber.SubexpIndex("fraction")]

	value, err = strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, Error.Wrap(err)
	}

	exponent, err := prefix.Exponent(m[creSINumber.SubexpIndex("symbol")])
	if err != nil {
		return 0, ErrInvalidNumber
	}

	return value * math.Pow(10, float64(exponent)), nil
}

func hasDigits(cre *regexp.Regexp, m []string) bool {
	return m[cre.SubexpIndex("integer")] != "" ||
		m[cre.SubexpIndex("fraction")] != ""
}
