package si

import (
	"strconv"
	"strings"

	"github.com/calebcase/si/prefix"
)

// Default templates. Placeholders are replaced literally; unknown
// placeholders are left untouched.
const (
	DefaultTemplate    = "{value} {prefix}"
	DefaultExpTemplate = "{value}e{exponent}"
)

// Formatter renders values in SI prefix notation.
type Formatter struct {
	// Precision is the number of fractional digits in the rendered
	// mantissa.
	Precision int

	// Template renders values whose exponent has a prefix symbol. It may
	// contain {value} and {prefix}. Empty means DefaultTemplate.
	Template string

	// ExpTemplate renders values whose exponent is outside the prefix
	// table. It may contain {value} and {exponent}. Empty means
	// DefaultExpTemplate.
	ExpTemplate string
}

// Format renders the value. The mantissa is rendered as fixed point decimal
// text with exactly Precision fractional digits. When the exponent is within
// the prefix table, Template is used with the prefix symbol; otherwise
// ExpTemplate is used with the exponent rendered as a signed integer (an
// explicit + for positive exponents).
//
// The prefix symbol is trimmed before substitution and the rendered string is
// trimmed of surrounding whitespace, so the empty symbol at exponent 0 leaves
// no dangling separator under the default template.
//
// Format never fails for finite input.
func (f Formatter) Format(value float64) string {
	template := f.Template
	if template == "" {
		template = DefaultTemplate
	}

	expTemplate := f.ExpTemplate
	if expTemplate == "" {
		expTemplate = DefaultExpTemplate
	}

	mantissa, exponent := Split(value, f.Precision)
	text := strconv.FormatFloat(mantissa, 'f', f.Precision, 64)

	symbol, err := prefix.Symbol(exponent)
	if err == nil {
		s := strings.ReplaceAll(template, "{value}", text)
		s = strings.ReplaceAll(s, "{prefix}", strings.TrimSpace(symbol))

		return strings.TrimSpace(s)
	}

	// The table's only failure mode is an out of range exponent. Fall
	// back to exponential notation.
	sign := ""
	if exponent > 0 {
		sign = "+"
	}

	s := strings.ReplaceAll(expTemplate, "{value}", text)
	s = strings.ReplaceAll(s, "{exponent}", sign+strconv.Itoa(exponent))

	return s
}

// Format renders the value in SI prefix notation with the default templates.
func Format(value float64, precision int) string {
	return Formatter{Precision: precision}.Format(value)
}
