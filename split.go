package si

import "math"

// Split decomposes a value into a mantissa and an exponent of 10, where the
// exponent is a multiple of 3 and the mantissa's magnitude lands in
// [1, 1000). This corresponds to SI prefixes:
//
//  value = mantissa * 10 ^ exponent
//
// The mantissa is rounded to precision fractional digits, half away from
// zero. If rounding carries the mantissa up to 1000 the result is
// renormalized to the next exponent, so 999.96 at precision 1 splits to
// (1, 3) rather than (1000, 0).
//
// Zero splits to (0, 0) for any precision. The exponent may exceed the range
// of the prefix table; converting it to a symbol is the caller's concern.
// Non-finite values are out of scope and yield unspecified results.
func Split(value float64, precision int) (mantissa float64, exponent int) {
	if value == 0 {
		return 0, 0
	}

	negative := value < 0
	if negative {
		value = -value
	}

	// Align the exponent down to a multiple of 3. Non-positive exponents
	// round away from zero so the scaled mantissa stays >= 1.
	e := int(math.Log10(value))
	if e > 0 {
		exponent = e / 3 * 3
	} else {
		exponent = (-e + 3) / 3 * -3
	}

	scale := math.Pow(10, float64(-exponent))
	if math.IsInf(scale, 0) {
		// Subnormal inputs push the scale past the float64 range.
		// Apply it in two steps so the intermediate stays finite.
		half := -exponent / 2
		scale = math.Pow(10, float64(half))
		value *= math.Pow(10, float64(-exponent-half))
	}

	mantissa = round(value*scale, precision)

	if mantissa >= 1000 {
		mantissa = round(mantissa/1000, precision)
		exponent += 3
	}

	if negative {
		mantissa = -mantissa
	}

	return mantissa, exponent
}

// round rounds half away from zero to the given number of fractional digits.
func round(value float64, precision int) float64 {
	shift := math.Pow(10, float64(precision))

	return math.Round(value*shift) / shift
}
