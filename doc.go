// Package si converts between raw numeric values and SI prefix notation.
//
// The equation for a decomposed value is:
//
//  value = mantissa * 10 ^ exponent
//
// Where exponent is a multiple of 3 and the mantissa's magnitude is kept in
// [1, 1000). The exponent maps to a prefix symbol ("k" for 10^3, "m" for
// 10^-3, and so on; see the prefix package). For example:
//
//  Format(0.04781, 2)  // "47.81 m"
//  Format(4781.123, 2) // "4.78 k"
//  Format(165.382, 2)  // "165.38"
//
// Magnitudes beyond the prefix table (exponents outside ±24) fall back to
// exponential notation aligned to the same multiple-of-3 exponents:
//
//  Format(1.55051e+28, 2) // "15.51e+27"
//  Format(1e-27, 1)       // "1.0e-27"
//
// Parse inverts Format. It also accepts plain decimal and exponential
// notation:
//
//  Parse("4.78 k") // 4780
//  Parse("47.8 m") // 0.0478
//  Parse("1.5e3")  // 1500
//
// Everything operates on float64 and inherits its rounding characteristics;
// arbitrary precision is out of scope. All functions are pure and safe for
// concurrent use.
package si
