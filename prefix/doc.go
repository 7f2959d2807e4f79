// Package prefix provides the fixed table of SI prefixes.
//
// Each prefix symbol stands for a power of 10 whose exponent is a multiple
// of 3:
//
//  | Symbol | Exponent || Symbol | Exponent |
//  |--------|----------||--------|----------|
//  | y      | -24      || k      | +3       |
//  | z      | -21      || M      | +6       |
//  | a      | -18      || G      | +9       |
//  | f      | -15      || T      | +12      |
//  | p      | -12      || P      | +15      |
//  | n      | -9       || E      | +18      |
//  | µ      | -6       || Z      | +21      |
//  | m      | -3       || Y      | +24      |
//  | (none) | 0        ||        |          |
//
// The table is constant data. Lookups are pure, so they are safe to call from
// any goroutine without coordination. Both lookup directions are exact match:
// an exponent outside the table is an error, never clamped to the nearest
// entry.
package prefix
