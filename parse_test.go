package si_test

import (
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/si"
)

func TestParse(t *testing.T) {
	type TC struct {
		Input  string
		Output float64
		Mark   error
	}

	tcs := []TC{
		// Plain decimal and exponential notation.
		{"123", 123, oops.New("unexpected")},
		{"+42", 42, oops.New("unexpected")},
		{"-17", -17, oops.New("unexpected")},
		{".5", 0.5, oops.New("unexpected")},
		{"-.5", -0.5, oops.New("unexpected")},
		{"4.781", 4.781, oops.New("unexpected")},
		{"1.5e3", 1500, oops.New("unexpected")},
		{"1.5E3", 1500, oops.New("unexpected")},
		{"1e-27", 1e-27, oops.New("unexpected")},
		{"  1.5e3  ", 1500, oops.New("unexpected")},
		// SI prefix notation, as produced by Format.
		{"4.78 k", 4780, oops.New("unexpected")},
		{"47.8 m", 0.0478, oops.New("unexpected")},
		{"-47.8 m", -0.0478, oops.New("unexpected")},
		{"1.8 y", 1.8e-24, oops.New("unexpected")},
		{"369.17 Y", 3.6917e+26, oops.New("unexpected")},
		{"53.15 µ", 5.315e-05, oops.New("unexpected")},
		{"53.15 u", 5.315e-05, oops.New("unexpected")},
		{"4.78k", 4780, oops.New("unexpected")},
		// No symbol and the blank zero-exponent symbol parse alike.
		{"165.38", 165.38, oops.New("unexpected")},
		{"165.38 ", 165.38, oops.New("unexpected")},
		// "E" as a trailing symbol is exa; "e" with digits is an
		// exponent marker.
		{"2.82 E", 2.82e+18, oops.New("unexpected")},
	}

	for _, tc := range tcs {
		t.Run(tc.Input, func(t *testing.T) {
			output, err := si.Parse(tc.Input)
			require.NoError(t, err, tc.Mark)
			require.InEpsilon(t, tc.Output, output, 1e-12, tc.Mark)
		})
	}
}

func TestParseErrors(t *testing.T) {
	type TC struct {
		Input string
		Err   error
		Mark  error
	}

	tcs := []TC{
		{"", si.ErrNoNumber, oops.New("unexpected")},
		{"   ", si.ErrNoNumber, oops.New("unexpected")},
		{"e10", si.ErrNoNumber, oops.New("unexpected")},
		{" k", si.ErrNoNumber, oops.New("unexpected")},
		{"not a number", si.ErrInvalidNumber, oops.New("unexpected")},
		{"4.78 q", si.ErrInvalidNumber, oops.New("unexpected")},
		{"4.78 kk", si.ErrInvalidNumber, oops.New("unexpected")},
		{"4.78 k M", si.ErrInvalidNumber, oops.New("unexpected")},
		// A symbol combined with an explicit exponent marker is
		// ambiguous.
		{"1.5e3 k", si.ErrInvalidNumber, oops.New("unexpected")},
		{"--5", si.ErrInvalidNumber, oops.New("unexpected")},
		{"1 000", si.ErrInvalidNumber, oops.New("unexpected")},
	}

	for _, tc := range tcs {
		t.Run(tc.Input, func(t *testing.T) {
			output, err := si.Parse(tc.Input)
			require.ErrorIs(t, err, tc.Err, tc.Mark)
			require.True(t, si.Error.Has(err), tc.Mark)
			require.Equal(t, 0.0, output, tc.Mark)
		})
	}
}
