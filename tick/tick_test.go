package tick_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/si"
	"github.com/calebcase/si/tick"
)

func TestFormatter(t *testing.T) {
	label := tick.Formatter(2)

	require.Equal(t, "47.81 m", label(0.04781, 0))
	require.Equal(t, "4.78 k", label(4781.123, 1))

	// The position is opaque and must not affect the label.
	require.Equal(t, label(291733, 0), label(291733, 7))
}

func TestFormatterWith(t *testing.T) {
	label := tick.FormatterWith(si.Formatter{
		Precision: 1,
		Template:  "{value} {prefix}Hz",
	})

	require.Equal(t, "4.8 kHz", label(4781.123, 0))
	require.Equal(t, "165.4 Hz", label(165.382, 0))
}
