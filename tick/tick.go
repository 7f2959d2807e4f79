// Package tick adapts SI prefix formatting to the axis tick labeling
// callbacks of plotting libraries: the library hands back the tick's value
// and position and expects display text in return.
package tick

import "github.com/calebcase/si"

// Func labels the tick at the given value. The position argument is the
// tick's index on the axis; it does not affect the label.
type Func func(value float64, position int) string

// Formatter returns a tick labeling callback using the default templates.
func Formatter(precision int) Func {
	return FormatterWith(si.Formatter{Precision: precision})
}

// FormatterWith returns a tick labeling callback using the given formatter.
func FormatterWith(f si.Formatter) Func {
	return func(value float64, _ int) string {
		return f.Format(value)
	}
}
