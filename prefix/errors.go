package prefix

import "github.com/zeebo/errs"

// Error is the class of errors returned by this package.
var Error = errs.Class("prefix")

var (
	ErrOutOfRange    = Error.New("exponent out of representable range")
	ErrUnknownSymbol = Error.New("unknown symbol")
)
