package si

import "github.com/zeebo/errs"

// Error is the class of errors returned by this package.
var Error = errs.Class("si")

var (
	ErrNoNumber      = Error.New("no number found")
	ErrInvalidNumber = Error.New("invalid number")
)
