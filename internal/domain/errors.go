package domain

import "errors"

var (
	ErrFieldOutOfRange      = errors.New("date-time field out of range")
	ErrUnknownTimezone      = errors.New("unknown timezone")
	ErrInvalidRange         = errors.New("start must not be after end")
	ErrBoundaryNotMonotonic = errors.New("calendar boundary did not advance")
)
