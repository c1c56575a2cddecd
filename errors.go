package everyuuid

import "errors"

var (
	// ErrOutOfRange is returned when an index is not within [0, 2^122).
	ErrOutOfRange = errors.New("everyuuid; index out of range")
	// ErrInvalidFormat is returned when an identifier is not a canonical
	// hyphenated hex string, or its version or variant bits are wrong.
	ErrInvalidFormat = errors.New("everyuuid; invalid identifier format")
	// ErrInvalidIndex is returned when index input is not a base 10 integer.
	ErrInvalidIndex = errors.New("everyuuid; invalid index")
)
