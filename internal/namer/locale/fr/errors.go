package fr

import "errors"

var (
	// ErrOutOfRange is returned for numbers whose magnitude reaches one million.
	ErrOutOfRange = errors.New("number out of range")
	// ErrInvalidConfiguration is returned for a dialect outside the known set.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
