package inistore

import "errors"

var (
	// ErrLoadFailed is returned when an INI source cannot be parsed.
	ErrLoadFailed = errors.New("failed to load ini source")

	// ErrNoSection is returned when an operation targets a section that
	// does not exist in the store.
	ErrNoSection = errors.New("no such section")

	// ErrNoOption is returned when a requested option is present neither
	// in the target section nor in the default section.
	ErrNoOption = errors.New("no such option")

	// ErrDuplicateSection is returned by AddSection for sections that
	// already exist.
	ErrDuplicateSection = errors.New("section already exists")

	// ErrInvalidSection is returned for section names that cannot be
	// created, such as the empty string or the default section name.
	ErrInvalidSection = errors.New("invalid section name")

	// ErrInvalidOption is returned when an option name normalizes to the
	// empty string.
	ErrInvalidOption = errors.New("invalid option name")

	// ErrInvalidValue is returned by typed getters when a stored value
	// cannot be converted to the requested type.
	ErrInvalidValue = errors.New("cannot convert option value")
)
