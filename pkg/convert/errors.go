package convert

import "errors"

var (
	// ErrInvalidParameters is returned for option combinations that cannot
	// be honored, such as include and exclude filters used together.
	ErrInvalidParameters = errors.New("invalid conversion parameters")

	// ErrDecodeFailed wraps all failures while materializing store content
	// into a struct.
	ErrDecodeFailed = errors.New("failed to decode configuration into struct")
)
