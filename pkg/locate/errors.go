package locate

import "errors"

var (
	// ErrNoConfigFiles is returned by Files when WithRequireFound is set
	// and none of the candidate locations holds the requested file.
	ErrNoConfigFiles = errors.New("no configuration files found")
)
