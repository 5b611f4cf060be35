package override

import "errors"

var (
	// ErrPolicyNotImplemented is returned when no resolution policy exists
	// for a combination of environment prefix and creation flags. Creating
	// options from the environment requires a non-empty prefix.
	ErrPolicyNotImplemented = errors.New("override policy not implemented")
)
