package iniconf

import "errors"

var (
	// ErrDotEnvFailed is returned by Read when a dotenv file named in
	// WithDotEnv cannot be read or parsed.
	ErrDotEnvFailed = errors.New("failed to read dotenv file")
)
