package override

import (
	"os"
	"strings"
)

// Environ is a snapshot of environment variables used during resolution.
// Working on a snapshot keeps a resolution run deterministic and lets
// callers inject synthetic environments.
type Environ map[string]string

// OSEnviron captures the current process environment.
func OSEnviron() Environ {
	environ := os.Environ()
	env := make(Environ, len(environ))
	for _, kv := range environ {
		if name, value, ok := strings.Cut(kv, "="); ok {
			env[name] = value
		}
	}
	return env
}
