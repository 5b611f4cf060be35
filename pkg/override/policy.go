package override

import "fmt"

// Policy identifies one of the supported override resolution behaviors.
// Each policy fixes which of the two override sources runs and whether it
// may create sections and options that are not already in the store.
type Policy string

const (
	// PolicyNoPrefixNoNew applies direct overrides to existing targets only.
	// The environment is not consulted.
	PolicyNoPrefixNoNew Policy = "no_prefix_no_new"

	// PolicyNoPrefixNewDirect applies direct overrides, creating sections
	// and options as needed. The environment is not consulted.
	PolicyNoPrefixNewDirect Policy = "no_prefix_new_direct"

	// PolicyPrefixNoNew overrides existing options from matching
	// environment variables, then applies direct overrides to existing
	// targets. Nothing is created.
	PolicyPrefixNoNew Policy = "prefix_no_new"

	// PolicyPrefixNewEnv writes every prefixed environment variable into
	// the store, creating sections and options as needed, then applies
	// direct overrides to existing targets only.
	PolicyPrefixNewEnv Policy = "prefix_new_env"

	// PolicyPrefixNewDirect overrides existing options from the
	// environment, then applies direct overrides with creation allowed.
	PolicyPrefixNewDirect Policy = "prefix_new_direct"

	// PolicyPrefixNewEnvNewDirect allows creation from both sources: the
	// environment pass first, then direct overrides.
	PolicyPrefixNewEnvNewDirect Policy = "prefix_new_env_new_direct"
)

// SelectPolicy picks the resolution policy for a combination of environment
// prefix and creation flags. The combination of an empty prefix with
// newFromEnv set has no policy: without a prefix every environment variable
// would become configuration, so ErrPolicyNotImplemented is returned.
func SelectPolicy(envPrefix string, newFromEnv, newFromDirect bool) (Policy, error) {
	hasPrefix := envPrefix != ""
	switch {
	case !hasPrefix && !newFromEnv && !newFromDirect:
		return PolicyNoPrefixNoNew, nil
	case !hasPrefix && !newFromEnv && newFromDirect:
		return PolicyNoPrefixNewDirect, nil
	case hasPrefix && !newFromEnv && !newFromDirect:
		return PolicyPrefixNoNew, nil
	case hasPrefix && newFromEnv && !newFromDirect:
		return PolicyPrefixNewEnv, nil
	case hasPrefix && !newFromEnv && newFromDirect:
		return PolicyPrefixNewDirect, nil
	case hasPrefix && newFromEnv && newFromDirect:
		return PolicyPrefixNewEnvNewDirect, nil
	default:
		return "", fmt.Errorf("%w: env prefix %q, new from env %t, new from direct %t",
			ErrPolicyNotImplemented, envPrefix, newFromEnv, newFromDirect)
	}
}
