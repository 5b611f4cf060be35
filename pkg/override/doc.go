// Package override layers environment variables and direct key/value
// overrides onto an INI configuration store.
//
// The package implements the resolution step between loading configuration
// files and consuming their values: after files are merged into a store,
// a Resolver rewrites options from two further sources with a fixed
// precedence. Environment variables are applied first, direct overrides
// second, so a direct override always wins when both target the same
// option. Unset keys run last and remove options regardless of where their
// values came from.
//
// # Flat Keys
//
// Both override sources address options through flat keys of the form
// SECTION__option. The key splits at the first "__", so option names may
// themselves contain the separator. A key without a separator addresses
// the default section:
//
//	"server__port"       // option "port" in section "server"
//	"retries"            // option "retries" in the default section
//	"a__b__c"            // option "b__c" in section "a"
//
// Environment variables use the same shape with a configured prefix in
// front: with prefix "APP_", the variable APP_SERVER__PORT overrides
// server/port and APP_RETRIES overrides retries in the default section.
//
// # Policies
//
// Which overrides may create configuration that is not already in the
// store is governed by a policy, selected from the environment prefix and
// two creation flags:
//
//	prefix  new from env  new from direct  policy
//	no      no            no               PolicyNoPrefixNoNew
//	no      no            yes              PolicyNoPrefixNewDirect
//	yes     no            no               PolicyPrefixNoNew
//	yes     yes           no               PolicyPrefixNewEnv
//	yes     no            yes              PolicyPrefixNewDirect
//	yes     yes           yes              PolicyPrefixNewEnvNewDirect
//
// An empty prefix combined with creation from the environment has no
// policy: every variable in the environment would become configuration.
// SelectPolicy reports this combination with ErrPolicyNotImplemented
// before anything is written to the store.
//
// Under a no-create policy the set of sections and options never changes;
// only values of existing options are replaced. Overrides that target
// something unknown are skipped and reported at debug level, never as
// errors.
//
// # Case Handling
//
// By default resolution is case-insensitive: candidate environment
// variable names are upper-cased, section names match by case folding, and
// sections created from overrides are stored lower-cased. With
// WithCaseSensitive(true) every comparison is exact and new sections keep
// the spelling of their key.
//
// # Usage
//
//	store := inistore.New()
//	_ = store.LoadString("[server]\nport = 8080\n")
//
//	resolver := override.New(store,
//		override.WithPrefix("APP_"),
//		override.WithOverrides(override.KV{Key: "server__port", Value: "9000"}),
//	)
//	if err := resolver.Resolve(false, true); err != nil {
//		// Handle error
//	}
//
// The resolver reads the process environment by default; WithEnviron
// injects a snapshot instead, which keeps tests hermetic.
package override
