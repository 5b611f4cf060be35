package iniconf

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/dmitrymomot/iniconf/pkg/inistore"
	"github.com/dmitrymomot/iniconf/pkg/override"
)

// Option configures a Loader.
type Option func(*Loader)

// WithEnvPrefix enables the environment pass. Variables whose names carry
// the prefix override configuration; without a prefix the environment is
// never consulted.
func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) { l.prefix = prefix }
}

// WithOverride adds a direct override for a flat key. Overrides are
// applied in the order the options are given and always win over file and
// environment values for the same option.
func WithOverride(key, value string) Option {
	return func(l *Loader) {
		l.overrides = append(l.overrides, override.KV{Key: key, Value: value})
	}
}

// WithOverrides adds direct overrides from a map, applied in sorted key
// order so resolution stays deterministic.
func WithOverrides(overrides map[string]string) Option {
	return func(l *Loader) {
		for _, key := range slices.Sorted(maps.Keys(overrides)) {
			l.overrides = append(l.overrides, override.KV{Key: key, Value: overrides[key]})
		}
	}
}

// WithUnset removes the options named by the given flat keys after all
// overrides have been applied. An unset stands in for an override carrying
// no value: it deletes the target option if present and never creates
// anything.
func WithUnset(keys ...string) Option {
	return func(l *Loader) { l.unsets = append(l.unsets, keys...) }
}

// WithNewFromEnv lets the environment pass create sections and options the
// files never mentioned. It requires a prefix: Read fails with
// override.ErrPolicyNotImplemented when combined with an empty one.
func WithNewFromEnv() Option {
	return func(l *Loader) { l.newFromEnv = true }
}

// WithNewFromDirect controls whether direct overrides may create sections
// and options the files never mentioned. Creation is allowed by default;
// pass false to restrict overrides to existing targets.
func WithNewFromDirect(enabled bool) Option {
	return func(l *Loader) { l.newFromDirect = enabled }
}

// WithCaseSensitive matches environment variable names exactly and makes
// section names in override keys case-sensitive. By default candidate
// variable names are upper-cased and sections match ignoring case.
func WithCaseSensitive() Option {
	return func(l *Loader) { l.caseSensitive = true }
}

// WithOptionTransform replaces the option-name normalization, which
// lower-cases names by default. The transform applies to option names from
// every source: files, environment variables and direct overrides. Ignored
// when WithStore supplies a pre-configured store.
func WithOptionTransform(fn func(name string) string) Option {
	return func(l *Loader) {
		if fn != nil {
			l.transform = fn
		}
	}
}

// WithDefaultSection renames the default section, "DEFAULT" unless
// changed. Bare override keys and inherited fallback values go through
// this section. Ignored when WithStore supplies a pre-configured store.
func WithDefaultSection(name string) Option {
	return func(l *Loader) {
		if name != "" {
			l.defaultName = name
		}
	}
}

// WithBooleanStates replaces the table of textual values the store's
// GetBool and struct conversion recognize as booleans. Ignored when
// WithStore supplies a pre-configured store.
func WithBooleanStates(states map[string]bool) Option {
	return func(l *Loader) {
		if len(states) > 0 {
			l.booleanStates = maps.Clone(states)
		}
	}
}

// WithStore resolves into a caller-supplied store instead of a fresh one,
// keeping whatever content it already holds. The store brings its own
// default-section name, option transform and boolean states, so
// WithDefaultSection, WithOptionTransform and WithBooleanStates are
// ignored alongside this option.
func WithStore(store *inistore.Store) Option {
	return func(l *Loader) {
		if store != nil {
			l.store = store
		}
	}
}

// WithEnviron replaces the environment snapshot consulted during
// resolution, which is otherwise captured from the process at Read time.
// Passing an empty map resolves against no environment at all.
func WithEnviron(environ map[string]string) Option {
	return func(l *Loader) {
		if environ != nil {
			l.environ = override.Environ(maps.Clone(environ))
		}
	}
}

// WithDotEnv merges variables from dotenv files into the environment
// snapshot. Snapshot values win over dotenv values, so the real
// environment keeps the usual precedence over checked-in defaults. Files
// that cannot be read fail the Read call with ErrDotEnvFailed.
func WithDotEnv(files ...string) Option {
	return func(l *Loader) { l.dotenv = append(l.dotenv, files...) }
}

// WithLogger sets the logger that reports applied and skipped overrides at
// debug level. Logging is discarded by default.
func WithLogger(log *slog.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}
