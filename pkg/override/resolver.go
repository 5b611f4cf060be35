package override

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/dmitrymomot/iniconf/pkg/inistore"
)

// KV is a single direct override: a flat key paired with the value to set.
type KV struct {
	Key   string
	Value string
}

// Resolver layers environment variables and direct key/value overrides
// onto a store. The environment pass always runs before the direct pass,
// so a direct override wins when both target the same option. Unset keys
// are processed last.
//
// Overrides that cannot be applied under the active policy are reported at
// debug level and never turn into errors.
type Resolver struct {
	store         *inistore.Store
	prefix        string
	overrides     []KV
	unsets        []string
	environ       Environ
	caseSensitive bool
	log           *slog.Logger
	codec         Codec
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithPrefix sets the environment variable prefix. Only variables carrying
// the prefix participate in resolution; an empty prefix disables the
// environment pass entirely.
func WithPrefix(prefix string) Option {
	return func(r *Resolver) { r.prefix = prefix }
}

// WithOverrides appends direct overrides, applied in the order given.
func WithOverrides(overrides ...KV) Option {
	return func(r *Resolver) { r.overrides = append(r.overrides, overrides...) }
}

// WithUnset appends flat keys whose options are removed after all
// overrides have been applied.
func WithUnset(keys ...string) Option {
	return func(r *Resolver) { r.unsets = append(r.unsets, keys...) }
}

// WithEnviron replaces the environment snapshot, which defaults to the
// process environment.
func WithEnviron(env Environ) Option {
	return func(r *Resolver) {
		if env != nil {
			r.environ = env
		}
	}
}

// WithCaseSensitive switches matching of environment variable names and
// section names to exact case. By default names are upper-cased for
// environment lookups and sections match ignoring case.
func WithCaseSensitive(enabled bool) Option {
	return func(r *Resolver) { r.caseSensitive = enabled }
}

// WithLogger sets the logger that reports applied and ignored overrides at
// debug level.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// New creates a resolver for the given store.
func New(store *inistore.Store, opts ...Option) *Resolver {
	r := &Resolver{
		store: store,
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.environ == nil {
		r.environ = OSEnviron()
	}
	r.codec = Codec{
		DefaultSection: store.DefaultSection(),
		CaseSensitive:  r.caseSensitive,
	}
	return r
}

// Codec returns the key codec the resolver operates with.
func (r *Resolver) Codec() Codec { return r.codec }

// Resolve selects the policy for the resolver's prefix and the given
// creation flags, then applies it. When the combination has no policy the
// store is left untouched and ErrPolicyNotImplemented is returned.
func (r *Resolver) Resolve(newFromEnv, newFromDirect bool) error {
	policy, err := SelectPolicy(r.prefix, newFromEnv, newFromDirect)
	if err != nil {
		return err
	}
	return r.Apply(policy)
}

// Apply runs a specific policy: the environment pass, then direct
// overrides, then unsets.
func (r *Resolver) Apply(policy Policy) error {
	idx := r.sectionIndex()
	switch policy {
	case PolicyNoPrefixNoNew:
		r.applyDirect(idx, false)
	case PolicyNoPrefixNewDirect:
		r.applyDirect(idx, true)
	case PolicyPrefixNoNew:
		r.applyEnvExisting(idx)
		r.applyDirect(idx, false)
	case PolicyPrefixNewEnv:
		r.applyEnvCreate(idx)
		r.applyDirect(idx, false)
	case PolicyPrefixNewDirect:
		r.applyEnvExisting(idx)
		r.applyDirect(idx, true)
	case PolicyPrefixNewEnvNewDirect:
		r.applyEnvCreate(idx)
		r.applyDirect(idx, true)
	default:
		return fmt.Errorf("%w: %q", ErrPolicyNotImplemented, policy)
	}
	r.applyUnset(idx)
	return nil
}

// sectionIndex maps case-folded section names to their stored spelling. A
// nil index means section matching is case-sensitive. When two stored
// sections collide on the folded form, the first one listed wins.
type sectionIndex map[string]string

func (r *Resolver) sectionIndex() sectionIndex {
	if r.caseSensitive {
		return nil
	}
	idx := make(sectionIndex)
	for _, name := range r.store.Sections() {
		folded := foldName(name)
		if _, ok := idx[folded]; !ok {
			idx[folded] = name
		}
	}
	return idx
}

// foldName applies full case folding so that section matching agrees with
// upper-cased environment variable names even outside ASCII.
func foldName(name string) string {
	return cases.Fold().String(name)
}

// applyEnvExisting overrides options already visible in the store from
// matching environment variables. Nothing is created.
func (r *Resolver) applyEnvExisting(idx sectionIndex) {
	lookup := r.envLookup()
	sections := append([]string{r.store.DefaultSection()}, r.store.Sections()...)
	for _, section := range sections {
		options, err := r.store.Options(section)
		if err != nil {
			continue
		}
		for _, option := range options {
			name := r.codec.EnvName(r.prefix, section, option)
			value, ok := lookup[name]
			if !ok {
				continue
			}
			if err := r.store.SetOption(section, option, value); err != nil {
				r.log.Debug("skipping environment override", "variable", name, "error", err)
				continue
			}
			r.log.Debug("option overridden from environment",
				"section", section, "option", option, "variable", name)
		}
	}
}

// envLookup returns the environment keyed for candidate matching. In
// case-insensitive mode names are upper-cased; when two variables collide
// on the upper-cased form the lexicographically later one wins.
func (r *Resolver) envLookup() Environ {
	if r.caseSensitive {
		return r.environ
	}
	lookup := make(Environ, len(r.environ))
	for _, name := range sortedNames(r.environ) {
		lookup[strings.ToUpper(name)] = r.environ[name]
	}
	return lookup
}

func sortedNames(env Environ) []string {
	names := make([]string, 0, len(env))
	for name := range env {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// applyEnvCreate writes every environment variable carrying the prefix
// into the store, creating sections and options as needed. The prefix
// match is exact in both case modes; folding only applies to the section
// and option names that follow it.
func (r *Resolver) applyEnvCreate(idx sectionIndex) {
	for _, name := range sortedNames(r.environ) {
		if !strings.HasPrefix(name, r.prefix) {
			continue
		}
		flat := strings.TrimPrefix(name, r.prefix)
		if flat == "" {
			continue
		}
		section, option := r.codec.ParseKey(flat)
		if option == "" {
			r.log.Debug("ignoring malformed environment variable", "variable", name)
			continue
		}
		r.setCreate(idx, section, option, r.environ[name], "environment variable "+name)
	}
}

// applyDirect applies the direct key/value overrides in order. With
// createNew false, overrides whose section or option is not visible in the
// store are ignored.
func (r *Resolver) applyDirect(idx sectionIndex, createNew bool) {
	for _, kv := range r.overrides {
		section, option := r.codec.ParseKey(kv.Key)
		if option == "" {
			r.log.Debug("ignoring malformed override key", "key", kv.Key)
			continue
		}
		if createNew {
			r.setCreate(idx, section, option, kv.Value, "override "+kv.Key)
			continue
		}
		target, ok := r.resolveExisting(idx, section, option)
		if !ok {
			r.log.Debug("ignoring override for unknown target", "key", kv.Key)
			continue
		}
		if err := r.store.SetOption(target, option, kv.Value); err != nil {
			r.log.Debug("skipping override", "key", kv.Key, "error", err)
			continue
		}
		r.log.Debug("option overridden", "section", target, "option", option, "key", kv.Key)
	}
}

// setCreate writes an option, creating its section when missing. In
// case-insensitive mode new sections are stored lower-cased and existing
// sections are reused through the fold index.
func (r *Resolver) setCreate(idx sectionIndex, section, option, value, source string) {
	if r.codec.IsDefault(section) {
		section = r.store.DefaultSection()
		if err := r.store.SetOption(section, option, value); err != nil {
			r.log.Debug("skipping override", "source", source, "error", err)
			return
		}
		r.log.Debug("option set", "section", section, "option", option, "source", source)
		return
	}

	target := section
	if idx != nil {
		if stored, ok := idx[foldName(section)]; ok {
			target = stored
		} else {
			target = strings.ToLower(section)
		}
	}
	if !r.store.HasSection(target) {
		if err := r.store.AddSection(target); err != nil {
			r.log.Debug("skipping override", "source", source, "error", err)
			return
		}
		if idx != nil {
			idx[foldName(target)] = target
		}
		r.log.Debug("section created", "section", target, "source", source)
	}
	if err := r.store.SetOption(target, option, value); err != nil {
		r.log.Debug("skipping override", "source", source, "error", err)
		return
	}
	r.log.Debug("option set", "section", target, "option", option, "source", source)
}

// resolveExisting locates the stored section for an override target and
// reports whether the option is visible there, including options inherited
// from the default section.
func (r *Resolver) resolveExisting(idx sectionIndex, section, option string) (string, bool) {
	if r.codec.IsDefault(section) {
		name := r.store.DefaultSection()
		return name, r.store.HasOption(name, option)
	}
	target := section
	if idx != nil {
		stored, ok := idx[foldName(section)]
		if !ok {
			return "", false
		}
		target = stored
	} else if !r.store.HasSection(target) {
		return "", false
	}
	return target, r.store.HasOption(target, option)
}

// applyUnset removes the options named by the unset keys. Misses are
// reported at debug level; nothing is ever created.
func (r *Resolver) applyUnset(idx sectionIndex) {
	for _, key := range r.unsets {
		section, option := r.codec.ParseKey(key)
		target := section
		if r.codec.IsDefault(section) {
			target = r.store.DefaultSection()
		} else if idx != nil {
			stored, ok := idx[foldName(section)]
			if !ok {
				r.log.Debug("cannot unset option in unknown section", "key", key)
				continue
			}
			target = stored
		}
		removed, err := r.store.DeleteOption(target, option)
		if err != nil || !removed {
			r.log.Debug("unset had no effect", "key", key)
			continue
		}
		r.log.Debug("option removed", "section", target, "option", option)
	}
}
