package iniconf

import (
	"errors"
	"log/slog"
	"maps"

	"github.com/joho/godotenv"

	"github.com/dmitrymomot/iniconf/pkg/convert"
	"github.com/dmitrymomot/iniconf/pkg/inistore"
	"github.com/dmitrymomot/iniconf/pkg/override"
)

// Loader reads INI configuration into a store and resolves environment and
// direct overrides against it. A zero-option Loader mirrors the common
// case: no environment pass, direct overrides allowed to create new
// options, case-insensitive matching.
//
// A Loader can be reused; every Read merges into the same store and
// resolves against a fresh environment snapshot. It is not safe for
// concurrent use.
type Loader struct {
	store         *inistore.Store
	defaultName   string
	transform     inistore.TransformFunc
	booleanStates map[string]bool

	prefix        string
	overrides     []override.KV
	unsets        []string
	environ       override.Environ
	dotenv        []string
	newFromEnv    bool
	newFromDirect bool
	caseSensitive bool
	log           *slog.Logger
}

// New creates a Loader.
func New(opts ...Option) *Loader {
	l := &Loader{
		newFromDirect: true,
		log:           slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.store == nil {
		var storeOpts []inistore.Option
		if l.defaultName != "" {
			storeOpts = append(storeOpts, inistore.WithDefaultSection(l.defaultName))
		}
		if l.transform != nil {
			storeOpts = append(storeOpts, inistore.WithTransform(l.transform))
		}
		if l.booleanStates != nil {
			storeOpts = append(storeOpts, inistore.WithBooleanStates(l.booleanStates))
		}
		l.store = inistore.New(storeOpts...)
	}
	return l
}

// Read merges the given INI files into the store, later files overriding
// earlier ones and files that do not exist skipped, then resolves the
// configured overrides. It returns the mutated store.
//
// An invalid policy combination or an unreadable dotenv file surfaces
// before anything is loaded or written, leaving the store exactly as it
// was.
func (l *Loader) Read(filenames ...string) (*inistore.Store, error) {
	policy, environ, err := l.prepare()
	if err != nil {
		return nil, err
	}
	if err := l.store.Load(filenames...); err != nil {
		return nil, err
	}
	return l.apply(policy, environ)
}

// ReadString is Read for literal INI content.
func (l *Loader) ReadString(content string) (*inistore.Store, error) {
	policy, environ, err := l.prepare()
	if err != nil {
		return nil, err
	}
	if err := l.store.LoadString(content); err != nil {
		return nil, err
	}
	return l.apply(policy, environ)
}

// Store returns the loader's store with whatever content earlier Read
// calls left in it.
func (l *Loader) Store() *inistore.Store { return l.store }

// ToStruct materializes the store into target. It accepts the same options
// as convert.ToStruct.
func (l *Loader) ToStruct(target any, opts ...convert.Option) error {
	return convert.ToStruct(l.store, target, opts...)
}

// prepare runs every check that can fail without touching the store: it
// selects the policy and captures the environment snapshot.
func (l *Loader) prepare() (override.Policy, override.Environ, error) {
	policy, err := override.SelectPolicy(l.prefix, l.newFromEnv, l.newFromDirect)
	if err != nil {
		return "", nil, err
	}
	environ, err := l.snapshot()
	if err != nil {
		return "", nil, err
	}
	return policy, environ, nil
}

func (l *Loader) apply(policy override.Policy, environ override.Environ) (*inistore.Store, error) {
	resolver := override.New(l.store,
		override.WithPrefix(l.prefix),
		override.WithOverrides(l.overrides...),
		override.WithUnset(l.unsets...),
		override.WithEnviron(environ),
		override.WithCaseSensitive(l.caseSensitive),
		override.WithLogger(l.log),
	)
	if err := resolver.Apply(policy); err != nil {
		return nil, err
	}
	return l.store, nil
}

// snapshot assembles the environment for one resolution run: dotenv values
// first, the injected or process environment copied on top.
func (l *Loader) snapshot() (override.Environ, error) {
	env := override.Environ{}
	if len(l.dotenv) > 0 {
		values, err := godotenv.Read(l.dotenv...)
		if err != nil {
			return nil, errors.Join(ErrDotEnvFailed, err)
		}
		maps.Copy(env, values)
	}
	if l.environ != nil {
		maps.Copy(env, l.environ)
	} else {
		maps.Copy(env, override.OSEnviron())
	}
	return env, nil
}
