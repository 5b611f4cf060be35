package convert

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/go-viper/mapstructure/v2"

	"github.com/dmitrymomot/iniconf/pkg/inistore"
)

// DefaultTagName is the struct tag consulted for field mapping.
const DefaultTagName = "ini"

type config struct {
	include       []string
	exclude       []string
	strict        bool
	require       bool
	tagName       string
	hooks         []mapstructure.DecodeHookFunc
	booleanStates map[string]bool
}

// Option configures ToStruct.
type Option func(*config)

// WithIncludeSections restricts conversion to the named sections.
// Default-section options are always converted. Mutually exclusive with
// WithExcludeSections.
func WithIncludeSections(sections ...string) Option {
	return func(c *config) { c.include = append(c.include, sections...) }
}

// WithExcludeSections drops the named sections from conversion. Mutually
// exclusive with WithIncludeSections.
func WithExcludeSections(sections ...string) Option {
	return func(c *config) { c.exclude = append(c.exclude, sections...) }
}

// WithStrictFields makes decoding fail when the store carries sections or
// options with no matching struct field.
func WithStrictFields() Option {
	return func(c *config) { c.strict = true }
}

// WithRequireFields makes decoding fail when a struct field receives no
// value from the store.
func WithRequireFields() Option {
	return func(c *config) { c.require = true }
}

// WithTagName replaces the struct tag used for field mapping.
func WithTagName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.tagName = name
		}
	}
}

// WithDecodeHook prepends decode hooks that run before the built-in
// conversions, in the order given.
func WithDecodeHook(hooks ...mapstructure.DecodeHookFunc) Option {
	return func(c *config) { c.hooks = append(c.hooks, hooks...) }
}

// WithBooleanStates replaces the boolean value table used for bool fields,
// which defaults to the store's own table.
func WithBooleanStates(states map[string]bool) Option {
	return func(c *config) {
		if len(states) > 0 {
			c.booleanStates = maps.Clone(states)
		}
	}
}

// ToMap flattens the store into a map of section names to their visible
// options. The default section appears under its own name holding its own
// options; every other section includes the defaults it inherits.
func ToMap(store *inistore.Store) map[string]map[string]string {
	sections := store.Sections()
	out := make(map[string]map[string]string, len(sections)+1)
	out[store.DefaultSection()] = store.Defaults()
	for _, section := range sections {
		m, err := store.OptionsMap(section)
		if err != nil {
			continue
		}
		out[section] = m
	}
	return out
}

// ToStruct materializes store content into a struct. Struct fields match
// by tag or, without one, by case-insensitive field name: fields of struct
// type receive whole sections, scalar fields receive default-section
// options. Section maps include inherited defaults, so a section struct
// may declare fields that only the default section provides.
//
// String values convert to numeric, boolean, time.Duration, slice and
// encoding.TextUnmarshaler fields out of the box; WithDecodeHook extends
// the conversions.
func ToStruct(store *inistore.Store, target any, opts ...Option) error {
	cfg := config{
		tagName:       DefaultTagName,
		booleanStates: store.BooleanStates(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.include) > 0 && len(cfg.exclude) > 0 {
		return fmt.Errorf("%w: include and exclude sections are mutually exclusive", ErrInvalidParameters)
	}

	input := make(map[string]any)
	for option, value := range store.Defaults() {
		input[option] = value
	}
	for _, section := range store.Sections() {
		if !cfg.keepSection(section) {
			continue
		}
		m, err := store.OptionsMap(section)
		if err != nil {
			continue
		}
		input[section] = m
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  buildHook(cfg),
		ErrorUnused: cfg.strict,
		ErrorUnset:  cfg.require,
		Result:      target,
		TagName:     cfg.tagName,
	})
	if err != nil {
		return errors.Join(ErrDecodeFailed, err)
	}
	if err := decoder.Decode(input); err != nil {
		return errors.Join(ErrDecodeFailed, err)
	}
	return nil
}

func (c *config) keepSection(name string) bool {
	if len(c.include) > 0 {
		return slices.Contains(c.include, name)
	}
	return !slices.Contains(c.exclude, name)
}
