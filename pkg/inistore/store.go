package inistore

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"strconv"
	"strings"
	"time"

	"gopkg.in/ini.v1"
)

// TransformFunc normalizes option names before they are stored or looked up.
type TransformFunc func(name string) string

// LowerTransform lower-cases option names. It is the default transform and
// makes option lookups effectively case-insensitive.
func LowerTransform(name string) string { return strings.ToLower(name) }

// IdentityTransform keeps option names exactly as written.
func IdentityTransform(name string) string { return name }

// defaultBooleanStates maps recognized textual values to booleans,
// the same set accepted by GetBool unless replaced via WithBooleanStates.
var defaultBooleanStates = map[string]bool{
	"1": true, "yes": true, "true": true, "on": true,
	"0": false, "no": false, "false": false, "off": false,
}

// Store holds INI configuration as named sections of string options plus a
// default section whose options are visible from every other section.
// Section names are case-sensitive; option names pass through the configured
// transform on every write and lookup.
//
// A Store is not safe for concurrent use.
type Store struct {
	file          *ini.File
	defaultName   string
	transform     TransformFunc
	booleanStates map[string]bool
}

// Option configures a Store.
type Option func(*Store)

// WithDefaultSection renames the default section. Options stored under this
// name act as fallback values for every other section. Empty names are
// ignored, and the literal name DEFAULT remains reserved for the default
// section even after a rename.
func WithDefaultSection(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.defaultName = name
		}
	}
}

// WithTransform replaces the option-name transform. Pass IdentityTransform
// to make option names case-sensitive.
func WithTransform(fn TransformFunc) Option {
	return func(s *Store) {
		if fn != nil {
			s.transform = fn
		}
	}
}

// WithBooleanStates replaces the table of textual values recognized by
// GetBool. Keys are expected in lower case.
func WithBooleanStates(states map[string]bool) Option {
	return func(s *Store) {
		if len(states) > 0 {
			s.booleanStates = maps.Clone(states)
		}
	}
}

// New creates an empty store. Content is added with Load, LoadString,
// AddSection and SetOption.
func New(opts ...Option) *Store {
	s := &Store{
		defaultName:   ini.DefaultSection,
		transform:     LowerTransform,
		booleanStates: maps.Clone(defaultBooleanStates),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.file = ini.Empty(parseOptions())
	return s
}

// parseOptions keeps values verbatim: inline comment markers, surrounding
// quotes and indented continuation lines all stay part of the value.
func parseOptions() ini.LoadOptions {
	return ini.LoadOptions{
		Loose:                      true,
		IgnoreInlineComment:        true,
		AllowPythonMultilineValues: true,
		PreserveSurroundedQuote:    true,
	}
}

// Load reads and merges the given INI files in order. Files that do not
// exist are skipped. Later files override options set by earlier ones, and
// merging never discards sections or options that were set programmatically.
func (s *Store) Load(filenames ...string) error {
	for _, name := range filenames {
		f, err := ini.LoadSources(parseOptions(), name)
		if err != nil {
			return errors.Join(ErrLoadFailed, fmt.Errorf("%s: %w", name, err))
		}
		s.merge(f)
	}
	return nil
}

// LoadString parses INI content from a string and merges it into the store.
func (s *Store) LoadString(data string) error {
	f, err := ini.LoadSources(parseOptions(), []byte(data))
	if err != nil {
		return errors.Join(ErrLoadFailed, err)
	}
	s.merge(f)
	return nil
}

// Append parses INI content from a reader and merges it into the store.
func (s *Store) Append(r io.Reader) error {
	f, err := ini.LoadSources(parseOptions(), io.NopCloser(r))
	if err != nil {
		return errors.Join(ErrLoadFailed, err)
	}
	s.merge(f)
	return nil
}

// merge copies sections and keys from a freshly parsed file into the store,
// normalizing option names on the way in. Keys that appear before any
// section header belong to the default section.
func (s *Store) merge(src *ini.File) {
	for _, sec := range src.Sections() {
		name := sec.Name()
		if name == ini.DefaultSection {
			if len(sec.Keys()) == 0 {
				continue
			}
			name = s.defaultName
		}
		dst := s.file.Section(name)
		for _, key := range sec.Keys() {
			option := s.transform(key.Name())
			if option == "" {
				continue
			}
			_, _ = dst.NewKey(option, key.Value())
		}
	}
}

// DefaultSection returns the name of the default section.
func (s *Store) DefaultSection() string { return s.defaultName }

// Transform returns the option-name transform in effect.
func (s *Store) Transform() TransformFunc { return s.transform }

// BooleanStates returns a copy of the boolean value table used by GetBool.
func (s *Store) BooleanStates() map[string]bool { return maps.Clone(s.booleanStates) }

// Sections lists all named sections in insertion order. The default section
// is not included.
func (s *Store) Sections() []string {
	names := s.file.SectionStrings()
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == ini.DefaultSection || name == s.defaultName {
			continue
		}
		out = append(out, name)
	}
	return out
}

// HasSection reports whether a named section exists. It returns false for
// the default section, which always exists implicitly.
func (s *Store) HasSection(name string) bool {
	_, ok := s.namedSection(name)
	return ok
}

// AddSection creates a new empty section. The empty string, the default
// section name and the reserved name DEFAULT are rejected with
// ErrInvalidSection, existing sections with ErrDuplicateSection.
func (s *Store) AddSection(name string) error {
	if name == "" || name == ini.DefaultSection || name == s.defaultName {
		return fmt.Errorf("%w: %q", ErrInvalidSection, name)
	}
	if s.HasSection(name) {
		return fmt.Errorf("%w: %q", ErrDuplicateSection, name)
	}
	_, err := s.file.NewSection(name)
	return err
}

// DeleteSection removes a named section and all its options, reporting
// whether it existed. The default section cannot be deleted.
func (s *Store) DeleteSection(name string) bool {
	if !s.HasSection(name) {
		return false
	}
	s.file.DeleteSection(name)
	return true
}

// Options lists the option names visible in a section: options from the
// default section first, then the section's own additions. For the default
// section itself only its own options are returned.
func (s *Store) Options(section string) ([]string, error) {
	if s.isDefault(section) {
		return s.defaultKeyNames(), nil
	}
	sec, ok := s.namedSection(section)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSection, section)
	}
	names := s.defaultKeyNames()
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		seen[n] = struct{}{}
	}
	for _, n := range sec.KeyStrings() {
		if _, ok := seen[n]; !ok {
			names = append(names, n)
		}
	}
	return names, nil
}

// OwnOptions lists the option names a section defines itself, without
// anything inherited from the default section.
func (s *Store) OwnOptions(section string) ([]string, error) {
	if s.isDefault(section) {
		return s.defaultKeyNames(), nil
	}
	sec, ok := s.namedSection(section)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSection, section)
	}
	return sec.KeyStrings(), nil
}

// HasOption reports whether an option is visible in a section, either as
// the section's own option or inherited from the default section. Unknown
// sections report false.
func (s *Store) HasOption(section, option string) bool {
	_, err := s.value(section, option)
	return err == nil
}

// HasOwnOption reports whether a section defines an option itself rather
// than inheriting it from the default section.
func (s *Store) HasOwnOption(section, option string) bool {
	name := s.transform(option)
	if s.isDefault(section) {
		_, ok := s.defaultsHash()[name]
		return ok
	}
	sec, ok := s.namedSection(section)
	if !ok {
		return false
	}
	_, ok = ownKey(sec, name)
	return ok
}

// Get returns the value of an option visible in a section. The second
// return value is false when the section or option is unknown.
func (s *Store) Get(section, option string) (string, bool) {
	v, err := s.value(section, option)
	if err != nil {
		return "", false
	}
	return v, true
}

// GetInt returns an option value converted to int.
func (s *Store) GetInt(section, option string) (int, error) {
	v, err := s.value(section, option)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, errors.Join(ErrInvalidValue, err)
	}
	return n, nil
}

// GetFloat returns an option value converted to float64.
func (s *Store) GetFloat(section, option string) (float64, error) {
	v, err := s.value(section, option)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, errors.Join(ErrInvalidValue, err)
	}
	return f, nil
}

// GetBool returns an option value converted through the boolean state
// table. The lookup lower-cases the value, so "Yes" and "YES" both match
// the "yes" state.
func (s *Store) GetBool(section, option string) (bool, error) {
	v, err := s.value(section, option)
	if err != nil {
		return false, err
	}
	b, ok := s.booleanStates[strings.ToLower(v)]
	if !ok {
		return false, fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, v)
	}
	return b, nil
}

// GetDuration returns an option value parsed with time.ParseDuration.
func (s *Store) GetDuration(section, option string) (time.Duration, error) {
	v, err := s.value(section, option)
	if err != nil {
		return 0, err
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return 0, errors.Join(ErrInvalidValue, err)
	}
	return d, nil
}

// SetOption sets an option in a section, creating or replacing it. Setting
// an option that a section currently inherits materializes a section-local
// value and leaves the default section untouched. The section must already
// exist unless it is the default section.
func (s *Store) SetOption(section, option, value string) error {
	name := s.transform(option)
	if s.isDefault(section) {
		return setKey(s.file.Section(s.defaultName), name, value)
	}
	sec, ok := s.namedSection(section)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoSection, section)
	}
	return setKey(sec, name, value)
}

// DeleteOption removes a section's own option, reporting whether it
// existed. Options inherited from the default section are not removable
// through the inheriting section.
func (s *Store) DeleteOption(section, option string) (bool, error) {
	name := s.transform(option)
	if s.isDefault(section) {
		sec, err := s.file.GetSection(s.defaultName)
		if err != nil {
			return false, nil
		}
		return deleteKey(sec, name), nil
	}
	sec, ok := s.namedSection(section)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrNoSection, section)
	}
	return deleteKey(sec, name), nil
}

// Defaults returns a copy of the default section's options.
func (s *Store) Defaults() map[string]string {
	return s.defaultsHash()
}

// OptionsMap returns a copy of all options visible in a section, with the
// section's own values overriding inherited defaults.
func (s *Store) OptionsMap(section string) (map[string]string, error) {
	if s.isDefault(section) {
		return s.defaultsHash(), nil
	}
	sec, ok := s.namedSection(section)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSection, section)
	}
	out := s.defaultsHash()
	maps.Copy(out, ownHash(sec))
	return out, nil
}

// WriteTo serializes the store in INI format. Default-section options are
// written under their section header, named sections follow in insertion
// order.
func (s *Store) WriteTo(w io.Writer) (int64, error) {
	return s.file.WriteTo(w)
}

// isDefault reports whether a section argument addresses the default
// section. The empty string is accepted as an alias for it.
func (s *Store) isDefault(section string) bool {
	return section == "" || section == s.defaultName
}

// namedSection resolves a regular section by exact name. The default
// section and the underlying parser's reserved section are never returned.
func (s *Store) namedSection(name string) (*ini.Section, bool) {
	if name == "" || name == ini.DefaultSection || name == s.defaultName {
		return nil, false
	}
	sec, err := s.file.GetSection(name)
	if err != nil {
		return nil, false
	}
	return sec, true
}

// value resolves an option through the section-then-defaults chain.
func (s *Store) value(section, option string) (string, error) {
	name := s.transform(option)
	if s.isDefault(section) {
		if v, ok := s.defaultsHash()[name]; ok {
			return v, nil
		}
		return "", fmt.Errorf("%w: %q", ErrNoOption, option)
	}
	sec, ok := s.namedSection(section)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNoSection, section)
	}
	if k, ok := ownKey(sec, name); ok {
		return k.Value(), nil
	}
	if v, ok := s.defaultsHash()[name]; ok {
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrNoOption, option)
}

func (s *Store) defaultsHash() map[string]string {
	sec, err := s.file.GetSection(s.defaultName)
	if err != nil {
		return map[string]string{}
	}
	return ownHash(sec)
}

func (s *Store) defaultKeyNames() []string {
	sec, err := s.file.GetSection(s.defaultName)
	if err != nil {
		return []string{}
	}
	return sec.KeyStrings()
}

// ownKey finds a key among the section's own keys only, never in parent or
// default sections.
func ownKey(sec *ini.Section, name string) (*ini.Key, bool) {
	for _, k := range sec.Keys() {
		if k.Name() == name {
			return k, true
		}
	}
	return nil, false
}

// ownHash snapshots the section's own keys and values.
func ownHash(sec *ini.Section) map[string]string {
	keys := sec.Keys()
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		out[k.Name()] = k.Value()
	}
	return out
}

func setKey(sec *ini.Section, name, value string) error {
	if name == "" {
		return ErrInvalidOption
	}
	_, err := sec.NewKey(name, value)
	return err
}

func deleteKey(sec *ini.Section, name string) bool {
	if _, ok := ownKey(sec, name); !ok {
		return false
	}
	sec.DeleteKey(name)
	return true
}
