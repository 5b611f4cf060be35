package override

import "strings"

// KeySeparator splits the section part from the option part in flat
// override keys and environment variable names.
const KeySeparator = "__"

// Codec translates between flat override keys, environment variable names
// and store coordinates.
type Codec struct {
	// DefaultSection is the section addressed by bare option keys.
	DefaultSection string

	// CaseSensitive disables the upper-casing of environment variable
	// names and the case-insensitive matching of section names.
	CaseSensitive bool
}

// ParseKey splits a flat key into section and option at the first
// separator. Keys without a separator, or with an empty section part,
// address the default section. The option part may itself contain the
// separator.
func (c Codec) ParseKey(key string) (section, option string) {
	before, after, found := strings.Cut(key, KeySeparator)
	if !found {
		return c.DefaultSection, before
	}
	if before == "" {
		return c.DefaultSection, after
	}
	return before, after
}

// EnvName builds the environment variable name that overrides an option.
// Options in the default section map to PREFIX+OPTION, all others to
// PREFIX+SECTION+"__"+OPTION. Unless the codec is case-sensitive the name
// is upper-cased, matching environment naming conventions.
func (c Codec) EnvName(prefix, section, option string) string {
	var name string
	if c.IsDefault(section) {
		name = prefix + option
	} else {
		name = prefix + section + KeySeparator + option
	}
	if c.CaseSensitive {
		return name
	}
	return strings.ToUpper(name)
}

// IsDefault reports whether a section name addresses the default section.
// The empty string always does; other names match exactly or, unless the
// codec is case-sensitive, ignoring case.
func (c Codec) IsDefault(section string) bool {
	if section == "" {
		return true
	}
	if c.CaseSensitive {
		return section == c.DefaultSection
	}
	return strings.EqualFold(section, c.DefaultSection)
}
