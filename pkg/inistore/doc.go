// Package inistore provides a structured key/value store for INI
// configuration with configparser-style semantics.
//
// The store organizes configuration into named sections of string options.
// A dedicated default section holds fallback values that are visible from
// every other section: reading an option a section does not define falls
// through to the default section, while writing always targets the section
// itself. Setting an option that a section currently inherits therefore
// shadows the default without modifying it.
//
// The default section is named DEFAULT unless renamed with
// WithDefaultSection. The literal name DEFAULT remains reserved either
// way: a [DEFAULT] header in loaded content always addresses the default
// section, and AddSection rejects the name. Renaming the default section
// therefore does not free DEFAULT for use as a regular section, as it
// would in configparser.
//
// # Sections and Options
//
// Section names are case-sensitive and stored exactly as written, so
// "database" and "DATABASE" are distinct sections. Option names pass
// through a transform on every write and lookup; the default transform
// lower-cases them, which makes option access case-insensitive. Supply
// IdentityTransform via WithTransform to treat option names literally, or
// any custom function to apply project-specific naming rules.
//
// # Loading
//
// Content accumulates from any mix of files, strings and programmatic
// writes:
//
//	store := inistore.New()
//	if err := store.Load("/etc/app/base.ini", "override.ini"); err != nil {
//		// Handle error
//	}
//	if err := store.SetOption("server", "port", "9000"); err != nil {
//		// Handle error
//	}
//
// Files are merged in argument order and later sources win, so a value from
// override.ini replaces the same option from base.ini. Files that do not
// exist are skipped silently, which allows a fixed search path where only
// some locations are populated. Merging is additive: it never removes
// sections or options that are already present.
//
// Values are kept verbatim. Inline comment markers, surrounding quotes and
// indented continuation lines all remain part of the value, and no
// variable interpolation is applied.
//
// # Typed Access
//
// Options are stored as strings. Typed getters convert on read:
//
//	port, err := store.GetInt("server", "port")
//	debug, err := store.GetBool("server", "debug")
//	wait, err := store.GetDuration("server", "shutdown_timeout")
//
// GetBool recognizes 1/yes/true/on and 0/no/false/off regardless of case;
// the table can be replaced with WithBooleanStates.
//
// # Error Handling
//
// Lookup errors distinguish a missing section from a missing option:
//
//	_, err := store.GetInt("server", "port")
//	switch {
//	case errors.Is(err, inistore.ErrNoSection):
//		// Section absent
//	case errors.Is(err, inistore.ErrNoOption):
//		// Section present, option absent
//	case errors.Is(err, inistore.ErrInvalidValue):
//		// Present but not convertible
//	}
//
// All sentinel errors can be matched with errors.Is.
package inistore
