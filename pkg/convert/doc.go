// Package convert materializes INI store content into Go values.
//
// Two views are offered: ToMap flattens the store into plain nested maps,
// ToStruct decodes it into a typed struct. Both respect the store's
// default-section semantics, so every section carries the options it
// inherits.
//
// # Struct Mapping
//
// Sections map to struct-typed fields, default-section options to scalar
// fields at the top level:
//
//	type Config struct {
//		Environment string        `ini:"environment"` // default section
//		Server      ServerConfig  `ini:"server"`      // [server]
//	}
//
//	type ServerConfig struct {
//		Host    string        `ini:"host"`
//		Port    int           `ini:"port"`
//		TLS     bool          `ini:"tls"`
//		Timeout time.Duration `ini:"timeout"`
//		Origins []string      `ini:"origins"`
//	}
//
//	var cfg Config
//	if err := convert.ToStruct(store, &cfg); err != nil {
//		// Handle error
//	}
//
// Tags are optional; untagged fields match option and section names
// case-insensitively. Out of the box string values convert to numeric
// types, booleans (through the store's boolean state table, so "yes" and
// "off" behave like they do in GetBool), time.Duration, comma-separated
// slices and any type implementing encoding.TextUnmarshaler. Additional
// conversions plug in with WithDecodeHook and run before the built-in
// ones.
//
// # Validation
//
// Decoding is permissive by default: surplus store content is ignored and
// absent options leave fields at their zero values. WithStrictFields
// rejects store content with no matching field, WithRequireFields rejects
// fields with no matching store content. Together they enforce an exact
// correspondence between configuration and struct.
//
// # Section Filters
//
// WithIncludeSections and WithExcludeSections narrow which sections
// participate in a conversion. The two filters are mutually exclusive;
// combining them returns ErrInvalidParameters. Default-section options are
// converted regardless of filtering.
package convert
