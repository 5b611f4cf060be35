// Package iniconf loads INI configuration files and layers environment
// variables and explicit overrides on top, in the twelve-factor spirit:
// files carry the defaults, the environment adapts them to a deployment,
// and direct overrides have the final say.
//
// A Loader reads any number of INI files into a store of named sections,
// then resolves overrides against it. Resolution applies the environment
// pass first and direct overrides second, so for any option set by both
// sources the direct override wins:
//
//	file value  <  environment variable  <  direct override
//
// Overrides address options with flat keys: "server__port" targets option
// "port" in section [server], a bare "log_level" targets the default
// section whose options every other section inherits. Environment
// variables use the same shape behind a configured prefix, so with prefix
// "APP_" the variable APP_SERVER__PORT overrides server/port.
//
// Basic Usage:
//
//	loader := iniconf.New(
//		iniconf.WithEnvPrefix("APP_"),
//		iniconf.WithOverride("server__port", "9000"),
//	)
//	store, err := loader.Read("/etc/myapp/config.ini", "local.ini")
//	if err != nil {
//		// Handle error
//	}
//	host, _ := store.Get("server", "host")
//
// Materializing into a struct:
//
//	type Config struct {
//		Environment string       `ini:"environment"`
//		Server      ServerConfig `ini:"server"`
//	}
//
//	var cfg Config
//	if err := loader.ToStruct(&cfg); err != nil {
//		// Handle error
//	}
//
// Creation Policy:
//
// Whether overrides may introduce sections and options the files never
// mentioned is controlled per source. Direct overrides create missing
// targets by default; WithNewFromDirect(false) restricts them to existing
// ones. The environment never creates anything unless WithNewFromEnv is
// set, which requires a prefix: without one every variable in the process
// environment would become configuration, so Read rejects that combination
// with override.ErrPolicyNotImplemented before touching the store.
//
// Case Handling:
//
// Matching is forgiving by default: option names are lower-cased, section
// names compare case-insensitively, and environment variable names are
// derived upper-cased. WithCaseSensitive switches every comparison to
// exact case; WithOptionTransform replaces the option normalization.
//
// Testing:
//
// Resolution reads a snapshot of the process environment captured at Read
// time. WithEnviron injects a synthetic snapshot instead, which keeps
// tests free of real environment mutation, and WithDotEnv merges values
// from dotenv files underneath either snapshot.
//
// The heavy lifting lives in the subpackages, usable on their own:
// pkg/inistore holds the section/option store, pkg/override the resolution
// engine, pkg/convert the struct materialization and pkg/locate the
// platform search for configuration files.
package iniconf
