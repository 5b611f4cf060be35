// Package locate finds configuration files in the directories where the
// platform conventionally keeps them.
//
// On Unix-like systems the XDG base directory convention applies: system
// configuration lives under the directories listed in XDG_CONFIG_DIRS
// (default /etc/xdg) and per-user configuration under XDG_CONFIG_HOME
// (default ~/.config). On Windows the system location is %PROGRAMDATA% and
// the per-user location %APPDATA%. Within each directory the file is
// expected at <app>/<file>, so an application "myapp" with configuration
// "config.ini" resolves to paths like /etc/xdg/myapp/config.ini.
//
// Files returns the candidates that actually exist, ordered for merging:
// the least specific file first, the user's own configuration last. Loading
// them in this order and letting later files win yields the conventional
// system-then-user override behavior:
//
//	paths, err := locate.Files("myapp", "config.ini")
//	if err != nil {
//		// Handle error
//	}
//	store := inistore.New()
//	if err := store.Load(paths...); err != nil {
//		// Handle error
//	}
//
// WithBareEtc switches the system lookup to the traditional /etc/<app>
// directory, WithSingleFile narrows the result to the highest-priority
// match, and WithRequireFound turns an empty result into ErrNoConfigFiles.
// By default finding nothing is not an error; the caller simply loads no
// files.
package locate
