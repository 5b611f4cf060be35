package locate

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
)

type config struct {
	bareEtc      bool
	singleFile   bool
	requireFound bool
}

// Option configures a search.
type Option func(*config)

// WithBareEtc looks for system configuration in /etc/<app> instead of the
// XDG system directories. Per-user lookup is unaffected. The option has no
// effect on Windows.
func WithBareEtc() Option {
	return func(c *config) { c.bareEtc = true }
}

// WithSingleFile narrows the result to the highest-priority file found,
// for applications that read one configuration file instead of merging.
func WithSingleFile() Option {
	return func(c *config) { c.singleFile = true }
}

// WithRequireFound makes Files return ErrNoConfigFiles when no candidate
// location holds the file.
func WithRequireFound() Option {
	return func(c *config) { c.requireFound = true }
}

// Files returns the existing configuration files named fileName for the
// application appName, ordered for merging: least specific first, the
// user's own configuration last. An empty appName looks for the file
// directly in the configuration directories.
func Files(appName, fileName string, opts ...Option) ([]string, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	found := make([]string, 0, 4)
	for _, path := range candidates(runtime.GOOS, appName, fileName, cfg.bareEtc) {
		if fileExists(path) {
			found = append(found, path)
		}
	}

	if len(found) == 0 {
		if cfg.requireFound {
			return nil, fmt.Errorf("%w: app %q, file %q", ErrNoConfigFiles, appName, fileName)
		}
		return found, nil
	}
	if cfg.singleFile {
		return found[len(found)-1:], nil
	}
	return found, nil
}

// candidates lists the conventional locations of a configuration file in
// merge order. System directories come first, the per-user directory last.
func candidates(goos, appName, fileName string, bareEtc bool) []string {
	if goos == "windows" {
		return windowsCandidates(appName, fileName)
	}
	return unixCandidates(appName, fileName, bareEtc)
}

func unixCandidates(appName, fileName string, bareEtc bool) []string {
	var paths []string
	if bareEtc {
		paths = append(paths, filepath.Join("/etc", appName, fileName))
	} else {
		// The first directory in XDG_CONFIG_DIRS is the most important
		// one, so it must merge last among the system locations.
		dirs := strings.Split(envOr("XDG_CONFIG_DIRS", "/etc/xdg"), ":")
		slices.Reverse(dirs)
		for _, dir := range dirs {
			if dir == "" {
				continue
			}
			paths = append(paths, filepath.Join(dir, appName, fileName))
		}
	}

	home := os.Getenv("XDG_CONFIG_HOME")
	if home == "" {
		if userHome, err := os.UserHomeDir(); err == nil {
			home = filepath.Join(userHome, ".config")
		}
	}
	if home != "" {
		paths = append(paths, filepath.Join(home, appName, fileName))
	}
	return paths
}

func windowsCandidates(appName, fileName string) []string {
	var paths []string
	if programData := os.Getenv("PROGRAMDATA"); programData != "" {
		paths = append(paths, filepath.Join(programData, appName, fileName))
	}
	if appData := os.Getenv("APPDATA"); appData != "" {
		paths = append(paths, filepath.Join(appData, appName, fileName))
	}
	return paths
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
