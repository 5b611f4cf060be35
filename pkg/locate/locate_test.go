package locate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/iniconf/pkg/locate"
)

// write places a config file under dir/app and returns its full path.
func write(t *testing.T, dir, app, name string) string {
	t.Helper()
	path := filepath.Join(dir, app, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[app]\n"), 0o600))
	return path
}

func TestFiles(t *testing.T) {
	t.Run("MergeOrder", func(t *testing.T) {
		sys1 := t.TempDir()
		sys2 := t.TempDir()
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_DIRS", sys1+":"+sys2)
		t.Setenv("XDG_CONFIG_HOME", home)

		first := write(t, sys1, "myapp", "config.ini")
		second := write(t, sys2, "myapp", "config.ini")
		user := write(t, home, "myapp", "config.ini")

		files, err := locate.Files("myapp", "config.ini")
		require.NoError(t, err)

		// The first entry of XDG_CONFIG_DIRS is the most important system
		// location, so it merges after the later entries; the user file
		// comes last and wins.
		assert.Equal(t, []string{second, first, user}, files)
	})

	t.Run("OnlyExistingReturned", func(t *testing.T) {
		sys := t.TempDir()
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_DIRS", sys)
		t.Setenv("XDG_CONFIG_HOME", home)

		user := write(t, home, "myapp", "config.ini")

		files, err := locate.Files("myapp", "config.ini")
		require.NoError(t, err)
		assert.Equal(t, []string{user}, files)
	})

	t.Run("SingleFile", func(t *testing.T) {
		sys := t.TempDir()
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_DIRS", sys)
		t.Setenv("XDG_CONFIG_HOME", home)

		system := write(t, sys, "myapp", "config.ini")
		user := write(t, home, "myapp", "config.ini")

		files, err := locate.Files("myapp", "config.ini", locate.WithSingleFile())
		require.NoError(t, err)
		assert.Equal(t, []string{user}, files, "the user file has the highest priority")

		require.NoError(t, os.Remove(user))
		files, err = locate.Files("myapp", "config.ini", locate.WithSingleFile())
		require.NoError(t, err)
		assert.Equal(t, []string{system}, files)
	})

	t.Run("NothingFound", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		files, err := locate.Files("myapp", "config.ini")
		require.NoError(t, err, "an empty result is not an error by default")
		assert.Empty(t, files)

		_, err = locate.Files("myapp", "config.ini", locate.WithRequireFound())
		require.Error(t, err)
		assert.ErrorIs(t, err, locate.ErrNoConfigFiles)
	})

	t.Run("BareEtc", func(t *testing.T) {
		sys := t.TempDir()
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_DIRS", sys)
		t.Setenv("XDG_CONFIG_HOME", home)

		// Present in an XDG system directory, but bare-etc mode must not
		// look there; only /etc/<app> and the user directory count.
		write(t, sys, "iniconf_test_app", "config.ini")
		user := write(t, home, "iniconf_test_app", "config.ini")

		files, err := locate.Files("iniconf_test_app", "config.ini", locate.WithBareEtc())
		require.NoError(t, err)
		assert.Equal(t, []string{user}, files)
	})

	t.Run("DefaultConfigHome", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", home)

		user := write(t, filepath.Join(home, ".config"), "myapp", "config.ini")

		files, err := locate.Files("myapp", "config.ini")
		require.NoError(t, err)
		assert.Equal(t, []string{user}, files)
	})

	t.Run("EmptyAppName", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
		t.Setenv("XDG_CONFIG_HOME", home)

		user := write(t, home, "", "config.ini")

		files, err := locate.Files("", "config.ini")
		require.NoError(t, err)
		assert.Equal(t, []string{user}, files)
	})

	t.Run("DirectoriesIgnored", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
		t.Setenv("XDG_CONFIG_HOME", home)

		// A directory with the candidate's name is not a config file.
		require.NoError(t, os.MkdirAll(filepath.Join(home, "myapp", "config.ini"), 0o755))

		files, err := locate.Files("myapp", "config.ini")
		require.NoError(t, err)
		assert.Empty(t, files)
	})
}
