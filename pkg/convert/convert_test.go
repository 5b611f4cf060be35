package convert_test

import (
	"fmt"
	"net"
	"reflect"
	"testing"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/iniconf/pkg/convert"
	"github.com/dmitrymomot/iniconf/pkg/inistore"
)

func newStore(t *testing.T, content string) *inistore.Store {
	t.Helper()
	store := inistore.New()
	require.NoError(t, store.LoadString(content))
	return store
}

func TestToMap(t *testing.T) {
	t.Parallel()

	store := newStore(t, `
[DEFAULT]
environment = production

[server]
host = localhost
`)

	assert.Equal(t, map[string]map[string]string{
		"DEFAULT": {"environment": "production"},
		"server":  {"environment": "production", "host": "localhost"},
	}, convert.ToMap(store))
}

func TestToStruct(t *testing.T) {
	t.Parallel()

	type serverSettings struct {
		Host        string        `ini:"host"`
		Port        int           `ini:"port"`
		TLS         bool          `ini:"tls"`
		Timeout     time.Duration `ini:"timeout"`
		Origins     []string      `ini:"origins"`
		Environment string        `ini:"environment"`
	}
	type appSettings struct {
		Environment string         `ini:"environment"`
		Server      serverSettings `ini:"server"`
	}

	t.Run("TypedFields", func(t *testing.T) {
		t.Parallel()
		store := newStore(t, `
[DEFAULT]
environment = production

[server]
host = localhost
port = 8080
tls = yes
timeout = 45s
origins = a.example.com,b.example.com
`)

		var cfg appSettings
		require.NoError(t, convert.ToStruct(store, &cfg))

		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, "localhost", cfg.Server.Host)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.True(t, cfg.Server.TLS)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, []string{"a.example.com", "b.example.com"}, cfg.Server.Origins)

		// Sections see inherited default options.
		assert.Equal(t, "production", cfg.Server.Environment)
	})

	t.Run("UntaggedFieldsMatchByName", func(t *testing.T) {
		t.Parallel()
		store := newStore(t, "[server]\nhost = localhost\nport = 9000\n")

		var cfg struct {
			Server struct {
				Host string
				Port int
			}
		}
		require.NoError(t, convert.ToStruct(store, &cfg))
		assert.Equal(t, "localhost", cfg.Server.Host)
		assert.Equal(t, 9000, cfg.Server.Port)
	})

	t.Run("ConversionFailure", func(t *testing.T) {
		t.Parallel()
		store := newStore(t, "[server]\nport = not-a-number\n")

		var cfg struct {
			Server struct {
				Port int `ini:"port"`
			} `ini:"server"`
		}
		err := convert.ToStruct(store, &cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, convert.ErrDecodeFailed)
		assert.Contains(t, err.Error(), "not-a-number")
	})
}

func TestToStructNumericRange(t *testing.T) {
	t.Parallel()

	type limits struct {
		Retries int8    `ini:"retries"`
		Port    uint16  `ini:"port"`
		Ratio   float32 `ini:"ratio"`
	}
	type settings struct {
		Limits limits `ini:"limits"`
	}

	t.Run("NarrowFieldsInRange", func(t *testing.T) {
		t.Parallel()
		store := newStore(t, "[limits]\nretries = -100\nport = 65535\nratio = 0.25\n")

		var cfg settings
		require.NoError(t, convert.ToStruct(store, &cfg))
		assert.Equal(t, int8(-100), cfg.Limits.Retries)
		assert.Equal(t, uint16(65535), cfg.Limits.Port)
		assert.Equal(t, float32(0.25), cfg.Limits.Ratio)
	})

	t.Run("Int8Overflow", func(t *testing.T) {
		t.Parallel()
		var cfg settings
		err := convert.ToStruct(newStore(t, "[limits]\nretries = 300\n"), &cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, convert.ErrDecodeFailed)
		assert.Contains(t, err.Error(), `"300"`)
		assert.Contains(t, err.Error(), "int8")
	})

	t.Run("Uint16Overflow", func(t *testing.T) {
		t.Parallel()
		var cfg settings
		err := convert.ToStruct(newStore(t, "[limits]\nport = 70000\n"), &cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, convert.ErrDecodeFailed)
		assert.Contains(t, err.Error(), `"70000"`)
		assert.Contains(t, err.Error(), "uint16")
	})

	t.Run("Float32Overflow", func(t *testing.T) {
		t.Parallel()
		var cfg settings
		err := convert.ToStruct(newStore(t, "[limits]\nratio = 1e300\n"), &cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, convert.ErrDecodeFailed)
		assert.Contains(t, err.Error(), `"1e300"`)
		assert.Contains(t, err.Error(), "float32")
	})
}

func TestToStructFilters(t *testing.T) {
	t.Parallel()

	type settings struct {
		Server struct {
			Host string `ini:"host"`
		} `ini:"server"`
		Limits struct {
			Max int `ini:"max"`
		} `ini:"limits"`
	}

	const content = `
[server]
host = localhost

[limits]
max = 100
`

	t.Run("Include", func(t *testing.T) {
		t.Parallel()
		var cfg settings
		err := convert.ToStruct(newStore(t, content), &cfg, convert.WithIncludeSections("server"))
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Server.Host)
		assert.Zero(t, cfg.Limits.Max)
	})

	t.Run("Exclude", func(t *testing.T) {
		t.Parallel()
		var cfg settings
		err := convert.ToStruct(newStore(t, content), &cfg, convert.WithExcludeSections("server"))
		require.NoError(t, err)
		assert.Empty(t, cfg.Server.Host)
		assert.Equal(t, 100, cfg.Limits.Max)
	})

	t.Run("BothRejected", func(t *testing.T) {
		t.Parallel()
		var cfg settings
		err := convert.ToStruct(newStore(t, content), &cfg,
			convert.WithIncludeSections("server"),
			convert.WithExcludeSections("limits"),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, convert.ErrInvalidParameters)
	})
}

func TestToStructValidation(t *testing.T) {
	t.Parallel()

	t.Run("StrictFields", func(t *testing.T) {
		t.Parallel()
		store := newStore(t, "[server]\nhost = localhost\nport = 8080\n")

		var cfg struct {
			Server struct {
				Host string `ini:"host"`
			} `ini:"server"`
		}
		require.NoError(t, convert.ToStruct(store, &cfg))

		err := convert.ToStruct(store, &cfg, convert.WithStrictFields())
		require.Error(t, err)
		assert.ErrorIs(t, err, convert.ErrDecodeFailed)
	})

	t.Run("RequireFields", func(t *testing.T) {
		t.Parallel()
		store := newStore(t, "[server]\nhost = localhost\n")

		var cfg struct {
			Server struct {
				Host string `ini:"host"`
				Port int    `ini:"port"`
			} `ini:"server"`
		}
		require.NoError(t, convert.ToStruct(store, &cfg))
		assert.Zero(t, cfg.Server.Port)

		err := convert.ToStruct(store, &cfg, convert.WithRequireFields())
		require.Error(t, err)
		assert.ErrorIs(t, err, convert.ErrDecodeFailed)
	})
}

type verbosity int

const (
	quiet verbosity = iota
	chatty
)

func TestToStructHooks(t *testing.T) {
	t.Parallel()

	t.Run("CustomHookRunsFirst", func(t *testing.T) {
		t.Parallel()
		store := newStore(t, "[log]\nlevel = chatty\n")

		var verbosityHook mapstructure.DecodeHookFuncType = func(from, to reflect.Type, data any) (any, error) {
			if from.Kind() != reflect.String || to != reflect.TypeOf(verbosity(0)) {
				return data, nil
			}
			switch data.(string) {
			case "quiet":
				return quiet, nil
			case "chatty":
				return chatty, nil
			}
			return nil, fmt.Errorf("unknown verbosity %q", data)
		}

		var cfg struct {
			Log struct {
				Level verbosity `ini:"level"`
			} `ini:"log"`
		}
		err := convert.ToStruct(store, &cfg, convert.WithDecodeHook(verbosityHook))
		require.NoError(t, err)
		assert.Equal(t, chatty, cfg.Log.Level)
	})

	t.Run("TextUnmarshalerFields", func(t *testing.T) {
		t.Parallel()
		store := newStore(t, "[server]\nbind = 10.0.0.7\n")

		var cfg struct {
			Server struct {
				Bind net.IP `ini:"bind"`
			} `ini:"server"`
		}
		require.NoError(t, convert.ToStruct(store, &cfg))
		assert.True(t, cfg.Server.Bind.Equal(net.ParseIP("10.0.0.7")))
	})

	t.Run("CustomBooleanStates", func(t *testing.T) {
		t.Parallel()
		store := newStore(t, "[flags]\nenabled = ja\n")

		var cfg struct {
			Flags struct {
				Enabled bool `ini:"enabled"`
			} `ini:"flags"`
		}
		err := convert.ToStruct(store, &cfg, convert.WithBooleanStates(map[string]bool{
			"ja": true, "nein": false,
		}))
		require.NoError(t, err)
		assert.True(t, cfg.Flags.Enabled)
	})
}

func TestToStructTagName(t *testing.T) {
	t.Parallel()

	store := newStore(t, "[server]\nhost = localhost\n")

	var cfg struct {
		Server struct {
			Host string `conf:"host"`
		} `conf:"server"`
	}
	require.NoError(t, convert.ToStruct(store, &cfg, convert.WithTagName("conf")))
	assert.Equal(t, "localhost", cfg.Server.Host)
}
