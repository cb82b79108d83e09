package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lthummus/timefmt/durations"
)

func prepareViper(t *testing.T, config string) {
	viper.SetConfigType("yaml")
	err := viper.ReadConfig(strings.NewReader(config))
	require.NoError(t, err)
	t.Cleanup(func() {
		viper.Reset()
	})
}

func resetInit(t *testing.T) {
	t.Cleanup(func() {
		initLock.Lock()
		defer initLock.Unlock()
		hasInit = false
		initError = nil
		viper.Reset()
	})
}

func TestValidateConfig(t *testing.T) {
	t.Run("everything is good", func(t *testing.T) {
		prepareViper(t, `
format:
    style: short
    unit: ms
countdown:
    tick: 500ms
`)

		errors := ValidateConfig()
		assert.Empty(t, errors)
	})

	t.Run("empty config is fine", func(t *testing.T) {
		prepareViper(t, ``)
		assert.Empty(t, ValidateConfig())
	})

	t.Run("bad style", func(t *testing.T) {
		prepareViper(t, `
format:
    style: medium
`)
		errors := ValidateConfig()
		assert.Len(t, errors, 1)

		assert.Equal(t, "invalid `format.style`; must be `long` or `short`", errors[0])
	})

	t.Run("bad unit", func(t *testing.T) {
		prepareViper(t, `
format:
    unit: fortnights
`)
		errors := ValidateConfig()
		assert.Len(t, errors, 1)

		assert.Equal(t, "invalid `format.unit`", errors[0])
	})

	t.Run("bad tick", func(t *testing.T) {
		prepareViper(t, `
countdown:
    tick: -1s
`)
		errors := ValidateConfig()
		assert.Len(t, errors, 1)

		assert.Equal(t, "`countdown.tick` must be a positive duration", errors[0])
	})

	t.Run("multiple things wrong", func(t *testing.T) {
		prepareViper(t, `
format:
    style: medium
    unit: fortnights
countdown:
    tick: soon
`)
		errors := ValidateConfig()
		assert.Len(t, errors, 3)
	})
}

func TestAccessors(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		prepareViper(t, ``)

		s, err := Style()
		require.NoError(t, err)
		assert.Equal(t, durations.StyleLong, s)

		u, err := Unit()
		require.NoError(t, err)
		assert.Equal(t, durations.Seconds, u)

		assert.Equal(t, " ", Delimiter(s))
		assert.Equal(t, "", Delimiter(durations.StyleShort))
		assert.Equal(t, time.Second, CountdownTick())
	})

	t.Run("from config", func(t *testing.T) {
		prepareViper(t, `
format:
    style: short
    unit: minutes
    delimiter: ", "
countdown:
    tick: 250ms
`)

		s, err := Style()
		require.NoError(t, err)
		assert.Equal(t, durations.StyleShort, s)

		u, err := Unit()
		require.NoError(t, err)
		assert.Equal(t, durations.Minutes, u)

		assert.Equal(t, ", ", Delimiter(s))
		assert.Equal(t, 250*time.Millisecond, CountdownTick())
	})

	t.Run("invalid values", func(t *testing.T) {
		prepareViper(t, `
format:
    style: medium
    unit: fortnights
`)

		_, err := Style()
		assert.ErrorIs(t, err, durations.ErrUnknownStyle)

		_, err = Unit()
		assert.ErrorIs(t, err, durations.ErrUnknownUnit)
	})
}

func TestWriteDefaultConfig(t *testing.T) {
	t.Run("writes a readable file", func(t *testing.T) {
		t.Cleanup(func() {
			viper.Reset()
		})

		path := filepath.Join(t.TempDir(), "nested", "timefmt.yaml")
		require.NoError(t, WriteDefaultConfig(path))

		viper.SetConfigFile(path)
		require.NoError(t, viper.ReadInConfig())

		assert.Equal(t, "long", viper.GetString(KeyStyle))
		assert.Equal(t, "seconds", viper.GetString(KeyUnit))
		assert.Equal(t, time.Second, viper.GetDuration(KeyCountdownTick))
		assert.False(t, viper.IsSet(KeyDelimiter))
		assert.Empty(t, ValidateConfig())
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "timefmt.yaml")
		require.NoError(t, os.WriteFile(path, []byte("format:\n  style: short\n"), 0o600))

		err := WriteDefaultConfig(path)
		assert.ErrorIs(t, err, ErrConfigExists)

		contents, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "format:\n  style: short\n", string(contents))
	})
}

func TestInit(t *testing.T) {
	t.Run("reads file from env", func(t *testing.T) {
		resetInit(t)

		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("format:\n  style: short\n"), 0o600))
		t.Setenv("CONFIG_FILE_PATH", path)

		require.NoError(t, Init())

		s, err := Style()
		require.NoError(t, err)
		assert.Equal(t, durations.StyleShort, s)

		u, err := Unit()
		require.NoError(t, err)
		assert.Equal(t, durations.Seconds, u)
	})

	t.Run("broken file", func(t *testing.T) {
		resetInit(t)

		path := filepath.Join(t.TempDir(), "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("format: [nope"), 0o600))
		t.Setenv("CONFIG_FILE_PATH", path)

		err := Init()
		assert.Error(t, err)

		// later calls return the same result
		assert.Equal(t, err, Init())
	})
}

func TestIsDebugLoggingEnabled(t *testing.T) {
	t.Run("env var is unset", func(t *testing.T) {
		assert.False(t, IsDebugLoggingEnabled())
	})

	t.Run("env var is set to something else", func(t *testing.T) {
		t.Setenv("DEBUG_LOG", "false")
		assert.False(t, IsDebugLoggingEnabled())
	})

	t.Run("env var says yes", func(t *testing.T) {
		t.Setenv("DEBUG_LOG", "true")
		assert.True(t, IsDebugLoggingEnabled())
	})
}
