package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/lthummus/timefmt/durations"
)

var (
	Lock sync.RWMutex

	initLock  sync.Mutex
	hasInit   bool
	initError error

	ErrConfigExists = errors.New("config file already exists")
)

func IsDebugLoggingEnabled() bool {
	return os.Getenv("DEBUG_LOG") == "true"
}

func SetDefaults() {
	viper.SetDefault(KeyStyle, DefaultStyle)
	viper.SetDefault(KeyUnit, DefaultUnit)
	viper.SetDefault(KeyCountdownTick, DefaultCountdownTick)
}

// Init loads the config file, if there is one. A missing file is not an error;
// the defaults from SetDefaults apply instead.
func Init() error {
	initLock.Lock()
	defer initLock.Unlock()

	if hasInit {
		return initError
	}
	hasInit = true

	Lock.Lock()
	defer Lock.Unlock()

	SetDefaults()

	configFilePath := os.Getenv("CONFIG_FILE_PATH")
	if configFilePath == "" {
		viper.SetConfigName("timefmt")
		viper.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "timefmt"))
		}
		viper.AddConfigPath(".")
	} else {
		viper.SetConfigFile(configFilePath)
	}

	err := viper.ReadInConfig()
	if err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Debug().Msg("no config file found; using defaults")
			return nil
		}

		log.Error().Str("config_file", viper.ConfigFileUsed()).Err(err).Msg("could not read config")
		initError = fmt.Errorf("config: Init: %w", err)
		return initError
	}
	log.Debug().Str("config_file_path", viper.ConfigFileUsed()).Msg("initialized configuration")

	return nil
}

func ValidateConfig() []string {
	Lock.RLock()
	defer Lock.RUnlock()

	var errorsFound []string

	if style := viper.GetString(KeyStyle); style != "" {
		if _, err := durations.ParseStyle(style); err != nil {
			log.Error().Str(KeyStyle, style).Msg("invalid style; must be long or short")
			errorsFound = append(errorsFound, "invalid `format.style`; must be `long` or `short`")
		}
	}

	if unit := viper.GetString(KeyUnit); unit != "" {
		if _, err := durations.ParseUnit(unit); err != nil {
			log.Error().Str(KeyUnit, unit).Msg("invalid unit")
			errorsFound = append(errorsFound, "invalid `format.unit`")
		}
	}

	if tick := viper.GetString(KeyCountdownTick); tick != "" {
		d, err := time.ParseDuration(tick)
		if err != nil || d <= 0 {
			log.Error().Str(KeyCountdownTick, tick).Msg("invalid countdown tick")
			errorsFound = append(errorsFound, "`countdown.tick` must be a positive duration")
		}
	}

	return errorsFound
}

func Style() (durations.Style, error) {
	Lock.RLock()
	defer Lock.RUnlock()

	s := viper.GetString(KeyStyle)
	if s == "" {
		s = DefaultStyle
	}
	return durations.ParseStyle(s)
}

func Unit() (durations.Unit, error) {
	Lock.RLock()
	defer Lock.RUnlock()

	u := viper.GetString(KeyUnit)
	if u == "" {
		u = DefaultUnit
	}
	return durations.ParseUnit(u)
}

// Delimiter returns the configured delimiter override, or the delimiter that
// goes with style when none is set.
func Delimiter(style durations.Style) string {
	Lock.RLock()
	defer Lock.RUnlock()

	if viper.IsSet(KeyDelimiter) {
		return viper.GetString(KeyDelimiter)
	}
	return style.Delimiter()
}

func CountdownTick() time.Duration {
	Lock.RLock()
	defer Lock.RUnlock()

	d := viper.GetDuration(KeyCountdownTick)
	if d <= 0 {
		return time.Second
	}
	return d
}

func defaultSettings() map[string]any {
	return map[string]any{
		"format": map[string]any{
			"style": DefaultStyle,
			"unit":  DefaultUnit,
		},
		"countdown": map[string]any{
			"tick": DefaultCountdownTick,
		},
	}
}

// WriteDefaultConfig writes a config file holding the default settings to path.
// An existing file is never overwritten.
func WriteDefaultConfig(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return fmt.Errorf("config: WriteDefaultConfig: %w: %s", ErrConfigExists, path)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		log.Error().Err(err).Str("path", path).Msg("could not stat file")
		return err
	}

	data, err := yaml.Marshal(defaultSettings())
	if err != nil {
		log.Error().Err(err).Msg("could not marshall")
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			log.Error().Err(err).Str("dir", dir).Msg("could not create config directory")
			return err
		}
	}

	err = os.WriteFile(path, data, 0o600)
	if err != nil {
		log.Error().Err(err).Msg("could not write file")
		return err
	}

	log.Info().Str("config_file_path", path).Int("bytes_written", len(data)).Msg("wrote config file")

	return nil
}
