// Package config loads runtime settings from defaults, an optional
// recipebook.yaml and RECIPEBOOK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/hammamikhairi/recipebook/internal/logger"
	"github.com/hammamikhairi/recipebook/internal/recipe"
)

// Keys.
const (
	KeyLogLevel         = "log-level"
	KeyLogFile          = "log-file"
	KeyCalorieThreshold = "calorie-threshold"
	KeyUniqueNames      = "unique-names"
	KeyResetScaleFactor = "reset-scale-factor"
	KeyOrdering         = "ordering"
	KeyLocale           = "locale"
	KeyChime            = "chime"
)

const (
	OrderingCollate = "collate"
	OrderingOrdinal = "ordinal"

	// LogToStderr as log-file sends logs to the console.
	LogToStderr = "stderr"

	DefaultLogFile = ".recipebook/recipebook.log"
	envPrefix      = "RECIPEBOOK"
	configName     = "recipebook"
)

// Config holds the resolved settings.
type Config struct {
	LogLevel         logger.Level
	LogFile          string
	CalorieThreshold int
	UniqueNames      bool
	ResetScaleFactor bool
	Ordering         string
	Locale           language.Tag
	Chime            bool
	// File is the config file that was read, empty when none was found.
	File string
}

// Load resolves the configuration. An explicit path must exist; with an
// empty path recipebook.yaml is looked up in the working directory and
// silently skipped when missing.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyLogLevel, logger.LevelNormal.String())
	v.SetDefault(KeyLogFile, DefaultLogFile)
	v.SetDefault(KeyCalorieThreshold, recipe.DefaultCalorieThreshold)
	v.SetDefault(KeyUniqueNames, false)
	v.SetDefault(KeyResetScaleFactor, false)
	v.SetDefault(KeyOrdering, OrderingCollate)
	v.SetDefault(KeyLocale, "en")
	v.SetDefault(KeyChime, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		LogFile:  v.GetString(KeyLogFile),
		Ordering: strings.ToLower(strings.TrimSpace(v.GetString(KeyOrdering))),
		File:     v.ConfigFileUsed(),
	}

	// viper's GetInt/GetBool turn malformed values into zero values, so
	// typed keys are converted strictly.
	var err error
	if cfg.CalorieThreshold, err = cast.ToIntE(v.Get(KeyCalorieThreshold)); err != nil {
		return nil, fmt.Errorf("%s: %w", KeyCalorieThreshold, err)
	}
	for key, dst := range map[string]*bool{
		KeyUniqueNames:      &cfg.UniqueNames,
		KeyResetScaleFactor: &cfg.ResetScaleFactor,
		KeyChime:            &cfg.Chime,
	} {
		if *dst, err = cast.ToBoolE(v.Get(key)); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
	}
	if cfg.LogLevel, err = logger.ParseLevel(v.GetString(KeyLogLevel)); err != nil {
		return nil, fmt.Errorf("%s: %w", KeyLogLevel, err)
	}
	if cfg.CalorieThreshold < 0 {
		return nil, fmt.Errorf("%s: must not be negative, got %d", KeyCalorieThreshold, cfg.CalorieThreshold)
	}
	switch cfg.Ordering {
	case OrderingCollate, OrderingOrdinal:
	default:
		return nil, fmt.Errorf("%s: %q is invalid (valid values: collate, ordinal)", KeyOrdering, cfg.Ordering)
	}
	if cfg.Locale, err = language.Parse(v.GetString(KeyLocale)); err != nil {
		return nil, fmt.Errorf("%s: %w", KeyLocale, err)
	}
	return cfg, nil
}

// BookOptions translates the settings into recipe book options.
func (c *Config) BookOptions() []recipe.Option {
	opts := []recipe.Option{recipe.WithCalorieThreshold(c.CalorieThreshold)}
	if c.UniqueNames {
		opts = append(opts, recipe.WithUniqueNames())
	}
	if c.ResetScaleFactor {
		opts = append(opts, recipe.WithScaleFactorReset())
	}
	if c.Ordering == OrderingOrdinal {
		opts = append(opts, recipe.WithOrdinalOrder())
	} else {
		opts = append(opts, recipe.WithLocale(c.Locale))
	}
	return opts
}
