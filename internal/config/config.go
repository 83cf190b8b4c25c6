package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/TURKZEN/english-turkish-dictionary/internal/validation"
)

const appName = "sozluk"

type Config struct {
	Dictionary   DictionaryConfig   `mapstructure:"dictionary"`
	Presentation PresentationConfig `mapstructure:"presentation"`
}

type DictionaryConfig struct {
	Path string `mapstructure:"path" validate:"required"`
	// URL is fetched once when Path does not exist. Empty disables fetching.
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

type PresentationConfig struct {
	Format      string `mapstructure:"format" validate:"oneof=text table json yaml"`
	Placeholder string `mapstructure:"placeholder" validate:"required"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
	envFile    string
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := validation.New("mapstructure")
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/" + appName)
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
		envFile:    ".env",
	}, nil
}

// DefaultDictionaryPath returns the dictionary location under the user's data
// directory, falling back to the working directory.
func DefaultDictionaryPath() string {
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, appName, "dictionary.json")
	}
	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		return filepath.Join(homeDir, ".local", "share", appName, "dictionary.json")
	}
	return "dictionary.json"
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	// .env is optional; variables may come from the environment directly.
	if err := godotenv.Load(loader.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", loader.envFile, err)
	}

	v.SetDefault("dictionary.path", DefaultDictionaryPath())
	v.SetDefault("dictionary.url", "")
	v.SetDefault("presentation.format", "text")
	v.SetDefault("presentation.placeholder", "unspecified")

	if err := v.BindEnv("dictionary.path", "SOZLUK_DICTIONARY_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind SOZLUK_DICTIONARY_PATH environment variable: %w", err)
	}
	if err := v.BindEnv("dictionary.url", "SOZLUK_DICTIONARY_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind SOZLUK_DICTIONARY_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	return &cfg, nil
}

// Validate checks cfg. Load does not validate, so that command-line flags can
// replace invalid values first.
func (loader *ConfigLoader) Validate(cfg *Config) error {
	err := loader.validator.Struct(cfg)
	if err == nil {
		return nil
	}
	errorMsgs, err := validation.Messages(err, loader.translator, func(e validator.FieldError, message string) string {
		return fmt.Sprintf("%s: %s", strings.TrimPrefix(e.Namespace(), "Config."), message)
	})
	if err != nil {
		return fmt.Errorf("validator.Struct > %w", err)
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
}
