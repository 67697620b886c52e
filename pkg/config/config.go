package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

// EnvFileVar names the environment variable that points at an explicit env
// file. When unset, a ".env" in the working directory is loaded if present.
const EnvFileVar = "FOODIESPOT_ENV_FILE"

var (
	loadOnce sync.Once
	loadErr  error
)

// MustNew loads a config struct from the environment and panics on failure.
// Intended for wiring in main only.
func MustNew[T any](prefix string) *T {
	conf, err := New[T](prefix)
	if err != nil {
		panic(err)
	}
	return conf
}

// New loads the optional env file into the process environment, then
// populates a fresh T from envconfig tags under the given prefix.
func New[T any](prefix string) (*T, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	var conf T
	if err := envconfig.Process(prefix, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func loadEnvFile() error {
	loadOnce.Do(func() {
		path := strings.TrimSpace(os.Getenv(EnvFileVar))
		optional := path == ""
		if optional {
			path = ".env"
		}

		info, err := os.Stat(path)
		if err != nil {
			if optional && errors.Is(err, os.ErrNotExist) {
				return
			}
			loadErr = err
			return
		}
		if info.IsDir() {
			loadErr = fmt.Errorf("env file %s is a directory", path)
			return
		}

		loadErr = exportEnvironment(path)
	})
	return loadErr
}

func exportEnvironment(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	for key, value := range v.AllSettings() {
		if err := os.Setenv(strings.ToUpper(key), fmt.Sprint(value)); err != nil {
			return err
		}
	}
	return nil
}
